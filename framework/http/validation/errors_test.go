package validation_test

import (
	"encoding/json"
	"slices"
	"testing"

	"github.com/km-arc/go-registration/framework/http/validation"
)

func TestErrors_ShowCreatesSlot(t *testing.T) {
	e := validation.NewErrors()
	e.Show("emailError", `Email must contain "@".`)

	if !slices.Contains(e.Slots(), "emailError") {
		t.Fatal("slot should exist after Show")
	}
	if got := e.First("emailError"); got != `Email must contain "@".` {
		t.Errorf("First: got %q", got)
	}
	if !e.Has() {
		t.Error("Has() should be true with a non-empty slot")
	}
}

func TestErrors_ClearKeepsSlot(t *testing.T) {
	e := validation.NewErrors()
	e.Show("emailError", "bad")
	e.Clear("emailError")

	if !slices.Contains(e.Slots(), "emailError") {
		t.Error("Clear must not remove the slot")
	}
	if e.First("emailError") != "" {
		t.Errorf("slot text should be empty, got %q", e.First("emailError"))
	}
	if e.Has() {
		t.Error("Has() should be false when every slot is empty")
	}
}

func TestErrors_ClearMissingSlotIsNoop(t *testing.T) {
	e := validation.NewErrors()
	e.Clear("termsError")

	if slices.Contains(e.Slots(), "termsError") {
		t.Error("Clear must not create a slot")
	}
}

func TestErrors_ShowIsIdempotent(t *testing.T) {
	e := validation.NewErrors()
	e.Show("a", "x")
	e.Show("a", "x")

	if len(e.Slots()) != 1 {
		t.Errorf("Slots: got %d want 1", len(e.Slots()))
	}
}

func TestErrors_ZeroValueShow(t *testing.T) {
	var e validation.Errors
	e.Show("a", "x")
	if e.First("a") != "x" {
		t.Error("zero-value bag should lazily allocate")
	}
}

func TestErrors_JSON(t *testing.T) {
	e := validation.NewErrors()
	e.Show("countryError", "Please select a country.")

	b, err := json.Marshal(e)
	if err != nil {
		t.Fatal(err)
	}
	want := `{"errors":{"countryError":"Please select a country."}}`
	if string(b) != want {
		t.Errorf("JSON: got %s want %s", b, want)
	}
}

func TestErrors_SlotsSorted(t *testing.T) {
	e := validation.NewErrors()
	e.Show("termsError", "t")
	e.Show("emailError", "e")

	got := e.Slots()
	if len(got) != 2 || got[0] != "emailError" || got[1] != "termsError" {
		t.Errorf("Slots: got %v", got)
	}
}
