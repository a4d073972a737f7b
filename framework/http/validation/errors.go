package validation

import "sort"

// Errors is an inline error bag: one text slot per id.
// JSON output: {"errors": {"emailError": "Email must contain \"@\"."}}
//
// Slots are created on first Show and are never removed; Clear only empties
// the text, the same way an error element stays on the page once attached.
type Errors struct {
	Bag map[string]string `json:"errors"`
}

// NewErrors returns an empty bag.
func NewErrors() *Errors {
	return &Errors{Bag: make(map[string]string)}
}

// Show sets the text of slot, creating the slot if it does not exist yet.
func (e *Errors) Show(slot, message string) {
	if e.Bag == nil {
		e.Bag = make(map[string]string)
	}
	e.Bag[slot] = message
}

// Clear empties the text of slot. A missing slot is left missing.
func (e *Errors) Clear(slot string) {
	if _, ok := e.Bag[slot]; ok {
		e.Bag[slot] = ""
	}
}

// Has returns true if any slot carries text.
func (e *Errors) Has() bool {
	for _, msg := range e.Bag {
		if msg != "" {
			return true
		}
	}
	return false
}

// First returns the text of slot, or "" when the slot is empty or absent.
func (e *Errors) First(slot string) string {
	return e.Bag[slot]
}

// Slots returns the created slot ids in sorted order.
func (e *Errors) Slots() []string {
	out := make([]string, 0, len(e.Bag))
	for slot := range e.Bag {
		out = append(out, slot)
	}
	sort.Strings(out)
	return out
}

// Snapshot returns a copy of the bag, safe to hand to a renderer.
func (e *Errors) Snapshot() map[string]string {
	out := make(map[string]string, len(e.Bag))
	for _, slot := range e.Slots() {
		out[slot] = e.First(slot)
	}
	return out
}
