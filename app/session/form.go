package session

import (
	"errors"
	"fmt"

	"github.com/km-arc/go-registration/app/registration"
)

// ErrNotApplicable is returned when an event does not fit the control kind,
// e.g. setting text on a checkbox.
var ErrNotApplicable = errors.New("session: event not applicable to control")

type controlKind int

const (
	kindText controlKind = iota
	kindRadio
	kindCheckbox
	kindSelect
)

var controls = map[string]controlKind{
	registration.InputFirstName:       kindText,
	registration.InputLastName:        kindText,
	registration.InputSurname:         kindText,
	registration.InputEmail:           kindText,
	registration.InputPassword:        kindText,
	registration.InputConfirmPassword: kindText,
	registration.InputMale:            kindRadio,
	registration.InputFemale:          kindRadio,
	registration.InputCountry:         kindSelect,
	registration.InputTerms:           kindCheckbox,
}

// genderGroup holds the mutually exclusive radio buttons.
var genderGroup = []string{registration.InputMale, registration.InputFemale}

// FormState is the server-side copy of one visitor's form controls.
// It implements registration.Form.
type FormState struct {
	text     map[string]string
	checked  map[string]bool
	options  []registration.Choice
	selected int
}

// NewFormState returns a form with every control at its default. options
// populate the country select; the first option is the default selection.
func NewFormState(options []registration.Choice) *FormState {
	f := &FormState{options: options}
	f.Reset()
	return f
}

// ── registration.Form ────────────────────────────────────────────────────────

func (f *FormState) Value(id string) string {
	if controls[id] == kindSelect {
		if f.selected < 0 || f.selected >= len(f.options) {
			return ""
		}
		return f.options[f.selected].Value
	}
	return f.text[id]
}

func (f *FormState) Checked(id string) bool { return f.checked[id] }

func (f *FormState) SelectedLabel(id string) string {
	if controls[id] != kindSelect || f.selected < 0 || f.selected >= len(f.options) {
		return ""
	}
	return f.options[f.selected].Label
}

// Reset clears text, unchecks every box and selects the first option.
func (f *FormState) Reset() {
	f.text = make(map[string]string)
	f.checked = make(map[string]bool)
	f.selected = 0
	if len(f.options) == 0 {
		f.selected = -1
	}
}

// ── Mutation ─────────────────────────────────────────────────────────────────

// SetText sets a text input's value.
func (f *FormState) SetText(id, value string) error {
	kind, ok := controls[id]
	if !ok {
		return fmt.Errorf("%w: %q", registration.ErrUnknownControl, id)
	}
	if kind != kindText {
		return fmt.Errorf("%w: %q is not a text input", ErrNotApplicable, id)
	}
	f.text[id] = value
	return nil
}

// SetChecked toggles a checkbox or radio button. Checking a radio unchecks
// the rest of its group.
func (f *FormState) SetChecked(id string, on bool) error {
	kind, ok := controls[id]
	if !ok {
		return fmt.Errorf("%w: %q", registration.ErrUnknownControl, id)
	}
	switch kind {
	case kindCheckbox:
		f.checked[id] = on
	case kindRadio:
		if on {
			for _, other := range genderGroup {
				f.checked[other] = false
			}
		}
		f.checked[id] = on
	default:
		return fmt.Errorf("%w: %q is not checkable", ErrNotApplicable, id)
	}
	return nil
}

// Select picks the option with the given value. An unknown value leaves no
// option selected, which reads as an empty value.
func (f *FormState) Select(id, value string) error {
	kind, ok := controls[id]
	if !ok {
		return fmt.Errorf("%w: %q", registration.ErrUnknownControl, id)
	}
	if kind != kindSelect {
		return fmt.Errorf("%w: %q is not a select", ErrNotApplicable, id)
	}
	f.selected = -1
	for i, opt := range f.options {
		if opt.Value == value {
			f.selected = i
			break
		}
	}
	return nil
}

// Apply sets a control from a raw event payload: text and selects take
// value, checkables take checked.
func (f *FormState) Apply(id, value string, checked bool) error {
	switch kind, ok := controls[id]; {
	case !ok:
		return fmt.Errorf("%w: %q", registration.ErrUnknownControl, id)
	case kind == kindText:
		return f.SetText(id, value)
	case kind == kindSelect:
		return f.Select(id, value)
	default:
		return f.SetChecked(id, checked)
	}
}

// EventField returns the payload field a change event on id must carry:
// "checked" for checkboxes and radios, "value" otherwise.
func EventField(id string) (string, error) {
	kind, ok := controls[id]
	switch {
	case !ok:
		return "", fmt.Errorf("%w: %q", registration.ErrUnknownControl, id)
	case kind == kindCheckbox || kind == kindRadio:
		return "checked", nil
	default:
		return "value", nil
	}
}

// IsCheckable reports whether id is a checkbox or radio button.
func IsCheckable(id string) bool {
	k, ok := controls[id]
	return ok && (k == kindCheckbox || k == kindRadio)
}

// Controls returns every control id in form order.
func Controls() []string {
	return []string{
		registration.InputFirstName,
		registration.InputLastName,
		registration.InputSurname,
		registration.InputEmail,
		registration.InputPassword,
		registration.InputConfirmPassword,
		registration.InputMale,
		registration.InputFemale,
		registration.InputCountry,
		registration.InputTerms,
	}
}

// Options returns the select options.
func (f *FormState) Options() []registration.Choice { return f.options }
