package registration

import "strings"

// Key identifies a validated field in Status.
type Key string

const (
	FirstName       Key = "firstName"
	Email           Key = "email"
	Password        Key = "password"
	ConfirmPassword Key = "confirmPassword"
	Gender          Key = "gender"
	Country         Key = "country"
	Terms           Key = "terms"
)

// Keys lists every status key in form order.
var Keys = []Key{FirstName, Email, Password, ConfirmPassword, Gender, Country, Terms}

// ErrorSlot returns the id of the error element attached to the field.
func (k Key) ErrorSlot() string { return string(k) + "Error" }

// Input control ids.
const (
	InputFirstName       = "firstName"
	InputLastName        = "lastName"
	InputSurname         = "surname"
	InputEmail           = "email"
	InputPassword        = "password"
	InputConfirmPassword = "confirmPassword"
	InputMale            = "male"
	InputFemale          = "female"
	InputCountry         = "country"
	InputTerms           = "terms"
)

// listeners maps an input control to the rule its change event runs.
// lastName and surname are present with no rule.
var listeners = map[string]Key{
	InputFirstName:       FirstName,
	InputLastName:        "",
	InputSurname:         "",
	InputEmail:           Email,
	InputPassword:        Password,
	InputConfirmPassword: ConfirmPassword,
	InputMale:            Gender,
	InputFemale:          Gender,
	InputCountry:         Country,
	InputTerms:           Terms,
}

// Choice is one entry of a select control.
type Choice struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// Form is read access to the current input values, plus reset.
// The validator never writes field values.
type Form interface {
	// Value returns the text of a text input or the value of a select.
	Value(id string) string
	// Checked reports the state of a checkbox or radio button.
	Checked(id string) bool
	// SelectedLabel returns the display label of a select's current option.
	SelectedLabel(id string) string
	// Reset restores every control to its default.
	Reset()
}

// ErrorDisplay receives inline error text.
type ErrorDisplay interface {
	// Show writes message into slot, creating the slot if needed.
	Show(slot, message string)
	// Clear empties slot if it exists.
	Clear(slot string)
}

// SubmitControl reflects the gate.
type SubmitControl interface {
	SetDisabled(disabled bool)
}

// SummaryView displays the confirmation, replacing whatever it showed before.
type SummaryView interface {
	Render(s Summary)
}

// renderFieldError writes message to the field's slot, or clears the slot
// when message is empty.
func renderFieldError(d ErrorDisplay, key Key, message string) {
	if message == "" {
		d.Clear(key.ErrorSlot())
		return
	}
	d.Show(key.ErrorSlot(), message)
}

// CountryPlaceholder is the first, empty option of the country select.
var CountryPlaceholder = Choice{Value: "", Label: "Select a country"}

// ParseChoices reads "value:label" pairs separated by commas, e.g.
// "US:United States,CA:Canada", and prepends the placeholder. Entries
// without a label use the value as label; blank entries are skipped.
func ParseChoices(raw string) []Choice {
	out := []Choice{CountryPlaceholder}
	for _, entry := range strings.Split(raw, ",") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}
		value, label, ok := strings.Cut(entry, ":")
		value = strings.TrimSpace(value)
		if value == "" {
			continue
		}
		if !ok || strings.TrimSpace(label) == "" {
			label = value
		}
		out = append(out, Choice{Value: value, Label: strings.TrimSpace(label)})
	}
	return out
}
