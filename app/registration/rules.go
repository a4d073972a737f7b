package registration

import (
	"github.com/km-arc/go-registration/framework/http/validation"
)

const upperASCII = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// Rule is one row of the rule table.
type Rule struct {
	Key     Key
	Message string
	// Check is a pure predicate over the current form values.
	Check func(f Form) bool
	// Triggers lists rules that must re-run after this one, because their
	// outcome depends on this field's value.
	Triggers []Key
}

// Rules is the fixed rule table, keyed by field.
type Rules map[Key]Rule

// DefaultRules returns the registration form's rule table.
func DefaultRules() Rules {
	return Rules{
		FirstName: {
			Key:     FirstName,
			Message: "First Name must be at least 5 characters.",
			Check: func(f Form) bool {
				return validation.Var(f.Value(InputFirstName), "min_utf16=5")
			},
		},
		Email: {
			Key:     Email,
			Message: `Email must contain "@".`,
			Check: func(f Form) bool {
				return validation.Var(f.Value(InputEmail), "contains=@")
			},
		},
		Password: {
			Key:     Password,
			Message: "Password must be at least 8 characters and contain one uppercase letter.",
			Check: func(f Form) bool {
				return validation.Var(f.Value(InputPassword), "min_utf16=8,containsany="+upperASCII)
			},
			Triggers: []Key{ConfirmPassword},
		},
		ConfirmPassword: {
			Key:     ConfirmPassword,
			Message: "Passwords do not match.",
			Check: func(f Form) bool {
				return validation.VarWithValue(f.Value(InputConfirmPassword), f.Value(InputPassword), "required,eqcsfield")
			},
		},
		Gender: {
			Key:     Gender,
			Message: "Please select a gender.",
			Check: func(f Form) bool {
				return validation.Var(f.Checked(InputMale) || f.Checked(InputFemale), "required")
			},
		},
		Country: {
			Key:     Country,
			Message: "Please select a country.",
			Check: func(f Form) bool {
				return validation.Var(f.Value(InputCountry), "required")
			},
		},
		Terms: {
			Key:     Terms,
			Message: "You must accept the terms and conditions.",
			Check: func(f Form) bool {
				return validation.Var(f.Checked(InputTerms), "required")
			},
		},
	}
}
