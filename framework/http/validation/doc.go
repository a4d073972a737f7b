// Package validation provides value checks and an inline error bag.
//
// # Checks
//
// Checks are expressed with go-playground/validator tag syntax instead of
// hand-written rule parsers. Tags are comma-separated and evaluated in order.
//
//	validation.Var(name, "min_utf16=5")
//	validation.Var(password, "min_utf16=8,containsany=ABCDEFGHIJKLMNOPQRSTUVWXYZ")
//	validation.VarWithValue(confirm, password, "required,eqcsfield")
//
// Useful tags:
//   - required         non-zero value ("" and false fail)
//   - min=n / max=n    rune count for strings
//   - min_utf16=n      UTF-16 code units, as a browser counts length
//   - contains=s       substring present
//   - containsany=s    at least one of the runes in s present
//   - eqcsfield        equal to the other value (VarWithValue only)
//   - oneof=a b c      value in the space-separated list
//
// Struct validates tagged structs, e.g. configuration at bootstrap:
//
//	type AppConfig struct {
//	    Port string `validate:"required,numeric"`
//	}
//	if err := validation.Struct(cfg); err != nil { ... }
//
// # Error Bag
//
// Errors holds one text slot per id. Show creates a slot lazily; Clear empties
// it without removing it. The bag serialises as:
//
//	{
//	  "errors": {
//	    "firstNameError": "First Name must be at least 5 characters.",
//	    "emailError":     ""
//	  }
//	}
package validation
