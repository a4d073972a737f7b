// Package registration validates the registration form and gates submission.
//
// A Validator owns one form instance's Status (field → valid) and evaluates a
// fixed rule table against a Form. Each evaluation writes or clears the
// field's inline error through an ErrorDisplay and recomputes the gate, which
// it reflects onto a SubmitControl:
//
//	v := registration.New(form, errs, button)
//	v.HandleInput("password") // runs password, then confirmPassword
//	if v.Enabled() {
//	    summary, err := v.Submit(view)
//	}
//
// Rules may declare Triggers: downstream rules re-run after they fire.
// password triggers confirmPassword because a match depends on both values.
//
// Status starts with gender and terms valid; they only turn false once their
// controls are evaluated. Submit therefore can succeed with no gender
// selected, in which case the summary reports "Female".
package registration
