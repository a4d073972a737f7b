package registration

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownField is returned by Validate for a key outside the rule table.
	ErrUnknownField = errors.New("registration: unknown field")
	// ErrUnknownControl is returned by HandleInput for an id the form does not have.
	ErrUnknownControl = errors.New("registration: unknown input control")
	// ErrSubmissionBlocked is returned by Submit while the gate is closed.
	ErrSubmissionBlocked = errors.New("registration: submission blocked by invalid fields")
)

// Observer is notified after every rule evaluation.
type Observer func(key Key, valid bool)

// Option configures a Validator.
type Option func(*Validator)

// WithRules replaces the rule table.
func WithRules(rules Rules) Option {
	return func(v *Validator) { v.rules = rules }
}

// WithObserver registers a callback run after each rule evaluation.
func WithObserver(o Observer) Option {
	return func(v *Validator) { v.observers = append(v.observers, o) }
}

// Validator owns the validation state of one form instance.
//
// It is not safe for concurrent use; callers serialise events the way a
// single event loop would.
type Validator struct {
	form      Form
	errors    ErrorDisplay
	submit    SubmitControl
	rules     Rules
	status    Status
	enabled   bool
	observers []Observer
}

// New binds a validator to its collaborators and sets the submit control
// from the default status.
func New(form Form, errs ErrorDisplay, submit SubmitControl, opts ...Option) *Validator {
	v := &Validator{
		form:   form,
		errors: errs,
		submit: submit,
		rules:  DefaultRules(),
		status: DefaultStatus(),
	}
	for _, opt := range opts {
		opt(v)
	}
	v.recomputeGate()
	return v
}

// ── Per-field operations ─────────────────────────────────────────────────────

func (v *Validator) ValidateFirstName()       { v.validateField(FirstName) }
func (v *Validator) ValidateEmail()           { v.validateField(Email) }
func (v *Validator) ValidatePassword()        { v.validateField(Password) }
func (v *Validator) ValidateConfirmPassword() { v.validateField(ConfirmPassword) }
func (v *Validator) ValidateGender()          { v.validateField(Gender) }
func (v *Validator) ValidateCountry()         { v.validateField(Country) }
func (v *Validator) ValidateTerms()           { v.validateField(Terms) }

// validateField is a no-op when a custom rule table omits key.
func (v *Validator) validateField(key Key) { _ = v.Validate(key) }

// Validate evaluates the rule for key, writes or clears its error, re-runs
// any rules it triggers and recomputes the gate.
func (v *Validator) Validate(key Key) error {
	if _, ok := v.rules[key]; !ok {
		return fmt.Errorf("%w: %q", ErrUnknownField, key)
	}
	v.run(key, map[Key]bool{})
	v.recomputeGate()
	return nil
}

// run evaluates key and its downstream rules; seen guards against cycles.
func (v *Validator) run(key Key, seen map[Key]bool) {
	if seen[key] {
		return
	}
	seen[key] = true

	rule, ok := v.rules[key]
	if !ok {
		return
	}

	valid := rule.Check(v.form)
	v.status[key] = valid
	if valid {
		renderFieldError(v.errors, key, "")
	} else {
		renderFieldError(v.errors, key, rule.Message)
	}
	for _, o := range v.observers {
		o(key, valid)
	}

	for _, next := range rule.Triggers {
		v.run(next, seen)
	}
}

// HandleInput runs the listener bound to an input control's change event.
// Controls without a listener are accepted and do nothing.
func (v *Validator) HandleInput(controlID string) error {
	key, ok := listeners[controlID]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownControl, controlID)
	}
	if key == "" {
		return nil
	}
	return v.Validate(key)
}

// ── Gate ─────────────────────────────────────────────────────────────────────

func (v *Validator) recomputeGate() {
	v.enabled = v.status.AllValid()
	v.submit.SetDisabled(!v.enabled)
}

// Enabled reports whether submission is currently permitted.
func (v *Validator) Enabled() bool { return v.enabled }

// Status returns a copy of the current status map.
func (v *Validator) Status() Status { return v.status.Clone() }

// ── Submission ───────────────────────────────────────────────────────────────

// Submit renders the confirmation into view, then resets the form and the
// status to their defaults. Nothing changes while the gate is closed.
func (v *Validator) Submit(view SummaryView) (Summary, error) {
	if !v.enabled {
		return Summary{}, ErrSubmissionBlocked
	}

	summary := buildSummary(v.form)
	view.Render(summary)

	v.form.Reset()
	v.status.reset()
	v.recomputeGate()
	return summary, nil
}
