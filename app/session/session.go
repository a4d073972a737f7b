package session

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/km-arc/go-registration/app/registration"
	"github.com/km-arc/go-registration/framework/http/validation"
)

// Button is the submit control's disabled attribute.
type Button struct {
	Disabled bool
}

func (b *Button) SetDisabled(disabled bool) { b.Disabled = disabled }

// Panel is the summary region; each Render replaces its content.
type Panel struct {
	Current *registration.Summary
}

func (p *Panel) Render(s registration.Summary) { p.Current = &s }

// Session is one visitor's form instance.
type Session struct {
	ID uuid.UUID

	mu        sync.Mutex
	form      *FormState
	errors    *validation.Errors
	button    *Button
	panel     *Panel
	validator *registration.Validator
	lastSeen  time.Time
}

// View is a consistent copy of a session's state for rendering.
type View struct {
	ID             string                `json:"id"`
	Status         registration.Status   `json:"status"`
	Errors         map[string]string     `json:"errors"`
	HasErrors      bool                  `json:"has_errors"`
	SubmitDisabled bool                  `json:"submit_disabled"`
	Summary        *registration.Summary `json:"summary,omitempty"`
	Values         map[string]string     `json:"-"`
	Checked        map[string]bool       `json:"-"`
	Options        []registration.Choice `json:"-"`
}

func newSession(options []registration.Choice, now time.Time, opts ...registration.Option) *Session {
	s := &Session{
		ID:       uuid.New(),
		form:     NewFormState(options),
		errors:   validation.NewErrors(),
		button:   &Button{},
		panel:    &Panel{},
		lastSeen: now,
	}
	s.validator = registration.New(s.form, s.errors, s.button, opts...)
	return s
}

// Input applies a change event to a control and runs its listener.
func (s *Session) Input(id, value string, checked bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.form.Apply(id, value, checked); err != nil {
		return err
	}
	return s.validator.HandleInput(id)
}

// Submit submits the form.
func (s *Session) Submit() (registration.Summary, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.validator.Submit(s.panel)
}

// Snapshot returns the state needed to render the page.
func (s *Session) Snapshot() View {
	s.mu.Lock()
	defer s.mu.Unlock()

	v := View{
		ID:             s.ID.String(),
		Status:         s.validator.Status(),
		Errors:         s.errors.Snapshot(),
		HasErrors:      s.errors.Has(),
		SubmitDisabled: s.button.Disabled,
		Values:         make(map[string]string),
		Checked:        make(map[string]bool),
		Options:        s.form.Options(),
	}
	if s.panel.Current != nil {
		sum := *s.panel.Current
		v.Summary = &sum
	}
	for _, id := range Controls() {
		if IsCheckable(id) {
			v.Checked[id] = s.form.Checked(id)
		} else {
			v.Values[id] = s.form.Value(id)
		}
	}
	return v
}

func (s *Session) touch(now time.Time) {
	s.mu.Lock()
	s.lastSeen = now
	s.mu.Unlock()
}

func (s *Session) idleSince() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastSeen
}
