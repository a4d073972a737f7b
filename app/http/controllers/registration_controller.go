package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/km-arc/go-registration/app/metrics"
	"github.com/km-arc/go-registration/app/registration"
	"github.com/km-arc/go-registration/app/session"
	"github.com/km-arc/go-registration/framework/app"
	gohttp "github.com/km-arc/go-registration/framework/http"
	"github.com/km-arc/go-registration/framework/http/validation"
)

// RegistrationController serves the registration form. Each visitor gets
// their own session, identified by a cookie.
type RegistrationController struct {
	app.Controller

	Sessions *session.Store
	Views    *gohttp.ViewEngine
	Metrics  *metrics.Metrics
	Log      *zap.Logger

	AppName      string
	Cookie       string
	CookieTTL    time.Duration
	SecureCookie bool
}

type slotView struct {
	ID     string
	Text   string
	Exists bool
}

type page struct {
	session.View
	AppName string
	Slots   map[string]slotView
}

// Show renders the form page.
//
//	GET /
func (c *RegistrationController) Show(w http.ResponseWriter, r *http.Request) {
	sess := c.session(w, r)
	view := sess.Snapshot()

	slots := make(map[string]slotView, len(view.Errors))
	for id, text := range view.Errors {
		slots[id] = slotView{ID: id, Text: text, Exists: true}
	}
	c.Views.View(w, "registration", page{View: view, AppName: c.AppName, Slots: slots})
}

// State returns the visitor's validation state as JSON.
//
//	GET /state
func (c *RegistrationController) State(w http.ResponseWriter, r *http.Request) {
	sess := c.session(w, r)
	c.Response(w).Success(sess.Snapshot())
}

// Input applies one change event: text inputs and the select read "value",
// checkboxes and radios read "checked".
//
//	POST /fields/{control}
func (c *RegistrationController) Input(w http.ResponseWriter, r *http.Request) {
	req, res := c.Request(r), c.Response(w)
	sess := c.session(w, r)
	control := req.RouteParam("control")

	field, err := session.EventField(control)
	if err == nil && !req.Has(field) {
		err = fmt.Errorf("%w: %s needs %q", session.ErrNotApplicable, control, field)
	}
	if err == nil {
		err = sess.Input(control, req.Input("value"), req.Bool("checked"))
	}
	switch {
	case errors.Is(err, registration.ErrUnknownControl):
		res.NotFound("Unknown form control.")
		return
	case errors.Is(err, session.ErrNotApplicable):
		res.Error(http.StatusBadRequest, err.Error())
		return
	case err != nil:
		c.Log.Error("field event failed", zap.String("control", control), zap.Error(err))
		res.Error(http.StatusInternalServerError, "Server Error.")
		return
	}

	if !req.IsJSON() {
		res.RedirectTo("/")
		return
	}
	res.Success(sess.Snapshot())
}

// Submit submits the form. A regular HTML form post carries every control;
// changed values are applied as change events first, in form order.
//
//	POST /submit
func (c *RegistrationController) Submit(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	defer c.Metrics.ObserveSubmit(start)

	req, res := c.Request(r), c.Response(w)
	sess := c.session(w, r)

	if req.Has(registration.InputFirstName) {
		if err := c.applyForm(sess, req); err != nil {
			c.Log.Error("applying submitted form failed", zap.Error(err))
			res.Error(http.StatusBadRequest, err.Error())
			return
		}
	}

	summary, err := sess.Submit()
	if errors.Is(err, registration.ErrSubmissionBlocked) {
		c.Metrics.IncrementSubmission(false)
		view := sess.Snapshot()
		c.Log.Info("submission blocked",
			zap.String("session", view.ID),
			zap.Strings("invalid", invalidFields(view.Status)),
		)
		if !req.IsJSON() {
			res.RedirectTo("/")
			return
		}
		res.ValidationError(&validation.Errors{Bag: view.Errors}, map[string]any{
			"message":         "The form has invalid fields.",
			"status":          view.Status,
			"submit_disabled": view.SubmitDisabled,
		})
		return
	}
	if err != nil {
		c.Log.Error("submit failed", zap.Error(err))
		res.Error(http.StatusInternalServerError, "Server Error.")
		return
	}

	c.Metrics.IncrementSubmission(true)
	c.Log.Info("registration submitted",
		zap.String("session", sess.ID.String()),
		zap.String("country", summary.Country),
	)

	if !req.IsJSON() {
		res.RedirectTo("/")
		return
	}
	res.Success(sess.Snapshot())
}

// applyForm replays a posted form as change events. Like a browser, only
// controls whose value actually changed fire an event.
func (c *RegistrationController) applyForm(sess *session.Session, req *gohttp.Request) error {
	gender := req.Input("gender")
	for _, id := range session.Controls() {
		current := sess.Snapshot()
		var err error
		switch id {
		case registration.InputMale, registration.InputFemale:
			// A radio only fires when it becomes checked; the group
			// unchecks its sibling.
			if gender != id || current.Checked[id] {
				continue
			}
			err = sess.Input(id, "", true)
		case registration.InputTerms:
			want := req.Bool(id)
			if current.Checked[id] == want {
				continue
			}
			err = sess.Input(id, "", want)
		default:
			value := req.Input(id)
			if current.Values[id] == value {
				continue
			}
			err = sess.Input(id, value, false)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// session returns the visitor's session, starting one when the cookie is
// missing or stale. The cookie is re-issued on every request so it expires
// with the server-side idle timeout, not a fixed time after creation.
func (c *RegistrationController) session(w http.ResponseWriter, r *http.Request) *session.Session {
	sess, ok := c.Sessions.Get(c.Request(r).Cookie(c.Cookie))
	if !ok {
		sess = c.Sessions.Create()
	}
	c.Response(w).SetCookie(c.Cookie, sess.ID.String(), c.CookieTTL, c.SecureCookie)
	return sess
}

func invalidFields(s registration.Status) []string {
	var out []string
	for _, k := range registration.Keys {
		if !s[k] {
			out = append(out, string(k))
		}
	}
	return out
}
