package http

import (
	"encoding/json"
	"html/template"
	"io/fs"
	"net/http"
	"time"

	"github.com/km-arc/go-registration/framework/http/validation"
)

// ── Response ─────────────────────────────────────────────────────────────────

// Response wraps http.ResponseWriter with JSON, redirect and cookie helpers.
type Response struct {
	w http.ResponseWriter
}

// NewResponse wraps a ResponseWriter.
func NewResponse(w http.ResponseWriter) *Response {
	return &Response{w: w}
}

// ── JSON responses ────────────────────────────────────────────────────────────

// JSON sends a JSON response.
//
//	res.JSON(http.StatusOK, map[string]any{"message": "ok"})
func (res *Response) JSON(status int, data any) {
	res.w.Header().Set("Content-Type", "application/json")
	res.w.WriteHeader(status)
	_ = json.NewEncoder(res.w).Encode(data)
}

// Success sends 200 JSON: {"data": v}
func (res *Response) Success(v any) {
	res.JSON(http.StatusOK, envelope{"data": v})
}

// Error sends a JSON error response.
//
//	res.Error(http.StatusNotFound, "Resource not found")
func (res *Response) Error(status int, message string) {
	res.JSON(status, envelope{"message": message})
}

// NotFound sends 404.
func (res *Response) NotFound(message ...string) {
	msg := first(message, "Not found.")
	res.JSON(http.StatusNotFound, envelope{"message": msg})
}

// ValidationError sends 422 with the error bag and any extra top-level keys.
//
//	res.ValidationError(errs, map[string]any{"submit_disabled": true})
func (res *Response) ValidationError(errors *validation.Errors, extra map[string]any) {
	body := envelope{"errors": errors.Snapshot()}
	for k, v := range extra {
		body[k] = v
	}
	res.JSON(http.StatusUnprocessableEntity, body)
}

// ── Redirects ────────────────────────────────────────────────────────────────

// RedirectTo performs a 303 redirect, so a POST is followed by a GET.
func (res *Response) RedirectTo(url string) {
	res.w.Header().Set("Location", url)
	res.w.WriteHeader(http.StatusSeeOther)
}

// ── Cookies ──────────────────────────────────────────────────────────────────

// SetCookie sets an HTTP-only, same-site cookie scoped to the whole site.
func (res *Response) SetCookie(name, value string, maxAge time.Duration, secure bool) {
	http.SetCookie(res.w, &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		MaxAge:   int(maxAge.Seconds()),
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// ── View / Templates ─────────────────────────────────────────────────────────

// ViewEngine renders html/template files from a filesystem.
type ViewEngine struct {
	fsys fs.FS
	ext  string
}

// NewViewEngine creates a ViewEngine over fsys; ext is the file extension
// (e.g. ".html").
func NewViewEngine(fsys fs.FS, ext string) *ViewEngine {
	return &ViewEngine{fsys: fsys, ext: ext}
}

// View renders a template file with data.
//
//	engine.View(w, "registration", data)
func (ve *ViewEngine) View(w http.ResponseWriter, name string, data any) {
	tmpl, err := template.ParseFS(ve.fsys, name+ve.ext)
	if err != nil {
		http.Error(w, "Template not found: "+name, http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := tmpl.Execute(w, data); err != nil {
		http.Error(w, "Template render error", http.StatusInternalServerError)
	}
}

// ── Helpers ──────────────────────────────────────────────────────────────────

type envelope map[string]any

func first(ss []string, fallback string) string {
	if len(ss) > 0 && ss[0] != "" {
		return ss[0]
	}
	return fallback
}
