package http

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
)

const maxJSONBody = 1 << 20 // 1 MB

// Request wraps *http.Request with input helpers. A JSON body is decoded
// once and read by the same helpers as form input.
type Request struct {
	raw *http.Request

	body    map[string]any
	decoded bool
}

// NewRequest wraps a standard *http.Request.
func NewRequest(r *http.Request) *Request {
	return &Request{raw: r}
}

// ── Input helpers ────────────────────────────────────────────────────────────

// Input returns a single input value: a top-level key of a JSON body, or
// the query string / form body.
func (req *Request) Input(key string, fallback ...string) string {
	var v string
	if raw, ok := req.jsonBody()[key]; ok {
		v = scalar(raw)
	} else {
		_ = req.raw.ParseForm()
		v = req.raw.FormValue(key)
	}
	if v == "" && len(fallback) > 0 {
		return fallback[0]
	}
	return v
}

// Bool reads an input as a checkbox would submit it: "on", "true", "1" and
// friends are true; absent or unparsable is false.
func (req *Request) Bool(key string) bool {
	v := strings.TrimSpace(req.Input(key))
	if strings.EqualFold(v, "on") || strings.EqualFold(v, "yes") {
		return true
	}
	b, err := strconv.ParseBool(v)
	return err == nil && b
}

// Has returns true if the key is present in the submitted form, even when
// its value is empty.
func (req *Request) Has(key string) bool {
	if _, ok := req.jsonBody()[key]; ok {
		return true
	}
	_ = req.raw.ParseForm()
	_, ok := req.raw.Form[key]
	return ok
}

// jsonBody decodes a JSON object body on first use. The body is put back
// so other readers still see it. Anything but an object yields nil.
func (req *Request) jsonBody() map[string]any {
	if req.decoded {
		return req.body
	}
	req.decoded = true
	if !strings.Contains(req.ContentType(), "application/json") || req.raw.Body == nil {
		return nil
	}

	data, err := io.ReadAll(io.LimitReader(req.raw.Body, maxJSONBody))
	_ = req.raw.Body.Close()
	req.raw.Body = io.NopCloser(bytes.NewReader(data))
	if err != nil {
		return nil
	}
	var body map[string]any
	if json.Unmarshal(data, &body) == nil {
		req.body = body
	}
	return req.body
}

// scalar renders a decoded JSON value the way a form would carry it.
func scalar(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case bool:
		return strconv.FormatBool(t)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	default:
		b, _ := json.Marshal(t)
		return string(b)
	}
}

// RouteParam returns a URL route parameter (chi).
func (req *Request) RouteParam(key string) string {
	return chi.URLParam(req.raw, key)
}

// Header returns a request header value.
func (req *Request) Header(key string) string {
	return req.raw.Header.Get(key)
}

// Cookie returns a cookie value, or "" when absent.
func (req *Request) Cookie(name string) string {
	c, err := req.raw.Cookie(name)
	if err != nil {
		return ""
	}
	return c.Value
}

// ContentType returns the Content-Type header value.
func (req *Request) ContentType() string {
	return req.Header("Content-Type")
}

// IsJSON returns true when the request expects a JSON response.
func (req *Request) IsJSON() bool {
	return strings.Contains(req.Header("Accept"), "application/json") ||
		strings.Contains(req.ContentType(), "application/json")
}
