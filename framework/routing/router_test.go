package routing_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/km-arc/go-registration/framework/routing"
)

// ── helpers ──────────────────────────────────────────────────────────────────

func okHandler(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

func do(t *testing.T, router *routing.Router, method, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

// ── HTTP verbs ────────────────────────────────────────────────────────────────

func TestRouter_Get(t *testing.T) {
	r := routing.New(zap.NewNop())
	r.Get("/hello", okHandler)

	rr := do(t, r, http.MethodGet, "/hello")
	if rr.Code != http.StatusOK {
		t.Errorf("GET /hello: got %d want 200", rr.Code)
	}
}

func TestRouter_Post(t *testing.T) {
	r := routing.New(zap.NewNop())
	r.Post("/submit", okHandler)

	rr := do(t, r, http.MethodPost, "/submit")
	if rr.Code != http.StatusOK {
		t.Errorf("POST /submit: got %d want 200", rr.Code)
	}
}

func TestRouter_MethodNotAllowed(t *testing.T) {
	r := routing.New(zap.NewNop())
	r.Post("/submit", okHandler)

	rr := do(t, r, http.MethodGet, "/submit")
	if rr.Code != http.StatusMethodNotAllowed {
		t.Errorf("GET /submit: got %d want 405", rr.Code)
	}
}

func TestRouter_NotFound(t *testing.T) {
	r := routing.New(zap.NewNop())
	rr := do(t, r, http.MethodGet, "/nope")
	if rr.Code != http.StatusNotFound {
		t.Errorf("got %d want 404", rr.Code)
	}
}

// ── Prefixes ─────────────────────────────────────────────────────────

func TestRouter_PrefixKeepsURLParams(t *testing.T) {
	r := routing.New(zap.NewNop())
	var got string
	r.Prefix("/fields", func(fields *routing.Router) {
		fields.Post("/{control}", func(w http.ResponseWriter, req *http.Request) {
			got = chi.URLParam(req, "control")
		})
	})

	do(t, r, http.MethodPost, "/fields/email")
	if got != "email" {
		t.Errorf("URLParam: got %q want email", got)
	}
}

func TestRouter_Prefix(t *testing.T) {
	r := routing.New(zap.NewNop())
	r.Prefix("/api", func(api *routing.Router) {
		api.Get("/state", okHandler)
	})

	if rr := do(t, r, http.MethodGet, "/api/state"); rr.Code != http.StatusOK {
		t.Errorf("GET /api/state: got %d want 200", rr.Code)
	}
}

func TestRouter_GroupMiddleware(t *testing.T) {
	r := routing.New(zap.NewNop())
	r.Group(func(g *routing.Router) {
		g.Middleware(func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
				w.Header().Set("X-Group", "yes")
				next.ServeHTTP(w, req)
			})
		})
		g.Get("/inside", okHandler)
	})
	r.Get("/outside", okHandler)

	if rr := do(t, r, http.MethodGet, "/inside"); rr.Header().Get("X-Group") != "yes" {
		t.Error("group middleware should apply inside the group")
	}
	if rr := do(t, r, http.MethodGet, "/outside"); rr.Header().Get("X-Group") != "" {
		t.Error("group middleware should not leak outside the group")
	}
}

// ── Middleware ────────────────────────────────────────────────────────────────

func TestRouter_RecoversPanics(t *testing.T) {
	r := routing.New(zap.NewNop())
	r.Get("/boom", func(w http.ResponseWriter, req *http.Request) { panic("boom") })

	rr := do(t, r, http.MethodGet, "/boom")
	if rr.Code != http.StatusInternalServerError {
		t.Errorf("got %d want 500", rr.Code)
	}
}

func TestRequestLogger_LogsStatus(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	r := routing.New(zap.New(core))
	r.Get("/hello", okHandler)

	do(t, r, http.MethodGet, "/hello")

	entries := logs.FilterMessage("request").All()
	if len(entries) != 1 {
		t.Fatalf("log entries: got %d want 1", len(entries))
	}
	fields := entries[0].ContextMap()
	if fields["status"] != int64(200) {
		t.Errorf("status field: got %v want 200", fields["status"])
	}
	if fields["path"] != "/hello" {
		t.Errorf("path field: got %v", fields["path"])
	}
}
