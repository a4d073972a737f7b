package routes

import (
	"net/http"

	"github.com/km-arc/go-registration/app/http/controllers"
	gohttp "github.com/km-arc/go-registration/framework/http"
	"github.com/km-arc/go-registration/framework/routing"
)

// Web mounts the registration form routes. metrics may be nil, in which
// case /metrics is not served.
func Web(r *routing.Router, form *controllers.RegistrationController, metrics http.Handler) {
	// Form state is per visitor and must never be cached.
	r.Group(func(web *routing.Router) {
		web.Middleware(NoStore)

		web.Get("/", form.Show)
		web.Get("/state", form.State)
		web.Post("/submit", form.Submit)
		web.Prefix("/fields", func(fields *routing.Router) {
			fields.Post("/{control}", form.Input)
		})
	})

	if metrics != nil {
		r.Handle("/metrics", metrics)
	}
	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		gohttp.NewResponse(w).Success(map[string]any{"status": "ok"})
	})
}

// NoStore marks responses as uncacheable.
func NoStore(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Cache-Control", "no-store")
		next.ServeHTTP(w, r)
	})
}
