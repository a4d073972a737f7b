package main

import (
	"context"
	"log"

	appproviders "github.com/km-arc/go-registration/app/providers"
	"github.com/km-arc/go-registration/framework/app"
	"github.com/km-arc/go-registration/framework/config"
	"github.com/km-arc/go-registration/resources/views"
)

func main() {
	cfg, err := config.Load() // loads .env when present
	if err != nil {
		log.Fatal(err)
	}

	application := app.New(cfg, views.FS)

	// ── Application providers ────────────────────────────────────────────────

	application.Register(&appproviders.MetricsServiceProvider{})
	application.Register(&appproviders.SessionServiceProvider{})
	application.Register(&appproviders.RegistrationServiceProvider{})

	if err := application.Run(context.Background()); err != nil {
		log.Fatal(err)
	}
}
