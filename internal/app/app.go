package app

import (
	"context"
	"fmt"
	"log"

	"github.com/fleetdeck/fleetdeck/internal/config"
	"github.com/fleetdeck/fleetdeck/internal/fleet"
	"github.com/fleetdeck/fleetdeck/internal/prefs"
	"github.com/fleetdeck/fleetdeck/internal/reload"
	"github.com/fleetdeck/fleetdeck/internal/state"
	"github.com/fleetdeck/fleetdeck/internal/ui"
)

// Options carries command-line overrides into the application.
type Options struct {
	ConfigPath string
	PrefsPath  string
	APIBind    string
}

// Run wires up the client, store, and interface, performs the initial
// data load, and blocks until the interface exits.
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if opts.APIBind != "" {
		cfg.APIBind = opts.APIBind
	}

	userPrefs := prefs.Load(opts.PrefsPath)

	client, err := fleet.NewClient(cfg.APIBind)
	if err != nil {
		return fmt.Errorf("creating API client: %w", err)
	}
	client.SetTimeout(cfg.Timeout)

	store := &state.Store{}
	refresher := reload.NewRefresher(store, client)

	// The interface starts even when the backend is down; the failure
	// lands in the store and shows up in the header.
	if err := refresher.All(ctx); err != nil {
		log.Printf("initial load failed: %v", err)
	}

	return ui.Run(ui.Options{
		Context:   ctx,
		API:       client,
		Store:     store,
		Refresher: refresher,
		APIBind:   cfg.APIBind,
		ThemeName: userPrefs.Theme,
		PrefsPath: opts.PrefsPath,
	})
}
