// Package config loads fleetdeck's TOML configuration.
//
// The file lives at ~/.config/fleetdeck/config.toml and is optional;
// a missing file yields defaults (local backend on 127.0.0.1:5000,
// 10 second request timeout). Recognized keys:
//
//	api_bind        = "127.0.0.1:5000"
//	timeout_seconds = 10
package config
