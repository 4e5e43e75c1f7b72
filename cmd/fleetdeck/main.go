package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/fleetdeck/fleetdeck/internal/app"
)

func main() {
	os.Exit(run())
}

func run() int {
	configPath := flag.String("config", "", "override config path (optional)")
	apiBind := flag.String("api", "", "backend host:port, overrides config (optional)")
	flag.Parse()

	closeLog := setupLogging()
	defer closeLog()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	opts := app.Options{
		ConfigPath: *configPath,
		APIBind:    *apiBind,
	}

	if err := app.Run(ctx, opts); err != nil {
		fmt.Fprintf(os.Stderr, "fleetdeck: %v\n", err)
		return 1
	}
	return 0
}

// setupLogging routes the standard logger to a file so background
// refresh failures never write over the live screen.
func setupLogging() func() {
	home, err := os.UserHomeDir()
	if err != nil {
		log.SetOutput(io.Discard)
		return func() {}
	}
	dir := filepath.Join(home, ".local", "state", "fleetdeck")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		log.SetOutput(io.Discard)
		return func() {}
	}
	file, err := os.OpenFile(filepath.Join(dir, "fleetdeck.log"), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		log.SetOutput(io.Discard)
		return func() {}
	}
	log.SetOutput(file)
	return func() { file.Close() }
}
