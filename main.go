package main

import (
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/danielhkuo/horizon-bay/cliparse"
	"github.com/danielhkuo/horizon-bay/middleware"
	"github.com/danielhkuo/horizon-bay/router"
	"github.com/danielhkuo/horizon-bay/seed"
	"github.com/danielhkuo/horizon-bay/store"
)

func main() {
	// Load .env if present; flags and real env still win
	_ = godotenv.Load()

	// Parse configuration
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(1)
	}

	// Load seed collections
	var collections seed.Collections
	if cfg.SeedPath != "" {
		collections, err = seed.LoadFile(cfg.SeedPath)
	} else {
		collections, err = seed.Default()
	}
	if err != nil {
		slog.Error("seed load failed", "error", err)
		os.Exit(1)
	}
	slog.Info("Seed data ready",
		"deals", len(collections.Deals),
		"members", len(collections.Members),
		"events", len(collections.Events),
		"portfolio", len(collections.Portfolio),
	)

	// Seed the state store. Done exactly once per process.
	st := store.New(collections)

	// Create router
	mux := router.NewRouter(st)

	// Create server
	server := http.Server{
		Handler: middleware.CORS(cfg.AllowedOrigin, mux),
		Addr:    ":" + strconv.Itoa(cfg.Port),
	}

	// signal.Notify requires the channel to be buffered
	ctrlc := make(chan os.Signal, 1)
	signal.Notify(ctrlc, os.Interrupt, syscall.SIGTERM)
	go func() {
		// Wait for Ctrl-C signal
		<-ctrlc
		server.Close()
	}()

	// Start server
	slog.Info("Listening", "port", cfg.Port)
	err = server.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		slog.Error("Server closed", "error", err)
	} else {
		slog.Info("Server closed", "error", err)
	}
}
