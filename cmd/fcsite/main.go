// Copyright (c) 2026 Friendship Circle Brooklyn
// SPDX-License-Identifier: GPL-3.0-or-later

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"

	"github.com/fcbrooklyn/fcsite/internal/airtable"
	"github.com/fcbrooklyn/fcsite/internal/cache"
	"github.com/fcbrooklyn/fcsite/internal/config"
	"github.com/fcbrooklyn/fcsite/internal/content"
	"github.com/fcbrooklyn/fcsite/internal/handler"
	"github.com/fcbrooklyn/fcsite/internal/logging"
	"github.com/fcbrooklyn/fcsite/internal/middleware"
	"github.com/fcbrooklyn/fcsite/internal/render"
	"github.com/fcbrooklyn/fcsite/internal/scheduler"
	"github.com/fcbrooklyn/fcsite/internal/version"
	"github.com/fcbrooklyn/fcsite/web"
)

// Version information - injected at build time via ldflags
var (
	appVersion   = "dev"
	appGitCommit = "unknown"
	appBuildTime = "unknown"
)

func main() {
	var (
		showVersion bool
		showHelp    bool
	)
	flag.BoolVar(&showVersion, "version", false, "print version information and exit")
	flag.BoolVar(&showVersion, "v", false, "print version information and exit (shorthand)")
	flag.BoolVar(&showHelp, "help", false, "print usage and exit")
	flag.BoolVar(&showHelp, "h", false, "print usage and exit (shorthand)")
	flag.Parse()

	info := version.Info{Version: appVersion, GitCommit: appGitCommit, BuildTime: appBuildTime}

	if showVersion {
		fmt.Printf("fcsite %s (commit %s, built %s)\n", info.Version, info.GitCommit, info.BuildTime)
		return
	}
	if showHelp {
		flag.Usage()
		return
	}

	if err := run(info); err != nil {
		slog.Error("fatal", "error", err)
		os.Exit(1)
	}
}

func run(info version.Info) error {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logger, recent := logging.Setup(logging.ParseLevel(cfg.LogLevel), cfg.IsDevelopment())
	logger.Info("starting fcsite",
		"version", info.Version,
		"env", cfg.Env,
		"addr", cfg.ServerAddr(),
		"store_configured", cfg.AirtableConfigured(),
	)

	backend, err := cache.New(cache.Config{
		RedisURL:   cfg.RedisURL,
		Prefix:     cfg.CachePrefix,
		DefaultTTL: cfg.RevalidateTTL(),
		MaxItems:   cfg.CacheMaxSize,
	})
	if err != nil {
		return fmt.Errorf("creating cache: %w", err)
	}
	defer backend.Close()

	var client *airtable.Client
	if cfg.AirtableConfigured() {
		client = airtable.New(cfg.AirtableAPIKey, cfg.AirtableBaseID)
	} else {
		logger.Warn("Airtable not configured, serving built-in content")
	}

	tables := content.Tables{
		Settings:     cfg.SettingsTable,
		Events:       cfg.EventsTable,
		Programs:     cfg.ProgramsTable,
		Contacts:     cfg.ContactsTable,
		Gallery:      cfg.GalleryTable,
		Testimonials: cfg.TestimonialsTable,
		Stats:        cfg.StatsTable,
		Involved:     cfg.InvolvedTable,
		Donate:       cfg.DonateTable,
	}
	gateway := content.New(client, tables, content.Builtin(), logger)
	cached := content.NewCached(gateway, backend, cfg.RevalidateTTL(), logger)

	// Warm the cache before accepting traffic so the first visitor does
	// not pay for nine store reads.
	warmCtx, cancelWarm := context.WithTimeout(context.Background(), 30*time.Second)
	cached.Refresh(warmCtx)
	cancelWarm()

	refresher := scheduler.New(cached, cfg.RevalidateTTL(), logger)
	if err := refresher.Start(); err != nil {
		return fmt.Errorf("starting scheduler: %w", err)
	}
	defer refresher.Stop()

	renderer, err := render.New(render.Config{
		TemplatesFS: web.Templates(),
		IsDev:       cfg.IsDevelopment(),
	})
	if err != nil {
		return fmt.Errorf("creating renderer: %w", err)
	}

	frontend := handler.NewFrontend(cached, renderer, logger)
	health := handler.NewHealth(backend, recent, info)

	limiter := middleware.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst)

	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)
	r.Use(middleware.RequestLogger(logger))
	r.Use(middleware.SecurityHeaders(middleware.DefaultSecurityHeadersConfig(cfg.IsDevelopment())))
	r.Use(middleware.Compress())
	r.Use(limiter.Handler)

	r.Get("/", frontend.Home)
	r.Get("/events", frontend.Events)
	r.Get("/donate", frontend.Donate)
	r.Get("/contact", frontend.Contact)
	r.Get("/get-involved", frontend.GetInvolved)
	r.Method(http.MethodGet, "/healthz", health)
	r.Handle("/static/*", http.StripPrefix("/static/", http.FileServerFS(web.Static())))

	srv := &http.Server{
		Addr:              cfg.ServerAddr(),
		Handler:           r,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    1 << 20,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return fmt.Errorf("server error: %w", err)
	case sig := <-stop:
		logger.Info("shutting down", "signal", sig.String())
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}

	logger.Info("server stopped")
	return nil
}
