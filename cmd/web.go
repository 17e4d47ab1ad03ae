/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/flamego/csrf"
	"github.com/flamego/flamego"
	"github.com/flamego/session"
	"github.com/flamego/template"
	"github.com/google/uuid"
	"github.com/urfave/cli/v3"

	"github.com/renatora1026-bit/Calculadora-renal/routes"
	"github.com/renatora1026-bit/Calculadora-renal/static"
	"github.com/renatora1026-bit/Calculadora-renal/templates"
)

const shutdownTimeout = 10 * time.Second

var CmdStart = &cli.Command{
	Name:    "start",
	Aliases: []string{"run"},
	Usage:   "Start the web server",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:  "port",
			Value: "8080",
			Usage: "the web server port",
		},
		&cli.StringFlag{
			Name:    "logo",
			Sources: cli.EnvVars("LOGO_PATH"),
			Value:   "logo.png",
			Usage:   "path to an optional logo image shown on the page",
		},
		&cli.StringFlag{
			Name:    "csrf-secret",
			Sources: cli.EnvVars("CSRF_SECRET"),
			Usage:   "secret used to sign CSRF tokens (random when unset)",
		},
		&cli.StringFlag{
			Name:    "base-url",
			Sources: cli.EnvVars(routes.BaseURLEnvVar),
			Usage:   "public origin used in share links (e.g., https://renal.example.com)",
		},
	},
	Action: start,
}

func start(ctx context.Context, cmd *cli.Command) error {
	port, err := parsePort(cmd.String("port"))
	if err != nil {
		return err
	}

	if baseURL := strings.TrimSpace(cmd.String("base-url")); baseURL != "" {
		// Set BASE_URL for the routes package
		os.Setenv(routes.BaseURLEnvVar, baseURL)
	}

	csrfSecret := strings.TrimSpace(cmd.String("csrf-secret"))
	if csrfSecret == "" {
		appLogger.Warn("CSRF_SECRET not set, using a random secret for this process")
		csrfSecret = uuid.NewString()
	}

	logo := loadOptionalLogo(cmd.String("logo"))

	f, err := newWebApp(csrfSecret, logo)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:         fmt.Sprintf("0.0.0.0:%d", port),
		Handler:      f,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		ErrorLog:     requestStdLogger,
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		webLogger.Info("starting web server", "port", port)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("web server failed: %w", err)
	case <-ctx.Done():
	}

	webLogger.Info("shutting down web server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shut down web server: %w", err)
	}

	return nil
}

// newWebApp wires middleware and routes.
func newWebApp(csrfSecret string, logo *routes.Logo) (*flamego.Flame, error) {
	f := flamego.New()
	f.Use(flamego.Recovery())
	f.Use(routes.RequestLogger)

	fs, err := template.EmbedFS(templates.Templates, ".", []string{".html"})
	if err != nil {
		return nil, fmt.Errorf("failed to load templates: %w", err)
	}

	f.Use(session.Sessioner())
	f.Use(csrf.Csrfer(csrf.Options{
		Secret: csrfSecret,
	}))
	f.Use(template.Templater(template.Options{
		FileSystem: fs,
	}))
	f.Use(flamego.Static(flamego.StaticOptions{
		FileSystem: http.FS(static.Static),
	}))
	f.Use(routes.NoCacheHeaders())
	f.Use(routes.SiteTitleInjector())
	f.Use(routes.CSRFInjector())
	f.Use(routes.FlashInjector())
	f.Use(routes.LogoInjector(logo))

	configureEmptyNotFoundHandler(f)

	f.Get("/", routes.Calculator)
	f.Post("/", csrf.Validate, routes.Calculate)
	f.Get("/result", routes.SharedResult)
	f.Get("/about", routes.About)
	f.Get("/logo", routes.ServeLogo(logo))

	f.Group("/api", func() {
		f.Get("/bsa", routes.APIBodySurfaceArea)
		f.Post("/clearance", routes.APIClearance)
	})

	return f, nil
}

func configureEmptyNotFoundHandler(f *flamego.Flame) {
	f.NotFound(func(c flamego.Context) {
		c.ResponseWriter().WriteHeader(http.StatusNotFound)
	})
}

// loadOptionalLogo never fails: a missing logo only produces a warning.
func loadOptionalLogo(path string) *routes.Logo {
	path = strings.TrimSpace(path)
	if path == "" {
		appLogger.Warn("no logo configured")
		return nil
	}

	logo, err := routes.LoadLogo(path)
	if err != nil {
		appLogger.Warn("logo not loaded, continuing without it", "path", path, "error", err)
		return nil
	}

	return logo
}

func parsePort(raw string) (int, error) {
	port, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || port < 1 || port > 65535 {
		return 0, fmt.Errorf("%w: %q", errInvalidPort, raw)
	}

	return port, nil
}
