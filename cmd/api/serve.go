package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"vetcare/internal/adapter/http/routes"
	"vetcare/internal/config"
	"vetcare/internal/domain/lifecycle"
	"vetcare/internal/infrastructure/logger"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

const (
	surfacePrimary   = "primary"
	surfaceCompanion = "companion"
	surfaceAll       = "all"

	shutdownTimeout = 10 * time.Second
)

func serveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:       "serve [primary|companion|all]",
		Short:     "Start the API surfaces",
		Long:      "Starts the primary surface (bookings, invoices) and/or the companion surface (appointments, pets). Defaults to both.",
		Args:      cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{surfacePrimary, surfaceCompanion, surfaceAll},
		RunE: func(cmd *cobra.Command, args []string) error {
			surface := surfaceAll
			if len(args) == 1 {
				surface = args[0]
			}

			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("strict-transitions") {
				cfg.StrictTransitions, _ = cmd.Flags().GetBool("strict-transitions")
			}
			return runServer(cmd.Context(), cfg, surface)
		},
	}
	cmd.Flags().Bool("strict-transitions", false, "Only allow status changes along the lifecycle graph (overrides STRICT_TRANSITIONS)")
	return cmd
}

func runServer(ctx context.Context, cfg *config.Config, surface string) error {
	log := logger.New(cfg.Env)
	if !cfg.IsDev() {
		gin.SetMode(gin.ReleaseMode)
	}

	if ctx == nil {
		ctx = context.Background()
	}
	stores, err := routes.OpenStores(ctx, cfg)
	if err != nil {
		log.Error().Err(err).Msg("failed to open entity store")
		return err
	}

	engine := lifecycle.NewEngine(lifecycle.ModeFor(cfg.StrictTransitions))
	h := routes.NewHandlers(stores, engine, log)
	opts := routes.Options{
		Logger:   log,
		Timeout:  cfg.RequestTimeout,
		Verifier: routes.NewVerifier(cfg),
	}

	var servers []*http.Server
	if surface == surfacePrimary || surface == surfaceAll {
		servers = append(servers, &http.Server{
			Addr:              fmt.Sprintf(":%d", cfg.PrimaryPort),
			Handler:           routes.NewPrimaryRouter(opts, h),
			ReadHeaderTimeout: 5 * time.Second,
		})
	}
	if surface == surfaceCompanion || surface == surfaceAll {
		servers = append(servers, &http.Server{
			Addr:              fmt.Sprintf(":%d", cfg.CompanionPort),
			Handler:           routes.NewCompanionRouter(opts, h),
			ReadHeaderTimeout: 5 * time.Second,
		})
	}

	log.Info().
		Str("store", cfg.StoreDriver).
		Str("transitions", string(engine.Mode())).
		Str("auth", cfg.AuthMode).
		Msg("configuration loaded")

	errCh := make(chan error, len(servers))
	for _, srv := range servers {
		go func(srv *http.Server) {
			log.Info().Str("addr", srv.Addr).Msg("starting server")
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				errCh <- fmt.Errorf("listen %s: %w", srv.Addr, err)
			}
		}(srv)
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	var runErr error
	select {
	case <-quit:
	case runErr = <-errCh:
		log.Error().Err(runErr).Msg("server error")
	}

	log.Info().Msg("shutting down servers")
	shutdown(servers, log)
	log.Info().Msg("servers stopped")
	return runErr
}

func shutdown(servers []*http.Server, log zerolog.Logger) {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	for _, srv := range servers {
		if err := srv.Shutdown(ctx); err != nil {
			log.Error().Err(err).Str("addr", srv.Addr).Msg("server shutdown failed")
		}
	}
}
