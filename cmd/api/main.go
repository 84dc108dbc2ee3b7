// @title Animal Training API
// @version 2.0
// @description Registro de usuarios, animales y sesiones de entrenamiento.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"animal-training-api/internal/adapters/auth/jwtauth"
	"animal-training-api/internal/adapters/storage"
	"animal-training-api/internal/config"
	"animal-training-api/internal/platform/logger"
	"animal-training-api/internal/router"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "animal-training-api: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	log, err := logger.New(logger.Options{
		Level:      logger.ParseLevel(cfg.Log.Level),
		Format:     logger.ParseFormat(cfg.Log.Format),
		App:        cfg.Log.App,
		Production: cfg.IsProduction(),
	})
	if err != nil {
		return fmt.Errorf("build logger: %w", err)
	}
	if zl, ok := log.(*logger.ZapLogger); ok {
		defer func() { _ = zl.Sync() }()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	repos, err := storage.Open(ctx, cfg.Database.URI, cfg.Database.ConnectTimeout)
	if err != nil {
		log.Error("storage open failed", map[string]any{"err": err})
		return err
	}
	log.Info("storage ready", map[string]any{"backend": repos.Backend})

	tokens, err := jwtauth.New(cfg.Auth.JWTSecret)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr: cfg.Addr(),
		Handler: router.NewRouter(router.Options{
			Tokens: tokens,
			Repos:  repos,
			Logger: log,
		}),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("starting server", map[string]any{"addr": srv.Addr, "env": cfg.Server.Environment})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			log.Error("server error", map[string]any{"err": err})
			_ = repos.Close(context.Background())
			return err
		}
	case <-ctx.Done():
		log.Info("shutting down", nil)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("graceful shutdown failed", map[string]any{"err": err})
	}
	if err := repos.Close(shutdownCtx); err != nil {
		log.Error("storage close failed", map[string]any{"err": err})
	}
	return nil
}
