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

	"petcare-hub/internal/adapters/auth/identity"
	"petcare-hub/internal/adapters/seed"
	"petcare-hub/internal/adapters/storage/sqlstore"
	"petcare-hub/internal/config"
	"petcare-hub/internal/platform/logger"
	"petcare-hub/internal/ports/auth"
	"petcare-hub/internal/router"

	"github.com/spf13/cobra"
)

const shutdownTimeout = 10 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API",
	Long: `Arranca la API HTTP.

Storage según database.driver: memory (default), pgx (Postgres) o sqlite.
Sin identity.base_url corre en modo dev: la identidad viene del header X-Debug-User-ID.`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().Int("port", 0, "listen port (overrides server.port / PORT)")
	serveCmd.Flags().String("db-driver", "", "memory | pgx | sqlite")
	serveCmd.Flags().String("db-dsn", "", "database DSN (overrides DB_DSN)")
	serveCmd.Flags().String("catalog", "", "catalog yaml (default: embedded)")

	_ = v.BindPFlag("server.port", serveCmd.Flags().Lookup("port"))
	_ = v.BindPFlag("database.driver", serveCmd.Flags().Lookup("db-driver"))
	_ = v.BindPFlag("database.dsn", serveCmd.Flags().Lookup("db-dsn"))
	_ = v.BindPFlag("catalog.path", serveCmd.Flags().Lookup("catalog"))

	// "petcare" a secas acepta los mismos flags que "petcare serve".
	rootCmd.Flags().AddFlagSet(serveCmd.Flags())
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(v, configFile)
	if err != nil {
		return err
	}

	log := logger.New(logger.Options{
		Level:  logger.ParseLevel(cfg.Log.Level),
		Format: logger.ParseFormat(cfg.Log.Format),
		App:    cfg.AppName,
	})

	store, err := openStore(cmd.Context(), cfg.Database, log)
	if err != nil {
		return err
	}
	if store != nil {
		defer store.Close()
	}

	var catalog *seed.Catalog
	if cfg.CatalogPath != "" {
		c, err := seed.Load(cfg.CatalogPath)
		if err != nil {
			return err
		}
		catalog = &c
	}

	// nil => modo dev (X-Debug-User-ID)
	var verifier auth.AuthVerifier
	if cfg.Identity.BaseURL != "" {
		client, err := identity.NewClient(identity.Config{
			BaseURL:      cfg.Identity.BaseURL,
			APIKey:       cfg.Identity.APIKey,
			APIKeyHeader: cfg.Identity.APIKeyHeader,
		})
		if err != nil {
			return fmt.Errorf("identity client: %w", err)
		}
		defer client.CloseIdleConnections()
		verifier = identity.NewVerifier(client)
	} else {
		log.Warn("identity provider not configured, accepting X-Debug-User-ID", nil)
	}

	loc, err := cfg.Location()
	if err != nil {
		return err
	}

	handler, err := router.NewRouter(router.Options{
		Logger:       log,
		AuthVerifier: verifier,
		Store:        store,
		Catalog:      catalog,
		Location:     loc,
		UpcomingDays: cfg.Health.UpcomingDays,
	})
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		log.Info("starting server", map[string]any{"addr": srv.Addr, "driver": cfg.Database.Driver})
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Info("shutting down", nil)
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}

func openStore(ctx context.Context, db config.Database, log logger.Logger) (*sqlstore.Store, error) {
	if db.Driver == config.DriverMemory {
		log.Info("using in-memory storage", nil)
		return nil, nil
	}

	store, err := sqlstore.Open(db.Driver, db.DSN)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()
	if err := store.Ping(ctx); err != nil {
		_ = store.Close()
		return nil, fmt.Errorf("ping %s: %w", db.Driver, err)
	}
	if err := store.Migrate(ctx); err != nil {
		_ = store.Close()
		return nil, err
	}
	log.Info("storage ready", map[string]any{"driver": store.Driver()})
	return store, nil
}
