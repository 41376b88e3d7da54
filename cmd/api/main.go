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

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/clinic-scheduler/internal/audit"
	"github.com/BruksfildServices01/clinic-scheduler/internal/config"
	dbpkg "github.com/BruksfildServices01/clinic-scheduler/internal/db"
	"github.com/BruksfildServices01/clinic-scheduler/internal/domain/queue"
	"github.com/BruksfildServices01/clinic-scheduler/internal/infra/blob"
	"github.com/BruksfildServices01/clinic-scheduler/internal/infra/cache"
	"github.com/BruksfildServices01/clinic-scheduler/internal/routes"
)

// set with -ldflags "-X main.version=..."
var version = "dev"

func main() {
	rootCmd := &cobra.Command{
		Use:          "clinic",
		Short:        "Clinic scheduling API",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer()
		},
	}

	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(migrateCmd())
	rootCmd.AddCommand(seedCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the API server (default)",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer()
		},
	}
}

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the database schema",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Load()
			logger := newLogger(cfg)

			return withDB(cfg, func(gdb *gorm.DB) error {
				res := dbpkg.Migrate(gdb)
				if !res.OK() {
					return fmt.Errorf("migration failed: %s", res.Error)
				}
				logger.Info().Str("dialect", res.Dialect).Strs("tables", res.Tables).Msg("migration complete")
				return nil
			})
		},
	}
}

func seedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Insert default settings and demo users",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Load()
			logger := newLogger(cfg)

			return withDB(cfg, func(gdb *gorm.DB) error {
				if res := dbpkg.Migrate(gdb); !res.OK() {
					return fmt.Errorf("migration failed: %s", res.Error)
				}
				seeded, err := dbpkg.Seed(cmd.Context(), gdb)
				if err != nil {
					return err
				}
				logger.Info().Bool("inserted_demo_users", seeded).Msg("seed complete")
				return nil
			})
		},
	}
}

func withDB(cfg *config.Config, fn func(*gorm.DB) error) error {
	gdb, err := dbpkg.NewDB(cfg)
	if err != nil {
		return err
	}
	defer dbpkg.Close(gdb)
	return fn(gdb)
}

func newLogger(cfg *config.Config) zerolog.Logger {
	if cfg.IsDev() {
		return zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}).
			With().Timestamp().Logger()
	}
	return zerolog.New(os.Stdout).With().Timestamp().Logger()
}

func runServer() error {
	cfg := config.Load()
	logger := newLogger(cfg)

	if !cfg.IsDev() {
		gin.SetMode(gin.ReleaseMode)
	}

	gdb, err := dbpkg.NewDB(cfg)
	if err != nil {
		return err
	}
	defer dbpkg.Close(gdb)

	// A failed migration keeps the server up so /api/health can report it.
	migration := dbpkg.Migrate(gdb)
	if migration.OK() {
		if _, err := dbpkg.Seed(context.Background(), gdb); err != nil {
			logger.Error().Err(err).Msg("seed failed")
		}
	} else {
		logger.Error().Str("error", migration.Error).Msg("migration failed")
	}

	blobs, err := newBlobStore(cfg)
	if err != nil {
		return err
	}

	queueCache, closeCache, err := newQueueCache(cfg, logger)
	if err != nil {
		return err
	}
	defer closeCache()

	dispatcher := audit.NewDispatcher(audit.New(gdb), logger)
	defer dispatcher.Close()

	r := gin.New()
	routes.RegisterRoutes(r, gdb, cfg, routes.Deps{
		Blobs:      blobs,
		QueueCache: queueCache,
		Audit:      dispatcher,
		Logger:     logger,
		Migration:  migration,
		Version:    version,
	})

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logger.Info().
			Str("addr", cfg.Addr()).
			Str("db", cfg.Driver()).
			Str("version", version).
			Msg("server running")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server: %w", err)
		}
	case <-ctx.Done():
	}

	logger.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

func newBlobStore(cfg *config.Config) (blob.Store, error) {
	if cfg.UsesS3() {
		return blob.NewS3Store(blob.S3Config{
			Bucket:          cfg.S3Bucket,
			Region:          cfg.S3Region,
			Endpoint:        cfg.S3Endpoint,
			AccessKeyID:     cfg.S3AccessKeyID,
			SecretAccessKey: cfg.S3SecretAccessKey,
		}), nil
	}
	return blob.NewLocalStore(cfg.UploadDir)
}

func newQueueCache(cfg *config.Config, logger zerolog.Logger) (queue.Cache, func(), error) {
	if cfg.RedisURL == "" {
		return queue.NopCache{}, func() {}, nil
	}

	client, err := cache.NewRedisClient(cfg.RedisURL)
	if err != nil {
		return nil, nil, fmt.Errorf("redis: %w", err)
	}

	ttl := time.Duration(cfg.QueueCacheTTLSec) * time.Second
	return cache.NewQueueRedisCache(client, ttl, logger), func() { _ = client.Close() }, nil
}
