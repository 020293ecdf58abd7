package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/voicedoc/clinic-api/internal/audit"
	"github.com/voicedoc/clinic-api/internal/config"
	dbpkg "github.com/voicedoc/clinic-api/internal/db"
	domain "github.com/voicedoc/clinic-api/internal/domain/reservation"
	"github.com/voicedoc/clinic-api/internal/infra/cache"
	"github.com/voicedoc/clinic-api/internal/infra/storage"
	"github.com/voicedoc/clinic-api/internal/routes"
)

func main() {
	// A missing .env is fine; the environment may be set already.
	_ = godotenv.Load()

	rootCmd := &cobra.Command{
		Use:   "clinic-api",
		Short: "Clinic reservation API server",
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
		Short: "Start the API server",
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
			logger, cfg, err := bootstrap()
			if err != nil {
				return err
			}
			db, err := dbpkg.NewDB(cfg)
			if err != nil {
				return err
			}
			if err := dbpkg.Migrate(db); err != nil {
				return err
			}
			logger.Info().Msg("migrations applied")
			return nil
		},
	}
}

func seedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Insert demo hospital, doctors and schedules",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, cfg, err := bootstrap()
			if err != nil {
				return err
			}
			db, err := dbpkg.NewDB(cfg)
			if err != nil {
				return err
			}
			if err := dbpkg.Migrate(db); err != nil {
				return err
			}
			if err := dbpkg.Seed(db, cfg.Timezone); err != nil {
				return err
			}
			logger.Info().Msg("seed data inserted")
			return nil
		},
	}
}

func bootstrap() (zerolog.Logger, *config.Config, error) {
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	cfg, err := config.Load()
	if err != nil {
		logger.Error().Err(err).Msg("failed to load config")
		return logger, nil, err
	}

	if !cfg.IsProduction() {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout}).With().Timestamp().Logger()
	}
	return logger, cfg, nil
}

func runServer() error {
	logger, cfg, err := bootstrap()
	if err != nil {
		return err
	}

	// Error reporting
	if cfg.SentryDSN != "" {
		if err := sentry.Init(sentry.ClientOptions{
			Dsn:         cfg.SentryDSN,
			Environment: cfg.Env,
		}); err != nil {
			logger.Warn().Err(err).Msg("sentry disabled")
		}
		defer sentry.Flush(2 * time.Second)
	}

	// Database
	db, err := dbpkg.NewDB(cfg)
	if err != nil {
		logger.Error().Err(err).Msg("failed to connect to database")
		return err
	}
	if err := dbpkg.Migrate(db); err != nil {
		logger.Error().Err(err).Msg("failed to migrate")
		return err
	}
	logger.Info().Msg("connected to database")

	// Redis
	var rdb *redis.Client
	if cfg.RedisURL != "" {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		rdb, err = cache.NewClient(ctx, cfg.RedisURL)
		cancel()
		if err != nil {
			logger.Error().Err(err).Msg("failed to connect to redis")
			return err
		}
		defer rdb.Close()
	} else {
		logger.Warn().Msg("REDIS_URL not set; signout will not revoke tokens")
	}

	// Object storage
	var images domain.ImageStore
	if cfg.StorageEnabled() {
		images = storage.NewS3Store(cfg)
	} else {
		logger.Warn().Msg("S3_BUCKET not set; image uploads disabled")
	}

	// Audit trail
	dispatcher := audit.NewDispatcher(audit.New(db), cfg.AuditQueueSize, logger)
	defer dispatcher.Close()

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()

	routes.RegisterRoutes(r, routes.Deps{
		DB:     db,
		Config: cfg,
		Logger: logger,
		Audit:  dispatcher,
		Redis:  rdb,
		Images: images,
	})

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info().Str("addr", cfg.Addr()).Msg("server running")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal().Err(err).Msg("server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info().Msg("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error().Err(err).Msg("server shutdown failed")
		return err
	}
	logger.Info().Msg("server stopped")
	return nil
}
