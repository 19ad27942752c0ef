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

	"github.com/joho/godotenv"
	"github.com/urfave/cli/v2"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	"github.com/kailas-cloud/propdex/internal/config"
	dbRedis "github.com/kailas-cloud/propdex/internal/db/redis"
	logpkg "github.com/kailas-cloud/propdex/internal/logger"
	"github.com/kailas-cloud/propdex/internal/metrics"
	firmrepo "github.com/kailas-cloud/propdex/internal/repository/firm"
	"github.com/kailas-cloud/propdex/internal/repository/firmmongo"
	chiTransport "github.com/kailas-cloud/propdex/internal/transport/chi"
	"github.com/kailas-cloud/propdex/internal/usecase/catalog"
	healthuc "github.com/kailas-cloud/propdex/internal/usecase/health"
	"github.com/kailas-cloud/propdex/internal/usecase/seed"
	"github.com/kailas-cloud/propdex/internal/version"
)

func main() {
	app := &cli.App{
		Name:    "propdex",
		Usage:   "prop trading firm catalog API",
		Version: version.String(),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "env",
				Usage:   "config environment (config/<env>.yaml)",
				EnvVars: []string{"ENV"},
				Value:   "local",
			},
			&cli.StringFlag{
				Name:  "dotenv",
				Usage: "optional .env file loaded before config",
				Value: ".env",
			},
		},
		Before: func(c *cli.Context) error {
			// Missing .env is fine; the environment may already be set.
			_ = godotenv.Load(c.String("dotenv"))
			return nil
		},
		Commands: []*cli.Command{
			{
				Name:   "serve",
				Usage:  "seed an empty store and serve the HTTP API",
				Action: serve,
			},
			{
				Name:   "seed",
				Usage:  "seed an empty store and exit",
				Action: seedOnly,
			},
			{
				Name:   "reindex",
				Usage:  "rebuild store indexes from the current definition, keeping documents",
				Action: reindex,
			},
		},
		DefaultCommand: "serve",
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// repository is what both storage backends provide.
type repository interface {
	catalog.Repository
	seed.Repository
	Ping(ctx context.Context) error
}

// runtimeDeps holds the process-wide handles built from config.
type runtimeDeps struct {
	cfg    config.Config
	logger *zap.Logger
	repo   repository
	close  func()
}

func setup(c *cli.Context) (*runtimeDeps, error) {
	env := c.String("env")

	cfg, err := config.Load(env)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	logger, err := logpkg.NewLogger(env, cfg.Logging.Level)
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}

	logger.Info("Starting propdex",
		zap.String("version", version.Version),
		zap.String("commit", version.Commit),
		zap.String("env", env),
		zap.Int("http_port", cfg.HTTP.Port),
		zap.String("db_driver", cfg.Database.Driver),
	)

	repo, closeFn, err := openRepository(c.Context, &cfg, logger)
	if err != nil {
		_ = logger.Sync()
		return nil, err
	}

	return &runtimeDeps{cfg: cfg, logger: logger, repo: repo, close: func() {
		closeFn()
		_ = logger.Sync()
	}}, nil
}

// openRepository connects to the configured store and waits for it to respond.
func openRepository(ctx context.Context, cfg *config.Config, logger *zap.Logger) (repository, func(), error) {
	readiness := time.Duration(cfg.Database.ReadinessTimeout) * time.Second

	switch cfg.Database.Driver {
	case config.DriverRedis:
		store, err := dbRedis.NewStore(dbRedis.Config{
			Addrs:    cfg.Database.Addrs,
			Password: cfg.Database.Password,
		})
		if err != nil {
			return nil, nil, fmt.Errorf("failed to create database store: %w", err)
		}
		if err := store.WaitForReady(ctx, readiness); err != nil {
			store.Close()
			return nil, nil, fmt.Errorf("database not ready: %w", err)
		}
		logger.Info("Connected to redis", zap.Strings("addrs", cfg.Database.Addrs))
		return &redisRepository{Repo: firmrepo.New(store), store: store}, store.Close, nil

	case config.DriverMongo:
		client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.Database.URI))
		if err != nil {
			return nil, nil, fmt.Errorf("failed to connect to mongo: %w", err)
		}
		closeFn := func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = client.Disconnect(shutdownCtx)
		}
		repo := firmmongo.New(client.Database(cfg.Database.Name).Collection(firmmongo.CollectionName))

		pingCtx, cancel := context.WithTimeout(ctx, readiness)
		defer cancel()
		if err := repo.Ping(pingCtx); err != nil {
			closeFn()
			return nil, nil, fmt.Errorf("database not ready: %w", err)
		}
		logger.Info("Connected to mongo", zap.String("database", cfg.Database.Name))
		return repo, closeFn, nil

	default:
		return nil, nil, fmt.Errorf("unknown database driver %q", cfg.Database.Driver)
	}
}

// redisRepository pairs the firm repository with the store's ping.
type redisRepository struct {
	*firmrepo.Repo
	store *dbRedis.Store
}

func (r *redisRepository) Ping(ctx context.Context) error {
	return r.store.Ping(ctx)
}

func runSeed(ctx context.Context, deps *runtimeDeps) error {
	n, err := seed.New(deps.repo, deps.logger).Run(ctx)
	if err != nil {
		return fmt.Errorf("seed catalog: %w", err)
	}
	deps.logger.Info("Seed finished", zap.Int("inserted", n))
	return nil
}

func seedOnly(c *cli.Context) error {
	deps, err := setup(c)
	if err != nil {
		return err
	}
	defer deps.close()

	metrics.RegisterCatalogMetrics()
	return runSeed(c.Context, deps)
}

// indexRebuilder is implemented by stores whose index can be dropped and recreated.
type indexRebuilder interface {
	RebuildIndex(ctx context.Context) error
}

func reindex(c *cli.Context) error {
	deps, err := setup(c)
	if err != nil {
		return err
	}
	defer deps.close()

	if r, ok := deps.repo.(indexRebuilder); ok {
		if err := r.RebuildIndex(c.Context); err != nil {
			return fmt.Errorf("rebuild index: %w", err)
		}
		deps.logger.Info("Index rebuilt")
		return nil
	}
	if err := deps.repo.EnsureIndex(c.Context); err != nil {
		return fmt.Errorf("ensure index: %w", err)
	}
	deps.logger.Info("Indexes ensured")
	return nil
}

func serve(c *cli.Context) error {
	deps, err := setup(c)
	if err != nil {
		return err
	}
	defer deps.close()

	cfg, logger := deps.cfg, deps.logger

	// Register catalog metrics explicitly (no init())
	metrics.RegisterCatalogMetrics()

	if cfg.SeedEnabled() {
		if err := runSeed(c.Context, deps); err != nil {
			return err
		}
	}

	catalogSvc := catalog.New(deps.repo, catalog.Limits{
		DefaultLimit:   cfg.Catalog.DefaultLimit,
		MaxLimit:       cfg.Catalog.MaxLimit,
		MaxCompare:     cfg.Catalog.MaxCompare,
		MaxSuggestions: cfg.Catalog.MaxSuggestions,
	}, logger)
	healthSvc := healthuc.New(deps.repo, 2*time.Second)

	server := chiTransport.NewServer(catalogSvc, healthSvc, logger)
	handler := chiTransport.NewRouter(server, cfg.HTTP.CORSOrigins, logger)

	addr := fmt.Sprintf(":%d", cfg.HTTP.Port)
	srv := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadTimeout:       time.Duration(cfg.HTTP.ReadTimeoutSec) * time.Second,
		ReadHeaderTimeout: time.Duration(cfg.HTTP.ReadTimeoutSec) * time.Second,
		WriteTimeout:      time.Duration(cfg.HTTP.WriteTimeoutSec) * time.Second,
	}

	// Graceful shutdown
	ctx, stop := signal.NotifyContext(c.Context, os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logger.Info("Starting HTTP server", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("HTTP server error: %w", err)
		}
		return nil
	case <-ctx.Done():
		logger.Info("Received shutdown signal")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.HTTP.ShutdownSec)*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Error during shutdown", zap.Error(err))
	}

	logger.Info("Server stopped gracefully")
	return nil
}
