package propdex

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	dbRedis "github.com/kailas-cloud/propdex/internal/db/redis"
	domfirm "github.com/kailas-cloud/propdex/internal/domain/firm"
	"github.com/kailas-cloud/propdex/internal/domain/stats"
	firmrepo "github.com/kailas-cloud/propdex/internal/repository/firm"
	"github.com/kailas-cloud/propdex/internal/repository/firmmongo"
	cataloguc "github.com/kailas-cloud/propdex/internal/usecase/catalog"
	healthuc "github.com/kailas-cloud/propdex/internal/usecase/health"
	seeduc "github.com/kailas-cloud/propdex/internal/usecase/seed"
)

const (
	driverRedis = "redis"
	driverMongo = "mongo"

	defaultReadinessTimeout = 10 * time.Second
	defaultDatabase         = "propdex"
)

// Internal interfaces, swapped for mocks in tests.
type catalogUseCase interface {
	List(ctx context.Context, q domfirm.Query) ([]domfirm.Firm, error)
	Get(ctx context.Context, id string) (domfirm.Firm, error)
	Compare(ctx context.Context, ids []string) (cataloguc.Comparison, error)
	Suggest(ctx context.Context, query string) (cataloguc.Suggestions, error)
	Statistics(ctx context.Context) (stats.Statistics, error)
}

type seedUseCase interface {
	Run(ctx context.Context) (int, error)
}

type pinger interface {
	Ping(ctx context.Context) error
}

// repository is what both storage backends provide.
type repository interface {
	cataloguc.Repository
	seeduc.Repository
	pinger
}

// Client is the propdex SDK entry point.
type Client struct {
	closer     func()
	db         pinger
	catalogSvc catalogUseCase
	seedSvc    seedUseCase
	healthSvc  healthUseCase
	obs        *observer
}

// New creates a Client and connects to the configured store.
// The provided context is used for the initial readiness check and the optional seed.
func New(ctx context.Context, opts ...Option) (*Client, error) {
	cfg := &clientConfig{
		readinessTimeout: defaultReadinessTimeout,
		database:         defaultDatabase,
	}
	for _, o := range opts {
		o.apply(cfg)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	obs, err := newObserver(cfg.logger, cfg.metricsReg)
	if err != nil {
		return nil, err
	}

	repo, closer, err := openRepository(ctx, cfg)
	if err != nil {
		return nil, err
	}

	c := wireClient(repo, closer, cfg, obs)
	if cfg.seed {
		if _, err := c.Seed(ctx); err != nil {
			c.Close()
			return nil, err
		}
	}
	return c, nil
}

func (cfg *clientConfig) validate() error {
	switch cfg.driver {
	case driverRedis:
		if len(cfg.addrs) == 0 || cfg.addrs[0] == "" {
			return errors.New("propdex: redis address required")
		}
	case driverMongo:
		if cfg.uri == "" {
			return errors.New("propdex: mongo uri required")
		}
	case "":
		return errors.New("propdex: database required (use WithRedis or WithMongo)")
	default:
		return fmt.Errorf("propdex: unknown driver %q", cfg.driver)
	}
	return nil
}

func (cfg *clientConfig) limits() cataloguc.Limits {
	l := cataloguc.DefaultLimits()
	if cfg.defaultLimit > 0 {
		l.DefaultLimit = cfg.defaultLimit
	}
	if cfg.maxLimit > 0 {
		l.MaxLimit = cfg.maxLimit
	}
	if cfg.maxCompare > 0 {
		l.MaxCompare = cfg.maxCompare
	}
	if cfg.maxSuggestions > 0 {
		l.MaxSuggestions = cfg.maxSuggestions
	}
	return l
}

func openRepository(ctx context.Context, cfg *clientConfig) (repository, func(), error) {
	switch cfg.driver {
	case driverRedis:
		store, err := dbRedis.NewStore(dbRedis.Config{
			Addrs:    cfg.addrs,
			Password: cfg.password,
		})
		if err != nil {
			return nil, nil, fmt.Errorf("propdex: create redis store: %w", err)
		}
		if err := store.WaitForReady(ctx, cfg.readinessTimeout); err != nil {
			store.Close()
			return nil, nil, fmt.Errorf("propdex: database not ready: %w", err)
		}
		return &redisRepository{Repo: firmrepo.New(store), store: store}, store.Close, nil

	case driverMongo:
		client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.uri))
		if err != nil {
			return nil, nil, fmt.Errorf("propdex: connect mongo: %w", err)
		}
		closer := func() {
			dctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = client.Disconnect(dctx)
		}
		repo := firmmongo.New(client.Database(cfg.database).Collection(firmmongo.CollectionName))

		pctx, cancel := context.WithTimeout(ctx, cfg.readinessTimeout)
		defer cancel()
		if err := repo.Ping(pctx); err != nil {
			closer()
			return nil, nil, fmt.Errorf("propdex: database not ready: %w", err)
		}
		return repo, closer, nil

	default:
		return nil, nil, fmt.Errorf("propdex: unknown driver %q", cfg.driver)
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

func wireClient(repo repository, closer func(), cfg *clientConfig, obs *observer) *Client {
	return &Client{
		closer:     closer,
		db:         repo,
		catalogSvc: cataloguc.New(repo, cfg.limits(), nil),
		seedSvc:    seeduc.New(repo, nil),
		healthSvc:  healthuc.New(repo, 2*time.Second),
		obs:        obs,
	}
}

// Close releases all resources.
func (c *Client) Close() {
	if c.closer != nil {
		c.closer()
	}
}

// Ping checks database connectivity.
func (c *Client) Ping(ctx context.Context) (err error) {
	start := time.Now()
	defer func() { c.obs.observe("ping", start, err) }()

	if err = c.db.Ping(ctx); err != nil {
		return fmt.Errorf("ping: %w", err)
	}
	return nil
}

// List returns firms matching every supplied filter, in catalog order.
func (c *Client) List(ctx context.Context, opts ...FilterOption) (_ []Firm, err error) {
	start := time.Now()
	defer func() { c.obs.observe("list", start, err) }()

	var fc filterConfig
	for _, o := range opts {
		o(&fc)
	}

	firms, err := c.catalogSvc.List(ctx, fc.q)
	if err != nil {
		return nil, fmt.Errorf("list firms: %w", err)
	}
	return firmsFromDomain(firms), nil
}

// Get returns one firm by id. Returns ErrFirmNotFound when the id is unknown.
func (c *Client) Get(ctx context.Context, id string) (_ Firm, err error) {
	start := time.Now()
	defer func() { c.obs.observe("get", start, err) }()

	f, err := c.catalogSvc.Get(ctx, id)
	if err != nil {
		return Firm{}, fmt.Errorf("get firm %s: %w", id, err)
	}
	return firmFromDomain(&f), nil
}

// Compare resolves up to four firms in the given order, skipping unknown ids.
func (c *Client) Compare(ctx context.Context, ids ...string) (_ Comparison, err error) {
	start := time.Now()
	defer func() { c.obs.observe("compare", start, err) }()

	cmp, err := c.catalogSvc.Compare(ctx, ids)
	if err != nil {
		return Comparison{}, fmt.Errorf("compare firms: %w", err)
	}
	return Comparison{Firms: firmsFromDomain(cmp.Firms), Count: cmp.Count}, nil
}

// Suggest returns firm names containing query, case-insensitively.
func (c *Client) Suggest(ctx context.Context, query string) (_ []string, err error) {
	start := time.Now()
	defer func() { c.obs.observe("suggest", start, err) }()

	res, err := c.catalogSvc.Suggest(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("suggest: %w", err)
	}
	if res.Names == nil {
		return []string{}, nil
	}
	return res.Names, nil
}

// Statistics summarizes the catalog.
func (c *Client) Statistics(ctx context.Context) (_ Statistics, err error) {
	start := time.Now()
	defer func() { c.obs.observe("statistics", start, err) }()

	st, err := c.catalogSvc.Statistics(ctx)
	if err != nil {
		return Statistics{}, fmt.Errorf("statistics: %w", err)
	}
	return statisticsFromDomain(st), nil
}

// Seed inserts the built-in catalog when the store is empty and reports how many firms it added.
func (c *Client) Seed(ctx context.Context) (n int, err error) {
	start := time.Now()
	defer func() { c.obs.observe("seed", start, err) }()

	n, err = c.seedSvc.Run(ctx)
	if err != nil {
		return 0, fmt.Errorf("seed: %w", err)
	}
	return n, nil
}
