package propdex

import (
	"log/slog"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Option configures the Client.
type Option interface {
	apply(*clientConfig)
}

// optionFunc adapts a function to the Option interface.
type optionFunc func(*clientConfig)

func (f optionFunc) apply(c *clientConfig) { f(c) }

type clientConfig struct {
	driver   string // "redis" or "mongo"
	addrs    []string
	password string
	uri      string
	database string

	readinessTimeout time.Duration
	seed             bool

	defaultLimit   int
	maxLimit       int
	maxCompare     int
	maxSuggestions int

	logger     *slog.Logger
	metricsReg prometheus.Registerer
}

// WithRedis configures the client to use a Redis instance with JSON and search modules.
func WithRedis(addr, password string) Option {
	return optionFunc(func(c *clientConfig) {
		c.driver = driverRedis
		c.addrs = []string{addr}
		c.password = password
	})
}

// WithMongo configures the client to use a MongoDB database.
func WithMongo(uri, database string) Option {
	return optionFunc(func(c *clientConfig) {
		c.driver = driverMongo
		c.uri = uri
		c.database = database
	})
}

// WithReadinessTimeout bounds the initial connectivity check.
// Default: 10s.
func WithReadinessTimeout(d time.Duration) Option {
	return optionFunc(func(c *clientConfig) {
		c.readinessTimeout = d
	})
}

// WithSeed inserts the built-in catalog on New when the store is empty.
func WithSeed() Option {
	return optionFunc(func(c *clientConfig) {
		c.seed = true
	})
}

// WithListLimits overrides the default (50) and maximum (100) list sizes.
func WithListLimits(defaultLimit, maxLimit int) Option {
	return optionFunc(func(c *clientConfig) {
		c.defaultLimit = defaultLimit
		c.maxLimit = maxLimit
	})
}

// WithMaxCompare sets how many firms a single Compare call accepts.
// Default: 4.
func WithMaxCompare(n int) Option {
	return optionFunc(func(c *clientConfig) {
		c.maxCompare = n
	})
}

// WithMaxSuggestions caps Suggest results.
// Default: 5.
func WithMaxSuggestions(n int) Option {
	return optionFunc(func(c *clientConfig) {
		c.maxSuggestions = n
	})
}

// WithLogger enables structured logging for SDK operations.
// Pass nil to disable (default). Uses standard library slog.
func WithLogger(l *slog.Logger) Option {
	return optionFunc(func(c *clientConfig) {
		c.logger = l
	})
}

// WithPrometheus registers SDK metrics (operation counts and durations)
// on the given registerer. Pass nil to disable (default).
func WithPrometheus(reg prometheus.Registerer) Option {
	return optionFunc(func(c *clientConfig) {
		c.metricsReg = reg
	})
}

// FilterOption narrows a List call.
type FilterOption func(*filterConfig)

// MinAccountSize keeps firms whose smallest account is at least size.
func MinAccountSize(size int) FilterOption {
	return func(f *filterConfig) { f.q.MinAccountSize = &size }
}

// MaxAccountSize keeps firms whose largest account is at most size.
func MaxAccountSize(size int) FilterOption {
	return func(f *filterConfig) { f.q.MaxAccountSize = &size }
}

// Platform keeps firms supporting the platform (exact, case-sensitive).
func Platform(name string) FilterOption {
	return func(f *filterConfig) { f.q.Platform = &name }
}

// MinProfitSplit keeps firms paying the trader at least pct percent.
func MinProfitSplit(pct int) FilterOption {
	return func(f *filterConfig) { f.q.MinProfitSplit = &pct }
}

// PayoutFrequency keeps firms with the given payout cadence.
func PayoutFrequency(freq string) FilterOption {
	return func(f *filterConfig) { f.q.PayoutFrequency = &freq }
}

// NewsTrading keeps firms whose news trading policy equals allowed.
func NewsTrading(allowed bool) FilterOption {
	return func(f *filterConfig) { f.q.NewsTrading = &allowed }
}

// ExpertAdvisors keeps firms whose EA policy equals allowed.
func ExpertAdvisors(allowed bool) FilterOption {
	return func(f *filterConfig) { f.q.ExpertAdvisors = &allowed }
}

// MinRating keeps firms rated at least r.
func MinRating(r float64) FilterOption {
	return func(f *filterConfig) { f.q.MinRating = &r }
}

// Limit caps the number of returned firms.
func Limit(n int) FilterOption {
	return func(f *filterConfig) { f.q.Limit = &n }
}
