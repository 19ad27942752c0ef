package seed

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/kailas-cloud/propdex/internal/domain/firm"
	"github.com/kailas-cloud/propdex/internal/metrics"
)

// Service bootstraps an empty store with the built-in catalog.
type Service struct {
	repo    Repository
	catalog func() []firm.Firm
	newID   func() string
	now     func() time.Time
	logger  *zap.Logger
}

// Option configures a Service.
type Option func(*Service)

// WithClock overrides the timestamp source.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// WithIDGenerator overrides the firm id source.
func WithIDGenerator(newID func() string) Option {
	return func(s *Service) { s.newID = newID }
}

// WithCatalog replaces the built-in entries.
func WithCatalog(catalog func() []firm.Firm) Option {
	return func(s *Service) { s.catalog = catalog }
}

// New creates a seed service. A nil logger disables logging.
func New(repo Repository, logger *zap.Logger, opts ...Option) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Service{
		repo:    repo,
		catalog: Catalog,
		newID:   uuid.NewString,
		now:     func() time.Time { return time.Now().UTC() },
		logger:  logger,
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

// Run ensures the index exists and inserts the catalog when the store is empty.
// It returns the number of firms inserted; zero means the store was already populated.
func (s *Service) Run(ctx context.Context) (int, error) {
	if err := s.repo.EnsureIndex(ctx); err != nil {
		return 0, fmt.Errorf("ensure index: %w", err)
	}

	existing, err := s.repo.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("count firms: %w", err)
	}
	if existing > 0 {
		s.logger.Info("Catalog already seeded", zap.Int("firms", existing))
		metrics.CatalogFirmsSeeded.Set(0)
		return 0, nil
	}

	ts := s.now()
	firms := s.catalog()
	for i := range firms {
		firms[i].ID = s.newID()
		firms[i].CreatedAt = ts
		firms[i].UpdatedAt = ts
		if err := firms[i].Validate(); err != nil {
			return 0, fmt.Errorf("catalog entry %d: %w", i, err)
		}
	}

	if err := s.repo.InsertMany(ctx, firms); err != nil {
		return 0, fmt.Errorf("insert firms: %w", err)
	}

	metrics.CatalogFirmsSeeded.Set(float64(len(firms)))
	s.logger.Info("Seeded catalog", zap.Int("firms", len(firms)))
	return len(firms), nil
}
