package catalog

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/kailas-cloud/propdex/internal/domain"
	"github.com/kailas-cloud/propdex/internal/domain/firm"
	"github.com/kailas-cloud/propdex/internal/domain/stats"
	"github.com/kailas-cloud/propdex/internal/metrics"
)

// Operation names used as metric labels.
const (
	OpList       = "list"
	OpGet        = "get"
	OpCompare    = "compare"
	OpSuggest    = "suggest"
	OpStatistics = "statistics"
)

// Limits bounds request sizes.
type Limits struct {
	DefaultLimit   int
	MaxLimit       int
	MaxCompare     int
	MaxSuggestions int
}

// DefaultLimits returns the stock request bounds.
func DefaultLimits() Limits {
	return Limits{
		DefaultLimit:   firm.DefaultLimit,
		MaxLimit:       firm.MaxLimit,
		MaxCompare:     4,
		MaxSuggestions: 5,
	}
}

// Comparison is the result of a compare request.
type Comparison struct {
	Firms []firm.Firm
	Count int
}

// Suggestions is the result of a search-suggestion request.
type Suggestions struct {
	Query string
	Names []string
}

// Service is the read-only query layer over the firm catalog.
type Service struct {
	repo   Repository
	limits Limits
	logger *zap.Logger
}

// New creates a catalog service. A nil logger disables logging.
func New(repo Repository, limits Limits, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{repo: repo, limits: limits, logger: logger}
}

// List returns firms matching every supplied predicate, in insertion order.
func (s *Service) List(ctx context.Context, q firm.Query) (_ []firm.Firm, err error) {
	defer s.observe(OpList, time.Now(), &err)

	limit, err := q.ResolveLimit(s.limits.DefaultLimit, s.limits.MaxLimit)
	if err != nil {
		return nil, err
	}
	if q.ExcludesAll() {
		return []firm.Firm{}, nil
	}
	firms, err := s.repo.List(ctx, q, limit)
	if err != nil {
		return nil, fmt.Errorf("list firms: %w", err)
	}
	return firms, nil
}

// Get returns a single firm by id.
func (s *Service) Get(ctx context.Context, id string) (_ firm.Firm, err error) {
	defer s.observe(OpGet, time.Now(), &err)

	f, err := s.repo.Get(ctx, id)
	if err != nil {
		return firm.Firm{}, fmt.Errorf("get firm %s: %w", id, err)
	}
	return f, nil
}

// Compare resolves ids one by one in input order, skipping unknown ids.
func (s *Service) Compare(ctx context.Context, ids []string) (_ Comparison, err error) {
	defer s.observe(OpCompare, time.Now(), &err)

	if len(ids) > s.limits.MaxCompare {
		return Comparison{}, fmt.Errorf("%w: maximum %d firms can be compared", domain.ErrInvalidQuery, s.limits.MaxCompare)
	}

	firms := make([]firm.Firm, 0, len(ids))
	for _, id := range ids {
		f, err := s.repo.Get(ctx, id)
		if errors.Is(err, domain.ErrFirmNotFound) {
			continue
		}
		if err != nil {
			return Comparison{}, fmt.Errorf("compare firm %s: %w", id, err)
		}
		firms = append(firms, f)
	}

	if len(firms) == 0 {
		return Comparison{}, fmt.Errorf("%w: no firms found", domain.ErrFirmNotFound)
	}
	return Comparison{Firms: firms, Count: len(firms)}, nil
}

// Suggest returns names of firms whose name or description contains query.
func (s *Service) Suggest(ctx context.Context, query string) (_ Suggestions, err error) {
	defer s.observe(OpSuggest, time.Now(), &err)

	if query == "" {
		return Suggestions{}, fmt.Errorf("%w: query must not be empty", domain.ErrInvalidQuery)
	}
	names, err := s.repo.Suggest(ctx, query, s.limits.MaxSuggestions)
	if err != nil {
		return Suggestions{}, fmt.Errorf("suggest firms: %w", err)
	}
	return Suggestions{Query: query, Names: names}, nil
}

// Statistics aggregates the whole catalog.
func (s *Service) Statistics(ctx context.Context) (_ stats.Statistics, err error) {
	defer s.observe(OpStatistics, time.Now(), &err)

	firms, err := s.repo.All(ctx)
	if err != nil {
		return stats.Statistics{}, fmt.Errorf("load firms: %w", err)
	}
	return stats.Compute(firms), nil
}

func (s *Service) observe(op string, start time.Time, errp *error) {
	elapsed := time.Since(start)
	status := metrics.StatusOK
	switch err := *errp; {
	case err == nil:
	case errors.Is(err, domain.ErrFirmNotFound):
		status = metrics.StatusNotFound
	case errors.Is(err, domain.ErrInvalidQuery):
		status = metrics.StatusInvalid
	default:
		status = metrics.StatusError
	}
	metrics.ObserveCatalogOperation(op, status, elapsed)

	s.logger.Debug("Catalog operation completed",
		zap.String("operation", op),
		zap.String("status", status),
		zap.Duration("duration", elapsed),
	)
}
