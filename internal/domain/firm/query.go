package firm

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/kailas-cloud/propdex/internal/domain"
	"github.com/kailas-cloud/propdex/internal/domain/filter"
)

// Index field names shared by every storage backend.
const (
	FieldMinAccountSize  = "min_account_size"
	FieldMaxAccountSize  = "max_account_size"
	FieldPlatform        = "platform"
	FieldTraderShare     = "trader_share"
	FieldPayoutFrequency = "payout_frequency"
	FieldNewsTrading     = "news_trading"
	FieldExpertAdvisors  = "expert_advisors"
	FieldRating          = "rating"
)

// Default and ceiling for the list result cap.
const (
	DefaultLimit = 50
	MaxLimit     = 100
)

// Query holds the optional list predicates. A nil field does not constrain the result;
// a non-nil zero value does.
type Query struct {
	MinAccountSize  *int
	MaxAccountSize  *int
	Platform        *string
	MinProfitSplit  *int
	PayoutFrequency *string
	NewsTrading     *bool
	ExpertAdvisors  *bool
	MinRating       *float64
	Limit           *int
}

// ResolveLimit applies the default and rejects caps outside [1, maxLimit].
func (q *Query) ResolveLimit(defaultLimit, maxLimit int) (int, error) {
	if q.Limit == nil {
		return defaultLimit, nil
	}
	limit := *q.Limit
	if limit > maxLimit {
		return 0, fmt.Errorf("%w: limit must be at most %d, got %d", domain.ErrInvalidQuery, maxLimit, limit)
	}
	if limit < 1 {
		return 0, fmt.Errorf("%w: limit must be at least 1, got %d", domain.ErrInvalidQuery, limit)
	}
	return limit, nil
}

// ExcludesAll reports whether a supplied predicate cannot hold for any valid firm.
// An empty platform or payout frequency is still a predicate: it yields no firms.
func (q *Query) ExcludesAll() bool {
	return (q.Platform != nil && *q.Platform == "") ||
		(q.PayoutFrequency != nil && *q.PayoutFrequency == "")
}

// Expression converts the supplied predicates into AND-ed filter conditions,
// one per supplied predicate. Callers check ExcludesAll first; empty match values are rejected.
func (q *Query) Expression() (filter.Expression, error) {
	var conds []filter.Condition
	add := func(c filter.Condition, err error) error {
		if err != nil {
			return fmt.Errorf("%w: %w", domain.ErrInvalidQuery, err)
		}
		conds = append(conds, c)
		return nil
	}

	var errs []error
	if q.MinAccountSize != nil {
		errs = append(errs, add(filter.NewRange(FieldMinAccountSize, float(*q.MinAccountSize), nil)))
	}
	if q.MaxAccountSize != nil {
		errs = append(errs, add(filter.NewRange(FieldMaxAccountSize, nil, float(*q.MaxAccountSize))))
	}
	if q.Platform != nil {
		errs = append(errs, add(filter.NewMatch(FieldPlatform, *q.Platform)))
	}
	if q.MinProfitSplit != nil {
		errs = append(errs, add(filter.NewRange(FieldTraderShare, float(*q.MinProfitSplit), nil)))
	}
	if q.PayoutFrequency != nil {
		errs = append(errs, add(filter.NewMatch(FieldPayoutFrequency, *q.PayoutFrequency)))
	}
	if q.NewsTrading != nil {
		errs = append(errs, add(filter.NewMatch(FieldNewsTrading, strconv.FormatBool(*q.NewsTrading))))
	}
	if q.ExpertAdvisors != nil {
		errs = append(errs, add(filter.NewMatch(FieldExpertAdvisors, strconv.FormatBool(*q.ExpertAdvisors))))
	}
	if q.MinRating != nil {
		errs = append(errs, add(filter.NewRange(FieldRating, q.MinRating, nil)))
	}
	if err := errors.Join(errs...); err != nil {
		return filter.Expression{}, err
	}

	expr, err := filter.NewExpression(conds...)
	if err != nil {
		return filter.Expression{}, fmt.Errorf("%w: %w", domain.ErrInvalidQuery, err)
	}
	return expr, nil
}

// Matches reports whether the firm satisfies every supplied predicate.
func (q *Query) Matches(f *Firm) bool {
	if q.MinAccountSize != nil && f.MinAccountSize < *q.MinAccountSize {
		return false
	}
	if q.MaxAccountSize != nil && f.MaxAccountSize > *q.MaxAccountSize {
		return false
	}
	if q.Platform != nil && !f.HasPlatform(*q.Platform) {
		return false
	}
	if q.MinProfitSplit != nil && f.ProfitSplit.Trader() < *q.MinProfitSplit {
		return false
	}
	if q.PayoutFrequency != nil && string(f.PayoutFrequency) != *q.PayoutFrequency {
		return false
	}
	if q.NewsTrading != nil && f.NewsTrading != *q.NewsTrading {
		return false
	}
	if q.ExpertAdvisors != nil && f.ExpertAdvisors != *q.ExpertAdvisors {
		return false
	}
	if q.MinRating != nil && f.Rating < *q.MinRating {
		return false
	}
	return true
}

func float(v int) *float64 {
	f := float64(v)
	return &f
}
