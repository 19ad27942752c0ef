package firm

import (
	"fmt"
	"slices"
	"time"

	"github.com/kailas-cloud/propdex/internal/domain"
)

// PayoutFrequency is how often a funded trader can withdraw profits.
type PayoutFrequency string

const (
	// PayoutWeekly pays out every week.
	PayoutWeekly PayoutFrequency = "weekly"
	// PayoutBiWeekly pays out every two weeks.
	PayoutBiWeekly PayoutFrequency = "bi-weekly"
	// PayoutMonthly pays out once a month.
	PayoutMonthly PayoutFrequency = "monthly"
)

// ParsePayoutFrequency validates s against the closed set of frequencies.
func ParsePayoutFrequency(s string) (PayoutFrequency, error) {
	switch f := PayoutFrequency(s); f {
	case PayoutWeekly, PayoutBiWeekly, PayoutMonthly:
		return f, nil
	default:
		return "", fmt.Errorf("unknown payout frequency %q", s)
	}
}

// ProfitSplit is the [trader, firm] percentage pair.
type ProfitSplit [2]int

// Trader returns the trader's share in percent.
func (p ProfitSplit) Trader() int { return p[0] }

// Firm returns the firm's share in percent.
func (p ProfitSplit) Firm() int { return p[1] }

// Firm is a proprietary trading firm catalog entry.
type Firm struct {
	ID           string
	Name         string
	Description  string
	LogoURL      string
	WebsiteURL   string
	FoundedYear  int
	Headquarters string

	MinAccountSize int
	MaxAccountSize int
	AccountSizes   []int

	ProfitSplit   ProfitSplit
	MaxDrawdown   int
	DailyDrawdown int
	ProfitTarget  int

	TradingPlatforms []string
	Instruments      []string

	// EvaluationFee maps an account size to its one-time evaluation fee.
	EvaluationFee   map[int]int
	MonthlyFee      int
	PayoutFrequency PayoutFrequency
	MinTradingDays  int
	MaxTradingDays  int

	ScalingPlan    bool
	NewsTrading    bool
	WeekendHolding bool
	ExpertAdvisors bool
	CopyTrading    bool

	MinimumPayout int
	MaximumPayout *int

	CountriesRestricted []string
	Pros                []string
	Cons                []string

	Rating       float64
	TotalReviews int

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Validate checks the catalog invariants. Rating bounds are not enforced.
func (f *Firm) Validate() error {
	if f.ID == "" {
		return fmt.Errorf("%w: id is required", domain.ErrInvalidFirm)
	}
	if f.Name == "" {
		return fmt.Errorf("%w: name is required", domain.ErrInvalidFirm)
	}
	if f.MinAccountSize > f.MaxAccountSize {
		return fmt.Errorf("%w: %s: min account size %d exceeds max %d",
			domain.ErrInvalidFirm, f.Name, f.MinAccountSize, f.MaxAccountSize)
	}
	for _, size := range f.AccountSizes {
		if size < f.MinAccountSize || size > f.MaxAccountSize {
			return fmt.Errorf("%w: %s: account size %d outside [%d, %d]",
				domain.ErrInvalidFirm, f.Name, size, f.MinAccountSize, f.MaxAccountSize)
		}
	}
	if f.ProfitSplit.Trader()+f.ProfitSplit.Firm() != 100 {
		return fmt.Errorf("%w: %s: profit split %v does not sum to 100",
			domain.ErrInvalidFirm, f.Name, f.ProfitSplit)
	}
	for size := range f.EvaluationFee {
		if !slices.Contains(f.AccountSizes, size) {
			return fmt.Errorf("%w: %s: evaluation fee for unknown account size %d",
				domain.ErrInvalidFirm, f.Name, size)
		}
	}
	if slices.Contains(f.TradingPlatforms, "") {
		return fmt.Errorf("%w: %s: empty trading platform", domain.ErrInvalidFirm, f.Name)
	}
	if _, err := ParsePayoutFrequency(string(f.PayoutFrequency)); err != nil {
		return fmt.Errorf("%w: %s: %w", domain.ErrInvalidFirm, f.Name, err)
	}
	return nil
}

// LowestEvaluationFee returns the cheapest evaluation across all account sizes.
// ok is false when the firm lists no fees.
func (f *Firm) LowestEvaluationFee() (fee int, ok bool) {
	for _, v := range f.EvaluationFee {
		if !ok || v < fee {
			fee, ok = v, true
		}
	}
	return fee, ok
}

// HasPlatform reports whether the firm supports the platform (case-sensitive).
func (f *Firm) HasPlatform(platform string) bool {
	return slices.Contains(f.TradingPlatforms, platform)
}
