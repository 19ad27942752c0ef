package firmmongo

import (
	"fmt"
	"strconv"
	"time"

	domfirm "github.com/kailas-cloud/propdex/internal/domain/firm"
)

// firmRecord is the bson shape of a firm in the prop_firms collection.
type firmRecord struct {
	ID                  string         `bson:"id"`
	Seq                 int64          `bson:"seq"`
	Name                string         `bson:"name"`
	Description         string         `bson:"description"`
	LogoURL             string         `bson:"logo_url"`
	WebsiteURL          string         `bson:"website_url"`
	FoundedYear         int            `bson:"founded_year"`
	Headquarters        string         `bson:"headquarters"`
	MinAccountSize      int            `bson:"min_account_size"`
	MaxAccountSize      int            `bson:"max_account_size"`
	AccountSizes        []int          `bson:"account_sizes"`
	ProfitSplit         []int          `bson:"profit_split"`
	MaxDrawdown         int            `bson:"max_drawdown"`
	DailyDrawdown       int            `bson:"daily_drawdown"`
	ProfitTarget        int            `bson:"profit_target"`
	TradingPlatforms    []string       `bson:"trading_platforms"`
	Instruments         []string       `bson:"instruments"`
	EvaluationFee       map[string]int `bson:"evaluation_fee"`
	MonthlyFee          int            `bson:"monthly_fee"`
	PayoutFrequency     string         `bson:"payout_frequency"`
	MinTradingDays      int            `bson:"min_trading_days"`
	MaxTradingDays      int            `bson:"max_trading_days"`
	ScalingPlan         bool           `bson:"scaling_plan"`
	NewsTrading         bool           `bson:"news_trading"`
	WeekendHolding      bool           `bson:"weekend_holding"`
	ExpertAdvisors      bool           `bson:"expert_advisors"`
	CopyTrading         bool           `bson:"copy_trading"`
	MinimumPayout       int            `bson:"minimum_payout"`
	MaximumPayout       *int           `bson:"maximum_payout"`
	CountriesRestricted []string       `bson:"countries_restricted"`
	Pros                []string       `bson:"pros"`
	Cons                []string       `bson:"cons"`
	Rating              float64        `bson:"rating"`
	TotalReviews        int            `bson:"total_reviews"`
	CreatedAt           time.Time      `bson:"created_at"`
	UpdatedAt           time.Time      `bson:"updated_at"`
}

func toRecord(f *domfirm.Firm, seq int64) firmRecord {
	fees := make(map[string]int, len(f.EvaluationFee))
	for size, fee := range f.EvaluationFee {
		fees[strconv.Itoa(size)] = fee
	}
	return firmRecord{
		ID:                  f.ID,
		Seq:                 seq,
		Name:                f.Name,
		Description:         f.Description,
		LogoURL:             f.LogoURL,
		WebsiteURL:          f.WebsiteURL,
		FoundedYear:         f.FoundedYear,
		Headquarters:        f.Headquarters,
		MinAccountSize:      f.MinAccountSize,
		MaxAccountSize:      f.MaxAccountSize,
		AccountSizes:        f.AccountSizes,
		ProfitSplit:         []int{f.ProfitSplit.Trader(), f.ProfitSplit.Firm()},
		MaxDrawdown:         f.MaxDrawdown,
		DailyDrawdown:       f.DailyDrawdown,
		ProfitTarget:        f.ProfitTarget,
		TradingPlatforms:    f.TradingPlatforms,
		Instruments:         f.Instruments,
		EvaluationFee:       fees,
		MonthlyFee:          f.MonthlyFee,
		PayoutFrequency:     string(f.PayoutFrequency),
		MinTradingDays:      f.MinTradingDays,
		MaxTradingDays:      f.MaxTradingDays,
		ScalingPlan:         f.ScalingPlan,
		NewsTrading:         f.NewsTrading,
		WeekendHolding:      f.WeekendHolding,
		ExpertAdvisors:      f.ExpertAdvisors,
		CopyTrading:         f.CopyTrading,
		MinimumPayout:       f.MinimumPayout,
		MaximumPayout:       f.MaximumPayout,
		CountriesRestricted: f.CountriesRestricted,
		Pros:                f.Pros,
		Cons:                f.Cons,
		Rating:              f.Rating,
		TotalReviews:        f.TotalReviews,
		CreatedAt:           f.CreatedAt,
		UpdatedAt:           f.UpdatedAt,
	}
}

func fromRecord(r *firmRecord) (domfirm.Firm, error) {
	if len(r.ProfitSplit) != 2 {
		return domfirm.Firm{}, fmt.Errorf("firm %s: profit_split has %d elements", r.ID, len(r.ProfitSplit))
	}
	fees := make(map[int]int, len(r.EvaluationFee))
	for k, fee := range r.EvaluationFee {
		size, err := strconv.Atoi(k)
		if err != nil {
			return domfirm.Firm{}, fmt.Errorf("firm %s: evaluation fee key %q: %w", r.ID, k, err)
		}
		fees[size] = fee
	}
	return domfirm.Firm{
		ID:                  r.ID,
		Name:                r.Name,
		Description:         r.Description,
		LogoURL:             r.LogoURL,
		WebsiteURL:          r.WebsiteURL,
		FoundedYear:         r.FoundedYear,
		Headquarters:        r.Headquarters,
		MinAccountSize:      r.MinAccountSize,
		MaxAccountSize:      r.MaxAccountSize,
		AccountSizes:        r.AccountSizes,
		ProfitSplit:         domfirm.ProfitSplit{r.ProfitSplit[0], r.ProfitSplit[1]},
		MaxDrawdown:         r.MaxDrawdown,
		DailyDrawdown:       r.DailyDrawdown,
		ProfitTarget:        r.ProfitTarget,
		TradingPlatforms:    r.TradingPlatforms,
		Instruments:         r.Instruments,
		EvaluationFee:       fees,
		MonthlyFee:          r.MonthlyFee,
		PayoutFrequency:     domfirm.PayoutFrequency(r.PayoutFrequency),
		MinTradingDays:      r.MinTradingDays,
		MaxTradingDays:      r.MaxTradingDays,
		ScalingPlan:         r.ScalingPlan,
		NewsTrading:         r.NewsTrading,
		WeekendHolding:      r.WeekendHolding,
		ExpertAdvisors:      r.ExpertAdvisors,
		CopyTrading:         r.CopyTrading,
		MinimumPayout:       r.MinimumPayout,
		MaximumPayout:       r.MaximumPayout,
		CountriesRestricted: r.CountriesRestricted,
		Pros:                r.Pros,
		Cons:                r.Cons,
		Rating:              r.Rating,
		TotalReviews:        r.TotalReviews,
		CreatedAt:           r.CreatedAt,
		UpdatedAt:           r.UpdatedAt,
	}, nil
}
