package firm

import (
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	domfirm "github.com/kailas-cloud/propdex/internal/domain/firm"
)

// firmDoc is the JSON document stored under propdex:firm:{id}.
// Double-underscore fields exist only for the FT index.
type firmDoc struct {
	ID                  string         `json:"id"`
	Name                string         `json:"name"`
	Description         string         `json:"description"`
	LogoURL             string         `json:"logo_url"`
	WebsiteURL          string         `json:"website_url"`
	FoundedYear         int            `json:"founded_year"`
	Headquarters        string         `json:"headquarters"`
	MinAccountSize      int            `json:"min_account_size"`
	MaxAccountSize      int            `json:"max_account_size"`
	AccountSizes        []int          `json:"account_sizes"`
	ProfitSplit         [2]int         `json:"profit_split"`
	MaxDrawdown         int            `json:"max_drawdown"`
	DailyDrawdown       int            `json:"daily_drawdown"`
	ProfitTarget        int            `json:"profit_target"`
	TradingPlatforms    []string       `json:"trading_platforms"`
	Instruments         []string       `json:"instruments"`
	EvaluationFee       map[string]int `json:"evaluation_fee"`
	MonthlyFee          int            `json:"monthly_fee"`
	PayoutFrequency     string         `json:"payout_frequency"`
	MinTradingDays      int            `json:"min_trading_days"`
	MaxTradingDays      int            `json:"max_trading_days"`
	ScalingPlan         bool           `json:"scaling_plan"`
	NewsTrading         bool           `json:"news_trading"`
	WeekendHolding      bool           `json:"weekend_holding"`
	ExpertAdvisors      bool           `json:"expert_advisors"`
	CopyTrading         bool           `json:"copy_trading"`
	MinimumPayout       int            `json:"minimum_payout"`
	MaximumPayout       *int           `json:"maximum_payout"`
	CountriesRestricted []string       `json:"countries_restricted"`
	Pros                []string       `json:"pros"`
	Cons                []string       `json:"cons"`
	Rating              float64        `json:"rating"`
	TotalReviews        int            `json:"total_reviews"`
	CreatedAt           time.Time      `json:"created_at"`
	UpdatedAt           time.Time      `json:"updated_at"`

	Seq            int64  `json:"__seq"`
	TraderShare    int    `json:"__trader_share"`
	NewsTradingTag string `json:"__news_trading"`
	EATag          string `json:"__expert_advisors"`
}

func toDoc(f *domfirm.Firm, seq int64) firmDoc {
	fees := make(map[string]int, len(f.EvaluationFee))
	for size, fee := range f.EvaluationFee {
		fees[strconv.Itoa(size)] = fee
	}
	return firmDoc{
		ID:                  f.ID,
		Name:                f.Name,
		Description:         f.Description,
		LogoURL:             f.LogoURL,
		WebsiteURL:          f.WebsiteURL,
		FoundedYear:         f.FoundedYear,
		Headquarters:        f.Headquarters,
		MinAccountSize:      f.MinAccountSize,
		MaxAccountSize:      f.MaxAccountSize,
		AccountSizes:        f.AccountSizes,
		ProfitSplit:         f.ProfitSplit,
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
		Seq:                 seq,
		TraderShare:         f.ProfitSplit.Trader(),
		NewsTradingTag:      strconv.FormatBool(f.NewsTrading),
		EATag:               strconv.FormatBool(f.ExpertAdvisors),
	}
}

func fromDoc(d *firmDoc) (domfirm.Firm, error) {
	fees := make(map[int]int, len(d.EvaluationFee))
	for k, fee := range d.EvaluationFee {
		size, err := strconv.Atoi(k)
		if err != nil {
			return domfirm.Firm{}, fmt.Errorf("firm %s: evaluation fee key %q: %w", d.ID, k, err)
		}
		fees[size] = fee
	}
	return domfirm.Firm{
		ID:                  d.ID,
		Name:                d.Name,
		Description:         d.Description,
		LogoURL:             d.LogoURL,
		WebsiteURL:          d.WebsiteURL,
		FoundedYear:         d.FoundedYear,
		Headquarters:        d.Headquarters,
		MinAccountSize:      d.MinAccountSize,
		MaxAccountSize:      d.MaxAccountSize,
		AccountSizes:        d.AccountSizes,
		ProfitSplit:         d.ProfitSplit,
		MaxDrawdown:         d.MaxDrawdown,
		DailyDrawdown:       d.DailyDrawdown,
		ProfitTarget:        d.ProfitTarget,
		TradingPlatforms:    d.TradingPlatforms,
		Instruments:         d.Instruments,
		EvaluationFee:       fees,
		MonthlyFee:          d.MonthlyFee,
		PayoutFrequency:     domfirm.PayoutFrequency(d.PayoutFrequency),
		MinTradingDays:      d.MinTradingDays,
		MaxTradingDays:      d.MaxTradingDays,
		ScalingPlan:         d.ScalingPlan,
		NewsTrading:         d.NewsTrading,
		WeekendHolding:      d.WeekendHolding,
		ExpertAdvisors:      d.ExpertAdvisors,
		CopyTrading:         d.CopyTrading,
		MinimumPayout:       d.MinimumPayout,
		MaximumPayout:       d.MaximumPayout,
		CountriesRestricted: d.CountriesRestricted,
		Pros:                d.Pros,
		Cons:                d.Cons,
		Rating:              d.Rating,
		TotalReviews:        d.TotalReviews,
		CreatedAt:           d.CreatedAt,
		UpdatedAt:           d.UpdatedAt,
	}, nil
}

// decodeDoc parses a document returned by JSON.GET or an FT.SEARCH "$" field.
// RediSearch with DIALECT 2 may wrap the document in a one-element array.
func decodeDoc(raw []byte) (firmDoc, error) {
	var d firmDoc
	if len(raw) > 0 && raw[0] == '[' {
		var docs []firmDoc
		if err := json.Unmarshal(raw, &docs); err != nil {
			return firmDoc{}, fmt.Errorf("unmarshal firm: %w", err)
		}
		if len(docs) == 0 {
			return firmDoc{}, fmt.Errorf("unmarshal firm: empty result")
		}
		return docs[0], nil
	}
	if err := json.Unmarshal(raw, &d); err != nil {
		return firmDoc{}, fmt.Errorf("unmarshal firm: %w", err)
	}
	return d, nil
}

func encodeDoc(d firmDoc) ([]byte, error) {
	data, err := json.Marshal(d)
	if err != nil {
		return nil, fmt.Errorf("marshal firm %s: %w", d.ID, err)
	}
	return data, nil
}
