package chi

import (
	"strconv"
	"time"

	domfirm "github.com/kailas-cloud/propdex/internal/domain/firm"
	"github.com/kailas-cloud/propdex/internal/domain/stats"
	cataloguc "github.com/kailas-cloud/propdex/internal/usecase/catalog"
)

// ErrorCode is a machine-readable error identifier.
type ErrorCode string

// Error codes returned in ErrorResponse.
const (
	CodeBadRequest       ErrorCode = "bad_request"
	CodeInvalidQuery     ErrorCode = "invalid_query"
	CodeFirmNotFound     ErrorCode = "firm_not_found"
	CodeNotFound         ErrorCode = "not_found"
	CodeMethodNotAllowed ErrorCode = "method_not_allowed"
	CodeInternalError    ErrorCode = "internal_error"
)

// ErrorResponse is the body of every non-2xx API response.
type ErrorResponse struct {
	Code   ErrorCode `json:"code"`
	Detail string    `json:"detail"`
}

// RootResponse is the body of GET /api/.
type RootResponse struct {
	Message string `json:"message"`
	Version string `json:"version"`
}

// Firm is the wire representation of a catalog entry.
type Firm struct {
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
	ProfitSplit         []int          `json:"profit_split"`
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
}

// CompareRequest is the body of POST /api/firms/compare.
type CompareRequest struct {
	FirmIDs []string `json:"firm_ids"`
}

// CompareResponse is the body returned by POST /api/firms/compare.
type CompareResponse struct {
	Firms           []Firm `json:"firms"`
	ComparisonCount int    `json:"comparison_count"`
}

// SuggestionsResponse is the body returned by GET /api/firms/search/suggestions.
type SuggestionsResponse struct {
	Query       string   `json:"query"`
	Suggestions []string `json:"suggestions"`
}

// StatisticsResponse is the body returned by GET /api/statistics.
type StatisticsResponse struct {
	TotalFirms          int     `json:"total_firms"`
	AvgProfitSplit      float64 `json:"avg_profit_split"`
	AvgRating           float64 `json:"avg_rating"`
	MostPopularPlatform string  `json:"most_popular_platform"`
	LowestEvaluationFee int     `json:"lowest_evaluation_fee"`
	HighestPayout       int     `json:"highest_payout"`
}

// HealthResponse is the body returned by GET /health.
type HealthResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks"`
}

func (p ListFirmsParams) toQuery() domfirm.Query {
	return domfirm.Query{
		MinAccountSize:  p.MinAccountSize,
		MaxAccountSize:  p.MaxAccountSize,
		Platform:        p.Platform,
		MinProfitSplit:  p.MinProfitSplit,
		PayoutFrequency: p.PayoutFrequency,
		NewsTrading:     p.NewsTrading,
		ExpertAdvisors:  p.ExpertAdvisors,
		MinRating:       p.MinRating,
		Limit:           p.Limit,
	}
}

func firmToResponse(f *domfirm.Firm) Firm {
	fees := make(map[string]int, len(f.EvaluationFee))
	for size, fee := range f.EvaluationFee {
		fees[strconv.Itoa(size)] = fee
	}
	return Firm{
		ID:                  f.ID,
		Name:                f.Name,
		Description:         f.Description,
		LogoURL:             f.LogoURL,
		WebsiteURL:          f.WebsiteURL,
		FoundedYear:         f.FoundedYear,
		Headquarters:        f.Headquarters,
		MinAccountSize:      f.MinAccountSize,
		MaxAccountSize:      f.MaxAccountSize,
		AccountSizes:        nonNil(f.AccountSizes),
		ProfitSplit:         []int{f.ProfitSplit.Trader(), f.ProfitSplit.Firm()},
		MaxDrawdown:         f.MaxDrawdown,
		DailyDrawdown:       f.DailyDrawdown,
		ProfitTarget:        f.ProfitTarget,
		TradingPlatforms:    nonNil(f.TradingPlatforms),
		Instruments:         nonNil(f.Instruments),
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
		CountriesRestricted: nonNil(f.CountriesRestricted),
		Pros:                nonNil(f.Pros),
		Cons:                nonNil(f.Cons),
		Rating:              f.Rating,
		TotalReviews:        f.TotalReviews,
		CreatedAt:           f.CreatedAt,
		UpdatedAt:           f.UpdatedAt,
	}
}

func firmsToResponse(firms []domfirm.Firm) []Firm {
	items := make([]Firm, len(firms))
	for i := range firms {
		items[i] = firmToResponse(&firms[i])
	}
	return items
}

func comparisonToResponse(c cataloguc.Comparison) CompareResponse {
	return CompareResponse{
		Firms:           firmsToResponse(c.Firms),
		ComparisonCount: c.Count,
	}
}

func statisticsToResponse(s stats.Statistics) StatisticsResponse {
	return StatisticsResponse{
		TotalFirms:          s.TotalFirms,
		AvgProfitSplit:      s.AvgProfitSplit,
		AvgRating:           s.AvgRating,
		MostPopularPlatform: s.MostPopularPlatform,
		LowestEvaluationFee: s.LowestEvaluationFee,
		HighestPayout:       s.HighestPayout,
	}
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
