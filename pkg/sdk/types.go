package propdex

import (
	"maps"
	"slices"
	"time"

	domfirm "github.com/kailas-cloud/propdex/internal/domain/firm"
	"github.com/kailas-cloud/propdex/internal/domain/stats"
)

// Firm is a catalog entry.
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

	TraderShare   int // percent of profits paid to the trader
	FirmShare     int
	MaxDrawdown   int
	DailyDrawdown int
	ProfitTarget  int

	TradingPlatforms []string
	Instruments      []string

	EvaluationFee   map[int]int // account size → fee
	MonthlyFee      int
	PayoutFrequency string
	MinTradingDays  int
	MaxTradingDays  int

	ScalingPlan    bool
	NewsTrading    bool
	WeekendHolding bool
	ExpertAdvisors bool
	CopyTrading    bool

	MinimumPayout int
	MaximumPayout *int // nil when uncapped

	CountriesRestricted []string
	Pros                []string
	Cons                []string

	Rating       float64
	TotalReviews int

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Comparison holds the firms resolved by Compare, in request order.
type Comparison struct {
	Firms []Firm
	Count int
}

// Statistics summarizes the whole catalog.
type Statistics struct {
	TotalFirms          int
	AvgProfitSplit      float64
	AvgRating           float64
	MostPopularPlatform string
	LowestEvaluationFee int
	HighestPayout       int
}

type filterConfig struct {
	q domfirm.Query
}

func firmFromDomain(f *domfirm.Firm) Firm {
	out := Firm{
		ID:                  f.ID,
		Name:                f.Name,
		Description:         f.Description,
		LogoURL:             f.LogoURL,
		WebsiteURL:          f.WebsiteURL,
		FoundedYear:         f.FoundedYear,
		Headquarters:        f.Headquarters,
		MinAccountSize:      f.MinAccountSize,
		MaxAccountSize:      f.MaxAccountSize,
		AccountSizes:        slices.Clone(f.AccountSizes),
		TraderShare:         f.ProfitSplit.Trader(),
		FirmShare:           f.ProfitSplit.Firm(),
		MaxDrawdown:         f.MaxDrawdown,
		DailyDrawdown:       f.DailyDrawdown,
		ProfitTarget:        f.ProfitTarget,
		TradingPlatforms:    slices.Clone(f.TradingPlatforms),
		Instruments:         slices.Clone(f.Instruments),
		EvaluationFee:       maps.Clone(f.EvaluationFee),
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
		CountriesRestricted: slices.Clone(f.CountriesRestricted),
		Pros:                slices.Clone(f.Pros),
		Cons:                slices.Clone(f.Cons),
		Rating:              f.Rating,
		TotalReviews:        f.TotalReviews,
		CreatedAt:           f.CreatedAt,
		UpdatedAt:           f.UpdatedAt,
	}
	if f.MaximumPayout != nil {
		v := *f.MaximumPayout
		out.MaximumPayout = &v
	}
	return out
}

func firmsFromDomain(firms []domfirm.Firm) []Firm {
	out := make([]Firm, len(firms))
	for i := range firms {
		out[i] = firmFromDomain(&firms[i])
	}
	return out
}

func statisticsFromDomain(s stats.Statistics) Statistics {
	return Statistics{
		TotalFirms:          s.TotalFirms,
		AvgProfitSplit:      s.AvgProfitSplit,
		AvgRating:           s.AvgRating,
		MostPopularPlatform: s.MostPopularPlatform,
		LowestEvaluationFee: s.LowestEvaluationFee,
		HighestPayout:       s.HighestPayout,
	}
}
