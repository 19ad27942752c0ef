package seed

import "github.com/kailas-cloud/propdex/internal/domain/firm"

// Catalog returns the built-in firm entries in insertion order.
// IDs and timestamps are assigned at seed time.
func Catalog() []firm.Firm {
	return []firm.Firm{
		{
			Name:             "FTMO",
			Description:      "One of the most popular prop trading firms with a proven track record and transparent evaluation process.",
			LogoURL:          "https://images.unsplash.com/photo-1611974789855-9c2a0a7236a3?w=200&h=200&fit=crop&crop=center",
			WebsiteURL:       "https://ftmo.com",
			FoundedYear:      2015,
			Headquarters:     "Prague, Czech Republic",
			MinAccountSize:   10000,
			MaxAccountSize:   400000,
			AccountSizes:     []int{10000, 25000, 50000, 100000, 200000, 400000},
			ProfitSplit:      firm.ProfitSplit{80, 20},
			MaxDrawdown:      10,
			DailyDrawdown:    5,
			ProfitTarget:     10,
			TradingPlatforms: []string{"MetaTrader 4", "MetaTrader 5", "cTrader", "DXTrade"},
			Instruments:      []string{"Forex", "Indices", "Commodities", "Crypto"},
			EvaluationFee: map[int]int{
				10000: 155, 25000: 345, 50000: 540, 100000: 1080, 200000: 2160, 400000: 4320,
			},
			MonthlyFee:          0,
			PayoutFrequency:     firm.PayoutBiWeekly,
			MinTradingDays:      4,
			MaxTradingDays:      30,
			ScalingPlan:         true,
			NewsTrading:         false,
			WeekendHolding:      true,
			ExpertAdvisors:      true,
			CopyTrading:         false,
			MinimumPayout:       1000,
			CountriesRestricted: []string{"USA", "Canada", "Belgium", "Iran"},
			Pros:                []string{"Excellent reputation", "Multiple platforms", "Fast payouts", "Scaling available"},
			Cons:                []string{"No news trading", "Higher evaluation fees", "Geographic restrictions"},
			Rating:              4.6,
			TotalReviews:        2847,
		},
		{
			Name:             "TopStepTrader",
			Description:      "Leading futures prop trading firm with a focus on risk management and trader development.",
			LogoURL:          "https://images.unsplash.com/photo-1590283603385-17ffb3a7f29f?w=200&h=200&fit=crop&crop=center",
			WebsiteURL:       "https://topsteptrader.com",
			FoundedYear:      2012,
			Headquarters:     "Chicago, USA",
			MinAccountSize:   30000,
			MaxAccountSize:   300000,
			AccountSizes:     []int{30000, 50000, 100000, 150000, 300000},
			ProfitSplit:      firm.ProfitSplit{80, 20},
			MaxDrawdown:      6,
			DailyDrawdown:    3,
			ProfitTarget:     6,
			TradingPlatforms: []string{"NinjaTrader", "TradingView", "Sierra Chart", "Quantower"},
			Instruments:      []string{"Futures", "Micro Futures"},
			EvaluationFee: map[int]int{
				30000: 165, 50000: 325, 100000: 495, 150000: 695, 300000: 1095,
			},
			MonthlyFee:          0,
			PayoutFrequency:     firm.PayoutWeekly,
			MinTradingDays:      4,
			MaxTradingDays:      14,
			ScalingPlan:         true,
			NewsTrading:         true,
			WeekendHolding:      false,
			ExpertAdvisors:      false,
			CopyTrading:         false,
			MinimumPayout:       100,
			CountriesRestricted: []string{"Iran", "North Korea", "Cuba"},
			Pros:                []string{"Weekly payouts", "News trading allowed", "Excellent support", "US regulated"},
			Cons:                []string{"Futures only", "No weekend holding", "No EAs allowed"},
			Rating:              4.4,
			TotalReviews:        1923,
		},
		{
			Name:             "MyForexFunds",
			Description:      "Rapidly growing prop firm with competitive profit splits and flexible trading conditions.",
			LogoURL:          "https://images.unsplash.com/photo-1559526324-4b87b5e36e44?w=200&h=200&fit=crop&crop=center",
			WebsiteURL:       "https://myforexfunds.com",
			FoundedYear:      2020,
			Headquarters:     "St. Vincent and the Grenadines",
			MinAccountSize:   5000,
			MaxAccountSize:   300000,
			AccountSizes:     []int{5000, 10000, 25000, 50000, 100000, 200000, 300000},
			ProfitSplit:      firm.ProfitSplit{85, 15},
			MaxDrawdown:      12,
			DailyDrawdown:    5,
			ProfitTarget:     8,
			TradingPlatforms: []string{"MetaTrader 4", "MetaTrader 5"},
			Instruments:      []string{"Forex", "Indices", "Commodities", "Crypto"},
			EvaluationFee: map[int]int{
				5000: 59, 10000: 109, 25000: 249, 50000: 439, 100000: 849, 200000: 1599, 300000: 2299,
			},
			MonthlyFee:          0,
			PayoutFrequency:     firm.PayoutWeekly,
			MinTradingDays:      3,
			MaxTradingDays:      30,
			ScalingPlan:         true,
			NewsTrading:         true,
			WeekendHolding:      true,
			ExpertAdvisors:      true,
			CopyTrading:         true,
			MinimumPayout:       100,
			MaximumPayout:       intPtr(5000),
			CountriesRestricted: []string{"USA", "Canada", "Iran"},
			Pros:                []string{"85% profit split", "Low evaluation fees", "Copy trading allowed", "Weekly payouts"},
			Cons:                []string{"Newer company", "Limited regulation", "Max payout caps"},
			Rating:              4.2,
			TotalReviews:        1456,
		},
		{
			Name:             "The5ers",
			Description:      "UK-based prop firm with instant funding options and excellent trader support programs.",
			LogoURL:          "https://images.unsplash.com/photo-1551288049-bebda4e38f71?w=200&h=200&fit=crop&crop=center",
			WebsiteURL:       "https://the5ers.com",
			FoundedYear:      2016,
			Headquarters:     "London, UK",
			MinAccountSize:   4000,
			MaxAccountSize:   512000,
			AccountSizes:     []int{4000, 6000, 10000, 20000, 40000, 100000, 256000, 512000},
			ProfitSplit:      firm.ProfitSplit{80, 20},
			MaxDrawdown:      4,
			DailyDrawdown:    4,
			ProfitTarget:     6,
			TradingPlatforms: []string{"MetaTrader 4", "MetaTrader 5"},
			Instruments:      []string{"Forex", "Indices", "Commodities", "Crypto"},
			EvaluationFee: map[int]int{
				4000: 49, 6000: 75, 10000: 125, 20000: 245, 40000: 490, 100000: 980, 256000: 1960, 512000: 3920,
			},
			MonthlyFee:          25,
			PayoutFrequency:     firm.PayoutMonthly,
			MinTradingDays:      1,
			MaxTradingDays:      60,
			ScalingPlan:         true,
			NewsTrading:         true,
			WeekendHolding:      true,
			ExpertAdvisors:      true,
			CopyTrading:         false,
			MinimumPayout:       500,
			CountriesRestricted: []string{"USA", "Iran", "North Korea"},
			Pros:                []string{"Instant funding available", "Low drawdown limits", "UK regulated", "Flexible timeframes"},
			Cons:                []string{"Monthly fee required", "Monthly payouts only", "Lower profit split"},
			Rating:              4.3,
			TotalReviews:        1134,
		},
		{
			Name:             "Funded Trading Plus",
			Description:      "Innovative prop firm with unique challenge structures and trader-friendly policies.",
			LogoURL:          "https://images.unsplash.com/photo-1460925895917-afdab827c52f?w=200&h=200&fit=crop&crop=center",
			WebsiteURL:       "https://fundedtradingplus.com",
			FoundedYear:      2021,
			Headquarters:     "Dubai, UAE",
			MinAccountSize:   10000,
			MaxAccountSize:   200000,
			AccountSizes:     []int{10000, 25000, 50000, 100000, 200000},
			ProfitSplit:      firm.ProfitSplit{82, 18},
			MaxDrawdown:      8,
			DailyDrawdown:    4,
			ProfitTarget:     8,
			TradingPlatforms: []string{"MetaTrader 4", "MetaTrader 5", "cTrader"},
			Instruments:      []string{"Forex", "Indices", "Commodities", "Stocks"},
			EvaluationFee: map[int]int{
				10000: 89, 25000: 178, 50000: 289, 100000: 449, 200000: 849,
			},
			MonthlyFee:          0,
			PayoutFrequency:     firm.PayoutBiWeekly,
			MinTradingDays:      5,
			MaxTradingDays:      30,
			ScalingPlan:         true,
			NewsTrading:         true,
			WeekendHolding:      true,
			ExpertAdvisors:      true,
			CopyTrading:         true,
			MinimumPayout:       500,
			MaximumPayout:       intPtr(10000),
			CountriesRestricted: []string{"USA", "Iran"},
			Pros:                []string{"Competitive fees", "82% profit split", "Multiple platforms", "Stocks trading"},
			Cons:                []string{"Newer firm", "Payout caps", "Limited track record"},
			Rating:              4.1,
			TotalReviews:        892,
		},
		{
			Name:             "FundedNext",
			Description:      "Fast-growing prop firm with innovative evaluation models and competitive trading conditions.",
			LogoURL:          "https://images.unsplash.com/photo-1565728744382-61accd4aa148?w=200&h=200&fit=crop&crop=center",
			WebsiteURL:       "https://fundednext.com",
			FoundedYear:      2021,
			Headquarters:     "London, UK",
			MinAccountSize:   6000,
			MaxAccountSize:   300000,
			AccountSizes:     []int{6000, 15000, 25000, 50000, 100000, 200000, 300000},
			ProfitSplit:      firm.ProfitSplit{90, 10},
			MaxDrawdown:      10,
			DailyDrawdown:    5,
			ProfitTarget:     10,
			TradingPlatforms: []string{"MetaTrader 4", "MetaTrader 5", "cTrader", "TradingView"},
			Instruments:      []string{"Forex", "Indices", "Commodities", "Crypto", "Stocks"},
			EvaluationFee: map[int]int{
				6000: 59, 15000: 125, 25000: 178, 50000: 298, 100000: 549, 200000: 1049, 300000: 1549,
			},
			MonthlyFee:          0,
			PayoutFrequency:     firm.PayoutWeekly,
			MinTradingDays:      5,
			MaxTradingDays:      30,
			ScalingPlan:         true,
			NewsTrading:         true,
			WeekendHolding:      true,
			ExpertAdvisors:      true,
			CopyTrading:         true,
			MinimumPayout:       100,
			CountriesRestricted: []string{"USA", "Canada", "Iran"},
			Pros:                []string{"90% profit split", "Weekly payouts", "Multiple instruments", "Low fees"},
			Cons:                []string{"Newer company", "High profit targets", "Geographic restrictions"},
			Rating:              4.5,
			TotalReviews:        1678,
		},
	}
}

func intPtr(v int) *int { return &v }
