package config

// Balance holds gameplay balance configuration.
type Balance struct {
	// Run length and win/loss
	TotalWeeks    int     `json:"total_weeks" yaml:"total_weeks"`
	WinStreak     int     `json:"win_streak" yaml:"win_streak"`
	WinExposure   float64 `json:"win_exposure" yaml:"win_exposure"`
	WinReputation float64 `json:"win_reputation" yaml:"win_reputation"`

	// Starting money
	StartingCash float64 `json:"starting_cash" yaml:"starting_cash"`

	// Nearby-shop ecosystem
	ShopClosingWeeks  int     `json:"shop_closing_weeks" yaml:"shop_closing_weeks"`
	ShopRemovalWeeks  int     `json:"shop_removal_weeks" yaml:"shop_removal_weeks"`
	SaturationDamping float64 `json:"saturation_damping" yaml:"saturation_damping"`

	// Demand model
	PriceSensitivity   float64 `json:"price_sensitivity" yaml:"price_sensitivity"`
	HoldingCostRate    float64 `json:"holding_cost_rate" yaml:"holding_cost_rate"`
	StockoutRepPenalty float64 `json:"stockout_rep_penalty" yaml:"stockout_rep_penalty"`
	PlatformOverlap    float64 `json:"platform_overlap" yaml:"platform_overlap"`

	// Staff
	FatiguePerWeek    float64 `json:"fatigue_per_week" yaml:"fatigue_per_week"`
	MoraleDecay       float64 `json:"morale_decay" yaml:"morale_decay"`
	SkillGrowthPerWeek float64 `json:"skill_growth_per_week" yaml:"skill_growth_per_week"`
	MoraleBoostAmount float64 `json:"morale_boost_amount" yaml:"morale_boost_amount"`
	MoraleBoostCost   float64 `json:"morale_boost_cost" yaml:"morale_boost_cost"`

	// Cognition
	PassiveExpPerWeek int   `json:"passive_exp_per_week" yaml:"passive_exp_per_week"`
	AdvisorExp        int   `json:"advisor_exp" yaml:"advisor_exp"`
	AdvisorFee        float64 `json:"advisor_fee" yaml:"advisor_fee"`
	ExpToNext         []int `json:"exp_to_next" yaml:"exp_to_next"`

	// Events
	EventChancePerWeek float64 `json:"event_chance_per_week" yaml:"event_chance_per_week"`

	// Store build-out
	FitOutCostPerSqm float64 `json:"fit_out_cost_per_sqm" yaml:"fit_out_cost_per_sqm"`
	EquipmentCost    float64 `json:"equipment_cost" yaml:"equipment_cost"`
	EquipmentDepreciation float64 `json:"equipment_depreciation" yaml:"equipment_depreciation"`
}

// Default returns the default balance configuration.
func Default() Balance {
	return Balance{
		TotalWeeks:    52,
		WinStreak:     6,
		WinExposure:   60,
		WinReputation: 65,

		StartingCash: 200_000,

		ShopClosingWeeks:  3,
		ShopRemovalWeeks:  4,
		SaturationDamping: 0.12,

		PriceSensitivity:   1.6,
		HoldingCostRate:    0.02,
		StockoutRepPenalty: 2.0,
		PlatformOverlap:    0.25,

		FatiguePerWeek:     4,
		MoraleDecay:        1.5,
		SkillGrowthPerWeek: 0.06,
		MoraleBoostAmount:  12,
		MoraleBoostCost:    500,

		PassiveExpPerWeek: 6,
		AdvisorExp:        20,
		AdvisorFee:        800,
		ExpToNext:         []int{40, 80, 140, 220, 320},

		EventChancePerWeek: 0.45,

		FitOutCostPerSqm:      600,
		EquipmentCost:         35_000,
		EquipmentDepreciation: 350,
	}
}

// Casual returns easier balance for casual players.
func Casual() Balance {
	cfg := Default()
	cfg.StartingCash = 300_000
	cfg.WinStreak = 4
	cfg.WinExposure = 50
	cfg.WinReputation = 55
	cfg.FatiguePerWeek = 3
	cfg.EventChancePerWeek = 0.3
	return cfg
}

// Hard returns harder balance for experienced players.
func Hard() Balance {
	cfg := Default()
	cfg.StartingCash = 140_000
	cfg.WinStreak = 8
	cfg.WinExposure = 70
	cfg.WinReputation = 72
	cfg.SaturationDamping = 0.18
	cfg.PriceSensitivity = 2.0
	cfg.EventChancePerWeek = 0.6
	return cfg
}
