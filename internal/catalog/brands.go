package catalog

// Brand is a franchise (or self-built) identity the player can open under.
type Brand struct {
	ID           string  `yaml:"id"`
	Name         string  `yaml:"name"`
	FranchiseFee float64 `yaml:"franchise_fee"`
	WeeklyFee    float64 `yaml:"weekly_fee"`

	// Starting scores granted by brand recognition.
	ExposureBase   float64 `yaml:"exposure_base"`
	ReputationBase float64 `yaml:"reputation_base"`

	// IsQuickFranchise marks the fake-franchise scam variant: high fees,
	// juiced starting exposure, and a hidden weekly reputation drag once the
	// novelty wears off.
	IsQuickFranchise bool    `yaml:"is_quick_franchise"`
	ReputationDrag   float64 `yaml:"reputation_drag"`
}

// Decoration is a fit-out tier chosen at setup.
type Decoration struct {
	ID              string  `yaml:"id"`
	Name            string  `yaml:"name"`
	Cost            float64 `yaml:"cost"`
	ExposureBonus   float64 `yaml:"exposure_bonus"`
	ReputationBonus float64 `yaml:"reputation_bonus"`
	// WeeklyDepreciation feeds the fixed-cost line of the weekly P&L.
	WeeklyDepreciation float64 `yaml:"weekly_depreciation"`
}

func defaultBrands() []Brand {
	return []Brand{
		{ID: "own_label", Name: "Own Label", FranchiseFee: 0, WeeklyFee: 0, ExposureBase: 8, ReputationBase: 20},
		{ID: "leaf_and_co", Name: "Leaf & Co", FranchiseFee: 60_000, WeeklyFee: 900, ExposureBase: 32, ReputationBase: 38},
		{ID: "cloudcup", Name: "CloudCup", FranchiseFee: 110_000, WeeklyFee: 1_500, ExposureBase: 45, ReputationBase: 46},
		{ID: "sunrise_tea", Name: "Sunrise Tea", FranchiseFee: 38_000, WeeklyFee: 600, ExposureBase: 24, ReputationBase: 30},
		{ID: "boba_rocket", Name: "Boba Rocket", FranchiseFee: 88_000, WeeklyFee: 1_800, ExposureBase: 50, ReputationBase: 26, IsQuickFranchise: true, ReputationDrag: 0.8},
		{ID: "golden_sip", Name: "Golden Sip", FranchiseFee: 128_000, WeeklyFee: 2_400, ExposureBase: 55, ReputationBase: 22, IsQuickFranchise: true, ReputationDrag: 1.2},
	}
}

func defaultDecorations() []Decoration {
	return []Decoration{
		{ID: "bare", Name: "Bare Fit-Out", Cost: 8_000, ExposureBonus: 0, ReputationBonus: 0, WeeklyDepreciation: 40},
		{ID: "cozy", Name: "Cozy", Cost: 25_000, ExposureBonus: 3, ReputationBonus: 5, WeeklyDepreciation: 120},
		{ID: "modern", Name: "Modern", Cost: 48_000, ExposureBonus: 6, ReputationBonus: 8, WeeklyDepreciation: 230},
		{ID: "instagrammable", Name: "Photo Wall", Cost: 70_000, ExposureBonus: 12, ReputationBonus: 6, WeeklyDepreciation: 330},
		{ID: "premium", Name: "Premium Lounge", Cost: 110_000, ExposureBonus: 10, ReputationBonus: 14, WeeklyDepreciation: 520},
	}
}
