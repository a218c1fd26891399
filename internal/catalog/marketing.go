package catalog

// MarketingActivity is a campaign the player can run. One-time activities can
// be used once per game; recurring ones respect a cooldown keyed on the week
// they last started.
type MarketingActivity struct {
	ID      string  `yaml:"id"`
	Name    string  `yaml:"name"`
	Cost    float64 `yaml:"cost"`
	OneTime bool    `yaml:"one_time"`

	// DurationWeeks is how long the boost stays active before it is removed.
	DurationWeeks int `yaml:"duration_weeks"`

	ExposureBoost   float64 `yaml:"exposure_boost"`
	ReputationBoost float64 `yaml:"reputation_boost"`

	// DecayRate is the per-week fraction by which the boost fades while active.
	DecayRate float64 `yaml:"decay_rate"`

	CooldownWeeks int `yaml:"cooldown_weeks"`

	// DependencyRisk: exposure bought this way partially collapses when the
	// campaign ends, modelling traffic that never belonged to the shop.
	DependencyRisk float64 `yaml:"dependency_risk"`

	// WeeklySpend is the recurring fixed cost while the activity is active.
	WeeklySpend float64 `yaml:"weekly_spend"`
}

func defaultMarketing() []MarketingActivity {
	return []MarketingActivity{
		{ID: "flyers", Name: "Street Flyers", Cost: 1_200, DurationWeeks: 2, ExposureBoost: 6, ReputationBoost: 0, DecayRate: 0.5, CooldownWeeks: 3},
		{ID: "grand_opening", Name: "Grand Opening Party", Cost: 8_000, OneTime: true, DurationWeeks: 3, ExposureBoost: 18, ReputationBoost: 4, DecayRate: 0.35, DependencyRisk: 0.3},
		{ID: "social_media", Name: "Social Media Push", Cost: 2_500, DurationWeeks: 4, ExposureBoost: 9, ReputationBoost: 1, DecayRate: 0.25, CooldownWeeks: 2, DependencyRisk: 0.2, WeeklySpend: 400},
		{ID: "influencer", Name: "Influencer Visit", Cost: 12_000, OneTime: true, DurationWeeks: 2, ExposureBoost: 25, ReputationBoost: 3, DecayRate: 0.5, DependencyRisk: 0.5},
		{ID: "discount_week", Name: "Second Cup Half Price", Cost: 1_800, DurationWeeks: 1, ExposureBoost: 5, ReputationBoost: 2, DecayRate: 1.0, CooldownWeeks: 4, WeeklySpend: 600},
		{ID: "loyalty_cards", Name: "Loyalty Cards", Cost: 3_200, DurationWeeks: 8, ExposureBoost: 2, ReputationBoost: 6, DecayRate: 0.1, CooldownWeeks: 10, WeeklySpend: 150},
	}
}
