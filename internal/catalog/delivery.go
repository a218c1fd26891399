package catalog

// Tier is one selectable rung of a platform setting.
type Tier struct {
	ID         string  `yaml:"id"`
	Label      string  `yaml:"label"`
	Multiplier float64 `yaml:"multiplier"`
	// CostRate is the revenue fraction the tier costs (subsidies, packaging).
	CostRate float64 `yaml:"cost_rate"`
}

// PromotionTier is a paid visibility rung on a platform.
type PromotionTier struct {
	Label         string  `yaml:"label"`
	WeeklyCost    float64 `yaml:"weekly_cost"`
	ExposureBoost float64 `yaml:"exposure_boost"`
}

// Platform is a third-party delivery marketplace.
type Platform struct {
	ID         string  `yaml:"id"`
	Name       string  `yaml:"name"`
	Commission float64 `yaml:"commission"`
	JoinFee    float64 `yaml:"join_fee"`
	WeeklyFee  float64 `yaml:"weekly_fee"`

	// BaseWeight scales the platform's reach in the delivery demand model.
	BaseWeight float64 `yaml:"base_weight"`

	DiscountTiers  []Tier          `yaml:"discount_tiers"`
	PricingTiers   []Tier          `yaml:"pricing_tiers"`
	PackagingTiers []Tier          `yaml:"packaging_tiers"`
	Promotions     []PromotionTier `yaml:"promotions"`
}

func (p *Platform) DiscountTier(id string) (*Tier, bool)  { return findTier(p.DiscountTiers, id) }
func (p *Platform) PricingTier(id string) (*Tier, bool)   { return findTier(p.PricingTiers, id) }
func (p *Platform) PackagingTier(id string) (*Tier, bool) { return findTier(p.PackagingTiers, id) }

func findTier(tiers []Tier, id string) (*Tier, bool) {
	for i := range tiers {
		if tiers[i].ID == id {
			return &tiers[i], true
		}
	}
	return nil, false
}

func defaultPlatforms() []Platform {
	return []Platform{
		{
			ID: "pandago", Name: "PandaGo", Commission: 0.22, JoinFee: 3_000, WeeklyFee: 200, BaseWeight: 1.0,
			DiscountTiers: []Tier{
				{ID: "none", Label: "No Discount", Multiplier: 0.85, CostRate: 0},
				{ID: "light", Label: "5 off 30", Multiplier: 1.0, CostRate: 0.04},
				{ID: "heavy", Label: "12 off 40", Multiplier: 1.25, CostRate: 0.11},
			},
			PricingTiers: []Tier{
				{ID: "same", Label: "Same As Store", Multiplier: 1.0, CostRate: 0},
				{ID: "marked_up", Label: "Marked Up 10%", Multiplier: 0.9, CostRate: -0.08},
			},
			PackagingTiers: []Tier{
				{ID: "basic", Label: "Basic Cup", Multiplier: 0.95, CostRate: 0.01},
				{ID: "sealed", Label: "Sealed + Sleeve", Multiplier: 1.05, CostRate: 0.03},
				{ID: "premium", Label: "Premium Kit", Multiplier: 1.12, CostRate: 0.06},
			},
			Promotions: []PromotionTier{
				{Label: "None", WeeklyCost: 0, ExposureBoost: 0},
				{Label: "Search Boost", WeeklyCost: 500, ExposureBoost: 2},
				{Label: "Front Page", WeeklyCost: 1_600, ExposureBoost: 6},
			},
		},
		{
			ID: "flashbite", Name: "FlashBite", Commission: 0.18, JoinFee: 5_000, WeeklyFee: 350, BaseWeight: 0.8,
			DiscountTiers: []Tier{
				{ID: "none", Label: "No Discount", Multiplier: 0.85, CostRate: 0},
				{ID: "standard", Label: "8 off 35", Multiplier: 1.15, CostRate: 0.08},
			},
			PricingTiers: []Tier{
				{ID: "same", Label: "Same As Store", Multiplier: 1.0, CostRate: 0},
				{ID: "bundle", Label: "Bundle Deals", Multiplier: 1.1, CostRate: 0.05},
			},
			PackagingTiers: []Tier{
				{ID: "basic", Label: "Basic Cup", Multiplier: 0.95, CostRate: 0.01},
				{ID: "sealed", Label: "Sealed + Sleeve", Multiplier: 1.05, CostRate: 0.03},
			},
			Promotions: []PromotionTier{
				{Label: "None", WeeklyCost: 0, ExposureBoost: 0},
				{Label: "New Store Banner", WeeklyCost: 900, ExposureBoost: 4},
			},
		},
	}
}
