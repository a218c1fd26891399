package catalog

// ShopCategory classifies a nearby competitor/complement.
type ShopCategory string

const (
	CategoryBeverage    ShopCategory = "beverage"
	CategoryBakery      ShopCategory = "bakery"
	CategoryFastFood    ShopCategory = "fastfood"
	CategoryRestaurant  ShopCategory = "restaurant"
	CategoryConvenience ShopCategory = "convenience"
)

// CategoryProfile defines economics and placement for one shop category.
type CategoryProfile struct {
	Category ShopCategory `yaml:"category"`

	// MarginBase is the implied weekly profit margin template.
	MarginBase float64 `yaml:"margin_base"`

	// RingWeights is the weighted-random distribution used when a generated
	// shop is assigned to a consumer ring.
	RingWeights [RingCount]float64 `yaml:"ring_weights"`

	// ChainRatio is the share of generated shops that use chain templates.
	ChainRatio float64 `yaml:"chain_ratio"`

	// Competes marks categories that pull from the same demand pool as the
	// player's beverage shop.
	Competes bool `yaml:"competes"`

	ChainNames       []string `yaml:"chain_names"`
	IndependentNames []string `yaml:"independent_names"`
}

func defaultCategories() []CategoryProfile {
	return []CategoryProfile{
		{
			Category: CategoryBeverage, MarginBase: 0.16, RingWeights: [RingCount]float64{4, 3, 2, 1}, ChainRatio: 0.55, Competes: true,
			ChainNames:       []string{"MiTea", "Happy Lemon Tree", "Teapresso", "Bubble Hut"},
			IndependentNames: []string{"Auntie Wen's Tea", "Corner Brew", "The Quiet Kettle", "Sugar & Leaves"},
		},
		{
			Category: CategoryBakery, MarginBase: 0.13, RingWeights: [RingCount]float64{3, 3, 2, 1}, ChainRatio: 0.4,
			ChainNames:       []string{"Crown Bakery", "Daily Loaf"},
			IndependentNames: []string{"Mrs. Fong's Buns", "Warm Oven", "Flour Alley"},
		},
		{
			Category: CategoryFastFood, MarginBase: 0.11, RingWeights: [RingCount]float64{4, 2, 2, 1}, ChainRatio: 0.7, Competes: true,
			ChainNames:       []string{"Burger Planet", "Wok Express", "Chicken Cabin"},
			IndependentNames: []string{"Noodle Cart 88", "Old Zhang's Grill"},
		},
		{
			Category: CategoryRestaurant, MarginBase: 0.09, RingWeights: [RingCount]float64{2, 3, 3, 2}, ChainRatio: 0.25,
			ChainNames:       []string{"Jade Garden"},
			IndependentNames: []string{"Grandma's Table", "River View Diner", "Little Sichuan"},
		},
		{
			Category: CategoryConvenience, MarginBase: 0.07, RingWeights: [RingCount]float64{3, 3, 3, 2}, ChainRatio: 0.8, Competes: true,
			ChainNames:       []string{"24Seven", "MiniMart+"},
			IndependentNames: []string{"Lucky Corner Store"},
		},
	}
}
