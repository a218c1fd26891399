package catalog

// Address is a concrete storefront within a location.
type Address struct {
	ID          string  `yaml:"id"`
	Name        string  `yaml:"name"`
	RentPerSqm  float64 `yaml:"rent_per_sqm"`
	FootTraffic float64 `yaml:"foot_traffic"`
}

// Location is a neighbourhood archetype. Ring multipliers shape how much of
// each distance band the spot actually reaches, and the customer mix weights
// the segments found there.
type Location struct {
	ID        string    `yaml:"id"`
	Name      string    `yaml:"name"`
	Addresses []Address `yaml:"addresses"`

	RingMultipliers [RingCount]float64       `yaml:"ring_multipliers"`
	CustomerMix     map[CustomerType]float64 `yaml:"customer_mix"`

	// NewShopBaseProb is the weekly chance of a competitor opening nearby.
	NewShopBaseProb float64 `yaml:"new_shop_base_prob"`

	// Initial competitive density.
	InitialShopsMin int `yaml:"initial_shops_min"`
	InitialShopsMax int `yaml:"initial_shops_max"`

	CategoryDist map[ShopCategory]float64 `yaml:"category_dist"`
}

func defaultLocations() []Location {
	return []Location{
		{
			ID:   "school_street",
			Name: "School Street",
			Addresses: []Address{
				{ID: "campus_gate", Name: "Campus Gate", RentPerSqm: 55, FootTraffic: 1.25},
				{ID: "dorm_row", Name: "Dorm Row", RentPerSqm: 38, FootTraffic: 0.95},
			},
			RingMultipliers: [RingCount]float64{1.3, 1.1, 0.8, 0.4},
			CustomerMix:     map[CustomerType]float64{CustomerStudent: 0.62, CustomerWorker: 0.10, CustomerResident: 0.22, CustomerTourist: 0.06},
			NewShopBaseProb: 0.16,
			InitialShopsMin: 5, InitialShopsMax: 8,
			CategoryDist: map[ShopCategory]float64{CategoryBeverage: 0.35, CategoryFastFood: 0.30, CategoryBakery: 0.15, CategoryConvenience: 0.15, CategoryRestaurant: 0.05},
		},
		{
			ID:   "office_district",
			Name: "Office District",
			Addresses: []Address{
				{ID: "tower_lobby", Name: "Tower Lobby", RentPerSqm: 95, FootTraffic: 1.35},
				{ID: "back_lane", Name: "Back Lane", RentPerSqm: 60, FootTraffic: 0.85},
				{ID: "metro_exit", Name: "Metro Exit B", RentPerSqm: 80, FootTraffic: 1.20},
			},
			RingMultipliers: [RingCount]float64{1.2, 1.0, 0.9, 0.5},
			CustomerMix:     map[CustomerType]float64{CustomerStudent: 0.05, CustomerWorker: 0.68, CustomerResident: 0.17, CustomerTourist: 0.10},
			NewShopBaseProb: 0.13,
			InitialShopsMin: 6, InitialShopsMax: 10,
			CategoryDist: map[ShopCategory]float64{CategoryBeverage: 0.30, CategoryFastFood: 0.25, CategoryBakery: 0.20, CategoryConvenience: 0.10, CategoryRestaurant: 0.15},
		},
		{
			ID:   "residential",
			Name: "Residential Block",
			Addresses: []Address{
				{ID: "estate_plaza", Name: "Estate Plaza", RentPerSqm: 42, FootTraffic: 0.90},
				{ID: "corner_unit", Name: "Corner Unit", RentPerSqm: 30, FootTraffic: 0.70},
			},
			RingMultipliers: [RingCount]float64{1.0, 1.1, 1.0, 0.7},
			CustomerMix:     map[CustomerType]float64{CustomerStudent: 0.12, CustomerWorker: 0.20, CustomerResident: 0.63, CustomerTourist: 0.05},
			NewShopBaseProb: 0.09,
			InitialShopsMin: 3, InitialShopsMax: 6,
			CategoryDist: map[ShopCategory]float64{CategoryBeverage: 0.20, CategoryFastFood: 0.20, CategoryBakery: 0.20, CategoryConvenience: 0.30, CategoryRestaurant: 0.10},
		},
		{
			ID:   "mall",
			Name: "Shopping Mall",
			Addresses: []Address{
				{ID: "atrium_kiosk", Name: "Atrium Kiosk", RentPerSqm: 120, FootTraffic: 1.50},
				{ID: "food_court", Name: "Food Court", RentPerSqm: 100, FootTraffic: 1.30},
			},
			RingMultipliers: [RingCount]float64{1.5, 0.9, 0.6, 0.3},
			CustomerMix:     map[CustomerType]float64{CustomerStudent: 0.20, CustomerWorker: 0.25, CustomerResident: 0.35, CustomerTourist: 0.20},
			NewShopBaseProb: 0.18,
			InitialShopsMin: 8, InitialShopsMax: 12,
			CategoryDist: map[ShopCategory]float64{CategoryBeverage: 0.40, CategoryFastFood: 0.25, CategoryBakery: 0.15, CategoryConvenience: 0.05, CategoryRestaurant: 0.15},
		},
		{
			ID:   "tourist_street",
			Name: "Old Town Walk",
			Addresses: []Address{
				{ID: "arch_gate", Name: "Arch Gate", RentPerSqm: 88, FootTraffic: 1.40},
				{ID: "quiet_end", Name: "Quiet End", RentPerSqm: 52, FootTraffic: 0.80},
			},
			RingMultipliers: [RingCount]float64{1.4, 1.0, 0.5, 0.2},
			CustomerMix:     map[CustomerType]float64{CustomerStudent: 0.08, CustomerWorker: 0.07, CustomerResident: 0.25, CustomerTourist: 0.60},
			NewShopBaseProb: 0.15,
			InitialShopsMin: 6, InitialShopsMax: 9,
			CategoryDist: map[ShopCategory]float64{CategoryBeverage: 0.30, CategoryFastFood: 0.20, CategoryBakery: 0.15, CategoryConvenience: 0.10, CategoryRestaurant: 0.25},
		},
	}
}

func defaultRingDecay() map[CustomerType][RingCount]float64 {
	return map[CustomerType][RingCount]float64{
		CustomerStudent:  {1.0, 0.7, 0.35, 0.10},
		CustomerWorker:   {1.0, 0.8, 0.50, 0.20},
		CustomerResident: {1.0, 0.9, 0.60, 0.30},
		CustomerTourist:  {1.0, 0.5, 0.20, 0.05},
	}
}

func defaultSeasonTraffic() map[Season][RingCount]float64 {
	return map[Season][RingCount]float64{
		SeasonSpring: {1.00, 1.00, 1.00, 1.00},
		SeasonSummer: {1.15, 1.10, 1.05, 0.95},
		SeasonAutumn: {1.05, 1.00, 0.95, 0.90},
		SeasonWinter: {0.85, 0.85, 0.80, 0.70},
	}
}
