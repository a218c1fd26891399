package sim

import (
	"fmt"

	"github.com/google/uuid"

	"teashop/internal/catalog"
	"teashop/internal/rng"
)

// GenerateInitialShops populates the competitive landscape at shop-open time.
// Size and category mix follow the location's distribution table; each shop
// gets a name from its category pool, a ring, and starting economics.
func GenerateInitialShops(cat *catalog.Catalog, loc *catalog.Location, src *rng.Source) []NearbyShop {
	n := loc.InitialShopsMin
	if spread := loc.InitialShopsMax - loc.InitialShopsMin; spread > 0 {
		n += src.Intn(spread + 1)
	}
	shops := make([]NearbyShop, 0, n)
	for i := 0; i < n; i++ {
		shop, ok := generateShop(cat, loc, src)
		if !ok {
			continue
		}
		shops = append(shops, shop)
	}
	return shops
}

// TryGenerateNewShop models weekly market entry: with a location-dependent
// probability, damped as the area saturates, one new shop appears.
func TryGenerateNewShop(cat *catalog.Catalog, loc *catalog.Location, shops []NearbyShop, src *rng.Source) (NearbyShop, bool) {
	active := 0
	for _, s := range shops {
		if !s.IsClosing {
			active++
		}
	}
	p := loc.NewShopBaseProb
	if over := active - loc.InitialShopsMax; over > 0 {
		p /= 1 + 0.5*float64(over)
	}
	if !src.Chance(p) {
		return NearbyShop{}, false
	}
	return generateShop(cat, loc, src)
}

func generateShop(cat *catalog.Catalog, loc *catalog.Location, src *rng.Source) (NearbyShop, bool) {
	cats := make([]catalog.ShopCategory, 0, len(loc.CategoryDist))
	weights := make([]float64, 0, len(loc.CategoryDist))
	for _, profile := range cat.Categories {
		w, ok := loc.CategoryDist[profile.Category]
		if !ok {
			continue
		}
		cats = append(cats, profile.Category)
		weights = append(weights, w)
	}
	idx := src.WeightedIndex(weights)
	if idx < 0 {
		return NearbyShop{}, false
	}
	profile, _ := cat.Category(cats[idx])

	chain := src.Chance(profile.ChainRatio)
	pool := profile.IndependentNames
	if chain {
		pool = profile.ChainNames
	}
	name := "Unnamed Shop"
	if len(pool) > 0 {
		name = pool[src.Intn(len(pool))]
	}
	if !chain {
		// Independents get a unit number so repeats stay distinguishable.
		name = fmt.Sprintf("%s #%d", name, 1+src.Intn(99))
	}

	exposure := 20 + src.Range(0, 30)
	if chain {
		exposure += 20
	}

	return NearbyShop{
		ID:              uuid.NewString(),
		Name:            name,
		Category:        profile.Category,
		Chain:           chain,
		Ring:            AssignShopRing(profile, src),
		Exposure:        clampScore(exposure),
		DecorationLevel: 1 + src.Intn(3),
		HasDelivery:     src.Chance(0.5),
		PriceLevel:      src.Range(0.85, 1.2),
		WeeklyProfit:    0,
	}, true
}

// ExposureCoefficient converts a shop's exposure score to a demand-side
// multiplier in [0.5, 1.5].
func ExposureCoefficient(exposure float64) float64 {
	return 0.5 + clampScore(exposure)/100
}

// ReputationCoefficient converts a reputation score to a multiplier in
// [0.5, 1.5].
func ReputationCoefficient(reputation float64) float64 {
	return 0.5 + clampScore(reputation)/100
}

// ShopReputation derives an implied reputation for a generated shop from its
// decoration level and chain status.
func ShopReputation(s NearbyShop) float64 {
	rep := 30 + 10*float64(s.DecorationLevel)
	if s.Chain {
		rep += 10
	}
	return clampScore(rep)
}

// UpdateShopEconomics recomputes each shop's price drift and implied weekly
// profit from its category margin template and exposure/reputation signals,
// then advances closing bookkeeping. Returns the surviving shops and the
// number removed this week.
func UpdateShopEconomics(cat *catalog.Catalog, shops []NearbyShop, closingWeeks, removalWeeks int, src *rng.Source) ([]NearbyShop, int) {
	out := make([]NearbyShop, 0, len(shops))
	removed := 0
	for _, s := range shops {
		if s.IsClosing {
			s.ClosingWeeks++
			if s.ClosingWeeks >= removalWeeks {
				removed++
				continue
			}
			out = append(out, s)
			continue
		}

		// Small weekly price drift, mean-reverting around the template.
		s.PriceLevel += src.Range(-0.03, 0.03) + (1-s.PriceLevel)*0.05
		if s.PriceLevel < 0.6 {
			s.PriceLevel = 0.6
		}

		profile, ok := cat.Category(s.Category)
		margin := 0.1
		if ok {
			margin = profile.MarginBase
		}
		baseRevenue := 4_000 + 120*s.Exposure
		s.WeeklyProfit = baseRevenue*margin*ExposureCoefficient(s.Exposure)*ReputationCoefficient(ShopReputation(s))*s.PriceLevel - 1_500 - src.Range(0, 800)

		s = checkShopClosing(s, closingWeeks)
		out = append(out, s)
	}
	return out, removed
}

// checkShopClosing marks a shop closing once its simulated profit has stayed
// negative past the threshold number of weeks.
func checkShopClosing(s NearbyShop, closingWeeks int) NearbyShop {
	if s.WeeklyProfit < 0 {
		s.NegativeWeeks++
	} else {
		s.NegativeWeeks = 0
	}
	if s.NegativeWeeks >= closingWeeks {
		s.IsClosing = true
		s.ClosingWeeks = 0
	}
	return s
}

// CategorySaturation counts non-closing shops in competing categories.
func CategorySaturation(cat *catalog.Catalog, shops []NearbyShop) int {
	n := 0
	for _, s := range shops {
		if s.IsClosing {
			continue
		}
		profile, ok := cat.Category(s.Category)
		if ok && profile.Competes {
			n++
		}
	}
	return n
}
