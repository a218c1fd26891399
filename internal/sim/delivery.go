package sim

import (
	"sort"

	"teashop/internal/catalog"
)

// RatingCoefficient maps a 0-5 platform rating onto a [0.6, 1.4] multiplier.
func RatingCoefficient(rating float64) float64 {
	if rating < 0 {
		rating = 0
	}
	if rating > 5 {
		rating = 5
	}
	return 0.6 + 0.16*rating
}

// PlatformScore is one platform's reach weight: base weight times the chosen
// discount/pricing/packaging tier multipliers, rating and shop exposure.
func PlatformScore(cat *catalog.Catalog, ap ActivePlatform, exposure float64) float64 {
	p, ok := cat.Platform(ap.PlatformID)
	if !ok {
		return 0
	}
	score := p.BaseWeight
	if t, ok := p.DiscountTier(ap.DiscountTierID); ok {
		score *= t.Multiplier
	}
	if t, ok := p.PricingTier(ap.PricingTierID); ok {
		score *= t.Multiplier
	}
	if t, ok := p.PackagingTier(ap.PackagingTierID); ok {
		score *= t.Multiplier
	}
	score *= RatingCoefficient(ap.Rating)
	score *= 0.5 + clampScore(exposure)/200
	if score < 0 {
		return 0
	}
	return score
}

// PlatformScores computes every active platform's score with the overlap
// discount applied: the same customers browse multiple apps, so the second
// and later platforms (by score) only add a shrinking share of new demand.
func PlatformScores(cat *catalog.Catalog, platforms []ActivePlatform, exposure, overlap float64) map[string]float64 {
	type scored struct {
		id    string
		score float64
	}
	list := make([]scored, 0, len(platforms))
	for _, ap := range platforms {
		list = append(list, scored{id: ap.PlatformID, score: PlatformScore(cat, ap, exposure)})
	}
	sort.Slice(list, func(i, j int) bool {
		if list[i].score != list[j].score {
			return list[i].score > list[j].score
		}
		return list[i].id < list[j].id
	})
	out := make(map[string]float64, len(list))
	shrink := 1.0
	for _, s := range list {
		out[s.id] = s.score * shrink
		shrink *= 1 - overlap
	}
	return out
}

// platformCostRate sums the revenue-share costs of the chosen tiers plus the
// platform commission.
func platformCostRate(cat *catalog.Catalog, ap ActivePlatform) float64 {
	p, ok := cat.Platform(ap.PlatformID)
	if !ok {
		return 0
	}
	rate := p.Commission
	if t, ok := p.DiscountTier(ap.DiscountTierID); ok {
		rate += t.CostRate
	}
	if t, ok := p.PricingTier(ap.PricingTierID); ok {
		rate += t.CostRate
	}
	if t, ok := p.PackagingTier(ap.PackagingTierID); ok {
		rate += t.CostRate
	}
	if rate < 0 {
		return 0
	}
	if rate > 0.9 {
		return 0.9
	}
	return rate
}

// platformWeeklyFixed is the recurring platform spend: weekly fee plus the
// selected promotion tier.
func platformWeeklyFixed(cat *catalog.Catalog, ap ActivePlatform) float64 {
	p, ok := cat.Platform(ap.PlatformID)
	if !ok {
		return 0
	}
	total := p.WeeklyFee
	if ap.PromotionIndex >= 0 && ap.PromotionIndex < len(p.Promotions) {
		total += p.Promotions[ap.PromotionIndex].WeeklyCost
	}
	return total
}

// platformPromotionExposure is the exposure granted by promotion tiers.
func platformPromotionExposure(cat *catalog.Catalog, platforms []ActivePlatform) float64 {
	total := 0.0
	for _, ap := range platforms {
		p, ok := cat.Platform(ap.PlatformID)
		if !ok {
			continue
		}
		if ap.PromotionIndex >= 0 && ap.PromotionIndex < len(p.Promotions) {
			total += p.Promotions[ap.PromotionIndex].ExposureBoost
		}
	}
	return total
}
