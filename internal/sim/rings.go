package sim

import (
	"teashop/internal/catalog"
	"teashop/internal/rng"
)

// GenerateConsumerRings builds the four distance bands around the shop from
// the location's ring multipliers, the address foot traffic and the fixed
// per-segment reach falloff.
func GenerateConsumerRings(cat *catalog.Catalog, loc *catalog.Location, addr *catalog.Address) map[RingID]ConsumerRing {
	rings := make(map[RingID]ConsumerRing, catalog.RingCount)
	for r := 0; r < catalog.RingCount; r++ {
		weights := make(map[catalog.CustomerType]float64, len(catalog.CustomerTypes))
		for _, ct := range catalog.CustomerTypes {
			decay := cat.RingDecay[ct]
			weights[ct] = loc.CustomerMix[ct] * decay[r]
		}
		base := 900.0 * loc.RingMultipliers[r] * addr.FootTraffic
		if base < 0 {
			base = 0
		}
		rings[RingID(r)] = ConsumerRing{
			Weights:            weights,
			BaseTraffic:        base,
			SeasonalMultiplier: 1,
		}
	}
	return rings
}

// ApplySeasonalTrafficVariation returns new rings with the season×ring
// modifier applied. Pure, no randomness.
func ApplySeasonalTrafficVariation(cat *catalog.Catalog, rings map[RingID]ConsumerRing, season catalog.Season) map[RingID]ConsumerRing {
	mods, ok := cat.SeasonTraffic[season]
	if !ok {
		mods = [catalog.RingCount]float64{1, 1, 1, 1}
	}
	out := make(map[RingID]ConsumerRing, len(rings))
	for id, ring := range rings {
		m := 1.0
		if int(id) >= 0 && int(id) < catalog.RingCount {
			m = mods[int(id)]
		}
		ring.SeasonalMultiplier = m
		out[id] = ring
	}
	return out
}

// AssignShopRing draws a ring for a generated shop from its category's ring
// weight distribution. Every shop always lands in exactly one ring.
func AssignShopRing(profile *catalog.CategoryProfile, src *rng.Source) RingID {
	weights := make([]float64, catalog.RingCount)
	for i := 0; i < catalog.RingCount; i++ {
		weights[i] = profile.RingWeights[i]
	}
	idx := src.WeightedIndex(weights)
	if idx < 0 {
		return RingID(0)
	}
	return RingID(idx)
}

// AssignNearbyShopsToConsumerRings re-draws ring placement for every shop,
// used when rings are regenerated at shop-open time.
func AssignNearbyShopsToConsumerRings(cat *catalog.Catalog, shops []NearbyShop, src *rng.Source) []NearbyShop {
	out := append([]NearbyShop(nil), shops...)
	for i := range out {
		profile, ok := cat.Category(out[i].Category)
		if !ok {
			out[i].Ring = RingID(0)
			continue
		}
		out[i].Ring = AssignShopRing(profile, src)
	}
	return out
}

// RingTraffic is the effective weekly traffic of one ring for one segment.
func (r ConsumerRing) RingTraffic(ct catalog.CustomerType) float64 {
	t := r.BaseTraffic * r.SeasonalMultiplier * r.Weights[ct]
	if t < 0 {
		return 0
	}
	return t
}
