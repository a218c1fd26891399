package sim

import "teashop/internal/catalog"

// marketingWeeklySpend sums the recurring cost of active campaigns.
func marketingWeeklySpend(cat *catalog.Catalog, active []ActiveMarketing) float64 {
	total := 0.0
	for _, am := range active {
		if act, ok := cat.MarketingActivity(am.ID); ok {
			total += act.WeeklySpend
		}
	}
	return total
}

// decayMarketing ages every active campaign one week: strength decays, spent
// campaigns end, and ending campaigns with dependency risk claw back part of
// the exposure they bought. Returns the surviving campaigns and the net
// exposure/reputation deltas for the week.
func decayMarketing(cat *catalog.Catalog, active []ActiveMarketing) (kept []ActiveMarketing, exposureDelta, reputationDelta float64) {
	for _, am := range active {
		act, ok := cat.MarketingActivity(am.ID)
		if !ok {
			continue
		}

		// While active the campaign keeps feeding its boosts at the current
		// strength.
		exposureDelta += act.ExposureBoost * am.Strength * 0.3
		reputationDelta += act.ReputationBoost * am.Strength * 0.3

		am.Remaining--
		am.Strength *= 1 - act.DecayRate
		if am.Strength < 0.05 {
			am.Strength = 0
		}

		if am.Remaining <= 0 || am.Strength == 0 {
			// Dependency risk: rented attention leaves with the campaign.
			exposureDelta -= act.ExposureBoost * act.DependencyRisk * 0.5
			continue
		}
		kept = append(kept, am)
	}
	return kept, exposureDelta, reputationDelta
}

// canStartMarketing checks one-time usage and cooldowns.
func canStartMarketing(act *catalog.MarketingActivity, st GameState) bool {
	if act.OneTime {
		for _, used := range st.UsedOneTime {
			if used == act.ID {
				return false
			}
		}
	}
	for _, am := range st.ActiveMarketing {
		if am.ID == act.ID {
			return false
		}
	}
	if act.CooldownWeeks > 0 {
		if last, ok := st.LastActivityWeek[act.ID]; ok && st.CurrentWeek-last < act.CooldownWeeks {
			return false
		}
	}
	return st.Cash >= act.Cost
}
