package sim

import (
	"fmt"
)

// StatLine is one headline metric rendered at the player's cognition level.
type StatLine struct {
	Metric   Metric   `json:"metric"`
	Display  string   `json:"display"`
	Fidelity Fidelity `json:"fidelity"`
}

// CurrentStats is the read-model for the dashboard. Money and counters the
// player can see on a receipt stay exact; analytical metrics go through the
// cognition fuzz.
type CurrentStats struct {
	Week               int     `json:"week"`
	Cash               float64 `json:"cash"`
	Reputation         float64 `json:"reputation"`
	Exposure           float64 `json:"exposure"`
	CognitionLevel     int     `json:"cognition_level"`
	CognitionExpToNext int     `json:"cognition_exp_to_next"`
	ConsecutiveProfits int     `json:"consecutive_profits"`
	StaffCount         int     `json:"staff_count"`
	NearbyShopCount    int     `json:"nearby_shop_count"`
	Lines              []StatLine `json:"lines"`
}

// ComputeCurrentStats builds the fuzzed dashboard view from the last
// completed week.
func (e *Engine) ComputeCurrentStats(st GameState) CurrentStats {
	cs := CurrentStats{
		Week:               st.CurrentWeek,
		Cash:               st.Cash,
		Reputation:         st.Reputation,
		Exposure:           st.Exposure,
		CognitionLevel:     st.Cognition.Level,
		CognitionExpToNext: st.Cognition.ExpToNext,
		ConsecutiveProfits: st.ConsecutiveProfits,
		StaffCount:         len(st.Staff),
		NearbyShopCount:    len(st.NearbyShops),
	}

	var revenue, profit float64
	var units int
	if st.Summary != nil {
		revenue = st.Summary.Revenue
		profit = st.Summary.Profit
		units = st.Summary.UnitsSold
	}
	level := st.Cognition.Level

	line := func(m Metric, v float64) StatLine {
		f := MetricFidelity(level, m)
		return StatLine{Metric: m, Display: FuzzValue(v, f), Fidelity: f}
	}
	cs.Lines = append(cs.Lines,
		line(MetricRevenue, revenue),
		line(MetricProfit, profit),
		line(MetricDemand, float64(units)),
		line(MetricCompetition, float64(activeCompetitors(e, st))),
	)

	marginFid := MetricFidelity(level, MetricMargin)
	margin := 0.0
	if revenue > 0 {
		margin = profit / revenue * 100
	}
	marginLine := StatLine{Metric: MetricMargin, Fidelity: marginFid}
	switch marginFid {
	case FidelityExact:
		marginLine.Display = fmt.Sprintf("%.1f%%", margin)
	case FidelityApprox:
		marginLine.Display = fmt.Sprintf("~%.0f%%", margin)
	default:
		if margin > 0 {
			marginLine.Display = "in the black, barely sure how"
		} else {
			marginLine.Display = "losing money somewhere"
		}
	}
	cs.Lines = append(cs.Lines, marginLine)
	return cs
}

func activeCompetitors(e *Engine, st GameState) int {
	n := 0
	for _, s := range st.NearbyShops {
		if s.IsClosing {
			continue
		}
		if profile, ok := e.Catalog.Category(s.Category); ok && profile.Competes {
			n++
		}
	}
	return n
}

// CanOpenResult reports whether setup is complete enough to open, and the
// blockers if not.
type CanOpenResult struct {
	CanOpen    bool     `json:"can_open"`
	Investment float64  `json:"investment"`
	Reasons    []string `json:"reasons,omitempty"`
}

// ComputeCanOpen checks open_store preconditions without dispatching.
func (e *Engine) ComputeCanOpen(st GameState) CanOpenResult {
	var r CanOpenResult
	if st.Phase != PhaseSetup {
		r.Reasons = append(r.Reasons, "store is already open")
		return r
	}
	brand, okB := e.Catalog.Brand(st.BrandID)
	if !okB {
		r.Reasons = append(r.Reasons, "no brand selected")
	}
	loc, okL := e.Catalog.Location(st.LocationID)
	if !okL {
		r.Reasons = append(r.Reasons, "no location selected")
	}
	if okL {
		found := false
		for _, addr := range loc.Addresses {
			if addr.ID == st.AddressID {
				found = true
			}
		}
		if !found {
			r.Reasons = append(r.Reasons, "no address selected")
		}
	} else if st.AddressID == "" {
		r.Reasons = append(r.Reasons, "no address selected")
	}
	deco, okD := e.Catalog.Decoration(st.DecorationID)
	if !okD {
		r.Reasons = append(r.Reasons, "no decoration selected")
	}
	if st.StoreArea <= 0 {
		r.Reasons = append(r.Reasons, "store area not set")
	}
	if len(st.Products) == 0 {
		r.Reasons = append(r.Reasons, "menu is empty")
	}
	if okB && okD && st.StoreArea > 0 {
		r.Investment = brand.FranchiseFee + deco.Cost +
			e.Balance.FitOutCostPerSqm*st.StoreArea + e.Balance.EquipmentCost
		if r.Investment > st.Cash {
			r.Reasons = append(r.Reasons, fmt.Sprintf("investment %.0f exceeds cash %.0f", r.Investment, st.Cash))
		}
	}
	r.CanOpen = len(r.Reasons) == 0
	return r
}

// GameResult is the end-of-run report. Valid once the phase is ended; for a
// live game it shows progress toward the win conditions.
type GameResult struct {
	Ended     bool      `json:"ended"`
	Reason    EndReason `json:"reason,omitempty"`
	Week      int       `json:"week"`
	Cash      float64   `json:"cash"`
	ROI       float64   `json:"roi"`
	CumulativeProfit float64 `json:"cumulative_profit"`

	StreakMet     bool `json:"streak_met"`
	PaybackMet    bool `json:"payback_met"`
	ExposureMet   bool `json:"exposure_met"`
	ReputationMet bool `json:"reputation_met"`
}

// ComputeGameResult summarizes the run against the win conditions.
func (e *Engine) ComputeGameResult(st GameState) GameResult {
	r := GameResult{
		Ended:            st.Phase == PhaseEnded,
		Reason:           st.EndReason,
		Week:             st.CurrentWeek,
		Cash:             st.Cash,
		CumulativeProfit: st.CumulativeProfit,

		StreakMet:     st.ConsecutiveProfits >= e.Balance.WinStreak,
		PaybackMet:    st.TotalInvestment > 0 && st.CumulativeProfit >= st.TotalInvestment,
		ExposureMet:   st.Exposure >= e.Balance.WinExposure,
		ReputationMet: st.Reputation >= e.Balance.WinReputation,
	}
	if st.TotalInvestment > 0 {
		r.ROI = st.CumulativeProfit / st.TotalInvestment
	}
	return r
}

// ComputeHealthAlerts reports the alerts captured in the last completed
// week's summary. Diagnostics need the week's realized numbers, so there is
// nothing to show before the first tick or after clear_summary.
func (e *Engine) ComputeHealthAlerts(st GameState) []HealthAlert {
	if st.Summary != nil {
		return st.Summary.Alerts
	}
	return nil
}

// ComputeSupplyDemandPreview runs the demand calculator on the current state
// without advancing the week, for the planning screen.
func (e *Engine) ComputeSupplyDemandPreview(st GameState) SupplyDemandResult {
	if st.Phase != PhaseOperating {
		return SupplyDemandResult{}
	}
	return ComputeSupplyDemand(e.Catalog, e.Balance, st)
}
