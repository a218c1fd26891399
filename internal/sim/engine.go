package sim

import (
	"log/slog"
	"strings"

	"teashop/internal/catalog"
	"teashop/internal/config"
	"teashop/internal/rng"
	"teashop/internal/telemetry"
)

// Engine bundles the immutable catalogs, balance tunables and the injected
// random source. It owns no state: every operation takes a GameState and
// returns a new one.
type Engine struct {
	Catalog   *catalog.Catalog
	Balance   config.Balance
	Events    []EventDef
	RNG       *rng.Source
	Log       *slog.Logger
	Telemetry telemetry.Recorder
}

// NewEngine wires an engine with the default event catalog.
func NewEngine(cat *catalog.Catalog, bal config.Balance, src *rng.Source, log *slog.Logger) *Engine {
	if log == nil {
		log = slog.Default()
	}
	return &Engine{
		Catalog: cat,
		Balance: bal,
		Events:  DefaultEvents(),
		RNG:     src,
		Log:     log,
	}
}

// NewGame returns a fresh setup-phase state under this engine's balance.
func (e *Engine) NewGame() GameState {
	return NewGameState(e.Balance.StartingCash, e.Balance.TotalWeeks)
}

func (e *Engine) record(t telemetry.EventType, md telemetry.EventMetadata) {
	if e.Telemetry == nil {
		return
	}
	_ = e.Telemetry.RecordEvent(t, md)
}

// AdvanceWeek runs one simulated week in the fixed step order. Pure apart
// from draws on the injected random source.
func (e *Engine) AdvanceWeek(st GameState) GameState {
	if st.Phase != PhaseOperating {
		return st
	}
	out := st.Clone()
	out.CurrentWeek++

	summary := WeekSummary{Week: out.CurrentWeek}

	// 1. Scheduled delayed effects due this week.
	var notes []string
	out, notes = resolveDelayedEffects(out)

	// 2. Seasonal ring variation for the (possibly changed) season.
	season := SeasonForWeek(out.CurrentWeek)
	out.Rings = ApplySeasonalTrafficVariation(e.Catalog, out.Rings, season)

	// 3. Shop ecosystem: market entry, economics, closings, removals.
	loc, _ := e.Catalog.Location(out.LocationID)
	if loc != nil {
		if shop, ok := TryGenerateNewShop(e.Catalog, loc, out.NearbyShops, e.RNG); ok {
			out.NearbyShops = append(out.NearbyShops, shop)
			summary.NewShops++
		}
	}
	var removed int
	out.NearbyShops, removed = UpdateShopEconomics(e.Catalog, out.NearbyShops, e.Balance.ShopClosingWeeks, e.Balance.ShopRemovalWeeks, e.RNG)
	summary.ClosedShops = removed

	// 4. Supply/demand for the week.
	res := ComputeSupplyDemand(e.Catalog, e.Balance, out)

	// 5. Staff drift after the week's work.
	out.Staff = driftStaff(out.Staff, e.Balance)

	// 6. Weekly financials.
	fixed := e.weeklyFixedCost(out)
	variable := res.TotalVariableCost + res.TotalPlatformFees + res.TotalHoldingCost
	profit := res.TotalRevenue - variable - fixed

	out.Cash += profit
	out.CumulativeProfit += profit
	out.ProfitHistory = append(out.ProfitHistory, profit)
	if profit > 0 {
		out.ConsecutiveProfits++
	} else {
		out.ConsecutiveProfits = 0
	}

	// Stockouts bruise reputation in proportion to the shortfall.
	if res.TotalDemand > 0 {
		shortfall := float64(res.TotalDemand-res.TotalUnitsSold) / float64(res.TotalDemand)
		out.Reputation = clampScore(out.Reputation - shortfall*e.Balance.StockoutRepPenalty*3)
	}

	out.Products = applyRestock(out.Products, res.Products, out.SupplyPriority)

	// 7. Marketing decay, platform promotions, brand drag, buff expiry.
	var expDelta, repDelta float64
	out.ActiveMarketing, expDelta, repDelta = decayMarketing(e.Catalog, out.ActiveMarketing)
	expDelta += platformPromotionExposure(e.Catalog, out.Platforms) * 0.3
	if brand, ok := e.Catalog.Brand(out.BrandID); ok && brand.IsQuickFranchise {
		repDelta -= brand.ReputationDrag
	}
	// Exposure cools on its own; attention is rented, not owned.
	out.Exposure = clampScore(out.Exposure*0.97 + expDelta)
	out.Reputation = clampScore(out.Reputation + repDelta)
	out = expireBuffs(out)

	// 8. Cognition: passive exp plus lessons from this week's mistakes.
	out.Cognition = e.growCognition(out.Cognition, res)

	// 9. Roll a new interactive event if none pending.
	if out.PendingEvent == nil && e.RNG.Chance(e.Balance.EventChancePerWeek) {
		if pe := RollInteractiveEvent(e.Events, out, e.RNG); pe != nil {
			out.PendingEvent = pe
			e.record(telemetry.EventGameEvent, telemetry.EventMetadata{"event_id": pe.EventID, "week": out.CurrentWeek})
		}
	}

	// Finish the digest before the terminal check so an ended game still
	// shows its last week.
	summary.Revenue = res.TotalRevenue
	summary.FixedCost = fixed
	summary.VariableCost = variable
	summary.Profit = profit
	summary.UnitsSold = res.TotalUnitsSold
	summary.Stockouts = res.Stockouts
	summary.WasteUnits = res.WasteUnits
	summary.EventNote = strings.Join(notes, "; ")
	summary.Alerts = DiagnoseHealth(e.Catalog, e.Balance, out, res)
	out.Summary = &summary

	// 10. Terminal conditions in fixed priority.
	out = e.checkTerminal(out)

	e.record(telemetry.EventWeekCompleted, telemetry.EventMetadata{
		"week": out.CurrentWeek, "profit": profit, "cash": out.Cash,
	})
	e.Log.Debug("week advanced",
		"week", out.CurrentWeek,
		"profit", profit,
		"cash", out.Cash,
		"shops", len(out.NearbyShops),
	)
	return out
}

// weeklyFixedCost sums rent, payroll, brand fee, depreciation and recurring
// marketing/platform spend.
func (e *Engine) weeklyFixedCost(st GameState) float64 {
	total := WeeklySalaries(st.Staff)
	total += e.Balance.EquipmentDepreciation

	if loc, ok := e.Catalog.Location(st.LocationID); ok {
		for _, addr := range loc.Addresses {
			if addr.ID == st.AddressID {
				total += addr.RentPerSqm * st.StoreArea
				break
			}
		}
	}
	if brand, ok := e.Catalog.Brand(st.BrandID); ok {
		total += brand.WeeklyFee
	}
	if deco, ok := e.Catalog.Decoration(st.DecorationID); ok {
		total += deco.WeeklyDepreciation
	}
	total += marketingWeeklySpend(e.Catalog, st.ActiveMarketing)
	for _, ap := range st.Platforms {
		total += platformWeeklyFixed(e.Catalog, ap)
	}
	return total
}

// growCognition awards passive weekly exp plus a fixed bonus per observed
// mistake: mistakes are the better teacher.
func (e *Engine) growCognition(c Cognition, res SupplyDemandResult) Cognition {
	exp := e.Balance.PassiveExpPerWeek
	if res.Stockouts > 0 {
		exp += 4
	}
	if res.TotalRevenue > 0 && res.TotalVariableCost > res.TotalRevenue {
		exp += 6
	}
	return gainCognition(c, exp, e.Balance.ExpToNext)
}

func gainCognition(c Cognition, exp int, thresholds []int) Cognition {
	c.Exp += exp
	for c.Level < len(thresholds) {
		need := thresholds[c.Level]
		if c.Exp < need {
			break
		}
		c.Exp -= need
		c.Level++
	}
	if c.Level >= len(thresholds) {
		c.Level = len(thresholds)
		c.ExpToNext = 0
	} else {
		c.ExpToNext = thresholds[c.Level] - c.Exp
	}
	return c
}

// checkTerminal evaluates end conditions in fixed priority:
// bankrupt > win > time limit.
func (e *Engine) checkTerminal(st GameState) GameState {
	switch {
	case st.Cash < 0 && st.ConsecutiveProfits == 0:
		st.Phase = PhaseEnded
		st.EndReason = EndBankrupt
	case st.ConsecutiveProfits >= e.Balance.WinStreak &&
		st.CumulativeProfit >= st.TotalInvestment &&
		st.Exposure >= e.Balance.WinExposure &&
		st.Reputation >= e.Balance.WinReputation:
		st.Phase = PhaseEnded
		st.EndReason = EndWin
	case st.CurrentWeek >= st.TotalWeeks:
		st.Phase = PhaseEnded
		st.EndReason = EndTimeLimit
	}
	if st.Phase == PhaseEnded {
		e.record(telemetry.EventGameEnded, telemetry.EventMetadata{
			"reason": string(st.EndReason), "week": st.CurrentWeek, "cash": st.Cash,
		})
	}
	return st
}
