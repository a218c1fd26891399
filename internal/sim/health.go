package sim

import (
	"fmt"

	"teashop/internal/catalog"
	"teashop/internal/config"
)

// Severity grades a health alert.
type Severity string

const (
	SeverityInfo     Severity = "info"
	SeverityWarning  Severity = "warning"
	SeverityCritical Severity = "critical"
)

// HealthAlert is one detected silent failure mode. Rule ids are stable; only
// the message varies with cognition.
type HealthAlert struct {
	RuleID   string   `json:"rule_id"`
	Severity Severity `json:"severity"`
	Message  string   `json:"message"`
}

// messageFor picks the cognition-appropriate phrasing. Low cognition gets the
// colloquial version; it never names numbers more precisely than the fuzz
// table allows for the rule's underlying metric.
func messageFor(level int, m Metric, vague, approx, exact string) string {
	switch MetricFidelity(level, m) {
	case FidelityExact:
		return exact
	case FidelityApprox:
		return approx
	default:
		return vague
	}
}

// DiagnoseHealth inspects the computed week for failure modes invisible in
// raw stats. Pure and deterministic; safe to call on every render.
func DiagnoseHealth(cat *catalog.Catalog, bal config.Balance, st GameState, res SupplyDemandResult) []HealthAlert {
	var alerts []HealthAlert
	level := st.Cognition.Level

	// Structurally negative margin: a product priced at or below unit cost.
	for _, ps := range st.Products {
		product, ok := cat.Product(ps.ProductID)
		if !ok {
			continue
		}
		if ps.Price <= product.UnitCost {
			alerts = append(alerts, HealthAlert{
				RuleID:   "negative_margin",
				Severity: SeverityCritical,
				Message: messageFor(level, MetricMargin,
					fmt.Sprintf("Something feels off about %s: you sell a lot but the drawer stays empty.", product.Name),
					fmt.Sprintf("%s looks like it loses money on every cup.", product.Name),
					fmt.Sprintf("%s is priced at %.1f against a unit cost of %.1f: every sale loses money.", product.Name, ps.Price, product.UnitCost),
				),
			})
		}
	}

	// Heavy stockouts: demand exists but inventory keeps cutting it off.
	if res.TotalDemand > 0 {
		lost := res.TotalDemand - res.TotalUnitsSold
		if float64(lost) > 0.2*float64(res.TotalDemand) {
			alerts = append(alerts, HealthAlert{
				RuleID:   "stockout_bleed",
				Severity: SeverityWarning,
				Message: messageFor(level, MetricDemand,
					"Customers keep walking in and walking right back out.",
					"You ran dry on popular items, and a noticeable chunk of demand went unserved.",
					fmt.Sprintf("%d of %d demanded units went unserved; deepen restocks on stocked-out items.", lost, res.TotalDemand),
				),
			})
		}
	}

	// Demand collapse: units fell hard versus last week with no price change
	// to explain it.
	if st.Summary != nil && st.Summary.UnitsSold > 0 {
		prev := float64(st.Summary.UnitsSold)
		if float64(res.TotalUnitsSold) < 0.5*prev {
			alerts = append(alerts, HealthAlert{
				RuleID:   "demand_collapse",
				Severity: SeverityCritical,
				Message: messageFor(level, MetricDemand,
					"The street feels much quieter than before.",
					"Sales dropped by about half versus last week.",
					fmt.Sprintf("Units sold collapsed from %d to %d; check competition and reputation, not just price.", st.Summary.UnitsSold, res.TotalUnitsSold),
				),
			})
		}
	}

	// Unused delivery opportunity: visible shop, no platforms.
	if len(st.Platforms) == 0 && st.Exposure >= 40 {
		alerts = append(alerts, HealthAlert{
			RuleID:   "idle_delivery",
			Severity: SeverityInfo,
			Message: messageFor(level, MetricRevenue,
				"People ask if you deliver. You don't.",
				"Your shop is known but sells nothing online, so delivery may be left on the table.",
				fmt.Sprintf("Exposure %.0f with zero delivery platforms: joining one would open a second demand channel.", st.Exposure),
			),
		})
	}

	// Payroll out of proportion to sales.
	if res.TotalRevenue > 0 {
		payroll := WeeklySalaries(st.Staff)
		if payroll > 0.45*res.TotalRevenue {
			alerts = append(alerts, HealthAlert{
				RuleID:   "overstaffed",
				Severity: SeverityWarning,
				Message: messageFor(level, MetricRevenue,
					"Payday feels heavier than sales day.",
					"Wages are eating an outsized share of what the shop brings in.",
					fmt.Sprintf("Payroll %.0f is %.0f%% of revenue %.0f; trim hours or grow sales.", payroll, 100*payroll/res.TotalRevenue, res.TotalRevenue),
				),
			})
		}
	}

	// Exposure built on rented attention.
	risk := 0.0
	for _, am := range st.ActiveMarketing {
		if act, ok := cat.MarketingActivity(am.ID); ok {
			risk += act.DependencyRisk * am.Strength
		}
	}
	if risk > 0.35 {
		alerts = append(alerts, HealthAlert{
			RuleID:   "marketing_dependency",
			Severity: SeverityWarning,
			Message: messageFor(level, MetricCompetition,
				"The crowd came with the ads. Will it stay when they stop?",
				"Much of your current traffic is campaign-driven and will fade with the campaigns.",
				fmt.Sprintf("Dependency-weighted campaign strength is %.2f; expect exposure to drop sharply when these end.", risk),
			),
		})
	}

	// The quick-franchise trap bleeding reputation.
	if brand, ok := cat.Brand(st.BrandID); ok && brand.IsQuickFranchise {
		alerts = append(alerts, HealthAlert{
			RuleID:   "quick_franchise_drag",
			Severity: SeverityWarning,
			Message: messageFor(level, MetricCompetition,
				"Regulars mention the brand has a reputation... not a good one.",
				"Your franchise brand is dragging your reputation down week after week.",
				fmt.Sprintf("%s is a quick-franchise label with a %.1f/week hidden reputation drag; the fees bought awareness, not trust.", brand.Name, brand.ReputationDrag),
			),
		})
	}

	return alerts
}
