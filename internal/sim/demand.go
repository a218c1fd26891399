package sim

import (
	"math"

	"teashop/internal/catalog"
	"teashop/internal/config"
)

// ProductResult is one product's realized week. Derived data, never mutated
// after creation.
type ProductResult struct {
	ProductID      string  `json:"product_id"`
	DineInDemand   int     `json:"dine_in_demand"`
	DeliveryDemand int     `json:"delivery_demand"`
	Demand         int     `json:"demand"`
	UnitsSold      int     `json:"units_sold"`
	Revenue        float64 `json:"revenue"`
	VariableCost   float64 `json:"variable_cost"`
	PlatformFees   float64 `json:"platform_fees"`
	HoldingCost    float64 `json:"holding_cost"`
	WasteUnits     int     `json:"waste_units"`
	Stockout       bool    `json:"stockout"`
	LostSales      int     `json:"lost_sales"`
	// RestockSuggestion is next week's stock target implied by this week.
	RestockSuggestion int `json:"restock_suggestion"`
}

// SupplyDemandResult is the calculator's full weekly output.
type SupplyDemandResult struct {
	Products          []ProductResult `json:"products"`
	TotalRevenue      float64         `json:"total_revenue"`
	TotalVariableCost float64         `json:"total_variable_cost"`
	TotalPlatformFees float64         `json:"total_platform_fees"`
	TotalHoldingCost  float64         `json:"total_holding_cost"`
	TotalUnitsSold    int             `json:"total_units_sold"`
	TotalDemand       int             `json:"total_demand"`
	Stockouts         int             `json:"stockouts"`
	WasteUnits        int             `json:"waste_units"`
}

// priceFactor is the price-sensitivity curve: demand decays exponentially as
// price climbs past the suggested anchor, and saturates below it.
func priceFactor(price, anchor, sensitivity float64) float64 {
	if anchor <= 0 || price <= 0 {
		return 0
	}
	f := math.Exp(-sensitivity * (price/anchor - 1))
	if f > 1.6 {
		return 1.6
	}
	if f < 0.2 {
		return 0.2
	}
	return f
}

// buffMultiplier is the product of all live demand buffs.
func buffMultiplier(buffs []Buff, week int) float64 {
	mult := 1.0
	for _, b := range buffs {
		if week <= b.ExpiresWeek && b.DemandMult > 0 {
			mult *= b.DemandMult
		}
	}
	return mult
}

// ComputeSupplyDemand converts all player and market signals into realized
// per-product sales for the current week. Pure: same state, same result.
func ComputeSupplyDemand(cat *catalog.Catalog, bal config.Balance, st GameState) SupplyDemandResult {
	res := SupplyDemandResult{Products: make([]ProductResult, 0, len(st.Products))}
	if len(st.Products) == 0 {
		return res
	}

	saturation := CategorySaturation(cat, st.NearbyShops)
	damp := 1 / (1 + bal.SaturationDamping*float64(saturation))

	service := ServiceMultiplier(st.Staff)
	deliveryStaff := DeliveryStaffMultiplier(st.Staff)
	repCoeff := ReputationCoefficient(st.Reputation)
	expCoeff := ExposureCoefficient(st.Exposure)
	buffs := buffMultiplier(st.Buffs, st.CurrentWeek)
	scores := PlatformScores(cat, st.Platforms, st.Exposure, bal.PlatformOverlap)

	// Weekly visit propensity: of the people in reach, how many even consider
	// a drink shop this week.
	const visitRate = 0.045

	for _, ps := range st.Products {
		product, ok := cat.Product(ps.ProductID)
		if !ok {
			continue
		}

		pf := priceFactor(ps.Price, product.SuggestedPrice, bal.PriceSensitivity)
		focus := 1 + FocusBonus(st.Staff, ps.ProductID)

		// Fixed ring order keeps the float sum reproducible across runs.
		gross := 0.0
		for r := 0; r < catalog.RingCount; r++ {
			ring, ok := st.Rings[RingID(r)]
			if !ok {
				continue
			}
			for _, ct := range catalog.CustomerTypes {
				gross += ring.RingTraffic(ct) * product.Appeal[ct] * pf
			}
		}
		dineIn := gross * visitRate * damp * service * repCoeff * expCoeff * focus * buffs
		if dineIn < 0 {
			dineIn = 0
		}

		// Delivery demand is computed independently per platform from the
		// overlap-discounted platform scores.
		delivery := 0.0
		feeRateWeighted := 0.0
		scoreSum := 0.0
		for _, ap := range st.Platforms {
			score := scores[ap.PlatformID]
			if score <= 0 {
				continue
			}
			delivery += dineIn * 0.45 * score * deliveryStaff
			feeRateWeighted += platformCostRate(cat, ap) * score
			scoreSum += score
		}
		if scoreSum > 0 {
			feeRateWeighted /= scoreSum
		}

		dineInUnits := int(math.Floor(dineIn))
		deliveryUnits := int(math.Floor(delivery))
		demand := dineInUnits + deliveryUnits

		sold := demand
		if sold > ps.Inventory {
			sold = ps.Inventory
		}
		if sold < 0 {
			sold = 0
		}
		lost := demand - sold

		// Sales fill dine-in first; delivery covers the remainder.
		deliverySold := sold - dineInUnits
		if deliverySold < 0 {
			deliverySold = 0
		}
		if deliverySold > deliveryUnits {
			deliverySold = deliveryUnits
		}
		dineInSold := sold - deliverySold

		revenue := float64(dineInSold)*ps.Price + float64(deliverySold)*ps.Price
		fees := float64(deliverySold) * ps.Price * feeRateWeighted
		variable := float64(sold) * product.UnitCost

		leftover := ps.Inventory - sold
		if leftover < 0 {
			leftover = 0
		}
		waste := int(math.Floor(float64(leftover) * product.WasteRate))
		holding := float64(leftover) * product.UnitCost * bal.HoldingCostRate

		pr := ProductResult{
			ProductID:         ps.ProductID,
			DineInDemand:      dineInUnits,
			DeliveryDemand:    deliveryUnits,
			Demand:            demand,
			UnitsSold:         sold,
			Revenue:           revenue,
			VariableCost:      variable + float64(waste)*product.UnitCost,
			PlatformFees:      fees,
			HoldingCost:       holding,
			WasteUnits:        waste,
			Stockout:          lost > 0,
			LostSales:         lost,
			RestockSuggestion: int(math.Ceil(float64(demand) * 1.1)),
		}
		res.Products = append(res.Products, pr)

		res.TotalRevenue += pr.Revenue
		res.TotalVariableCost += pr.VariableCost
		res.TotalPlatformFees += pr.PlatformFees
		res.TotalHoldingCost += pr.HoldingCost
		res.TotalUnitsSold += pr.UnitsSold
		res.TotalDemand += pr.Demand
		res.WasteUnits += pr.WasteUnits
		if pr.Stockout {
			res.Stockouts++
		}
	}
	return res
}

// applyRestock refills inventory after a week according to each product's
// strategy. The supply-priority product gets a deeper top-up. Purchase cost
// is already represented by COGS and waste lines.
func applyRestock(products []ProductState, results []ProductResult, priorityID string) []ProductState {
	byID := make(map[string]ProductResult, len(results))
	for _, r := range results {
		byID[r.ProductID] = r
	}
	out := append([]ProductState(nil), products...)
	for i := range out {
		p := &out[i]
		r, ok := byID[p.ProductID]
		if !ok {
			continue
		}
		remaining := p.Inventory - r.UnitsSold - r.WasteUnits
		if remaining < 0 {
			remaining = 0
		}
		switch p.Strategy {
		case RestockDemand:
			p.Inventory = maxInt(remaining, r.RestockSuggestion)
		case RestockAggressive:
			p.Inventory = maxInt(remaining, int(math.Ceil(float64(r.Demand)*1.35)))
		default: // RestockFixed
			target := p.StockLevel
			if target <= 0 {
				target = 80
			}
			p.Inventory = maxInt(remaining, target)
		}
		if p.ProductID == priorityID {
			p.Inventory = int(math.Ceil(float64(p.Inventory) * 1.2))
		}
	}
	return out
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
