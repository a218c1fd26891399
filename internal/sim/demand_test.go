package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"teashop/internal/catalog"
	"teashop/internal/config"
)

func demandTestState() GameState {
	st := NewGameState(100_000, 52)
	st.Phase = PhaseOperating
	st.Reputation = 50
	st.Exposure = 50
	st.Rings = map[RingID]ConsumerRing{
		0: {Weights: map[catalog.CustomerType]float64{catalog.CustomerStudent: 0.6, catalog.CustomerWorker: 0.4}, BaseTraffic: 20_000, SeasonalMultiplier: 1},
		1: {Weights: map[catalog.CustomerType]float64{catalog.CustomerStudent: 0.3, catalog.CustomerWorker: 0.2}, BaseTraffic: 12_000, SeasonalMultiplier: 1},
	}
	st.Products = []ProductState{
		{ProductID: "classic_milk_tea", Price: 14, Inventory: 500, Strategy: RestockDemand},
	}
	return st
}

func TestComputeSupplyDemand_BasicInvariants(t *testing.T) {
	cat := catalog.Default()
	bal := config.Default()
	st := demandTestState()

	res := ComputeSupplyDemand(cat, bal, st)

	require.Len(t, res.Products, 1)
	pr := res.Products[0]
	assert.GreaterOrEqual(t, pr.Demand, 0)
	assert.GreaterOrEqual(t, pr.UnitsSold, 0)
	assert.LessOrEqual(t, pr.UnitsSold, pr.Demand)
	assert.LessOrEqual(t, pr.UnitsSold, 500)
	assert.Equal(t, pr.Demand, pr.DineInDemand+pr.DeliveryDemand)
	assert.InDelta(t, float64(pr.UnitsSold)*14, pr.Revenue, 0.01)
	assert.Zero(t, pr.DeliveryDemand, "no platforms joined")
}

func TestComputeSupplyDemand_PureSameInputSameOutput(t *testing.T) {
	cat := catalog.Default()
	bal := config.Default()
	st := demandTestState()

	a := ComputeSupplyDemand(cat, bal, st)
	b := ComputeSupplyDemand(cat, bal, st)
	assert.Equal(t, a, b)
}

func TestComputeSupplyDemand_RingSumIsReproducible(t *testing.T) {
	cat := catalog.Default()
	bal := config.Default()
	st := demandTestState()
	// Traffic large enough that a ring-order-dependent float sum would land
	// on different values between evaluations.
	for id, ring := range st.Rings {
		ring.BaseTraffic = 1e15
		st.Rings[id] = ring
	}

	first := ComputeSupplyDemand(cat, bal, st)
	for i := 0; i < 100; i++ {
		again := ComputeSupplyDemand(cat, bal, st)
		require.Equal(t, first.TotalRevenue, again.TotalRevenue)
		require.Equal(t, first.TotalDemand, again.TotalDemand)
	}
}

func TestComputeSupplyDemand_StockoutCapsSales(t *testing.T) {
	cat := catalog.Default()
	bal := config.Default()
	st := demandTestState()
	st.Products[0].Inventory = 3

	res := ComputeSupplyDemand(cat, bal, st)

	pr := res.Products[0]
	assert.Equal(t, 3, pr.UnitsSold)
	assert.True(t, pr.Stockout)
	assert.Equal(t, pr.Demand-3, pr.LostSales)
	assert.Equal(t, 1, res.Stockouts)
}

func TestComputeSupplyDemand_HigherPriceLowersDemand(t *testing.T) {
	cat := catalog.Default()
	bal := config.Default()

	cheap := demandTestState()
	cheap.Products[0].Price = 12
	dear := demandTestState()
	dear.Products[0].Price = 24

	lo := ComputeSupplyDemand(cat, bal, dear)
	hi := ComputeSupplyDemand(cat, bal, cheap)
	assert.Less(t, lo.Products[0].Demand, hi.Products[0].Demand)
}

func TestComputeSupplyDemand_CompetitionDampens(t *testing.T) {
	cat := catalog.Default()
	bal := config.Default()

	alone := demandTestState()
	crowded := demandTestState()
	for i := 0; i < 6; i++ {
		crowded.NearbyShops = append(crowded.NearbyShops, NearbyShop{
			ID: "c", Name: "Rival", Category: catalog.CategoryBeverage, Ring: 0, Exposure: 50, PriceLevel: 1,
		})
	}

	a := ComputeSupplyDemand(cat, bal, alone)
	b := ComputeSupplyDemand(cat, bal, crowded)
	assert.Less(t, b.Products[0].Demand, a.Products[0].Demand)
}

func TestComputeSupplyDemand_ClosingShopsDoNotCompete(t *testing.T) {
	cat := catalog.Default()
	bal := config.Default()

	open := demandTestState()
	open.NearbyShops = []NearbyShop{{ID: "c", Category: catalog.CategoryBeverage, Exposure: 50, PriceLevel: 1}}

	closing := demandTestState()
	closing.NearbyShops = []NearbyShop{{ID: "c", Category: catalog.CategoryBeverage, Exposure: 50, PriceLevel: 1, IsClosing: true}}

	withRival := ComputeSupplyDemand(cat, bal, open)
	withoutRival := ComputeSupplyDemand(cat, bal, closing)
	assert.Greater(t, withoutRival.Products[0].Demand, withRival.Products[0].Demand)
}

func TestComputeSupplyDemand_PlatformAddsDeliveryDemand(t *testing.T) {
	cat := catalog.Default()
	bal := config.Default()

	st := demandTestState()
	st.Platforms = []ActivePlatform{{
		PlatformID: "pandago", DiscountTierID: "light", PricingTierID: "same", PackagingTierID: "basic", Rating: 4.5,
	}}
	st.Staff = []Staff{{ID: "r1", TypeID: "runner", Salary: 950, Morale: 70, SkillLevel: 2, Task: catalog.TaskDelivery, WorkDays: 6, WorkHours: 9}}
	st.Products[0].Inventory = 5_000

	res := ComputeSupplyDemand(cat, bal, st)
	pr := res.Products[0]
	assert.Greater(t, pr.DeliveryDemand, 0)
	assert.Greater(t, res.TotalPlatformFees, 0.0)
}

func TestPriceFactor_Bounds(t *testing.T) {
	assert.InDelta(t, 1.0, priceFactor(14, 14, 1.6), 1e-9)
	assert.Equal(t, 1.6, priceFactor(1, 14, 1.6), "cheap prices saturate")
	assert.Equal(t, 0.2, priceFactor(200, 14, 1.6), "ruinous prices floor out")
	assert.Equal(t, 0.0, priceFactor(14, 0, 1.6))

	mid := priceFactor(16, 14, 1.6)
	assert.Less(t, mid, 1.0)
	assert.Greater(t, mid, 0.2)
}

func TestApplyRestock_Strategies(t *testing.T) {
	products := []ProductState{
		{ProductID: "a", Inventory: 100, Strategy: RestockDemand},
		{ProductID: "b", Inventory: 100, Strategy: RestockAggressive},
		{ProductID: "c", Inventory: 100, Strategy: RestockFixed, StockLevel: 60},
	}
	results := []ProductResult{
		{ProductID: "a", Demand: 90, UnitsSold: 90, WasteUnits: 2, RestockSuggestion: 99},
		{ProductID: "b", Demand: 100, UnitsSold: 100, WasteUnits: 0, RestockSuggestion: 110},
		{ProductID: "c", Demand: 10, UnitsSold: 10, WasteUnits: 5, RestockSuggestion: 11},
	}

	out := applyRestock(products, results, "")

	assert.Equal(t, 99, out[0].Inventory, "demand strategy tops up to the suggestion")
	assert.Equal(t, 135, out[1].Inventory, "aggressive overshoots demand by 35%")
	assert.Equal(t, 85, out[2].Inventory, "fixed keeps the larger of remaining and target")
}

func TestApplyRestock_PriorityProductGetsDeeperTopUp(t *testing.T) {
	products := []ProductState{{ProductID: "a", Inventory: 0, Strategy: RestockDemand}}
	results := []ProductResult{{ProductID: "a", Demand: 100, UnitsSold: 0, RestockSuggestion: 100}}

	plain := applyRestock(products, results, "")
	boosted := applyRestock(products, results, "a")

	assert.Equal(t, 100, plain[0].Inventory)
	assert.Equal(t, 120, boosted[0].Inventory)
}

func TestBuffMultiplier(t *testing.T) {
	buffs := []Buff{
		{Source: "x", ExpiresWeek: 5, DemandMult: 1.2},
		{Source: "y", ExpiresWeek: 3, DemandMult: 0.9},
	}
	assert.InDelta(t, 1.08, buffMultiplier(buffs, 3), 1e-9)
	assert.InDelta(t, 1.2, buffMultiplier(buffs, 4), 1e-9, "expired buff drops out")
	assert.InDelta(t, 1.0, buffMultiplier(buffs, 6), 1e-9)
}
