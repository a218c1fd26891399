package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"teashop/internal/catalog"
	"teashop/internal/rng"
)

func TestGenerateInitialShops_CountWithinLocationBounds(t *testing.T) {
	cat := catalog.Default()
	loc, ok := cat.Location("school_street")
	require.True(t, ok)

	for seed := int64(0); seed < 20; seed++ {
		shops := GenerateInitialShops(cat, loc, rng.New(seed))
		assert.GreaterOrEqual(t, len(shops), loc.InitialShopsMin)
		assert.LessOrEqual(t, len(shops), loc.InitialShopsMax)
		for _, s := range shops {
			assert.NotEmpty(t, s.ID)
			assert.NotEmpty(t, s.Name)
			assert.GreaterOrEqual(t, int(s.Ring), 0)
			assert.Less(t, int(s.Ring), catalog.RingCount)
			assert.False(t, s.IsClosing)
		}
	}
}

func TestTryGenerateNewShop_SaturationDampsEntry(t *testing.T) {
	cat := catalog.Default()
	loc, ok := cat.Location("school_street")
	require.True(t, ok)

	crowded := make([]NearbyShop, 0, loc.InitialShopsMax+10)
	for i := 0; i < loc.InitialShopsMax+10; i++ {
		crowded = append(crowded, NearbyShop{ID: "s", Category: catalog.CategoryBeverage})
	}

	const trials = 2_000
	emptyHits, crowdedHits := 0, 0
	a, b := rng.New(1), rng.New(1)
	for i := 0; i < trials; i++ {
		if _, ok := TryGenerateNewShop(cat, loc, nil, a); ok {
			emptyHits++
		}
		if _, ok := TryGenerateNewShop(cat, loc, crowded, b); ok {
			crowdedHits++
		}
	}
	assert.Greater(t, emptyHits, crowdedHits)
}

func TestCheckShopClosing_MarksAfterThreshold(t *testing.T) {
	s := NearbyShop{WeeklyProfit: -100}

	s = checkShopClosing(s, 3)
	s = checkShopClosing(s, 3)
	assert.False(t, s.IsClosing)

	s = checkShopClosing(s, 3)
	assert.True(t, s.IsClosing)
	assert.Zero(t, s.ClosingWeeks)
}

func TestCheckShopClosing_ProfitResetsCounter(t *testing.T) {
	s := NearbyShop{WeeklyProfit: -100}
	s = checkShopClosing(s, 3)
	s = checkShopClosing(s, 3)

	s.WeeklyProfit = 50
	s = checkShopClosing(s, 3)
	assert.Zero(t, s.NegativeWeeks)
	assert.False(t, s.IsClosing)
}

func TestUpdateShopEconomics_RemovesClosedShopAfterGrace(t *testing.T) {
	cat := catalog.Default()
	src := rng.New(1)

	shops := []NearbyShop{{
		ID: "dying", Category: catalog.CategoryBeverage, IsClosing: true, ClosingWeeks: 0,
	}}

	removalWeeks := 4
	var removed, totalRemoved int
	for week := 1; week <= 5; week++ {
		shops, removed = UpdateShopEconomics(cat, shops, 3, removalWeeks, src)
		totalRemoved += removed
		if week < removalWeeks {
			require.Len(t, shops, 1, "week %d", week)
			assert.Equal(t, week, shops[0].ClosingWeeks)
		}
	}
	assert.Empty(t, shops)
	assert.Equal(t, 1, totalRemoved)
}

func TestUpdateShopEconomics_ClosingShopsSkipEconomics(t *testing.T) {
	cat := catalog.Default()
	shops := []NearbyShop{{ID: "dying", Category: catalog.CategoryBeverage, IsClosing: true, PriceLevel: 1.0}}

	out, _ := UpdateShopEconomics(cat, shops, 3, 4, rng.New(1))
	require.Len(t, out, 1)
	assert.Equal(t, 1.0, out[0].PriceLevel, "no price drift while winding down")
	assert.Zero(t, out[0].WeeklyProfit)
}

func TestCategorySaturation_CountsOnlyCompetingOpenShops(t *testing.T) {
	cat := catalog.Default()
	shops := []NearbyShop{
		{ID: "a", Category: catalog.CategoryBeverage},
		{ID: "b", Category: catalog.CategoryBeverage, IsClosing: true},
		{ID: "c", Category: catalog.CategoryBakery},
		{ID: "d", Category: catalog.CategoryFastFood},
	}

	n := CategorySaturation(cat, shops)
	assert.Equal(t, 2, n, "closing and non-competing categories excluded")
}

func TestExposureAndReputationCoefficients(t *testing.T) {
	assert.Equal(t, 0.5, ExposureCoefficient(0))
	assert.Equal(t, 1.0, ExposureCoefficient(50))
	assert.Equal(t, 1.5, ExposureCoefficient(100))
	assert.Equal(t, 1.5, ExposureCoefficient(250), "clamped above 100")
	assert.Equal(t, 0.5, ReputationCoefficient(-10))
}
