package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultCatalogIsConsistent(t *testing.T) {
	c := Default()

	require.NotEmpty(t, c.Brands)
	require.NotEmpty(t, c.Locations)
	require.NotEmpty(t, c.Products)
	require.NotEmpty(t, c.StaffTypes)
	require.NotEmpty(t, c.Marketing)
	require.NotEmpty(t, c.Platforms)
	require.NotEmpty(t, c.Categories)

	for _, loc := range c.Locations {
		assert.NotEmpty(t, loc.Addresses, "location %s has no addresses", loc.ID)
		mix := 0.0
		for _, w := range loc.CustomerMix {
			mix += w
		}
		assert.InDelta(t, 1.0, mix, 0.01, "customer mix of %s should sum to 1", loc.ID)
	}

	for _, p := range c.Products {
		assert.Greater(t, p.SuggestedPrice, p.UnitCost, "product %s priced below cost", p.ID)
		for _, ct := range CustomerTypes {
			assert.Contains(t, p.Appeal, ct, "product %s missing appeal for %s", p.ID, ct)
		}
	}

	for _, ct := range CustomerTypes {
		decay, ok := c.RingDecay[ct]
		require.True(t, ok, "missing ring decay for %s", ct)
		assert.Equal(t, 1.0, decay[0], "ring0 decay for %s should be 1", ct)
	}

	for _, season := range []Season{SeasonSpring, SeasonSummer, SeasonAutumn, SeasonWinter} {
		assert.Contains(t, c.SeasonTraffic, season)
	}
}

func TestCatalogLookups(t *testing.T) {
	c := Default()

	b, ok := c.Brand("own_label")
	require.True(t, ok)
	assert.Equal(t, "Own Label", b.Name)

	_, ok = c.Brand("nope")
	assert.False(t, ok)

	p, ok := c.Platform("pandago")
	require.True(t, ok)
	tier, ok := p.DiscountTier("heavy")
	require.True(t, ok)
	assert.Equal(t, 1.25, tier.Multiplier)

	_, ok = p.DiscountTier("missing")
	assert.False(t, ok)
}

func TestQuickFranchiseBrandsFlagged(t *testing.T) {
	c := Default()
	found := false
	for _, b := range c.Brands {
		if b.IsQuickFranchise {
			found = true
			assert.Greater(t, b.ReputationDrag, 0.0, "quick franchise %s needs a drag", b.ID)
		}
	}
	assert.True(t, found, "catalog should model at least one quick-franchise brand")
}

func TestLoadOverridesAndFallsBack(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "catalog.yaml")
	yml := `
brands:
  - id: test_brand
    name: Test Brand
    exposure_base: 10
    reputation_base: 10
`
	require.NoError(t, os.WriteFile(path, []byte(yml), 0o644))

	c, err := Load(path)
	require.NoError(t, err)

	_, ok := c.Brand("test_brand")
	assert.True(t, ok)
	_, ok = c.Brand("own_label")
	assert.False(t, ok, "brands section was overridden entirely")

	// Untouched sections fall back to defaults.
	_, ok = c.Product("classic_milk_tea")
	assert.True(t, ok)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load("/nonexistent/catalog.yaml")
	assert.Error(t, err)
}
