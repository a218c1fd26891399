package catalog

import (
	"os"

	"gopkg.in/yaml.v3"
)

// Default returns the built-in catalog.
func Default() *Catalog {
	c := &Catalog{
		Brands:        defaultBrands(),
		Locations:     defaultLocations(),
		Decorations:   defaultDecorations(),
		Products:      defaultProducts(),
		StaffTypes:    defaultStaffTypes(),
		Marketing:     defaultMarketing(),
		Platforms:     defaultPlatforms(),
		Categories:    defaultCategories(),
		RingDecay:     defaultRingDecay(),
		SeasonTraffic: defaultSeasonTraffic(),
	}
	// Built-in data is authored with unique ids; index only fails on a
	// programming error in the tables above.
	if err := c.index(); err != nil {
		panic(err)
	}
	return c
}

// Load reads a full catalog from a YAML file. Sections left empty in the file
// fall back to the built-in tables.
func Load(path string) (*Catalog, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var c Catalog
	if err := yaml.Unmarshal(b, &c); err != nil {
		return nil, err
	}
	def := Default()
	if len(c.Brands) == 0 {
		c.Brands = def.Brands
	}
	if len(c.Locations) == 0 {
		c.Locations = def.Locations
	}
	if len(c.Decorations) == 0 {
		c.Decorations = def.Decorations
	}
	if len(c.Products) == 0 {
		c.Products = def.Products
	}
	if len(c.StaffTypes) == 0 {
		c.StaffTypes = def.StaffTypes
	}
	if len(c.Marketing) == 0 {
		c.Marketing = def.Marketing
	}
	if len(c.Platforms) == 0 {
		c.Platforms = def.Platforms
	}
	if len(c.Categories) == 0 {
		c.Categories = def.Categories
	}
	if len(c.RingDecay) == 0 {
		c.RingDecay = def.RingDecay
	}
	if len(c.SeasonTraffic) == 0 {
		c.SeasonTraffic = def.SeasonTraffic
	}
	if err := c.index(); err != nil {
		return nil, err
	}
	return &c, nil
}
