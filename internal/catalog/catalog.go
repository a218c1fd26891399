// Package catalog holds the static gameplay data: brands, locations,
// products, staff types, marketing activities and delivery platforms.
// The tables are loaded once at startup and treated as read-only; the
// simulation receives a *Catalog and never mutates it.
package catalog

import "fmt"

// CustomerType is one of the consumer segments the ring model tracks.
type CustomerType string

const (
	CustomerStudent  CustomerType = "student"
	CustomerWorker   CustomerType = "worker"
	CustomerResident CustomerType = "resident"
	CustomerTourist  CustomerType = "tourist"
)

// CustomerTypes lists every segment in stable order.
var CustomerTypes = []CustomerType{CustomerStudent, CustomerWorker, CustomerResident, CustomerTourist}

// RingCount is the number of concentric distance bands around the shop.
const RingCount = 4

// Season tags the quarter of the simulated year.
type Season string

const (
	SeasonSpring Season = "spring"
	SeasonSummer Season = "summer"
	SeasonAutumn Season = "autumn"
	SeasonWinter Season = "winter"
)

type Catalog struct {
	Brands      []Brand             `yaml:"brands"`
	Locations   []Location          `yaml:"locations"`
	Decorations []Decoration        `yaml:"decorations"`
	Products    []Product           `yaml:"products"`
	StaffTypes  []StaffType         `yaml:"staff_types"`
	Marketing   []MarketingActivity `yaml:"marketing"`
	Platforms   []Platform          `yaml:"platforms"`
	Categories  []CategoryProfile   `yaml:"categories"`

	// RingDecay maps a customer type to its reach falloff per ring. Farther
	// rings contribute fewer customers, with a segment-specific shape.
	RingDecay map[CustomerType][RingCount]float64 `yaml:"ring_decay"`

	// SeasonTraffic scales each ring's base traffic by season.
	SeasonTraffic map[Season][RingCount]float64 `yaml:"season_traffic"`

	brandByID    map[string]*Brand
	locationByID map[string]*Location
	decoByID     map[string]*Decoration
	productByID  map[string]*Product
	staffByID    map[string]*StaffType
	mktByID      map[string]*MarketingActivity
	platformByID map[string]*Platform
	catByID      map[ShopCategory]*CategoryProfile
}

// index builds the lookup maps and checks id uniqueness.
func (c *Catalog) index() error {
	c.brandByID = map[string]*Brand{}
	for i := range c.Brands {
		b := &c.Brands[i]
		if _, dup := c.brandByID[b.ID]; dup {
			return fmt.Errorf("duplicate brand id: %s", b.ID)
		}
		c.brandByID[b.ID] = b
	}
	c.locationByID = map[string]*Location{}
	for i := range c.Locations {
		l := &c.Locations[i]
		if _, dup := c.locationByID[l.ID]; dup {
			return fmt.Errorf("duplicate location id: %s", l.ID)
		}
		c.locationByID[l.ID] = l
	}
	c.decoByID = map[string]*Decoration{}
	for i := range c.Decorations {
		d := &c.Decorations[i]
		if _, dup := c.decoByID[d.ID]; dup {
			return fmt.Errorf("duplicate decoration id: %s", d.ID)
		}
		c.decoByID[d.ID] = d
	}
	c.productByID = map[string]*Product{}
	for i := range c.Products {
		p := &c.Products[i]
		if _, dup := c.productByID[p.ID]; dup {
			return fmt.Errorf("duplicate product id: %s", p.ID)
		}
		c.productByID[p.ID] = p
	}
	c.staffByID = map[string]*StaffType{}
	for i := range c.StaffTypes {
		s := &c.StaffTypes[i]
		if _, dup := c.staffByID[s.ID]; dup {
			return fmt.Errorf("duplicate staff type id: %s", s.ID)
		}
		c.staffByID[s.ID] = s
	}
	c.mktByID = map[string]*MarketingActivity{}
	for i := range c.Marketing {
		m := &c.Marketing[i]
		if _, dup := c.mktByID[m.ID]; dup {
			return fmt.Errorf("duplicate marketing id: %s", m.ID)
		}
		c.mktByID[m.ID] = m
	}
	c.platformByID = map[string]*Platform{}
	for i := range c.Platforms {
		p := &c.Platforms[i]
		if _, dup := c.platformByID[p.ID]; dup {
			return fmt.Errorf("duplicate platform id: %s", p.ID)
		}
		c.platformByID[p.ID] = p
	}
	c.catByID = map[ShopCategory]*CategoryProfile{}
	for i := range c.Categories {
		p := &c.Categories[i]
		if _, dup := c.catByID[p.Category]; dup {
			return fmt.Errorf("duplicate shop category: %s", p.Category)
		}
		c.catByID[p.Category] = p
	}
	return nil
}

func (c *Catalog) Brand(id string) (*Brand, bool) {
	b, ok := c.brandByID[id]
	return b, ok
}

func (c *Catalog) Location(id string) (*Location, bool) {
	l, ok := c.locationByID[id]
	return l, ok
}

func (c *Catalog) Decoration(id string) (*Decoration, bool) {
	d, ok := c.decoByID[id]
	return d, ok
}

func (c *Catalog) Product(id string) (*Product, bool) {
	p, ok := c.productByID[id]
	return p, ok
}

func (c *Catalog) StaffType(id string) (*StaffType, bool) {
	s, ok := c.staffByID[id]
	return s, ok
}

func (c *Catalog) MarketingActivity(id string) (*MarketingActivity, bool) {
	m, ok := c.mktByID[id]
	return m, ok
}

func (c *Catalog) Platform(id string) (*Platform, bool) {
	p, ok := c.platformByID[id]
	return p, ok
}

func (c *Catalog) Category(id ShopCategory) (*CategoryProfile, bool) {
	p, ok := c.catByID[id]
	return p, ok
}
