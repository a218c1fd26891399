// Package sim is the weekly simulation core: a deterministic pipeline that
// takes a game state and a player action and produces the next state. All
// mutation funnels through the dispatcher; GameState itself is replaced,
// never edited in place.
package sim

import "teashop/internal/catalog"

type Phase string

const (
	PhaseSetup     Phase = "setup"
	PhaseOperating Phase = "operating"
	PhaseEnded     Phase = "ended"
)

// EndReason records why the run ended. Empty while the game is live.
type EndReason string

const (
	EndNone      EndReason = ""
	EndWin       EndReason = "win"
	EndBankrupt  EndReason = "bankrupt"
	EndTimeLimit EndReason = "time_limit"
)

// RingID indexes the four concentric distance bands around the shop.
type RingID int

// ConsumerRing models the potential customers in one distance band.
type ConsumerRing struct {
	Weights            map[catalog.CustomerType]float64 `json:"weights"`
	BaseTraffic        float64                          `json:"base_traffic"`
	SeasonalMultiplier float64                          `json:"seasonal_multiplier"`
}

// RestockStrategy controls how inventory refills after each week.
type RestockStrategy string

const (
	RestockFixed      RestockStrategy = "fixed"
	RestockDemand     RestockStrategy = "demand"
	RestockAggressive RestockStrategy = "aggressive"
)

// ProductState is one menu item as configured by the player.
type ProductState struct {
	ProductID string          `json:"product_id"`
	Price     float64         `json:"price"`
	Inventory int             `json:"inventory"`
	Strategy  RestockStrategy `json:"strategy"`
	// StockLevel is the top-up target for the fixed strategy.
	StockLevel int `json:"stock_level"`
}

// Staff is an employee. IDs are stable across weeks.
type Staff struct {
	ID         string            `json:"id"`
	TypeID     string            `json:"type_id"`
	Name       string            `json:"name"`
	Salary     float64           `json:"salary"`
	Morale     float64           `json:"morale"`
	Fatigue    float64           `json:"fatigue"`
	SkillLevel float64           `json:"skill_level"`
	Task       catalog.StaffTask `json:"task"`
	FocusProductID string        `json:"focus_product_id,omitempty"`
	WorkDays   int               `json:"work_days"`
	WorkHours  int               `json:"work_hours"`
}

// NearbyShop is a generated competitor or complement in the neighbourhood.
type NearbyShop struct {
	ID              string               `json:"id"`
	Name            string               `json:"name"`
	Category        catalog.ShopCategory `json:"category"`
	Chain           bool                 `json:"chain"`
	Ring            RingID               `json:"ring"`
	Exposure        float64              `json:"exposure"`
	DecorationLevel int                  `json:"decoration_level"`
	HasDelivery     bool                 `json:"has_delivery"`
	PriceLevel      float64              `json:"price_level"`
	WeeklyProfit    float64              `json:"weekly_profit"`
	// NegativeWeeks counts consecutive loss-making weeks; past the closing
	// threshold the shop is marked closing and, after a grace period, removed.
	NegativeWeeks int  `json:"negative_weeks"`
	IsClosing     bool `json:"is_closing"`
	ClosingWeeks  int  `json:"closing_weeks"`
}

// ActiveMarketing is a running campaign instance.
type ActiveMarketing struct {
	ID        string `json:"id"`
	StartWeek int    `json:"start_week"`
	// Remaining weeks before the campaign ends on its own.
	Remaining int `json:"remaining"`
	// Strength is the current boost fraction, decayed weekly.
	Strength float64 `json:"strength"`
}

// ActivePlatform is a joined delivery platform with its chosen tiers.
type ActivePlatform struct {
	PlatformID     string  `json:"platform_id"`
	DiscountTierID string  `json:"discount_tier_id"`
	PricingTierID  string  `json:"pricing_tier_id"`
	PackagingTierID string `json:"packaging_tier_id"`
	Rating         float64 `json:"rating"`
	PromotionIndex int     `json:"promotion_index"`
}

// Buff is a time-bounded demand modifier applied by an event.
type Buff struct {
	Source      string  `json:"source"`
	ExpiresWeek int     `json:"expires_week"`
	DemandMult  float64 `json:"demand_mult"`
}

// DelayedEffect is an event consequence scheduled for a future week.
type DelayedEffect struct {
	DueWeek         int     `json:"due_week"`
	CashDelta       float64 `json:"cash_delta"`
	ReputationDelta float64 `json:"reputation_delta"`
	ExposureDelta   float64 `json:"exposure_delta"`
	MoraleDelta     float64 `json:"morale_delta"`
	Note            string  `json:"note"`
}

// Cognition gates information fidelity; level only ever goes up.
type Cognition struct {
	Level     int `json:"level"`
	Exp       int `json:"exp"`
	ExpToNext int `json:"exp_to_next"`
}

// PendingEvent is the at-most-one outstanding interactive event.
type PendingEvent struct {
	EventID       string `json:"event_id"`
	OfferedWeek   int    `json:"offered_week"`
	TargetStaffID string `json:"target_staff_id,omitempty"`
}

// WeekSummary is the tick's digest, the piece the UI renders after next_week.
type WeekSummary struct {
	Week         int     `json:"week"`
	Revenue      float64 `json:"revenue"`
	FixedCost    float64 `json:"fixed_cost"`
	VariableCost float64 `json:"variable_cost"`
	Profit       float64 `json:"profit"`
	UnitsSold    int     `json:"units_sold"`
	Stockouts    int     `json:"stockouts"`
	WasteUnits   int     `json:"waste_units"`
	NewShops     int     `json:"new_shops"`
	ClosedShops  int     `json:"closed_shops"`
	EventNote    string  `json:"event_note,omitempty"`
	Alerts       []HealthAlert `json:"alerts,omitempty"`
}

// GameState is the root aggregate. The dispatcher replaces it wholesale; a
// handed-out snapshot is safe to read from any goroutine.
type GameState struct {
	Phase       Phase     `json:"phase"`
	CurrentWeek int       `json:"current_week"`
	TotalWeeks  int       `json:"total_weeks"`
	EndReason   EndReason `json:"end_reason,omitempty"`

	BrandID      string  `json:"brand_id,omitempty"`
	LocationID   string  `json:"location_id,omitempty"`
	AddressID    string  `json:"address_id,omitempty"`
	DecorationID string  `json:"decoration_id,omitempty"`
	StoreArea    float64 `json:"store_area"`

	Products []ProductState `json:"products"`

	Cash               float64   `json:"cash"`
	TotalInvestment    float64   `json:"total_investment"`
	CumulativeProfit   float64   `json:"cumulative_profit"`
	ProfitHistory      []float64 `json:"profit_history"`
	ConsecutiveProfits int       `json:"consecutive_profits"`

	Reputation float64   `json:"reputation"`
	Exposure   float64   `json:"exposure"`
	Cognition  Cognition `json:"cognition"`

	Staff       []Staff                 `json:"staff"`
	NearbyShops []NearbyShop            `json:"nearby_shops"`
	Rings       map[RingID]ConsumerRing `json:"rings"`

	ActiveMarketing  []ActiveMarketing `json:"active_marketing"`
	UsedOneTime      []string          `json:"used_one_time"`
	LastActivityWeek map[string]int    `json:"last_activity_week"`

	Platforms []ActivePlatform `json:"platforms"`

	PendingEvent   *PendingEvent   `json:"pending_event,omitempty"`
	DelayedEffects []DelayedEffect `json:"delayed_effects,omitempty"`
	Buffs          []Buff          `json:"buffs,omitempty"`

	SupplyPriority string       `json:"supply_priority,omitempty"`
	LastWeekEvent  string       `json:"last_week_event,omitempty"`
	Summary        *WeekSummary `json:"summary,omitempty"`
}

// NewGameState creates a fresh setup-phase state.
func NewGameState(startingCash float64, totalWeeks int) GameState {
	return GameState{
		Phase:            PhaseSetup,
		CurrentWeek:      0,
		TotalWeeks:       totalWeeks,
		Cash:             startingCash,
		Cognition:        Cognition{Level: 0, Exp: 0},
		Rings:            map[RingID]ConsumerRing{},
		LastActivityWeek: map[string]int{},
	}
}

// Clone deep-copies the state so a dispatched result never aliases its input.
func (s GameState) Clone() GameState {
	out := s

	out.Products = append([]ProductState(nil), s.Products...)
	out.ProfitHistory = append([]float64(nil), s.ProfitHistory...)
	out.Staff = append([]Staff(nil), s.Staff...)
	out.NearbyShops = append([]NearbyShop(nil), s.NearbyShops...)
	out.ActiveMarketing = append([]ActiveMarketing(nil), s.ActiveMarketing...)
	out.UsedOneTime = append([]string(nil), s.UsedOneTime...)
	out.Platforms = append([]ActivePlatform(nil), s.Platforms...)
	out.DelayedEffects = append([]DelayedEffect(nil), s.DelayedEffects...)
	out.Buffs = append([]Buff(nil), s.Buffs...)

	out.Rings = make(map[RingID]ConsumerRing, len(s.Rings))
	for id, ring := range s.Rings {
		w := make(map[catalog.CustomerType]float64, len(ring.Weights))
		for ct, v := range ring.Weights {
			w[ct] = v
		}
		ring.Weights = w
		out.Rings[id] = ring
	}

	out.LastActivityWeek = make(map[string]int, len(s.LastActivityWeek))
	for k, v := range s.LastActivityWeek {
		out.LastActivityWeek[k] = v
	}

	if s.PendingEvent != nil {
		pe := *s.PendingEvent
		out.PendingEvent = &pe
	}
	if s.Summary != nil {
		sum := *s.Summary
		sum.Alerts = append([]HealthAlert(nil), s.Summary.Alerts...)
		out.Summary = &sum
	}
	return out
}

// SeasonForWeek maps a 1-based week number onto the quarter of a 52-week year.
func SeasonForWeek(week int) catalog.Season {
	if week < 1 {
		week = 1
	}
	switch ((week - 1) / 13) % 4 {
	case 0:
		return catalog.SeasonSpring
	case 1:
		return catalog.SeasonSummer
	case 2:
		return catalog.SeasonAutumn
	default:
		return catalog.SeasonWinter
	}
}

func clampScore(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

func (s *GameState) findStaff(id string) int {
	for i := range s.Staff {
		if s.Staff[i].ID == id {
			return i
		}
	}
	return -1
}

func (s *GameState) findProduct(id string) int {
	for i := range s.Products {
		if s.Products[i].ProductID == id {
			return i
		}
	}
	return -1
}

func (s *GameState) findPlatform(id string) int {
	for i := range s.Platforms {
		if s.Platforms[i].PlatformID == id {
			return i
		}
	}
	return -1
}
