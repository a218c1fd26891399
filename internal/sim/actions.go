package sim

import (
	"errors"
	"fmt"

	"github.com/google/uuid"

	"teashop/internal/catalog"
	"teashop/internal/telemetry"
)

// ActionType tags a player command.
type ActionType string

const (
	ActionSelectBrand        ActionType = "select_brand"
	ActionSelectLocation     ActionType = "select_location"
	ActionSelectAddress      ActionType = "select_address"
	ActionSetStoreArea       ActionType = "set_store_area"
	ActionSelectDecoration   ActionType = "select_decoration"
	ActionToggleProduct      ActionType = "toggle_product"
	ActionOpenStore          ActionType = "open_store"
	ActionSetPrice           ActionType = "set_price"
	ActionSetInventory       ActionType = "set_inventory"
	ActionSetRestockStrategy ActionType = "set_restock_strategy"
	ActionHireStaff          ActionType = "hire_staff"
	ActionFireStaff          ActionType = "fire_staff"
	ActionSetStaffTask       ActionType = "set_staff_task"
	ActionSetStaffHours      ActionType = "set_staff_hours"
	ActionAdjustSalary       ActionType = "adjust_salary"
	ActionBoostMorale        ActionType = "boost_morale"
	ActionBossWeekly         ActionType = "boss_weekly_action"
	ActionSetSupplyPriority  ActionType = "set_supply_priority"
	ActionStartMarketing     ActionType = "start_marketing"
	ActionStopMarketing      ActionType = "stop_marketing"
	ActionJoinPlatform       ActionType = "join_platform"
	ActionLeavePlatform      ActionType = "leave_platform"
	ActionConfigurePlatform  ActionType = "configure_platform"
	ActionRespondEvent       ActionType = "respond_event"
	ActionNextWeek           ActionType = "next_week"
	ActionConsultAdvisor     ActionType = "consult_advisor"
	ActionRestart            ActionType = "restart"
	ActionClearSummary       ActionType = "clear_summary"
)

// ErrUnknownAction is returned for a tag the dispatcher does not know.
// Everything else that goes wrong is a precondition failure: same state back,
// changed=false, no error.
var ErrUnknownAction = errors.New("unknown action")

// Action is one player command. Only the fields the tag needs are read.
type Action struct {
	Type ActionType `json:"type"`

	BrandID      string  `json:"brand_id,omitempty"`
	LocationID   string  `json:"location_id,omitempty"`
	AddressID    string  `json:"address_id,omitempty"`
	DecorationID string  `json:"decoration_id,omitempty"`
	Area         float64 `json:"area,omitempty"`

	ProductID string          `json:"product_id,omitempty"`
	Price     float64         `json:"price,omitempty"`
	Inventory int             `json:"inventory,omitempty"`
	Strategy  RestockStrategy `json:"strategy,omitempty"`

	StaffTypeID string            `json:"staff_type_id,omitempty"`
	StaffID     string            `json:"staff_id,omitempty"`
	Task        catalog.StaffTask `json:"task,omitempty"`
	WorkDays    int               `json:"work_days,omitempty"`
	WorkHours   int               `json:"work_hours,omitempty"`
	Salary      float64           `json:"salary,omitempty"`

	ActivityID string `json:"activity_id,omitempty"`

	PlatformID      string `json:"platform_id,omitempty"`
	DiscountTierID  string `json:"discount_tier_id,omitempty"`
	PricingTierID   string `json:"pricing_tier_id,omitempty"`
	PackagingTierID string `json:"packaging_tier_id,omitempty"`
	PromotionIndex  int    `json:"promotion_index,omitempty"`

	OptionID string `json:"option_id,omitempty"`
	Focus    string `json:"focus,omitempty"`
}

var setupOnly = map[ActionType]bool{
	ActionSelectBrand:      true,
	ActionSelectLocation:   true,
	ActionSelectAddress:    true,
	ActionSetStoreArea:     true,
	ActionSelectDecoration: true,
	ActionOpenStore:        true,
}

var operatingOnly = map[ActionType]bool{
	ActionSetPrice:           true,
	ActionSetInventory:       true,
	ActionSetRestockStrategy: true,
	ActionHireStaff:          true,
	ActionFireStaff:          true,
	ActionSetStaffTask:       true,
	ActionSetStaffHours:      true,
	ActionAdjustSalary:       true,
	ActionBoostMorale:        true,
	ActionBossWeekly:         true,
	ActionSetSupplyPriority:  true,
	ActionStartMarketing:     true,
	ActionStopMarketing:      true,
	ActionJoinPlatform:       true,
	ActionLeavePlatform:      true,
	ActionConfigurePlatform:  true,
	ActionRespondEvent:       true,
	ActionNextWeek:           true,
	ActionConsultAdvisor:     true,
}

// Dispatch applies one action to a state. The returned bool reports whether
// anything changed; preconditions that fail hand the input state back
// unchanged without an error.
func (e *Engine) Dispatch(st GameState, a Action) (GameState, bool, error) {
	out, changed, err := e.dispatch(st, a)
	switch {
	case err != nil:
		e.record(telemetry.EventActionRejected, telemetry.EventMetadata{"action": string(a.Type), "error": err.Error()})
	case !changed:
		e.record(telemetry.EventActionRejected, telemetry.EventMetadata{"action": string(a.Type)})
	default:
		e.record(telemetry.EventActionDispatched, telemetry.EventMetadata{"action": string(a.Type), "week": out.CurrentWeek})
	}
	return out, changed, err
}

func (e *Engine) dispatch(st GameState, a Action) (GameState, bool, error) {
	if a.Type == ActionRestart {
		return e.NewGame(), true, nil
	}

	if st.Phase == PhaseEnded {
		return st, false, nil
	}

	if a.Type == ActionClearSummary {
		if st.Summary == nil {
			return st, false, nil
		}
		out := st.Clone()
		out.Summary = nil
		return out, true, nil
	}
	if setupOnly[a.Type] && st.Phase != PhaseSetup {
		return st, false, nil
	}
	if operatingOnly[a.Type] && st.Phase != PhaseOperating {
		return st, false, nil
	}

	switch a.Type {
	case ActionSelectBrand:
		return e.selectBrand(st, a)
	case ActionSelectLocation:
		return e.selectLocation(st, a)
	case ActionSelectAddress:
		return e.selectAddress(st, a)
	case ActionSetStoreArea:
		return e.setStoreArea(st, a)
	case ActionSelectDecoration:
		return e.selectDecoration(st, a)
	case ActionToggleProduct:
		return e.toggleProduct(st, a)
	case ActionOpenStore:
		return e.openStore(st)
	case ActionSetPrice:
		return e.setPrice(st, a)
	case ActionSetInventory:
		return e.setInventory(st, a)
	case ActionSetRestockStrategy:
		return e.setRestockStrategy(st, a)
	case ActionHireStaff:
		return e.hireStaff(st, a)
	case ActionFireStaff:
		return e.fireStaff(st, a)
	case ActionSetStaffTask:
		return e.setStaffTask(st, a)
	case ActionSetStaffHours:
		return e.setStaffHours(st, a)
	case ActionAdjustSalary:
		return e.adjustSalary(st, a)
	case ActionBoostMorale:
		return e.boostMorale(st)
	case ActionBossWeekly:
		return e.bossWeeklyAction(st, a)
	case ActionSetSupplyPriority:
		return e.setSupplyPriority(st, a)
	case ActionStartMarketing:
		return e.startMarketing(st, a)
	case ActionStopMarketing:
		return e.stopMarketing(st, a)
	case ActionJoinPlatform:
		return e.joinPlatform(st, a)
	case ActionLeavePlatform:
		return e.leavePlatform(st, a)
	case ActionConfigurePlatform:
		return e.configurePlatform(st, a)
	case ActionRespondEvent:
		return e.respondEvent(st, a)
	case ActionNextWeek:
		return e.nextWeek(st)
	case ActionConsultAdvisor:
		return e.consultAdvisor(st)
	default:
		return st, false, fmt.Errorf("%w: %q", ErrUnknownAction, a.Type)
	}
}

func (e *Engine) selectBrand(st GameState, a Action) (GameState, bool, error) {
	if _, ok := e.Catalog.Brand(a.BrandID); !ok {
		return st, false, nil
	}
	out := st.Clone()
	out.BrandID = a.BrandID
	return out, true, nil
}

func (e *Engine) selectLocation(st GameState, a Action) (GameState, bool, error) {
	if _, ok := e.Catalog.Location(a.LocationID); !ok {
		return st, false, nil
	}
	out := st.Clone()
	out.LocationID = a.LocationID
	// Addresses belong to a location; a previous pick is stale now.
	out.AddressID = ""
	return out, true, nil
}

func (e *Engine) selectAddress(st GameState, a Action) (GameState, bool, error) {
	loc, ok := e.Catalog.Location(st.LocationID)
	if !ok {
		return st, false, nil
	}
	found := false
	for _, addr := range loc.Addresses {
		if addr.ID == a.AddressID {
			found = true
			break
		}
	}
	if !found {
		return st, false, nil
	}
	out := st.Clone()
	out.AddressID = a.AddressID
	return out, true, nil
}

func (e *Engine) setStoreArea(st GameState, a Action) (GameState, bool, error) {
	if a.Area < 10 || a.Area > 500 {
		return st, false, nil
	}
	out := st.Clone()
	out.StoreArea = a.Area
	return out, true, nil
}

func (e *Engine) selectDecoration(st GameState, a Action) (GameState, bool, error) {
	if _, ok := e.Catalog.Decoration(a.DecorationID); !ok {
		return st, false, nil
	}
	out := st.Clone()
	out.DecorationID = a.DecorationID
	return out, true, nil
}

func (e *Engine) toggleProduct(st GameState, a Action) (GameState, bool, error) {
	prod, ok := e.Catalog.Product(a.ProductID)
	if !ok {
		return st, false, nil
	}
	out := st.Clone()
	if i := out.findProduct(a.ProductID); i >= 0 {
		out.Products = append(out.Products[:i], out.Products[i+1:]...)
		return out, true, nil
	}
	out.Products = append(out.Products, ProductState{
		ProductID:  prod.ID,
		Price:      prod.SuggestedPrice,
		Strategy:   RestockDemand,
		StockLevel: 80,
	})
	return out, true, nil
}

func (e *Engine) openStore(st GameState) (GameState, bool, error) {
	brand, okB := e.Catalog.Brand(st.BrandID)
	loc, okL := e.Catalog.Location(st.LocationID)
	deco, okD := e.Catalog.Decoration(st.DecorationID)
	if !okB || !okL || !okD || st.AddressID == "" || st.StoreArea <= 0 || len(st.Products) == 0 {
		return st, false, nil
	}
	var addr *catalog.Address
	for i := range loc.Addresses {
		if loc.Addresses[i].ID == st.AddressID {
			addr = &loc.Addresses[i]
		}
	}
	if addr == nil {
		return st, false, nil
	}

	investment := brand.FranchiseFee + deco.Cost +
		e.Balance.FitOutCostPerSqm*st.StoreArea + e.Balance.EquipmentCost
	if investment > st.Cash {
		return st, false, nil
	}

	out := st.Clone()
	out.Cash -= investment
	out.TotalInvestment = investment
	out.Exposure = clampScore(brand.ExposureBase + deco.ExposureBonus)
	out.Reputation = clampScore(brand.ReputationBase + deco.ReputationBonus)

	out.Rings = GenerateConsumerRings(e.Catalog, loc, addr)
	shops := GenerateInitialShops(e.Catalog, loc, e.RNG)
	out.NearbyShops = AssignNearbyShopsToConsumerRings(e.Catalog, shops, e.RNG)

	out.Phase = PhaseOperating
	e.record(telemetry.EventShopOpened, telemetry.EventMetadata{
		"brand": brand.ID, "location": loc.ID, "investment": investment,
	})
	e.Log.Info("store opened",
		"brand", brand.ID,
		"location", loc.ID,
		"address", addr.ID,
		"investment", investment,
	)
	return out, true, nil
}

func (e *Engine) setPrice(st GameState, a Action) (GameState, bool, error) {
	i := st.findProduct(a.ProductID)
	if i < 0 || a.Price <= 0 {
		return st, false, nil
	}
	out := st.Clone()
	out.Products[i].Price = a.Price
	return out, true, nil
}

func (e *Engine) setInventory(st GameState, a Action) (GameState, bool, error) {
	i := st.findProduct(a.ProductID)
	if i < 0 || a.Inventory < 0 {
		return st, false, nil
	}
	out := st.Clone()
	out.Products[i].Inventory = a.Inventory
	out.Products[i].StockLevel = a.Inventory
	return out, true, nil
}

func (e *Engine) setRestockStrategy(st GameState, a Action) (GameState, bool, error) {
	switch a.Strategy {
	case RestockFixed, RestockDemand, RestockAggressive:
	default:
		return st, false, nil
	}
	i := st.findProduct(a.ProductID)
	if i < 0 {
		return st, false, nil
	}
	out := st.Clone()
	out.Products[i].Strategy = a.Strategy
	return out, true, nil
}

func (e *Engine) hireStaff(st GameState, a Action) (GameState, bool, error) {
	typ, ok := e.Catalog.StaffType(a.StaffTypeID)
	if !ok {
		return st, false, nil
	}
	out := st.Clone()
	out.Staff = append(out.Staff, Staff{
		ID:         uuid.NewString(),
		TypeID:     typ.ID,
		Name:       typ.Name,
		Salary:     typ.WeeklyWage,
		Morale:     70,
		SkillLevel: typ.BaseSkill,
		Task:       typ.DefaultTask,
		WorkDays:   6,
		WorkHours:  9,
	})
	return out, true, nil
}

func (e *Engine) fireStaff(st GameState, a Action) (GameState, bool, error) {
	i := st.findStaff(a.StaffID)
	if i < 0 {
		return st, false, nil
	}
	out := st.Clone()
	out.Staff = append(out.Staff[:i], out.Staff[i+1:]...)
	// Layoffs rattle the rest of the crew.
	for j := range out.Staff {
		out.Staff[j].Morale = clampScore(out.Staff[j].Morale - 3)
	}
	return out, true, nil
}

func (e *Engine) setStaffTask(st GameState, a Action) (GameState, bool, error) {
	switch a.Task {
	case catalog.TaskCounter, catalog.TaskKitchen, catalog.TaskDelivery, catalog.TaskPromo:
	default:
		return st, false, nil
	}
	i := st.findStaff(a.StaffID)
	if i < 0 {
		return st, false, nil
	}
	if a.ProductID != "" {
		if _, ok := e.Catalog.Product(a.ProductID); !ok {
			return st, false, nil
		}
	}
	out := st.Clone()
	out.Staff[i].Task = a.Task
	out.Staff[i].FocusProductID = a.ProductID
	return out, true, nil
}

func (e *Engine) setStaffHours(st GameState, a Action) (GameState, bool, error) {
	i := st.findStaff(a.StaffID)
	if i < 0 || a.WorkDays < 1 || a.WorkDays > 7 || a.WorkHours < 4 || a.WorkHours > 14 {
		return st, false, nil
	}
	out := st.Clone()
	out.Staff[i].WorkDays = a.WorkDays
	out.Staff[i].WorkHours = a.WorkHours
	return out, true, nil
}

func (e *Engine) adjustSalary(st GameState, a Action) (GameState, bool, error) {
	i := st.findStaff(a.StaffID)
	if i < 0 || a.Salary <= 0 {
		return st, false, nil
	}
	out := st.Clone()
	prev := out.Staff[i].Salary
	out.Staff[i].Salary = a.Salary
	if prev > 0 {
		out.Staff[i].Morale = clampScore(out.Staff[i].Morale + (a.Salary-prev)/prev*20)
	}
	return out, true, nil
}

func (e *Engine) boostMorale(st GameState) (GameState, bool, error) {
	if len(st.Staff) == 0 || st.Cash < e.Balance.MoraleBoostCost {
		return st, false, nil
	}
	out := st.Clone()
	out.Cash -= e.Balance.MoraleBoostCost
	for i := range out.Staff {
		out.Staff[i].Morale = clampScore(out.Staff[i].Morale + e.Balance.MoraleBoostAmount)
	}
	return out, true, nil
}

// bossWeeklyAction is the owner's one personal move per week: a shift at the
// counter, a street promo run, or a quality audit.
func (e *Engine) bossWeeklyAction(st GameState, a Action) (GameState, bool, error) {
	if w, ok := st.LastActivityWeek["boss_action"]; ok && w == st.CurrentWeek {
		return st, false, nil
	}
	out := st.Clone()
	switch a.Focus {
	case "front_counter":
		out.Buffs = append(out.Buffs, Buff{
			Source:      "boss_front_counter",
			ExpiresWeek: out.CurrentWeek + 1,
			DemandMult:  1.05,
		})
	case "street_promo":
		out.Exposure = clampScore(out.Exposure + 2)
	case "quality_audit":
		out.Reputation = clampScore(out.Reputation + 1.5)
	default:
		return st, false, nil
	}
	out.LastActivityWeek["boss_action"] = out.CurrentWeek
	return out, true, nil
}

func (e *Engine) setSupplyPriority(st GameState, a Action) (GameState, bool, error) {
	if a.ProductID != "" && st.findProduct(a.ProductID) < 0 {
		return st, false, nil
	}
	out := st.Clone()
	out.SupplyPriority = a.ProductID
	return out, true, nil
}

func (e *Engine) startMarketing(st GameState, a Action) (GameState, bool, error) {
	act, ok := e.Catalog.MarketingActivity(a.ActivityID)
	if !ok || !canStartMarketing(act, st) {
		return st, false, nil
	}
	out := st.Clone()
	out.Cash -= act.Cost
	out.ActiveMarketing = append(out.ActiveMarketing, ActiveMarketing{
		ID:        act.ID,
		StartWeek: out.CurrentWeek,
		Remaining: act.DurationWeeks,
		Strength:  1.0,
	})
	// Launch-week splash, with the rest trickling in via weekly decay.
	out.Exposure = clampScore(out.Exposure + act.ExposureBoost*0.5)
	out.Reputation = clampScore(out.Reputation + act.ReputationBoost*0.5)
	if act.OneTime {
		out.UsedOneTime = append(out.UsedOneTime, act.ID)
	}
	out.LastActivityWeek[act.ID] = out.CurrentWeek
	return out, true, nil
}

func (e *Engine) stopMarketing(st GameState, a Action) (GameState, bool, error) {
	idx := -1
	for i := range st.ActiveMarketing {
		if st.ActiveMarketing[i].ID == a.ActivityID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return st, false, nil
	}
	out := st.Clone()
	am := out.ActiveMarketing[idx]
	out.ActiveMarketing = append(out.ActiveMarketing[:idx], out.ActiveMarketing[idx+1:]...)
	if act, ok := e.Catalog.MarketingActivity(am.ID); ok {
		clawback := act.ExposureBoost * act.DependencyRisk * 0.5 * am.Strength
		out.Exposure = clampScore(out.Exposure - clawback)
	}
	return out, true, nil
}

func (e *Engine) joinPlatform(st GameState, a Action) (GameState, bool, error) {
	p, ok := e.Catalog.Platform(a.PlatformID)
	if !ok || st.findPlatform(a.PlatformID) >= 0 || st.Cash < p.JoinFee {
		return st, false, nil
	}
	out := st.Clone()
	out.Cash -= p.JoinFee
	out.Platforms = append(out.Platforms, ActivePlatform{
		PlatformID:      p.ID,
		DiscountTierID:  p.DiscountTiers[0].ID,
		PricingTierID:   p.PricingTiers[0].ID,
		PackagingTierID: p.PackagingTiers[0].ID,
		Rating:          4.0,
	})
	return out, true, nil
}

func (e *Engine) leavePlatform(st GameState, a Action) (GameState, bool, error) {
	i := st.findPlatform(a.PlatformID)
	if i < 0 {
		return st, false, nil
	}
	out := st.Clone()
	out.Platforms = append(out.Platforms[:i], out.Platforms[i+1:]...)
	return out, true, nil
}

func (e *Engine) configurePlatform(st GameState, a Action) (GameState, bool, error) {
	i := st.findPlatform(a.PlatformID)
	if i < 0 {
		return st, false, nil
	}
	p, _ := e.Catalog.Platform(a.PlatformID)
	if a.DiscountTierID != "" {
		if _, ok := p.DiscountTier(a.DiscountTierID); !ok {
			return st, false, nil
		}
	}
	if a.PricingTierID != "" {
		if _, ok := p.PricingTier(a.PricingTierID); !ok {
			return st, false, nil
		}
	}
	if a.PackagingTierID != "" {
		if _, ok := p.PackagingTier(a.PackagingTierID); !ok {
			return st, false, nil
		}
	}
	if a.PromotionIndex < 0 || a.PromotionIndex >= len(p.Promotions) {
		return st, false, nil
	}
	out := st.Clone()
	ap := &out.Platforms[i]
	if a.DiscountTierID != "" {
		ap.DiscountTierID = a.DiscountTierID
	}
	if a.PricingTierID != "" {
		ap.PricingTierID = a.PricingTierID
	}
	if a.PackagingTierID != "" {
		ap.PackagingTierID = a.PackagingTierID
	}
	ap.PromotionIndex = a.PromotionIndex
	return out, true, nil
}

func (e *Engine) respondEvent(st GameState, a Action) (GameState, bool, error) {
	if st.PendingEvent == nil {
		return st, false, nil
	}
	out, err := ApplyEventEffects(e.Events, st, a.OptionID)
	if err != nil {
		return st, false, err
	}
	return out, true, nil
}

func (e *Engine) nextWeek(st GameState) (GameState, bool, error) {
	if st.PendingEvent != nil {
		return st, false, nil
	}
	return e.AdvanceWeek(st), true, nil
}

func (e *Engine) consultAdvisor(st GameState) (GameState, bool, error) {
	if st.Cash < e.Balance.AdvisorFee {
		return st, false, nil
	}
	out := st.Clone()
	out.Cash -= e.Balance.AdvisorFee
	out.Cognition = gainCognition(out.Cognition, e.Balance.AdvisorExp, e.Balance.ExpToNext)
	return out, true, nil
}
