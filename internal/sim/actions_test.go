package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDispatch_UnknownActionFailsFast(t *testing.T) {
	e := newTestEngine(t, 1)
	st := e.NewGame()

	_, changed, err := e.Dispatch(st, Action{Type: "paint_the_walls"})
	require.ErrorIs(t, err, ErrUnknownAction)
	assert.False(t, changed)
}

func TestDispatch_SetupFlowAndOpenStore(t *testing.T) {
	e := newTestEngine(t, 5)
	st := openedState(t, e)

	// own_label has no franchise fee: bare fit-out + area fit-out + equipment.
	wantInvestment := 8_000 + e.Balance.FitOutCostPerSqm*40 + e.Balance.EquipmentCost
	assert.Equal(t, wantInvestment, st.TotalInvestment)
	assert.Equal(t, e.Balance.StartingCash-wantInvestment, st.Cash)

	assert.Len(t, st.Rings, 4)
	assert.NotEmpty(t, st.NearbyShops)
	assert.Greater(t, st.Exposure, 0.0)
	assert.Greater(t, st.Reputation, 0.0)
}

func TestDispatch_OpenStoreBlockedWhileIncomplete(t *testing.T) {
	e := newTestEngine(t, 5)
	st := e.NewGame()

	out, changed, err := e.Dispatch(st, Action{Type: ActionOpenStore})
	require.NoError(t, err)
	assert.False(t, changed)
	assert.Equal(t, PhaseSetup, out.Phase)
}

func TestDispatch_PhaseGating(t *testing.T) {
	e := newTestEngine(t, 5)

	setup := e.NewGame()
	_, changed, err := e.Dispatch(setup, Action{Type: ActionHireStaff, StaffTypeID: "barista"})
	require.NoError(t, err)
	assert.False(t, changed, "operating action in setup")

	operating := openedState(t, e)
	_, changed, err = e.Dispatch(operating, Action{Type: ActionSelectBrand, BrandID: "cloudcup"})
	require.NoError(t, err)
	assert.False(t, changed, "setup action while operating")

	ended := operating.Clone()
	ended.Phase = PhaseEnded
	ended.EndReason = EndTimeLimit
	_, changed, err = e.Dispatch(ended, Action{Type: ActionNextWeek})
	require.NoError(t, err)
	assert.False(t, changed, "only restart is allowed after the end")

	ended.Summary = &WeekSummary{Week: ended.CurrentWeek}
	out, changed, err := e.Dispatch(ended, Action{Type: ActionClearSummary})
	require.NoError(t, err)
	assert.False(t, changed, "only restart is allowed after the end")
	assert.NotNil(t, out.Summary, "the final summary stays readable")
}

func TestDispatch_RestartFromAnyPhase(t *testing.T) {
	e := newTestEngine(t, 5)
	st := openedState(t, e)
	st.Phase = PhaseEnded
	st.EndReason = EndBankrupt

	out, changed, err := e.Dispatch(st, Action{Type: ActionRestart})
	require.NoError(t, err)
	require.True(t, changed)
	assert.Equal(t, PhaseSetup, out.Phase)
	assert.Equal(t, e.Balance.StartingCash, out.Cash)
	assert.Empty(t, out.Products)
	assert.Zero(t, out.CurrentWeek)
}

func TestDispatch_SelectLocationResetsAddress(t *testing.T) {
	e := newTestEngine(t, 5)
	st := e.NewGame()

	st, _, err := e.Dispatch(st, Action{Type: ActionSelectLocation, LocationID: "school_street"})
	require.NoError(t, err)
	st, _, err = e.Dispatch(st, Action{Type: ActionSelectAddress, AddressID: "campus_gate"})
	require.NoError(t, err)
	require.Equal(t, "campus_gate", st.AddressID)

	st, changed, err := e.Dispatch(st, Action{Type: ActionSelectLocation, LocationID: "mall"})
	require.NoError(t, err)
	require.True(t, changed)
	assert.Empty(t, st.AddressID)

	// The old address does not belong to the new location.
	_, changed, err = e.Dispatch(st, Action{Type: ActionSelectAddress, AddressID: "campus_gate"})
	require.NoError(t, err)
	assert.False(t, changed)
}

func TestDispatch_ToggleProductAddsAndRemoves(t *testing.T) {
	e := newTestEngine(t, 5)
	st := e.NewGame()

	st, changed, err := e.Dispatch(st, Action{Type: ActionToggleProduct, ProductID: "fruit_tea"})
	require.NoError(t, err)
	require.True(t, changed)
	require.Len(t, st.Products, 1)
	assert.Equal(t, 19.0, st.Products[0].Price, "price defaults to the suggested price")
	assert.Equal(t, RestockDemand, st.Products[0].Strategy)

	st, changed, err = e.Dispatch(st, Action{Type: ActionToggleProduct, ProductID: "fruit_tea"})
	require.NoError(t, err)
	require.True(t, changed)
	assert.Empty(t, st.Products)

	_, changed, err = e.Dispatch(st, Action{Type: ActionToggleProduct, ProductID: "deep_fried_ice"})
	require.NoError(t, err)
	assert.False(t, changed)
}

func TestDispatch_PriceAndInventoryPreconditions(t *testing.T) {
	e := newTestEngine(t, 5)
	st := openedState(t, e)

	st, changed, err := e.Dispatch(st, Action{Type: ActionSetPrice, ProductID: "classic_milk_tea", Price: 16})
	require.NoError(t, err)
	require.True(t, changed)
	assert.Equal(t, 16.0, st.Products[0].Price)

	_, changed, err = e.Dispatch(st, Action{Type: ActionSetPrice, ProductID: "classic_milk_tea", Price: 0})
	require.NoError(t, err)
	assert.False(t, changed)

	_, changed, err = e.Dispatch(st, Action{Type: ActionSetPrice, ProductID: "cold_brew", Price: 10})
	require.NoError(t, err)
	assert.False(t, changed, "product not on the menu")

	st, changed, err = e.Dispatch(st, Action{Type: ActionSetInventory, ProductID: "classic_milk_tea", Inventory: 120})
	require.NoError(t, err)
	require.True(t, changed)
	assert.Equal(t, 120, st.Products[0].Inventory)
	assert.Equal(t, 120, st.Products[0].StockLevel)

	_, changed, err = e.Dispatch(st, Action{Type: ActionSetInventory, ProductID: "classic_milk_tea", Inventory: -1})
	require.NoError(t, err)
	assert.False(t, changed)
}

func TestDispatch_RestockStrategyValidation(t *testing.T) {
	e := newTestEngine(t, 5)
	st := openedState(t, e)

	st, changed, err := e.Dispatch(st, Action{Type: ActionSetRestockStrategy, ProductID: "classic_milk_tea", Strategy: RestockAggressive})
	require.NoError(t, err)
	require.True(t, changed)
	assert.Equal(t, RestockAggressive, st.Products[0].Strategy)

	_, changed, err = e.Dispatch(st, Action{Type: ActionSetRestockStrategy, ProductID: "classic_milk_tea", Strategy: "yolo"})
	require.NoError(t, err)
	assert.False(t, changed)
}

func TestDispatch_HireAndFireStaff(t *testing.T) {
	e := newTestEngine(t, 5)
	st := openedState(t, e)

	st, changed, err := e.Dispatch(st, Action{Type: ActionHireStaff, StaffTypeID: "barista"})
	require.NoError(t, err)
	require.True(t, changed)
	require.Len(t, st.Staff, 1)
	assert.NotEmpty(t, st.Staff[0].ID)
	assert.Equal(t, 1_100.0, st.Staff[0].Salary)
	assert.Equal(t, 70.0, st.Staff[0].Morale)

	st, changed, err = e.Dispatch(st, Action{Type: ActionHireStaff, StaffTypeID: "cashier"})
	require.NoError(t, err)
	require.True(t, changed)
	require.Len(t, st.Staff, 2)

	// Unknown staff id is a precondition failure, not an error.
	_, changed, err = e.Dispatch(st, Action{Type: ActionFireStaff, StaffID: "nobody"})
	require.NoError(t, err)
	assert.False(t, changed)

	moraleBefore := st.Staff[1].Morale
	st, changed, err = e.Dispatch(st, Action{Type: ActionFireStaff, StaffID: st.Staff[0].ID})
	require.NoError(t, err)
	require.True(t, changed)
	require.Len(t, st.Staff, 1)
	assert.Less(t, st.Staff[0].Morale, moraleBefore)
}

func TestDispatch_StaffAdjustments(t *testing.T) {
	e := newTestEngine(t, 5)
	st := openedState(t, e)
	st, _, err := e.Dispatch(st, Action{Type: ActionHireStaff, StaffTypeID: "barista"})
	require.NoError(t, err)
	id := st.Staff[0].ID

	st, changed, err := e.Dispatch(st, Action{Type: ActionSetStaffTask, StaffID: id, Task: "kitchen", ProductID: "classic_milk_tea"})
	require.NoError(t, err)
	require.True(t, changed)
	assert.Equal(t, "classic_milk_tea", st.Staff[0].FocusProductID)

	_, changed, err = e.Dispatch(st, Action{Type: ActionSetStaffTask, StaffID: id, Task: "daydreaming"})
	require.NoError(t, err)
	assert.False(t, changed)

	st, changed, err = e.Dispatch(st, Action{Type: ActionSetStaffHours, StaffID: id, WorkDays: 5, WorkHours: 8})
	require.NoError(t, err)
	require.True(t, changed)
	assert.Equal(t, 5, st.Staff[0].WorkDays)

	_, changed, err = e.Dispatch(st, Action{Type: ActionSetStaffHours, StaffID: id, WorkDays: 8, WorkHours: 8})
	require.NoError(t, err)
	assert.False(t, changed)

	moraleBefore := st.Staff[0].Morale
	st, changed, err = e.Dispatch(st, Action{Type: ActionAdjustSalary, StaffID: id, Salary: 1_400})
	require.NoError(t, err)
	require.True(t, changed)
	assert.Equal(t, 1_400.0, st.Staff[0].Salary)
	assert.Greater(t, st.Staff[0].Morale, moraleBefore, "a raise lifts morale")
}

func TestDispatch_BoostMorale(t *testing.T) {
	e := newTestEngine(t, 5)
	st := openedState(t, e)

	// No staff yet.
	_, changed, err := e.Dispatch(st, Action{Type: ActionBoostMorale})
	require.NoError(t, err)
	assert.False(t, changed)

	st, _, err = e.Dispatch(st, Action{Type: ActionHireStaff, StaffTypeID: "barista"})
	require.NoError(t, err)
	cashBefore := st.Cash
	moraleBefore := st.Staff[0].Morale

	st, changed, err = e.Dispatch(st, Action{Type: ActionBoostMorale})
	require.NoError(t, err)
	require.True(t, changed)
	assert.Equal(t, cashBefore-e.Balance.MoraleBoostCost, st.Cash)
	assert.Equal(t, moraleBefore+e.Balance.MoraleBoostAmount, st.Staff[0].Morale)
}

func TestDispatch_BossActionOncePerWeek(t *testing.T) {
	e := newTestEngine(t, 5)
	st := openedState(t, e)

	expBefore := st.Exposure
	st, changed, err := e.Dispatch(st, Action{Type: ActionBossWeekly, Focus: "street_promo"})
	require.NoError(t, err)
	require.True(t, changed)
	assert.Equal(t, expBefore+2, st.Exposure)

	_, changed, err = e.Dispatch(st, Action{Type: ActionBossWeekly, Focus: "quality_audit"})
	require.NoError(t, err)
	assert.False(t, changed, "one boss action per week")

	_, changed, err = e.Dispatch(st, Action{Type: ActionBossWeekly, Focus: "nap"})
	require.NoError(t, err)
	assert.False(t, changed)
}

func TestDispatch_SupplyPriority(t *testing.T) {
	e := newTestEngine(t, 5)
	st := openedState(t, e)

	st, changed, err := e.Dispatch(st, Action{Type: ActionSetSupplyPriority, ProductID: "classic_milk_tea"})
	require.NoError(t, err)
	require.True(t, changed)
	assert.Equal(t, "classic_milk_tea", st.SupplyPriority)

	_, changed, err = e.Dispatch(st, Action{Type: ActionSetSupplyPriority, ProductID: "cold_brew"})
	require.NoError(t, err)
	assert.False(t, changed, "priority must be on the menu")

	st, changed, err = e.Dispatch(st, Action{Type: ActionSetSupplyPriority})
	require.NoError(t, err)
	require.True(t, changed)
	assert.Empty(t, st.SupplyPriority)
}

func TestDispatch_MarketingLifecycle(t *testing.T) {
	e := newTestEngine(t, 5)
	st := openedState(t, e)
	cashBefore := st.Cash

	st, changed, err := e.Dispatch(st, Action{Type: ActionStartMarketing, ActivityID: "grand_opening"})
	require.NoError(t, err)
	require.True(t, changed)
	require.Len(t, st.ActiveMarketing, 1)
	assert.Equal(t, cashBefore-8_000, st.Cash)
	assert.Contains(t, st.UsedOneTime, "grand_opening")

	// Already running.
	_, changed, err = e.Dispatch(st, Action{Type: ActionStartMarketing, ActivityID: "grand_opening"})
	require.NoError(t, err)
	assert.False(t, changed)

	expBefore := st.Exposure
	st, changed, err = e.Dispatch(st, Action{Type: ActionStopMarketing, ActivityID: "grand_opening"})
	require.NoError(t, err)
	require.True(t, changed)
	assert.Empty(t, st.ActiveMarketing)
	assert.Less(t, st.Exposure, expBefore, "dependent exposure collapses on stop")

	// One-time activities stay used after stopping.
	_, changed, err = e.Dispatch(st, Action{Type: ActionStartMarketing, ActivityID: "grand_opening"})
	require.NoError(t, err)
	assert.False(t, changed)

	_, changed, err = e.Dispatch(st, Action{Type: ActionStopMarketing, ActivityID: "flyers"})
	require.NoError(t, err)
	assert.False(t, changed, "cannot stop what is not running")
}

func TestDispatch_PlatformLifecycle(t *testing.T) {
	e := newTestEngine(t, 5)
	st := openedState(t, e)
	cashBefore := st.Cash

	st, changed, err := e.Dispatch(st, Action{Type: ActionJoinPlatform, PlatformID: "pandago"})
	require.NoError(t, err)
	require.True(t, changed)
	require.Len(t, st.Platforms, 1)
	assert.Equal(t, cashBefore-3_000, st.Cash)
	assert.Equal(t, "none", st.Platforms[0].DiscountTierID)

	// Duplicate join is rejected without error.
	same, changed, err := e.Dispatch(st, Action{Type: ActionJoinPlatform, PlatformID: "pandago"})
	require.NoError(t, err)
	assert.False(t, changed)
	assert.Equal(t, st.Cash, same.Cash)

	st, changed, err = e.Dispatch(st, Action{
		Type: ActionConfigurePlatform, PlatformID: "pandago",
		DiscountTierID: "heavy", PackagingTierID: "sealed", PromotionIndex: 1,
	})
	require.NoError(t, err)
	require.True(t, changed)
	assert.Equal(t, "heavy", st.Platforms[0].DiscountTierID)
	assert.Equal(t, "sealed", st.Platforms[0].PackagingTierID)
	assert.Equal(t, 1, st.Platforms[0].PromotionIndex)

	_, changed, err = e.Dispatch(st, Action{Type: ActionConfigurePlatform, PlatformID: "pandago", DiscountTierID: "mythical"})
	require.NoError(t, err)
	assert.False(t, changed)

	st, changed, err = e.Dispatch(st, Action{Type: ActionLeavePlatform, PlatformID: "pandago"})
	require.NoError(t, err)
	require.True(t, changed)
	assert.Empty(t, st.Platforms)

	_, changed, err = e.Dispatch(st, Action{Type: ActionLeavePlatform, PlatformID: "pandago"})
	require.NoError(t, err)
	assert.False(t, changed)
}

func TestDispatch_RespondEvent(t *testing.T) {
	e := newTestEngine(t, 5)
	st := openedState(t, e)

	// Nothing pending.
	_, changed, err := e.Dispatch(st, Action{Type: ActionRespondEvent, OptionID: "pay_rush"})
	require.NoError(t, err)
	assert.False(t, changed)

	st.PendingEvent = &PendingEvent{EventID: "health_inspection", OfferedWeek: st.CurrentWeek}

	_, _, err = e.Dispatch(st, Action{Type: ActionRespondEvent, OptionID: "bribe"})
	require.ErrorIs(t, err, ErrInvalidOption)

	out, changed, err := e.Dispatch(st, Action{Type: ActionRespondEvent, OptionID: "full_tour"})
	require.NoError(t, err)
	require.True(t, changed)
	assert.Nil(t, out.PendingEvent)
	assert.Len(t, out.DelayedEffects, 1)
	assert.Greater(t, out.Reputation, st.Reputation)
}

func TestDispatch_ConsultAdvisor(t *testing.T) {
	e := newTestEngine(t, 5)
	st := openedState(t, e)
	cashBefore := st.Cash
	expBefore := st.Cognition.Exp

	st, changed, err := e.Dispatch(st, Action{Type: ActionConsultAdvisor})
	require.NoError(t, err)
	require.True(t, changed)
	assert.Equal(t, cashBefore-e.Balance.AdvisorFee, st.Cash)
	assert.Greater(t, st.Cognition.Exp+st.Cognition.Level*100, expBefore, "exp or level moved")

	st.Cash = 10
	_, changed, err = e.Dispatch(st, Action{Type: ActionConsultAdvisor})
	require.NoError(t, err)
	assert.False(t, changed, "advisor fee unaffordable")
}

func TestDispatch_ClearSummary(t *testing.T) {
	e := newTestEngine(t, 5)
	st := openedState(t, e)

	_, changed, err := e.Dispatch(st, Action{Type: ActionClearSummary})
	require.NoError(t, err)
	assert.False(t, changed)

	st.Summary = &WeekSummary{Week: 1}
	out, changed, err := e.Dispatch(st, Action{Type: ActionClearSummary})
	require.NoError(t, err)
	require.True(t, changed)
	assert.Nil(t, out.Summary)
}
