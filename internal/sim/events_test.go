package sim

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"teashop/internal/rng"
)

func TestRollInteractiveEvent_NeverStacksOnPending(t *testing.T) {
	defs := DefaultEvents()
	st := NewGameState(100_000, 52)
	st.Phase = PhaseOperating
	st.PendingEvent = &PendingEvent{EventID: "health_inspection", OfferedWeek: 1}

	for seed := int64(0); seed < 10; seed++ {
		assert.Nil(t, RollInteractiveEvent(defs, st, rng.New(seed)))
	}
}

func TestRollInteractiveEvent_RespectsContexts(t *testing.T) {
	defs := []EventDef{
		{ID: "delivery_only", Weight: 1, Contexts: []EventContext{CtxHasDelivery}},
	}
	st := NewGameState(100_000, 52)
	st.Phase = PhaseOperating

	assert.Nil(t, RollInteractiveEvent(defs, st, rng.New(1)), "no delivery, no event")

	st.Platforms = []ActivePlatform{{PlatformID: "pandago"}}
	pe := RollInteractiveEvent(defs, st, rng.New(1))
	require.NotNil(t, pe)
	assert.Equal(t, "delivery_only", pe.EventID)
	assert.Equal(t, st.CurrentWeek, pe.OfferedWeek)
}

func TestRollInteractiveEvent_PoachTargetsHighestSkill(t *testing.T) {
	defs := DefaultEvents()
	var poach EventDef
	for _, d := range defs {
		if d.ID == "poach_offer" {
			poach = d
		}
	}
	require.NotEmpty(t, poach.ID)

	st := NewGameState(100_000, 52)
	st.Phase = PhaseOperating
	st.Staff = []Staff{
		{ID: "junior", SkillLevel: 2.0, Morale: 40},
		{ID: "star", SkillLevel: 5.5, Morale: 90},
	}

	pe := RollInteractiveEvent([]EventDef{poach}, st, rng.New(1))
	require.NotNil(t, pe)
	assert.Equal(t, "star", pe.TargetStaffID)
}

func TestApplyEventEffects_InvalidOption(t *testing.T) {
	defs := DefaultEvents()
	st := NewGameState(100_000, 52)
	st.PendingEvent = &PendingEvent{EventID: "supplier_jam", OfferedWeek: 1}

	_, err := ApplyEventEffects(defs, st, "teleport")
	require.ErrorIs(t, err, ErrInvalidOption)

	_, err = ApplyEventEffects(defs, GameState{}, "pay_rush")
	require.Error(t, err, "no pending event to resolve")
}

func TestApplyEventEffects_CashAndBuff(t *testing.T) {
	defs := DefaultEvents()
	st := NewGameState(100_000, 52)
	st.CurrentWeek = 4
	st.Reputation = 50
	st.PendingEvent = &PendingEvent{EventID: "supplier_jam", OfferedWeek: 4}

	paid, err := ApplyEventEffects(defs, st, "pay_rush")
	require.NoError(t, err)
	assert.Nil(t, paid.PendingEvent)
	assert.Equal(t, st.Cash-1_500, paid.Cash)
	assert.Empty(t, paid.Buffs)

	waited, err := ApplyEventEffects(defs, st, "wait")
	require.NoError(t, err)
	assert.Equal(t, st.Cash, waited.Cash)
	require.Len(t, waited.Buffs, 1)
	assert.Equal(t, 0.85, waited.Buffs[0].DemandMult)
	assert.Equal(t, 5, waited.Buffs[0].ExpiresWeek)
	assert.Equal(t, 48.0, waited.Reputation)
}

func TestApplyEventEffects_FireTarget(t *testing.T) {
	defs := DefaultEvents()
	st := NewGameState(100_000, 52)
	st.Staff = []Staff{
		{ID: "junior", Name: "J", SkillLevel: 2, Morale: 60},
		{ID: "star", Name: "S", SkillLevel: 5, Morale: 90},
	}
	st.PendingEvent = &PendingEvent{EventID: "poach_offer", OfferedWeek: 1, TargetStaffID: "star"}

	out, err := ApplyEventEffects(defs, st, "let_go")
	require.NoError(t, err)
	require.Len(t, out.Staff, 1)
	assert.Equal(t, "junior", out.Staff[0].ID)
	assert.Equal(t, 52.0, out.Staff[0].Morale, "the rest take it hard")
}

func TestApplyEventEffects_ChainQueuesFollowUp(t *testing.T) {
	defs := DefaultEvents()
	st := NewGameState(100_000, 52)
	st.CurrentWeek = 2
	st.PendingEvent = &PendingEvent{EventID: "viral_photo", OfferedWeek: 2}

	out, err := ApplyEventEffects(defs, st, "lean_in")
	require.NoError(t, err)
	require.NotNil(t, out.PendingEvent)
	assert.Equal(t, "viral_crowd", out.PendingEvent.EventID)

	// The chained notification is acknowledged with the sentinel option.
	done, err := ApplyEventEffects(defs, out, NotificationOption)
	require.NoError(t, err)
	assert.Nil(t, done.PendingEvent)

	_, err = ApplyEventEffects(defs, out, "lean_in")
	require.ErrorIs(t, err, ErrInvalidOption)
}

func TestApplyEventEffects_DelayedEffectSchedules(t *testing.T) {
	defs := DefaultEvents()
	st := NewGameState(100_000, 52)
	st.CurrentWeek = 3
	st.PendingEvent = &PendingEvent{EventID: "health_inspection", OfferedWeek: 3}

	out, err := ApplyEventEffects(defs, st, "full_tour")
	require.NoError(t, err)
	require.Len(t, out.DelayedEffects, 1)
	assert.Equal(t, 5, out.DelayedEffects[0].DueWeek)
	assert.Equal(t, -400.0, out.DelayedEffects[0].CashDelta)
}

func TestResolveDelayedEffects_AppliesOnlyDue(t *testing.T) {
	st := NewGameState(100_000, 52)
	st.CurrentWeek = 5
	st.DelayedEffects = []DelayedEffect{
		{DueWeek: 5, CashDelta: -400, Note: "repair bill"},
		{DueWeek: 9, CashDelta: -700, Note: "later"},
	}

	out, notes := resolveDelayedEffects(st)
	assert.Equal(t, 99_600.0, out.Cash)
	require.Len(t, out.DelayedEffects, 1)
	assert.Equal(t, 9, out.DelayedEffects[0].DueWeek)
	require.Len(t, notes, 1)
	assert.True(t, strings.Contains(notes[0], "repair"))
}

func TestExpireBuffs(t *testing.T) {
	st := NewGameState(100_000, 52)
	st.CurrentWeek = 6
	st.Buffs = []Buff{
		{Source: "old", ExpiresWeek: 5, DemandMult: 1.2},
		{Source: "live", ExpiresWeek: 6, DemandMult: 0.9},
	}

	out := expireBuffs(st)
	require.Len(t, out.Buffs, 1)
	assert.Equal(t, "live", out.Buffs[0].Source)
}

func TestResolveDescription_TemplateSeesTarget(t *testing.T) {
	defs := DefaultEvents()
	var poach EventDef
	for _, d := range defs {
		if d.ID == "poach_offer" {
			poach = d
		}
	}

	st := NewGameState(100_000, 52)
	st.Staff = []Staff{{ID: "star", Name: "Mira", SkillLevel: 5}}
	st.PendingEvent = &PendingEvent{EventID: "poach_offer", TargetStaffID: "star"}

	text := ResolveDescription(poach, st)
	assert.Contains(t, text, "Mira")
}
