package sim

import (
	"errors"
	"fmt"

	"teashop/internal/rng"
)

// NotificationOption is the sentinel option id used to acknowledge
// zero-option notification events.
const NotificationOption = "__notification__"

// ErrInvalidOption means the caller answered an event with an option it does
// not have. A caller/engine mismatch, not a game-rule rejection.
var ErrInvalidOption = errors.New("invalid event option")

// EventContext is a predicate tag checked against state when filtering the
// event catalog.
type EventContext string

const (
	CtxSupplyShortage EventContext = "supply_shortage"
	CtxHighSkillStaff EventContext = "high_skill_staff"
	CtxMoraleGap      EventContext = "staff_morale_gap"
	CtxHasDelivery    EventContext = "has_delivery"
	CtxProfitable     EventContext = "profitable"
	CtxStruggling     EventContext = "struggling"
	CtxAlways         EventContext = "always"
)

// EventEffects is everything an option can do to the state.
type EventEffects struct {
	CashDelta       float64
	ReputationDelta float64
	ExposureDelta   float64
	MoraleDeltaAll  float64
	// TargetMoraleDelta hits the staff member the event singled out.
	TargetMoraleDelta float64
	FireTarget        bool

	// BuffMult/BuffWeeks install a demand buff expiring in the future.
	BuffMult  float64
	BuffWeeks int

	// Delayed schedules a follow-up effect DelayedWeeks after resolution.
	Delayed      *DelayedEffect
	DelayedWeeks int

	// ChainEventID queues another event immediately after this one resolves.
	ChainEventID string
}

// EventOption is one player choice.
type EventOption struct {
	ID      string
	Label   string
	Effects EventEffects
}

// EventDef is a catalog entry. Description may be a template function
// resolved against current state; static Text is used when Describe is nil.
type EventDef struct {
	ID       string
	Title    string
	Weight   float64
	Contexts []EventContext
	Text     string
	Describe func(st *GameState) string
	Options  []EventOption
	// Notification events carry no options and are acknowledged with the
	// sentinel option id.
	Notification bool
	// NeedsTarget picks a staff member when the event is offered.
	NeedsTarget bool
}

func (d *EventDef) option(id string) (*EventOption, bool) {
	for i := range d.Options {
		if d.Options[i].ID == id {
			return &d.Options[i], true
		}
	}
	return nil, false
}

// contextHolds evaluates one predicate tag against the state.
func contextHolds(ctx EventContext, st GameState) bool {
	switch ctx {
	case CtxAlways:
		return true
	case CtxSupplyShortage:
		return st.Summary != nil && st.Summary.Stockouts > 0
	case CtxHighSkillStaff:
		for _, s := range st.Staff {
			if s.SkillLevel >= 4 {
				return true
			}
		}
		return false
	case CtxMoraleGap:
		lo, hi := 101.0, -1.0
		for _, s := range st.Staff {
			if s.Morale < lo {
				lo = s.Morale
			}
			if s.Morale > hi {
				hi = s.Morale
			}
		}
		return len(st.Staff) >= 2 && hi-lo >= 30
	case CtxHasDelivery:
		return len(st.Platforms) > 0
	case CtxProfitable:
		return st.ConsecutiveProfits >= 2
	case CtxStruggling:
		return st.Summary != nil && st.Summary.Profit < 0
	default:
		return false
	}
}

func eligible(def EventDef, st GameState) bool {
	for _, ctx := range def.Contexts {
		if !contextHolds(ctx, st) {
			return false
		}
	}
	if def.NeedsTarget && pickEventTarget(def, st) == "" {
		return false
	}
	return true
}

// pickEventTarget chooses the staff member an event singles out:
// highest-skill for poaching, lowest-morale otherwise.
func pickEventTarget(def EventDef, st GameState) string {
	if len(st.Staff) == 0 {
		return ""
	}
	best := 0
	for i := range st.Staff {
		if hasContext(def, CtxHighSkillStaff) {
			if st.Staff[i].SkillLevel > st.Staff[best].SkillLevel {
				best = i
			}
		} else if st.Staff[i].Morale < st.Staff[best].Morale {
			best = i
		}
	}
	return st.Staff[best].ID
}

func hasContext(def EventDef, ctx EventContext) bool {
	for _, c := range def.Contexts {
		if c == ctx {
			return true
		}
	}
	return false
}

// RollInteractiveEvent filters the catalog by context predicates and draws a
// weighted selection. Returns nil when nothing is eligible or an event is
// already pending; neither is an error, just "no event this week".
func RollInteractiveEvent(defs []EventDef, st GameState, src *rng.Source) *PendingEvent {
	if st.PendingEvent != nil {
		return nil
	}
	var pool []EventDef
	var weights []float64
	for _, def := range defs {
		if eligible(def, st) {
			pool = append(pool, def)
			weights = append(weights, def.Weight)
		}
	}
	idx := src.WeightedIndex(weights)
	if idx < 0 {
		return nil
	}
	def := pool[idx]
	pe := &PendingEvent{EventID: def.ID, OfferedWeek: st.CurrentWeek}
	if def.NeedsTarget {
		pe.TargetStaffID = pickEventTarget(def, st)
	}
	return pe
}

// ResolveDescription renders an event's text, running its template against
// current state when one exists. Read-only.
func ResolveDescription(def EventDef, st GameState) string {
	if def.Describe != nil {
		return def.Describe(&st)
	}
	return def.Text
}

// ApplyEventEffects resolves the pending event with the chosen option and
// returns the new state. Unknown option ids fail with ErrInvalidOption.
func ApplyEventEffects(defs []EventDef, st GameState, optionID string) (GameState, error) {
	if st.PendingEvent == nil {
		return st, errors.New("no pending event")
	}
	def, ok := findEvent(defs, st.PendingEvent.EventID)
	if !ok {
		return st, fmt.Errorf("pending event not in catalog: %s", st.PendingEvent.EventID)
	}

	var effects EventEffects
	switch {
	case def.Notification:
		if optionID != NotificationOption {
			return st, fmt.Errorf("%w: %q (notification event)", ErrInvalidOption, optionID)
		}
	default:
		opt, ok := def.option(optionID)
		if !ok {
			return st, fmt.Errorf("%w: %q for event %s", ErrInvalidOption, optionID, def.ID)
		}
		effects = opt.Effects
	}

	out := st.Clone()
	target := out.PendingEvent.TargetStaffID
	out.PendingEvent = nil
	out.LastWeekEvent = def.Title

	out.Cash += effects.CashDelta
	out.Reputation = clampScore(out.Reputation + effects.ReputationDelta)
	out.Exposure = clampScore(out.Exposure + effects.ExposureDelta)

	if effects.MoraleDeltaAll != 0 {
		for i := range out.Staff {
			out.Staff[i].Morale = clampScore(out.Staff[i].Morale + effects.MoraleDeltaAll)
		}
	}
	if target != "" {
		if idx := out.findStaff(target); idx >= 0 {
			if effects.FireTarget {
				out.Staff = append(out.Staff[:idx], out.Staff[idx+1:]...)
			} else if effects.TargetMoraleDelta != 0 {
				out.Staff[idx].Morale = clampScore(out.Staff[idx].Morale + effects.TargetMoraleDelta)
			}
		}
	}

	if effects.BuffMult > 0 && effects.BuffWeeks > 0 {
		out.Buffs = append(out.Buffs, Buff{
			Source:      def.ID,
			ExpiresWeek: out.CurrentWeek + effects.BuffWeeks,
			DemandMult:  effects.BuffMult,
		})
	}

	if effects.Delayed != nil {
		d := *effects.Delayed
		d.DueWeek = out.CurrentWeek + effects.DelayedWeeks
		if effects.DelayedWeeks <= 0 {
			d.DueWeek = out.CurrentWeek + 1
		}
		out.DelayedEffects = append(out.DelayedEffects, d)
	}

	if effects.ChainEventID != "" {
		if chained, ok := findEvent(defs, effects.ChainEventID); ok {
			pe := &PendingEvent{EventID: chained.ID, OfferedWeek: out.CurrentWeek}
			if chained.NeedsTarget {
				pe.TargetStaffID = pickEventTarget(chained, out)
			}
			out.PendingEvent = pe
		}
	}

	return out, nil
}

func findEvent(defs []EventDef, id string) (EventDef, bool) {
	for _, d := range defs {
		if d.ID == id {
			return d, true
		}
	}
	return EventDef{}, false
}

// resolveDelayedEffects applies every effect due this week and drops it from
// the schedule.
func resolveDelayedEffects(st GameState) (GameState, []string) {
	if len(st.DelayedEffects) == 0 {
		return st, nil
	}
	out := st
	var notes []string
	var keep []DelayedEffect
	for _, d := range out.DelayedEffects {
		if d.DueWeek > out.CurrentWeek {
			keep = append(keep, d)
			continue
		}
		out.Cash += d.CashDelta
		out.Reputation = clampScore(out.Reputation + d.ReputationDelta)
		out.Exposure = clampScore(out.Exposure + d.ExposureDelta)
		if d.MoraleDelta != 0 {
			for i := range out.Staff {
				out.Staff[i].Morale = clampScore(out.Staff[i].Morale + d.MoraleDelta)
			}
		}
		if d.Note != "" {
			notes = append(notes, d.Note)
		}
	}
	out.DelayedEffects = keep
	return out, notes
}

// expireBuffs drops buffs whose window has passed.
func expireBuffs(st GameState) GameState {
	if len(st.Buffs) == 0 {
		return st
	}
	keep := st.Buffs[:0:0]
	for _, b := range st.Buffs {
		if b.ExpiresWeek >= st.CurrentWeek {
			keep = append(keep, b)
		}
	}
	st.Buffs = keep
	return st
}
