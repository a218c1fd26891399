package sim

import "fmt"

// DefaultEvents is the built-in interactive event catalog. Descriptions that
// depend on state carry a template function instead of static text.
func DefaultEvents() []EventDef {
	return []EventDef{
		{
			ID:       "supplier_jam",
			Title:    "Supplier Truck Breakdown",
			Weight:   3,
			Contexts: []EventContext{CtxSupplyShortage},
			Text:     "Your tapioca supplier's truck broke down. They offer a rush courier at a premium, or you wait it out.",
			Options: []EventOption{
				{ID: "pay_rush", Label: "Pay for the rush courier", Effects: EventEffects{CashDelta: -1_500}},
				{ID: "wait", Label: "Wait it out", Effects: EventEffects{
					BuffMult: 0.85, BuffWeeks: 1, ReputationDelta: -2,
				}},
			},
		},
		{
			ID:          "poach_offer",
			Title:       "Competitor Poaching Offer",
			Weight:      2,
			Contexts:    []EventContext{CtxHighSkillStaff},
			NeedsTarget: true,
			Describe: func(st *GameState) string {
				name := "your best barista"
				if st.PendingEvent != nil {
					if i := st.findStaff(st.PendingEvent.TargetStaffID); i >= 0 {
						name = st.Staff[i].Name
					}
				}
				return fmt.Sprintf("A chain across the street offered %s a raise. Match it or let them go?", name)
			},
			Options: []EventOption{
				{ID: "match", Label: "Match the offer", Effects: EventEffects{CashDelta: -2_000, TargetMoraleDelta: 20}},
				{ID: "let_go", Label: "Let them go", Effects: EventEffects{FireTarget: true, MoraleDeltaAll: -8}},
			},
		},
		{
			ID:          "morale_spat",
			Title:       "Back-Room Argument",
			Weight:      2,
			Contexts:    []EventContext{CtxMoraleGap},
			NeedsTarget: true,
			Text:        "Two of your staff had a loud argument during rush hour. The one who got shouted down looks ready to quit.",
			Options: []EventOption{
				{ID: "team_dinner", Label: "Treat everyone to dinner", Effects: EventEffects{CashDelta: -600, MoraleDeltaAll: 10}},
				{ID: "side_talk", Label: "Talk to them privately", Effects: EventEffects{TargetMoraleDelta: 15}},
				{ID: "ignore", Label: "Stay out of it", Effects: EventEffects{MoraleDeltaAll: -5}},
			},
		},
		{
			ID:       "viral_photo",
			Title:    "A Photo Goes Viral",
			Weight:   1.5,
			Contexts: []EventContext{CtxProfitable},
			Text:     "A customer's photo of your signature cup is trending. Lean into it?",
			Options: []EventOption{
				{ID: "lean_in", Label: "Repost and run a small promo", Effects: EventEffects{
					CashDelta: -800, ExposureDelta: 10, BuffMult: 1.25, BuffWeeks: 2,
					ChainEventID: "viral_crowd",
				}},
				{ID: "stay_quiet", Label: "Enjoy it quietly", Effects: EventEffects{ExposureDelta: 4}},
			},
		},
		{
			ID:           "viral_crowd",
			Title:        "The Crowd Arrives",
			Weight:       0, // chain-only, never rolled directly
			Contexts:     []EventContext{CtxAlways},
			Notification: true,
			Text:         "Queues around the corner all weekend. Staff are thrilled and exhausted in equal measure.",
		},
		{
			ID:       "health_inspection",
			Title:    "Surprise Health Inspection",
			Weight:   1.5,
			Contexts: []EventContext{CtxAlways},
			Text:     "A municipal inspector walks in unannounced.",
			Options: []EventOption{
				{ID: "full_tour", Label: "Give the full tour", Effects: EventEffects{
					ReputationDelta: 3,
					Delayed:         &DelayedEffect{CashDelta: -400, Note: "Minor fixes ordered by the inspector"},
					DelayedWeeks:    2,
				}},
				{ID: "stall", Label: "Stall while the back is tidied", Effects: EventEffects{ReputationDelta: -4}},
			},
		},
		{
			ID:       "rider_spill",
			Title:    "Delivery Rider Spill",
			Weight:   2,
			Contexts: []EventContext{CtxHasDelivery},
			Text:     "A rider spilled three orders and the one-star reviews are coming in.",
			Options: []EventOption{
				{ID: "refund_all", Label: "Refund and resend everything", Effects: EventEffects{CashDelta: -350, ReputationDelta: 2}},
				{ID: "blame_platform", Label: "Point customers at the platform", Effects: EventEffects{ReputationDelta: -5}},
			},
		},
		{
			ID:           "rent_notice",
			Title:        "Rent Adjustment Notice",
			Weight:       1,
			Contexts:     []EventContext{CtxStruggling},
			Notification: true,
			Describe: func(st *GameState) string {
				return fmt.Sprintf("The landlord slips a note under the door: with week %d's quiet streets, everyone on the row is asking for relief. No answer yet.", st.CurrentWeek)
			},
		},
		{
			ID:       "equipment_failure",
			Title:    "Sealing Machine Failure",
			Weight:   2,
			Contexts: []EventContext{CtxAlways},
			Text:     "The cup-sealing machine died mid-shift.",
			Options: []EventOption{
				{ID: "repair_now", Label: "Same-day repair", Effects: EventEffects{CashDelta: -1_200}},
				{ID: "hand_seal", Label: "Hand-seal for a week", Effects: EventEffects{
					BuffMult: 0.9, BuffWeeks: 1, MoraleDeltaAll: -6,
					Delayed:      &DelayedEffect{CashDelta: -700, Note: "Deferred sealing machine repair"},
					DelayedWeeks: 1,
				}},
			},
		},
	}
}
