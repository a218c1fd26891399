package telemetry

import "time"

type Stats struct {
	Period           string            `json:"period"`
	EventCounts      map[EventType]int `json:"event_counts"`
	WeeksCompleted   int               `json:"weeks_completed"`
	ActionsPerWeek   float64           `json:"actions_per_week"`
	ActionsByType    map[string]int    `json:"actions_by_type"`
	RejectionsByType map[string]int    `json:"rejections_by_type"`
	GameEvents       map[string]int    `json:"game_events"`
}

// CalculateStats aggregates session activity from the raw event log.
func CalculateStats(events []Event, since time.Time) (Stats, error) {
	stats := Stats{
		Period:           since.Format("2006-01-02"),
		EventCounts:      make(map[EventType]int),
		ActionsByType:    make(map[string]int),
		RejectionsByType: make(map[string]int),
		GameEvents:       make(map[string]int),
	}

	actions := 0
	for _, ev := range events {
		stats.EventCounts[ev.Type]++

		switch ev.Type {
		case EventWeekCompleted:
			stats.WeeksCompleted++
		case EventActionDispatched:
			actions++
			if t, ok := ev.Metadata["action"].(string); ok {
				stats.ActionsByType[t]++
			}
		case EventActionRejected:
			if t, ok := ev.Metadata["action"].(string); ok {
				stats.RejectionsByType[t]++
			}
		case EventGameEvent:
			if id, ok := ev.Metadata["event_id"].(string); ok {
				stats.GameEvents[id]++
			}
		}
	}

	if stats.WeeksCompleted > 0 {
		stats.ActionsPerWeek = float64(actions) / float64(stats.WeeksCompleted)
	}

	return stats, nil
}
