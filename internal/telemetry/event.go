package telemetry

import "time"

type EventType string

const (
	EventActionDispatched EventType = "action_dispatched"
	EventActionRejected   EventType = "action_rejected"
	EventWeekCompleted    EventType = "week_completed"
	EventShopOpened       EventType = "shop_opened"
	EventGameEnded        EventType = "game_ended"
	EventGameEvent        EventType = "game_event"
)

type EventMetadata map[string]interface{}

type Event struct {
	Seq       int           `json:"seq"`
	Type      EventType     `json:"type"`
	Timestamp time.Time     `json:"timestamp"`
	Metadata  EventMetadata `json:"metadata,omitempty"`
}

// Recorder is the write side used by the engine and server; nil-checked at
// call sites so telemetry stays optional.
type Recorder interface {
	RecordEvent(eventType EventType, metadata EventMetadata) error
}
