package telemetry

import (
	"maps"
	"sync"
	"time"
)

// Repository stores telemetry events.
type Repository interface {
	Recorder
	GetEvents(since time.Time, eventTypes []EventType) ([]Event, error)
	Clear() error
}

// MemoryRepository keeps the session's event log in memory. Metadata maps
// are copied on write and on read so callers cannot alias stored state.
type MemoryRepository struct {
	mu     sync.RWMutex
	events []Event
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{}
}

func (r *MemoryRepository) RecordEvent(eventType EventType, metadata EventMetadata) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.events = append(r.events, Event{
		Seq:       len(r.events) + 1,
		Type:      eventType,
		Timestamp: time.Now(),
		Metadata:  maps.Clone(metadata),
	})
	return nil
}

func (r *MemoryRepository) GetEvents(since time.Time, eventTypes []EventType) ([]Event, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Event, 0, len(r.events))
	for _, ev := range r.events {
		if ev.Timestamp.Before(since) {
			continue
		}
		if len(eventTypes) > 0 && !containsType(eventTypes, ev.Type) {
			continue
		}
		ev.Metadata = maps.Clone(ev.Metadata)
		out = append(out, ev)
	}
	return out, nil
}

func (r *MemoryRepository) Clear() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = nil
	return nil
}

func containsType(types []EventType, t EventType) bool {
	for _, want := range types {
		if want == t {
			return true
		}
	}
	return false
}
