package service

import (
	"sync"

	"github.com/google/uuid"

	"github.com/kolab/crm/internal/crm/events"
)

// producedEvent captures a single call to the producer.
type producedEvent struct {
	Entity string
	Action events.Action
	ID     uuid.UUID
}

// MockProducer is a test double for the Kafka producer. Events are produced
// from goroutines, so recording is guarded and tests wait on the wait group.
type MockProducer struct {
	mu             sync.Mutex
	producedEvents []producedEvent
	wg             *sync.WaitGroup
}

// Produce records the event and signals the wait group.
func (m *MockProducer) Produce(entity string, action events.Action, id uuid.UUID, _ any) {
	m.mu.Lock()
	m.producedEvents = append(m.producedEvents, producedEvent{Entity: entity, Action: action, ID: id})
	m.mu.Unlock()
	if m.wg != nil {
		m.wg.Done()
	}
}

func (m *MockProducer) events() []producedEvent {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]producedEvent, len(m.producedEvents))
	copy(out, m.producedEvents)
	return out
}

func uuidPtr(id uuid.UUID) *uuid.UUID { return &id }
