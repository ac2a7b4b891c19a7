// Package service implements the business logic for every entity type:
// reference resolution, uniqueness checks, scalar validation and persistence
// for create, update and delete, plus the read operations. Each service is
// constructed explicitly with its store, the stores it resolves references
// against, an event producer and a logger.
//
// Writes of one entity type are serialized by a per-service mutex so that
// two concurrent creates can never both pass the same uniqueness check.
// Reads, including the reference lookups a write performs against other
// entity types, take no lock.
package service

import (
	"github.com/google/uuid"

	"github.com/kolab/crm/internal/crm/events"
)

// EventProducer publishes entity change notifications. Services call it
// asynchronously after the write has been persisted.
type EventProducer interface {
	Produce(entity string, action events.Action, id uuid.UUID, payload any)
}
