// Package resolver turns the identifier fields of a candidate record into
// live entity handles. Services call it once per reference field, in the
// declared order of the owning entity, so the first failing reference is the
// one reported.
package resolver

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	e "github.com/kolab/crm/internal/crm/errors"
)

// Getter looks an entity up by id in its store, returning ErrNotFound when
// the id does not exist.
type Getter[T any] func(ctx context.Context, id uuid.UUID) (*T, error)

// Required resolves a mandatory reference field. A nil id fails with
// MissingReference; an id the store cannot find fails with InvalidReference.
func Required[T any](ctx context.Context, field string, id *uuid.UUID, get Getter[T]) (*T, error) {
	if id == nil {
		return nil, e.MissingReference(field)
	}
	return lookup(ctx, field, *id, get)
}

// Optional resolves a reference field that may legally be absent. A nil id
// resolves to no relation; an id the store cannot find still fails with
// InvalidReference.
func Optional[T any](ctx context.Context, field string, id *uuid.UUID, get Getter[T]) (*T, error) {
	if id == nil {
		return nil, nil
	}
	return lookup(ctx, field, *id, get)
}

func lookup[T any](ctx context.Context, field string, id uuid.UUID, get Getter[T]) (*T, error) {
	entity, err := get(ctx, id)
	if err != nil {
		if errors.Is(err, e.ErrNotFound) {
			return nil, e.InvalidReference(field, id)
		}
		return nil, fmt.Errorf("failed to resolve %s: %w", field, err)
	}
	return entity, nil
}
