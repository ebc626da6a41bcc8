// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers
// and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

// ErrNotFound is returned by lookups when no row matches. Absence is a
// valid, non-exceptional outcome: callers decide whether it is an error.
var ErrNotFound = errors.New("record not found")

// CRUD is the generic data-access contract shared by every entity kind.
// One implementation covers all entities; per-entity interfaces embed it and
// add natural-key and relationship lookups.
type CRUD[E any] interface {
	// Create persists a new entity and returns it with the generated
	// sequential id, public id and timestamps populated.
	Create(ctx context.Context, e *E) (*E, error)

	// FindByID retrieves a single entity by its sequential primary identity.
	FindByID(ctx context.Context, pkID int64) (*E, error)

	// FindByUUID retrieves a single entity by its opaque public identifier.
	FindByUUID(ctx context.Context, id uuid.UUID) (*E, error)

	// FindAll returns up to limit entities starting after offset, ordered by
	// sequential id ascending so pagination is deterministic.
	FindAll(ctx context.Context, offset, limit int) ([]*E, error)

	// Update applies only the supplied columns to the matching row,
	// refreshes updated_at, and returns the post-update entity.
	Update(ctx context.Context, pkID int64, fields map[string]any) (*E, error)

	// Delete removes the row and reports whether a row existed.
	Delete(ctx context.Context, pkID int64) (bool, error)

	// Exists checks for the row without materializing it.
	Exists(ctx context.Context, pkID int64) (bool, error)
}
