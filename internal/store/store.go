// Package store provides generic keyed containers for domain entities. A
// store knows nothing about business rules; cross-entity invariants live in
// the facade, which is also responsible for serializing access.
package store

import (
	"context"
	"errors"
)

var (
	ErrNotFound = errors.New("record not found")
	// ErrDuplicate is surfaced by indexed backends on unique-constraint
	// violations; the in-memory store never returns it.
	ErrDuplicate = errors.New("duplicate record")
)

// Entity is anything with a stable string id.
type Entity interface {
	EntityID() string
}

// Store is the record-store contract shared by the in-memory and the
// database-backed implementations. FindBy matches a single snake_case field
// (the persisted column name) and returns the first hit.
type Store[T Entity] interface {
	Add(ctx context.Context, e T) error
	Get(ctx context.Context, id string) (T, error)
	GetAll(ctx context.Context) ([]T, error)
	Update(ctx context.Context, e T) error
	Delete(ctx context.Context, id string) error
	FindBy(ctx context.Context, field string, value any) (T, error)
}
