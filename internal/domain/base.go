package domain

import (
	"time"

	"github.com/google/uuid"
)

// Base carries the fields shared by every entity. The id is generated at
// creation; UpdatedAt is bumped by every mutating setter.
type Base struct {
	ID        string    `json:"id" gorm:"column:id;primaryKey"`
	CreatedAt time.Time `json:"created_at" gorm:"column:created_at"`
	UpdatedAt time.Time `json:"updated_at" gorm:"column:updated_at"`
}

func newBase() Base {
	now := time.Now().UTC()
	return Base{
		ID:        uuid.NewString(),
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func (b *Base) EntityID() string { return b.ID }

func (b *Base) touch() { b.UpdatedAt = time.Now().UTC() }
