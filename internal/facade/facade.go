// Package facade owns the booking marketplace's entity graph and every
// invariant that spans more than one entity. All creation, mutation and
// deletion goes through it; callers only ever hold returned entities, never
// store handles.
package facade

import (
	"sync"
	"time"

	"homestay/internal/domain"
	"homestay/internal/store"

	"gorm.io/gorm"
)

// Notifier receives push events after a mutation commits. Implementations
// must not block; a nil Notifier disables notifications.
type Notifier interface {
	BookingCreated(hostID string, b *domain.Booking)
	BookingStatusChanged(userID string, b *domain.Booking)
	ReviewCreated(hostID string, r *domain.Review)
}

// Stores bundles the per-entity record stores the facade orchestrates.
type Stores struct {
	Users     store.Store[*domain.User]
	Hosts     store.Store[*domain.Host]
	Places    store.Store[*domain.Place]
	Amenities store.Store[*domain.Amenity]
	Bookings  store.Store[*domain.Booking]
	Reviews   store.Store[*domain.Review]
}

// Facade serializes all access to the entity graph with a single lock.
// Check-then-act sequences (overlap scan + insert, email scan + insert,
// review check + attach) stay atomic under it; the load here does not call
// for anything finer grained.
type Facade struct {
	mu sync.RWMutex
	st Stores

	notifier Notifier
	now      func() time.Time
}

func New(st Stores, notifier Notifier) *Facade {
	return &Facade{st: st, notifier: notifier, now: time.Now}
}

// NewMemory builds a facade over fresh in-memory stores. Used by tests and
// by the server when no DATABASE_URL is configured.
func NewMemory(notifier Notifier) *Facade {
	return New(Stores{
		Users:     store.NewMemory[*domain.User](),
		Hosts:     store.NewMemory[*domain.Host](),
		Places:    store.NewMemory[*domain.Place](),
		Amenities: store.NewMemory[*domain.Amenity](),
		Bookings:  store.NewMemory[*domain.Booking](),
		Reviews:   store.NewMemory[*domain.Review](),
	}, notifier)
}

// NewDB builds a facade over database-backed stores.
func NewDB(db *gorm.DB, notifier Notifier) *Facade {
	return New(Stores{
		Users:     store.NewDB[domain.User, *domain.User](db),
		Hosts:     store.NewDB[domain.Host, *domain.Host](db),
		Places:    store.NewDB[domain.Place, *domain.Place](db),
		Amenities: store.NewDB[domain.Amenity, *domain.Amenity](db),
		Bookings:  store.NewDB[domain.Booking, *domain.Booking](db),
		Reviews:   store.NewDB[domain.Review, *domain.Review](db),
	}, notifier)
}
