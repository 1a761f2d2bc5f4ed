package facade

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"homestay/internal/domain"
)

// testClock keeps bookings deterministic: "today" is always 2026-06-01.
var testClock = time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)

func day(d int) time.Time { return time.Date(2026, 6, d, 0, 0, 0, 0, time.UTC) }

// recorder captures notifier callbacks for assertions.
type recorder struct {
	created       []string // host ids
	statusChanged []string // user ids
	reviewed      []string // host ids
}

func (r *recorder) BookingCreated(hostID string, _ *domain.Booking) {
	r.created = append(r.created, hostID)
}

func (r *recorder) BookingStatusChanged(userID string, _ *domain.Booking) {
	r.statusChanged = append(r.statusChanged, userID)
}

func (r *recorder) ReviewCreated(hostID string, _ *domain.Review) {
	r.reviewed = append(r.reviewed, hostID)
}

func newTestFacade(t *testing.T) (*Facade, *recorder) {
	t.Helper()
	rec := &recorder{}
	f := NewMemory(rec)
	f.now = func() time.Time { return testClock }
	return f, rec
}

func seedGuest(t *testing.T, f *Facade, email string) *domain.User {
	t.Helper()
	u, err := f.CreateUser(context.Background(), CreateUserParams{
		FirstName:    "Guest",
		LastName:     "Tester",
		Email:        email,
		PasswordHash: "hash",
	})
	require.NoError(t, err)
	return u
}

func seedHost(t *testing.T, f *Facade, email string) *domain.Host {
	t.Helper()
	h, err := f.CreateHost(context.Background(), CreateUserParams{
		FirstName:    "Host",
		LastName:     "Tester",
		Email:        email,
		PasswordHash: "hash",
	})
	require.NoError(t, err)
	return h
}

func seedPlace(t *testing.T, f *Facade, hostID, title string, price float64, capacity int) *domain.Place {
	t.Helper()
	p, err := f.CreatePlace(context.Background(), CreatePlaceParams{
		Title:       title,
		Description: "A pleasant spot for a short stay.",
		Price:       price,
		Latitude:    43.25,
		Longitude:   76.91,
		Capacity:    capacity,
		HostID:      hostID,
	})
	require.NoError(t, err)
	return p
}

func seedBooking(t *testing.T, f *Facade, userID, placeID string, guests int, checkin time.Time, nights int) *domain.Booking {
	t.Helper()
	b, err := f.CreateBooking(context.Background(), CreateBookingParams{
		UserID:      userID,
		PlaceID:     placeID,
		GuestCount:  guests,
		CheckinDate: checkin,
		NightCount:  nights,
	})
	require.NoError(t, err)
	return b
}
