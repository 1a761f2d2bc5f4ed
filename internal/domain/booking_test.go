package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)

func testUserAndPlace(t *testing.T) (*User, *Place) {
	t.Helper()
	u, err := NewUser("Aigerim", "Bek", "aigerim@example.com", "hash", false)
	require.NoError(t, err)
	h, err := NewHost("Olzhas", "Kan", "olzhas@example.com", "hash", false)
	require.NoError(t, err)
	p, err := NewPlace("Quiet flat", "Two rooms close to the metro.", 100, 43.25, 76.91, 4, h.ID)
	require.NoError(t, err)
	return u, p
}

func TestNewBooking_DerivedFields(t *testing.T) {
	u, p := testUserAndPlace(t)

	checkin := time.Date(2026, 6, 10, 0, 0, 0, 0, time.UTC)
	b, err := NewBooking(u, p, 3, checkin, 3, testNow)
	require.NoError(t, err)

	assert.Equal(t, u.ID, b.UserID)
	assert.Equal(t, p.ID, b.PlaceID)
	assert.Equal(t, p.HostID, b.HostID)
	assert.Equal(t, BookingPending, b.Status)
	// 3 nights * 100 per night * 3 guests
	assert.Equal(t, 900.0, b.TotalPrice)
	assert.Equal(t, time.Date(2026, 6, 13, 0, 0, 0, 0, time.UTC), b.CheckoutDate())
}

func TestNewBooking_Validation(t *testing.T) {
	u, p := testUserAndPlace(t)
	checkin := time.Date(2026, 6, 10, 0, 0, 0, 0, time.UTC)

	_, err := NewBooking(u, p, 0, checkin, 2, testNow)
	assert.ErrorIs(t, err, ErrValidation)

	_, err = NewBooking(u, p, 5, checkin, 2, testNow)
	assert.ErrorIs(t, err, ErrValidation)

	_, err = NewBooking(u, p, 2, time.Time{}, 2, testNow)
	assert.ErrorIs(t, err, ErrValidation)

	_, err = NewBooking(u, p, 2, testNow.AddDate(0, 0, -1), 2, testNow)
	assert.ErrorIs(t, err, ErrValidation)

	_, err = NewBooking(u, p, 2, checkin, 0, testNow)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestSetCheckinDate_SameDayAccepted(t *testing.T) {
	u, p := testUserAndPlace(t)

	// Earlier clock time on the same day is still a valid check-in.
	earlier := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	b, err := NewBooking(u, p, 2, earlier, 1, testNow)
	require.NoError(t, err)
	assert.Equal(t, earlier, b.CheckinDate)
}

func TestSetCheckinDate_ServerLocationIgnored(t *testing.T) {
	u, p := testUserAndPlace(t)

	// A clock east of UTC already reads June 2 locally while UTC is still
	// June 1. A check-in for UTC-today must not be rejected as past.
	aheadOfUTC := time.Date(2026, 6, 2, 2, 0, 0, 0, time.FixedZone("UTC+9", 9*3600))
	checkin := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)

	b, err := NewBooking(u, p, 2, checkin, 1, aheadOfUTC)
	require.NoError(t, err)
	assert.Equal(t, checkin, b.CheckinDate)

	// The previous UTC day is still past, wherever the clock lives.
	_, err = NewBooking(u, p, 2, checkin.AddDate(0, 0, -1), 1, aheadOfUTC)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestBooking_Overlaps(t *testing.T) {
	u, p := testUserAndPlace(t)
	day := func(d int) time.Time { return time.Date(2026, 6, d, 0, 0, 0, 0, time.UTC) }

	mk := func(checkin time.Time, nights int) *Booking {
		b, err := NewBooking(u, p, 2, checkin, nights, testNow)
		require.NoError(t, err)
		return b
	}

	a := mk(day(10), 3) // occupies [10, 13)

	assert.True(t, a.Overlaps(mk(day(12), 2)))
	assert.True(t, a.Overlaps(mk(day(9), 2)))
	assert.True(t, a.Overlaps(mk(day(10), 3)))
	assert.True(t, a.Overlaps(mk(day(11), 1)))

	// Back-to-back stays share a turnover day but never overlap.
	assert.False(t, a.Overlaps(mk(day(13), 2)))
	assert.False(t, a.Overlaps(mk(day(8), 2)))

	// A different place never conflicts.
	other := mk(day(11), 2)
	other.PlaceID = "someplace-else"
	assert.False(t, a.Overlaps(other))

	// Terminal bookings release their dates.
	cancelled := mk(day(11), 2)
	require.NoError(t, cancelled.SetStatus(BookingCancelled))
	assert.False(t, a.Overlaps(cancelled))
}

func TestBooking_StatusTransitions(t *testing.T) {
	u, p := testUserAndPlace(t)
	mk := func() *Booking {
		b, err := NewBooking(u, p, 2, time.Date(2026, 6, 10, 0, 0, 0, 0, time.UTC), 2, testNow)
		require.NoError(t, err)
		return b
	}

	b := mk()
	require.NoError(t, b.SetStatus(BookingConfirmed))
	require.NoError(t, b.SetStatus(BookingCancelled))
	assert.ErrorIs(t, b.SetStatus(BookingConfirmed), ErrStatusTransition)

	b = mk()
	require.NoError(t, b.SetStatus(BookingDeclined))
	assert.ErrorIs(t, b.SetStatus(BookingCancelled), ErrStatusTransition)

	b = mk()
	assert.ErrorIs(t, b.SetStatus(BookingStatus("archived")), ErrValidation)
}

func TestBooking_RecalculateAfterUpdate(t *testing.T) {
	u, p := testUserAndPlace(t)
	b, err := NewBooking(u, p, 2, time.Date(2026, 6, 10, 0, 0, 0, 0, time.UTC), 2, testNow)
	require.NoError(t, err)
	assert.Equal(t, 400.0, b.TotalPrice)

	require.NoError(t, b.SetNightCount(4))
	require.NoError(t, b.SetGuestCount(1, p.Capacity))
	b.Recalculate(p)
	assert.Equal(t, 400.0, b.TotalPrice)

	require.NoError(t, p.SetPrice(50))
	b.Recalculate(p)
	assert.Equal(t, 200.0, b.TotalPrice)
}
