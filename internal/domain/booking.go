package domain

import (
	"errors"
	"time"
)

type BookingStatus string

const (
	BookingPending   BookingStatus = "pending"
	BookingConfirmed BookingStatus = "confirmed"
	BookingDeclined  BookingStatus = "declined"
	BookingCancelled BookingStatus = "cancelled"
)

// Terminal reports whether the status releases the place's calendar.
func (s BookingStatus) Terminal() bool {
	return s == BookingDeclined || s == BookingCancelled
}

// ErrStatusTransition is returned when a status change is not allowed by the
// booking state machine.
var ErrStatusTransition = errors.New("invalid status transition")

// Booking links a User to a Place over [CheckinDate, CheckoutDate()). UserID,
// PlaceID and HostID are frozen at creation. TotalPrice is derived as
// nights x price per night x guests and recomputed whenever one of its
// inputs changes.
type Booking struct {
	Base
	UserID      string        `json:"user_id" gorm:"column:user_id;index"`
	PlaceID     string        `json:"place_id" gorm:"column:place_id;index"`
	HostID      string        `json:"host_id" gorm:"column:host_id"`
	GuestCount  int           `json:"guest_count" gorm:"column:guest_count"`
	CheckinDate time.Time     `json:"checkin_date" gorm:"column:checkin_date"`
	NightCount  int           `json:"night_count" gorm:"column:night_count"`
	TotalPrice  float64       `json:"total_price" gorm:"column:total_price"`
	Status      BookingStatus `json:"status" gorm:"column:status"`
	ReviewID    string        `json:"review_id,omitempty" gorm:"column:review_id"`
}

func (Booking) TableName() string { return "bookings" }

func NewBooking(user *User, place *Place, guestCount int, checkin time.Time, nightCount int, now time.Time) (*Booking, error) {
	b := &Booking{
		Base:    newBase(),
		UserID:  user.ID,
		PlaceID: place.ID,
		HostID:  place.HostID,
		Status:  BookingPending,
	}
	if err := b.SetGuestCount(guestCount, place.Capacity); err != nil {
		return nil, err
	}
	if err := b.SetCheckinDate(checkin, now); err != nil {
		return nil, err
	}
	if err := b.SetNightCount(nightCount); err != nil {
		return nil, err
	}
	b.Recalculate(place)
	return b, nil
}

func (b *Booking) SetGuestCount(guests, capacity int) error {
	if guests < 1 {
		return invalidf("guest count must be at least 1")
	}
	if guests > capacity {
		return invalidf("guest count %d exceeds the place capacity of %d", guests, capacity)
	}
	b.GuestCount = guests
	b.touch()
	return nil
}

// SetCheckinDate rejects check-ins strictly in the past, compared at day
// granularity so a booking for later today is still accepted.
func (b *Booking) SetCheckinDate(checkin, now time.Time) error {
	if checkin.IsZero() {
		return invalidf("checkin date is required")
	}
	if dateOf(checkin).Before(dateOf(now)) {
		return invalidf("checkin date must not be in the past")
	}
	b.CheckinDate = checkin
	b.touch()
	return nil
}

func (b *Booking) SetNightCount(nights int) error {
	if nights < 1 {
		return invalidf("night count must be at least 1")
	}
	b.NightCount = nights
	b.touch()
	return nil
}

// SetStatus enforces the state machine: pending may move to confirmed,
// declined or cancelled; a confirmed booking may still be cancelled.
// Terminal states never change again.
func (b *Booking) SetStatus(next BookingStatus) error {
	switch next {
	case BookingConfirmed, BookingDeclined:
		if b.Status != BookingPending {
			return ErrStatusTransition
		}
	case BookingCancelled:
		if b.Status != BookingPending && b.Status != BookingConfirmed {
			return ErrStatusTransition
		}
	default:
		return invalidf("unknown booking status %q", next)
	}
	b.Status = next
	b.touch()
	return nil
}

// Recalculate refreshes the derived total from the current nights, guests and
// the place's nightly price.
func (b *Booking) Recalculate(place *Place) {
	b.TotalPrice = float64(b.NightCount) * place.Price * float64(b.GuestCount)
}

func (b *Booking) CheckoutDate() time.Time {
	return b.CheckinDate.AddDate(0, 0, b.NightCount)
}

// Overlaps tests half-open interval intersection with another booking on the
// same place. Terminal bookings never occupy the calendar.
func (b *Booking) Overlaps(other *Booking) bool {
	if b.PlaceID != other.PlaceID {
		return false
	}
	if b.Status.Terminal() || other.Status.Terminal() {
		return false
	}
	return b.CheckinDate.Before(other.CheckoutDate()) && other.CheckinDate.Before(b.CheckoutDate())
}

// dateOf truncates to the calendar day in UTC. Check-in dates arrive as UTC
// midnights, so comparing both sides in UTC keeps the past check independent
// of the server's location.
func dateOf(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
