package facade

import (
	"context"
	"errors"
	"time"

	"homestay/internal/domain"
)

type CreateBookingParams struct {
	UserID      string
	PlaceID     string
	GuestCount  int
	CheckinDate time.Time
	NightCount  int
}

type UpdateBookingParams struct {
	GuestCount  *int
	CheckinDate *time.Time
	NightCount  *int
}

// CreateBooking resolves the user and place, validates guests, nights and the
// check-in date, and scans the place's calendar for a half-open interval
// overlap before persisting. The scan and the insert run under one lock so
// two concurrent requests for the same interval cannot both succeed.
func (f *Facade) CreateBooking(ctx context.Context, p CreateBookingParams) (*domain.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	user, err := f.st.Users.Get(ctx, p.UserID)
	if err != nil {
		return nil, mapStoreErr(err, "user")
	}
	place, err := f.st.Places.Get(ctx, p.PlaceID)
	if err != nil {
		return nil, mapStoreErr(err, "place")
	}

	b, err := domain.NewBooking(user, place, p.GuestCount, p.CheckinDate, p.NightCount, f.now())
	if err != nil {
		return nil, err
	}
	if err := f.checkNoOverlap(ctx, b, ""); err != nil {
		return nil, err
	}
	if err := f.st.Bookings.Add(ctx, b); err != nil {
		return nil, mapStoreErr(err, "booking")
	}

	if f.notifier != nil {
		f.notifier.BookingCreated(place.HostID, b)
	}
	return b, nil
}

func (f *Facade) GetBooking(ctx context.Context, id string) (*domain.Booking, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()

	b, err := f.st.Bookings.Get(ctx, id)
	if err != nil {
		return nil, mapStoreErr(err, "booking")
	}
	return b, nil
}

func (f *Facade) ListBookings(ctx context.Context) ([]*domain.Booking, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.st.Bookings.GetAll(ctx)
}

// UpdateBooking applies a partial update through the booking's setters. When
// the dates move, the overlap scan runs again with the booking itself
// excluded, and the total price is recomputed. The setters run on a copy so
// a rejected update never leaks a half-applied mutation into the store.
func (f *Facade) UpdateBooking(ctx context.Context, id string, p UpdateBookingParams) (*domain.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	stored, err := f.st.Bookings.Get(ctx, id)
	if err != nil {
		return nil, mapStoreErr(err, "booking")
	}
	place, err := f.st.Places.Get(ctx, stored.PlaceID)
	if err != nil {
		return nil, mapStoreErr(err, "place")
	}

	b := *stored
	if p.GuestCount != nil {
		if err := b.SetGuestCount(*p.GuestCount, place.Capacity); err != nil {
			return nil, err
		}
	}
	if p.CheckinDate != nil {
		if err := b.SetCheckinDate(*p.CheckinDate, f.now()); err != nil {
			return nil, err
		}
	}
	if p.NightCount != nil {
		if err := b.SetNightCount(*p.NightCount); err != nil {
			return nil, err
		}
	}
	if p.CheckinDate != nil || p.NightCount != nil {
		if err := f.checkNoOverlap(ctx, &b, b.ID); err != nil {
			return nil, err
		}
	}
	b.Recalculate(place)

	if err := f.st.Bookings.Update(ctx, &b); err != nil {
		return nil, mapStoreErr(err, "booking")
	}
	return &b, nil
}

// SetBookingStatus drives the pending -> {confirmed|declined|cancelled}
// machine. An illegal transition is a conflict, not a validation error: it
// depends on the booking's current state.
func (f *Facade) SetBookingStatus(ctx context.Context, id string, status domain.BookingStatus) (*domain.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	b, err := f.st.Bookings.Get(ctx, id)
	if err != nil {
		return nil, mapStoreErr(err, "booking")
	}
	if err := b.SetStatus(status); err != nil {
		if errors.Is(err, domain.ErrStatusTransition) {
			return nil, conflictf("booking %s cannot move from %s to %s", id, b.Status, status)
		}
		return nil, err
	}
	if err := f.st.Bookings.Update(ctx, b); err != nil {
		return nil, mapStoreErr(err, "booking")
	}

	if f.notifier != nil {
		f.notifier.BookingStatusChanged(b.UserID, b)
		if status == domain.BookingCancelled {
			f.notifier.BookingStatusChanged(b.HostID, b)
		}
	}
	return b, nil
}

// DeleteBooking removes the booking and its review, if one was left.
func (f *Facade) DeleteBooking(ctx context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	b, err := f.st.Bookings.Get(ctx, id)
	if err != nil {
		return mapStoreErr(err, "booking")
	}
	if b.ReviewID != "" {
		if err := f.st.Reviews.Delete(ctx, b.ReviewID); err != nil {
			return mapStoreErr(err, "review")
		}
	}
	if err := f.st.Bookings.Delete(ctx, id); err != nil {
		return mapStoreErr(err, "booking")
	}
	return nil
}

// GetPlaceBookings lists the bookings on a place, oldest first.
func (f *Facade) GetPlaceBookings(ctx context.Context, placeID string) ([]*domain.Booking, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()

	if _, err := f.st.Places.Get(ctx, placeID); err != nil {
		return nil, mapStoreErr(err, "place")
	}
	all, err := f.st.Bookings.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*domain.Booking, 0)
	for _, b := range all {
		if b.PlaceID == placeID {
			out = append(out, b)
		}
	}
	return out, nil
}

// checkNoOverlap scans the candidate's place calendar. Terminal bookings do
// not occupy it; the conflict message names the colliding interval so the
// caller can surface it. Caller holds the write lock.
func (f *Facade) checkNoOverlap(ctx context.Context, candidate *domain.Booking, excludeID string) error {
	all, err := f.st.Bookings.GetAll(ctx)
	if err != nil {
		return err
	}
	for _, existing := range all {
		if existing.ID == excludeID {
			continue
		}
		if candidate.Overlaps(existing) {
			return conflictf("place %s is already booked from %s to %s",
				candidate.PlaceID,
				existing.CheckinDate.Format("2006-01-02"),
				existing.CheckoutDate().Format("2006-01-02"))
		}
	}
	return nil
}
