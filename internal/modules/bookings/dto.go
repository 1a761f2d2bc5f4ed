package bookings

import (
	"time"

	"homestay/internal/domain"
)

type CreateBookingRequest struct {
	PlaceID     string `json:"place_id" validate:"required"`
	CheckinDate string `json:"checkin_date" validate:"required"`
	NightCount  int    `json:"night_count" validate:"required,gte=1"`
	GuestCount  int    `json:"guest_count" validate:"required,gte=1"`
}

type UpdateBookingRequest struct {
	CheckinDate *string `json:"checkin_date"`
	NightCount  *int    `json:"night_count"`
	GuestCount  *int    `json:"guest_count"`
}

type StatusRequest struct {
	Status string `json:"status" validate:"required,oneof=confirmed declined cancelled"`
}

// BookingResponse adds the derived checkout date to the wire shape.
type BookingResponse struct {
	*domain.Booking
	CheckoutDate time.Time `json:"checkout_date"`
}

func toResponse(b *domain.Booking) BookingResponse {
	return BookingResponse{Booking: b, CheckoutDate: b.CheckoutDate()}
}
