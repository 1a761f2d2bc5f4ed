package domain

const (
	minReviewTextLen = 1
	maxReviewTextLen = 1024
	minRating        = 1
	maxRating        = 5
)

// Review is linked 1:1 to a Booking. BookingID and PlaceID are set at
// creation and immutable; the place id is stamped from the booking so rating
// aggregation does not have to walk the booking graph.
type Review struct {
	Base
	BookingID string `json:"booking_id" gorm:"column:booking_id;index"`
	PlaceID   string `json:"place_id" gorm:"column:place_id;index"`
	Text      string `json:"text" gorm:"column:text"`
	Rating    int    `json:"rating" gorm:"column:rating"`
}

func (Review) TableName() string { return "reviews" }

func NewReview(booking *Booking, text string, rating int) (*Review, error) {
	r := &Review{
		Base:      newBase(),
		BookingID: booking.ID,
		PlaceID:   booking.PlaceID,
	}
	if err := r.SetText(text); err != nil {
		return nil, err
	}
	if err := r.SetRating(rating); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *Review) SetText(text string) error {
	if len(text) < minReviewTextLen || len(text) > maxReviewTextLen {
		return invalidf("review text length must be between %d and %d characters", minReviewTextLen, maxReviewTextLen)
	}
	r.Text = text
	r.touch()
	return nil
}

func (r *Review) SetRating(rating int) error {
	if rating < minRating || rating > maxRating {
		return invalidf("rating must be a value between %d and %d", minRating, maxRating)
	}
	r.Rating = rating
	r.touch()
	return nil
}
