package facade

import (
	"context"

	"homestay/internal/domain"
)

type CreateReviewParams struct {
	BookingID string
	Text      string
	Rating    int
}

type UpdateReviewParams struct {
	Text   *string
	Rating *int
}

// CreateReview attaches a review to its booking. A booking carries at most
// one review for its whole lifetime; the check and the attachment run under
// one lock. The review is stamped with the booking's place id, which is the
// id-based form of the place's review list.
func (f *Facade) CreateReview(ctx context.Context, p CreateReviewParams) (*domain.Review, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	b, err := f.st.Bookings.Get(ctx, p.BookingID)
	if err != nil {
		return nil, mapStoreErr(err, "booking")
	}
	if b.ReviewID != "" {
		return nil, conflictf("booking %s already has a review", b.ID)
	}
	r, err := domain.NewReview(b, p.Text, p.Rating)
	if err != nil {
		return nil, err
	}
	if err := f.st.Reviews.Add(ctx, r); err != nil {
		return nil, mapStoreErr(err, "review")
	}
	b.ReviewID = r.ID
	if err := f.st.Bookings.Update(ctx, b); err != nil {
		return nil, mapStoreErr(err, "booking")
	}

	if f.notifier != nil {
		f.notifier.ReviewCreated(b.HostID, r)
	}
	return r, nil
}

func (f *Facade) GetReview(ctx context.Context, id string) (*domain.Review, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()

	r, err := f.st.Reviews.Get(ctx, id)
	if err != nil {
		return nil, mapStoreErr(err, "review")
	}
	return r, nil
}

func (f *Facade) ListReviews(ctx context.Context) ([]*domain.Review, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.st.Reviews.GetAll(ctx)
}

func (f *Facade) UpdateReview(ctx context.Context, id string, p UpdateReviewParams) (*domain.Review, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	stored, err := f.st.Reviews.Get(ctx, id)
	if err != nil {
		return nil, mapStoreErr(err, "review")
	}
	r := *stored
	if p.Text != nil {
		if err := r.SetText(*p.Text); err != nil {
			return nil, err
		}
	}
	if p.Rating != nil {
		if err := r.SetRating(*p.Rating); err != nil {
			return nil, err
		}
	}
	if err := f.st.Reviews.Update(ctx, &r); err != nil {
		return nil, mapStoreErr(err, "review")
	}
	return &r, nil
}

// DeleteReview removes the review and clears the booking's back-reference so
// the booking may be reviewed again.
func (f *Facade) DeleteReview(ctx context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	r, err := f.st.Reviews.Get(ctx, id)
	if err != nil {
		return mapStoreErr(err, "review")
	}
	if b, err := f.st.Bookings.Get(ctx, r.BookingID); err == nil && b.ReviewID == id {
		b.ReviewID = ""
		if err := f.st.Bookings.Update(ctx, b); err != nil {
			return mapStoreErr(err, "booking")
		}
	}
	if err := f.st.Reviews.Delete(ctx, id); err != nil {
		return mapStoreErr(err, "review")
	}
	return nil
}
