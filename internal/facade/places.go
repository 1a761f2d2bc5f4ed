package facade

import (
	"context"

	"homestay/internal/domain"
)

type CreatePlaceParams struct {
	Title       string
	Description string
	Price       float64
	Latitude    float64
	Longitude   float64
	Capacity    int
	HostID      string
	AmenityIDs  []string
}

type UpdatePlaceParams struct {
	Title       *string
	Description *string
	Price       *float64
	Latitude    *float64
	Longitude   *float64
	Capacity    *int
}

func (f *Facade) CreatePlace(ctx context.Context, p CreatePlaceParams) (*domain.Place, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if _, err := f.st.Hosts.Get(ctx, p.HostID); err != nil {
		return nil, mapStoreErr(err, "host")
	}
	if err := f.checkTitleFree(ctx, p.HostID, p.Title, ""); err != nil {
		return nil, err
	}
	place, err := domain.NewPlace(p.Title, p.Description, p.Price, p.Latitude, p.Longitude, p.Capacity, p.HostID)
	if err != nil {
		return nil, err
	}
	for _, aid := range p.AmenityIDs {
		if _, err := f.st.Amenities.Get(ctx, aid); err != nil {
			return nil, mapStoreErr(err, "amenity")
		}
		if err := place.AddAmenity(aid); err != nil {
			return nil, err
		}
	}
	if err := f.st.Places.Add(ctx, place); err != nil {
		return nil, mapStoreErr(err, "place")
	}
	return place, nil
}

func (f *Facade) GetPlace(ctx context.Context, id string) (*domain.Place, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()

	place, err := f.st.Places.Get(ctx, id)
	if err != nil {
		return nil, mapStoreErr(err, "place")
	}
	return place, nil
}

func (f *Facade) ListPlaces(ctx context.Context) ([]*domain.Place, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.st.Places.GetAll(ctx)
}

func (f *Facade) UpdatePlace(ctx context.Context, id string, p UpdatePlaceParams) (*domain.Place, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	stored, err := f.st.Places.Get(ctx, id)
	if err != nil {
		return nil, mapStoreErr(err, "place")
	}
	place := *stored
	if p.Title != nil {
		if err := f.checkTitleFree(ctx, place.HostID, *p.Title, place.ID); err != nil {
			return nil, err
		}
		if err := place.SetTitle(*p.Title); err != nil {
			return nil, err
		}
	}
	if p.Description != nil {
		if err := place.SetDescription(*p.Description); err != nil {
			return nil, err
		}
	}
	if p.Price != nil {
		if err := place.SetPrice(*p.Price); err != nil {
			return nil, err
		}
	}
	if p.Latitude != nil {
		if err := place.SetLatitude(*p.Latitude); err != nil {
			return nil, err
		}
	}
	if p.Longitude != nil {
		if err := place.SetLongitude(*p.Longitude); err != nil {
			return nil, err
		}
	}
	if p.Capacity != nil {
		if err := place.SetCapacity(*p.Capacity); err != nil {
			return nil, err
		}
	}
	if err := f.st.Places.Update(ctx, &place); err != nil {
		return nil, mapStoreErr(err, "place")
	}
	return &place, nil
}

// DeletePlace cascades: the place's bookings and their reviews go with it,
// so nothing is ever left pointing at a removed listing.
func (f *Facade) DeletePlace(ctx context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if _, err := f.st.Places.Get(ctx, id); err != nil {
		return mapStoreErr(err, "place")
	}
	return f.deletePlaceCascade(ctx, id)
}

// AttachAmenity links an amenity to the place, preserving attachment order.
// Attaching twice is a conflict.
func (f *Facade) AttachAmenity(ctx context.Context, placeID, amenityID string) (*domain.Place, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	place, err := f.st.Places.Get(ctx, placeID)
	if err != nil {
		return nil, mapStoreErr(err, "place")
	}
	if _, err := f.st.Amenities.Get(ctx, amenityID); err != nil {
		return nil, mapStoreErr(err, "amenity")
	}
	if place.HasAmenity(amenityID) {
		return nil, conflictf("amenity %s is already attached to place %s", amenityID, placeID)
	}
	if err := place.AddAmenity(amenityID); err != nil {
		return nil, err
	}
	if err := f.st.Places.Update(ctx, place); err != nil {
		return nil, mapStoreErr(err, "place")
	}
	return place, nil
}

func (f *Facade) DetachAmenity(ctx context.Context, placeID, amenityID string) (*domain.Place, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	place, err := f.st.Places.Get(ctx, placeID)
	if err != nil {
		return nil, mapStoreErr(err, "place")
	}
	if !place.RemoveAmenity(amenityID) {
		return nil, notFoundf("amenity %s is not attached to place %s", amenityID, placeID)
	}
	if err := f.st.Places.Update(ctx, place); err != nil {
		return nil, mapStoreErr(err, "place")
	}
	return place, nil
}

// GetPlaceReviews lists reviews attached to the place, oldest first.
func (f *Facade) GetPlaceReviews(ctx context.Context, placeID string) ([]*domain.Review, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()

	if _, err := f.st.Places.Get(ctx, placeID); err != nil {
		return nil, mapStoreErr(err, "place")
	}
	return f.reviewsForPlace(ctx, placeID)
}

// GetPlaceRating returns the mean rating over the place's reviews and the
// review count; a place with no reviews rates 0.
func (f *Facade) GetPlaceRating(ctx context.Context, placeID string) (float64, int, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()

	if _, err := f.st.Places.Get(ctx, placeID); err != nil {
		return 0, 0, mapStoreErr(err, "place")
	}
	return f.placeRating(ctx, placeID)
}

// checkTitleFree enforces title uniqueness scoped to one host. Caller holds
// the write lock.
func (f *Facade) checkTitleFree(ctx context.Context, hostID, title, excludeID string) error {
	all, err := f.st.Places.GetAll(ctx)
	if err != nil {
		return err
	}
	for _, p := range all {
		if p.HostID == hostID && p.Title == title && p.ID != excludeID {
			return conflictf("host already has a place titled %q", title)
		}
	}
	return nil
}

func (f *Facade) placeRating(ctx context.Context, placeID string) (float64, int, error) {
	reviews, err := f.reviewsForPlace(ctx, placeID)
	if err != nil {
		return 0, 0, err
	}
	if len(reviews) == 0 {
		return 0, 0, nil
	}
	var sum int
	for _, r := range reviews {
		sum += r.Rating
	}
	return float64(sum) / float64(len(reviews)), len(reviews), nil
}

func (f *Facade) reviewsForPlace(ctx context.Context, placeID string) ([]*domain.Review, error) {
	all, err := f.st.Reviews.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*domain.Review, 0)
	for _, r := range all {
		if r.PlaceID == placeID {
			out = append(out, r)
		}
	}
	return out, nil
}

// deletePlaceCascade removes the place together with its bookings and their
// reviews. Caller holds the write lock.
func (f *Facade) deletePlaceCascade(ctx context.Context, placeID string) error {
	bookings, err := f.st.Bookings.GetAll(ctx)
	if err != nil {
		return err
	}
	for _, b := range bookings {
		if b.PlaceID != placeID {
			continue
		}
		if b.ReviewID != "" {
			if err := f.st.Reviews.Delete(ctx, b.ReviewID); err != nil {
				return mapStoreErr(err, "review")
			}
		}
		if err := f.st.Bookings.Delete(ctx, b.ID); err != nil {
			return mapStoreErr(err, "booking")
		}
	}
	if err := f.st.Places.Delete(ctx, placeID); err != nil {
		return mapStoreErr(err, "place")
	}
	return nil
}
