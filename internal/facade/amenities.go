package facade

import (
	"context"

	"homestay/internal/domain"
)

func (f *Facade) CreateAmenity(ctx context.Context, name string) (*domain.Amenity, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	a, err := domain.NewAmenity(name)
	if err != nil {
		return nil, err
	}
	if err := f.st.Amenities.Add(ctx, a); err != nil {
		return nil, mapStoreErr(err, "amenity")
	}
	return a, nil
}

func (f *Facade) GetAmenity(ctx context.Context, id string) (*domain.Amenity, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()

	a, err := f.st.Amenities.Get(ctx, id)
	if err != nil {
		return nil, mapStoreErr(err, "amenity")
	}
	return a, nil
}

func (f *Facade) ListAmenities(ctx context.Context) ([]*domain.Amenity, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.st.Amenities.GetAll(ctx)
}

func (f *Facade) UpdateAmenity(ctx context.Context, id, name string) (*domain.Amenity, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	a, err := f.st.Amenities.Get(ctx, id)
	if err != nil {
		return nil, mapStoreErr(err, "amenity")
	}
	if err := a.SetName(name); err != nil {
		return nil, err
	}
	if err := f.st.Amenities.Update(ctx, a); err != nil {
		return nil, mapStoreErr(err, "amenity")
	}
	return a, nil
}

// DeleteAmenity removes the amenity and detaches it from every place that
// references it.
func (f *Facade) DeleteAmenity(ctx context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if _, err := f.st.Amenities.Get(ctx, id); err != nil {
		return mapStoreErr(err, "amenity")
	}
	places, err := f.st.Places.GetAll(ctx)
	if err != nil {
		return err
	}
	for _, p := range places {
		if p.RemoveAmenity(id) {
			if err := f.st.Places.Update(ctx, p); err != nil {
				return mapStoreErr(err, "place")
			}
		}
	}
	if err := f.st.Amenities.Delete(ctx, id); err != nil {
		return mapStoreErr(err, "amenity")
	}
	return nil
}
