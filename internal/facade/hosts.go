package facade

import (
	"context"

	"homestay/internal/domain"
)

func (f *Facade) CreateHost(ctx context.Context, p CreateUserParams) (*domain.Host, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if err := f.checkEmailFree(ctx, p.Email, ""); err != nil {
		return nil, err
	}
	h, err := domain.NewHost(p.FirstName, p.LastName, p.Email, p.PasswordHash, p.IsAdmin)
	if err != nil {
		return nil, err
	}
	if err := f.st.Hosts.Add(ctx, h); err != nil {
		return nil, mapStoreErr(err, "host")
	}
	return h, nil
}

func (f *Facade) GetHost(ctx context.Context, id string) (*domain.Host, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()

	h, err := f.st.Hosts.Get(ctx, id)
	if err != nil {
		return nil, mapStoreErr(err, "host")
	}
	return h, nil
}

func (f *Facade) ListHosts(ctx context.Context) ([]*domain.Host, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.st.Hosts.GetAll(ctx)
}

func (f *Facade) UpdateHost(ctx context.Context, id string, p UpdateUserParams) (*domain.Host, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	stored, err := f.st.Hosts.Get(ctx, id)
	if err != nil {
		return nil, mapStoreErr(err, "host")
	}
	h := *stored
	if err := f.applyUserUpdate(ctx, &h.User, p); err != nil {
		return nil, err
	}
	if err := f.st.Hosts.Update(ctx, &h); err != nil {
		return nil, mapStoreErr(err, "host")
	}
	return &h, nil
}

// DeleteHost removes the host and cascades to its places, which in turn
// removes their bookings and reviews.
func (f *Facade) DeleteHost(ctx context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if _, err := f.st.Hosts.Get(ctx, id); err != nil {
		return mapStoreErr(err, "host")
	}
	places, err := f.ownedPlaces(ctx, id)
	if err != nil {
		return err
	}
	for _, p := range places {
		if err := f.deletePlaceCascade(ctx, p.ID); err != nil {
			return err
		}
	}
	if err := f.st.Hosts.Delete(ctx, id); err != nil {
		return mapStoreErr(err, "host")
	}
	return nil
}

// GetHostPlaces lists the places owned by the host, oldest first.
func (f *Facade) GetHostPlaces(ctx context.Context, hostID string) ([]*domain.Place, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()

	if _, err := f.st.Hosts.Get(ctx, hostID); err != nil {
		return nil, mapStoreErr(err, "host")
	}
	return f.ownedPlaces(ctx, hostID)
}

// GetHostRating averages the per-place average ratings over the host's
// places. Places without reviews are skipped; a host with no rated place
// gets the 0 sentinel, same as an unreviewed place.
func (f *Facade) GetHostRating(ctx context.Context, hostID string) (float64, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()

	if _, err := f.st.Hosts.Get(ctx, hostID); err != nil {
		return 0, mapStoreErr(err, "host")
	}
	places, err := f.ownedPlaces(ctx, hostID)
	if err != nil {
		return 0, err
	}
	var sum float64
	var rated int
	for _, p := range places {
		avg, n, err := f.placeRating(ctx, p.ID)
		if err != nil {
			return 0, err
		}
		if n == 0 {
			continue
		}
		sum += avg
		rated++
	}
	if rated == 0 {
		return 0, nil
	}
	return sum / float64(rated), nil
}

func (f *Facade) ownedPlaces(ctx context.Context, hostID string) ([]*domain.Place, error) {
	all, err := f.st.Places.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*domain.Place, 0)
	for _, p := range all {
		if p.HostID == hostID {
			out = append(out, p)
		}
	}
	return out, nil
}
