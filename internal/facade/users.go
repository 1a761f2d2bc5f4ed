package facade

import (
	"context"
	"errors"
	"strings"

	"homestay/internal/domain"
	"homestay/internal/store"
)

// Role tells an account's kind apart in the combined User+Host namespace.
type Role string

const (
	RoleGuest Role = "guest"
	RoleHost  Role = "host"
)

type CreateUserParams struct {
	FirstName    string
	LastName     string
	Email        string
	PasswordHash string
	IsAdmin      bool
}

type UpdateUserParams struct {
	FirstName    *string
	LastName     *string
	Email        *string
	PasswordHash *string
	IsAdmin      *bool
}

func (f *Facade) CreateUser(ctx context.Context, p CreateUserParams) (*domain.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if err := f.checkEmailFree(ctx, p.Email, ""); err != nil {
		return nil, err
	}
	u, err := domain.NewUser(p.FirstName, p.LastName, p.Email, p.PasswordHash, p.IsAdmin)
	if err != nil {
		return nil, err
	}
	if err := f.st.Users.Add(ctx, u); err != nil {
		return nil, mapStoreErr(err, "user")
	}
	return u, nil
}

func (f *Facade) GetUser(ctx context.Context, id string) (*domain.User, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()

	u, err := f.st.Users.Get(ctx, id)
	if err != nil {
		return nil, mapStoreErr(err, "user")
	}
	return u, nil
}

func (f *Facade) ListUsers(ctx context.Context) ([]*domain.User, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.st.Users.GetAll(ctx)
}

func (f *Facade) UpdateUser(ctx context.Context, id string, p UpdateUserParams) (*domain.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	stored, err := f.st.Users.Get(ctx, id)
	if err != nil {
		return nil, mapStoreErr(err, "user")
	}
	u := *stored
	if err := f.applyUserUpdate(ctx, &u, p); err != nil {
		return nil, err
	}
	if err := f.st.Users.Update(ctx, &u); err != nil {
		return nil, mapStoreErr(err, "user")
	}
	return &u, nil
}

// DeleteUser removes the account. Existing bookings keep their frozen user_id
// back-reference; they are deliberately not cascaded.
func (f *Facade) DeleteUser(ctx context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if err := f.st.Users.Delete(ctx, id); err != nil {
		return mapStoreErr(err, "user")
	}
	return nil
}

// GetUserBookings returns the bookings made by the user, oldest first.
func (f *Facade) GetUserBookings(ctx context.Context, userID string) ([]*domain.Booking, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()

	if _, err := f.st.Users.Get(ctx, userID); err != nil {
		return nil, mapStoreErr(err, "user")
	}
	all, err := f.st.Bookings.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*domain.Booking, 0)
	for _, b := range all {
		if b.UserID == userID {
			out = append(out, b)
		}
	}
	return out, nil
}

// GetAccountByEmail resolves an email in the combined User+Host namespace.
// Used by the transport layer for login; the facade itself never checks
// credentials.
func (f *Facade) GetAccountByEmail(ctx context.Context, email string) (*domain.User, Role, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()

	email = normalizeEmail(email)
	if u, err := f.st.Users.FindBy(ctx, "email", email); err == nil {
		return u, RoleGuest, nil
	} else if !errors.Is(err, store.ErrNotFound) {
		return nil, "", err
	}
	if h, err := f.st.Hosts.FindBy(ctx, "email", email); err == nil {
		return &h.User, RoleHost, nil
	} else if !errors.Is(err, store.ErrNotFound) {
		return nil, "", err
	}
	return nil, "", notFoundf("no account with email %s", email)
}

// IsFirstAccount reports whether no user or host exists yet; the first
// registered account becomes an admin.
func (f *Facade) IsFirstAccount(ctx context.Context) (bool, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()

	users, err := f.st.Users.GetAll(ctx)
	if err != nil {
		return false, err
	}
	hosts, err := f.st.Hosts.GetAll(ctx)
	if err != nil {
		return false, err
	}
	return len(users)+len(hosts) == 0, nil
}

// checkEmailFree enforces email uniqueness over the combined User+Host
// namespace. excludeID lets an account keep its own address on update.
// Caller holds the write lock.
func (f *Facade) checkEmailFree(ctx context.Context, email, excludeID string) error {
	email = normalizeEmail(email)
	if u, err := f.st.Users.FindBy(ctx, "email", email); err == nil {
		if u.ID != excludeID {
			return conflictf("email %s is already registered", email)
		}
	} else if !errors.Is(err, store.ErrNotFound) {
		return err
	}
	if h, err := f.st.Hosts.FindBy(ctx, "email", email); err == nil {
		if h.ID != excludeID {
			return conflictf("email %s is already registered", email)
		}
	} else if !errors.Is(err, store.ErrNotFound) {
		return err
	}
	return nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// applyUserUpdate funnels partial account updates through the entity's
// validating setters, shared by UpdateUser and UpdateHost (Host embeds User).
func (f *Facade) applyUserUpdate(ctx context.Context, u *domain.User, p UpdateUserParams) error {
	if p.Email != nil {
		if err := f.checkEmailFree(ctx, *p.Email, u.ID); err != nil {
			return err
		}
		if err := u.SetEmail(*p.Email); err != nil {
			return err
		}
	}
	if p.FirstName != nil {
		if err := u.SetFirstName(*p.FirstName); err != nil {
			return err
		}
	}
	if p.LastName != nil {
		if err := u.SetLastName(*p.LastName); err != nil {
			return err
		}
	}
	if p.PasswordHash != nil {
		if err := u.SetPasswordHash(*p.PasswordHash); err != nil {
			return err
		}
	}
	if p.IsAdmin != nil {
		u.SetIsAdmin(*p.IsAdmin)
	}
	return nil
}

func mapStoreErr(err error, what string) error {
	switch {
	case errors.Is(err, store.ErrNotFound):
		return notFoundf("%s does not exist", what)
	case errors.Is(err, store.ErrDuplicate):
		return conflictf("%s already exists", what)
	default:
		return err
	}
}
