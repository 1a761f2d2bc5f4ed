package facade

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateUser_EmailUniqueness(t *testing.T) {
	f, _ := newTestFacade(t)
	ctx := context.Background()

	seedGuest(t, f, "dana@example.com")

	// Same address in any casing is taken.
	_, err := f.CreateUser(ctx, CreateUserParams{
		FirstName: "Other", LastName: "Person",
		Email: "DANA@Example.COM", PasswordHash: "hash",
	})
	assert.ErrorIs(t, err, ErrConflict)

	// The namespace spans hosts too.
	_, err = f.CreateHost(ctx, CreateUserParams{
		FirstName: "Other", LastName: "Person",
		Email: "dana@example.com", PasswordHash: "hash",
	})
	assert.ErrorIs(t, err, ErrConflict)
}

func TestUpdateUser(t *testing.T) {
	f, _ := newTestFacade(t)
	ctx := context.Background()

	u := seedGuest(t, f, "dana@example.com")
	seedGuest(t, f, "taken@example.com")

	first := "Danara"
	got, err := f.UpdateUser(ctx, u.ID, UpdateUserParams{FirstName: &first})
	require.NoError(t, err)
	assert.Equal(t, "Danara", got.FirstName)

	// Changing email to a taken address conflicts; keeping your own is fine.
	taken := "taken@example.com"
	_, err = f.UpdateUser(ctx, u.ID, UpdateUserParams{Email: &taken})
	assert.ErrorIs(t, err, ErrConflict)

	own := "Dana@Example.com"
	got, err = f.UpdateUser(ctx, u.ID, UpdateUserParams{Email: &own})
	require.NoError(t, err)
	assert.Equal(t, "dana@example.com", got.Email)

	_, err = f.UpdateUser(ctx, "missing", UpdateUserParams{FirstName: &first})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUpdateUser_RejectedUpdateLeavesStateAlone(t *testing.T) {
	f, _ := newTestFacade(t)
	ctx := context.Background()

	u := seedGuest(t, f, "dana@example.com")

	// The first name applies before the empty last name fails; the stored
	// account must keep both original values.
	first := "Danara"
	last := ""
	_, err := f.UpdateUser(ctx, u.ID, UpdateUserParams{FirstName: &first, LastName: &last})
	assert.ErrorIs(t, err, ErrInvalid)

	got, err := f.GetUser(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, "Guest", got.FirstName)
	assert.Equal(t, "Tester", got.LastName)
}

func TestDeleteUser_KeepsBookings(t *testing.T) {
	f, _ := newTestFacade(t)
	ctx := context.Background()

	host := seedHost(t, f, "host@example.com")
	place := seedPlace(t, f, host.ID, "Loft", 100, 4)
	guest := seedGuest(t, f, "guest@example.com")
	b := seedBooking(t, f, guest.ID, place.ID, 2, day(10), 2)

	require.NoError(t, f.DeleteUser(ctx, guest.ID))

	// The booking survives as a frozen record.
	got, err := f.GetBooking(ctx, b.ID)
	require.NoError(t, err)
	assert.Equal(t, guest.ID, got.UserID)

	_, err = f.GetUser(ctx, guest.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGetUserBookings(t *testing.T) {
	f, _ := newTestFacade(t)
	ctx := context.Background()

	host := seedHost(t, f, "host@example.com")
	place := seedPlace(t, f, host.ID, "Loft", 100, 4)
	a := seedGuest(t, f, "a@example.com")
	c := seedGuest(t, f, "c@example.com")

	b1 := seedBooking(t, f, a.ID, place.ID, 2, day(10), 2)
	seedBooking(t, f, c.ID, place.ID, 2, day(20), 2)

	got, err := f.GetUserBookings(ctx, a.ID)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, b1.ID, got[0].ID)
}

func TestGetAccountByEmail(t *testing.T) {
	f, _ := newTestFacade(t)
	ctx := context.Background()

	guest := seedGuest(t, f, "guest@example.com")
	host := seedHost(t, f, "host@example.com")

	u, role, err := f.GetAccountByEmail(ctx, "GUEST@example.com")
	require.NoError(t, err)
	assert.Equal(t, guest.ID, u.ID)
	assert.Equal(t, RoleGuest, role)

	u, role, err = f.GetAccountByEmail(ctx, "host@example.com")
	require.NoError(t, err)
	assert.Equal(t, host.ID, u.ID)
	assert.Equal(t, RoleHost, role)

	_, _, err = f.GetAccountByEmail(ctx, "nobody@example.com")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestIsFirstAccount(t *testing.T) {
	f, _ := newTestFacade(t)
	ctx := context.Background()

	first, err := f.IsFirstAccount(ctx)
	require.NoError(t, err)
	assert.True(t, first)

	seedHost(t, f, "host@example.com")

	first, err = f.IsFirstAccount(ctx)
	require.NoError(t, err)
	assert.False(t, first)
}
