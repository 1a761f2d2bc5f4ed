package domain

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUser(t *testing.T) {
	u, err := NewUser("Dana", "Serik", "Dana@Example.COM", "hash", false)
	require.NoError(t, err)

	assert.NotEmpty(t, u.ID)
	assert.Equal(t, "dana@example.com", u.Email)
	assert.False(t, u.IsAdmin)
	assert.False(t, u.CreatedAt.IsZero())
}

func TestNewUser_Validation(t *testing.T) {
	cases := []struct {
		name  string
		first string
		last  string
		email string
	}{
		{"empty first name", "", "Serik", "a@b.kz"},
		{"empty last name", "Dana", "", "a@b.kz"},
		{"long first name", strings.Repeat("x", 51), "Serik", "a@b.kz"},
		{"empty email", "Dana", "Serik", ""},
		{"bad email", "Dana", "Serik", "not-an-email"},
		{"bad email no tld", "Dana", "Serik", "dana@host"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewUser(tc.first, tc.last, tc.email, "hash", false)
			assert.ErrorIs(t, err, ErrValidation)
		})
	}
}

func TestNewHost_SharesUserRules(t *testing.T) {
	h, err := NewHost("Olzhas", "Kan", "OLZHAS@example.com", "hash", false)
	require.NoError(t, err)
	assert.Equal(t, "olzhas@example.com", h.Email)

	_, err = NewHost("", "Kan", "olzhas@example.com", "hash", false)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestNewPlace_Validation(t *testing.T) {
	valid := func() (string, string, float64, float64, float64, int) {
		return "Loft", "A bright loft in the center.", 80, 43.25, 76.91, 2
	}

	title, desc, price, lat, lng, capacity := valid()
	p, err := NewPlace(title, desc, price, lat, lng, capacity, "host-1")
	require.NoError(t, err)
	assert.Equal(t, "host-1", p.HostID)

	_, err = NewPlace("", desc, price, lat, lng, capacity, "host-1")
	assert.ErrorIs(t, err, ErrValidation)

	_, err = NewPlace(strings.Repeat("x", 101), desc, price, lat, lng, capacity, "host-1")
	assert.ErrorIs(t, err, ErrValidation)

	_, err = NewPlace(title, desc, 0, lat, lng, capacity, "host-1")
	assert.ErrorIs(t, err, ErrValidation)

	_, err = NewPlace(title, desc, price, 91, lng, capacity, "host-1")
	assert.ErrorIs(t, err, ErrValidation)

	_, err = NewPlace(title, desc, price, lat, -181, capacity, "host-1")
	assert.ErrorIs(t, err, ErrValidation)

	_, err = NewPlace(title, desc, price, lat, lng, 0, "host-1")
	assert.ErrorIs(t, err, ErrValidation)

	_, err = NewPlace(title, desc, price, lat, lng, 65, "host-1")
	assert.ErrorIs(t, err, ErrValidation)
}

func TestPlace_Amenities(t *testing.T) {
	p, err := NewPlace("Loft", "A bright loft in the center.", 80, 43.25, 76.91, 2, "host-1")
	require.NoError(t, err)

	require.NoError(t, p.AddAmenity("wifi"))
	require.NoError(t, p.AddAmenity("kitchen"))
	assert.ErrorIs(t, p.AddAmenity("wifi"), ErrValidation)

	assert.True(t, p.HasAmenity("wifi"))
	assert.Equal(t, []string{"wifi", "kitchen"}, p.AmenityIDs)

	assert.True(t, p.RemoveAmenity("wifi"))
	assert.False(t, p.RemoveAmenity("wifi"))
	assert.Equal(t, []string{"kitchen"}, p.AmenityIDs)
}

func TestNewAmenity(t *testing.T) {
	a, err := NewAmenity("Wi-Fi")
	require.NoError(t, err)
	assert.Equal(t, "Wi-Fi", a.Name)

	_, err = NewAmenity("")
	assert.ErrorIs(t, err, ErrValidation)

	_, err = NewAmenity(strings.Repeat("x", 33))
	assert.ErrorIs(t, err, ErrValidation)
}

func TestNewReview(t *testing.T) {
	u, p := testUserAndPlace(t)
	b, err := NewBooking(u, p, 2, time.Date(2026, 6, 10, 0, 0, 0, 0, time.UTC), 2, testNow)
	require.NoError(t, err)

	r, err := NewReview(b, "Great stay.", 5)
	require.NoError(t, err)
	assert.Equal(t, b.ID, r.BookingID)
	assert.Equal(t, b.PlaceID, r.PlaceID)

	_, err = NewReview(b, "", 5)
	assert.ErrorIs(t, err, ErrValidation)

	_, err = NewReview(b, "ok", 0)
	assert.ErrorIs(t, err, ErrValidation)

	_, err = NewReview(b, "ok", 6)
	assert.ErrorIs(t, err, ErrValidation)
}
