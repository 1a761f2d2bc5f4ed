package e2e

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"homestay/internal/facade"
	"homestay/internal/middleware"
	"homestay/internal/modules/amenities"
	"homestay/internal/modules/auth"
	"homestay/internal/modules/bookings"
	"homestay/internal/modules/hosts"
	"homestay/internal/modules/places"
	"homestay/internal/modules/reviews"
	"homestay/internal/modules/users"
	jwtsvc "homestay/internal/pkg/jwt"
)

type TestSuite struct {
	router *gin.Engine
}

type TestResponse struct {
	Success bool                   `json:"success"`
	Data    map[string]interface{} `json:"data,omitempty"`
	Error   *ErrorDetail           `json:"error,omitempty"`
}

type ErrorDetail struct {
	Code    string      `json:"code"`
	Message string      `json:"message"`
	Details interface{} `json:"details,omitempty"`
}

// setupTestSuite builds the full API over in-memory stores, wired the same
// way as the server binary.
func setupTestSuite(t *testing.T) *TestSuite {
	t.Helper()
	gin.SetMode(gin.TestMode)

	f := facade.NewMemory(nil)
	j := jwtsvc.New("test_secret_key_32_characters_min", 24*time.Hour)

	authHandler := auth.NewHandler(auth.NewService(f, j))
	usersHandler := users.NewHandler(f)
	hostsHandler := hosts.NewHandler(f)
	placesHandler := places.NewHandler(f)
	amenitiesHandler := amenities.NewHandler(f)
	bookingsHandler := bookings.NewHandler(f)
	reviewsHandler := reviews.NewHandler(f)

	r := gin.New()
	r.Use(gin.Recovery())

	v1 := r.Group("/api/v1")
	authHandler.RegisterRoutes(v1)

	protected := v1.Group("/")
	protected.Use(middleware.Auth(j))

	hostsHandler.RegisterRoutes(v1, protected)
	placesHandler.RegisterRoutes(v1, protected)
	amenitiesHandler.RegisterRoutes(v1, protected.Group("/", middleware.AdminOnly()))
	reviewsHandler.RegisterRoutes(v1, protected)
	usersHandler.RegisterRoutes(protected)
	bookingsHandler.RegisterRoutes(protected)

	return &TestSuite{router: r}
}

func (s *TestSuite) makeRequest(t *testing.T, method, path string, body interface{}, token string) *httptest.ResponseRecorder {
	t.Helper()

	var bodyBytes []byte
	if body != nil {
		var err error
		bodyBytes, err = json.Marshal(body)
		require.NoError(t, err)
	}

	req := httptest.NewRequest(method, path, bytes.NewBuffer(bodyBytes))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func parseResponse(t *testing.T, w *httptest.ResponseRecorder) *TestResponse {
	t.Helper()
	var resp TestResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp), "status %d body %s", w.Code, w.Body.String())
	return &resp
}

// register creates an account and returns its id and access token.
func (s *TestSuite) register(t *testing.T, email, role string) (string, string) {
	t.Helper()

	w := s.makeRequest(t, "POST", "/api/v1/auth/register", map[string]interface{}{
		"first_name": "Test",
		"last_name":  "Person",
		"email":      email,
		"password":   "Password123!",
		"role":       role,
	}, "")
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = s.makeRequest(t, "POST", "/api/v1/auth/login", map[string]interface{}{
		"email":    email,
		"password": "Password123!",
	}, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	resp := parseResponse(t, w)
	account := resp.Data["account"].(map[string]interface{})
	return account["id"].(string), resp.Data["access_token"].(string)
}

func (s *TestSuite) createPlace(t *testing.T, hostToken, title string, price float64, capacity int) string {
	t.Helper()

	w := s.makeRequest(t, "POST", "/api/v1/places", map[string]interface{}{
		"title":       title,
		"description": "A pleasant spot for a short stay.",
		"price":       price,
		"latitude":    43.25,
		"longitude":   76.91,
		"capacity":    capacity,
	}, hostToken)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	resp := parseResponse(t, w)
	return resp.Data["place"].(map[string]interface{})["id"].(string)
}

func futureDate(daysAhead int) string {
	return time.Now().UTC().AddDate(0, 0, daysAhead).Format("2006-01-02")
}

func TestRegistrationAndLogin(t *testing.T) {
	s := setupTestSuite(t)

	// The first account on a fresh install is an admin.
	w := s.makeRequest(t, "POST", "/api/v1/auth/register", map[string]interface{}{
		"first_name": "First",
		"last_name":  "Admin",
		"email":      "first@test.com",
		"password":   "Password123!",
		"role":       "guest",
	}, "")
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	resp := parseResponse(t, w)
	account := resp.Data["account"].(map[string]interface{})
	assert.Equal(t, true, account["is_admin"])

	// Duplicate email in any casing is rejected.
	w = s.makeRequest(t, "POST", "/api/v1/auth/register", map[string]interface{}{
		"first_name": "Second",
		"last_name":  "Person",
		"email":      "FIRST@test.com",
		"password":   "Password123!",
		"role":       "host",
	}, "")
	assert.Equal(t, http.StatusConflict, w.Code, w.Body.String())

	// Wrong password is a 401.
	w = s.makeRequest(t, "POST", "/api/v1/auth/login", map[string]interface{}{
		"email":    "first@test.com",
		"password": "wrong-password",
	}, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = s.makeRequest(t, "POST", "/api/v1/auth/login", map[string]interface{}{
		"email":    "first@test.com",
		"password": "Password123!",
	}, "")
	require.Equal(t, http.StatusOK, w.Code)
	resp = parseResponse(t, w)
	assert.NotEmpty(t, resp.Data["access_token"])
}

func TestPlaceLifecycle(t *testing.T) {
	s := setupTestSuite(t)

	// Registered first, so this host is also the admin.
	_, hostToken := s.register(t, "host@test.com", "host")
	_, guestToken := s.register(t, "guest@test.com", "guest")

	placeID := s.createPlace(t, hostToken, "Loft", 100, 4)

	// Guests cannot list places of their own.
	w := s.makeRequest(t, "POST", "/api/v1/places", map[string]interface{}{
		"title":       "Sneaky",
		"description": "Should not exist.",
		"price":       10,
		"capacity":    1,
	}, guestToken)
	assert.Equal(t, http.StatusForbidden, w.Code, w.Body.String())

	// Anyone may browse.
	w = s.makeRequest(t, "GET", "/api/v1/places/"+placeID, nil, "")
	require.Equal(t, http.StatusOK, w.Code)

	// The admin host manages amenities and attaches one.
	w = s.makeRequest(t, "POST", "/api/v1/amenities", map[string]interface{}{"name": "Wi-Fi"}, hostToken)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	amenityID := parseResponse(t, w).Data["amenity"].(map[string]interface{})["id"].(string)

	// A plain guest is not an admin.
	w = s.makeRequest(t, "POST", "/api/v1/amenities", map[string]interface{}{"name": "Sauna"}, guestToken)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = s.makeRequest(t, "POST", fmt.Sprintf("/api/v1/places/%s/amenities/%s", placeID, amenityID), nil, hostToken)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	// Attaching twice conflicts.
	w = s.makeRequest(t, "POST", fmt.Sprintf("/api/v1/places/%s/amenities/%s", placeID, amenityID), nil, hostToken)
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestBookingFlow(t *testing.T) {
	s := setupTestSuite(t)

	_, hostToken := s.register(t, "host@test.com", "host")
	_, guestToken := s.register(t, "guest@test.com", "guest")
	_, otherToken := s.register(t, "other@test.com", "guest")

	placeID := s.createPlace(t, hostToken, "Loft", 100, 4)

	// Guest books three nights.
	w := s.makeRequest(t, "POST", "/api/v1/bookings", map[string]interface{}{
		"place_id":     placeID,
		"checkin_date": futureDate(30),
		"night_count":  3,
		"guest_count":  3,
	}, guestToken)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	booking := parseResponse(t, w).Data["booking"].(map[string]interface{})
	bookingID := booking["id"].(string)
	assert.Equal(t, 900.0, booking["total_price"])
	assert.Equal(t, "pending", booking["status"])

	// An overlapping stay is rejected.
	w = s.makeRequest(t, "POST", "/api/v1/bookings", map[string]interface{}{
		"place_id":     placeID,
		"checkin_date": futureDate(32),
		"night_count":  2,
		"guest_count":  1,
	}, otherToken)
	assert.Equal(t, http.StatusConflict, w.Code, w.Body.String())

	// Back to back on the checkout day works.
	w = s.makeRequest(t, "POST", "/api/v1/bookings", map[string]interface{}{
		"place_id":     placeID,
		"checkin_date": futureDate(33),
		"night_count":  2,
		"guest_count":  1,
	}, otherToken)
	assert.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	// Only the host confirms; the guest trying is a 403.
	statusPath := "/api/v1/bookings/" + bookingID + "/status"
	w = s.makeRequest(t, "PATCH", statusPath, map[string]interface{}{"status": "confirmed"}, guestToken)
	assert.Equal(t, http.StatusForbidden, w.Code, w.Body.String())

	w = s.makeRequest(t, "PATCH", statusPath, map[string]interface{}{"status": "confirmed"}, hostToken)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	// The guest reviews the stay; a second review conflicts.
	w = s.makeRequest(t, "POST", "/api/v1/reviews", map[string]interface{}{
		"booking_id": bookingID,
		"text":       "Great stay.",
		"rating":     5,
	}, guestToken)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = s.makeRequest(t, "POST", "/api/v1/reviews", map[string]interface{}{
		"booking_id": bookingID,
		"text":       "Again!",
		"rating":     4,
	}, guestToken)
	assert.Equal(t, http.StatusConflict, w.Code)

	// The rating shows up on the public place endpoint.
	w = s.makeRequest(t, "GET", "/api/v1/places/"+placeID+"/rating", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	data := parseResponse(t, w).Data
	assert.Equal(t, 5.0, data["rating"])
	assert.Equal(t, 1.0, data["review_count"])
}

func TestBookingVisibility(t *testing.T) {
	s := setupTestSuite(t)

	_, hostToken := s.register(t, "host@test.com", "host")
	_, guestToken := s.register(t, "guest@test.com", "guest")
	_, strangerToken := s.register(t, "stranger@test.com", "guest")

	placeID := s.createPlace(t, hostToken, "Loft", 100, 4)

	w := s.makeRequest(t, "POST", "/api/v1/bookings", map[string]interface{}{
		"place_id":     placeID,
		"checkin_date": futureDate(30),
		"night_count":  2,
		"guest_count":  2,
	}, guestToken)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	bookingID := parseResponse(t, w).Data["booking"].(map[string]interface{})["id"].(string)

	path := "/api/v1/bookings/" + bookingID
	for token, want := range map[string]int{
		guestToken:    http.StatusOK,
		hostToken:     http.StatusOK,
		strangerToken: http.StatusForbidden,
	} {
		w = s.makeRequest(t, "GET", path, nil, token)
		assert.Equal(t, want, w.Code, w.Body.String())
	}

	w = s.makeRequest(t, "GET", path, nil, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
