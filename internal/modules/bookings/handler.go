package bookings

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"homestay/internal/domain"
	"homestay/internal/facade"
	"homestay/internal/pkg/response"
	"homestay/internal/pkg/validator"
)

const dateLayout = "2006-01-02"

type Handler struct {
	facade *facade.Facade
}

func NewHandler(f *facade.Facade) *Handler {
	return &Handler{facade: f}
}

// RegisterRoutes expects an auth-protected group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/bookings", h.Create)
	rg.GET("/bookings", h.List)
	rg.GET("/bookings/:id", h.Get)
	rg.PUT("/bookings/:id", h.Update)
	rg.PATCH("/bookings/:id/status", h.SetStatus)
	rg.DELETE("/bookings/:id", h.Delete)
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}
	if details := validator.Validate(req); details != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid booking data", details)
		return
	}
	checkin, err := time.Parse(dateLayout, req.CheckinDate)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "checkin_date must be formatted as YYYY-MM-DD")
		return
	}

	b, err := h.facade.CreateBooking(c.Request.Context(), facade.CreateBookingParams{
		UserID:      c.GetString("user_id"),
		PlaceID:     req.PlaceID,
		GuestCount:  req.GuestCount,
		CheckinDate: checkin,
		NightCount:  req.NightCount,
	})
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"booking": toResponse(b)})
}

func (h *Handler) List(c *gin.Context) {
	if !c.GetBool("is_admin") {
		response.Error(c, http.StatusForbidden, "FORBIDDEN", "Admin access required")
		return
	}
	all, err := h.facade.ListBookings(c.Request.Context())
	if err != nil {
		response.FromError(c, err)
		return
	}
	out := make([]BookingResponse, 0, len(all))
	for _, b := range all {
		out = append(out, toResponse(b))
	}
	response.Success(c, http.StatusOK, gin.H{"bookings": out})
}

func (h *Handler) Get(c *gin.Context) {
	b, ok := h.visibleBooking(c)
	if !ok {
		return
	}
	response.Success(c, http.StatusOK, gin.H{"booking": toResponse(b)})
}

func (h *Handler) Update(c *gin.Context) {
	b, ok := h.visibleBooking(c)
	if !ok {
		return
	}
	if b.UserID != c.GetString("user_id") && !c.GetBool("is_admin") {
		response.Error(c, http.StatusForbidden, "FORBIDDEN", "Only the booking's guest may change it")
		return
	}

	var req UpdateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}
	params := facade.UpdateBookingParams{
		GuestCount: req.GuestCount,
		NightCount: req.NightCount,
	}
	if req.CheckinDate != nil {
		checkin, err := time.Parse(dateLayout, *req.CheckinDate)
		if err != nil {
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "checkin_date must be formatted as YYYY-MM-DD")
			return
		}
		params.CheckinDate = &checkin
	}

	updated, err := h.facade.UpdateBooking(c.Request.Context(), b.ID, params)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"booking": toResponse(updated)})
}

// SetStatus drives the booking state machine. Confirm and decline belong to
// the place's host; cancel belongs to the guest who booked.
func (h *Handler) SetStatus(c *gin.Context) {
	b, ok := h.visibleBooking(c)
	if !ok {
		return
	}

	var req StatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}
	if details := validator.Validate(req); details != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid status", details)
		return
	}

	callerID := c.GetString("user_id")
	status := domain.BookingStatus(req.Status)
	switch status {
	case domain.BookingConfirmed, domain.BookingDeclined:
		if b.HostID != callerID && !c.GetBool("is_admin") {
			response.Error(c, http.StatusForbidden, "FORBIDDEN", "Only the place's host may confirm or decline")
			return
		}
	case domain.BookingCancelled:
		if b.UserID != callerID && !c.GetBool("is_admin") {
			response.Error(c, http.StatusForbidden, "FORBIDDEN", "Only the booking's guest may cancel")
			return
		}
	}

	updated, err := h.facade.SetBookingStatus(c.Request.Context(), b.ID, status)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"booking": toResponse(updated)})
}

func (h *Handler) Delete(c *gin.Context) {
	b, ok := h.visibleBooking(c)
	if !ok {
		return
	}
	if b.UserID != c.GetString("user_id") && !c.GetBool("is_admin") {
		response.Error(c, http.StatusForbidden, "FORBIDDEN", "Only the booking's guest may delete it")
		return
	}
	if err := h.facade.DeleteBooking(c.Request.Context(), b.ID); err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": true})
}

// visibleBooking resolves :id and checks the caller is a party to the
// booking: its guest, the place's host, or an admin.
func (h *Handler) visibleBooking(c *gin.Context) (*domain.Booking, bool) {
	b, err := h.facade.GetBooking(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.FromError(c, err)
		return nil, false
	}
	callerID := c.GetString("user_id")
	if b.UserID != callerID && b.HostID != callerID && !c.GetBool("is_admin") {
		response.Error(c, http.StatusForbidden, "FORBIDDEN", "Not a party to this booking")
		return nil, false
	}
	return b, true
}
