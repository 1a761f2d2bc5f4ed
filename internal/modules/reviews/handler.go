package reviews

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"homestay/internal/domain"
	"homestay/internal/facade"
	"homestay/internal/pkg/response"
	"homestay/internal/pkg/validator"
)

type CreateReviewRequest struct {
	BookingID string `json:"booking_id" validate:"required"`
	Text      string `json:"text" validate:"required,max=1024"`
	Rating    int    `json:"rating" validate:"required,gte=1,lte=5"`
}

type UpdateReviewRequest struct {
	Text   *string `json:"text"`
	Rating *int    `json:"rating"`
}

type Handler struct {
	facade *facade.Facade
}

func NewHandler(f *facade.Facade) *Handler {
	return &Handler{facade: f}
}

func (h *Handler) RegisterRoutes(public, protected *gin.RouterGroup) {
	public.GET("/reviews", h.List)
	public.GET("/reviews/:id", h.Get)

	protected.POST("/reviews", h.Create)
	protected.PUT("/reviews/:id", h.Update)
	protected.DELETE("/reviews/:id", h.Delete)
}

// Create checks that the caller is the guest who made the booking. The
// facade exposes the booking, the transport owns the authorization rule.
func (h *Handler) Create(c *gin.Context) {
	var req CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}
	if details := validator.Validate(req); details != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid review data", details)
		return
	}

	b, err := h.facade.GetBooking(c.Request.Context(), req.BookingID)
	if err != nil {
		response.FromError(c, err)
		return
	}
	if b.UserID != c.GetString("user_id") {
		response.Error(c, http.StatusForbidden, "FORBIDDEN", "Only the guest who booked may review")
		return
	}

	r, err := h.facade.CreateReview(c.Request.Context(), facade.CreateReviewParams{
		BookingID: req.BookingID,
		Text:      req.Text,
		Rating:    req.Rating,
	})
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"review": r})
}

func (h *Handler) List(c *gin.Context) {
	reviews, err := h.facade.ListReviews(c.Request.Context())
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"reviews": reviews})
}

func (h *Handler) Get(c *gin.Context) {
	r, err := h.facade.GetReview(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"review": r})
}

func (h *Handler) Update(c *gin.Context) {
	r, ok := h.ownReview(c)
	if !ok {
		return
	}

	var req UpdateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}
	updated, err := h.facade.UpdateReview(c.Request.Context(), r.ID, facade.UpdateReviewParams{
		Text:   req.Text,
		Rating: req.Rating,
	})
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"review": updated})
}

func (h *Handler) Delete(c *gin.Context) {
	r, ok := h.ownReview(c)
	if !ok {
		return
	}
	if err := h.facade.DeleteReview(c.Request.Context(), r.ID); err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": true})
}

// ownReview resolves :id and allows only the review's author (via its
// booking) or an admin to change it.
func (h *Handler) ownReview(c *gin.Context) (*domain.Review, bool) {
	r, err := h.facade.GetReview(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.FromError(c, err)
		return nil, false
	}
	if c.GetBool("is_admin") {
		return r, true
	}
	b, err := h.facade.GetBooking(c.Request.Context(), r.BookingID)
	if err != nil {
		response.FromError(c, err)
		return nil, false
	}
	if b.UserID != c.GetString("user_id") {
		response.Error(c, http.StatusForbidden, "FORBIDDEN", "Not the author of this review")
		return nil, false
	}
	return r, true
}
