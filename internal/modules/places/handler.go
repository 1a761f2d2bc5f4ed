package places

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"homestay/internal/domain"
	"homestay/internal/facade"
	"homestay/internal/pkg/response"
	"homestay/internal/pkg/validator"
)

type Handler struct {
	facade *facade.Facade
}

func NewHandler(f *facade.Facade) *Handler {
	return &Handler{facade: f}
}

func (h *Handler) RegisterRoutes(public, protected *gin.RouterGroup) {
	public.GET("/places", h.List)
	public.GET("/places/:id", h.Get)
	public.GET("/places/:id/reviews", h.Reviews)
	public.GET("/places/:id/rating", h.Rating)

	protected.POST("/places", h.Create)
	protected.PUT("/places/:id", h.Update)
	protected.DELETE("/places/:id", h.Delete)
	protected.GET("/places/:id/bookings", h.Bookings)
	protected.POST("/places/:id/amenities/:amenityID", h.AttachAmenity)
	protected.DELETE("/places/:id/amenities/:amenityID", h.DetachAmenity)
}

// Create lists a new place owned by the calling host.
func (h *Handler) Create(c *gin.Context) {
	if c.GetString("role") != string(facade.RoleHost) {
		response.Error(c, http.StatusForbidden, "FORBIDDEN", "Only hosts may list places")
		return
	}

	var req CreatePlaceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}
	if details := validator.Validate(req); details != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid place data", details)
		return
	}

	place, err := h.facade.CreatePlace(c.Request.Context(), facade.CreatePlaceParams{
		Title:       req.Title,
		Description: req.Description,
		Price:       req.Price,
		Latitude:    req.Latitude,
		Longitude:   req.Longitude,
		Capacity:    req.Capacity,
		HostID:      c.GetString("user_id"),
		AmenityIDs:  req.AmenityIDs,
	})
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"place": place})
}

func (h *Handler) List(c *gin.Context) {
	places, err := h.facade.ListPlaces(c.Request.Context())
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"places": places})
}

func (h *Handler) Get(c *gin.Context) {
	place, err := h.facade.GetPlace(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"place": place})
}

func (h *Handler) Update(c *gin.Context) {
	place, ok := h.ownedPlace(c)
	if !ok {
		return
	}

	var req UpdatePlaceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	updated, err := h.facade.UpdatePlace(c.Request.Context(), place.ID, facade.UpdatePlaceParams{
		Title:       req.Title,
		Description: req.Description,
		Price:       req.Price,
		Latitude:    req.Latitude,
		Longitude:   req.Longitude,
		Capacity:    req.Capacity,
	})
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"place": updated})
}

func (h *Handler) Delete(c *gin.Context) {
	place, ok := h.ownedPlace(c)
	if !ok {
		return
	}
	if err := h.facade.DeletePlace(c.Request.Context(), place.ID); err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": true})
}

func (h *Handler) Reviews(c *gin.Context) {
	reviews, err := h.facade.GetPlaceReviews(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"reviews": reviews})
}

func (h *Handler) Rating(c *gin.Context) {
	rating, count, err := h.facade.GetPlaceRating(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"rating": rating, "review_count": count})
}

func (h *Handler) Bookings(c *gin.Context) {
	place, ok := h.ownedPlace(c)
	if !ok {
		return
	}
	bookings, err := h.facade.GetPlaceBookings(c.Request.Context(), place.ID)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"bookings": bookings})
}

func (h *Handler) AttachAmenity(c *gin.Context) {
	place, ok := h.ownedPlace(c)
	if !ok {
		return
	}
	updated, err := h.facade.AttachAmenity(c.Request.Context(), place.ID, c.Param("amenityID"))
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"place": updated})
}

func (h *Handler) DetachAmenity(c *gin.Context) {
	place, ok := h.ownedPlace(c)
	if !ok {
		return
	}
	updated, err := h.facade.DetachAmenity(c.Request.Context(), place.ID, c.Param("amenityID"))
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"place": updated})
}

// ownedPlace resolves the :id param and enforces that the caller owns the
// place (or is an admin). Authorization lives here, not in the facade.
func (h *Handler) ownedPlace(c *gin.Context) (*domain.Place, bool) {
	place, err := h.facade.GetPlace(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.FromError(c, err)
		return nil, false
	}
	if place.HostID != c.GetString("user_id") && !c.GetBool("is_admin") {
		response.Error(c, http.StatusForbidden, "FORBIDDEN", "Not the owner of this place")
		return nil, false
	}
	return place, true
}
