package amenities

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"homestay/internal/facade"
	"homestay/internal/pkg/response"
)

type AmenityRequest struct {
	Name string `json:"name" binding:"required"`
}

type Handler struct {
	facade *facade.Facade
}

func NewHandler(f *facade.Facade) *Handler {
	return &Handler{facade: f}
}

// RegisterRoutes keeps reads public; amenity management is admin-only.
func (h *Handler) RegisterRoutes(public, protected *gin.RouterGroup) {
	public.GET("/amenities", h.List)
	public.GET("/amenities/:id", h.Get)

	protected.POST("/amenities", h.Create)
	protected.PUT("/amenities/:id", h.Update)
	protected.DELETE("/amenities/:id", h.Delete)
}

func (h *Handler) Create(c *gin.Context) {
	var req AmenityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}
	a, err := h.facade.CreateAmenity(c.Request.Context(), req.Name)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"amenity": a})
}

func (h *Handler) List(c *gin.Context) {
	amenities, err := h.facade.ListAmenities(c.Request.Context())
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"amenities": amenities})
}

func (h *Handler) Get(c *gin.Context) {
	a, err := h.facade.GetAmenity(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"amenity": a})
}

func (h *Handler) Update(c *gin.Context) {
	var req AmenityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}
	a, err := h.facade.UpdateAmenity(c.Request.Context(), c.Param("id"), req.Name)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"amenity": a})
}

func (h *Handler) Delete(c *gin.Context) {
	if err := h.facade.DeleteAmenity(c.Request.Context(), c.Param("id")); err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": true})
}
