package hosts

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"homestay/internal/facade"
	"homestay/internal/pkg/response"
)

type Handler struct {
	facade *facade.Facade
}

func NewHandler(f *facade.Facade) *Handler {
	return &Handler{facade: f}
}

// RegisterRoutes splits public reads (listings and ratings are browsable)
// from protected mutations.
func (h *Handler) RegisterRoutes(public, protected *gin.RouterGroup) {
	public.GET("/hosts", h.List)
	public.GET("/hosts/:id", h.Get)
	public.GET("/hosts/:id/places", h.Places)
	public.GET("/hosts/:id/rating", h.Rating)

	protected.PUT("/hosts/:id", h.Update)
	protected.DELETE("/hosts/:id", h.Delete)
}

func (h *Handler) List(c *gin.Context) {
	hosts, err := h.facade.ListHosts(c.Request.Context())
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"hosts": hosts})
}

func (h *Handler) Get(c *gin.Context) {
	host, err := h.facade.GetHost(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"host": host})
}

func (h *Handler) Places(c *gin.Context) {
	places, err := h.facade.GetHostPlaces(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"places": places})
}

func (h *Handler) Rating(c *gin.Context) {
	rating, err := h.facade.GetHostRating(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"rating": rating})
}

func (h *Handler) Update(c *gin.Context) {
	id := c.Param("id")
	if c.GetString("user_id") != id && !c.GetBool("is_admin") {
		response.Error(c, http.StatusForbidden, "FORBIDDEN", "Not allowed for this account")
		return
	}

	var req UpdateHostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}
	if req.IsAdmin != nil && !c.GetBool("is_admin") {
		response.Error(c, http.StatusForbidden, "FORBIDDEN", "Only admins may change the admin flag")
		return
	}

	host, err := h.facade.UpdateHost(c.Request.Context(), id, facade.UpdateUserParams{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		IsAdmin:   req.IsAdmin,
	})
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"host": host})
}

func (h *Handler) Delete(c *gin.Context) {
	if !c.GetBool("is_admin") {
		response.Error(c, http.StatusForbidden, "FORBIDDEN", "Admin access required")
		return
	}
	if err := h.facade.DeleteHost(c.Request.Context(), c.Param("id")); err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": true})
}
