package users

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

// RegisterRoutes expects an auth-protected group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/users", h.List)
	rg.GET("/users/:id", h.Get)
	rg.PUT("/users/:id", h.Update)
	rg.DELETE("/users/:id", h.Delete)
	rg.GET("/users/:id/bookings", h.Bookings)
}

func (h *Handler) List(c *gin.Context) {
	if !c.GetBool("is_admin") {
		response.Error(c, http.StatusForbidden, "FORBIDDEN", "Admin access required")
		return
	}
	users, err := h.facade.ListUsers(c.Request.Context())
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"users": users})
}

func (h *Handler) Get(c *gin.Context) {
	u, err := h.facade.GetUser(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"user": u})
}

func (h *Handler) Update(c *gin.Context) {
	id := c.Param("id")
	if !selfOrAdmin(c, id) {
		return
	}

	var req UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}
	if req.IsAdmin != nil && !c.GetBool("is_admin") {
		response.Error(c, http.StatusForbidden, "FORBIDDEN", "Only admins may change the admin flag")
		return
	}

	u, err := h.facade.UpdateUser(c.Request.Context(), id, facade.UpdateUserParams{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		IsAdmin:   req.IsAdmin,
	})
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"user": u})
}

func (h *Handler) Delete(c *gin.Context) {
	if !c.GetBool("is_admin") {
		response.Error(c, http.StatusForbidden, "FORBIDDEN", "Admin access required")
		return
	}
	if err := h.facade.DeleteUser(c.Request.Context(), c.Param("id")); err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": true})
}

func (h *Handler) Bookings(c *gin.Context) {
	id := c.Param("id")
	if !selfOrAdmin(c, id) {
		return
	}
	bookings, err := h.facade.GetUserBookings(c.Request.Context(), id)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"bookings": bookings})
}

func selfOrAdmin(c *gin.Context, id string) bool {
	if c.GetString("user_id") == id || c.GetBool("is_admin") {
		return true
	}
	response.Error(c, http.StatusForbidden, "FORBIDDEN", "Not allowed for this account")
	return false
}
