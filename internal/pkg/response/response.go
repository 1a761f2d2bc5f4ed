// Package response holds the JSON envelope every handler replies with and
// the mapping from facade errors to HTTP statuses.
package response

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"homestay/internal/facade"
)

func Success(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, gin.H{
		"success": true,
		"data":    data,
	})
}

func Error(c *gin.Context, statusCode int, code string, message string) {
	c.JSON(statusCode, gin.H{
		"success": false,
		"error": gin.H{
			"code":    code,
			"message": message,
		},
	})
}

func ErrorWithDetails(c *gin.Context, statusCode int, code string, message string, details any) {
	c.JSON(statusCode, gin.H{
		"success": false,
		"error": gin.H{
			"code":    code,
			"message": message,
			"details": details,
		},
	})
}

// FromError translates the facade's three-way error contract into a response:
// not found -> 404, validation -> 400, conflict -> 409. Anything else is an
// internal fault: it gets logged with full detail and answered generically.
func FromError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, facade.ErrNotFound):
		Error(c, http.StatusNotFound, "NOT_FOUND", err.Error())
	case errors.Is(err, facade.ErrInvalid):
		Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
	case errors.Is(err, facade.ErrConflict):
		Error(c, http.StatusConflict, "CONFLICT", err.Error())
	default:
		log.Printf("internal error: method=%s path=%s error=%v", c.Request.Method, c.Request.URL.Path, err)
		Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
	}
}
