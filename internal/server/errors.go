package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	productdomain "github.com/smallbiznis/catalog/internal/product/domain"
	"gorm.io/gorm"
)

type errorResponse struct {
	Error string `json:"error"`
}

// ErrorHandlingMiddleware translates errors collected on the context into the
// API's error envelope. Handlers are the only place errors are attached; this
// middleware is the only place they become HTTP responses.
func ErrorHandlingMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if c.Writer.Written() {
			return
		}

		lastErr := c.Errors.Last()
		if lastErr == nil {
			return
		}

		status, message := mapError(lastErr.Err)
		c.AbortWithStatusJSON(status, errorResponse{Error: message})
	}
}

func AbortWithError(c *gin.Context, err error) {
	if err == nil {
		return
	}
	_ = c.Error(err)
	c.Abort()
}

func mapError(err error) (int, string) {
	switch {
	case errors.Is(err, productdomain.ErrIncompleteData):
		return http.StatusBadRequest, "incomplete data"
	case errors.Is(err, productdomain.ErrInvalidName):
		return http.StatusBadRequest, "invalid name"
	case errors.Is(err, productdomain.ErrInvalidPrice):
		return http.StatusBadRequest, "invalid price"
	case errors.Is(err, productdomain.ErrInvalidID),
		errors.Is(err, productdomain.ErrNotFound),
		errors.Is(err, gorm.ErrRecordNotFound):
		return http.StatusNotFound, "product not found"
	default:
		return http.StatusInternalServerError, "internal server error"
	}
}
