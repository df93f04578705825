package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"pawmart/internal/transport/httpdto"
	pawmart_errors "pawmart/pkg/errors"
)

// respondError maps service errors onto stable HTTP codes. Anything not in
// the taxonomy is a transaction-level failure and surfaces as 500 with no
// partial effect (the unit of work already rolled back).
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, pawmart_errors.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, httpdto.NewErrorResponse(err.Error(), "INVALID_REQUEST"))
	case errors.Is(err, pawmart_errors.ErrNotFound):
		c.JSON(http.StatusNotFound, httpdto.NewErrorResponse(err.Error(), "NOT_FOUND"))
	case errors.Is(err, pawmart_errors.ErrAlreadyExists):
		c.JSON(http.StatusConflict, httpdto.NewErrorResponse(err.Error(), "DUPLICATE_CLAIM"))
	case errors.Is(err, pawmart_errors.ErrNotAvailable),
		errors.Is(err, pawmart_errors.ErrNotForAdoption),
		errors.Is(err, pawmart_errors.ErrInvalidTransition),
		errors.Is(err, pawmart_errors.ErrConflict):
		c.JSON(http.StatusConflict, httpdto.NewErrorResponse(err.Error(), "CONFLICT"))
	case errors.Is(err, pawmart_errors.ErrUnauthorized):
		c.JSON(http.StatusUnauthorized, httpdto.NewErrorResponse("unauthorized", "UNAUTHORIZED"))
	case errors.Is(err, pawmart_errors.ErrForbidden):
		c.JSON(http.StatusForbidden, httpdto.NewErrorResponse("forbidden", "FORBIDDEN"))
	case errors.Is(err, pawmart_errors.ErrServiceUnavailable):
		c.JSON(http.StatusServiceUnavailable, httpdto.NewErrorResponse(err.Error(), "SERVICE_UNAVAILABLE"))
	default:
		c.JSON(http.StatusInternalServerError, httpdto.NewErrorResponse(err.Error(), "INTERNAL_ERROR"))
	}
}
