package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/reserve-go/response"
	"github.com/linskybing/reserve-go/services"
)

// respondError maps domain errors onto HTTP statuses. Storage failures are
// logged with their detail and surfaced as a generic 500.
func respondError(c *gin.Context, err error) {
	var conflict *services.ConflictError
	if errors.As(err, &conflict) {
		c.JSON(http.StatusBadRequest, response.ConflictResponse{
			Error:    conflict.Error(),
			Blocking: conflict.Blocking,
		})
		return
	}

	switch {
	case errors.Is(err, services.ErrResourceNotFound),
		errors.Is(err, services.ErrReservationNotFound):
		c.JSON(http.StatusNotFound, response.ErrorResponse{Error: err.Error()})
	case errors.Is(err, services.ErrForbidden):
		c.JSON(http.StatusForbidden, response.ErrorResponse{Error: err.Error()})
	case errors.Is(err, services.ErrInvalidState):
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
	case services.IsValidationError(err):
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
	default:
		log.Printf("internal error: %v", err)
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: "internal server error"})
	}
}
