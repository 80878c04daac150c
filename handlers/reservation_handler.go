package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/reserve-go/dto"
	"github.com/linskybing/reserve-go/response"
	"github.com/linskybing/reserve-go/services"
	"github.com/linskybing/reserve-go/utils"
)

type ReservationHandler struct {
	Service *services.ReservationService
}

func NewReservationHandler(svc *services.ReservationService) *ReservationHandler {
	return &ReservationHandler{Service: svc}
}

// CreateReservation godoc
// @Summary Book a resource for a time window
// @Tags reservations
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param input body dto.CreateReservationInput true "Resource and window"
// @Success 201 {object} models.Reservation
// @Failure 400 {object} response.ConflictResponse "Bad window or booking conflict"
// @Failure 404 {object} response.ErrorResponse "Resource not found"
// @Router /reservations [post]
func (h *ReservationHandler) CreateReservation(c *gin.Context) {
	p, err := utils.GetPrincipalFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}

	var input dto.CreateReservationInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	resv, err := h.Service.CreateReservation(p, input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resv)
}

// ListMine godoc
// @Summary List the caller's reservations
// @Tags reservations
// @Security BearerAuth
// @Produce json
// @Success 200 {array} models.ReservationWithResource
// @Router /reservations/mine [get]
func (h *ReservationHandler) ListMine(c *gin.Context) {
	p, err := utils.GetPrincipalFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}

	resvs, err := h.Service.ListMine(p)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resvs)
}

// ListAll godoc
// @Summary List all reservations with user and resource summaries
// @Tags reservations
// @Security BearerAuth
// @Produce json
// @Success 200 {array} models.ReservationAdminView
// @Failure 403 {object} response.ErrorResponse "Admin only"
// @Router /reservations [get]
func (h *ReservationHandler) ListAll(c *gin.Context) {
	p, err := utils.GetPrincipalFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}

	resvs, err := h.Service.ListAll(p)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resvs)
}

// Reschedule godoc
// @Summary Move a reservation to a new window (owner only, resets to pending)
// @Tags reservations
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path uint true "Reservation ID"
// @Param input body dto.RescheduleInput true "New window"
// @Success 200 {object} models.Reservation
// @Failure 400 {object} response.ConflictResponse "Bad window or booking conflict"
// @Failure 403 {object} response.ErrorResponse "Not the owner"
// @Failure 404 {object} response.ErrorResponse "Reservation not found"
// @Router /reservations/{id} [put]
func (h *ReservationHandler) Reschedule(c *gin.Context) {
	p, err := utils.GetPrincipalFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}

	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid reservation id"})
		return
	}

	var input dto.RescheduleInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	resv, err := h.Service.Reschedule(p, id, input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resv)
}

// SetStatus godoc
// @Summary Set reservation status (admin)
// @Tags reservations
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path uint true "Reservation ID"
// @Param input body dto.ReservationStatusInput true "New status"
// @Success 200 {object} models.Reservation
// @Failure 400 {object} response.ErrorResponse "Invalid status"
// @Failure 404 {object} response.ErrorResponse "Reservation not found"
// @Router /reservations/{id}/status [put]
func (h *ReservationHandler) SetStatus(c *gin.Context) {
	p, err := utils.GetPrincipalFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}

	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid reservation id"})
		return
	}

	var input dto.ReservationStatusInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	resv, err := h.Service.SetStatus(c, p, id, input.Status)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resv)
}

// Cancel godoc
// @Summary Cancel a reservation (owner only)
// @Tags reservations
// @Security BearerAuth
// @Produce json
// @Param id path uint true "Reservation ID"
// @Success 200 {object} response.MessageResponse
// @Failure 400 {object} response.ErrorResponse "Terminal status"
// @Failure 403 {object} response.ErrorResponse "Not the owner"
// @Failure 404 {object} response.ErrorResponse "Reservation not found"
// @Router /reservations/{id} [delete]
func (h *ReservationHandler) Cancel(c *gin.Context) {
	p, err := utils.GetPrincipalFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}

	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid reservation id"})
		return
	}

	if err := h.Service.Cancel(p, id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.MessageResponse{Message: "Reservation cancelled successfully"})
}
