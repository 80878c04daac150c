package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/reserve-go/repositories"
	"github.com/linskybing/reserve-go/response"
	"github.com/linskybing/reserve-go/services"
	"github.com/linskybing/reserve-go/utils"
)

type AuditHandler struct {
	Service *services.AuditService
}

func NewAuditHandler(svc *services.AuditService) *AuditHandler {
	return &AuditHandler{Service: svc}
}

// GetAuditLogs godoc
// @Summary Query the audit trail
// @Tags audit
// @Security BearerAuth
// @Produce json
// @Param user_id query uint false "Filter by actor"
// @Param entity_type query string false "Filter by entity type"
// @Param action query string false "Filter by action"
// @Success 200 {array} models.AuditLog
// @Failure 403 {object} response.ErrorResponse "Admin only"
// @Router /audit/logs [get]
func (h *AuditHandler) GetAuditLogs(c *gin.Context) {
	p, err := utils.GetPrincipalFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}

	var params repositories.AuditQueryParams
	if uid, err := utils.ParseQueryUintParam(c, "user_id"); err == nil {
		params.UserID = &uid
	}
	if entityType := c.Query("entity_type"); entityType != "" {
		params.EntityType = &entityType
	}
	if action := c.Query("action"); action != "" {
		params.Action = &action
	}
	if from := c.Query("from"); from != "" {
		if t, err := time.Parse(time.RFC3339, from); err == nil {
			params.StartTime = &t
		}
	}
	if to := c.Query("to"); to != "" {
		if t, err := time.Parse(time.RFC3339, to); err == nil {
			params.EndTime = &t
		}
	}

	logs, err := h.Service.GetAuditLogs(p, params)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, logs)
}
