package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/reserve-go/dto"
	"github.com/linskybing/reserve-go/response"
	"github.com/linskybing/reserve-go/services"
	"github.com/linskybing/reserve-go/utils"
)

type ResourceHandler struct {
	Service *services.ResourceService
}

func NewResourceHandler(svc *services.ResourceService) *ResourceHandler {
	return &ResourceHandler{Service: svc}
}

// ListPublished godoc
// @Summary List published resources
// @Tags resources
// @Produce json
// @Success 200 {array} models.Resource
// @Router /resources [get]
func (h *ResourceHandler) ListPublished(c *gin.Context) {
	resources, err := h.Service.ListPublished()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resources)
}

// ListAll godoc
// @Summary List all resources including drafts
// @Tags resources
// @Security BearerAuth
// @Produce json
// @Success 200 {array} models.Resource
// @Failure 403 {object} response.ErrorResponse "Admin only"
// @Router /resources/all [get]
func (h *ResourceHandler) ListAll(c *gin.Context) {
	p, err := utils.GetPrincipalFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}

	resources, err := h.Service.ListAll(p)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resources)
}

// GetResource godoc
// @Summary Get resource by ID
// @Tags resources
// @Produce json
// @Param id path uint true "Resource ID"
// @Success 200 {object} models.Resource
// @Failure 400 {object} response.ErrorResponse "Invalid ID"
// @Failure 404 {object} response.ErrorResponse "Resource not found"
// @Router /resources/{id} [get]
func (h *ResourceHandler) GetResource(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid resource id"})
		return
	}

	resource, err := h.Service.GetResource(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resource)
}

// CreateResource godoc
// @Summary Create a resource
// @Tags resources
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param input body dto.CreateResourceInput true "Resource definition"
// @Success 201 {object} models.Resource
// @Failure 400 {object} response.ErrorResponse "Validation failure"
// @Failure 403 {object} response.ErrorResponse "Admin only"
// @Router /resources [post]
func (h *ResourceHandler) CreateResource(c *gin.Context) {
	p, err := utils.GetPrincipalFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}

	var input dto.CreateResourceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	resource, err := h.Service.CreateResource(c, p, input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resource)
}

// UpdateResource godoc
// @Summary Update a resource (partial)
// @Tags resources
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path uint true "Resource ID"
// @Param input body dto.UpdateResourceInput true "Fields to update"
// @Success 200 {object} models.Resource
// @Failure 400 {object} response.ErrorResponse "Validation failure"
// @Failure 404 {object} response.ErrorResponse "Resource not found"
// @Router /resources/{id} [put]
func (h *ResourceHandler) UpdateResource(c *gin.Context) {
	p, err := utils.GetPrincipalFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}

	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid resource id"})
		return
	}

	var input dto.UpdateResourceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	resource, err := h.Service.UpdateResource(c, p, id, input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resource)
}

// DeleteResource godoc
// @Summary Delete a resource and its reservations
// @Tags resources
// @Security BearerAuth
// @Produce json
// @Param id path uint true "Resource ID"
// @Success 200 {object} response.MessageResponse
// @Failure 404 {object} response.ErrorResponse "Resource not found"
// @Router /resources/{id} [delete]
func (h *ResourceHandler) DeleteResource(c *gin.Context) {
	p, err := utils.GetPrincipalFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}

	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid resource id"})
		return
	}

	if err := h.Service.DeleteResource(c, p, id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.MessageResponse{Message: "Resource removed"})
}
