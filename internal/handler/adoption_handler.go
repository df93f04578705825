package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"pawmart/internal/domain/adoption"
	"pawmart/internal/services"
	"pawmart/internal/transport/httpdto"
	pawmart_errors "pawmart/pkg/errors"
)

// ApplicationManager is the slice of AdoptionService this handler consumes.
type ApplicationManager interface {
	CreateApplication(ctx context.Context, userID, petID uuid.UUID, shelterID *uuid.UUID, message string) (adoption.Application, error)
	Decide(ctx context.Context, applicationID uuid.UUID, newStatus adoption.Status, notes string) (adoption.Application, error)
	GetApplication(ctx context.Context, id uuid.UUID) (adoption.Application, error)
}

type AdoptionHandler struct {
	service ApplicationManager
}

func NewAdoptionHandler(service ApplicationManager) *AdoptionHandler {
	return &AdoptionHandler{service: service}
}

func (h *AdoptionHandler) Create(c *gin.Context) {
	var req httpdto.CreateApplicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, httpdto.NewErrorResponse("invalid request", "INVALID_REQUEST"))
		return
	}

	userID, ok := services.UserIDFromContext(c.Request.Context())
	if !ok {
		respondError(c, pawmart_errors.ErrUnauthorized)
		return
	}

	petID, err := uuid.Parse(req.PetID)
	if err != nil {
		c.JSON(http.StatusBadRequest, httpdto.NewErrorResponse("invalid pet_id", "INVALID_REQUEST"))
		return
	}
	var shelterID *uuid.UUID
	if req.ShelterID != "" {
		id, err := uuid.Parse(req.ShelterID)
		if err != nil {
			c.JSON(http.StatusBadRequest, httpdto.NewErrorResponse("invalid shelter_id", "INVALID_REQUEST"))
			return
		}
		shelterID = &id
	}

	app, err := h.service.CreateApplication(c.Request.Context(), userID, petID, shelterID, req.Message)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, httpdto.NewSuccessResponse(app))
}

func (h *AdoptionHandler) Decide(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, httpdto.NewErrorResponse("invalid application id", "INVALID_REQUEST"))
		return
	}

	var req httpdto.DecideApplicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, httpdto.NewErrorResponse("invalid request", "INVALID_REQUEST"))
		return
	}

	app, err := h.service.Decide(c.Request.Context(), id, adoption.Status(req.Status), req.Notes)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, httpdto.NewSuccessResponse(app))
}

func (h *AdoptionHandler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, httpdto.NewErrorResponse("invalid application id", "INVALID_REQUEST"))
		return
	}
	app, err := h.service.GetApplication(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, httpdto.NewSuccessResponse(app))
}
