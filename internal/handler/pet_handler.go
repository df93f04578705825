package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"pawmart/internal/domain/pet"
	"pawmart/internal/transport/httpdto"
)

type PetGetter interface {
	GetPet(ctx context.Context, id uuid.UUID) (pet.Pet, error)
}

type PetHandler struct {
	service PetGetter
}

func NewPetHandler(service PetGetter) *PetHandler {
	return &PetHandler{service: service}
}

func (h *PetHandler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, httpdto.NewErrorResponse("invalid pet id", "INVALID_REQUEST"))
		return
	}
	p, err := h.service.GetPet(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, httpdto.NewSuccessResponse(p))
}
