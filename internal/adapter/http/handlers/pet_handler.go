package handlers

import (
	"net/http"

	"vetcare/internal/adapter/http/dto/request"
	"vetcare/internal/adapter/http/dto/response"
	"vetcare/internal/usecase"
	"vetcare/pkg"

	"github.com/gin-gonic/gin"
)

type PetHandler struct {
	usecase usecase.IPetUseCase
}

func NewPetHandler(uc usecase.IPetUseCase) *PetHandler {
	return &PetHandler{usecase: uc}
}

func mapPetError(err error) *pkg.AppError {
	return mapDomainError(err, "Pet not found")
}

func (h *PetHandler) CreatePet(c *gin.Context) {
	var payload request.PetRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abort(c, invalidPayload("pet", err))
		return
	}

	p, err := h.usecase.Create(c.Request.Context(), payload.ToInput())
	if err != nil {
		abort(c, mapPetError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromPet(p))
}

func (h *PetHandler) ListPets(c *gin.Context) {
	var q request.ListQuery
	_ = c.ShouldBindQuery(&q)

	filter, err := q.Filter()
	if err != nil {
		abort(c, mapPetError(err))
		return
	}

	pets, err := h.usecase.List(c.Request.Context(), filter)
	if err != nil {
		abort(c, mapPetError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromPets(pets))
}

func (h *PetHandler) GetPet(c *gin.Context) {
	p, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		abort(c, mapPetError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromPet(p))
}

func (h *PetHandler) AddMedicalRecord(c *gin.Context) {
	var payload request.MedicalRecordRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abort(c, invalidPayload("medical record", err))
		return
	}

	rec, err := h.usecase.AddRecord(c.Request.Context(), c.Param("id"), payload.ToInput())
	if err != nil {
		abort(c, mapPetError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromMedicalRecord(rec))
}

func (h *PetHandler) ListMedicalRecords(c *gin.Context) {
	records, err := h.usecase.ListRecords(c.Request.Context(), c.Param("id"))
	if err != nil {
		abort(c, mapPetError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromMedicalRecords(records))
}
