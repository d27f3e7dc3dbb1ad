package handlers

import (
	"net/http"

	"vetcare/internal/adapter/http/dto/request"
	"vetcare/internal/adapter/http/dto/response"
	"vetcare/internal/domain/entities"
	"vetcare/internal/usecase"
	"vetcare/pkg"

	"github.com/gin-gonic/gin"
)

// AppointmentHandler serves the companion surface. Routes take the
// appointment id; nic is only ever a list filter.
type AppointmentHandler struct {
	usecase usecase.IAppointmentUseCase
}

func NewAppointmentHandler(uc usecase.IAppointmentUseCase) *AppointmentHandler {
	return &AppointmentHandler{usecase: uc}
}

func mapAppointmentError(err error) *pkg.AppError {
	return mapDomainError(err, "Appointment not found")
}

func (h *AppointmentHandler) CreateAppointment(c *gin.Context) {
	var payload request.AppointmentRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abort(c, invalidPayload("appointment", err))
		return
	}

	a, err := h.usecase.Create(c.Request.Context(), payload.ToInput())
	if err != nil {
		abort(c, mapAppointmentError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromAppointment(a))
}

func (h *AppointmentHandler) ListAppointments(c *gin.Context) {
	var q request.ListQuery
	_ = c.ShouldBindQuery(&q)

	filter, err := q.Filter()
	if err != nil {
		abort(c, mapAppointmentError(err))
		return
	}

	appointments, err := h.usecase.List(c.Request.Context(), filter)
	if err != nil {
		abort(c, mapAppointmentError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromAppointments(appointments))
}

func (h *AppointmentHandler) GetAppointment(c *gin.Context) {
	a, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		abort(c, mapAppointmentError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromAppointment(a))
}

func (h *AppointmentHandler) UpdateAppointmentStatus(c *gin.Context) {
	var payload request.StatusRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abort(c, invalidPayload("status", err))
		return
	}
	if payload.Value() == "" {
		abort(c, mapAppointmentError(errMissingStatus))
		return
	}

	a, err := h.usecase.UpdateStatus(c.Request.Context(), c.Param("id"), entities.AppointmentStatus(payload.Value()))
	if err != nil {
		abort(c, mapAppointmentError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromAppointment(a))
}

func (h *AppointmentHandler) DeleteAppointment(c *gin.Context) {
	id := c.Param("id")
	if err := h.usecase.Delete(c.Request.Context(), id); err != nil {
		abort(c, mapAppointmentError(err))
		return
	}
	c.JSON(http.StatusOK, response.DeletedResponse{ID: id, Deleted: true})
}
