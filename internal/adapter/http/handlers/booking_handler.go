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

type BookingHandler struct {
	usecase usecase.IBookingUseCase
}

func NewBookingHandler(uc usecase.IBookingUseCase) *BookingHandler {
	return &BookingHandler{usecase: uc}
}

func mapBookingError(err error) *pkg.AppError {
	return mapDomainError(err, "Booking not found")
}

// CreateBooking godoc
// @Summary      Create booking
// @Description  Creates a boarding reservation in status "pending".
// @Tags         bookings
// @Accept       json
// @Produce      json
// @Param        payload  body      request.BookingRequest  true  "Booking"
// @Success      201      {object}  response.BookingResponse
// @Failure      400      {object}  pkg.HTTPError
// @Router       /bookings [post]
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	var payload request.BookingRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abort(c, invalidPayload("booking", err))
		return
	}

	b, err := h.usecase.Create(c.Request.Context(), payload.ToInput())
	if err != nil {
		abort(c, mapBookingError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromBooking(b))
}

// ListBookings godoc
// @Summary      List bookings
// @Tags         bookings
// @Produce      json
// @Param        status  query     string  false  "Status filter"
// @Param        from    query     string  false  "checkIn lower bound (RFC 3339)"
// @Param        to      query     string  false  "checkIn upper bound (RFC 3339)"
// @Param        limit   query     int     false  "Maximum number of bookings"
// @Success      200     {array}   response.BookingResponse
// @Failure      500     {object}  pkg.HTTPError
// @Router       /bookings [get]
func (h *BookingHandler) ListBookings(c *gin.Context) {
	var q request.ListQuery
	_ = c.ShouldBindQuery(&q)

	filter, err := q.Filter()
	if err != nil {
		abort(c, mapBookingError(err))
		return
	}
	_, limit, err := q.PageAndLimit()
	if err != nil {
		abort(c, mapBookingError(err))
		return
	}

	bookings, err := h.usecase.List(c.Request.Context(), filter, limit)
	if err != nil {
		abort(c, mapBookingError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromBookings(bookings))
}

// GetBooking godoc
// @Summary      Get booking
// @Tags         bookings
// @Produce      json
// @Param        id   path      string  true  "Booking id"
// @Success      200  {object}  response.BookingResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /bookings/{id} [get]
func (h *BookingHandler) GetBooking(c *gin.Context) {
	b, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		abort(c, mapBookingError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromBooking(b))
}

// UpdateBookingStatus godoc
// @Summary      Update booking status
// @Description  Status-only update; other fields in the body are ignored.
// @Tags         bookings
// @Accept       json
// @Produce      json
// @Param        id       path      string                 true  "Booking id"
// @Param        payload  body      request.StatusRequest  true  "New status"
// @Success      200      {object}  response.BookingResponse
// @Failure      400      {object}  pkg.HTTPError
// @Failure      404      {object}  pkg.HTTPError
// @Router       /bookings/{id}/status [patch]
func (h *BookingHandler) UpdateBookingStatus(c *gin.Context) {
	var payload request.StatusRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abort(c, invalidPayload("status", err))
		return
	}
	if payload.Value() == "" {
		abort(c, mapBookingError(errMissingStatus))
		return
	}

	b, err := h.usecase.UpdateStatus(c.Request.Context(), c.Param("id"), entities.BookingStatus(payload.Value()))
	if err != nil {
		abort(c, mapBookingError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromBooking(b))
}

// DeleteBooking godoc
// @Summary      Delete booking
// @Tags         bookings
// @Produce      json
// @Param        id   path      string  true  "Booking id"
// @Success      200  {object}  response.DeletedResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /bookings/{id} [delete]
func (h *BookingHandler) DeleteBooking(c *gin.Context) {
	id := c.Param("id")
	if err := h.usecase.Delete(c.Request.Context(), id); err != nil {
		abort(c, mapBookingError(err))
		return
	}
	c.JSON(http.StatusOK, response.DeletedResponse{ID: id, Deleted: true})
}
