package handlers

import (
	"errors"
	"net/http"

	"vetcare/internal/adapter/http/dto/request"
	"vetcare/internal/adapter/http/dto/response"
	"vetcare/internal/domain/entities"
	"vetcare/internal/usecase"
	"vetcare/pkg"

	"github.com/gin-gonic/gin"
)

type InvoiceHandler struct {
	usecase usecase.IInvoiceUseCase
}

func NewInvoiceHandler(uc usecase.IInvoiceUseCase) *InvoiceHandler {
	return &InvoiceHandler{usecase: uc}
}

func mapInvoiceError(err error) *pkg.AppError {
	if errors.Is(err, usecase.ErrInvoiceNotPayable) {
		return pkg.NewDomainError("NOT_PAYABLE", "Invoice is not payable", err, http.StatusConflict)
	}
	return mapDomainError(err, "Invoice not found")
}

// CreateInvoice godoc
// @Summary      Create invoice
// @Description  Total defaults to the sum of quantity x unitPrice over items.
// @Tags         invoices
// @Accept       json
// @Produce      json
// @Param        payload  body      request.InvoiceRequest  true  "Invoice"
// @Success      201      {object}  response.InvoiceResponse
// @Failure      400      {object}  pkg.HTTPError
// @Router       /invoices [post]
func (h *InvoiceHandler) CreateInvoice(c *gin.Context) {
	var payload request.InvoiceRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abort(c, invalidPayload("invoice", err))
		return
	}

	inv, err := h.usecase.Create(c.Request.Context(), payload.ToInput())
	if err != nil {
		abort(c, mapInvoiceError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromInvoice(inv))
}

// ListInvoices godoc
// @Summary      List invoices
// @Tags         invoices
// @Produce      json
// @Param        page    query     int     false  "Page, starting at 1"
// @Param        limit   query     int     false  "Page size (default 10, max 100)"
// @Param        status  query     string  false  "Status filter"
// @Param        search  query     string  false  "Substring of patient or owner name"
// @Success      200     {object}  response.InvoicePageResponse
// @Failure      500     {object}  pkg.HTTPError
// @Router       /invoices [get]
func (h *InvoiceHandler) ListInvoices(c *gin.Context) {
	var q request.ListQuery
	_ = c.ShouldBindQuery(&q)

	filter, err := q.Filter()
	if err != nil {
		abort(c, mapInvoiceError(err))
		return
	}
	page, limit, err := q.PageAndLimit()
	if err != nil {
		abort(c, mapInvoiceError(err))
		return
	}

	result, err := h.usecase.List(c.Request.Context(), filter, page, limit)
	if err != nil {
		abort(c, mapInvoiceError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromInvoicePage(result))
}

// GetInvoice godoc
// @Summary      Get invoice
// @Tags         invoices
// @Produce      json
// @Param        id   path      string  true  "Invoice id"
// @Success      200  {object}  response.InvoiceResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /invoices/{id} [get]
func (h *InvoiceHandler) GetInvoice(c *gin.Context) {
	inv, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		abort(c, mapInvoiceError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromInvoice(inv))
}

// UpdateInvoice godoc
// @Summary      Edit invoice
// @Description  Replaces names, items and total. Status is never changed here.
// @Tags         invoices
// @Accept       json
// @Produce      json
// @Param        id       path      string                  true  "Invoice id"
// @Param        payload  body      request.InvoiceRequest  true  "Invoice"
// @Success      200      {object}  response.InvoiceResponse
// @Failure      400      {object}  pkg.HTTPError
// @Failure      404      {object}  pkg.HTTPError
// @Router       /invoices/{id} [put]
func (h *InvoiceHandler) UpdateInvoice(c *gin.Context) {
	var payload request.InvoiceRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abort(c, invalidPayload("invoice", err))
		return
	}

	inv, err := h.usecase.Update(c.Request.Context(), c.Param("id"), payload.ToInput())
	if err != nil {
		abort(c, mapInvoiceError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromInvoice(inv))
}

// UpdateInvoiceStatus godoc
// @Summary      Update invoice status
// @Tags         invoices
// @Accept       json
// @Produce      json
// @Param        id       path      string                 true  "Invoice id"
// @Param        payload  body      request.StatusRequest  true  "New status"
// @Success      200      {object}  response.InvoiceResponse
// @Failure      400      {object}  pkg.HTTPError
// @Failure      404      {object}  pkg.HTTPError
// @Router       /invoices/{id}/status [patch]
func (h *InvoiceHandler) UpdateInvoiceStatus(c *gin.Context) {
	var payload request.StatusRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abort(c, invalidPayload("status", err))
		return
	}
	if payload.Value() == "" {
		abort(c, mapInvoiceError(errMissingStatus))
		return
	}

	inv, err := h.usecase.UpdateStatus(c.Request.Context(), c.Param("id"), entities.InvoiceStatus(payload.Value()))
	if err != nil {
		abort(c, mapInvoiceError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromInvoice(inv))
}

// PayInvoice godoc
// @Summary      Pay invoice
// @Tags         invoices
// @Produce      json
// @Param        id   path      string  true  "Invoice id"
// @Success      200  {object}  response.InvoiceResponse
// @Failure      404  {object}  pkg.HTTPError
// @Failure      409  {object}  pkg.HTTPError
// @Router       /invoices/{id}/pay [post]
func (h *InvoiceHandler) PayInvoice(c *gin.Context) {
	inv, err := h.usecase.Pay(c.Request.Context(), c.Param("id"))
	if err != nil {
		abort(c, mapInvoiceError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromInvoice(inv))
}

// DeleteInvoice godoc
// @Summary      Delete invoice
// @Tags         invoices
// @Produce      json
// @Param        id   path      string  true  "Invoice id"
// @Success      200  {object}  response.DeletedResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /invoices/{id} [delete]
func (h *InvoiceHandler) DeleteInvoice(c *gin.Context) {
	id := c.Param("id")
	if err := h.usecase.Delete(c.Request.Context(), id); err != nil {
		abort(c, mapInvoiceError(err))
		return
	}
	c.JSON(http.StatusOK, response.DeletedResponse{ID: id, Deleted: true})
}
