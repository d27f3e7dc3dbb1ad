package handlers

import (
	"context"
	"net/http"
	"testing"

	"vetcare/internal/adapter/http/dto/response"
	"vetcare/internal/adapter/http/handlers/mocks"
	"vetcare/internal/domain/entities"
	"vetcare/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newInvoiceRouter(uc usecase.IInvoiceUseCase) *gin.Engine {
	h := NewInvoiceHandler(uc)
	r := gin.New()
	r.POST("/invoices", h.CreateInvoice)
	r.GET("/invoices", h.ListInvoices)
	r.GET("/invoices/:id", h.GetInvoice)
	r.PUT("/invoices/:id", h.UpdateInvoice)
	r.PATCH("/invoices/:id/status", h.UpdateInvoiceStatus)
	r.POST("/invoices/:id/pay", h.PayInvoice)
	r.DELETE("/invoices/:id", h.DeleteInvoice)
	return r
}

func TestInvoiceHandler_CreateInvoice(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	uc := mocks.NewMockIInvoiceUseCase(ctrl)
	uc.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, in usecase.InvoiceInput) (entities.Invoice, error) {
			if in.Total != nil {
				t.Errorf("total was not sent and must stay nil")
			}
			if len(in.Items) != 2 {
				t.Errorf("expected 2 items, got %d", len(in.Items))
			}
			return entities.Invoice{ID: "inv1", PatientName: in.PatientName, Items: in.Items, Total: entities.ItemsTotal(in.Items), Status: entities.InvoiceStatusUnpaid}, nil
		})

	w := doJSON(newInvoiceRouter(uc), http.MethodPost, "/invoices",
		`{"patientName":"Rex","ownerName":"Ana","items":[{"description":"consultation","quantity":1,"unitPrice":45.5},{"description":"vaccine","quantity":2,"unitPrice":12.25}]}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}
	got := decode[response.InvoiceResponse](t, w)
	if got.Total != 70 || got.Status != "unpaid" || !got.Payable {
		t.Fatalf("unexpected body: %+v", got)
	}
}

func TestInvoiceHandler_ListInvoices(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	uc := mocks.NewMockIInvoiceUseCase(ctrl)
	uc.EXPECT().
		List(gomock.Any(), entities.ListFilter{Status: "unpaid", Query: "silva"}, 2, 20).
		Return(usecase.InvoicePage{Items: []entities.Invoice{{ID: "inv1"}}, Page: 2, Limit: 20, HasMore: true}, nil)

	w := doJSON(newInvoiceRouter(uc), http.MethodGet, "/invoices?page=2&limit=20&status=unpaid&search=silva", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	got := decode[response.InvoicePageResponse](t, w)
	if got.Page != 2 || got.Limit != 20 || !got.HasMore || len(got.Items) != 1 {
		t.Fatalf("unexpected page: %+v", got)
	}
}

func TestInvoiceHandler_DeleteInvoice_NotFound(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	uc := mocks.NewMockIInvoiceUseCase(ctrl)
	uc.EXPECT().Delete(gomock.Any(), "inv123").Return(usecase.ErrInvoiceNotFound)

	w := doJSON(newInvoiceRouter(uc), http.MethodDelete, "/invoices/inv123", "")
	if w.Code != http.StatusNotFound || errorCode(t, w) != "NOT_FOUND" {
		t.Fatalf("expected 404 NOT_FOUND, got %d %s", w.Code, w.Body.String())
	}
}

func TestInvoiceHandler_UpdateInvoiceStatus(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	uc := mocks.NewMockIInvoiceUseCase(ctrl)
	uc.EXPECT().UpdateStatus(gomock.Any(), "inv1", entities.InvoiceStatusPaid).
		Return(entities.Invoice{ID: "inv1", Status: entities.InvoiceStatusPaid}, nil)

	w := doJSON(newInvoiceRouter(uc), http.MethodPatch, "/invoices/inv1/status", `{"status":"paid"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if got := decode[response.InvoiceResponse](t, w); got.Payable {
		t.Fatalf("paid invoice must not be payable")
	}
}

func TestInvoiceHandler_UpdateInvoice(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	uc := mocks.NewMockIInvoiceUseCase(ctrl)
	uc.EXPECT().Update(gomock.Any(), "inv1", gomock.Any()).
		Return(entities.Invoice{ID: "inv1", OwnerName: "Ana Silva", Status: entities.InvoiceStatusUnpaid}, nil)

	w := doJSON(newInvoiceRouter(uc), http.MethodPut, "/invoices/inv1", `{"patientName":"Rex","ownerName":"Ana Silva","total":10,"status":"paid"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if got := decode[response.InvoiceResponse](t, w); got.Status != "unpaid" {
		t.Fatalf("general update must not change status, got %s", got.Status)
	}
}

func TestInvoiceHandler_PayInvoice(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	uc := mocks.NewMockIInvoiceUseCase(ctrl)
	gomock.InOrder(
		uc.EXPECT().Pay(gomock.Any(), "inv1").Return(entities.Invoice{ID: "inv1", Status: entities.InvoiceStatusPaid}, nil),
		uc.EXPECT().Pay(gomock.Any(), "inv1").Return(entities.Invoice{}, usecase.ErrInvoiceNotPayable),
	)
	r := newInvoiceRouter(uc)

	if w := doJSON(r, http.MethodPost, "/invoices/inv1/pay", ""); w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	w := doJSON(r, http.MethodPost, "/invoices/inv1/pay", "")
	if w.Code != http.StatusConflict || errorCode(t, w) != "NOT_PAYABLE" {
		t.Fatalf("expected 409 NOT_PAYABLE, got %d %s", w.Code, w.Body.String())
	}
}
