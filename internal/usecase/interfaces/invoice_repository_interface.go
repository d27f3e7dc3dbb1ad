package interfaces

import (
	"context"
	"iter"
	"time"

	"vetcare/internal/domain/entities"
)

// IInvoiceRepository is the Entity Store for invoices.
//
// UpdateDetails rewrites the editable fields and never touches status;
// UpdateStatus is the only way a status changes.
type IInvoiceRepository interface {
	Create(ctx context.Context, inv entities.Invoice) (entities.Invoice, error)
	GetByID(ctx context.Context, id string) (entities.Invoice, error)
	List(ctx context.Context, filter entities.ListFilter) iter.Seq2[entities.Invoice, error]
	UpdateDetails(ctx context.Context, inv entities.Invoice) (entities.Invoice, error)
	UpdateStatus(ctx context.Context, id string, status entities.InvoiceStatus, at time.Time) (entities.Invoice, error)
	Delete(ctx context.Context, id string) (bool, error)
}
