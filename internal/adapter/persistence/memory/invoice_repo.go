package memory

import (
	"context"
	"iter"
	"slices"
	"strings"
	"time"

	"vetcare/internal/domain/entities"
	"vetcare/internal/usecase/interfaces"
)

type InvoiceRepository struct {
	t *table[entities.Invoice]
}

var _ interfaces.IInvoiceRepository = (*InvoiceRepository)(nil)

func NewInvoiceRepository() *InvoiceRepository {
	return &InvoiceRepository{t: newTable[entities.Invoice]()}
}

func (r *InvoiceRepository) Create(ctx context.Context, inv entities.Invoice) (entities.Invoice, error) {
	if err := ctx.Err(); err != nil {
		return entities.Invoice{}, err
	}
	inv.Items = slices.Clone(inv.Items)
	if err := r.t.insert(inv.ID, inv); err != nil {
		return entities.Invoice{}, err
	}
	return detach(inv), nil
}

func (r *InvoiceRepository) GetByID(ctx context.Context, id string) (entities.Invoice, error) {
	if err := ctx.Err(); err != nil {
		return entities.Invoice{}, err
	}
	inv, _ := r.t.get(id)
	return detach(inv), nil
}

func (r *InvoiceRepository) List(ctx context.Context, filter entities.ListFilter) iter.Seq2[entities.Invoice, error] {
	q := strings.ToLower(filter.Query)
	seq := r.t.scan(ctx, func(inv entities.Invoice) bool {
		if filter.Status != "" && string(inv.Status) != filter.Status {
			return false
		}
		if q != "" && !strings.Contains(strings.ToLower(inv.PatientName+" "+inv.OwnerName), q) {
			return false
		}
		return filter.InRange(inv.CreatedAt)
	})
	return func(yield func(entities.Invoice, error) bool) {
		for inv, err := range seq {
			if !yield(detach(inv), err) {
				return
			}
		}
	}
}

func (r *InvoiceRepository) UpdateDetails(ctx context.Context, inv entities.Invoice) (entities.Invoice, error) {
	if err := ctx.Err(); err != nil {
		return entities.Invoice{}, err
	}
	updated, _ := r.t.update(inv.ID, func(cur *entities.Invoice) {
		cur.PatientName = inv.PatientName
		cur.OwnerName = inv.OwnerName
		cur.Items = slices.Clone(inv.Items)
		cur.Total = inv.Total
		cur.UpdatedAt = inv.UpdatedAt
	})
	return detach(updated), nil
}

func (r *InvoiceRepository) UpdateStatus(ctx context.Context, id string, status entities.InvoiceStatus, at time.Time) (entities.Invoice, error) {
	if err := ctx.Err(); err != nil {
		return entities.Invoice{}, err
	}
	inv, _ := r.t.update(id, func(inv *entities.Invoice) {
		inv.Status = status
		inv.UpdatedAt = at
	})
	return detach(inv), nil
}

func (r *InvoiceRepository) Delete(ctx context.Context, id string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	return r.t.remove(id), nil
}

// detach copies the item slice so callers never alias stored rows.
func detach(inv entities.Invoice) entities.Invoice {
	inv.Items = slices.Clone(inv.Items)
	return inv
}
