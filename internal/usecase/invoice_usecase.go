package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"vetcare/internal/domain/entities"
	"vetcare/internal/domain/lifecycle"
	"vetcare/internal/domain/validation"
	"vetcare/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// InvoiceInput carries the editable invoice fields. A nil Total is derived
// from Items; with neither present the total is missing.
type InvoiceInput struct {
	PatientName string
	OwnerName   string
	Items       []entities.InvoiceItem
	Total       *float64
}

type InvoicePage struct {
	Items   []entities.Invoice
	Page    int
	Limit   int
	HasMore bool
}

// IInvoiceUseCase keeps status changes apart from field edits: Update never
// changes status, UpdateStatus and Pay never change anything else.
type IInvoiceUseCase interface {
	Create(ctx context.Context, in InvoiceInput) (entities.Invoice, error)
	GetByID(ctx context.Context, id string) (entities.Invoice, error)
	List(ctx context.Context, filter entities.ListFilter, page, limit int) (InvoicePage, error)
	Update(ctx context.Context, id string, in InvoiceInput) (entities.Invoice, error)
	UpdateStatus(ctx context.Context, id string, status entities.InvoiceStatus) (entities.Invoice, error)
	Pay(ctx context.Context, id string) (entities.Invoice, error)
	Delete(ctx context.Context, id string) error
}

type InvoiceUseCase struct {
	repo      interfaces.IInvoiceRepository
	engine    *lifecycle.Engine
	validator *validation.Validator
	log       zerolog.Logger
	now       func() time.Time
}

var _ IInvoiceUseCase = (*InvoiceUseCase)(nil)

func NewInvoiceUseCase(repo interfaces.IInvoiceRepository, engine *lifecycle.Engine, logger zerolog.Logger) *InvoiceUseCase {
	return &InvoiceUseCase{
		repo:      repo,
		engine:    engine,
		validator: validation.New(),
		log:       logger.With().Str("component", "invoice.usecase").Logger(),
		now:       utcNow,
	}
}

func (u *InvoiceUseCase) Create(ctx context.Context, in InvoiceInput) (entities.Invoice, error) {
	now := u.now()
	inv := entities.Invoice{
		ID:        uuid.NewString(),
		Status:    lifecycle.InvoiceMachine.Initial(),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := u.apply(&inv, in); err != nil {
		u.log.Info().Err(err).Msg("invoice rejected")
		return entities.Invoice{}, err
	}

	created, err := u.repo.Create(ctx, inv)
	if err != nil {
		u.log.Error().Err(err).Str("invoice_id", inv.ID).Msg("invoice create failed")
		return entities.Invoice{}, err
	}
	u.log.Info().Str("invoice_id", created.ID).Float64("total", created.Total).Msg("invoice created")
	return created, nil
}

func (u *InvoiceUseCase) GetByID(ctx context.Context, id string) (entities.Invoice, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Invoice{}, ErrInvalidID
	}

	inv, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Invoice{}, err
	}
	if inv.ID == "" {
		return entities.Invoice{}, ErrInvoiceNotFound
	}
	return inv, nil
}

func (u *InvoiceUseCase) List(ctx context.Context, filter entities.ListFilter, page, limit int) (InvoicePage, error) {
	if filter.Status != "" && !lifecycle.InvoiceMachine.Valid(entities.InvoiceStatus(filter.Status)) {
		return InvoicePage{}, validation.Invalid("status")
	}
	filter.Query = strings.TrimSpace(filter.Query)
	page, limit = NormalizePage(page, limit)

	items, more, err := collect(u.repo.List(ctx, filter), (page-1)*limit, limit)
	if err != nil {
		return InvoicePage{}, err
	}
	return InvoicePage{Items: items, Page: page, Limit: limit, HasMore: more}, nil
}

func (u *InvoiceUseCase) Update(ctx context.Context, id string, in InvoiceInput) (entities.Invoice, error) {
	current, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Invoice{}, err
	}

	next := current
	next.UpdatedAt = u.now()
	if err := u.apply(&next, in); err != nil {
		return entities.Invoice{}, err
	}

	updated, err := u.repo.UpdateDetails(ctx, next)
	if err != nil {
		return entities.Invoice{}, err
	}
	if updated.ID == "" {
		return entities.Invoice{}, ErrInvoiceNotFound
	}
	u.log.Info().Str("invoice_id", updated.ID).Float64("total", updated.Total).Msg("invoice updated")
	return updated, nil
}

func (u *InvoiceUseCase) UpdateStatus(ctx context.Context, id string, status entities.InvoiceStatus) (entities.Invoice, error) {
	current, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Invoice{}, err
	}
	return u.transition(ctx, current, status)
}

// Pay is the action exposed only while an invoice is unpaid.
func (u *InvoiceUseCase) Pay(ctx context.Context, id string) (entities.Invoice, error) {
	current, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Invoice{}, err
	}
	if !current.Payable() {
		u.log.Info().Str("invoice_id", current.ID).Str("status", string(current.Status)).Msg("pay rejected")
		return entities.Invoice{}, ErrInvoiceNotPayable
	}
	return u.transition(ctx, current, entities.InvoiceStatusPaid)
}

func (u *InvoiceUseCase) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidID
	}

	deleted, err := u.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrInvoiceNotFound
	}
	u.log.Info().Str("invoice_id", id).Msg("invoice deleted")
	return nil
}

func (u *InvoiceUseCase) transition(ctx context.Context, current entities.Invoice, status entities.InvoiceStatus) (entities.Invoice, error) {
	next, err := u.engine.Invoice(current.Status, status)
	if err != nil {
		u.log.Info().Err(err).Str("invoice_id", current.ID).Msg("status update rejected")
		return entities.Invoice{}, err
	}

	updated, err := u.repo.UpdateStatus(ctx, current.ID, next, u.now())
	if err != nil {
		return entities.Invoice{}, err
	}
	if updated.ID == "" {
		return entities.Invoice{}, ErrInvoiceNotFound
	}
	u.log.Info().
		Str("invoice_id", updated.ID).
		Str("from", string(current.Status)).
		Str("to", string(updated.Status)).
		Msg("invoice status updated")
	return updated, nil
}

func (u *InvoiceUseCase) apply(inv *entities.Invoice, in InvoiceInput) error {
	inv.PatientName = strings.TrimSpace(in.PatientName)
	inv.OwnerName = strings.TrimSpace(in.OwnerName)
	inv.Items = make([]entities.InvoiceItem, 0, len(in.Items))
	for _, it := range in.Items {
		it.Description = strings.TrimSpace(it.Description)
		inv.Items = append(inv.Items, it)
	}

	switch {
	case in.Total != nil:
		inv.Total = *in.Total
	case len(inv.Items) > 0:
		inv.Total = entities.ItemsTotal(inv.Items)
	default:
		var verr *validation.Error
		if err := u.validator.Validate(*inv); errors.As(err, &verr) && verr.Kind == validation.ErrMissingField {
			verr.Fields = append(verr.Fields, "total")
			return verr
		}
		return validation.Missing("total")
	}
	return u.validator.Validate(*inv)
}
