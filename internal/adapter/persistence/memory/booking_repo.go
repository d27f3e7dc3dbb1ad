package memory

import (
	"context"
	"iter"
	"time"

	"vetcare/internal/domain/entities"
	"vetcare/internal/usecase/interfaces"
)

type BookingRepository struct {
	t *table[entities.Booking]
}

var _ interfaces.IBookingRepository = (*BookingRepository)(nil)

func NewBookingRepository() *BookingRepository {
	return &BookingRepository{t: newTable[entities.Booking]()}
}

func (r *BookingRepository) Create(ctx context.Context, b entities.Booking) (entities.Booking, error) {
	if err := ctx.Err(); err != nil {
		return entities.Booking{}, err
	}
	if err := r.t.insert(b.ID, b); err != nil {
		return entities.Booking{}, err
	}
	return b, nil
}

func (r *BookingRepository) GetByID(ctx context.Context, id string) (entities.Booking, error) {
	if err := ctx.Err(); err != nil {
		return entities.Booking{}, err
	}
	b, _ := r.t.get(id)
	return b, nil
}

func (r *BookingRepository) List(ctx context.Context, filter entities.ListFilter) iter.Seq2[entities.Booking, error] {
	return r.t.scan(ctx, func(b entities.Booking) bool {
		if filter.Status != "" && string(b.Status) != filter.Status {
			return false
		}
		return filter.InRange(b.CheckIn)
	})
}

func (r *BookingRepository) UpdateStatus(ctx context.Context, id string, status entities.BookingStatus, at time.Time) (entities.Booking, error) {
	if err := ctx.Err(); err != nil {
		return entities.Booking{}, err
	}
	b, _ := r.t.update(id, func(b *entities.Booking) {
		b.Status = status
		b.UpdatedAt = at
	})
	return b, nil
}

func (r *BookingRepository) Delete(ctx context.Context, id string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	return r.t.remove(id), nil
}
