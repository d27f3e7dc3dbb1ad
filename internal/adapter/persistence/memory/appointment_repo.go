package memory

import (
	"context"
	"iter"
	"time"

	"vetcare/internal/domain/entities"
	"vetcare/internal/usecase/interfaces"
)

type AppointmentRepository struct {
	t *table[entities.Appointment]
}

var _ interfaces.IAppointmentRepository = (*AppointmentRepository)(nil)

func NewAppointmentRepository() *AppointmentRepository {
	return &AppointmentRepository{t: newTable[entities.Appointment]()}
}

func (r *AppointmentRepository) Create(ctx context.Context, a entities.Appointment) (entities.Appointment, error) {
	if err := ctx.Err(); err != nil {
		return entities.Appointment{}, err
	}
	if err := r.t.insert(a.ID, a); err != nil {
		return entities.Appointment{}, err
	}
	return a, nil
}

func (r *AppointmentRepository) GetByID(ctx context.Context, id string) (entities.Appointment, error) {
	if err := ctx.Err(); err != nil {
		return entities.Appointment{}, err
	}
	a, _ := r.t.get(id)
	return a, nil
}

func (r *AppointmentRepository) List(ctx context.Context, filter entities.ListFilter) iter.Seq2[entities.Appointment, error] {
	return r.t.scan(ctx, func(a entities.Appointment) bool {
		if filter.NIC != "" && a.NIC != filter.NIC {
			return false
		}
		if filter.Status != "" && string(a.EffectiveStatus()) != filter.Status {
			return false
		}
		return filter.InRange(a.CreatedAt)
	})
}

func (r *AppointmentRepository) UpdateStatus(ctx context.Context, id string, status entities.AppointmentStatus, at time.Time) (entities.Appointment, error) {
	if err := ctx.Err(); err != nil {
		return entities.Appointment{}, err
	}
	a, _ := r.t.update(id, func(a *entities.Appointment) {
		a.Status = status
		a.UpdatedAt = at
	})
	return a, nil
}

func (r *AppointmentRepository) Delete(ctx context.Context, id string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	return r.t.remove(id), nil
}
