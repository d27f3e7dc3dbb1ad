package interfaces

import (
	"context"
	"iter"
	"time"

	"vetcare/internal/domain/entities"
)

// IAppointmentRepository is the Entity Store for appointments.
// filter.NIC selects by national id; updates are keyed by id only.
type IAppointmentRepository interface {
	Create(ctx context.Context, a entities.Appointment) (entities.Appointment, error)
	GetByID(ctx context.Context, id string) (entities.Appointment, error)
	List(ctx context.Context, filter entities.ListFilter) iter.Seq2[entities.Appointment, error]
	UpdateStatus(ctx context.Context, id string, status entities.AppointmentStatus, at time.Time) (entities.Appointment, error)
	Delete(ctx context.Context, id string) (bool, error)
}
