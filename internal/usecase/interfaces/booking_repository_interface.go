package interfaces

import (
	"context"
	"iter"
	"time"

	"vetcare/internal/domain/entities"
)

// IBookingRepository is the Entity Store for bookings.
//
// Lookups return a zero Booking (empty ID) and a nil error when the id is
// unknown. List yields lazily and can be ranged over once.
type IBookingRepository interface {
	Create(ctx context.Context, b entities.Booking) (entities.Booking, error)
	GetByID(ctx context.Context, id string) (entities.Booking, error)
	List(ctx context.Context, filter entities.ListFilter) iter.Seq2[entities.Booking, error]
	UpdateStatus(ctx context.Context, id string, status entities.BookingStatus, at time.Time) (entities.Booking, error)
	Delete(ctx context.Context, id string) (bool, error)
}
