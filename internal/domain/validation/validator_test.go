package validation

import (
	"errors"
	"testing"
	"time"

	"vetcare/internal/domain/entities"

	"github.com/stretchr/testify/require"
)

func validBooking() entities.Booking {
	return entities.Booking{
		BoardingType:       entities.BoardingTypeStandard,
		CheckIn:            time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		CheckOut:           time.Date(2025, 6, 5, 0, 0, 0, 0, time.UTC),
		AdditionalServices: entities.AdditionalServiceNone,
		Status:             entities.BookingStatusPending,
	}
}

func TestValidate_Booking(t *testing.T) {
	v := New()

	t.Run("valid", func(t *testing.T) {
		require.NoError(t, v.Validate(validBooking()))
	})

	t.Run("reversed range", func(t *testing.T) {
		b := validBooking()
		b.CheckIn, b.CheckOut = b.CheckOut, b.CheckIn
		err := v.Validate(b)
		require.ErrorIs(t, err, ErrInvalidDateRange)

		var verr *Error
		require.True(t, errors.As(err, &verr))
		require.Equal(t, []string{"checkOut"}, verr.Fields)
		require.EqualError(t, err, "checkOut must be after checkIn")
	})

	t.Run("equal dates are rejected", func(t *testing.T) {
		b := validBooking()
		b.CheckOut = b.CheckIn
		require.ErrorIs(t, v.Validate(b), ErrInvalidDateRange)
	})

	t.Run("range wins over other failures", func(t *testing.T) {
		b := validBooking()
		b.CheckIn, b.CheckOut = b.CheckOut, b.CheckIn
		b.BoardingType = "luxury"
		b.AdditionalServices = ""
		require.ErrorIs(t, v.Validate(b), ErrInvalidDateRange)
	})

	t.Run("missing fields", func(t *testing.T) {
		b := validBooking()
		b.BoardingType = ""
		b.CheckIn = time.Time{}
		err := v.Validate(b)
		require.ErrorIs(t, err, ErrMissingField)
		require.Contains(t, err.Error(), "boardingType")
		require.Contains(t, err.Error(), "checkIn")
	})

	t.Run("unknown boarding type", func(t *testing.T) {
		b := validBooking()
		b.BoardingType = "luxury"
		err := v.Validate(b)
		require.ErrorIs(t, err, ErrConstraintViolation)
		require.Contains(t, err.Error(), "boardingType")
	})
}

func TestValidate_Invoice(t *testing.T) {
	v := New()
	inv := entities.Invoice{
		PatientName: "Rex",
		OwnerName:   "Ana",
		Items:       []entities.InvoiceItem{{Description: "checkup", Quantity: 1, UnitPrice: 30}},
		Total:       30,
		Status:      entities.InvoiceStatusUnpaid,
	}
	require.NoError(t, v.Validate(inv))

	bad := inv
	bad.Status = "refunded"
	require.ErrorIs(t, v.Validate(bad), ErrConstraintViolation)

	negative := inv
	negative.Total = -1
	require.ErrorIs(t, v.Validate(negative), ErrConstraintViolation)

	item := inv
	item.Items = []entities.InvoiceItem{{Quantity: 1}}
	err := v.Validate(item)
	require.ErrorIs(t, err, ErrMissingField)
	require.Contains(t, err.Error(), "items[0].description")
}

func TestValidate_Appointment(t *testing.T) {
	v := New()
	a := entities.Appointment{
		Name:            "Ana",
		Contact:         "0771234567",
		Email:           "ana@example.com",
		NIC:             "200012345678",
		PetID:           "pet-1",
		AppointmentType: "vaccination",
		Status:          entities.AppointmentStatusPending,
	}
	require.NoError(t, v.Validate(a))

	a.Status = "Done"
	require.ErrorIs(t, v.Validate(a), ErrConstraintViolation)

	a.Status = entities.AppointmentStatusPending
	a.NIC = ""
	require.ErrorIs(t, v.Validate(a), ErrMissingField)
}

func TestMissingAndInvalid(t *testing.T) {
	require.ErrorIs(t, Missing("total"), ErrMissingField)
	require.EqualError(t, Missing("total"), "missing required field(s): total")
	require.ErrorIs(t, Invalid("status"), ErrConstraintViolation)
}
