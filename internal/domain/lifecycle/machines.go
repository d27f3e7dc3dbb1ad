package lifecycle

import "vetcare/internal/domain/entities"

// BookingMachine: pending -> confirmed -> active -> completed, with
// cancelled reachable from any non-terminal status.
var BookingMachine = NewMachine("booking",
	entities.BookingStatusPending,
	[]entities.BookingStatus{
		entities.BookingStatusPending,
		entities.BookingStatusConfirmed,
		entities.BookingStatusActive,
		entities.BookingStatusCompleted,
		entities.BookingStatusCancelled,
	},
	map[entities.BookingStatus][]entities.BookingStatus{
		entities.BookingStatusPending:   {entities.BookingStatusConfirmed, entities.BookingStatusCancelled},
		entities.BookingStatusConfirmed: {entities.BookingStatusActive, entities.BookingStatusCancelled},
		entities.BookingStatusActive:    {entities.BookingStatusCompleted, entities.BookingStatusCancelled},
	},
)

var AppointmentMachine = NewMachine("appointment",
	entities.AppointmentStatusPending,
	[]entities.AppointmentStatus{
		entities.AppointmentStatusPending,
		entities.AppointmentStatusConfirmed,
		entities.AppointmentStatusRejected,
	},
	map[entities.AppointmentStatus][]entities.AppointmentStatus{
		entities.AppointmentStatusPending: {entities.AppointmentStatusConfirmed, entities.AppointmentStatusRejected},
	},
)

var InvoiceMachine = NewMachine("invoice",
	entities.InvoiceStatusUnpaid,
	[]entities.InvoiceStatus{
		entities.InvoiceStatusUnpaid,
		entities.InvoiceStatusPaid,
		entities.InvoiceStatusCancelled,
	},
	map[entities.InvoiceStatus][]entities.InvoiceStatus{
		entities.InvoiceStatusUnpaid: {entities.InvoiceStatusPaid, entities.InvoiceStatusCancelled},
	},
)
