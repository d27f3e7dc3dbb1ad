package entities

import "time"

type AppointmentStatus string

const (
	AppointmentStatusPending   AppointmentStatus = "Pending"
	AppointmentStatusConfirmed AppointmentStatus = "Confirmed"
	AppointmentStatusRejected  AppointmentStatus = "Rejected"
)

// Appointment is a visit request handled by the companion surface.
//
// NIC is the owner's national id. It is a lookup filter only; updates are
// always keyed by ID.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI (nic-index): nic
//   - GSI (status-index): status + created_at
type Appointment struct {
	ID              string            `json:"_id"`
	Name            string            `json:"name" validate:"required"`
	Contact         string            `json:"contact" validate:"required"`
	Email           string            `json:"email" validate:"required,email"`
	NIC             string            `json:"nic" validate:"required"`
	PetID           string            `json:"petID" validate:"required"`
	AppointmentType string            `json:"appointmentType" validate:"required"`
	Status          AppointmentStatus `json:"status" validate:"required,oneof=Pending Confirmed Rejected"`
	CreatedAt       time.Time         `json:"createdAt"`
	UpdatedAt       time.Time         `json:"updatedAt"`
}

// EffectiveStatus treats a missing status as Pending.
func (a Appointment) EffectiveStatus() AppointmentStatus {
	if a.Status == "" {
		return AppointmentStatusPending
	}
	return a.Status
}
