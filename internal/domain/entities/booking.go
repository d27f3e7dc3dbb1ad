package entities

import "time"

// BookingStatus is the lifecycle stage of a boarding stay.
type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusActive    BookingStatus = "active"
	BookingStatusCompleted BookingStatus = "completed"
	BookingStatusCancelled BookingStatus = "cancelled"
)

type BoardingType string

const (
	BoardingTypeStandard BoardingType = "standard"
	BoardingTypeDeluxe   BoardingType = "deluxe"
	BoardingTypePremium  BoardingType = "premium"
)

type AdditionalService string

const (
	AdditionalServiceNone       AdditionalService = "none"
	AdditionalServiceGrooming   AdditionalService = "grooming"
	AdditionalServiceRelaxation AdditionalService = "relaxation"
	AdditionalServiceExercise   AdditionalService = "exercise"
)

// Booking is a pet boarding reservation.
//
// The validate tags are the store schema: required fields, enum membership
// and the checkOut > checkIn range. User and Pet are optional references;
// the legacy shape without them is accepted by leaving both empty.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI (status-index): status + check_in
type Booking struct {
	ID                 string            `json:"_id"`
	User               string            `json:"user,omitempty"`
	Pet                string            `json:"pet,omitempty"`
	BoardingType       BoardingType      `json:"boardingType" validate:"required,oneof=standard deluxe premium"`
	CheckIn            time.Time         `json:"checkIn" validate:"required"`
	CheckOut           time.Time         `json:"checkOut" validate:"required,gtfield=CheckIn"`
	SpecialNotes       string            `json:"specialNotes,omitempty" validate:"max=2000"`
	AdditionalServices AdditionalService `json:"additionalServices" validate:"required,oneof=none grooming relaxation exercise"`
	Status             BookingStatus     `json:"status" validate:"required,oneof=pending confirmed active completed cancelled"`
	CreatedAt          time.Time         `json:"createdAt"`
	UpdatedAt          time.Time         `json:"updatedAt"`
}
