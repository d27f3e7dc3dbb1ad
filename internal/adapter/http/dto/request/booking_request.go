package request

import (
	"strings"
	"time"

	"vetcare/internal/domain/entities"
	"vetcare/internal/usecase"
)

// BookingRequest is the POST /bookings body. user and pet are optional
// references; omitting both yields the legacy shape.
type BookingRequest struct {
	User               string    `json:"user"`
	Pet                string    `json:"pet"`
	BoardingType       string    `json:"boardingType"`
	CheckIn            time.Time `json:"checkIn"`
	CheckOut           time.Time `json:"checkOut"`
	SpecialNotes       string    `json:"specialNotes"`
	AdditionalServices string    `json:"additionalServices"`
}

func (r BookingRequest) ToInput() usecase.CreateBookingInput {
	return usecase.CreateBookingInput{
		User:               strings.TrimSpace(r.User),
		Pet:                strings.TrimSpace(r.Pet),
		BoardingType:       entities.BoardingType(strings.TrimSpace(r.BoardingType)),
		CheckIn:            r.CheckIn,
		CheckOut:           r.CheckOut,
		SpecialNotes:       r.SpecialNotes,
		AdditionalServices: entities.AdditionalService(strings.TrimSpace(r.AdditionalServices)),
	}
}
