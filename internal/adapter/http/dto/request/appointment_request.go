package request

import (
	"strings"

	"vetcare/internal/usecase"
)

type AppointmentRequest struct {
	Name            string `json:"name"`
	Contact         string `json:"contact"`
	Email           string `json:"email"`
	NIC             string `json:"nic"`
	PetID           string `json:"petID"`
	AppointmentType string `json:"appointmentType"`
}

func (r AppointmentRequest) ToInput() usecase.CreateAppointmentInput {
	return usecase.CreateAppointmentInput{
		Name:            strings.TrimSpace(r.Name),
		Contact:         strings.TrimSpace(r.Contact),
		Email:           strings.TrimSpace(r.Email),
		NIC:             strings.TrimSpace(r.NIC),
		PetID:           strings.TrimSpace(r.PetID),
		AppointmentType: strings.TrimSpace(r.AppointmentType),
	}
}
