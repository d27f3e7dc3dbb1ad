package entities

import "time"

// Pet is owned by a user and referenced by bookings and appointments.
type Pet struct {
	ID        string     `json:"_id"`
	Name      string     `json:"name" validate:"required"`
	Species   string     `json:"species" validate:"required"`
	Breed     string     `json:"breed,omitempty"`
	BirthDate *time.Time `json:"birthDate,omitempty"`
	Owner     string     `json:"owner,omitempty"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
}

// MedicalRecord belongs to exactly one pet.
type MedicalRecord struct {
	ID           string    `json:"_id"`
	PetID        string    `json:"pet" validate:"required"`
	VisitDate    time.Time `json:"visitDate" validate:"required"`
	Diagnosis    string    `json:"diagnosis" validate:"required"`
	Treatment    string    `json:"treatment,omitempty"`
	Veterinarian string    `json:"veterinarian,omitempty"`
	Notes        string    `json:"notes,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
}
