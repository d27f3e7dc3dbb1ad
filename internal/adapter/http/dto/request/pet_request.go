package request

import (
	"strings"
	"time"

	"vetcare/internal/usecase"
)

type PetRequest struct {
	Name      string     `json:"name"`
	Species   string     `json:"species"`
	Breed     string     `json:"breed"`
	BirthDate *time.Time `json:"birthDate"`
	Owner     string     `json:"owner"`
}

func (r PetRequest) ToInput() usecase.CreatePetInput {
	return usecase.CreatePetInput{
		Name:      strings.TrimSpace(r.Name),
		Species:   strings.TrimSpace(r.Species),
		Breed:     strings.TrimSpace(r.Breed),
		BirthDate: r.BirthDate,
		Owner:     strings.TrimSpace(r.Owner),
	}
}

type MedicalRecordRequest struct {
	VisitDate    time.Time `json:"visitDate"`
	Diagnosis    string    `json:"diagnosis"`
	Treatment    string    `json:"treatment"`
	Veterinarian string    `json:"veterinarian"`
	Notes        string    `json:"notes"`
}

func (r MedicalRecordRequest) ToInput() usecase.CreateMedicalRecordInput {
	return usecase.CreateMedicalRecordInput{
		VisitDate:    r.VisitDate,
		Diagnosis:    strings.TrimSpace(r.Diagnosis),
		Treatment:    r.Treatment,
		Veterinarian: strings.TrimSpace(r.Veterinarian),
		Notes:        r.Notes,
	}
}
