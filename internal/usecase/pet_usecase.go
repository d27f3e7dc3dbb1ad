package usecase

import (
	"context"
	"strings"
	"time"

	"vetcare/internal/domain/entities"
	"vetcare/internal/domain/validation"
	"vetcare/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

type CreatePetInput struct {
	Name      string
	Species   string
	Breed     string
	BirthDate *time.Time
	Owner     string
}

type CreateMedicalRecordInput struct {
	VisitDate    time.Time
	Diagnosis    string
	Treatment    string
	Veterinarian string
	Notes        string
}

// IPetUseCase manages pets and their medical records. Pets are only the
// foreign-key targets of the lifecycle; they carry no status.
type IPetUseCase interface {
	Create(ctx context.Context, in CreatePetInput) (entities.Pet, error)
	GetByID(ctx context.Context, id string) (entities.Pet, error)
	List(ctx context.Context, filter entities.ListFilter) ([]entities.Pet, error)
	AddRecord(ctx context.Context, petID string, in CreateMedicalRecordInput) (entities.MedicalRecord, error)
	ListRecords(ctx context.Context, petID string) ([]entities.MedicalRecord, error)
}

type PetUseCase struct {
	pets      interfaces.IPetRepository
	records   interfaces.IMedicalRecordRepository
	validator *validation.Validator
	log       zerolog.Logger
	now       func() time.Time
}

var _ IPetUseCase = (*PetUseCase)(nil)

func NewPetUseCase(pets interfaces.IPetRepository, records interfaces.IMedicalRecordRepository, logger zerolog.Logger) *PetUseCase {
	return &PetUseCase{
		pets:      pets,
		records:   records,
		validator: validation.New(),
		log:       logger.With().Str("component", "pet.usecase").Logger(),
		now:       utcNow,
	}
}

func (u *PetUseCase) Create(ctx context.Context, in CreatePetInput) (entities.Pet, error) {
	now := u.now()
	p := entities.Pet{
		ID:        uuid.NewString(),
		Name:      strings.TrimSpace(in.Name),
		Species:   strings.TrimSpace(in.Species),
		Breed:     strings.TrimSpace(in.Breed),
		BirthDate: in.BirthDate,
		Owner:     strings.TrimSpace(in.Owner),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := u.validator.Validate(p); err != nil {
		return entities.Pet{}, err
	}

	created, err := u.pets.Create(ctx, p)
	if err != nil {
		u.log.Error().Err(err).Str("pet_id", p.ID).Msg("pet create failed")
		return entities.Pet{}, err
	}
	u.log.Info().Str("pet_id", created.ID).Msg("pet created")
	return created, nil
}

func (u *PetUseCase) GetByID(ctx context.Context, id string) (entities.Pet, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Pet{}, ErrInvalidID
	}

	p, err := u.pets.GetByID(ctx, id)
	if err != nil {
		return entities.Pet{}, err
	}
	if p.ID == "" {
		return entities.Pet{}, ErrPetNotFound
	}
	return p, nil
}

func (u *PetUseCase) List(ctx context.Context, filter entities.ListFilter) ([]entities.Pet, error) {
	filter.Owner = strings.TrimSpace(filter.Owner)
	items, _, err := collect(u.pets.List(ctx, filter), 0, 0)
	return items, err
}

func (u *PetUseCase) AddRecord(ctx context.Context, petID string, in CreateMedicalRecordInput) (entities.MedicalRecord, error) {
	pet, err := u.GetByID(ctx, petID)
	if err != nil {
		return entities.MedicalRecord{}, err
	}

	r := entities.MedicalRecord{
		ID:           uuid.NewString(),
		PetID:        pet.ID,
		VisitDate:    in.VisitDate.UTC(),
		Diagnosis:    strings.TrimSpace(in.Diagnosis),
		Treatment:    strings.TrimSpace(in.Treatment),
		Veterinarian: strings.TrimSpace(in.Veterinarian),
		Notes:        strings.TrimSpace(in.Notes),
		CreatedAt:    u.now(),
	}
	if err := u.validator.Validate(r); err != nil {
		return entities.MedicalRecord{}, err
	}

	created, err := u.records.Create(ctx, r)
	if err != nil {
		u.log.Error().Err(err).Str("pet_id", pet.ID).Msg("medical record create failed")
		return entities.MedicalRecord{}, err
	}
	u.log.Info().Str("pet_id", pet.ID).Str("record_id", created.ID).Msg("medical record added")
	return created, nil
}

func (u *PetUseCase) ListRecords(ctx context.Context, petID string) ([]entities.MedicalRecord, error) {
	pet, err := u.GetByID(ctx, petID)
	if err != nil {
		return nil, err
	}
	items, _, err := collect(u.records.List(ctx, entities.ListFilter{PetID: pet.ID}), 0, 0)
	return items, err
}
