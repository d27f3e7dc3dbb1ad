package usecase

import (
	"context"
	"strings"
	"time"

	"vetcare/internal/domain/entities"
	"vetcare/internal/domain/lifecycle"
	"vetcare/internal/domain/validation"
	"vetcare/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

type CreateAppointmentInput struct {
	Name            string
	Contact         string
	Email           string
	NIC             string
	PetID           string
	AppointmentType string
}

// IAppointmentUseCase backs the companion surface. Every mutation is keyed
// by the generated id; NIC is only a listing filter.
type IAppointmentUseCase interface {
	Create(ctx context.Context, in CreateAppointmentInput) (entities.Appointment, error)
	GetByID(ctx context.Context, id string) (entities.Appointment, error)
	List(ctx context.Context, filter entities.ListFilter) ([]entities.Appointment, error)
	UpdateStatus(ctx context.Context, id string, status entities.AppointmentStatus) (entities.Appointment, error)
	Delete(ctx context.Context, id string) error
}

type AppointmentUseCase struct {
	repo      interfaces.IAppointmentRepository
	engine    *lifecycle.Engine
	validator *validation.Validator
	log       zerolog.Logger
	now       func() time.Time
}

var _ IAppointmentUseCase = (*AppointmentUseCase)(nil)

func NewAppointmentUseCase(repo interfaces.IAppointmentRepository, engine *lifecycle.Engine, logger zerolog.Logger) *AppointmentUseCase {
	return &AppointmentUseCase{
		repo:      repo,
		engine:    engine,
		validator: validation.New(),
		log:       logger.With().Str("component", "appointment.usecase").Logger(),
		now:       utcNow,
	}
}

func (u *AppointmentUseCase) Create(ctx context.Context, in CreateAppointmentInput) (entities.Appointment, error) {
	now := u.now()
	a := entities.Appointment{
		ID:              uuid.NewString(),
		Name:            strings.TrimSpace(in.Name),
		Contact:         strings.TrimSpace(in.Contact),
		Email:           strings.TrimSpace(in.Email),
		NIC:             strings.TrimSpace(in.NIC),
		PetID:           strings.TrimSpace(in.PetID),
		AppointmentType: strings.TrimSpace(in.AppointmentType),
		Status:          lifecycle.AppointmentMachine.Initial(),
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := u.validator.Validate(a); err != nil {
		u.log.Info().Err(err).Msg("appointment rejected")
		return entities.Appointment{}, err
	}

	created, err := u.repo.Create(ctx, a)
	if err != nil {
		u.log.Error().Err(err).Str("appointment_id", a.ID).Msg("appointment create failed")
		return entities.Appointment{}, err
	}
	u.log.Info().Str("appointment_id", created.ID).Msg("appointment created")
	return created, nil
}

func (u *AppointmentUseCase) GetByID(ctx context.Context, id string) (entities.Appointment, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Appointment{}, ErrInvalidID
	}

	a, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Appointment{}, err
	}
	if a.ID == "" {
		return entities.Appointment{}, ErrAppointmentNotFound
	}
	return a, nil
}

func (u *AppointmentUseCase) List(ctx context.Context, filter entities.ListFilter) ([]entities.Appointment, error) {
	if filter.Status != "" && !lifecycle.AppointmentMachine.Valid(entities.AppointmentStatus(filter.Status)) {
		return nil, validation.Invalid("status")
	}
	filter.NIC = strings.TrimSpace(filter.NIC)
	items, _, err := collect(u.repo.List(ctx, filter), 0, 0)
	return items, err
}

func (u *AppointmentUseCase) UpdateStatus(ctx context.Context, id string, status entities.AppointmentStatus) (entities.Appointment, error) {
	current, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Appointment{}, err
	}

	next, err := u.engine.Appointment(current.EffectiveStatus(), status)
	if err != nil {
		u.log.Info().Err(err).Str("appointment_id", current.ID).Msg("status update rejected")
		return entities.Appointment{}, err
	}

	updated, err := u.repo.UpdateStatus(ctx, current.ID, next, u.now())
	if err != nil {
		return entities.Appointment{}, err
	}
	if updated.ID == "" {
		return entities.Appointment{}, ErrAppointmentNotFound
	}
	u.log.Info().
		Str("appointment_id", updated.ID).
		Str("from", string(current.EffectiveStatus())).
		Str("to", string(updated.Status)).
		Msg("appointment status updated")
	return updated, nil
}

func (u *AppointmentUseCase) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidID
	}

	deleted, err := u.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrAppointmentNotFound
	}
	u.log.Info().Str("appointment_id", id).Msg("appointment deleted")
	return nil
}
