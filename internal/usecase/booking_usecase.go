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

// CreateBookingInput is the caller-controlled part of a booking. Status and
// timestamps are always assigned here.
type CreateBookingInput struct {
	User               string
	Pet                string
	BoardingType       entities.BoardingType
	CheckIn            time.Time
	CheckOut           time.Time
	SpecialNotes       string
	AdditionalServices entities.AdditionalService
}

type IBookingUseCase interface {
	Create(ctx context.Context, in CreateBookingInput) (entities.Booking, error)
	GetByID(ctx context.Context, id string) (entities.Booking, error)
	List(ctx context.Context, filter entities.ListFilter, limit int) ([]entities.Booking, error)
	UpdateStatus(ctx context.Context, id string, status entities.BookingStatus) (entities.Booking, error)
	Delete(ctx context.Context, id string) error
}

type BookingUseCase struct {
	repo      interfaces.IBookingRepository
	engine    *lifecycle.Engine
	validator *validation.Validator
	log       zerolog.Logger
	now       func() time.Time
}

var _ IBookingUseCase = (*BookingUseCase)(nil)

func NewBookingUseCase(repo interfaces.IBookingRepository, engine *lifecycle.Engine, logger zerolog.Logger) *BookingUseCase {
	return &BookingUseCase{
		repo:      repo,
		engine:    engine,
		validator: validation.New(),
		log:       logger.With().Str("component", "booking.usecase").Logger(),
		now:       utcNow,
	}
}

func (u *BookingUseCase) Create(ctx context.Context, in CreateBookingInput) (entities.Booking, error) {
	services := entities.AdditionalService(strings.TrimSpace(string(in.AdditionalServices)))
	if services == "" {
		services = entities.AdditionalServiceNone
	}

	now := u.now()
	b := entities.Booking{
		ID:                 uuid.NewString(),
		User:               strings.TrimSpace(in.User),
		Pet:                strings.TrimSpace(in.Pet),
		BoardingType:       entities.BoardingType(strings.TrimSpace(string(in.BoardingType))),
		CheckIn:            in.CheckIn.UTC(),
		CheckOut:           in.CheckOut.UTC(),
		SpecialNotes:       strings.TrimSpace(in.SpecialNotes),
		AdditionalServices: services,
		Status:             lifecycle.BookingMachine.Initial(),
		CreatedAt:          now,
		UpdatedAt:          now,
	}
	if err := u.validator.Validate(b); err != nil {
		u.log.Info().Err(err).Msg("booking rejected")
		return entities.Booking{}, err
	}

	created, err := u.repo.Create(ctx, b)
	if err != nil {
		u.log.Error().Err(err).Str("booking_id", b.ID).Msg("booking create failed")
		return entities.Booking{}, err
	}
	u.log.Info().Str("booking_id", created.ID).Str("status", string(created.Status)).Msg("booking created")
	return created, nil
}

func (u *BookingUseCase) GetByID(ctx context.Context, id string) (entities.Booking, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Booking{}, ErrInvalidID
	}

	b, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Booking{}, err
	}
	if b.ID == "" {
		return entities.Booking{}, ErrBookingNotFound
	}
	return b, nil
}

func (u *BookingUseCase) List(ctx context.Context, filter entities.ListFilter, limit int) ([]entities.Booking, error) {
	if filter.Status != "" && !lifecycle.BookingMachine.Valid(entities.BookingStatus(filter.Status)) {
		return nil, validation.Invalid("status")
	}
	items, _, err := collect(u.repo.List(ctx, filter), 0, limit)
	return items, err
}

func (u *BookingUseCase) UpdateStatus(ctx context.Context, id string, status entities.BookingStatus) (entities.Booking, error) {
	current, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Booking{}, err
	}

	next, err := u.engine.Booking(current.Status, status)
	if err != nil {
		u.log.Info().Err(err).Str("booking_id", current.ID).Msg("status update rejected")
		return entities.Booking{}, err
	}

	updated, err := u.repo.UpdateStatus(ctx, current.ID, next, u.now())
	if err != nil {
		return entities.Booking{}, err
	}
	if updated.ID == "" {
		return entities.Booking{}, ErrBookingNotFound
	}
	u.log.Info().
		Str("booking_id", updated.ID).
		Str("from", string(current.Status)).
		Str("to", string(updated.Status)).
		Msg("booking status updated")
	return updated, nil
}

func (u *BookingUseCase) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidID
	}

	deleted, err := u.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrBookingNotFound
	}
	u.log.Info().Str("booking_id", id).Msg("booking deleted")
	return nil
}
