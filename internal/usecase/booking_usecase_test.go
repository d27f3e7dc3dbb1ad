package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"vetcare/internal/domain/entities"
	"vetcare/internal/domain/lifecycle"
	"vetcare/internal/domain/validation"
	mock_interfaces "vetcare/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func newBookingUseCase(repo *mock_interfaces.MockIBookingRepository, mode lifecycle.Mode) *BookingUseCase {
	uc := NewBookingUseCase(repo, lifecycle.NewEngine(mode), nopLogger)
	uc.now = fixedClock
	return uc
}

func bookingInput() CreateBookingInput {
	return CreateBookingInput{
		BoardingType: entities.BoardingTypeStandard,
		CheckIn:      time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		CheckOut:     time.Date(2025, 6, 5, 0, 0, 0, 0, time.UTC),
	}
}

func TestBookingUseCase_Create(t *testing.T) {
	t.Run("defaults status and services", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIBookingRepository(ctrl)
		uc := newBookingUseCase(repo, lifecycle.Permissive)

		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, b entities.Booking) (entities.Booking, error) {
			return b, nil
		})

		b, err := uc.Create(context.Background(), bookingInput())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if b.ID == "" || b.Status != entities.BookingStatusPending || b.AdditionalServices != entities.AdditionalServiceNone {
			t.Fatalf("unexpected booking: %+v", b)
		}
		if !b.CreatedAt.Equal(fixedNow) || !b.UpdatedAt.Equal(fixedNow) {
			t.Fatalf("unexpected timestamps: %+v", b)
		}
	})

	t.Run("reversed range is not persisted", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIBookingRepository(ctrl)
		uc := newBookingUseCase(repo, lifecycle.Permissive)

		in := bookingInput()
		in.BoardingType = entities.BoardingTypeDeluxe
		in.CheckIn, in.CheckOut = in.CheckOut, in.CheckIn

		_, err := uc.Create(context.Background(), in)
		if !errors.Is(err, validation.ErrInvalidDateRange) {
			t.Fatalf("expected ErrInvalidDateRange, got %v", err)
		}
	})

	t.Run("missing boarding type", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIBookingRepository(ctrl)
		uc := newBookingUseCase(repo, lifecycle.Permissive)

		in := bookingInput()
		in.BoardingType = " "
		_, err := uc.Create(context.Background(), in)
		if !errors.Is(err, validation.ErrMissingField) {
			t.Fatalf("expected ErrMissingField, got %v", err)
		}
	})

	t.Run("unknown boarding type", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIBookingRepository(ctrl)
		uc := newBookingUseCase(repo, lifecycle.Permissive)

		in := bookingInput()
		in.BoardingType = "luxury"
		_, err := uc.Create(context.Background(), in)
		if !errors.Is(err, validation.ErrConstraintViolation) {
			t.Fatalf("expected ErrConstraintViolation, got %v", err)
		}
	})

	t.Run("repository error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIBookingRepository(ctrl)
		uc := newBookingUseCase(repo, lifecycle.Permissive)

		repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Booking{}, errors.New("db"))

		_, err := uc.Create(context.Background(), bookingInput())
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})
}

func TestBookingUseCase_GetByID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIBookingRepository(ctrl)
	uc := newBookingUseCase(repo, lifecycle.Permissive)

	if _, err := uc.GetByID(context.Background(), "  "); !errors.Is(err, ErrInvalidID) {
		t.Fatalf("expected ErrInvalidID, got %v", err)
	}

	repo.EXPECT().GetByID(gomock.Any(), "missing").Return(entities.Booking{}, nil)
	if _, err := uc.GetByID(context.Background(), "missing"); !errors.Is(err, ErrBookingNotFound) || !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrBookingNotFound, got %v", err)
	}

	repo.EXPECT().GetByID(gomock.Any(), "bk-1").Return(entities.Booking{ID: "bk-1"}, nil)
	b, err := uc.GetByID(context.Background(), " bk-1 ")
	if err != nil || b.ID != "bk-1" {
		t.Fatalf("unexpected result %+v err=%v", b, err)
	}
}

func TestBookingUseCase_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIBookingRepository(ctrl)
	uc := newBookingUseCase(repo, lifecycle.Permissive)

	if _, err := uc.List(context.Background(), entities.ListFilter{Status: "archived"}, 0); !errors.Is(err, validation.ErrConstraintViolation) {
		t.Fatalf("expected ErrConstraintViolation, got %v", err)
	}

	filter := entities.ListFilter{Status: string(entities.BookingStatusPending)}
	repo.EXPECT().List(gomock.Any(), filter).Return(seqOf(entities.Booking{ID: "a"}, entities.Booking{ID: "b"}, entities.Booking{ID: "c"}))
	items, err := uc.List(context.Background(), filter, 2)
	if err != nil || len(items) != 2 {
		t.Fatalf("unexpected result %v err=%v", items, err)
	}
}

func TestBookingUseCase_UpdateStatus(t *testing.T) {
	current := entities.Booking{ID: "bk-1", Status: entities.BookingStatusPending}

	t.Run("permissive accepts any enum member", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIBookingRepository(ctrl)
		uc := newBookingUseCase(repo, lifecycle.Permissive)

		repo.EXPECT().GetByID(gomock.Any(), "bk-1").Return(current, nil)
		repo.EXPECT().UpdateStatus(gomock.Any(), "bk-1", entities.BookingStatusCompleted, fixedNow).
			Return(entities.Booking{ID: "bk-1", Status: entities.BookingStatusCompleted, UpdatedAt: fixedNow}, nil)

		b, err := uc.UpdateStatus(context.Background(), "bk-1", entities.BookingStatusCompleted)
		if err != nil || b.Status != entities.BookingStatusCompleted {
			t.Fatalf("unexpected result %+v err=%v", b, err)
		}
	})

	t.Run("strict rejects skipping ahead", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIBookingRepository(ctrl)
		uc := newBookingUseCase(repo, lifecycle.Strict)

		repo.EXPECT().GetByID(gomock.Any(), "bk-1").Return(current, nil)

		_, err := uc.UpdateStatus(context.Background(), "bk-1", entities.BookingStatusCompleted)
		if !errors.Is(err, lifecycle.ErrTransitionNotAllowed) {
			t.Fatalf("expected ErrTransitionNotAllowed, got %v", err)
		}
	})

	t.Run("same status refreshes timestamp", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIBookingRepository(ctrl)
		uc := newBookingUseCase(repo, lifecycle.Strict)

		repo.EXPECT().GetByID(gomock.Any(), "bk-1").Return(current, nil)
		repo.EXPECT().UpdateStatus(gomock.Any(), "bk-1", entities.BookingStatusPending, fixedNow).
			Return(entities.Booking{ID: "bk-1", Status: entities.BookingStatusPending, UpdatedAt: fixedNow}, nil)

		b, err := uc.UpdateStatus(context.Background(), "bk-1", entities.BookingStatusPending)
		if err != nil || !b.UpdatedAt.Equal(fixedNow) {
			t.Fatalf("unexpected result %+v err=%v", b, err)
		}
	})

	t.Run("unknown status", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIBookingRepository(ctrl)
		uc := newBookingUseCase(repo, lifecycle.Permissive)

		repo.EXPECT().GetByID(gomock.Any(), "bk-1").Return(current, nil)

		_, err := uc.UpdateStatus(context.Background(), "bk-1", "archived")
		if !errors.Is(err, lifecycle.ErrUnknownStatus) {
			t.Fatalf("expected ErrUnknownStatus, got %v", err)
		}
	})

	t.Run("deleted between read and write", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIBookingRepository(ctrl)
		uc := newBookingUseCase(repo, lifecycle.Permissive)

		repo.EXPECT().GetByID(gomock.Any(), "bk-1").Return(current, nil)
		repo.EXPECT().UpdateStatus(gomock.Any(), "bk-1", entities.BookingStatusConfirmed, fixedNow).Return(entities.Booking{}, nil)

		_, err := uc.UpdateStatus(context.Background(), "bk-1", entities.BookingStatusConfirmed)
		if !errors.Is(err, ErrBookingNotFound) {
			t.Fatalf("expected ErrBookingNotFound, got %v", err)
		}
	})
}

func TestBookingUseCase_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIBookingRepository(ctrl)
	uc := newBookingUseCase(repo, lifecycle.Permissive)

	repo.EXPECT().Delete(gomock.Any(), "bk-1").Return(true, nil)
	if err := uc.Delete(context.Background(), "bk-1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	repo.EXPECT().Delete(gomock.Any(), "bk-1").Return(false, nil)
	if err := uc.Delete(context.Background(), "bk-1"); !errors.Is(err, ErrBookingNotFound) {
		t.Fatalf("expected ErrBookingNotFound, got %v", err)
	}
}
