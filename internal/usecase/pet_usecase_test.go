package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"vetcare/internal/domain/entities"
	"vetcare/internal/domain/validation"
	mock_interfaces "vetcare/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestPetUseCase_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	pets := mock_interfaces.NewMockIPetRepository(ctrl)
	uc := NewPetUseCase(pets, nil, nopLogger)
	uc.now = fixedClock

	if _, err := uc.Create(context.Background(), CreatePetInput{Name: "Rex"}); !errors.Is(err, validation.ErrMissingField) {
		t.Fatalf("expected ErrMissingField, got %v", err)
	}

	pets.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, p entities.Pet) (entities.Pet, error) {
		return p, nil
	})
	p, err := uc.Create(context.Background(), CreatePetInput{Name: "Rex", Species: "dog", Owner: "user-1"})
	if err != nil || p.ID == "" || p.Owner != "user-1" {
		t.Fatalf("unexpected result %+v err=%v", p, err)
	}
}

func TestPetUseCase_AddRecord(t *testing.T) {
	visit := time.Date(2025, 5, 20, 9, 30, 0, 0, time.UTC)

	t.Run("unknown pet", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		pets := mock_interfaces.NewMockIPetRepository(ctrl)
		records := mock_interfaces.NewMockIMedicalRecordRepository(ctrl)
		uc := NewPetUseCase(pets, records, nopLogger)

		pets.EXPECT().GetByID(gomock.Any(), "pet-9").Return(entities.Pet{}, nil)
		_, err := uc.AddRecord(context.Background(), "pet-9", CreateMedicalRecordInput{VisitDate: visit, Diagnosis: "otitis"})
		if !errors.Is(err, ErrPetNotFound) {
			t.Fatalf("expected ErrPetNotFound, got %v", err)
		}
	})

	t.Run("stored against the pet", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		pets := mock_interfaces.NewMockIPetRepository(ctrl)
		records := mock_interfaces.NewMockIMedicalRecordRepository(ctrl)
		uc := NewPetUseCase(pets, records, nopLogger)
		uc.now = fixedClock

		pets.EXPECT().GetByID(gomock.Any(), "pet-1").Return(entities.Pet{ID: "pet-1"}, nil)
		records.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, r entities.MedicalRecord) (entities.MedicalRecord, error) {
			return r, nil
		})

		r, err := uc.AddRecord(context.Background(), "pet-1", CreateMedicalRecordInput{VisitDate: visit, Diagnosis: " otitis "})
		if err != nil || r.PetID != "pet-1" || r.Diagnosis != "otitis" || !r.CreatedAt.Equal(fixedNow) {
			t.Fatalf("unexpected result %+v err=%v", r, err)
		}
	})

	t.Run("missing diagnosis", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		pets := mock_interfaces.NewMockIPetRepository(ctrl)
		records := mock_interfaces.NewMockIMedicalRecordRepository(ctrl)
		uc := NewPetUseCase(pets, records, nopLogger)

		pets.EXPECT().GetByID(gomock.Any(), "pet-1").Return(entities.Pet{ID: "pet-1"}, nil)
		_, err := uc.AddRecord(context.Background(), "pet-1", CreateMedicalRecordInput{VisitDate: visit})
		if !errors.Is(err, validation.ErrMissingField) {
			t.Fatalf("expected ErrMissingField, got %v", err)
		}
	})
}

func TestPetUseCase_ListRecords(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	pets := mock_interfaces.NewMockIPetRepository(ctrl)
	records := mock_interfaces.NewMockIMedicalRecordRepository(ctrl)
	uc := NewPetUseCase(pets, records, nopLogger)

	pets.EXPECT().GetByID(gomock.Any(), "pet-1").Return(entities.Pet{ID: "pet-1"}, nil)
	records.EXPECT().List(gomock.Any(), entities.ListFilter{PetID: "pet-1"}).
		Return(seqOf(entities.MedicalRecord{ID: "r1"}, entities.MedicalRecord{ID: "r2"}))

	items, err := uc.ListRecords(context.Background(), "pet-1")
	if err != nil || len(items) != 2 {
		t.Fatalf("unexpected result %v err=%v", items, err)
	}

	pets.EXPECT().List(gomock.Any(), entities.ListFilter{Owner: "user-1"}).Return(seqErr[entities.Pet](errors.New("db")))
	if _, err := uc.List(context.Background(), entities.ListFilter{Owner: "user-1"}); err == nil {
		t.Fatalf("expected error")
	}
}
