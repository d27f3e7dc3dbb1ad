package interfaces

import (
	"context"
	"iter"

	"vetcare/internal/domain/entities"
)

type IPetRepository interface {
	Create(ctx context.Context, p entities.Pet) (entities.Pet, error)
	GetByID(ctx context.Context, id string) (entities.Pet, error)
	List(ctx context.Context, filter entities.ListFilter) iter.Seq2[entities.Pet, error]
}

// IMedicalRecordRepository stores records; filter.PetID is required by List.
type IMedicalRecordRepository interface {
	Create(ctx context.Context, r entities.MedicalRecord) (entities.MedicalRecord, error)
	List(ctx context.Context, filter entities.ListFilter) iter.Seq2[entities.MedicalRecord, error]
}
