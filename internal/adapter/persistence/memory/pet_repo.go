package memory

import (
	"context"
	"iter"

	"vetcare/internal/domain/entities"
	"vetcare/internal/usecase/interfaces"
)

type PetRepository struct {
	t *table[entities.Pet]
}

var _ interfaces.IPetRepository = (*PetRepository)(nil)

func NewPetRepository() *PetRepository {
	return &PetRepository{t: newTable[entities.Pet]()}
}

func (r *PetRepository) Create(ctx context.Context, p entities.Pet) (entities.Pet, error) {
	if err := ctx.Err(); err != nil {
		return entities.Pet{}, err
	}
	if err := r.t.insert(p.ID, p); err != nil {
		return entities.Pet{}, err
	}
	return p, nil
}

func (r *PetRepository) GetByID(ctx context.Context, id string) (entities.Pet, error) {
	if err := ctx.Err(); err != nil {
		return entities.Pet{}, err
	}
	p, _ := r.t.get(id)
	return p, nil
}

func (r *PetRepository) List(ctx context.Context, filter entities.ListFilter) iter.Seq2[entities.Pet, error] {
	return r.t.scan(ctx, func(p entities.Pet) bool {
		return filter.Owner == "" || p.Owner == filter.Owner
	})
}

type MedicalRecordRepository struct {
	t *table[entities.MedicalRecord]
}

var _ interfaces.IMedicalRecordRepository = (*MedicalRecordRepository)(nil)

func NewMedicalRecordRepository() *MedicalRecordRepository {
	return &MedicalRecordRepository{t: newTable[entities.MedicalRecord]()}
}

func (r *MedicalRecordRepository) Create(ctx context.Context, rec entities.MedicalRecord) (entities.MedicalRecord, error) {
	if err := ctx.Err(); err != nil {
		return entities.MedicalRecord{}, err
	}
	if err := r.t.insert(rec.ID, rec); err != nil {
		return entities.MedicalRecord{}, err
	}
	return rec, nil
}

func (r *MedicalRecordRepository) List(ctx context.Context, filter entities.ListFilter) iter.Seq2[entities.MedicalRecord, error] {
	return r.t.scan(ctx, func(rec entities.MedicalRecord) bool {
		return rec.PetID == filter.PetID
	})
}
