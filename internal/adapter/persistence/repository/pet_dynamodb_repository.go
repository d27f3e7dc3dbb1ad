package repository

import (
	"context"
	"iter"

	"vetcare/internal/domain/entities"
	"vetcare/internal/usecase/interfaces"
)

const (
	defaultPetsTableName           = "pets"
	defaultMedicalRecordsTableName = "medical_records"
)

type petItem struct {
	ID        string `dynamodbav:"id"`
	Name      string `dynamodbav:"name"`
	Species   string `dynamodbav:"species"`
	Breed     string `dynamodbav:"breed,omitempty"`
	BirthDate string `dynamodbav:"birth_date,omitempty"`
	Owner     string `dynamodbav:"owner_id,omitempty"`
	CreatedAt string `dynamodbav:"created_at"`
	UpdatedAt string `dynamodbav:"updated_at"`
}

type medicalRecordItem struct {
	ID           string `dynamodbav:"id"`
	PetID        string `dynamodbav:"pet_id"`
	VisitDate    string `dynamodbav:"visit_date"`
	Diagnosis    string `dynamodbav:"diagnosis"`
	Treatment    string `dynamodbav:"treatment,omitempty"`
	Veterinarian string `dynamodbav:"veterinarian,omitempty"`
	Notes        string `dynamodbav:"notes,omitempty"`
	CreatedAt    string `dynamodbav:"created_at"`
}

// PetDynamoRepository persists pets in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI owner-index: owner_id (HASH)
type PetDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.IPetRepository = (*PetDynamoRepository)(nil)

func NewPetDynamoRepository(ddb DynamoAPI, tableName string) *PetDynamoRepository {
	return &PetDynamoRepository{ddb: ddb, tableName: tableOrDefault(tableName, defaultPetsTableName)}
}

func (r *PetDynamoRepository) Create(ctx context.Context, p entities.Pet) (entities.Pet, error) {
	if err := putNew(ctx, r.ddb, r.tableName, toPetItem(p)); err != nil {
		return entities.Pet{}, err
	}
	return p, nil
}

func (r *PetDynamoRepository) GetByID(ctx context.Context, id string) (entities.Pet, error) {
	it, ok, err := getByID[petItem](ctx, r.ddb, r.tableName, id)
	if err != nil || !ok {
		return entities.Pet{}, err
	}
	return fromPetItem(it), nil
}

func (r *PetDynamoRepository) List(ctx context.Context, filter entities.ListFilter) iter.Seq2[entities.Pet, error] {
	key, cond := newConditions(), newConditions()
	if filter.Owner != "" {
		key.eq("owner_id", filter.Owner)
	}
	q, s := query(r.tableName, OwnerIndex, key, cond, false)
	return listItems(ctx, r.ddb, q, s, fromPetItem)
}

// MedicalRecordDynamoRepository persists medical records in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI pet_id-index: pet_id (HASH) + visit_date (RANGE)
type MedicalRecordDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.IMedicalRecordRepository = (*MedicalRecordDynamoRepository)(nil)

func NewMedicalRecordDynamoRepository(ddb DynamoAPI, tableName string) *MedicalRecordDynamoRepository {
	return &MedicalRecordDynamoRepository{ddb: ddb, tableName: tableOrDefault(tableName, defaultMedicalRecordsTableName)}
}

func (r *MedicalRecordDynamoRepository) Create(ctx context.Context, rec entities.MedicalRecord) (entities.MedicalRecord, error) {
	if err := putNew(ctx, r.ddb, r.tableName, toMedicalRecordItem(rec)); err != nil {
		return entities.MedicalRecord{}, err
	}
	return rec, nil
}

// List returns the pet's records, latest visit first.
func (r *MedicalRecordDynamoRepository) List(ctx context.Context, filter entities.ListFilter) iter.Seq2[entities.MedicalRecord, error] {
	key, cond := newConditions(), newConditions()
	if filter.PetID != "" {
		key.eq("pet_id", filter.PetID)
	}
	q, s := query(r.tableName, PetIndex, key, cond, true)
	return listItems(ctx, r.ddb, q, s, fromMedicalRecordItem)
}

func toPetItem(p entities.Pet) petItem {
	it := petItem{
		ID:        p.ID,
		Name:      p.Name,
		Species:   p.Species,
		Breed:     p.Breed,
		Owner:     p.Owner,
		CreatedAt: formatTime(p.CreatedAt),
		UpdatedAt: formatTime(p.UpdatedAt),
	}
	if p.BirthDate != nil {
		it.BirthDate = formatTime(*p.BirthDate)
	}
	return it
}

func fromPetItem(it petItem) entities.Pet {
	p := entities.Pet{
		ID:        it.ID,
		Name:      it.Name,
		Species:   it.Species,
		Breed:     it.Breed,
		Owner:     it.Owner,
		CreatedAt: parseTime(it.CreatedAt),
		UpdatedAt: parseTime(it.UpdatedAt),
	}
	if it.BirthDate != "" {
		bd := parseTime(it.BirthDate)
		p.BirthDate = &bd
	}
	return p
}

func toMedicalRecordItem(r entities.MedicalRecord) medicalRecordItem {
	return medicalRecordItem{
		ID:           r.ID,
		PetID:        r.PetID,
		VisitDate:    formatTime(r.VisitDate),
		Diagnosis:    r.Diagnosis,
		Treatment:    r.Treatment,
		Veterinarian: r.Veterinarian,
		Notes:        r.Notes,
		CreatedAt:    formatTime(r.CreatedAt),
	}
}

func fromMedicalRecordItem(it medicalRecordItem) entities.MedicalRecord {
	return entities.MedicalRecord{
		ID:           it.ID,
		PetID:        it.PetID,
		VisitDate:    parseTime(it.VisitDate),
		Diagnosis:    it.Diagnosis,
		Treatment:    it.Treatment,
		Veterinarian: it.Veterinarian,
		Notes:        it.Notes,
		CreatedAt:    parseTime(it.CreatedAt),
	}
}
