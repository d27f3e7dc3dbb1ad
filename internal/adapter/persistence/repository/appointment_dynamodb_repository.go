package repository

import (
	"context"
	"iter"
	"time"

	"vetcare/internal/domain/entities"
	"vetcare/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultAppointmentsTableName = "appointments"

type appointmentItem struct {
	ID              string `dynamodbav:"id"`
	Name            string `dynamodbav:"name"`
	Contact         string `dynamodbav:"contact"`
	Email           string `dynamodbav:"email"`
	NIC             string `dynamodbav:"nic"`
	PetID           string `dynamodbav:"pet_id"`
	AppointmentType string `dynamodbav:"appointment_type"`
	Status          string `dynamodbav:"status,omitempty"`
	CreatedAt       string `dynamodbav:"created_at"`
	UpdatedAt       string `dynamodbav:"updated_at"`
}

// AppointmentDynamoRepository persists appointments in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI nic-index: nic (HASH)
//   - GSI status-index: status (HASH) + created_at (RANGE)
type AppointmentDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.IAppointmentRepository = (*AppointmentDynamoRepository)(nil)

func NewAppointmentDynamoRepository(ddb DynamoAPI, tableName string) *AppointmentDynamoRepository {
	return &AppointmentDynamoRepository{
		ddb:       ddb,
		tableName: tableOrDefault(tableName, defaultAppointmentsTableName),
	}
}

func (r *AppointmentDynamoRepository) Create(ctx context.Context, a entities.Appointment) (entities.Appointment, error) {
	if err := putNew(ctx, r.ddb, r.tableName, toAppointmentItem(a)); err != nil {
		return entities.Appointment{}, err
	}
	return a, nil
}

func (r *AppointmentDynamoRepository) GetByID(ctx context.Context, id string) (entities.Appointment, error) {
	it, ok, err := getByID[appointmentItem](ctx, r.ddb, r.tableName, id)
	if err != nil || !ok {
		return entities.Appointment{}, err
	}
	return fromAppointmentItem(it), nil
}

// List prefers nic-index, then status-index, then a scan. Rows written
// without a status count as Pending, so a Pending filter never uses
// status-index.
func (r *AppointmentDynamoRepository) List(ctx context.Context, filter entities.ListFilter) iter.Seq2[entities.Appointment, error] {
	key, cond := newConditions(), newConditions()
	index := ""
	switch {
	case filter.NIC != "":
		index = NICIndex
		key.eq("nic", filter.NIC)
		cond.timeRange("created_at", filter.From, filter.To)
		appointmentStatus(cond, filter.Status)
	case filter.Status != "" && filter.Status != string(entities.AppointmentStatusPending):
		index = StatusIndex
		key.eq("status", filter.Status)
		key.timeRange("created_at", filter.From, filter.To)
	default:
		cond.timeRange("created_at", filter.From, filter.To)
		appointmentStatus(cond, filter.Status)
	}
	q, s := query(r.tableName, index, key, cond, index == StatusIndex)
	return listItems(ctx, r.ddb, q, s, fromAppointmentItem)
}

func appointmentStatus(c *conditions, status string) {
	switch status {
	case "":
	case string(entities.AppointmentStatusPending):
		c.add("(#status = :status OR attribute_not_exists(#status))",
			map[string]string{"#status": "status"},
			map[string]types.AttributeValue{":status": &types.AttributeValueMemberS{Value: status}})
	default:
		c.eq("status", status)
	}
}

func (r *AppointmentDynamoRepository) UpdateStatus(ctx context.Context, id string, status entities.AppointmentStatus, at time.Time) (entities.Appointment, error) {
	expr, vals, names := statusUpdate(string(status), at)
	it, ok, err := updateByID[appointmentItem](ctx, r.ddb, r.tableName, id, expr, vals, names)
	if err != nil || !ok {
		return entities.Appointment{}, err
	}
	return fromAppointmentItem(it), nil
}

func (r *AppointmentDynamoRepository) Delete(ctx context.Context, id string) (bool, error) {
	return deleteByID(ctx, r.ddb, r.tableName, id)
}

func toAppointmentItem(a entities.Appointment) appointmentItem {
	return appointmentItem{
		ID:              a.ID,
		Name:            a.Name,
		Contact:         a.Contact,
		Email:           a.Email,
		NIC:             a.NIC,
		PetID:           a.PetID,
		AppointmentType: a.AppointmentType,
		Status:          string(a.Status),
		CreatedAt:       formatTime(a.CreatedAt),
		UpdatedAt:       formatTime(a.UpdatedAt),
	}
}

func fromAppointmentItem(it appointmentItem) entities.Appointment {
	return entities.Appointment{
		ID:              it.ID,
		Name:            it.Name,
		Contact:         it.Contact,
		Email:           it.Email,
		NIC:             it.NIC,
		PetID:           it.PetID,
		AppointmentType: it.AppointmentType,
		Status:          entities.AppointmentStatus(it.Status),
		CreatedAt:       parseTime(it.CreatedAt),
		UpdatedAt:       parseTime(it.UpdatedAt),
	}
}
