package repository

import (
	"context"
	"iter"
	"time"

	"vetcare/internal/domain/entities"
	"vetcare/internal/usecase/interfaces"
)

const defaultBookingsTableName = "bookings"

type bookingItem struct {
	ID                 string `dynamodbav:"id"`
	User               string `dynamodbav:"user_id,omitempty"`
	Pet                string `dynamodbav:"pet_id,omitempty"`
	BoardingType       string `dynamodbav:"boarding_type"`
	CheckIn            string `dynamodbav:"check_in"`
	CheckOut           string `dynamodbav:"check_out"`
	SpecialNotes       string `dynamodbav:"special_notes,omitempty"`
	AdditionalServices string `dynamodbav:"additional_services"`
	Status             string `dynamodbav:"status"`
	CreatedAt          string `dynamodbav:"created_at"`
	UpdatedAt          string `dynamodbav:"updated_at"`
}

// BookingDynamoRepository persists bookings in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI status-index: status (HASH) + check_in (RANGE)
type BookingDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.IBookingRepository = (*BookingDynamoRepository)(nil)

func NewBookingDynamoRepository(ddb DynamoAPI, tableName string) *BookingDynamoRepository {
	return &BookingDynamoRepository{
		ddb:       ddb,
		tableName: tableOrDefault(tableName, defaultBookingsTableName),
	}
}

func (r *BookingDynamoRepository) Create(ctx context.Context, b entities.Booking) (entities.Booking, error) {
	if err := putNew(ctx, r.ddb, r.tableName, toBookingItem(b)); err != nil {
		return entities.Booking{}, err
	}
	return b, nil
}

func (r *BookingDynamoRepository) GetByID(ctx context.Context, id string) (entities.Booking, error) {
	it, ok, err := getByID[bookingItem](ctx, r.ddb, r.tableName, id)
	if err != nil || !ok {
		return entities.Booking{}, err
	}
	return fromBookingItem(it), nil
}

// List queries status-index when a status is given; check_in bounds then
// become part of the key condition. Otherwise the table is scanned.
func (r *BookingDynamoRepository) List(ctx context.Context, filter entities.ListFilter) iter.Seq2[entities.Booking, error] {
	key, cond := newConditions(), newConditions()
	if filter.Status != "" {
		key.eq("status", filter.Status)
		key.timeRange("check_in", filter.From, filter.To)
	} else {
		cond.timeRange("check_in", filter.From, filter.To)
	}
	q, s := query(r.tableName, StatusIndex, key, cond, true)
	return listItems(ctx, r.ddb, q, s, fromBookingItem)
}

func (r *BookingDynamoRepository) UpdateStatus(ctx context.Context, id string, status entities.BookingStatus, at time.Time) (entities.Booking, error) {
	expr, vals, names := statusUpdate(string(status), at)
	it, ok, err := updateByID[bookingItem](ctx, r.ddb, r.tableName, id, expr, vals, names)
	if err != nil || !ok {
		return entities.Booking{}, err
	}
	return fromBookingItem(it), nil
}

func (r *BookingDynamoRepository) Delete(ctx context.Context, id string) (bool, error) {
	return deleteByID(ctx, r.ddb, r.tableName, id)
}

func toBookingItem(b entities.Booking) bookingItem {
	return bookingItem{
		ID:                 b.ID,
		User:               b.User,
		Pet:                b.Pet,
		BoardingType:       string(b.BoardingType),
		CheckIn:            formatTime(b.CheckIn),
		CheckOut:           formatTime(b.CheckOut),
		SpecialNotes:       b.SpecialNotes,
		AdditionalServices: string(b.AdditionalServices),
		Status:             string(b.Status),
		CreatedAt:          formatTime(b.CreatedAt),
		UpdatedAt:          formatTime(b.UpdatedAt),
	}
}

func fromBookingItem(it bookingItem) entities.Booking {
	return entities.Booking{
		ID:                 it.ID,
		User:               it.User,
		Pet:                it.Pet,
		BoardingType:       entities.BoardingType(it.BoardingType),
		CheckIn:            parseTime(it.CheckIn),
		CheckOut:           parseTime(it.CheckOut),
		SpecialNotes:       it.SpecialNotes,
		AdditionalServices: entities.AdditionalService(it.AdditionalServices),
		Status:             entities.BookingStatus(it.Status),
		CreatedAt:          parseTime(it.CreatedAt),
		UpdatedAt:          parseTime(it.UpdatedAt),
	}
}
