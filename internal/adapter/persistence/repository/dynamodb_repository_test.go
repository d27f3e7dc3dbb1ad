package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"vetcare/internal/domain/entities"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/stretchr/testify/require"
)

// fakeDynamo records every request and replays scripted responses.
type fakeDynamo struct {
	puts    []*dynamodb.PutItemInput
	updates []*dynamodb.UpdateItemInput
	deletes []*dynamodb.DeleteItemInput
	queries []*dynamodb.QueryInput
	scans   []*dynamodb.ScanInput

	getOut     *dynamodb.GetItemOutput
	updateOut  *dynamodb.UpdateItemOutput
	updateErr  error
	deleteErr  error
	queryPages []*dynamodb.QueryOutput
	scanPages  []*dynamodb.ScanOutput
}

func (f *fakeDynamo) PutItem(_ context.Context, in *dynamodb.PutItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
	f.puts = append(f.puts, in)
	return &dynamodb.PutItemOutput{}, nil
}

func (f *fakeDynamo) GetItem(_ context.Context, _ *dynamodb.GetItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error) {
	if f.getOut == nil {
		return &dynamodb.GetItemOutput{}, nil
	}
	return f.getOut, nil
}

func (f *fakeDynamo) UpdateItem(_ context.Context, in *dynamodb.UpdateItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error) {
	f.updates = append(f.updates, in)
	if f.updateErr != nil {
		return nil, f.updateErr
	}
	return f.updateOut, nil
}

func (f *fakeDynamo) DeleteItem(_ context.Context, in *dynamodb.DeleteItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error) {
	f.deletes = append(f.deletes, in)
	if f.deleteErr != nil {
		return nil, f.deleteErr
	}
	return &dynamodb.DeleteItemOutput{}, nil
}

func (f *fakeDynamo) Query(_ context.Context, in *dynamodb.QueryInput, _ ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error) {
	f.queries = append(f.queries, in)
	i := len(f.queries) - 1
	if i >= len(f.queryPages) {
		return &dynamodb.QueryOutput{}, nil
	}
	return f.queryPages[i], nil
}

func (f *fakeDynamo) Scan(_ context.Context, in *dynamodb.ScanInput, _ ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error) {
	f.scans = append(f.scans, in)
	i := len(f.scans) - 1
	if i >= len(f.scanPages) {
		return &dynamodb.ScanOutput{}, nil
	}
	return f.scanPages[i], nil
}

func marshal(t *testing.T, v any) map[string]types.AttributeValue {
	t.Helper()
	av, err := attributevalue.MarshalMap(v)
	require.NoError(t, err)
	return av
}

func sampleBooking() entities.Booking {
	checkIn := time.Date(2025, 7, 1, 9, 0, 0, 0, time.UTC)
	return entities.Booking{
		ID:                 "b1",
		User:               "u1",
		Pet:                "p1",
		BoardingType:       entities.BoardingTypeDeluxe,
		CheckIn:            checkIn,
		CheckOut:           checkIn.Add(72 * time.Hour),
		AdditionalServices: entities.AdditionalServiceGrooming,
		Status:             entities.BookingStatusPending,
		CreatedAt:          checkIn.Add(-24 * time.Hour),
		UpdatedAt:          checkIn.Add(-24 * time.Hour),
	}
}

func TestFormatTime_SortsLexicographically(t *testing.T) {
	whole := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	half := whole.Add(500 * time.Millisecond)

	require.Less(t, formatTime(whole), formatTime(half))
	require.Equal(t, whole, parseTime(formatTime(whole)))
	require.Empty(t, formatTime(time.Time{}))
	require.True(t, parseTime("").IsZero())
}

func TestBookingDynamoRepository_Create(t *testing.T) {
	ddb := &fakeDynamo{}
	repo := NewBookingDynamoRepository(ddb, "")

	b := sampleBooking()
	got, err := repo.Create(context.Background(), b)
	require.NoError(t, err)
	require.Equal(t, b, got)

	require.Len(t, ddb.puts, 1)
	in := ddb.puts[0]
	require.Equal(t, "bookings", aws.ToString(in.TableName))
	require.Equal(t, "attribute_not_exists(#id)", aws.ToString(in.ConditionExpression))
	require.Equal(t, &types.AttributeValueMemberS{Value: "2025-07-01T09:00:00.000000000Z"}, in.Item["check_in"])
	require.Equal(t, &types.AttributeValueMemberS{Value: "deluxe"}, in.Item["boarding_type"])
}

func TestBookingDynamoRepository_GetByID(t *testing.T) {
	t.Run("missing item yields zero booking", func(t *testing.T) {
		repo := NewBookingDynamoRepository(&fakeDynamo{}, "bookings")
		got, err := repo.GetByID(context.Background(), "nope")
		require.NoError(t, err)
		require.Empty(t, got.ID)
	})

	t.Run("round trips through the item shape", func(t *testing.T) {
		b := sampleBooking()
		ddb := &fakeDynamo{getOut: &dynamodb.GetItemOutput{Item: marshal(t, toBookingItem(b))}}
		repo := NewBookingDynamoRepository(ddb, "bookings")

		got, err := repo.GetByID(context.Background(), b.ID)
		require.NoError(t, err)
		require.Equal(t, b, got)
	})
}

func TestBookingDynamoRepository_UpdateStatus(t *testing.T) {
	at := time.Date(2025, 6, 2, 8, 0, 0, 0, time.UTC)

	t.Run("conditional check failure means not found", func(t *testing.T) {
		ddb := &fakeDynamo{updateErr: &types.ConditionalCheckFailedException{}}
		repo := NewBookingDynamoRepository(ddb, "bookings")

		got, err := repo.UpdateStatus(context.Background(), "nope", entities.BookingStatusConfirmed, at)
		require.NoError(t, err)
		require.Empty(t, got.ID)
	})

	t.Run("other errors propagate", func(t *testing.T) {
		boom := errors.New("throttled")
		repo := NewBookingDynamoRepository(&fakeDynamo{updateErr: boom}, "bookings")

		_, err := repo.UpdateStatus(context.Background(), "b1", entities.BookingStatusConfirmed, at)
		require.ErrorIs(t, err, boom)
	})

	t.Run("returns the updated booking", func(t *testing.T) {
		b := sampleBooking()
		b.Status = entities.BookingStatusConfirmed
		b.UpdatedAt = at
		ddb := &fakeDynamo{updateOut: &dynamodb.UpdateItemOutput{Attributes: marshal(t, toBookingItem(b))}}
		repo := NewBookingDynamoRepository(ddb, "bookings")

		got, err := repo.UpdateStatus(context.Background(), b.ID, entities.BookingStatusConfirmed, at)
		require.NoError(t, err)
		require.Equal(t, b, got)

		in := ddb.updates[0]
		require.Equal(t, "attribute_exists(#id)", aws.ToString(in.ConditionExpression))
		require.Equal(t, "id", in.ExpressionAttributeNames["#id"])
		require.Equal(t, &types.AttributeValueMemberS{Value: "confirmed"}, in.ExpressionAttributeValues[":status"])
	})
}

func TestBookingDynamoRepository_Delete(t *testing.T) {
	repo := NewBookingDynamoRepository(&fakeDynamo{deleteErr: &types.ConditionalCheckFailedException{}}, "bookings")
	ok, err := repo.Delete(context.Background(), "nope")
	require.NoError(t, err)
	require.False(t, ok)

	ddb := &fakeDynamo{}
	repo = NewBookingDynamoRepository(ddb, "bookings")
	ok, err = repo.Delete(context.Background(), "b1")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "attribute_exists(#id)", aws.ToString(ddb.deletes[0].ConditionExpression))
}

func TestBookingDynamoRepository_List(t *testing.T) {
	from := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC)

	t.Run("status filter queries the status index across pages", func(t *testing.T) {
		first, second := sampleBooking(), sampleBooking()
		second.ID = "b2"
		ddb := &fakeDynamo{queryPages: []*dynamodb.QueryOutput{
			{
				Items:            []map[string]types.AttributeValue{marshal(t, toBookingItem(first))},
				LastEvaluatedKey: map[string]types.AttributeValue{"id": &types.AttributeValueMemberS{Value: "b1"}},
			},
			{Items: []map[string]types.AttributeValue{marshal(t, toBookingItem(second))}},
		}}
		repo := NewBookingDynamoRepository(ddb, "bookings")

		var ids []string
		for b, err := range repo.List(context.Background(), entities.ListFilter{Status: "pending", From: &from, To: &to}) {
			require.NoError(t, err)
			ids = append(ids, b.ID)
		}
		require.Equal(t, []string{"b1", "b2"}, ids)
		require.Len(t, ddb.queries, 2)
		require.Empty(t, ddb.scans)

		in := ddb.queries[0]
		require.Equal(t, StatusIndex, aws.ToString(in.IndexName))
		require.Equal(t, "#status = :status AND #check_in BETWEEN :from AND :to", aws.ToString(in.KeyConditionExpression))
		require.Nil(t, in.FilterExpression)
		require.False(t, aws.ToBool(in.ScanIndexForward))
	})

	t.Run("without status the table is scanned", func(t *testing.T) {
		ddb := &fakeDynamo{}
		repo := NewBookingDynamoRepository(ddb, "bookings")

		for _, err := range repo.List(context.Background(), entities.ListFilter{From: &from}) {
			require.NoError(t, err)
		}
		require.Empty(t, ddb.queries)
		require.Len(t, ddb.scans, 1)
		require.Equal(t, "#check_in >= :from", aws.ToString(ddb.scans[0].FilterExpression))
	})

	t.Run("stops paging when the caller stops", func(t *testing.T) {
		b := sampleBooking()
		ddb := &fakeDynamo{scanPages: []*dynamodb.ScanOutput{{
			Items:            []map[string]types.AttributeValue{marshal(t, toBookingItem(b)), marshal(t, toBookingItem(b))},
			LastEvaluatedKey: map[string]types.AttributeValue{"id": &types.AttributeValueMemberS{Value: "b1"}},
		}}}
		repo := NewBookingDynamoRepository(ddb, "bookings")

		for range repo.List(context.Background(), entities.ListFilter{}) {
			break
		}
		require.Len(t, ddb.scans, 1)
	})
}

func TestAppointmentDynamoRepository_List(t *testing.T) {
	t.Run("nic uses the nic index with a pending-aware status filter", func(t *testing.T) {
		ddb := &fakeDynamo{}
		repo := NewAppointmentDynamoRepository(ddb, "")
		for range repo.List(context.Background(), entities.ListFilter{NIC: "991234567V", Status: "Pending"}) {
		}

		require.Len(t, ddb.queries, 1)
		in := ddb.queries[0]
		require.Equal(t, "appointments", aws.ToString(in.TableName))
		require.Equal(t, NICIndex, aws.ToString(in.IndexName))
		require.Equal(t, "#nic = :nic", aws.ToString(in.KeyConditionExpression))
		require.Equal(t, "(#status = :status OR attribute_not_exists(#status))", aws.ToString(in.FilterExpression))
	})

	t.Run("non-pending status uses the status index", func(t *testing.T) {
		ddb := &fakeDynamo{}
		repo := NewAppointmentDynamoRepository(ddb, "appointments")
		for range repo.List(context.Background(), entities.ListFilter{Status: "Confirmed"}) {
		}
		require.Equal(t, StatusIndex, aws.ToString(ddb.queries[0].IndexName))
	})

	t.Run("pending without nic scans", func(t *testing.T) {
		ddb := &fakeDynamo{}
		repo := NewAppointmentDynamoRepository(ddb, "appointments")
		for range repo.List(context.Background(), entities.ListFilter{Status: "Pending"}) {
		}
		require.Empty(t, ddb.queries)
		require.Len(t, ddb.scans, 1)
	})
}

func TestInvoiceDynamoRepository(t *testing.T) {
	created := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	inv := entities.Invoice{
		ID:          "inv1",
		PatientName: "Rex",
		OwnerName:   "Ana Silva",
		Items: []entities.InvoiceItem{
			{Description: "consultation", Quantity: 1, UnitPrice: 45.5},
		},
		Total:     45.5,
		Status:    entities.InvoiceStatusUnpaid,
		CreatedAt: created,
		UpdatedAt: created,
	}

	t.Run("create stores search text and line items", func(t *testing.T) {
		ddb := &fakeDynamo{}
		repo := NewInvoiceDynamoRepository(ddb, "")
		_, err := repo.Create(context.Background(), inv)
		require.NoError(t, err)

		item := ddb.puts[0].Item
		require.Equal(t, &types.AttributeValueMemberS{Value: "rex ana silva"}, item["search_text"])
		require.Equal(t, &types.AttributeValueMemberS{Value: "45.5"}, item["total"])
		require.IsType(t, &types.AttributeValueMemberL{}, item["items"])
	})

	t.Run("item round trip", func(t *testing.T) {
		require.Equal(t, inv, fromInvoiceItem(toInvoiceItem(inv)))
	})

	t.Run("search is lowercased into a contains filter", func(t *testing.T) {
		ddb := &fakeDynamo{}
		repo := NewInvoiceDynamoRepository(ddb, "invoices")
		for range repo.List(context.Background(), entities.ListFilter{Status: "unpaid", Query: " SILVA "}) {
		}
		in := ddb.queries[0]
		require.Equal(t, "contains(#search_text, :q)", aws.ToString(in.FilterExpression))
		require.Equal(t, &types.AttributeValueMemberS{Value: "silva"}, in.ExpressionAttributeValues[":q"])
		require.Equal(t, "status", in.ExpressionAttributeNames["#status"])
	})

	t.Run("update details never touches status", func(t *testing.T) {
		ddb := &fakeDynamo{updateOut: &dynamodb.UpdateItemOutput{Attributes: marshal(t, toInvoiceItem(inv))}}
		repo := NewInvoiceDynamoRepository(ddb, "invoices")
		got, err := repo.UpdateDetails(context.Background(), inv)
		require.NoError(t, err)
		require.Equal(t, inv.ID, got.ID)

		in := ddb.updates[0]
		require.NotContains(t, in.ExpressionAttributeNames, "#status")
		require.Contains(t, aws.ToString(in.UpdateExpression), "#search_text = :search_text")
	})
}

func TestPetDynamoRepositories(t *testing.T) {
	birth := time.Date(2020, 3, 4, 0, 0, 0, 0, time.UTC)
	p := entities.Pet{ID: "p1", Name: "Rex", Species: "dog", BirthDate: &birth, Owner: "u1"}
	require.Equal(t, p, fromPetItem(toPetItem(p)))

	ddb := &fakeDynamo{}
	pets := NewPetDynamoRepository(ddb, "")
	for range pets.List(context.Background(), entities.ListFilter{Owner: "u1"}) {
	}
	require.Equal(t, OwnerIndex, aws.ToString(ddb.queries[0].IndexName))
	require.Equal(t, "pets", aws.ToString(ddb.queries[0].TableName))

	records := NewMedicalRecordDynamoRepository(ddb, "")
	for range records.List(context.Background(), entities.ListFilter{PetID: "p1"}) {
	}
	require.Equal(t, PetIndex, aws.ToString(ddb.queries[1].IndexName))
	require.Equal(t, "medical_records", aws.ToString(ddb.queries[1].TableName))
	require.False(t, aws.ToBool(ddb.queries[1].ScanIndexForward))
}
