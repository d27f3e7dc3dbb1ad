package memory

import (
	"context"
	"iter"
	"testing"
	"time"

	"vetcare/internal/domain/entities"

	"github.com/stretchr/testify/require"
)

func day(d int) time.Time {
	return time.Date(2025, 6, d, 0, 0, 0, 0, time.UTC)
}

func drain[T any](t *testing.T, seq iter.Seq2[T, error]) []T {
	t.Helper()
	var out []T
	for v, err := range seq {
		require.NoError(t, err)
		out = append(out, v)
	}
	return out
}

func TestBookingRepository_Lifecycle(t *testing.T) {
	ctx := context.Background()
	repo := NewBookingRepository()

	b := entities.Booking{ID: "bk-1", BoardingType: entities.BoardingTypeStandard, CheckIn: day(1), CheckOut: day(5), Status: entities.BookingStatusPending, CreatedAt: day(1), UpdatedAt: day(1)}
	_, err := repo.Create(ctx, b)
	require.NoError(t, err)

	_, err = repo.Create(ctx, b)
	require.ErrorIs(t, err, ErrDuplicateID)

	got, err := repo.GetByID(ctx, "bk-1")
	require.NoError(t, err)
	require.Equal(t, b, got)

	updated, err := repo.UpdateStatus(ctx, "bk-1", entities.BookingStatusConfirmed, day(2))
	require.NoError(t, err)
	require.Equal(t, entities.BookingStatusConfirmed, updated.Status)
	require.Equal(t, day(2), updated.UpdatedAt)
	require.Equal(t, day(1), updated.CreatedAt)

	missing, err := repo.UpdateStatus(ctx, "nope", entities.BookingStatusConfirmed, day(2))
	require.NoError(t, err)
	require.Empty(t, missing.ID)

	ok, err := repo.Delete(ctx, "bk-1")
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = repo.Delete(ctx, "bk-1")
	require.NoError(t, err)
	require.False(t, ok)

	gone, err := repo.GetByID(ctx, "bk-1")
	require.NoError(t, err)
	require.Empty(t, gone.ID)
}

func TestBookingRepository_ListFilters(t *testing.T) {
	ctx := context.Background()
	repo := NewBookingRepository()
	for i, s := range []entities.BookingStatus{entities.BookingStatusPending, entities.BookingStatusConfirmed, entities.BookingStatusPending} {
		_, err := repo.Create(ctx, entities.Booking{ID: string(rune('a' + i)), CheckIn: day(i + 1), Status: s})
		require.NoError(t, err)
	}

	all := drain(t, repo.List(ctx, entities.ListFilter{}))
	require.Len(t, all, 3)
	require.Equal(t, "c", all[0].ID, "newest first")

	pending := drain(t, repo.List(ctx, entities.ListFilter{Status: "pending"}))
	require.Len(t, pending, 2)

	from, to := day(2), day(3)
	ranged := drain(t, repo.List(ctx, entities.ListFilter{From: &from, To: &to}))
	require.Len(t, ranged, 2)
}

func TestTable_ScanHonorsContextAndEarlyStop(t *testing.T) {
	repo := NewPetRepository()
	for _, id := range []string{"p1", "p2", "p3"} {
		_, err := repo.Create(context.Background(), entities.Pet{ID: id, Name: id, Species: "cat"})
		require.NoError(t, err)
	}

	count := 0
	for range repo.List(context.Background(), entities.ListFilter{}) {
		count++
		if count == 1 {
			break
		}
	}
	require.Equal(t, 1, count)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	var gotErr error
	for _, err := range repo.List(ctx, entities.ListFilter{}) {
		gotErr = err
	}
	require.ErrorIs(t, gotErr, context.Canceled)

	_, err := repo.GetByID(ctx, "p1")
	require.ErrorIs(t, err, context.Canceled)
}

func TestInvoiceRepository_SearchAndDetach(t *testing.T) {
	ctx := context.Background()
	repo := NewInvoiceRepository()

	inv := entities.Invoice{
		ID:          "inv-1",
		PatientName: "Rex",
		OwnerName:   "Ana Silva",
		Items:       []entities.InvoiceItem{{Description: "checkup", Quantity: 1, UnitPrice: 30}},
		Total:       30,
		Status:      entities.InvoiceStatusUnpaid,
	}
	_, err := repo.Create(ctx, inv)
	require.NoError(t, err)
	_, err = repo.Create(ctx, entities.Invoice{ID: "inv-2", PatientName: "Luna", OwnerName: "Bruno", Status: entities.InvoiceStatusPaid})
	require.NoError(t, err)

	inv.Items[0].Description = "mutated"
	got, err := repo.GetByID(ctx, "inv-1")
	require.NoError(t, err)
	require.Equal(t, "checkup", got.Items[0].Description)

	hits := drain(t, repo.List(ctx, entities.ListFilter{Query: "silva"}))
	require.Len(t, hits, 1)
	require.Equal(t, "inv-1", hits[0].ID)

	paid := drain(t, repo.List(ctx, entities.ListFilter{Status: "paid"}))
	require.Len(t, paid, 1)
	require.Equal(t, "inv-2", paid[0].ID)

	edited := got
	edited.OwnerName = "Ana S."
	edited.Status = entities.InvoiceStatusPaid
	out, err := repo.UpdateDetails(ctx, edited)
	require.NoError(t, err)
	require.Equal(t, "Ana S.", out.OwnerName)
	require.Equal(t, entities.InvoiceStatusUnpaid, out.Status, "details update never touches status")
}

func TestMedicalRecordRepository_ListByPet(t *testing.T) {
	ctx := context.Background()
	repo := NewMedicalRecordRepository()
	_, err := repo.Create(ctx, entities.MedicalRecord{ID: "r1", PetID: "pet-1"})
	require.NoError(t, err)
	_, err = repo.Create(ctx, entities.MedicalRecord{ID: "r2", PetID: "pet-2"})
	require.NoError(t, err)

	recs := drain(t, repo.List(ctx, entities.ListFilter{PetID: "pet-1"}))
	require.Len(t, recs, 1)
	require.Equal(t, "r1", recs[0].ID)
}
