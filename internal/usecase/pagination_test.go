package usecase

import (
	"errors"
	"testing"
)

func TestNormalizePage(t *testing.T) {
	tests := []struct {
		page, limit         int
		wantPage, wantLimit int
	}{
		{0, 0, 1, DefaultPageLimit},
		{-3, 5, 1, 5},
		{2, 500, 2, MaxPageLimit},
		{4, 25, 4, 25},
	}
	for _, tt := range tests {
		p, l := NormalizePage(tt.page, tt.limit)
		if p != tt.wantPage || l != tt.wantLimit {
			t.Fatalf("NormalizePage(%d,%d) = %d,%d", tt.page, tt.limit, p, l)
		}
	}
}

func TestCollect(t *testing.T) {
	t.Run("skip and limit", func(t *testing.T) {
		items, more, err := collect(seqOf(1, 2, 3, 4, 5), 1, 2)
		if err != nil || more != true || len(items) != 2 || items[0] != 2 || items[1] != 3 {
			t.Fatalf("unexpected result %v more=%v err=%v", items, more, err)
		}
	})

	t.Run("last page", func(t *testing.T) {
		items, more, err := collect(seqOf(1, 2, 3), 2, 2)
		if err != nil || more || len(items) != 1 || items[0] != 3 {
			t.Fatalf("unexpected result %v more=%v err=%v", items, more, err)
		}
	})

	t.Run("no limit", func(t *testing.T) {
		items, more, err := collect(seqOf("a", "b"), 0, 0)
		if err != nil || more || len(items) != 2 {
			t.Fatalf("unexpected result %v more=%v err=%v", items, more, err)
		}
	})

	t.Run("stops pulling once the page is full", func(t *testing.T) {
		pulled := 0
		seq := func(yield func(int, error) bool) {
			for i := 0; i < 100; i++ {
				pulled++
				if !yield(i, nil) {
					return
				}
			}
		}
		_, more, _ := collect(seq, 0, 3)
		if !more || pulled != 4 {
			t.Fatalf("expected 4 pulls, got %d", pulled)
		}
	})

	t.Run("error", func(t *testing.T) {
		boom := errors.New("boom")
		_, _, err := collect(seqErr[int](boom), 0, 0)
		if !errors.Is(err, boom) {
			t.Fatalf("expected boom, got %v", err)
		}
	})

	t.Run("empty is not nil", func(t *testing.T) {
		items, _, _ := collect(seqOf[int](), 0, 0)
		if items == nil {
			t.Fatalf("expected empty slice")
		}
	})
}
