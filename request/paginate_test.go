package request

import (
	"context"
	"errors"
	"reflect"
	"testing"
)

func TestPaginate_AccumulatesInOrder(t *testing.T) {
	pages := []Page[int]{
		{Items: []int{1, 2}, NextCursor: "a", HasNext: true},
		{Items: []int{3}, HasNext: false},
	}

	fetches := 0
	var cursors []string
	got, err := Paginate(context.Background(), func(_ context.Context, cursor string) (Page[int], error) {
		cursors = append(cursors, cursor)
		p := pages[fetches]
		fetches++
		return p, nil
	})

	if err != nil {
		t.Fatalf("Paginate() error = %v", err)
	}
	if !reflect.DeepEqual(got, []int{1, 2, 3}) {
		t.Errorf("Paginate() = %v, want [1 2 3]", got)
	}
	if fetches != 2 {
		t.Errorf("fetches = %d, want 2", fetches)
	}
	if !reflect.DeepEqual(cursors, []string{"", "a"}) {
		t.Errorf("cursors = %v, want [\"\" \"a\"]", cursors)
	}
}

func TestPaginateN_ExhaustsCap(t *testing.T) {
	fetches := 0
	_, err := PaginateN(context.Background(), 5, func(_ context.Context, cursor string) (Page[int], error) {
		fetches++
		// Upstream never clears has_next.
		return Page[int]{Items: []int{fetches}, NextCursor: "more", HasNext: true}, nil
	})

	if !errors.Is(err, ErrPaginationExhausted) {
		t.Fatalf("PaginateN() error = %v, want ErrPaginationExhausted", err)
	}
	if fetches != 5 {
		t.Errorf("fetches = %d, want 5", fetches)
	}
}

func TestPaginate_PropagatesFetchError(t *testing.T) {
	boom := errors.New("boom")
	_, err := Paginate(context.Background(), func(context.Context, string) (Page[int], error) {
		return Page[int]{}, boom
	})
	if !errors.Is(err, boom) {
		t.Errorf("Paginate() error = %v, want boom", err)
	}
}

func TestPaginate_HonorsContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Paginate(ctx, func(context.Context, string) (Page[int], error) {
		t.Fatal("fetch called after cancellation")
		return Page[int]{}, nil
	})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Paginate() error = %v, want context.Canceled", err)
	}
}
