package request

import "context"

// DefaultMaxPages bounds a pagination loop: roughly 10,000 items at the
// API's default page size of 100. A server that never clears has_next
// must not spin the client forever.
const DefaultMaxPages = 100

// Page is one page of a cursor-paginated listing.
type Page[T any] struct {
	// Items are the records on this page, in arrival order.
	Items []T

	// NextCursor is the opaque continuation token for the next page.
	NextCursor string

	// HasNext reports whether another page exists.
	HasNext bool
}

// PageFunc fetches one page. An empty cursor requests the first page.
type PageFunc[T any] func(ctx context.Context, cursor string) (Page[T], error)

// Paginate drains a cursor-paginated listing: it fetches pages starting
// with no cursor, accumulates items in arrival order, and stops when the
// upstream reports no further pages. The loop is capped at
// DefaultMaxPages; use PaginateN for a different cap.
func Paginate[T any](ctx context.Context, fetch PageFunc[T]) ([]T, error) {
	return PaginateN(ctx, DefaultMaxPages, fetch)
}

// PaginateN is Paginate with an explicit page cap. Exceeding the cap
// fails with ErrPaginationExhausted rather than returning a silently
// truncated listing.
func PaginateN[T any](ctx context.Context, maxPages int, fetch PageFunc[T]) ([]T, error) {
	if maxPages <= 0 {
		maxPages = DefaultMaxPages
	}

	var all []T
	cursor := ""
	for page := 0; page < maxPages; page++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		p, err := fetch(ctx, cursor)
		if err != nil {
			return nil, err
		}
		all = append(all, p.Items...)
		if !p.HasNext {
			return all, nil
		}
		cursor = p.NextCursor
	}
	return nil, ErrPaginationExhausted
}
