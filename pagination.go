package workos

import (
	"net/url"
	"strconv"
)

// Order is the sort order of a paginated listing.
type Order string

const (
	// OrderAsc sorts oldest first.
	OrderAsc Order = "asc"
	// OrderDesc sorts newest first. This is the API default.
	OrderDesc Order = "desc"
)

// PaginationParams are the cursor-pagination parameters shared by all list
// operations.
type PaginationParams struct {
	// Order is the sort order. Defaults to descending.
	Order Order

	// Before is an object ID; only objects created before it are returned.
	Before string

	// After is an object ID; only objects created after it are returned.
	After string

	// Limit is the maximum number of records to return (1-100).
	// Zero leaves the API default of 10.
	Limit int
}

// SetQuery encodes the pagination parameters onto a query string.
func (p PaginationParams) SetQuery(q url.Values) {
	order := p.Order
	if order == "" {
		order = OrderDesc
	}
	q.Set("order", string(order))

	if p.Before != "" {
		q.Set("before", p.Before)
	}
	if p.After != "" {
		q.Set("after", p.After)
	}
	if p.Limit > 0 {
		q.Set("limit", strconv.Itoa(p.Limit))
	}
}

// ListMetadata holds the pagination cursors returned alongside a page.
type ListMetadata struct {
	// Before is the cursor for the previous page, if any.
	Before string `json:"before"`

	// After is the cursor for the next page, if any.
	After string `json:"after"`
}

// PaginatedList is a single page of results.
type PaginatedList[T any] struct {
	// Data is the page of records.
	Data []T `json:"data"`

	// ListMetadata holds the cursors for adjacent pages.
	ListMetadata ListMetadata `json:"list_metadata"`
}
