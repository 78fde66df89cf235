package events

import (
	"context"
	"net/url"
	"strconv"
	"time"

	workos "github.com/workos-community/workos-go"
	"github.com/workos-community/workos-go/organizations"
)

// Events is a client for the WorkOS Events API.
type Events struct {
	client *workos.Client
}

// New returns an Events client backed by the given WorkOS client.
func New(client *workos.Client) *Events {
	return &Events{client: client}
}

// ListEventsParams are the parameters for ListEvents.
type ListEventsParams struct {
	// Events filters to the named events. Required; the API rejects an
	// unfiltered listing.
	Events []EventName

	// OrganizationID filters to events affecting the given organization.
	OrganizationID organizations.OrganizationID

	// RangeStart filters to events that occurred at or after this time.
	RangeStart *time.Time

	// RangeEnd filters to events that occurred before this time.
	RangeEnd *time.Time

	// After is the cursor returned with the previous page.
	After string

	// Limit is the maximum number of events to return (1-100). Zero leaves
	// the API default of 10.
	Limit int
}

// ListEvents lists events matching the given criteria, oldest first.
func (e *Events) ListEvents(ctx context.Context, params *ListEventsParams) (*workos.PaginatedList[Event], error) {
	q := url.Values{}
	for _, name := range params.Events {
		q.Add("events[]", string(name))
	}
	if params.OrganizationID != "" {
		q.Set("organization_id", string(params.OrganizationID))
	}
	if params.RangeStart != nil {
		q.Set("range_start", params.RangeStart.UTC().Format(time.RFC3339))
	}
	if params.RangeEnd != nil {
		q.Set("range_end", params.RangeEnd.UTC().Format(time.RFC3339))
	}
	if params.After != "" {
		q.Set("after", params.After)
	}
	if params.Limit > 0 {
		q.Set("limit", strconv.Itoa(params.Limit))
	}

	return workos.Get[workos.PaginatedList[Event]](ctx, e.client, "/events", q)
}
