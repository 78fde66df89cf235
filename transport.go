package workos

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/url"
)

// Single-use guard errors. Both indicate a programming error in the caller,
// not a remote failure, and are returned deterministically on reuse.
var (
	// ErrBuilderConsumed is returned when a request builder is sent twice.
	ErrBuilderConsumed = errors.New("workos: request builder already consumed")
	// ErrResponseConsumed is returned when a response body is read twice.
	ErrResponseConsumed = errors.New("workos: response body already consumed")
)

// HTTPClient is the capability to create request builders against a URL.
// The production implementation wraps net/http; tests substitute their own.
type HTTPClient interface {
	Get(u *url.URL) RequestBuilder
	Post(u *url.URL) RequestBuilder
	Put(u *url.URL) RequestBuilder
	Delete(u *url.URL) RequestBuilder
}

// RequestBuilder assembles a single outbound request.
//
// Builders are single use: Send consumes the builder and a second Send fails
// with ErrBuilderConsumed. Attachment methods return the builder for
// chaining; a failed attachment (e.g. a body that cannot be serialized) is
// deferred and surfaced by Send as a transport error.
type RequestBuilder interface {
	// BearerAuth attaches a bearer Authorization header. Anything with a
	// String method works, including APIKey.
	BearerAuth(token fmt.Stringer) RequestBuilder
	// JSON attaches a JSON-serialized request body.
	JSON(body any) RequestBuilder
	// Query merges values into the request's query string.
	Query(values url.Values) RequestBuilder
	// Form attaches a form-encoded request body.
	Form(fields url.Values) RequestBuilder
	// Header sets a request header.
	Header(key, value string) RequestBuilder
	// Send transmits the request and blocks until the remote responds or the
	// transport fails. The returned error is the raw underlying cause; the
	// classification layer wraps it.
	Send(ctx context.Context) (Response, error)
}

// Response exposes a received HTTP response.
//
// The body is readable at most once, as text or decoded JSON; a second read
// fails with ErrResponseConsumed.
type Response interface {
	// Status returns the HTTP status code.
	Status() int
	// Text drains the body and returns it as a string. Consumes the body.
	Text() (string, error)
	// JSON drains the body and decodes it into target. Consumes the body.
	JSON(target any) error
}

// DiscardResponse releases a response whose body is intentionally left
// unread. Implementations that hold a connection also implement io.Closer;
// discarding anything else is a no-op.
func DiscardResponse(res Response) {
	if c, ok := res.(io.Closer); ok {
		_ = c.Close()
	}
}
