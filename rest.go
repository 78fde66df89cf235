package workos

import (
	"context"
	"net/url"

	"github.com/google/uuid"
)

// CallOption configures a single API call.
type CallOption func(RequestBuilder) RequestBuilder

// WithIdempotencyKey attaches an Idempotency-Key header to a mutating call so
// the API deduplicates retried submissions of the same logical request.
func WithIdempotencyKey(key string) CallOption {
	return func(b RequestBuilder) RequestBuilder {
		return b.Header("Idempotency-Key", key)
	}
}

// WithHeader sets an extra request header on a single call.
func WithHeader(key, value string) CallOption {
	return func(b RequestBuilder) RequestBuilder {
		return b.Header(key, value)
	}
}

// NewIdempotencyKey generates a fresh idempotency key.
func NewIdempotencyKey() string {
	return uuid.NewString()
}

// Get performs an authenticated GET and decodes the JSON response into T.
func Get[T any](ctx context.Context, c *Client, path string, query url.Values, opts ...CallOption) (*T, error) {
	u, err := c.Endpoint(path)
	if err != nil {
		return nil, err
	}
	req := c.transport.Get(u).BearerAuth(c.apiKey)
	if len(query) > 0 {
		req = req.Query(query)
	}
	return send[T](ctx, req, opts)
}

// Post performs an authenticated POST with a JSON body and decodes the JSON
// response into T. A nil body sends no payload.
func Post[T any](ctx context.Context, c *Client, path string, body any, opts ...CallOption) (*T, error) {
	u, err := c.Endpoint(path)
	if err != nil {
		return nil, err
	}
	req := c.transport.Post(u).BearerAuth(c.apiKey)
	if body != nil {
		req = req.JSON(body)
	}
	return send[T](ctx, req, opts)
}

// Put performs an authenticated PUT with a JSON body and decodes the JSON
// response into T. A nil body sends no payload.
func Put[T any](ctx context.Context, c *Client, path string, body any, opts ...CallOption) (*T, error) {
	u, err := c.Endpoint(path)
	if err != nil {
		return nil, err
	}
	req := c.transport.Put(u).BearerAuth(c.apiKey)
	if body != nil {
		req = req.JSON(body)
	}
	return send[T](ctx, req, opts)
}

// Delete performs an authenticated DELETE. The response body is discarded;
// WorkOS delete endpoints return no content.
func Delete(ctx context.Context, c *Client, path string, opts ...CallOption) error {
	u, err := c.Endpoint(path)
	if err != nil {
		return err
	}
	req := c.transport.Delete(u).BearerAuth(c.apiKey)
	for _, opt := range opts {
		req = opt(req)
	}
	res, err := req.Send(ctx)
	if err != nil {
		return NewTransportError(err)
	}
	res, err = ClassifyResponse(res)
	if err != nil {
		return err
	}
	DiscardResponse(res)
	return nil
}

func send[T any](ctx context.Context, req RequestBuilder, opts []CallOption) (*T, error) {
	for _, opt := range opts {
		req = opt(req)
	}
	res, err := req.Send(ctx)
	if err != nil {
		return nil, NewTransportError(err)
	}
	res, err = ClassifyResponse(res)
	if err != nil {
		return nil, err
	}
	var out T
	if err := res.JSON(&out); err != nil {
		return nil, NewTransportError(err)
	}
	return &out, nil
}
