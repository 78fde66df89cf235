package workos

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const spanName = "workos.http.request"

// netTransport is the production HTTPClient over net/http.
type netTransport struct {
	client *http.Client
	log    zerolog.Logger
	tracer trace.Tracer
}

func newNetTransport(client *http.Client, log zerolog.Logger, tracer trace.Tracer) *netTransport {
	return &netTransport{client: client, log: log, tracer: tracer}
}

func (t *netTransport) Get(u *url.URL) RequestBuilder {
	return t.builder(http.MethodGet, u)
}

func (t *netTransport) Post(u *url.URL) RequestBuilder {
	return t.builder(http.MethodPost, u)
}

func (t *netTransport) Put(u *url.URL) RequestBuilder {
	return t.builder(http.MethodPut, u)
}

func (t *netTransport) Delete(u *url.URL) RequestBuilder {
	return t.builder(http.MethodDelete, u)
}

func (t *netTransport) builder(method string, u *url.URL) RequestBuilder {
	return &netRequestBuilder{
		transport: t,
		method:    method,
		url:       u,
		headers:   make(http.Header),
		query:     make(url.Values),
	}
}

type netRequestBuilder struct {
	transport *netTransport
	method    string
	url       *url.URL
	headers   http.Header
	query     url.Values
	body      []byte
	sent      bool
	// err defers attachment failures (e.g. JSON marshal) until Send.
	err error
}

func (b *netRequestBuilder) BearerAuth(token fmt.Stringer) RequestBuilder {
	b.headers.Set("Authorization", "Bearer "+token.String())
	return b
}

func (b *netRequestBuilder) JSON(body any) RequestBuilder {
	data, err := json.Marshal(body)
	if err != nil {
		b.err = fmt.Errorf("encode request body: %w", err)
		return b
	}
	b.body = data
	b.headers.Set("Content-Type", "application/json")
	return b
}

func (b *netRequestBuilder) Form(fields url.Values) RequestBuilder {
	b.body = []byte(fields.Encode())
	b.headers.Set("Content-Type", "application/x-www-form-urlencoded")
	return b
}

func (b *netRequestBuilder) Query(values url.Values) RequestBuilder {
	for k, vs := range values {
		for _, v := range vs {
			b.query.Add(k, v)
		}
	}
	return b
}

func (b *netRequestBuilder) Header(key, value string) RequestBuilder {
	b.headers.Set(key, value)
	return b
}

func (b *netRequestBuilder) Send(ctx context.Context) (Response, error) {
	if b.sent {
		return nil, ErrBuilderConsumed
	}
	b.sent = true
	if b.err != nil {
		return nil, b.err
	}

	target := *b.url
	if len(b.query) > 0 {
		q := target.Query()
		for k, vs := range b.query {
			for _, v := range vs {
				q.Add(k, v)
			}
		}
		target.RawQuery = q.Encode()
	}

	var body io.Reader
	if b.body != nil {
		body = bytes.NewReader(b.body)
	}

	req, err := http.NewRequestWithContext(ctx, b.method, target.String(), body)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	for k, vs := range b.headers {
		for _, v := range vs {
			req.Header.Set(k, v)
		}
	}

	t := b.transport

	var span trace.Span
	if t.tracer != nil {
		ctx, span = t.tracer.Start(ctx, spanName,
			trace.WithSpanKind(trace.SpanKindClient),
			trace.WithAttributes(
				attribute.String("http.method", b.method),
				attribute.String("url.path", target.Path),
			),
		)
		defer span.End()
		req = req.WithContext(ctx)
	}

	start := time.Now()
	res, err := t.client.Do(req)
	elapsed := time.Since(start)

	if err != nil {
		if span != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, "transport failure")
		}
		t.log.Debug().
			Str("method", b.method).
			Str("path", target.Path).
			Dur("duration", elapsed).
			Err(err).
			Msg("workos request failed")
		return nil, err
	}

	if span != nil {
		span.SetAttributes(attribute.Int("http.status_code", res.StatusCode))
		if res.StatusCode >= 400 {
			span.SetStatus(codes.Error, res.Status)
		}
	}
	t.log.Debug().
		Str("method", b.method).
		Str("path", target.Path).
		Int("status", res.StatusCode).
		Dur("duration", elapsed).
		Msg("workos request")

	return &netResponse{res: res}, nil
}

type netResponse struct {
	res      *http.Response
	consumed bool
}

func (r *netResponse) Status() int {
	return r.res.StatusCode
}

func (r *netResponse) Text() (string, error) {
	data, err := r.drain()
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func (r *netResponse) JSON(target any) error {
	data, err := r.drain()
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, target); err != nil {
		return fmt.Errorf("decode response body: %w", err)
	}
	return nil
}

// Close releases the connection when the body is intentionally left unread.
// The body is drained first so the connection can be reused. Reading the
// body already closes it, so Close after a read is a no-op.
func (r *netResponse) Close() error {
	if r.consumed {
		return nil
	}
	r.consumed = true
	_, _ = io.Copy(io.Discard, r.res.Body)
	return r.res.Body.Close()
}

func (r *netResponse) drain() ([]byte, error) {
	if r.consumed {
		return nil, ErrResponseConsumed
	}
	r.consumed = true
	defer func() { _ = r.res.Body.Close() }()

	data, err := io.ReadAll(r.res.Body)
	if err != nil {
		return nil, fmt.Errorf("read response body: %w", err)
	}
	return data, nil
}
