package workos

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func testTransport() *netTransport {
	return newNetTransport(&http.Client{}, zerolog.Nop(), nil)
}

func mustParse(t *testing.T, raw string) *url.URL {
	t.Helper()
	u, err := url.Parse(raw)
	if err != nil {
		t.Fatalf("parse %q: %v", raw, err)
	}
	return u
}

func TestNetTransport_GET(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			t.Errorf("expected GET, got %s", r.Method)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer sk_example_123456789" {
			t.Errorf("Authorization = %q", got)
		}
		if got := r.URL.Query().Get("order"); got != "desc" {
			t.Errorf("order = %q, want desc", got)
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"id": "org_123"})
	}))
	defer srv.Close()

	q := url.Values{}
	q.Set("order", "desc")

	res, err := testTransport().
		Get(mustParse(t, srv.URL+"/organizations")).
		BearerAuth(APIKey("sk_example_123456789")).
		Query(q).
		Send(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Status() != 200 {
		t.Errorf("status = %d, want 200", res.Status())
	}

	var out map[string]string
	if err := res.JSON(&out); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if out["id"] != "org_123" {
		t.Errorf("id = %q, want org_123", out["id"])
	}
}

func TestNetTransport_POST_JSONBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("Content-Type = %q", ct)
		}
		var body map[string]string
		json.NewDecoder(r.Body).Decode(&body)
		if body["name"] != "Foo Corp" {
			t.Errorf("name = %q, want Foo Corp", body["name"])
		}
		w.WriteHeader(201)
	}))
	defer srv.Close()

	res, err := testTransport().
		Post(mustParse(t, srv.URL)).
		JSON(map[string]string{"name": "Foo Corp"}).
		Send(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Status() != 201 {
		t.Errorf("status = %d, want 201", res.Status())
	}
}

func TestNetTransport_FormBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if ct := r.Header.Get("Content-Type"); ct != "application/x-www-form-urlencoded" {
			t.Errorf("Content-Type = %q", ct)
		}
		r.ParseForm()
		if got := r.PostForm.Get("grant_type"); got != "authorization_code" {
			t.Errorf("grant_type = %q", got)
		}
		w.WriteHeader(200)
	}))
	defer srv.Close()

	fields := url.Values{}
	fields.Set("grant_type", "authorization_code")

	_, err := testTransport().
		Post(mustParse(t, srv.URL)).
		Form(fields).
		Send(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestNetTransport_BuilderSingleUse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(200)
	}))
	defer srv.Close()

	b := testTransport().Get(mustParse(t, srv.URL))
	if _, err := b.Send(context.Background()); err != nil {
		t.Fatalf("first send: %v", err)
	}
	if _, err := b.Send(context.Background()); !errors.Is(err, ErrBuilderConsumed) {
		t.Errorf("second send: got %v, want ErrBuilderConsumed", err)
	}
}

func TestNetTransport_ResponseSingleRead(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"id":"org_123"}`))
	}))
	defer srv.Close()

	res, err := testTransport().Get(mustParse(t, srv.URL)).Send(context.Background())
	if err != nil {
		t.Fatalf("send: %v", err)
	}
	if _, err := res.Text(); err != nil {
		t.Fatalf("first read: %v", err)
	}

	if _, err := res.Text(); !errors.Is(err, ErrResponseConsumed) {
		t.Errorf("second Text: got %v, want ErrResponseConsumed", err)
	}
	var out map[string]string
	if err := res.JSON(&out); !errors.Is(err, ErrResponseConsumed) {
		t.Errorf("JSON after Text: got %v, want ErrResponseConsumed", err)
	}
}

func TestNetTransport_BodyMarshalFailureSurfacesOnSend(t *testing.T) {
	_, err := testTransport().
		Post(mustParse(t, "http://localhost:0")).
		JSON(make(chan int)).
		Send(context.Background())
	if err == nil {
		t.Fatal("expected an error for an unserializable body")
	}
}

func TestNetTransport_ConnectionRefused(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	target := srv.URL
	srv.Close()

	_, err := testTransport().Get(mustParse(t, target)).Send(context.Background())
	if err == nil {
		t.Fatal("expected a transport failure against a closed server")
	}
}

func TestNetTransport_ContextCancellation(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := testTransport().Get(mustParse(t, srv.URL)).Send(ctx)
	if err == nil {
		t.Fatal("expected an error for a cancelled context")
	}
}

func TestNetTransport_Tracing(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(200)
	}))
	defer srv.Close()

	recorder := tracetest.NewSpanRecorder()
	provider := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	tracer := provider.Tracer("test")

	transport := newNetTransport(&http.Client{}, zerolog.Nop(), tracer)
	if _, err := transport.Get(mustParse(t, srv.URL+"/organizations")).Send(context.Background()); err != nil {
		t.Fatalf("send: %v", err)
	}

	spans := recorder.Ended()
	if len(spans) != 1 {
		t.Fatalf("expected 1 span, got %d", len(spans))
	}
	if got := spans[0].Name(); got != spanName {
		t.Errorf("span name = %q, want %q", got, spanName)
	}

	foundStatus := false
	for _, attr := range spans[0].Attributes() {
		if string(attr.Key) == "http.status_code" && attr.Value.AsInt64() == 200 {
			foundStatus = true
		}
	}
	if !foundStatus {
		t.Error("span missing http.status_code=200 attribute")
	}
}

// closeTrackingBody records whether the response body was closed.
type closeTrackingBody struct {
	io.Reader
	closed bool
}

func (b *closeTrackingBody) Close() error {
	b.closed = true
	return nil
}

// cannedRoundTripper serves a fixed response without a network.
type cannedRoundTripper struct {
	status int
	body   *closeTrackingBody
}

func (rt *cannedRoundTripper) RoundTrip(*http.Request) (*http.Response, error) {
	return &http.Response{
		StatusCode: rt.status,
		Header:     make(http.Header),
		Body:       rt.body,
	}, nil
}

func TestClassifyResponse_UnauthorizedReleasesBody(t *testing.T) {
	body := &closeTrackingBody{Reader: strings.NewReader(`{"message":"nope"}`)}
	transport := newNetTransport(
		&http.Client{Transport: &cannedRoundTripper{status: http.StatusUnauthorized, body: body}},
		zerolog.Nop(), nil,
	)

	res, err := transport.Get(mustParse(t, "https://api.example.com/organizations")).Send(context.Background())
	if err != nil {
		t.Fatalf("send: %v", err)
	}
	if _, err := ClassifyResponse(res); !IsUnauthorized(err) {
		t.Fatalf("expected an unauthorized error, got %v", err)
	}
	if !body.closed {
		t.Error("unread body of a 401 response was not closed")
	}
}
