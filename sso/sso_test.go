package sso

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	workos "github.com/workos-community/workos-go"
)

func testClient(t *testing.T, baseURL string) *workos.Client {
	t.Helper()
	c, err := workos.New(workos.Config{
		APIKey:  "sk_example_123456789",
		BaseURL: baseURL,
	})
	if err != nil {
		t.Fatalf("workos.New: %v", err)
	}
	return c
}

func TestGetAuthorizationURL(t *testing.T) {
	c, err := workos.New(workos.Config{APIKey: "sk_example_123456789"})
	if err != nil {
		t.Fatalf("workos.New: %v", err)
	}

	u, err := New(c).GetAuthorizationURL(&GetAuthorizationURLParams{
		ClientID:     "client_123456789",
		RedirectURI:  "https://your-app.com/callback",
		ConnectionID: "conn_01E4ZCR3C56J083X43JQXF3JK5",
		State:        "abc123",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if u.Path != "/sso/authorize" {
		t.Errorf("path = %q", u.Path)
	}
	q := u.Query()
	if q.Get("response_type") != "code" {
		t.Errorf("response_type = %q", q.Get("response_type"))
	}
	if q.Get("connection") != "conn_01E4ZCR3C56J083X43JQXF3JK5" {
		t.Errorf("connection = %q", q.Get("connection"))
	}
	if q.Has("organization") || q.Has("provider") {
		t.Errorf("unexpected selector params in %q", u.RawQuery)
	}
}

func TestGetProfileAndToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/sso/token" {
			t.Errorf("unexpected %s %s", r.Method, r.URL.Path)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/x-www-form-urlencoded" {
			t.Errorf("Content-Type = %q", ct)
		}
		r.ParseForm()
		if r.PostForm.Get("grant_type") != "authorization_code" {
			t.Errorf("grant_type = %q", r.PostForm.Get("grant_type"))
		}
		if r.PostForm.Get("client_secret") != "sk_example_123456789" {
			t.Errorf("client_secret = %q", r.PostForm.Get("client_secret"))
		}
		if r.PostForm.Get("code") != "01E2RJ4C05B52KKZ8FSRDAP23J" {
			t.Errorf("code = %q", r.PostForm.Get("code"))
		}

		w.Write([]byte(`{
			"access_token": "01DMEK0J53CVMC32CK5SE0KZ8Q",
			"profile": {
				"object": "profile",
				"id": "prof_01DMC79VCBZ0NY2099737PSVF1",
				"connection_id": "conn_01E4ZCR3C56J083X43JQXF3JK5",
				"connection_type": "OktaSAML",
				"organization_id": "org_01EHWNCE74X7JSDV0X3SZ3KJNY",
				"email": "alan.turing@example.com",
				"first_name": "Alan",
				"last_name": "Turing",
				"idp_id": "00u1a0ufowBJlzPlk357",
				"raw_attributes": {"department": "Engineering"}
			}
		}`))
	}))
	defer srv.Close()

	pt, err := New(testClient(t, srv.URL)).GetProfileAndToken(context.Background(), &GetProfileAndTokenParams{
		ClientID: "client_123456789",
		Code:     "01E2RJ4C05B52KKZ8FSRDAP23J",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if pt.AccessToken != "01DMEK0J53CVMC32CK5SE0KZ8Q" {
		t.Errorf("access_token = %q", pt.AccessToken)
	}
	if pt.Profile.ConnectionType != ConnectionTypeOktaSAML {
		t.Errorf("connection_type = %q", pt.Profile.ConnectionType)
	}
	if pt.Profile.RawAttributes["department"] != "Engineering" {
		t.Errorf("raw_attributes = %v", pt.Profile.RawAttributes)
	}
}

func TestGetProfileAndTokenInvalidClient(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(400)
		w.Write([]byte(`{"error":"invalid_client","error_description":"Invalid client ID."}`))
	}))
	defer srv.Close()

	_, err := New(testClient(t, srv.URL)).GetProfileAndToken(context.Background(), &GetProfileAndTokenParams{
		ClientID: "client_123456789",
		Code:     "expired",
	})
	if !workos.IsUnauthorized(err) {
		t.Fatalf("expected unauthorized, got %v", err)
	}
}

func TestGetProfileAndTokenGrantError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(400)
		w.Write([]byte(`{"error":"invalid_grant","error_description":"The code has expired."}`))
	}))
	defer srv.Close()

	_, err := New(testClient(t, srv.URL)).GetProfileAndToken(context.Background(), &GetProfileAndTokenParams{
		ClientID: "client_123456789",
		Code:     "expired",
	})
	if !workos.IsOperationError(err) {
		t.Fatalf("expected operation error, got %v", err)
	}
	tokenErr, ok := workos.OperationPayload[TokenError](err)
	if !ok || tokenErr.Code != "invalid_grant" {
		t.Errorf("payload = %+v, ok = %v", tokenErr, ok)
	}
}

func TestGetProfile(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/sso/profile" {
			t.Errorf("path = %q", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer 01DMEK0J53CVMC32CK5SE0KZ8Q" {
			t.Errorf("Authorization = %q, want the access token", got)
		}
		w.Write([]byte(`{
			"object": "profile",
			"id": "prof_01DMC79VCBZ0NY2099737PSVF1",
			"connection_id": "conn_01E4ZCR3C56J083X43JQXF3JK5",
			"connection_type": "OktaSAML",
			"email": "alan.turing@example.com",
			"idp_id": "00u1a0ufowBJlzPlk357"
		}`))
	}))
	defer srv.Close()

	profile, err := New(testClient(t, srv.URL)).GetProfile(context.Background(), "01DMEK0J53CVMC32CK5SE0KZ8Q")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if profile.Email != "alan.turing@example.com" {
		t.Errorf("email = %q", profile.Email)
	}
}

func TestGetConnection(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/connections/conn_01E4ZCR3C56J083X43JQXF3JK5" {
			t.Errorf("path = %q", r.URL.Path)
		}
		w.Write([]byte(`{
			"object": "connection",
			"id": "conn_01E4ZCR3C56J083X43JQXF3JK5",
			"organization_id": "org_01EHWNCE74X7JSDV0X3SZ3KJNY",
			"connection_type": "GoogleOAuth",
			"name": "Foo Corp",
			"state": "active",
			"created_at": "2021-06-25T19:07:33.155Z",
			"updated_at": "2021-06-25T19:07:33.155Z"
		}`))
	}))
	defer srv.Close()

	conn, err := New(testClient(t, srv.URL)).GetConnection(context.Background(), "conn_01E4ZCR3C56J083X43JQXF3JK5")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if conn.Type != ConnectionTypeGoogleOAuth {
		t.Errorf("type = %q", conn.Type)
	}
	if conn.State != ConnectionStateActive {
		t.Errorf("state = %q", conn.State)
	}
}

func TestGetConnectionUnknownType(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{
			"id": "conn_01E4ZCR3C56J083X43JQXF3JK5",
			"connection_type": "UnknownType",
			"name": "Foo Corp",
			"state": "active",
			"created_at": "2021-06-25T19:07:33.155Z",
			"updated_at": "2021-06-25T19:07:33.155Z"
		}`))
	}))
	defer srv.Close()

	conn, err := New(testClient(t, srv.URL)).GetConnection(context.Background(), "conn_01E4ZCR3C56J083X43JQXF3JK5")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if conn.Type != "UnknownType" {
		t.Errorf("type = %q, want raw passthrough", conn.Type)
	}
}

func TestListConnections(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if q.Get("connection_type") != "OktaSAML" {
			t.Errorf("connection_type = %q", q.Get("connection_type"))
		}
		if q.Get("order") != "desc" {
			t.Errorf("order = %q", q.Get("order"))
		}
		w.Write([]byte(`{"data": [], "list_metadata": {"before": null, "after": null}}`))
	}))
	defer srv.Close()

	_, err := New(testClient(t, srv.URL)).ListConnections(context.Background(), &ListConnectionsParams{
		ConnectionType: ConnectionTypeOktaSAML,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestDeleteConnection(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodDelete || r.URL.Path != "/connections/conn_01E4ZCR3C56J083X43JQXF3JK5" {
			t.Errorf("unexpected %s %s", r.Method, r.URL.Path)
		}
		w.WriteHeader(204)
	}))
	defer srv.Close()

	if err := New(testClient(t, srv.URL)).DeleteConnection(context.Background(), "conn_01E4ZCR3C56J083X43JQXF3JK5"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
