package usermanagement

import (
	"testing"

	workos "github.com/workos-community/workos-go"
)

func defaultClient(t *testing.T) *workos.Client {
	t.Helper()
	c, err := workos.New(workos.Config{APIKey: "sk_example_123456789"})
	if err != nil {
		t.Fatalf("workos.New: %v", err)
	}
	return c
}

func TestGetAuthorizationURL(t *testing.T) {
	u, err := New(defaultClient(t)).GetAuthorizationURL(&GetAuthorizationURLParams{
		ClientID:    "client_123456789",
		RedirectURI: "https://your-app.com/callback",
		Provider:    ProviderAuthKit,
		State:       "abc123",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if u.Host != "api.workos.com" {
		t.Errorf("host = %q", u.Host)
	}
	if u.Path != "/user_management/authorize" {
		t.Errorf("path = %q", u.Path)
	}

	q := u.Query()
	if q.Get("response_type") != "code" {
		t.Errorf("response_type = %q", q.Get("response_type"))
	}
	if q.Get("client_id") != "client_123456789" {
		t.Errorf("client_id = %q", q.Get("client_id"))
	}
	if q.Get("redirect_uri") != "https://your-app.com/callback" {
		t.Errorf("redirect_uri = %q", q.Get("redirect_uri"))
	}
	if q.Get("provider") != "authkit" {
		t.Errorf("provider = %q", q.Get("provider"))
	}
	if q.Get("state") != "abc123" {
		t.Errorf("state = %q", q.Get("state"))
	}
	if q.Has("connection_id") || q.Has("organization_id") {
		t.Errorf("unexpected selector params in %q", u.RawQuery)
	}
}

func TestGetAuthorizationURLWithPKCE(t *testing.T) {
	u, err := New(defaultClient(t)).GetAuthorizationURL(&GetAuthorizationURLParams{
		ClientID:       "client_123456789",
		RedirectURI:    "https://your-app.com/callback",
		OrganizationID: "org_01EHZNVPK3SFK441A1RGBFSHRT",
		CodeChallenge:  "hKpKupTM381pE10yfQiorMxXarRKAHRhTfH_xkGf7U4",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	q := u.Query()
	if q.Get("organization_id") != "org_01EHZNVPK3SFK441A1RGBFSHRT" {
		t.Errorf("organization_id = %q", q.Get("organization_id"))
	}
	if q.Get("code_challenge") != "hKpKupTM381pE10yfQiorMxXarRKAHRhTfH_xkGf7U4" {
		t.Errorf("code_challenge = %q", q.Get("code_challenge"))
	}
	if q.Get("code_challenge_method") != "S256" {
		t.Errorf("code_challenge_method = %q", q.Get("code_challenge_method"))
	}
}

func TestGetJWKSURL(t *testing.T) {
	u, err := New(defaultClient(t)).GetJWKSURL("client_123456789")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := u.String(); got != "https://api.workos.com/sso/jwks/client_123456789" {
		t.Errorf("url = %q", got)
	}
}

func TestGetLogoutURL(t *testing.T) {
	u, err := New(defaultClient(t)).GetLogoutURL(&GetLogoutURLParams{
		SessionID: "session_01HQ34D3ZMXVC2GSMWYAGCSFZP",
		ReturnTo:  "https://your-app.com/signed-out",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if u.Path != "/user_management/sessions/logout" {
		t.Errorf("path = %q", u.Path)
	}
	q := u.Query()
	if q.Get("session_id") != "session_01HQ34D3ZMXVC2GSMWYAGCSFZP" {
		t.Errorf("session_id = %q", q.Get("session_id"))
	}
	if q.Get("return_to") != "https://your-app.com/signed-out" {
		t.Errorf("return_to = %q", q.Get("return_to"))
	}
}
