package usermanagement

import (
	"net/url"

	"github.com/workos-community/workos-go/organizations"
)

// Provider selects a hosted OAuth provider for the authorization endpoint.
type Provider string

const (
	// ProviderAuthKit sends the user to hosted AuthKit.
	ProviderAuthKit Provider = "authkit"
	// ProviderAppleOAuth signs in with Apple.
	ProviderAppleOAuth Provider = "AppleOAuth"
	// ProviderGitHubOAuth signs in with GitHub.
	ProviderGitHubOAuth Provider = "GithubOAuth"
	// ProviderGoogleOAuth signs in with Google.
	ProviderGoogleOAuth Provider = "GoogleOAuth"
	// ProviderMicrosoftOAuth signs in with Microsoft.
	ProviderMicrosoftOAuth Provider = "MicrosoftOAuth"
)

// ScreenHint suggests which AuthKit screen to land on.
type ScreenHint string

const (
	// ScreenHintSignIn lands on the sign-in screen.
	ScreenHintSignIn ScreenHint = "sign-in"
	// ScreenHintSignUp lands on the sign-up screen.
	ScreenHintSignUp ScreenHint = "sign-up"
)

// GetAuthorizationURLParams are the parameters for GetAuthorizationURL.
// Exactly one of Provider, ConnectionID and OrganizationID selects how the
// user signs in.
type GetAuthorizationURLParams struct {
	// ClientID identifies the application the user signs in to. Required.
	ClientID ClientID

	// RedirectURI is where the authorization code is sent. Required.
	RedirectURI string

	// Provider sends the user to a hosted provider.
	Provider Provider

	// ConnectionID sends the user to a specific SSO connection.
	ConnectionID string

	// OrganizationID sends the user to the organization's SSO connection.
	OrganizationID organizations.OrganizationID

	// State is an opaque value passed back to the redirect URI.
	State string

	// LoginHint prefills the identifier field on the sign-in screen.
	LoginHint string

	// DomainHint is passed on to the identity provider.
	DomainHint string

	// ScreenHint suggests which AuthKit screen to land on.
	ScreenHint ScreenHint

	// CodeChallenge is the PKCE code challenge, if using the PKCE flow.
	// Sent with code_challenge_method=S256.
	CodeChallenge string
}

// GetAuthorizationURL builds the URL to redirect a user to for
// authentication. No request is made.
func (um *UserManagement) GetAuthorizationURL(params *GetAuthorizationURLParams) (*url.URL, error) {
	u, err := um.client.Endpoint("/user_management/authorize")
	if err != nil {
		return nil, err
	}

	q := url.Values{}
	q.Set("response_type", "code")
	q.Set("client_id", string(params.ClientID))
	q.Set("redirect_uri", params.RedirectURI)
	if params.Provider != "" {
		q.Set("provider", string(params.Provider))
	}
	if params.ConnectionID != "" {
		q.Set("connection_id", params.ConnectionID)
	}
	if params.OrganizationID != "" {
		q.Set("organization_id", string(params.OrganizationID))
	}
	if params.State != "" {
		q.Set("state", params.State)
	}
	if params.LoginHint != "" {
		q.Set("login_hint", params.LoginHint)
	}
	if params.DomainHint != "" {
		q.Set("domain_hint", params.DomainHint)
	}
	if params.ScreenHint != "" {
		q.Set("screen_hint", string(params.ScreenHint))
	}
	if params.CodeChallenge != "" {
		q.Set("code_challenge", params.CodeChallenge)
		q.Set("code_challenge_method", "S256")
	}

	u.RawQuery = q.Encode()
	return u, nil
}

// GetJWKSURL builds the URL of the JSON Web Key Set used to verify access
// tokens issued to the given application. No request is made.
func (um *UserManagement) GetJWKSURL(clientID ClientID) (*url.URL, error) {
	return um.client.Endpoint("/sso/jwks/" + url.PathEscape(string(clientID)))
}

// GetLogoutURLParams are the parameters for GetLogoutURL.
type GetLogoutURLParams struct {
	// SessionID is the session to end. Required.
	SessionID SessionID

	// ReturnTo is where the user is sent after the session ends.
	ReturnTo string
}

// GetLogoutURL builds the URL to redirect a user to to end their session.
// No request is made.
func (um *UserManagement) GetLogoutURL(params *GetLogoutURLParams) (*url.URL, error) {
	u, err := um.client.Endpoint("/user_management/sessions/logout")
	if err != nil {
		return nil, err
	}

	q := url.Values{}
	q.Set("session_id", string(params.SessionID))
	if params.ReturnTo != "" {
		q.Set("return_to", params.ReturnTo)
	}

	u.RawQuery = q.Encode()
	return u, nil
}
