package sso

import (
	"context"
	"net/http"
	"net/url"

	workos "github.com/workos-community/workos-go"
	"github.com/workos-community/workos-go/organizations"
)

// SSO is a client for the WorkOS Single Sign-On API.
type SSO struct {
	client *workos.Client
}

// New returns an SSO client backed by the given WorkOS client.
func New(client *workos.Client) *SSO {
	return &SSO{client: client}
}

// Provider selects a hosted OAuth provider for the authorization endpoint.
type Provider string

const (
	// ProviderAppleOAuth signs in with Apple.
	ProviderAppleOAuth Provider = "AppleOAuth"
	// ProviderGitHubOAuth signs in with GitHub.
	ProviderGitHubOAuth Provider = "GithubOAuth"
	// ProviderGoogleOAuth signs in with Google.
	ProviderGoogleOAuth Provider = "GoogleOAuth"
	// ProviderMicrosoftOAuth signs in with Microsoft.
	ProviderMicrosoftOAuth Provider = "MicrosoftOAuth"
)

// GetAuthorizationURLParams are the parameters for GetAuthorizationURL.
// Exactly one of ConnectionID, OrganizationID and Provider selects how the
// user signs in.
type GetAuthorizationURLParams struct {
	// ClientID identifies the application the user signs in to. Required.
	ClientID string

	// RedirectURI is where the authorization code is sent. Required.
	RedirectURI string

	// ConnectionID sends the user to a specific connection.
	ConnectionID ConnectionID

	// OrganizationID sends the user to the organization's connection.
	OrganizationID organizations.OrganizationID

	// Provider sends the user to a hosted OAuth provider.
	Provider Provider

	// State is an opaque value passed back to the redirect URI.
	State string

	// LoginHint prefills the identifier field on the provider's sign-in
	// screen.
	LoginHint string

	// DomainHint is passed on to the identity provider.
	DomainHint string
}

// GetAuthorizationURL builds the URL to redirect a user to for single
// sign-on. No request is made.
func (s *SSO) GetAuthorizationURL(params *GetAuthorizationURLParams) (*url.URL, error) {
	u, err := s.client.Endpoint("/sso/authorize")
	if err != nil {
		return nil, err
	}

	q := url.Values{}
	q.Set("response_type", "code")
	q.Set("client_id", params.ClientID)
	q.Set("redirect_uri", params.RedirectURI)
	if params.ConnectionID != "" {
		q.Set("connection", string(params.ConnectionID))
	}
	if params.OrganizationID != "" {
		q.Set("organization", string(params.OrganizationID))
	}
	if params.Provider != "" {
		q.Set("provider", string(params.Provider))
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

	u.RawQuery = q.Encode()
	return u, nil
}

// TokenError is the structured error payload returned by the token
// endpoint.
type TokenError struct {
	// Code is the machine-readable error code, e.g. "invalid_grant".
	Code string `json:"error"`

	// Message describes the error.
	Message string `json:"error_description"`
}

// Error implements the error interface.
func (e TokenError) Error() string {
	return e.Code + ": " + e.Message
}

// GetProfileAndTokenParams are the parameters for GetProfileAndToken.
type GetProfileAndTokenParams struct {
	// ClientID identifies the application making the request. Required.
	ClientID string

	// Code is the authorization code passed back as a query parameter in
	// the callback to the redirect URI. Required.
	Code string
}

// GetProfileAndToken exchanges an authorization code for the user's SSO
// profile. The client's API key authenticates the exchange as the client
// secret.
//
// A 400 response carrying error code "invalid_client" or
// "unauthorized_client" surfaces as workos.IsUnauthorized; other structured
// failures surface as operation errors whose payload is a TokenError.
func (s *SSO) GetProfileAndToken(ctx context.Context, params *GetProfileAndTokenParams) (*ProfileAndToken, error) {
	u, err := s.client.Endpoint("/sso/token")
	if err != nil {
		return nil, err
	}

	form := url.Values{}
	form.Set("client_id", params.ClientID)
	form.Set("client_secret", s.client.Key().String())
	form.Set("grant_type", "authorization_code")
	form.Set("code", params.Code)

	res, err := s.client.Transport().Post(u).Form(form).Send(ctx)
	if err != nil {
		return nil, workos.NewTransportError(err)
	}

	if res.Status() == http.StatusBadRequest {
		var tokenErr TokenError
		if err := res.JSON(&tokenErr); err != nil {
			return nil, workos.NewTransportError(err)
		}
		if tokenErr.Code == "invalid_client" || tokenErr.Code == "unauthorized_client" {
			return nil, workos.NewUnauthorizedError()
		}
		return nil, workos.NewOperationError(res.Status(), tokenErr)
	}

	res, err = workos.ClassifyResponse(res)
	if err != nil {
		return nil, err
	}

	var out ProfileAndToken
	if err := res.JSON(&out); err != nil {
		return nil, workos.NewTransportError(err)
	}
	return &out, nil
}

// GetProfile retrieves the profile authorized by an access token from
// GetProfileAndToken. The access token, not the API key, authenticates the
// request.
func (s *SSO) GetProfile(ctx context.Context, token AccessToken) (*Profile, error) {
	u, err := s.client.Endpoint("/sso/profile")
	if err != nil {
		return nil, err
	}

	res, err := s.client.Transport().Get(u).BearerAuth(token).Send(ctx)
	if err != nil {
		return nil, workos.NewTransportError(err)
	}
	res, err = workos.ClassifyResponse(res)
	if err != nil {
		return nil, err
	}

	var out Profile
	if err := res.JSON(&out); err != nil {
		return nil, workos.NewTransportError(err)
	}
	return &out, nil
}

// GetConnection retrieves a connection by ID.
func (s *SSO) GetConnection(ctx context.Context, id ConnectionID) (*Connection, error) {
	return workos.Get[Connection](ctx, s.client, "/connections/"+url.PathEscape(string(id)), nil)
}

// ListConnectionsParams are the parameters for ListConnections.
type ListConnectionsParams struct {
	// ConnectionType filters to connections of the given type.
	ConnectionType ConnectionType

	// OrganizationID filters to connections of the given organization.
	OrganizationID organizations.OrganizationID

	// Domain filters to connections associated with the given domain.
	Domain string

	// Pagination selects the page to return.
	Pagination workos.PaginationParams
}

// ListConnections lists connections matching the given criteria.
func (s *SSO) ListConnections(ctx context.Context, params *ListConnectionsParams) (*workos.PaginatedList[Connection], error) {
	var p ListConnectionsParams
	if params != nil {
		p = *params
	}

	q := url.Values{}
	if p.ConnectionType != "" {
		q.Set("connection_type", string(p.ConnectionType))
	}
	if p.OrganizationID != "" {
		q.Set("organization_id", string(p.OrganizationID))
	}
	if p.Domain != "" {
		q.Set("domain", p.Domain)
	}
	p.Pagination.SetQuery(q)

	return workos.Get[workos.PaginatedList[Connection]](ctx, s.client, "/connections", q)
}

// DeleteConnection deletes a connection.
func (s *SSO) DeleteConnection(ctx context.Context, id ConnectionID) error {
	return workos.Delete(ctx, s.client, "/connections/"+url.PathEscape(string(id)))
}
