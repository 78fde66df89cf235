package usermanagement

import (
	"context"
	"net/http"
	"net/netip"

	workos "github.com/workos-community/workos-go"
	"github.com/workos-community/workos-go/organizations"
)

// AuthenticateWithCodeParams are the parameters for AuthenticateWithCode.
type AuthenticateWithCodeParams struct {
	// ClientID identifies the application making the request. Required.
	ClientID ClientID `json:"client_id"`

	// ClientSecret authenticates the application making the request.
	ClientSecret ClientSecret `json:"client_secret,omitempty"`

	// CodeVerifier is the random string the PKCE code challenge was derived
	// from. Required when no client secret is present.
	CodeVerifier string `json:"code_verifier,omitempty"`

	// Code is the authorization code passed back as a query parameter in the
	// callback to the redirect URI. Required.
	Code AuthorizationCode `json:"code"`

	// InvitationToken is the token of an invitation, if accepting one.
	InvitationToken InvitationToken `json:"invitation_token,omitempty"`

	// IPAddress is the IP address of the user attempting to authenticate.
	// Validated before the request is sent.
	IPAddress string `json:"ip_address,omitempty"`

	// UserAgent is the user agent of the user attempting to authenticate.
	UserAgent string `json:"user_agent,omitempty"`
}

type authenticateWithCodeBody struct {
	GrantType string `json:"grant_type"`
	AuthenticateWithCodeParams
}

// AuthenticateWithCode authenticates a user with AuthKit, OAuth or an
// organization's SSO connection.
//
// A 400 response carrying error code "invalid_client" or
// "unauthorized_client" surfaces as workos.IsUnauthorized; other structured
// authentication failures surface as operation errors whose payload is an
// AuthenticateError.
func (um *UserManagement) AuthenticateWithCode(ctx context.Context, params *AuthenticateWithCodeParams) (*AuthenticateResponse, error) {
	if err := validateIPAddress(params.IPAddress); err != nil {
		return nil, err
	}
	return um.authenticate(ctx, authenticateWithCodeBody{
		GrantType:                  "authorization_code",
		AuthenticateWithCodeParams: *params,
	})
}

// AuthenticateWithRefreshTokenParams are the parameters for
// AuthenticateWithRefreshToken.
type AuthenticateWithRefreshTokenParams struct {
	// ClientID identifies the application making the request. Required.
	ClientID ClientID `json:"client_id"`

	// RefreshToken was received from a successful authentication response.
	// Required.
	RefreshToken RefreshToken `json:"refresh_token"`

	// OrganizationID is the organization to authorize in the new access
	// token, if any.
	OrganizationID organizations.OrganizationID `json:"organization_id,omitempty"`

	// IPAddress is the IP address of the user attempting to authenticate.
	// Validated before the request is sent.
	IPAddress string `json:"ip_address,omitempty"`

	// UserAgent is the user agent of the user attempting to authenticate.
	UserAgent string `json:"user_agent,omitempty"`
}

type authenticateWithRefreshTokenBody struct {
	ClientSecret workos.APIKey `json:"client_secret"`
	GrantType    string        `json:"grant_type"`
	AuthenticateWithRefreshTokenParams
}

// AuthenticateWithRefreshToken exchanges a refresh token for a new access
// token. The client's API key authenticates the exchange. Error mapping
// matches AuthenticateWithCode.
func (um *UserManagement) AuthenticateWithRefreshToken(ctx context.Context, params *AuthenticateWithRefreshTokenParams) (*AuthenticateResponse, error) {
	if err := validateIPAddress(params.IPAddress); err != nil {
		return nil, err
	}
	return um.authenticate(ctx, authenticateWithRefreshTokenBody{
		ClientSecret:                       um.client.Key(),
		GrantType:                          "refresh_token",
		AuthenticateWithRefreshTokenParams: *params,
	})
}

// authenticate posts a grant to the token endpoint. Credentials travel in
// the body, so no bearer header is attached.
func (um *UserManagement) authenticate(ctx context.Context, body any) (*AuthenticateResponse, error) {
	u, err := um.client.Endpoint("/user_management/authenticate")
	if err != nil {
		return nil, err
	}

	res, err := um.client.Transport().Post(u).JSON(body).Send(ctx)
	if err != nil {
		return nil, workos.NewTransportError(err)
	}

	switch res.Status() {
	case http.StatusBadRequest, http.StatusForbidden:
		var authErr AuthenticateError
		if err := res.JSON(&authErr); err != nil {
			return nil, workos.NewTransportError(err)
		}
		if res.Status() == http.StatusBadRequest &&
			(authErr.Code == "invalid_client" || authErr.Code == "unauthorized_client") {
			return nil, workos.NewUnauthorizedError()
		}
		return nil, workos.NewOperationError(res.Status(), authErr)
	}

	res, err = workos.ClassifyResponse(res)
	if err != nil {
		return nil, err
	}

	var out AuthenticateResponse
	if err := res.JSON(&out); err != nil {
		return nil, workos.NewTransportError(err)
	}
	return &out, nil
}

func validateIPAddress(ip string) error {
	if ip == "" {
		return nil
	}
	if _, err := netip.ParseAddr(ip); err != nil {
		return workos.NewAddrParseError(err)
	}
	return nil
}
