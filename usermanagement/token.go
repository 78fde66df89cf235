package usermanagement

import (
	"fmt"

	"github.com/golang-jwt/jwt/v5"

	"github.com/workos-community/workos-go/organizations"
)

// AccessTokenClaims are the claims carried by a WorkOS access token.
type AccessTokenClaims struct {
	// SessionID is the session the token belongs to.
	SessionID SessionID `json:"sid"`

	// OrganizationID is the organization authorized in the token, if any.
	OrganizationID organizations.OrganizationID `json:"org_id,omitempty"`

	// Role is the user's role in that organization, if any.
	Role string `json:"role,omitempty"`

	// Permissions are the permissions granted by the role.
	Permissions []string `json:"permissions,omitempty"`

	jwt.RegisteredClaims
}

// ParseAccessTokenClaims decodes the claims of an access token WITHOUT
// verifying its signature. Use VerifyAccessToken when the token comes from
// an untrusted source.
func ParseAccessTokenClaims(token AccessToken) (*AccessTokenClaims, error) {
	var claims AccessTokenClaims
	if _, _, err := jwt.NewParser().ParseUnverified(string(token), &claims); err != nil {
		return nil, fmt.Errorf("parse access token: %w", err)
	}
	return &claims, nil
}

// VerifyAccessToken parses an access token and verifies its signature with
// the given key lookup. The keyfunc typically resolves keys from the JWKS
// endpoint, see GetJWKSURL.
func VerifyAccessToken(token AccessToken, keyFunc jwt.Keyfunc) (*AccessTokenClaims, error) {
	var claims AccessTokenClaims
	parsed, err := jwt.ParseWithClaims(string(token), &claims, keyFunc)
	if err != nil {
		return nil, fmt.Errorf("verify access token: %w", err)
	}
	if !parsed.Valid {
		return nil, fmt.Errorf("access token is not valid")
	}
	return &claims, nil
}
