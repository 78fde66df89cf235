package sso

import (
	workos "github.com/workos-community/workos-go"
	"github.com/workos-community/workos-go/organizations"
)

// ConnectionID is the unique ID of a Connection.
type ConnectionID string

// String returns the raw ID.
func (id ConnectionID) String() string { return string(id) }

// ConnectionType is the identity-provider protocol of a connection.
// Unrecognized values pass through as their raw string.
type ConnectionType string

const (
	// ConnectionTypeADFSSAML is Active Directory Federation Services via SAML.
	ConnectionTypeADFSSAML ConnectionType = "ADFSSAML"
	// ConnectionTypeAzureSAML is Microsoft Entra ID via SAML.
	ConnectionTypeAzureSAML ConnectionType = "AzureSAML"
	// ConnectionTypeDuoSAML is Duo via SAML.
	ConnectionTypeDuoSAML ConnectionType = "DuoSAML"
	// ConnectionTypeGenericOIDC is a generic OpenID Connect provider.
	ConnectionTypeGenericOIDC ConnectionType = "GenericOIDC"
	// ConnectionTypeGenericSAML is a generic SAML provider.
	ConnectionTypeGenericSAML ConnectionType = "GenericSAML"
	// ConnectionTypeGoogleOAuth is Google via OAuth.
	ConnectionTypeGoogleOAuth ConnectionType = "GoogleOAuth"
	// ConnectionTypeGoogleSAML is Google Workspace via SAML.
	ConnectionTypeGoogleSAML ConnectionType = "GoogleSAML"
	// ConnectionTypeJumpCloudSAML is JumpCloud via SAML.
	ConnectionTypeJumpCloudSAML ConnectionType = "JumpCloudSAML"
	// ConnectionTypeMagicLink is email Magic Link.
	ConnectionTypeMagicLink ConnectionType = "MagicLink"
	// ConnectionTypeMicrosoftOAuth is Microsoft via OAuth.
	ConnectionTypeMicrosoftOAuth ConnectionType = "MicrosoftOAuth"
	// ConnectionTypeOktaSAML is Okta via SAML.
	ConnectionTypeOktaSAML ConnectionType = "OktaSAML"
	// ConnectionTypeOneLoginSAML is OneLogin via SAML.
	ConnectionTypeOneLoginSAML ConnectionType = "OneLoginSAML"
	// ConnectionTypePingFederateSAML is PingFederate via SAML.
	ConnectionTypePingFederateSAML ConnectionType = "PingFederateSAML"
	// ConnectionTypePingOneSAML is PingOne via SAML.
	ConnectionTypePingOneSAML ConnectionType = "PingOneSAML"
)

// ConnectionState is the state of a Connection. Unrecognized values pass
// through as their raw string.
type ConnectionState string

const (
	// ConnectionStateActive means the connection is active.
	ConnectionStateActive ConnectionState = "active"
	// ConnectionStateInactive means the connection is inactive.
	ConnectionStateInactive ConnectionState = "inactive"
)

// Connection is an SSO connection to an identity provider.
type Connection struct {
	// ID is the unique ID of the connection.
	ID ConnectionID `json:"id"`

	// OrganizationID is the organization the connection belongs to, if any.
	OrganizationID organizations.OrganizationID `json:"organization_id,omitempty"`

	// Type is the identity-provider protocol of the connection.
	Type ConnectionType `json:"connection_type"`

	// Name is the display name of the connection.
	Name string `json:"name"`

	// State is the state of the connection.
	State ConnectionState `json:"state"`

	workos.Timestamps
}

// ProfileID is the unique ID of a Profile.
type ProfileID string

// Profile is the identity of a user as asserted by an identity provider.
type Profile struct {
	// ID is the unique ID of the profile.
	ID ProfileID `json:"id"`

	// ConnectionID is the connection the profile came through.
	ConnectionID ConnectionID `json:"connection_id"`

	// ConnectionType is the protocol of that connection.
	ConnectionType ConnectionType `json:"connection_type"`

	// OrganizationID is the organization of the connection, if any.
	OrganizationID organizations.OrganizationID `json:"organization_id,omitempty"`

	// Email is the email address of the user.
	Email string `json:"email"`

	// FirstName is the first name of the user, if asserted.
	FirstName string `json:"first_name,omitempty"`

	// LastName is the last name of the user, if asserted.
	LastName string `json:"last_name,omitempty"`

	// IdpID is the user's ID in the identity provider.
	IdpID string `json:"idp_id"`

	// Groups are the groups the user belongs to, if asserted.
	Groups []string `json:"groups,omitempty"`

	// RawAttributes are the raw assertion attributes from the provider.
	RawAttributes map[string]any `json:"raw_attributes,omitempty"`
}

// ProfileAndToken is the result of exchanging an authorization code.
type ProfileAndToken struct {
	// AccessToken authorizes a follow-up GetProfile call.
	AccessToken AccessToken `json:"access_token"`

	// Profile is the asserted identity of the user.
	Profile Profile `json:"profile"`
}

// AccessToken authorizes a GetProfile call. It is short-lived and
// single-purpose; it is not a session token.
type AccessToken string

// String returns the raw token, for use in a bearer header.
func (t AccessToken) String() string { return string(t) }
