package usermanagement

import (
	"encoding/json"
	"time"

	workos "github.com/workos-community/workos-go"
	"github.com/workos-community/workos-go/organizations"
)

// UserID is the unique ID of a User.
type UserID string

// String returns the raw ID.
func (id UserID) String() string { return string(id) }

// ClientID identifies the application making an authentication request.
type ClientID string

// ClientSecret authenticates the application making an authentication request.
type ClientSecret string

// AuthorizationCode is the single-use code passed back as a query parameter
// in the callback to the redirect URI.
type AuthorizationCode string

// AccessToken is a JWT carrying information about a session.
type AccessToken string

// RefreshToken can be exchanged for a new access token.
type RefreshToken string

// User is a WorkOS user.
type User struct {
	// ID is the unique ID of the user.
	ID UserID `json:"id"`

	// Email is the email address of the user.
	Email string `json:"email"`

	// FirstName is the first name of the user, if known.
	FirstName string `json:"first_name,omitempty"`

	// LastName is the last name of the user, if known.
	LastName string `json:"last_name,omitempty"`

	// EmailVerified reports whether the user's email has been verified.
	EmailVerified bool `json:"email_verified"`

	// ProfilePictureURL references an image representing the user.
	ProfilePictureURL string `json:"profile_picture_url,omitempty"`

	// LastSignInAt is when the user last signed in, if ever.
	LastSignInAt *time.Time `json:"last_sign_in_at,omitempty"`

	// ExternalID is the caller-assigned external ID, if any.
	ExternalID string `json:"external_id,omitempty"`

	// Metadata holds key/value pairs attached to the user.
	Metadata workos.Metadata `json:"metadata,omitempty"`

	workos.Timestamps
}

// Impersonator is the WorkOS Dashboard user impersonating a session's user.
type Impersonator struct {
	// Email is the email address of the impersonator.
	Email string `json:"email"`

	// Reason is the stated reason for the impersonation.
	Reason string `json:"reason,omitempty"`
}

// SessionID is the unique ID of a Session.
type SessionID string

// SessionStatus is the state of a Session. Unrecognized values pass through
// as their raw string.
type SessionStatus string

const (
	// SessionStatusActive means the session is active.
	SessionStatusActive SessionStatus = "active"
	// SessionStatusExpired means the session is expired.
	SessionStatusExpired SessionStatus = "expired"
	// SessionStatusRevoked means the session is revoked.
	SessionStatusRevoked SessionStatus = "revoked"
)

// SessionAuthMethod is how a Session was authenticated. Unrecognized values
// pass through as their raw string.
type SessionAuthMethod string

const (
	// SessionAuthMethodExternalAuth is external authentication.
	SessionAuthMethodExternalAuth SessionAuthMethod = "external_auth"
	// SessionAuthMethodImpersonation is dashboard impersonation.
	SessionAuthMethodImpersonation SessionAuthMethod = "impersonation"
	// SessionAuthMethodMagicCode is a Magic Auth code.
	SessionAuthMethodMagicCode SessionAuthMethod = "magic_code"
	// SessionAuthMethodMigratedSession is a migrated session.
	SessionAuthMethodMigratedSession SessionAuthMethod = "migrated_session"
	// SessionAuthMethodOAuth is OAuth.
	SessionAuthMethodOAuth SessionAuthMethod = "oauth"
	// SessionAuthMethodPasskey is a passkey.
	SessionAuthMethodPasskey SessionAuthMethod = "passkey"
	// SessionAuthMethodPassword is a password.
	SessionAuthMethodPassword SessionAuthMethod = "password"
	// SessionAuthMethodSSO is single sign-on.
	SessionAuthMethodSSO SessionAuthMethod = "sso"
)

// Session is an authenticated session for a user.
type Session struct {
	// ID is the unique ID of the session.
	ID SessionID `json:"id"`

	// UserID is the user the session belongs to.
	UserID UserID `json:"user_id"`

	// OrganizationID is the organization the session is scoped to, if any.
	OrganizationID organizations.OrganizationID `json:"organization_id,omitempty"`

	// Status is the state of the session.
	Status SessionStatus `json:"status"`

	// AuthMethod is how the session was authenticated.
	AuthMethod SessionAuthMethod `json:"auth_method"`

	// IPAddress is the IP address the session was created from, if known.
	IPAddress string `json:"ip_address,omitempty"`

	// UserAgent is the user agent the session was created from, if known.
	UserAgent string `json:"user_agent,omitempty"`

	// ExpiresAt is when the session expires.
	ExpiresAt time.Time `json:"expires_at"`

	// EndedAt is when the session was ended, if it has been.
	EndedAt *time.Time `json:"ended_at,omitempty"`

	workos.Timestamps
}

// InvitationID is the unique ID of an Invitation.
type InvitationID string

// InvitationToken is the token of an Invitation.
type InvitationToken string

// InvitationState is the state of an Invitation.
type InvitationState string

const (
	// InvitationStatePending means the invitation has not been accepted yet.
	InvitationStatePending InvitationState = "pending"
	// InvitationStateAccepted means the invitation has been accepted.
	InvitationStateAccepted InvitationState = "accepted"
	// InvitationStateExpired means the invitation has expired.
	InvitationStateExpired InvitationState = "expired"
	// InvitationStateRevoked means the invitation has been revoked.
	InvitationStateRevoked InvitationState = "revoked"
)

// Invitation invites a user to join an organization.
type Invitation struct {
	// ID is the unique ID of the invitation.
	ID InvitationID `json:"id"`

	// Email is the email address of the recipient.
	Email string `json:"email"`

	// State is the state of the invitation.
	State InvitationState `json:"state"`

	// AcceptedAt is when the invitation was accepted, if it has been.
	AcceptedAt *time.Time `json:"accepted_at,omitempty"`

	// RevokedAt is when the invitation was revoked, if it has been.
	RevokedAt *time.Time `json:"revoked_at,omitempty"`

	// ExpiresAt is when the invitation expires.
	ExpiresAt time.Time `json:"expires_at"`

	// Token is the invitation token.
	Token InvitationToken `json:"token"`

	// AcceptInvitationURL is the URL the recipient accepts the invitation at.
	AcceptInvitationURL string `json:"accept_invitation_url"`

	// OrganizationID is the organization the recipient will join, if any.
	OrganizationID organizations.OrganizationID `json:"organization_id,omitempty"`

	// InviterUserID is the user who sent the invitation, if any.
	InviterUserID UserID `json:"inviter_user_id,omitempty"`

	// AcceptedUserID is the user who accepted the invitation, if any.
	AcceptedUserID UserID `json:"accepted_user_id,omitempty"`

	workos.Timestamps
}

// OrganizationMembershipID is the unique ID of an OrganizationMembership.
type OrganizationMembershipID string

// OrganizationMembershipStatus is the status of an organization membership.
type OrganizationMembershipStatus string

const (
	// OrganizationMembershipActive means the membership is active.
	OrganizationMembershipActive OrganizationMembershipStatus = "active"
	// OrganizationMembershipInactive means the membership is inactive.
	OrganizationMembershipInactive OrganizationMembershipStatus = "inactive"
	// OrganizationMembershipPending means the membership is pending.
	OrganizationMembershipPending OrganizationMembershipStatus = "pending"
)

// OrganizationMembershipRole is the role of a user within an organization.
type OrganizationMembershipRole struct {
	// Slug is the unique key of the role.
	Slug string `json:"slug"`
}

// OrganizationMembership ties a user to an organization with a role.
type OrganizationMembership struct {
	// ID is the unique ID of the membership.
	ID OrganizationMembershipID `json:"id"`

	// UserID is the member.
	UserID UserID `json:"user_id"`

	// OrganizationID is the organization.
	OrganizationID organizations.OrganizationID `json:"organization_id"`

	// Role is the user's role in the organization.
	Role OrganizationMembershipRole `json:"role"`

	// Status is the status of the membership.
	Status OrganizationMembershipStatus `json:"status"`

	workos.Timestamps
}

// PasswordResetID is the unique ID of a PasswordReset.
type PasswordResetID string

// PasswordReset is a password-reset token issued for a user.
type PasswordReset struct {
	// ID is the unique ID of the password reset.
	ID PasswordResetID `json:"id"`

	// UserID is the user the reset was created for.
	UserID UserID `json:"user_id"`

	// Email is the email address of the user.
	Email string `json:"email"`

	// PasswordResetToken is the single-use reset token.
	PasswordResetToken string `json:"password_reset_token"`

	// PasswordResetURL is the URL the user completes the reset at.
	PasswordResetURL string `json:"password_reset_url"`

	// ExpiresAt is when the reset token expires.
	ExpiresAt time.Time `json:"expires_at"`

	// CreatedAt is when the reset was created.
	CreatedAt time.Time `json:"created_at"`
}

// AuthenticationFactorID is the unique ID of an AuthenticationFactor.
type AuthenticationFactorID string

// FactorType is the kind of an authentication factor.
type FactorType string

const (
	// FactorTypeTOTP is a time-based one-time password factor.
	FactorTypeTOTP FactorType = "totp"
	// FactorTypeSMS is a one-time password via SMS.
	FactorTypeSMS FactorType = "sms"
)

// TOTPFactorDetails are the enrollment details of a TOTP factor.
type TOTPFactorDetails struct {
	// QRCode is a data URL containing the scannable enrollment QR code.
	QRCode string `json:"qr_code"`

	// Secret is the TOTP secret, for manual entry into authenticator apps.
	Secret string `json:"secret"`

	// URI is the otpauth:// URI encoded in the QR code.
	URI string `json:"uri"`
}

// SMSFactorDetails are the enrollment details of an SMS factor.
type SMSFactorDetails struct {
	// PhoneNumber is the phone number the factor was enrolled with.
	PhoneNumber string `json:"phone_number"`
}

// AuthenticationFactor is an enrolled MFA factor. Exactly one of TOTP and
// SMS is set, matching Type.
type AuthenticationFactor struct {
	// ID is the unique ID of the factor.
	ID AuthenticationFactorID `json:"id"`

	// Type is the kind of factor.
	Type FactorType `json:"type"`

	// TOTP holds the details of a TOTP factor.
	TOTP *TOTPFactorDetails `json:"totp,omitempty"`

	// SMS holds the details of an SMS factor.
	SMS *SMSFactorDetails `json:"sms,omitempty"`

	workos.Timestamps
}

// AuthenticateError is the structured error payload returned by the
// authenticate endpoints. The API emits it under two field spellings
// (code/message and error/error_description); both decode.
type AuthenticateError struct {
	// Code is the machine-readable error code, e.g. "invalid_grant".
	Code string

	// Message describes the error.
	Message string
}

// Error implements the error interface.
func (e AuthenticateError) Error() string {
	return e.Code + ": " + e.Message
}

// UnmarshalJSON accepts both field spellings used by the API.
func (e *AuthenticateError) UnmarshalJSON(data []byte) error {
	var raw struct {
		Code             string `json:"code"`
		Message          string `json:"message"`
		Err              string `json:"error"`
		ErrorDescription string `json:"error_description"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	e.Code = raw.Code
	if e.Code == "" {
		e.Code = raw.Err
	}
	e.Message = raw.Message
	if e.Message == "" {
		e.Message = raw.ErrorDescription
	}
	return nil
}

// AuthenticateResponse is the result of a successful authentication.
type AuthenticateResponse struct {
	// User is the authenticated user.
	User User `json:"user"`

	// OrganizationID is the organization the user selected to sign in to,
	// if any.
	OrganizationID organizations.OrganizationID `json:"organization_id,omitempty"`

	// AccessToken is a JWT containing information about the session.
	AccessToken AccessToken `json:"access_token"`

	// RefreshToken exchanges for a new access token.
	RefreshToken RefreshToken `json:"refresh_token"`

	// AuthenticationMethod is the method used to initiate the session.
	AuthenticationMethod string `json:"authentication_method,omitempty"`

	// Impersonator is the dashboard user impersonating the user, if any.
	Impersonator *Impersonator `json:"impersonator,omitempty"`
}
