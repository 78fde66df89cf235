package mfa

import (
	"time"

	workos "github.com/workos-community/workos-go"
)

// AuthenticationFactorID is the unique ID of an AuthenticationFactor.
type AuthenticationFactorID string

// String returns the raw ID.
func (id AuthenticationFactorID) String() string { return string(id) }

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

// ChallengeID is the unique ID of a Challenge.
type ChallengeID string

// Challenge is an outstanding request for a user to prove possession of a
// factor.
type Challenge struct {
	// ID is the unique ID of the challenge.
	ID ChallengeID `json:"id"`

	// FactorID is the factor being challenged.
	FactorID AuthenticationFactorID `json:"authentication_factor_id"`

	// ExpiresAt is when the challenge expires, if it does.
	ExpiresAt *time.Time `json:"expires_at,omitempty"`

	workos.Timestamps
}

// VerifyResponse is the result of verifying a challenge code.
type VerifyResponse struct {
	// Challenge is the challenge that was verified.
	Challenge Challenge `json:"challenge"`

	// Valid reports whether the submitted code was correct.
	Valid bool `json:"valid"`
}
