package mfa

import (
	"context"
	"net/url"

	workos "github.com/workos-community/workos-go"
)

// MFA is a client for the WorkOS Multi-Factor Authentication API.
type MFA struct {
	client *workos.Client
}

// New returns an MFA client backed by the given WorkOS client.
func New(client *workos.Client) *MFA {
	return &MFA{client: client}
}

// EnrollFactorParams are the parameters for EnrollFactor.
type EnrollFactorParams struct {
	// Type is the kind of factor to enroll. Required.
	Type FactorType `json:"type"`

	// TOTPIssuer names the issuer shown in authenticator apps. TOTP only.
	TOTPIssuer string `json:"totp_issuer,omitempty"`

	// TOTPUser names the account shown in authenticator apps. TOTP only.
	TOTPUser string `json:"totp_user,omitempty"`

	// PhoneNumber receives the one-time codes. SMS only; required for SMS.
	PhoneNumber string `json:"phone_number,omitempty"`
}

// EnrollFactor enrolls a new authentication factor.
func (m *MFA) EnrollFactor(ctx context.Context, params *EnrollFactorParams) (*AuthenticationFactor, error) {
	return workos.Post[AuthenticationFactor](ctx, m.client, "/auth/factors/enroll", params)
}

// ChallengeFactorParams are the parameters for ChallengeFactor.
type ChallengeFactorParams struct {
	// SMSTemplate customizes the SMS message. The template may reference
	// the code as {{code}}. SMS only.
	SMSTemplate string `json:"sms_template,omitempty"`
}

// ChallengeFactor issues a challenge against an enrolled factor. For SMS
// factors this sends the one-time code.
func (m *MFA) ChallengeFactor(ctx context.Context, factorID AuthenticationFactorID, params *ChallengeFactorParams) (*Challenge, error) {
	path := "/auth/factors/" + url.PathEscape(string(factorID)) + "/challenge"
	var body any
	if params != nil && params.SMSTemplate != "" {
		body = params
	}
	return workos.Post[Challenge](ctx, m.client, path, body)
}

// VerifyChallengeParams are the parameters for VerifyChallenge.
type VerifyChallengeParams struct {
	// Code is the one-time code the user submitted. Required.
	Code string `json:"code"`
}

// VerifyChallenge checks a submitted code against an outstanding challenge.
// A wrong code is not an error; check Valid on the response.
func (m *MFA) VerifyChallenge(ctx context.Context, challengeID ChallengeID, params *VerifyChallengeParams) (*VerifyResponse, error) {
	path := "/auth/challenges/" + url.PathEscape(string(challengeID)) + "/verify"
	return workos.Post[VerifyResponse](ctx, m.client, path, params)
}

// GetFactor retrieves an authentication factor by ID.
func (m *MFA) GetFactor(ctx context.Context, id AuthenticationFactorID) (*AuthenticationFactor, error) {
	return workos.Get[AuthenticationFactor](ctx, m.client, "/auth/factors/"+url.PathEscape(string(id)), nil)
}

// DeleteFactor deletes an authentication factor.
func (m *MFA) DeleteFactor(ctx context.Context, id AuthenticationFactorID) error {
	return workos.Delete(ctx, m.client, "/auth/factors/"+url.PathEscape(string(id)))
}
