package events

import (
	"encoding/json"
	"fmt"
	"time"
)

// EventID is the unique ID of an Event.
type EventID string

// String returns the raw ID.
func (id EventID) String() string { return string(id) }

// EventName identifies what happened. Unrecognized values pass through as
// their raw string.
type EventName string

// The events emitted by the WorkOS platform.
const (
	EventAuthenticationEmailVerificationFailed    EventName = "authentication.email_verification_failed"
	EventAuthenticationEmailVerificationSucceeded EventName = "authentication.email_verification_succeeded"
	EventAuthenticationMagicAuthFailed            EventName = "authentication.magic_auth_failed"
	EventAuthenticationMagicAuthSucceeded         EventName = "authentication.magic_auth_succeeded"
	EventAuthenticationMFAFailed                  EventName = "authentication.mfa_failed"
	EventAuthenticationMFASucceeded               EventName = "authentication.mfa_succeeded"
	EventAuthenticationOAuthFailed                EventName = "authentication.oauth_failed"
	EventAuthenticationOAuthSucceeded             EventName = "authentication.oauth_succeeded"
	EventAuthenticationPasskeyFailed              EventName = "authentication.passkey_failed"
	EventAuthenticationPasskeySucceeded           EventName = "authentication.passkey_succeeded"
	EventAuthenticationPasswordFailed             EventName = "authentication.password_failed"
	EventAuthenticationPasswordSucceeded          EventName = "authentication.password_succeeded"
	EventAuthenticationRadarRiskDetected          EventName = "authentication.radar_risk_detected"
	EventAuthenticationSSOFailed                  EventName = "authentication.sso_failed"
	EventAuthenticationSSOSucceeded               EventName = "authentication.sso_succeeded"

	EventConnectionActivated                      EventName = "connection.activated"
	EventConnectionDeactivated                    EventName = "connection.deactivated"
	EventConnectionDeleted                        EventName = "connection.deleted"
	EventConnectionSAMLCertificateRenewed         EventName = "connection.saml_certificate_renewed"
	EventConnectionSAMLCertificateRenewalRequired EventName = "connection.saml_certificate_renewal_required"

	EventDsyncActivated        EventName = "dsync.activated"
	EventDsyncDeleted          EventName = "dsync.deleted"
	EventDsyncGroupCreated     EventName = "dsync.group.created"
	EventDsyncGroupDeleted     EventName = "dsync.group.deleted"
	EventDsyncGroupUpdated     EventName = "dsync.group.updated"
	EventDsyncGroupUserAdded   EventName = "dsync.group.user_added"
	EventDsyncGroupUserRemoved EventName = "dsync.group.user_removed"
	EventDsyncUserCreated      EventName = "dsync.user.created"
	EventDsyncUserDeleted      EventName = "dsync.user.deleted"
	EventDsyncUserUpdated      EventName = "dsync.user.updated"

	EventEmailVerificationCreated EventName = "email_verification.created"

	EventInvitationAccepted EventName = "invitation.accepted"
	EventInvitationCreated  EventName = "invitation.created"
	EventInvitationRevoked  EventName = "invitation.revoked"

	EventMagicAuthCreated EventName = "magic_auth.created"

	EventOrganizationCreated EventName = "organization.created"
	EventOrganizationUpdated EventName = "organization.updated"
	EventOrganizationDeleted EventName = "organization.deleted"

	EventOrganizationDomainCreated            EventName = "organization_domain.created"
	EventOrganizationDomainUpdated            EventName = "organization_domain.updated"
	EventOrganizationDomainDeleted            EventName = "organization_domain.deleted"
	EventOrganizationDomainVerified           EventName = "organization_domain.verified"
	EventOrganizationDomainVerificationFailed EventName = "organization_domain.verification_failed"

	EventOrganizationMembershipCreated EventName = "organization_membership.created"
	EventOrganizationMembershipDeleted EventName = "organization_membership.deleted"
	EventOrganizationMembershipUpdated EventName = "organization_membership.updated"

	EventPasswordResetCreated   EventName = "password_reset.created"
	EventPasswordResetSucceeded EventName = "password_reset.succeeded"

	EventRoleCreated EventName = "role.created"
	EventRoleDeleted EventName = "role.deleted"
	EventRoleUpdated EventName = "role.updated"

	EventSessionCreated EventName = "session.created"
	EventSessionRevoked EventName = "session.revoked"

	EventUserCreated EventName = "user.created"
	EventUserDeleted EventName = "user.deleted"
	EventUserUpdated EventName = "user.updated"
)

// EventContext is extra information relevant to an event.
type EventContext map[string]string

// Event is a single entry in the environment's event log. Data holds the
// affected resource as raw JSON; decode it with UnmarshalEventData once the
// Event name identifies the resource type.
type Event struct {
	// ID is the unique ID of the event.
	ID EventID `json:"id"`

	// Event identifies what happened.
	Event EventName `json:"event"`

	// Data is the affected resource, undecoded.
	Data json.RawMessage `json:"data"`

	// Context is extra information relevant to the event, if any.
	Context EventContext `json:"context,omitempty"`

	// CreatedAt is when the event occurred.
	CreatedAt time.Time `json:"created_at"`
}

// UnmarshalEventData decodes an event's payload into T. T should be the
// resource type matching the event name, e.g. a directorysync.DirectoryUser
// for dsync.user.* events.
func UnmarshalEventData[T any](event *Event) (*T, error) {
	var data T
	if err := json.Unmarshal(event.Data, &data); err != nil {
		return nil, fmt.Errorf("decode %s event data: %w", event.Event, err)
	}
	return &data, nil
}
