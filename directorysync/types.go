package directorysync

import (
	"encoding/json"

	workos "github.com/workos-community/workos-go"
	"github.com/workos-community/workos-go/organizations"
)

// DirectoryID is the unique ID of a Directory.
type DirectoryID string

// String returns the raw ID.
func (id DirectoryID) String() string { return string(id) }

// DirectoryType is the provider of a directory. Unrecognized values pass
// through as their raw string.
type DirectoryType string

const (
	// DirectoryTypeAzureSCIM is Microsoft Entra ID via SCIM 2.0.
	DirectoryTypeAzureSCIM DirectoryType = "azure scim v2.0"
	// DirectoryTypeBambooHR is BambooHR.
	DirectoryTypeBambooHR DirectoryType = "bamboohr"
	// DirectoryTypeBreatheHR is Breathe HR.
	DirectoryTypeBreatheHR DirectoryType = "breathe hr"
	// DirectoryTypeCyberArkSCIM is CyberArk via SCIM 2.0.
	DirectoryTypeCyberArkSCIM DirectoryType = "cyberark scim v2.0"
	// DirectoryTypeGenericSCIM is a generic SCIM 2.0 directory.
	DirectoryTypeGenericSCIM DirectoryType = "generic scim v2.0"
	// DirectoryTypeGoogleWorkspace is Google Workspace.
	DirectoryTypeGoogleWorkspace DirectoryType = "gsuite directory"
	// DirectoryTypeJumpCloudSCIM is JumpCloud via SCIM 2.0.
	DirectoryTypeJumpCloudSCIM DirectoryType = "jump cloud scim v2.0"
	// DirectoryTypeOktaSCIM is Okta via SCIM 2.0.
	DirectoryTypeOktaSCIM DirectoryType = "okta scim v2.0"
	// DirectoryTypeOneLoginSCIM is OneLogin via SCIM 2.0.
	DirectoryTypeOneLoginSCIM DirectoryType = "onelogin scim v2.0"
	// DirectoryTypePingFederateSCIM is PingFederate via SCIM 2.0.
	DirectoryTypePingFederateSCIM DirectoryType = "pingfederate scim v2.0"
	// DirectoryTypeWorkday is Workday.
	DirectoryTypeWorkday DirectoryType = "workday"
)

// DirectoryState is the state of a Directory. The API historically used
// "linked"/"unlinked" for active/inactive; those decode to the current
// names. Other unrecognized values pass through as their raw string.
type DirectoryState string

const (
	// DirectoryStateActive means the directory is syncing.
	DirectoryStateActive DirectoryState = "active"
	// DirectoryStateInactive means the directory is not syncing.
	DirectoryStateInactive DirectoryState = "inactive"
	// DirectoryStateValidating means the directory is being validated.
	DirectoryStateValidating DirectoryState = "validating"
	// DirectoryStateInvalidCredentials means the provider rejected the
	// directory's credentials.
	DirectoryStateInvalidCredentials DirectoryState = "invalid_credentials"
	// DirectoryStateDeleting means the directory is being deleted.
	DirectoryStateDeleting DirectoryState = "deleting"
)

// UnmarshalJSON maps the legacy state names onto the current ones.
func (s *DirectoryState) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	switch raw {
	case "linked":
		*s = DirectoryStateActive
	case "unlinked":
		*s = DirectoryStateInactive
	default:
		*s = DirectoryState(raw)
	}
	return nil
}

// Directory is a connected directory provider.
type Directory struct {
	// ID is the unique ID of the directory.
	ID DirectoryID `json:"id"`

	// OrganizationID is the organization the directory belongs to, if any.
	OrganizationID organizations.OrganizationID `json:"organization_id,omitempty"`

	// Type is the provider of the directory.
	Type DirectoryType `json:"type"`

	// State is the state of the directory.
	State DirectoryState `json:"state"`

	// Name is the display name of the directory.
	Name string `json:"name"`

	// Domain is the domain associated with the directory, if any.
	Domain string `json:"domain,omitempty"`

	workos.Timestamps
}

// DirectoryGroupID is the unique ID of a DirectoryGroup.
type DirectoryGroupID string

// DirectoryGroup is a group synced from a directory.
type DirectoryGroup struct {
	// ID is the unique ID of the group.
	ID DirectoryGroupID `json:"id"`

	// IdpID is the group's ID in the directory provider.
	IdpID string `json:"idp_id"`

	// DirectoryID is the directory the group was synced from.
	DirectoryID DirectoryID `json:"directory_id"`

	// OrganizationID is the organization of that directory, if any.
	OrganizationID organizations.OrganizationID `json:"organization_id,omitempty"`

	// Name is the name of the group.
	Name string `json:"name"`

	// RawAttributes are the raw attributes from the provider.
	RawAttributes map[string]any `json:"raw_attributes,omitempty"`

	workos.Timestamps
}

// DirectoryUserID is the unique ID of a DirectoryUser.
type DirectoryUserID string

// DirectoryUserState is the state of a DirectoryUser.
type DirectoryUserState string

const (
	// DirectoryUserStateActive means the user is active in the directory.
	DirectoryUserStateActive DirectoryUserState = "active"
	// DirectoryUserStateInactive means the user is inactive in the
	// directory.
	DirectoryUserStateInactive DirectoryUserState = "inactive"
)

// DirectoryUserEmail is an email address of a DirectoryUser.
type DirectoryUserEmail struct {
	// Primary reports whether this is the user's primary email.
	Primary bool `json:"primary"`

	// Type is the provider's classification of the email.
	Type string `json:"type,omitempty"`

	// Value is the email address.
	Value string `json:"value"`
}

// DirectoryUser is a user synced from a directory.
type DirectoryUser struct {
	// ID is the unique ID of the user.
	ID DirectoryUserID `json:"id"`

	// IdpID is the user's ID in the directory provider.
	IdpID string `json:"idp_id"`

	// DirectoryID is the directory the user was synced from.
	DirectoryID DirectoryID `json:"directory_id"`

	// OrganizationID is the organization of that directory, if any.
	OrganizationID organizations.OrganizationID `json:"organization_id,omitempty"`

	// Username is the user's username in the directory.
	Username string `json:"username,omitempty"`

	// Emails are the user's email addresses.
	Emails []DirectoryUserEmail `json:"emails,omitempty"`

	// FirstName is the user's first name, if synced.
	FirstName string `json:"first_name,omitempty"`

	// LastName is the user's last name, if synced.
	LastName string `json:"last_name,omitempty"`

	// JobTitle is the user's job title, if synced.
	JobTitle string `json:"job_title,omitempty"`

	// State is the state of the user in the directory.
	State DirectoryUserState `json:"state"`

	// Groups are the directory groups the user belongs to.
	Groups []DirectoryGroup `json:"groups,omitempty"`

	// CustomAttributes are the attributes mapped in the WorkOS Dashboard.
	CustomAttributes map[string]any `json:"custom_attributes,omitempty"`

	// RawAttributes are the raw attributes from the provider.
	RawAttributes map[string]any `json:"raw_attributes,omitempty"`

	workos.Timestamps
}

// PrimaryEmail returns the user's primary email address, if one is marked.
func (u *DirectoryUser) PrimaryEmail() (string, bool) {
	for _, email := range u.Emails {
		if email.Primary {
			return email.Value, true
		}
	}
	return "", false
}
