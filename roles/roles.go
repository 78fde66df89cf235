package roles

import (
	"context"

	workos "github.com/workos-community/workos-go"
)

// RoleType is the scope a role is defined at.
type RoleType string

const (
	// RoleTypeEnvironment is a role defined for the whole environment.
	RoleTypeEnvironment RoleType = "EnvironmentRole"
	// RoleTypeOrganization is a role defined for a single organization.
	RoleTypeOrganization RoleType = "OrganizationRole"
)

// Role grants a set of permissions to organization members.
type Role struct {
	// ID is the unique ID of the role.
	ID string `json:"id"`

	// Slug is the unique key used to reference the role.
	Slug string `json:"slug"`

	// Name is the display name of the role.
	Name string `json:"name"`

	// Description describes the role.
	Description string `json:"description,omitempty"`

	// Type is the scope the role is defined at.
	Type RoleType `json:"type"`

	// Permissions are the permission slugs assigned to the role.
	Permissions []string `json:"permissions,omitempty"`

	workos.Timestamps
}

// Roles is a client for the WorkOS Roles API.
type Roles struct {
	client *workos.Client
}

// New returns a Roles client backed by the given WorkOS client.
func New(client *workos.Client) *Roles {
	return &Roles{client: client}
}

// ListRolesResponse is a non-cursor listing of roles.
type ListRolesResponse struct {
	// Data are the environment's roles, sorted by creation time.
	Data []Role `json:"data"`
}

// ListRoles lists all roles in the environment.
func (r *Roles) ListRoles(ctx context.Context) (*ListRolesResponse, error) {
	return workos.Get[ListRolesResponse](ctx, r.client, "/roles", nil)
}
