package usermanagement

import (
	"context"
	"net/url"

	workos "github.com/workos-community/workos-go"
	"github.com/workos-community/workos-go/organizations"
)

// CreateOrganizationMembershipParams are the parameters for
// CreateOrganizationMembership.
type CreateOrganizationMembershipParams struct {
	// UserID is the user to add to the organization. Required.
	UserID UserID `json:"user_id"`

	// OrganizationID is the organization to add the user to. Required.
	OrganizationID organizations.OrganizationID `json:"organization_id"`

	// RoleSlug is the role to grant. The environment's default role applies
	// when empty.
	RoleSlug string `json:"role_slug,omitempty"`
}

// CreateOrganizationMembership adds a user to an organization.
func (um *UserManagement) CreateOrganizationMembership(ctx context.Context, params *CreateOrganizationMembershipParams, opts ...workos.CallOption) (*OrganizationMembership, error) {
	return workos.Post[OrganizationMembership](ctx, um.client, "/user_management/organization_memberships", params, opts...)
}

// GetOrganizationMembership retrieves an organization membership by ID.
func (um *UserManagement) GetOrganizationMembership(ctx context.Context, id OrganizationMembershipID) (*OrganizationMembership, error) {
	return workos.Get[OrganizationMembership](ctx, um.client, "/user_management/organization_memberships/"+url.PathEscape(string(id)), nil)
}

// ListOrganizationMembershipsParams are the parameters for
// ListOrganizationMemberships.
type ListOrganizationMembershipsParams struct {
	// UserID filters to memberships of the given user.
	UserID UserID

	// OrganizationID filters to memberships in the given organization.
	OrganizationID organizations.OrganizationID

	// Statuses filters to memberships in any of the given statuses.
	Statuses []OrganizationMembershipStatus

	// Pagination selects the page to return.
	Pagination workos.PaginationParams
}

// ListOrganizationMemberships lists memberships matching the given criteria.
func (um *UserManagement) ListOrganizationMemberships(ctx context.Context, params *ListOrganizationMembershipsParams) (*workos.PaginatedList[OrganizationMembership], error) {
	var p ListOrganizationMembershipsParams
	if params != nil {
		p = *params
	}

	q := url.Values{}
	if p.UserID != "" {
		q.Set("user_id", string(p.UserID))
	}
	if p.OrganizationID != "" {
		q.Set("organization_id", string(p.OrganizationID))
	}
	for _, status := range p.Statuses {
		q.Add("statuses[]", string(status))
	}
	p.Pagination.SetQuery(q)

	return workos.Get[workos.PaginatedList[OrganizationMembership]](ctx, um.client, "/user_management/organization_memberships", q)
}

// UpdateOrganizationMembershipParams are the parameters for
// UpdateOrganizationMembership.
type UpdateOrganizationMembershipParams struct {
	// RoleSlug is the role to grant. The environment's default role applies
	// when empty.
	RoleSlug string `json:"role_slug,omitempty"`
}

// UpdateOrganizationMembership updates an organization membership.
func (um *UserManagement) UpdateOrganizationMembership(ctx context.Context, id OrganizationMembershipID, params *UpdateOrganizationMembershipParams) (*OrganizationMembership, error) {
	return workos.Put[OrganizationMembership](ctx, um.client, "/user_management/organization_memberships/"+url.PathEscape(string(id)), params)
}

// DeleteOrganizationMembership removes a user from an organization.
func (um *UserManagement) DeleteOrganizationMembership(ctx context.Context, id OrganizationMembershipID) error {
	return workos.Delete(ctx, um.client, "/user_management/organization_memberships/"+url.PathEscape(string(id)))
}

// DeactivateOrganizationMembership deactivates a membership without
// removing it.
func (um *UserManagement) DeactivateOrganizationMembership(ctx context.Context, id OrganizationMembershipID) (*OrganizationMembership, error) {
	path := "/user_management/organization_memberships/" + url.PathEscape(string(id)) + "/deactivate"
	return workos.Put[OrganizationMembership](ctx, um.client, path, nil)
}
