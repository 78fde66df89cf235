package usermanagement

import (
	"context"
	"net/url"

	workos "github.com/workos-community/workos-go"
	"github.com/workos-community/workos-go/organizations"
)

// SendInvitationParams are the parameters for SendInvitation.
type SendInvitationParams struct {
	// Email is the email address of the recipient. Required.
	Email string `json:"email"`

	// OrganizationID is the organization the recipient will join, if any.
	OrganizationID organizations.OrganizationID `json:"organization_id,omitempty"`

	// ExpiresInDays is how many days the invitation stays valid. The API
	// default applies when zero.
	ExpiresInDays int `json:"expires_in_days,omitempty"`

	// InviterUserID is the user sending the invitation, if any.
	InviterUserID UserID `json:"inviter_user_id,omitempty"`

	// RoleSlug is the role the recipient will be granted, if any.
	RoleSlug string `json:"role_slug,omitempty"`
}

// SendInvitation sends an invitation email to a user.
func (um *UserManagement) SendInvitation(ctx context.Context, params *SendInvitationParams, opts ...workos.CallOption) (*Invitation, error) {
	return workos.Post[Invitation](ctx, um.client, "/user_management/invitations", params, opts...)
}

// GetInvitation retrieves an invitation by ID.
func (um *UserManagement) GetInvitation(ctx context.Context, id InvitationID) (*Invitation, error) {
	return workos.Get[Invitation](ctx, um.client, "/user_management/invitations/"+url.PathEscape(string(id)), nil)
}

// GetInvitationByToken retrieves an invitation by its token.
func (um *UserManagement) GetInvitationByToken(ctx context.Context, token InvitationToken) (*Invitation, error) {
	return workos.Get[Invitation](ctx, um.client, "/user_management/invitations/by_token/"+url.PathEscape(string(token)), nil)
}

// ListInvitationsParams are the parameters for ListInvitations.
type ListInvitationsParams struct {
	// Email filters to invitations sent to the given email address.
	Email string

	// OrganizationID filters to invitations for the given organization.
	OrganizationID organizations.OrganizationID

	// Pagination selects the page to return.
	Pagination workos.PaginationParams
}

// ListInvitations lists invitations matching the given criteria.
func (um *UserManagement) ListInvitations(ctx context.Context, params *ListInvitationsParams) (*workos.PaginatedList[Invitation], error) {
	var p ListInvitationsParams
	if params != nil {
		p = *params
	}

	q := url.Values{}
	if p.Email != "" {
		q.Set("email", p.Email)
	}
	if p.OrganizationID != "" {
		q.Set("organization_id", string(p.OrganizationID))
	}
	p.Pagination.SetQuery(q)

	return workos.Get[workos.PaginatedList[Invitation]](ctx, um.client, "/user_management/invitations", q)
}

// AcceptInvitation accepts an invitation on behalf of its recipient.
func (um *UserManagement) AcceptInvitation(ctx context.Context, id InvitationID) (*Invitation, error) {
	path := "/user_management/invitations/" + url.PathEscape(string(id)) + "/accept"
	return workos.Post[Invitation](ctx, um.client, path, nil)
}

// RevokeInvitation revokes a pending invitation.
func (um *UserManagement) RevokeInvitation(ctx context.Context, id InvitationID) (*Invitation, error) {
	path := "/user_management/invitations/" + url.PathEscape(string(id)) + "/revoke"
	return workos.Post[Invitation](ctx, um.client, path, nil)
}
