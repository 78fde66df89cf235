package usermanagement

import (
	"context"
	"net/url"

	workos "github.com/workos-community/workos-go"
	"github.com/workos-community/workos-go/organizations"
)

// UserManagement is a client for the WorkOS User Management API.
type UserManagement struct {
	client *workos.Client
}

// New returns a UserManagement client backed by the given WorkOS client.
func New(client *workos.Client) *UserManagement {
	return &UserManagement{client: client}
}

// GetUser retrieves a user by ID.
func (um *UserManagement) GetUser(ctx context.Context, id UserID) (*User, error) {
	return workos.Get[User](ctx, um.client, "/user_management/users/"+url.PathEscape(string(id)), nil)
}

// GetUserByExternalID retrieves a user by its external ID.
func (um *UserManagement) GetUserByExternalID(ctx context.Context, externalID string) (*User, error) {
	return workos.Get[User](ctx, um.client, "/user_management/users/external_id/"+url.PathEscape(externalID), nil)
}

// CreateUserParams are the parameters for CreateUser.
type CreateUserParams struct {
	// Email is the email address of the user. Required.
	Email string `json:"email"`

	// Password sets an initial password, if any.
	Password string `json:"password,omitempty"`

	// FirstName is the user's first name.
	FirstName string `json:"first_name,omitempty"`

	// LastName is the user's last name.
	LastName string `json:"last_name,omitempty"`

	// EmailVerified marks the email as already verified.
	EmailVerified bool `json:"email_verified,omitempty"`

	// ExternalID is an optional caller-assigned external ID.
	ExternalID string `json:"external_id,omitempty"`

	// Metadata holds key/value pairs to attach to the user.
	Metadata workos.Metadata `json:"metadata,omitempty"`
}

// CreateUser creates a user. Pass workos.WithIdempotencyKey to make retried
// submissions safe.
func (um *UserManagement) CreateUser(ctx context.Context, params *CreateUserParams, opts ...workos.CallOption) (*User, error) {
	return workos.Post[User](ctx, um.client, "/user_management/users", params, opts...)
}

// UpdateUserParams are the parameters for UpdateUser. Zero-value fields are
// left unchanged.
type UpdateUserParams struct {
	// FirstName updates the user's first name.
	FirstName string `json:"first_name,omitempty"`

	// LastName updates the user's last name.
	LastName string `json:"last_name,omitempty"`

	// Email updates the user's email address.
	Email string `json:"email,omitempty"`

	// EmailVerified updates the verification flag.
	EmailVerified *bool `json:"email_verified,omitempty"`

	// ExternalID updates the caller-assigned external ID.
	ExternalID string `json:"external_id,omitempty"`

	// Metadata replaces the metadata attached to the user.
	Metadata workos.Metadata `json:"metadata,omitempty"`
}

// UpdateUser updates a user.
func (um *UserManagement) UpdateUser(ctx context.Context, id UserID, params *UpdateUserParams) (*User, error) {
	return workos.Put[User](ctx, um.client, "/user_management/users/"+url.PathEscape(string(id)), params)
}

// DeleteUser deletes a user.
func (um *UserManagement) DeleteUser(ctx context.Context, id UserID) error {
	return workos.Delete(ctx, um.client, "/user_management/users/"+url.PathEscape(string(id)))
}

// ListUsersParams are the parameters for ListUsers.
type ListUsersParams struct {
	// Email filters to users with the given email address.
	Email string

	// OrganizationID filters to members of the given organization.
	OrganizationID organizations.OrganizationID

	// Pagination selects the page to return.
	Pagination workos.PaginationParams
}

// ListUsers lists users matching the given criteria.
func (um *UserManagement) ListUsers(ctx context.Context, params *ListUsersParams) (*workos.PaginatedList[User], error) {
	var p ListUsersParams
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

	return workos.Get[workos.PaginatedList[User]](ctx, um.client, "/user_management/users", q)
}

// ListAuthFactors lists the authentication factors enrolled by a user.
func (um *UserManagement) ListAuthFactors(ctx context.Context, userID UserID, pagination workos.PaginationParams) (*workos.PaginatedList[AuthenticationFactor], error) {
	q := url.Values{}
	pagination.SetQuery(q)
	path := "/user_management/users/" + url.PathEscape(string(userID)) + "/auth_factors"
	return workos.Get[workos.PaginatedList[AuthenticationFactor]](ctx, um.client, path, q)
}

// CreatePasswordResetParams are the parameters for CreatePasswordReset.
type CreatePasswordResetParams struct {
	// Email is the email address of the user. Required.
	Email string `json:"email"`
}

// CreatePasswordReset creates a password-reset token for a user.
func (um *UserManagement) CreatePasswordReset(ctx context.Context, params *CreatePasswordResetParams) (*PasswordReset, error) {
	return workos.Post[PasswordReset](ctx, um.client, "/user_management/password_reset", params)
}
