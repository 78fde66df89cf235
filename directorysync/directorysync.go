package directorysync

import (
	"context"
	"net/url"

	workos "github.com/workos-community/workos-go"
	"github.com/workos-community/workos-go/organizations"
)

// DirectorySync is a client for the WorkOS Directory Sync API.
type DirectorySync struct {
	client *workos.Client
}

// New returns a DirectorySync client backed by the given WorkOS client.
func New(client *workos.Client) *DirectorySync {
	return &DirectorySync{client: client}
}

// ListDirectoriesParams are the parameters for ListDirectories.
type ListDirectoriesParams struct {
	// OrganizationID filters to directories of the given organization.
	OrganizationID organizations.OrganizationID

	// Search matches against directory names.
	Search string

	// Pagination selects the page to return.
	Pagination workos.PaginationParams
}

// ListDirectories lists directories matching the given criteria.
func (ds *DirectorySync) ListDirectories(ctx context.Context, params *ListDirectoriesParams) (*workos.PaginatedList[Directory], error) {
	var p ListDirectoriesParams
	if params != nil {
		p = *params
	}

	q := url.Values{}
	if p.OrganizationID != "" {
		q.Set("organization_id", string(p.OrganizationID))
	}
	if p.Search != "" {
		q.Set("search", p.Search)
	}
	p.Pagination.SetQuery(q)

	return workos.Get[workos.PaginatedList[Directory]](ctx, ds.client, "/directories", q)
}

// GetDirectory retrieves a directory by ID.
func (ds *DirectorySync) GetDirectory(ctx context.Context, id DirectoryID) (*Directory, error) {
	return workos.Get[Directory](ctx, ds.client, "/directories/"+url.PathEscape(string(id)), nil)
}

// DeleteDirectory deletes a directory.
func (ds *DirectorySync) DeleteDirectory(ctx context.Context, id DirectoryID) error {
	return workos.Delete(ctx, ds.client, "/directories/"+url.PathEscape(string(id)))
}

// ListGroupsParams are the parameters for ListGroups. One of DirectoryID
// and UserID is required.
type ListGroupsParams struct {
	// DirectoryID lists the groups of the given directory.
	DirectoryID DirectoryID

	// UserID lists the groups of the given directory user.
	UserID DirectoryUserID

	// Pagination selects the page to return.
	Pagination workos.PaginationParams
}

// ListGroups lists directory groups matching the given criteria.
func (ds *DirectorySync) ListGroups(ctx context.Context, params *ListGroupsParams) (*workos.PaginatedList[DirectoryGroup], error) {
	var p ListGroupsParams
	if params != nil {
		p = *params
	}

	q := url.Values{}
	if p.DirectoryID != "" {
		q.Set("directory", string(p.DirectoryID))
	}
	if p.UserID != "" {
		q.Set("user", string(p.UserID))
	}
	p.Pagination.SetQuery(q)

	return workos.Get[workos.PaginatedList[DirectoryGroup]](ctx, ds.client, "/directory_groups", q)
}

// GetGroup retrieves a directory group by ID.
func (ds *DirectorySync) GetGroup(ctx context.Context, id DirectoryGroupID) (*DirectoryGroup, error) {
	return workos.Get[DirectoryGroup](ctx, ds.client, "/directory_groups/"+url.PathEscape(string(id)), nil)
}

// ListUsersParams are the parameters for ListUsers. One of DirectoryID and
// GroupID is required.
type ListUsersParams struct {
	// DirectoryID lists the users of the given directory.
	DirectoryID DirectoryID

	// GroupID lists the users of the given directory group.
	GroupID DirectoryGroupID

	// Pagination selects the page to return.
	Pagination workos.PaginationParams
}

// ListUsers lists directory users matching the given criteria.
func (ds *DirectorySync) ListUsers(ctx context.Context, params *ListUsersParams) (*workos.PaginatedList[DirectoryUser], error) {
	var p ListUsersParams
	if params != nil {
		p = *params
	}

	q := url.Values{}
	if p.DirectoryID != "" {
		q.Set("directory", string(p.DirectoryID))
	}
	if p.GroupID != "" {
		q.Set("group", string(p.GroupID))
	}
	p.Pagination.SetQuery(q)

	return workos.Get[workos.PaginatedList[DirectoryUser]](ctx, ds.client, "/directory_users", q)
}

// GetUser retrieves a directory user by ID.
func (ds *DirectorySync) GetUser(ctx context.Context, id DirectoryUserID) (*DirectoryUser, error) {
	return workos.Get[DirectoryUser](ctx, ds.client, "/directory_users/"+url.PathEscape(string(id)), nil)
}
