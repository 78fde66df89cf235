package organizations

import (
	"context"
	"net/url"

	workos "github.com/workos-community/workos-go"
)

// Organizations is a client for the WorkOS Organizations API.
type Organizations struct {
	client *workos.Client
}

// New returns an Organizations client backed by the given WorkOS client.
func New(client *workos.Client) *Organizations {
	return &Organizations{client: client}
}

// CreateOrganizationParams are the parameters for CreateOrganization.
type CreateOrganizationParams struct {
	// Name is a descriptive name for the organization. Required.
	Name string `json:"name"`

	// DomainData are the domains to attach to the organization.
	DomainData []OrganizationDomainData `json:"domain_data,omitempty"`

	// ExternalID is an optional caller-assigned external ID.
	ExternalID string `json:"external_id,omitempty"`

	// Metadata holds key/value pairs to attach to the organization.
	Metadata workos.Metadata `json:"metadata,omitempty"`
}

// CreateOrganization creates an organization. Pass
// workos.WithIdempotencyKey to make retried submissions safe.
func (o *Organizations) CreateOrganization(ctx context.Context, params *CreateOrganizationParams, opts ...workos.CallOption) (*Organization, error) {
	return workos.Post[Organization](ctx, o.client, "/organizations", params, opts...)
}

// GetOrganization retrieves an organization by ID.
func (o *Organizations) GetOrganization(ctx context.Context, id OrganizationID) (*Organization, error) {
	return workos.Get[Organization](ctx, o.client, "/organizations/"+url.PathEscape(string(id)), nil)
}

// GetOrganizationByExternalID retrieves an organization by its external ID.
func (o *Organizations) GetOrganizationByExternalID(ctx context.Context, externalID string) (*Organization, error) {
	return workos.Get[Organization](ctx, o.client, "/organizations/external_id/"+url.PathEscape(externalID), nil)
}

// ListOrganizationsParams are the parameters for ListOrganizations.
type ListOrganizationsParams struct {
	// Domains filters to organizations with any of the given domains.
	Domains []string

	// Pagination selects the page to return.
	Pagination workos.PaginationParams
}

// ListOrganizations lists organizations matching the given criteria.
func (o *Organizations) ListOrganizations(ctx context.Context, params *ListOrganizationsParams) (*workos.PaginatedList[Organization], error) {
	var p ListOrganizationsParams
	if params != nil {
		p = *params
	}

	q := url.Values{}
	for _, domain := range p.Domains {
		q.Add("domains[]", domain)
	}
	p.Pagination.SetQuery(q)

	return workos.Get[workos.PaginatedList[Organization]](ctx, o.client, "/organizations", q)
}

// UpdateOrganizationParams are the parameters for UpdateOrganization.
type UpdateOrganizationParams struct {
	// Name is the new descriptive name for the organization.
	Name string `json:"name,omitempty"`

	// DomainData replaces the domains attached to the organization.
	DomainData []OrganizationDomainData `json:"domain_data,omitempty"`

	// ExternalID updates the caller-assigned external ID.
	ExternalID string `json:"external_id,omitempty"`

	// Metadata replaces the metadata attached to the organization.
	Metadata workos.Metadata `json:"metadata,omitempty"`
}

// UpdateOrganization updates an organization.
func (o *Organizations) UpdateOrganization(ctx context.Context, id OrganizationID, params *UpdateOrganizationParams) (*Organization, error) {
	return workos.Put[Organization](ctx, o.client, "/organizations/"+url.PathEscape(string(id)), params)
}

// DeleteOrganization deletes an organization.
func (o *Organizations) DeleteOrganization(ctx context.Context, id OrganizationID) error {
	return workos.Delete(ctx, o.client, "/organizations/"+url.PathEscape(string(id)))
}
