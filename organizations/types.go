package organizations

import (
	workos "github.com/workos-community/workos-go"
)

// OrganizationID is the unique ID of an Organization.
type OrganizationID string

// String returns the raw ID.
func (id OrganizationID) String() string { return string(id) }

// OrganizationDomainID is the unique ID of an OrganizationDomain.
type OrganizationDomainID string

// DomainState is the verification state of an organization domain.
type DomainState string

const (
	// DomainStatePending means the domain has not been verified yet.
	DomainStatePending DomainState = "pending"
	// DomainStateVerified means ownership of the domain has been verified.
	DomainStateVerified DomainState = "verified"
	// DomainStateFailed means domain verification failed.
	DomainStateFailed DomainState = "failed"
)

// OrganizationDomain is a domain associated with an Organization.
type OrganizationDomain struct {
	// ID is the unique ID of the domain record.
	ID OrganizationDomainID `json:"id"`

	// Domain is the domain name.
	Domain string `json:"domain"`

	// State is the verification state of the domain. Unrecognized states
	// pass through as their raw value.
	State DomainState `json:"state,omitempty"`
}

// Organization is a WorkOS organization.
type Organization struct {
	// ID is the unique ID of the organization.
	ID OrganizationID `json:"id"`

	// Name is the descriptive name of the organization. Not unique.
	Name string `json:"name"`

	// ExternalID is the caller-assigned external ID, if any.
	ExternalID string `json:"external_id,omitempty"`

	// Domains are the domains associated with the organization.
	Domains []OrganizationDomain `json:"domains"`

	// Metadata holds key/value pairs attached to the organization.
	Metadata workos.Metadata `json:"metadata,omitempty"`

	workos.Timestamps
}

// OrganizationDomainData describes a domain to attach when creating or
// updating an organization. The domain should be owned by the organization,
// not a common consumer domain like gmail.com.
type OrganizationDomainData struct {
	// Domain is the domain name to add.
	Domain string `json:"domain"`

	// State is the verification state to create the domain in:
	// DomainStatePending or DomainStateVerified.
	State DomainState `json:"state"`
}
