// Package organizations provides a client for the WorkOS Organizations API.
//
//	orgs := organizations.New(client)
//	org, err := orgs.CreateOrganization(ctx, &organizations.CreateOrganizationParams{
//	    Name: "Foo Corp",
//	    DomainData: []organizations.OrganizationDomainData{
//	        {Domain: "foo-corp.com", State: organizations.DomainStatePending},
//	    },
//	})
package organizations
