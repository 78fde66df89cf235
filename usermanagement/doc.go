// Package usermanagement provides a client for the WorkOS User Management
// (AuthKit) API: users, authentication, sessions, invitations, organization
// memberships, password resets and authentication factors.
//
//	um := usermanagement.New(client)
//	resp, err := um.AuthenticateWithCode(ctx, &usermanagement.AuthenticateWithCodeParams{
//	    ClientID:     "client_123456789",
//	    ClientSecret: "sk_example_123456789",
//	    Code:         "01E2RJ4C05B52KKZ8FSRDAP23J",
//	})
//
// Authentication endpoints return structured error payloads; the SDK decodes
// them and maps the invalid_client and unauthorized_client codes onto the
// unauthorized error so callers get the same signal as for HTTP 401.
package usermanagement
