// Package workos provides a Go SDK for the WorkOS API.
//
// The root package contains the client, the error taxonomy, the response
// classification pipeline, and the pluggable transport the API modules are
// built on. Each API module lives in its own subpackage:
//
//   - organizations: the Organizations API
//   - usermanagement: the User Management (AuthKit) API
//   - sso: the Single Sign-On API
//   - directorysync: the Directory Sync API
//   - mfa: the Multi-Factor Authentication API
//   - roles: the Roles API
//   - events: the Events API
//   - passwordless: the Magic Link API
//
// # Basic Usage
//
//	client, err := workos.New(workos.Config{
//	    APIKey: "sk_example_123456789",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	orgs := organizations.New(client)
//	org, err := orgs.CreateOrganization(ctx, &organizations.CreateOrganizationParams{
//	    Name: "Foo Corp",
//	})
//
// # Error Handling
//
// Every operation returns a typed *workos.Error on failure. HTTP 401 always
// maps to an unauthorized error regardless of the response body, so callers
// have a stable signal to re-authenticate on:
//
//	if workos.IsUnauthorized(err) {
//	    // rotate the API key
//	}
//
// Endpoint-specific error payloads are carried on operation errors and can be
// extracted with the generic helper:
//
//	if authErr, ok := workos.OperationPayload[usermanagement.AuthenticateError](err); ok {
//	    fmt.Println(authErr.Code)
//	}
//
// # Transport
//
// The SDK talks to the API through a small capability interface
// (HTTPClient / RequestBuilder / Response) so tests can substitute the
// transport without touching operation code. Request builders and responses
// are single use: sending a builder twice or reading a response body twice
// fails deterministically instead of silently returning stale data.
package workos
