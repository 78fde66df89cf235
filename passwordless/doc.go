// Package passwordless is a client for the WorkOS Magic Link API.
package passwordless
