// Package sso is a client for the WorkOS Single Sign-On API.
//
// It builds authorization URLs, exchanges authorization codes for SSO
// profiles and manages SSO connections.
package sso
