// Package mfa is a client for the WorkOS Multi-Factor Authentication API.
//
// It enrolls authentication factors, issues challenges against them and
// verifies the codes users respond with.
package mfa
