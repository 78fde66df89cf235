// Package roles is a client for the WorkOS Roles API.
package roles
