// Package directorysync is a client for the WorkOS Directory Sync API.
//
// It reads the directories, groups and users synced from an organization's
// directory provider.
package directorysync
