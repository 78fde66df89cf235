// Package events is a client for the WorkOS Events API.
//
// Events record changes to resources in a WorkOS environment. Each event
// carries its payload as raw JSON; UnmarshalEventData decodes it into the
// resource type matching the event name.
package events
