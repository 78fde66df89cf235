package workos

import "time"

// Timestamps are the audit timestamps carried by most WorkOS resources.
// They are embedded so the fields decode inline with the resource.
type Timestamps struct {
	// CreatedAt is when the resource was created.
	CreatedAt time.Time `json:"created_at"`

	// UpdatedAt is when the resource was last updated.
	UpdatedAt time.Time `json:"updated_at"`
}

// Metadata holds arbitrary key/value pairs attached to a resource.
type Metadata map[string]string
