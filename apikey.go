package workos

// An APIKey authenticates requests against the WorkOS API.
//
// The raw key is only ever emitted into the Authorization header. Anything
// user visible (logs, errors, %v formatting of configs) should go through
// Redacted.
type APIKey string

// String returns the raw key. It exists so the transport can place the key
// in a bearer Authorization header.
func (k APIKey) String() string {
	return string(k)
}

// Redacted returns a masked form of the key safe for logs and error messages.
func (k APIKey) Redacted() string {
	if len(k) <= 8 {
		return "sk_***"
	}
	return string(k[:8]) + "***"
}
