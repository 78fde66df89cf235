package passwordless

import (
	"context"
	"net/url"
	"time"

	workos "github.com/workos-community/workos-go"
)

// PasswordlessSessionID is the unique ID of a PasswordlessSession.
type PasswordlessSessionID string

// PasswordlessSessionType is the kind of a passwordless session. Magic Link
// is the only kind the API issues.
type PasswordlessSessionType string

// PasswordlessSessionTypeMagicLink authenticates with a link emailed to the
// user.
const PasswordlessSessionTypeMagicLink PasswordlessSessionType = "MagicLink"

// PasswordlessSession is a pending Magic Link authentication.
type PasswordlessSession struct {
	// ID is the unique ID of the session.
	ID PasswordlessSessionID `json:"id"`

	// Type is the kind of session.
	Type PasswordlessSessionType `json:"type"`

	// Email is the address the Magic Link was sent to.
	Email string `json:"email"`

	// Link is the Magic Link the user authenticates with.
	Link string `json:"link"`

	// ExpiresAt is when the session expires.
	ExpiresAt time.Time `json:"expires_at"`
}

// Passwordless is a client for the WorkOS Magic Link API.
type Passwordless struct {
	client *workos.Client
}

// New returns a Passwordless client backed by the given WorkOS client.
func New(client *workos.Client) *Passwordless {
	return &Passwordless{client: client}
}

// CreatePasswordlessSessionParams are the parameters for
// CreatePasswordlessSession.
type CreatePasswordlessSessionParams struct {
	// Email is the address to send the Magic Link to. Required.
	Email string `json:"email"`

	// RedirectURI overrides the default redirect URI configured for the
	// environment.
	RedirectURI string `json:"redirect_uri,omitempty"`

	// State is an opaque value passed back to the redirect URI.
	State string `json:"state,omitempty"`

	// ExpiresIn is the session lifetime in seconds (300-1800). The API
	// default applies when zero.
	ExpiresIn int `json:"expires_in,omitempty"`

	// Type is the kind of session to create. Filled in as Magic Link.
	Type PasswordlessSessionType `json:"type"`
}

// CreatePasswordlessSession creates a Magic Link session. The link is
// returned but not sent; call SendPasswordlessSession or deliver it
// yourself.
func (p *Passwordless) CreatePasswordlessSession(ctx context.Context, params *CreatePasswordlessSessionParams) (*PasswordlessSession, error) {
	body := *params
	if body.Type == "" {
		body.Type = PasswordlessSessionTypeMagicLink
	}
	return workos.Post[PasswordlessSession](ctx, p.client, "/passwordless/sessions", &body)
}

// SendPasswordlessSession emails the session's Magic Link to the user.
func (p *Passwordless) SendPasswordlessSession(ctx context.Context, id PasswordlessSessionID) error {
	path := "/passwordless/sessions/" + url.PathEscape(string(id)) + "/send"
	u, err := p.client.Endpoint(path)
	if err != nil {
		return err
	}
	res, err := p.client.Transport().Post(u).BearerAuth(p.client.Key()).Send(ctx)
	if err != nil {
		return workos.NewTransportError(err)
	}
	res, err = workos.ClassifyResponse(res)
	if err != nil {
		return err
	}
	workos.DiscardResponse(res)
	return nil
}
