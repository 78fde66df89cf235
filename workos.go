package workos

import (
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel/trace"
)

const (
	// DefaultBaseURL is the WorkOS API endpoint used when none is configured.
	DefaultBaseURL = "https://api.workos.com"

	defaultTimeout = 30 * time.Second
)

// Config configures the WorkOS client.
type Config struct {
	// APIKey authenticates all requests. Required.
	APIKey APIKey `mapstructure:"api_key" validate:"required"`

	// BaseURL is the API endpoint. Defaults to DefaultBaseURL.
	BaseURL string `mapstructure:"base_url" validate:"omitempty,url"`

	// Timeout bounds each request end to end. Defaults to 30s. An exceeded
	// timeout surfaces as a transport error.
	Timeout time.Duration `mapstructure:"timeout"`

	// Logger receives per-request debug logs. Credentials are never logged.
	// Nil disables logging.
	Logger *zerolog.Logger `mapstructure:"-"`

	// TracerProvider enables a span per request. Nil disables tracing.
	TracerProvider trace.TracerProvider `mapstructure:"-"`

	// HTTPClient overrides the underlying *http.Client. The client is
	// copied before use; its Timeout is replaced by Config.Timeout when
	// that is set explicitly.
	HTTPClient *http.Client `mapstructure:"-"`

	// Transport replaces the whole transport layer. Intended for tests;
	// when set, HTTPClient, Timeout, Logger and TracerProvider are ignored.
	Transport HTTPClient `mapstructure:"-"`
}

// ApplyDefaults fills in zero-value fields with defaults.
func (c *Config) ApplyDefaults() {
	if c.BaseURL == "" {
		c.BaseURL = DefaultBaseURL
	}
	if c.Timeout <= 0 {
		c.Timeout = defaultTimeout
	}
}

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
	})
	return validate.Struct(c)
}

// Client is the WorkOS API client. It holds the credential, the resolved
// base URL and the transport; it carries no mutable state and is safe for
// concurrent use. API modules wrap it, e.g. organizations.New(client).
type Client struct {
	apiKey    APIKey
	baseURL   *url.URL
	transport HTTPClient
	log       zerolog.Logger
}

// New creates a WorkOS client from the given configuration.
func New(cfg Config) (*Client, error) {
	timeoutSet := cfg.Timeout > 0
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	base, err := url.Parse(cfg.BaseURL)
	if err != nil {
		return nil, NewURLParseError(err)
	}

	log := zerolog.Nop()
	if cfg.Logger != nil {
		log = *cfg.Logger
	}

	transport := cfg.Transport
	if transport == nil {
		httpClient := &http.Client{Timeout: cfg.Timeout}
		if cfg.HTTPClient != nil {
			// Shallow copy so the caller's client is never mutated.
			clone := *cfg.HTTPClient
			if timeoutSet {
				clone.Timeout = cfg.Timeout
			}
			httpClient = &clone
		}

		var tracer trace.Tracer
		if cfg.TracerProvider != nil {
			tracer = cfg.TracerProvider.Tracer("github.com/workos-community/workos-go")
		}
		transport = newNetTransport(httpClient, log, tracer)
	}

	return &Client{
		apiKey:    cfg.APIKey,
		baseURL:   base,
		transport: transport,
		log:       log,
	}, nil
}

// Key returns the configured API key.
func (c *Client) Key() APIKey {
	return c.apiKey
}

// BaseURL returns the resolved API base URL.
func (c *Client) BaseURL() *url.URL {
	return c.baseURL
}

// Transport returns the transport used for requests.
func (c *Client) Transport() HTTPClient {
	return c.transport
}

// Endpoint joins a path onto the base URL. The path must already be escaped;
// a malformed path fails with a URL parse error before any network activity.
func (c *Client) Endpoint(path string) (*url.URL, error) {
	ref, err := url.Parse(strings.TrimLeft(path, "/"))
	if err != nil {
		return nil, NewURLParseError(err)
	}
	base := *c.baseURL
	if !strings.HasSuffix(base.Path, "/") {
		base.Path += "/"
	}
	return base.ResolveReference(ref), nil
}
