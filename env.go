package workos

import (
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// FromEnv builds a Config from WORKOS_* environment variables, loading a
// .env file from the working directory first when one exists.
//
// Recognized variables: WORKOS_API_KEY, WORKOS_BASE_URL, WORKOS_TIMEOUT
// (a Go duration, e.g. "10s").
func FromEnv() Config {
	// Missing .env is fine; the process environment still applies.
	_ = godotenv.Load()

	v := viper.New()
	v.SetEnvPrefix("WORKOS")
	v.AutomaticEnv()

	return Config{
		APIKey:  APIKey(v.GetString("API_KEY")),
		BaseURL: v.GetString("BASE_URL"),
		Timeout: v.GetDuration("TIMEOUT"),
	}
}

// NewFromEnv creates a client configured from the environment. See FromEnv.
func NewFromEnv() (*Client, error) {
	return New(FromEnv())
}
