package config

import (
	"fmt"
	"log/slog"
	"net/url"
)

// Config represents the configuration shared by every command
type Config struct {
	Url string // Root URL of the AnimalSpotter API
}

// Validate the Config making sure all required fields are present and valid
func (c Config) Validate() error {
	if c.Url == "" {
		return fmt.Errorf("url is required")
	}

	u, err := url.ParseRequestURI(c.Url)
	if err != nil {
		return fmt.Errorf("could not parse URL: %w", err)
	}

	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("unsupported URL scheme: %s", u.Scheme)
	}

	return nil
}

type AuthConfig struct {
	Username string // The username to authenticate with
	Password string // The password to authenticate with
}

// LogValue omits the password when the AuthConfig is logged
func (c AuthConfig) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("username", c.Username),
		slog.String("password", "[REDACTED]"),
	)
}

func (c AuthConfig) Validate() error {
	if c.Username == "" {
		return fmt.Errorf("username is required")
	}

	if c.Password == "" {
		return fmt.Errorf("password is required")
	}

	return nil
}

type ListConfig struct {
	Details     bool    // Fetch the detail of every listed animal
	Concurrency int     // Maximum number of detail requests in flight
	RPS         float64 // Detail requests per second, 0 means unlimited
}

func (c ListConfig) Validate() error {
	if c.Concurrency < 1 {
		return fmt.Errorf("concurrency must be >= 1")
	}

	if c.RPS < 0 {
		return fmt.Errorf("rps must be >= 0")
	}

	return nil
}

type FetchConfig struct {
	Output string // Destination file, derived from the URL when empty
}
