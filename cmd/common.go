package cmd

import (
	"context"
	"log/slog"

	"github.com/go-resty/resty/v2"
	"github.com/pkg/errors"

	"github.com/manifest-network/animalspotter/internal/config"
	"github.com/manifest-network/animalspotter/internal/httpclient"
	"github.com/manifest-network/animalspotter/internal/spotter"
)

type ContextKey string

// RestyClientKey is the context key of an optional *resty.Client used by CreateRestClient.
const RestyClientKey ContextKey = "restyClient"

const ErrorBindingFlag = "unable to bind flag"

// CreateRestClient creates a new, unauthenticated, AnimalSpotter client for the given URL.
// The resty client found in the context under RestyClientKey is used when present.
func CreateRestClient(ctx context.Context, url string) *spotter.Client {
	slog.Info("Creating REST client...")
	client, ok := ctx.Value(RestyClientKey).(*resty.Client)
	if !ok || client == nil {
		client = resty.New()
	}
	client.SetBaseURL(url)

	return spotter.NewWithClient(httpclient.NewWithClient(client), nil)
}

// AuthenticateRestClient signs in and keeps the token in the client session
func AuthenticateRestClient(ctx context.Context, c *spotter.Client, auth config.AuthConfig) error {
	slog.Info("Authenticating...", "username", auth.Username)
	err := c.SignIn(ctx, spotter.Credentials{Username: auth.Username, Password: auth.Password})
	if err != nil {
		slog.Error("could not sign in", "error", err)
		return errors.WithMessage(err, "could not sign in")
	}

	return nil
}

// withAuthHint asks the user to sign in again when the token is missing or rejected
func withAuthHint(err error) error {
	if spotter.IsAuthFailure(err) {
		return errors.WithMessage(err, "please sign in again")
	}
	return err
}

// signedInClient loads and validates the configuration, then returns an authenticated client
func signedInClient(ctx context.Context) (*spotter.Client, error) {
	cfg := LoadConfigFromCLI()
	slog.Debug("args", "config", cfg)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	authConfig := LoadAuthConfigFromCLI()
	slog.Debug("args", "auth-config", authConfig)
	if err := authConfig.Validate(); err != nil {
		return nil, err
	}

	c := CreateRestClient(ctx, cfg.Url)
	if err := AuthenticateRestClient(ctx, c, authConfig); err != nil {
		return nil, err
	}

	return c, nil
}
