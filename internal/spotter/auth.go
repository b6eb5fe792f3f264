package spotter

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-resty/resty/v2"
)

// SignUp registers a new user. Any status other than 200 is a rejection.
func (c *Client) SignUp(ctx context.Context, creds Credentials) error {
	slog.Debug("signing up", "username", creds.Username, "password", "[REDACTED]")

	_, err := c.postCredentials(ctx, SignUpEndpoint, creds)
	return err
}

// SignIn authenticates and stores the issued bearer token in the client session.
// The session is left untouched on any failure.
func (c *Client) SignIn(ctx context.Context, creds Credentials) error {
	slog.Debug("signing in", "username", creds.Username, "password", "[REDACTED]")

	response, err := c.postCredentials(ctx, SignInEndpoint, creds)
	if err != nil {
		return err
	}

	var bearer Bearer
	if err := json.Unmarshal(response.Body(), &bearer); err != nil {
		slog.Error("error decoding bearer", "error", err)
		return authError(ErrDecodingFailed, 0, err)
	}

	if bearer.Token == "" {
		slog.Error("no token returned")
		return authError(ErrDecodingFailed, 0, nil)
	}

	slog.Debug("setting auth token", "token", "[REDACTED]")
	c.session.Set(bearer.Token)

	return nil
}

func (c *Client) postCredentials(ctx context.Context, endpoint string, creds Credentials) (*resty.Response, error) {
	body, err := json.Marshal(&creds)
	if err != nil {
		return nil, authError(ErrEncodingFailed, 0, err)
	}

	response, err := c.http.Post(ctx, endpoint, body)
	if err != nil {
		slog.Error("error performing http post", "endpoint", endpoint, "error", err)
		return nil, authError(ErrTransport, 0, err)
	}

	if statusCode := response.StatusCode(); statusCode != http.StatusOK {
		slog.Warn("request rejected", "endpoint", endpoint, "status", statusCode)
		return nil, authError(ErrServerRejected, statusCode, nil)
	}

	return response, nil
}
