package spotter

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
)

// FetchBytes downloads the raw payload at rawURL without authentication.
// The bytes are returned as-is; interpreting them (e.g. as an image) is up to the caller.
func (c *Client) FetchBytes(ctx context.Context, rawURL string) ([]byte, error) {
	if err := validateAssetURL(rawURL); err != nil {
		return nil, networkError(ErrOther, 0, err)
	}

	response, err := c.http.Get(ctx, rawURL, "")
	if err != nil {
		slog.Error("error fetching asset", "url", rawURL, "error", err)
		return nil, networkError(ErrOther, 0, err)
	}

	body, err := checkBody(response.Body(), response.StatusCode())
	if err != nil {
		return nil, err
	}

	slog.Debug("asset fetched", "url", rawURL, "bytes", len(body))
	return body, nil
}

func validateAssetURL(rawURL string) error {
	u, err := url.ParseRequestURI(rawURL)
	if err != nil {
		return fmt.Errorf("invalid URL: %v", err)
	}

	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("unsupported URL scheme: %q", u.Scheme)
	}

	if u.Host == "" {
		return fmt.Errorf("URL has no host: %s", rawURL)
	}

	return nil
}
