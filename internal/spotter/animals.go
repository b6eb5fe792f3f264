package spotter

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
)

// ListAnimalNames returns the animal names in the order the server sent them.
func (c *Client) ListAnimalNames(ctx context.Context) ([]string, error) {
	body, statusCode, err := c.authenticatedGet(ctx, AllAnimalsEndpoint)
	if err != nil {
		return nil, err
	}

	var names []string
	if err := json.Unmarshal(body, &names); err != nil {
		slog.Error("error decoding animal names", "status", statusCode, "error", err)
		return nil, networkError(ErrDecodeFailed, statusCode, err)
	}

	// A JSON null is not a list
	if names == nil {
		return nil, networkError(ErrDecodeFailed, statusCode, nil)
	}

	slog.Debug("animal names", "count", len(names))
	return names, nil
}

// FetchAnimalDetail returns the sighting detail for name.
// The name is used verbatim as the last path segment; escaping is up to the caller.
func (c *Client) FetchAnimalDetail(ctx context.Context, name string) (*Animal, error) {
	body, statusCode, err := c.authenticatedGet(ctx, GetAnimalEndpoint(name))
	if err != nil {
		return nil, err
	}

	var payload animalPayload
	if err := json.Unmarshal(body, &payload); err != nil {
		slog.Error("error decoding animal", "name", name, "status", statusCode, "error", err)
		return nil, networkError(ErrDecodeFailed, statusCode, err)
	}

	if err := validate.Struct(&payload); err != nil {
		slog.Error("incomplete animal", "name", name, "status", statusCode, "error", err)
		return nil, networkError(ErrDecodeFailed, statusCode, err)
	}

	animal, err := payload.toAnimal()
	if err != nil {
		slog.Error("invalid animal", "name", name, "error", err)
		return nil, networkError(ErrDecodeFailed, statusCode, err)
	}
	slog.Debug("animal", "animal", animal)
	return animal, nil
}

// authenticatedGet fails fast without a token, so no request goes out unauthenticated.
// Apart from 401 the status is not interpreted: the body decides, and the caller reports
// the status along with any decode failure.
func (c *Client) authenticatedGet(ctx context.Context, endpoint string) ([]byte, int, error) {
	token, ok := c.session.Token()
	if !ok {
		return nil, 0, networkError(ErrUnauthenticated, 0, nil)
	}

	response, err := c.http.Get(ctx, endpoint, token)
	if err != nil {
		slog.Error("error performing http get", "endpoint", endpoint, "error", err)
		return nil, 0, networkError(ErrOther, 0, err)
	}

	statusCode := response.StatusCode()
	if statusCode == http.StatusUnauthorized {
		slog.Warn("bearer token rejected", "endpoint", endpoint)
		return nil, statusCode, networkError(ErrBadAuth, statusCode, nil)
	}

	body := response.Body()
	if len(body) == 0 {
		return nil, statusCode, networkError(ErrNoData, statusCode, nil)
	}

	return body, statusCode, nil
}

// checkBody validates an asset response, where an error status is never image data.
func checkBody(body []byte, statusCode int) ([]byte, error) {
	if statusCode < http.StatusOK || statusCode >= http.StatusMultipleChoices {
		return nil, networkError(ErrOther, statusCode, nil)
	}

	if len(body) == 0 {
		return nil, networkError(ErrNoData, statusCode, nil)
	}

	return body, nil
}
