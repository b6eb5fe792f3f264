package testutils

import (
	"errors"
	"net/http"

	"github.com/jarcoal/httpmock"
)

var (
	AuthResponder, _  = httpmock.NewJsonResponder(http.StatusOK, map[string]any{"id": "6F1A0C5E", "token": Token, "userID": 1})
	NamesResponder, _ = httpmock.NewJsonResponder(http.StatusOK, AnimalNames)
)

var (
	UnauthorizedResponder    = httpmock.NewStringResponder(http.StatusUnauthorized, `{"error":true,"reason":"User not authenticated."}`)
	NotFoundResponder        = httpmock.NewStringResponder(http.StatusNotFound, `{"error":true,"reason":"Not Found"}`)
	GarbageResponder         = httpmock.NewStringResponder(http.StatusOK, "{\"foo\": \"bar\"")
	EmptyResponder           = httpmock.NewBytesResponder(http.StatusOK, nil)
	ConnectionErrorResponder = httpmock.NewErrorResponder(errors.New("connection reset by peer"))
)

var (
	ImageBytes     = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n', 0x00, 0x00, 0x00, 0x0d}
	ImageResponder = httpmock.NewBytesResponder(http.StatusOK, ImageBytes)
)

// BearerResponder answers with next only when the request carries the expected bearer token,
// and with 401 otherwise.
func BearerResponder(token string, next httpmock.Responder) httpmock.Responder {
	return func(r *http.Request) (*http.Response, error) {
		if r.Header.Get("Authorization") != "Bearer "+token {
			return UnauthorizedResponder(r)
		}
		return next(r)
	}
}
