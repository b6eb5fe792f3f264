// Package spotter is a client for the AnimalSpotter REST API.
//
// A Client owns its Session: SignIn stores the issued bearer token and the resource
// endpoints read it before every call. The token is never cleared by the client, not even
// after the server rejects it, so callers decide when to sign in again.
package spotter

import (
	"github.com/manifest-network/animalspotter/internal/httpclient"
)

type Client struct {
	http    *httpclient.HttpClient
	session *Session
}

// New creates a Client for the API rooted at baseURL, e.g. DefaultBaseURL.
func New(baseURL string) *Client {
	return NewWithClient(httpclient.New(baseURL), nil)
}

// NewWithClient creates a Client on top of an existing HttpClient.
// A nil session starts the client unauthenticated.
func NewWithClient(client *httpclient.HttpClient, session *Session) *Client {
	if session == nil {
		session = NewSession()
	}
	return &Client{http: client, session: session}
}

// Session returns the session owned by the client.
func (c *Client) Session() *Session {
	return c.session
}
