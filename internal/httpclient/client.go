package httpclient

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/go-resty/resty/v2"
)

const (
	ContentType     = "Content-Type"
	ContentTypeJSON = "application/json"
)

// HttpClient is a wrapper around the resty.Client
type HttpClient struct {
	Client *resty.Client
}

// New creates an HttpClient whose relative request URLs are resolved against baseURL.
func New(baseURL string) *HttpClient {
	return NewWithClient(resty.New().SetBaseURL(baseURL))
}

// NewWithClient wraps an existing resty client, e.g. one with a mocked transport.
func NewWithClient(client *resty.Client) *HttpClient {
	client.SetLogger(slogLogger{})
	return &HttpClient{Client: client}
}

// Get performs a GET request. The bearer token is only attached when non-empty.
func (c *HttpClient) Get(ctx context.Context, url, token string) (*resty.Response, error) {
	slog.Debug("GET", "url", url, "authenticated", token != "")
	req := c.Client.R().SetContext(ctx)
	if token != "" {
		req.SetAuthToken(token)
	}
	return req.Get(url)
}

// Post sends an already encoded JSON body.
func (c *HttpClient) Post(ctx context.Context, url string, body []byte) (*resty.Response, error) {
	slog.Debug("POST", "url", url, "bytes", len(body))
	return c.Client.R().
		SetContext(ctx).
		SetHeader(ContentType, ContentTypeJSON).
		SetBody(body).
		Post(url)
}

// slogLogger routes resty's internal logging to the default slog logger.
type slogLogger struct{}

func (slogLogger) Errorf(format string, v ...interface{}) {
	slog.Error(fmt.Sprintf(format, v...), "component", "resty")
}

func (slogLogger) Warnf(format string, v ...interface{}) {
	slog.Warn(fmt.Sprintf(format, v...), "component", "resty")
}

func (slogLogger) Debugf(format string, v ...interface{}) {
	slog.Debug(fmt.Sprintf(format, v...), "component", "resty")
}
