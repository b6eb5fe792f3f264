package httpclient_test

import (
	"context"
	"io"
	"net/http"
	"testing"

	"github.com/go-resty/resty/v2"
	"github.com/jarcoal/httpmock"
	"github.com/stretchr/testify/require"

	"github.com/manifest-network/animalspotter/internal/httpclient"
)

const rootUrl = "http://fakeurl:3001/api"

func TestNew(t *testing.T) {
	tests := []struct {
		desc   string
		client *resty.Client
	}{
		{"new", nil},
		{"new with client", resty.New()},
	}

	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			if tt.client == nil {
				c := httpclient.New(rootUrl)
				require.NotNil(t, c)
				require.Equal(t, rootUrl, c.Client.BaseURL)
			} else {
				c := httpclient.NewWithClient(tt.client)
				require.Same(t, tt.client, c.Client)
			}
		})
	}
}

func setup(t *testing.T) *httpclient.HttpClient {
	client := resty.New().SetBaseURL(rootUrl)
	httpmock.ActivateNonDefault(client.GetClient())
	t.Cleanup(httpmock.DeactivateAndReset)
	return httpclient.NewWithClient(client)
}

func TestGet(t *testing.T) {
	c := setup(t)

	var auth []string
	httpmock.RegisterResponder("GET", rootUrl+"/animals/all", func(r *http.Request) (*http.Response, error) {
		auth = append(auth, r.Header.Get("Authorization"))
		return httpmock.NewStringResponse(http.StatusOK, "[]"), nil
	})

	_, err := c.Get(context.Background(), "/animals/all", "secret")
	require.NoError(t, err)
	_, err = c.Get(context.Background(), "animals/all", "")
	require.NoError(t, err)

	require.Equal(t, []string{"Bearer secret", ""}, auth)
}

func TestGet_AbsoluteURL(t *testing.T) {
	c := setup(t)
	httpmock.RegisterResponder("GET", "http://fakeimages:3002/lion.jpg", httpmock.NewBytesResponder(http.StatusOK, []byte{1, 2, 3}))

	response, err := c.Get(context.Background(), "http://fakeimages:3002/lion.jpg", "")
	require.NoError(t, err)
	require.Equal(t, []byte{1, 2, 3}, response.Body())
}

func TestPost(t *testing.T) {
	c := setup(t)
	httpmock.RegisterResponder("POST", rootUrl+"/users/login", func(r *http.Request) (*http.Response, error) {
		require.Equal(t, httpclient.ContentTypeJSON, r.Header.Get(httpclient.ContentType))
		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		require.JSONEq(t, `{"username":"user","password":"pass"}`, string(body))
		return httpmock.NewStringResponse(http.StatusOK, `{"token":"t"}`), nil
	})

	response, err := c.Post(context.Background(), "/users/login", []byte(`{"username":"user","password":"pass"}`))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, response.StatusCode())
	require.Equal(t, `{"token":"t"}`, string(response.Body()))
}
