package testutils

import (
	"bytes"
	"embed"
	"strings"
	"testing"

	"github.com/jarcoal/httpmock"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"
)

//go:embed testdata/*.json
var MockData embed.FS

const (
	AuthTokenPath          = "testdata/auth-token.json"
	AuthNoTokenPath        = "testdata/auth-no-token.json"
	AnimalNamesPath        = "testdata/animal-names.json"
	AnimalLionPath         = "testdata/animal-lion.json"
	AnimalZebraPath        = "testdata/animal-zebra.json"
	AnimalFlamingoPath     = "testdata/animal-flamingo.json"
	AnimalMissingFieldPath = "testdata/animal-missing-field.json"
	UnauthorizedPath       = "testdata/unauthorized.json"
)

// Endpoint describes a mocked route. An empty Data path responds with an empty body.
type Endpoint struct {
	Method string
	Url    string
	Data   string
	Code   int
}

// MustReadFile returns the content of an embedded testdata file.
func MustReadFile(t *testing.T, path string) []byte {
	t.Helper()
	data, err := MockData.ReadFile(path)
	require.NoError(t, err)
	return data
}

// SetupMockResponder registers a responder serving the embedded testdata file at path.
func SetupMockResponder(t *testing.T, method, url, path string, code int) {
	t.Helper()
	var data []byte
	if path != "" {
		data = MustReadFile(t, path)
	}
	httpmock.RegisterResponder(method, url, httpmock.NewBytesResponder(code, data))
}

// Execute runs the command with the given arguments and returns what it printed.
func Execute(t *testing.T, c *cobra.Command, args ...string) (string, error) {
	t.Helper()

	buf := new(bytes.Buffer)
	c.SetOut(buf)
	c.SetErr(buf)
	c.SetArgs(args)
	c.SilenceUsage = true
	c.SilenceErrors = true

	err := c.Execute()
	return strings.TrimSpace(buf.String()), err
}
