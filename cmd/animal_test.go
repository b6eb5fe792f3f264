package cmd_test

import (
	"encoding/json"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jarcoal/httpmock"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"

	"github.com/manifest-network/animalspotter/cmd"
	"github.com/manifest-network/animalspotter/internal/spotter"
	"github.com/manifest-network/animalspotter/testutils"
)

func TestAnimalCmd(t *testing.T) {
	command := newCommand(t, "animal", cmd.AnimalCmdRunE, cmd.SetupAnimalCmdFlags)
	command.Args = cobra.ExactArgs(1)
	testutils.SetupMockResponder(t, "POST", testutils.LoginUrl, testutils.AuthTokenPath, http.StatusOK)
	testutils.SetupMockResponder(t, "GET", testutils.LionUrl, testutils.AnimalLionPath, http.StatusOK)

	out, err := testutils.Execute(t, command, args(urlP, usernameP, passwordP, []string{"Lion"})...)
	require.NoError(t, err)

	var animal spotter.Animal
	require.NoError(t, json.Unmarshal([]byte(out), &animal))
	require.Equal(t, 1, animal.ID)
	require.Equal(t, "Lion", animal.Name)
	require.Equal(t, testutils.LionImage, animal.ImageURL)
}

func TestAnimalCmd_Image(t *testing.T) {
	tmpdir := testutils.SetupTmpDir(t)
	imagePath := filepath.Join(tmpdir, "lion.png")

	command := newCommand(t, "animal", cmd.AnimalCmdRunE, cmd.SetupAnimalCmdFlags)
	command.Args = cobra.ExactArgs(1)
	testutils.SetupMockResponder(t, "POST", testutils.LoginUrl, testutils.AuthTokenPath, http.StatusOK)
	testutils.SetupMockResponder(t, "GET", testutils.LionUrl, testutils.AnimalLionPath, http.StatusOK)
	httpmock.RegisterResponder("GET", testutils.LionImage, testutils.ImageResponder)

	out, err := testutils.Execute(t, command, args(urlP, usernameP, passwordP, []string{"--image", imagePath, "Lion"})...)
	require.NoError(t, err)
	require.True(t, strings.HasSuffix(out, "Saved 12 bytes to "+imagePath))

	data, err := os.ReadFile(imagePath)
	require.NoError(t, err)
	require.Equal(t, testutils.ImageBytes, data)
}

func TestAnimalCmd_Failures(t *testing.T) {
	tt := []struct {
		name      string
		args      []string
		err       string
		is        error
		endpoints []testutils.Endpoint
	}{
		{name: "no name", args: args(urlP, usernameP, passwordP), err: "accepts 1 arg(s), received 0"},
		{name: "not found", args: args(urlP, usernameP, passwordP, []string{"Unicorn"}), is: spotter.ErrNoData, err: "could not fetch animal Unicorn", endpoints: []testutils.Endpoint{
			{Method: "POST", Url: testutils.LoginUrl, Data: testutils.AuthTokenPath, Code: http.StatusOK},
			{Method: "GET", Url: testutils.AnimalUrl("Unicorn"), Code: http.StatusNotFound},
		}},
		{name: "not found page", args: args(urlP, usernameP, passwordP, []string{"Unicorn"}), is: spotter.ErrDecodeFailed, err: "status code 404", endpoints: []testutils.Endpoint{
			{Method: "POST", Url: testutils.LoginUrl, Data: testutils.AuthTokenPath, Code: http.StatusOK},
			{Method: "GET", Url: testutils.AnimalUrl("Unicorn"), Data: testutils.UnauthorizedPath, Code: http.StatusNotFound},
		}},
		{name: "missing field", args: args(urlP, usernameP, passwordP, []string{"Lion"}), is: spotter.ErrDecodeFailed, err: "could not fetch animal Lion", endpoints: []testutils.Endpoint{
			{Method: "POST", Url: testutils.LoginUrl, Data: testutils.AuthTokenPath, Code: http.StatusOK},
			{Method: "GET", Url: testutils.LionUrl, Data: testutils.AnimalMissingFieldPath, Code: http.StatusOK},
		}},
		{name: "token rejected", args: args(urlP, usernameP, passwordP, []string{"Lion"}), is: spotter.ErrBadAuth, err: "please sign in again", endpoints: []testutils.Endpoint{
			{Method: "POST", Url: testutils.LoginUrl, Data: testutils.AuthTokenPath, Code: http.StatusOK},
			{Method: "GET", Url: testutils.LionUrl, Data: testutils.UnauthorizedPath, Code: http.StatusUnauthorized},
		}},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			command := newCommand(t, "animal", cmd.AnimalCmdRunE, cmd.SetupAnimalCmdFlags)
			command.Args = cobra.ExactArgs(1)
			for _, endpoint := range tc.endpoints {
				testutils.SetupMockResponder(t, endpoint.Method, endpoint.Url, endpoint.Data, endpoint.Code)
			}

			_, err := testutils.Execute(t, command, tc.args...)
			require.ErrorContains(t, err, tc.err)
			if tc.is != nil {
				require.ErrorIs(t, err, tc.is)
			}
		})
	}
}
