package cmd_test

import (
	"context"
	"testing"

	"github.com/go-resty/resty/v2"
	"github.com/jarcoal/httpmock"
	"github.com/spf13/cobra"

	"github.com/manifest-network/animalspotter/cmd"
)

// newCommand builds a command wired like the root command, with a mocked resty client
// injected into its context.
func newCommand(t *testing.T, use string, runE func(*cobra.Command, []string) error, setups ...func(*cobra.Command)) *cobra.Command {
	command := &cobra.Command{Use: use, PersistentPreRunE: cmd.RootCmdPersistentPreRunE, RunE: runE}

	// Create a new resty client and inject it into the command context
	client := resty.New()
	ctx := context.WithValue(context.Background(), cmd.RestyClientKey, client)
	command.SetContext(ctx)

	// Enable http mocking on the resty client
	httpmock.ActivateNonDefault(client.GetClient())
	t.Cleanup(httpmock.DeactivateAndReset)

	cmd.SetupRootCmdFlags(command)
	for _, setup := range setups {
		setup(command)
	}

	return command
}
