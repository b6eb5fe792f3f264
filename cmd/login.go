package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// loginCmd represents the login command
var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Check that the given credentials can sign in",
	RunE:  LoginCmdRunE,
}

func LoginCmdRunE(cmd *cobra.Command, args []string) error {
	if _, err := signedInClient(cmd.Context()); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Signed in as %s\n", LoadAuthConfigFromCLI().Username)
	return nil
}

func init() {
	rootCmd.AddCommand(loginCmd)
}
