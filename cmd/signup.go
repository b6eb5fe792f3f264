package cmd

import (
	"fmt"
	"log/slog"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/manifest-network/animalspotter/internal/spotter"
)

// signUpCmd represents the signup command
var signUpCmd = &cobra.Command{
	Use:   "signup",
	Short: "Create a new AnimalSpotter account",
	RunE:  SignUpCmdRunE,
}

func SignUpCmdRunE(cmd *cobra.Command, args []string) error {
	config := LoadConfigFromCLI()
	slog.Debug("args", "config", config)
	if err := config.Validate(); err != nil {
		return err
	}

	authConfig := LoadAuthConfigFromCLI()
	slog.Debug("args", "auth-config", authConfig)
	if err := authConfig.Validate(); err != nil {
		return err
	}

	c := CreateRestClient(cmd.Context(), config.Url)
	slog.Info("Signing up...", "username", authConfig.Username)
	err := c.SignUp(cmd.Context(), spotter.Credentials{Username: authConfig.Username, Password: authConfig.Password})
	if err != nil {
		return errors.WithMessage(err, "could not sign up")
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Signed up as %s\n", authConfig.Username)
	return nil
}

func init() {
	rootCmd.AddCommand(signUpCmd)
}
