package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// animalCmd represents the animal command
var animalCmd = &cobra.Command{
	Use:   "animal NAME",
	Short: "Show the sighting detail of an animal.",
	Long: `The animal command signs in and prints the sighting detail of the named animal as JSON.

The name is sent as-is; escape it yourself if it contains reserved URL characters.
With '--image', the animal picture is also downloaded to the given path.`,
	Args: cobra.ExactArgs(1),
	RunE: AnimalCmdRunE,
}

func AnimalCmdRunE(cmd *cobra.Command, args []string) error {
	name := args[0]
	imagePath := viper.GetString("image")

	c, err := signedInClient(cmd.Context())
	if err != nil {
		return err
	}

	slog.Info("Fetching animal...", "name", name)
	animal, err := c.FetchAnimalDetail(cmd.Context(), name)
	if err != nil {
		return errors.WithMessagef(withAuthHint(err), "could not fetch animal %s", name)
	}

	if err := printJSON(cmd.OutOrStdout(), animal); err != nil {
		return err
	}

	if imagePath == "" {
		return nil
	}

	slog.Info("Fetching image...", "url", animal.ImageURL)
	data, err := c.FetchBytes(cmd.Context(), animal.ImageURL)
	if err != nil {
		return errors.WithMessagef(err, "could not fetch image of %s", name)
	}

	if err := os.WriteFile(imagePath, data, 0o644); err != nil {
		return errors.WithMessage(err, "could not save image")
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Saved %d bytes to %s\n", len(data), imagePath)
	return nil
}

func init() {
	SetupAnimalCmdFlags(animalCmd)
	rootCmd.AddCommand(animalCmd)
}

func SetupAnimalCmdFlags(command *cobra.Command) {
	command.Flags().String("image", "", "Download the animal picture to this path")
	if err := viper.BindPFlag("image", command.Flags().Lookup("image")); err != nil {
		slog.Error(ErrorBindingFlag, "error", err)
	}
}
