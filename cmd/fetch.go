package cmd

import (
	"fmt"
	"log/slog"
	"net/url"
	"os"
	"path"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// fetchCmd represents the fetch command
var fetchCmd = &cobra.Command{
	Use:   "fetch URL",
	Short: "Download an asset, such as an animal picture, by absolute URL.",
	Long: `The fetch command downloads the asset at URL without signing in.

The asset is written to '--output' when set. Otherwise the last path segment of the URL is
used as file name, or a random '<uuid>.bin' when the URL has none.`,
	Args: cobra.ExactArgs(1),
	RunE: FetchCmdRunE,
}

func FetchCmdRunE(cmd *cobra.Command, args []string) error {
	rawURL := args[0]
	fetchConfig := LoadFetchConfigFromCLI()
	slog.Debug("args", "fetch-config", fetchConfig)

	output := fetchConfig.Output
	if output == "" {
		output = outputFileName(rawURL)
	}

	c := CreateRestClient(cmd.Context(), LoadConfigFromCLI().Url)
	slog.Info("Fetching asset...", "url", rawURL)
	data, err := c.FetchBytes(cmd.Context(), rawURL)
	if err != nil {
		return errors.WithMessage(err, "could not fetch asset")
	}

	if err := os.WriteFile(output, data, 0o644); err != nil {
		return errors.WithMessage(err, "could not save asset")
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Saved %d bytes to %s\n", len(data), output)
	return nil
}

// outputFileName derives a local file name from the asset URL
func outputFileName(rawURL string) string {
	if u, err := url.Parse(rawURL); err == nil {
		if name := path.Base(u.Path); name != "." && name != "/" {
			return name
		}
	}
	return uuid.New().String() + ".bin"
}

func init() {
	SetupFetchCmdFlags(fetchCmd)
	rootCmd.AddCommand(fetchCmd)
}

func SetupFetchCmdFlags(command *cobra.Command) {
	command.Flags().StringP("output", "o", "", "Destination file")
	if err := viper.BindPFlag("output", command.Flags().Lookup("output")); err != nil {
		slog.Error(ErrorBindingFlag, "error", err)
	}
}
