package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"

	"github.com/manifest-network/animalspotter/internal/config"
	"github.com/manifest-network/animalspotter/internal/spotter"
)

// animalsCmd represents the animals command
var animalsCmd = &cobra.Command{
	Use:   "animals",
	Short: "List the names of all spotted animals.",
	Long: `The animals command signs in and lists the names of all spotted animals, in the order
returned by the server.

With '--details', the detail of every animal is fetched as well and printed as JSON.
Details are fetched in parallel, at most '--concurrency' at a time, and no faster than
'--rps' requests per second when set.`,
	RunE: AnimalsCmdRunE,
}

func AnimalsCmdRunE(cmd *cobra.Command, args []string) error {
	listConfig := LoadListConfigFromCLI()
	slog.Debug("args", "list-config", listConfig)
	if err := listConfig.Validate(); err != nil {
		return err
	}

	c, err := signedInClient(cmd.Context())
	if err != nil {
		return err
	}

	slog.Info("Listing animals...")
	names, err := c.ListAnimalNames(cmd.Context())
	if err != nil {
		return errors.WithMessage(withAuthHint(err), "could not list animals")
	}

	if !listConfig.Details {
		for _, name := range names {
			fmt.Fprintln(cmd.OutOrStdout(), name)
		}
		return nil
	}

	animals, err := fetchAnimalDetails(cmd.Context(), c, names, listConfig)
	if err != nil {
		return err
	}

	return printJSON(cmd.OutOrStdout(), animals)
}

func init() {
	SetupAnimalsCmdFlags(animalsCmd)
	rootCmd.AddCommand(animalsCmd)
}

func SetupAnimalsCmdFlags(command *cobra.Command) {
	command.Flags().Bool("details", false, "Fetch the detail of every animal")
	if err := viper.BindPFlag("details", command.Flags().Lookup("details")); err != nil {
		slog.Error(ErrorBindingFlag, "error", err)
	}

	command.Flags().Int("concurrency", 4, "Maximum number of detail requests in flight")
	if err := viper.BindPFlag("concurrency", command.Flags().Lookup("concurrency")); err != nil {
		slog.Error(ErrorBindingFlag, "error", err)
	}

	command.Flags().Float64("rps", 0, "Maximum detail requests per second (0 for unlimited)")
	if err := viper.BindPFlag("rps", command.Flags().Lookup("rps")); err != nil {
		slog.Error(ErrorBindingFlag, "error", err)
	}
}

// fetchAnimalDetails fetches the details of the named animals in parallel.
// The result keeps the order of names. The first failure cancels the remaining requests.
func fetchAnimalDetails(ctx context.Context, c *spotter.Client, names []string, listConfig config.ListConfig) ([]*spotter.Animal, error) {
	slog.Info("Fetching animal details...", "count", len(names))

	var limiter *rate.Limiter
	if listConfig.RPS > 0 {
		limiter = rate.NewLimiter(rate.Limit(listConfig.RPS), 1)
	}

	animals := make([]*spotter.Animal, len(names))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(listConfig.Concurrency)

	for i, name := range names {
		i, name := i, name
		g.Go(func() error {
			if limiter != nil {
				if err := limiter.Wait(ctx); err != nil {
					return err
				}
			}

			animal, err := c.FetchAnimalDetail(ctx, name)
			if err != nil {
				return errors.WithMessagef(withAuthHint(err), "could not fetch animal %s", name)
			}
			animals[i] = animal
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return animals, nil
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
