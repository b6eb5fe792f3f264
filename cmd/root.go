package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/manifest-network/animalspotter/internal/spotter"
	"github.com/manifest-network/animalspotter/internal/utils"
)

// Design notes:
// - Every invocation starts unauthenticated. Commands that need a token sign in first with
//   the `--username` and `--password` flags; the token only lives as long as the process.
// - A rejected token is reported, never retried. The user is asked to sign in again.
// - Flags can also be set from a `config` file in the working directory, from `SPOTTER_*`
//   environment variables or from a `.env` file.

var rootCmd = &cobra.Command{
	Use:               "animalspotter",
	Short:             "Browse animal sightings from the AnimalSpotter API",
	PersistentPreRunE: RootCmdPersistentPreRunE,
	SilenceUsage:      true,
}

// RootCmdPersistentPreRunE configures logging and validates the API URL.
func RootCmdPersistentPreRunE(cmd *cobra.Command, args []string) error {
	logLevelArg := viper.GetString("logLevel")
	if err := setLogLevel(logLevelArg); err != nil {
		return err
	}

	config := LoadConfigFromCLI()
	if err := config.Validate(); err != nil {
		return err
	}

	slog.Debug("Application initialized", "logLevel", logLevelArg, "url", config.Url)

	return nil
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := godotenv.Load(); err == nil {
		fmt.Fprintln(os.Stderr, "Loaded .env file")
	}

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}

	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var (
	validLogLevels = map[string]slog.Level{
		"debug": slog.LevelDebug,
		"info":  slog.LevelInfo,
		"warn":  slog.LevelWarn,
		"error": slog.LevelError,
	}
	validLogLevelsStr = strings.Join(utils.GetSortedKeys(validLogLevels), "|")
)

func init() {
	SetupRootCmdFlags(rootCmd)
	rootCmd.SilenceErrors = true

	viper.AddConfigPath("./")
	viper.SetConfigName("config")

	viper.SetEnvPrefix("spotter")
	viper.AutomaticEnv()
}

// SetupRootCmdFlags registers the persistent flags shared by every command.
func SetupRootCmdFlags(command *cobra.Command) {
	command.PersistentFlags().StringP("logLevel", "l", "info", fmt.Sprintf("set log level (%s)", validLogLevelsStr))
	if err := viper.BindPFlag("logLevel", command.PersistentFlags().Lookup("logLevel")); err != nil {
		slog.Error(ErrorBindingFlag, "error", err)
	}

	command.PersistentFlags().StringP("url", "u", spotter.DefaultBaseURL, "Root URL of the AnimalSpotter API")
	if err := viper.BindPFlag("url", command.PersistentFlags().Lookup("url")); err != nil {
		slog.Error(ErrorBindingFlag, "error", err)
	}

	command.PersistentFlags().String("username", "", "Username to sign in with")
	if err := viper.BindPFlag("username", command.PersistentFlags().Lookup("username")); err != nil {
		slog.Error(ErrorBindingFlag, "error", err)
	}

	command.PersistentFlags().String("password", "", "Password to sign in with")
	if err := viper.BindPFlag("password", command.PersistentFlags().Lookup("password")); err != nil {
		slog.Error(ErrorBindingFlag, "error", err)
	}
}

// setLogLevel sets the log level
func setLogLevel(logLevel string) error {
	level, exists := validLogLevels[logLevel]
	if !exists {
		return fmt.Errorf("invalid log level: %s. Valid log levels are: %s", logLevel, validLogLevelsStr)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	return nil
}
