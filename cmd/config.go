package cmd

import (
	"github.com/spf13/viper"

	"github.com/manifest-network/animalspotter/internal/config"
)

// LoadConfigFromCLI loads the Config from the CLI flags
func LoadConfigFromCLI() config.Config {
	return config.Config{
		Url: viper.GetString("url"),
	}
}

// LoadAuthConfigFromCLI loads the AuthConfig from the CLI flags
func LoadAuthConfigFromCLI() config.AuthConfig {
	return config.AuthConfig{
		Username: viper.GetString("username"),
		Password: viper.GetString("password"),
	}
}

// LoadListConfigFromCLI loads the ListConfig from the CLI flags
func LoadListConfigFromCLI() config.ListConfig {
	return config.ListConfig{
		Details:     viper.GetBool("details"),
		Concurrency: viper.GetInt("concurrency"),
		RPS:         viper.GetFloat64("rps"),
	}
}

// LoadFetchConfigFromCLI loads the FetchConfig from the CLI flags
func LoadFetchConfigFromCLI() config.FetchConfig {
	return config.FetchConfig{
		Output: viper.GetString("output"),
	}
}
