// Package app implements the command line interface.
package app

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/gojira/gojira/internal/config"
)

// EnvPrefix prefixes the environment variables read by viper.
const EnvPrefix = "GOJIRA"

var rootCmd = &cobra.Command{
	Use:   "gojira",
	Short: "gojira serves the gojira web site",
	Long: `gojira serves a server-rendered web site with login, staff and
premium gated pages backed by MySQL, PostgreSQL or SQLite.`,
	Args:          cobra.OnlyValidArgs,
	SilenceUsage:  true,
	SilenceErrors: false,
}

func init() { //nolint: gochecknoinits
	rootCmd.PersistentFlags().String("config", config.DefaultPath, "directory holding main.toml")

	if err := viper.BindPFlag("config_path", rootCmd.PersistentFlags().Lookup("config")); err != nil {
		panic(err)
	}

	viper.SetEnvPrefix(EnvPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
}

// configPath returns the config directory: --config, then GOJIRA_CONFIG_PATH,
// then the default.
func configPath() string {
	return viper.GetString("config_path")
}

// loadConfig reads the configuration from configPath.
func loadConfig() (config.Config, error) {
	return config.ReadConfig(configPath())
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
