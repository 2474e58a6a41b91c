// Package cmd implements the eternal-zoo CLI commands.
package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/eternalai-org/eternal-zoo/pkg/catalog"
	"github.com/eternalai-org/eternal-zoo/pkg/logging"
)

var configFile string

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "eternal-zoo",
	Short: "Model catalog CLI",
	Long: `eternal-zoo is the model catalog behind the eternal-zoo serving runtime.

It maps immutable content-address hashes to canonical model names, and
canonical names to the provisioning metadata (repository, weight file or
pattern, task, backend) the download manager and inference server need.

The catalog ships embedded in the binary; point --catalog at a directory
containing models.yaml and hashes.yaml to use edited data instead.`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

// Execute adds all child commands to the root command and runs it.
func Execute(version, commit, date string) {
	rootCmd.Version = fmt.Sprintf("%s (commit %s, built %s)", version, commit, date)
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file (default is $HOME/.eternal-zoo.yaml)")
	rootCmd.PersistentFlags().String("catalog", "", "directory with catalog data (default: embedded)")
	rootCmd.PersistentFlags().String("log-level", "", "log level (trace..disabled)")

	for _, flag := range []string{"catalog", "log-level"} {
		if err := viper.BindPFlag(flag, rootCmd.PersistentFlags().Lookup(flag)); err != nil {
			panic(fmt.Sprintf("failed to bind %s flag: %v", flag, err))
		}
	}
}

// initConfig reads in the config file and environment variables if set.
func initConfig() {
	if configFile != "" {
		viper.SetConfigFile(configFile)
	} else {
		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(home)
			viper.AddConfigPath(".")
			viper.SetConfigType("yaml")
			viper.SetConfigName(".eternal-zoo")
		}
	}

	// .env files layer beneath real environment variables.
	_ = godotenv.Load()

	viper.SetEnvPrefix("ETERNAL_ZOO")
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))

	_ = viper.ReadInConfig() // a missing config file is fine
}

// setup configures logging before any command runs.
func setup(_ *cobra.Command, _ []string) error {
	if level := viper.GetString("log-level"); level != "" {
		logging.Configure(logging.Config{Level: level})
	}
	return nil
}

// loadCatalog builds the catalog from the configured source and refuses to
// hand out one that fails validation.
func loadCatalog() (*catalog.Catalog, error) {
	var (
		cat *catalog.Catalog
		err error
	)
	if path := viper.GetString("catalog"); path != "" {
		logging.Debug().Str("path", path).Msg("loading catalog from disk")
		cat, err = catalog.NewFromPath(path)
	} else {
		cat, err = catalog.NewEmbedded()
	}
	if err != nil {
		return nil, err
	}

	if violations := cat.Validate(); len(violations) > 0 {
		for _, v := range violations {
			logging.Error().Str("model", v.Model).Msg(v.String())
		}
		return nil, fmt.Errorf("catalog failed validation with %d violation(s)", len(violations))
	}
	return cat, nil
}
