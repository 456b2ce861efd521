package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ringkit/ringkit/cmd/catalog"
	"github.com/ringkit/ringkit/cmd/ring"
	"github.com/ringkit/ringkit/cmd/roster"
	"github.com/ringkit/ringkit/internal/config"
	"github.com/ringkit/ringkit/internal/version"
)

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "ringkit",
		Short:         "ringkit CLI",
		Long:          `ringkit - a ring buffer, a staff roster and a music catalog, driven from the command line`,
		Version:       version.Version,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return config.ReadFile(viper.GetString(config.FlagConfig))
		},
	}

	rootCmd.PersistentFlags().String(config.FlagConfig, "", "Config file (YAML, TOML or JSON)")
	rootCmd.PersistentFlags().Bool(config.FlagVerbose, false, "Enable debug logging")
	config.BindFlag(rootCmd, config.FlagConfig, config.FlagConfig)
	config.BindFlag(rootCmd, config.FlagVerbose, config.FlagVerbose)

	rootCmd.AddCommand(ring.CreateRingCmd())
	rootCmd.AddCommand(roster.CreateRosterCmd())
	rootCmd.AddCommand(catalog.CreateCatalogCmd())
	return rootCmd
}

func Execute() {
	err := newRootCmd().Execute()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
