package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/block-games/internal/config"
)

var flagDefaultConfig bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Prints the tunables as YAML after applying the config search order:
--config, ~/.blockgames/config.yaml, ./configs/blockgames.yaml, built-in defaults.

Examples:
  blockgames config
  blockgames config --default > ./configs/blockgames.yaml`,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagDefaultConfig, "default", false, "Print the built-in defaults file")
}

func runConfig(cmd *cobra.Command, _ []string) error {
	if flagDefaultConfig {
		_, err := cmd.OutOrStdout().Write(config.DefaultYAML())
		return err
	}

	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}
	data, err := config.Marshal(cfg)
	if err != nil {
		return err
	}
	_, err = cmd.OutOrStdout().Write(data)
	return err
}
