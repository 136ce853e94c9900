package cmd

import (
	"github.com/spf13/cobra"

	"arvela.dev/internal/config"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "arvela",
	Short: "Personal portfolio backend",
	Long: `Arvela serves a personal portfolio site: it loads a JSON document of
project descriptors, renders one gallery card per project, and exposes
the projects API and a validated contact endpoint.`,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", config.DefaultConfigFile, "config file path")
}
