package cmd

import (
	"github.com/spf13/cobra"

	"arvela.dev/internal/config"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Interactively create the server configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := config.RunWizard()
		return err
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
