package cmd

import (
	"github.com/spf13/cobra"

	"github.com/wellbotdev/wellbot/internal/config"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize wellbot configuration with an interactive wizard",
	Long:  `Runs an interactive wizard to configure wellbot and generates a .wellbot.yml file.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := config.RunWizard()
		return err
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
