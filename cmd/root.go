package cmd

import (
	"github.com/spf13/cobra"
)

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "wellbot",
	Short: "Multilingual symptom-intake chatbot",
	Long: `WellBot is a rule-based health assistant that chats with users in
English, Hindi and Telugu. It detects the message language, extracts
symptoms against a local knowledge base and suggests possible
conditions, served over a REST API with a WebSocket chat channel.`,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", ".wellbot.yml", "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
