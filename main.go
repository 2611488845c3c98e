package main

import (
	"os"

	"github.com/wellbotdev/wellbot/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
