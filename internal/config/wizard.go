package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/manifoldco/promptui"
)

// RunWizard runs an interactive configuration wizard and returns the
// resulting Config. It also saves the config to .wellbot.yml.
func RunWizard() (*Config, error) {
	fmt.Println("Welcome to wellbot! Let's configure your assistant.")
	fmt.Println()

	defaults := DefaultConfig()

	// 1. Server port.
	portPrompt := promptui.Prompt{
		Label:   "Server port",
		Default: strconv.Itoa(defaults.Port),
		Validate: func(s string) error {
			n, err := strconv.Atoi(s)
			if err != nil || n <= 0 || n > 65535 {
				return fmt.Errorf("enter a port between 1 and 65535")
			}
			return nil
		},
	}
	portStr, err := portPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("port: %w", err)
	}
	port, _ := strconv.Atoi(portStr)

	// 2. Default reply language.
	langPrompt := promptui.Select{
		Label: "Default reply language",
		Items: SupportedLanguages,
	}
	_, language, err := langPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("language selection: %w", err)
	}

	// 3. Knowledge base document.
	kbPrompt := promptui.Prompt{
		Label:   "Knowledge base document",
		Default: defaults.KnowledgeBase,
	}
	kbPath, err := kbPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("knowledge base path: %w", err)
	}

	// 4. Data directory for the database and session file.
	dataPrompt := promptui.Prompt{
		Label:   "Data directory",
		Default: defaults.DataDir,
	}
	dataDir, err := dataPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("data dir: %w", err)
	}

	cfg := DefaultConfig()
	cfg.Port = port
	cfg.DefaultLanguage = language
	cfg.KnowledgeBase = kbPath
	cfg.DataDir = dataDir

	if _, err := os.Stat(kbPath); os.IsNotExist(err) {
		fmt.Printf("\nNote: %s does not exist yet. Create it or run `wellbot kb add`.\n", kbPath)
	}

	// Save to .wellbot.yml.
	configPath := ".wellbot.yml"
	if err := cfg.Save(configPath); err != nil {
		return nil, fmt.Errorf("saving config: %w", err)
	}

	fmt.Printf("\nConfiguration saved to %s\n", configPath)
	return cfg, nil
}
