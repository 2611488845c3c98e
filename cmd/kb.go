package cmd

import (
	"fmt"
	"strings"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"

	"github.com/wellbotdev/wellbot/internal/config"
	"github.com/wellbotdev/wellbot/internal/kb"
)

var kbCmd = &cobra.Command{
	Use:   "kb",
	Short: "Inspect and edit the knowledge base",
}

var kbListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all knowledge base entries",
	RunE: func(cmd *cobra.Command, args []string) error {
		snap, err := loadKB()
		if err != nil {
			return err
		}
		for _, name := range snap.Names() {
			entry, _ := snap.Get(name)
			fmt.Printf("%-20s %d symptoms\n", name, len(entry.Symptoms))
		}
		return nil
	},
}

var kbShowCmd = &cobra.Command{
	Use:   "show <name>",
	Short: "Show a knowledge base entry",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		snap, err := loadKB()
		if err != nil {
			return err
		}
		entry, ok := snap.Get(args[0])
		if !ok {
			return fmt.Errorf("no entry named %q", args[0])
		}
		fmt.Println(kb.FormatEntry(args[0], entry, kb.English))
		return nil
	},
}

var kbAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a knowledge base entry with an interactive wizard",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		snap, err := kb.Load(cfg.KnowledgeBase)
		if err != nil {
			snap = kb.NewSnapshot(nil)
		}

		entry, err := runEntryWizard(snap)
		if err != nil {
			return err
		}

		snap = snap.WithEntry(*entry)
		if err := snap.Save(cfg.KnowledgeBase); err != nil {
			return fmt.Errorf("saving knowledge base: %w", err)
		}
		fmt.Printf("Saved %q to %s (%d entries)\n", entry.Name, cfg.KnowledgeBase, snap.Len())
		return nil
	},
}

var kbRemoveCmd = &cobra.Command{
	Use:   "remove <name>",
	Short: "Remove a knowledge base entry",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		snap, err := kb.Load(cfg.KnowledgeBase)
		if err != nil {
			return fmt.Errorf("loading knowledge base: %w", err)
		}
		if _, ok := snap.Get(args[0]); !ok {
			return fmt.Errorf("no entry named %q", args[0])
		}
		snap = snap.WithoutEntry(args[0])
		if err := snap.Save(cfg.KnowledgeBase); err != nil {
			return fmt.Errorf("saving knowledge base: %w", err)
		}
		fmt.Printf("Removed %q (%d entries remain)\n", args[0], snap.Len())
		return nil
	},
}

func loadKB() (*kb.Snapshot, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	snap, err := kb.Load(cfg.KnowledgeBase)
	if err != nil {
		return nil, fmt.Errorf("loading knowledge base: %w", err)
	}
	return snap, nil
}

func runEntryWizard(snap *kb.Snapshot) (*kb.Entry, error) {
	namePrompt := promptui.Prompt{
		Label: "Entry name",
		Validate: func(s string) error {
			if strings.TrimSpace(s) == "" {
				return fmt.Errorf("name is required")
			}
			if _, exists := snap.Get(s); exists {
				return fmt.Errorf("entry already exists")
			}
			return nil
		},
	}
	name, err := namePrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("name: %w", err)
	}

	descPrompt := promptui.Prompt{Label: "Description"}
	desc, err := descPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("description: %w", err)
	}

	symptomsPrompt := promptui.Prompt{Label: "Symptoms (comma-separated)"}
	symptomsStr, err := symptomsPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("symptoms: %w", err)
	}

	treatmentPrompt := promptui.Prompt{Label: "Treatment steps (comma-separated)"}
	treatmentStr, err := treatmentPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("treatment: %w", err)
	}

	warningPrompt := promptui.Prompt{Label: "Warning (optional)"}
	warning, err := warningPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("warning: %w", err)
	}

	return &kb.Entry{
		Name:        name,
		Description: desc,
		Symptoms:    splitList(symptomsStr),
		Treatment:   splitList(treatmentStr),
		Warning:     warning,
	}, nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func init() {
	kbCmd.AddCommand(kbListCmd, kbShowCmd, kbAddCmd, kbRemoveCmd)
	rootCmd.AddCommand(kbCmd)
}
