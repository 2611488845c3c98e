package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	yamlv3 "gopkg.in/yaml.v3"
)

// Load reads configuration from the given YAML file, then overlays
// environment variable overrides (WELLBOT_*).
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	// Start from defaults.
	cfg := DefaultConfig()

	// Load YAML file if it exists.
	if _, err := os.Stat(path); err == nil {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("accessing config %s: %w", path, err)
	}

	// Overlay environment variables: WELLBOT_PORT -> port, etc.
	if err := k.Load(env.Provider("WELLBOT_", ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, "WELLBOT_"))
	}), nil); err != nil {
		return nil, fmt.Errorf("loading env overrides: %w", err)
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	return cfg, nil
}

// Save writes the configuration to the given YAML file path.
func (c *Config) Save(path string) error {
	data, err := yamlv3.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config to %s: %w", path, err)
	}
	return nil
}

// Validate checks that the configuration contains valid values.
func (c *Config) Validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("port must be between 1 and 65535")
	}

	if c.DataDir == "" {
		return fmt.Errorf("data_dir is required")
	}

	if c.KnowledgeBase == "" {
		return fmt.Errorf("knowledge_base is required")
	}

	valid := false
	for _, lang := range SupportedLanguages {
		if c.DefaultLanguage == lang {
			valid = true
		}
	}
	if !valid {
		return fmt.Errorf("invalid default_language %q: must be one of %s",
			c.DefaultLanguage, strings.Join(SupportedLanguages, ", "))
	}

	if c.DiagnosisOverlap < 1 {
		return fmt.Errorf("diagnosis_overlap must be at least 1")
	}

	if c.MaxConditions < 1 {
		return fmt.Errorf("max_conditions must be at least 1")
	}

	return nil
}
