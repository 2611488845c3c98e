package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Port != 8080 {
		t.Errorf("expected default port 8080, got %d", cfg.Port)
	}
	if cfg.DefaultLanguage != "English" {
		t.Errorf("expected default language English, got %q", cfg.DefaultLanguage)
	}
	if cfg.DiagnosisOverlap != 2 {
		t.Errorf("expected default diagnosis_overlap 2, got %d", cfg.DiagnosisOverlap)
	}
	if cfg.MaxConditions != 3 {
		t.Errorf("expected default max_conditions 3, got %d", cfg.MaxConditions)
	}
}

func TestSaveAndLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.wellbot.yml")

	original := DefaultConfig()
	original.Port = 9090
	original.DefaultLanguage = "Hindi"
	original.KnowledgeBase = "kb/custom.json"
	original.DiagnosisOverlap = 3
	original.AdminUsers = []string{"root"}

	// Save.
	if err := original.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	// Load back.
	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	// Verify round-trip.
	if loaded.Port != original.Port {
		t.Errorf("port: got %d, want %d", loaded.Port, original.Port)
	}
	if loaded.DefaultLanguage != original.DefaultLanguage {
		t.Errorf("default_language: got %q, want %q", loaded.DefaultLanguage, original.DefaultLanguage)
	}
	if loaded.KnowledgeBase != original.KnowledgeBase {
		t.Errorf("knowledge_base: got %q, want %q", loaded.KnowledgeBase, original.KnowledgeBase)
	}
	if loaded.DiagnosisOverlap != original.DiagnosisOverlap {
		t.Errorf("diagnosis_overlap: got %d, want %d", loaded.DiagnosisOverlap, original.DiagnosisOverlap)
	}
	if len(loaded.AdminUsers) != 1 || loaded.AdminUsers[0] != "root" {
		t.Errorf("admin_users: got %v, want [root]", loaded.AdminUsers)
	}
}

func TestLoadMissingFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nonexistent.yml")

	// Loading a missing file should return defaults, not an error.
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load should not fail for missing file: %v", err)
	}
	if cfg.Port != 8080 {
		t.Errorf("expected default port, got %d", cfg.Port)
	}
}

func TestLoadEnvOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.yml")

	cfg := DefaultConfig()
	if err := cfg.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	// Override the language via env var.
	os.Setenv("WELLBOT_DEFAULT_LANGUAGE", "Telugu")
	defer os.Unsetenv("WELLBOT_DEFAULT_LANGUAGE")

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if loaded.DefaultLanguage != "Telugu" {
		t.Errorf("env override failed: got %q, want Telugu", loaded.DefaultLanguage)
	}
}

func TestValidateValid(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Errorf("DefaultConfig should be valid, got: %v", err)
	}
}

func TestValidateRejectsBadValues(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero port", func(c *Config) { c.Port = 0 }},
		{"huge port", func(c *Config) { c.Port = 70000 }},
		{"empty data dir", func(c *Config) { c.DataDir = "" }},
		{"empty kb", func(c *Config) { c.KnowledgeBase = "" }},
		{"bad language", func(c *Config) { c.DefaultLanguage = "Klingon" }},
		{"zero overlap", func(c *Config) { c.DiagnosisOverlap = 0 }},
		{"zero conditions", func(c *Config) { c.MaxConditions = 0 }},
	}
	for _, tt := range tests {
		cfg := DefaultConfig()
		tt.mutate(cfg)
		if err := cfg.Validate(); err == nil {
			t.Errorf("%s: expected validation error", tt.name)
		}
	}
}
