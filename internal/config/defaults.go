package config

import "path/filepath"

// SupportedLanguages are the languages the bot can reply in.
var SupportedLanguages = []string{"English", "Hindi", "Telugu"}

// DefaultAdminUsers are the usernames granted admin access out of the box.
var DefaultAdminUsers = []string{"admin", "admin_user"}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Port:             8080,
		DataDir:          ".wellbot",
		KnowledgeBase:    "knowledge_base.json",
		Sessions:         filepath.Join(".wellbot", "user_sessions.json"),
		DefaultLanguage:  "English",
		DiagnosisOverlap: 2,
		MaxConditions:    3,
		AdminUsers:       append([]string(nil), DefaultAdminUsers...),
	}
}
