package config

// Config is the top-level wellbot configuration, corresponding to .wellbot.yml.
type Config struct {
	Port             int      `yaml:"port" koanf:"port"`
	DataDir          string   `yaml:"data_dir" koanf:"data_dir"`
	KnowledgeBase    string   `yaml:"knowledge_base" koanf:"knowledge_base"`
	Sessions         string   `yaml:"sessions" koanf:"sessions"`
	DefaultLanguage  string   `yaml:"default_language" koanf:"default_language"`
	DiagnosisOverlap int      `yaml:"diagnosis_overlap" koanf:"diagnosis_overlap"`
	MaxConditions    int      `yaml:"max_conditions" koanf:"max_conditions"`
	AdminUsers       []string `yaml:"admin_users" koanf:"admin_users"`
	AllowAllOrigins  bool     `yaml:"allow_all_origins" koanf:"allow_all_origins"`
}
