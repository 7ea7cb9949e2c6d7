package config

// Config is the top-level wanderplan configuration, corresponding to .wanderplan.yml.
type Config struct {
	Port              int       `yaml:"port" koanf:"port"`
	AllowAllOrigins   bool      `yaml:"allow_all_origins" koanf:"allow_all_origins"`
	SessionTTLMinutes int       `yaml:"session_ttl_minutes" koanf:"session_ttl_minutes"`
	CatalogFile       string    `yaml:"catalog_file" koanf:"catalog_file"`
	LLM               LLMConfig `yaml:"llm" koanf:"llm"`
}

// LLMConfig controls the optional reply-phrasing provider. When disabled the
// assistant returns its deterministic replies unchanged.
type LLMConfig struct {
	Enabled     bool    `yaml:"enabled" koanf:"enabled"`
	Model       string  `yaml:"model" koanf:"model"`
	Temperature float64 `yaml:"temperature" koanf:"temperature"`
}
