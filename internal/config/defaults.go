package config

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Port:              8080,
		AllowAllOrigins:   false,
		SessionTTLMinutes: 120,
		LLM: LLMConfig{
			Enabled:     false,
			Model:       "gpt-4o-mini",
			Temperature: 0.7,
		},
	}
}

// APIKeyEnvVar is the environment variable consulted for the OpenAI API key
// when LLM phrasing is enabled.
const APIKeyEnvVar = "OPENAI_API_KEY"
