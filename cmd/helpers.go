package cmd

import (
	"fmt"
	"os"

	"github.com/wanderplan/wanderplan/internal/assistant"
	"github.com/wanderplan/wanderplan/internal/catalog"
	"github.com/wanderplan/wanderplan/internal/config"
	"github.com/wanderplan/wanderplan/internal/llm"
	"github.com/wanderplan/wanderplan/internal/weather"
)

// newAgent builds the chat agent, wiring in the LLM phrasing provider when
// enabled and an API key is present. Without one the agent still works and
// returns its deterministic replies.
func newAgent(cfg *config.Config, cat *catalog.Catalog, wx *weather.Service) *assistant.Agent {
	var opts []assistant.Option
	if cfg.LLM.Enabled {
		key := os.Getenv(config.APIKeyEnvVar)
		if key == "" {
			fmt.Fprintf(os.Stderr, "Warning: llm enabled but %s is not set; replies will not be rephrased\n", config.APIKeyEnvVar)
		} else {
			opts = append(opts, assistant.WithProvider(llm.NewOpenAIProvider(key, cfg.LLM.Model), cfg.LLM.Model, cfg.LLM.Temperature))
		}
	}
	return assistant.New(cat, wx, opts...)
}
