// Package llm abstracts the chat model used to polish assistant replies.
// The planner works without one; a provider only rewrites deterministic
// output into friendlier prose.
package llm

import "context"

type Role string

const (
	RoleSystem    Role = "system"
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

type Message struct {
	Role    Role
	Content string
}

// Request carries one completion call. Model is optional and defaults to
// the provider's configured model.
type Request struct {
	Model       string
	Messages    []Message
	MaxTokens   int
	Temperature float64
}

type Response struct {
	Content string
	Model   string
}

// Provider is a chat completion backend.
type Provider interface {
	Complete(ctx context.Context, req Request) (*Response, error)
	Name() string
}
