// Package ai defines the generation capability contract and its Groq-backed
// implementation. A capability is identified as "provider/model"; the factory
// resolves identifiers (following deprecation aliases) into live providers.
package ai

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/quorumlabs/maestro/internal/agent/session"
)

// ToolDefinition describes a tool the capability may call during generation.
type ToolDefinition struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	InputSchema json.RawMessage `json:"input_schema"`
}

// ChatRequest is one synchronous generation request.
type ChatRequest struct {
	Messages    []session.Message `json:"messages"`
	Tools       []ToolDefinition  `json:"tools,omitempty"`
	System      string            `json:"system,omitempty"`
	Model       string            `json:"model,omitempty"`
	Temperature float64           `json:"temperature"`
	MaxTokens   int               `json:"max_tokens,omitempty"`
}

// ChatResponse is the single assistant turn a capability produced. ToolCalls
// is non-empty when the model asked for a tool to be run before it can answer.
type ChatResponse struct {
	Content   string             `json:"content"`
	ToolCalls []session.ToolCall `json:"tool_calls,omitempty"`
}

// Provider is a generation backend.
type Provider interface {
	// ID returns the provider identifier (e.g. "groq").
	ID() string

	// Complete sends one request and returns one assistant message.
	Complete(ctx context.Context, req *ChatRequest) (*ChatResponse, error)
}

// Resolver turns a capability identifier into a live provider plus the
// effective model name after alias rewriting.
type Resolver interface {
	Resolve(capability string) (Provider, string, error)
}

// ProviderError is a structured error from a generation backend.
type ProviderError struct {
	Code    string `json:"code,omitempty"`
	Message string `json:"message"`
	Type    string `json:"type,omitempty"`
}

func (e *ProviderError) Error() string {
	return e.Message
}

// ParseModelID splits a "provider/model" capability identifier. Model names
// may themselves contain slashes (e.g. "groq/meta-llama/llama-4-scout..."),
// so only the first separator counts.
func ParseModelID(modelID string) (providerID, modelName string) {
	parts := strings.SplitN(modelID, "/", 2)
	if len(parts) == 2 {
		return parts[0], parts[1]
	}
	return "", modelID
}
