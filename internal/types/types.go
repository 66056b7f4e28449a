// Package types defines the request and response shapes of the HTTP API.
package types

// AgentTurnRequest is one complete conversational request: ordered user
// utterances plus an optional base64-encoded image attached to the last turn.
type AgentTurnRequest struct {
	// SystemPrompt is accepted for compatibility but does not override the
	// persona-derived instruction set.
	SystemPrompt string   `json:"system_prompt,omitempty"`
	Messages     []string `json:"messages"`
	AllowSearch  bool     `json:"allow_search"`
	ImageData    string   `json:"image_data,omitempty"`
}

// AgentTurnResponse carries the single synthesized reply.
type AgentTurnResponse struct {
	Response string `json:"response"`
}

// HealthResponse reports service liveness.
type HealthResponse struct {
	Status    string `json:"status"`
	Version   string `json:"version"`
	Timestamp string `json:"timestamp"`
}
