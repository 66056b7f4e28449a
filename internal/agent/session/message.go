// Package session defines the conversation types threaded through one
// orchestration run. State lives only for the duration of a single request —
// there is no cross-request persistence.
package session

import (
	"encoding/json"
	"time"
)

// Role identifies who produced a message.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
	RoleSystem    Role = "system"
	RoleTool      Role = "tool"
)

// Message is one turn in a conversation. Messages are immutable once
// appended: the graph only ever adds to the tail of the turn slice.
type Message struct {
	Role        Role            `json:"role"`
	Content     string          `json:"content,omitempty"`
	Parts       []ContentPart   `json:"parts,omitempty"` // multimodal user turns
	ToolCalls   []ToolCall      `json:"tool_calls,omitempty"`
	ToolResults json.RawMessage `json:"tool_results,omitempty"`
	CreatedAt   time.Time       `json:"created_at,omitempty"`
}

// HasToolCalls reports whether this assistant message requested tool use.
func (m Message) HasToolCalls() bool {
	return m.Role == RoleAssistant && len(m.ToolCalls) > 0
}

// ToolCall is a structured request from the generation capability asking the
// orchestrator to run a tool before producing a final answer.
type ToolCall struct {
	ID    string          `json:"id"`
	Name  string          `json:"name"`
	Input json.RawMessage `json:"input"`
}

// ToolResult is the outcome of executing one tool call.
type ToolResult struct {
	ToolCallID string `json:"tool_call_id"`
	Content    string `json:"content"`
	IsError    bool   `json:"is_error,omitempty"`
}

// ContentPart is a closed union over the multimodal content blocks a user
// turn may carry. Only TextPart and ImagePart implement it.
type ContentPart interface {
	isContentPart()
}

// TextPart is a plain text block.
type TextPart struct {
	Text string `json:"text"`
}

func (TextPart) isContentPart() {}

// ImagePart is an inline base64-encoded image block.
type ImagePart struct {
	MediaType string `json:"media_type"` // e.g. "image/jpeg"
	Data      string `json:"data"`       // base64, no data: prefix
}

func (ImagePart) isContentPart() {}

// DataURL renders the image as a data: URL for OpenAI-style APIs.
func (p ImagePart) DataURL() string {
	return "data:" + p.MediaType + ";base64," + p.Data
}

// UserText returns a user message containing plain text.
func UserText(text string) Message {
	return Message{Role: RoleUser, Content: text, CreatedAt: time.Now()}
}

// UserMultimodal returns a user message carrying text plus an inline image.
func UserMultimodal(text string, image ImagePart) Message {
	return Message{
		Role:      RoleUser,
		Parts:     []ContentPart{TextPart{Text: text}, image},
		CreatedAt: time.Now(),
	}
}

// HasImage reports whether the message carries an image content block.
func (m Message) HasImage() bool {
	for _, p := range m.Parts {
		if _, ok := p.(ImagePart); ok {
			return true
		}
	}
	return false
}

// Text returns the textual content of the message. For multimodal turns it
// concatenates the text parts.
func (m Message) Text() string {
	if len(m.Parts) == 0 {
		return m.Content
	}
	var out string
	for _, p := range m.Parts {
		if tp, ok := p.(TextPart); ok {
			if out != "" {
				out += " "
			}
			out += tp.Text
		}
	}
	return out
}

// LastUserMessage returns the most recent user turn, or a zero Message and
// false when none exists.
func LastUserMessage(msgs []Message) (Message, bool) {
	for i := len(msgs) - 1; i >= 0; i-- {
		if msgs[i].Role == RoleUser {
			return msgs[i], true
		}
	}
	return Message{}, false
}
