package ai

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/openai/openai-go/shared"
	"github.com/rs/zerolog"

	"github.com/quorumlabs/maestro/internal/agent/session"
)

const defaultGroqBaseURL = "https://api.groq.com/openai/v1"

// GroqProvider implements the Groq API, which is OpenAI-compatible, using
// the official OpenAI SDK pointed at Groq's base URL.
type GroqProvider struct {
	client openai.Client
	model  string
	log    zerolog.Logger
}

// NewGroqProvider creates a new Groq provider. An empty baseURL falls back
// to the public Groq endpoint.
func NewGroqProvider(apiKey, baseURL, model string, log zerolog.Logger) *GroqProvider {
	if baseURL == "" {
		baseURL = defaultGroqBaseURL
	}
	client := openai.NewClient(
		option.WithAPIKey(apiKey),
		option.WithBaseURL(baseURL),
	)
	return &GroqProvider{
		client: client,
		model:  model,
		log:    log.With().Str("provider", "groq").Logger(),
	}
}

// ID returns the provider identifier
func (p *GroqProvider) ID() string {
	return "groq"
}

// Complete sends one request and returns a single assistant message
func (p *GroqProvider) Complete(ctx context.Context, req *ChatRequest) (*ChatResponse, error) {
	messages, err := p.buildMessages(req)
	if err != nil {
		return nil, fmt.Errorf("failed to build messages: %w", err)
	}

	model := p.model
	if req.Model != "" {
		model = req.Model
	}

	params := openai.ChatCompletionNewParams{
		Model:       shared.ChatModel(model),
		Messages:    messages,
		Temperature: openai.Float(req.Temperature),
	}

	if req.MaxTokens > 0 {
		params.MaxCompletionTokens = openai.Int(int64(req.MaxTokens))
	}

	if len(req.Tools) > 0 {
		tools := make([]openai.ChatCompletionToolParam, 0, len(req.Tools))
		for _, tool := range req.Tools {
			var schema map[string]interface{}
			if err := json.Unmarshal([]byte(tool.InputSchema), &schema); err != nil {
				p.log.Warn().Str("tool", tool.Name).Err(err).Msg("failed to parse tool schema")
				continue
			}

			tools = append(tools, openai.ChatCompletionToolParam{
				Function: shared.FunctionDefinitionParam{
					Name:        tool.Name,
					Description: openai.String(tool.Description),
					Parameters:  shared.FunctionParameters(schema),
				},
			})
		}
		params.Tools = tools
	}

	p.log.Debug().
		Str("model", model).
		Int("messages", len(messages)).
		Int("tools", len(req.Tools)).
		Msg("sending completion request")

	completion, err := p.client.Chat.Completions.New(ctx, params)
	if err != nil {
		return nil, &ProviderError{Message: err.Error(), Type: "api_error"}
	}
	if len(completion.Choices) == 0 {
		return nil, &ProviderError{Message: "completion returned no choices", Type: "api_error"}
	}

	choice := completion.Choices[0].Message

	resp := &ChatResponse{Content: choice.Content}
	for _, tc := range choice.ToolCalls {
		id := tc.ID
		if id == "" {
			id = uuid.NewString()
		}
		resp.ToolCalls = append(resp.ToolCalls, session.ToolCall{
			ID:    id,
			Name:  tc.Function.Name,
			Input: json.RawMessage(tc.Function.Arguments),
		})
	}
	return resp, nil
}

// buildMessages converts session messages to OpenAI wire format
func (p *GroqProvider) buildMessages(req *ChatRequest) ([]openai.ChatCompletionMessageParamUnion, error) {
	// First pass: collect all tool_call_ids that have responses. Assistant
	// tool calls with no matching result are dropped — the API rejects them.
	respondedToolIDs := make(map[string]bool)
	for _, msg := range req.Messages {
		if msg.Role == session.RoleTool && len(msg.ToolResults) > 0 {
			var results []session.ToolResult
			if err := json.Unmarshal(msg.ToolResults, &results); err == nil {
				for _, r := range results {
					respondedToolIDs[r.ToolCallID] = true
				}
			}
		}
	}

	var result []openai.ChatCompletionMessageParamUnion

	if req.System != "" {
		result = append(result, openai.SystemMessage(req.System))
	}

	for _, msg := range req.Messages {
		switch msg.Role {
		case session.RoleUser:
			if msg.HasImage() {
				parts, err := buildContentParts(msg.Parts)
				if err != nil {
					return nil, err
				}
				result = append(result, openai.UserMessage(parts))
			} else {
				result = append(result, openai.UserMessage(msg.Text()))
			}

		case session.RoleAssistant:
			var toolCalls []openai.ChatCompletionMessageToolCallParam
			for _, tc := range msg.ToolCalls {
				if !respondedToolIDs[tc.ID] {
					p.log.Warn().Str("tool_call_id", tc.ID).Msg("skipping tool call without response")
					continue
				}
				toolCalls = append(toolCalls, openai.ChatCompletionMessageToolCallParam{
					ID:   tc.ID,
					Type: "function",
					Function: openai.ChatCompletionMessageToolCallFunctionParam{
						Name:      tc.Name,
						Arguments: string(tc.Input),
					},
				})
			}

			if msg.Content == "" && len(toolCalls) == 0 {
				continue
			}
			assistantMsg := openai.ChatCompletionAssistantMessageParam{
				Role: "assistant",
			}
			if msg.Content != "" {
				assistantMsg.Content = openai.ChatCompletionAssistantMessageParamContentUnion{
					OfString: openai.String(msg.Content),
				}
			}
			if len(toolCalls) > 0 {
				assistantMsg.ToolCalls = toolCalls
			}
			result = append(result, openai.ChatCompletionMessageParamUnion{
				OfAssistant: &assistantMsg,
			})

		case session.RoleTool:
			if len(msg.ToolResults) > 0 {
				var results []session.ToolResult
				if err := json.Unmarshal(msg.ToolResults, &results); err == nil {
					for _, r := range results {
						if respondedToolIDs[r.ToolCallID] {
							result = append(result, openai.ToolMessage(r.Content, r.ToolCallID))
						}
					}
				}
			}

		case session.RoleSystem:
			result = append(result, openai.SystemMessage(msg.Content))
		}
	}

	return result, nil
}

// buildContentParts converts multimodal content blocks to OpenAI wire format
func buildContentParts(parts []session.ContentPart) ([]openai.ChatCompletionContentPartUnionParam, error) {
	out := make([]openai.ChatCompletionContentPartUnionParam, 0, len(parts))
	for _, part := range parts {
		switch p := part.(type) {
		case session.TextPart:
			out = append(out, openai.TextContentPart(p.Text))
		case session.ImagePart:
			out = append(out, openai.ImageContentPart(openai.ChatCompletionContentPartImageImageURLParam{
				URL: p.DataURL(),
			}))
		default:
			return nil, fmt.Errorf("unsupported content part type %T", part)
		}
	}
	return out, nil
}
