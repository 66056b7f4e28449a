package graph

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/quorumlabs/maestro/internal/agent/ai"
	"github.com/quorumlabs/maestro/internal/agent/persona"
	"github.com/quorumlabs/maestro/internal/agent/session"
	"github.com/quorumlabs/maestro/internal/agent/tools"
)

// DefaultMaxToolRounds bounds the generate/tool loop when the caller does
// not configure a limit.
const DefaultMaxToolRounds = 8

// fallbackReply is returned when the terminal state holds no usable content.
const fallbackReply = "Sorry, I encountered an issue processing the final response."

// Input is one complete request: an ordered list of plain-text user
// utterances, optionally with an image attached to the final turn.
type Input struct {
	// SystemPrompt is accepted from the transport layer but does not steer
	// routing or generation; persona classification owns the instruction set.
	SystemPrompt string
	Turns        []string
	AllowSearch  bool
	ImageData    string // base64, no data: prefix
}

// Runner executes the orchestration state machine. A Runner is safe for
// concurrent use: each Run owns its State and shares nothing mutable.
type Runner struct {
	resolver      ai.Resolver
	tools         *tools.Registry
	routing       ai.Routing
	maxToolRounds int
	now           func() time.Time
	log           zerolog.Logger
}

// NewRunner wires the generation resolver, tool registry, and capability
// routing into a runnable graph.
func NewRunner(resolver ai.Resolver, reg *tools.Registry, routing ai.Routing, maxToolRounds int, log zerolog.Logger) *Runner {
	if maxToolRounds <= 0 {
		maxToolRounds = DefaultMaxToolRounds
	}
	return &Runner{
		resolver:      resolver,
		tools:         reg,
		routing:       routing,
		maxToolRounds: maxToolRounds,
		now:           time.Now,
		log:           log.With().Str("component", "graph").Logger(),
	}
}

// Run drives one request from PersonaRouting to Done and returns the final
// reply text. Classification and capability-construction failures abort the
// run; an empty terminal message degrades to a canned reply instead.
func (r *Runner) Run(ctx context.Context, in Input) (string, error) {
	state := &State{
		Node:           NodePersonaRouting,
		Messages:       buildTurns(in),
		AllowSearch:    in.AllowSearch,
		ToolRoundsLeft: r.maxToolRounds,
	}

	for state.Node != NodeDone {
		if err := ctx.Err(); err != nil {
			return "", err
		}

		var err error
		switch state.Node {
		case NodePersonaRouting:
			err = r.routePersona(state)
		case NodeCapabilitySelection:
			err = r.selectCapability(state)
		case NodeGenerating, NodeSynthesizing:
			err = r.generate(ctx, state)
		case NodeToolInvoking:
			err = r.invokeTools(ctx, state)
		default:
			err = fmt.Errorf("graph reached unknown state %q", state.Node)
		}
		if err != nil {
			return "", err
		}
	}

	return finalReply(state.Messages), nil
}

// buildTurns converts caller-supplied utterances into user messages. An
// image rides on the final turn as a multimodal content block.
func buildTurns(in Input) []session.Message {
	msgs := make([]session.Message, 0, len(in.Turns))
	for _, t := range in.Turns {
		msgs = append(msgs, session.UserText(t))
	}
	if in.ImageData != "" && len(msgs) > 0 {
		last := len(msgs) - 1
		msgs[last] = session.UserMultimodal(msgs[last].Content, session.ImagePart{
			MediaType: "image/jpeg",
			Data:      in.ImageData,
		})
	}
	return msgs
}

func (r *Runner) routePersona(state *State) error {
	state.Persona = persona.Classify(state.Messages)
	r.log.Info().Str("persona", string(state.Persona)).Msg("persona routed")
	state.Node = NodeCapabilitySelection
	return nil
}

func (r *Runner) selectCapability(state *State) error {
	capability, err := ai.SelectCapability(state.Persona, stateHasImage(state), r.routing)
	if err != nil {
		return fmt.Errorf("capability selection: %w", err)
	}
	state.Capability = capability
	r.log.Info().Str("capability", capability).Msg("capability selected")
	state.Node = NodeGenerating
	return nil
}

// generate runs one invocation of the selected capability. It serves both
// the Generating and Synthesizing states: synthesis is the same step
// re-entered after a tool result lands.
func (r *Runner) generate(ctx context.Context, state *State) error {
	provider, model, err := r.resolver.Resolve(state.Capability)
	if err != nil {
		return fmt.Errorf("capability construction: %w", err)
	}

	req := &ai.ChatRequest{
		Messages: state.Messages,
		System:   systemPromptFor(state.Persona, state.AllowSearch, r.now()),
		Model:    model,
	}
	if state.Persona == persona.FinancialAnalyst && state.AllowSearch {
		req.Tools = r.tools.Defs(tools.SearchToolName)
	}

	resp, err := provider.Complete(ctx, req)
	if err != nil {
		return fmt.Errorf("generation failed: %w", err)
	}

	state.append(session.Message{
		Role:      session.RoleAssistant,
		Content:   resp.Content,
		ToolCalls: resp.ToolCalls,
		CreatedAt: r.now(),
	})

	if len(resp.ToolCalls) > 0 {
		r.log.Info().Int("tool_calls", len(resp.ToolCalls)).Msg("assistant requested tools")
		state.Node = NodeToolInvoking
		return nil
	}
	state.Node = NodeDone
	return nil
}

// invokeTools executes every tool call on the latest assistant message and
// appends the results as one tool-role message. Each entry consumes one
// round from the budget; exhausting it is an explicit error, not a hang.
func (r *Runner) invokeTools(ctx context.Context, state *State) error {
	if state.ToolRoundsLeft <= 0 {
		return fmt.Errorf("%w (max %d rounds)", ErrToolRoundsExceeded, r.maxToolRounds)
	}
	state.ToolRoundsLeft--

	last := state.Messages[len(state.Messages)-1]
	results := make([]session.ToolResult, 0, len(last.ToolCalls))
	for _, call := range last.ToolCalls {
		r.log.Info().Str("tool", call.Name).Msg("invoking tool")
		res := r.tools.Execute(ctx, call)
		results = append(results, session.ToolResult{
			ToolCallID: call.ID,
			Content:    res.Content,
			IsError:    res.IsError,
		})
	}

	encoded, err := json.Marshal(results)
	if err != nil {
		return fmt.Errorf("encoding tool results: %w", err)
	}
	state.append(session.Message{
		Role:        session.RoleTool,
		ToolResults: encoded,
		CreatedAt:   r.now(),
	})

	state.Node = NodeSynthesizing
	return nil
}

func stateHasImage(state *State) bool {
	last, ok := session.LastUserMessage(state.Messages)
	return ok && last.HasImage()
}

// finalReply extracts the terminal message content, degrading to a canned
// reply when the conversation ended without usable assistant text.
func finalReply(msgs []session.Message) string {
	if len(msgs) == 0 {
		return fallbackReply
	}
	last := msgs[len(msgs)-1]
	if last.Role != session.RoleAssistant || last.Content == "" {
		return fallbackReply
	}
	return last.Content
}
