// Package graph runs one conversational turn through a fixed state machine:
// persona routing, capability selection, then a bounded generate/tool loop
// that ends in a single final reply.
package graph

import (
	"errors"

	"github.com/quorumlabs/maestro/internal/agent/persona"
	"github.com/quorumlabs/maestro/internal/agent/session"
)

// Node names one state of the orchestration machine.
type Node string

const (
	NodePersonaRouting      Node = "persona_routing"
	NodeCapabilitySelection Node = "capability_selection"
	NodeGenerating          Node = "generating"
	NodeToolInvoking        Node = "tool_invoking"
	NodeSynthesizing        Node = "synthesizing"
	NodeDone                Node = "done"
)

// ErrToolRoundsExceeded is returned when the generate/tool loop keeps
// requesting tools past the configured round budget.
var ErrToolRoundsExceeded = errors.New("tool invocation rounds exhausted without a final reply")

// State is the working memory of one run. Messages only ever grows at the
// tail; persona and capability are set once and never revised.
type State struct {
	Node           Node
	Messages       []session.Message
	Persona        persona.Persona
	Capability     string
	AllowSearch    bool
	ToolRoundsLeft int
}

// append adds a message to the conversation tail.
func (s *State) append(msg session.Message) {
	s.Messages = append(s.Messages, msg)
}
