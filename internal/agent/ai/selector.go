package ai

import (
	"fmt"

	"github.com/quorumlabs/maestro/internal/agent/persona"
)

// Routing maps each persona to the capability identifier that serves it.
type Routing struct {
	Vision    string `json:"vision" yaml:"vision"`
	Financial string `json:"financial" yaml:"financial"`
	Creative  string `json:"creative" yaml:"creative"`
}

// SelectCapability picks the capability for a classified turn. An attached
// image always routes to the vision capability regardless of persona. An
// unresolvable mapping is an error, never a silent fallback.
func SelectCapability(p persona.Persona, hasImage bool, r Routing) (string, error) {
	if hasImage {
		if r.Vision == "" {
			return "", fmt.Errorf("no capability configured for image input")
		}
		return r.Vision, nil
	}

	switch p {
	case persona.VisionAgent:
		if r.Vision == "" {
			return "", fmt.Errorf("no capability configured for persona %q", p)
		}
		return r.Vision, nil
	case persona.FinancialAnalyst:
		if r.Financial == "" {
			return "", fmt.Errorf("no capability configured for persona %q", p)
		}
		return r.Financial, nil
	case persona.CreativeWriter:
		if r.Creative == "" {
			return "", fmt.Errorf("no capability configured for persona %q", p)
		}
		return r.Creative, nil
	default:
		return "", fmt.Errorf("unknown persona %q", p)
	}
}
