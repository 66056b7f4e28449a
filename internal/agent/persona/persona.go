// Package persona classifies a conversation turn into an operating mode.
package persona

import (
	"strings"

	"github.com/quorumlabs/maestro/internal/agent/session"
)

// Persona is the classified operating mode for a turn. It determines both
// the instruction preamble and which generation capability serves the turn.
type Persona string

const (
	VisionAgent      Persona = "Vision Agent"
	FinancialAnalyst Persona = "Financial Analyst"
	CreativeWriter   Persona = "Creative Writer"
)

// financialKeywords match market/finance/crypto/pricing/ranking vocabulary
// in the latest user turn. Matching is a simple OR over substrings.
var financialKeywords = []string{
	"stock", "market", "finance", "news", "companies", "top 5", "top 10",
	"price", "bitcoin", "crypto", "investment", "rate", "usd", "inr",
	"business", "economic", "latest", "largest", "ranking",
}

// Classify assigns a persona from the turn sequence. Priority order is
// fixed: an image on the latest user turn wins outright, then a financial
// keyword match on its text, then the creative default. Pure function.
func Classify(msgs []session.Message) Persona {
	last, ok := session.LastUserMessage(msgs)
	if !ok {
		return CreativeWriter
	}

	if last.HasImage() {
		return VisionAgent
	}

	query := strings.ToLower(last.Text())
	for _, kw := range financialKeywords {
		if strings.Contains(query, kw) {
			return FinancialAnalyst
		}
	}

	return CreativeWriter
}
