package persona

import (
	"testing"

	"github.com/quorumlabs/maestro/internal/agent/session"
)

func TestClassify_DefaultsToCreativeWriter(t *testing.T) {
	tests := []string{
		"Write me a short poem about rain",
		"Tell me a story about a dragon",
		"",
	}
	for _, text := range tests {
		got := Classify([]session.Message{session.UserText(text)})
		if got != CreativeWriter {
			t.Errorf("Classify(%q) = %q, want %q", text, got, CreativeWriter)
		}
	}
}

func TestClassify_FinancialKeywords(t *testing.T) {
	tests := []string{
		"What is the price of Bitcoin in INR?",
		"top 5 IT companies in India",
		"how is the stock market doing",
		"latest crypto news",
	}
	for _, text := range tests {
		got := Classify([]session.Message{session.UserText(text)})
		if got != FinancialAnalyst {
			t.Errorf("Classify(%q) = %q, want %q", text, got, FinancialAnalyst)
		}
	}
}

func TestClassify_CaseInsensitive(t *testing.T) {
	upper := Classify([]session.Message{session.UserText("BITCOIN price")})
	lower := Classify([]session.Message{session.UserText("bitcoin price")})
	if upper != lower {
		t.Errorf("case changed classification: %q vs %q", upper, lower)
	}
	if upper != FinancialAnalyst {
		t.Errorf("got %q, want %q", upper, FinancialAnalyst)
	}
}

func TestClassify_ImageWinsOverKeywords(t *testing.T) {
	msg := session.UserMultimodal("what is the bitcoin price in this chart", session.ImagePart{
		MediaType: "image/jpeg",
		Data:      "aGVsbG8=",
	})
	if got := Classify([]session.Message{msg}); got != VisionAgent {
		t.Errorf("image should take precedence, got %q", got)
	}
}

func TestClassify_UsesLatestUserTurn(t *testing.T) {
	msgs := []session.Message{
		session.UserText("what is the bitcoin price"),
		{Role: session.RoleAssistant, Content: "around 98,000 USD"},
		session.UserText("now write me a poem about it"),
	}
	if got := Classify(msgs); got != CreativeWriter {
		t.Errorf("latest turn should decide, got %q", got)
	}
}

func TestClassify_NoUserTurn(t *testing.T) {
	if got := Classify(nil); got != CreativeWriter {
		t.Errorf("empty conversation should default to %q, got %q", CreativeWriter, got)
	}
}
