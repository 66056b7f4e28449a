package ai

import (
	"testing"

	"github.com/quorumlabs/maestro/internal/agent/persona"
)

var testRouting = Routing{
	Vision:    "groq/meta-llama/llama-4-scout-17b-16e-instruct",
	Financial: "groq/llama-3.3-70b-versatile",
	Creative:  "groq/llama-3.1-8b-instant",
}

func TestSelectCapability_PerPersona(t *testing.T) {
	tests := []struct {
		persona persona.Persona
		want    string
	}{
		{persona.VisionAgent, testRouting.Vision},
		{persona.FinancialAnalyst, testRouting.Financial},
		{persona.CreativeWriter, testRouting.Creative},
	}
	for _, tt := range tests {
		got, err := SelectCapability(tt.persona, false, testRouting)
		if err != nil {
			t.Fatalf("SelectCapability(%q): %v", tt.persona, err)
		}
		if got != tt.want {
			t.Errorf("SelectCapability(%q) = %q, want %q", tt.persona, got, tt.want)
		}
	}
}

func TestSelectCapability_ImageOverridesPersona(t *testing.T) {
	got, err := SelectCapability(persona.FinancialAnalyst, true, testRouting)
	if err != nil {
		t.Fatal(err)
	}
	if got != testRouting.Vision {
		t.Errorf("image input should select vision capability, got %q", got)
	}
}

func TestSelectCapability_UnmappedIsError(t *testing.T) {
	if _, err := SelectCapability(persona.FinancialAnalyst, false, Routing{}); err == nil {
		t.Error("missing mapping should fail loudly, not default")
	}
	if _, err := SelectCapability(persona.Persona("Ghost Writer"), false, testRouting); err == nil {
		t.Error("unknown persona should fail loudly")
	}
	if _, err := SelectCapability(persona.VisionAgent, true, Routing{Financial: "x", Creative: "y"}); err == nil {
		t.Error("image input with no vision capability should fail")
	}
}

func TestParseModelID(t *testing.T) {
	tests := []struct {
		in           string
		wantProvider string
		wantModel    string
	}{
		{"groq/llama-3.3-70b-versatile", "groq", "llama-3.3-70b-versatile"},
		{"groq/meta-llama/llama-4-scout-17b-16e-instruct", "groq", "meta-llama/llama-4-scout-17b-16e-instruct"},
		{"bare-model", "", "bare-model"},
	}
	for _, tt := range tests {
		provider, model := ParseModelID(tt.in)
		if provider != tt.wantProvider || model != tt.wantModel {
			t.Errorf("ParseModelID(%q) = (%q, %q), want (%q, %q)",
				tt.in, provider, model, tt.wantProvider, tt.wantModel)
		}
	}
}
