package tools

import "testing"

func TestCleanSnippet_DigitLetterBoundaries(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"496USD", "496 USD"},
		{"USD496", "USD 496"},
		{"Bitcoin price:98000INR today", "Bitcoin price:98000 INR today"},
		{"witha24", "witha 24"},
	}
	for _, tt := range tests {
		if got := CleanSnippet(tt.in); got != tt.want {
			t.Errorf("CleanSnippet(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestCleanSnippet_StripsMarkdownAndControlChars(t *testing.T) {
	in := "**Bitcoin**\nprice\t| today ## now"
	want := "Bitcoin price today now"
	if got := CleanSnippet(in); got != want {
		t.Errorf("CleanSnippet(%q) = %q, want %q", in, got, want)
	}
}

func TestCleanSnippet_RemovesBracketedArtifacts(t *testing.T) {
	in := "The price rose [...] sharply [+3 more] overnight"
	want := "The price rose sharply overnight"
	if got := CleanSnippet(in); got != want {
		t.Errorf("CleanSnippet(%q) = %q, want %q", in, got, want)
	}
}

func TestCleanSnippet_CollapsesWhitespaceAndTrims(t *testing.T) {
	in := "  too   many    spaces  "
	want := "too many spaces"
	if got := CleanSnippet(in); got != want {
		t.Errorf("CleanSnippet(%q) = %q, want %q", in, got, want)
	}
}

func TestCleanSnippet_EmptyInput(t *testing.T) {
	if got := CleanSnippet(""); got != "" {
		t.Errorf("CleanSnippet(\"\") = %q, want empty", got)
	}
}

func TestCleanSnippet_Idempotent(t *testing.T) {
	inputs := []string{
		"496USD",
		"**Bitcoin** price\n98,000INR [...] on3exchanges",
		"already clean text",
		"  \t\n ",
		"₹1,01,20,088.16 on Mudrex",
	}
	for _, in := range inputs {
		once := CleanSnippet(in)
		twice := CleanSnippet(once)
		if once != twice {
			t.Errorf("CleanSnippet not idempotent for %q: first %q, second %q", in, once, twice)
		}
	}
}
