package tools

import (
	"regexp"
	"strings"
)

// Snippet cleanup pipeline. Order matters: structural junk first, then word
// boundary repair, then artifact removal, then whitespace collapse.
var (
	// newlines, tabs, and common markdown tokens
	junkCharRe = regexp.MustCompile(`[\n\r\t*_|#]`)
	// "496USD" -> "496 USD"
	digitLetterRe = regexp.MustCompile(`(\d)([a-zA-Z])`)
	// "witha24" -> "witha 24"
	letterDigitRe = regexp.MustCompile(`([a-zA-Z])(\d)`)
	// stray artifacts like "[...]" or "[+3 more]"
	bracketedRe = regexp.MustCompile(`\[.*?\]`)
	// runs of whitespace
	multiSpaceRe = regexp.MustCompile(`\s+`)
)

// CleanSnippet normalizes a raw search snippet into a single readable line.
// It strips markdown and control characters, repairs jumbled digit/letter
// boundaries, removes bracketed artifacts, and collapses whitespace.
// Idempotent: cleaning already-clean text is a no-op.
func CleanSnippet(text string) string {
	text = junkCharRe.ReplaceAllString(text, " ")
	text = digitLetterRe.ReplaceAllString(text, "$1 $2")
	text = letterDigitRe.ReplaceAllString(text, "$1 $2")
	text = bracketedRe.ReplaceAllString(text, "")
	return strings.TrimSpace(multiSpaceRe.ReplaceAllString(text, " "))
}
