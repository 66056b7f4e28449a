package tools

import (
	"bytes"
	"regexp"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// skipElements are elements whose entire subtree is discarded when reducing
// an HTML fragment to visible text.
var skipElements = map[atom.Atom]bool{
	atom.Script:   true,
	atom.Style:    true,
	atom.Noscript: true,
	atom.Svg:      true,
	atom.Template: true,
	atom.Iframe:   true,
	atom.Object:   true,
	atom.Embed:    true,
}

// hiddenStyleRe matches inline styles that hide an element.
var hiddenStyleRe = regexp.MustCompile(`(?i)display\s*:\s*none|visibility\s*:\s*hidden`)

// htmlTagRe is a cheap signal that a snippet carries markup worth parsing.
var htmlTagRe = regexp.MustCompile(`(?i)<\s*/?\s*[a-z][a-z0-9]*[^>]*>`)

// VisibleText reduces an HTML fragment to the text a reader would see.
// Plain text passes through unchanged; a parse failure returns the input
// rather than losing content.
func VisibleText(raw string) string {
	if !htmlTagRe.MatchString(raw) {
		return raw
	}

	doc, err := html.Parse(bytes.NewReader([]byte(raw)))
	if err != nil {
		return raw
	}

	var buf strings.Builder
	buf.Grow(len(raw) / 3)
	visitVisible(doc, &buf)
	return buf.String()
}

func visitVisible(n *html.Node, buf *strings.Builder) {
	switch n.Type {
	case html.TextNode:
		buf.WriteString(n.Data)
		return

	case html.ElementNode:
		if skipElements[n.DataAtom] {
			return
		}
		if attrValue(n, "aria-hidden") == "true" {
			return
		}
		if style := attrValue(n, "style"); style != "" && hiddenStyleRe.MatchString(style) {
			return
		}
		for _, a := range n.Attr {
			if a.Key == "hidden" {
				return
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			visitVisible(c, buf)
		}
		// element boundaries become whitespace so words don't fuse
		buf.WriteString(" ")

	default:
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			visitVisible(c, buf)
		}
	}
}

func attrValue(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}
