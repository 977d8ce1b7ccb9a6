// Package htmlquery provides the two tree operations kcoas needs from a parsed
// HTML document: select descendants matching a CSS selector, and read the text
// content of a node.
package htmlquery

import (
	"strings"

	"github.com/andybalholm/cascadia"
	"golang.org/x/net/html"
)

// Selector is a compiled CSS selector together with its source text.
type Selector struct {
	source string
	match  cascadia.Selector
}

// Compile parses a CSS selector.
func Compile(source string) (*Selector, error) {
	sel, err := cascadia.Compile(source)
	if err != nil {
		return nil, err
	}
	return &Selector{source: source, match: sel}, nil
}

// MustCompile is like Compile but panics if the selector cannot be parsed.
// It is meant for package-level selector variables.
func MustCompile(source string) *Selector {
	s, err := Compile(source)
	if err != nil {
		panic("htmlquery: invalid selector " + source + ": " + err.Error())
	}
	return s
}

// String returns the selector source.
func (s *Selector) String() string {
	return s.source
}

// All returns the descendants of n matching s, in document order.
// n itself is never included.
func (s *Selector) All(n *html.Node) []*html.Node {
	var out []*html.Node
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		out = append(out, s.match.MatchAll(c)...)
	}
	return out
}

// First returns the first descendant of n matching s in document order,
// or nil when there is none.
func (s *Selector) First(n *html.Node) *html.Node {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if m := s.match.MatchFirst(c); m != nil {
			return m
		}
	}
	return nil
}

// Text returns the concatenated text of every text node below n, verbatim.
// No whitespace is trimmed or collapsed.
func Text(n *html.Node) string {
	var sb strings.Builder
	appendText(n, &sb)
	return sb.String()
}

func appendText(n *html.Node, sb *strings.Builder) {
	if n.Type == html.TextNode {
		sb.WriteString(n.Data)
		return
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		appendText(c, sb)
	}
}
