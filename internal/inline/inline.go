package inline

import (
	"regexp"
	"strings"

	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"
	"github.com/yuin/goldmark/util"
)

// Span is a run of text sharing one emphasis state.
type Span struct {
	Text   string `yaml:"text"`
	Bold   bool   `yaml:"bold,omitempty"`
	Italic bool   `yaml:"italic,omitempty"`
}

// Precompiled patterns for text cleaning.
var (
	crlfOrCR   = regexp.MustCompile(`\r\n?`)
	whitespace = regexp.MustCompile(`\s+`)
)

// dashReplacer normalizes typographic dashes. Reports never carry em or
// en dashes; a spaced em dash reads as a spaced hyphen.
var dashReplacer = strings.NewReplacer(
	"—", "-", // em dash
	"–", "-", // en dash
	"‒", "-", // figure dash
	"―", "-", // horizontal bar
)

// inlineParser only knows paragraphs: block syntax stays literal.
var inlineParser = parser.NewParser(
	parser.WithBlockParsers(util.Prioritized(parser.NewParagraphParser(), 1000)),
	parser.WithInlineParsers(parser.DefaultInlineParsers()...),
)

// Clean normalizes line endings and dashes and collapses runs of
// whitespace to a single space.
func Clean(s string) string {
	s = crlfOrCR.ReplaceAllString(s, "\n")
	s = dashReplacer.Replace(s)
	s = whitespace.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}

// Parse cleans s and splits it into spans. Adjacent spans with the same
// emphasis are merged. An empty or all-whitespace string yields nil.
func Parse(s string) []Span {
	cleaned := Clean(s)
	if cleaned == "" {
		return nil
	}

	source := []byte(cleaned)
	doc := inlineParser.Parse(text.NewReader(source))

	var (
		spans        []Span
		bold, italic int
	)
	appendText := func(t string) {
		if t == "" {
			return
		}
		if n := len(spans); n > 0 && spans[n-1].Bold == (bold > 0) && spans[n-1].Italic == (italic > 0) {
			spans[n-1].Text += t
			return
		}
		spans = append(spans, Span{Text: t, Bold: bold > 0, Italic: italic > 0})
	}

	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		switch node := n.(type) {
		case *ast.Emphasis:
			delta := -1
			if entering {
				delta = 1
			}
			if node.Level >= 2 {
				bold += delta
			} else {
				italic += delta
			}
		case *ast.Text:
			if entering {
				appendText(string(util.UnescapePunctuations(node.Segment.Value(source))))
				if node.SoftLineBreak() || node.HardLineBreak() {
					appendText(" ")
				}
			}
		case *ast.String:
			if entering {
				appendText(string(node.Value))
			}
		case *ast.RawHTML:
			if entering {
				for i := 0; i < node.Segments.Len(); i++ {
					seg := node.Segments.At(i)
					appendText(string(seg.Value(source)))
				}
			}
		case *ast.Link:
			// The destination follows the label unless it repeats it.
			if !entering {
				dest := string(node.Destination)
				if dest != "" && dest != linkLabel(node, source) {
					appendText(" (" + dest + ")")
				}
			}
		case *ast.AutoLink:
			if entering {
				appendText(string(node.Label(source)))
			}
		}
		return ast.WalkContinue, nil
	})

	return spans
}

// linkLabel returns the unstyled text of a link's label.
func linkLabel(link *ast.Link, source []byte) string {
	var b strings.Builder
	_ = ast.Walk(link, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if t, ok := n.(*ast.Text); ok && entering {
			b.Write(util.UnescapePunctuations(t.Segment.Value(source)))
		}
		return ast.WalkContinue, nil
	})
	return b.String()
}

// Plain returns the cleaned text of s with emphasis markers removed.
func Plain(s string) string {
	var b strings.Builder
	for _, sp := range Parse(s) {
		b.WriteString(sp.Text)
	}
	return b.String()
}
