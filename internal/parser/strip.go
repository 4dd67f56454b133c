package parser

import (
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/text"
)

// stripParser is the markdown parser used for preview extraction. The
// strikethrough extension is enabled so ~~markers~~ are consumed rather than
// left in the output.
var stripParser = goldmark.New(
	goldmark.WithExtensions(extension.Strikethrough),
).Parser()

// StripMarkdown reduces markdown to prose: the frontmatter block, heading and
// emphasis markers, inline and fenced code, link and image syntax, quote and
// list markers, and inline tags are all removed, keeping link text and
// dropping image alt text. This is a best-effort lossy transform for preview
// purposes, not a round-trippable parse; malformed markup may leave residual
// punctuation.
func StripMarkdown(input string) string {
	_, body := splitFrontmatter(input)
	source := []byte(body)
	doc := stripParser.Parse(text.NewReader(source))

	var b strings.Builder
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		switch node := n.(type) {
		case *ast.FencedCodeBlock, *ast.CodeBlock, *ast.HTMLBlock:
			if entering {
				return ast.WalkSkipChildren, nil
			}
		case *ast.CodeSpan, *ast.Image:
			if entering {
				return ast.WalkSkipChildren, nil
			}
		case *ast.Text:
			if entering {
				b.Write(node.Segment.Value(source))
				if node.SoftLineBreak() || node.HardLineBreak() {
					b.WriteByte('\n')
				}
			}
		case *ast.String:
			if entering {
				b.Write(node.Value)
			}
		default:
			if !entering && n.Type() == ast.TypeBlock {
				ensureTrailingNewline(&b)
			}
		}
		return ast.WalkContinue, nil
	})

	out := inlineTagRe.ReplaceAllString(b.String(), "$1")
	return strings.TrimSpace(out)
}

func ensureTrailingNewline(b *strings.Builder) {
	if s := b.String(); s != "" && !strings.HasSuffix(s, "\n") {
		b.WriteByte('\n')
	}
}
