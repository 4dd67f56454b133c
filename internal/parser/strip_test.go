package parser

import (
	"strings"
	"testing"
)

func TestStripMarkdownRemovesMarkup(t *testing.T) {
	input := "---\ntitle: t\n---\n" +
		"# Heading\n\n" +
		"Some **bold** and _italic_ and ~~gone~~ text.\n\n" +
		"> quoted line\n\n" +
		"- item one\n- item two\n\n" +
		"A [link](https://example.com) and an ![alt](img.png) image.\n\n" +
		"Inline `code` and #tag here.\n\n" +
		"```\nfenced code\n```\n"

	got := StripMarkdown(input)

	for _, banned := range []string{"#", "*", "_", "~~", "`", "[", "]", "(", ")", "fenced", "alt", "code"} {
		if strings.Contains(got, banned) {
			t.Errorf("expected %q to be absent from stripped output, got:\n%s", banned, got)
		}
	}
	for _, kept := range []string{"Heading", "bold", "italic", "gone", "quoted line", "item one", "link", "here"} {
		if !strings.Contains(got, kept) {
			t.Errorf("expected %q to survive stripping, got:\n%s", kept, got)
		}
	}
}

func TestStripMarkdownIdempotentOnOwnOutput(t *testing.T) {
	inputs := []string{
		"plain prose, nothing fancy",
		"# Head\n\npara one\n\npara two with **bold**",
		"line one\nline two\n\n- a\n- b",
		"",
	}
	for _, input := range inputs {
		once := StripMarkdown(input)
		twice := StripMarkdown(once)
		if once != twice {
			t.Errorf("StripMarkdown not idempotent:\nonce:  %q\ntwice: %q", once, twice)
		}
	}
}

func TestStripMarkdownDropsFrontmatter(t *testing.T) {
	got := StripMarkdown("---\ntags: [a, b]\n---\nbody text")
	if got != "body text" {
		t.Fatalf("expected body text, got %q", got)
	}
}

func TestPreviewTextLengthBound(t *testing.T) {
	long := strings.Repeat("word ", 200)
	for _, n := range []int{0, 1, 10, 120} {
		got := PreviewText(long, n)
		if len([]rune(got)) > n+3 {
			t.Errorf("PreviewText(_, %d) returned %d runes", n, len([]rune(got)))
		}
	}
}

func TestPreviewTextZeroLength(t *testing.T) {
	if got := PreviewText("anything", 0); got != "" {
		t.Fatalf("expected empty preview, got %q", got)
	}
}

func TestPreviewTextCollapsesBlankRuns(t *testing.T) {
	got := PreviewText("one\n\n\n\ntwo", 100)
	if got != "one\ntwo" {
		t.Fatalf("expected collapsed newlines, got %q", got)
	}
}

func TestPreviewTextEllipsisOnlyWhenTruncated(t *testing.T) {
	if got := PreviewText("short", 50); strings.HasSuffix(got, "...") {
		t.Fatalf("unexpected ellipsis on short input: %q", got)
	}
	if got := PreviewText(strings.Repeat("x", 60), 50); !strings.HasSuffix(got, "...") {
		t.Fatalf("expected ellipsis on truncated input: %q", got)
	}
}
