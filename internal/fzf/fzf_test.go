package fzf

import "testing"

func TestNoteLabelUsesFrontmatterTitleAndTags(t *testing.T) {
	content := "---\ntitle: Weekly Review\n---\n\nnotes #review #work\n"

	got := noteLabel("inbox/weekly.md", content, false)
	want := "Weekly Review [#review, #work]"
	if got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestNoteLabelFallsBackToFilename(t *testing.T) {
	got := noteLabel("inbox/grocery-list.md", "milk\n", false)
	if got != "grocery list" {
		t.Fatalf("expected filename title, got %q", got)
	}
}

func TestNoteLabelMarksPinned(t *testing.T) {
	got := noteLabel("a.md", "body\n", true)
	if got != "● a" {
		t.Fatalf("expected pin marker, got %q", got)
	}
}
