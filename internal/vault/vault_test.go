package vault

import (
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"
)

func TestListSkipsDotfilesAndDirectories(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	mustWriteFile(t, filepath.Join(dir, "root.md"))
	mustWriteFile(t, filepath.Join(dir, "project", "nested.md"))
	mustWriteFile(t, filepath.Join(dir, "project", "notes.txt"))
	mustWriteFile(t, filepath.Join(dir, ".obsidian", "config.md"))
	mustWriteFile(t, filepath.Join(dir, ".hidden.md"))

	v := New(dir, nil)
	files, err := v.List()
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}

	var paths []string
	for _, f := range files {
		paths = append(paths, f.Path)
	}
	slices.Sort(paths)

	want := []string{"project/nested.md", "project/notes.txt", "root.md"}
	if !slices.Equal(paths, want) {
		t.Fatalf("List returned %v, want %v", paths, want)
	}
}

func TestListReportsLowercaseExtension(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	mustWriteFile(t, filepath.Join(dir, "shout.MD"))

	v := New(dir, nil)
	files, err := v.List()
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if len(files) != 1 || files[0].Ext != "md" {
		t.Fatalf("expected one file with ext md, got %+v", files)
	}
}

func TestCreateSlugAndHeading(t *testing.T) {
	t.Parallel()

	v := New(t.TempDir(), nil)
	rel, err := v.Create("inbox", "Grocery List!", "milk\neggs")
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if rel != "inbox/grocery-list.md" {
		t.Fatalf("unexpected path %q", rel)
	}

	data, err := v.Read(rel)
	if err != nil {
		t.Fatalf("Read returned error: %v", err)
	}
	if !strings.HasPrefix(string(data), "# Grocery List!\n\nmilk\neggs") {
		t.Fatalf("unexpected content:\n%s", data)
	}
}

func TestCreateSuffixesOnCollision(t *testing.T) {
	t.Parallel()

	v := New(t.TempDir(), nil)
	first, err := v.Create("", "idea", "one")
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	second, err := v.Create("", "idea", "two")
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	if first != "idea.md" || second != "idea-2.md" {
		t.Fatalf("expected idea.md then idea-2.md, got %q and %q", first, second)
	}
}

func TestCreateEmptyTitleFallsBackToTimestamp(t *testing.T) {
	t.Parallel()

	v := New(t.TempDir(), nil)
	rel, err := v.Create("", "  ", "body only")
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if !strings.HasPrefix(filepath.Base(rel), "capture-") {
		t.Fatalf("expected capture- prefix, got %q", rel)
	}
	data, err := v.Read(rel)
	if err != nil {
		t.Fatalf("Read returned error: %v", err)
	}
	if strings.HasPrefix(string(data), "#") {
		t.Fatalf("expected no heading for empty title, got:\n%s", data)
	}
}

func TestRenameAndDelete(t *testing.T) {
	t.Parallel()

	v := New(t.TempDir(), nil)
	rel, err := v.Create("", "movable", "x")
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	if err := v.Rename(rel, "archive/movable.md"); err != nil {
		t.Fatalf("Rename returned error: %v", err)
	}
	if _, err := v.Read("archive/movable.md"); err != nil {
		t.Fatalf("expected renamed note readable: %v", err)
	}

	if err := v.Delete("archive/movable.md"); err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}
	if _, err := v.Read("archive/movable.md"); err == nil {
		t.Fatal("expected read of deleted note to fail")
	}
}

func mustWriteFile(t *testing.T, path string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("failed to create directory %s: %v", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, []byte("# test\n"), 0o644); err != nil {
		t.Fatalf("failed to write file %s: %v", path, err)
	}
}
