package pipeline

import (
	"errors"
	"path/filepath"
	"slices"
	"strings"
	"testing"
	"time"

	"github.com/Paintersrp/corkboard/internal/collection"
	"github.com/Paintersrp/corkboard/internal/vault"
)

// fakeLibrary serves notes from memory so pipeline tests need no vault on
// disk.
type fakeLibrary struct {
	files    []vault.NoteFile
	contents map[string]string
	listErr  error
}

func (f *fakeLibrary) List() ([]vault.NoteFile, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.files, nil
}

func (f *fakeLibrary) Read(rel string) ([]byte, error) {
	content, ok := f.contents[rel]
	if !ok {
		return nil, errors.New("unreadable")
	}
	return []byte(content), nil
}

func newFakeLibrary() *fakeLibrary {
	return &fakeLibrary{contents: make(map[string]string)}
}

func (f *fakeLibrary) add(path, content string, modTime time.Time) {
	f.files = append(f.files, vault.NoteFile{
		Path:    path,
		Ext:     strings.TrimPrefix(filepath.Ext(path), "."),
		ModTime: modTime,
	})
	f.contents[path] = content
}

func newTestStore(t *testing.T) *collection.Store {
	t.Helper()
	repo := collection.NewFileRepository(filepath.Join(t.TempDir(), "board.yaml"))
	return collection.NewStore(repo, nil)
}

func paths(cards []Card) []string {
	var out []string
	for _, c := range cards {
		out = append(out, c.Path)
	}
	return out
}

func TestBuildPartitionsPinnedBeforeUnpinned(t *testing.T) {
	lib := newFakeLibrary()
	base := time.Now()
	lib.add("a.md", "alpha", base.Add(-3*time.Hour))
	lib.add("b.md", "bravo", base.Add(-2*time.Hour))
	lib.add("c.md", "charlie", base.Add(-1*time.Hour))

	store := newTestStore(t)
	store.TogglePin("a.md")

	result, err := New(lib, store, nil).Build(Filter{})
	if err != nil {
		t.Fatalf("Build returned error: %v", err)
	}

	if got := paths(result.Pinned); !slices.Equal(got, []string{"a.md"}) {
		t.Fatalf("pinned partition %v", got)
	}
	if got := paths(result.Unpinned); !slices.Equal(got, []string{"c.md", "b.md"}) {
		t.Fatalf("expected unpinned newest-first, got %v", got)
	}
	if got := paths(result.Flattened()); !slices.Equal(got, []string{"a.md", "c.md", "b.md"}) {
		t.Fatalf("flattened %v", got)
	}
	for i, c := range result.Flattened() {
		if c.Position != i {
			t.Fatalf("expected position %d for %s, got %d", i, c.Path, c.Position)
		}
	}
}

func TestBuildManualOrderBeforeRecency(t *testing.T) {
	lib := newFakeLibrary()
	base := time.Now()
	lib.add("a.md", "x", base.Add(-1*time.Hour))
	lib.add("b.md", "x", base.Add(-2*time.Hour))
	lib.add("c.md", "x", base.Add(-3*time.Hour))
	lib.add("d.md", "x", base.Add(-4*time.Hour))

	store := newTestStore(t)
	store.SetOrder([]string{"c.md", "b.md"})

	result, err := New(lib, store, nil).Build(Filter{})
	if err != nil {
		t.Fatalf("Build returned error: %v", err)
	}

	want := []string{"c.md", "b.md", "a.md", "d.md"}
	if got := paths(result.Unpinned); !slices.Equal(got, want) {
		t.Fatalf("expected positioned-then-recency order %v, got %v", want, got)
	}
}

func TestBuildStaleOrderEntriesIgnored(t *testing.T) {
	lib := newFakeLibrary()
	lib.add("real.md", "x", time.Now())

	store := newTestStore(t)
	store.SetOrder([]string{"deleted.md", "real.md"})

	result, err := New(lib, store, nil).Build(Filter{})
	if err != nil {
		t.Fatalf("Build returned error: %v", err)
	}
	if got := paths(result.Unpinned); !slices.Equal(got, []string{"real.md"}) {
		t.Fatalf("expected only existing notes, got %v", got)
	}
}

func TestBuildRespectsMaxNotes(t *testing.T) {
	lib := newFakeLibrary()
	base := time.Now()
	for i := 0; i < 10; i++ {
		lib.add(string(rune('a'+i))+".md", "x", base.Add(-time.Duration(i)*time.Minute))
	}

	store := newTestStore(t)
	if !store.SetMaxNotes("4") {
		t.Fatal("expected max notes to be accepted")
	}

	result, err := New(lib, store, nil).Build(Filter{})
	if err != nil {
		t.Fatalf("Build returned error: %v", err)
	}
	if result.Total() != 4 {
		t.Fatalf("expected 4 cards, got %d", result.Total())
	}
	if got := paths(result.Unpinned); !slices.Equal(got, []string{"a.md", "b.md", "c.md", "d.md"}) {
		t.Fatalf("expected the 4 most recent notes, got %v", got)
	}
}

func TestBuildExcludedFoldersAndSourceFolder(t *testing.T) {
	lib := newFakeLibrary()
	now := time.Now()
	lib.add("inbox/keep.md", "x", now)
	lib.add("inbox/archive-notes.md", "x", now)
	lib.add("archive/old.md", "x", now)
	lib.add("archive/deep/older.md", "x", now)
	lib.add("other/skip.md", "x", now)

	store := newTestStore(t)
	store.SetExcludedFolders([]string{"archive"})

	result, err := New(lib, store, nil).Build(Filter{})
	if err != nil {
		t.Fatalf("Build returned error: %v", err)
	}
	got := paths(result.Flattened())
	slices.Sort(got)
	want := []string{"inbox/archive-notes.md", "inbox/keep.md", "other/skip.md"}
	if !slices.Equal(got, want) {
		t.Fatalf("expected exact folder exclusion %v, got %v", want, got)
	}

	store.SetFolder("inbox")
	result, err = New(lib, store, nil).Build(Filter{})
	if err != nil {
		t.Fatalf("Build returned error: %v", err)
	}
	got = paths(result.Flattened())
	slices.Sort(got)
	want = []string{"inbox/archive-notes.md", "inbox/keep.md"}
	if !slices.Equal(got, want) {
		t.Fatalf("expected source-folder scoping %v, got %v", want, got)
	}
}

func TestBuildExtensionFilter(t *testing.T) {
	lib := newFakeLibrary()
	now := time.Now()
	lib.add("note.md", "x", now)
	lib.add("note.txt", "x", now)

	store := newTestStore(t)

	result, err := New(lib, store, nil).Build(Filter{})
	if err != nil {
		t.Fatalf("Build returned error: %v", err)
	}
	if got := paths(result.Flattened()); !slices.Equal(got, []string{"note.md"}) {
		t.Fatalf("expected md only by default, got %v", got)
	}

	store.SetExtensions([]string{"md", "txt"})
	result, err = New(lib, store, nil).Build(Filter{})
	if err != nil {
		t.Fatalf("Build returned error: %v", err)
	}
	if result.Total() != 2 {
		t.Fatalf("expected both extensions, got %v", paths(result.Flattened()))
	}
}

func TestBuildTagFilterExactMatch(t *testing.T) {
	lib := newFakeLibrary()
	now := time.Now()
	lib.add("a.md", "has #work tag", now)
	lib.add("b.md", "has #work/deep tag", now)
	lib.add("c.md", "no tags", now)

	result, err := New(lib, newTestStore(t), nil).Build(Filter{Tag: "#work"})
	if err != nil {
		t.Fatalf("Build returned error: %v", err)
	}
	if got := paths(result.Flattened()); !slices.Equal(got, []string{"a.md"}) {
		t.Fatalf("expected exact tag match only, got %v", got)
	}
	if !slices.Equal(result.AllTags, []string{"#work", "#work/deep"}) {
		t.Fatalf("expected full tag menu despite filter, got %v", result.AllTags)
	}
}

func TestBuildPinFilterTriState(t *testing.T) {
	lib := newFakeLibrary()
	now := time.Now()
	lib.add("pinned.md", "x", now)
	lib.add("loose.md", "x", now)

	store := newTestStore(t)
	store.TogglePin("pinned.md")
	b := New(lib, store, nil)

	all, err := b.Build(Filter{Pins: PinAll})
	if err != nil {
		t.Fatalf("Build returned error: %v", err)
	}
	if all.Total() != 2 {
		t.Fatalf("expected both under PinAll, got %v", paths(all.Flattened()))
	}

	pinnedOnly, err := b.Build(Filter{Pins: PinPinnedOnly})
	if err != nil {
		t.Fatalf("Build returned error: %v", err)
	}
	if got := paths(pinnedOnly.Flattened()); !slices.Equal(got, []string{"pinned.md"}) {
		t.Fatalf("expected pinned only, got %v", got)
	}

	unpinnedOnly, err := b.Build(Filter{Pins: PinUnpinnedOnly})
	if err != nil {
		t.Fatalf("Build returned error: %v", err)
	}
	if got := paths(unpinnedOnly.Flattened()); !slices.Equal(got, []string{"loose.md"}) {
		t.Fatalf("expected unpinned only, got %v", got)
	}

	if PinAll.Next() != PinPinnedOnly || PinPinnedOnly.Next() != PinUnpinnedOnly || PinUnpinnedOnly.Next() != PinAll {
		t.Fatal("expected tri-state cycle all -> pinned -> unpinned -> all")
	}
}

func TestBuildDropsUnreadableNotes(t *testing.T) {
	lib := newFakeLibrary()
	now := time.Now()
	lib.add("good.md", "x", now)
	lib.files = append(lib.files, vault.NoteFile{Path: "bad.md", Ext: "md", ModTime: now})

	result, err := New(lib, newTestStore(t), nil).Build(Filter{})
	if err != nil {
		t.Fatalf("Build returned error: %v", err)
	}
	if got := paths(result.Flattened()); !slices.Equal(got, []string{"good.md"}) {
		t.Fatalf("expected unreadable note dropped, got %v", got)
	}
}

func TestBuildListingFailureIsTotal(t *testing.T) {
	lib := newFakeLibrary()
	lib.listErr = errors.New("boom")

	result, err := New(lib, newTestStore(t), nil).Build(Filter{})
	if err == nil {
		t.Fatal("expected error from failed listing")
	}
	if !result.Empty() {
		t.Fatalf("expected no partial result, got %d cards", result.Total())
	}
}

func TestCardMetadata(t *testing.T) {
	lib := newFakeLibrary()
	mod := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	lib.add("plain-note.md", "body text #idea", mod)
	lib.add("dated.md", "---\ntitle: Dated Note\ndate: 2025-06-15\n---\nbody", mod)

	store := newTestStore(t)
	store.SetColor("plain-note.md", "blue")

	result, err := New(lib, store, nil).Build(Filter{})
	if err != nil {
		t.Fatalf("Build returned error: %v", err)
	}

	byPath := make(map[string]Card)
	for _, c := range result.Flattened() {
		byPath[c.Path] = c
	}

	plain := byPath["plain-note.md"]
	if plain.Title != "plain note" {
		t.Errorf("expected filename-derived title, got %q", plain.Title)
	}
	if plain.Color != "blue" {
		t.Errorf("expected blue, got %q", plain.Color)
	}
	if !plain.Date.Equal(mod) {
		t.Errorf("expected modtime date, got %v", plain.Date)
	}
	if !slices.Equal(plain.Tags, []string{"#idea"}) {
		t.Errorf("unexpected tags %v", plain.Tags)
	}

	dated := byPath["dated.md"]
	if dated.Title != "Dated Note" {
		t.Errorf("expected frontmatter title, got %q", dated.Title)
	}
	if dated.Date.Year() != 2025 || dated.Date.Month() != time.June {
		t.Errorf("expected frontmatter date, got %v", dated.Date)
	}
}

func TestSizeClassBuckets(t *testing.T) {
	cases := []struct {
		body string
		want SizeClass
	}{
		{"", SizeSmall},
		{strings.Repeat("a", smallMaxChars), SizeSmall},
		{strings.Repeat("a", smallMaxChars+1), SizeMedium},
		{strings.Repeat("a", mediumMaxChars), SizeMedium},
		{strings.Repeat("a", mediumMaxChars+1), SizeLarge},
	}
	for _, tc := range cases {
		if got := sizeClassFor(tc.body); got != tc.want {
			t.Errorf("sizeClassFor(len %d) = %v, want %v", len(tc.body), got, tc.want)
		}
	}
}

func TestSectioned(t *testing.T) {
	if (Result{}).Sectioned() != SectionEmpty {
		t.Error("expected SectionEmpty")
	}
	if (Result{Pinned: []Card{{}}}).Sectioned() != SectionPinnedOnly {
		t.Error("expected SectionPinnedOnly")
	}
	if (Result{Unpinned: []Card{{}}}).Sectioned() != SectionUnpinnedOnly {
		t.Error("expected SectionUnpinnedOnly")
	}
	if (Result{Pinned: []Card{{}}, Unpinned: []Card{{}}}).Sectioned() != SectionBoth {
		t.Error("expected SectionBoth")
	}
}
