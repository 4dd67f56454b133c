package collection

import (
	"path/filepath"
	"reflect"
	"testing"
)

// countingRepo records saves so tests can assert persistence behavior.
type countingRepo struct {
	saves  int
	state  *persistedState
	loaded *persistedState
}

func (r *countingRepo) Load() (*persistedState, error) {
	return r.loaded, nil
}

func (r *countingRepo) Save(state *persistedState) error {
	r.saves++
	r.state = state
	return nil
}

func TestTogglePinBinaryAndPersistsEachWrite(t *testing.T) {
	repo := &countingRepo{}
	s := NewStore(repo, nil)

	if s.IsPinned("a.md") {
		t.Fatal("expected a.md to start unpinned")
	}
	if !s.TogglePin("a.md") {
		t.Fatal("expected first toggle to pin")
	}
	if s.TogglePin("a.md") {
		t.Fatal("expected second toggle to unpin")
	}
	if s.IsPinned("a.md") {
		t.Fatal("expected a.md to be back to unpinned")
	}
	if repo.saves != 2 {
		t.Fatalf("expected exactly 2 persisted writes, got %d", repo.saves)
	}
}

func TestSetMaxNotesValidation(t *testing.T) {
	s := NewStore(&countingRepo{}, nil)

	if !s.SetMaxNotes("25") {
		t.Fatal("expected 25 to be accepted")
	}
	for _, raw := range []string{"0", "-3", "abc", "", "3.5"} {
		if s.SetMaxNotes(raw) {
			t.Errorf("expected %q to be rejected", raw)
		}
	}
	if got := s.Settings().MaxNotes; got != 25 {
		t.Fatalf("expected prior value 25 retained, got %d", got)
	}
}

func TestSetTitleEmptyFallsBackToDefault(t *testing.T) {
	s := NewStore(&countingRepo{}, nil)
	s.SetTitle("Ideas")
	if got := s.Settings().Title; got != "Ideas" {
		t.Fatalf("expected Ideas, got %q", got)
	}
	s.SetTitle("   ")
	if got := s.Settings().Title; got != "Notes" {
		t.Fatalf("expected default title, got %q", got)
	}
}

func TestReconcileRenameMovesAllKeys(t *testing.T) {
	s := NewStore(&countingRepo{}, nil)
	s.SetColor("old.md", "blue")
	s.TogglePin("old.md")
	s.SetOrder([]string{"x.md", "old.md", "y.md"})

	s.ReconcileRename("old.md", "new.md")

	if _, ok := s.Color("old.md"); ok {
		t.Fatal("expected no color entry under old.md")
	}
	color, ok := s.Color("new.md")
	if !ok || color != "blue" {
		t.Fatalf("expected blue under new.md, got %q (%v)", color, ok)
	}
	if s.IsPinned("old.md") || !s.IsPinned("new.md") {
		t.Fatal("expected pin to follow the rename")
	}
	if got := s.OrderIndex("new.md"); got != 1 {
		t.Fatalf("expected order position preserved at 1, got %d", got)
	}
	if got := s.OrderIndex("old.md"); got != -1 {
		t.Fatalf("expected old path out of order, got %d", got)
	}
}

func TestReconcileDeleteRemovesAllKeys(t *testing.T) {
	s := NewStore(&countingRepo{}, nil)
	s.TogglePin("gone.md")
	s.SetColor("gone.md", "red")
	s.SetOrder([]string{"gone.md", "keep.md"})

	s.ReconcileDelete("gone.md")
	s.ReconcileDelete("never-there.md")

	if s.IsPinned("gone.md") {
		t.Fatal("expected pin removed")
	}
	if _, ok := s.Color("gone.md"); ok {
		t.Fatal("expected color removed")
	}
	if got := s.OrderIndex("keep.md"); got != 0 {
		t.Fatalf("expected keep.md to shift to position 0, got %d", got)
	}
}

func TestSetColorRejectsUnknownToken(t *testing.T) {
	repo := &countingRepo{}
	s := NewStore(repo, nil)
	s.SetColor("a.md", "chartreuse")
	if _, ok := s.Color("a.md"); ok {
		t.Fatal("expected unknown color token to be ignored")
	}
	if repo.saves != 0 {
		t.Fatalf("expected no persisted write, got %d", repo.saves)
	}
}

func TestSetExtensionsNormalizes(t *testing.T) {
	s := NewStore(&countingRepo{}, nil)
	s.SetExtensions([]string{".MD", "Txt", "", "md"})
	got := s.Settings().Extensions
	want := []string{"md", "txt"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}

	s.SetExtensions(nil)
	if got := s.Settings().Extensions; !reflect.DeepEqual(got, []string{"md"}) {
		t.Fatalf("expected fallback to md, got %v", got)
	}
}

func TestFileRepositoryRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state", "board.yaml")
	repo := NewFileRepository(path)

	first, err := repo.Load()
	if err != nil {
		t.Fatalf("unexpected load error: %v", err)
	}
	if first != nil {
		t.Fatal("expected nil state on first run")
	}

	s := NewStore(repo, nil)
	s.TogglePin("a.md")
	s.SetColor("a.md", "green")
	s.SetOrder([]string{"a.md"})

	reloaded := NewStore(repo, nil)
	if !reloaded.IsPinned("a.md") {
		t.Fatal("expected pin to survive reload")
	}
	if color, ok := reloaded.Color("a.md"); !ok || color != "green" {
		t.Fatalf("expected green after reload, got %q (%v)", color, ok)
	}
	if got := reloaded.OrderIndex("a.md"); got != 0 {
		t.Fatalf("expected order to survive reload, got %d", got)
	}
}
