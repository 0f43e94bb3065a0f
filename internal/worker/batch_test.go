package worker

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/okrenz/manuscan/internal/model"
)

type stubEngine struct {
	failOn map[string]error
}

func (e *stubEngine) AnalyzeFile(_ context.Context, path, genre string) (*model.Report, error) {
	if err, ok := e.failOn[path]; ok {
		return nil, err
	}
	return &model.Report{ChapterID: filepath.Base(path), Genre: genre}, nil
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestCollectManuscripts_Directory(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "ch2.txt"), "two")
	writeFile(t, filepath.Join(dir, "ch1.md"), "one")
	writeFile(t, filepath.Join(dir, "notes.MARKDOWN"), "three")
	writeFile(t, filepath.Join(dir, "cover.png"), "skip")
	if err := os.Mkdir(filepath.Join(dir, "drafts"), 0o755); err != nil {
		t.Fatal(err)
	}

	paths, err := CollectManuscripts(dir)
	if err != nil {
		t.Fatal(err)
	}

	want := []string{
		filepath.Join(dir, "ch1.md"),
		filepath.Join(dir, "ch2.txt"),
		filepath.Join(dir, "notes.MARKDOWN"),
	}
	if len(paths) != len(want) {
		t.Fatalf("got %v, want %v", paths, want)
	}
	if !sort.StringsAreSorted(paths) {
		t.Errorf("paths not sorted: %v", paths)
	}
	for i := range want {
		if paths[i] != want[i] {
			t.Errorf("paths[%d] = %s, want %s", i, paths[i], want[i])
		}
	}
}

func TestCollectManuscripts_ListFile(t *testing.T) {
	dir := t.TempDir()
	list := filepath.Join(dir, "batch.list")
	writeFile(t, list, "a.txt\n\n# comment\nb.txt\na.txt\n  c.txt  \n")

	paths, err := CollectManuscripts(list)
	if err != nil {
		t.Fatal(err)
	}

	want := []string{"a.txt", "b.txt", "c.txt"}
	if len(paths) != len(want) {
		t.Fatalf("got %v, want %v", paths, want)
	}
	for i := range want {
		if paths[i] != want[i] {
			t.Errorf("paths[%d] = %s, want %s", i, paths[i], want[i])
		}
	}
}

func TestCollectManuscripts_MissingInput(t *testing.T) {
	if _, err := CollectManuscripts(filepath.Join(t.TempDir(), "nope")); err == nil {
		t.Fatal("expected error for missing input")
	}
}

func TestBatchProcessor_ProcessPaths(t *testing.T) {
	boom := errors.New("unreadable")
	engine := &stubEngine{failOn: map[string]error{"bad.txt": boom}}
	bp := NewBatchProcessor(engine, 3)

	paths := []string{"a.txt", "bad.txt", "c.txt", "d.txt"}
	results := bp.ProcessPaths(context.Background(), paths, "fantasy")

	if len(results) != len(paths) {
		t.Fatalf("got %d results, want %d", len(results), len(paths))
	}

	failures := 0
	for _, r := range results {
		if r.Err() != nil {
			failures++
			if !errors.Is(r.Err(), boom) {
				t.Errorf("unexpected error: %v", r.Err())
			}
			continue
		}
		if r.Report == nil {
			t.Errorf("%s: successful result missing report", r.Path)
		} else if r.Report.Genre != "fantasy" {
			t.Errorf("%s: genre = %s, want fantasy", r.Path, r.Report.Genre)
		}
	}
	if failures != 1 {
		t.Errorf("got %d failures, want 1", failures)
	}
}

func TestBatchProcessor_EmptyInput(t *testing.T) {
	bp := NewBatchProcessor(&stubEngine{}, 2)
	if results := bp.ProcessPaths(context.Background(), nil, ""); len(results) != 0 {
		t.Errorf("expected no results, got %d", len(results))
	}
}

func TestBatchProcessor_Process(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "ch1.txt"), "one")
	writeFile(t, filepath.Join(dir, "ch2.txt"), "two")

	bp := NewBatchProcessor(&stubEngine{}, 2)
	results, err := bp.Process(context.Background(), dir, "")
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != 2 {
		t.Fatalf("got %d results, want 2", len(results))
	}
}
