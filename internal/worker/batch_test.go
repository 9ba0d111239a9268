package worker

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

func TestCollectPaths_Directory(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "b.txt"), "x")
	writeFile(t, filepath.Join(dir, "a.pdf"), "x")
	writeFile(t, filepath.Join(dir, "c.HTML"), "x")
	writeFile(t, filepath.Join(dir, "notes.docx"), "x")
	if err := os.Mkdir(filepath.Join(dir, "sub"), 0o755); err != nil {
		t.Fatal(err)
	}
	writeFile(t, filepath.Join(dir, "sub", "nested.txt"), "x")

	paths, err := CollectPaths(dir)
	if err != nil {
		t.Fatalf("CollectPaths: %v", err)
	}

	want := []string{
		filepath.Join(dir, "a.pdf"),
		filepath.Join(dir, "b.txt"),
		filepath.Join(dir, "c.HTML"),
	}
	if !reflect.DeepEqual(paths, want) {
		t.Errorf("expected %v, got %v", want, paths)
	}
}

func TestCollectPaths_SingleDocument(t *testing.T) {
	dir := t.TempDir()
	doc := filepath.Join(dir, "claim.txt")
	writeFile(t, doc, "Policy Number: POL-1")

	paths, err := CollectPaths(doc)
	if err != nil {
		t.Fatalf("CollectPaths: %v", err)
	}
	if !reflect.DeepEqual(paths, []string{doc}) {
		t.Errorf("expected batch of one, got %v", paths)
	}
}

func TestCollectPaths_ListFile(t *testing.T) {
	dir := t.TempDir()
	list := filepath.Join(dir, "batch.list")
	writeFile(t, list, "docs/a.txt\n\n# skipped\n  docs/b.pdf  \ndocs/a.txt\n")

	paths, err := CollectPaths(list)
	if err != nil {
		t.Fatalf("CollectPaths: %v", err)
	}

	want := []string{"docs/a.txt", "docs/b.pdf"}
	if !reflect.DeepEqual(paths, want) {
		t.Errorf("expected %v, got %v", want, paths)
	}
}

func TestCollectPaths_Missing(t *testing.T) {
	if _, err := CollectPaths(filepath.Join(t.TempDir(), "nope")); err == nil {
		t.Error("expected error for missing path")
	}
}
