package main

import (
	"errors"
	"os"
	"path/filepath"
	"sort"
	"testing"
)

func touch(t *testing.T, path string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte("*x*"), 0o600); err != nil {
		t.Fatal(err)
	}
}

// ---------------------------------------------------------------------------
// TestDiscoverFiles - File and directory inputs
// ---------------------------------------------------------------------------

func TestDiscoverFiles_File(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	file := filepath.Join(dir, "notes.rst")
	touch(t, file)

	got, err := discoverFiles(file, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []FileToConvert{{InputPath: file, OutputPath: filepath.Join(dir, "notes.html")}}
	if len(got) != 1 || got[0] != want[0] {
		t.Errorf("discoverFiles = %v, want %v", got, want)
	}
}

func TestDiscoverFiles_Directory(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	touch(t, filepath.Join(dir, "a.rst"))
	touch(t, filepath.Join(dir, "sub", "b.txt"))
	touch(t, filepath.Join(dir, "skip.md"))
	out := t.TempDir()

	got, err := discoverFiles(dir, out)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	outputs := make([]string, 0, len(got))
	for _, f := range got {
		outputs = append(outputs, f.OutputPath)
	}
	sort.Strings(outputs)

	want := []string{filepath.Join(out, "a.html"), filepath.Join(out, "sub", "b.html")}
	sort.Strings(want)
	if len(outputs) != len(want) || outputs[0] != want[0] || outputs[1] != want[1] {
		t.Errorf("outputs = %v, want %v", outputs, want)
	}
}

func TestDiscoverFiles_Errors(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	md := filepath.Join(dir, "doc.md")
	touch(t, md)

	if _, err := discoverFiles(md, ""); !errors.Is(err, ErrInvalidExtension) {
		t.Errorf("error = %v, want ErrInvalidExtension", err)
	}
	if _, err := discoverFiles(filepath.Join(dir, "missing.rst"), ""); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("error = %v, want os.ErrNotExist", err)
	}
}

// ---------------------------------------------------------------------------
// TestResolveOutputPath - Output naming
// ---------------------------------------------------------------------------

func TestResolveOutputPath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		input     string
		outputDir string
		baseDir   string
		want      string
	}{
		{"next to input", filepath.Join("docs", "a.rst"), "", "", filepath.Join("docs", "a.html")},
		{"txt input", "notes.txt", "", "", "notes.html"},
		{"explicit file", "a.rst", filepath.Join("out", "page.html"), "", filepath.Join("out", "page.html")},
		{"output dir", "a.rst", "out", "", filepath.Join("out", "a.html")},
		{"keeps tree", filepath.Join("docs", "x", "a.rst"), "out", "docs", filepath.Join("out", "x", "a.html")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := resolveOutputPath(tt.input, tt.outputDir, tt.baseDir); got != tt.want {
				t.Errorf("resolveOutputPath = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestValidateWorkers(t *testing.T) {
	t.Parallel()

	for _, n := range []int{0, 1, 64} {
		if err := validateWorkers(n); err != nil {
			t.Errorf("validateWorkers(%d) = %v", n, err)
		}
	}
	for _, n := range []int{-1, 65} {
		if err := validateWorkers(n); !errors.Is(err, ErrInvalidWorkerCount) {
			t.Errorf("validateWorkers(%d) = %v, want ErrInvalidWorkerCount", n, err)
		}
	}
}
