package main

import (
	"bytes"
	"os"
	"testing"
)

func TestIsColorEnabled(t *testing.T) {
	t.Parallel()

	none := func(string) string { return "" }
	noColor := func(k string) string {
		if k == "NO_COLOR" {
			return "1"
		}
		return ""
	}

	if isColorEnabled(&bytes.Buffer{}, none) {
		t.Error("buffer treated as terminal")
	}
	if isColorEnabled(os.Stdout, noColor) {
		t.Error("NO_COLOR ignored")
	}
}

func TestNewStyles_Plain(t *testing.T) {
	t.Parallel()

	s := NewStyles(false)
	if got := s.Failure.Render("FAILED"); got != "FAILED" {
		t.Errorf("plain Failure = %q", got)
	}
	if got := s.FilePath.Render("a.html"); got != "a.html" {
		t.Errorf("plain FilePath = %q", got)
	}
}
