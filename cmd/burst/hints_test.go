package main

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/alnah/go-burst"
	"github.com/alnah/go-burst/internal/config"
)

func TestWithHint(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want string
	}{
		{"unknown role", fmt.Errorf("render: %w", burst.ErrUnknownRole), "available roles: func, sub"},
		{"scheme", burst.ErrUnknownURIScheme, "http and https"},
		{"symbols", burst.ErrFootnoteSymbolsExhausted, "[#]_"},
		{"target", burst.ErrUnknownTarget, "references.targets"},
		{"anonymous", burst.ErrAnonymousTargetsExhausted, "references.anonymous"},
		{"substitution", burst.ErrUnknownSubstitution, "references.substitutions"},
		{"config", config.ErrConfigNotFound, "--config"},
		{"write", ErrWriteOutput, "writable"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := withHint(tt.err, []string{"func", "sub"})
			if !errors.Is(got, tt.err) {
				t.Errorf("hinted error lost its cause: %v", got)
			}
			if !strings.Contains(got.Error(), "\n  hint: ") || !strings.Contains(got.Error(), tt.want) {
				t.Errorf("error = %q, want hint containing %q", got, tt.want)
			}
		})
	}

	t.Run("no hint", func(t *testing.T) {
		t.Parallel()

		err := errors.New("plain")
		if got := withHint(err, nil); got != err {
			t.Errorf("withHint changed an unhinted error: %v", got)
		}
		if withHint(nil, nil) != nil {
			t.Error("withHint(nil) != nil")
		}
	})
}
