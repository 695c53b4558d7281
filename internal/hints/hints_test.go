package hints

import (
	"strings"
	"testing"
)

func TestHints(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		got  string
		want string
	}{
		{"unknown role", ForUnknownRole([]string{"code", "sub"}), "available roles: code, sub"},
		{"unknown role none", ForUnknownRole(nil), "only the default role"},
		{"scheme", ForUnknownScheme(), "http and https"},
		{"symbols", ForFootnoteSymbols(), "[#]_"},
		{"reference", ForUnresolvedReference("targets"), "references.targets"},
		{"config", ForConfigNotFound("/home/u/.config/go-burst"), "create a file in /home/u/.config/go-burst"},
		{"config no dir", ForConfigNotFound(""), "use --config"},
		{"output dir", ForOutputDirectory(), "writable"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if !strings.HasPrefix(tt.got, "\n  hint: ") {
				t.Errorf("hint not formatted: %q", tt.got)
			}
			if !strings.Contains(tt.got, tt.want) {
				t.Errorf("hint = %q, want it to contain %q", tt.got, tt.want)
			}
		})
	}
}

func TestFormat_Empty(t *testing.T) {
	t.Parallel()

	if got := format(""); got != "" {
		t.Errorf("format(\"\") = %q", got)
	}
}
