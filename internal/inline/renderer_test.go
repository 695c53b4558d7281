package inline

// Notes:
// - Tests drive the pipeline through Render only; individual passes are
//   covered by the cases that exercise them.
// - Expected hyperlink and substitution tokens are built with Key so the
//   tests do not pin SHA-1 digests (store_test.go pins the key function).
// - The regexp2 timeout error branch in rewrite is not tested: no pattern
//   sets a MatchTimeout.

import (
	"errors"
	"strings"
	"sync"
	"testing"
)

func render(t *testing.T, text string) string {
	t.Helper()
	out, err := NewRenderer(nil).Render(text)
	if err != nil {
		t.Fatalf("Render(%q) unexpected error: %v", text, err)
	}
	return out
}

// ---------------------------------------------------------------------------
// TestRender - Pass output
// ---------------------------------------------------------------------------

func TestRender(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "plain text unchanged",
			input: "Nothing to see here.\nReally, nothing.",
			want:  "Nothing to see here.\nReally, nothing.",
		},
		{
			name:  "empty input",
			input: "",
			want:  "",
		},
		{
			name:  "snake case word unchanged",
			input: "call snake_case here",
			want:  "call snake_case here",
		},
		{
			name:  "strong emphasis",
			input: "**x**",
			want:  "<strong>x</strong>",
		},
		{
			name:  "strong emphasis across lines",
			input: "a **b\nc** d",
			want:  "a <strong>b\nc</strong> d",
		},
		{
			name:  "emphasis",
			input: "*x*",
			want:  "<em>x</em>",
		},
		{
			name:  "strong before emphasis",
			input: "**bold** and *soft*",
			want:  "<strong>bold</strong> and <em>soft</em>",
		},
		{
			name:  "literal keeps markup characters",
			input: "``a*b``",
			want:  "<code>a*b</code>",
		},
		{
			name:  "literal is escaped",
			input: "``<b> & \"q\"``",
			want:  "<code>&lt;b&gt; &amp; &#34;q&#34;</code>",
		},
		{
			name:  "two literals",
			input: "``a`` and ``b``",
			want:  "<code>a</code> and <code>b</code>",
		},
		{
			name:  "literal hides URI",
			input: "``https://example.com``",
			want:  "<code>https://example.com</code>",
		},
		{
			name:  "default role emits text",
			input: "see `Moby Dick`",
			want:  "see Moby Dick",
		},
		{
			name:  "default role protects stars",
			input: "`a*b*c`",
			want:  "a*b*c",
		},
		{
			name:  "subscript role",
			input: "H:sub:`2`O",
			want:  "H<sub>2</sub>O",
		},
		{
			name:  "subscript long name",
			input: ":subscript:`i`",
			want:  "<sub>i</sub>",
		},
		{
			name:  "superscript role after span",
			input: "E = mc`2`:sup:",
			want:  "E = mc<sup>2</sup>",
		},
		{
			name:  "superscript long name",
			input: ":superscript:`n`",
			want:  "<sup>n</sup>",
		},
		{
			name:  "func role trims text",
			input: ":func:` parse `",
			want:  `<a href="#func_parse">parse</a>`,
		},
		{
			name:  "internal target",
			input: "_`Some Target`",
			want:  "<a href='" + HyperlinkToken("Some Target") + "'>Some Target</a>",
		},
		{
			name:  "anonymous word",
			input: "read this__ now",
			want:  "read <a href='[[anon-hl]]'>this</a> now",
		},
		{
			name:  "anonymous phrase",
			input: "read `this page`__.",
			want:  "read <a href='[[anon-hl]]'>this page</a>.",
		},
		{
			name:  "explicit hyperlink",
			input: "see `Go <https://go.dev>`_ now",
			want:  "see <a href='https://go.dev'>Go</a> now",
		},
		{
			name:  "phrase reference",
			input: "see `Python docs`_.",
			want:  "see <a href='" + HyperlinkToken("Python docs") + "'>Python docs</a>.",
		},
		{
			name:  "word reference at end of input",
			input: "see Python_",
			want:  "see <a href='" + HyperlinkToken("Python") + "'>Python</a>",
		},
		{
			name:  "word reference keeps boundary",
			input: "Python_, Go_ and Rust_!",
			want: "<a href='" + HyperlinkToken("Python") + "'>Python</a>, " +
				"<a href='" + HyperlinkToken("Go") + "'>Go</a> and " +
				"<a href='" + HyperlinkToken("Rust") + "'>Rust</a>!",
		},
		{
			name:  "explicit hyperlink text not relinked",
			input: "`my_ page <https://a.b/x_>`_",
			want:  "<a href='https://a.b/x_'>my_ page</a>",
		},
		{
			name:  "numbered footnote",
			input: "claim [12]_",
			want:  "claim [<a href='#footnote-12'>12</a>]",
		},
		{
			name:  "auto-numbered footnotes",
			input: "a [#]_ b [#]_",
			want:  "a [<a href='#footnote-1'>1</a>] b [<a href='#footnote-2'>2</a>]",
		},
		{
			name:  "auto-symbol footnotes",
			input: "a [*]_ b [*]_",
			want:  "a [<a href='#footnote-asterisk'>&asterisk;</a>] b [<a href='#footnote-dagger'>&dagger;</a>]",
		},
		{
			name:  "auto-symbol footnote next to emphasis",
			input: "*see* [*]_",
			want:  "<em>see</em> [<a href='#footnote-asterisk'>&asterisk;</a>]",
		},
		{
			name:  "substitution reference",
			input: "version |version| here",
			want:  "version " + SubstitutionToken("version") + " here",
		},
		{
			name:  "spaced pipes are not a substitution",
			input: "a | b | c",
			want:  "a | b | c",
		},
		{
			name:  "standalone http link",
			input: "see https://a.b/c",
			want:  `see <a href="https://a.b/c">https://a.b/c</a>`,
		},
		{
			name:  "standalone link drops trailing punctuation",
			input: "go to http://example.com/path.",
			want:  `go to <a href="http://example.com/path">http://example.com/path</a>.`,
		},
		{
			name:  "standalone link in angle brackets",
			input: "<https://a.b>",
			want:  `<<a href="https://a.b">https://a.b</a>>`,
		},
		{
			name:  "standalone link inside title reference",
			input: "`http://a.b`",
			want:  `<a href="http://a.b">http://a.b</a>`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := render(t, tt.input)
			if got != tt.want {
				t.Errorf("Render(%q)\n got: %q\nwant: %q", tt.input, got, tt.want)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestRender_Errors - Fatal markup
// ---------------------------------------------------------------------------

func TestRender_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		input       string
		wantErr     error
		wantSubject string
	}{
		{
			name:        "unknown role",
			input:       ":bogus:`x`",
			wantErr:     ErrUnknownRole,
			wantSubject: "bogus",
		},
		{
			name:        "unknown trailing role",
			input:       "`x`:nope:",
			wantErr:     ErrUnknownRole,
			wantSubject: "nope",
		},
		{
			name:        "ftp scheme",
			input:       "get ftp://files.example.com/a.tar",
			wantErr:     ErrUnknownURIScheme,
			wantSubject: "ftp",
		},
		{
			name:        "mailto scheme",
			input:       "write to mailto:me@example.com",
			wantErr:     ErrUnknownURIScheme,
			wantSubject: "mailto",
		},
		{
			name:        "x-man-page scheme",
			input:       "x-man-page://ls",
			wantErr:     ErrUnknownURIScheme,
			wantSubject: "x-man-page",
		},
		{
			name:        "symbols exhausted",
			input:       strings.Repeat("[*]_ ", 11),
			wantErr:     ErrFootnoteSymbolsExhausted,
			wantSubject: "*",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			out, err := NewRenderer(nil).Render(tt.input)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Render(%q) error = %v, want %v", tt.input, err, tt.wantErr)
			}
			if out != "" {
				t.Errorf("Render(%q) returned partial output %q", tt.input, out)
			}
			var renderErr *RenderError
			if !errors.As(err, &renderErr) {
				t.Fatalf("error %v is not a *RenderError", err)
			}
			if renderErr.Subject != tt.wantSubject {
				t.Errorf("Subject = %q, want %q", renderErr.Subject, tt.wantSubject)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestRender_FootnoteSymbols - Symbol queue per render
// ---------------------------------------------------------------------------

func TestRender_FootnoteSymbols(t *testing.T) {
	t.Parallel()

	t.Run("ten symbols in order", func(t *testing.T) {
		t.Parallel()

		got := render(t, strings.Repeat("[*]_ ", 10))
		for i, name := range defaultFootnoteSymbols {
			if !strings.Contains(got, "#footnote-"+name+"'") {
				t.Errorf("symbol %d (%s) missing from %q", i, name, got)
			}
		}
		if strings.Index(got, "footnote-asterisk") > strings.Index(got, "footnote-clubs") {
			t.Error("symbols out of order")
		}
	})

	t.Run("each render starts over", func(t *testing.T) {
		t.Parallel()

		r := NewRenderer(nil)
		for i := 0; i < 3; i++ {
			got, err := r.Render("[*]_ [#]_")
			if err != nil {
				t.Fatalf("render %d: %v", i, err)
			}
			want := "[<a href='#footnote-asterisk'>&asterisk;</a>] [<a href='#footnote-1'>1</a>]"
			if got != want {
				t.Errorf("render %d = %q, want %q", i, got, want)
			}
		}
	})
}

// ---------------------------------------------------------------------------
// TestRender_Placeholders - Token contract
// ---------------------------------------------------------------------------

func TestRender_Placeholders(t *testing.T) {
	t.Parallel()

	input := "``lit`` `title` _`target` ref_ anon__ |sub| ``lit`` " +
		":sub:`x` **b** *e* [#]_ https://x.y"
	got := render(t, input)

	for _, resolved := range []string{"[[il:", "[[it:", "[[rw:"} {
		if strings.Contains(got, resolved) {
			t.Errorf("output contains unresolved %s token: %q", resolved, got)
		}
	}
	for _, external := range []string{
		HyperlinkToken("target"),
		HyperlinkToken("ref"),
		SubstitutionToken("sub"),
		AnonymousToken,
	} {
		if !strings.Contains(got, external) {
			t.Errorf("output missing external token %s: %q", external, got)
		}
	}
	if n := strings.Count(got, "<code>lit</code>"); n != 2 {
		t.Errorf("identical literals rendered %d times, want 2", n)
	}
}

// ---------------------------------------------------------------------------
// TestRender_ExtensionRoles - Registry extensions through the pipeline
// ---------------------------------------------------------------------------

func TestRender_ExtensionRoles(t *testing.T) {
	t.Parallel()

	roles := NewRegistry()
	mustRegister(t, roles, "kbd", Role{Render: func(_, text string) (string, error) {
		return "<kbd>" + text + "</kbd>", nil
	}})
	mustRegister(t, roles, "raw", Role{
		Render:    func(_, text string) (string, error) { return "<span>" + text + "</span>", nil },
		Protected: true,
	})
	mustRegister(t, roles, "fail", Role{Render: func(_, _ string) (string, error) {
		return "", errors.New("boom")
	}})
	r := NewRenderer(roles)

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "unprotected output sees later passes",
			input: ":kbd:`*C*`",
			want:  "<kbd><em>C</em></kbd>",
		},
		{
			name:  "protected output survives later passes",
			input: ":raw:`*C* |x| y_`",
			want:  "<span>*C* |x| y_</span>",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := r.Render(tt.input)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("Render(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}

	t.Run("role error aborts render", func(t *testing.T) {
		t.Parallel()

		out, err := r.Render(":fail:`x`")
		if err == nil || !strings.Contains(err.Error(), "boom") {
			t.Fatalf("error = %v, want role failure", err)
		}
		if out != "" {
			t.Errorf("partial output %q", out)
		}
	})
}

// ---------------------------------------------------------------------------
// TestRender_Concurrent - Shared Renderer
// ---------------------------------------------------------------------------

func TestRender_Concurrent(t *testing.T) {
	t.Parallel()

	r := NewRenderer(nil)
	input := "[#]_ [#]_ [*]_ ``a*b`` `t` **s**"
	want, err := r.Render(input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var wg sync.WaitGroup
	errs := make(chan string, 32)
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			got, err := r.Render(input)
			if err != nil || got != want {
				errs <- got
			}
		}()
	}
	wg.Wait()
	close(errs)

	for got := range errs {
		t.Errorf("concurrent render = %q, want %q", got, want)
	}
}
