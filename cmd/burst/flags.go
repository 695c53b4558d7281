package main

import (
	"fmt"
	"io"

	flag "github.com/spf13/pflag"
)

// commonFlags holds flags controlling config and verbosity.
type commonFlags struct {
	config  string
	quiet   bool
	verbose bool
}

// documentFlags holds document wrapper flags.
type documentFlags struct {
	enabled bool
	title   string
	blocks  bool
}

// renderFlags holds flags passed to the converter.
type renderFlags struct {
	codeLang string
	lenient  bool
}

// cliFlags holds every burst flag.
type cliFlags struct {
	common   commonFlags
	output   string
	workers  int
	document documentFlags
	render   renderFlags
	version  bool
}

func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path (default $"+envConfigVar+")")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show per-file timing and debug logs")
}

func addDocumentFlags(fs *flag.FlagSet, f *documentFlags) {
	fs.BoolVar(&f.enabled, "document", false, "wrap output in a complete HTML document")
	fs.StringVar(&f.title, "title", "", "document title (\"\" = input file name)")
	fs.BoolVarP(&f.blocks, "blocks", "b", false, "group output into paragraphs, headings and lists")
}

func addRenderFlags(fs *flag.FlagSet, f *renderFlags) {
	fs.StringVar(&f.codeLang, "code-lang", "", "enable the code role, highlighting as this language")
	fs.BoolVar(&f.lenient, "lenient", false, "keep unresolved reference tokens instead of failing")
}

// parseFlags parses args (without the program name) and returns the
// positional arguments. Usage goes to w.
func parseFlags(args []string, w io.Writer) (*cliFlags, []string, error) {
	fs := flag.NewFlagSet("burst", flag.ContinueOnError)
	fs.SetOutput(w)
	f := &cliFlags{}

	fs.StringVarP(&f.output, "output", "o", "", "output file or directory")
	fs.IntVarP(&f.workers, "workers", "w", 0, "parallel workers (0 = auto)")
	fs.BoolVar(&f.version, "version", false, "print version and exit")

	addCommonFlags(fs, &f.common)
	addDocumentFlags(fs, &f.document)
	addRenderFlags(fs, &f.render)

	fs.Usage = func() { printUsage(w, fs) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}
	if f.common.quiet && f.common.verbose {
		return nil, nil, fmt.Errorf("%w: --quiet and --verbose", ErrConflictingFlags)
	}
	return f, fs.Args(), nil
}

func printUsage(w io.Writer, fs *flag.FlagSet) {
	fmt.Fprintf(w, `Usage: burst [flags] [file|dir ...]

Render reStructuredText-style inline markup to HTML.
With no arguments, reads stdin and writes stdout. Files ending in .rst or
.txt are written as .html next to the input, or under --output.

Flags:
%s`, fs.FlagUsages())
}
