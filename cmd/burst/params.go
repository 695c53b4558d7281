package main

import (
	"fmt"
	"path/filepath"

	"github.com/alnah/go-burst"
	"github.com/alnah/go-burst/internal/config"
	"github.com/alnah/go-burst/internal/fileutil"
)

// conversionParams groups the settings shared by every file of a run.
type conversionParams struct {
	table     *burst.Table
	lenient   bool
	blocks    bool
	document  bool
	title     string
	output    string // --output as given; the output file for stdin
	outputDir string
	workers   int
	codeLang  string
	logLevel  string
}

// loadConfig loads the config named by --config, then by $BURST_CONFIG.
// Without either, the default config is used.
func loadConfig(flags *cliFlags, env *Environment) (*config.Config, string, error) {
	name := flags.common.config
	if name == "" {
		name = env.Getenv(envConfigVar)
	}
	if name == "" {
		return config.DefaultConfig(), "", nil
	}
	cfg, err := config.LoadConfig(name)
	if err != nil {
		return nil, name, fmt.Errorf("loading config: %w", err)
	}
	return cfg, name, nil
}

// resolveParams merges flags over cfg. Flags win when set.
func resolveParams(flags *cliFlags, cfg *config.Config) (*conversionParams, error) {
	p := &conversionParams{
		lenient:   cfg.References.Lenient || flags.render.lenient,
		blocks:    flags.document.blocks,
		document:  cfg.Document.Enabled || flags.document.enabled,
		title:     cfg.Document.Title,
		outputDir: cfg.Output.DefaultDir,
		workers:   cfg.Workers,
		codeLang:  cfg.Code.Language,
		logLevel:  cfg.LogLevel,
	}
	if !cfg.References.Empty() {
		table := cfg.References.Table()
		p.table = &table
	}
	if flags.document.title != "" {
		p.title = flags.document.title
	}
	if flags.output != "" {
		p.output = flags.output
		p.outputDir = flags.output
	}
	if flags.workers != 0 {
		p.workers = flags.workers
	}
	if flags.render.codeLang != "" {
		p.codeLang = flags.render.codeLang
	}
	switch {
	case flags.common.verbose:
		p.logLevel = "debug"
	case flags.common.quiet:
		p.logLevel = "error"
	}

	if err := validateWorkers(p.workers); err != nil {
		return nil, err
	}
	return p, nil
}

// converterOptions returns the burst options for p.
func (p *conversionParams) converterOptions() []burst.Option {
	var opts []burst.Option
	if p.codeLang != "" {
		opts = append(opts, burst.WithCodeRole(p.codeLang))
	}
	return opts
}

// input builds the conversion input for text read from path.
// path is empty for stdin.
func (p *conversionParams) input(text, path string) burst.Input {
	in := burst.Input{
		Text:    text,
		Table:   p.table,
		Lenient: p.lenient,
		Blocks:  p.blocks,
	}
	if p.document {
		title := p.title
		if title == "" && path != "" {
			title = fileutil.ReplaceExtension(filepath.Base(path), "")
		}
		in.Document = &burst.Document{Title: title}
	}
	return in
}
