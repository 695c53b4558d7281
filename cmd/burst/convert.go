package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	flag "github.com/spf13/pflag"

	"github.com/alnah/go-burst"
	"github.com/alnah/go-burst/internal/logging"
)

// Sentinel errors for CLI usage.
var (
	ErrUsage            = errors.New("invalid usage")
	ErrConflictingFlags = errors.New("conflicting flags")
)

// run executes the CLI and returns the exit code.
func run(ctx context.Context, args []string, env *Environment) int {
	flags, inputs, err := parseFlags(args, env.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		return ExitSuccess
	}
	if err != nil {
		if !errors.Is(err, ErrConflictingFlags) {
			err = fmt.Errorf("%w: %v", ErrUsage, err)
		}
		fmt.Fprintln(env.Stderr, err)
		return exitCodeFor(err)
	}

	if flags.version {
		fmt.Fprintf(env.Stdout, "burst %s\n", Version)
		return ExitSuccess
	}

	if err := runConvert(ctx, inputs, flags, env); err != nil {
		fmt.Fprintln(env.Stderr, err)
		return exitCodeFor(err)
	}
	return ExitSuccess
}

// runConvert loads config, builds the converter and converts stdin or the
// given paths.
func runConvert(ctx context.Context, inputs []string, flags *cliFlags, env *Environment) error {
	cfg, cfgName, err := loadConfig(flags, env)
	if err != nil {
		return withHint(err, nil)
	}
	params, err := resolveParams(flags, cfg)
	if err != nil {
		return err
	}

	logger := logging.New(env.Stderr, params.logLevel)
	ctx = logging.WithLogger(ctx, logger)
	if cfgName != "" {
		logger.Debug("config loaded", logging.FieldConfig, cfgName)
	}

	conv, err := burst.NewConverter(params.converterOptions()...)
	if err != nil {
		return err
	}

	roles := conv.Renderer().Roles()

	if len(inputs) == 0 {
		return withHint(convertStream(ctx, conv, env.Stdin, env.Stdout, params), roles)
	}

	var files []FileToConvert
	for _, in := range inputs {
		found, err := discoverFiles(in, params.outputDir)
		if err != nil {
			return err
		}
		files = append(files, found...)
	}
	if len(files) == 0 {
		return fmt.Errorf("%w: in %v", ErrNoInput, inputs)
	}

	workers := resolveWorkers(params.workers, len(files))
	logger.Debug("starting conversion", logging.FieldFiles, len(files), logging.FieldWorkers, workers)

	results := convertBatch(ctx, conv, files, params, workers)
	for i := range results {
		results[i].Err = withHint(results[i].Err, roles)
	}
	styles := NewStyles(isColorEnabled(env.Stdout, env.Getenv))
	summary := printResults(results, flags.common.quiet, flags.common.verbose, env, styles)
	if summary.Failed > 0 {
		logger.Debug("conversion finished with failures", logging.FieldFailed, summary.Failed)
		return fmt.Errorf("%d of %d files failed: %w", summary.Failed, len(results), firstError(results))
	}
	return nil
}

// convertStream converts all of r and writes the result to w, or to the
// --output file when one is set.
func convertStream(ctx context.Context, conv CLIConverter, r io.Reader, w io.Writer, params *conversionParams) error {
	content, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrReadInput, err)
	}

	result, err := conv.Convert(ctx, params.input(string(content), ""))
	if err != nil {
		return err
	}

	if params.output != "" {
		if err := os.MkdirAll(filepath.Dir(params.output), dirPermissions); err != nil {
			return fmt.Errorf("%w: creating output directory: %v", ErrWriteOutput, err)
		}
		// #nosec G306 -- HTML files are meant to be readable
		if err := os.WriteFile(params.output, []byte(result.HTML), filePermissions); err != nil {
			return fmt.Errorf("%w: %v", ErrWriteOutput, err)
		}
		return nil
	}

	if _, err := io.WriteString(w, result.HTML); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteOutput, err)
	}
	return nil
}
