// Package config loads the YAML configuration of the burst command.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alnah/go-burst/internal/fileutil"
	"github.com/alnah/go-burst/internal/resolve"
	"github.com/alnah/go-burst/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
	ErrInvalidValue    = errors.New("invalid config value")
)

// Field length limits.
const (
	MaxLabelLength    = 200  // Hyperlink target label
	MaxURLLength      = 2048 // Browser limit
	MaxNameLength     = 100  // Substitution name
	MaxTextLength     = 1000 // Substitution text
	MaxTitleLength    = 200  // Document title
	MaxLanguageLength = 50   // Chroma lexer name or alias
	MaxWorkers        = 64
)

// appDir is the directory searched under the user config dir.
const appDir = "go-burst"

// Config holds all configuration for a burst run.
type Config struct {
	References ReferencesConfig `yaml:"references"`
	Code       CodeConfig       `yaml:"code"`
	Output     OutputConfig     `yaml:"output"`
	Document   DocumentConfig   `yaml:"document"`
	Workers    int              `yaml:"workers"`  // 0 = sized from GOMAXPROCS
	LogLevel   string           `yaml:"logLevel"` // "debug", "info", "warn", "error"
}

// ReferencesConfig resolves the placeholders inline rendering leaves behind.
type ReferencesConfig struct {
	Lenient       bool              `yaml:"lenient"` // Keep unknown references as tokens
	Targets       map[string]string `yaml:"targets"`
	Anonymous     []string          `yaml:"anonymous"`
	Substitutions map[string]string `yaml:"substitutions"`
}

// Table returns the references as a resolver table.
func (r ReferencesConfig) Table() resolve.Table {
	return resolve.Table{
		Targets:       r.Targets,
		Anonymous:     r.Anonymous,
		Substitutions: r.Substitutions,
	}
}

// Empty reports whether no reference is configured.
func (r ReferencesConfig) Empty() bool {
	return len(r.Targets) == 0 && len(r.Anonymous) == 0 && len(r.Substitutions) == 0
}

// CodeConfig enables the "code" role.
type CodeConfig struct {
	Language string `yaml:"language"` // Empty = no code role
}

// OutputConfig defines output destination options.
type OutputConfig struct {
	DefaultDir string `yaml:"defaultDir"` // Empty = next to each input
}

// DocumentConfig wraps output in a full HTML document.
type DocumentConfig struct {
	Enabled bool   `yaml:"enabled"`
	Title   string `yaml:"title"` // Empty = input file name
}

// Validate checks field lengths and value ranges.
// Called by LoadConfig, but available for a Config built by hand.
func (c *Config) Validate() error {
	for label, url := range c.References.Targets {
		if err := validateFieldLength("references.targets label", label, MaxLabelLength); err != nil {
			return err
		}
		if err := validateFieldLength(fmt.Sprintf("references.targets[%q]", label), url, MaxURLLength); err != nil {
			return err
		}
	}
	for i, url := range c.References.Anonymous {
		if err := validateFieldLength(fmt.Sprintf("references.anonymous[%d]", i), url, MaxURLLength); err != nil {
			return err
		}
	}
	for name, text := range c.References.Substitutions {
		if err := validateFieldLength("references.substitutions name", name, MaxNameLength); err != nil {
			return err
		}
		if err := validateFieldLength(fmt.Sprintf("references.substitutions[%q]", name), text, MaxTextLength); err != nil {
			return err
		}
	}

	if err := validateFieldLength("code.language", c.Code.Language, MaxLanguageLength); err != nil {
		return err
	}
	if err := validateFieldLength("document.title", c.Document.Title, MaxTitleLength); err != nil {
		return err
	}

	if c.Workers < 0 || c.Workers > MaxWorkers {
		return fmt.Errorf("%w: workers must be between 0 and %d, got %d", ErrInvalidValue, MaxWorkers, c.Workers)
	}
	if c.LogLevel != "" {
		switch strings.ToLower(c.LogLevel) {
		case "debug", "info", "warn", "warning", "error":
		default:
			return fmt.Errorf("%w: logLevel %q (must be debug, info, warn, or error)", ErrInvalidValue, c.LogLevel)
		}
	}
	return nil
}

func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}

// DefaultConfig returns a configuration with every option off.
func DefaultConfig() *Config {
	return &Config{
		Output:   OutputConfig{DefaultDir: ""},
		Document: DocumentConfig{Enabled: false},
		LogLevel: "warn",
	}
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise it's a config name searched in standard locations.
// A missing file is an error; there is no silent fallback.
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	configPath := nameOrPath
	if !fileutil.IsFilePath(nameOrPath) {
		var err error
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yamlutil.UnmarshalStrict(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// resolveConfigPath searches for name.yaml then name.yml, first in the
// current directory, then in <user config dir>/go-burst/.
func resolveConfigPath(name string) (string, error) {
	extensions := []string{".yaml", ".yml"}
	dirs := []string{""}
	if userConfigDir, err := os.UserConfigDir(); err == nil {
		dirs = append(dirs, filepath.Join(userConfigDir, appDir))
	}

	tried := make([]string, 0, len(extensions)*len(dirs))
	for _, dir := range dirs {
		for _, ext := range extensions {
			path := filepath.Join(dir, name+ext)
			if fileutil.FileExists(path) {
				return path, nil
			}
			tried = append(tried, path)
		}
	}
	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(tried, ", "))
}
