// Package configfile loads ModelConfig values from declarative TOML or YAML
// files. A file names the model and optionally pins any of the configuration
// fields; everything a file leaves out is resolved through the usual
// environment and known-model precedence chain, so a file behaves exactly
// like a caller passing explicit overrides.
package configfile

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/randalmurphal/modelconf/model"
)

// Sentinel errors for config file loading.
var (
	// ErrMissingModel indicates the file does not name a model.
	ErrMissingModel = errors.New("model is required")

	// ErrUnsupportedFormat indicates the file extension is not recognized.
	// Supported: .toml, .yaml, .yml.
	ErrUnsupportedFormat = errors.New("unsupported config format")
)

// File is the declarative form of a model configuration. Pointer fields
// distinguish "not specified" from an explicit zero: a nil field defers to
// environment resolution, a set field pins the value.
type File struct {
	// Model is the model name to resolve. Required.
	Model string `toml:"model" yaml:"model"`

	// ContextEnvVar names a purpose-specific context-limit environment
	// variable consulted before the default one. Optional.
	ContextEnvVar string `toml:"context_env_var" yaml:"context_env_var"`

	// ContextLimit pins an explicit context limit, winning over every
	// environment variable and pattern match.
	ContextLimit *int `toml:"context_limit" yaml:"context_limit"`

	// Temperature pins the sampling temperature.
	Temperature *float64 `toml:"temperature" yaml:"temperature"`

	// MaxTokens pins the generated-token cap.
	MaxTokens *int `toml:"max_tokens" yaml:"max_tokens"`

	// Toolshim pins the toolshim flag.
	Toolshim *bool `toml:"toolshim" yaml:"toolshim"`

	// ToolshimModel pins the toolshim interpreter model.
	ToolshimModel *string `toml:"toolshim_model" yaml:"toolshim_model"`
}

// Load reads the file at path and resolves it into a ModelConfig using the
// process environment.
func Load(path string) (model.ModelConfig, error) {
	f, err := Parse(path)
	if err != nil {
		return model.ModelConfig{}, err
	}
	return f.Resolve()
}

// Parse reads and decodes a config file without resolving it. The format is
// chosen by extension: .toml, .yaml, or .yml.
func Parse(path string) (File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return File{}, fmt.Errorf("read config: %w", err)
	}

	var f File
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		if err := toml.Unmarshal(data, &f); err != nil {
			return File{}, fmt.Errorf("parse %s: %w", path, err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &f); err != nil {
			return File{}, fmt.Errorf("parse %s: %w", path, err)
		}
	default:
		return File{}, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
	return f, nil
}

// Resolve turns the declarative file into a ModelConfig using the process
// environment for the unspecified fields.
func (f File) Resolve() (model.ModelConfig, error) {
	return f.ResolveWithLookup(os.LookupEnv)
}

// ResolveWithLookup is Resolve with an injected environment lookup.
func (f File) ResolveWithLookup(env model.Lookup) (model.ModelConfig, error) {
	if f.Model == "" {
		return model.ModelConfig{}, ErrMissingModel
	}

	cfg := model.NewWithLookup(f.Model, f.ContextEnvVar, env)
	cfg = cfg.WithContextLimit(f.ContextLimit)
	if f.Temperature != nil {
		cfg = cfg.WithTemperature(f.Temperature)
	}
	if f.MaxTokens != nil {
		cfg = cfg.WithMaxTokens(f.MaxTokens)
	}
	if f.Toolshim != nil {
		cfg = cfg.WithToolshim(*f.Toolshim)
	}
	if f.ToolshimModel != nil {
		cfg = cfg.WithToolshimModel(f.ToolshimModel)
	}
	return cfg, nil
}
