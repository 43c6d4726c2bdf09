package model

import "os"

// Environment variables consulted when constructing a ModelConfig.
const (
	// EnvContextLimit overrides the context limit for any model, unless a
	// purpose-specific variable named via NewWithContextEnv is set.
	EnvContextLimit = "MODELCONF_CONTEXT_LIMIT"

	// EnvToolshim enables toolshim interpretation. Truthy values are "1"
	// and case-insensitive "true".
	EnvToolshim = "MODELCONF_TOOLSHIM"

	// EnvToolshimModel names the model used for toolshim interpretation.
	EnvToolshimModel = "MODELCONF_TOOLSHIM_MODEL"

	// EnvTemperature provides a default sampling temperature.
	EnvTemperature = "MODELCONF_TEMPERATURE"
)

// ModelConfig holds the resolved settings and limits for one model.
// Values are plain data with no shared state; copy freely.
type ModelConfig struct {
	// ModelName is the name of the model to use. Opaque except for
	// substring matching against the known-limits table.
	ModelName string `json:"model_name" yaml:"model_name"`

	// ContextLimit is the resolved or explicitly overridden context limit.
	// Nil means "use DefaultContextLimit"; read it through
	// EffectiveContextLimit rather than directly.
	ContextLimit *int `json:"context_limit,omitempty" yaml:"context_limit,omitempty"`

	// Temperature is an optional sampling temperature. Not range-validated.
	Temperature *float64 `json:"temperature,omitempty" yaml:"temperature,omitempty"`

	// MaxTokens is an optional cap on generated tokens. Never derived from
	// the environment; set it explicitly via WithMaxTokens.
	MaxTokens *int `json:"max_tokens,omitempty" yaml:"max_tokens,omitempty"`

	// Toolshim enables reinterpreting raw model output as tool calls.
	Toolshim bool `json:"toolshim" yaml:"toolshim"`

	// ToolshimModel names the model used for toolshim interpretation.
	ToolshimModel *string `json:"toolshim_model,omitempty" yaml:"toolshim_model,omitempty"`
}

// New creates a ModelConfig for the named model, resolving settings from
// the process environment.
//
// The context limit is resolved with the following precedence:
//  1. MODELCONF_CONTEXT_LIMIT
//  2. Known-model pattern match on modelName
//  3. Global default (DefaultContextLimit, applied in EffectiveContextLimit)
func New(modelName string) ModelConfig {
	return NewWithContextEnv(modelName, "")
}

// NewWithContextEnv creates a ModelConfig with an additional caller-chosen
// context-limit environment variable, consulted before the default one.
//
// This serves purpose-specific models — a lead, worker, or planner model can
// each carry its own override variable while sharing the same resolution
// logic. Pass "" for contextEnvVar to skip the purpose-specific tier.
func NewWithContextEnv(modelName, contextEnvVar string) ModelConfig {
	return NewWithLookup(modelName, contextEnvVar, os.LookupEnv)
}

// NewWithLookup is NewWithContextEnv with an injected environment lookup.
// Embedders and tests use it to resolve against simulated environments.
func NewWithLookup(modelName, contextEnvVar string, env Lookup) ModelConfig {
	cfg := ModelConfig{
		ModelName:    modelName,
		ContextLimit: resolveContextLimit(modelName, contextEnvVar, env),
		Toolshim:     lookupBool(env, EnvToolshim),
	}
	if v, ok := env(EnvToolshimModel); ok {
		cfg.ToolshimModel = &v
	}
	if t, ok := lookupFloat(env, EnvTemperature); ok {
		cfg.Temperature = &t
	}
	return cfg
}

// resolveContextLimit walks the override chain for the context limit.
// Each tier falls through silently when unset or unparseable:
//
//  1. contextEnvVar, when named by the caller
//  2. EnvContextLimit
//  3. known-model pattern match
//
// Nil means every tier fell through; the global default is applied at read
// time by EffectiveContextLimit, never stored.
func resolveContextLimit(modelName, contextEnvVar string, env Lookup) *int {
	if contextEnvVar != "" {
		if limit, ok := lookupLimit(env, contextEnvVar); ok {
			return &limit
		}
	}
	if limit, ok := lookupLimit(env, EnvContextLimit); ok {
		return &limit
	}
	if limit, ok := lookupModelLimit(modelName); ok {
		return &limit
	}
	return nil
}

// EffectiveContextLimit returns the context limit to use for this model:
// the stored value when present, DefaultContextLimit otherwise. It never
// re-reads the environment; resolution happens only at construction.
func (c ModelConfig) EffectiveContextLimit() int {
	if c.ContextLimit != nil {
		return *c.ContextLimit
	}
	return DefaultContextLimit
}

// WithContextLimit returns a copy with an explicit context limit. A nil
// limit leaves the resolved value untouched, so an optional override can be
// passed through without branching at the call site.
func (c ModelConfig) WithContextLimit(limit *int) ModelConfig {
	if limit != nil {
		c.ContextLimit = limit
	}
	return c
}

// WithTemperature returns a copy with the temperature replaced, including
// replacement by nil ("unset").
func (c ModelConfig) WithTemperature(temp *float64) ModelConfig {
	c.Temperature = temp
	return c
}

// WithMaxTokens returns a copy with the max-tokens cap replaced.
func (c ModelConfig) WithMaxTokens(tokens *int) ModelConfig {
	c.MaxTokens = tokens
	return c
}

// WithToolshim returns a copy with the toolshim flag replaced.
func (c ModelConfig) WithToolshim(toolshim bool) ModelConfig {
	c.Toolshim = toolshim
	return c
}

// WithToolshimModel returns a copy with the toolshim model replaced.
func (c ModelConfig) WithToolshimModel(model *string) ModelConfig {
	c.ToolshimModel = model
	return c
}
