// Package modelconf resolves the effective configuration for invoking a
// language model: its context-window size plus secondary generation
// parameters (temperature, max output tokens, toolshim mode).
//
// modelconf is a standalone toolkit designed to be imported à la carte.
// Each subpackage can be used independently:
//
//   - model: ModelConfig resolution with layered context-limit precedence
//   - configfile: TOML/YAML file-based configuration, with change watching
//   - tokens: Prompt token budgeting derived from a model's context limit
//
// # Quick Start
//
// Resolving a model configuration:
//
//	import "github.com/randalmurphal/modelconf/model"
//	cfg := model.New("claude-sonnet-4-20250514")
//	limit := cfg.EffectiveContextLimit() // 200000
//
// Purpose-specific environment override (e.g. a lead model with its own
// context-limit variable):
//
//	cfg := model.NewWithContextEnv("gpt-4o", "MYAPP_LEAD_CONTEXT_LIMIT")
//
// Loading from a file:
//
//	import "github.com/randalmurphal/modelconf/configfile"
//	cfg, err := configfile.Load("model.toml")
//
// Budgeting a prompt against the resolved limit:
//
//	import "github.com/randalmurphal/modelconf/tokens"
//	budget := tokens.NewBudgetForModel(cfg)
//	ok := budget.FitsSystem(systemPrompt)
//
// # Design Philosophy
//
// modelconf follows these principles:
//
//   - Best-effort resolution: malformed overrides degrade to "not set",
//     unknown models degrade to a global default, nothing errors
//   - Each package usable independently
//   - Stable, semver-friendly API
//   - Sensible defaults with full configurability
package modelconf
