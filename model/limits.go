package model

import (
	"strings"
	"sync"
)

// DefaultContextLimit is the global fallback context-window size, used by
// EffectiveContextLimit when no explicit limit, environment override, or
// pattern match produced one.
const DefaultContextLimit = 128_000

var (
	limitsOnce  sync.Once
	modelLimits map[string]int
)

// limitTable returns the static pattern -> context-limit table, building it
// on first access. The table is immutable afterwards and safe for
// concurrent reads.
func limitTable() map[string]int {
	limitsOnce.Do(func() {
		modelLimits = map[string]int{
			// OpenAI models, https://platform.openai.com/docs/models#models-overview
			"gpt-4o":      128_000,
			"gpt-4-turbo": 128_000,
			"o3":          200_000,
			"o3-mini":     200_000,
			"o4-mini":     200_000,
			"gpt-4.1":     1_000_000,
			"gpt-4-1":     1_000_000,

			// Anthropic models, https://docs.anthropic.com/en/docs/about-claude/models
			"claude": 200_000,

			// Google models, https://ai.google/get-started/our-models/
			"gemini-2.5": 1_000_000,
			"gemini-2-5": 1_000_000,

			// Meta Llama models, https://github.com/meta-llama/llama-models
			"llama3.2": 128_000,
			"llama3.3": 128_000,

			// x.ai Grok models, https://docs.x.ai/docs/overview
			"grok": 131_072,

			// Groq models, https://console.groq.com/docs/models
			"gemma2-9b":   8_192,
			"kimi-k2":     131_072,
			"qwen3-32b":   131_072,
			"grok-3":      131_072,
			"grok-4":      256_000,
			"qwen3-coder": 262_144,
		}
	})
	return modelLimits
}

// ModelLimitConfig is an export record pairing a model-name pattern with its
// known context limit, for introspection or display.
type ModelLimitConfig struct {
	Pattern      string `json:"pattern" yaml:"pattern"`
	ContextLimit int    `json:"context_limit" yaml:"context_limit"`
}

// AllModelLimits returns every known pattern and its context limit, freshly
// materialized on each call. Order is unspecified.
func AllModelLimits() []ModelLimitConfig {
	table := limitTable()
	limits := make([]ModelLimitConfig, 0, len(table))
	for pattern, limit := range table {
		limits = append(limits, ModelLimitConfig{
			Pattern:      pattern,
			ContextLimit: limit,
		})
	}
	return limits
}

// lookupModelLimit returns the context limit of the first table pattern
// contained in modelName, in map iteration order.
//
// Known limitation: when a name contains more than one pattern (e.g. both
// "grok" and "grok-4"), the winner is whichever pattern iteration reaches
// first, which can differ between runs. This first-match-in-unordered-table
// behavior is a fixed contract, not a tie-break to be imposed here.
func lookupModelLimit(modelName string) (int, bool) {
	for pattern, limit := range limitTable() {
		if strings.Contains(modelName, pattern) {
			return limit, true
		}
	}
	return 0, false
}
