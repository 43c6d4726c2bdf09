// Package model resolves model-specific settings and context-window limits.
//
// A ModelConfig is constructed from a model name. Its context limit is
// resolved once, at construction time, with the following precedence:
//
//  1. A caller-chosen environment variable (e.g. MYAPP_LEAD_CONTEXT_LIMIT),
//     when one is named via NewWithContextEnv
//  2. The default override variable (MODELCONF_CONTEXT_LIMIT)
//  3. A known-model pattern match on the model name
//  4. The global default (DefaultContextLimit), applied by
//     EffectiveContextLimit rather than stored
//
// Every fallible step degrades silently: a malformed environment value is
// treated as unset and the chain falls through to the next tier. No
// operation in this package returns an error.
//
// # Construction
//
//	cfg := model.New("claude-sonnet-4-20250514")
//	cfg.EffectiveContextLimit() // 200000
//
// # Overlays
//
// Builder-style methods return updated copies, so explicit choices can be
// layered over the resolved defaults:
//
//	cfg = cfg.WithTemperature(ptr(0.2)).WithMaxTokens(ptr(4096))
//
// # Testing
//
// Environment access is an injected Lookup; tests pass a map-backed lookup
// instead of mutating the process environment:
//
//	env := func(k string) (string, bool) { v, ok := fake[k]; return v, ok }
//	cfg := model.NewWithLookup("gpt-4o", "", env)
package model
