// Package tokens budgets prompt components against a model's context window.
//
// Token estimation is based on the rule-of-thumb that approximately 4
// characters equals 1 token for English text. This provides a fast estimate
// without requiring a model-specific tokenizer.
//
// # Budget
//
// A Budget splits a context window across prompt components:
//
//	budget := tokens.NewBudget(100000)
//	// Default allocation: 20% system, 40% context, 30% user, 10% reserved
//	budget.FitsSystem(text)
//	budget.RemainingContext(usedTokens)
//
// Deriving the budget from a resolved model configuration uses the model's
// effective context limit as the total, and its max-tokens setting (when
// present) as the reserved output allocation:
//
//	cfg := model.New("claude-sonnet-4")
//	budget := tokens.NewBudgetForModel(cfg)
//
// # Counter
//
// The Counter interface provides token counting:
//
//	counter := tokens.NewEstimatingCounter()
//	count := counter.Count("Hello, world!")
//
// For one-off counting, use the convenience function:
//
//	count := tokens.EstimateTokens("Hello, world!")
package tokens
