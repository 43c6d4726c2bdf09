package tokens

import "github.com/randalmurphal/modelconf/model"

// DefaultSystemPercent is the default percentage for system prompts.
const DefaultSystemPercent = 20

// DefaultContextPercent is the default percentage for context.
const DefaultContextPercent = 40

// DefaultUserPercent is the default percentage for user messages.
const DefaultUserPercent = 30

// DefaultReservedPercent is the default percentage reserved for response.
const DefaultReservedPercent = 10

// Budget manages token allocation across prompt components within a
// model's context window.
type Budget struct {
	// Total is the total token budget available, typically the model's
	// effective context limit.
	Total int

	// System is the budget for system prompts.
	System int

	// Context is the budget for task context, history, etc.
	Context int

	// User is the budget for user messages.
	User int

	// Reserved is the budget reserved for response generation.
	Reserved int

	counter Counter
}

// NewBudget creates a budget with total tokens allocated proportionally.
// Default allocation: 20% system, 40% context, 30% user, 10% reserved.
func NewBudget(total int) *Budget {
	return &Budget{
		Total:    total,
		System:   total * DefaultSystemPercent / 100,
		Context:  total * DefaultContextPercent / 100,
		User:     total * DefaultUserPercent / 100,
		Reserved: total * DefaultReservedPercent / 100,
		counter:  NewEstimatingCounter(),
	}
}

// NewBudgetWithAllocation creates a budget with custom allocations,
// specified as relative weights normalized to the total. For example,
// (100000, 20, 40, 30, 10) allocates 20% system, 40% context, 30% user,
// 10% reserved.
func NewBudgetWithAllocation(total, system, context, user, reserved int) *Budget {
	sum := system + context + user + reserved
	if sum == 0 {
		sum = 100
	}
	return &Budget{
		Total:    total,
		System:   total * system / sum,
		Context:  total * context / sum,
		User:     total * user / sum,
		Reserved: total * reserved / sum,
		counter:  NewEstimatingCounter(),
	}
}

// NewBudgetForModel creates a budget sized to the model's effective context
// limit. When the configuration carries an explicit max-tokens setting, that
// many tokens are reserved for the response and the input percentages are
// scaled over the remainder; otherwise the default allocation applies.
func NewBudgetForModel(cfg model.ModelConfig) *Budget {
	total := cfg.EffectiveContextLimit()
	if cfg.MaxTokens == nil {
		return NewBudget(total)
	}

	reserved := *cfg.MaxTokens
	if reserved > total {
		reserved = total
	}
	input := total - reserved
	inputSum := DefaultSystemPercent + DefaultContextPercent + DefaultUserPercent
	return &Budget{
		Total:    total,
		System:   input * DefaultSystemPercent / inputSum,
		Context:  input * DefaultContextPercent / inputSum,
		User:     input * DefaultUserPercent / inputSum,
		Reserved: reserved,
		counter:  NewEstimatingCounter(),
	}
}

// FitsSystem returns true if the system prompt fits within the system budget.
func (b *Budget) FitsSystem(text string) bool {
	return b.counter.FitsInLimit(text, b.System)
}

// FitsContext returns true if the context fits within the context budget.
func (b *Budget) FitsContext(text string) bool {
	return b.counter.FitsInLimit(text, b.Context)
}

// FitsUser returns true if the user message fits within the user budget.
func (b *Budget) FitsUser(text string) bool {
	return b.counter.FitsInLimit(text, b.User)
}

// RemainingContext returns the remaining context budget after accounting
// for used tokens.
func (b *Budget) RemainingContext(usedTokens int) int {
	remaining := b.Context - usedTokens
	if remaining < 0 {
		return 0
	}
	return remaining
}

// RemainingTotal returns remaining tokens after subtracting used amounts.
func (b *Budget) RemainingTotal(systemUsed, contextUsed, userUsed int) int {
	used := systemUsed + contextUsed + userUsed + b.Reserved
	remaining := b.Total - used
	if remaining < 0 {
		return 0
	}
	return remaining
}
