package dicecore

import (
	"context"

	"go.uber.org/atomic"
)

// DefaultMaxRolls is the default ceiling on the number of individual dice a
// single Evaluator.Eval call may roll, counting every die rolled by every
// dice-producing node and every replacement rolled by reroll/explode/
// compound/penetrate. It exists independently of the per-modifier
// iteration bound L (spec §4.6): ndice is capped at 1000 per dice node, but
// a deeply nested expression can still contain many dice nodes.
const DefaultMaxRolls = 100000

type contextKey string

const ctxKeyRollBudget = contextKey("dicecore roll budget")

// rollBudget tracks rolls consumed against a ceiling for one evaluation.
type rollBudget struct {
	max   uint64
	spent *atomic.Uint64
}

// WithRollBudget returns a context carrying a fresh roll-count budget of max
// rolls. Evaluator.Eval installs one automatically if the caller's context
// doesn't already carry one.
func WithRollBudget(ctx context.Context, max uint64) context.Context {
	return context.WithValue(ctx, ctxKeyRollBudget, &rollBudget{max: max, spent: atomic.NewUint64(0)})
}

// chargeRolls deducts n rolls from the context's budget, returning
// ErrMaxRolls if doing so would exceed it. If the context carries no
// budget, charging always succeeds (ad-hoc Roller use outside an Evaluator
// is ungoverned).
func chargeRolls(ctx context.Context, n int) error {
	b, ok := ctx.Value(ctxKeyRollBudget).(*rollBudget)
	if !ok {
		return nil
	}
	if b.spent.Load()+uint64(n) > b.max {
		return ErrMaxRolls
	}
	b.spent.Add(uint64(n))
	return nil
}

// RollsSpent reports how many rolls have been charged against ctx's
// budget, or 0 if ctx carries none.
func RollsSpent(ctx context.Context) uint64 {
	b, ok := ctx.Value(ctxKeyRollBudget).(*rollBudget)
	if !ok {
		return 0
	}
	return b.spent.Load()
}
