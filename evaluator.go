package dicecore

import "context"

// Evaluator walks a parsed expression tree, asking a DiceResultRoller for
// every die it needs, and reports each subexpression's RollResult (and the
// final RollSummary) to any listeners installed on OnRoll/OnSummary.
//
// Listener callbacks run synchronously on the evaluating goroutine; a
// caller that wants asynchronous delivery (spec §4.8's "async post-order
// walk") should make OnRoll/OnSummary non-blocking themselves, e.g. by
// sending on a channel.
type Evaluator struct {
	Dice *DiceResultRoller

	// OnRoll is invoked once per non-root node, in post-order, with that
	// node's RollResult.
	OnRoll func(*RollResult)

	// OnSummary is invoked once, after the whole tree has evaluated, with
	// the top-level RollSummary.
	OnSummary func(*RollSummary)
}

// NewEvaluator builds an Evaluator around roller.
func NewEvaluator(roller Roller) *Evaluator {
	return &Evaluator{Dice: NewDiceResultRoller(roller)}
}

// evalChild evaluates a non-root subexpression and fires OnRoll for it.
// Every node implementation evaluates its children through evalChild, so
// that the root's own RollResult (evaluated directly by Eval below) is the
// one node OnRoll never sees. The one exception is groupNode, which calls
// its wrapped node's Eval directly so that a parenthesized pool does not
// fire OnRoll twice.
func (ev *Evaluator) evalChild(ctx context.Context, n Node) (*RollResult, error) {
	if n == nil {
		return nil, nil
	}
	r, err := n.Eval(ctx, ev)
	if err != nil {
		return nil, err
	}
	if ev.OnRoll != nil {
		ev.OnRoll(r)
	}
	return r, nil
}

// Eval evaluates root and returns its RollSummary. If ctx carries no roll
// budget already, DefaultMaxRolls is installed.
func (ev *Evaluator) Eval(ctx context.Context, root Node) (*RollSummary, error) {
	if _, ok := ctx.Value(ctxKeyRollBudget).(*rollBudget); !ok {
		ctx = WithRollBudget(ctx, DefaultMaxRolls)
	}
	result, err := root.Eval(ctx, ev)
	if err != nil {
		return nil, err
	}
	summary := NewRollSummary(result)
	if ev.OnSummary != nil {
		ev.OnSummary(summary)
	}
	return summary, nil
}

// Roll is a convenience wrapper: parse expr and evaluate it in one call.
func (ev *Evaluator) Roll(ctx context.Context, expr string) (*RollSummary, error) {
	root, err := Parse(expr)
	if err != nil {
		return nil, err
	}
	return ev.Eval(ctx, root)
}
