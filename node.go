package dicecore

import "context"

// Node is one production of the parsed expression tree. Eval walks the
// subtree rooted at the node, asking the Evaluator's Roller for any dice it
// needs, and returns the RollResult that production contributes.
type Node interface {
	Eval(ctx context.Context, ev *Evaluator) (*RollResult, error)
	String() string
}

// emptyValueNode is the grammar's atom epsilon production: it evaluates to
// the integer zero (spec §4.2, "empty input parses to the integer zero").
var emptyValueNode Node = &valueNode{text: ""}

// isLiteral reports whether n is the empty atom or a bare integer literal:
// these never attach as a Left/Right child of the node that consumes them,
// since they carry no subexpression worth keeping provenance for.
func isLiteral(n Node) bool {
	if n == nil {
		return true
	}
	_, ok := n.(*valueNode)
	return ok
}

// totalOrDefault evaluates n (through the evaluator so on_roll still fires
// for it) and returns its total. It returns def and a nil result if n is
// nil, and always returns a nil result for a bare literal operand so
// callers don't attach it as a child.
func totalOrDefault(ctx context.Context, ev *Evaluator, n Node, def int) (int, *RollResult, error) {
	if n == nil {
		return def, nil, nil
	}
	res, err := ev.evalChild(ctx, n)
	if err != nil {
		return 0, nil, err
	}
	total := res.Total()
	if isLiteral(n) {
		return total, nil, nil
	}
	return total, res, nil
}

func appendDiscarded(lists ...[]*RolledDie) []*RolledDie {
	var out []*RolledDie
	for _, l := range lists {
		out = append(out, l...)
	}
	return out
}
