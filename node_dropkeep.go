package dicecore

import "context"

// dropCompareNode implements -<, -<=, ->, ->=, -= : drop every kept result
// matching `result <cmp> target`.
type dropCompareNode struct {
	left   Node
	symbol string // one of "-<","-<=","->","->=","-="
	rhs    Node
	pos    int
}

var dropCompareOps = map[string]CompareOp{
	"-<":  LSS,
	"-<=": LEQ,
	"->":  GTR,
	"->=": GEQ,
	"-=":  EQL,
}

func (n *dropCompareNode) String() string {
	rhs := ""
	if n.rhs != nil {
		rhs = n.rhs.String()
	}
	return n.left.String() + n.symbol + rhs
}

func (n *dropCompareNode) Eval(ctx context.Context, ev *Evaluator) (*RollResult, error) {
	l, err := ev.evalChild(ctx, n.left)
	if err != nil {
		return nil, err
	}
	if n.rhs == nil {
		return nil, NewFormatError("drop modifier is missing its target", n.String(), n.pos)
	}
	target, rhsRes, err := totalOrDefault(ctx, ev, n.rhs, 0)
	if err != nil {
		return nil, err
	}
	cmp := dropCompareOps[n.symbol]

	var kept, dropped []*RolledDie
	for _, d := range l.Results {
		if cmp.Match(d.Result, target) {
			c := d.Copy()
			c.Discarded = true
			dropped = append(dropped, c)
		} else {
			kept = append(kept, d)
		}
	}
	return &RollResult{
		Expression: n.String(),
		OpType:     OpDrop,
		Results:    kept,
		Discarded:  appendDiscarded(l.Discarded, dropped),
		Left:       l,
		Right:      rhsRes,
	}, nil
}

// dropHighLowNode implements -h, -l, kh, kl, k (alias of kh).
type dropHighLowNode struct {
	left   Node
	method string
	rhs    Node // optional, defaults to 1
	pos    int
}

func (n *dropHighLowNode) String() string {
	rhs := ""
	if n.rhs != nil {
		rhs = n.rhs.String()
	}
	return n.left.String() + n.method + rhs
}

func (n *dropHighLowNode) Eval(ctx context.Context, ev *Evaluator) (*RollResult, error) {
	l, err := ev.evalChild(ctx, n.left)
	if err != nil {
		return nil, err
	}
	k, rhsRes, err := totalOrDefault(ctx, ev, n.rhs, 1)
	if err != nil {
		return nil, err
	}
	if k < 0 {
		k = 0
	}

	sorted := sortDice(l.Results, false) // ascending
	total := len(sorted)

	var kept, dropped []*RolledDie
	switch n.method {
	case "-h":
		keepCount := total - k
		if keepCount < 0 {
			keepCount = 0
		}
		kept, dropped = sorted[:keepCount], sorted[keepCount:]
	case "-l":
		dropCount := k
		if dropCount > total {
			dropCount = total
		}
		dropped, kept = sorted[:dropCount], sorted[dropCount:]
	case "kh", "k":
		topK := k
		if topK > total {
			topK = total
		}
		dropStart := total - topK
		dropped, kept = sorted[:dropStart], sorted[dropStart:]
	case "kl":
		bottomK := k
		if bottomK > total {
			bottomK = total
		}
		kept, dropped = sorted[:bottomK], sorted[bottomK:]
	}

	droppedCopies := make([]*RolledDie, len(dropped))
	for i, d := range dropped {
		c := d.Copy()
		c.Discarded = true
		droppedCopies[i] = c
	}

	return &RollResult{
		Expression: n.String(),
		OpType:     OpDrop,
		Results:    kept,
		Discarded:  appendDiscarded(l.Discarded, droppedCopies),
		Left:       l,
		Right:      rhsRes,
	}, nil
}

// clampNode implements C>/c> (clamp ceiling) and C</c< (clamp floor).
type clampNode struct {
	left    Node
	ceiling bool
	rhs     Node
	pos     int
}

func (n *clampNode) String() string {
	sym := "C<"
	if n.ceiling {
		sym = "C>"
	}
	rhs := ""
	if n.rhs != nil {
		rhs = n.rhs.String()
	}
	return n.left.String() + sym + rhs
}

func (n *clampNode) Eval(ctx context.Context, ev *Evaluator) (*RollResult, error) {
	l, err := ev.evalChild(ctx, n.left)
	if err != nil {
		return nil, err
	}
	if n.rhs == nil {
		return nil, NewFormatError("clamp modifier is missing its bound", n.String(), n.pos)
	}
	bound, rhsRes, err := totalOrDefault(ctx, ev, n.rhs, 0)
	if err != nil {
		return nil, err
	}

	var kept, discardedOriginals []*RolledDie
	for _, d := range l.Results {
		if n.ceiling && d.Result > bound {
			orig := d.Copy()
			orig.Discarded = true
			discardedOriginals = append(discardedOriginals, orig)
			c := d.Copy()
			c.Result = bound
			c.ClampCeiling = true
			c.From = []*RolledDie{orig}
			kept = append(kept, c)
		} else if !n.ceiling && d.Result < bound {
			orig := d.Copy()
			orig.Discarded = true
			discardedOriginals = append(discardedOriginals, orig)
			c := d.Copy()
			c.Result = bound
			c.ClampFloor = true
			c.From = []*RolledDie{orig}
			kept = append(kept, c)
		} else {
			kept = append(kept, d)
		}
	}

	return &RollResult{
		Expression: n.String(),
		OpType:     OpClamp,
		Results:    kept,
		Discarded:  appendDiscarded(l.Discarded, discardedOriginals),
		Left:       l,
		Right:      rhsRes,
	}, nil
}

// sortNode reorders Results (and Discarded, for readability) by value.
// Sorting is purely presentational: totals, counts, and further modifier
// semantics never depend on order.
type sortNode struct {
	left       Node
	descending bool
}

func (n *sortNode) String() string {
	if n.descending {
		return n.left.String() + "sd"
	}
	return n.left.String() + "s"
}

func (n *sortNode) Eval(ctx context.Context, ev *Evaluator) (*RollResult, error) {
	l, err := ev.evalChild(ctx, n.left)
	if err != nil {
		return nil, err
	}
	return &RollResult{
		Expression: n.String(),
		OpType:     OpSort,
		Results:    sortDice(l.Results, n.descending),
		Discarded:  sortDice(l.Discarded, n.descending),
		Left:       l,
	}, nil
}
