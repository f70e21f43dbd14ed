package dicecore

import "context"

type countKind int

const (
	countPlain countKind = iota
	countSuccess
	countFailure
	countCritSuccess
	countCritFailure
)

var countSymbols = map[countKind]string{
	countPlain:       "#",
	countSuccess:     "#s",
	countFailure:     "#f",
	countCritSuccess: "#cs",
	countCritFailure: "#cf",
}

// countNode implements #, #s, #f, #cs, #cf. A comparator with no following
// integer is always a FormatError; an integer alone is shorthand for "=
// integer" (spec §4.7's "#N is equivalent to #=N").
type countNode struct {
	left   Node
	kind   countKind
	hasCmp bool
	cmp    CompareOp
	target Node // present iff an explicit integer followed
	pos    int
}

func (n *countNode) String() string {
	cmp := ""
	if n.hasCmp {
		cmp = n.cmp.String()
	}
	tgt := ""
	if n.target != nil {
		tgt = n.target.String()
	}
	return n.left.String() + countSymbols[n.kind] + cmp + tgt
}

func (n *countNode) Eval(ctx context.Context, ev *Evaluator) (*RollResult, error) {
	l, err := ev.evalChild(ctx, n.left)
	if err != nil {
		return nil, err
	}
	if n.hasCmp && n.target == nil {
		return nil, NewFormatError("counting operator comparator requires an integer", n.String(), n.pos)
	}

	cmp := EQL
	if n.hasCmp {
		cmp = n.cmp
	}
	explicit := n.target != nil
	var targetVal int
	var targetRes *RollResult
	if explicit {
		v, res, err := totalOrDefault(ctx, ev, n.target, 0)
		if err != nil {
			return nil, err
		}
		targetVal, targetRes = v, res
	}

	if n.kind == countPlain {
		matches := 0
		for _, d := range l.Results {
			if !explicit || cmp.Match(d.Result, targetVal) {
				matches++
			}
		}
		return &RollResult{
			Expression: n.String(),
			OpType:     OpCount,
			Results:    []*RolledDie{NewSingleVal(matches)},
			Discarded:  appendDiscarded(l.Discarded, l.Results),
			Left:       l,
			Right:      targetRes,
		}, nil
	}

	kept := make([]*RolledDie, 0, len(l.Results))
	for _, d := range l.Results {
		useDefault := !explicit
		target := targetVal
		if useDefault {
			switch n.kind {
			case countSuccess, countCritSuccess:
				target = d.MaxPotential()
			default:
				target = d.MinPotential()
			}
		}
		matched := cmp.Match(d.Result, target)
		if useDefault && d.IsUnaggregatable() {
			matched = false
		}
		if !matched {
			kept = append(kept, d)
			continue
		}
		c := d.Copy()
		switch n.kind {
		case countSuccess:
			c.Success = true
		case countCritSuccess:
			c.CritSuccess = true
		case countFailure:
			c.Failure = true
		case countCritFailure:
			c.CritFailure = true
		}
		kept = append(kept, c)
	}

	return &RollResult{
		Expression: n.String(),
		OpType:     OpCount,
		Results:    kept,
		Discarded:  l.Discarded,
		Left:       l,
		Right:      targetRes,
	}, nil
}
