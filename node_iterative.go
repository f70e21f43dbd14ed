package dicecore

import "context"

// rerollNode implements r/ro. Unlike explode/compound, a missing target is
// a FormatError rather than defaulting to the die's max potential (spec
// §4.6 overrides the general missing-rhs default for this modifier).
type rerollNode struct {
	left   Node
	once   bool
	hasCmp bool
	cmp    CompareOp
	target Node
	pos    int
}

func (n *rerollNode) String() string {
	sym := "r"
	if n.once {
		sym = "ro"
	}
	cmp := ""
	if n.hasCmp {
		cmp = n.cmp.String()
	}
	tgt := ""
	if n.target != nil {
		tgt = n.target.String()
	}
	return n.left.String() + sym + cmp + tgt
}

func (n *rerollNode) Eval(ctx context.Context, ev *Evaluator) (*RollResult, error) {
	l, err := ev.evalChild(ctx, n.left)
	if err != nil {
		return nil, err
	}
	if n.target == nil {
		return nil, NewFormatError("reroll modifier is missing its target", n.String(), n.pos)
	}
	target, targetRes, err := totalOrDefault(ctx, ev, n.target, 0)
	if err != nil {
		return nil, err
	}
	cmp := EQL
	if n.hasCmp {
		cmp = n.cmp
	}
	maxIter := 1000
	if n.once {
		maxIter = 1
	}

	var kept, discardedOriginals []*RolledDie
	for _, d := range l.Results {
		cur := d
		iter := 0
		for cmp.Match(cur.Result, target) && iter < maxIter {
			next, err := ev.Dice.Reroll(ctx, d)
			if err != nil {
				return nil, err
			}
			cur = next
			iter++
		}
		if iter > 0 {
			final := cur.Copy()
			final.Reroll = true
			final.From = []*RolledDie{d}
			kept = append(kept, final)
			orig := d.Copy()
			orig.Discarded = true
			orig.Rerolled = true
			discardedOriginals = append(discardedOriginals, orig)
		} else {
			kept = append(kept, d)
		}
	}

	return &RollResult{
		Expression: n.String(),
		OpType:     OpReroll,
		Results:    kept,
		Discarded:  appendDiscarded(l.Discarded, discardedOriginals),
		Left:       l,
		Right:      targetRes,
	}, nil
}

type iterMode int

const (
	modeExplode iterMode = iota
	modeCompound
	modePenetrate
)

// explodeFamilyNode implements !, !!, !o, !!o (modeExplode/modeCompound) and
// p/pM (modePenetrate).
type explodeFamilyNode struct {
	left    Node
	mode    iterMode
	once    bool
	hasCmp  bool
	cmp     CompareOp
	target  Node // explode/compound comparison target; nil -> per-die max
	penSize Node // penetrate-only follow-on die size; nil -> original's sides
	pos     int
}

func (n *explodeFamilyNode) String() string {
	var sym string
	switch n.mode {
	case modeCompound:
		sym = "!!"
		if n.once {
			sym = "!!o"
		}
	case modePenetrate:
		sym = "p"
	default:
		sym = "!"
		if n.once {
			sym = "!o"
		}
	}
	cmp := ""
	if n.hasCmp {
		cmp = n.cmp.String()
	}
	tgt := ""
	if n.target != nil {
		tgt = n.target.String()
	}
	if n.mode == modePenetrate && n.penSize != nil {
		tgt = n.penSize.String()
	}
	return n.left.String() + sym + cmp + tgt
}

func (n *explodeFamilyNode) Eval(ctx context.Context, ev *Evaluator) (*RollResult, error) {
	l, err := ev.evalChild(ctx, n.left)
	if err != nil {
		return nil, err
	}

	switch n.mode {
	case modePenetrate:
		return n.evalPenetrate(ctx, ev, l)
	case modeCompound:
		return n.evalExplodeOrCompound(ctx, ev, l, true)
	default:
		return n.evalExplodeOrCompound(ctx, ev, l, false)
	}
}

func (n *explodeFamilyNode) evalExplodeOrCompound(ctx context.Context, ev *Evaluator, l *RollResult, compound bool) (*RollResult, error) {
	cmp := EQL
	if n.hasCmp {
		cmp = n.cmp
	}
	maxIter := 1000
	if n.once {
		maxIter = 1
	}

	var explicitTarget *RollResult
	var explicitVal int
	hasExplicit := n.target != nil
	if hasExplicit {
		v, res, err := totalOrDefault(ctx, ev, n.target, 0)
		if err != nil {
			return nil, err
		}
		explicitVal, explicitTarget = v, res
	}

	var kept, discarded []*RolledDie
	for _, d := range l.Results {
		if !d.DieType.Explodable() {
			kept = append(kept, d)
			continue
		}
		target := d.MaxPotential()
		if hasExplicit {
			target = explicitVal
		}
		if !cmp.Match(d.Result, target) {
			kept = append(kept, d)
			continue
		}

		if !compound {
			orig := d.Copy()
			orig.Exploded = true
			kept = append(kept, orig)
			cur := d
			iter := 0
			for cmp.Match(cur.Result, target) && iter < maxIter {
				next, err := ev.Dice.Reroll(ctx, d)
				if err != nil {
					return nil, err
				}
				next.Explosion = true
				kept = append(kept, next)
				cur = next
				iter++
			}
			continue
		}

		orig := d.Copy()
		orig.Discarded = true
		orig.Compounded = true
		discarded = append(discarded, orig)
		sum := d.Result
		cur := d
		iter := 0
		for cmp.Match(cur.Result, target) && iter < maxIter {
			next, err := ev.Dice.Reroll(ctx, d)
			if err != nil {
				return nil, err
			}
			sum += next.Result
			nCopy := next.Copy()
			nCopy.Discarded = true
			nCopy.Compounded = true
			discarded = append(discarded, nCopy)
			cur = next
			iter++
		}
		final := d.Copy()
		final.Result = sum
		final.CompoundedFinal = true
		kept = append(kept, final)
	}

	opType := OpExplode
	if compound {
		opType = OpCompound
	}
	return &RollResult{
		Expression: n.String(),
		OpType:     opType,
		Results:    kept,
		Discarded:  appendDiscarded(l.Discarded, discarded),
		Left:       l,
		Right:      explicitTarget,
	}, nil
}

func (n *explodeFamilyNode) evalPenetrate(ctx context.Context, ev *Evaluator, l *RollResult) (*RollResult, error) {
	var penSizeRes *RollResult
	var explicitM int
	hasExplicitM := n.penSize != nil
	if hasExplicitM {
		v, res, err := totalOrDefault(ctx, ev, n.penSize, 0)
		if err != nil {
			return nil, err
		}
		explicitM, penSizeRes = v, res
	}

	var kept, discarded []*RolledDie
	for _, d := range l.Results {
		if d.DieType != DieTypePolyhedral || d.Result != d.MaxPotential() {
			kept = append(kept, d)
			continue
		}
		m := d.NSides
		if hasExplicitM {
			m = explicitM
		}

		sum := d.Result
		numPen := 0
		cur := d
		iter := 0
		for iter < 1000 && cur.Result == cur.MaxPotential() {
			rolled, err := ev.Dice.RollPolyhedral(ctx, 1, m)
			if err != nil {
				return nil, err
			}
			next := rolled[0]
			sum += next.Result
			numPen++
			nCopy := next.Copy()
			nCopy.Discarded = true
			nCopy.Penetrator = true
			discarded = append(discarded, nCopy)
			cur = next
			iter++
		}

		final := d.Copy()
		final.Result = sum - numPen
		final.Penetrated = true
		kept = append(kept, final)

		bookkeeper := NewSingleVal(-numPen)
		bookkeeper.Discarded = true
		bookkeeper.Penetrator = true
		discarded = append(discarded, bookkeeper)
	}

	return &RollResult{
		Expression: n.String(),
		OpType:     OpRollPenetration,
		Results:    kept,
		Discarded:  appendDiscarded(l.Discarded, discarded),
		Left:       l,
		Right:      penSizeRes,
	}, nil
}
