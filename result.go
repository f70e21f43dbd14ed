package dicecore

// OpType identifies which grammar production produced a RollResult node.
type OpType string

// Operation types, matching spec's JSON op_type enumeration.
const (
	OpValue           OpType = "value"
	OpAdd             OpType = "add"
	OpSubtract        OpType = "subtract"
	OpMultiply        OpType = "multiply"
	OpCount           OpType = "count"
	OpDrop            OpType = "drop"
	OpClamp           OpType = "clamp"
	OpRollDice        OpType = "rollDice"
	OpRollFudge       OpType = "rollFudge"
	OpRollPercent     OpType = "rollPercent"
	OpRollD66         OpType = "rollD66"
	OpRollVals        OpType = "rollVals"
	OpRollPenetration OpType = "rollPenetration"
	OpReroll          OpType = "reroll"
	OpCompound        OpType = "compound"
	OpExplode         OpType = "explode"
	OpSort            OpType = "sort"
	OpComma           OpType = "comma"
	OpTotal           OpType = "total"
)

// A RollResult is a node in the evaluated expression tree: the text of the
// subexpression it represents, the operation that produced it, the dice
// that contributed to its total, the dice that were discarded along the
// way, and (when meaningful) the child RollResults it was built from.
//
// RollResult is a value type in spirit: once returned from evaluation it is
// never mutated. Arithmetic combinators (Add, Sub, Mul, CommaJoin,
// Aggregate) always build and return a new RollResult.
type RollResult struct {
	Expression string        `json:"expression,omitempty"`
	OpType     OpType        `json:"opType,omitempty"`
	Results    []*RolledDie  `json:"results,omitempty"`
	Discarded  []*RolledDie  `json:"discarded,omitempty"`
	Left       *RollResult   `json:"left,omitempty"`
	Right      *RollResult   `json:"right,omitempty"`
}

// Total sums the kept Results. Discarded dice never contribute.
func (r *RollResult) Total() int {
	if r == nil {
		return 0
	}
	sum := 0
	for _, d := range r.Results {
		sum += d.Result
	}
	return sum
}

// SuccessCount counts kept dice flagged Success or CritSuccess (a critical
// success implies success for counting purposes, per spec §4.7).
func (r *RollResult) SuccessCount() int {
	return r.countFlags(func(d *RolledDie) bool { return d.Success || d.CritSuccess })
}

// FailureCount counts kept dice flagged Failure or CritFailure.
func (r *RollResult) FailureCount() int {
	return r.countFlags(func(d *RolledDie) bool { return d.Failure || d.CritFailure })
}

// CritSuccessCount counts kept dice flagged CritSuccess.
func (r *RollResult) CritSuccessCount() int {
	return r.countFlags(func(d *RolledDie) bool { return d.CritSuccess })
}

// CritFailureCount counts kept dice flagged CritFailure.
func (r *RollResult) CritFailureCount() int {
	return r.countFlags(func(d *RolledDie) bool { return d.CritFailure })
}

func (r *RollResult) countFlags(match func(*RolledDie) bool) int {
	if r == nil {
		return 0
	}
	n := 0
	for _, d := range r.Results {
		if match(d) {
			n++
		}
	}
	return n
}

// Add concatenates both sides' Results and Discarded pools. expr is the
// canonical re-print of the combined expression.
func Add(expr string, a, b *RollResult) *RollResult {
	return &RollResult{
		Expression: expr,
		OpType:     OpAdd,
		Results:    append(append([]*RolledDie(nil), a.Results...), b.Results...),
		Discarded:  append(append([]*RolledDie(nil), a.Discarded...), b.Discarded...),
		Left:       a,
		Right:      b,
	}
}

// Sub keeps a's Results unchanged and appends a single synthetic singleVal
// equal to -total(b); all of b's Results move to Discarded.
func Sub(expr string, a, b *RollResult) *RollResult {
	negated := NewSingleVal(-b.Total())
	return &RollResult{
		Expression: expr,
		OpType:     OpSubtract,
		Results:    append(append([]*RolledDie(nil), a.Results...), negated),
		Discarded:  append(append(append([]*RolledDie(nil), a.Discarded...), b.Discarded...), b.Results...),
		Left:       a,
		Right:      b,
	}
}

// Mul collapses both sides to a single singleVal equal to total(a)*total(b);
// every original result on both sides is recorded in Discarded.
func Mul(expr string, a, b *RollResult) *RollResult {
	product := NewSingleVal(a.Total() * b.Total())
	discarded := append([]*RolledDie(nil), a.Discarded...)
	discarded = append(discarded, a.Results...)
	discarded = append(discarded, b.Discarded...)
	discarded = append(discarded, b.Results...)
	return &RollResult{
		Expression: expr,
		OpType:     OpMultiply,
		Results:    []*RolledDie{product},
		Discarded:  discarded,
		Left:       a,
		Right:      b,
	}
}

// CommaJoin preserves ordered aggregation: a side that is already a comma
// node splices its Results in directly; otherwise the side is totaled into
// one singleVal and its originals move to Discarded.
func CommaJoin(expr string, a, b *RollResult) *RollResult {
	results := make([]*RolledDie, 0, 2)
	discarded := make([]*RolledDie, 0)

	splice := func(side *RollResult) {
		if side.OpType == OpComma {
			results = append(results, side.Results...)
			discarded = append(discarded, side.Discarded...)
			return
		}
		discarded = append(discarded, side.Discarded...)
		discarded = append(discarded, side.Results...)
		results = append(results, NewSingleVal(side.Total()))
	}
	splice(a)
	splice(b)

	return &RollResult{
		Expression: expr,
		OpType:     OpComma,
		Results:    results,
		Discarded:  discarded,
		Left:       a,
		Right:      b,
	}
}

// Aggregate reduces inner's Results to a single singleVal, discarding the
// originals. The parser never produces a node that calls it; it is
// available to callers building result trees directly.
func Aggregate(expr string, inner *RollResult) *RollResult {
	discarded := append([]*RolledDie(nil), inner.Discarded...)
	discarded = append(discarded, inner.Results...)
	return &RollResult{
		Expression: expr,
		OpType:     OpTotal,
		Results:    []*RolledDie{NewSingleVal(inner.Total())},
		Discarded:  discarded,
		Left:       inner,
	}
}
