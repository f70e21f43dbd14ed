package dicecore

import "sort"

// A RolledDie is an immutable record of one atomic outcome plus the
// provenance flags that modifiers stamped onto it while evaluating an
// expression. RolledDie values are never mutated after construction; a
// modifier that needs to change a die's state (discarding it, clamping it,
// rerolling it) produces a new RolledDie via Copy and sets fields on the copy.
type RolledDie struct {
	Result          int     `json:"result"`
	DieType         DieType `json:"dieType,omitempty"`
	NSides          int     `json:"nsides,omitempty"`
	PotentialValues []int   `json:"potentialValues,omitempty"`

	Discarded bool `json:"discarded,omitempty"`

	Success     bool `json:"success,omitempty"`
	Failure     bool `json:"failure,omitempty"`
	CritSuccess bool `json:"critSuccess,omitempty"`
	CritFailure bool `json:"critFailure,omitempty"`

	Exploded        bool `json:"exploded,omitempty"`
	Explosion       bool `json:"explosion,omitempty"`
	Compounded      bool `json:"compounded,omitempty"`
	CompoundedFinal bool `json:"compoundedFinal,omitempty"`

	Penetrated bool `json:"penetrated,omitempty"`
	Penetrator bool `json:"penetrator,omitempty"`

	Reroll   bool `json:"reroll,omitempty"`
	Rerolled bool `json:"rerolled,omitempty"`

	ClampCeiling bool `json:"clampHigh,omitempty"`
	ClampFloor   bool `json:"clampLow,omitempty"`

	Totaled bool `json:"totaled,omitempty"`

	// From holds the dice this die was derived from: the original for a
	// rerolled/clamped/penetrated die, or the component dice for a
	// composed die such as d66.
	From []*RolledDie `json:"from,omitempty"`
}

// NewPolyhedralDie builds a freshly rolled polyhedral die, min defaulting to
// 1. Percent dice (d%) are just polyhedral dice of size 100.
func NewPolyhedralDie(result, nsides int) *RolledDie {
	return &RolledDie{Result: result, DieType: DieTypePolyhedral, NSides: nsides}
}

// NewD66Die builds a composed d66 result from its two source d6 rolls. Both
// source dice are recorded in From; the caller is responsible for moving
// them to a RollResult's Discarded slice.
func NewD66Die(tens, ones int) *RolledDie {
	t := NewPolyhedralDie(tens, 6)
	t.Discarded = true
	o := NewPolyhedralDie(ones, 6)
	o.Discarded = true
	return &RolledDie{
		Result:  tens*10 + ones,
		DieType: DieTypeD66,
		NSides:  66,
		From:    []*RolledDie{t, o},
	}
}

// NewFudgeDie builds a fudge die result drawn from potentialValues (the
// default fudge face set is {-1,-1,0,0,1,1}, but a Roller may report a
// narrower distinct set of faces; this constructor accepts whatever the
// Roller actually offered).
func NewFudgeDie(result int, potentialValues []int) *RolledDie {
	return &RolledDie{Result: result, DieType: DieTypeFudge, PotentialValues: potentialValues}
}

// NewNValsDie builds a die drawn from an arbitrary bracketed value list.
func NewNValsDie(result int, vals []int) *RolledDie {
	return &RolledDie{Result: result, DieType: DieTypeNVals, PotentialValues: vals}
}

// NewSingleVal builds a synthetic, non-random die such as the ones
// arithmetic, aggregation, or counting operators emit.
func NewSingleVal(result int) *RolledDie {
	return &RolledDie{Result: result, DieType: DieTypeSingleVal, PotentialValues: []int{result}}
}

// MinPotential returns the smallest value this die could have rolled.
func (d *RolledDie) MinPotential() int {
	switch d.DieType {
	case DieTypePolyhedral:
		return 1
	case DieTypeD66:
		return 1
	case DieTypeFudge, DieTypeNVals, DieTypeSingleVal:
		return minInts(d.PotentialValues)
	default:
		return d.Result
	}
}

// MaxPotential returns the largest value this die could have rolled.
func (d *RolledDie) MaxPotential() int {
	switch d.DieType {
	case DieTypePolyhedral:
		return d.NSides
	case DieTypeD66:
		return 66
	case DieTypeFudge, DieTypeNVals, DieTypeSingleVal:
		return maxInts(d.PotentialValues)
	default:
		return d.Result
	}
}

// IsUnaggregatable reports whether this die's potential range collapses to a
// single value (min == max), the case the #s/#f/#cs/#cf counting operators
// refuse to trivially match against when their target is defaulted.
func (d *RolledDie) IsUnaggregatable() bool {
	return d.MinPotential() == d.MaxPotential()
}

// Copy returns a shallow copy of the die. Callers use it as the basis for
// copy-with-overrides mutation: `c := die.Copy(); c.Discarded = true`.
func (d *RolledDie) Copy() *RolledDie {
	c := *d
	if d.PotentialValues != nil {
		c.PotentialValues = append([]int(nil), d.PotentialValues...)
	}
	if d.From != nil {
		c.From = append([]*RolledDie(nil), d.From...)
	}
	return &c
}

func minInts(vals []int) int {
	if len(vals) == 0 {
		return 0
	}
	m := vals[0]
	for _, v := range vals[1:] {
		if v < m {
			m = v
		}
	}
	return m
}

func maxInts(vals []int) int {
	if len(vals) == 0 {
		return 0
	}
	m := vals[0]
	for _, v := range vals[1:] {
		if v > m {
			m = v
		}
	}
	return m
}

// sortDice returns a new, sorted copy of dice. Sorting is stable by result,
// then (for ties) by the order the dice already appeared in, so repeated
// sorts of an already-sorted pool are no-ops.
func sortDice(dice []*RolledDie, descending bool) []*RolledDie {
	out := append([]*RolledDie(nil), dice...)
	sort.SliceStable(out, func(i, j int) bool {
		if descending {
			return out[i].Result > out[j].Result
		}
		return out[i].Result < out[j].Result
	})
	return out
}
