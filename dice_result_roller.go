package dicecore

import (
	"context"

	"github.com/pkg/errors"
)

// DefaultFudgeFaces is the six-value fudge/fate face set spec.md
// prescribes: {-1,-1,0,0,1,1}.
var DefaultFudgeFaces = []int{-1, -1, 0, 0, 1, 1}

// DiceResultRoller wraps a Roller with typed convenience entry points that
// return RolledDie values instead of raw integers, dispatching reroll
// requests by the die's own DieType.
type DiceResultRoller struct {
	Roller Roller
}

// NewDiceResultRoller wraps roller.
func NewDiceResultRoller(roller Roller) *DiceResultRoller {
	return &DiceResultRoller{Roller: roller}
}

// RollPolyhedral rolls n dice of the given number of sides.
func (d *DiceResultRoller) RollPolyhedral(ctx context.Context, n, sides int) ([]*RolledDie, error) {
	vals, err := d.Roller.Roll(ctx, n, sides, 1, DieTypePolyhedral)
	if err != nil {
		return nil, err
	}
	out := make([]*RolledDie, len(vals))
	for i, v := range vals {
		out[i] = NewPolyhedralDie(v, sides)
	}
	return out, nil
}

// RollFudge rolls n fudge dice from DefaultFudgeFaces.
func (d *DiceResultRoller) RollFudge(ctx context.Context, n int) ([]*RolledDie, error) {
	vals, err := d.Roller.RollVals(ctx, n, DefaultFudgeFaces, DieTypeFudge)
	if err != nil {
		return nil, err
	}
	out := make([]*RolledDie, len(vals))
	for i, v := range vals {
		out[i] = NewFudgeDie(v, DefaultFudgeFaces)
	}
	return out, nil
}

// RollD66 rolls n composed d66 dice, each built from two d6 rolls.
func (d *DiceResultRoller) RollD66(ctx context.Context, n int) ([]*RolledDie, error) {
	out := make([]*RolledDie, n)
	for i := 0; i < n; i++ {
		pair, err := d.Roller.Roll(ctx, 2, 6, 1, DieTypeD66)
		if err != nil {
			return nil, err
		}
		out[i] = NewD66Die(pair[0], pair[1])
	}
	return out, nil
}

// RollVals rolls n dice from an arbitrary bracketed value list.
func (d *DiceResultRoller) RollVals(ctx context.Context, n int, vals []int) ([]*RolledDie, error) {
	drawn, err := d.Roller.RollVals(ctx, n, vals, DieTypeNVals)
	if err != nil {
		return nil, err
	}
	out := make([]*RolledDie, len(drawn))
	for i, v := range drawn {
		out[i] = NewNValsDie(v, vals)
	}
	return out, nil
}

// Reroll draws one fresh replacement for die, of the same DieType and
// sides/value-set as the original.
func (d *DiceResultRoller) Reroll(ctx context.Context, die *RolledDie) (*RolledDie, error) {
	switch die.DieType {
	case DieTypePolyhedral:
		out, err := d.RollPolyhedral(ctx, 1, die.NSides)
		if err != nil {
			return nil, err
		}
		return out[0], nil
	case DieTypeFudge:
		vals, err := d.Roller.RollVals(ctx, 1, die.PotentialValues, DieTypeFudge)
		if err != nil {
			return nil, err
		}
		return NewFudgeDie(vals[0], die.PotentialValues), nil
	case DieTypeNVals:
		vals, err := d.Roller.RollVals(ctx, 1, die.PotentialValues, DieTypeNVals)
		if err != nil {
			return nil, err
		}
		return NewNValsDie(vals[0], die.PotentialValues), nil
	case DieTypeD66:
		out, err := d.RollD66(ctx, 1)
		if err != nil {
			return nil, err
		}
		return out[0], nil
	default:
		return nil, errors.Errorf("dicecore: die type %s is not rerollable", die.DieType)
	}
}
