package dicecore

import (
	"context"
	"fmt"
	"strconv"
	"strings"
)

type diceKind int

const (
	diceStd diceKind = iota
	dicePercent
	diceD66
	diceFudge
	diceCsv
)

// diceNode is the dice production: atom ('d' diceRhs | 'D66' | 'd%')?.
// left is the optional dice-count atom (defaults to 1); right is the
// optional sides expression for diceStd only. vals holds the literal list
// for diceCsv.
type diceNode struct {
	kind diceKind
	left Node
	right Node
	vals []int
	pos  int
}

func (n *diceNode) String() string {
	left := ""
	if n.left != nil {
		left = n.left.String()
	}
	switch n.kind {
	case dicePercent:
		return left + "d%"
	case diceD66:
		return left + "D66"
	case diceFudge:
		return left + "dF"
	case diceCsv:
		parts := make([]string, len(n.vals))
		for i, v := range n.vals {
			parts[i] = strconv.Itoa(v)
		}
		return left + "d[" + strings.Join(parts, ",") + "]"
	default:
		right := ""
		if n.right != nil {
			right = n.right.String()
		}
		return left + "d" + right
	}
}

func (n *diceNode) Eval(ctx context.Context, ev *Evaluator) (*RollResult, error) {
	ndice, leftRes, err := totalOrDefault(ctx, ev, n.left, 1)
	if err != nil {
		return nil, err
	}
	if ndice < 0 || ndice > 1000 {
		return nil, NewFormatError(fmt.Sprintf("dice count %d outside [0,1000]", ndice), n.String(), n.pos)
	}

	switch n.kind {
	case dicePercent:
		dice, err := ev.Dice.RollPolyhedral(ctx, ndice, 100)
		if err != nil {
			return nil, err
		}
		return &RollResult{Expression: n.String(), OpType: OpRollPercent, Results: dice, Left: leftRes}, nil

	case diceD66:
		dice, err := ev.Dice.RollD66(ctx, ndice)
		if err != nil {
			return nil, err
		}
		discarded := make([]*RolledDie, 0, 2*len(dice))
		for _, d := range dice {
			discarded = append(discarded, d.From...)
		}
		return &RollResult{Expression: n.String(), OpType: OpRollD66, Results: dice, Discarded: discarded, Left: leftRes}, nil

	case diceFudge:
		dice, err := ev.Dice.RollFudge(ctx, ndice)
		if err != nil {
			return nil, err
		}
		return &RollResult{Expression: n.String(), OpType: OpRollFudge, Results: dice, Left: leftRes}, nil

	case diceCsv:
		dice, err := ev.Dice.RollVals(ctx, ndice, n.vals)
		if err != nil {
			return nil, err
		}
		return &RollResult{Expression: n.String(), OpType: OpRollVals, Results: dice, Left: leftRes}, nil

	default: // diceStd
		nsides, rightRes, err := totalOrDefault(ctx, ev, n.right, 0)
		if err != nil {
			return nil, err
		}
		if nsides < 2 || nsides > 100000 {
			return nil, NewFormatError(fmt.Sprintf("die size %d outside [2,100000]", nsides), n.String(), n.pos)
		}
		dice, err := ev.Dice.RollPolyhedral(ctx, ndice, nsides)
		if err != nil {
			return nil, err
		}
		return &RollResult{Expression: n.String(), OpType: OpRollDice, Results: dice, Left: leftRes, Right: rightRes}, nil
	}
}
