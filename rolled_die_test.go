package dicecore

import (
	"reflect"
	"testing"
)

func TestRolledDie_PotentialRange(t *testing.T) {
	tests := []struct {
		name    string
		die     *RolledDie
		wantMin int
		wantMax int
	}{
		{"polyhedral-d20", NewPolyhedralDie(11, 20), 1, 20},
		{"d66", NewD66Die(3, 4), 1, 66},
		{"fudge", NewFudgeDie(0, DefaultFudgeFaces), -1, 1},
		{"nvals", NewNValsDie(5, []int{1, 2, 5}), 1, 5},
		{"singleVal", NewSingleVal(7), 7, 7},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.die.MinPotential(); got != tt.wantMin {
				t.Errorf("MinPotential() = %d, want %d", got, tt.wantMin)
			}
			if got := tt.die.MaxPotential(); got != tt.wantMax {
				t.Errorf("MaxPotential() = %d, want %d", got, tt.wantMax)
			}
		})
	}
}

func TestRolledDie_IsUnaggregatable(t *testing.T) {
	if !NewSingleVal(3).IsUnaggregatable() {
		t.Error("a singleVal die should always be unaggregatable")
	}
	if NewPolyhedralDie(4, 6).IsUnaggregatable() {
		t.Error("a d6 is not unaggregatable")
	}
}

func TestRolledDie_Copy(t *testing.T) {
	orig := NewD66Die(2, 5)
	orig.Discarded = true
	c := orig.Copy()

	if !reflect.DeepEqual(orig, c) {
		t.Errorf("Copy() = %+v, want deep-equal to %+v", c, orig)
	}

	c.Discarded = false
	c.From[0] = NewPolyhedralDie(99, 6)
	if orig.Discarded != true {
		t.Error("mutating the copy's scalar fields mutated the original")
	}
	if orig.From[0].Result == 99 {
		t.Error("Copy() should copy the From slice, not alias it")
	}
}

func TestNewD66Die_RecordsBothSourceDiceDiscarded(t *testing.T) {
	d := NewD66Die(5, 6)
	if d.Result != 56 {
		t.Errorf("NewD66Die(5,6).Result = %d, want 56", d.Result)
	}
	if len(d.From) != 2 {
		t.Fatalf("NewD66Die should record 2 source dice, got %d", len(d.From))
	}
	for i, src := range d.From {
		if !src.Discarded {
			t.Errorf("source die %d should be marked Discarded", i)
		}
	}
}

func TestSortDice(t *testing.T) {
	dice := []*RolledDie{NewPolyhedralDie(3, 6), NewPolyhedralDie(1, 6), NewPolyhedralDie(5, 6)}

	asc := sortDice(dice, false)
	wantAsc := []int{1, 3, 5}
	for i, d := range asc {
		if d.Result != wantAsc[i] {
			t.Errorf("ascending[%d] = %d, want %d", i, d.Result, wantAsc[i])
		}
	}

	desc := sortDice(dice, true)
	wantDesc := []int{5, 3, 1}
	for i, d := range desc {
		if d.Result != wantDesc[i] {
			t.Errorf("descending[%d] = %d, want %d", i, d.Result, wantDesc[i])
		}
	}

	// sortDice must not mutate its input.
	if dice[0].Result != 3 {
		t.Error("sortDice mutated its input slice")
	}
}
