package dicecore

import (
	"context"
	"strings"
	"testing"
)

func TestRollSummary_String(t *testing.T) {
	ev := NewEvaluator(NewPreRolledRoller([]int{3, 4}))
	s, err := ev.Roll(context.Background(), "2d6")
	if err != nil {
		t.Fatalf("Roll() error: %v", err)
	}
	want := "2d6 = 7"
	if got := s.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestRollSummary_Tree(t *testing.T) {
	ev := NewEvaluator(NewPreRolledRoller([]int{3, 4, 1}))
	s, err := ev.Roll(context.Background(), "2d6+1")
	if err != nil {
		t.Fatalf("Roll() error: %v", err)
	}
	tree := s.Tree()
	if !strings.Contains(tree, "2d6+1") {
		t.Errorf("Tree() should include the root expression, got:\n%s", tree)
	}
	if !strings.Contains(tree, "2d6") {
		t.Errorf("Tree() should include the left child expression, got:\n%s", tree)
	}
}
