package dicecore

import (
	"context"
	"errors"
	"testing"
)

func TestRollBudget_ChargesWithinLimit(t *testing.T) {
	ctx := WithRollBudget(context.Background(), 10)
	if err := chargeRolls(ctx, 4); err != nil {
		t.Fatalf("chargeRolls(4) error: %v", err)
	}
	if err := chargeRolls(ctx, 6); err != nil {
		t.Fatalf("chargeRolls(6) error: %v", err)
	}
	if got := RollsSpent(ctx); got != 10 {
		t.Errorf("RollsSpent() = %d, want 10", got)
	}
}

func TestRollBudget_RejectsOverLimit(t *testing.T) {
	ctx := WithRollBudget(context.Background(), 5)
	if err := chargeRolls(ctx, 3); err != nil {
		t.Fatalf("chargeRolls(3) error: %v", err)
	}
	err := chargeRolls(ctx, 3)
	if !errors.Is(err, ErrMaxRolls) {
		t.Fatalf("chargeRolls(3) again = %v, want ErrMaxRolls", err)
	}
	// the rejected charge must not be partially applied.
	if got := RollsSpent(ctx); got != 3 {
		t.Errorf("RollsSpent() = %d, want 3 (rejected charge not applied)", got)
	}
}

func TestRollBudget_UngovernedWithoutContext(t *testing.T) {
	if err := chargeRolls(context.Background(), 1_000_000); err != nil {
		t.Fatalf("chargeRolls without a budget should never fail, got %v", err)
	}
	if got := RollsSpent(context.Background()); got != 0 {
		t.Errorf("RollsSpent() without a budget = %d, want 0", got)
	}
}
