package dicecore

import (
	"context"
	"errors"
	"testing"
)

func TestPreRolledRoller_Roll(t *testing.T) {
	r := NewPreRolledRoller([]int{3, 6, 1})
	got, err := r.Roll(context.Background(), 3, 6, 1, DieTypePolyhedral)
	if err != nil {
		t.Fatalf("Roll() error: %v", err)
	}
	want := []int{3, 6, 1}
	for i, v := range want {
		if got[i] != v {
			t.Errorf("Roll()[%d] = %d, want %d", i, got[i], v)
		}
	}
	if r.Remaining() != 0 {
		t.Errorf("Remaining() = %d, want 0", r.Remaining())
	}
}

func TestPreRolledRoller_ExhaustedError(t *testing.T) {
	r := NewPreRolledRoller([]int{1})
	_, err := r.Roll(context.Background(), 2, 6, 1, DieTypePolyhedral)
	var rerr *RollerError
	if !errors.As(err, &rerr) || rerr.Kind != RollerErrorExhausted {
		t.Fatalf("got %v, want an Exhausted RollerError", err)
	}
}

func TestPreRolledRoller_OutOfRangeError(t *testing.T) {
	r := NewPreRolledRoller([]int{7})
	_, err := r.Roll(context.Background(), 1, 6, 1, DieTypePolyhedral)
	var rerr *RollerError
	if !errors.As(err, &rerr) || rerr.Kind != RollerErrorOutOfRange {
		t.Fatalf("got %v, want an OutOfRange RollerError", err)
	}
}

func TestPreRolledRoller_RollValsRejectsUnlistedValue(t *testing.T) {
	r := NewPreRolledRoller([]int{9})
	_, err := r.RollVals(context.Background(), 1, []int{1, 2, 5}, DieTypeNVals)
	var rerr *RollerError
	if !errors.As(err, &rerr) || rerr.Kind != RollerErrorOutOfRange {
		t.Fatalf("got %v, want an OutOfRange RollerError", err)
	}
}

func TestRNGRoller_RespectsNSidesAndMin(t *testing.T) {
	r := NewRNGRollerWithSource(fixedSource(0))
	for i := 0; i < 50; i++ {
		out, err := r.Roll(context.Background(), 1, 20, 1, DieTypePolyhedral)
		if err != nil {
			t.Fatalf("Roll() error: %v", err)
		}
		if out[0] < 1 || out[0] > 20 {
			t.Fatalf("Roll() = %d, want in [1,20]", out[0])
		}
	}
}

func TestRNGRoller_ValidatesArgs(t *testing.T) {
	r := NewRNGRoller()
	if _, err := r.Roll(context.Background(), -1, 6, 1, DieTypePolyhedral); err == nil {
		t.Error("expected an error for negative ndice")
	}
	if _, err := r.Roll(context.Background(), 1, 1, 1, DieTypePolyhedral); err == nil {
		t.Error("expected an error for nsides below 2")
	}
}

func TestCallbackRoller_DelegatesToRollFn(t *testing.T) {
	called := false
	c := NewCallbackRoller(
		func(ctx context.Context, ndice, nsides, min int, dieType DieType) ([]int, error) {
			called = true
			out := make([]int, ndice)
			for i := range out {
				out[i] = min
			}
			return out, nil
		},
		nil,
	)
	out, err := c.Roll(context.Background(), 3, 6, 1, DieTypePolyhedral)
	if err != nil {
		t.Fatalf("Roll() error: %v", err)
	}
	if !called {
		t.Error("RollFn was not invoked")
	}
	if len(out) != 3 || out[0] != 1 {
		t.Errorf("Roll() = %v, want [1,1,1]", out)
	}
}

// fixedSource is a deterministic math/rand.Source for tests that only need
// the result to land in range, not any particular value.
type fixedSource int64

func (s fixedSource) Int63() int64 { return int64(s) }
func (s fixedSource) Seed(int64)   {}
