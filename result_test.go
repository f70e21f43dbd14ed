package dicecore

import "testing"

func pool(results ...int) *RollResult {
	dice := make([]*RolledDie, len(results))
	for i, r := range results {
		dice[i] = NewPolyhedralDie(r, 6)
	}
	return &RollResult{OpType: OpRollDice, Results: dice}
}

func TestRollResult_Total(t *testing.T) {
	if got := pool(3, 4, 5).Total(); got != 12 {
		t.Errorf("Total() = %d, want 12", got)
	}
	var nilResult *RollResult
	if got := nilResult.Total(); got != 0 {
		t.Errorf("nil RollResult.Total() = %d, want 0", got)
	}
}

func TestAdd_ConcatenatesPools(t *testing.T) {
	a, b := pool(1, 2), pool(3, 4)
	sum := Add("1,2+3,4", a, b)
	if sum.Total() != 10 {
		t.Errorf("Add total = %d, want 10", sum.Total())
	}
	if len(sum.Results) != 4 {
		t.Errorf("Add results = %d, want 4", len(sum.Results))
	}
	if sum.Left != a || sum.Right != b {
		t.Error("Add should attach its operands as Left/Right")
	}
}

func TestSub_MovesRightToDiscarded(t *testing.T) {
	a, b := pool(10), pool(3, 4)
	diff := Sub("10-3-4", a, b)
	if diff.Total() != 3 {
		t.Errorf("Sub total = %d, want 3 (10-7)", diff.Total())
	}
	if len(diff.Results) != 2 {
		t.Fatalf("Sub should keep a's results plus one synthetic negative, got %d", len(diff.Results))
	}
	if len(diff.Discarded) != 2 {
		t.Errorf("Sub should discard all of b's results, got %d", len(diff.Discarded))
	}
}

func TestMul_CollapsesToSingleValue(t *testing.T) {
	a, b := pool(2, 3), pool(4)
	prod := Mul("(2,3)*4", a, b)
	if prod.Total() != 20 {
		t.Errorf("Mul total = %d, want 20", prod.Total())
	}
	if len(prod.Results) != 1 {
		t.Errorf("Mul should collapse to one result, got %d", len(prod.Results))
	}
	if len(prod.Discarded) != 3 {
		t.Errorf("Mul should discard every original result, got %d", len(prod.Discarded))
	}
}

func TestCommaJoin_SplicesExistingCommaChains(t *testing.T) {
	a := pool(1, 2)
	b := pool(3)
	first := CommaJoin("1,2,3", a, b)
	if len(first.Results) != 2 {
		t.Fatalf("first comma join should total each side to one value, got %d results", len(first.Results))
	}

	c := pool(4)
	second := CommaJoin("1,2,3,4", first, c)
	if len(second.Results) != 3 {
		t.Errorf("chained comma join should splice rather than re-nest, got %d results", len(second.Results))
	}
}

func TestAggregate_CollapsesInnerPool(t *testing.T) {
	inner := pool(2, 3, 4)
	agg := Aggregate("{2,3,4}", inner)
	if agg.Total() != 9 {
		t.Errorf("Aggregate total = %d, want 9", agg.Total())
	}
	if len(agg.Results) != 1 {
		t.Errorf("Aggregate should collapse to one result, got %d", len(agg.Results))
	}
	if len(agg.Discarded) != 3 {
		t.Errorf("Aggregate should discard the originals, got %d", len(agg.Discarded))
	}
}

func TestRollResult_FlagCounts(t *testing.T) {
	r := pool(1, 2, 3)
	r.Results[0].Success = true
	r.Results[1].CritSuccess = true
	r.Results[2].Failure = true

	if got := r.SuccessCount(); got != 2 {
		t.Errorf("SuccessCount() = %d, want 2 (plain success + crit success)", got)
	}
	if got := r.CritSuccessCount(); got != 1 {
		t.Errorf("CritSuccessCount() = %d, want 1", got)
	}
	if got := r.FailureCount(); got != 1 {
		t.Errorf("FailureCount() = %d, want 1", got)
	}
}
