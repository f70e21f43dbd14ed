package dicecore

import "testing"

func TestCompareOp_String(t *testing.T) {
	tests := []struct {
		name string
		op   CompareOp
		want string
	}{
		{"equal", EQL, "="},
		{"less", LSS, "<"},
		{"greater", GTR, ">"},
		{"lessEqual", LEQ, "<="},
		{"greaterEqual", GEQ, ">="},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.op.String(); got != tt.want {
				t.Errorf("CompareOp.String() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestLookupCompareOp(t *testing.T) {
	tests := []struct {
		sym  string
		want CompareOp
	}{
		{"", EQL},
		{"=", EQL},
		{"<", LSS},
		{">", GTR},
		{"<=", LEQ},
		{">=", GEQ},
	}
	for _, tt := range tests {
		t.Run(tt.sym, func(t *testing.T) {
			if got := LookupCompareOp(tt.sym); got != tt.want {
				t.Errorf("LookupCompareOp(%q) = %v, want %v", tt.sym, got, tt.want)
			}
		})
	}
}

func TestCompareOp_Match(t *testing.T) {
	tests := []struct {
		name   string
		op     CompareOp
		value  int
		target int
		want   bool
	}{
		{"eqTrue", EQL, 4, 4, true},
		{"eqFalse", EQL, 4, 5, false},
		{"lssTrue", LSS, 3, 4, true},
		{"lssFalse", LSS, 4, 4, false},
		{"gtrTrue", GTR, 5, 4, true},
		{"leqBoundary", LEQ, 4, 4, true},
		{"geqBoundary", GEQ, 4, 4, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.op.Match(tt.value, tt.target); got != tt.want {
				t.Errorf("Match(%d,%d) = %v, want %v", tt.value, tt.target, got, tt.want)
			}
		})
	}
}
