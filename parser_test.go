package dicecore

import (
	"errors"
	"testing"
)

func TestParse_CanonicalString(t *testing.T) {
	tests := []struct {
		name string
		expr string
		want string
	}{
		{"dice", "4d6", "4d6"},
		{"implicitCount", "d20", "d20"},
		{"capitalD", "D20", "d20"},
		{"d66", "D66", "D66"},
		{"percent", "d%", "d%"},
		{"fudge", "2dF", "2dF"},
		{"valueList", "3d[1,2,5]", "3d[1,2,5]"},
		{"keepHigh", "4d6kh2", "4d6kh2"},
		{"keepAlias", "4d6k2", "4d6k2"},
		{"dropLow", "4d6-l1", "4d6-l1"},
		{"dropCompare", "4d6-<3", "4d6-<3"},
		{"explode", "6d6!", "6d6!"},
		{"compoundOnce", "6d6!!o", "6d6!!o"},
		{"penetrate", "6d6p", "6d6p"},
		{"reroll", "4d6r1", "4d6r1"},
		{"rerollCompare", "4d6r<2", "4d6r<2"},
		{"countPlain", "4d6#>3", "4d6#>3"},
		{"countSuccess", "4d6#s", "4d6#s"},
		{"sortAsc", "4d6s", "4d6s"},
		{"sortDesc", "4d6sd", "4d6sd"},
		{"clampCeiling", "4d6C>4", "4d6C>4"},
		{"group", "(2d6+1)!", "(2d6+1)!"},
		{"wholeEmpty", "", ""},
		{"whitespace", " 4 d 6 ", "4d6"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n, err := Parse(tt.expr)
			if err != nil {
				t.Fatalf("Parse(%q) error: %v", tt.expr, err)
			}
			if got := n.String(); got != tt.want {
				t.Errorf("Parse(%q).String() = %q, want %q", tt.expr, got, tt.want)
			}
		})
	}
}

func TestParse_TrailingInputIsFormatError(t *testing.T) {
	_, err := Parse("4d6 foo")
	var ferr *FormatError
	if !errors.As(err, &ferr) {
		t.Fatalf("Parse(\"4d6 foo\") = %v, want a FormatError", err)
	}
}

func TestParse_UnterminatedParenIsFormatError(t *testing.T) {
	_, err := Parse("(2d6+1")
	var ferr *FormatError
	if !errors.As(err, &ferr) {
		t.Fatalf("Parse(\"(2d6+1\") = %v, want a FormatError", err)
	}
}

func TestParse_MissingDieSizeIsFormatError(t *testing.T) {
	_, err := Parse("4d")
	var ferr *FormatError
	if !errors.As(err, &ferr) {
		t.Fatalf("Parse(\"4d\") = %v, want a FormatError", err)
	}
}

func TestParse_UnterminatedValueListIsFormatError(t *testing.T) {
	_, err := Parse("3d[1,2")
	var ferr *FormatError
	if !errors.As(err, &ferr) {
		t.Fatalf("Parse(\"3d[1,2\") = %v, want a FormatError", err)
	}
}
