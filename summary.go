package dicecore

import (
	"fmt"
	"strings"
)

// RollSummary is the caller-facing projection of an evaluated expression
// tree: the totals and flag counts callers usually want, plus the full
// DetailedResults tree for anyone who needs provenance.
type RollSummary struct {
	Total            int          `json:"total"`
	SuccessCount     int          `json:"successCount,omitempty"`
	FailureCount     int          `json:"failureCount,omitempty"`
	CritSuccessCount int          `json:"critSuccessCount,omitempty"`
	CritFailureCount int          `json:"critFailureCount,omitempty"`
	Results          []*RolledDie `json:"results,omitempty"`
	Discarded        []*RolledDie `json:"discarded,omitempty"`
	Expression       string       `json:"expression,omitempty"`
	DetailedResults  *RollResult  `json:"detailedResults,omitempty"`
}

// NewRollSummary projects root's totals/flags/pools into a RollSummary.
func NewRollSummary(root *RollResult) *RollSummary {
	return &RollSummary{
		Total:            root.Total(),
		SuccessCount:     root.SuccessCount(),
		FailureCount:     root.FailureCount(),
		CritSuccessCount: root.CritSuccessCount(),
		CritFailureCount: root.CritFailureCount(),
		Results:          root.Results,
		Discarded:        root.Discarded,
		Expression:       root.Expression,
		DetailedResults:  root,
	}
}

// String renders the compact one-line form, e.g. "4d6kh3 = 14".
func (s *RollSummary) String() string {
	return fmt.Sprintf("%s = %d", s.Expression, s.Total)
}

// Tree renders an indented dump of DetailedResults, one line per node, for
// debugging and the diceroll CLI's "tree" output format.
func (s *RollSummary) Tree() string {
	var b strings.Builder
	dumpResultNode(&b, s.DetailedResults, 0)
	return b.String()
}

func dumpResultNode(b *strings.Builder, r *RollResult, depth int) {
	if r == nil {
		return
	}
	fmt.Fprintf(b, "%s%s (%s) = %d\n", strings.Repeat("  ", depth), exprOrEmpty(r.Expression), r.OpType, r.Total())
	if r.Left != nil {
		dumpResultNode(b, r.Left, depth+1)
	}
	if r.Right != nil {
		dumpResultNode(b, r.Right, depth+1)
	}
}

func exprOrEmpty(s string) string {
	if s == "" {
		return "<empty>"
	}
	return s
}
