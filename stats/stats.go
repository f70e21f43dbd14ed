/*
Package stats drives a parsed expression through repeated evaluation and
summarizes the resulting distribution of totals: mean, population standard
deviation, min, max, trial count, and a value histogram.
*/
package stats

import (
	"context"
	"math"
	"sort"

	"github.com/travis-g/dicecore"
)

// DefaultTrials is the number of repeated evaluations Run performs when the
// caller doesn't specify a count.
const DefaultTrials = 1000

// Report summarizes Run's repeated evaluations of a single expression.
type Report struct {
	Expression string         `json:"expression"`
	Trials     int            `json:"trials"`
	Mean       float64        `json:"mean"`
	StdDev     float64        `json:"stddev"`
	Min        int            `json:"min"`
	Max        int            `json:"max"`
	Histogram  map[int]int    `json:"histogram"`
	Totals     []int          `json:"-"`
}

// Run evaluates root against a fresh Evaluator trials times (0 uses
// DefaultTrials) and reports the distribution of RollSummary.Total values.
// roller is typically an *dicecore.RNGRoller; a PreRolledRoller would
// exhaust after one or two trials and isn't useful here.
func Run(ctx context.Context, expression string, roller dicecore.Roller, trials int) (*Report, error) {
	if trials <= 0 {
		trials = DefaultTrials
	}
	root, err := dicecore.Parse(expression)
	if err != nil {
		return nil, err
	}
	ev := dicecore.NewEvaluator(roller)

	totals := make([]int, trials)
	histogram := make(map[int]int)
	sum := 0
	min, max := math.MaxInt64, math.MinInt64
	for i := 0; i < trials; i++ {
		summary, err := ev.Eval(ctx, root)
		if err != nil {
			return nil, err
		}
		t := summary.Total
		totals[i] = t
		histogram[t]++
		sum += t
		if t < min {
			min = t
		}
		if t > max {
			max = t
		}
	}

	mean := float64(sum) / float64(trials)
	var variance float64
	for _, t := range totals {
		d := float64(t) - mean
		variance += d * d
	}
	variance /= float64(trials)

	return &Report{
		Expression: expression,
		Trials:     trials,
		Mean:       mean,
		StdDev:     round2(math.Sqrt(variance)),
		Min:        min,
		Max:        max,
		Histogram:  histogram,
		Totals:     totals,
	}, nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// SortedValues returns the histogram's distinct totals in ascending order,
// for callers that want to render it deterministically.
func (r *Report) SortedValues() []int {
	vals := make([]int, 0, len(r.Histogram))
	for v := range r.Histogram {
		vals = append(vals, v)
	}
	sort.Ints(vals)
	return vals
}
