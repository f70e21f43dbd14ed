package main

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/ryanuber/columnize"
	yaml "gopkg.in/yaml.v2"

	"github.com/travis-g/dicecore"
)

const delim = "|"

// formatSummary renders a RollSummary per the requested format, mirroring
// the teacher's own format switch in cmd/dice/command.
func formatSummary(format string, s *dicecore.RollSummary) (string, error) {
	switch strings.ToLower(format) {
	case "", "text":
		return s.String(), nil
	case "tree":
		return s.Tree(), nil
	case "table":
		return summaryTable(s)
	case "json":
		b, err := json.Marshal(s)
		if err != nil {
			return "", err
		}
		return string(b), nil
	case "yaml", "yml":
		b, err := yaml.Marshal(s)
		if err != nil {
			return "", err
		}
		return strings.TrimSpace(string(b)), nil
	default:
		return "", fmt.Errorf("requested format %q unhandled", format)
	}
}

func summaryTable(s *dicecore.RollSummary) (string, error) {
	rows := []string{
		fmt.Sprintf("expression %s %s", delim, s.Expression),
		fmt.Sprintf("total %s %d", delim, s.Total),
	}
	if s.SuccessCount > 0 {
		rows = append(rows, fmt.Sprintf("successes %s %d", delim, s.SuccessCount))
	}
	if s.FailureCount > 0 {
		rows = append(rows, fmt.Sprintf("failures %s %d", delim, s.FailureCount))
	}
	resultVals := make([]string, len(s.Results))
	for i, d := range s.Results {
		resultVals[i] = fmt.Sprintf("%d", d.Result)
	}
	rows = append(rows, fmt.Sprintf("results %s %s", delim, strings.Join(resultVals, ",")))
	return columnize.Format(rows, &columnize.Config{Delim: delim, Glue: "    ", Empty: "n/a"}), nil
}

// formatStatsReport renders a map of stats.Report fields the same way, for
// the stats subcommand.
func formatStatsReport(format string, data map[string]interface{}) (string, error) {
	switch strings.ToLower(format) {
	case "", "text", "table":
		keys := make([]string, 0, len(data))
		for k := range data {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		rows := make([]string, 0, len(keys))
		for _, k := range keys {
			rows = append(rows, fmt.Sprintf("%s %s %v", k, delim, data[k]))
		}
		return columnize.Format(rows, &columnize.Config{Delim: delim, Glue: "    ", Empty: "n/a"}), nil
	case "json":
		b, err := json.Marshal(data)
		if err != nil {
			return "", err
		}
		return string(b), nil
	case "yaml", "yml":
		b, err := yaml.Marshal(data)
		if err != nil {
			return "", err
		}
		return strings.TrimSpace(string(b)), nil
	default:
		return "", fmt.Errorf("requested format %q unhandled", format)
	}
}
