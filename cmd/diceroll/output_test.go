package main

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/travis-g/dicecore"
)

func sampleSummary(t *testing.T) *dicecore.RollSummary {
	t.Helper()
	ev := dicecore.NewEvaluator(dicecore.NewPreRolledRoller([]int{3, 4}))
	s, err := ev.Roll(context.Background(), "2d6")
	require.NoError(t, err)
	return s
}

func TestFormatSummary_Text(t *testing.T) {
	out, err := formatSummary("text", sampleSummary(t))
	require.NoError(t, err)
	assert.Equal(t, "2d6 = 7", out)
}

func TestFormatSummary_DefaultIsText(t *testing.T) {
	out, err := formatSummary("", sampleSummary(t))
	require.NoError(t, err)
	assert.Equal(t, "2d6 = 7", out)
}

func TestFormatSummary_JSON(t *testing.T) {
	out, err := formatSummary("json", sampleSummary(t))
	require.NoError(t, err)
	assert.Contains(t, out, `"total":7`)
}

func TestFormatSummary_Table(t *testing.T) {
	out, err := formatSummary("table", sampleSummary(t))
	require.NoError(t, err)
	assert.True(t, strings.Contains(out, "total") && strings.Contains(out, "7"))
}

func TestFormatSummary_UnknownFormatErrors(t *testing.T) {
	_, err := formatSummary("carrier-pigeon", sampleSummary(t))
	assert.Error(t, err)
}

func TestFormatStatsReport_Table(t *testing.T) {
	data := map[string]interface{}{"mean": 7.0, "trials": 100}
	out, err := formatStatsReport("table", data)
	require.NoError(t, err)
	assert.True(t, strings.Contains(out, "mean") && strings.Contains(out, "trials"))
}
