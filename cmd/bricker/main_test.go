package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/bricker/internal/bricks"
)

func TestParseBoard(t *testing.T) {
	rows, cols, err := parseBoard(nil)
	require.NoError(t, err)
	assert.Zero(t, rows)
	assert.Zero(t, cols)

	rows, cols, err = parseBoard([]string{"12", "6"})
	require.NoError(t, err)
	assert.Equal(t, 6, rows, "second argument is the row count")
	assert.Equal(t, 12, cols, "first argument is bricks per row")
}

func TestParseBoardRejectsNonPositive(t *testing.T) {
	for _, args := range [][]string{{"0", "3"}, {"4", "-1"}, {"x", "2"}} {
		_, _, err := parseBoard(args)
		assert.Error(t, err, "args %v", args)
	}
}

func TestSampleStrategiesRespectsBudget(t *testing.T) {
	report := sampleStrategies(2000, 2, 99, 3)

	total := 0
	for _, n := range report.Roots {
		total += n
	}
	assert.Equal(t, 2000, total)

	for leaves := range report.Leaves {
		assert.LessOrEqual(t, leaves, 2)
	}
	for depth := range report.Depths {
		assert.LessOrEqual(t, depth, 1)
	}
	assert.Len(t, report.Examples, 3)
	assert.Greater(t, report.Roots[bricks.KindBasic], report.Roots[bricks.KindDouble])
}

func TestSampleStrategiesSingleBehaviorHasNoDoubles(t *testing.T) {
	report := sampleStrategies(1000, 1, 5, 0)

	assert.Zero(t, report.Roots[bricks.KindDouble])
	assert.Equal(t, 1000, report.Leaves[1])
	assert.Empty(t, report.Examples)
}

func TestStrategyReportString(t *testing.T) {
	out := sampleStrategies(100, 3, 1, 1).String()

	assert.True(t, strings.HasPrefix(out, "Sampled 100 trees, 3 behaviors allowed"))
	for _, k := range bricks.Kinds {
		assert.Contains(t, out, k.String())
	}
	assert.Contains(t, out, "Examples:")
}

func TestPortOf(t *testing.T) {
	assert.Equal(t, "23234", portOf(":23234"))
	assert.Equal(t, "2222", portOf("0.0.0.0:2222"))
}
