package engine

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEngine_Solve(t *testing.T) {
	tests := []struct {
		day   int
		file  string
		input string
		title string
		partA string
		partB string
	}{
		{1, "day01.txt", day1Input, "Chronal Calibration", "4", "10"},
		{2, "day02.txt", day2Input, "Inventory Management System", "0", "fgij"},
		{3, "day03.txt", day3Input, "No Matter How You Slice It", "4", "3"},
	}

	for _, tt := range tests {
		t.Run(tt.title, func(t *testing.T) {
			env := newTestEnv(t, 2)
			env.fs.WriteFile(tt.file, []byte(tt.input))

			res, err := env.engine.Solve(context.Background(), &SolveRequest{Day: tt.day, InputPath: tt.file})
			require.NoError(t, err)

			assert.Equal(t, tt.day, res.Day)
			assert.Equal(t, tt.title, res.Title)
			a, b := res.Answers()
			assert.Equal(t, tt.partA, a)
			assert.Equal(t, tt.partB, b)
		})
	}
}

func TestEngine_Solve_UnknownDay(t *testing.T) {
	env := newTestEnv(t, 1)

	_, err := env.engine.Solve(context.Background(), &SolveRequest{Day: 4, InputPath: "day04.txt"})
	assert.ErrorIs(t, err, ErrUnknownPuzzle)
}

func TestDays(t *testing.T) {
	assert.Equal(t, []int{1, 2, 3}, Days())
	assert.Equal(t, "No Matter How You Slice It", Title(3))
	assert.Empty(t, Title(25))
}

func TestSolveResult_Answers_Empty(t *testing.T) {
	a, b := (&SolveResult{}).Answers()
	assert.Empty(t, a)
	assert.Empty(t, b)
}
