// Package frequency solves the 2018 day 1 calibration puzzle: a list of
// signed frequency changes applied, and then cycled, starting from 0.
package frequency

import (
	"errors"
	"strconv"
	"strings"
)

var (
	// ErrNoChanges indicates the input held no frequency changes.
	ErrNoChanges = errors.New("no frequency changes")

	// ErrNoRepeat indicates that cycling the changes never reaches a frequency twice.
	ErrNoRepeat = errors.New("frequency never repeats")
)

// Parse converts lines such as "+3" or "-12" into changes.
// Lines that are not integers are skipped.
func Parse(lines []string) []int {
	changes := make([]int, 0, len(lines))
	for _, line := range lines {
		n, err := strconv.Atoi(strings.TrimSpace(line))
		if err != nil {
			continue
		}
		changes = append(changes, n)
	}
	return changes
}

// Sum returns the frequency after applying every change once.
func Sum(changes []int) int {
	total := 0
	for _, c := range changes {
		total += c
	}
	return total
}

// FirstRepeat cycles through changes starting at frequency 0 and returns the
// first frequency that is reached twice. The starting 0 counts as reached.
func FirstRepeat(changes []int) (int, error) {
	if len(changes) == 0 {
		return 0, ErrNoChanges
	}

	// maxPasses bounds the search. Every pass shifts all prefix sums by the
	// drift, so once the spread of one pass is exhausted nothing new can meet.
	lo, hi, freq := 0, 0, 0
	for _, c := range changes {
		freq += c
		lo = min(lo, freq)
		hi = max(hi, freq)
	}
	drift := freq
	maxPasses := 1
	if drift != 0 {
		maxPasses = (hi-lo)/abs(drift) + 2
	}

	visited := map[int]struct{}{}
	freq = 0
	for pass := 0; pass < maxPasses; pass++ {
		for _, c := range changes {
			if _, ok := visited[freq]; ok {
				return freq, nil
			}
			visited[freq] = struct{}{}
			freq += c
		}
	}
	if _, ok := visited[freq]; ok {
		return freq, nil
	}
	return 0, ErrNoRepeat
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
