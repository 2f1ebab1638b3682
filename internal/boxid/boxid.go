// Package boxid solves the 2018 day 2 inventory puzzle over box ids.
package boxid

import (
	"errors"
	"strings"
)

// ErrNoMatch indicates no two ids differ by exactly one character.
var ErrNoMatch = errors.New("no ids differ by exactly one character")

// Checksum multiplies the number of ids containing some letter exactly twice
// by the number containing some letter exactly three times.
func Checksum(ids []string) int {
	return countWithRepeat(ids, 2) * countWithRepeat(ids, 3)
}

// countWithRepeat returns how many ids have at least one rune occurring
// exactly n times.
func countWithRepeat(ids []string, n int) int {
	total := 0
	for _, id := range ids {
		counts := make(map[rune]int)
		for _, r := range id {
			counts[r]++
		}
		for _, c := range counts {
			if c == n {
				total++
				break
			}
		}
	}
	return total
}

// CommonLetters finds the first pair of ids, in input order, that differ in
// exactly one position and returns the characters they share.
// Ids of different lengths are never compared.
func CommonLetters(ids []string) (string, error) {
	for i := 0; i < len(ids); i++ {
		a := []rune(ids[i])
		for j := i + 1; j < len(ids); j++ {
			b := []rune(ids[j])
			if len(a) != len(b) {
				continue
			}
			if differingPositions(a, b) == 1 {
				return sameLetters(a, b), nil
			}
		}
	}
	return "", ErrNoMatch
}

func differingPositions(a, b []rune) int {
	n := 0
	for i := range a {
		if a[i] != b[i] {
			n++
		}
	}
	return n
}

func sameLetters(a, b []rune) string {
	var sb strings.Builder
	for i := range a {
		if a[i] == b[i] {
			sb.WriteRune(a[i])
		}
	}
	return sb.String()
}
