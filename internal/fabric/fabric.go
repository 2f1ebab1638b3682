// Package fabric provides a sparse coverage index over the claim grid.
//
// A Fabric maps each cell to the number of claims covering it. Cells that no
// claim touches are not stored and read as 0. Counts only grow while claims
// are being added; queries assume every claim has been added exactly once
// and return meaningless (but not erroneous) answers otherwise.
package fabric

import (
	"iter"

	"github.com/danieljhkim/aoc/internal/claims"
)

// Fabric counts how many claims cover each cell.
// A Fabric is not safe for concurrent use; see Accumulate for the sharded path.
type Fabric struct {
	claimed map[claims.Coordinate]int
}

// New creates an empty Fabric.
func New() *Fabric {
	return &Fabric{
		claimed: make(map[claims.Coordinate]int),
	}
}

// Add increments the count of every cell in coords by one.
func (f *Fabric) Add(coords iter.Seq[claims.Coordinate]) {
	for c := range coords {
		f.claimed[c]++
	}
}

// AddClaim adds all cells covered by claim.
func (f *Fabric) AddClaim(claim claims.Claim) {
	f.Add(claim.Coordinates())
}

// Count returns the number of claims covering c.
func (f *Fabric) Count(c claims.Coordinate) int {
	return f.claimed[c]
}

// MultipleClaims returns the number of cells covered by two or more claims.
func (f *Fabric) MultipleClaims() int {
	total := 0
	for _, n := range f.claimed {
		if n >= 2 {
			total++
		}
	}
	return total
}

// UniqueClaim reports whether every cell in coords is covered exactly once.
// It stops at the first cell covered more than once.
func (f *Fabric) UniqueClaim(coords iter.Seq[claims.Coordinate]) bool {
	for c := range coords {
		if f.claimed[c] != 1 {
			return false
		}
	}
	return true
}

// Cells returns the number of distinct cells covered at least once.
func (f *Fabric) Cells() int {
	return len(f.claimed)
}

// Coverage returns the sum of all cell counts, which equals the total area
// of the claims added so far.
func (f *Fabric) Coverage() int {
	total := 0
	for _, n := range f.claimed {
		total += n
	}
	return total
}

// Merge adds every count of other into f. other is left unchanged.
func (f *Fabric) Merge(other *Fabric) {
	for c, n := range other.claimed {
		f.claimed[c] += n
	}
}
