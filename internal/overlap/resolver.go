// Package overlap answers the two fabric questions: how many cells are
// claimed more than once, and which claim overlaps no other.
package overlap

import (
	"context"
	"errors"
	"fmt"

	"github.com/danieljhkim/aoc/internal/claims"
	"github.com/danieljhkim/aoc/internal/fabric"
)

// ErrNoUniqueClaim indicates that every claim overlaps at least one other.
var ErrNoUniqueClaim = errors.New("no unique claim found")

// Resolver holds a fully accumulated fabric together with the claims that
// built it, in parse order.
type Resolver struct {
	claims []claims.Claim
	fabric *fabric.Fabric
}

// New accumulates every claim into a fresh fabric exactly once.
// workers > 1 enables sharded accumulation.
func New(ctx context.Context, list []claims.Claim, workers int) (*Resolver, error) {
	f, err := fabric.Accumulate(ctx, list, workers)
	if err != nil {
		return nil, fmt.Errorf("failed to accumulate claims: %w", err)
	}
	return &Resolver{claims: list, fabric: f}, nil
}

// FromLines parses lines and accumulates the resulting claims.
func FromLines(ctx context.Context, lines []string, workers int) (*Resolver, error) {
	return New(ctx, claims.Parse(lines), workers)
}

// Overlapping returns the number of cells covered by two or more claims.
func (r *Resolver) Overlapping() int {
	return r.fabric.MultipleClaims()
}

// UniqueClaim returns the id of the first claim, in parse order, whose cells
// are covered by no other claim.
func (r *Resolver) UniqueClaim() (int, error) {
	for _, c := range r.claims {
		if r.fabric.UniqueClaim(c.Coordinates()) {
			return c.ID, nil
		}
	}
	return 0, ErrNoUniqueClaim
}
