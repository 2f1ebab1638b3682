package fabric

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/danieljhkim/aoc/internal/claims"
)

// Accumulate builds a Fabric holding every claim in list exactly once.
//
// With workers > 1 the claims are split into contiguous shards, each
// accumulated into a private Fabric by its own goroutine, and the shards are
// merged by summing counts. The result is identical to the sequential path.
// ctx is checked between claims; a cancelled context returns ctx.Err().
func Accumulate(ctx context.Context, list []claims.Claim, workers int) (*Fabric, error) {
	if workers <= 1 || len(list) < 2 {
		return accumulateShard(ctx, list)
	}
	if workers > len(list) {
		workers = len(list)
	}

	shards := make([]*Fabric, workers)
	g, gctx := errgroup.WithContext(ctx)
	size := (len(list) + workers - 1) / workers

	for i := 0; i < workers; i++ {
		lo := i * size
		hi := min(lo+size, len(list))
		if lo >= hi {
			continue
		}
		g.Go(func() error {
			shard, err := accumulateShard(gctx, list[lo:hi])
			if err != nil {
				return err
			}
			shards[i] = shard
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	merged := New()
	for _, shard := range shards {
		if shard != nil {
			merged.Merge(shard)
		}
	}
	return merged, nil
}

func accumulateShard(ctx context.Context, list []claims.Claim) (*Fabric, error) {
	f := New()
	for _, claim := range list {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		f.AddClaim(claim)
	}
	return f, nil
}
