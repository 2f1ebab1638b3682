package fabric

import (
	"testing"

	"github.com/danieljhkim/aoc/internal/claims"
)

var exampleClaims = []claims.Claim{
	{ID: 1, Left: 1, Top: 3, Width: 4, Height: 4},
	{ID: 2, Left: 3, Top: 1, Width: 4, Height: 4},
	{ID: 3, Left: 5, Top: 5, Width: 2, Height: 2},
}

func fabricOf(list []claims.Claim) *Fabric {
	f := New()
	for _, c := range list {
		f.AddClaim(c)
	}
	return f
}

func TestFabric_Empty(t *testing.T) {
	f := New()

	if got := f.MultipleClaims(); got != 0 {
		t.Errorf("MultipleClaims() = %d, want 0", got)
	}
	if got := f.Count(claims.Coordinate{X: 3, Y: 3}); got != 0 {
		t.Errorf("Count() on unseen cell = %d, want 0", got)
	}
	if got := f.Cells(); got != 0 {
		t.Errorf("Cells() = %d, want 0", got)
	}
}

func TestFabric_Add(t *testing.T) {
	f := fabricOf(exampleClaims)

	t.Run("overlapping cells counted twice", func(t *testing.T) {
		for _, c := range []claims.Coordinate{{X: 3, Y: 3}, {X: 4, Y: 3}, {X: 3, Y: 4}, {X: 4, Y: 4}} {
			if got := f.Count(c); got != 2 {
				t.Errorf("Count(%v) = %d, want 2", c, got)
			}
		}
	})

	t.Run("single-claim cells counted once", func(t *testing.T) {
		for _, c := range []claims.Coordinate{{X: 1, Y: 3}, {X: 6, Y: 1}, {X: 5, Y: 5}, {X: 6, Y: 6}} {
			if got := f.Count(c); got != 1 {
				t.Errorf("Count(%v) = %d, want 1", c, got)
			}
		}
	})

	t.Run("untouched cells are not stored", func(t *testing.T) {
		if got := f.Count(claims.Coordinate{X: 0, Y: 0}); got != 0 {
			t.Errorf("Count(0,0) = %d, want 0", got)
		}
		// 16 + 16 - 4 shared + 4
		if got := f.Cells(); got != 32 {
			t.Errorf("Cells() = %d, want 32", got)
		}
	})
}

func TestFabric_MultipleClaims(t *testing.T) {
	tests := []struct {
		name string
		list []claims.Claim
		want int
	}{
		{"example", exampleClaims, 4},
		{"single cell", []claims.Claim{{ID: 1, Width: 1, Height: 1}}, 0},
		{"identical claims", []claims.Claim{
			{ID: 1, Width: 2, Height: 2},
			{ID: 2, Width: 2, Height: 2},
		}, 4},
		{"triple overlap counted once", []claims.Claim{
			{ID: 1, Width: 1, Height: 1},
			{ID: 2, Width: 1, Height: 1},
			{ID: 3, Width: 1, Height: 1},
		}, 1},
		{"adjacent claims do not overlap", []claims.Claim{
			{ID: 1, Left: 0, Top: 0, Width: 2, Height: 2},
			{ID: 2, Left: 2, Top: 0, Width: 2, Height: 2},
		}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := fabricOf(tt.list).MultipleClaims(); got != tt.want {
				t.Errorf("MultipleClaims() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestFabric_UniqueClaim(t *testing.T) {
	f := fabricOf(exampleClaims)

	want := map[int]bool{1: false, 2: false, 3: true}
	for _, c := range exampleClaims {
		if got := f.UniqueClaim(c.Coordinates()); got != want[c.ID] {
			t.Errorf("UniqueClaim(#%d) = %v, want %v", c.ID, got, want[c.ID])
		}
	}
}

func TestFabric_UniqueClaim_StopsAtFirstOverlap(t *testing.T) {
	f := fabricOf([]claims.Claim{
		{ID: 1, Width: 1, Height: 1},
		{ID: 2, Width: 1, Height: 1},
	})

	visited := 0
	seq := func(yield func(claims.Coordinate) bool) {
		for _, c := range []claims.Coordinate{{X: 0, Y: 0}, {X: 5, Y: 5}, {X: 6, Y: 6}} {
			visited++
			if !yield(c) {
				return
			}
		}
	}

	if f.UniqueClaim(seq) {
		t.Fatal("UniqueClaim() = true, want false")
	}
	if visited != 1 {
		t.Errorf("visited %d coordinates, want 1", visited)
	}
}

func TestFabric_Coverage(t *testing.T) {
	f := New()
	area := 0
	for _, c := range exampleClaims {
		f.AddClaim(c)
		area += c.Area()
		if got := f.Coverage(); got != area {
			t.Errorf("after #%d Coverage() = %d, want %d", c.ID, got, area)
		}
	}
}

func TestFabric_MultipleClaimsMonotonic(t *testing.T) {
	list := []claims.Claim{
		{ID: 1, Left: 0, Top: 0, Width: 5, Height: 5},
		{ID: 2, Left: 20, Top: 20, Width: 2, Height: 2},
		{ID: 3, Left: 3, Top: 3, Width: 5, Height: 5},
		{ID: 4, Left: 0, Top: 0, Width: 1, Height: 1},
		{ID: 5, Left: 4, Top: 0, Width: 10, Height: 10},
	}

	f := New()
	prev := 0
	for _, c := range list {
		f.AddClaim(c)
		got := f.MultipleClaims()
		if got < prev {
			t.Errorf("MultipleClaims() decreased from %d to %d after #%d", prev, got, c.ID)
		}
		prev = got
	}
}

func TestFabric_Merge(t *testing.T) {
	left := fabricOf(exampleClaims[:1])
	right := fabricOf(exampleClaims[1:])

	left.Merge(right)
	whole := fabricOf(exampleClaims)

	if got, want := left.MultipleClaims(), whole.MultipleClaims(); got != want {
		t.Errorf("merged MultipleClaims() = %d, want %d", got, want)
	}
	if got, want := left.Coverage(), whole.Coverage(); got != want {
		t.Errorf("merged Coverage() = %d, want %d", got, want)
	}
	if got := right.Coverage(); got != 20 {
		t.Errorf("Merge modified its argument: Coverage() = %d, want 20", got)
	}
}
