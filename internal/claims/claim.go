// Package claims models the rectangular fabric claims of the 2018 day 3 puzzle.
//
// A claim is parsed from a record such as "#123 @ 3,2: 5x4" and covers the
// cells x in [Left, Left+Width) and y in [Top, Top+Height). Claims are plain
// values; enumerating their cells never modifies them.
package claims

import (
	"fmt"
	"iter"
)

// Coordinate identifies one unit cell of the fabric.
// It is comparable and can be used directly as a map key.
type Coordinate struct {
	X int
	Y int
}

// String returns the coordinate as "x,y".
func (c Coordinate) String() string {
	return fmt.Sprintf("%d,%d", c.X, c.Y)
}

// Claim is an axis-aligned rectangle of fabric identified by ID.
type Claim struct {
	ID     int `json:"id"`
	Left   int `json:"left"`
	Top    int `json:"top"`
	Width  int `json:"width"`
	Height int `json:"height"`
}

// Area returns the number of cells covered by the claim.
func (c Claim) Area() int {
	return c.Width * c.Height
}

// Coordinates returns the cells covered by the claim in row-major order,
// starting at (Left, Top). Each call returns a fresh sequence.
func (c Claim) Coordinates() iter.Seq[Coordinate] {
	return func(yield func(Coordinate) bool) {
		for y := c.Top; y < c.Top+c.Height; y++ {
			for x := c.Left; x < c.Left+c.Width; x++ {
				if !yield(Coordinate{X: x, Y: y}) {
					return
				}
			}
		}
	}
}

// String formats the claim in its input record form.
func (c Claim) String() string {
	return fmt.Sprintf("#%d @ %d,%d: %dx%d", c.ID, c.Left, c.Top, c.Width, c.Height)
}
