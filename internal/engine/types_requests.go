package engine

// PuzzleRequest represents a request to solve one puzzle input.
type PuzzleRequest struct {
	// InputPath is the path to the puzzle input file
	InputPath string

	// Workers overrides the engine's accumulation shards when > 0 (fabric only)
	Workers int
}

// SolveRequest represents a request to solve a puzzle chosen by day.
type SolveRequest struct {
	// Day is the puzzle day (1, 2 or 3)
	Day int

	// InputPath is the path to the puzzle input file
	InputPath string

	// Workers overrides the engine's accumulation shards when > 0 (fabric only)
	Workers int
}
