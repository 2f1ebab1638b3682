package engine

import (
	"strconv"
	"time"
)

// Summary holds the run details shared by every puzzle result.
type Summary struct {
	// InputPath is the file the answers were computed from
	InputPath string `json:"input_path"`

	// InputDigest is the SHA-256 of the input contents
	InputDigest string `json:"input_digest"`

	// Records is the number of input records the solver used
	Records int `json:"records"`

	// Elapsed is the time spent reading and solving
	Elapsed time.Duration `json:"elapsed_ns"`
}

// FrequencyResult represents the answers to the frequency calibration puzzle.
type FrequencyResult struct {
	Summary

	// Resulting is the frequency after one pass over the changes
	Resulting int `json:"resulting"`

	// FirstRepeat is the first frequency reached twice while cycling
	FirstRepeat int `json:"first_repeat"`
}

// BoxIDResult represents the answers to the box inventory puzzle.
type BoxIDResult struct {
	Summary

	// Checksum is the twos-times-threes checksum of the ids
	Checksum int `json:"checksum"`

	// CommonLetters are the letters shared by the two matching ids
	CommonLetters string `json:"common_letters"`
}

// FabricResult represents the answers to the fabric claims puzzle.
type FabricResult struct {
	Summary

	// Overlapping is the number of cells covered by two or more claims
	Overlapping int `json:"overlapping"`

	// UniqueClaim is the id of the claim that overlaps no other
	UniqueClaim int `json:"unique_claim"`
}

// SolveResult represents the outcome of a day-dispatched solve.
// Exactly one of the puzzle results is set.
type SolveResult struct {
	// Day is the puzzle day that was solved
	Day int `json:"day"`

	// Title is the puzzle's short name
	Title string `json:"title"`

	Frequency *FrequencyResult `json:"frequency,omitempty"`
	BoxIDs    *BoxIDResult     `json:"box_ids,omitempty"`
	Fabric    *FabricResult    `json:"fabric,omitempty"`
}

// Answers returns the two part answers as display strings.
func (r *SolveResult) Answers() (string, string) {
	switch {
	case r.Frequency != nil:
		return strconv.Itoa(r.Frequency.Resulting), strconv.Itoa(r.Frequency.FirstRepeat)
	case r.BoxIDs != nil:
		return strconv.Itoa(r.BoxIDs.Checksum), r.BoxIDs.CommonLetters
	case r.Fabric != nil:
		return strconv.Itoa(r.Fabric.Overlapping), strconv.Itoa(r.Fabric.UniqueClaim)
	}
	return "", ""
}
