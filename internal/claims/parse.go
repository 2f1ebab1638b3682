package claims

import (
	"math"
	"regexp"
	"strconv"
)

// recordPattern matches "#<id> @ <left>,<top>: <width>x<height>".
var recordPattern = regexp.MustCompile(`#(\d+) @ (\d+),(\d+): (\d+)x(\d+)`)

// Parse converts raw lines into claims, in input order.
// Lines that are not claim records are skipped without error.
func Parse(lines []string) []Claim {
	result := make([]Claim, 0, len(lines))
	for _, line := range lines {
		claim, ok := ParseLine(line)
		if !ok {
			continue
		}
		result = append(result, claim)
	}
	return result
}

// ParseLine parses a single claim record.
// The second return value reports whether the line was a valid record.
// Records with a zero width or height cover no cells and are rejected, as are
// records whose far edge does not fit in an int.
func ParseLine(line string) (Claim, bool) {
	match := recordPattern.FindStringSubmatch(line)
	if match == nil {
		return Claim{}, false
	}

	fields := make([]int, 0, 5)
	for _, raw := range match[1:] {
		n, err := strconv.Atoi(raw)
		if err != nil {
			// Only overflow can get here; treat it like any other bad record.
			return Claim{}, false
		}
		fields = append(fields, n)
	}

	if fields[3] == 0 || fields[4] == 0 {
		return Claim{}, false
	}
	if fields[1] > math.MaxInt-fields[3] || fields[2] > math.MaxInt-fields[4] {
		return Claim{}, false
	}

	return Claim{
		ID:     fields[0],
		Left:   fields[1],
		Top:    fields[2],
		Width:  fields[3],
		Height: fields[4],
	}, true
}
