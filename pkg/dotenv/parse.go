package dotenv

import "strings"

const separator = "="

// Line is a single parsed assignment.
type Line struct {
	Key      string
	Value    string
	HasValue bool // false when the line had no separator
}

// ParseLine splits line on the first '='. Nothing is trimmed and further
// separators stay in the value.
func ParseLine(line string) Line {
	key, value, found := strings.Cut(line, separator)
	return Line{Key: key, Value: value, HasValue: found}
}
