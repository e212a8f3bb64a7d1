package blocks

import "fmt"

// Policy is the placement rule variant governing where an opening brace
// must appear relative to its construct.
type Policy int

const (
	// PolicyEndOfLine requires the brace at the end of the line that
	// starts the construct.
	PolicyEndOfLine Policy = iota
	// PolicyNextLine requires the brace alone on its own line.
	PolicyNextLine
	// PolicyNextLineIfWrapped requires the brace on its own line only
	// when the construct's declaration spans multiple lines.
	PolicyNextLineIfWrapped
)

// String returns the configuration name of the policy.
func (p Policy) String() string {
	switch p {
	case PolicyEndOfLine:
		return "eol"
	case PolicyNextLine:
		return "nl"
	case PolicyNextLineIfWrapped:
		return "nlow"
	default:
		return "unknown"
	}
}

// ParsePolicy converts a configuration string to a Policy.
// An unrecognized name is a configuration error.
func ParsePolicy(s string) (Policy, error) {
	switch s {
	case "eol":
		return PolicyEndOfLine, nil
	case "nl":
		return PolicyNextLine, nil
	case "nlow":
		return PolicyNextLineIfWrapped, nil
	default:
		return PolicyEndOfLine, fmt.Errorf("unknown brace policy %q (want eol, nl, or nlow)", s)
	}
}

// whitespaceBefore reports whether every character on line before the
// 0-based index is whitespace.
func whitespaceBefore(index int, line string) bool {
	for i := 0; i < index && i < len(line); i++ {
		if line[i] != ' ' && line[i] != '\t' {
			return false
		}
	}
	return true
}
