package textfit

import (
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Alignment is the horizontal anchor of a label.
type Alignment int

const (
	// AlignLeft anchors the text at its left edge (legacy code 0).
	AlignLeft Alignment = iota
	// AlignCenter anchors the text at its center (legacy code 1).
	AlignCenter
	// AlignRight anchors the text at its right edge (legacy code 2).
	AlignRight
)

var alignmentNames = map[Alignment]string{
	AlignLeft:   "left",
	AlignCenter: "center",
	AlignRight:  "right",
}

// ParseAlignment parses "left", "center" or "right" (case-insensitive).
func ParseAlignment(s string) (Alignment, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for a, n := range alignmentNames {
		if n == name {
			return a, nil
		}
	}
	return AlignLeft, invalidf("unknown alignment %q", s)
}

// AlignmentFromCode maps a legacy numeric alignment code (0, 1, 2) to an Alignment.
// Any other integer is rejected.
func AlignmentFromCode(code int) (Alignment, error) {
	a := Alignment(code)
	if !a.Valid() {
		return AlignLeft, invalidf("unknown alignment code %d", code)
	}
	return a, nil
}

// Valid reports whether a is one of the three defined alignments.
func (a Alignment) Valid() bool {
	_, ok := alignmentNames[a]
	return ok
}

// Code returns the legacy numeric encoding of a.
func (a Alignment) Code() int {
	return int(a)
}

func (a Alignment) String() string {
	if n, ok := alignmentNames[a]; ok {
		return n
	}
	return "Alignment(" + strconv.Itoa(int(a)) + ")"
}

// Offset returns the x offset, relative to the left edge of a box of width box,
// at which a text of width text starts.
func (a Alignment) Offset(box, text int) int {
	switch a {
	case AlignCenter:
		return (box - text) / 2
	case AlignRight:
		return box - text
	default:
		return 0
	}
}

// MarshalText encodes a by name.
func (a Alignment) MarshalText() ([]byte, error) {
	if !a.Valid() {
		return nil, invalidf("unknown alignment code %d", int(a))
	}
	return []byte(a.String()), nil
}

// UnmarshalText accepts a name or a legacy numeric code.
func (a *Alignment) UnmarshalText(text []byte) error {
	s := string(text)
	if code, err := strconv.Atoi(s); err == nil {
		v, err := AlignmentFromCode(code)
		if err != nil {
			return err
		}
		*a = v
		return nil
	}
	v, err := ParseAlignment(s)
	if err != nil {
		return err
	}
	*a = v
	return nil
}

// UnmarshalYAML accepts either `center` or the legacy `1`.
func (a *Alignment) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return invalidf("alignment must be a scalar (line %d)", value.Line)
	}
	return a.UnmarshalText([]byte(value.Value))
}
