package vnum

// LogicValue is a single four-state logic value.
type LogicValue uint8

// Enumeration of the four logic states.
const (
	Lo LogicValue = iota
	Hi
	HiZ
	Undefined
)

// Rune returns the Verilog literal character for the logic value.
func (v LogicValue) Rune() rune {
	switch v {
	case Lo:
		return '0'
	case Hi:
		return '1'
	case HiZ:
		return 'z'
	default:
		return 'x'
	}
}

// IsDefined returns whether the value is a defined (0 or 1) logic level.
func (v LogicValue) IsDefined() bool {
	return v == Lo || v == Hi
}

// and computes the four-state AND of two logic values: a 0 on either side
// dominates, two 1s yield 1, and any other combination is undefined.
func and(a, b LogicValue) LogicValue {
	if a == Lo || b == Lo {
		return Lo
	}

	if a == Hi && b == Hi {
		return Hi
	}

	return Undefined
}
