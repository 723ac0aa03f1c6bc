package types

import "strconv"

// Precision is the bit-width of the numeric representation used to store
// each model parameter.
type Precision int

const (
	Bits32 Precision = 32
	Bits16 Precision = 16
	Bits8  Precision = 8
	Bits4  Precision = 4
)

// Precisions lists the supported precisions in descending bit-width order.
// Multi-precision reports iterate this slice so output order is stable.
var Precisions = []Precision{Bits32, Bits16, Bits8, Bits4}

// Valid reports whether p is one of the enumerated bit-widths.
func (p Precision) Valid() bool {
	switch p {
	case Bits32, Bits16, Bits8, Bits4:
		return true
	}
	return false
}

func (p Precision) String() string { return strconv.Itoa(int(p)) }

// ModelConfig is the raw configuration document of a registry model
// (config.json contents). Read-only input to precision resolution; only the
// quantization and dtype keys are interpreted.
type ModelConfig map[string]any

// SelectorKind discriminates the three ways a caller can choose precision.
type SelectorKind int

const (
	// SelectExplicit uses the Bits field as-is.
	SelectExplicit SelectorKind = iota
	// SelectAuto resolves precision from the model configuration.
	SelectAuto
	// SelectAll computes an estimate for every supported precision.
	SelectAll
)

// Selector is the precision choice attached to a query: an explicit
// bit-width, auto-detection, or all precisions.
type Selector struct {
	Kind SelectorKind
	Bits Precision // set when Kind == SelectExplicit
}

// invalidPrecisionError signals a precision selector outside all|auto|32|16|8|4.
type invalidPrecisionError struct{ input string }

func (e invalidPrecisionError) Error() string { return "invalid precision: " + e.input }

// ErrInvalidPrecision constructs an invalidPrecisionError.
func ErrInvalidPrecision(input string) error { return invalidPrecisionError{input: input} }

// IsInvalidPrecision reports whether err indicates an unsupported precision value.
func IsInvalidPrecision(err error) bool {
	_, ok := err.(invalidPrecisionError)
	return ok
}

// ParseSelector parses the textual precision option ("all", "auto" or one of
// the enumerated bit-widths).
func ParseSelector(s string) (Selector, error) {
	switch s {
	case "all":
		return Selector{Kind: SelectAll}, nil
	case "auto":
		return Selector{Kind: SelectAuto}, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil || !Precision(n).Valid() {
		return Selector{}, ErrInvalidPrecision(s)
	}
	return Selector{Kind: SelectExplicit, Bits: Precision(n)}, nil
}
