package estimate

import (
	"fmt"
	"regexp"
	"strconv"
)

// Size label unit multipliers (decimal, as in "7B" = 7e9 parameters).
const (
	unitMillion  int64 = 1_000_000
	unitBillion  int64 = 1_000_000_000
	unitTrillion int64 = 1_000_000_000_000
)

var sizeLabelRe = regexp.MustCompile(`^(\d+(?:\.\d+)?)([mbtMBT])$`)

// invalidFormatError signals a malformed size label input.
type invalidFormatError struct{ input string }

func (e invalidFormatError) Error() string { return "invalid model size format: " + e.input }

// ErrInvalidFormat constructs an invalidFormatError.
func ErrInvalidFormat(input string) error { return invalidFormatError{input: input} }

// IsInvalidFormat reports whether err indicates a malformed size label.
func IsInvalidFormat(err error) bool {
	_, ok := err.(invalidFormatError)
	return ok
}

// ParseSizeLabel converts a compact size label such as "10M", "405B" or
// "1.5T" into a parameter count. Units are case-insensitive. The float
// product is truncated toward zero, so "1.5T" yields exactly
// 1_500_000_000_000; truncation (not rounding) keeps parsing deterministic.
func ParseSizeLabel(s string) (int64, error) {
	m := sizeLabelRe.FindStringSubmatch(s)
	if m == nil {
		return 0, ErrInvalidFormat(s)
	}
	number, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return 0, ErrInvalidFormat(s)
	}
	var mult int64
	switch m[2] {
	case "m", "M":
		mult = unitMillion
	case "b", "B":
		mult = unitBillion
	default:
		mult = unitTrillion
	}
	return int64(number * float64(mult)), nil
}

// FormatSizeLabel renders a parameter count with the largest unit that fits
// (T, B, then M) and one decimal digit. Counts below one million have no
// unit and are returned as a plain integer string.
func FormatSizeLabel(n int64) string {
	units := []struct {
		mult   int64
		suffix string
	}{
		{unitTrillion, "T"},
		{unitBillion, "B"},
		{unitMillion, "M"},
	}
	for _, u := range units {
		if n >= u.mult {
			return fmt.Sprintf("%.1f%s", float64(n)/float64(u.mult), u.suffix)
		}
	}
	return strconv.FormatInt(n, 10)
}
