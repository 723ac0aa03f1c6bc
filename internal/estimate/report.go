package estimate

import (
	"fmt"
	"strings"

	"vramfit/pkg/types"
)

// HumanizeBytes renders a byte count as binary gigabytes when it is at least
// 1 GiB, otherwise binary megabytes. Two decimal places either way.
func HumanizeBytes(v float64) string {
	gb := v / (1 << 30)
	if gb >= 1 {
		return fmt.Sprintf("%.2f GB", gb)
	}
	return fmt.Sprintf("%.2f MB", v/(1<<20))
}

// RenderSingle produces the one-line report for a single precision.
func RenderSingle(subject string, p types.Precision, bytes float64) string {
	return fmt.Sprintf("Required GPU Memory[%s, precision: %d]: %s", subject, p, HumanizeBytes(bytes))
}

// RenderAll produces the multi-precision report: a header naming the subject
// and parameter count, then one bullet per precision in descending bit-width
// order. An empty subject (explicit-count queries) drops the subject part of
// the header.
func RenderAll(subject string, params int64, ests []types.PrecisionEstimate) string {
	var b strings.Builder
	if subject != "" {
		fmt.Fprintf(&b, "Required GPU Memory[%s, parameters: %s]", subject, FormatSizeLabel(params))
	} else {
		fmt.Fprintf(&b, "Required GPU Memory[parameters: %s]", FormatSizeLabel(params))
	}
	for _, e := range ests {
		fmt.Fprintf(&b, "\n  - %dbit: %s", e.Bits, e.Human)
	}
	return b.String()
}
