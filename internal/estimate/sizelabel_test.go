package estimate

import (
	"math"
	"testing"
)

func TestParseSizeLabel(t *testing.T) {
	cases := []struct {
		in   string
		want int64
	}{
		{"10M", 10_000_000},
		{"10m", 10_000_000},
		{"2B", 2_000_000_000},
		{"405B", 405_000_000_000},
		{"405b", 405_000_000_000},
		{"1.5T", 1_500_000_000_000},
		{"7.5b", 7_500_000_000},
		{"0.5B", 500_000_000},
	}
	for _, c := range cases {
		got, err := ParseSizeLabel(c.in)
		if err != nil {
			t.Fatalf("ParseSizeLabel(%q): %v", c.in, err)
		}
		if got != c.want {
			t.Fatalf("ParseSizeLabel(%q) = %d, want %d", c.in, got, c.want)
		}
	}
}

func TestParseSizeLabelInvalid(t *testing.T) {
	for _, in := range []string{"bad", "", "10K", "1.5", "B", "-5B", "1.5.5B", "5 B", "B5"} {
		if _, err := ParseSizeLabel(in); !IsInvalidFormat(err) {
			t.Fatalf("ParseSizeLabel(%q): expected invalid format, got %v", in, err)
		}
	}
}

func TestFormatSizeLabel(t *testing.T) {
	cases := []struct {
		in   int64
		want string
	}{
		{1_500_000_000_000, "1.5T"},
		{405_000_000_000, "405.0B"},
		{7_000_000_000, "7.0B"},
		{10_000_000, "10.0M"},
		{999_999, "999999"},
		{0, "0"},
	}
	for _, c := range cases {
		if got := FormatSizeLabel(c.in); got != c.want {
			t.Fatalf("FormatSizeLabel(%d) = %q, want %q", c.in, got, c.want)
		}
	}
}

// Formatting is lossy (one decimal digit) but parse(format(n)) must stay
// within 5% of n once a unit applies.
func TestSizeLabelRoundTrip(t *testing.T) {
	for _, n := range []int64{1_000_000, 1_234_567, 987_654_321, 7_000_000_000, 405_000_000_000, 1_499_999_999_999} {
		back, err := ParseSizeLabel(FormatSizeLabel(n))
		if err != nil {
			t.Fatalf("round trip %d: %v", n, err)
		}
		if diff := math.Abs(float64(back-n)) / float64(n); diff > 0.05 {
			t.Fatalf("round trip %d -> %d drifts %.3f", n, back, diff)
		}
	}
}
