package money

import "testing"

func TestParseCOP(t *testing.T) {
	cases := []struct {
		in   string
		want int64
	}{
		{"$5.000", 5000},
		{"5.000", 5000},
		{"$ 12.500,50", 12500},
		{"1250000", 1250000},
		{"$1.250.000", 1250000},
		{"  $800  ", 800},
		{"", 0},
		{"$", 0},
		{"gratis", 0},
		{"-100", 0},
		{"$0", 0},
	}
	for _, tc := range cases {
		if got := ParseCOP(tc.in); got != tc.want {
			t.Errorf("ParseCOP(%q) = %d, want %d", tc.in, got, tc.want)
		}
	}
}

func TestFormatCOP(t *testing.T) {
	cases := []struct {
		in   int64
		want string
	}{
		{0, "$0"},
		{800, "$800"},
		{5000, "$5.000"},
		{12500, "$12.500"},
		{1250000, "$1.250.000"},
		{-5000, "-$5.000"},
	}
	for _, tc := range cases {
		if got := FormatCOP(tc.in); got != tc.want {
			t.Errorf("FormatCOP(%d) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestParseFormatRoundTrip(t *testing.T) {
	for _, v := range []int64{0, 1, 999, 1000, 55500, 123456789} {
		if got := ParseCOP(FormatCOP(v)); got != v {
			t.Errorf("round trip %d -> %q -> %d", v, FormatCOP(v), got)
		}
	}
}
