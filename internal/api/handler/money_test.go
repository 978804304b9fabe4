package handler

import "testing"

func TestFormatCLP(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{0, "$0"},
		{999, "$999"},
		{1000, "$1.000"},
		{44990, "$44.990"},
		{12990, "$12.990"},
		{1234567, "$1.234.567"},
		{44990.4, "$44.990"},
		{-5000, "-$5.000"},
	}
	for _, tc := range cases {
		if got := formatCLP(tc.in); got != tc.want {
			t.Errorf("formatCLP(%v) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
