package httpserver

import "testing"

func TestFormatKES(t *testing.T) {
	cases := []struct {
		cents int64
		want  string
	}{
		{0, "KES 0"},
		{500, "KES 500"},
		{5800, "KES 5,800"},
		{1250000, "KES 1,250,000"},
		{-3999, "KES -3,999"},
	}
	for _, tc := range cases {
		if got := formatKES(tc.cents); got != tc.want {
			t.Errorf("formatKES(%d) = %q, want %q", tc.cents, got, tc.want)
		}
	}
}
