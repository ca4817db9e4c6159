package services

import "testing"

func TestRoundRating(t *testing.T) {
	cases := []struct {
		mean float64
		want float64
	}{
		{4.5, 4.5},
		{4.49999, 4.5},
		{4.44, 4.4},
		{3.0, 3.0},
		{4.666666, 4.7},
		{0, 0},
	}
	for _, tc := range cases {
		if got := RoundRating(tc.mean); got != tc.want {
			t.Errorf("RoundRating(%v) = %v, quería %v", tc.mean, got, tc.want)
		}
	}
}
