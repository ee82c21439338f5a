package stats

import "testing"

func TestQuartiles(t *testing.T) {
	for _, c := range []struct {
		in         []int64
		q1, q2, q3 int64
	}{
		{[]int64{1, 2, 3, 4, 5}, 2, 3, 4},
		{[]int64{1, 2, 3, 4}, 1, 2, 3},
		{[]int64{14, 2, 8, 4, 12, 6, 10}, 5, 8, 11},
		{[]int64{7}, 7, 7, 7},
		{[]int64{}, 0, 0, 0},
	} {
		q1, q2, q3 := Quartiles(c.in)
		if q1 != c.q1 || q2 != c.q2 || q3 != c.q3 {
			t.Errorf("Quartiles(%d) => (%d, %d, %d) != (%d, %d, %d)",
				c.in, q1, q2, q3, c.q1, c.q2, c.q3)
		}
	}
}

func TestIQR(t *testing.T) {
	for _, c := range []struct {
		in  []int64
		out int64
	}{
		{[]int64{2, 4, 6, 8, 10, 12, 14}, 6},
		{[]int64{1, 2, 3, 4}, 2},
		{[]int64{}, 0},
	} {
		got := IQR(c.in)
		if got != c.out {
			t.Errorf("IQR(%d) => %d != %d", c.in, got, c.out)
		}
	}
}

func TestOutliers(t *testing.T) {
	for _, c := range []struct {
		in        []int64
		low, high int
	}{
		{[]int64{1, 2, 3, 4, 100}, 0, 1},
		{[]int64{-50, 10, 11, 12, 13, 14}, 1, 0},
		{[]int64{1, 2, 3}, 0, 0},
		{[]int64{}, 0, 0},
	} {
		low, high := Outliers(c.in)
		if low != c.low || high != c.high {
			t.Errorf("Outliers(%d) => (%d, %d) != (%d, %d)", c.in, low, high, c.low, c.high)
		}
	}
}
