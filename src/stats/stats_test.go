package stats

import "testing"

func TestSum(t *testing.T) {
	for _, c := range []struct {
		in  []int64
		out int64
	}{
		{[]int64{1, 2, 3}, 6},
		{[]int64{-1, 1}, 0},
		{[]int64{}, 0},
	} {
		got := Sum(c.in)
		if got != c.out {
			t.Errorf("Sum(%d) => %d != %d", c.in, got, c.out)
		}
	}
}

func TestMean(t *testing.T) {
	for _, c := range []struct {
		in  []int64
		out int64
	}{
		{[]int64{1, 2, 3, 4}, 2},
		{[]int64{3}, 3},
		{[]int64{-3, -4}, -3},
		{[]int64{}, 0},
	} {
		got := Mean(c.in)
		if got != c.out {
			t.Errorf("Mean(%d) => %d != %d", c.in, got, c.out)
		}
	}
}

func TestMinMax(t *testing.T) {
	for _, c := range []struct {
		in       []int64
		min, max int64
	}{
		{[]int64{5, 3, 8, 1}, 1, 8},
		{[]int64{7}, 7, 7},
		{[]int64{-5, -2}, -5, -2},
		{[]int64{}, 0, 0},
	} {
		min, max := MinMax(c.in)
		if min != c.min || max != c.max {
			t.Errorf("MinMax(%d) => (%d, %d) != (%d, %d)", c.in, min, max, c.min, c.max)
		}
	}
}

func TestPercentile(t *testing.T) {
	in := []int64{50, 15, 40, 20, 35}

	for _, c := range []struct {
		p   int
		out int64
	}{
		{5, 15},
		{30, 20},
		{40, 20},
		{50, 35},
		{100, 50},
		{0, 15},
		{-5, 15},
		{110, 50},
	} {
		got := Percentile(in, c.p)
		if got != c.out {
			t.Errorf("Percentile(%d, %d) => %d != %d", in, c.p, got, c.out)
		}
	}

	if got := Percentile([]int64{}, 50); got != 0 {
		t.Errorf("Empty slice should have returned 0")
	}
}

func TestMedianAbsoluteDeviation(t *testing.T) {
	for _, c := range []struct {
		in  []int64
		out int64
	}{
		{[]int64{1, 1, 2, 2, 4, 6, 9}, 1},
		{[]int64{5}, 0},
		{[]int64{}, 0},
	} {
		got := MedianAbsoluteDeviation(c.in)
		if got != c.out {
			t.Errorf("MedianAbsoluteDeviation(%d) => %d != %d", c.in, got, c.out)
		}
	}
}
