package stats

import "testing"

func TestMedian(t *testing.T) {
	for _, c := range []struct {
		in  []int64
		out int64
	}{
		{[]int64{5, 3, 4, 2, 1}, 3},
		{[]int64{6, 3, 2, 4, 5, 1}, 3},
		{[]int64{1}, 1},
		{[]int64{3, 1}, 2},
		{[]int64{-4, -2}, -3},
	} {
		got := Median(c.in)
		if got != c.out {
			t.Errorf("Median(%d) => %d != %d", c.in, got, c.out)
		}
	}
	m := Median([]int64{})
	if m != 0 {
		t.Errorf("Empty slice should have returned 0")
	}
}

func TestLowerMedian(t *testing.T) {
	for _, c := range []struct {
		in  []int64
		out int64
	}{
		{[]int64{5, 3, 4, 2, 1}, 3},
		{[]int64{6, 3, 2, 4, 5, 1}, 3},
		{[]int64{1, 2}, 1},
		{[]int64{9, 7}, 7},
		{[]int64{42}, 42},
	} {
		got := LowerMedian(c.in)
		if got != c.out {
			t.Errorf("LowerMedian(%d) => %d != %d", c.in, got, c.out)
		}
	}
	m := LowerMedian([]int64{})
	if m != 0 {
		t.Errorf("Empty slice should have returned 0")
	}
}

func TestEvenMedian(t *testing.T) {
	for _, c := range []struct {
		in  []int64
		out int64
	}{
		{[]int64{1, 2, 3, 4, 5}, 3},  // median of [1, 3, 5]
		{[]int64{42}, 42},            // median of [42]
		{[]int64{2, 9, 4}, 3},        // median of [2, 4]
		{[]int64{1, 0, 5, 0, 9}, 5},  // median of [1, 5, 9]
		{[]int64{8, 1, 6, 3}, 7},     // median of [8, 6]
		{[]int64{10, 100}, 10},       // median of [10]
		{[]int64{9, 9, 1, 9, 1}, 1},  // median of [9, 1, 1]
	} {
		got := EvenMedian(c.in)
		if got != c.out {
			t.Errorf("EvenMedian(%d) => %d != %d", c.in, got, c.out)
		}
	}
	m := EvenMedian([]int64{})
	if m != 0 {
		t.Errorf("Empty slice should have returned 0")
	}
}

// The positions picked by EvenMedian are counted in the caller's order, so
// shuffling the input can change the answer even though plain Median would
// not care.
func TestEvenMedianOrderSensitive(t *testing.T) {
	a := EvenMedian([]int64{1, 0, 5, 0, 9})
	b := EvenMedian([]int64{0, 1, 0, 5, 9})
	if a == b {
		t.Errorf("Reordering should have changed the result, got %d twice", a)
	}
}

func TestMedianImmutable(t *testing.T) {
	sample := []int64{5, 1, 4}

	if got := Median(sample); got != 4 {
		t.Errorf("Median(%d) => %d != 4", sample, got)
	}
	if got := LowerMedian(sample); got != 4 {
		t.Errorf("LowerMedian(%d) => %d != 4", sample, got)
	}
	if got := EvenMedian(sample); got != 4 {
		t.Errorf("EvenMedian(%d) => %d != 4", sample, got)
	}

	if sample[0] != 5 || sample[1] != 1 || sample[2] != 4 {
		t.Errorf("Input was mutated: %d", sample)
	}
}
