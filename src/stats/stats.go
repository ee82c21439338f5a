package stats

// Sum adds up a slice of numbers
func Sum(input []int64) (sum int64) {
	for _, v := range input {
		sum += v
	}
	return sum
}

// Mean gets the arithmetic mean of a slice of numbers, rounded towards zero.
// An empty slice has a mean of 0.
func Mean(input []int64) int64 {
	if len(input) == 0 {
		return 0
	}
	return Sum(input) / int64(len(input))
}

// MinMax gets the smallest and largest numbers in a slice of numbers. Both
// are 0 when the slice is empty.
func MinMax(input []int64) (min int64, max int64) {
	if len(input) == 0 {
		return 0, 0
	}

	min, max = input[0], input[0]
	for _, v := range input[1:] {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}

	return min, max
}

// Percentile gets the number below which p percent of the input falls, using
// the nearest-rank method, so the result is always a member of the input.
// Values of p below 0 or above 100 are clamped.
func Percentile(input []int64, p int) int64 {
	s := sortedCopy(input)

	l := len(s)
	if l == 0 {
		return 0
	}

	if p <= 0 {
		return s[0]
	}
	if p >= 100 {
		return s[l-1]
	}

	// Nearest rank: ceil(p/100 * l), 1-based
	rank := (p*l + 99) / 100

	return s[rank-1]
}

// MedianAbsoluteDeviation gets the median of the absolute deviations from
// the input's median. It is a robust measure of spread: unlike standard
// deviation, a few wild samples barely move it.
func MedianAbsoluteDeviation(input []int64) int64 {
	if len(input) == 0 {
		return 0
	}

	m := Median(input)

	deviations := make([]int64, len(input))
	for i, v := range input {
		d := v - m
		if d < 0 {
			d = -d
		}
		deviations[i] = d
	}

	return Median(deviations)
}
