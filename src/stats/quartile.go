package stats

// Quartiles gets the three quartiles of a slice of numbers using the Tukey
// hinges method: the input is split at the median, with the median itself
// belonging to both halves when the length is odd, and Q1 and Q3 are the
// medians of the lower and upper halves.
func Quartiles(input []int64) (q1, q2, q3 int64) {
	s := sortedCopy(input)

	l := len(s)
	if l == 0 {
		return 0, 0, 0
	}

	// The middle number stays in both halves for odd lengths
	mid := l / 2
	right := mid
	if l%2 != 0 {
		right = mid + 1
	}

	q1 = Median(s[:right])
	q2 = Median(s)
	q3 = Median(s[mid:])

	return q1, q2, q3
}

// IQR gets the interquartile range, the spread of the middle half of the
// input.
func IQR(input []int64) int64 {
	q1, _, q3 := Quartiles(input)
	return q3 - q1
}

// Outliers counts the numbers falling outside the Tukey fences, which sit
// 1.5 interquartile ranges beyond Q1 and Q3.
func Outliers(input []int64) (low, high int) {
	q1, _, q3 := Quartiles(input)

	iqr := q3 - q1
	lowerFence := q1 - (3*iqr)/2
	upperFence := q3 + (3*iqr)/2

	for _, v := range input {
		if v < lowerFence {
			low++
		}
		if v > upperFence {
			high++
		}
	}

	return low, high
}
