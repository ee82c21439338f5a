package stats

import (
	"sort"
)

// sortedCopy returns a sorted copy of the input, leaving the input untouched.
func sortedCopy(input []int64) []int64 {
	s := make([]int64, len(input))
	copy(s, input)
	sort.Slice(s, func(i, j int) bool { return s[i] < s[j] })
	return s
}

// Median gets the median number in a slice of numbers
func Median(input []int64) (median int64) {

	// Start by sorting a copy of the slice
	s := sortedCopy(input)

	// No math is needed if there are no numbers
	// For even numbers we add the two middle numbers and divide by two
	// For odd numbers we just use the middle number
	l := len(s)
	if l == 0 {
		return 0
	} else if l%2 == 0 {
		mid := l/2 - 1
		median = (s[mid] + s[mid+1]) / 2
	} else {
		median = s[l/2]
	}

	return median
}

// LowerMedian gets the lower middle number in a slice of numbers. Unlike
// Median it never averages, so the result is always a member of the input.
// For odd lengths it equals Median; for even lengths it is the smaller of
// the two middle numbers.
func LowerMedian(input []int64) int64 {
	s := sortedCopy(input)

	l := len(s)
	if l == 0 {
		return 0
	}

	return s[(l-1)/2]
}

// EvenMedian gets the median of the numbers sitting at even positions
// (0, 2, 4, ...) of the input, in its original order. The selected numbers
// are then handled exactly like Median: sorted, middle number for odd
// counts, average of the two middle numbers for even counts.
func EvenMedian(input []int64) int64 {
	if len(input) == 0 {
		return 0
	}

	// Positions are counted before sorting, so the selection depends on
	// the order the caller passed the numbers in.
	picked := make([]int64, 0, (len(input)+1)/2)
	for i := 0; i < len(input); i += 2 {
		picked = append(picked, input[i])
	}

	return Median(picked)
}
