package stats

// Summary bundles the positional statistics of a slice of numbers.
type Summary struct {
	Count       int   `json:"count"`
	Min         int64 `json:"min"`
	Max         int64 `json:"max"`
	Sum         int64 `json:"sum"`
	Mean        int64 `json:"mean"`
	Median      int64 `json:"median"`
	LowerMedian int64 `json:"lower_median"`
	EvenMedian  int64 `json:"even_median"`
	Q1          int64 `json:"q1"`
	Q3          int64 `json:"q3"`
	P95         int64 `json:"p95"`
	P99         int64 `json:"p99"`
	MAD         int64 `json:"mad"`
	Outliers    int   `json:"outliers"`
}

// Summarize computes the full set of statistics for a slice of numbers in
// one call. The zero Summary is returned for an empty slice.
func Summarize(input []int64) Summary {
	if len(input) == 0 {
		return Summary{}
	}

	min, max := MinMax(input)
	q1, q2, q3 := Quartiles(input)
	low, high := Outliers(input)

	return Summary{
		Count:       len(input),
		Min:         min,
		Max:         max,
		Sum:         Sum(input),
		Mean:        Mean(input),
		Median:      q2,
		LowerMedian: LowerMedian(input),
		EvenMedian:  EvenMedian(input),
		Q1:          q1,
		Q3:          q3,
		P95:         Percentile(input, 95),
		P99:         Percentile(input, 99),
		MAD:         MedianAbsoluteDeviation(input),
		Outliers:    low + high,
	}
}
