// Package stats implements positional statistics over integer samples.
//
// All functions operate on []int64, make their own sorted copies, and never
// mutate their input. The empty sequence is a valid input everywhere and
// yields 0; the caller decides whether an empty series is meaningful.
//
// The statistics are positional rather than analytical: results are obtained
// by selecting, or averaging two, elements of the sorted input, using integer
// arithmetic throughout. There is no interpolation and no floating point in
// the public API.
package stats
