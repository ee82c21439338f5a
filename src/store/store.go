package store

import "github.com/mosaicnetworks/midline/src/series"

// Store is an interface for backend stores.
type Store interface {
	// CacheSize retrieves the cacheSize setting that determines the maximum
	// number of samples that per-series windows can contain.
	CacheSize() int
	// SeriesNames returns the names of all known series, sorted.
	SeriesNames() []string
	// GetSeries returns a series carrying the retained window of its samples.
	GetSeries(name string) (*series.Series, error)
	// AppendValue appends a sample to a series, creating the series on first
	// use.
	AppendValue(name string, value int64) error
	// LastIndex returns the index of the last sample appended to a series.
	LastIndex(name string) (int, error)
	// GetWindow returns a series' samples starting at index skip+1.
	GetWindow(name string, skip int) ([]int64, error)
	// TotalSamples returns the number of samples ever appended, across all
	// series.
	TotalSamples() int
	// Close closes the underlying database.
	Close() error
	// StorePath returns the filepath of the underlying database.
	StorePath() string
	// NeedBootstrap indicates whether the store was loaded from an existing
	// database.
	NeedBootstrap() bool
}
