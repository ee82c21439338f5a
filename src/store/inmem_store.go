package store

import (
	"sort"

	cm "github.com/mosaicnetworks/midline/src/common"
	"github.com/mosaicnetworks/midline/src/series"
)

// InmemStore implements the Store interface with in-memory rolling windows.
// When the windows are full, older samples are evicted, so InmemStore is not
// suitable for deployments that expect to replay a series from its first
// sample.
type InmemStore struct {
	cacheSize    int
	windows      map[string]*cm.RollingWindow //series name => recent samples
	totalSamples int
}

// NewInmemStore creates a new InmemStore where every series window is limited
// by cacheSize items.
func NewInmemStore(cacheSize int) *InmemStore {
	store := &InmemStore{
		cacheSize: cacheSize,
		windows:   make(map[string]*cm.RollingWindow),
	}
	return store
}

// CacheSize returns the size limit that was provided to all the windows that
// make up the InmemStore. This does not correspond to the total number of
// samples in the store.
func (s *InmemStore) CacheSize() int {
	return s.cacheSize
}

// SeriesNames implements the Store interface.
func (s *InmemStore) SeriesNames() []string {
	names := make([]string, 0, len(s.windows))
	for name := range s.windows {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// GetSeries implements the Store interface.
func (s *InmemStore) GetSeries(name string) (*series.Series, error) {
	w, ok := s.windows[name]
	if !ok {
		return nil, cm.NewStoreErr("SeriesWindow", cm.NoSeries, name)
	}

	values, _ := w.GetLastWindow()

	return series.NewSeries(name, values), nil
}

// AppendValue implements the Store interface.
func (s *InmemStore) AppendValue(name string, value int64) error {
	if err := series.ValidateName(name); err != nil {
		return err
	}

	w, ok := s.windows[name]
	if !ok {
		w = cm.NewRollingWindow(name, s.cacheSize)
		s.windows[name] = w
	}

	w.Append(value)
	s.totalSamples++

	return nil
}

// LastIndex implements the Store interface.
func (s *InmemStore) LastIndex(name string) (int, error) {
	w, ok := s.windows[name]
	if !ok {
		return -1, cm.NewStoreErr("SeriesWindow", cm.NoSeries, name)
	}

	_, lastIndex := w.GetLastWindow()

	return lastIndex, nil
}

// GetWindow implements the Store interface.
func (s *InmemStore) GetWindow(name string, skip int) ([]int64, error) {
	w, ok := s.windows[name]
	if !ok {
		return nil, cm.NewStoreErr("SeriesWindow", cm.NoSeries, name)
	}
	return w.Get(skip)
}

// TotalSamples implements the Store interface.
func (s *InmemStore) TotalSamples() int {
	return s.totalSamples
}

// ResetSeries seeds a series window with samples recovered from disk. The
// samples are assumed contiguous, ending at lastIndex; the series must not
// already be present.
func (s *InmemStore) ResetSeries(name string, values []int64, lastIndex int) error {
	w := cm.NewRollingWindow(name, s.cacheSize)

	first := lastIndex - len(values) + 1
	for i, v := range values {
		if err := w.Set(v, first+i); err != nil {
			return err
		}
	}

	s.windows[name] = w
	s.totalSamples += lastIndex + 1

	return nil
}

// Close implements the Store interface.
func (s *InmemStore) Close() error {
	return nil
}

// StorePath implements the Store interface.
func (s *InmemStore) StorePath() string {
	return ""
}

// NeedBootstrap implements the Store interface.
func (s *InmemStore) NeedBootstrap() bool {
	return false
}
