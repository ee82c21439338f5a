package common

import "strconv"

// RollingWindow is a bounded window over a sequence of int64 samples. Samples
// are appended with monotonically increasing indexes, and the window retains
// at most 2*size of the most recent ones; when it fills up, the oldest half is
// evicted. Requests for evicted indexes return a TooLate error.
type RollingWindow struct {
	name      string
	size      int
	lastIndex int
	items     []int64
}

// NewRollingWindow ...
func NewRollingWindow(name string, size int) *RollingWindow {
	return &RollingWindow{
		name:      name,
		size:      size,
		items:     make([]int64, 0, 2*size),
		lastIndex: -1,
	}
}

// GetLastWindow returns the retained samples and the index of the last one.
func (r *RollingWindow) GetLastWindow() (lastWindow []int64, lastIndex int) {
	return r.items, r.lastIndex
}

// Get returns all retained samples with index strictly greater than skipIndex.
func (r *RollingWindow) Get(skipIndex int) ([]int64, error) {
	res := make([]int64, 0)

	if skipIndex > r.lastIndex {
		return res, nil
	}

	cachedItems := len(r.items)
	//assume there are no gaps between indexes
	oldestCachedIndex := r.lastIndex - cachedItems + 1
	if skipIndex+1 < oldestCachedIndex {
		return res, NewStoreErr(r.name, TooLate, strconv.Itoa(skipIndex))
	}

	//index of 'skipped' in RollingWindow
	start := skipIndex - oldestCachedIndex + 1

	return r.items[start:], nil
}

// GetItem returns the sample at a given index.
func (r *RollingWindow) GetItem(index int) (int64, error) {
	items := len(r.items)
	oldestCached := r.lastIndex - items + 1
	if index < oldestCached {
		return 0, NewStoreErr(r.name, TooLate, strconv.Itoa(index))
	}
	findex := index - oldestCached
	if findex >= items {
		return 0, NewStoreErr(r.name, KeyNotFound, strconv.Itoa(index))
	}
	return r.items[findex], nil
}

// Set inserts a sample at an index. Only indexes up to lastIndex+1 are
// allowed, so there are never gaps between samples; inserting at an index that
// is already retained overwrites it.
func (r *RollingWindow) Set(item int64, index int) error {
	if 0 <= r.lastIndex && index > r.lastIndex+1 {
		return NewStoreErr(r.name, SkippedIndex, strconv.Itoa(index))
	}

	//adding a new item
	if r.lastIndex < 0 || (index == r.lastIndex+1) {
		if len(r.items) >= 2*r.size {
			r.Roll()
		}
		r.items = append(r.items, item)
		r.lastIndex = index
		return nil
	}

	//replace an existing item. Make sure index is also greater or equal than
	//the oldest cached item's index
	cachedItems := len(r.items)
	oldestCachedIndex := r.lastIndex - cachedItems + 1

	if index < oldestCachedIndex {
		return NewStoreErr(r.name, TooLate, strconv.Itoa(index))
	}

	position := index - oldestCachedIndex //position of 'index' in RollingWindow
	r.items[position] = item

	return nil
}

// Append inserts a sample at the next index and returns that index.
func (r *RollingWindow) Append(item int64) int {
	next := r.lastIndex + 1
	_ = r.Set(item, next)
	return next
}

// Roll evicts the oldest half of the window.
func (r *RollingWindow) Roll() {
	newList := make([]int64, 0, 2*r.size)
	newList = append(newList, r.items[r.size:]...)
	r.items = newList
}
