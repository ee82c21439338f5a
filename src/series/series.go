// Package series defines the named sample sequences that flow between the
// ingest listener, the store, and the HTTP service, together with their
// canonical JSON encoding.
package series

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/mosaicnetworks/midline/src/common"
	"github.com/mosaicnetworks/midline/src/stats"
	"github.com/ugorji/go/codec"
)

// MaxNameLen bounds series names so they stay usable as database key
// prefixes.
const MaxNameLen = 255

// ValidateName checks that a name can travel through the line protocol and
// the store key-space. Names must be non-empty, at most MaxNameLen bytes,
// and free of ':' which separates name from value on the wire.
func ValidateName(name string) error {
	if len(name) == 0 {
		return fmt.Errorf("series name is empty")
	}
	if len(name) > MaxNameLen {
		return fmt.Errorf("series name exceeds %d bytes: %q", MaxNameLen, name)
	}
	if strings.ContainsRune(name, ':') {
		return fmt.Errorf("series name contains ':': %q", name)
	}
	return nil
}

// Series is a named sequence of integer samples in arrival order.
type Series struct {
	Name   string
	Values []int64
}

// NewSeries instantiates a Series from a name and an initial set of values.
// The values are copied, so the Series does not alias the caller's slice.
func NewSeries(name string, values []int64) *Series {
	v := make([]int64, len(values))
	copy(v, values)

	return &Series{
		Name:   name,
		Values: v,
	}
}

// ID returns a stable numeric identifier derived from the series name.
func (s *Series) ID() uint32 {
	return common.Hash32([]byte(s.Name))
}

// Append adds a sample at the end of the series.
func (s *Series) Append(value int64) {
	s.Values = append(s.Values, value)
}

// Len returns the number of samples held by the series.
func (s *Series) Len() int {
	return len(s.Values)
}

// Summary computes the positional statistics of the series' samples.
func (s *Series) Summary() stats.Summary {
	return stats.Summarize(s.Values)
}

// Marshal - json encoding of Series
func (s *Series) Marshal() ([]byte, error) {
	b := new(bytes.Buffer)
	jh := new(codec.JsonHandle)
	jh.Canonical = true
	enc := codec.NewEncoder(b, jh)

	if err := enc.Encode(s); err != nil {
		return nil, err
	}

	return b.Bytes(), nil
}

// Unmarshal ...
func (s *Series) Unmarshal(data []byte) error {
	b := bytes.NewBuffer(data)
	jh := new(codec.JsonHandle)
	jh.Canonical = true
	dec := codec.NewDecoder(b, jh)

	if err := dec.Decode(s); err != nil {
		return err
	}

	return nil
}
