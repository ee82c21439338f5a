package series

import (
	"reflect"
	"strings"
	"testing"
)

func TestValidateName(t *testing.T) {
	for _, c := range []struct {
		name string
		ok   bool
	}{
		{"cpu", true},
		{"disk_io", true},
		{strings.Repeat("x", MaxNameLen), true},
		{"", false},
		{"cpu:load", false},
		{strings.Repeat("x", MaxNameLen+1), false},
	} {
		err := ValidateName(c.name)
		if c.ok && err != nil {
			t.Errorf("ValidateName(%q) => %v, expected nil", c.name, err)
		}
		if !c.ok && err == nil {
			t.Errorf("ValidateName(%q) => nil, expected error", c.name)
		}
	}
}

func TestSeriesID(t *testing.T) {
	// IDs are persisted alongside samples, so the hash must not drift
	// between versions.
	for _, c := range []struct {
		name string
		id   uint32
	}{
		{"cpu", 4182440329},
		{"mem", 3400358910},
	} {
		s := NewSeries(c.name, nil)
		if got := s.ID(); got != c.id {
			t.Errorf("ID(%q) => %d != %d", c.name, got, c.id)
		}
	}
}

func TestNewSeriesCopiesValues(t *testing.T) {
	values := []int64{1, 2, 3}
	s := NewSeries("cpu", values)

	values[0] = 99

	if s.Values[0] != 1 {
		t.Errorf("Series aliased the caller's slice: %d", s.Values)
	}
}

func TestSeriesMarshal(t *testing.T) {
	s := NewSeries("cpu", []int64{10, 20, 30})
	s.Append(40)

	raw, err := s.Marshal()
	if err != nil {
		t.Fatal(err)
	}

	var back Series
	if err := back.Unmarshal(raw); err != nil {
		t.Fatal(err)
	}

	if !reflect.DeepEqual(*s, back) {
		t.Errorf("Series does not survive a round trip: %+v != %+v", back, *s)
	}

	again, err := s.Marshal()
	if err != nil {
		t.Fatal(err)
	}
	if string(raw) != string(again) {
		t.Errorf("Encoding is not deterministic:\n%s\n%s", raw, again)
	}
}

func TestMetaMarshal(t *testing.T) {
	m := &Meta{Name: "cpu", LastIndex: 41}

	raw, err := m.Marshal()
	if err != nil {
		t.Fatal(err)
	}

	var back Meta
	if err := back.Unmarshal(raw); err != nil {
		t.Fatal(err)
	}

	if back != *m {
		t.Errorf("Meta does not survive a round trip: %+v != %+v", back, *m)
	}
}

func TestSeriesSummary(t *testing.T) {
	s := NewSeries("cpu", []int64{3, 1, 2})

	sum := s.Summary()
	if sum.Count != 3 || sum.Median != 2 {
		t.Errorf("Summary() => %+v", sum)
	}
}
