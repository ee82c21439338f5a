package series

import (
	"bytes"

	"github.com/ugorji/go/codec"
)

// Meta records what the store knows about a series without carrying its
// samples: the name and the index of the last sample written. LastIndex is
// -1 when the series exists but holds no samples yet.
type Meta struct {
	Name      string
	LastIndex int
}

// Marshal - json encoding of Meta
func (m *Meta) Marshal() ([]byte, error) {
	b := new(bytes.Buffer)
	jh := new(codec.JsonHandle)
	jh.Canonical = true
	enc := codec.NewEncoder(b, jh)

	if err := enc.Encode(m); err != nil {
		return nil, err
	}

	return b.Bytes(), nil
}

// Unmarshal ...
func (m *Meta) Unmarshal(data []byte) error {
	b := bytes.NewBuffer(data)
	jh := new(codec.JsonHandle)
	jh.Canonical = true
	dec := codec.NewDecoder(b, jh)

	if err := dec.Decode(m); err != nil {
		return err
	}

	return nil
}
