package ingest

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/mosaicnetworks/midline/src/series"
)

// Sample is a single parsed line from the ingest protocol: a value destined
// to a named series.
type Sample struct {
	Series string
	Value  int64
}

// ParseLine parses one line of the ingest protocol. It returns nil, without
// an error, for blank lines and '#' comments.
func ParseLine(line string) (*Sample, error) {
	line = strings.TrimSpace(line)

	if len(line) == 0 || strings.HasPrefix(line, "#") {
		return nil, nil
	}

	parts := strings.SplitN(line, ":", 2)
	if len(parts) != 2 {
		return nil, fmt.Errorf("missing ':' separator: %q", line)
	}

	name := strings.TrimSpace(parts[0])
	if err := series.ValidateName(name); err != nil {
		return nil, err
	}

	value, err := strconv.ParseInt(strings.TrimSpace(parts[1]), 10, 64)
	if err != nil {
		return nil, fmt.Errorf("bad value in %q: %v", line, err)
	}

	return &Sample{Series: name, Value: value}, nil
}
