// Package flamegraph renders folded stack lines as an SVG flame graph.
//
// Input lines have the form "<frame>;<frame>;... <count>". Lines sharing a
// path are summed before drawing, so the caller may feed the same stack any
// number of times.
package flamegraph

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/xtxerr/parquet-flamegraph/internal/errors"
)

// Separator delimits frames within a stack path.
const Separator = ";"

// Collector aggregates stack lines until they are rendered.
type Collector struct {
	counts map[string]uint64
	total  uint64
	lines  int
}

// NewCollector creates an empty collector.
func NewCollector() *Collector {
	return &Collector{counts: make(map[string]uint64)}
}

// Add adds count to the stack at path.
func (c *Collector) Add(path string, count uint64) {
	c.counts[path] += count
	c.total += count
	c.lines++
}

// AddLine parses one folded line and adds it. Blank lines are ignored.
func (c *Collector) AddLine(line string) error {
	path, count, ok, err := ParseLine(line)
	if err != nil || !ok {
		return err
	}
	c.Add(path, count)
	return nil
}

// AddLines adds every line, stopping at the first malformed one.
func (c *Collector) AddLines(lines []string) error {
	for i, line := range lines {
		if err := c.AddLine(line); err != nil {
			return errors.Wrapf(err, "line %d", i+1)
		}
	}
	return nil
}

// Count returns the aggregated count of the stack at path.
func (c *Collector) Count(path string) uint64 {
	return c.counts[path]
}

// Total returns the sum of all counts.
func (c *Collector) Total() uint64 {
	return c.total
}

// Stacks returns the number of distinct stack paths.
func (c *Collector) Stacks() int {
	return len(c.counts)
}

// Lines returns the number of lines added.
func (c *Collector) Lines() int {
	return c.lines
}

// ParseLine splits a folded line at its last space. ok is false for blank
// lines.
func ParseLine(line string) (path string, count uint64, ok bool, err error) {
	line = strings.TrimRight(line, " \t\r\n")
	if line == "" {
		return "", 0, false, nil
	}

	idx := strings.LastIndexByte(line, ' ')
	if idx <= 0 {
		return "", 0, false, fmt.Errorf("%q: missing count: %w", line, errors.ErrInvalidStackLine)
	}

	count, err = strconv.ParseUint(line[idx+1:], 10, 64)
	if err != nil {
		return "", 0, false, fmt.Errorf("%q: bad count: %w", line, errors.ErrInvalidStackLine)
	}

	path = strings.TrimRight(line[:idx], " ")
	if path == "" {
		return "", 0, false, fmt.Errorf("%q: empty stack: %w", line, errors.ErrInvalidStackLine)
	}

	return path, count, true, nil
}

// FromLines aggregates lines and writes one SVG document to w.
func FromLines(opts Options, lines []string, w io.Writer) error {
	c := NewCollector()
	if err := c.AddLines(lines); err != nil {
		return err
	}
	return c.Render(opts, w)
}
