// Package polyfile reads and writes the line-oriented polygon text format:
// one "(x, y)" line per vertex, a blank line after each polygon, and
// "#"-prefixed comment lines that are ignored on read.
package polyfile

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"chosenoffset.com/polydraw/internal/geometry"
)

// ErrNoPolygons is returned by Marshal and Save when the polygon set is
// empty. Nothing is written in that case.
var ErrNoPolygons = errors.New("no polygons to save")

// MalformedLineError reports an input line that could not be parsed as an
// "(x, y)" coordinate pair.
type MalformedLineError struct {
	Line int    // 1-based line number in the input
	Text string // offending line, trimmed
}

func (e *MalformedLineError) Error() string {
	return fmt.Sprintf("malformed coordinate line %d: %q", e.Line, e.Text)
}

// Marshal renders the polygons in order. Each vertex becomes one "(x, y)"
// line, and every polygon (including the last) is followed by exactly one
// blank line.
func Marshal(polys []geometry.Polygon) ([]byte, error) {
	if len(polys) == 0 {
		return nil, ErrNoPolygons
	}

	var buf bytes.Buffer
	for _, poly := range polys {
		for _, p := range poly {
			fmt.Fprintf(&buf, "(%d, %d)\n", p.X, p.Y)
		}
		buf.WriteByte('\n') // polygon separator
	}

	return buf.Bytes(), nil
}

// Parse reads polygons from r. Lines are trimmed; a line starting with '#'
// is a comment and does not affect polygon boundaries; a blank line ends the
// polygon in progress (runs of blank lines are equivalent to one); any other
// line must parse as "(x, y)". A polygon still in progress at end of input
// is committed. The first unparsable line aborts the parse with a
// *MalformedLineError and no polygons are returned.
func Parse(r io.Reader) ([]geometry.Polygon, error) {
	var (
		polys   []geometry.Polygon
		current geometry.Polygon
		lineNo  int
	)

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())

		if strings.HasPrefix(line, "#") {
			continue
		}

		if line == "" {
			if len(current) > 0 {
				polys = append(polys, current)
				current = nil
			}
			continue
		}

		p, err := parsePoint(line)
		if err != nil {
			return nil, &MalformedLineError{Line: lineNo, Text: line}
		}
		current = append(current, p)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read polygon data: %w", err)
	}

	if len(current) > 0 {
		polys = append(polys, current)
	}

	return polys, nil
}

// Unmarshal parses polygons from an in-memory buffer.
func Unmarshal(data []byte) ([]geometry.Polygon, error) {
	return Parse(bytes.NewReader(data))
}

// parsePoint parses a single "(x, y)" line by stripping the surrounding
// parentheses and splitting on the comma.
func parsePoint(line string) (geometry.Point, error) {
	if len(line) < 2 || line[0] != '(' || line[len(line)-1] != ')' {
		return geometry.Point{}, fmt.Errorf("missing parentheses")
	}

	fields := strings.Split(line[1:len(line)-1], ",")
	if len(fields) != 2 {
		return geometry.Point{}, fmt.Errorf("expected 2 coordinates, got %d", len(fields))
	}

	x, err := strconv.Atoi(strings.TrimSpace(fields[0]))
	if err != nil {
		return geometry.Point{}, err
	}
	y, err := strconv.Atoi(strings.TrimSpace(fields[1]))
	if err != nil {
		return geometry.Point{}, err
	}

	return geometry.Point{X: x, Y: y}, nil
}

// Save writes the polygon set to the file at path.
func Save(path string, polys []geometry.Polygon) error {
	data, err := Marshal(polys)
	if err != nil {
		return err
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write polygon file %s: %w", path, err)
	}

	return nil
}

// Load reads a polygon set from the file at path. A parse failure discards
// the whole load; callers never see a partial set.
func Load(path string) ([]geometry.Polygon, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read polygon file %s: %w", path, err)
	}

	polys, err := Unmarshal(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse polygon file %s: %w", path, err)
	}

	return polys, nil
}
