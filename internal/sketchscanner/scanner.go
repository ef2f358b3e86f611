// Package sketchscanner discovers saved sketch files in a directory.
package sketchscanner

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"chosenoffset.com/polydraw/internal/polyfile"
)

// SketchEntry describes one discovered sketch file.
type SketchEntry struct {
	Name     string // file name
	Path     string // full path
	Polygons int
	Vertices int
}

// ScanDirectory scans a directory for readable sketch files (.txt) and
// returns one entry per file that parses. Unreadable or malformed files are
// skipped rather than failing the scan.
func ScanDirectory(dir string) ([]SketchEntry, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read sketch directory: %w", err)
	}

	var sketches []SketchEntry

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		name := entry.Name()
		if strings.HasPrefix(name, ".") || !strings.HasSuffix(strings.ToLower(name), ".txt") {
			continue
		}

		path := filepath.Join(dir, name)
		polys, err := polyfile.Load(path)
		if err != nil {
			// Not a sketch file, or damaged; skip it
			continue
		}

		vertices := 0
		for _, poly := range polys {
			vertices += len(poly)
		}

		sketches = append(sketches, SketchEntry{
			Name:     name,
			Path:     path,
			Polygons: len(polys),
			Vertices: vertices,
		})
	}

	return sketches, nil
}
