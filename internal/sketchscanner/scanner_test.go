package sketchscanner

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write %s: %v", name, err)
	}
}

func TestScanDirectory(t *testing.T) {
	dir := t.TempDir()

	writeFile(t, dir, "triangle.txt", "(0, 0)\n(10, 0)\n(5, 8)\n\n")
	writeFile(t, dir, "two_shapes.txt", "(0, 0)\n(4, 0)\n(4, 4)\n\n(10, 10)\n(20, 10)\n(15, 18)\n\n")
	writeFile(t, dir, "broken.txt", "not a polygon file\n")
	writeFile(t, dir, "notes.json", `{"polygons": 3}`)
	writeFile(t, dir, ".hidden.txt", "(1, 1)\n\n")

	if err := os.Mkdir(filepath.Join(dir, "subdir"), 0755); err != nil {
		t.Fatalf("Failed to create subdir: %v", err)
	}

	sketches, err := ScanDirectory(dir)
	if err != nil {
		t.Fatalf("ScanDirectory failed: %v", err)
	}

	if len(sketches) != 2 {
		t.Fatalf("Expected 2 sketches, got %d", len(sketches))
	}

	byName := make(map[string]SketchEntry)
	for _, s := range sketches {
		byName[s.Name] = s
	}

	tri, ok := byName["triangle.txt"]
	if !ok {
		t.Fatal("Expected triangle.txt in scan results")
	}
	if tri.Polygons != 1 || tri.Vertices != 3 {
		t.Errorf("Expected 1 polygon with 3 vertices, got %d/%d", tri.Polygons, tri.Vertices)
	}

	two, ok := byName["two_shapes.txt"]
	if !ok {
		t.Fatal("Expected two_shapes.txt in scan results")
	}
	if two.Polygons != 2 || two.Vertices != 6 {
		t.Errorf("Expected 2 polygons with 6 vertices, got %d/%d", two.Polygons, two.Vertices)
	}
}

func TestScanDirectoryMissing(t *testing.T) {
	_, err := ScanDirectory(filepath.Join(t.TempDir(), "nope"))
	if err == nil {
		t.Error("Expected error for missing directory")
	}
}
