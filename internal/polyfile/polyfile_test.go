package polyfile

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"chosenoffset.com/polydraw/internal/geometry"
)

func TestMarshalFormat(t *testing.T) {
	polys := []geometry.Polygon{
		{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}},
		{{X: -5, Y: 7}, {X: 20, Y: -3}},
	}

	data, err := Marshal(polys)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}

	expected := "(0, 0)\n(10, 0)\n(10, 10)\n\n(-5, 7)\n(20, -3)\n\n"
	if string(data) != expected {
		t.Errorf("Expected %q, got %q", expected, string(data))
	}
}

func TestMarshalEmpty(t *testing.T) {
	_, err := Marshal(nil)
	if !errors.Is(err, ErrNoPolygons) {
		t.Errorf("Expected ErrNoPolygons, got %v", err)
	}
}

func TestRoundTrip(t *testing.T) {
	cases := []struct {
		name  string
		polys []geometry.Polygon
	}{
		{"single polygon", []geometry.Polygon{{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}, {X: 0, Y: 10}}}},
		{"multiple polygons", []geometry.Polygon{
			{{X: 0, Y: 0}, {X: 100, Y: 0}, {X: 50, Y: 80}},
			{{X: 200, Y: 200}, {X: 300, Y: 200}, {X: 300, Y: 300}, {X: 200, Y: 300}},
			{{X: 5, Y: 5}},
		}},
		{"negative coordinates", []geometry.Polygon{{{X: -10, Y: -20}, {X: -1, Y: 0}, {X: 0, Y: -1}}}},
	}

	for _, tc := range cases {
		data, err := Marshal(tc.polys)
		if err != nil {
			t.Fatalf("%s: Marshal failed: %v", tc.name, err)
		}

		parsed, err := Unmarshal(data)
		if err != nil {
			t.Fatalf("%s: Unmarshal failed: %v", tc.name, err)
		}

		if !reflect.DeepEqual(parsed, tc.polys) {
			t.Errorf("%s: round trip mismatch: expected %v, got %v", tc.name, tc.polys, parsed)
		}
	}
}

func TestParseCommentsAndBlanks(t *testing.T) {
	input := `# sketch header comment

# another comment

`
	polys, err := Unmarshal([]byte(input))
	if err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if len(polys) != 0 {
		t.Errorf("Expected no polygons from comments and blanks, got %d", len(polys))
	}
}

func TestParseCommentInsidePolygon(t *testing.T) {
	// A comment line must not end the polygon in progress
	input := "(0, 0)\n# midpoint note\n(10, 0)\n(10, 10)\n"

	polys, err := Unmarshal([]byte(input))
	if err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if len(polys) != 1 {
		t.Fatalf("Expected 1 polygon, got %d", len(polys))
	}
	if len(polys[0]) != 3 {
		t.Errorf("Expected 3 vertices, got %d", len(polys[0]))
	}
}

func TestParseConsecutiveBlankLines(t *testing.T) {
	input := "(0, 0)\n(1, 1)\n\n\n\n(2, 2)\n(3, 3)\n\n"

	polys, err := Unmarshal([]byte(input))
	if err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if len(polys) != 2 {
		t.Errorf("Expected 2 polygons, got %d", len(polys))
	}
}

func TestParseCommitsTrailingPolygon(t *testing.T) {
	// No blank line after the last polygon
	input := "(0, 0)\n(5, 5)"

	polys, err := Unmarshal([]byte(input))
	if err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if len(polys) != 1 || len(polys[0]) != 2 {
		t.Fatalf("Expected 1 polygon with 2 vertices, got %v", polys)
	}
}

func TestParseWhitespaceTolerance(t *testing.T) {
	input := "  ( 10 ,  20 )  \n\t(30,40)\n"

	polys, err := Unmarshal([]byte(input))
	if err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	expected := []geometry.Polygon{{{X: 10, Y: 20}, {X: 30, Y: 40}}}
	if !reflect.DeepEqual(polys, expected) {
		t.Errorf("Expected %v, got %v", expected, polys)
	}
}

func TestParseMalformedLines(t *testing.T) {
	cases := []struct {
		name  string
		input string
		line  int
	}{
		{"non-integer field", "(abc, 5)\n", 1},
		{"missing parentheses", "1, 2\n", 1},
		{"missing close paren", "(1, 2\n", 1},
		{"too many fields", "(1, 2, 3)\n", 1},
		{"too few fields", "(7)\n", 1},
		{"bad line after good polygon", "(0, 0)\n(1, 1)\n\n(oops)\n", 4},
	}

	for _, tc := range cases {
		polys, err := Unmarshal([]byte(tc.input))

		var malformed *MalformedLineError
		if !errors.As(err, &malformed) {
			t.Errorf("%s: expected MalformedLineError, got %v", tc.name, err)
			continue
		}
		if malformed.Line != tc.line {
			t.Errorf("%s: expected error on line %d, got %d", tc.name, tc.line, malformed.Line)
		}
		// All-or-nothing: earlier polygons must be discarded too
		if polys != nil {
			t.Errorf("%s: expected no partial result, got %v", tc.name, polys)
		}
	}
}

func TestSaveAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sketch.txt")

	polys := []geometry.Polygon{
		{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}, {X: 0, Y: 10}},
		{{X: 100, Y: 100}, {X: 150, Y: 100}, {X: 125, Y: 140}},
	}

	if err := Save(path, polys); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if !reflect.DeepEqual(loaded, polys) {
		t.Errorf("Expected %v, got %v", polys, loaded)
	}
}

func TestSaveEmptyWritesNothing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sketch.txt")

	err := Save(path, nil)
	if !errors.Is(err, ErrNoPolygons) {
		t.Fatalf("Expected ErrNoPolygons, got %v", err)
	}

	if _, err := os.Stat(path); !errors.Is(err, os.ErrNotExist) {
		t.Error("Expected no file to be written for an empty polygon set")
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.txt"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Expected wrapped os.ErrNotExist, got %v", err)
	}
}

func TestLoadMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.txt")
	if err := os.WriteFile(path, []byte("(0, 0)\n(1, 1)\n\nnot a point\n"), 0644); err != nil {
		t.Fatalf("Failed to write temp file: %v", err)
	}

	polys, err := Load(path)

	var malformed *MalformedLineError
	if !errors.As(err, &malformed) {
		t.Fatalf("Expected MalformedLineError, got %v", err)
	}
	if polys != nil {
		t.Errorf("Expected no partial result from a malformed file, got %v", polys)
	}
}
