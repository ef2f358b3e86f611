package main

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log"
	"path/filepath"

	"chosenoffset.com/polydraw/internal/app"
	"chosenoffset.com/polydraw/internal/polyfile"
	ebitenrender "chosenoffset.com/polydraw/internal/render/ebiten"
	"chosenoffset.com/polydraw/internal/sketch"
	"chosenoffset.com/polydraw/internal/sketchscanner"
)

func main() {
	// Command-line flags
	file := flag.String("file", "polygon_coordinates.txt", "Sketch file to load on startup and save to")
	list := flag.Bool("list", false, "List sketch files next to -file and exit")
	width := flag.Int("width", 800, "Window width in pixels")
	height := flag.Int("height", 600, "Window height in pixels")
	flag.Parse()

	if *list {
		listSketches(filepath.Dir(*file))
		return
	}

	// Initialize the renderer backend (ebiten)
	renderer := ebitenrender.NewRenderer()
	inputMgr := ebitenrender.NewInputManager()
	engine := ebitenrender.NewEngine()

	store := sketch.New()

	// Load polygons from file on startup; a missing or damaged file means
	// an empty canvas, never a failed start.
	polys, err := polyfile.Load(*file)
	switch {
	case err == nil:
		store.Replace(polys)
		log.Printf("Loaded %d polygons from %s", len(polys), *file)
	case errors.Is(err, fs.ErrNotExist):
		log.Printf("No sketch at %s, starting with an empty canvas", *file)
	default:
		log.Printf("Warning: %v (starting with an empty canvas)", err)
	}

	a := app.New(store, renderer, inputMgr, *file, *width, *height)

	engine.SetWindowSize(*width, *height)
	engine.SetWindowTitle(fmt.Sprintf("Polydraw - %s", filepath.Base(*file)))
	engine.SetWindowResizable(false)

	log.Printf("Starting polydraw...")
	if err := engine.RunGame(a); err != nil {
		log.Fatal(err)
	}
}

// listSketches prints the sketch files found in dir.
func listSketches(dir string) {
	sketches, err := sketchscanner.ScanDirectory(dir)
	if err != nil {
		log.Fatalf("Failed to scan %s: %v", dir, err)
	}

	if len(sketches) == 0 {
		fmt.Printf("No sketch files in %s\n", dir)
		return
	}

	for _, s := range sketches {
		fmt.Printf("%-30s %d polygons, %d vertices\n", s.Name, s.Polygons, s.Vertices)
	}
}
