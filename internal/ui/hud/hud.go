// Package hud provides the status overlay for the sketch canvas: cursor
// position, polygon counts, hovered-polygon details, transient messages,
// and the key help line.
package hud

import (
	"fmt"
	"image/color"

	"chosenoffset.com/polydraw/internal/geometry"
	"chosenoffset.com/polydraw/internal/render"
)

const helpText = "click: add vertex | arrows: finish polygon | space: save+clear | c: clear | h: hud | esc: quit"

// PolygonStats describes the finalized polygon currently under the cursor.
type PolygonStats struct {
	Index    int // position in the finalized sequence, 0-based
	Vertices int
	Area     float64
	Width    float64 // bounding box width
	Height   float64 // bounding box height
}

// Frame is the per-frame state the HUD renders. It is rebuilt by the
// controller every tick.
type Frame struct {
	Cursor         geometry.Point
	FinalizedCount int
	ActiveVertices int
	TotalVertices  int
	Hovered        *PolygonStats
	Messages       []string
}

// HUD draws the status overlay.
type HUD struct {
	renderer     render.Renderer
	screenWidth  int
	screenHeight int
	visible      bool
}

// New creates a HUD sized for the given screen.
func New(renderer render.Renderer, screenWidth, screenHeight int) *HUD {
	return &HUD{
		renderer:     renderer,
		screenWidth:  screenWidth,
		screenHeight: screenHeight,
		visible:      true,
	}
}

// Toggle flips HUD visibility and returns the new state.
func (h *HUD) Toggle() bool {
	h.visible = !h.visible
	return h.visible
}

// Visible reports whether the HUD is currently shown.
func (h *HUD) Visible() bool {
	return h.visible
}

// Draw renders the overlay onto the screen.
func (h *HUD) Draw(screen render.Image, frame Frame) {
	if !h.visible {
		return
	}

	// Cursor readout in the top-left corner
	cursorText := fmt.Sprintf("Cursor Position: (%d, %d)", frame.Cursor.X, frame.Cursor.Y)
	h.drawLabel(screen, cursorText, 10, 20)

	counts := fmt.Sprintf("Polygons: %d | Active vertices: %d | Total vertices: %d",
		frame.FinalizedCount, frame.ActiveVertices, frame.TotalVertices)
	h.drawLabel(screen, counts, 10, 36)

	if frame.Hovered != nil {
		hover := fmt.Sprintf("Polygon #%d: %d vertices, area %.0f, bounds %.0fx%.0f",
			frame.Hovered.Index+1, frame.Hovered.Vertices,
			frame.Hovered.Area, frame.Hovered.Width, frame.Hovered.Height)
		h.drawLabel(screen, hover, 10, 52)
	}

	// Transient messages stack above the help line
	y := h.screenHeight - 40
	for i := len(frame.Messages) - 1; i >= 0; i-- {
		h.drawLabel(screen, frame.Messages[i], 10, y)
		y -= 16
	}

	h.drawLabel(screen, helpText, 10, h.screenHeight-20)
}

// drawLabel draws text over a translucent backing strip so it stays legible
// on top of the canvas.
func (h *HUD) drawLabel(screen render.Image, text string, x, y int) {
	w, lineH := h.renderer.MeasureText(text, 1.0)
	h.renderer.FillRect(screen,
		float32(x-4), float32(y-2),
		float32(w+8), float32(lineH+4),
		color.RGBA{0, 0, 0, 140})
	h.renderer.DrawText(screen, text, x, y, color.White, 1.0)
}
