package app

import (
	"fmt"
	"image/color"

	"chosenoffset.com/polydraw/internal/geometry"
	"chosenoffset.com/polydraw/internal/render"
	"chosenoffset.com/polydraw/internal/ui/hud"
)

// Canvas palette. Finalized polygons are black on a light background, the
// active polygon red, vertices blue, centroids red.
var (
	backgroundColor = color.RGBA{238, 238, 238, 255}
	gridColor       = color.RGBA{215, 215, 215, 255}
	finalizedColor  = color.RGBA{0, 0, 0, 255}
	polygonFill     = color.RGBA{70, 110, 180, 40}
	activeColor     = color.RGBA{200, 30, 30, 255}
	vertexColor     = color.RGBA{30, 30, 220, 255}
	centroidColor   = color.RGBA{220, 30, 30, 255}
	approxColor     = color.RGBA{220, 130, 20, 255}
	highlightColor  = color.RGBA{240, 200, 40, 255}
)

const gridSpacing = 50

// Draw renders one frame: grid backdrop, finalized polygons with their
// centroids, the active polygon, hover highlight, then the HUD.
func (a *App) Draw(screen render.Image) {
	screen.Fill(backgroundColor)
	a.drawGrid(screen)

	for _, poly := range a.Store.Finalized() {
		a.drawPolygon(screen, poly, finalizedColor, true)

		if c, err := geometry.Centroid(poly); err == nil {
			a.Renderer.FillCircle(screen, float32(c.X), float32(c.Y), 5, centroidColor)
		}
		// Degenerate polygons have no exact centroid to draw.

		if ac, err := geometry.ApproxCentroid(poly); err == nil {
			a.Renderer.StrokeCircle(screen, float32(ac.X), float32(ac.Y), 5, 1.5, approxColor)
		}
	}

	if active := a.Store.Active(); len(active) > 0 {
		a.drawPolygon(screen, active, activeColor, false)
	}

	a.drawHoverHighlight(screen)
	a.HUD.Draw(screen, a.buildFrame())
}

// drawPolygon strokes the polygon's edges and marks its vertices with
// labeled dots. Closed polygons with at least 3 vertices also get a
// translucent fill.
func (a *App) drawPolygon(dst render.Image, poly geometry.Polygon, clr color.Color, closed bool) {
	if len(poly) == 0 {
		return
	}

	if closed && len(poly) >= 3 {
		pts := make([]render.Vec2, len(poly))
		for i, p := range poly {
			pts[i] = render.Vec2{X: float32(p.X), Y: float32(p.Y)}
		}
		a.Renderer.FillPolygon(dst, pts, polygonFill)
	}

	for i := 0; i < len(poly)-1; i++ {
		a.Renderer.StrokeLine(dst,
			float32(poly[i].X), float32(poly[i].Y),
			float32(poly[i+1].X), float32(poly[i+1].Y),
			1.5, clr)
	}
	if closed && len(poly) > 2 {
		last := poly[len(poly)-1]
		a.Renderer.StrokeLine(dst,
			float32(last.X), float32(last.Y),
			float32(poly[0].X), float32(poly[0].Y),
			1.5, clr)
	}

	for _, p := range poly {
		a.Renderer.FillCircle(dst, float32(p.X), float32(p.Y), 3, vertexColor)
		label := fmt.Sprintf("(%d, %d)", p.X, p.Y)
		a.Renderer.DrawText(dst, label, p.X+5, p.Y+5, vertexColor, 1.0)
	}
}

// drawGrid draws the cached grid backdrop, building it on first use.
func (a *App) drawGrid(screen render.Image) {
	if a.grid == nil {
		a.grid = a.Renderer.NewImage(a.ScreenWidth, a.ScreenHeight)
		for x := gridSpacing; x < a.ScreenWidth; x += gridSpacing {
			a.Renderer.StrokeLine(a.grid, float32(x), 0, float32(x), float32(a.ScreenHeight), 1, gridColor)
		}
		for y := gridSpacing; y < a.ScreenHeight; y += gridSpacing {
			a.Renderer.StrokeLine(a.grid, 0, float32(y), float32(a.ScreenWidth), float32(y), 1, gridColor)
		}
	}
	screen.DrawImage(a.grid, 0, 0)
}

// drawHoverHighlight rings the vertex nearest the cursor on the hovered
// polygon when the cursor is close enough to it.
func (a *App) drawHoverHighlight(screen render.Image) {
	_, poly := a.hoveredPolygon()
	if poly == nil {
		return
	}

	idx, dist := geometry.NearestVertex(poly, a.cursor)
	if idx < 0 || dist > 10 {
		return
	}

	v := poly[idx]
	a.Renderer.StrokeCircle(screen, float32(v.X), float32(v.Y), 7, 2, highlightColor)
}

// hoveredPolygon returns the topmost finalized polygon whose bounding box
// contains the cursor, or (-1, nil) when there is none.
func (a *App) hoveredPolygon() (int, geometry.Polygon) {
	finalized := a.Store.Finalized()
	for i := len(finalized) - 1; i >= 0; i-- {
		if geometry.ContainsCursor(finalized[i], a.cursor) {
			return i, finalized[i]
		}
	}
	return -1, nil
}

// buildFrame gathers the per-frame state the HUD renders.
func (a *App) buildFrame() hud.Frame {
	frame := hud.Frame{
		Cursor:         a.cursor,
		FinalizedCount: a.Store.Len(),
		ActiveVertices: len(a.Store.Active()),
		TotalVertices:  a.Store.TotalVertices(),
	}

	if idx, poly := a.hoveredPolygon(); poly != nil {
		stats := &hud.PolygonStats{
			Index:    idx,
			Vertices: len(poly),
			Area:     geometry.Area(poly),
		}
		if b, err := geometry.Bounds(poly); err == nil {
			stats.Width = b.Width()
			stats.Height = b.Height()
		}
		frame.Hovered = stats
	}

	for _, msg := range a.messages {
		frame.Messages = append(frame.Messages, msg.Text)
	}

	return frame
}
