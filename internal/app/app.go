// Package app is the interaction controller for the sketch canvas. It
// translates mouse and key input into polygon store operations and draws
// the canvas every frame.
package app

import (
	"errors"
	"fmt"
	"log"

	"chosenoffset.com/polydraw/internal/geometry"
	"chosenoffset.com/polydraw/internal/polyfile"
	"chosenoffset.com/polydraw/internal/render"
	"chosenoffset.com/polydraw/internal/sketch"
	"chosenoffset.com/polydraw/internal/ui/hud"
)

// Message is a transient on-screen notification.
type Message struct {
	Text     string
	TimeLeft float64
}

// App holds all application state and implements render.Game.
type App struct {
	ScreenWidth  int
	ScreenHeight int
	Store        *sketch.Store
	Renderer     render.Renderer
	InputMgr     render.InputManager
	HUD          *hud.HUD
	SavePath     string

	cursor   geometry.Point
	messages []Message
	grid     render.Image
}

// New creates the controller and registers it as the store's listener.
func New(store *sketch.Store, renderer render.Renderer, inputMgr render.InputManager, savePath string, screenWidth, screenHeight int) *App {
	a := &App{
		ScreenWidth:  screenWidth,
		ScreenHeight: screenHeight,
		Store:        store,
		Renderer:     renderer,
		InputMgr:     inputMgr,
		HUD:          hud.New(renderer, screenWidth, screenHeight),
		SavePath:     savePath,
	}
	store.SetListener(a)
	return a
}

// Update handles one tick of input.
func (a *App) Update() error {
	// Delta time for message timers (assuming 60 FPS)
	dt := 1.0 / 60.0
	a.updateMessages(dt)

	x, y := a.InputMgr.CursorPosition()
	a.cursor = geometry.Point{X: x, Y: y}

	if a.InputMgr.IsMouseButtonJustPressed(render.MouseButtonLeft) {
		a.Store.AppendVertex(a.cursor)
	}

	// Any arrow key finishes the active polygon and starts a new one
	if a.InputMgr.IsKeyJustPressed(render.KeyUp) ||
		a.InputMgr.IsKeyJustPressed(render.KeyDown) ||
		a.InputMgr.IsKeyJustPressed(render.KeyLeft) ||
		a.InputMgr.IsKeyJustPressed(render.KeyRight) {
		a.Store.FinalizeActive()
	}

	if a.InputMgr.IsKeyJustPressed(render.KeySpace) {
		a.SaveAndClear()
	}

	if a.InputMgr.IsKeyJustPressed(render.KeyC) {
		a.Store.ClearAll()
	}

	if a.InputMgr.IsKeyJustPressed(render.KeyH) {
		a.HUD.Toggle()
	}

	if a.InputMgr.IsKeyJustPressed(render.KeyEscape) {
		return render.Termination
	}

	return nil
}

// Layout returns the application's logical screen size.
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.ScreenWidth, a.ScreenHeight
}

// SaveAndClear writes the finalized polygons to the session file and, on
// success, clears the canvas. An empty canvas or an I/O failure is reported
// and leaves the canvas untouched.
func (a *App) SaveAndClear() {
	polys := a.Store.Finalized()

	if err := polyfile.Save(a.SavePath, polys); err != nil {
		if errors.Is(err, polyfile.ErrNoPolygons) {
			a.ShowMessage("No polygons to save!")
		} else {
			a.ShowMessage("Save failed, canvas kept")
			log.Printf("Error saving polygon data: %v", err)
		}
		return
	}

	a.ShowMessage(fmt.Sprintf("Saved %d polygons to %s", len(polys), a.SavePath))
	log.Printf("Polygons saved to %s", a.SavePath)
	a.Store.ClearAll()
}

// ShowMessage adds a new message to be displayed on screen.
func (a *App) ShowMessage(text string) {
	a.messages = append(a.messages, Message{Text: text, TimeLeft: 3.0})
}

func (a *App) updateMessages(dt float64) {
	var active []Message
	for _, msg := range a.messages {
		msg.TimeLeft -= dt
		if msg.TimeLeft > 0 {
			active = append(active, msg)
		}
	}
	a.messages = active
}

// --- sketch.Listener ---

// VertexAdded logs each vertex as it is placed.
func (a *App) VertexAdded(p geometry.Point) {
	log.Printf("Point added: (%d, %d)", p.X, p.Y)
}

// PolygonFinalized reports a completed polygon.
func (a *App) PolygonFinalized(poly geometry.Polygon) {
	log.Printf("Polygon added: %d", a.Store.Len())
	a.ShowMessage(fmt.Sprintf("Polygon %d finished (%d vertices)", a.Store.Len(), len(poly)))
}

// Cleared reports that the canvas was emptied.
func (a *App) Cleared() {
	log.Printf("Canvas cleared")
}
