package render

import (
	"errors"
	"image"
	"image/color"
)

// Termination signals a clean shutdown when returned from Game.Update.
// The backend translates it into its own stop mechanism.
var Termination = errors.New("termination requested")

// Vec2 is a 2D position in screen coordinates used for shape outlines.
type Vec2 struct {
	X, Y float32
}

// Renderer is the main drawing interface that abstracts the underlying
// graphics engine. This allows swapping rendering backends without changing
// application logic.
type Renderer interface {
	// Image operations
	NewImage(width, height int) Image

	// Vector operations (for drawing shapes)
	FillCircle(dst Image, x, y, radius float32, clr color.Color)
	StrokeCircle(dst Image, x, y, radius float32, strokeWidth float32, clr color.Color)
	StrokeLine(dst Image, x0, y0, x1, y1 float32, strokeWidth float32, clr color.Color)
	FillRect(dst Image, x, y, width, height float32, clr color.Color)

	// FillPolygon fills the closed shape outlined by pts. Fewer than 3
	// points is a no-op.
	FillPolygon(dst Image, pts []Vec2, clr color.Color)

	// Text operations
	DrawText(dst Image, text string, x, y int, clr color.Color, scale float64)
	MeasureText(text string, scale float64) (width, height int)
}

// Image represents a renderable surface that can be drawn to or drawn from.
type Image interface {
	Bounds() image.Rectangle
	Size() (width, height int)

	Fill(clr color.Color)
	Clear()

	// DrawImage draws src onto this image with its origin at (x, y).
	DrawImage(src Image, x, y float64)

	Dispose()
}

// InputManager handles input from the user (keyboard, mouse, etc).
type InputManager interface {
	IsKeyPressed(key Key) bool
	IsKeyJustPressed(key Key) bool
	CursorPosition() (x, y int)
	IsMouseButtonPressed(button MouseButton) bool
	IsMouseButtonJustPressed(button MouseButton) bool
}

// Key represents a keyboard key.
type Key int

// Key constants for the keys the application binds
const (
	KeyUp Key = iota
	KeyDown
	KeyLeft
	KeyRight
	KeySpace // save and clear
	KeyC     // clear without saving
	KeyH     // toggle HUD
	KeyEscape
)

// MouseButton represents a mouse button.
type MouseButton int

// Mouse button constants
const (
	MouseButtonLeft MouseButton = iota
	MouseButtonRight
	MouseButtonMiddle
)

// Game represents the application interface that the engine will call.
type Game interface {
	// Update updates application logic. It is called every tick (typically
	// 60 times per second). Returning Termination stops the engine cleanly.
	Update() error

	// Draw draws one frame.
	Draw(screen Image)

	// Layout accepts the outside size (e.g., window size) and returns the
	// logical screen size used for rendering and input coordinates.
	Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int)
}

// Engine manages the window and the game loop.
type Engine interface {
	// SetWindowSize sets the window size in pixels.
	SetWindowSize(width, height int)

	// SetWindowTitle sets the window title.
	SetWindowTitle(title string)

	// SetWindowResizable enables or disables window resizing.
	SetWindowResizable(resizable bool)

	// RunGame runs the event loop with the provided game. This is a
	// blocking call that runs until the game ends.
	RunGame(game Game) error
}
