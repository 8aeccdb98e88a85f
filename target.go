package bftxt

import "github.com/tinne26/bftxt/argb"
import "github.com/tinne26/bftxt/font"

// The rendering capability that [Renderer.Draw]() drives. Renderers
// never touch pixels directly, they only issue calls to a target.
//
// Coordinates are in target pixels, with y growing downwards. The
// z coordinate is passed through unmodified, 2D targets ignore it.
//
// The color state stack must support arbitrary nesting, and pops are
// always balanced by the renderer within a single Draw call. Mask sheets
// are tinted with the foreground color, while non-mask sheets keep their
// own colors.
type Target interface {
	// Draws the given frame of the sheet with its top-left corner
	// at (x, y), scaled by the given factor.
	DrawGlyph(sheet *font.Sheet, frame int, x, y, z, scale float32)

	// Draws a line between the given points using the foreground color.
	DrawLine(x0, y0, z0, x1, y1, z1 float32)

	PushColorState()
	PopColorState()
	SetForegroundColor(clr argb.Color)
	GetForegroundColor() argb.Color
}
