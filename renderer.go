package bftxt

import "math"

import "golang.org/x/image/math/fixed"

import "github.com/tinne26/bftxt/font"
import "github.com/tinne26/bftxt/jitter"

// The [Renderer] is the heart of bftxt and the type around which
// everything else revolves.
//
// Renderers have two groups of functions:
//  - Simple functions to adjust the font and scale.
//  - Functions to draw and measure text, which are the four entry
//    points for BFCode interpretation: [Renderer.MeasureWidth](),
//    [Renderer.MeasureHeight](), [Renderer.CharacterPosition]() and
//    [Renderer.Draw]().
//
// Each renderer owns the [jitter.Cache] used for the shake effect.
// The cache is only ever refreshed from [Renderer.Draw](), at most
// once per call.
//
// Renderers are not safe for concurrent use.
type Renderer struct {
	font *font.Font
	jitter *jitter.Cache
	scale fixed.Int26_6
}

// Creates a new renderer for the given font, with scale 1.
// The font can't be nil.
func NewRenderer(bmFont *font.Font) *Renderer {
	renderer := &Renderer{
		jitter: jitter.New(jitter.DefaultSize, jitter.DefaultInterval),
		scale: fixed.I(1),
	}
	renderer.SetFont(bmFont)
	return renderer
}

// Sets the font to be used on subsequent operations. Nil fonts
// will panic.
func (self *Renderer) SetFont(bmFont *font.Font) {
	if bmFont == nil { panic("nil font") }
	self.font = bmFont
}

// Returns the current font.
func (self *Renderer) GetFont() *font.Font { return self.font }

// Sets the scaling factor applied to glyph frames, advances and line
// heights. Bitmap fonts look best with integer scales, but fractional
// values are allowed too. Scales must be positive and will be rounded
// to 1/64ths, or the method will panic.
func (self *Renderer) SetScale(scale float64) {
	if math.IsNaN(scale) || scale <= 0 { panic("scale must be positive") }
	fixedScale := fixed.Int26_6(math.Round(scale*64))
	if fixedScale <= 0 { panic("scale too small") }
	self.scale = fixedScale
}

// Returns the current scaling factor.
func (self *Renderer) GetScale() float64 {
	return float64(self.scale)/64
}

// Returns the jitter cache used for the shake effect. This can be
// used to adjust the regeneration interval, or to set a custom clock
// and seed for deterministic results.
func (self *Renderer) Jitter() *jitter.Cache { return self.jitter }

// ---- internal helpers ----

func (self *Renderer) scaled(value int) fixed.Int26_6 {
	return fixed.Int26_6(value)*self.scale
}
