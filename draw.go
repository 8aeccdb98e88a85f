package bftxt

import "golang.org/x/image/math/fixed"

import "github.com/tinne26/bftxt/argb"
import "github.com/tinne26/bftxt/bfcode"

// Draws the given text to the target, with its top-left corner at
// (x, y). The z coordinate is passed through to the target.
//
// The target's foreground color at the start of the call is used as the
// base color. Its alpha is kept by color and rainbow tags, and applied
// to the shadow color too. Color and rainbow tags use the target's color
// state stack, and any push left open by the text is popped before
// returning, even when an error is returned.
//
// Underlines and strikethroughs span the advance of each visible
// glyph, so spaces are left as gaps. The jitter cache is refreshed at
// most once per call, and only if the text may contain shake tags.
//
// The only possible errors are [*bfcode.ArgumentError] values. In that
// case, the text may have been partially drawn.
func (self *Renderer) Draw(target Target, text string, x, y, z int, bfcodeEnabled bool) error {
	if target == nil { panic("nil target") }
	if text == "" { return nil }

	if bfcodeEnabled && self.font.Effects.Shake && bfcode.MayContainTags(text) {
		self.jitter.Refresh()
	}

	operation := drawOperation{
		renderer: self,
		target: target,
		originX: fixed.I(x),
		originY: fixed.I(y),
		z: float32(z),
		startColor: target.GetForegroundColor(),
	}
	traverser := self.newTraverser()
	err := traverser.run(text, bfcodeEnabled, operation.visit)
	for i := traverser.state.pushDepth(); i > 0; i-- {
		target.PopColorState()
	}
	return err
}

type drawOperation struct {
	renderer *Renderer
	target Target
	originX fixed.Int26_6
	originY fixed.Int26_6
	z float32
	startColor argb.Color
}

func (self *drawOperation) visit(current *step) bool {
	switch current.kind {
	case stepGlyph:
		self.drawGlyph(current)
	case stepImage:
		x, y := self.originX + current.x, self.originY + current.y
		self.target.DrawGlyph(self.renderer.font.AuxImages, current.tag.Image, toF32(x), toF32(y), self.z, self.scale())
	case stepTag:
		if current.push {
			self.target.PushColorState()
			if current.tag.Command == bfcode.CmdColor {
				self.target.SetForegroundColor(self.baseColor(current.state))
			}
		}
		if current.pop {
			// the restored state may belong to another tag kind
			// when tags are mis-nested, so the color is reset too
			self.target.PopColorState()
			self.target.SetForegroundColor(self.baseColor(current.state))
		}
	}
	return true
}

// Returns the color for glyphs outside rainbows, given the tags
// that remain open. The state already reflects the current tag.
func (self *drawOperation) baseColor(state *effectState) argb.Color {
	clr, found := state.topColor()
	if !found { return self.startColor }
	return clr.ScaleAlpha(self.startColor.Alpha())
}

func (self *drawOperation) drawGlyph(current *step) {
	bmFont := self.renderer.font
	state := current.state
	if state.rainbowActive {
		clr := bmFont.Palette.At(state.rainbowIndex).WithAlpha(self.startColor.Alpha())
		self.target.SetForegroundColor(clr)
	}

	// caret and glyph positions
	x, y := self.originX + current.x, self.originY + current.y
	gx := x + self.renderer.scaled(current.glyph.HOffset)
	gy := y + self.renderer.scaled(current.glyph.VOffset)
	if state.shaking {
		dx, dy := self.renderer.jitter.Offset(current.order, state.shakeIntensity)
		gx += self.renderer.scaled(dx)
		gy += self.renderer.scaled(dy)
	}
	sheet := state.activeSheet(bmFont)
	frame := bmFont.Glyphs.Frame(current.codePoint)

	// shadow pass
	if state.shadow {
		prevColor := self.target.GetForegroundColor()
		self.target.SetForegroundColor(bmFont.Shadow.Color.ScaleAlpha(self.startColor.Alpha()))
		sx := self.renderer.scaled(bmFont.Shadow.HOffset)
		sy := self.renderer.scaled(bmFont.Shadow.VOffset)
		self.drawLines(state, x + sx, y + sy, current.advance)
		self.target.DrawGlyph(sheet, frame, toF32(gx + sx), toF32(gy + sy), self.z, self.scale())
		self.target.SetForegroundColor(prevColor)
	}

	self.drawLines(state, x, y, current.advance)
	self.target.DrawGlyph(sheet, frame, toF32(gx), toF32(gy), self.z, self.scale())
}

// Lines are one scaled pixel thick. The underline takes the last row
// of the line, the strikethrough the middle one. Coordinates passed to
// the target are row centers.
func (self *drawOperation) drawLines(state *effectState, x, y, advance fixed.Int26_6) {
	if !state.underline && !state.strikethrough { return }

	lineHeight := self.renderer.font.LineHeight()
	halfThickness := self.scale()/2
	x0, x1 := toF32(x), toF32(x + advance)
	if state.underline {
		ly := toF32(y + self.renderer.scaled(lineHeight - 1)) + halfThickness
		self.target.DrawLine(x0, ly, self.z, x1, ly, self.z)
	}
	if state.strikethrough {
		ly := toF32(y + self.renderer.scaled(lineHeight/2)) + halfThickness
		self.target.DrawLine(x0, ly, self.z, x1, ly, self.z)
	}
}

func (self *drawOperation) scale() float32 {
	return float32(self.renderer.scale)/64
}

// positions are snapped to whole pixels to keep bitmap glyphs crisp
func toF32(value fixed.Int26_6) float32 {
	return float32(value.Floor())
}
