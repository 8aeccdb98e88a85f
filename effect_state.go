package bftxt

import "github.com/tinne26/bftxt/argb"
import "github.com/tinne26/bftxt/bfcode"
import "github.com/tinne26/bftxt/font"

// Per call markup state. A fresh value is used for each traversal
// and discarded afterwards, nothing carries over between calls.
type effectState struct {
	bold bool
	italic bool
	underline bool
	strikethrough bool
	shadow bool
	rainbowActive bool // rainbowDepth > 0
	rainbowIndex int
	rainbowDepth int // open rainbow tags, each owed a pop
	colors []argb.Color // open color tags, each owed a pop
	shaking bool
	shakeIntensity int
}

// Applies the given tag. Tags for effects disabled in the font are
// consumed without changes. The returned values indicate whether the
// tag requires a color state push or pop on the target.
//
// Closing tags only pop pushes made by their own kind of tag, so
// "[color=red]a[/rainbow]b" keeps b red.
func (self *effectState) apply(tag *bfcode.Tag, effects *font.Effects) (push, pop bool) {
	switch tag.Command {
	case bfcode.CmdBold:
		self.bold = effects.Bold
	case bfcode.CmdBoldEnd:
		self.bold = false
	case bfcode.CmdItalic:
		self.italic = effects.Italic
	case bfcode.CmdItalicEnd:
		self.italic = false
	case bfcode.CmdUnderline:
		self.underline = effects.Underline
	case bfcode.CmdUnderlineEnd:
		self.underline = false
	case bfcode.CmdStrikethrough:
		self.strikethrough = effects.Strikethrough
	case bfcode.CmdStrikethroughEnd:
		self.strikethrough = false
	case bfcode.CmdShadow:
		self.shadow = effects.Shadow
	case bfcode.CmdShadowEnd:
		self.shadow = false
	case bfcode.CmdShake:
		if !effects.Shake { return false, false }
		self.shaking = true
		self.shakeIntensity = tag.Intensity
	case bfcode.CmdShakeEnd:
		self.shaking = false
	case bfcode.CmdRainbow, bfcode.CmdRainbowEnd:
		if !effects.Rainbow { return false, false }
	case bfcode.CmdColor, bfcode.CmdColorEnd:
		if !effects.Color { return false, false }
	case bfcode.CmdImage:
		// handled by the traverser, as it affects the caret
	default:
		panic("unexpected command " + tag.Command.String())
	}

	if tag.Command.PushesColor() { return self.pushColor(tag), false }
	if tag.Command.PopsColor() { return false, self.popColor(tag.Command) }
	return false, false
}

func (self *effectState) pushColor(tag *bfcode.Tag) bool {
	if tag.Command == bfcode.CmdRainbow {
		self.rainbowDepth += 1
		self.rainbowActive = true
	} else {
		self.colors = append(self.colors, tag.Color)
	}
	return true
}

// closing tags without a matching open tag of the same kind don't pop
func (self *effectState) popColor(command bfcode.Command) bool {
	if command == bfcode.CmdRainbowEnd {
		if self.rainbowDepth == 0 { return false }
		self.rainbowDepth -= 1
		self.rainbowActive = (self.rainbowDepth > 0)
		return true
	}
	if len(self.colors) == 0 { return false }
	self.colors = self.colors[ : len(self.colors) - 1]
	return true
}

// Returns the number of pushes still owed a pop.
func (self *effectState) pushDepth() int {
	return self.rainbowDepth + len(self.colors)
}

// Returns the color of the innermost open color tag.
func (self *effectState) topColor() (argb.Color, bool) {
	if len(self.colors) == 0 { return 0, false }
	return self.colors[len(self.colors) - 1], true
}

// Returns the glyph sheet to draw with. Bold takes priority over italic.
func (self *effectState) activeSheet(bmFont *font.Font) *font.Sheet {
	if self.bold { return bmFont.Bold }
	if self.italic { return bmFont.Italic }
	return bmFont.Normal
}
