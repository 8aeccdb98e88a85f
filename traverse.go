package bftxt

import "unicode/utf8"

import "golang.org/x/image/math/fixed"

import "github.com/tinne26/bftxt/bfcode"
import "github.com/tinne26/bftxt/font"

type stepKind uint8
const (
	stepGlyph stepKind = iota // mapped, visible character
	stepSpace     // advances, never drawn
	stepTab       // advances four spaces
	stepLineBreak
	stepMissing   // unmapped character, zero advance
	stepTag       // recognized tag, including disabled images
	stepImage     // enabled image tag, advances by the image width
)

// A unit of work emitted during a traversal. Positions are relative
// to the text origin and correspond to the caret before the step is
// applied.
type step struct {
	kind stepKind
	codePoint rune
	glyph font.Glyph
	tag bfcode.Tag
	push bool // tag requires a color state push
	pop bool  // tag requires a color state pop

	x, y fixed.Int26_6
	advance fixed.Int26_6
	consumed int // characters consumed before this step
	order int // index among visible glyphs, stepGlyph only
	state *effectState
}

// The scanning routine shared by all the entry points. It walks
// the text, interprets the markup and accumulates the caret, while
// an optional visitor performs the side effects.
type traverser struct {
	font *font.Font
	scale fixed.Int26_6
	state effectState

	x, y fixed.Int26_6
	maxWidth fixed.Int26_6
	lineBreaks int // excluding a line break at the last byte
	consumed int
	order int
}

func (self *Renderer) newTraverser() *traverser {
	return &traverser{ font: self.font, scale: self.scale }
}

// Traverses the text, calling visit (if not nil) before applying each
// step. If visit returns false, the traversal stops right there. Only
// argument errors are returned, unterminated and unknown tags are taken
// as literal text.
//
// If the text doesn't contain any '[', tag scanning is skipped.
func (self *traverser) run(text string, bfcodeEnabled bool, visit func(*step) bool) error {
	if bfcodeEnabled && !bfcode.MayContainTags(text) { bfcodeEnabled = false }

	var current step
	index := 0
	for index < len(text) {
		current = step{ x: self.x, y: self.y, consumed: self.consumed, order: -1, state: &self.state }

		// tag case
		if bfcodeEnabled && text[index] == '[' {
			tag, end, err := bfcode.ParseAt(text, index)
			if err == nil {
				err = self.setTagStep(&current, tag)
				if err != nil { return err }
				if visit != nil && !visit(&current) { return nil }
				self.apply(&current)
				index = end
				continue
			}
			if !bfcode.IsRecoverable(err) { return err }
			// literal '[', fall through
		}

		// character case
		codePoint, size := utf8.DecodeRuneInString(text[index : ])
		self.setCharStep(&current, codePoint)
		if visit != nil && !visit(&current) { return nil }
		self.apply(&current)
		if current.kind == stepLineBreak && index + size < len(text) {
			self.lineBreaks += 1
		}
		index += size
	}

	if self.x > self.maxWidth { self.maxWidth = self.x }
	return nil
}

func (self *traverser) setTagStep(current *step, tag bfcode.Tag) error {
	current.tag = tag
	current.kind = stepTag
	if tag.Command != bfcode.CmdImage {
		current.push, current.pop = self.state.apply(&tag, &self.font.Effects)
		return nil
	}

	if !self.font.Effects.Image { return nil }
	width, found := self.font.AuxImageWidth(tag.Image)
	if !found {
		return &bfcode.ArgumentError{ Command: tag.Command, Args: tag.Args, Reason: "unknown image id" }
	}
	current.kind = stepImage
	current.advance = self.scaled(width)
	return nil
}

func (self *traverser) setCharStep(current *step, codePoint rune) {
	current.codePoint = codePoint
	switch codePoint {
	case '\n':
		current.kind = stepLineBreak
		return
	case '\t':
		current.kind = stepTab
		current.advance = self.scaled(4*self.font.SpaceAdvance())
		return
	}

	glyph, found := self.font.Glyphs.Get(codePoint)
	if !found {
		current.kind = stepMissing
		return
	}
	current.glyph = glyph
	current.advance = self.scaled(glyph.Advance)
	if codePoint == ' ' {
		current.kind = stepSpace
	} else {
		current.kind = stepGlyph
		current.order = self.order
	}
}

func (self *traverser) apply(current *step) {
	switch current.kind {
	case stepGlyph:
		self.x += current.advance
		self.consumed += 1
		self.order += 1
		if self.state.rainbowActive { self.state.rainbowIndex += 1 }
	case stepSpace, stepTab, stepMissing:
		self.x += current.advance
		self.consumed += 1
	case stepLineBreak:
		if self.x > self.maxWidth { self.maxWidth = self.x }
		self.x = 0
		self.y += self.lineHeight()
		self.consumed += 1
	case stepImage:
		self.x += current.advance
	case stepTag:
		// state already applied
	default:
		panic(current.kind)
	}
}

func (self *traverser) lineHeight() fixed.Int26_6 {
	return self.scaled(self.font.LineHeight())
}

func (self *traverser) scaled(value int) fixed.Int26_6 {
	return fixed.Int26_6(value)*self.scale
}
