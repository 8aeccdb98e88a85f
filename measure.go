package bftxt

import "golang.org/x/image/math/fixed"

// Returns the width of the widest line of the given text. Tags take
// no space, except for enabled [image=n] tags, which take the width
// of the auxiliary image. Tabs take four spaces. Fractional widths
// (from fractional scales) are rounded up.
//
// When bfcodeEnabled is false, tags are measured as regular text.
// The only possible errors are [*bfcode.ArgumentError] values.
func (self *Renderer) MeasureWidth(text string, bfcodeEnabled bool) (int, error) {
	if text == "" { return 0, nil }
	traverser := self.newTraverser()
	err := traverser.run(text, bfcodeEnabled, nil)
	if err != nil { return 0, err }
	return traverser.maxWidth.Ceil(), nil
}

// Returns the height of the given text: one line height, plus one
// more for each line break that's not the last character of the text.
// Tags never affect the height.
//
// The only possible errors are [*bfcode.ArgumentError] values.
func (self *Renderer) MeasureHeight(text string, bfcodeEnabled bool) (int, error) {
	if text == "" { return 0, nil }
	traverser := self.newTraverser()
	err := traverser.run(text, bfcodeEnabled, nil)
	if err != nil { return 0, err }
	lines := fixed.Int26_6(1 + traverser.lineBreaks)
	return (traverser.lineHeight()*lines).Ceil(), nil
}

// Returns the caret position, relative to the text origin, right before
// the character with the given index would be processed. Tags are not
// characters, but line breaks, tabs and characters without glyphs are.
// A literal '[' from an unknown or unterminated tag is a character too.
//
// Indices beyond the end of the text return the final caret position.
// Negative indices will panic.
//
// The only possible errors are [*bfcode.ArgumentError] values, which
// can only be caused by tags preceding the index.
func (self *Renderer) CharacterPosition(text string, index int, bfcodeEnabled bool) (x, y int, err error) {
	if index < 0 { panic("negative character index") }
	traverser := self.newTraverser()
	err = traverser.run(text, bfcodeEnabled, func(current *step) bool {
		return current.consumed != index
	})
	if err != nil { return 0, 0, err }
	return traverser.x.Floor(), traverser.y.Floor(), nil
}
