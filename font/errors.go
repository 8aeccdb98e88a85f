package font

import "errors"

// Returned (wrapped) when a required image is missing from a font.
var ErrMissingImage = errors.New("missing required image")

// Returned (wrapped) when a font declaration can't be decoded.
var ErrBadDeclaration = errors.New("bad font declaration")

// An error that prevents a [Font] from being constructed. The Element
// field indicates the part of the font that caused the problem, like
// "images.bold" or "glyphs", and Err the underlying cause.
type LoadError struct {
	Font string
	Element string
	Err error
}

func (self *LoadError) Error() string {
	msg := "font"
	if self.Font != "" { msg += " '" + self.Font + "'" }
	if self.Element != "" { msg += " " + self.Element }
	return msg + ": " + self.Err.Error()
}

func (self *LoadError) Unwrap() error { return self.Err }

func loadErr(font, element string, err error) error {
	return &LoadError{ Font: font, Element: element, Err: err }
}

// Returned (wrapped) when a font has no glyph table.
var ErrMissingGlyphs = errors.New("missing glyph table")

// Returned (wrapped) when a glyph sheet doesn't have enough
// frames for all the mapped glyphs.
var ErrMissingFrames = errors.New("glyph sheet has fewer frames than mapped glyphs")
