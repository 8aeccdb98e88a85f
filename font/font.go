package font

import "github.com/tinne26/bftxt/argb"

// Effect switches for a [Font]. Directives for disabled effects are
// still recognized by renderers, but they do nothing.
type Effects struct {
	Shake bool `yaml:"shake"`
	Color bool `yaml:"color"`
	Bold bool `yaml:"bold"`
	Italic bool `yaml:"italic"`
	Underline bool `yaml:"underline"`
	Strikethrough bool `yaml:"strikethrough"`
	Rainbow bool `yaml:"rainbow"`
	Shadow bool `yaml:"shadow"`
	Image bool `yaml:"image"`
}

// Returns an [Effects] value with all the switches enabled.
func AllEffects() Effects {
	return Effects{
		Shake: true, Color: true, Bold: true, Italic: true, Underline: true,
		Strikethrough: true, Rainbow: true, Shadow: true, Image: true,
	}
}

// Shadow configuration. The shadow pass draws each glyph (and its
// lines) offset by (HOffset, VOffset) in the given color.
type Shadow struct {
	HOffset int
	VOffset int
	Color argb.Color
}

// A bitmap font.
//
// Fonts are usually created with [ParseFromPath]() or [FromFace](), but
// they can also be assembled manually. In that case, call [Font.Validate]()
// before use. Fonts must not be modified after being passed to a renderer.
type Font struct {
	Name string
	Glyphs *GlyphTable

	Normal *Sheet // required
	Bold *Sheet // required if Effects.Bold
	Italic *Sheet // required if Effects.Italic
	AuxImages *Sheet // required if Effects.Image

	Palette Palette
	Shadow Shadow
	Effects Effects
}

// Returns the height of a line, which is the frame height of the
// normal glyph sheet.
func (self *Font) LineHeight() int {
	return self.Normal.FrameHeight
}

// Returns the advance of the space glyph, or zero if unmapped.
func (self *Font) SpaceAdvance() int {
	glyph, found := self.Glyphs.Get(' ')
	if !found { return 0 }
	return glyph.Advance
}

// Returns the width of the auxiliary image with the given id. If
// the font has no such image, found will be false.
func (self *Font) AuxImageWidth(id int) (width int, found bool) {
	if self.AuxImages == nil || !self.AuxImages.HasFrame(id) { return 0, false }
	return self.AuxImages.FrameWidth, true
}

// Checks that the font has everything it needs. The returned error,
// if any, is a [*LoadError].
func (self *Font) Validate() error {
	if self.Glyphs == nil { return loadErr(self.Name, "glyphs", ErrMissingGlyphs) }
	if self.Normal == nil { return loadErr(self.Name, "images.normal", ErrMissingImage) }
	err := self.validateGlyphSheet("images.normal", self.Normal)
	if err != nil { return err }

	if self.Effects.Bold {
		if self.Bold == nil { return loadErr(self.Name, "images.bold", ErrMissingImage) }
		err = self.validateGlyphSheet("images.bold", self.Bold)
		if err != nil { return err }
	}
	if self.Effects.Italic {
		if self.Italic == nil { return loadErr(self.Name, "images.italic", ErrMissingImage) }
		err = self.validateGlyphSheet("images.italic", self.Italic)
		if err != nil { return err }
	}
	if self.Effects.Image {
		if self.AuxImages == nil { return loadErr(self.Name, "aux_images", ErrMissingImage) }
		err = self.AuxImages.validate()
		if err != nil { return loadErr(self.Name, "aux_images", err) }
	}
	return nil
}

func (self *Font) validateGlyphSheet(element string, sheet *Sheet) error {
	err := sheet.validate()
	if err != nil { return loadErr(self.Name, element, err) }

	// every mapped glyph needs its frame
	var missing bool
	self.Glyphs.Each(func(glyph Glyph) {
		if !sheet.HasFrame(self.Glyphs.Frame(glyph.Char)) { missing = true }
	})
	if missing { return loadErr(self.Name, element, ErrMissingFrames) }
	return nil
}
