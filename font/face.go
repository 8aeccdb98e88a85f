package font

import "image"

import xfont "golang.org/x/image/font"
import xdraw "golang.org/x/image/draw"
import "golang.org/x/image/font/opentype"
import "golang.org/x/image/font/sfnt"
import "golang.org/x/image/math/f64"
import "golang.org/x/image/math/fixed"

const faceSheetColumns = 16
const fauxItalicShear = 0.2

// Creates a bitmap font by rasterizing the default glyph range of the
// given face. See [FromFaceRange]() for details.
func FromFace(face xfont.Face, name string) (*Font, error) {
	return FromFaceRange(face, name, DefaultFirstChar, DefaultNumChars)
}

// Creates a bitmap font by rasterizing the characters in the range
// [first, first + numChars) of the given face into white mask sheets.
// The bold and italic sheets are faux variants: bold draws each glyph
// twice with a one pixel shift, italic shears the normal sheet.
//
// All effects are enabled except images, since faces have no auxiliary
// image sheet. The shadow is set to a semi-transparent black at (1, 1).
func FromFaceRange(face xfont.Face, name string, first rune, numChars int) (*Font, error) {
	if face == nil { panic("nil face") }
	if numChars <= 0 { panic("numChars <= 0") }

	metrics := face.Metrics()
	ascent := metrics.Ascent.Ceil()
	lineHeight := metrics.Height.Ceil()
	if lineHeight < ascent + metrics.Descent.Ceil() {
		lineHeight = ascent + metrics.Descent.Ceil()
	}
	if lineHeight <= 0 { return nil, loadErr(name, "face", ErrInvalidFrame) }

	// collect glyph metrics and the horizontal extents
	glyphs := make([]Glyph, 0, numChars)
	minLeft, maxRight := 0, 0
	for i := 0; i < numChars; i++ {
		codePoint := first + rune(i)
		bounds, advance, ok := face.GlyphBounds(codePoint)
		if !ok { continue }
		left, right := bounds.Min.X.Floor(), bounds.Max.X.Ceil()
		if advance.Ceil() > right { right = advance.Ceil() }
		if left < minLeft { minLeft = left }
		if right > maxRight { maxRight = right }
		glyphs = append(glyphs, Glyph{ Char: codePoint, Advance: advance.Round() })
	}
	for i := range glyphs { glyphs[i].HOffset = minLeft }
	table, err := NewGlyphTable(first, numChars, glyphs)
	if err != nil { return nil, loadErr(name, "glyphs", err) }

	// frames leave room for the faux bold pixel and the italic shear
	frameWidth := maxRight - minLeft + 1 + lineHeight/4
	if frameWidth <= 0 { return nil, loadErr(name, "face", ErrInvalidFrame) }
	rows := (numChars + faceSheetColumns - 1)/faceSheetColumns
	sheetRect := image.Rect(0, 0, faceSheetColumns*frameWidth, rows*lineHeight)
	normal := image.NewAlpha(sheetRect)
	bold   := image.NewAlpha(sheetRect)
	italic := image.NewAlpha(sheetRect)

	drawer := xfont.Drawer{ Src: image.Opaque, Face: face }
	for _, glyph := range glyphs {
		frame := table.Frame(glyph.Char)
		fx, fy := (frame % faceSheetColumns)*frameWidth, (frame / faceSheetColumns)*lineHeight
		origin := fixed.P(fx - minLeft, fy + ascent)
		str := string(glyph.Char)

		drawer.Dst, drawer.Dot = normal, origin
		drawer.DrawString(str)
		drawer.Dst, drawer.Dot = bold, origin
		drawer.DrawString(str)
		drawer.Dot = origin.Add(fixed.P(1, 0))
		drawer.DrawString(str)

		frameRect := image.Rect(fx, fy, fx + frameWidth, fy + lineHeight)
		shear(italic, normal, frameRect)
	}

	font := &Font{
		Name: name,
		Glyphs: table,
		Normal: &Sheet{ Image: normal, FrameWidth: frameWidth, FrameHeight: lineHeight, Columns: faceSheetColumns, Mask: true },
		Bold:   &Sheet{ Image: bold,   FrameWidth: frameWidth, FrameHeight: lineHeight, Columns: faceSheetColumns, Mask: true },
		Italic: &Sheet{ Image: italic, FrameWidth: frameWidth, FrameHeight: lineHeight, Columns: faceSheetColumns, Mask: true },
		Palette: DefaultPalette(),
		Shadow: Shadow{ HOffset: 1, VOffset: 1, Color: defaultShadowColor },
		Effects: AllEffects(),
	}
	font.Effects.Image = false
	err = font.Validate()
	if err != nil { return nil, err }
	return font, nil
}

// Creates a bitmap font from an OpenType font at the given size (in
// pixels). The font name is taken from the font's full name entry.
func FromSfnt(sfntFont *sfnt.Font, size float64) (*Font, error) {
	var buffer sfnt.Buffer
	name, err := sfntFont.Name(&buffer, sfnt.NameIDFull)
	if err != nil { name = "" }

	face, err := opentype.NewFace(sfntFont, &opentype.FaceOptions{
		Size: size,
		DPI: 72,
		Hinting: xfont.HintingFull,
	})
	if err != nil { return nil, loadErr(name, "face", err) }
	font, err := FromFace(face, name)
	closeErr := face.Close()
	if err != nil { return nil, err }
	if closeErr != nil { return nil, loadErr(name, "face", closeErr) }
	return font, nil
}

// slants the frame content to the right, keeping the bottom row in place
func shear(dst, src *image.Alpha, frame image.Rectangle) {
	k := fauxItalicShear
	s2d := f64.Aff3{ 1, -k, k*float64(frame.Max.Y), 0, 1, 0 }
	xdraw.NearestNeighbor.Transform(dst, s2d, src, frame, xdraw.Over, nil)
}
