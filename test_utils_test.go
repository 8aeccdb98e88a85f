package bftxt

import "image"
import "image/color"

import "github.com/tinne26/bftxt/argb"
import "github.com/tinne26/bftxt/font"

func doesNotPanic(function func()) (didNotPanic bool) {
	didNotPanic = true
	defer func() { didNotPanic = (recover() == nil) }()
	function()
	return
}

const (
	testFrameWidth  = 12
	testFrameHeight = 16
	testAuxWidth    = 14
)

// Creates a font for the printable ASCII range where most glyphs have
// an advance of 7, except for 'H' (10), 'e' (8), 'l' (5), 'o' (9) and
// ' ' (6). The 'e' glyph has offsets (1, 2). '~' is left unmapped.
// Every frame has an opaque 2x2 block at its top-left corner.
func newTestFont(effects font.Effects) *font.Font {
	glyphs := make([]font.Glyph, 0, 96)
	for codePoint := rune(32); codePoint < 126; codePoint++ {
		glyph := font.Glyph{ Char: codePoint, Advance: 7 }
		switch codePoint {
		case 'H': glyph.Advance = 10
		case 'e': glyph.Advance, glyph.HOffset, glyph.VOffset = 8, 1, 2
		case 'l': glyph.Advance = 5
		case 'o': glyph.Advance = 9
		case ' ': glyph.Advance = 6
		}
		glyphs = append(glyphs, glyph)
	}
	table, err := font.NewGlyphTable(32, 96, glyphs)
	if err != nil { panic(err) }

	bmFont := &font.Font{
		Name: "test",
		Glyphs: table,
		Normal: newTestSheet(16*testFrameWidth, 6*testFrameHeight, testFrameWidth, true),
		Bold:   newTestSheet(16*testFrameWidth, 6*testFrameHeight, testFrameWidth, true),
		Italic: newTestSheet(16*testFrameWidth, 6*testFrameHeight, testFrameWidth, true),
		AuxImages: newTestSheet(2*testAuxWidth, testFrameHeight, testAuxWidth, false),
		Palette: font.Palette{ 0xFFFF0000, 0xFF00FF00, 0xFF0000FF },
		Shadow: font.Shadow{ HOffset: 1, VOffset: 1, Color: 0x80000000 },
		Effects: effects,
	}
	err = bmFont.Validate()
	if err != nil { panic(err) }
	return bmFont
}

func newTestSheet(width, height, frameWidth int, mask bool) *font.Sheet {
	var img image.Image
	if mask {
		alpha := image.NewAlpha(image.Rect(0, 0, width, height))
		for y := 0; y < height; y += testFrameHeight {
			for x := 0; x < width; x += frameWidth {
				for i := 0; i < 4; i++ {
					alpha.SetAlpha(x + i % 2, y + i / 2, color.Alpha{ 255 })
				}
			}
		}
		img = alpha
	} else {
		rgba := image.NewNRGBA(image.Rect(0, 0, width, height))
		for y := 0; y < height; y++ {
			for x := 0; x < width; x++ {
				rgba.SetNRGBA(x, y, color.NRGBA{ 0, 0, 255, 255 })
			}
		}
		img = rgba
	}
	return &font.Sheet{ Image: img, FrameWidth: frameWidth, FrameHeight: testFrameHeight, Mask: mask }
}

type recordedGlyph struct {
	sheet *font.Sheet
	frame int
	x, y, z, scale float32
	color argb.Color
}

type recordedLine struct {
	x0, y0, x1, y1 float32
	color argb.Color
}

// A target that records all the calls it receives.
type recordingTarget struct {
	glyphs []recordedGlyph
	lines []recordedLine
	fg argb.Color
	stack []argb.Color
	pushes int
	pops int
}

func newRecordingTarget(fg argb.Color) *recordingTarget {
	return &recordingTarget{ fg: fg }
}

func (self *recordingTarget) DrawGlyph(sheet *font.Sheet, frame int, x, y, z, scale float32) {
	self.glyphs = append(self.glyphs, recordedGlyph{ sheet, frame, x, y, z, scale, self.fg })
}

func (self *recordingTarget) DrawLine(x0, y0, _, x1, y1, _ float32) {
	self.lines = append(self.lines, recordedLine{ x0, y0, x1, y1, self.fg })
}

func (self *recordingTarget) PushColorState() {
	self.pushes += 1
	self.stack = append(self.stack, self.fg)
}

func (self *recordingTarget) PopColorState() {
	self.pops += 1
	if len(self.stack) == 0 { panic("unbalanced pop") }
	self.fg = self.stack[len(self.stack) - 1]
	self.stack = self.stack[ : len(self.stack) - 1]
}

func (self *recordingTarget) SetForegroundColor(clr argb.Color) { self.fg = clr }
func (self *recordingTarget) GetForegroundColor() argb.Color { return self.fg }

func (self *recordingTarget) frames() []int {
	frames := make([]int, 0, len(self.glyphs))
	for _, glyph := range self.glyphs {
		frames = append(frames, glyph.frame)
	}
	return frames
}
