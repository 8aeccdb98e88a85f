//go:build !gtxt

package bftxt

import "image"

import "github.com/hajimehoshi/ebiten/v2"
import "github.com/hajimehoshi/ebiten/v2/vector"

import "github.com/tinne26/bftxt/argb"
import "github.com/tinne26/bftxt/font"

// Alias to allow compiling the package without Ebitengine (gtxt version).
//
// Without Ebitengine, TargetImage defaults to [image/draw.Image].
type TargetImage = *ebiten.Image

// Creates the default [Target] for the given image. With Ebitengine,
// this is an [*EbitenTarget].
func NewTarget(img TargetImage) Target {
	return NewEbitenTarget(img)
}

// A [Target] that draws on an Ebitengine image. Sheets are converted
// to Ebitengine images on first use and kept for the lifetime of the
// target, so targets should be reused across frames. The z coordinate
// is ignored.
type EbitenTarget struct {
	dst *ebiten.Image
	fg argb.Color
	stack []argb.Color
	sheets map[*font.Sheet]*ebiten.Image
	LineWidth float32 // in target pixels, 1 by default
	Antialias bool // for lines
}

// Creates a new Ebitengine target with a white foreground color.
func NewEbitenTarget(dst *ebiten.Image) *EbitenTarget {
	if dst == nil { panic("nil target image") }
	return &EbitenTarget{
		dst: dst,
		fg: argb.White,
		sheets: make(map[*font.Sheet]*ebiten.Image, 4),
		LineWidth: 1,
	}
}

// Sets the image to draw on, keeping the cached sheets. Typically
// used to pass the new screen on each Draw() of the game.
func (self *EbitenTarget) SetImage(dst *ebiten.Image) {
	if dst == nil { panic("nil target image") }
	self.dst = dst
}

// Implements [Target].
func (self *EbitenTarget) DrawGlyph(sheet *font.Sheet, frame int, x, y, _, scale float32) {
	if sheet == nil || !sheet.HasFrame(frame) { return }
	frameImg := self.sheetImage(sheet).SubImage(sheet.FrameRect(frame)).(*ebiten.Image)

	opts := ebiten.DrawImageOptions{}
	opts.GeoM.Scale(float64(scale), float64(scale))
	opts.GeoM.Translate(float64(x), float64(y))
	if sheet.Mask { opts.ColorScale.ScaleWithColor(self.fg) }
	self.dst.DrawImage(frameImg, &opts)
}

// Implements [Target].
func (self *EbitenTarget) DrawLine(x0, y0, _, x1, y1, _ float32) {
	if self.LineWidth <= 0 { return }
	vector.StrokeLine(self.dst, x0, y0, x1, y1, self.LineWidth, self.fg, self.Antialias)
}

// Implements [Target].
func (self *EbitenTarget) PushColorState() {
	self.stack = append(self.stack, self.fg)
}

// Implements [Target]. Pops without a matching push will panic.
func (self *EbitenTarget) PopColorState() {
	if len(self.stack) == 0 { panic("PopColorState() without matching PushColorState()") }
	last := len(self.stack) - 1
	self.fg = self.stack[last]
	self.stack = self.stack[ : last]
}

// Implements [Target].
func (self *EbitenTarget) SetForegroundColor(clr argb.Color) { self.fg = clr }

// Implements [Target].
func (self *EbitenTarget) GetForegroundColor() argb.Color { return self.fg }

func (self *EbitenTarget) sheetImage(sheet *font.Sheet) *ebiten.Image {
	img, found := self.sheets[sheet]
	if found { return img }

	var source image.Image = sheet.Image
	if sheet.Mask { source = convertToWhiteMask(sheet.Image) }
	img = ebiten.NewImageFromImageWithOptions(source, &ebiten.NewImageFromImageOptions{ PreserveBounds: true })
	self.sheets[sheet] = img
	return img
}

// Mask sheets may come with any colors, but only their alpha matters.
// Ebitengine tints by multiplying, so they are converted to white.
func convertToWhiteMask(img image.Image) *image.RGBA {
	bounds := img.Bounds()
	rgba := image.NewRGBA(bounds)
	index := 0
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			_, _, _, a := img.At(x, y).RGBA()
			value := uint8(a >> 8)
			rgba.Pix[index + 0] = value // premultiplied
			rgba.Pix[index + 1] = value
			rgba.Pix[index + 2] = value
			rgba.Pix[index + 3] = value
			index += 4
		}
	}
	return rgba
}
