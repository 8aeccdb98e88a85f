package bftxt

import "math"
import "image"
import "image/draw"

import xdraw "golang.org/x/image/draw"
import "golang.org/x/image/vector"

import "github.com/tinne26/bftxt/argb"
import "github.com/tinne26/bftxt/font"

// A [Target] that draws on any [draw.Image]. Frames are scaled with
// nearest neighbour filtering, and lines are rasterized as quads.
// The z coordinate is ignored.
//
// This is the default target in the gtxt version (see [NewTarget]()),
// but it can be used with Ebitengine builds too, e.g. for offline
// rendering of text to PNGs.
type ImageTarget struct {
	dst draw.Image
	fg argb.Color
	stack []argb.Color
	LineWidth float32 // in target pixels, 1 by default

	mask *image.Alpha // scratch buffer for scaled mask frames
	rasterizer vector.Rasterizer
}

// Creates a new image target with a white foreground color.
func NewImageTarget(dst draw.Image) *ImageTarget {
	if dst == nil { panic("nil target image") }
	return &ImageTarget{ dst: dst, fg: argb.White, LineWidth: 1 }
}

// Returns the underlying image.
func (self *ImageTarget) Image() draw.Image { return self.dst }

// Implements [Target].
func (self *ImageTarget) DrawGlyph(sheet *font.Sheet, frame int, x, y, _, scale float32) {
	if sheet == nil || !sheet.HasFrame(frame) { return }
	srcRect := sheet.FrameRect(frame)
	width  := int(math.Round(float64(float32(sheet.FrameWidth)*scale)))
	height := int(math.Round(float64(float32(sheet.FrameHeight)*scale)))
	if width <= 0 || height <= 0 { return }
	minX, minY := int(math.Floor(float64(x))), int(math.Floor(float64(y)))
	dstRect := image.Rect(minX, minY, minX + width, minY + height)
	if !dstRect.Overlaps(self.dst.Bounds()) { return }

	if !sheet.Mask {
		xdraw.NearestNeighbor.Scale(self.dst, dstRect, sheet.Image, srcRect, xdraw.Over, nil)
		return
	}

	mask := self.scratchMask(width, height)
	xdraw.NearestNeighbor.Scale(mask, mask.Rect, sheet.Image, srcRect, xdraw.Src, nil)
	draw.DrawMask(self.dst, dstRect, image.NewUniform(self.fg), image.Point{}, mask, image.Point{}, draw.Over)
}

// Implements [Target].
func (self *ImageTarget) DrawLine(x0, y0, _, x1, y1, _ float32) {
	if self.LineWidth <= 0 { return }
	dx, dy := x1 - x0, y1 - y0
	length := float32(math.Hypot(float64(dx), float64(dy)))
	if length == 0 { return }

	// quad around the segment
	nx, ny := -dy/length*self.LineWidth/2, dx/length*self.LineWidth/2
	corners := [4][2]float32{
		{ x0 + nx, y0 + ny }, { x1 + nx, y1 + ny },
		{ x1 - nx, y1 - ny }, { x0 - nx, y0 - ny },
	}
	minX, minY, maxX, maxY := corners[0][0], corners[0][1], corners[0][0], corners[0][1]
	for _, corner := range corners[1 : ] {
		if corner[0] < minX { minX = corner[0] }
		if corner[0] > maxX { maxX = corner[0] }
		if corner[1] < minY { minY = corner[1] }
		if corner[1] > maxY { maxY = corner[1] }
	}
	rect := image.Rect(
		int(math.Floor(float64(minX))), int(math.Floor(float64(minY))),
		int(math.Ceil(float64(maxX))), int(math.Ceil(float64(maxY))),
	).Intersect(self.dst.Bounds())
	if rect.Empty() { return }

	ox, oy := float32(rect.Min.X), float32(rect.Min.Y)
	self.rasterizer.Reset(rect.Dx(), rect.Dy())
	self.rasterizer.MoveTo(corners[0][0] - ox, corners[0][1] - oy)
	for _, corner := range corners[1 : ] {
		self.rasterizer.LineTo(corner[0] - ox, corner[1] - oy)
	}
	self.rasterizer.ClosePath()
	self.rasterizer.Draw(self.dst, rect, image.NewUniform(self.fg), image.Point{})
}

// Implements [Target].
func (self *ImageTarget) PushColorState() {
	self.stack = append(self.stack, self.fg)
}

// Implements [Target]. Pops without a matching push will panic.
func (self *ImageTarget) PopColorState() {
	if len(self.stack) == 0 { panic("PopColorState() without matching PushColorState()") }
	last := len(self.stack) - 1
	self.fg = self.stack[last]
	self.stack = self.stack[ : last]
}

// Implements [Target].
func (self *ImageTarget) SetForegroundColor(clr argb.Color) { self.fg = clr }

// Implements [Target].
func (self *ImageTarget) GetForegroundColor() argb.Color { return self.fg }

func (self *ImageTarget) scratchMask(width, height int) *image.Alpha {
	if self.mask == nil || self.mask.Rect.Dx() < width || self.mask.Rect.Dy() < height {
		self.mask = image.NewAlpha(image.Rect(0, 0, width, height))
	}
	return self.mask.SubImage(image.Rect(0, 0, width, height)).(*image.Alpha)
}
