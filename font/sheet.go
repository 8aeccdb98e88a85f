package font

import "errors"
import "image"

// Returned (wrapped) when a sheet has invalid frame dimensions.
var ErrInvalidFrame = errors.New("invalid sheet frame size")

// An image divided in a grid of equally sized frames, indexed left
// to right, top to bottom.
//
// Glyph sheets contain one frame per character of the font range, while
// auxiliary image sheets contain one frame per image id. Mask sheets only
// use their alpha channel, as their color is set by the drawing target's
// foreground color. Non-mask sheets are drawn with their own colors.
type Sheet struct {
	Image image.Image
	FrameWidth int
	FrameHeight int
	Columns int // if zero, as many as fit in the image width
	Mask bool
}

// Creates a sheet and validates its frame dimensions. Errors wrap
// [ErrInvalidFrame].
func NewSheet(img image.Image, frameWidth, frameHeight int, mask bool) (*Sheet, error) {
	sheet := &Sheet{ Image: img, FrameWidth: frameWidth, FrameHeight: frameHeight, Mask: mask }
	err := sheet.validate()
	if err != nil { return nil, err }
	return sheet, nil
}

func (self *Sheet) validate() error {
	if self.Image == nil { return ErrMissingImage }
	if self.FrameWidth <= 0 || self.FrameHeight <= 0 { return ErrInvalidFrame }
	bounds := self.Image.Bounds()
	if self.FrameWidth > bounds.Dx() || self.FrameHeight > bounds.Dy() { return ErrInvalidFrame }
	if self.Columns < 0 || self.Columns*self.FrameWidth > bounds.Dx() { return ErrInvalidFrame }
	return nil
}

// Returns the number of frame columns.
func (self *Sheet) NumColumns() int {
	if self.Columns > 0 { return self.Columns }
	return self.Image.Bounds().Dx()/self.FrameWidth
}

// Returns the number of frames in the sheet.
func (self *Sheet) NumFrames() int {
	rows := self.Image.Bounds().Dy()/self.FrameHeight
	return rows*self.NumColumns()
}

// Returns whether the sheet contains the given frame.
func (self *Sheet) HasFrame(frame int) bool {
	return frame >= 0 && frame < self.NumFrames()
}

// Returns the rectangle of the given frame within the sheet image.
// Frames outside the sheet will panic.
func (self *Sheet) FrameRect(frame int) image.Rectangle {
	if !self.HasFrame(frame) { panic("sheet frame out of range") }
	columns := self.NumColumns()
	min := self.Image.Bounds().Min
	x := min.X + (frame % columns)*self.FrameWidth
	y := min.Y + (frame / columns)*self.FrameHeight
	return image.Rect(x, y, x + self.FrameWidth, y + self.FrameHeight)
}
