package argb

import "errors"
import "strconv"
import "strings"
import "image/color"

import "golang.org/x/image/colornames"

// A non-premultiplied color packed as 0xAARRGGBB.
//
// Color implements [color.Color], so it can be passed directly to
// image/draw and Ebitengine functions.
type Color uint32

// Some common colors.
const (
	Transparent Color = 0x00000000
	Black       Color = 0xFF000000
	White       Color = 0xFFFFFFFF
)

// Returned by [Parse] when the given string is not any of the
// supported color formats.
var ErrInvalidColor = errors.New("invalid color")

// Creates a fully opaque color from the given components.
func FromRGB(r, g, b uint8) Color {
	return FromARGB(255, r, g, b)
}

// Creates a color from the given components.
func FromARGB(a, r, g, b uint8) Color {
	return Color(uint32(a) << 24 | uint32(r) << 16 | uint32(g) << 8 | uint32(b))
}

// Converts any [color.Color] to a [Color], undoing alpha premultiplication.
func FromColor(clr color.Color) Color {
	if clr == nil { return Transparent }
	if direct, isDirect := clr.(Color); isDirect { return direct }
	nrgba := color.NRGBAModel.Convert(clr).(color.NRGBA)
	return FromARGB(nrgba.A, nrgba.R, nrgba.G, nrgba.B)
}

// Returns the alpha component.
func (self Color) Alpha() uint8 { return uint8(self >> 24) }

// Returns the red, green and blue components.
func (self Color) Components() (r, g, b uint8) {
	return uint8(self >> 16), uint8(self >> 8), uint8(self)
}

// Returns the same color with the alpha replaced.
func (self Color) WithAlpha(alpha uint8) Color {
	return (self & 0x00FFFFFF) | Color(uint32(alpha) << 24)
}

// Returns the color with its alpha multiplied by alpha/255.
func (self Color) ScaleAlpha(alpha uint8) Color {
	scaled := (uint32(self.Alpha())*uint32(alpha) + 127)/255
	return self.WithAlpha(uint8(scaled))
}

// Returns the color as a [color.NRGBA].
func (self Color) NRGBA() color.NRGBA {
	r, g, b := self.Components()
	return color.NRGBA{ R: r, G: g, B: b, A: self.Alpha() }
}

// Implements [color.Color].
func (self Color) RGBA() (r, g, b, a uint32) {
	return self.NRGBA().RGBA()
}

// Returns the color formatted as "0xAARRGGBB".
func (self Color) String() string {
	hex := strconv.FormatUint(uint64(self), 16)
	return "0x" + strings.Repeat("0", 8 - len(hex)) + strings.ToUpper(hex)
}

// Parses a color in any of the following formats:
//  - "0xAARRGGBB" or "#AARRGGBB" (explicit alpha).
//  - "0xRRGGBB" or "#RRGGBB" (opaque).
//  - A CSS color name like "red" or "cornflowerblue" (opaque, case
//    insensitive).
// Errors wrap [ErrInvalidColor].
func Parse(str string) (Color, error) {
	str = strings.TrimSpace(str)
	var hex string
	switch {
	case strings.HasPrefix(str, "0x"), strings.HasPrefix(str, "0X"):
		hex = str[2 : ]
	case strings.HasPrefix(str, "#"):
		hex = str[1 : ]
	default:
		rgba, found := colornames.Map[strings.ToLower(str)]
		if !found { return 0, invalidColorErr(str) }
		return FromARGB(rgba.A, rgba.R, rgba.G, rgba.B), nil
	}

	if len(hex) != 6 && len(hex) != 8 { return 0, invalidColorErr(str) }
	value, err := strconv.ParseUint(hex, 16, 32)
	if err != nil { return 0, invalidColorErr(str) }
	if len(hex) == 6 { value |= 0xFF000000 }
	return Color(value), nil
}

// Like [Parse], but panics on error. Meant for hardcoded values.
func MustParse(str string) Color {
	clr, err := Parse(str)
	if err != nil { panic(err) }
	return clr
}

func invalidColorErr(str string) error {
	return &parseError{ input: str }
}

type parseError struct { input string }
func (self *parseError) Error() string { return ErrInvalidColor.Error() + " '" + self.input + "'" }
func (self *parseError) Unwrap() error { return ErrInvalidColor }
