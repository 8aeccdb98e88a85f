package font

import "github.com/tinne26/bftxt/argb"

// An ordered sequence of colors cycled by the rainbow directive.
// Only the RGB components are used, the alpha of the text is kept.
type Palette []argb.Color

var defaultPalette = Palette{
	0xFFFF0000, 0xFFFF4500, 0xFFFF8C00, 0xFFFFD700,
	0xFFFFFF00, 0xFF9ACD32, 0xFF00FF00, 0xFF00FA9A,
	0xFF00FFFF, 0xFF1E90FF, 0xFF0000FF, 0xFF8A2BE2,
	0xFFFF00FF, 0xFFFF1493,
}

// Returns a copy of the built-in 14 color palette.
func DefaultPalette() Palette {
	return append(Palette(nil), defaultPalette...)
}

// Returns the color at the given index, wrapping around. Empty
// palettes return white.
func (self Palette) At(index int) argb.Color {
	if len(self) == 0 { return argb.White }
	index %= len(self)
	if index < 0 { index += len(self) }
	return self[index]
}
