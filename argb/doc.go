// The argb subpackage defines the [Color] type used for all the color
// values in bftxt: palettes, shadows, BFCode color tags and the
// foreground color of drawing targets.
//
// Colors are stored as packed 0xAARRGGBB uint32 values, non-premultiplied.
// This is the natural format for bitmap font declarations, and it makes
// alpha preservation (which the color and rainbow directives rely on)
// trivial to express.
package argb
