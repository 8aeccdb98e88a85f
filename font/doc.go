// The font subpackage defines bitmap fonts ([Font]) and everything
// needed to build them: glyph metric tables, image sheets, rainbow
// palettes and effect switches.
//
// Bitmap fonts are usually loaded from a YAML declaration that
// references one or more image sheets:
//   fnt, name, err := font.ParseFromPath("assets/fonts/pixel.yaml")
//   if err != nil { ... }
//
// Fonts can also be generated from any [golang.org/x/image/font.Face]
// through [FromFace](), or from a parsed OpenType font with [FromSfnt]().
// This is handy for prototyping and testing, but real projects tend to
// ship hand-tuned sheets.
//
// If you need to manage multiple fonts by name, see [Library].
//
// Fonts are immutable once loaded and can be shared freely between
// renderers.
package font
