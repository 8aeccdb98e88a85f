// bftxt is a package for drawing bitmap font text with inline BFCode
// markup, designed to be used mainly with the Ebitengine game engine.
//
// Usage revolves around a couple types. First, you load a bitmap font
// declaration:
//   bmFont, _, err := font.ParseFromPath("path/to/pixel.yaml")
//   if err != nil { ... }
//
// Then, you create a [Renderer]:
//   txtRenderer := bftxt.NewRenderer(bmFont)
//
// Finally, you wrap your target image and draw:
//   target := bftxt.NewTarget(screen)
//   target.SetForegroundColor(argb.White)
//   err := txtRenderer.Draw(target, "[b]Hello[/b] [shake=2]world!", x, y, 0, true)
//
// The markup is a small set of bracket tags: [b], [i], [u], [s], [shadow],
// [shake=n], [rainbow], [color=...] and [image=n], with their "/" closing
// versions (except image). Unknown or unterminated tags are drawn as
// regular text. See the bfcode subpackage for details.
//
// Measuring with [Renderer.MeasureWidth](), [Renderer.MeasureHeight]()
// and [Renderer.CharacterPosition]() interprets the markup exactly like
// [Renderer.Draw]() does, so measured sizes always match what's drawn.
package bftxt
