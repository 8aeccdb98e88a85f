// The jitter subpackage implements the offsets table used by the
// BFCode "shake" directive.
//
// Instead of generating random offsets for each glyph on each frame,
// which would make shaking text flicker wildly, a [Cache] keeps a fixed
// size table of pseudo-random values and only regenerates it when the
// configured interval has elapsed. Renderers refresh the table at most
// once per draw call, so a single draw never observes two different
// tables.
//
// Caches are not concurrent-safe. They are meant to be owned by a
// single renderer and used from the goroutine that draws.
package jitter
