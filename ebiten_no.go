//go:build gtxt

package bftxt

import "image/draw"

// Alias to allow compiling the package without Ebitengine (gtxt version).
//
// With Ebitengine, TargetImage defaults to *ebiten.Image.
type TargetImage = draw.Image

// Creates the default [Target] for the given image. In the gtxt
// version, this is an [*ImageTarget].
func NewTarget(img TargetImage) Target {
	return NewImageTarget(img)
}
