//go:build !gtxt

package bitfont

import "github.com/hajimehoshi/ebiten/v2"

// Alias to make the package work with Ebitengine (default version).
//
// With Ebitengine, [Renderer.Draw]() targets default to *ebiten.Image.
// Without it, they default to [image/draw.Image].
//
// Both provide Set(x, y, color) with silent clipping, which is all the
// blitter needs; the draw code is identical under either alias.
type Target = *ebiten.Image
