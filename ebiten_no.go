//go:build gtxt

package bitfont

import "image/draw"

// Alias to allow compiling the package without Ebitengine (gtxt version).
//
// Without Ebitengine, [Renderer.Draw]() targets default to
// [image/draw.Image]. Any of the standard image types work, as does
// anything else with a clipping Set(x, y, color).
type Target = draw.Image
