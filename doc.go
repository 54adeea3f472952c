// bitfont is a package for compiling pixel fonts into a compact,
// read-only binary form and rendering text from that form using only
// integer arithmetic and no heap allocation, which makes it suitable
// for microcontroller-class targets.
//
// The package is split in two halves:
//   - This root package contains the runtime side: the immutable [Font]
//     model, codepoint resolution, kerning lookup and the [Renderer]
//     with its allocation-free [DrawIterator].
//   - The subpackages contain the build-time side: [encode] turns raw
//     glyph bitmaps into a deduplicated font, [imgfont] imports the
//     human-editable font image format, and cmd/bitfontc ties both
//     together as a command line tool.
//
// Common runtime usage only needs a couple types:
//
//	font := myfont.Font // generated with bitfontc
//	var renderer bitfont.Renderer
//	renderer.SetFont(font)
//	renderer.Draw(target, "Hello world!", x, y)
//
// For render loops that can't afford any indirection, skip the renderer
// and consume draw instructions directly:
//
//	iter := font.Instructions("score: 1986", x, y)
//	for {
//		op, ok := iter.Next()
//		if !ok { break }
//		blit(op) // your display driver
//	}
//
// [encode]: https://pkg.go.dev/github.com/pxkit/bitfont/encode
// [imgfont]: https://pkg.go.dev/github.com/pxkit/bitfont/imgfont
package bitfont
