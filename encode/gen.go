package encode

import "fmt"
import "io"
import "bytes"
import "strconv"
import "go/format"
import "unicode"

import "github.com/pxkit/bitfont"
import fontformat "github.com/pxkit/bitfont/internal/format"

// Writes the compiled font as a Go source file declaring two package
// level variables: <varName>Data, the serialized bytes, and <varName>,
// the parsed *bitfont.Font. Each glyph gets a pixel-art comment above
// its data so the generated file stays reviewable and diffable.
//
// The emitted source is gofmt'd and deterministic.
func (self *Builder) WriteGo(w io.Writer, pkgName, varName string) error {
	data, err := self.Bytes()
	if err != nil { return err }
	font, err := bitfont.Parse(data)
	if err != nil { return err }

	var buffer bytes.Buffer
	fmt.Fprintf(&buffer, "// Code generated by bitfontc. DO NOT EDIT.\n\n")
	fmt.Fprintf(&buffer, "package %s\n\n", pkgName)
	fmt.Fprintf(&buffer, "import \"github.com/pxkit/bitfont\"\n\n")

	fmt.Fprintf(&buffer, "// line height %d, %d glyphs, %d pool bytes.\n",
		font.LineHeight(), font.NumGlyphs(), font.PoolSize())
	for i := 0; i < font.NumGlyphs(); i++ {
		self.writeGlyphArt(&buffer, font, bitfont.GlyphIndex(i))
	}

	fmt.Fprintf(&buffer, "var %sData = []byte{\n", varName)
	for offset := 0; offset < len(data); offset += 12 {
		end := offset + 12
		if end > len(data) { end = len(data) }
		buffer.WriteString("\t")
		for _, b := range data[offset:end] {
			fmt.Fprintf(&buffer, "0x%02x, ", b)
		}
		buffer.WriteString("\n")
	}
	fmt.Fprintf(&buffer, "}\n\nvar %s = bitfont.MustParse(%sData)\n", varName, varName)

	source, err := format.Source(buffer.Bytes())
	if err != nil { return err }
	_, err = w.Write(source)
	return err
}

// One comment block per glyph, gen-style:
//
//	// glyph 33 'A'
//	// | **  |
//	// |*  * |
//	// ...
func (self *Builder) writeGlyphArt(buffer *bytes.Buffer, font *bitfont.Font, index bitfont.GlyphIndex) {
	fmt.Fprintf(buffer, "// glyph %d%s\n", index, self.glyphLabel(int(index)))
	glyph := font.Glyph(index)
	if glyph.Bitmap.IsEmpty() {
		fmt.Fprintf(buffer, "// (blank, advance %d)\n", glyph.Advance)
		return
	}
	data := font.Bitmap(glyph.Bitmap)
	stride := int(glyph.Stride)
	for row := 0; row+stride <= len(data); row += stride {
		buffer.WriteString("// |")
		for _, b := range data[row : row+stride] {
			for bit := 0; bit < 8; bit++ {
				if b&0x80 != 0 {
					buffer.WriteByte('*')
				} else {
					buffer.WriteByte(' ')
				}
				b <<= 1
			}
		}
		buffer.WriteString("|\n")
	}
}

func (self *Builder) glyphLabel(index int) string {
	var codepoint rune = -1
	switch self.mappingKind {
	case fontformat.MappingDense:
		codepoint = self.first + rune(index)
	case fontformat.MappingSparse:
		if index < len(self.codepoints) { codepoint = self.codepoints[index] }
	case fontformat.MappingCodepage:
		b := int(self.first) + index
		if b <= 0xFF { codepoint = self.codepage.Charmap().DecodeByte(byte(b)) }
	}
	if codepoint < 0 { return "" }
	if unicode.IsGraphic(codepoint) {
		return " " + strconv.QuoteRune(codepoint)
	}
	return fmt.Sprintf(" %#x", codepoint)
}
