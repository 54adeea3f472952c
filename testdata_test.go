package bitfont

import "encoding/binary"
import "testing"

import "github.com/pxkit/bitfont/internal/format"

// Hand-assembled compiled fonts for the runtime tests. Building the
// bytes directly (instead of going through the encode package) keeps
// the runtime tests independent from the build-time pipeline and
// doubles as a check that the byte layout matches internal/format.

type testGlyphRecord struct {
	stride, originX, originY, advance uint8
	offset, length                    uint32
}

type testSparsePair struct {
	codepoint rune
	index     uint8
}

type testFontSpec struct {
	ascent, descent uint8
	lineSpacing     int8
	mappingKind     uint8
	codepage        uint8
	first           rune
	glyphs          []testGlyphRecord
	sparse          []testSparsePair
	kerning         []KerningEntry
	pool            []byte
}

func (self *testFontSpec) bytes() []byte {
	data := []byte(format.Magic)
	data = append(data, format.Version, self.ascent, self.descent, byte(self.lineSpacing))
	data = append(data, self.mappingKind, self.codepage)
	data = appendU32(data, uint32(self.first))
	data = appendU16(data, uint16(len(self.glyphs)))
	data = appendU16(data, uint16(len(self.kerning)))
	data = appendU16(data, uint16(len(self.sparse)))
	for _, glyph := range self.glyphs {
		data = append(data, glyph.stride, glyph.originX, glyph.originY, glyph.advance)
		data = appendU32(data, glyph.offset)
		data = appendU32(data, glyph.length)
	}
	for _, pair := range self.sparse {
		data = appendU32(data, uint32(pair.codepoint))
		data = append(data, pair.index)
	}
	for _, entry := range self.kerning {
		data = append(data, byte(entry.Before), byte(entry.After), byte(entry.Adjust))
	}
	return append(data, self.pool...)
}

func (self *testFontSpec) parse(t *testing.T) *Font {
	t.Helper()
	font, err := Parse(self.bytes())
	if err != nil { t.Fatalf("parsing test font: %v", err) }
	return font
}

func appendU16(data []byte, value uint16) []byte {
	var buffer [2]byte
	binary.LittleEndian.PutUint16(buffer[:], value)
	return append(data, buffer[:]...)
}

func appendU32(data []byte, value uint32) []byte {
	var buffer [4]byte
	binary.LittleEndian.PutUint32(buffer[:], value)
	return append(data, buffer[:]...)
}

// The font from the renderer scenarios: an 8x8 monospace font where
// glyph 0 is blank and glyph 1 is a filled square, both with advance
// 8, mapped densely from codepoint 0.
func squareFontSpec(kerning ...KerningEntry) *testFontSpec {
	return &testFontSpec{
		ascent:      8,
		mappingKind: format.MappingDense,
		first:       0,
		glyphs: []testGlyphRecord{
			{advance: 8}, // blank, canonical empty reference
			{stride: 1, advance: 8, offset: 0, length: 8},
		},
		kerning: kerning,
		pool:    []byte{0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF},
	}
}
