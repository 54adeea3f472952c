package encode

import "fmt"
import "sort"
import "encoding/binary"

import "github.com/pxkit/bitfont/internal/format"

// Serializes the font into its compiled byte layout (see
// internal/format). The output is bit-exact for cross-tool
// compatibility and fully deterministic: encoding the same input
// twice produces byte-identical results.
func (self *Builder) Bytes() ([]byte, error) {
	if !self.mappingSet { return nil, errNoMapping }
	if self.ascent == 0 && self.descent == 0 { return nil, errNoMetrics }
	lineHeight := int(self.ascent) + int(self.descent)

	// trim, pack and scavenge the glyph bitmaps, in glyph order
	var bitmaps pool
	glyphs := make([]packedGlyph, len(self.glyphs))
	for i, glyph := range self.glyphs {
		if len(glyph.rows) != lineHeight {
			return nil, fmt.Errorf("glyph %d spans %d rows, but the line height is %d", i, len(glyph.rows), lineHeight)
		}
		data, stride, originX, originY, blank := packGlyph(glyph.rows)
		if blank {
			glyphs[i] = packedGlyph{advance: glyph.width} // canonical empty reference
			continue
		}
		glyphs[i] = packedGlyph{
			stride:  stride,
			originX: originX,
			originY: originY,
			advance: glyph.width,
			offset:  bitmaps.place(data),
			length:  uint32(len(data)),
		}
	}
	if uint64(len(bitmaps.data)) > uint64(^uint32(0)) {
		return nil, fmt.Errorf("bitmap pool size %d overflows the 32-bit offset range", len(bitmaps.data))
	}

	sparse, err := self.sparseEntries()
	if err != nil { return nil, err }
	kerning, err := self.kerningEntries()
	if err != nil { return nil, err }
	if self.mappingKind == format.MappingDense && self.first < 0 {
		return nil, fmt.Errorf("dense mapping first codepoint %d can't be negative", self.first)
	}

	// serialize
	size := format.HeaderSize + len(glyphs)*format.GlyphSize +
		len(sparse)*format.SparseSize + len(kerning)*format.KernSize + len(bitmaps.data)
	data := make([]byte, 0, size)
	data = append(data, format.Magic...)
	data = append(data, format.Version, self.ascent, self.descent, byte(self.lineSpacing))
	data = append(data, self.mappingKind, byte(self.codepage))
	data = appendUint32(data, uint32(self.first))
	data = appendUint16(data, uint16(len(glyphs)))
	data = appendUint16(data, uint16(len(kerning)))
	data = appendUint16(data, uint16(len(sparse)))
	for _, glyph := range glyphs {
		data = append(data, glyph.stride, glyph.originX, glyph.originY, glyph.advance)
		data = appendUint32(data, glyph.offset)
		data = appendUint32(data, glyph.length)
	}
	for _, entry := range sparse {
		data = appendUint32(data, uint32(entry.codepoint))
		data = append(data, entry.index)
	}
	for _, entry := range kerning {
		data = append(data, byte(entry>>16), byte(entry>>8), byte(entry))
	}
	data = append(data, bitmaps.data...)
	return data, nil
}

type sparsePair struct {
	codepoint rune
	index     byte
}

func (self *Builder) sparseEntries() ([]sparsePair, error) {
	if self.mappingKind != format.MappingSparse { return nil, nil }
	if len(self.codepoints) != len(self.glyphs) {
		return nil, fmt.Errorf("sparse mapping covers %d codepoints but the font has %d glyphs",
			len(self.codepoints), len(self.glyphs))
	}
	entries := make([]sparsePair, len(self.codepoints))
	for i, codepoint := range self.codepoints {
		if codepoint < 0 { return nil, fmt.Errorf("invalid codepoint %d in sparse mapping", codepoint) }
		entries[i] = sparsePair{codepoint: codepoint, index: byte(i)}
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].codepoint < entries[j].codepoint })
	for i := 1; i < len(entries); i++ {
		if entries[i].codepoint == entries[i-1].codepoint {
			return nil, fmt.Errorf("codepoint %#x mapped to multiple glyphs", entries[i].codepoint)
		}
	}
	return entries, nil
}

// Kerning entries packed as (before<<16 | after<<8 | adjust), which
// sorts exactly like (before, after) since pairs are unique.
func (self *Builder) kerningEntries() ([]uint32, error) {
	entries := make([]uint32, 0, len(self.kerning))
	for key, adjust := range self.kerning {
		before, after := int(key>>8), int(key&0xFF)
		if before >= len(self.glyphs) || after >= len(self.glyphs) {
			return nil, fmt.Errorf("kerning pair (%d, %d) references a glyph out of range", before, after)
		}
		entries = append(entries, uint32(key)<<8|uint32(uint8(adjust)))
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i] < entries[j] })
	return entries, nil
}

func appendUint16(data []byte, value uint16) []byte {
	var buffer [2]byte
	binary.LittleEndian.PutUint16(buffer[:], value)
	return append(data, buffer[:]...)
}

func appendUint32(data []byte, value uint32) []byte {
	var buffer [4]byte
	binary.LittleEndian.PutUint32(buffer[:], value)
	return append(data, buffer[:]...)
}
