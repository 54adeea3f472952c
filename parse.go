package bitfont

import "errors"
import "fmt"
import "encoding/binary"

import "github.com/pxkit/bitfont/internal/format"

var errTruncated = errors.New("truncated font data")

// Parses a compiled font. The given bytes are kept by reference for
// the bitmap pool and must not be modified while the font is in use;
// this is what makes fonts trivially embeddable as static data.
//
// Parse validates the whole structure up front (magic and version,
// table bounds, sortedness, bitmap references) so that the render
// path can rely on the data without further checks.
func Parse(data []byte) (*Font, error) {
	if len(data) < format.HeaderSize { return nil, errTruncated }
	if string(data[format.OffMagic:format.OffMagic+4]) != format.Magic {
		return nil, errors.New("invalid font data: bad magic bytes")
	}
	if data[format.OffVersion] != format.Version {
		return nil, fmt.Errorf("unsupported font format version %d", data[format.OffVersion])
	}

	font := &Font{
		ascent:      data[format.OffAscent],
		descent:     data[format.OffDescent],
		lineSpacing: int8(data[format.OffLineSpacing]),
	}
	first := rune(binary.LittleEndian.Uint32(data[format.OffFirst:]))
	glyphCount := int(binary.LittleEndian.Uint16(data[format.OffGlyphCount:]))
	kernCount := int(binary.LittleEndian.Uint16(data[format.OffKernCount:]))
	sparseCount := int(binary.LittleEndian.Uint16(data[format.OffSparseCount:]))
	if glyphCount > format.MaxGlyphs {
		return nil, fmt.Errorf("font has %d glyphs, max is %d", glyphCount, format.MaxGlyphs)
	}

	// section bounds
	glyphsStart := format.HeaderSize
	sparseStart := glyphsStart + glyphCount*format.GlyphSize
	kernStart := sparseStart + sparseCount*format.SparseSize
	poolStart := kernStart + kernCount*format.KernSize
	if len(data) < poolStart { return nil, errTruncated }
	font.pool = data[poolStart:]

	// glyph table
	font.glyphs = make([]Glyph, glyphCount)
	for i := 0; i < glyphCount; i++ {
		record := data[glyphsStart+i*format.GlyphSize:]
		glyph := Glyph{
			Stride: record[format.GlyphStride],
			Bitmap: BitmapRef{
				Offset: binary.LittleEndian.Uint32(record[format.GlyphOffset:]),
				Length: binary.LittleEndian.Uint32(record[format.GlyphLength:]),
			},
			OriginX: record[format.GlyphOriginX],
			OriginY: record[format.GlyphOriginY],
			Advance: record[format.GlyphAdvance],
		}
		err := font.validateGlyph(i, glyph)
		if err != nil { return nil, err }
		font.glyphs[i] = glyph
	}

	// mapping
	switch data[format.OffMappingKind] {
	case format.MappingDense:
		font.mapping = mapping{kind: mappingDense, first: first}
	case format.MappingSparse:
		entries := make([]sparseEntry, sparseCount)
		prev := rune(-1)
		for i := 0; i < sparseCount; i++ {
			record := data[sparseStart+i*format.SparseSize:]
			codepoint := rune(binary.LittleEndian.Uint32(record[format.SparseCodepoint:]))
			index := record[format.SparseGlyphIndex]
			if codepoint <= prev {
				return nil, errors.New("sparse mapping table not sorted by codepoint")
			}
			if int(index) >= glyphCount {
				return nil, fmt.Errorf("sparse mapping entry %d references glyph %d out of range", i, index)
			}
			entries[i] = sparseEntry{codepoint: codepoint, index: GlyphIndex(index)}
			prev = codepoint
		}
		font.mapping = mapping{kind: mappingSparse, sparse: entries}
	case format.MappingCodepage:
		table := CodepageID(data[format.OffCodepage]).Charmap()
		if table == nil {
			return nil, fmt.Errorf("unknown codepage id %d", data[format.OffCodepage])
		}
		if first > 0xFF { return nil, errors.New("codepage first byte out of range") }
		font.mapping = mapping{kind: mappingCodepage, first: first, codepage: table}
	default:
		return nil, fmt.Errorf("unknown mapping kind %d", data[format.OffMappingKind])
	}

	// kerning table
	font.kerning = make([]KerningEntry, kernCount)
	prevKey := -1
	for i := 0; i < kernCount; i++ {
		record := data[kernStart+i*format.KernSize:]
		entry := KerningEntry{
			Before: GlyphIndex(record[format.KernBefore]),
			After:  GlyphIndex(record[format.KernAfter]),
			Adjust: int8(record[format.KernAdjust]),
		}
		if int(entry.Before) >= glyphCount || int(entry.After) >= glyphCount {
			return nil, fmt.Errorf("kerning entry %d references glyph out of range", i)
		}
		if int(entry.key()) <= prevKey {
			return nil, errors.New("kerning table not sorted by (before, after)")
		}
		prevKey = int(entry.key())
		font.kerning[i] = entry
	}

	return font, nil
}

// Like [Parse](), but panicking on error. Intended for generated code
// embedding compiled fonts as static data.
func MustParse(data []byte) *Font {
	font, err := Parse(data)
	if err != nil { panic(err) }
	return font
}

func (self *Font) validateGlyph(i int, glyph Glyph) error {
	if glyph.Bitmap.Length == 0 {
		// blank glyph, canonical empty reference
		if glyph.Stride != 0 {
			return fmt.Errorf("glyph %d has stride %d but no bitmap data", i, glyph.Stride)
		}
		return nil
	}
	if glyph.Stride == 0 {
		return fmt.Errorf("glyph %d has bitmap data but stride zero", i)
	}
	end := uint64(glyph.Bitmap.Offset) + uint64(glyph.Bitmap.Length)
	if end > uint64(len(self.pool)) {
		return fmt.Errorf("glyph %d bitmap reference exceeds pool size", i)
	}
	if glyph.Bitmap.Length%uint32(glyph.Stride) != 0 {
		return fmt.Errorf("glyph %d bitmap length is not a multiple of its stride", i)
	}
	if glyph.Height() > int(self.ascent)+int(self.descent) {
		return fmt.Errorf("glyph %d is taller than the font's line height", i)
	}
	return nil
}
