// encode implements the build-time half of bitfont: it takes raw glyph
// bitmaps and metrics, deduplicates bitmap bytes into a shared pool,
// picks a codepoint mapping strategy and serializes everything into
// the compact read-only form the runtime consumes.
//
// Everything here runs once, to completion, with deterministic output:
// identical inputs always produce byte-identical compiled fonts.
package encode

import "errors"
import "fmt"
import "math/bits"

import "github.com/pxkit/bitfont"
import "github.com/pxkit/bitfont/internal/format"

// Raw input bitmap for a single glyph: one uint64 per row of the
// glyph's cell, most significant bit leftmost. Cells are at most 64
// pixels wide; every cell of a font spans the full line height, blank
// rows included (trimming is the builder's job, not the caller's).
type rawGlyph struct {
	rows  []uint64
	width uint8 // advance width in pixels
}

// A Builder accumulates glyphs, metrics and kerning pairs and compiles
// them into a [bitfont.Font] or its serialized form. The zero value is
// not valid; use [NewBuilder]().
//
// Builders validate on [Builder.Bytes]()/[Builder.Build]() and fail
// without partial output: glyph count over 256, duplicate kerning
// pairs, oversized bitmaps and pool overflows are build errors, never
// runtime conditions.
type Builder struct {
	ascent      uint8
	descent     uint8
	lineSpacing int8

	glyphs  []rawGlyph
	kerning map[uint16]int8

	mappingKind uint8
	mappingSet  bool
	first       rune
	codepoints  []rune // sparse: codepoints[i] maps to glyph i
	codepage    bitfont.CodepageID
}

func NewBuilder() *Builder {
	return &Builder{kerning: make(map[uint16]int8)}
}

// Sets the font's vertical metrics. Line spacing is the extra signed
// displacement between lines; zero or negative values are fine.
func (self *Builder) SetMetrics(ascent, descent uint8, lineSpacing int8) {
	self.ascent = ascent
	self.descent = descent
	self.lineSpacing = lineSpacing
}

// Adds a glyph bitmap. Glyph indices are assigned by insertion order.
// The rows must span the full line height set via [Builder.SetMetrics]()
// (this is checked at build time) and the advance width can't exceed
// the 64 pixel cell.
func (self *Builder) AddGlyph(rows []uint64, width uint8) error {
	if width > 64 { return fmt.Errorf("glyph %d: advance %d exceeds the 64px cell", len(self.glyphs), width) }
	if len(self.glyphs) >= format.MaxGlyphs {
		return fmt.Errorf("can't add glyph: fonts are limited to %d glyphs", format.MaxGlyphs)
	}
	glyph := rawGlyph{rows: make([]uint64, len(rows)), width: width}
	copy(glyph.rows, rows)
	self.glyphs = append(self.glyphs, glyph)
	return nil
}

// Number of glyphs added so far.
func (self *Builder) NumGlyphs() int { return len(self.glyphs) }

// Registers a kerning adjustment for the given glyph pair. Adding the
// same (before, after) pair twice is an error; pairs with zero
// adjustment are ignored (absence of an entry already means "no
// adjustment", and the runtime table should stay minimal).
func (self *Builder) SetKerning(before, after bitfont.GlyphIndex, adjust int8) error {
	key := uint16(before)<<8 | uint16(after)
	if _, exists := self.kerning[key]; exists {
		return fmt.Errorf("duplicate kerning pair (%d, %d)", before, after)
	}
	if adjust == 0 { return nil }
	self.kerning[key] = adjust
	return nil
}

// Maps glyphs to the contiguous codepoint run starting at first:
// glyph i resolves from codepoint first+i. O(1) lookups at runtime.
func (self *Builder) MapDense(first rune) {
	self.mappingKind = format.MappingDense
	self.first = first
	self.mappingSet = true
}

// Maps glyph i to codepoints[i], with no contiguity requirement.
// Lookups run a binary search at runtime. The slice length must match
// the final glyph count (checked at build time).
func (self *Builder) MapSparse(codepoints []rune) {
	self.mappingKind = format.MappingSparse
	self.codepoints = append([]rune(nil), codepoints...)
	self.mappingSet = true
}

// Maps glyphs through a fixed 8-bit codepage: glyph i resolves from
// any codepoint that the codepage encodes as byte first+i.
func (self *Builder) MapCodepage(id bitfont.CodepageID, first byte) error {
	if id.Charmap() == nil { return fmt.Errorf("unknown codepage id %d", id) }
	self.mappingKind = format.MappingCodepage
	self.codepage = id
	self.first = rune(first)
	self.mappingSet = true
	return nil
}

// Maps glyph i to codepoints[i], choosing the storage strategy from
// the coverage shape: a contiguous ascending run becomes Dense (O(1)
// lookups), anything irregular becomes Sparse. The choice is made
// here, once, at build time.
func (self *Builder) Map(codepoints []rune) {
	dense := len(codepoints) > 0
	for i, codepoint := range codepoints {
		if codepoint != codepoints[0]+rune(i) {
			dense = false
			break
		}
	}
	if dense {
		self.MapDense(codepoints[0])
	} else {
		self.MapSparse(codepoints)
	}
}

// Compiles and parses the font in one go. The result references the
// serialized bytes produced by [Builder.Bytes]().
func (self *Builder) Build() (*bitfont.Font, error) {
	data, err := self.Bytes()
	if err != nil { return nil, err }
	return bitfont.Parse(data)
}

// ---- bitmap trimming ----

// A glyph record ready for serialization.
type packedGlyph struct {
	stride  uint8
	originX uint8
	originY uint8
	advance uint8
	offset  uint32
	length  uint32
}

// Trims the blank border of a glyph cell and packs the remaining image
// into bytes, row-major, MSB-first, (bits+7)/8 bytes per row. The
// trimmed-away top and left padding become the glyph's origin vector.
// Fully blank cells report blank=true and must use the canonical empty
// bitmap reference.
func packGlyph(rows []uint64) (packed []byte, stride, originX, originY uint8, blank bool) {
	padTop := 0
	for padTop < len(rows) && rows[padTop] == 0 { padTop++ }
	if padTop == len(rows) { return nil, 0, 0, 0, true }

	padBottom := 0
	for rows[len(rows)-1-padBottom] == 0 { padBottom++ }
	padLeft, padRight := 64, 64
	for _, row := range rows {
		if leading := bits.LeadingZeros64(row); leading < padLeft { padLeft = leading }
		if trailing := bits.TrailingZeros64(row); trailing < padRight { padRight = trailing }
	}

	xBits := 64 - padLeft - padRight
	strideInt := (xBits + 7) / 8
	for _, row := range rows[padTop : len(rows)-padBottom] {
		shifted := row << uint(padLeft)
		for i := 0; i < strideInt; i++ {
			packed = append(packed, byte(shifted>>56))
			shifted <<= 8
		}
	}
	return packed, uint8(strideInt), uint8(padLeft), uint8(padTop), false
}

var errNoMetrics = errors.New("font metrics not set (tip: Builder.SetMetrics())")
var errNoMapping = errors.New("codepoint mapping not set (tip: Builder.Map())")
