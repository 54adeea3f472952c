// format defines the compiled font byte layout shared by the runtime
// parser (package bitfont) and the build-time serializer (package encode).
// Everything is little-endian. The layout must stay bit-exact across
// tools, so any change here is a format version bump.
package format

// File structure:
//
//	[header][glyph records][sparse table][kerning table][bitmap pool]
//
// The pool takes up all remaining bytes; its length is not stored.
const (
	Magic   = "BTF1"
	Version = 1
)

// Header, 20 bytes.
const (
	OffMagic       = 0  // 4 bytes
	OffVersion     = 4  // u8
	OffAscent      = 5  // u8
	OffDescent     = 6  // u8
	OffLineSpacing = 7  // i8
	OffMappingKind = 8  // u8, see Mapping* constants
	OffCodepage    = 9  // u8, see Codepage* constants
	OffFirst       = 10 // u32, dense first codepoint / codepage first byte
	OffGlyphCount  = 14 // u16
	OffKernCount   = 16 // u16
	OffSparseCount = 18 // u16
	HeaderSize     = 20
)

// Glyph record, 12 bytes each, glyphCount records right after the header.
const (
	GlyphStride  = 0 // u8, bitmap row width in bytes
	GlyphOriginX = 1 // u8
	GlyphOriginY = 2 // u8
	GlyphAdvance = 3 // u8
	GlyphOffset  = 4 // u32, bitmap pool offset
	GlyphLength  = 8 // u32, bitmap byte length (height*stride)
	GlyphSize    = 12
)

// Sparse mapping entry, 5 bytes each, sorted ascending by codepoint.
const (
	SparseCodepoint  = 0 // u32
	SparseGlyphIndex = 4 // u8
	SparseSize       = 5
)

// Kerning entry, 3 bytes each, sorted ascending by (before, after).
const (
	KernBefore = 0 // u8
	KernAfter  = 1 // u8
	KernAdjust = 2 // i8
	KernSize   = 3
)

// Mapping kinds.
const (
	MappingDense    = 0
	MappingSparse   = 1
	MappingCodepage = 2
)

// Codepage identifiers. Zero is reserved for "no codepage".
const (
	CodepageNone        = 0
	CodepageISO8859_1   = 1
	CodepageCP437       = 2
	CodepageISO8859_15  = 3
	CodepageWindows1252 = 4
)

// MaxGlyphs is the hard limit on glyphs per font: indices must fit
// in a byte so that glyph records and kerning entries stay compact.
const MaxGlyphs = 256
