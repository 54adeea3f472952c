package bitfont

import "golang.org/x/text/encoding/charmap"

// Codepoint-to-glyph mapping strategies. The strategy is chosen once
// at build time by the encoder and never re-evaluated at runtime, so
// this is a tagged variant with a single branch per lookup rather
// than an interface with dynamic dispatch.
const (
	mappingDense    uint8 = 0 // contiguous run starting at 'first'
	mappingSparse   uint8 = 1 // sorted (codepoint, index) pairs
	mappingCodepage uint8 = 2 // byte-indexed through a named codepage
)

type sparseEntry struct {
	codepoint rune
	index     GlyphIndex
}

type mapping struct {
	kind     uint8
	first    rune // dense first codepoint / codepage first byte
	sparse   []sparseEntry
	codepage *charmap.Charmap
}

// numGlyphs is len(font.glyphs); dense lookups need the table size.
func (self *mapping) lookup(codepoint rune, numGlyphs int) (GlyphIndex, bool) {
	switch self.kind {
	case mappingDense:
		index := codepoint - self.first
		if index < 0 || index >= rune(numGlyphs) { return 0, false }
		return GlyphIndex(index), true
	case mappingSparse:
		entries := self.sparse
		lo, hi := 0, len(entries)
		for lo < hi {
			mid := (lo + hi) >> 1 // lo <= mid < hi
			if entries[mid].codepoint < codepoint {
				lo = mid + 1
			} else {
				hi = mid
			}
		}
		if lo == len(entries) || entries[lo].codepoint != codepoint { return 0, false }
		return entries[lo].index, true
	case mappingCodepage:
		b, ok := self.codepage.EncodeRune(codepoint)
		if !ok { return 0, false }
		index := int(b) - int(self.first)
		if index < 0 || index >= numGlyphs { return 0, false }
		return GlyphIndex(index), true
	default:
		panic("invalid mapping kind") // unreachable on parsed fonts
	}
}

// A CodepageID names one of the fixed 8-bit encodings a font can be
// mapped through. The actual tables come from [x/text/encoding/charmap].
//
// [x/text/encoding/charmap]: https://pkg.go.dev/golang.org/x/text/encoding/charmap
type CodepageID uint8

const (
	CodepageNone        CodepageID = 0
	CodepageISO8859_1   CodepageID = 1
	CodepageCP437       CodepageID = 2
	CodepageISO8859_15  CodepageID = 3
	CodepageWindows1252 CodepageID = 4
)

// Returns the charmap table for the codepage, or nil for unknown or
// [CodepageNone] identifiers.
func (self CodepageID) Charmap() *charmap.Charmap {
	switch self {
	case CodepageISO8859_1: return charmap.ISO8859_1
	case CodepageCP437: return charmap.CodePage437
	case CodepageISO8859_15: return charmap.ISO8859_15
	case CodepageWindows1252: return charmap.Windows1252
	default:
		return nil
	}
}

func (self CodepageID) String() string {
	switch self {
	case CodepageNone: return "none"
	case CodepageISO8859_1: return "iso8859-1"
	case CodepageCP437: return "cp437"
	case CodepageISO8859_15: return "iso8859-15"
	case CodepageWindows1252: return "windows-1252"
	default:
		return "unknown"
	}
}
