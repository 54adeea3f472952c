package bitfont

import "testing"

import "github.com/pxkit/bitfont/internal/format"

func blankGlyphs(count int) []testGlyphRecord {
	glyphs := make([]testGlyphRecord, count)
	for i := range glyphs { glyphs[i].advance = 1 }
	return glyphs
}

func TestDenseSparseEquivalence(t *testing.T) {
	dense := (&testFontSpec{
		ascent:      1,
		mappingKind: format.MappingDense,
		first:       '0',
		glyphs:      blankGlyphs(10),
	}).parse(t)

	sparse := &testFontSpec{
		ascent:      1,
		mappingKind: format.MappingSparse,
		glyphs:      blankGlyphs(10),
	}
	for i := 0; i < 10; i++ {
		sparse.sparse = append(sparse.sparse, testSparsePair{codepoint: '0' + rune(i), index: uint8(i)})
	}
	sparseFont := sparse.parse(t)

	// the two storage strategies must be indistinguishable from the
	// lookup side
	for codepoint := rune(0); codepoint < 0x100; codepoint++ {
		denseIndex, denseFound := dense.Lookup(codepoint)
		sparseIndex, sparseFound := sparseFont.Lookup(codepoint)
		if denseFound != sparseFound || denseIndex != sparseIndex {
			t.Fatalf(
				"lookup mismatch at %#U: dense (%d, %t), sparse (%d, %t)",
				codepoint, denseIndex, denseFound, sparseIndex, sparseFound,
			)
		}
	}

	index, found := dense.Lookup('7')
	if !found || index != 7 { t.Fatalf("Lookup('7') = (%d, %t)", index, found) }
	_, found = dense.Lookup('a')
	if found { t.Fatal("'a' should not be represented") }
}

func TestSparseLookupEdges(t *testing.T) {
	font := (&testFontSpec{
		ascent:      1,
		mappingKind: format.MappingSparse,
		glyphs:      blankGlyphs(3),
		sparse: []testSparsePair{
			{codepoint: 'A', index: 0},
			{codepoint: 'M', index: 1},
			{codepoint: 'Z', index: 2},
		},
	}).parse(t)

	for _, pair := range []struct {
		codepoint rune
		index     GlyphIndex
		found     bool
	}{
		{'A', 0, true}, {'M', 1, true}, {'Z', 2, true},
		{'A' - 1, 0, false}, {'B', 0, false}, {'Z' + 1, 0, false},
	} {
		index, found := font.Lookup(pair.codepoint)
		if found != pair.found || (found && index != pair.index) {
			t.Fatalf("Lookup(%q) = (%d, %t), expected (%d, %t)",
				pair.codepoint, index, found, pair.index, pair.found)
		}
	}
}

func TestCodepageLookup(t *testing.T) {
	// two glyphs mapped through CP437 starting at byte 0x80, which
	// decodes to 'Ç' and 'ü'
	font := (&testFontSpec{
		ascent:      1,
		mappingKind: format.MappingCodepage,
		codepage:    format.CodepageCP437,
		first:       0x80,
		glyphs:      blankGlyphs(2),
	}).parse(t)

	index, found := font.Lookup('Ç')
	if !found || index != 0 { t.Fatalf("Lookup('Ç') = (%d, %t)", index, found) }
	index, found = font.Lookup('ü')
	if !found || index != 1 { t.Fatalf("Lookup('ü') = (%d, %t)", index, found) }

	// 'é' is in CP437 (byte 0x82) but beyond this font's two glyphs,
	// and '€' is not in CP437 at all
	_, found = font.Lookup('é')
	if found { t.Fatal("'é' maps past the glyph table and should not be found") }
	_, found = font.Lookup('€')
	if found { t.Fatal("'€' is not in CP437 and should not be found") }
}

func TestFallbackResolution(t *testing.T) {
	primary := (&testFontSpec{
		ascent:      1,
		mappingKind: format.MappingDense,
		first:       'a',
		glyphs:      blankGlyphs(2),
	}).parse(t)
	extra := (&testFontSpec{
		ascent:      1,
		mappingKind: format.MappingSparse,
		glyphs:      blankGlyphs(1),
		sparse:      []testSparsePair{{codepoint: '•', index: 0}},
	}).parse(t)

	err := primary.SetFallback(extra)
	if err != nil { t.Fatalf("SetFallback: %v", err) }
	if primary.Fallback() != extra { t.Fatal("fallback link not set") }

	// represented by the primary: the fallback is not consulted
	owner, index, found := primary.Resolve('b')
	if !found || owner != primary || index != 1 {
		t.Fatalf("Resolve('b') = (%p, %d, %t)", owner, index, found)
	}

	// only the fallback represents the bullet; the returned glyph
	// index refers to the fallback's table
	owner, index, found = primary.Resolve('•')
	if !found || owner != extra || index != 0 {
		t.Fatalf("Resolve('•') = (%p, %d, %t), expected the fallback font", owner, index, found)
	}

	_, _, found = primary.Resolve('E')
	if found { t.Fatal("'E' is in no font of the chain") }
}

func TestFallbackCycleRejected(t *testing.T) {
	a := squareFontSpec().parse(t)
	b := squareFontSpec().parse(t)
	c := squareFontSpec().parse(t)

	if err := a.SetFallback(a); err == nil {
		t.Fatal("self fallback must be rejected")
	}
	if err := a.SetFallback(b); err != nil { t.Fatalf("SetFallback: %v", err) }
	if err := b.SetFallback(c); err != nil { t.Fatalf("SetFallback: %v", err) }
	if err := c.SetFallback(a); err == nil {
		t.Fatal("closing a fallback cycle must be rejected")
	}
	if c.Fallback() != nil { t.Fatal("failed SetFallback must leave the font unchanged") }
}
