package imgfont

import "fmt"

// Guesses the codepoint of the first glyph from the positions of the
// blank cells, for sheets that don't declare it explicitly. Works off
// the observation that the only blank glyphs in common 8-bit fonts
// are the space (0x20), NUL and the no-break space (0xFF-ish), so
// their indices betray the offset:
//   - a single blank at i: the sheet starts at ' '-i;
//   - blanks at 0 and 32: a full table starting at 0;
//   - blanks 223 apart (space and no-break space): starts at 32;
//   - blanks at 0, 32, 255: a full table starting at 0;
//   - blanks at 0 and 95: CP437-style table starting at 32.
//
// Anything else is ambiguous and reported as an error; pass the first
// codepoint explicitly in that case.
func DetectFirst(cells []Cell) (byte, error) {
	var blanks []int
	for i := range cells {
		if cells[i].IsBlank() { blanks = append(blanks, i) }
	}

	switch {
	case len(blanks) == 1 && blanks[0] <= ' ':
		return ' ' - byte(blanks[0]), nil
	case len(blanks) == 2 && blanks[0] == 0 && blanks[1] == 32:
		return 0, nil
	case len(blanks) == 2 && blanks[1] == blanks[0]+223:
		return 32, nil
	case len(blanks) == 3 && blanks[0] == 0 && blanks[1] == 32 && blanks[2] == 255:
		return 0, nil
	case len(blanks) == 2 && blanks[0] == 0 && blanks[1] == 95:
		return 32, nil
	default:
		return 0, fmt.Errorf("can't detect first codepoint from blank glyph pattern %v", blanks)
	}
}
