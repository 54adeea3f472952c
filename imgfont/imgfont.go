// imgfont imports the human-editable font image format: a PNG (or any
// registered image format) divided into horizontal glyph bands.
//
// The layout contract:
//   - Each band is closed by a one-pixel-tall strip of pure red
//     starting at the left margin; the strip's width is the band's
//     width. Bands must be evenly spaced (same height).
//   - Within a band, exactly one row contains pure blue within the
//     band width: the baseline.
//   - Along the baseline, pure red pixels separate glyph cells (a
//     separator may be several pixels wide; cells are at most 64
//     pixels wide).
//   - Pure black pixels are set bits, anything else is background.
//
// Violations are fatal import errors; nothing is partially decoded.
package imgfont

import "errors"
import "fmt"
import "image"
import "io"

import _ "image/png"

// A glyph cell extracted from the image: one uint64 per row, most
// significant bit leftmost, plus the cell's width in pixels (which
// becomes the glyph's advance width).
type Cell struct {
	Rows  []uint64
	Width uint8
}

// Whether the cell contains no set pixels at all.
func (self *Cell) IsBlank() bool {
	for _, row := range self.Rows {
		if row != 0 { return false }
	}
	return true
}

// The decoded contents of a font image: global metrics plus the glyph
// cells in band order, left to right, top to bottom. Cells from bands
// with differing baselines are already normalized to the shared
// ascent/descent, so all of them span Ascent+Descent rows.
type Sheet struct {
	Ascent  uint8
	Descent uint8
	Cells   []Cell
}

// Reads an image from r and decodes it as a font sheet.
func Decode(r io.Reader) (*Sheet, error) {
	img, _, err := image.Decode(r)
	if err != nil { return nil, err }
	return DecodeImage(img)
}

type band struct {
	ascent  int
	descent int
	cells   []Cell
}

// Like [Decode](), but starting from an already decoded image.
func DecodeImage(img image.Image) (*Sheet, error) {
	bounds := img.Bounds()
	isRed := colorClassifier(img, 0xFF, 0x00, 0x00)
	isBlue := colorClassifier(img, 0x00, 0x00, 0xFF)
	isBlack := colorClassifier(img, 0x00, 0x00, 0x00)

	var bands []band
	bandHeight := -1
	lastY := bounds.Min.Y
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		if !isRed(bounds.Min.X, y) { continue }

		height := y - lastY
		if height == 0 { return nil, errors.New("empty band: consecutive separator rows") }
		if bandHeight == -1 {
			bandHeight = height
		} else if height != bandHeight {
			return nil, fmt.Errorf("uneven band spacing: %d rows, then %d", bandHeight, height)
		}

		// the separator strip's length is the band width
		bandWidth := 0
		for bounds.Min.X+bandWidth < bounds.Max.X && isRed(bounds.Min.X+bandWidth, y) {
			bandWidth++
		}

		parsed, err := decodeBand(img, isRed, isBlue, isBlack, lastY, y, bandWidth)
		if err != nil { return nil, err }
		bands = append(bands, parsed)
		lastY = y + 1
	}
	if len(bands) == 0 { return nil, errors.New("no bands found (no red separator rows at the left margin)") }

	return normalizeBands(bands)
}

func decodeBand(img image.Image, isRed, isBlue, isBlack func(int, int) bool, top, bottom, bandWidth int) (band, error) {
	minX := img.Bounds().Min.X

	// locate the baseline
	baseline := -1
	for y := top; y < bottom; y++ {
		hasBlue := false
		for x := 0; x < bandWidth; x++ {
			if isBlue(minX+x, y) {
				hasBlue = true
				break
			}
		}
		if !hasBlue { continue }
		if baseline != -1 { return band{}, errors.New("ambiguous baseline: multiple blue rows in one band") }
		baseline = y
	}
	if baseline == -1 { return band{}, errors.New("missing baseline: no blue row in band") }

	parsed := band{ascent: baseline + 1 - top, descent: bottom - (baseline + 1)}

	// red pixels along the baseline close glyph cells
	lastEdge := 0
	for x := 0; x < bandWidth; x++ {
		if !isRed(minX+x, baseline) { continue }
		width := x - lastEdge
		if width > 64 { return band{}, fmt.Errorf("glyph cell %d pixels wide, max is 64", width) }
		if width > 0 {
			cell := Cell{Rows: make([]uint64, bottom-top), Width: uint8(width)}
			for y := top; y < bottom; y++ {
				var row uint64
				mask := uint64(1) << 63
				for gx := lastEdge; gx < x; gx++ {
					if isBlack(minX+gx, y) { row |= mask }
					mask >>= 1
				}
				cell.Rows[y-top] = row
			}
			parsed.cells = append(parsed.cells, cell)
		}
		lastEdge = x + 1
	}
	return parsed, nil
}

// Bands may place their baselines differently; glyphs are padded with
// blank rows so every cell spans the same maximum ascent and descent.
func normalizeBands(bands []band) (*Sheet, error) {
	maxAscent, maxDescent := 0, 0
	for _, b := range bands {
		if b.ascent > maxAscent { maxAscent = b.ascent }
		if b.descent > maxDescent { maxDescent = b.descent }
	}
	if maxAscent > 0xFF || maxDescent > 0xFF {
		return nil, fmt.Errorf("line metrics %d+%d exceed the byte range", maxAscent, maxDescent)
	}

	sheet := &Sheet{Ascent: uint8(maxAscent), Descent: uint8(maxDescent)}
	for _, b := range bands {
		ascentPad := maxAscent - b.ascent
		descentPad := maxDescent - b.descent
		for _, cell := range b.cells {
			if ascentPad != 0 || descentPad != 0 {
				rows := make([]uint64, 0, maxAscent+maxDescent)
				rows = append(rows, make([]uint64, ascentPad)...)
				rows = append(rows, cell.Rows...)
				rows = append(rows, make([]uint64, descentPad)...)
				cell.Rows = rows
			}
			sheet.Cells = append(sheet.Cells, cell)
		}
	}
	return sheet, nil
}

// Returns a predicate matching pixels of one exact, fully opaque
// color. Comparisons go through RGBA() so any underlying image color
// model works.
func colorClassifier(img image.Image, r, g, b uint8) func(x, y int) bool {
	wantR := uint32(r) * 0x101
	wantG := uint32(g) * 0x101
	wantB := uint32(b) * 0x101
	return func(x, y int) bool {
		pr, pg, pb, pa := img.At(x, y).RGBA()
		return pr == wantR && pg == wantG && pb == wantB && pa == 0xFFFF
	}
}
