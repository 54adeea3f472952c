package imgfont

import "image"
import "image/color"
import "strings"
import "testing"

var (
	sepRed    = color.RGBA{0xFF, 0x00, 0x00, 0xFF}
	baseBlue  = color.RGBA{0x00, 0x00, 0xFF, 0xFF}
	inkBlack  = color.RGBA{0x00, 0x00, 0x00, 0xFF}
	backWhite = color.RGBA{0xFF, 0xFF, 0xFF, 0xFF}
)

func blankImage(width, height int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ { img.Set(x, y, backWhite) }
	}
	return img
}

func fillRow(img *image.RGBA, y, width int, c color.RGBA) {
	for x := 0; x < width; x++ { img.Set(x, y, c) }
}

func TestDecodeSingleBand(t *testing.T) {
	// one 5-row band, 9 pixels wide, baseline at y = 3, two cells of
	// widths 4 and 3 separated by red pixels on the baseline
	img := blankImage(9, 6)
	fillRow(img, 3, 9, baseBlue)
	fillRow(img, 5, 9, sepRed)
	img.Set(4, 3, sepRed)
	img.Set(8, 3, sepRed)
	img.Set(1, 1, inkBlack)
	img.Set(2, 2, inkBlack)
	img.Set(5, 4, inkBlack)

	sheet, err := DecodeImage(img)
	if err != nil { t.Fatalf("DecodeImage: %v", err) }

	if sheet.Ascent != 4 || sheet.Descent != 1 {
		t.Fatalf("metrics (%d, %d), expected (4, 1)", sheet.Ascent, sheet.Descent)
	}
	if len(sheet.Cells) != 2 {
		t.Fatalf("decoded %d cells, expected 2", len(sheet.Cells))
	}

	first := sheet.Cells[0]
	if first.Width != 4 { t.Fatalf("first cell width %d, expected 4", first.Width) }
	want := []uint64{0, 1 << 62, 1 << 61, 0, 0}
	for row := range want {
		if first.Rows[row] != want[row] {
			t.Fatalf("first cell row %d = %064b, expected %064b", row, first.Rows[row], want[row])
		}
	}

	second := sheet.Cells[1]
	if second.Width != 3 { t.Fatalf("second cell width %d, expected 3", second.Width) }
	if second.Rows[4] != 1<<63 {
		t.Fatalf("second cell descent row = %064b", second.Rows[4])
	}
	if first.IsBlank() || second.IsBlank() { t.Fatal("inked cells reported blank") }
}

func TestDecodeNormalizesBaselines(t *testing.T) {
	// two 3-row bands with the baseline at different heights; cells
	// must come out padded to the shared metrics
	img := blankImage(3, 8)
	fillRow(img, 1, 2, baseBlue)
	img.Set(2, 1, sepRed)
	fillRow(img, 3, 3, sepRed)
	fillRow(img, 4, 2, baseBlue)
	img.Set(2, 4, sepRed)
	fillRow(img, 7, 3, sepRed)
	img.Set(0, 0, inkBlack)
	img.Set(1, 6, inkBlack)

	sheet, err := DecodeImage(img)
	if err != nil { t.Fatalf("DecodeImage: %v", err) }

	if sheet.Ascent != 2 || sheet.Descent != 2 {
		t.Fatalf("metrics (%d, %d), expected (2, 2)", sheet.Ascent, sheet.Descent)
	}
	if len(sheet.Cells) != 2 {
		t.Fatalf("decoded %d cells, expected 2", len(sheet.Cells))
	}
	for i, cell := range sheet.Cells {
		if len(cell.Rows) != 4 {
			t.Fatalf("cell %d spans %d rows after normalization, expected 4", i, len(cell.Rows))
		}
	}
	if sheet.Cells[0].Rows[0] != 1<<63 {
		t.Fatal("first band cell must keep its rows at the top")
	}
	if sheet.Cells[1].Rows[3] != 1<<62 {
		t.Fatal("second band cell must be shifted down by the ascent padding")
	}
}

func TestDecodeErrors(t *testing.T) {
	tests := []struct {
		name string
		img  *image.RGBA
		want string
	}{
		{
			name: "no bands",
			img:  blankImage(4, 4),
			want: "no bands",
		},
		{
			name: "empty band",
			img: func() *image.RGBA {
				img := blankImage(4, 2)
				fillRow(img, 0, 4, sepRed)
				return img
			}(),
			want: "empty band",
		},
		{
			name: "missing baseline",
			img: func() *image.RGBA {
				img := blankImage(4, 3)
				fillRow(img, 2, 4, sepRed)
				return img
			}(),
			want: "missing baseline",
		},
		{
			name: "ambiguous baseline",
			img: func() *image.RGBA {
				img := blankImage(4, 4)
				fillRow(img, 0, 4, baseBlue)
				fillRow(img, 1, 4, baseBlue)
				fillRow(img, 3, 4, sepRed)
				return img
			}(),
			want: "ambiguous baseline",
		},
		{
			name: "uneven band spacing",
			img: func() *image.RGBA {
				img := blankImage(4, 7)
				fillRow(img, 0, 4, baseBlue)
				fillRow(img, 2, 4, sepRed)
				fillRow(img, 6, 4, sepRed)
				return img
			}(),
			want: "uneven band spacing",
		},
		{
			name: "oversized cell",
			img: func() *image.RGBA {
				img := blankImage(70, 3)
				fillRow(img, 0, 70, baseBlue)
				img.Set(66, 0, sepRed)
				fillRow(img, 2, 70, sepRed)
				return img
			}(),
			want: "max is 64",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := DecodeImage(test.img)
			if err == nil { t.Fatal("expected a decode error, got none") }
			if !strings.Contains(err.Error(), test.want) {
				t.Fatalf("error %q doesn't mention %q", err, test.want)
			}
		})
	}
}

func TestDetectFirst(t *testing.T) {
	cellsWithBlanks := func(count int, blanks ...int) []Cell {
		cells := make([]Cell, count)
		for i := range cells { cells[i].Rows = []uint64{1 << 63} }
		for _, i := range blanks { cells[i].Rows = []uint64{0} }
		return cells
	}

	tests := []struct {
		name  string
		cells []Cell
		first byte
		fails bool
	}{
		{name: "single blank space", cells: cellsWithBlanks(96, 0), first: ' '},
		{name: "single shifted blank", cells: cellsWithBlanks(96, 10), first: 22},
		{name: "full table", cells: cellsWithBlanks(256, 0, 32), first: 0},
		{name: "space and no-break space", cells: cellsWithBlanks(224, 0, 223), first: 32},
		{name: "full table with nbsp", cells: cellsWithBlanks(256, 0, 32, 255), first: 0},
		{name: "cp437 style table", cells: cellsWithBlanks(224, 0, 95), first: 32},
		{name: "adjacent blanks", cells: cellsWithBlanks(96, 5, 6), fails: true},
		{name: "no blanks", cells: cellsWithBlanks(96), fails: true},
		{name: "blank past space", cells: cellsWithBlanks(96, 40), fails: true},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			first, err := DetectFirst(test.cells)
			if test.fails {
				if err == nil { t.Fatalf("expected detection to fail, got %d", first) }
				return
			}
			if err != nil { t.Fatalf("DetectFirst: %v", err) }
			if first != test.first {
				t.Fatalf("detected first codepoint %d, expected %d", first, test.first)
			}
		})
	}
}
