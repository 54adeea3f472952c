// bitfontc compiles a human-editable font image into the compact
// binary form used by the bitfont runtime.
//
// Draw your font in any graphics program following the band layout
// (red separator strips from the left margin, a blue baseline row per
// band, red cell separators along the baseline, black pixels for set
// bits), then run:
//
//	bitfontc -img myfont.png -o myfont.go -pkg myfont
//
// to get a Go package embedding the compiled font, or use -bin for the
// raw binary. Without -o/-bin/-render, the parsed glyphs are dumped to
// stdout as text art for eyeballing. -render draws a sample string to
// a PNG using the freshly compiled font.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
	"strings"

	"github.com/pxkit/bitfont"
	"github.com/pxkit/bitfont/encode"
	"github.com/pxkit/bitfont/imgfont"
)

var (
	imageName = flag.String("img", "", "font image to compile")
	charset   = flag.String("charset", "dense", "glyph order: dense, iso8859-1, cp437, iso8859-15 or windows-1252")
	first     = flag.Int("first", -1, "codepoint of the first glyph (-1 = detect from blank glyphs)")
	outName   = flag.String("o", "", "output Go file")
	pkgName   = flag.String("pkg", "font", "package name for the generated Go file")
	varName   = flag.String("var", "Font", "variable name for the generated Go file")
	binName   = flag.String("bin", "", "output binary font file")
	render    = flag.String("render", "", "sample string to render with the compiled font")
	renderOut = flag.String("out", "render.png", "output image for -render")
	invert    = flag.Bool("invert", false, "render white on black")
)

func main() {
	flag.Parse()
	if *imageName == "" {
		fmt.Fprintln(os.Stderr, "-img is required")
		flag.Usage()
		os.Exit(2)
	}

	builder, err := compile(*imageName)
	if err != nil { fatal(err) }

	switch {
	case *outName != "":
		file, err := os.Create(*outName)
		if err != nil { fatal(err) }
		err = builder.WriteGo(file, *pkgName, *varName)
		if closeErr := file.Close(); err == nil { err = closeErr }
		if err != nil {
			os.Remove(*outName) // no partial output
			fatal(err)
		}
		fmt.Fprintln(os.Stderr, "wrote", *outName)
	case *binName != "":
		data, err := builder.Bytes()
		if err != nil { fatal(err) }
		err = os.WriteFile(*binName, data, 0644)
		if err != nil { fatal(err) }
		fmt.Fprintln(os.Stderr, "wrote", *binName, "-", len(data), "bytes")
	case *render != "":
		font, err := builder.Build()
		if err != nil { fatal(err) }
		err = renderSample(font, *render, *renderOut, *invert)
		if err != nil { fatal(err) }
		fmt.Fprintln(os.Stderr, "wrote", *renderOut)
	default:
		font, err := builder.Build()
		if err != nil { fatal(err) }
		dumpFont(font)
	}
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, "bitfontc:", err)
	os.Exit(1)
}

// Parses the font sheet and configures a builder according to the
// -charset and -first flags.
func compile(path string) (*encode.Builder, error) {
	file, err := os.Open(path)
	if err != nil { return nil, err }
	defer file.Close()
	sheet, err := imgfont.Decode(file)
	if err != nil { return nil, err }

	firstByte := byte(0)
	if *first >= 0 {
		if *first > 0xFF { return nil, fmt.Errorf("-first %d out of byte range", *first) }
		firstByte = byte(*first)
	} else {
		firstByte, err = imgfont.DetectFirst(sheet.Cells)
		if err != nil { return nil, err }
	}

	builder := encode.NewBuilder()
	builder.SetMetrics(sheet.Ascent, sheet.Descent, 0)
	for _, cell := range sheet.Cells {
		err := builder.AddGlyph(cell.Rows, cell.Width)
		if err != nil { return nil, err }
	}

	switch *charset {
	case "dense", "iso8859-1":
		// ISO 8859-1 matches the low Unicode codepoints directly,
		// so plain dense storage covers it
		builder.MapDense(rune(firstByte))
	case "cp437":
		return builder, builder.MapCodepage(bitfont.CodepageCP437, firstByte)
	case "iso8859-15":
		return builder, builder.MapCodepage(bitfont.CodepageISO8859_15, firstByte)
	case "windows-1252":
		return builder, builder.MapCodepage(bitfont.CodepageWindows1252, firstByte)
	default:
		return nil, fmt.Errorf("unknown charset %q", *charset)
	}
	return builder, nil
}

// Draws the sample string into a grayscale PNG through the draw
// instruction iterator (the renderer's Target alias may be an
// Ebitengine image, which has no place in a CLI).
func renderSample(font *bitfont.Font, text, path string, invert bool) error {
	var renderer bitfont.Renderer
	renderer.SetFont(font)

	lines := strings.Split(text, "\n")
	width := renderer.Measure(text)
	height := font.LineAdvance() * len(lines)
	if width == 0 || height == 0 { return fmt.Errorf("nothing to render") }

	bg, fg := color.Gray{0xFF}, color.Gray{0x00}
	if invert { bg, fg = fg, bg }
	img := image.NewGray(image.Rect(0, 0, width, height))
	for i := range img.Pix { img.Pix[i] = bg.Y }

	for i, line := range lines {
		iter := font.Instructions(line, 0, i*font.LineAdvance())
		for {
			op, ok := iter.Next()
			if !ok { break }
			blit(img, &op, fg)
		}
	}

	file, err := os.Create(path)
	if err != nil { return err }
	err = png.Encode(file, img)
	if closeErr := file.Close(); err == nil { err = closeErr }
	return err
}

func blit(img *image.Gray, op *bitfont.DrawOp, fg color.Gray) {
	stride := int(op.Stride)
	if stride == 0 { return }
	for row := 0; row+stride <= len(op.Data); row += stride {
		x := op.X
		for _, b := range op.Data[row : row+stride] {
			for bit := 0; bit < 8; bit++ {
				if b&0x80 != 0 { img.SetGray(x, op.Y+row/stride, fg) }
				b <<= 1
				x++
			}
		}
	}
}

// Text art dump of every glyph, for verifying the parse by eye.
func dumpFont(font *bitfont.Font) {
	for i := 0; i < font.NumGlyphs(); i++ {
		glyph := font.Glyph(bitfont.GlyphIndex(i))
		fmt.Printf("glyph %d: advance %d, origin (%d, %d)\n",
			i, glyph.Advance, glyph.OriginX, glyph.OriginY)
		if glyph.Bitmap.IsEmpty() { continue }
		data := font.Bitmap(glyph.Bitmap)
		stride := int(glyph.Stride)
		for row := 0; row+stride <= len(data); row += stride {
			line := make([]byte, 0, stride*8+2)
			line = append(line, '|')
			for _, b := range data[row : row+stride] {
				for bit := 0; bit < 8; bit++ {
					if b&0x80 != 0 {
						line = append(line, '*')
					} else {
						line = append(line, ' ')
					}
					b <<= 1
				}
			}
			line = append(line, '|')
			fmt.Println(string(line))
		}
	}
}
