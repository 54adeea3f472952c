package encode

import "bytes"
import "go/parser"
import "go/token"
import "strings"
import "testing"

func TestWriteGo(t *testing.T) {
	builder := testBuilder(t)
	builder.Map([]rune{'o', ' ', 'j'})

	var buffer bytes.Buffer
	err := builder.WriteGo(&buffer, "assets", "TinyFont")
	if err != nil { t.Fatalf("WriteGo: %v", err) }
	source := buffer.String()

	for _, want := range []string{
		"// Code generated by bitfontc. DO NOT EDIT.",
		"package assets",
		"var TinyFontData = []byte{",
		"var TinyFont = bitfont.MustParse(TinyFontData)",
		"glyph 0 'o'",
		"(blank, advance 4)",
		"// |**      |",
	} {
		if !strings.Contains(source, want) {
			t.Fatalf("generated source lacks %q:\n%s", want, source)
		}
	}

	// the output must be valid Go
	_, err = parser.ParseFile(token.NewFileSet(), "generated.go", source, 0)
	if err != nil { t.Fatalf("generated source doesn't parse: %v", err) }
}

func TestWriteGoDeterministic(t *testing.T) {
	generate := func() string {
		builder := testBuilder(t)
		builder.MapDense('a')
		if err := builder.SetKerning(0, 2, -1); err != nil { t.Fatalf("SetKerning: %v", err) }
		if err := builder.SetKerning(2, 0, 1); err != nil { t.Fatalf("SetKerning: %v", err) }
		var buffer bytes.Buffer
		err := builder.WriteGo(&buffer, "assets", "Font")
		if err != nil { t.Fatalf("WriteGo: %v", err) }
		return buffer.String()
	}
	if generate() != generate() {
		t.Fatal("generated source must be deterministic")
	}
}

func TestWriteGoPropagatesBuildErrors(t *testing.T) {
	builder := testBuilder(t) // no mapping set
	err := builder.WriteGo(&bytes.Buffer{}, "assets", "Font")
	if err == nil { t.Fatal("expected the build error to surface") }
}
