package graphics

import (
	"testing"

	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

func TestNextPowerOfTwo(t *testing.T) {
	tests := []struct{ in, want int }{{0, 1}, {1, 1}, {3, 4}, {64, 64}, {65, 128}}
	for _, tt := range tests {
		if got := nextPowerOfTwo(tt.in); got != tt.want {
			t.Errorf("nextPowerOfTwo(%d) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestRasterizeGlyphs(t *testing.T) {
	f, err := opentype.Parse(goregular.TTF)
	if err != nil {
		t.Fatal(err)
	}
	face, err := opentype.NewFace(f, &opentype.FaceOptions{Size: 16, DPI: 72})
	if err != nil {
		t.Fatal(err)
	}
	defer face.Close()

	img, chars := rasterizeGlyphs(face, firstGlyph, lastGlyph, atlasWidth)
	if len(chars) != int(lastGlyph-firstGlyph+1) {
		t.Errorf("baked %d glyphs, want %d", len(chars), lastGlyph-firstGlyph+1)
	}
	h := img.Bounds().Dy()
	if h&(h-1) != 0 {
		t.Errorf("atlas height %d is not a power of two", h)
	}
	for r, fc := range chars {
		if fc.AtlasX+fc.Width > float32(atlasWidth) || fc.AtlasY+fc.Height > float32(h) {
			t.Errorf("glyph %q placed outside the atlas", r)
		}
	}
	if chars[' '].Advance <= 0 {
		t.Errorf("space should have a positive advance, got %+v", chars[' '])
	}

	fr := &FontRenderer{atlas: &FontAtlasInfo{Characters: chars, AtlasW: atlasWidth, AtlasH: h}}
	w1, _ := fr.Measure("ab", 1)
	w2, _ := fr.Measure("ab", 2)
	if w1 <= 0 || w2 != 2*w1 {
		t.Errorf("Measure scale: %f at 1x, %f at 2x", w1, w2)
	}
}
