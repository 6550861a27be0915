package imaging

import (
	"image"
	"image/color"
	"testing"
)

func makePages(n, w, h int, c color.RGBA) []*image.RGBA {
	pages := make([]*image.RGBA, n)
	for i := range pages {
		pages[i] = solidImage(w, h, c)
	}
	return pages
}

func makeColoredPages(w, h int, colors []color.RGBA) []*image.RGBA {
	pages := make([]*image.RGBA, len(colors))
	for i, c := range colors {
		pages[i] = solidImage(w, h, c)
	}
	return pages
}

func isColor(t *testing.T, img *image.RGBA, x, y int, want color.RGBA) bool {
	t.Helper()
	r, g, b, _ := img.At(x, y).RGBA()
	return uint8(r>>8) == want.R && uint8(g>>8) == want.G && uint8(b>>8) == want.B
}

func TestCompositePartialFinalSheet(t *testing.T) {
	red := color.RGBA{255, 0, 0, 255}
	imgs := makePages(5, 10, 20, red)
	sheets := Composite(imgs, 2, 2)

	if len(sheets) != 2 {
		t.Fatalf("got %d sheets, want 2", len(sheets))
	}

	for i, sheet := range sheets {
		if sheet.Bounds().Dx() != 20 || sheet.Bounds().Dy() != 40 {
			t.Errorf("sheet %d is %dx%d, want 20x40", i, sheet.Bounds().Dx(), sheet.Bounds().Dy())
		}
	}

	// Second sheet: one page at cell (0,0), remaining cells white.
	last := sheets[1]
	if !isColor(t, last, 5, 10, red) {
		t.Error("cell (0,0) of the partial sheet should hold the leftover page")
	}
	whiteCells := [][2]int{{15, 10}, {5, 30}, {15, 30}}
	for _, cell := range whiteCells {
		if !isColor(t, last, cell[0], cell[1], color.RGBA{255, 255, 255, 255}) {
			t.Errorf("cell sample at (%d,%d) should be white background", cell[0], cell[1])
		}
	}
}

func TestCompositeRowMajorPlacement(t *testing.T) {
	colors := []color.RGBA{
		{255, 0, 0, 255},
		{0, 255, 0, 255},
		{0, 0, 255, 255},
		{255, 255, 0, 255},
	}
	imgs := makeColoredPages(10, 10, colors)
	sheets := Composite(imgs, 2, 2)
	if len(sheets) != 1 {
		t.Fatalf("got %d sheets, want 1", len(sheets))
	}

	sheet := sheets[0]
	// Row-major: index i lands at (row = i/cols, col = i%cols).
	samples := []struct {
		x, y int
		want color.RGBA
	}{
		{5, 5, colors[0]},   // (0,0)
		{15, 5, colors[1]},  // (0,1)
		{5, 15, colors[2]},  // (1,0)
		{15, 15, colors[3]}, // (1,1)
	}
	for _, s := range samples {
		if !isColor(t, sheet, s.x, s.y, s.want) {
			t.Errorf("sample at (%d,%d) does not match expected cell color", s.x, s.y)
		}
	}
}

func TestCompositeExactMultipleHasNoBlankSheet(t *testing.T) {
	imgs := makePages(4, 8, 8, color.RGBA{1, 2, 3, 255})
	if sheets := Composite(imgs, 2, 2); len(sheets) != 1 {
		t.Errorf("4 pages in a 2x2 grid = %d sheets, want 1", len(sheets))
	}

	if sheets := Composite(nil, 2, 2); len(sheets) != 0 {
		t.Errorf("no pages should produce no sheets, got %d", len(sheets))
	}
}

func TestCompositeSingleColumn(t *testing.T) {
	imgs := makePages(3, 6, 4, color.RGBA{9, 9, 9, 255})
	sheets := Composite(imgs, 3, 1)
	if len(sheets) != 1 {
		t.Fatalf("got %d sheets, want 1", len(sheets))
	}
	if sheets[0].Bounds().Dx() != 6 || sheets[0].Bounds().Dy() != 12 {
		t.Errorf("3x1 sheet is %dx%d, want 6x12", sheets[0].Bounds().Dx(), sheets[0].Bounds().Dy())
	}
}
