package imaging

import (
	"image"

	"golang.org/x/image/draw"
)

// Composite packs pages into sheets of rows x cols cells, row-major in input
// order. All pages are assumed equal-sized (Normalize guarantees this
// upstream). Each sheet is sized for a full grid; a trailing partial chunk
// still produces a sheet with the unused cells left white. An empty input
// produces no sheets.
func Composite(pages []*image.RGBA, rows, cols int) []*image.RGBA {
	perSheet := rows * cols

	var sheets []*image.RGBA
	for start := 0; start < len(pages); start += perSheet {
		end := start + perSheet
		if end > len(pages) {
			end = len(pages)
		}
		group := pages[start:end]

		cellW := group[0].Bounds().Dx()
		cellH := group[0].Bounds().Dy()

		sheet := image.NewRGBA(image.Rect(0, 0, cols*cellW, rows*cellH))
		draw.Draw(sheet, sheet.Bounds(), white, image.Point{}, draw.Src)

		for i, page := range group {
			row := i / cols
			col := i % cols
			cell := image.Rect(col*cellW, row*cellH, (col+1)*cellW, (row+1)*cellH)
			draw.Draw(sheet, cell, page, page.Bounds().Min, draw.Src)
		}

		sheets = append(sheets, sheet)
	}

	return sheets
}
