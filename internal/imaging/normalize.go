// Package imaging contains the raster transforms of the pipeline: fitting a
// rendered page onto a fixed paper-size canvas, stamping numbering labels,
// and tiling page canvases into composite sheets.
package imaging

import (
	"image"
	"image/color"

	"golang.org/x/image/draw"
)

// Orientation selects which way the A4 canvas is turned.
type Orientation string

const (
	Portrait  Orientation = "portrait"
	Landscape Orientation = "landscape"
)

// A4 paper measures 8.27 x 11.69 inches.
const (
	a4WidthInches  = 8.27
	a4HeightInches = 11.69
)

var white = image.NewUniform(color.RGBA{255, 255, 255, 255})

// CanvasSize returns the pixel dimensions of an A4 canvas at the given DPI,
// truncated to integers. Landscape swaps the pair.
func CanvasSize(dpi int, orientation Orientation) (int, int) {
	w := int(a4WidthInches * float64(dpi))
	h := int(a4HeightInches * float64(dpi))
	if orientation == Landscape {
		return h, w
	}
	return w, h
}

// Normalize rescales src to fit entirely within an A4 canvas at the given
// DPI and orientation, preserving aspect ratio, and centers it on a solid
// white background. The output always has the exact canvas dimensions
// regardless of the source size. Normalizing an already canvas-sized image
// is a pixel-identical copy.
func Normalize(src image.Image, dpi int, orientation Orientation) *image.RGBA {
	canvasW, canvasH := CanvasSize(dpi, orientation)

	srcBounds := src.Bounds()
	srcW, srcH := srcBounds.Dx(), srcBounds.Dy()

	imgRatio := float64(srcW) / float64(srcH)
	canvasRatio := float64(canvasW) / float64(canvasH)

	var newW, newH int
	if imgRatio > canvasRatio {
		newW = canvasW
		newH = int(float64(newW) / imgRatio)
	} else {
		newH = canvasH
		newW = int(float64(newH) * imgRatio)
	}

	canvas := image.NewRGBA(image.Rect(0, 0, canvasW, canvasH))
	draw.Draw(canvas, canvas.Bounds(), white, image.Point{}, draw.Src)

	// Odd differences leave a one-pixel asymmetry, which is acceptable.
	pasteX := (canvasW - newW) / 2
	pasteY := (canvasH - newH) / 2
	target := image.Rect(pasteX, pasteY, pasteX+newW, pasteY+newH)

	if newW == srcW && newH == srcH {
		// No resampling needed; a plain copy keeps repeated normalization
		// free of interpolation drift.
		draw.Draw(canvas, target, src, srcBounds.Min, draw.Src)
	} else {
		draw.CatmullRom.Scale(canvas, target, src, srcBounds, draw.Src, nil)
	}

	return canvas
}
