// Package render turns a PDF file into per-page raster images. The pipeline
// depends only on the Renderer interface; the production implementation
// wraps MuPDF through go-fitz.
package render

import (
	"image"

	"github.com/gen2brain/go-fitz"
	"github.com/ztrue/tracerr"
)

// Renderer rasterizes every page of the document at path, in page order, at
// the requested DPI.
type Renderer interface {
	Render(path string, dpi int) ([]image.Image, error)
}

// FitzRenderer renders PDF pages with MuPDF.
type FitzRenderer struct{}

func NewFitzRenderer() *FitzRenderer {
	return &FitzRenderer{}
}

func (r *FitzRenderer) Render(path string, dpi int) ([]image.Image, error) {
	doc, err := fitz.New(path)
	if err != nil {
		return nil, tracerr.Wrap(err)
	}
	defer doc.Close()

	pages := make([]image.Image, 0, doc.NumPage())
	for i := 0; i < doc.NumPage(); i++ {
		img, err := doc.ImageDPI(i, float64(dpi))
		if err != nil {
			return nil, tracerr.Wrap(err)
		}
		pages = append(pages, img)
	}

	return pages, nil
}
