// Package pipeline sequences rendering, normalization, label stamping, grid
// composition and serialization for one job. Run is synchronous and safe to
// wrap in whatever concurrency model the caller prefers; separate jobs share
// no state.
package pipeline

import (
	"fmt"
	"image"
	"image/jpeg"
	"os"
	"path/filepath"
	"strings"

	pdfcpu_api "github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
	"github.com/ztrue/tracerr"

	"github.com/fkaratas/pdftile/internal/imaging"
	"github.com/fkaratas/pdftile/internal/pagerange"
	"github.com/fkaratas/pdftile/internal/render"
)

const jpegQuality = 90

// ProgressFunc receives advisory progress in percent. Calls are monotone
// over the job's totalPages+2 discrete steps. May be nil.
type ProgressFunc func(percent float64)

// Result is the outcome of a successful job.
type Result struct {
	// OutputPath is the produced file, or the first file when the jpg
	// format emits one file per sheet.
	OutputPath  string
	OutputFiles []string
	PageCount   int
	SheetCount  int
	// LabeledCount is how many pages received a numbering label.
	LabeledCount int
}

// Pipeline holds the collaborators a job needs. One Pipeline may serve many
// jobs; it carries no per-job state.
type Pipeline struct {
	Renderer render.Renderer
	Fonts    *imaging.FontResolver
}

func New(renderer render.Renderer) *Pipeline {
	return &Pipeline{
		Renderer: renderer,
		Fonts:    imaging.NewFontResolver(),
	}
}

// Run executes one job: rasterize all pages, normalize each onto an A4
// canvas, stamp sequential labels on the selected pages, tile the canvases
// into grid sheets and write them out. Processing stops at the first fatal
// error; partial outputs are left as-is.
func (p *Pipeline) Run(params Params, onProgress ProgressFunc) (*Result, error) {
	if err := params.Validate(); err != nil {
		return nil, tracerr.Wrap(err)
	}

	pages, err := p.Renderer.Render(params.PDFPath, params.DPI)
	if err != nil {
		return nil, tracerr.Wrap(err)
	}
	if len(pages) == 0 {
		return nil, tracerr.Wrap(fmt.Errorf("no pages could be rendered from %s", params.PDFPath))
	}

	selection := pagerange.Parse(params.PageRange, len(pages))

	fnt := p.Fonts.Resolve(params.FontStyle)
	sizePx := imaging.ScaledFontSize(params.FontSize, params.DPI)

	totalSteps := float64(len(pages) + 2)
	report := func(step int) {
		if onProgress != nil {
			onProgress(float64(step) / totalSteps * 100)
		}
	}

	processed := make([]*image.RGBA, 0, len(pages))
	labeled := 0
	for i, page := range pages {
		canvas := imaging.Normalize(page, params.DPI, params.Orientation)

		pageNumber := i + 1
		if ordinal := pagerange.Ordinal(selection, pageNumber); ordinal > 0 {
			label := fmt.Sprintf("%s.%d", params.Prefix, ordinal)
			canvas = imaging.Stamp(canvas, label, params.X, params.Y, fnt, sizePx, params.Color)
			labeled++
		}

		processed = append(processed, canvas)
		report(pageNumber)
	}

	sheets := imaging.Composite(processed, params.Rows, params.Cols)
	report(len(pages) + 1)

	var files []string
	switch strings.ToLower(params.OutputFormat) {
	case FormatJPG:
		files, err = writeJPEGSheets(sheets, params.PDFPath)
	default:
		files, err = writePDF(sheets, params.PDFPath)
	}
	if err != nil {
		return nil, tracerr.Wrap(err)
	}
	report(len(pages) + 2)

	return &Result{
		OutputPath:   files[0],
		OutputFiles:  files,
		PageCount:    len(pages),
		SheetCount:   len(sheets),
		LabeledCount: labeled,
	}, nil
}

// outputBase derives the output path stem from the input path: the input
// extension is dropped and "_output" appended.
func outputBase(inputPath string) string {
	return strings.TrimSuffix(inputPath, filepath.Ext(inputPath)) + "_output"
}

// writePDF encodes the sheets as JPEGs in a scratch directory and imports
// them as consecutive pages of a single PDF.
func writePDF(sheets []*image.RGBA, inputPath string) ([]string, error) {
	tmpdir, err := os.MkdirTemp("", "pdftile-")
	if err != nil {
		return nil, tracerr.Wrap(err)
	}
	defer os.RemoveAll(tmpdir)

	sheetFiles := make([]string, len(sheets))
	for i, sheet := range sheets {
		path := filepath.Join(tmpdir, fmt.Sprintf("sheet-%d.jpg", i+1))
		if err := encodeJPEG(path, sheet); err != nil {
			return nil, err
		}
		sheetFiles[i] = path
	}

	outPath := outputBase(inputPath) + ".pdf"
	if err := pdfcpu_api.ImportImagesFile(sheetFiles, outPath, nil, model.NewDefaultConfiguration()); err != nil {
		return nil, tracerr.Wrap(err)
	}

	return []string{outPath}, nil
}

// writeJPEGSheets writes each sheet as a separate numbered file.
func writeJPEGSheets(sheets []*image.RGBA, inputPath string) ([]string, error) {
	base := outputBase(inputPath)

	files := make([]string, len(sheets))
	for i, sheet := range sheets {
		path := fmt.Sprintf("%s_%d.jpg", base, i+1)
		if err := encodeJPEG(path, sheet); err != nil {
			return nil, err
		}
		files[i] = path
	}

	return files, nil
}

func encodeJPEG(path string, img *image.RGBA) error {
	file, err := os.Create(path)
	if err != nil {
		return tracerr.Wrap(err)
	}

	if err := jpeg.Encode(file, img, &jpeg.Options{Quality: jpegQuality}); err != nil {
		file.Close()
		return tracerr.Wrap(err)
	}

	return tracerr.Wrap(file.Close())
}
