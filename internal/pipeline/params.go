package pipeline

import (
	"fmt"
	"image/color"
	"os"
	"strconv"
	"strings"

	"github.com/fkaratas/pdftile/internal/imaging"
)

// Output formats accepted by a job. FormatPDF writes every sheet into one
// multi-page document; FormatJPG writes one numbered file per sheet.
const (
	FormatPDF = "pdf"
	FormatJPG = "jpg"
)

// Params is the full configuration of one job. It is passed by value into
// Run and never mutated by the pipeline.
type Params struct {
	PDFPath      string
	DPI          int
	Rows         int
	Cols         int
	Orientation  imaging.Orientation
	Prefix       string
	FontSize     int
	X            int
	Y            int
	FontStyle    string
	Color        color.RGBA
	PageRange    string
	OutputFormat string
}

// Validate rejects invalid configurations before any processing begins. The
// X/Y label offsets are deliberately unchecked: negative or out-of-canvas
// positions just place the label out of sight.
func (p Params) Validate() error {
	info, err := os.Stat(p.PDFPath)
	if err != nil {
		return fmt.Errorf("input file %s does not exist or is not readable", p.PDFPath)
	}
	if info.IsDir() {
		return fmt.Errorf("input path %s is a directory, not a PDF file", p.PDFPath)
	}

	if p.DPI <= 0 {
		return fmt.Errorf("dpi must be a positive integer, got %d", p.DPI)
	}
	if p.Rows <= 0 || p.Cols <= 0 {
		return fmt.Errorf("grid dimensions must be positive, got %dx%d", p.Rows, p.Cols)
	}
	if p.FontSize <= 0 {
		return fmt.Errorf("font size must be a positive integer, got %d", p.FontSize)
	}

	switch p.Orientation {
	case imaging.Portrait, imaging.Landscape:
	default:
		return fmt.Errorf("direction must be %q or %q, got %q", imaging.Portrait, imaging.Landscape, p.Orientation)
	}

	switch strings.ToLower(p.OutputFormat) {
	case FormatPDF, FormatJPG:
	default:
		return fmt.Errorf("output format must be %q or %q, got %q", FormatPDF, FormatJPG, p.OutputFormat)
	}

	return nil
}

// ParseColor parses an "r,g,b" triplet with each component in 0..255.
func ParseColor(s string) (color.RGBA, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return color.RGBA{}, fmt.Errorf("color must be three comma-separated integers, got %q", s)
	}

	var channels [3]uint8
	for i, part := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return color.RGBA{}, fmt.Errorf("invalid color component %q", part)
		}
		if v < 0 || v > 255 {
			return color.RGBA{}, fmt.Errorf("color component %d out of range 0-255", v)
		}
		channels[i] = uint8(v)
	}

	return color.RGBA{R: channels[0], G: channels[1], B: channels[2], A: 255}, nil
}
