package imaging

import (
	"image"
	"image/color"
	"math"

	"github.com/golang/freetype"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// ScaledFontSize converts a point size to device pixels at the given DPI,
// rounded to the nearest integer, so labels keep the same visual size across
// DPI settings.
func ScaledFontSize(points, dpi int) int {
	return int(math.Round(float64(points) * float64(dpi) / 72.0))
}

// Stamp returns a copy of src with label drawn at (x, y) in image pixel
// coordinates, top-left anchored, filled with col. The source image is never
// modified. When fnt is nil the built-in fixed-size face is used instead, so
// stamping always succeeds. No wrapping or bounds checking is performed; a
// label placed outside the visible area is simply invisible.
func Stamp(src *image.RGBA, label string, x, y int, fnt *truetype.Font, sizePx int, col color.Color) *image.RGBA {
	dst := image.NewRGBA(src.Bounds())
	draw.Draw(dst, dst.Bounds(), src, src.Bounds().Min, draw.Src)

	if fnt == nil {
		drawBasic(dst, label, x, y, col)
		return dst
	}

	c := freetype.NewContext()
	c.SetDPI(72)
	c.SetFont(fnt)
	c.SetFontSize(float64(sizePx))
	c.SetClip(dst.Bounds())
	c.SetDst(dst)
	c.SetSrc(image.NewUniform(col))
	c.SetHinting(font.HintingFull)

	// Shift the baseline down by the font size so (x, y) is the top of the
	// label rather than the baseline.
	pt := freetype.Pt(x, y+int(c.PointToFixed(float64(sizePx))>>6))
	if _, err := c.DrawString(label, pt); err != nil {
		// Glyph rendering failures leave the page unlabeled but intact.
		return dst
	}

	return dst
}

func drawBasic(dst *image.RGBA, label string, x, y int, col color.Color) {
	face := basicfont.Face7x13
	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(col),
		Face: face,
		Dot:  fixed.P(x, y+face.Ascent),
	}
	d.DrawString(label)
}
