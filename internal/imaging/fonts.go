package imaging

import (
	"os"
	"path/filepath"
	"runtime"
	"sync"

	"github.com/golang/freetype/truetype"
)

// Font style names recognized in job parameters.
const (
	FontBoldSans    = "bold-sans"
	FontSerif       = "serif"
	FontDefaultSans = "default-sans"
	FontSerifAlt    = "serif-alt"
)

// FontStyles lists the selectable styles in presentation order.
var FontStyles = []string{FontBoldSans, FontSerif, FontDefaultSans, FontSerifAlt}

// FontResolver maps a named font style to a parsed TrueType font, probing
// platform font files. Resolution failures are not errors: Resolve returns
// nil and the stamper falls back to its built-in face.
type FontResolver struct {
	mu    sync.Mutex
	cache map[string]*truetype.Font
}

func NewFontResolver() *FontResolver {
	return &FontResolver{cache: make(map[string]*truetype.Font)}
}

// Resolve returns the font for the given style name, or nil if no candidate
// file could be loaded. Unknown style names resolve like bold-sans. Results
// are cached, including misses.
func (r *FontResolver) Resolve(style string) *truetype.Font {
	r.mu.Lock()
	defer r.mu.Unlock()

	if fnt, ok := r.cache[style]; ok {
		return fnt
	}

	var fnt *truetype.Font
	for _, path := range fontCandidates(style) {
		if loaded, err := loadFontFile(path); err == nil {
			fnt = loaded
			break
		}
	}

	r.cache[style] = fnt
	return fnt
}

// fontCandidates returns platform font file paths for a style, most
// preferred first.
func fontCandidates(style string) []string {
	switch runtime.GOOS {
	case "windows":
		windir := os.Getenv("WINDIR")
		if windir == "" {
			windir = "C:\\Windows"
		}
		fonts := filepath.Join(windir, "Fonts")
		switch style {
		case FontSerif:
			return []string{filepath.Join(fonts, "times.ttf"), filepath.Join(fonts, "georgia.ttf")}
		case FontDefaultSans:
			return []string{filepath.Join(fonts, "arial.ttf"), filepath.Join(fonts, "segoeui.ttf")}
		case FontSerifAlt:
			return []string{filepath.Join(fonts, "georgia.ttf"), filepath.Join(fonts, "times.ttf")}
		default: // bold-sans and unknown styles
			return []string{filepath.Join(fonts, "arialbd.ttf"), filepath.Join(fonts, "simhei.ttf")}
		}
	case "darwin":
		switch style {
		case FontSerif:
			return []string{"/Library/Fonts/Times New Roman.ttf", "/System/Library/Fonts/Supplemental/Times New Roman.ttf"}
		case FontDefaultSans:
			return []string{"/Library/Fonts/Arial.ttf", "/System/Library/Fonts/Supplemental/Arial.ttf"}
		case FontSerifAlt:
			return []string{"/System/Library/Fonts/Supplemental/Georgia.ttf", "/Library/Fonts/Georgia.ttf"}
		default:
			return []string{"/Library/Fonts/Arial Bold.ttf", "/System/Library/Fonts/Supplemental/Arial Bold.ttf"}
		}
	default: // linux and everything else
		switch style {
		case FontSerif:
			return []string{
				"/usr/share/fonts/truetype/dejavu/DejaVuSerif.ttf",
				"/usr/share/fonts/truetype/liberation/LiberationSerif-Regular.ttf",
			}
		case FontDefaultSans:
			return []string{
				"/usr/share/fonts/truetype/dejavu/DejaVuSans.ttf",
				"/usr/share/fonts/truetype/liberation/LiberationSans-Regular.ttf",
			}
		case FontSerifAlt:
			return []string{
				"/usr/share/fonts/truetype/noto/NotoSerif-Regular.ttf",
				"/usr/share/fonts/truetype/liberation/LiberationSerif-Italic.ttf",
			}
		default:
			return []string{
				"/usr/share/fonts/truetype/dejavu/DejaVuSans-Bold.ttf",
				"/usr/share/fonts/truetype/liberation/LiberationSans-Bold.ttf",
			}
		}
	}
}

func loadFontFile(path string) (*truetype.Font, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return truetype.Parse(data)
}
