package pipeline

import (
	"image/color"
	"testing"
)

func TestParseColor(t *testing.T) {
	valid := []struct {
		in   string
		want color.RGBA
	}{
		{"255,0,0", color.RGBA{255, 0, 0, 255}},
		{"0,0,0", color.RGBA{0, 0, 0, 255}},
		{" 0 , 128 , 0 ", color.RGBA{0, 128, 0, 255}},
	}
	for _, c := range valid {
		got, err := ParseColor(c.in)
		if err != nil {
			t.Errorf("ParseColor(%q): %v", c.in, err)
			continue
		}
		if got != c.want {
			t.Errorf("ParseColor(%q) = %v, want %v", c.in, got, c.want)
		}
	}

	invalid := []string{"", "255,0", "1,2,3,4", "256,0,0", "-1,0,0", "a,b,c"}
	for _, in := range invalid {
		if _, err := ParseColor(in); err == nil {
			t.Errorf("ParseColor(%q): expected error", in)
		}
	}
}

func TestValidateRejectsBadValues(t *testing.T) {
	input := writeFakePDF(t)

	mutations := []struct {
		name   string
		mutate func(*Params)
	}{
		{"zero dpi", func(p *Params) { p.DPI = 0 }},
		{"negative dpi", func(p *Params) { p.DPI = -300 }},
		{"zero rows", func(p *Params) { p.Rows = 0 }},
		{"zero cols", func(p *Params) { p.Cols = 0 }},
		{"zero fontsize", func(p *Params) { p.FontSize = 0 }},
		{"bad orientation", func(p *Params) { p.Orientation = "diagonal" }},
		{"bad format", func(p *Params) { p.OutputFormat = "gif" }},
		{"missing file", func(p *Params) { p.PDFPath = "/does/not/exist.pdf" }},
	}

	for _, m := range mutations {
		params := testParams(input)
		m.mutate(&params)
		if err := params.Validate(); err == nil {
			t.Errorf("%s: expected validation error", m.name)
		}
	}

	// Negative label offsets are allowed, they just hide the label.
	params := testParams(input)
	params.X = -100
	params.Y = -100
	if err := params.Validate(); err != nil {
		t.Errorf("negative offsets should pass validation: %v", err)
	}

	if err := testParams(input).Validate(); err != nil {
		t.Errorf("baseline params should validate: %v", err)
	}
}
