package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/fatih/color"

	"github.com/fkaratas/pdftile/internal/imaging"
	"github.com/fkaratas/pdftile/internal/pipeline"
	"github.com/fkaratas/pdftile/internal/render"
)

// uiField is one entry of the parameter form. Fields with options cycle
// through them on enter; plain fields switch into text editing.
type uiField struct {
	label   string
	value   string
	options []string
}

// form field indexes; the color preset writes into the color field below it
const (
	fieldPdfPath = iota
	fieldPrefix
	fieldFont
	fieldFontSize
	fieldColorPreset
	fieldColor
	fieldX
	fieldY
	fieldDPI
	fieldRows
	fieldCols
	fieldDirection
	fieldPageRange
	fieldFormat
)

var colorPresets = map[string]string{
	"red":   "255,0,0",
	"black": "0,0,0",
	"blue":  "0,0,255",
	"green": "0,128,0",
	"gray":  "128,128,128",
}

// model represents the state of our application
type uiModel struct {
	fields       []uiField
	actions      []string
	cursor       int
	editingValue bool
	editValue    string
	start        bool
}

// initial model setup
func initialModel() uiModel {
	return uiModel{
		fields: []uiField{
			fieldPdfPath:     {label: "PDF file", value: ""},
			fieldPrefix:      {label: "Numbering prefix", value: "2.2.21"},
			fieldFont:        {label: "Font", value: imaging.FontBoldSans, options: imaging.FontStyles},
			fieldFontSize:    {label: "Font size (pt)", value: "65"},
			fieldColorPreset: {label: "Color preset", value: "red", options: []string{"red", "black", "blue", "green", "gray"}},
			fieldColor:       {label: "Color (r,g,b)", value: "255,0,0"},
			fieldX:           {label: "Label X offset", value: "40"},
			fieldY:           {label: "Label Y offset", value: "40"},
			fieldDPI:         {label: "Render DPI", value: "300"},
			fieldRows:        {label: "Grid rows", value: "2"},
			fieldCols:        {label: "Grid columns", value: "2"},
			fieldDirection:   {label: "Direction", value: string(imaging.Portrait), options: []string{string(imaging.Portrait), string(imaging.Landscape)}},
			fieldPageRange:   {label: "Pages to number", value: "all"},
			fieldFormat:      {label: "Output format", value: pipeline.FormatPDF, options: []string{pipeline.FormatPDF, pipeline.FormatJPG}},
		},
		actions: []string{"Start processing", "Quit"},
	}
}

// define some styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			PaddingLeft(2).
			PaddingRight(2).
			MarginBottom(1)

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#7D56F4")).
			Bold(true)

	infoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#A49FA5"))

	fieldLabelStyle = lipgloss.NewStyle().
			Width(20).
			Foreground(lipgloss.Color("#7D56F4"))

	fieldValueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205"))
)

// init initializes the model
func (m uiModel) Init() tea.Cmd {
	return nil
}

// totalRows counts form fields plus the action entries
func (m uiModel) totalRows() int {
	return len(m.fields) + len(m.actions)
}

// cycleField advances an option field to its next value
func (m *uiModel) cycleField(idx int) {
	field := &m.fields[idx]
	next := 0
	for i, opt := range field.options {
		if opt == field.value {
			next = (i + 1) % len(field.options)
			break
		}
	}
	field.value = field.options[next]

	if idx == fieldColorPreset {
		m.fields[fieldColor].value = colorPresets[field.value]
	}
}

// update handles user interactions
func (m uiModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "esc":
		if m.editingValue {
			m.editingValue = false
		}
		return m, nil
	case "up":
		if !m.editingValue && m.cursor > 0 {
			m.cursor--
		}
		return m, nil
	case "down":
		if !m.editingValue && m.cursor < m.totalRows()-1 {
			m.cursor++
		}
		return m, nil
	case "enter":
		if m.editingValue {
			// save the edited value
			m.fields[m.cursor].value = m.editValue
			m.editingValue = false
			return m, nil
		}
		if m.cursor < len(m.fields) {
			if m.fields[m.cursor].options != nil {
				m.cycleField(m.cursor)
			} else {
				m.editValue = m.fields[m.cursor].value
				m.editingValue = true
			}
			return m, nil
		}
		// action rows
		if m.cursor == len(m.fields) {
			m.start = true
		}
		return m, tea.Quit
	case "backspace":
		if m.editingValue && len(m.editValue) > 0 {
			m.editValue = m.editValue[:len(m.editValue)-1]
		}
		return m, nil
	case "q":
		if !m.editingValue {
			return m, tea.Quit
		}
	}

	// Everything else is text input while editing a field value
	if m.editingValue && keyMsg.Type == tea.KeyRunes {
		m.editValue += string(keyMsg.Runes)
	}

	return m, nil
}

// View renders the UI
func (m uiModel) View() string {
	s := titleStyle.Render("pdftile - PDF numbering & tiling") + "\n\n"

	for i, field := range m.fields {
		cursor := " "
		label := field.label
		if m.cursor == i {
			cursor = ">"
			label = selectedStyle.Render(label)
		}

		if m.editingValue && m.cursor == i {
			s += fmt.Sprintf("%s %s: %s_\n", cursor, fieldLabelStyle.Render(label), m.editValue)
		} else {
			s += fmt.Sprintf("%s %s: %s\n", cursor, fieldLabelStyle.Render(label), fieldValueStyle.Render(field.value))
		}
	}

	s += "\n" + infoStyle.Render("Pages example: all | 1-5 | 1,3,5 | 1-3,6,8-10 (only these pages get labels)") + "\n\n"

	for i, action := range m.actions {
		cursor := " "
		if m.cursor == len(m.fields)+i {
			cursor = ">"
			action = selectedStyle.Render(action)
		}
		s += fmt.Sprintf("%s %s\n", cursor, action)
	}

	s += "\n" + infoStyle.Render("Enter to edit or cycle a value, arrow keys to navigate, q to quit")
	return s
}

// atoiOr parses s, falling back to def for anything non-numeric
func atoiOr(s string, def int) int {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return def
	}
	return v
}

// RunTerminalUI starts the terminal UI, collects job parameters and runs the
// job with the same pipeline the CLI mode uses.
func RunTerminalUI() {
	p := tea.NewProgram(initialModel())
	m, err := p.Run()
	if err != nil {
		fmt.Printf("Error running UI: %v\n", err)
		os.Exit(1)
	}

	finalModel := m.(uiModel)
	if !finalModel.start {
		return
	}

	fields := finalModel.fields
	if strings.TrimSpace(fields[fieldPdfPath].value) == "" {
		color.Red("ERROR: no PDF file given")
		os.Exit(1)
	}

	args := Args{
		Paths:        []string{strings.TrimSpace(fields[fieldPdfPath].value)},
		DPI:          atoiOr(fields[fieldDPI].value, 300),
		Rows:         atoiOr(fields[fieldRows].value, 2),
		Cols:         atoiOr(fields[fieldCols].value, 2),
		Direction:    fields[fieldDirection].value,
		Prefix:       fields[fieldPrefix].value,
		FontSize:     atoiOr(fields[fieldFontSize].value, 65),
		X:            atoiOr(fields[fieldX].value, 40),
		Y:            atoiOr(fields[fieldY].value, 40),
		Font:         fields[fieldFont].value,
		Color:        fields[fieldColor].value,
		PageRange:    fields[fieldPageRange].value,
		OutputFormat: fields[fieldFormat].value,
	}

	job := pipeline.New(render.NewFitzRenderer())
	if err := processFile(job, &args, args.Paths[0], true); err != nil {
		color.Red("ERROR: %v", err)
		os.Exit(1)
	}
}
