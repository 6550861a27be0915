package main

import (
	"fmt"
	"os"
	"runtime"
	"strings"
	"sync"
	"time"

	arg "github.com/alexflint/go-arg"
	"github.com/fatih/color"
	"github.com/schollz/progressbar/v3"
	"github.com/ztrue/tracerr"
	"golang.org/x/sync/errgroup"

	"github.com/fkaratas/pdftile/internal/imaging"
	"github.com/fkaratas/pdftile/internal/pipeline"
	"github.com/fkaratas/pdftile/internal/render"
)

type Args struct {
	Paths        []string `arg:"positional" help:"PDF file(s) to process"`
	DPI          int      `arg:"-d,--dpi" help:"(Optional) Render resolution in DPI" default:"300"`
	Rows         int      `arg:"--rows" help:"(Optional) Grid rows per output sheet" default:"2"`
	Cols         int      `arg:"--cols" help:"(Optional) Grid columns per output sheet" default:"2"`
	Direction    string   `arg:"--direction" help:"(Optional) Page orientation: portrait or landscape" default:"portrait"`
	Prefix       string   `arg:"--prefix" help:"(Optional) Numbering label prefix, labels read <prefix>.<n>" default:""`
	FontSize     int      `arg:"--fontsize" help:"(Optional) Label font size in points" default:"65"`
	X            int      `arg:"-x" help:"(Optional) Label X offset in pixels" default:"40"`
	Y            int      `arg:"-y" help:"(Optional) Label Y offset in pixels" default:"40"`
	Font         string   `arg:"--font" help:"(Optional) Label font style: bold-sans, serif, default-sans or serif-alt" default:"bold-sans"`
	Color        string   `arg:"--color" help:"(Optional) Label color as r,g,b" default:"255,0,0"`
	PageRange    string   `arg:"-p,--pages" help:"(Optional) Pages to number: all, 1-5, 1,3,5 or 1-3,6,8-10" default:"all"`
	OutputFormat string   `arg:"-f,--format" help:"(Optional) Output format: pdf or jpg" default:"pdf"`
	Concurrency  int      `arg:"-c" help:"(Optional) Number of PDFs processed in parallel in batch mode. Defaults to (number of CPUs available - 1)"`
	TerminalUI   bool     `arg:"-t,--termui" help:"(Optional) Use the terminal UI instead of command line arguments"`
}

// jobParams builds the typed job configuration for one input file from the
// parsed arguments.
func jobParams(args *Args, pdfPath string) (pipeline.Params, error) {
	labelColor, err := pipeline.ParseColor(args.Color)
	if err != nil {
		return pipeline.Params{}, tracerr.Wrap(err)
	}

	return pipeline.Params{
		PDFPath:      pdfPath,
		DPI:          args.DPI,
		Rows:         args.Rows,
		Cols:         args.Cols,
		Orientation:  imaging.Orientation(strings.ToLower(args.Direction)),
		Prefix:       args.Prefix,
		FontSize:     args.FontSize,
		X:            args.X,
		Y:            args.Y,
		FontStyle:    args.Font,
		Color:        labelColor,
		PageRange:    args.PageRange,
		OutputFormat: strings.ToLower(args.OutputFormat),
	}, nil
}

// processFile runs one job. With showBar set, pipeline progress drives a
// terminal progress bar; batch mode turns it off to keep output readable.
func processFile(p *pipeline.Pipeline, args *Args, pdfPath string, showBar bool) error {
	params, err := jobParams(args, pdfPath)
	if err != nil {
		return err
	}

	var onProgress pipeline.ProgressFunc
	var bar *progressbar.ProgressBar
	if showBar {
		bar = progressbar.NewOptions(100,
			progressbar.OptionSetDescription("Processing pages"),
			progressbar.OptionEnableColorCodes(true),
			progressbar.OptionSetWidth(50),
			progressbar.OptionThrottle(65*time.Millisecond),
			progressbar.OptionOnCompletion(func() {
				fmt.Println()
			}),
		)
		onProgress = func(pct float64) {
			// Advisory only; a failed terminal write is not a job failure.
			_ = bar.Set(int(pct))
		}
	}

	start := time.Now()
	result, err := p.Run(params, onProgress)
	if err != nil {
		return tracerr.Wrap(err)
	}

	if bar != nil {
		_ = bar.Finish()
	}

	success := color.New(color.FgGreen).SprintFunc()
	fmt.Printf("%s %d pages onto %d sheets (%d labeled) in %s\n",
		success("DONE:"), result.PageCount, result.SheetCount, result.LabeledCount,
		formatDuration(time.Since(start)))
	for _, file := range result.OutputFiles {
		fmt.Printf("  %s\n", file)
	}

	return nil
}

// processBatch handles multiple input files as independent jobs. Each job is
// sequential internally; jobs run in parallel up to the concurrency limit
// and a failing file does not stop the rest of the batch.
func processBatch(p *pipeline.Pipeline, args *Args) error {
	info := color.New(color.FgCyan).SprintFunc()
	fmt.Printf("%s Processing %d files with concurrency %d\n", info("INFO:"), len(args.Paths), args.Concurrency)

	var mutex sync.Mutex
	var failed []string

	var eg errgroup.Group
	eg.SetLimit(args.Concurrency)

	for _, pdfPath := range args.Paths {
		pdfPath := pdfPath

		eg.Go(func() error {
			fmt.Printf("%s %s\n", info("INFO:"), pdfPath)
			if err := processFile(p, args, pdfPath, false); err != nil {
				color.Red("ERROR: %s: %v", pdfPath, err)
				mutex.Lock()
				failed = append(failed, pdfPath)
				mutex.Unlock()
			}
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return tracerr.Wrap(err)
	}

	if len(failed) > 0 {
		return fmt.Errorf("%d of %d files failed: %s", len(failed), len(args.Paths), strings.Join(failed, ", "))
	}

	success := color.New(color.FgGreen).SprintFunc()
	fmt.Printf("%s All %d files processed\n", success("SUCCESS:"), len(args.Paths))
	return nil
}

// formatDuration formats time.Duration to a human-readable string (HH:MM:SS)
func formatDuration(d time.Duration) string {
	d = d.Round(time.Second)
	h := d / time.Hour
	d -= h * time.Hour
	m := d / time.Minute
	d -= m * time.Minute
	s := d / time.Second

	if h > 0 {
		return fmt.Sprintf("%02d:%02d:%02d", h, m, s)
	}
	return fmt.Sprintf("%02d:%02d", m, s)
}

func mainWithErrors() error {
	var args Args

	argP := arg.MustParse(&args)

	if args.TerminalUI {
		RunTerminalUI()
		return nil
	}

	if len(args.Paths) == 0 {
		argP.WriteHelp(os.Stderr)
		return fmt.Errorf("at least one PDF file is required")
	}

	if args.Concurrency <= 0 {
		args.Concurrency = runtime.NumCPU() - 1
		if args.Concurrency <= 0 {
			args.Concurrency = 1
		}
	}

	p := pipeline.New(render.NewFitzRenderer())

	if len(args.Paths) == 1 {
		return processFile(p, &args, args.Paths[0], true)
	}
	return processBatch(p, &args)
}

func main() {
	if err := mainWithErrors(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
