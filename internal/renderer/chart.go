// Package renderer draws a close price series as a line chart and shows it.
package renderer

import (
	"fmt"
	"image/color"
	"log"
	"math"
	"os"
	"path/filepath"

	"ClosePlot/internal/calculator"
	"ClosePlot/internal/model"

	"github.com/lucasb-eyer/go-colorful"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// Options controls how a chart is drawn.
type Options struct {
	YLabel    string
	Title     string
	WidthIn   float64
	HeightIn  float64
	LineColor string // hex, e.g. "#1f77b4"
	SMAPeriod int    // 0 disables the moving-average overlay
}

// Renderer draws PriceSeries charts to a single output file.
type Renderer struct {
	Output string

	yLabel    string
	title     string
	width     vg.Length
	height    vg.Length
	lineColor colorful.Color
	smaPeriod int
}

// New creates a Renderer writing to output. The image format follows the
// file extension.
func New(output string, opts Options) (*Renderer, error) {
	c, err := colorful.Hex(opts.LineColor)
	if err != nil {
		return nil, fmt.Errorf("parse line color %q: %w", opts.LineColor, err)
	}
	return &Renderer{
		Output:    output,
		yLabel:    opts.YLabel,
		title:     opts.Title,
		width:     vg.Length(opts.WidthIn) * vg.Inch,
		height:    vg.Length(opts.HeightIn) * vg.Inch,
		lineColor: c,
		smaPeriod: opts.SMAPeriod,
	}, nil
}

// Plot builds the chart for series. X is the row index, Y the close price.
// An empty series gives a chart with axes only.
func (r *Renderer) Plot(series *model.PriceSeries) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = r.title
	p.Y.Label.Text = r.yLabel
	p.Add(plotter.NewGrid())

	if series.Len() == 0 {
		return p, nil
	}

	line, err := plotter.NewLine(indexed(series.Closes, 0))
	if err != nil {
		return nil, fmt.Errorf("close line: %w", err)
	}
	line.Color = r.lineColor
	line.Width = vg.Points(1.2)
	p.Add(line)

	if r.smaPeriod > 0 {
		ma, err := calculator.MovingAverage(series.Closes, r.smaPeriod)
		if err != nil {
			log.Printf("[WARN] SMA%d overlay skipped: %v", r.smaPeriod, err)
			return p, nil
		}
		overlay, err := plotter.NewLine(indexed(ma, r.smaPeriod-1))
		if err != nil {
			return nil, fmt.Errorf("sma line: %w", err)
		}
		overlay.Color = complement(r.lineColor)
		overlay.Dashes = []vg.Length{vg.Points(4), vg.Points(2)}
		p.Add(overlay)
		p.Legend.Add("close", line)
		p.Legend.Add(fmt.Sprintf("SMA%d", r.smaPeriod), overlay)
		p.Legend.Top = true
	}
	return p, nil
}

// Render draws series and writes it to r.Output, replacing any previous chart.
func (r *Renderer) Render(series *model.PriceSeries) error {
	p, err := r.Plot(series)
	if err != nil {
		return err
	}
	dir := filepath.Dir(r.Output)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	// Write next to the target and rename so an open viewer never sees a
	// half-written file.
	tmp := filepath.Join(dir, ".tmp-"+filepath.Base(r.Output))
	if err := p.Save(r.width, r.height, tmp); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("save chart: %w", err)
	}
	if err := os.Rename(tmp, r.Output); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("replace chart: %w", err)
	}
	return nil
}

func indexed(values []float64, offset int) plotter.XYs {
	pts := make(plotter.XYs, len(values))
	for i, v := range values {
		pts[i].X = float64(i + offset)
		pts[i].Y = v
	}
	return pts
}

func complement(c colorful.Color) color.Color {
	h, s, l := c.Hsl()
	return colorful.Hsl(math.Mod(h+180, 360), s, l).Clamped()
}
