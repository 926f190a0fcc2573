package report

import (
	"errors"
	"fmt"
	"image/color"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/cwbudde/algo-tisample/sim"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	_ "gonum.org/v1/plot/vg/vgimg"
	_ "gonum.org/v1/plot/vg/vgsvg"
)

var (
	colorReference   = color.RGBA{B: 255, A: 255}
	colorMarker      = color.NRGBA{R: 255, A: 128}
	colorSingle      = color.RGBA{R: 220, A: 255}
	colorInterleaved = color.RGBA{G: 160, A: 255}
	colorHighlight   = color.RGBA{G: 200, A: 255}
)

// Plot renders the three-panel comparison figure to a file. The file
// extension selects the format (png, svg, pdf, eps, jpg, tif); an empty
// extension means png.
type Plot struct {
	path   string
	width  vg.Length
	height vg.Length
}

// PlotOption configures a Plot reporter.
type PlotOption func(*Plot)

// WithSize sets the figure size.
func WithSize(width, height vg.Length) PlotOption {
	return func(p *Plot) {
		if width > 0 && height > 0 {
			p.width, p.height = width, height
		}
	}
}

// NewPlot creates a plot reporter writing to path.
func NewPlot(path string, opts ...PlotOption) *Plot {
	p := &Plot{
		path:   path,
		width:  10 * vg.Inch,
		height: 10 * vg.Inch,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(p)
		}
	}
	return p
}

// Report renders res and writes it to the configured path.
func (p *Plot) Report(res *sim.Result) (err error) {
	f, err := os.Create(p.path)
	if err != nil {
		return fmt.Errorf("report: create plot: %w", err)
	}
	defer func() {
		err = errors.Join(err, f.Close())
	}()
	return p.Render(f, formatOf(p.path), res)
}

// Render draws res in the given format to w.
func (p *Plot) Render(w io.Writer, format string, res *sim.Result) error {
	panels, err := Panels(res)
	if err != nil {
		return err
	}

	c, err := draw.NewFormattedCanvas(p.width, p.height, format)
	if err != nil {
		return fmt.Errorf("report: %w", err)
	}

	tiles := draw.Tiles{
		Rows:      len(panels),
		Cols:      1,
		PadTop:    vg.Millimeter * 2,
		PadBottom: vg.Millimeter * 2,
		PadLeft:   vg.Millimeter * 2,
		PadRight:  vg.Millimeter * 4,
		PadY:      vg.Millimeter * 6,
	}
	grid := make([][]*plot.Plot, len(panels))
	for i, pl := range panels {
		grid[i] = []*plot.Plot{pl}
	}
	canvases := plot.Align(grid, tiles, draw.New(c))
	for i, pl := range panels {
		pl.Draw(canvases[i][0])
	}

	if _, err := c.WriteTo(w); err != nil {
		return fmt.Errorf("report: write plot: %w", err)
	}
	return nil
}

// Panels builds the reference, single-rate and interleaved panels.
func Panels(res *sim.Result) ([]*plot.Plot, error) {
	ref, err := referencePanel(res)
	if err != nil {
		return nil, err
	}
	single, err := singlePanel(res)
	if err != nil {
		return nil, err
	}
	multi, err := interleavedPanel(res)
	if err != nil {
		return nil, err
	}
	return []*plot.Plot{ref, single, multi}, nil
}

func referencePanel(res *sim.Result) (*plot.Plot, error) {
	p := newPanel(fmt.Sprintf("1. Continuous Input (Impulse at %.2fs)", res.ImpulseTime))

	line, err := plotter.NewLine(pairs(res.Continuous.Time, res.Continuous.Values))
	if err != nil {
		return nil, err
	}
	line.Color = colorReference

	marker, err := plotter.NewLine(plotter.XYs{
		{X: res.ImpulseTime, Y: -0.1},
		{X: res.ImpulseTime, Y: 1.1},
	})
	if err != nil {
		return nil, err
	}
	marker.Color = colorMarker
	marker.Dashes = []vg.Length{vg.Points(5), vg.Points(3)}

	p.Add(line, marker)
	p.Legend.Add(fmt.Sprintf("Impulse at %gs", res.ImpulseTime), marker)
	return p, nil
}

func singlePanel(res *sim.Result) (*plot.Plot, error) {
	d := res.Single.Detection
	status := "FAILED (Signal Missed)"
	if d.Hit {
		status = "SUCCESS (Signal Detected)"
	}
	p := newPanel(fmt.Sprintf("2. Standard %s Sampler: %s", hz(res.Config.BaseRate), status))

	if err := addStems(p, res.Single.Time, res.Single.Values, colorSingle); err != nil {
		return nil, err
	}
	if d.Hit {
		hit, err := plotter.NewScatter(plotter.XYs{{X: d.Time, Y: d.Peak}})
		if err != nil {
			return nil, err
		}
		hit.GlyphStyle = draw.GlyphStyle{
			Color:  colorHighlight,
			Radius: vg.Points(6),
			Shape:  draw.CircleGlyph{},
		}
		p.Add(hit)
		p.Legend.Add("Successful Detection", hit)
	}
	return p, nil
}

func interleavedPanel(res *sim.Result) (*plot.Plot, error) {
	p := newPanel(fmt.Sprintf("3. Final Output of Designed System (Resampled at %s)",
		hz(res.Config.ReconstructedRate())))
	p.X.Label.Text = "Time (s)"

	if err := addStems(p, res.Interleaved.Time, res.Interleaved.Values, colorInterleaved); err != nil {
		return nil, err
	}
	return p, nil
}

func newPanel(title string) *plot.Plot {
	p := plot.New()
	p.Title.Text = title
	p.Y.Label.Text = "Amplitude"
	p.Y.Min, p.Y.Max = -0.1, 1.1
	p.Legend.Top = true
	p.Add(plotter.NewGrid())
	return p
}

// addStems draws a stem plot: one vertical segment per sample on a zero
// baseline, with a marker on top.
func addStems(p *plot.Plot, t, x []float64, c color.Color) error {
	n := min(len(t), len(x))
	pts := make(plotter.XYs, 0, 3*n)
	for i := range n {
		pts = append(pts,
			plotter.XY{X: t[i]},
			plotter.XY{X: t[i], Y: x[i]},
			plotter.XY{X: t[i]},
		)
	}
	if len(pts) == 0 {
		return nil
	}

	stems, err := plotter.NewLine(pts)
	if err != nil {
		return err
	}
	stems.Color = c

	heads, err := plotter.NewScatter(pairs(t, x))
	if err != nil {
		return err
	}
	heads.GlyphStyle = draw.GlyphStyle{
		Color:  c,
		Radius: vg.Points(2),
		Shape:  draw.CircleGlyph{},
	}

	p.Add(stems, heads)
	return nil
}

func pairs(t, x []float64) plotter.XYs {
	n := min(len(t), len(x))
	pts := make(plotter.XYs, n)
	for i := range pts {
		pts[i].X = t[i]
		pts[i].Y = x[i]
	}
	return pts
}

func formatOf(path string) string {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	if ext == "" {
		return "png"
	}
	return ext
}
