package chart

import (
	"fmt"
	"image/color"
	"os"
	"path/filepath"
	"strconv"

	"github.com/samber/lo"
	"github.com/ukaji3/docreport-go/pkg/docreport/models"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

const (
	// maxBarWidth caps the bar width of sparse charts, in points.
	maxBarWidth = 24
	// barFill is the share of one week's slot covered by its bar.
	barFill = 0.8
)

// plotMargin approximates the figure width taken by the y axis and padding.
const plotMargin = vg.Inch

// Render draws the stacked volume chart and writes it as a PNG to path,
// creating the parent directory if needed. spec.W and spec.H are set to the
// raster size.
func Render(table []models.WeeklyVolume, spec *models.ChartSpec, path string) error {
	p, err := Build(table, *spec)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create chart directory: %w", err)
	}

	c := vgimg.NewWith(
		vgimg.UseWH(inches(spec.WidthInches), inches(spec.HeightInches)),
		vgimg.UseDPI(spec.DPI),
	)
	p.Draw(draw.New(c))

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create chart file: %w", err)
	}
	defer file.Close()

	if _, err := (vgimg.PngCanvas{Canvas: c}).WriteTo(file); err != nil {
		return fmt.Errorf("failed to encode chart: %w", err)
	}

	w := InchesToPixels(spec.WidthInches, spec.DPI)
	h := InchesToPixels(spec.HeightInches, spec.DPI)
	spec.W, spec.H = &w, &h

	return file.Close()
}

// Build assembles the plot: received counts at the bottom, answered counts
// stacked on top, each non-empty segment labelled at its centre.
func Build(table []models.WeeklyVolume, spec models.ChartSpec) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = spec.Title
	p.X.Label.Text = spec.XAxisTitle
	p.Y.Label.Text = spec.YAxisTitle
	p.Y.Min = 0
	p.Legend.Top = true

	if len(table) == 0 {
		p.X.Min, p.X.Max = 0, 1
		p.Y.Max = 1
		return p, nil
	}

	received := make(plotter.Values, len(table))
	answered := make(plotter.Values, len(table))
	for i, row := range table {
		received[i] = float64(row.Received)
		answered[i] = float64(row.Answered)
	}

	width := barWidth(len(table), inches(spec.WidthInches))
	bottom, err := newBars(received, spec.Received, width)
	if err != nil {
		return nil, err
	}
	top, err := newBars(answered, spec.Answered, width)
	if err != nil {
		return nil, err
	}
	top.StackOn(bottom)
	p.Add(bottom, top)
	p.Legend.Add(spec.Received.Name, bottom)
	p.Legend.Add(spec.Answered.Name, top)

	p.NominalX(lo.Map(table, func(row models.WeeklyVolume, _ int) string {
		return strconv.Itoa(row.Week)
	})...)

	labels, err := segmentLabels(table)
	if err != nil {
		return nil, err
	}
	if labels != nil {
		p.Add(labels)
	}

	return p, nil
}

// barWidth spreads n bars over the plot area of a figure, leaving gaps
// between neighbouring weeks.
func barWidth(n int, figureWidth vg.Length) vg.Length {
	if n <= 0 {
		return vg.Points(maxBarWidth)
	}
	w := barFill * (figureWidth - plotMargin) / vg.Length(n)
	return min(w, vg.Points(maxBarWidth))
}

func newBars(values plotter.Values, series models.ChartSeries, width vg.Length) (*plotter.BarChart, error) {
	bars, err := plotter.NewBarChart(values, width)
	if err != nil {
		return nil, fmt.Errorf("failed to build %q bars: %w", series.Name, err)
	}
	bars.Color = parseColor(series.Color)
	bars.LineStyle.Width = vg.Length(0)
	return bars, nil
}

// segmentLabels places each non-zero count at the vertical centre of its segment.
func segmentLabels(table []models.WeeklyVolume) (*plotter.Labels, error) {
	var xyl plotter.XYLabels
	for i, row := range table {
		x := float64(i)
		if row.Received > 0 {
			xyl.XYs = append(xyl.XYs, plotter.XY{X: x, Y: float64(row.Received) / 2})
			xyl.Labels = append(xyl.Labels, strconv.Itoa(row.Received))
		}
		if row.Answered > 0 {
			xyl.XYs = append(xyl.XYs, plotter.XY{X: x, Y: float64(row.Received) + float64(row.Answered)/2})
			xyl.Labels = append(xyl.Labels, strconv.Itoa(row.Answered))
		}
	}
	if len(xyl.XYs) == 0 {
		return nil, nil
	}

	labels, err := plotter.NewLabels(xyl)
	if err != nil {
		return nil, fmt.Errorf("failed to build labels: %w", err)
	}
	for i := range labels.TextStyle {
		labels.TextStyle[i].XAlign = draw.XCenter
		labels.TextStyle[i].YAlign = draw.YCenter
	}
	return labels, nil
}

// parseColor reads an RRGGBB hex string; invalid input yields opaque grey.
func parseColor(hex string) color.Color {
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil || len(hex) != 6 {
		return color.RGBA{R: 128, G: 128, B: 128, A: 255}
	}
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 255}
}
