// Package render draws chart descriptions as SVG with go-chart.
package render

import (
	"bytes"
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/louisbranch/launchboard/internal/launches/query"
	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// Size is the rendered image size in pixels.
type Size struct {
	Width  int
	Height int
}

// DefaultSize matches the chart regions of the dashboard layout.
var DefaultSize = Size{Width: 900, Height: 450}

func (s Size) orDefault() Size {
	if s.Width <= 0 {
		s.Width = DefaultSize.Width
	}
	if s.Height <= 0 {
		s.Height = DefaultSize.Height
	}
	return s
}

const noDataMessage = "No data"

// SVG writes fig to w as an SVG document.
func SVG(w io.Writer, fig query.Figure, size Size) error {
	if w == nil {
		return fmt.Errorf("writer is required")
	}
	size = size.orDefault()
	if fig.Empty() {
		return placeholder(w, fig.Title, size)
	}
	switch fig.Kind {
	case query.KindPie:
		return pie(w, fig, size)
	case query.KindScatter:
		return scatter(w, fig, size)
	default:
		return fmt.Errorf("unsupported figure kind %q", fig.Kind)
	}
}

// SVGString renders fig and returns the SVG markup.
func SVGString(fig query.Figure, size Size) (string, error) {
	var buf bytes.Buffer
	if err := SVG(&buf, fig, size); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func pie(w io.Writer, fig query.Figure, size Size) error {
	values := make([]chart.Value, 0, len(fig.Slices))
	for i, slice := range fig.Slices {
		// go-chart cannot draw zero-width wedges; the slice stays in the
		// description for JSON consumers.
		if slice.Value <= 0 {
			continue
		}
		values = append(values, chart.Value{
			Label: fmt.Sprintf("%s (%s)", slice.Label, formatNumber(slice.Value)),
			Value: slice.Value,
			Style: chart.Style{FillColor: chart.GetDefaultColor(i), StrokeColor: chart.ColorWhite},
		})
	}
	pc := chart.PieChart{
		Title:  fig.Title,
		Width:  size.Width,
		Height: size.Height,
		Values: values,
	}
	if err := pc.Render(chart.SVG, w); err != nil {
		return fmt.Errorf("render pie %q: %w", fig.Title, err)
	}
	return nil
}

func scatter(w io.Writer, fig query.Figure, size Size) error {
	series := make([]chart.Series, 0, len(fig.Series))
	minX, maxX := math.Inf(1), math.Inf(-1)
	for i, s := range fig.Series {
		if len(s.Points) == 0 {
			continue
		}
		xs := make([]float64, 0, len(s.Points))
		ys := make([]float64, 0, len(s.Points))
		for _, p := range s.Points {
			xs = append(xs, p.X)
			ys = append(ys, p.Y)
			minX = math.Min(minX, p.X)
			maxX = math.Max(maxX, p.X)
		}
		series = append(series, chart.ContinuousSeries{
			Name:    s.Name,
			XValues: xs,
			YValues: ys,
			Style:   pointStyle(chart.GetDefaultColor(i)),
		})
	}
	lo, hi := paddedRange(minX, maxX)

	ch := chart.Chart{
		Title:      fig.Title,
		Width:      size.Width,
		Height:     size.Height,
		Background: chart.Style{Padding: chart.Box{Top: 40, Left: 16, Right: 140, Bottom: 16}},
		XAxis: chart.XAxis{
			Name:           fig.XLabel,
			Range:          &chart.ContinuousRange{Min: lo, Max: hi},
			ValueFormatter: integerFormatter,
		},
		YAxis: chart.YAxis{
			Name:  fig.YLabel,
			Range: &chart.ContinuousRange{Min: -0.25, Max: 1.25},
			Ticks: []chart.Tick{{Value: 0, Label: "0"}, {Value: 1, Label: "1"}},
		},
		Series: series,
	}
	ch.Elements = []chart.Renderable{chart.LegendLeft(&ch)}
	if err := ch.Render(chart.SVG, w); err != nil {
		return fmt.Errorf("render scatter %q: %w", fig.Title, err)
	}
	return nil
}

// pointStyle draws markers only, without connecting lines.
func pointStyle(col drawing.Color) chart.Style {
	return chart.Style{
		StrokeWidth: chart.Disabled,
		DotWidth:    5,
		DotColor:    col,
	}
}

// paddedRange widens [lo, hi] by 5% so markers at the edges stay visible and a
// single point still yields a non-degenerate axis.
func paddedRange(lo, hi float64) (float64, float64) {
	if math.IsInf(lo, 0) || math.IsInf(hi, 0) {
		return 0, 1
	}
	span := hi - lo
	if span <= 0 {
		span = math.Max(math.Abs(hi), 1)
	}
	pad := span * 0.05
	return lo - pad, hi + pad
}

func integerFormatter(v interface{}) string {
	if f, ok := v.(float64); ok {
		return strconv.FormatFloat(math.Round(f), 'f', 0, 64)
	}
	return ""
}

func formatNumber(v float64) string {
	if v == math.Trunc(v) {
		return strconv.FormatFloat(v, 'f', 0, 64)
	}
	return strconv.FormatFloat(v, 'f', 2, 64)
}

// placeholder draws the title and a "No data" notice where a chart would be.
func placeholder(w io.Writer, title string, size Size) error {
	r, err := chart.SVG(size.Width, size.Height)
	if err != nil {
		return fmt.Errorf("create svg renderer: %w", err)
	}
	font, err := chart.GetDefaultFont()
	if err != nil {
		return fmt.Errorf("load default font: %w", err)
	}
	r.SetFont(font)
	r.SetFontColor(chart.ColorBlack)

	if title != "" {
		r.SetFontSize(chart.DefaultTitleFontSize)
		box := r.MeasureText(title)
		r.Text(title, (size.Width-box.Width())/2, 30)
	}
	r.SetFontSize(14)
	r.SetFontColor(chart.ColorAlternateGray)
	box := r.MeasureText(noDataMessage)
	r.Text(noDataMessage, (size.Width-box.Width())/2, (size.Height+box.Height())/2)

	return r.Save(w)
}
