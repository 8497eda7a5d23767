package query

// Kind names the chart type a Figure describes.
type Kind string

const (
	KindPie     Kind = "pie"
	KindScatter Kind = "scatter"
)

// Figure is a declarative chart description: the data series plus the title
// and axis mapping a renderer needs.
type Figure struct {
	Kind   Kind     `json:"kind"`
	Title  string   `json:"title"`
	XLabel string   `json:"x_label,omitempty"`
	YLabel string   `json:"y_label,omitempty"`
	Slices []Slice  `json:"slices,omitempty"`
	Series []Series `json:"series,omitempty"`
}

// Slice is one pie wedge.
type Slice struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
}

// Series is one colored group of scatter points.
type Series struct {
	Name   string  `json:"name"`
	Points []Point `json:"points"`
}

// Point is one scatter marker. Label carries the booster version when the
// dataset has one.
type Point struct {
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	Label string  `json:"label,omitempty"`
}

// Empty reports whether the figure has nothing to plot.
func (f Figure) Empty() bool {
	switch f.Kind {
	case KindPie:
		for _, slice := range f.Slices {
			if slice.Value > 0 {
				return false
			}
		}
		return true
	case KindScatter:
		return f.PointCount() == 0
	default:
		return len(f.Slices) == 0 && len(f.Series) == 0
	}
}

// PointCount returns the number of scatter points across all series.
func (f Figure) PointCount() int {
	total := 0
	for _, series := range f.Series {
		total += len(series.Points)
	}
	return total
}
