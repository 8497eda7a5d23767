package templates

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/a-h/templ"
)

func samplePage() PageView {
	return PageView{
		Heading: "SpaceX Launch Records Dashboard",
		Dropdown: DropdownView{
			ID:          "site-dropdown",
			Name:        "site",
			Placeholder: "Select a Launch Site here",
			Options: []OptionView{
				{Label: "All Sites", Value: "ALL", Selected: true},
				{Label: "KSC LC-39A", Value: "KSC LC-39A"},
			},
		},
		Slider: SliderView{
			ID:              "payload-slider",
			Caption:         "Payload range (Kg):",
			Min:             0,
			Max:             10000,
			Step:            1,
			Low:             0,
			High:            10000,
			LowName:         "payload_low",
			HighName:        "payload_high",
			Marks:           []MarkView{{Value: 0, Label: "0", Percent: 0}, {Value: 2500, Label: "2,500", Percent: 25}},
			SelectionText:   "0 kg to 10,000 kg",
			SelectionFormat: "{low} kg to {high} kg",
		},
		Pie: ChartRegionView{
			ID:      "success-pie-chart",
			Get:     "/charts/success-pie-chart",
			Trigger: "change from:#site-dropdown",
			Chart:   ChartView{Title: "Successful Launches per Site", SVG: "<svg id=\"pie\"></svg>"},
		},
		Scatter: ChartRegionView{
			ID:      "success-payload-scatter-chart",
			Get:     "/charts/success-payload-scatter-chart",
			Trigger: "change from:#site-dropdown, change from:#payload-slider",
			Chart:   ChartView{Title: "Correlation between Payload and Success", SVG: "<svg id=\"scatter\"></svg>"},
		},
	}
}

func renderPage(t *testing.T, view PageView) string {
	t.Helper()
	var b strings.Builder
	ctx := templ.WithChildren(context.Background(), Dashboard(view))
	err := Layout(LayoutOptions{Title: view.Heading, Lang: "en-US", StylesheetURL: "/static/dashboard.css", ScriptURL: "/static/dashboard.js"}).Render(ctx, &b)
	if err != nil {
		t.Fatalf("Layout() = %v", err)
	}
	return b.String()
}

func TestLayoutRendersDocumentShell(t *testing.T) {
	t.Parallel()

	got := renderPage(t, samplePage())
	for _, marker := range []string{
		`<html lang="en-US">`,
		`<title>SpaceX Launch Records Dashboard</title>`,
		`href="/static/dashboard.css"`,
		`src="/static/dashboard.js"`,
		HTMXScriptURL,
	} {
		if !strings.Contains(got, marker) {
			t.Fatalf("expected %q in page, got %q", marker, got)
		}
	}
}

func TestDashboardRendersControlsInOrder(t *testing.T) {
	t.Parallel()

	got := renderPage(t, samplePage())
	order := []string{
		`<h1 class="dashboard-title">SpaceX Launch Records Dashboard</h1>`,
		`<select id="site-dropdown" name="site">`,
		`id="success-pie-chart"`,
		`<p>Payload range (Kg):</p>`,
		`id="payload-slider"`,
		`id="success-payload-scatter-chart"`,
	}
	last := -1
	for _, marker := range order {
		idx := strings.Index(got, marker)
		if idx < 0 {
			t.Fatalf("expected %q in page, got %q", marker, got)
		}
		if idx < last {
			t.Fatalf("marker %q out of order", marker)
		}
		last = idx
	}
}

func TestDashboardRendersDropdownOptions(t *testing.T) {
	t.Parallel()

	got := renderPage(t, samplePage())
	if !strings.Contains(got, `<option value="ALL" selected>All Sites</option>`) {
		t.Fatalf("expected selected ALL option, got %q", got)
	}
	if !strings.Contains(got, `<option value="KSC LC-39A">KSC LC-39A</option>`) {
		t.Fatalf("expected site option, got %q", got)
	}
	if !strings.Contains(got, `placeholder="Select a Launch Site here"`) {
		t.Fatalf("expected placeholder, got %q", got)
	}
}

func TestDashboardRendersSliderHandlesAndMarks(t *testing.T) {
	t.Parallel()

	got := renderPage(t, samplePage())
	for _, marker := range []string{
		`name="payload_low" data-handle="low"`,
		`name="payload_high" data-handle="high"`,
		`min="0" max="10000" step="1" value="10000"`,
		`style="left: 25.00%" data-value="2500">2,500</span>`,
		`data-format="{low} kg to {high} kg">0 kg to 10,000 kg</output>`,
	} {
		if !strings.Contains(got, marker) {
			t.Fatalf("expected %q in page, got %q", marker, got)
		}
	}
}

func TestChartRegionCarriesHTMXAttributes(t *testing.T) {
	t.Parallel()

	var b strings.Builder
	if err := ChartRegion(samplePage().Scatter).Render(context.Background(), &b); err != nil {
		t.Fatalf("ChartRegion() = %v", err)
	}
	got := b.String()
	for _, marker := range []string{
		`hx-get="/charts/success-payload-scatter-chart"`,
		`hx-include="#controls"`,
		`hx-trigger="change from:#site-dropdown, change from:#payload-slider"`,
		`hx-swap="innerHTML"`,
		`<svg id="scatter"></svg>`,
	} {
		if !strings.Contains(got, marker) {
			t.Fatalf("expected %q in region, got %q", marker, got)
		}
	}
}

func TestChartFigureEscapesTitleButNotSVG(t *testing.T) {
	t.Parallel()

	var b strings.Builder
	err := ChartFigure(ChartView{Title: `A & "B"`, SVG: "<svg><text>x</text></svg>"}).Render(context.Background(), &b)
	if err != nil {
		t.Fatalf("ChartFigure() = %v", err)
	}
	got := b.String()
	if !strings.Contains(got, `aria-label="A &amp; &#34;B&#34;"`) {
		t.Fatalf("expected escaped title, got %q", got)
	}
	if !strings.Contains(got, "<svg><text>x</text></svg>") {
		t.Fatalf("expected raw svg, got %q", got)
	}
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("write failed")
}

func TestDashboardReturnsWriteErrors(t *testing.T) {
	t.Parallel()

	err := Dashboard(samplePage()).Render(context.Background(), failingWriter{})
	if err == nil {
		t.Fatal("expected write error")
	}
}
