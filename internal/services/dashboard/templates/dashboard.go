package templates

import (
	"context"
	"io"
	"strconv"

	"github.com/a-h/templ"
)

// ControlsFormID is the form element wrapping every input control. Chart
// regions include it so each refresh carries the full control state.
const ControlsFormID = "controls"

// PageView is the full dashboard page.
type PageView struct {
	Heading  string
	Dropdown DropdownView
	Slider   SliderView
	Pie      ChartRegionView
	Scatter  ChartRegionView
}

// DropdownView is the searchable site selector.
type DropdownView struct {
	ID          string
	Name        string
	Placeholder string
	Options     []OptionView
}

// OptionView is one selectable dropdown entry.
type OptionView struct {
	Label    string
	Value    string
	Selected bool
}

// SliderView is the dual-handle payload range slider.
type SliderView struct {
	ID              string
	Caption         string
	Min             int
	Max             int
	Step            int
	Low             int
	High            int
	LowName         string
	HighName        string
	LowLabel        string
	HighLabel       string
	Marks           []MarkView
	SelectionText   string
	SelectionFormat string
}

// MarkView is one labelled tick under the slider.
type MarkView struct {
	Value   int
	Label   string
	Percent float64
}

// ChartRegionView is one htmx-refreshed chart container.
type ChartRegionView struct {
	ID      string
	Get     string
	Trigger string
	Chart   ChartView
}

// ChartView is a rendered chart.
type ChartView struct {
	Title string
	SVG   string
}

// Dashboard renders the page body.
func Dashboard(view PageView) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		hw := &htmlWriter{w: w}
		hw.raw(`<h1 class="dashboard-title">`)
		hw.text(view.Heading)
		hw.raw("</h1>")
		hw.raw(`<form class="controls"`)
		hw.attr("id", ControlsFormID)
		hw.raw(` onsubmit="return false">`)
		writeDropdown(hw, view.Dropdown)
		hw.raw("<br>")
		if hw.err != nil {
			return hw.err
		}
		if err := ChartRegion(view.Pie).Render(ctx, w); err != nil {
			return err
		}
		hw.raw("<p>")
		hw.text(view.Slider.Caption)
		hw.raw("</p>")
		writeSlider(hw, view.Slider)
		hw.raw("</form>")
		if hw.err != nil {
			return hw.err
		}
		return ChartRegion(view.Scatter).Render(ctx, w)
	})
}

// ChartRegion renders a chart container with its htmx refresh attributes.
func ChartRegion(view ChartRegionView) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		hw := &htmlWriter{w: w}
		hw.raw(`<div class="chart"`)
		hw.attr("id", view.ID)
		hw.attr("hx-get", view.Get)
		hw.attr("hx-include", "#"+ControlsFormID)
		hw.attr("hx-trigger", view.Trigger)
		hw.attr("hx-swap", "innerHTML")
		hw.raw(">")
		if hw.err != nil {
			return hw.err
		}
		if err := ChartFigure(view.Chart).Render(ctx, w); err != nil {
			return err
		}
		hw.raw("</div>")
		return hw.err
	})
}

// ChartFigure renders the chart body swapped in by htmx.
func ChartFigure(view ChartView) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		hw := &htmlWriter{w: w}
		hw.raw("<figure")
		hw.attr("aria-label", view.Title)
		hw.raw(">")
		if hw.err != nil {
			return hw.err
		}
		if err := templ.Raw(view.SVG).Render(ctx, w); err != nil {
			return err
		}
		hw.raw("</figure>")
		return hw.err
	})
}

func writeDropdown(hw *htmlWriter, view DropdownView) {
	hw.raw(`<div class="site-picker"><input type="search" autocomplete="off"`)
	hw.attr("id", view.ID+"-search")
	hw.attr("placeholder", view.Placeholder)
	hw.attr("aria-label", view.Placeholder)
	hw.raw("><select")
	hw.attr("id", view.ID)
	hw.attr("name", view.Name)
	hw.raw("><option value=\"\" disabled>")
	hw.text(view.Placeholder)
	hw.raw("</option>")
	for _, option := range view.Options {
		hw.raw("<option")
		hw.attr("value", option.Value)
		hw.flag("selected", option.Selected)
		hw.raw(">")
		hw.text(option.Label)
		hw.raw("</option>")
	}
	hw.raw("</select></div>")
}

func writeSlider(hw *htmlWriter, view SliderView) {
	hw.raw(`<div class="payload-slider"`)
	hw.attr("id", view.ID)
	hw.raw(`><div class="handles">`)
	writeHandle(hw, view, "low", view.LowName, view.LowLabel, view.Low)
	writeHandle(hw, view, "high", view.HighName, view.HighLabel, view.High)
	hw.raw(`</div><div class="marks">`)
	for _, mark := range view.Marks {
		hw.raw("<span")
		hw.attr("style", "left: "+strconv.FormatFloat(mark.Percent, 'f', 2, 64)+"%")
		hw.attr("data-value", strconv.Itoa(mark.Value))
		hw.raw(">")
		hw.text(mark.Label)
		hw.raw("</span>")
	}
	hw.raw("</div><output")
	hw.attr("for", view.ID+"-low "+view.ID+"-high")
	hw.attr("data-format", view.SelectionFormat)
	hw.raw(">")
	hw.text(view.SelectionText)
	hw.raw("</output></div>")
}

func writeHandle(hw *htmlWriter, view SliderView, handle, name, label string, value int) {
	hw.raw(`<input type="range"`)
	hw.attr("id", view.ID+"-"+handle)
	hw.attr("name", name)
	hw.attr("data-handle", handle)
	hw.attr("aria-label", label)
	hw.attr("min", strconv.Itoa(view.Min))
	hw.attr("max", strconv.Itoa(view.Max))
	hw.attr("step", strconv.Itoa(view.Step))
	hw.attr("value", strconv.Itoa(value))
	hw.raw(">")
}
