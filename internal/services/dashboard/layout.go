package dashboard

import (
	"math"
	"strings"

	"golang.org/x/text/message"

	"github.com/louisbranch/launchboard/internal/launches/dataset"
	"github.com/louisbranch/launchboard/internal/launches/query"
	"github.com/louisbranch/launchboard/internal/services/dashboard/callback"
	dashi18n "github.com/louisbranch/launchboard/internal/services/dashboard/i18n"
	"github.com/louisbranch/launchboard/internal/services/dashboard/routepath"
	"github.com/louisbranch/launchboard/internal/services/dashboard/templates"
)

// LaunchSites is the fixed dropdown site list.
var LaunchSites = []string{"CCAFS LC-40", "CCAFS SLC-40", "KSC LC-39A", "VAFB SLC-4E"}

const (
	// markStep is the slider tick spacing in kilograms.
	markStep = 2500
	// sliderStep is the handle granularity in kilograms.
	sliderStep = 1
)

func siteDropdown(printer *message.Printer, selected string) templates.DropdownView {
	options := make([]templates.OptionView, 0, len(LaunchSites)+1)
	options = append(options, templates.OptionView{
		Label:    printer.Sprintf(dashi18n.KeyAllSites),
		Value:    query.AllSites,
		Selected: selected == query.AllSites,
	})
	for _, site := range LaunchSites {
		options = append(options, templates.OptionView{Label: site, Value: site, Selected: selected == site})
	}
	return templates.DropdownView{
		ID:          string(callback.SiteDropdown),
		Name:        routepath.SiteParam,
		Placeholder: printer.Sprintf(dashi18n.KeySitePlaceholder),
		Options:     options,
	}
}

func payloadSlider(printer *message.Printer, ds *dataset.Dataset) templates.SliderView {
	low, high := ds.PayloadBounds()
	lo := int(math.Floor(low))
	hi := int(math.Ceil(high))
	return templates.SliderView{
		ID:              string(callback.PayloadSlider),
		Caption:         printer.Sprintf(dashi18n.KeyPayloadRange),
		Min:             lo,
		Max:             hi,
		Step:            sliderStep,
		Low:             lo,
		High:            hi,
		LowName:         routepath.PayloadLow,
		HighName:        routepath.PayloadHigh,
		LowLabel:        printer.Sprintf(dashi18n.KeyPayloadLowLabel),
		HighLabel:       printer.Sprintf(dashi18n.KeyPayloadHighLabel),
		Marks:           sliderMarks(printer, lo, hi),
		SelectionText:   printer.Sprintf(dashi18n.KeyPayloadSelection, lo, hi),
		SelectionFormat: printer.Sprintf(dashi18n.KeyPayloadSelection, "{low}", "{high}"),
	}
}

// sliderMarks places a labelled tick at every multiple of markStep within
// [lo, hi].
func sliderMarks(printer *message.Printer, lo, hi int) []templates.MarkView {
	if hi < lo {
		return nil
	}
	first := (lo + markStep - 1) / markStep * markStep
	if lo < 0 {
		first = lo / markStep * markStep
	}
	var marks []templates.MarkView
	for v := first; v <= hi; v += markStep {
		percent := 0.0
		if hi > lo {
			percent = float64(v-lo) / float64(hi-lo) * 100
		}
		marks = append(marks, templates.MarkView{
			Value:   v,
			Label:   printer.Sprintf("%d", v),
			Percent: percent,
		})
	}
	return marks
}

// triggerFor lists the htmx change triggers of a binding's inputs.
func triggerFor(binding callback.Binding) string {
	triggers := make([]string, 0, len(binding.Inputs))
	for _, input := range binding.Inputs {
		triggers = append(triggers, "change from:#"+string(input))
	}
	return strings.Join(triggers, ", ")
}
