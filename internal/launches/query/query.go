// Package query derives chart descriptions from the launch dataset.
//
// Both callbacks are pure functions of their arguments: they read the dataset,
// build a throwaway aggregate and describe the chart. Unknown sites and empty
// payload windows produce empty figures, never errors.
package query

import (
	"cmp"
	"slices"

	"github.com/louisbranch/launchboard/internal/launches/dataset"
)

// AllSites is the selector sentinel that disables site filtering.
const AllSites = "ALL"

// Figure titles.
const (
	TitleSuccessBySite     = "Successful Launches per Site"
	TitlePayloadAllSites   = "Correlation between Payload and Success"
	TitlePayloadSingleSite = "Booster Version Category"
)

// Outcome labels for single-site pies.
const (
	LabelSuccessful = "successful"
	LabelFailed     = "failed"
)

// Scatter axis labels.
const (
	AxisPayloadMass = dataset.ColumnPayloadMass
	AxisClass       = dataset.ColumnClass
)

// Range is a payload window. Contains excludes both bounds.
type Range struct {
	Low  float64 `json:"low"`
	High float64 `json:"high"`
}

// Contains reports low < v < high.
func (r Range) Contains(v float64) bool {
	return r.Low < v && v < r.High
}

// SiteSuccess is one row of the all-sites aggregate.
type SiteSuccess struct {
	Site       string
	Successful int
}

// OutcomeCount is one row of the single-site aggregate.
type OutcomeCount struct {
	Outcome string
	Count   int
}

// SuccessBySite sums the outcome indicator per site, ordered by site.
func SuccessBySite(ds *dataset.Dataset) []SiteSuccess {
	totals := make(map[string]int)
	for record := range ds.All() {
		totals[record.Site] += record.Class
	}
	rows := make([]SiteSuccess, 0, len(totals))
	for site, successful := range totals {
		rows = append(rows, SiteSuccess{Site: site, Successful: successful})
	}
	slices.SortFunc(rows, func(a, b SiteSuccess) int { return cmp.Compare(a.Site, b.Site) })
	return rows
}

// OutcomesAtSite counts records per outcome label at one site, ordered by
// label. Labels without records are omitted.
func OutcomesAtSite(ds *dataset.Dataset, site string) []OutcomeCount {
	counts := make(map[string]int, 2)
	for record := range ds.All() {
		if record.Site != site {
			continue
		}
		counts[outcomeLabel(record)]++
	}
	rows := make([]OutcomeCount, 0, len(counts))
	for outcome, count := range counts {
		rows = append(rows, OutcomeCount{Outcome: outcome, Count: count})
	}
	slices.SortFunc(rows, func(a, b OutcomeCount) int { return cmp.Compare(a.Outcome, b.Outcome) })
	return rows
}

// PayloadWindow returns records inside rng, restricted to site unless site is
// AllSites, in dataset order.
func PayloadWindow(ds *dataset.Dataset, site string, rng Range) []dataset.LaunchRecord {
	var matched []dataset.LaunchRecord
	for record := range ds.All() {
		if site != AllSites && record.Site != site {
			continue
		}
		if !rng.Contains(record.PayloadMassKG) {
			continue
		}
		matched = append(matched, record)
	}
	return matched
}

// SuccessPie describes the success pie for the selected site.
func SuccessPie(ds *dataset.Dataset, site string) Figure {
	if site == AllSites {
		rows := SuccessBySite(ds)
		fig := Figure{Kind: KindPie, Title: TitleSuccessBySite, Slices: make([]Slice, 0, len(rows))}
		for _, row := range rows {
			fig.Slices = append(fig.Slices, Slice{Label: row.Site, Value: float64(row.Successful)})
		}
		return fig
	}

	rows := OutcomesAtSite(ds, site)
	fig := Figure{Kind: KindPie, Title: site, Slices: make([]Slice, 0, len(rows))}
	for _, row := range rows {
		fig.Slices = append(fig.Slices, Slice{Label: row.Outcome, Value: float64(row.Count)})
	}
	return fig
}

// PayloadScatter describes payload mass against outcome, one series per
// booster version category in order of first appearance.
func PayloadScatter(ds *dataset.Dataset, site string, rng Range) Figure {
	title := TitlePayloadSingleSite
	if site == AllSites {
		title = TitlePayloadAllSites
	}
	fig := Figure{
		Kind:   KindScatter,
		Title:  title,
		XLabel: AxisPayloadMass,
		YLabel: AxisClass,
		Series: []Series{},
	}

	position := make(map[string]int)
	for _, record := range PayloadWindow(ds, site, rng) {
		idx, ok := position[record.BoosterCategory]
		if !ok {
			idx = len(fig.Series)
			position[record.BoosterCategory] = idx
			fig.Series = append(fig.Series, Series{Name: record.BoosterCategory})
		}
		fig.Series[idx].Points = append(fig.Series[idx].Points, Point{
			X:     record.PayloadMassKG,
			Y:     float64(record.Class),
			Label: record.BoosterVersion,
		})
	}
	return fig
}

func outcomeLabel(record dataset.LaunchRecord) string {
	if record.Successful() {
		return LabelSuccessful
	}
	return LabelFailed
}
