package query

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/louisbranch/launchboard/internal/launches/dataset"
)

func mustDataset(t *testing.T, records []dataset.LaunchRecord) *dataset.Dataset {
	t.Helper()
	ds, err := dataset.New(records)
	if err != nil {
		t.Fatalf("dataset.New() error = %v", err)
	}
	return ds
}

func record(site string, class int, payload float64, category string) dataset.LaunchRecord {
	return dataset.LaunchRecord{Site: site, Class: class, PayloadMassKG: payload, BoosterCategory: category}
}

// scenarioDataset is three launches at A (1,1,0) and two at B (1,0).
func scenarioDataset(t *testing.T) *dataset.Dataset {
	return mustDataset(t, []dataset.LaunchRecord{
		record("A", 1, 1000, "FT"),
		record("A", 1, 2000, "B4"),
		record("A", 0, 3000, "FT"),
		record("B", 1, 4000, "B5"),
		record("B", 0, 5000, "v1.1"),
	})
}

func slicesByLabel(fig Figure) map[string]float64 {
	out := make(map[string]float64, len(fig.Slices))
	for _, slice := range fig.Slices {
		out[slice.Label] = slice.Value
	}
	return out
}

func TestSuccessPieAllSitesScenario(t *testing.T) {
	t.Parallel()

	fig := SuccessPie(scenarioDataset(t), AllSites)
	if fig.Kind != KindPie {
		t.Fatalf("Kind = %q, want %q", fig.Kind, KindPie)
	}
	if fig.Title != "Successful Launches per Site" {
		t.Fatalf("Title = %q", fig.Title)
	}
	want := []Slice{{Label: "A", Value: 2}, {Label: "B", Value: 1}}
	if diff := cmp.Diff(want, fig.Slices); diff != "" {
		t.Fatalf("Slices mismatch (-want +got):\n%s", diff)
	}
}

func TestSuccessPieSingleSiteScenario(t *testing.T) {
	t.Parallel()

	fig := SuccessPie(scenarioDataset(t), "A")
	if fig.Title != "A" {
		t.Fatalf("Title = %q, want site name", fig.Title)
	}
	want := []Slice{{Label: LabelFailed, Value: 1}, {Label: LabelSuccessful, Value: 2}}
	if diff := cmp.Diff(want, fig.Slices); diff != "" {
		t.Fatalf("Slices mismatch (-want +got):\n%s", diff)
	}
}

func TestSuccessPieAllSitesKeepsZeroSuccessSites(t *testing.T) {
	t.Parallel()

	ds := mustDataset(t, []dataset.LaunchRecord{
		record("A", 1, 1, "FT"),
		record("C", 0, 1, "FT"),
	})
	got := slicesByLabel(SuccessPie(ds, AllSites))
	if value, ok := got["C"]; !ok || value != 0 {
		t.Fatalf("slices = %v, want zero slice for C", got)
	}
}

func TestSuccessPieSingleOutcomeYieldsOneSlice(t *testing.T) {
	t.Parallel()

	ds := mustDataset(t, []dataset.LaunchRecord{
		record("A", 1, 1, "FT"),
		record("A", 1, 2, "FT"),
	})
	fig := SuccessPie(ds, "A")
	if len(fig.Slices) != 1 || fig.Slices[0] != (Slice{Label: LabelSuccessful, Value: 2}) {
		t.Fatalf("Slices = %+v, want single successful slice", fig.Slices)
	}
}

func TestSuccessPieUnknownSiteIsEmpty(t *testing.T) {
	t.Parallel()

	fig := SuccessPie(scenarioDataset(t), "Boca Chica")
	if len(fig.Slices) != 0 {
		t.Fatalf("Slices = %+v, want none", fig.Slices)
	}
	if !fig.Empty() {
		t.Fatal("expected empty figure")
	}
	if fig.Title != "Boca Chica" {
		t.Fatalf("Title = %q, want selected value", fig.Title)
	}
}

func TestSuccessPieAllSitesMatchesOutcomeSums(t *testing.T) {
	t.Parallel()

	ds, err := dataset.LoadFile("../dataset/testdata/launches.csv")
	if err != nil {
		t.Fatalf("LoadFile() error = %v", err)
	}
	want := make(map[string]float64)
	for r := range ds.All() {
		want[r.Site] += float64(r.Class)
	}
	got := slicesByLabel(SuccessPie(ds, AllSites))
	if len(got) != len(want) {
		t.Fatalf("slices = %v, want %v", got, want)
	}
	for site, sum := range want {
		if got[site] != sum {
			t.Fatalf("slice %q = %v, want %v", site, got[site], sum)
		}
	}
}

func TestSuccessPieSingleSiteCountsSumToRecords(t *testing.T) {
	t.Parallel()

	ds, err := dataset.LoadFile("../dataset/testdata/launches.csv")
	if err != nil {
		t.Fatalf("LoadFile() error = %v", err)
	}
	for _, site := range ds.Sites() {
		records := 0
		for r := range ds.All() {
			if r.Site == site {
				records++
			}
		}
		total := 0.0
		for _, slice := range SuccessPie(ds, site).Slices {
			if slice.Label != LabelSuccessful && slice.Label != LabelFailed {
				t.Fatalf("site %q unexpected label %q", site, slice.Label)
			}
			total += slice.Value
		}
		if int(total) != records {
			t.Fatalf("site %q slices sum = %v, want %d", site, total, records)
		}
	}
}

func TestRangeContainsExcludesBounds(t *testing.T) {
	t.Parallel()

	rng := Range{Low: 0, High: 5000}
	tests := []struct {
		value float64
		want  bool
	}{
		{value: 0, want: false},
		{value: 0.5, want: true},
		{value: 4999, want: true},
		{value: 5000, want: false},
		{value: 5001, want: false},
		{value: math.NaN(), want: false},
	}
	for _, tt := range tests {
		if got := rng.Contains(tt.value); got != tt.want {
			t.Fatalf("Contains(%v) = %t, want %t", tt.value, got, tt.want)
		}
	}
}

func TestPayloadScatterBoundaryScenario(t *testing.T) {
	t.Parallel()

	ds := mustDataset(t, []dataset.LaunchRecord{
		record("A", 1, 5000, "FT"),
		record("A", 0, 4999, "FT"),
		record("B", 1, 0, "v1.0"),
	})
	fig := PayloadScatter(ds, AllSites, Range{Low: 0, High: 5000})
	if fig.PointCount() != 1 {
		t.Fatalf("PointCount() = %d, want 1", fig.PointCount())
	}
	if got := fig.Series[0].Points[0].X; got != 4999 {
		t.Fatalf("included payload = %v, want 4999", got)
	}
}

func TestPayloadScatterTitlesAndAxes(t *testing.T) {
	t.Parallel()

	ds := scenarioDataset(t)
	all := PayloadScatter(ds, AllSites, Range{Low: 0, High: 10000})
	if all.Title != "Correlation between Payload and Success" {
		t.Fatalf("all-sites Title = %q", all.Title)
	}
	site := PayloadScatter(ds, "A", Range{Low: 0, High: 10000})
	if site.Title != "Booster Version Category" {
		t.Fatalf("single-site Title = %q", site.Title)
	}
	if all.XLabel != "Payload Mass (kg)" || all.YLabel != "class" {
		t.Fatalf("axes = (%q, %q)", all.XLabel, all.YLabel)
	}
}

func TestPayloadScatterGroupsByCategoryInFirstAppearanceOrder(t *testing.T) {
	t.Parallel()

	fig := PayloadScatter(scenarioDataset(t), AllSites, Range{Low: 0, High: 10000})
	var names []string
	for _, series := range fig.Series {
		names = append(names, series.Name)
	}
	want := []string{"FT", "B4", "B5"}
	if diff := cmp.Diff(want, names); diff != "" {
		t.Fatalf("series mismatch (-want +got):\n%s", diff)
	}
	if got := len(fig.Series[0].Points); got != 2 {
		t.Fatalf("FT points = %d, want 2", got)
	}
}

func TestPayloadScatterSiteRestriction(t *testing.T) {
	t.Parallel()

	ds := scenarioDataset(t)
	rng := Range{Low: -1, High: 1e9}

	all := PayloadWindow(ds, AllSites, rng)
	if len(all) != ds.Len() {
		t.Fatalf("ALL window = %d records, want %d", len(all), ds.Len())
	}
	for _, r := range PayloadWindow(ds, "B", rng) {
		if r.Site != "B" {
			t.Fatalf("site B window leaked record at %q", r.Site)
		}
	}
	if got := PayloadScatter(ds, "B", rng).PointCount(); got != 2 {
		t.Fatalf("site B points = %d, want 2", got)
	}
}

func TestPayloadScatterIncludesExactlyOpenInterval(t *testing.T) {
	t.Parallel()

	ds, err := dataset.LoadFile("../dataset/testdata/launches.csv")
	if err != nil {
		t.Fatalf("LoadFile() error = %v", err)
	}
	ranges := []Range{{0, 9600}, {500, 3669}, {525, 525}, {2490, 5600}, {-1, 10000}}
	for _, rng := range ranges {
		want := 0
		for r := range ds.All() {
			if rng.Low < r.PayloadMassKG && r.PayloadMassKG < rng.High {
				want++
			}
		}
		fig := PayloadScatter(ds, AllSites, rng)
		if fig.PointCount() != want {
			t.Fatalf("range %+v points = %d, want %d", rng, fig.PointCount(), want)
		}
		for _, series := range fig.Series {
			for _, p := range series.Points {
				if !(rng.Low < p.X && p.X < rng.High) {
					t.Fatalf("range %+v included boundary or outside point %v", rng, p.X)
				}
			}
		}
	}
}

func TestPayloadScatterEmptyWindows(t *testing.T) {
	t.Parallel()

	ds := scenarioDataset(t)
	tests := []struct {
		name string
		site string
		rng  Range
	}{
		{name: "inverted range", site: AllSites, rng: Range{Low: 5000, High: 0}},
		{name: "nan bound", site: AllSites, rng: Range{Low: math.NaN(), High: 10000}},
		{name: "unknown site", site: "nowhere", rng: Range{Low: 0, High: 10000}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			fig := PayloadScatter(ds, tt.site, tt.rng)
			if !fig.Empty() {
				t.Fatalf("expected empty figure, got %d points", fig.PointCount())
			}
			if fig.Series == nil {
				t.Fatal("Series must be an empty slice, not nil")
			}
		})
	}
}
