package dashboard

import (
	"math"
	"net/url"
	"strconv"
	"strings"

	"github.com/louisbranch/launchboard/internal/launches/dataset"
	"github.com/louisbranch/launchboard/internal/launches/query"
	"github.com/louisbranch/launchboard/internal/services/dashboard/callback"
	"github.com/louisbranch/launchboard/internal/services/dashboard/routepath"
)

// defaultState is the control state of a freshly loaded page.
func defaultState(ds *dataset.Dataset) callback.State {
	low, high := ds.PayloadBounds()
	return callback.State{Site: query.AllSites, Payload: query.Range{Low: low, High: high}}
}

// parseState decodes control values from a chart request. Missing values
// fall back to the page defaults; unparseable payload bounds become NaN so
// the window matches nothing.
func parseState(values url.Values, ds *dataset.Dataset) callback.State {
	state := defaultState(ds)
	if site := strings.TrimSpace(values.Get(routepath.SiteParam)); site != "" {
		state.Site = site
	}
	state.Payload.Low = parseBound(values.Get(routepath.PayloadLow), state.Payload.Low)
	state.Payload.High = parseBound(values.Get(routepath.PayloadHigh), state.Payload.High)
	return state
}

func parseBound(raw string, fallback float64) float64 {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return fallback
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return math.NaN()
	}
	return v
}
