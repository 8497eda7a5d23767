package dashboard

import (
	"context"
	"fmt"

	"github.com/louisbranch/launchboard/internal/launches/dataset"
	"github.com/louisbranch/launchboard/internal/launches/query"
	"github.com/louisbranch/launchboard/internal/services/dashboard/callback"
)

// Chart output ids rendered by the page.
const (
	OutputSuccessPie     = "success-pie-chart"
	OutputPayloadScatter = "success-payload-scatter-chart"
)

// NewRegistry binds the dashboard charts to their controls.
func NewRegistry(ds *dataset.Dataset) (*callback.Registry, error) {
	registry := callback.NewRegistry()
	bindings := []callback.Binding{
		{
			Output: OutputSuccessPie,
			Inputs: []callback.ControlID{callback.SiteDropdown},
			Handle: func(_ context.Context, state callback.State) query.Figure {
				return query.SuccessPie(ds, state.Site)
			},
		},
		{
			Output: OutputPayloadScatter,
			Inputs: []callback.ControlID{callback.SiteDropdown, callback.PayloadSlider},
			Handle: func(_ context.Context, state callback.State) query.Figure {
				return query.PayloadScatter(ds, state.Site, state.Payload)
			},
		},
	}
	for _, binding := range bindings {
		if err := registry.Register(binding); err != nil {
			return nil, fmt.Errorf("register %s: %w", binding.Output, err)
		}
	}
	return registry, nil
}
