// Package callback binds dashboard chart outputs to the controls they depend
// on.
//
// The registry is filled once at startup and only read afterwards. A control
// change is dispatched synchronously to each dependent output's handler with
// the current control state.
package callback

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/louisbranch/launchboard/internal/launches/query"
	"github.com/louisbranch/launchboard/internal/platform/otel"
	"github.com/louisbranch/launchboard/internal/platform/requestctx"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

// ControlID identifies an input control on the page.
type ControlID string

const (
	SiteDropdown  ControlID = "site-dropdown"
	PayloadSlider ControlID = "payload-slider"
)

// Known reports whether id names a control the page renders.
func (id ControlID) Known() bool {
	return id == SiteDropdown || id == PayloadSlider
}

// ErrUnknownOutput is returned when no binding exists for an output.
var ErrUnknownOutput = errors.New("unknown callback output")

// State is the current value of every control.
type State struct {
	Site    string
	Payload query.Range
}

// Handler produces an output's chart description for a control state.
type Handler func(context.Context, State) query.Figure

// Binding ties one output to its input controls and handler.
type Binding struct {
	Output string
	Inputs []ControlID
	Handle Handler
}

// DependsOn reports whether a change of control refreshes this output.
func (b Binding) DependsOn(control ControlID) bool {
	return slices.Contains(b.Inputs, control)
}

// Registry holds bindings in registration order.
type Registry struct {
	bindings []Binding
	byOutput map[string]int
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{byOutput: make(map[string]int)}
}

// Register adds a binding. Outputs are unique and every input must be a
// known control.
func (r *Registry) Register(b Binding) error {
	if r == nil {
		return errors.New("registry is nil")
	}
	b.Output = strings.TrimSpace(b.Output)
	if b.Output == "" {
		return errors.New("output id is required")
	}
	if b.Handle == nil {
		return fmt.Errorf("output %q: handler is required", b.Output)
	}
	if len(b.Inputs) == 0 {
		return fmt.Errorf("output %q: at least one input is required", b.Output)
	}
	for _, input := range b.Inputs {
		if !input.Known() {
			return fmt.Errorf("output %q: unknown input control %q", b.Output, input)
		}
	}
	if _, dup := r.byOutput[b.Output]; dup {
		return fmt.Errorf("output %q: already registered", b.Output)
	}
	b.Inputs = slices.Clone(b.Inputs)
	r.byOutput[b.Output] = len(r.bindings)
	r.bindings = append(r.bindings, b)
	return nil
}

// Lookup returns the binding for output.
func (r *Registry) Lookup(output string) (Binding, bool) {
	if r == nil {
		return Binding{}, false
	}
	idx, ok := r.byOutput[output]
	if !ok {
		return Binding{}, false
	}
	return r.bindings[idx], true
}

// Bindings returns every binding in registration order.
func (r *Registry) Bindings() []Binding {
	if r == nil {
		return nil
	}
	return slices.Clone(r.bindings)
}

// Dependents lists the outputs refreshed when control changes.
func (r *Registry) Dependents(control ControlID) []string {
	if r == nil {
		return nil
	}
	var outputs []string
	for _, b := range r.bindings {
		if b.DependsOn(control) {
			outputs = append(outputs, b.Output)
		}
	}
	return outputs
}

// Dispatch runs the handler bound to output.
func (r *Registry) Dispatch(ctx context.Context, output string, state State) (query.Figure, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	_, span := otel.Tracer("callback").Start(ctx, "callback.dispatch")
	defer span.End()
	span.SetAttributes(
		attribute.String("callback.output", output),
		attribute.String("callback.site", state.Site),
		attribute.Float64("callback.payload_low", state.Payload.Low),
		attribute.Float64("callback.payload_high", state.Payload.High),
	)
	if requestID := requestctx.RequestIDFromContext(ctx); requestID != "" {
		span.SetAttributes(attribute.String("request_id", requestID))
	}

	b, ok := r.Lookup(output)
	if !ok {
		span.SetStatus(codes.Error, ErrUnknownOutput.Error())
		return query.Figure{}, fmt.Errorf("%w: %q", ErrUnknownOutput, output)
	}
	fig := b.Handle(ctx, state)
	span.SetAttributes(attribute.String("callback.kind", string(fig.Kind)))
	return fig, nil
}

// Change dispatches a control change to every dependent output and returns
// the figures keyed by output id.
func (r *Registry) Change(ctx context.Context, control ControlID, state State) (map[string]query.Figure, error) {
	outputs := r.Dependents(control)
	figures := make(map[string]query.Figure, len(outputs))
	for _, output := range outputs {
		fig, err := r.Dispatch(ctx, output, state)
		if err != nil {
			return nil, err
		}
		figures[output] = fig
	}
	return figures, nil
}
