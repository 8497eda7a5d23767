package dashboard

import (
	"bytes"
	"context"
	"errors"
	"log"
	"net/http"

	"github.com/a-h/templ"
	"golang.org/x/sync/errgroup"

	"github.com/louisbranch/launchboard/internal/launches/query"
	"github.com/louisbranch/launchboard/internal/platform/requestctx"
	"github.com/louisbranch/launchboard/internal/services/dashboard/callback"
	dashi18n "github.com/louisbranch/launchboard/internal/services/dashboard/i18n"
	apperrors "github.com/louisbranch/launchboard/internal/services/dashboard/platform/errors"
	"github.com/louisbranch/launchboard/internal/services/dashboard/platform/httpx"
	"github.com/louisbranch/launchboard/internal/services/dashboard/render"
	"github.com/louisbranch/launchboard/internal/services/dashboard/routepath"
	"github.com/louisbranch/launchboard/internal/services/dashboard/templates"
)

// chartResponse is the JSON form of a chart request.
type chartResponse struct {
	Output string       `json:"output"`
	Figure query.Figure `json:"figure"`
}

func (h *handler) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

func (h *handler) handlePage(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != routepath.Root {
		http.NotFound(w, r)
		return
	}
	ctx := httpx.RequestContext(r)
	printer, lang := dashi18n.Localize(w, r)
	state := defaultState(h.dataset)

	outputs := []string{OutputSuccessPie, OutputPayloadScatter}
	regions := make([]templates.ChartRegionView, len(outputs))
	group, groupCtx := errgroup.WithContext(ctx)
	for i, output := range outputs {
		group.Go(func() error {
			region, err := h.region(groupCtx, output, state)
			if err != nil {
				return err
			}
			regions[i] = region
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		h.fail(w, r, err)
		return
	}
	view := templates.PageView{
		Heading:  printer.Sprintf(dashi18n.KeyPageTitle),
		Dropdown: siteDropdown(printer, state.Site),
		Slider:   payloadSlider(printer, h.dataset),
		Pie:      regions[0],
		Scatter:  regions[1],
	}

	var buf bytes.Buffer
	layout := templates.Layout(templates.LayoutOptions{
		Title:         view.Heading,
		Lang:          lang,
		StylesheetURL: routepath.StylesheetURL,
		ScriptURL:     routepath.ScriptURL,
	})
	if err := layout.Render(templ.WithChildren(ctx, templates.Dashboard(view)), &buf); err != nil {
		h.fail(w, r, err)
		return
	}
	_ = httpx.WriteHTML(w, http.StatusOK, buf.String())
}

func (h *handler) handleChart(w http.ResponseWriter, r *http.Request) {
	ctx := httpx.RequestContext(r)
	output := r.PathValue("output")
	state := parseState(r.URL.Query(), h.dataset)

	fig, err := h.registry.Dispatch(ctx, output, state)
	if err != nil {
		if errors.Is(err, callback.ErrUnknownOutput) {
			err = apperrors.Wrap(apperrors.KindNotFound, err)
		}
		h.fail(w, r, err)
		return
	}
	if httpx.WantsJSON(r) {
		_ = httpx.WriteJSON(w, http.StatusOK, chartResponse{Output: output, Figure: fig})
		return
	}

	svg, err := render.SVGString(fig, h.size)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	if !httpx.IsHTMXRequest(r) {
		_ = httpx.WriteSVG(w, http.StatusOK, []byte(svg))
		return
	}
	var buf bytes.Buffer
	if err := templates.ChartFigure(templates.ChartView{Title: fig.Title, SVG: svg}).Render(ctx, &buf); err != nil {
		h.fail(w, r, err)
		return
	}
	_ = httpx.WriteHTML(w, http.StatusOK, buf.String())
}

// region dispatches output for state and wraps the rendered chart with the
// refresh attributes of its binding.
func (h *handler) region(ctx context.Context, output string, state callback.State) (templates.ChartRegionView, error) {
	binding, ok := h.registry.Lookup(output)
	if !ok {
		return templates.ChartRegionView{}, callback.ErrUnknownOutput
	}
	fig, err := h.registry.Dispatch(ctx, output, state)
	if err != nil {
		return templates.ChartRegionView{}, err
	}
	svg, err := render.SVGString(fig, h.size)
	if err != nil {
		return templates.ChartRegionView{}, err
	}
	return templates.ChartRegionView{
		ID:      output,
		Get:     routepath.Chart(output),
		Trigger: triggerFor(binding),
		Chart:   templates.ChartView{Title: fig.Title, SVG: svg},
	}, nil
}

func (h *handler) fail(w http.ResponseWriter, r *http.Request, err error) {
	status := apperrors.HTTPStatus(err)
	if status >= http.StatusInternalServerError {
		log.Printf("dashboard request failed path=%s request_id=%s err=%v", r.URL.Path, requestctx.RequestIDFromContext(r.Context()), err)
	}
	httpx.WriteError(w, err)
}
