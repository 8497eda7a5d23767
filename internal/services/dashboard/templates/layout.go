// Package templates renders the dashboard page and its chart fragments.
package templates

import (
	"context"
	"io"
	"strings"

	"github.com/a-h/templ"
)

// HTMXScriptURL is the htmx build the page loads.
const HTMXScriptURL = "https://unpkg.com/htmx.org@2.0.4/dist/htmx.min.js"

// LayoutOptions configures the document shell.
type LayoutOptions struct {
	Title         string
	Lang          string
	StylesheetURL string
	ScriptURL     string
}

// Layout renders the HTML document and places the context children inside
// <body>.
func Layout(opts LayoutOptions) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		hw := &htmlWriter{w: w}
		lang := strings.TrimSpace(opts.Lang)
		if lang == "" {
			lang = "en-US"
		}
		hw.raw("<!doctype html><html")
		hw.attr("lang", lang)
		hw.raw(`><head><meta charset="utf-8"><meta name="viewport" content="width=device-width, initial-scale=1"><title>`)
		hw.text(opts.Title)
		hw.raw("</title>")
		if opts.StylesheetURL != "" {
			hw.raw(`<link rel="stylesheet"`)
			hw.attr("href", opts.StylesheetURL)
			hw.raw(">")
		}
		hw.raw(`<script`)
		hw.attr("src", HTMXScriptURL)
		hw.raw(` defer></script>`)
		if opts.ScriptURL != "" {
			hw.raw(`<script`)
			hw.attr("src", opts.ScriptURL)
			hw.raw(` defer></script>`)
		}
		hw.raw("</head><body>")
		if hw.err != nil {
			return hw.err
		}
		if err := templ.GetChildren(ctx).Render(ctx, w); err != nil {
			return err
		}
		hw.raw("</body></html>")
		return hw.err
	})
}
