// Package routepath stores canonical HTTP paths for the dashboard.
package routepath

import "net/url"

const (
	Root          = "/"
	Health        = "/up"
	StaticPrefix  = "/static/"
	ChartsPrefix  = "/charts/"
	ChartPattern  = ChartsPrefix + "{output}"
	FormatParam   = "format"
	SiteParam     = "site"
	PayloadLow    = "payload_low"
	PayloadHigh   = "payload_high"
	StylesheetURL = StaticPrefix + "dashboard.css"
	ScriptURL     = StaticPrefix + "dashboard.js"
)

// Chart returns the fragment route for one chart output.
func Chart(output string) string {
	return ChartsPrefix + url.PathEscape(output)
}
