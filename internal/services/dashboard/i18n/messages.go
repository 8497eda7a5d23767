package i18n

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Message keys for page copy. Chart titles are data-derived and stay
// untranslated.
const (
	KeyPageTitle        = "dashboard.title"
	KeyAllSites         = "dashboard.site.all"
	KeySitePlaceholder  = "dashboard.site.placeholder"
	KeyPayloadRange     = "dashboard.payload.range"
	KeyPayloadLowLabel  = "dashboard.payload.low"
	KeyPayloadHighLabel = "dashboard.payload.high"
	KeyChartUnavailable = "dashboard.chart.unavailable"
	KeyPayloadSelection = "dashboard.payload.selection"
)

func init() {
	en := language.AmericanEnglish
	message.SetString(en, KeyPageTitle, "SpaceX Launch Records Dashboard")
	message.SetString(en, KeyAllSites, "All Sites")
	message.SetString(en, KeySitePlaceholder, "Select a Launch Site here")
	message.SetString(en, KeyPayloadRange, "Payload range (Kg):")
	message.SetString(en, KeyPayloadLowLabel, "Minimum payload")
	message.SetString(en, KeyPayloadHighLabel, "Maximum payload")
	message.SetString(en, KeyChartUnavailable, "Chart unavailable")
	message.SetString(en, KeyPayloadSelection, "%v kg to %v kg")

	pt := language.BrazilianPortuguese
	message.SetString(pt, KeyPageTitle, "Painel de Lançamentos da SpaceX")
	message.SetString(pt, KeyAllSites, "Todos os locais")
	message.SetString(pt, KeySitePlaceholder, "Selecione um local de lançamento")
	message.SetString(pt, KeyPayloadRange, "Faixa de carga útil (Kg):")
	message.SetString(pt, KeyPayloadLowLabel, "Carga útil mínima")
	message.SetString(pt, KeyPayloadHighLabel, "Carga útil máxima")
	message.SetString(pt, KeyChartUnavailable, "Gráfico indisponível")
	message.SetString(pt, KeyPayloadSelection, "%v kg a %v kg")
}
