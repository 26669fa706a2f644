// Package catalog bevat de vaste keuzelijsten van de intake-formulieren:
// interne codes met hun Nederlandse labels. The tables are built once at
// init and never mutated afterwards.
package catalog

import "strings"

// Option pairs an internal code with its display label.
type Option struct {
	Code  string
	Label string
}

// Catalog maps the internal codes of one question to display labels.
type Catalog struct {
	name   string
	order  []string
	labels map[string]string
}

// New builds a catalog from ordered options. Blank codes are skipped, later
// duplicates win.
func New(name string, options ...Option) Catalog {
	order := make([]string, 0, len(options))
	labels := make(map[string]string, len(options))
	for _, opt := range options {
		code := strings.TrimSpace(opt.Code)
		if code == "" {
			continue
		}
		if _, seen := labels[code]; !seen {
			order = append(order, code)
		}
		labels[code] = strings.TrimSpace(opt.Label)
	}
	return Catalog{name: name, order: order, labels: labels}
}

// Name returns the question identifier this catalog belongs to.
func (c Catalog) Name() string {
	return c.name
}

// Has reports whether code is a known option.
func (c Catalog) Has(code string) bool {
	_, ok := c.labels[strings.TrimSpace(code)]
	return ok
}

// Codes returns the option codes in presentation order.
func (c Catalog) Codes() []string {
	return append([]string(nil), c.order...)
}

// ResolveLabel returns the label for code. Unknown codes come back verbatim
// so no data is ever dropped from a submission.
func (c Catalog) ResolveLabel(code string) string {
	trimmed := strings.TrimSpace(code)
	if label, ok := c.labels[trimmed]; ok && label != "" {
		return label
	}
	return trimmed
}

// ResolveLabels resolves a multi-select value, skipping blank entries.
func (c Catalog) ResolveLabels(codes []string) []string {
	result := make([]string, 0, len(codes))
	for _, code := range codes {
		if strings.TrimSpace(code) == "" {
			continue
		}
		result = append(result, c.ResolveLabel(code))
	}
	return result
}

// Set bundles every catalog used by the intake forms.
type Set struct {
	Services      Catalog
	Reasons       Catalog
	Outcomes      Catalog
	Metrics       Catalog
	RevenueFocus  Catalog
	Actions       Catalog
	Leaks         Catalog
	Timelines     Catalog
	Budgets       Catalog
	CateringTypes Catalog
	Tracks        Catalog
}

// ForField returns the catalog for a payload field name, if the field is
// code-valued. Free-text and boolean fields have no catalog.
func (s Set) ForField(field string) (Catalog, bool) {
	switch field {
	case "service":
		return s.Services, true
	case "reasonNow":
		return s.Reasons, true
	case "outcome90":
		return s.Outcomes, true
	case "successMetric":
		return s.Metrics, true
	case "revenueFocus":
		return s.RevenueFocus, true
	case "primaryAction":
		return s.Actions, true
	case "leaks":
		return s.Leaks, true
	case "timeline":
		return s.Timelines, true
	case "budget":
		return s.Budgets, true
	case "type":
		return s.CateringTypes, true
	case "track":
		return s.Tracks, true
	}
	return Catalog{}, false
}

var defaultSet = Set{
	Services: New("service",
		Option{"consulting", "Horeca-advies"},
		Option{"catering", "Catering"},
		Option{"websites", "Websites & online zichtbaarheid"},
	),
	Reasons: New("reasonNow",
		Option{"omzet-valt-tegen", "De omzet valt tegen"},
		Option{"kosten-lopen-op", "De kosten lopen op"},
		Option{"team-onder-druk", "Het team staat onder druk"},
		Option{"wil-groeien", "We willen groeien"},
		Option{"nieuw-concept", "We lanceren een nieuw concept"},
	),
	Outcomes: New("outcome90",
		Option{"meer-omzet", "Meer omzet"},
		Option{"betere-marge", "Betere marge"},
		Option{"lagere-kosten", "Lagere kosten"},
		Option{"meer-gasten", "Meer gasten"},
		Option{"rust-in-team", "Rust in het team"},
	),
	Metrics: New("successMetric",
		Option{"omzet-per-gast", "Omzet per gast"},
		Option{"brutomarge", "Brutomarge"},
		Option{"aantal-gasten", "Aantal gasten per week"},
		Option{"personeelskosten", "Personeelskosten in procenten"},
		Option{"reviewscore", "Reviewscore"},
	),
	RevenueFocus: New("revenueFocus",
		Option{"keuken", "Keuken"},
		Option{"bar", "Bar & dranken"},
		Option{"terras", "Terras"},
		Option{"catering", "Catering & events"},
		Option{"bezorgen", "Bezorgen & afhalen"},
	),
	Actions: New("primaryAction",
		Option{"menu-herzien", "Menukaart herzien"},
		Option{"prijzen-aanpassen", "Prijzen aanpassen"},
		Option{"marketing-starten", "Marketing opzetten"},
		Option{"processen-strakker", "Processen strakker maken"},
		Option{"weet-niet", "Weet ik nog niet"},
	),
	Leaks: New("leaks",
		Option{"inkoop", "Inkoop"},
		Option{"voorraad", "Voorraad & derving"},
		Option{"personeelsplanning", "Personeelsplanning"},
		Option{"prijsstelling", "Prijsstelling"},
		Option{"no-shows", "No-shows"},
		Option{"energie", "Energie & vaste lasten"},
	),
	Timelines: New("timeline",
		Option{"direct", "Zo snel mogelijk"},
		Option{"1-3-maanden", "Binnen 1 tot 3 maanden"},
		Option{"3-6-maanden", "Binnen 3 tot 6 maanden"},
		Option{"later", "Later dit jaar"},
	),
	Budgets: New("budget",
		Option{"tot-1000", "Tot € 1.000"},
		Option{"1000-2500", "€ 1.000 tot € 2.500"},
		Option{"2500-5000", "€ 2.500 tot € 5.000"},
		Option{"5000-plus", "Meer dan € 5.000"},
	),
	CateringTypes: New("type",
		Option{"bedrijfsborrel", "Bedrijfsborrel"},
		Option{"zakelijke-lunch", "Zakelijke lunch"},
		Option{"bruiloft", "Bruiloft"},
		Option{"privefeest", "Privéfeest"},
	),
	Tracks: New("track",
		Option{"website", "Website & online zichtbaarheid"},
		Option{"consulting", "Horeca-advies"},
		Option{"catering", "Catering"},
	),
}

// Default returns the process-wide catalog set.
func Default() Set {
	return defaultSet
}
