// models/api_models.go
package models

// DashboardRequest is the expected JSON body for /api/dashboard and
// /api/records. It mirrors FilterSpec, except that range bounds are
// pointers: a nil bound means "use the observed default" so clients only
// send what the user actually touched.
type DashboardRequest struct {
	Provinces        []string `json:"provinces"`
	Categories       []string `json:"categories"`
	OwnerTypes       []string `json:"owner_types"`
	EngineCategories []string `json:"engine_categories"`
	Countries        []string `json:"countries"`

	MinEngines *int     `json:"min_engines"`
	MaxEngines *int     `json:"max_engines"`
	MinYear    *int     `json:"min_year"`
	MaxYear    *int     `json:"max_year"`
	MinAge     *int     `json:"min_age"`
	MaxAge     *int     `json:"max_age"`
	MinWeight  *float64 `json:"min_weight"`
	MaxWeight  *float64 `json:"max_weight"`

	Search string `json:"search"`
}

// ChartPoint is a single labelled value in a chart series.
type ChartPoint struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
}

// ChartSeries is one named data series.
type ChartSeries struct {
	Name string       `json:"name"`
	Data []ChartPoint `json:"data"`
}

// ChartConfig is a render-ready chart description. The frontend draws it;
// this backend never renders anything itself.
//
// ChartType is one of "bar", "pie", "histogram", "line".
type ChartConfig struct {
	Key         string        `json:"key"`
	ChartType   string        `json:"chart_type"`
	Title       string        `json:"title"`
	XAxis       string        `json:"x_axis,omitempty"`
	YAxis       string        `json:"y_axis,omitempty"`
	Series      []ChartSeries `json:"series"`
	ShowLabels  bool          `json:"show_labels"`            // value labels above bars
	Hole        float64       `json:"hole,omitempty"`         // donut hole, 0 for solid pies
	CenterLabel string        `json:"center_label,omitempty"` // donut center annotation
	ShowLegend  bool          `json:"show_legend"`
	Markers     bool          `json:"markers,omitempty"` // line charts only
}

// DashboardResponse carries everything one filter interaction produces:
// the filtered record count and one ChartConfig per enabled, non-empty
// chart. Charts with nothing to show are omitted, never errored.
type DashboardResponse struct {
	TotalRecords int           `json:"total_records"`
	Charts       []ChartConfig `json:"charts"`
}

// TableData is the raw filtered-table viewer payload. Missing values appear
// as empty cells; the literal string "null" from the source is scrubbed to
// missing on this path only.
type TableData struct {
	Columns   []string   `json:"columns"`
	Rows      [][]string `json:"rows"`
	Total     int        `json:"total"`     // rows matching the filter
	Truncated bool       `json:"truncated"` // true when Rows was capped
}

// FilterOptions tells a frontend how to build its controls: the distinct
// values per categorical field and the observed bounds per numeric field.
type FilterOptions struct {
	Provinces        []string `json:"provinces"`
	Categories       []string `json:"categories"`
	OwnerTypes       []string `json:"owner_types"`
	EngineCategories []string `json:"engine_categories"`
	Countries        []string `json:"countries,omitempty"`

	Engines IntRange    `json:"engines"`
	Years   IntRange    `json:"years"`
	Ages    IntRange    `json:"ages"`
	Weight  *FloatRange `json:"weight,omitempty"`

	WeightEnabled  bool `json:"weight_enabled"`
	CountryEnabled bool `json:"country_enabled"`
}
