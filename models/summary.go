// models/summary.go
package models

// ValueCount is one (value, count) pair of an aggregation result.
type ValueCount struct {
	Value string `json:"value"`
	Count int    `json:"count"`
}

// SummaryTable is an aggregated result consumed by a chart: the pairs plus
// the grand total of records that fed the aggregation. An empty Rows slice
// is a valid result, not an error.
type SummaryTable struct {
	Field string       `json:"field"`
	Rows  []ValueCount `json:"rows"`
	Total int          `json:"total"`
}

// HistogramBin is one equal-width bin of a numeric distribution.
// Low is inclusive; High is exclusive except for the last bin.
type HistogramBin struct {
	Low   float64 `json:"low"`
	High  float64 `json:"high"`
	Count int     `json:"count"`
}

// YearCount is one point of a per-year grouping, ordered ascending by year.
type YearCount struct {
	Year  int `json:"year"`
	Count int `json:"count"`
}

// TrendSeries is one line of a multi-series per-year grouping, keyed by the
// secondary field value (e.g. type of owner).
type TrendSeries struct {
	Name   string      `json:"name"`
	Points []YearCount `json:"points"`
}
