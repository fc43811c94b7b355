// engine/aggregate.go
package engine

import (
	"sort"

	"github.com/canreg/aircraftdash/models"
)

// Aggregators are total functions of their input: an empty table produces a
// well-formed empty summary, never an error. Field access goes through
// accessor functions in the style of a domain adapter; ok=false marks a
// missing value, and missing values are dropped before grouping.

// StringAccessor extracts a categorical field from a record.
type StringAccessor func(models.Record) (string, bool)

// NumericAccessor extracts a numeric field from a record.
type NumericAccessor func(models.Record) (float64, bool)

// YearAccessor extracts a derived year from a record.
type YearAccessor func(models.Record) (int, bool)

// Distribution counts every distinct value of a field and reports the grand
// total of contributing records. Pairs come out in count-descending order,
// ties broken by first appearance.
func Distribution(records []models.Record, field string, get StringAccessor) models.SummaryTable {
	counts, order := countValues(records, get)

	summary := models.SummaryTable{Field: field, Total: len(records)}
	summary.Rows = make([]models.ValueCount, 0, len(order))
	for _, v := range order {
		summary.Rows = append(summary.Rows, models.ValueCount{Value: v, Count: counts[v]})
	}
	sortByCountDesc(summary.Rows)
	return summary
}

// TopNByField returns the n most frequent values of a field as (value,
// count) pairs, count-descending with first-encountered order breaking ties.
func TopNByField(records []models.Record, field string, get StringAccessor, n int) models.SummaryTable {
	summary := Distribution(records, field, get)
	if n > 0 && len(summary.Rows) > n {
		summary.Rows = summary.Rows[:n]
	}
	return summary
}

// Histogram partitions the observed range of a numeric field into binCount
// equal-width bins and counts non-missing values per bin. The maximum lands
// in the last bin; a degenerate range (min == max) collapses to one bin.
func Histogram(records []models.Record, get NumericAccessor, binCount int) []models.HistogramBin {
	var values []float64
	for _, rec := range records {
		if v, ok := get(rec); ok {
			values = append(values, v)
		}
	}
	if len(values) == 0 || binCount <= 0 {
		return []models.HistogramBin{}
	}

	lo, hi := values[0], values[0]
	for _, v := range values[1:] {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}

	if lo == hi {
		return []models.HistogramBin{{Low: lo, High: hi, Count: len(values)}}
	}

	width := (hi - lo) / float64(binCount)
	bins := make([]models.HistogramBin, binCount)
	for i := range bins {
		bins[i].Low = lo + float64(i)*width
		bins[i].High = lo + float64(i+1)*width
	}
	bins[binCount-1].High = hi

	for _, v := range values {
		i := int((v - lo) / width)
		if i >= binCount {
			i = binCount - 1
		}
		bins[i].Count++
	}
	return bins
}

// GroupCountByYear drops records with a missing year, groups by year, and
// returns (year, count) pairs in ascending year order.
func GroupCountByYear(records []models.Record, get YearAccessor) []models.YearCount {
	counts := make(map[int]int)
	for _, rec := range records {
		if y, ok := get(rec); ok {
			counts[y]++
		}
	}

	years := make([]int, 0, len(counts))
	for y := range counts {
		years = append(years, y)
	}
	sort.Ints(years)

	out := make([]models.YearCount, 0, len(years))
	for _, y := range years {
		out = append(out, models.YearCount{Year: y, Count: counts[y]})
	}
	return out
}

// GroupCountByYearAnd groups by (year, secondary field) and returns one
// series per distinct secondary value, each with years ascending. Records
// missing either field are dropped.
func GroupCountByYearAnd(records []models.Record, getYear YearAccessor, getSeries StringAccessor) []models.TrendSeries {
	type key struct {
		year   int
		series string
	}
	counts := make(map[key]int)
	var seriesOrder []string
	seen := make(map[string]bool)

	for _, rec := range records {
		y, ok := getYear(rec)
		if !ok {
			continue
		}
		s, ok := getSeries(rec)
		if !ok {
			continue
		}
		if !seen[s] {
			seen[s] = true
			seriesOrder = append(seriesOrder, s)
		}
		counts[key{y, s}]++
	}

	out := make([]models.TrendSeries, 0, len(seriesOrder))
	for _, name := range seriesOrder {
		var years []int
		for k := range counts {
			if k.series == name {
				years = append(years, k.year)
			}
		}
		sort.Ints(years)

		series := models.TrendSeries{Name: name}
		for _, y := range years {
			series.Points = append(series.Points, models.YearCount{Year: y, Count: counts[key{y, name}]})
		}
		out = append(out, series)
	}
	return out
}

// countValues tallies non-missing values preserving first-encountered order.
func countValues(records []models.Record, get StringAccessor) (map[string]int, []string) {
	counts := make(map[string]int)
	var order []string
	for _, rec := range records {
		v, ok := get(rec)
		if !ok {
			continue
		}
		if _, seen := counts[v]; !seen {
			order = append(order, v)
		}
		counts[v]++
	}
	return counts, order
}

// sortByCountDesc is a stable count-descending sort so that ties keep their
// first-encountered order.
func sortByCountDesc(rows []models.ValueCount) {
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Count > rows[j].Count
	})
}
