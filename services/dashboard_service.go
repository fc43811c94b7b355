// services/dashboard_service.go
package services

import (
	"fmt"
	"log"
	"strconv"

	"github.com/canreg/aircraftdash/config"
	"github.com/canreg/aircraftdash/engine"
	"github.com/canreg/aircraftdash/models"
	"github.com/canreg/aircraftdash/registry"
)

const donutHole = 0.45

// BuildDashboard runs one full recomputation pass: filter the base table,
// then build every enabled chart from the aggregators. Charts with nothing
// to show are omitted from the response; a zero-record result is a valid
// dashboard with no charts, not an error.
func BuildDashboard(ds *registry.Dataset, spec models.FilterSpec) models.DashboardResponse {
	filtered := engine.Apply(ds.Records, spec)
	log.Printf("Service: Dashboard pass: %d of %d records match the filter", len(filtered), len(ds.Records))

	resp := models.DashboardResponse{
		TotalRecords: len(filtered),
		Charts:       []models.ChartConfig{},
	}
	if len(filtered) == 0 {
		return resp
	}

	charts := config.AppConfig.Charts
	topN := config.AppConfig.Dashboard.TopN
	bins := config.AppConfig.Dashboard.HistogramBins

	if charts.TopManufacturers {
		summary := engine.TopNByField(filtered, "Manufacturer", engine.ManufacturerField, topN)
		appendChart(&resp, barChart("top_manufacturers", fmt.Sprintf("Top %d Manufacturers", topN), "Manufacturer", summary))
	}
	if charts.TopModels {
		summary := engine.TopNByField(filtered, "Model", engine.ModelNameField, topN)
		appendChart(&resp, barChart("top_models", fmt.Sprintf("Top %d Models", topN), "Model", summary))
	}
	if charts.CategoryDistribution {
		summary := engine.Distribution(filtered, "Aircraft Category", engine.CategoryField)
		appendChart(&resp, donutChart("category_distribution", "Aircraft Category Share", summary))
	}
	if charts.OwnerTypeShare {
		summary := engine.Distribution(filtered, "Type of Owner", engine.OwnerTypeField)
		appendChart(&resp, donutChart("owner_type_share", "Entity vs Individual", summary))
	}
	if charts.AgeHistogram {
		histogram := engine.Histogram(filtered, engine.AircraftAgeField, bins)
		appendChart(&resp, histogramChart("age_histogram", "Aircraft Age Histogram", "Aircraft Age", histogram))
	}
	if charts.ProvinceCounts {
		summary := engine.Distribution(filtered, "Province", engine.ProvinceField)
		appendChart(&resp, barChart("province_counts", "Aircraft Count by Province", "Province", summary))
	}
	if charts.RegistrationsPerYear {
		points := engine.GroupCountByYear(filtered, engine.RegistrationYearField)
		appendChart(&resp, lineChart("registrations_per_year", "New Registrations by Year", points))
	}
	if charts.OwnershipTrend {
		series := engine.GroupCountByYearAnd(filtered, engine.RegistrationYearField, engine.OwnerTypeField)
		appendChart(&resp, trendChart("ownership_trend", "Entity vs Individual Over Time", series))
	}

	return resp
}

func appendChart(resp *models.DashboardResponse, chart *models.ChartConfig) {
	if chart != nil {
		resp.Charts = append(resp.Charts, *chart)
	}
}

// ----------------------------------------------------------------------------
// Chart builders: SummaryTable and friends in, render-ready ChartConfig out.
// Each returns nil for an empty summary so the chart is simply not shown.
// ----------------------------------------------------------------------------

func barChart(key, title, xAxis string, summary models.SummaryTable) *models.ChartConfig {
	if len(summary.Rows) == 0 {
		return nil
	}
	points := make([]models.ChartPoint, 0, len(summary.Rows))
	for _, row := range summary.Rows {
		points = append(points, models.ChartPoint{Label: row.Value, Value: float64(row.Count)})
	}
	return &models.ChartConfig{
		Key:        key,
		ChartType:  "bar",
		Title:      title,
		XAxis:      xAxis,
		YAxis:      "Count",
		Series:     []models.ChartSeries{{Name: "Count", Data: points}},
		ShowLabels: true,
	}
}

func donutChart(key, title string, summary models.SummaryTable) *models.ChartConfig {
	if len(summary.Rows) == 0 {
		return nil
	}
	points := make([]models.ChartPoint, 0, len(summary.Rows))
	for _, row := range summary.Rows {
		points = append(points, models.ChartPoint{Label: row.Value, Value: float64(row.Count)})
	}
	return &models.ChartConfig{
		Key:         key,
		ChartType:   "pie",
		Title:       title,
		Series:      []models.ChartSeries{{Name: summary.Field, Data: points}},
		Hole:        donutHole,
		CenterLabel: strconv.Itoa(summary.Total),
		ShowLegend:  true,
	}
}

func histogramChart(key, title, xAxis string, bins []models.HistogramBin) *models.ChartConfig {
	if len(bins) == 0 {
		return nil
	}
	points := make([]models.ChartPoint, 0, len(bins))
	for _, bin := range bins {
		points = append(points, models.ChartPoint{
			Label: fmt.Sprintf("%s to %s", trimFloat(bin.Low), trimFloat(bin.High)),
			Value: float64(bin.Count),
		})
	}
	return &models.ChartConfig{
		Key:       key,
		ChartType: "histogram",
		Title:     title,
		XAxis:     xAxis,
		YAxis:     "Count",
		Series:    []models.ChartSeries{{Name: "Count", Data: points}},
	}
}

func lineChart(key, title string, points []models.YearCount) *models.ChartConfig {
	if len(points) == 0 {
		return nil
	}
	data := make([]models.ChartPoint, 0, len(points))
	for _, p := range points {
		data = append(data, models.ChartPoint{Label: strconv.Itoa(p.Year), Value: float64(p.Count)})
	}
	return &models.ChartConfig{
		Key:       key,
		ChartType: "line",
		Title:     title,
		XAxis:     "Year",
		YAxis:     "Count",
		Series:    []models.ChartSeries{{Name: "Count", Data: data}},
		Markers:   true,
	}
}

func trendChart(key, title string, series []models.TrendSeries) *models.ChartConfig {
	if len(series) == 0 {
		return nil
	}
	chartSeries := make([]models.ChartSeries, 0, len(series))
	for _, s := range series {
		data := make([]models.ChartPoint, 0, len(s.Points))
		for _, p := range s.Points {
			data = append(data, models.ChartPoint{Label: strconv.Itoa(p.Year), Value: float64(p.Count)})
		}
		chartSeries = append(chartSeries, models.ChartSeries{Name: s.Name, Data: data})
	}
	return &models.ChartConfig{
		Key:        key,
		ChartType:  "line",
		Title:      title,
		XAxis:      "Year",
		YAxis:      "Count",
		Series:     chartSeries,
		ShowLegend: true,
		Markers:    true,
	}
}

func trimFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', 4, 64)
}
