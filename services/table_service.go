// services/table_service.go
package services

import (
	"strconv"

	"github.com/canreg/aircraftdash/engine"
	"github.com/canreg/aircraftdash/models"
	"github.com/canreg/aircraftdash/registry"
)

// FilteredTable builds the raw filtered-table viewer payload. This is the
// display/export path: the literal string "null", which the registry source
// uses as a placeholder, is normalized to a missing (empty) cell here, and
// only here. Predicates always see the raw value, so a user can still
// select "null" as a category if the source contains it.
func FilteredTable(ds *registry.Dataset, spec models.FilterSpec, limit int) models.TableData {
	filtered := engine.Apply(ds.Records, spec)

	table := models.TableData{
		Columns: tableColumns(ds.Schema),
		Total:   len(filtered),
	}

	rows := filtered
	if limit > 0 && len(rows) > limit {
		rows = rows[:limit]
		table.Truncated = true
	}

	table.Rows = make([][]string, 0, len(rows))
	for _, rec := range rows {
		table.Rows = append(table.Rows, tableRow(rec, ds.Schema))
	}
	return table
}

func tableColumns(schema registry.ResolvedSchema) []string {
	columns := []string{
		"Mark", "Common Name", "Model Name", "Manufacturer's Name",
		"Aircraft Category", "Engine Category", "Number of Engines",
		"Year of Manufacture/Assembly", "Aircraft Age",
	}
	if schema.WeightEnabled() {
		columns = append(columns, schema.WeightColumn)
	}
	if schema.CountryEnabled() {
		columns = append(columns, schema.CountryColumn)
	}
	columns = append(columns, "Registration Year",
		"Owner Name", "Type of Owner", "City", "Province (English)")
	return columns
}

func tableRow(rec models.Record, schema registry.ResolvedSchema) []string {
	row := []string{
		scrubNull(rec.Mark),
		scrubNull(rec.CommonName),
		scrubNull(rec.ModelName),
		scrubNull(rec.Manufacturer),
		scrubNull(rec.AircraftCategory),
		scrubNull(rec.EngineCategory),
		intCell(rec.NumberOfEngines),
		intCell(rec.YearOfManufacture),
		intCell(rec.AircraftAge),
	}
	if schema.WeightEnabled() {
		row = append(row, floatCell(rec.Weight))
	}
	if schema.CountryEnabled() {
		row = append(row, scrubNull(rec.CountryOfManufacture))
	}
	row = append(row, intCell(rec.RegistrationYear),
		scrubNull(rec.OwnerName),
		scrubNull(rec.TypeOfOwner),
		scrubNull(rec.City),
		scrubNull(rec.Province))
	return row
}

func scrubNull(s string) string {
	if s == "null" {
		return ""
	}
	return s
}

func intCell(v *int) string {
	if v == nil {
		return ""
	}
	return strconv.Itoa(*v)
}

func floatCell(v *float64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}
