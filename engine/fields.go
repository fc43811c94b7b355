// engine/fields.go
package engine

import "github.com/canreg/aircraftdash/models"

// Standard field accessors, registered once here so aggregations across the
// codebase agree on what "missing" means per field. Some registry snapshots
// carry the literal string "null" in text cells; aggregations treat it as
// missing just like an empty cell, while filter predicates keep seeing the
// raw value.

func stringField(get func(models.Record) string) StringAccessor {
	return func(r models.Record) (string, bool) {
		v := get(r)
		if v == "" || v == "null" {
			return "", false
		}
		return v, true
	}
}

var (
	ManufacturerField = stringField(func(r models.Record) string { return r.Manufacturer })
	ModelNameField    = stringField(func(r models.Record) string { return r.ModelName })
	CategoryField     = stringField(func(r models.Record) string { return r.AircraftCategory })
	OwnerTypeField    = stringField(func(r models.Record) string { return r.TypeOfOwner })
	ProvinceField     = stringField(func(r models.Record) string { return r.Province })
)

// AircraftAgeField is numeric for histogram purposes.
func AircraftAgeField(r models.Record) (float64, bool) {
	if r.AircraftAge == nil {
		return 0, false
	}
	return float64(*r.AircraftAge), true
}

// RegistrationYearField feeds the per-year groupings.
func RegistrationYearField(r models.Record) (int, bool) {
	if r.RegistrationYear == nil {
		return 0, false
	}
	return *r.RegistrationYear, true
}
