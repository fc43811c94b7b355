// engine/filter.go
package engine

import (
	"strings"

	"github.com/canreg/aircraftdash/models"
)

// Apply evaluates a FilterSpec over the base table and returns the matching
// records in their original order. Filters AND together: categorical
// set-membership first (a filter with an empty selection is skipped
// entirely), then the three mandatory inclusive ranges, then the optional
// weight range, then the free-text search. The result is always a subset of
// the input and Apply is idempotent, so derived tables can be recomputed
// from the base table on every interaction.
func Apply(records []models.Record, spec models.FilterSpec) []models.Record {
	provinces := toSet(spec.Provinces)
	categories := toSet(spec.Categories)
	ownerTypes := toSet(spec.OwnerTypes)
	engineCats := toSet(spec.EngineCategories)
	countries := toSet(spec.Countries)
	search := strings.ToLower(strings.TrimSpace(spec.Search))

	out := make([]models.Record, 0, len(records))
	for _, rec := range records {
		if !inSet(provinces, rec.Province) {
			continue
		}
		if !inSet(categories, rec.AircraftCategory) {
			continue
		}
		if !inSet(ownerTypes, rec.TypeOfOwner) {
			continue
		}
		if !inSet(engineCats, rec.EngineCategory) {
			continue
		}
		if !inSet(countries, rec.CountryOfManufacture) {
			continue
		}

		// The ranges are always active; their default span is the observed
		// min/max, which still excludes missing values.
		if !spec.Engines.Contains(rec.NumberOfEngines) {
			continue
		}
		if !spec.Years.Contains(rec.YearOfManufacture) {
			continue
		}
		if !spec.Ages.Contains(rec.AircraftAge) {
			continue
		}
		if spec.Weight != nil && !spec.Weight.Contains(rec.Weight) {
			continue
		}

		if search != "" && !matchesSearch(rec, search) {
			continue
		}

		out = append(out, rec)
	}
	return out
}

// matchesSearch reports whether the lowercased query is a substring of the
// common name or the model name. Missing fields never match.
func matchesSearch(rec models.Record, query string) bool {
	if rec.CommonName != "" && strings.Contains(strings.ToLower(rec.CommonName), query) {
		return true
	}
	if rec.ModelName != "" && strings.Contains(strings.ToLower(rec.ModelName), query) {
		return true
	}
	return false
}

// toSet builds a membership set; nil for an empty selection so the filter
// can be skipped.
func toSet(values []string) map[string]bool {
	if len(values) == 0 {
		return nil
	}
	set := make(map[string]bool, len(values))
	for _, v := range values {
		set[v] = true
	}
	return set
}

// inSet is vacuously true when the filter is inactive.
func inSet(set map[string]bool, value string) bool {
	return set == nil || set[value]
}
