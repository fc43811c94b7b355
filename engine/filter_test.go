// engine/filter_test.go
package engine

import (
	"testing"

	"github.com/canreg/aircraftdash/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int           { return &v }
func floatPtr(v float64) *float64 { return &v }

// fleet is a small joined table covering the filterable fields.
func fleet() []models.Record {
	return []models.Record{
		{
			Mark: "C-ABCD", CommonName: "Boeing 737", ModelName: "737-200",
			Manufacturer: "Boeing", AircraftCategory: "Aeroplane", EngineCategory: "Turbo Fan",
			CountryOfManufacture: "U.S.A.",
			NumberOfEngines:      intPtr(2), YearOfManufacture: intPtr(1980), AircraftAge: intPtr(45),
			Weight: floatPtr(52000), RegistrationYear: intPtr(1981),
			TypeOfOwner: "Entity", Province: "Ontario",
		},
		{
			Mark: "C-FGHI", CommonName: "Cessna 172", ModelName: "172N",
			Manufacturer: "Cessna", AircraftCategory: "Aeroplane", EngineCategory: "Piston",
			CountryOfManufacture: "U.S.A.",
			NumberOfEngines:      intPtr(1), YearOfManufacture: intPtr(1978), AircraftAge: intPtr(47),
			Weight: floatPtr(1043), RegistrationYear: intPtr(1979),
			TypeOfOwner: "Individual", Province: "Alberta",
		},
		{
			Mark: "C-JKLM", CommonName: "Bell 206", ModelName: "206B",
			Manufacturer: "Bell", AircraftCategory: "Helicopter", EngineCategory: "Turbo Shaft",
			CountryOfManufacture: "Canada",
			NumberOfEngines:      intPtr(1), YearOfManufacture: intPtr(1995), AircraftAge: intPtr(30),
			Weight: floatPtr(1451), RegistrationYear: intPtr(1996),
			TypeOfOwner: "Entity", Province: "Quebec",
		},
		{
			// Incomplete record: every numeric is missing.
			Mark: "C-NOPQ", CommonName: "Lake Buccaneer", ModelName: "LA-4",
			Manufacturer: "Lake", AircraftCategory: "Aeroplane", EngineCategory: "Piston",
			TypeOfOwner: "Individual", Province: "Ontario",
		},
	}
}

// fullSpan mimics the default spec: every range at the observed min/max.
func fullSpan() models.FilterSpec {
	return models.FilterSpec{
		Engines: models.IntRange{Min: 1, Max: 2},
		Years:   models.IntRange{Min: 1978, Max: 1995},
		Ages:    models.IntRange{Min: 30, Max: 47},
	}
}

func marks(records []models.Record) []string {
	out := make([]string, 0, len(records))
	for _, r := range records {
		out = append(out, r.Mark)
	}
	return out
}

func TestApplyIsSubsetAndIdempotent(t *testing.T) {
	records := fleet()
	spec := fullSpan()
	spec.Categories = []string{"Aeroplane"}

	once := Apply(records, spec)
	require.NotEmpty(t, once)
	for _, r := range once {
		assert.Contains(t, marks(records), r.Mark)
	}

	twice := Apply(once, spec)
	assert.Equal(t, once, twice)
}

func TestApplyFullSpanExcludesMissing(t *testing.T) {
	// The default span matches every observed value, yet the record with
	// missing numerics is still excluded. That asymmetry is intentional.
	got := Apply(fleet(), fullSpan())
	assert.Equal(t, []string{"C-ABCD", "C-FGHI", "C-JKLM"}, marks(got))
}

func TestApplyRangeExcludesMissingValue(t *testing.T) {
	records := []models.Record{
		{Mark: "A", AircraftAge: intPtr(5)},
		{Mark: "B"},
		{Mark: "C", AircraftAge: intPtr(20)},
	}
	spec := models.FilterSpec{
		Engines: models.IntRange{Min: 0, Max: 100},
		Years:   models.IntRange{Min: 0, Max: 3000},
		Ages:    models.IntRange{Min: 0, Max: 20},
	}
	// Engines and years are missing everywhere here, so nothing passes the
	// mandatory ranges; restrict the check to the age dimension.
	for i := range records {
		records[i].NumberOfEngines = intPtr(1)
		records[i].YearOfManufacture = intPtr(2000)
	}

	got := Apply(records, spec)
	assert.Equal(t, []string{"A", "C"}, marks(got))
}

func TestApplySetMembership(t *testing.T) {
	records := fleet()

	spec := fullSpan()
	spec.Provinces = []string{"Ontario"}
	assert.Equal(t, []string{"C-ABCD"}, marks(Apply(records, spec)))

	spec = fullSpan()
	spec.OwnerTypes = []string{"Entity"}
	assert.Equal(t, []string{"C-ABCD", "C-JKLM"}, marks(Apply(records, spec)))

	spec = fullSpan()
	spec.EngineCategories = []string{"Piston", "Turbo Shaft"}
	assert.Equal(t, []string{"C-FGHI", "C-JKLM"}, marks(Apply(records, spec)))

	spec = fullSpan()
	spec.Countries = []string{"Canada"}
	assert.Equal(t, []string{"C-JKLM"}, marks(Apply(records, spec)))
}

func TestApplyEmptySelectionMeansNoRestriction(t *testing.T) {
	spec := fullSpan()
	spec.Provinces = []string{}
	spec.Categories = nil

	got := Apply(fleet(), spec)
	assert.Len(t, got, 3) // only the all-missing record drops out
}

func TestApplyWeightRange(t *testing.T) {
	spec := fullSpan()
	spec.Weight = &models.FloatRange{Min: 1000, Max: 2000}

	got := Apply(fleet(), spec)
	assert.Equal(t, []string{"C-FGHI", "C-JKLM"}, marks(got))
}

func TestApplySearchIsCaseInsensitive(t *testing.T) {
	for _, query := range []string{"boe", "BOE", "Boe"} {
		spec := fullSpan()
		spec.Search = query
		got := Apply(fleet(), spec)
		assert.Equal(t, []string{"C-ABCD"}, marks(got), "query %q", query)
	}
}

func TestApplySearchMatchesModelName(t *testing.T) {
	spec := fullSpan()
	spec.Search = "172n"
	assert.Equal(t, []string{"C-FGHI"}, marks(Apply(fleet(), spec)))
}

func TestApplySearchMissingFieldsNeverMatch(t *testing.T) {
	records := []models.Record{{
		Mark:            "X",
		NumberOfEngines: intPtr(1), YearOfManufacture: intPtr(2000), AircraftAge: intPtr(1),
	}}
	spec := models.FilterSpec{
		Engines: models.IntRange{Min: 1, Max: 1},
		Years:   models.IntRange{Min: 2000, Max: 2000},
		Ages:    models.IntRange{Min: 1, Max: 1},
		Search:  "anything",
	}
	assert.Empty(t, Apply(records, spec))
}

func TestApplyEmptyInput(t *testing.T) {
	got := Apply(nil, fullSpan())
	assert.NotNil(t, got)
	assert.Empty(t, got)
}
