// registry/loader.go
package registry

import (
	"fmt"
	"io"
	"log"
	"os"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/canreg/aircraftdash/models"
)

// Bounds holds the observed min/max per numeric field, computed over
// non-missing values of the loaded dataset. They are the default spans for
// the mandatory range filters.
type Bounds struct {
	Engines models.IntRange
	Years   models.IntRange
	Ages    models.IntRange
	Weight  *models.FloatRange // nil when no weight column was detected
}

// Dataset is the loader's immutable product: the joined, coerced,
// province-restricted table plus everything later stages need resolved up
// front (schema, bounds, distinct values for filter controls). Nothing
// mutates a Dataset after Load returns it.
type Dataset struct {
	Records []models.Record
	Schema  ResolvedSchema
	Bounds  Bounds

	Categories       []string
	OwnerTypes       []string
	EngineCategories []string
	Countries        []string
}

// Load reads both source tables from disk and builds the Dataset. An
// unreadable source is fatal: the dashboard never serves a partial dataset.
func Load(ownersPath, currentPath string) (*Dataset, error) {
	ownersFile, err := os.Open(ownersPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open owner records %s: %w", ownersPath, err)
	}
	defer ownersFile.Close()

	currentFile, err := os.Open(currentPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open current registrations %s: %w", currentPath, err)
	}
	defer currentFile.Close()

	return LoadFromReaders(ownersFile, currentFile)
}

// LoadFromReaders performs the full load pipeline: parse both tables, detect
// the flexible schema, left-outer join current registrations onto owners,
// coerce numerics, derive the registration year, and restrict to the 13
// Canadian provinces and territories.
func LoadFromReaders(owners, current io.Reader) (*Dataset, error) {
	ownerRows, err := ParseOwnersCSV(owners)
	if err != nil {
		return nil, fmt.Errorf("loading owner records: %w", err)
	}

	currentRows, header, err := ParseCurrentCSV(current)
	if err != nil {
		return nil, fmt.Errorf("loading current registrations: %w", err)
	}

	schema := DetectSchema(header)
	log.Printf("Registry: Resolved schema: weight column: %q, country column: %q, date column: %q",
		schema.WeightColumn, schema.CountryColumn, schema.DateColumn)

	joined := joinRecords(currentRows, ownerRows, schema)

	records := make([]models.Record, 0, len(joined))
	for _, rec := range joined {
		if !IsCanadianProvince(rec.Province) {
			continue
		}
		records = append(records, rec)
	}
	ds := &Dataset{
		Records: records,
		Schema:  schema,
	}
	ds.Bounds = computeBounds(records, schema.WeightEnabled())
	ds.Categories = distinct(records, func(r models.Record) string { return r.AircraftCategory })
	ds.OwnerTypes = distinct(records, func(r models.Record) string { return r.TypeOfOwner })
	ds.EngineCategories = distinct(records, func(r models.Record) string { return r.EngineCategory })
	if schema.CountryEnabled() {
		ds.Countries = distinct(records, func(r models.Record) string { return r.CountryOfManufacture })
	}

	log.Printf("Registry: Loaded %d registry records (from %d current registrations, %d owner records)",
		len(records), len(currentRows), len(ownerRows))
	return ds, nil
}

// joinRecords left-outer joins current registrations onto owners by mark and
// coerces the numeric columns. Every current registration survives; owner
// fields stay missing when there is no matching owner record. The province
// restriction is the caller's job.
func joinRecords(currentRows []models.CurrentRow, ownerRows []models.OwnerRow, schema ResolvedSchema) []models.Record {
	// First occurrence wins when the owner extract repeats a mark.
	ownersByMark := make(map[string]models.OwnerRow, len(ownerRows))
	for _, o := range ownerRows {
		if _, seen := ownersByMark[o.RegistrationMark]; !seen {
			ownersByMark[o.RegistrationMark] = o
		}
	}

	records := make([]models.Record, 0, len(currentRows))
	for _, c := range currentRows {
		rec := models.Record{
			Mark:              c.Mark,
			CommonName:        c.CommonName,
			ModelName:         c.ModelName,
			Manufacturer:      c.Manufacturer,
			AircraftCategory:  c.AircraftCategory,
			EngineCategory:    c.EngineCategory,
			NumberOfEngines:   coerceInt(c.NumberOfEngines),
			YearOfManufacture: coerceInt(c.YearOfManufacture),
			AircraftAge:       coerceInt(c.AircraftAge),
		}

		if schema.WeightEnabled() {
			rec.Weight = coerceFloat(c.Extra[schema.WeightColumn])
		}
		if schema.CountryEnabled() {
			rec.CountryOfManufacture = c.Extra[schema.CountryColumn]
		}

		switch schema.DateColumn {
		case "Issue Date":
			rec.RegistrationYear = parseYear(c.IssueDate)
		case "Modified Date":
			rec.RegistrationYear = parseYear(c.ModifiedDate)
		}

		if o, ok := ownersByMark[c.Mark]; ok {
			rec.OwnerName = o.OwnerName
			rec.TypeOfOwner = o.TypeOfOwner
			rec.City = o.City
			rec.Province = o.Province
		}

		records = append(records, rec)
	}
	return records
}

// ----------------------------------------------------------------------------
// Process-lifetime cache. Populated exactly once by Init; never invalidated,
// never mutated. Get panics when called before a successful Init so misuse
// surfaces at startup, not deep in a request.
// ----------------------------------------------------------------------------

var (
	loadOnce sync.Once
	dataset  *Dataset
	loadErr  error
)

// Init loads the dataset into the process-wide cache. Safe to call more than
// once; only the first call does work.
func Init(ownersPath, currentPath string) error {
	loadOnce.Do(func() {
		dataset, loadErr = Load(ownersPath, currentPath)
	})
	return loadErr
}

// Get returns the cached dataset.
func Get() *Dataset {
	if dataset == nil {
		panic("registry: Get called before a successful Init")
	}
	return dataset
}

// ----------------------------------------------------------------------------
// Coercion helpers. Permissive by policy: any cell that fails to parse
// becomes missing (nil), it never fails the load.
// ----------------------------------------------------------------------------

func coerceFloat(s string) *float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	s = strings.ReplaceAll(s, ",", "")
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	return &f
}

// coerceInt feeds the count-natured columns (engines, years, ages), which
// are whole numbers in every registry snapshot. A fractional cell still
// parses; it truncates toward zero rather than degrading to missing.
func coerceInt(s string) *int {
	f := coerceFloat(s)
	if f == nil {
		return nil
	}
	n := int(*f)
	return &n
}

// Date layouts seen across registry snapshots.
var dateLayouts = []string{
	"2006-01-02",
	"2006/01/02",
	"01/02/2006",
	"2006-01-02 15:04:05",
}

func parseYear(s string) *int {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			y := t.Year()
			return &y
		}
	}
	return nil
}

func computeBounds(records []models.Record, weightEnabled bool) Bounds {
	var b Bounds
	b.Engines = intBounds(records, func(r models.Record) *int { return r.NumberOfEngines })
	b.Years = intBounds(records, func(r models.Record) *int { return r.YearOfManufacture })
	b.Ages = intBounds(records, func(r models.Record) *int { return r.AircraftAge })
	if weightEnabled {
		w := floatBounds(records, func(r models.Record) *float64 { return r.Weight })
		b.Weight = &w
	}
	return b
}

func intBounds(records []models.Record, get func(models.Record) *int) models.IntRange {
	var r models.IntRange
	found := false
	for _, rec := range records {
		v := get(rec)
		if v == nil {
			continue
		}
		if !found || *v < r.Min {
			r.Min = *v
		}
		if !found || *v > r.Max {
			r.Max = *v
		}
		found = true
	}
	return r
}

func floatBounds(records []models.Record, get func(models.Record) *float64) models.FloatRange {
	var r models.FloatRange
	found := false
	for _, rec := range records {
		v := get(rec)
		if v == nil {
			continue
		}
		if !found || *v < r.Min {
			r.Min = *v
		}
		if !found || *v > r.Max {
			r.Max = *v
		}
		found = true
	}
	return r
}

// distinct returns the sorted unique non-missing values of a field.
func distinct(records []models.Record, get func(models.Record) string) []string {
	seen := make(map[string]bool)
	var values []string
	for _, rec := range records {
		v := get(rec)
		if v == "" || seen[v] {
			continue
		}
		seen[v] = true
		values = append(values, v)
	}
	sort.Strings(values)
	return values
}
