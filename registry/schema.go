// registry/schema.go
package registry

import "strings"

// CanadaProvinces is the closed enumeration of the 13 Canadian provinces and
// territories. Only records registered in one of these is ever served.
var CanadaProvinces = []string{
	"British Columbia", "Alberta", "Saskatchewan", "Manitoba", "Ontario", "Quebec",
	"New Brunswick", "Nova Scotia", "Prince Edward Island", "Newfoundland and Labrador",
	"Yukon", "Northwest Territories", "Nunavut",
}

var provinceSet = func() map[string]bool {
	m := make(map[string]bool, len(CanadaProvinces))
	for _, p := range CanadaProvinces {
		m[p] = true
	}
	return m
}()

// IsCanadianProvince reports membership in the fixed enumeration.
func IsCanadianProvince(p string) bool {
	return provinceSet[p]
}

// ResolvedSchema is the result of the one-shot column sniffing pass over the
// joined table's headers. Registry snapshots do not use stable names for the
// weight and country-of-manufacture columns, so they are detected by
// substring; the registration date column varies between "Issue Date" and
// "Modified Date". An empty column name disables the dependent feature
// system-wide (weight filtering, country filtering, per-year charts).
type ResolvedSchema struct {
	WeightColumn  string
	CountryColumn string
	DateColumn    string
}

func (s ResolvedSchema) WeightEnabled() bool  { return s.WeightColumn != "" }
func (s ResolvedSchema) CountryEnabled() bool { return s.CountryColumn != "" }

// DetectSchema resolves the flexible columns from the current-registration
// headers. Executed once at load time; nothing scans column names after
// this.
func DetectSchema(headers []string) ResolvedSchema {
	var s ResolvedSchema
	for _, h := range headers {
		lower := strings.ToLower(h)
		if s.WeightColumn == "" && strings.Contains(lower, "weight") {
			s.WeightColumn = h
		}
		if s.CountryColumn == "" && strings.Contains(lower, "country") && strings.Contains(lower, "manufact") {
			s.CountryColumn = h
		}
	}
	for _, h := range headers {
		if h == "Issue Date" {
			s.DateColumn = h
			break
		}
	}
	if s.DateColumn == "" {
		for _, h := range headers {
			if h == "Modified Date" {
				s.DateColumn = h
				break
			}
		}
	}
	return s
}
