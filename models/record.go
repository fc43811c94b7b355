// models/record.go
package models

// OwnerRow represents one row of the carsownr extract (registered owners).
// CSV tags match the Transport Canada column headers exactly.
type OwnerRow struct {
	RegistrationMark string `csv:"Registration Mark"`
	OwnerName        string `csv:"Name"`
	TypeOfOwner      string `csv:"Type of Owner"`
	City             string `csv:"City"`
	Province         string `csv:"Province (English)"`
	Country          string `csv:"Country (English)"`
}

// CurrentRow represents one row of the carscurr extract (current
// registrations). Numeric-looking columns are decoded as strings on purpose:
// the registry contains junk cells ("null", blanks, free text) and coercion
// is the loader's job, so a bad cell can never fail a decode.
//
// Columns outside this fixed set (the weight column and the country of
// manufacture column do not have stable names across registry snapshots) are
// collected into Extra by the parser via the decoder's unused-column indices.
type CurrentRow struct {
	Mark              string `csv:"Mark"`
	CommonName        string `csv:"Common Name"`
	ModelName         string `csv:"Model Name"`
	Manufacturer      string `csv:"Manufacturer's Name"`
	AircraftCategory  string `csv:"Aircraft Category"`
	EngineCategory    string `csv:"Engine Category"`
	NumberOfEngines   string `csv:"Number of Engines"`
	YearOfManufacture string `csv:"Year of Manufacture/Assembly"`
	AircraftAge       string `csv:"Aircraft Age"`
	IssueDate         string `csv:"Issue Date"`
	ModifiedDate      string `csv:"Modified Date"`

	Extra map[string]string `csv:"-"`
}

// Record is one joined registry row: a current registration plus its owner
// fields, with numeric columns coerced. Nil pointers mean the value is
// missing (failed coercion or no owner match); the empty string plays the
// same role for text fields.
type Record struct {
	Mark                 string   `json:"mark"`
	CommonName           string   `json:"common_name"`
	ModelName            string   `json:"model_name"`
	Manufacturer         string   `json:"manufacturer"`
	AircraftCategory     string   `json:"aircraft_category"`
	EngineCategory       string   `json:"engine_category"`
	CountryOfManufacture string   `json:"country_of_manufacture,omitempty"`
	NumberOfEngines      *int     `json:"number_of_engines"`
	YearOfManufacture    *int     `json:"year_of_manufacture"`
	AircraftAge          *int     `json:"aircraft_age"`
	Weight               *float64 `json:"weight,omitempty"`
	RegistrationYear     *int     `json:"registration_year"`

	// Owner-derived fields; all missing when the left join found no owner.
	OwnerName   string `json:"owner_name"`
	TypeOfOwner string `json:"type_of_owner"`
	City        string `json:"city"`
	Province    string `json:"province"`
}
