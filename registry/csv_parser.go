// registry/csv_parser.go
package registry

import (
	"encoding/csv"
	"fmt"
	"io"
	"log"

	"github.com/canreg/aircraftdash/models"
	"github.com/jszwec/csvutil"
)

// ParseOwnersCSV decodes the carsownr extract. csvutil maps the header row
// onto the csv tags of models.OwnerRow; the join key column must be present
// or the whole load is refused (there is no degraded mode without it).
func ParseOwnersCSV(reader io.Reader) ([]models.OwnerRow, error) {
	decoder, err := csvutil.NewDecoder(newLenientReader(reader))
	if err != nil {
		return nil, fmt.Errorf("failed to create CSV decoder for owner records: %w", err)
	}

	if !hasHeader(decoder.Header(), "Registration Mark") {
		return nil, fmt.Errorf("owner records are missing the join key column %q", "Registration Mark")
	}

	var rows []models.OwnerRow
	for {
		var row models.OwnerRow
		err := decoder.Decode(&row)
		if err == io.EOF {
			break
		}
		if err != nil {
			// Cell-level damage degrades to a skipped row, never a failed load.
			log.Printf("Registry: Skipping malformed owner row: %v", err)
			continue
		}
		rows = append(rows, row)
	}

	log.Printf("Registry: Parsed %d owner records from CSV", len(rows))
	return rows, nil
}

// ParseCurrentCSV decodes the carscurr extract. Columns outside the fixed
// tag set of models.CurrentRow (the weight and country-of-manufacture
// columns have no stable names) are collected into each row's Extra map via
// the decoder's unused-column indices. The header is returned for schema
// detection.
func ParseCurrentCSV(reader io.Reader) ([]models.CurrentRow, []string, error) {
	decoder, err := csvutil.NewDecoder(newLenientReader(reader))
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create CSV decoder for current registrations: %w", err)
	}

	header := decoder.Header()
	if !hasHeader(header, "Mark") {
		return nil, nil, fmt.Errorf("current registrations are missing the join key column %q", "Mark")
	}

	var rows []models.CurrentRow
	for {
		var row models.CurrentRow
		err := decoder.Decode(&row)
		if err == io.EOF {
			break
		}
		if err != nil {
			log.Printf("Registry: Skipping malformed registration row: %v", err)
			continue
		}

		if unused := decoder.Unused(); len(unused) > 0 {
			record := decoder.Record()
			row.Extra = make(map[string]string, len(unused))
			for _, i := range unused {
				row.Extra[header[i]] = record[i]
			}
		}
		rows = append(rows, row)
	}

	log.Printf("Registry: Parsed %d current registrations from CSV", len(rows))
	return rows, header, nil
}

// newLenientReader builds a csv.Reader that tolerates ragged rows and stray
// quotes, which both occur in real registry extracts.
func newLenientReader(r io.Reader) *csv.Reader {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true
	return cr
}

func hasHeader(header []string, name string) bool {
	for _, h := range header {
		if h == name {
			return true
		}
	}
	return false
}
