// services/filter_service.go
package services

import (
	"github.com/canreg/aircraftdash/models"
	"github.com/canreg/aircraftdash/registry"
)

// DefaultFilterSpec is the spec a fresh session starts from: no categorical
// selections, no search, and every range at the observed min/max of the
// loaded dataset. Note that even this "show everything" spec excludes
// records with missing numeric values; users cannot distinguish "filter
// not applied" from "filter applied at full span", and both behave the
// same. That policy is intentional and carried over from the dashboard this
// backend replaces.
func DefaultFilterSpec(ds *registry.Dataset) models.FilterSpec {
	spec := models.FilterSpec{
		Engines: ds.Bounds.Engines,
		Years:   ds.Bounds.Years,
		Ages:    ds.Bounds.Ages,
	}
	if ds.Bounds.Weight != nil {
		w := *ds.Bounds.Weight
		spec.Weight = &w
	}
	return spec
}

// SpecFromRequest turns an API request into a full FilterSpec, filling any
// bound the client left unset from the observed defaults. Weight and
// country criteria are ignored outright when the loader did not detect
// their columns.
func SpecFromRequest(ds *registry.Dataset, req models.DashboardRequest) models.FilterSpec {
	spec := DefaultFilterSpec(ds)

	spec.Provinces = req.Provinces
	spec.Categories = req.Categories
	spec.OwnerTypes = req.OwnerTypes
	spec.EngineCategories = req.EngineCategories
	spec.Search = req.Search

	if ds.Schema.CountryEnabled() {
		spec.Countries = req.Countries
	}

	if req.MinEngines != nil {
		spec.Engines.Min = *req.MinEngines
	}
	if req.MaxEngines != nil {
		spec.Engines.Max = *req.MaxEngines
	}
	if req.MinYear != nil {
		spec.Years.Min = *req.MinYear
	}
	if req.MaxYear != nil {
		spec.Years.Max = *req.MaxYear
	}
	if req.MinAge != nil {
		spec.Ages.Min = *req.MinAge
	}
	if req.MaxAge != nil {
		spec.Ages.Max = *req.MaxAge
	}
	if spec.Weight != nil {
		if req.MinWeight != nil {
			spec.Weight.Min = *req.MinWeight
		}
		if req.MaxWeight != nil {
			spec.Weight.Max = *req.MaxWeight
		}
	}

	return spec
}

// Options reports what the frontend needs to build its filter controls.
// The province list is the fixed enumeration, not the observed values.
func Options(ds *registry.Dataset) models.FilterOptions {
	opts := models.FilterOptions{
		Provinces:        registry.CanadaProvinces,
		Categories:       ds.Categories,
		OwnerTypes:       ds.OwnerTypes,
		EngineCategories: ds.EngineCategories,
		Countries:        ds.Countries,

		Engines: ds.Bounds.Engines,
		Years:   ds.Bounds.Years,
		Ages:    ds.Bounds.Ages,

		WeightEnabled:  ds.Schema.WeightEnabled(),
		CountryEnabled: ds.Schema.CountryEnabled(),
	}
	if ds.Bounds.Weight != nil {
		w := *ds.Bounds.Weight
		opts.Weight = &w
	}
	return opts
}
