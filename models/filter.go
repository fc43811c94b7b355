// models/filter.go
package models

// IntRange is an inclusive [Min, Max] filter bound.
type IntRange struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// Contains reports whether v lies inside the range. A missing value (nil)
// never satisfies a range filter, even when the range spans every observed
// value: users cannot tell "no filter" apart from "filter at full span",
// and both exclude missing. That mirrors the registry dashboard this
// backend replaces.
func (r IntRange) Contains(v *int) bool {
	return v != nil && *v >= r.Min && *v <= r.Max
}

// FloatRange is the float counterpart of IntRange, used for the weight
// column.
type FloatRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

func (r FloatRange) Contains(v *float64) bool {
	return v != nil && *v >= r.Min && *v <= r.Max
}

// FilterSpec is the full set of user-selected filter criteria at one point
// in time. It is a value type: handlers build a fresh one per request and
// nothing mutates it afterwards.
//
// Selection slices are OR within a field and AND across fields; an empty
// slice means "no restriction". The three integer ranges are always present
// (their defaults are the observed min/max of the loaded dataset). Weight is
// optional because the weight column itself is optional in the source.
type FilterSpec struct {
	Provinces        []string `json:"provinces"`
	Categories       []string `json:"categories"`
	OwnerTypes       []string `json:"owner_types"`
	EngineCategories []string `json:"engine_categories"`
	Countries        []string `json:"countries"`

	Engines IntRange    `json:"engines"`
	Years   IntRange    `json:"years"`
	Ages    IntRange    `json:"ages"`
	Weight  *FloatRange `json:"weight,omitempty"`

	// Search is a case-insensitive substring matched against the common
	// name or the model name. Empty means no search filter.
	Search string `json:"search"`
}
