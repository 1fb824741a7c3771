// Package filter selects and orders the features an export processes.
package filter

import (
	"slices"
	"strings"

	"zctadb/pkg/domain"
)

// Filter selects features and returns them sorted ascending by ZIP string.
// The returned order is the processing order of an export.
type Filter interface {
	Apply(features domain.FeatureCollection) domain.FeatureCollection
	// Name describes the selection for display.
	Name() string
}

// New builds the filter for an optional region code. An unknown code fails
// with serrors.ErrInvalidRegion before any data is touched.
func New(region string, validOnly bool) (Filter, error) {
	var f Filter = All()
	if region != "" {
		r, err := Lookup(region)
		if err != nil {
			return nil, err
		}
		f = ForRegion(r)
	}
	if validOnly {
		f = ValidOnly(f)
	}

	return f, nil
}

type all struct{}

// All keeps every feature.
func All() Filter { return all{} }

func (all) Apply(features domain.FeatureCollection) domain.FeatureCollection {
	return sorted(slices.Clone(features))
}

func (all) Name() string { return "all" }

type ranges struct {
	name   string
	ranges []Range
}

// ForRegion keeps the features inside any of the region's ranges.
func ForRegion(r Region) Filter {
	return ranges{name: r.Code, ranges: r.Ranges}
}

// Ranges keeps the features whose ZIP lies in at least one range. Ranges may
// overlap.
func Ranges(name string, rs ...Range) Filter {
	return ranges{name: name, ranges: rs}
}

func (f ranges) Apply(features domain.FeatureCollection) domain.FeatureCollection {
	res := make(domain.FeatureCollection, 0, len(features))
	for _, feature := range features {
		if f.contains(feature.Zip) {
			res = append(res, feature)
		}
	}

	return sorted(res)
}

func (f ranges) contains(zip string) bool {
	for _, r := range f.ranges {
		if r.Contains(zip) {
			return true
		}
	}

	return false
}

func (f ranges) Name() string { return f.name }

type validOnly struct {
	next Filter
}

// ValidOnly drops features without the regular active ZCTA classification
// before handing the rest to next.
func ValidOnly(next Filter) Filter {
	return validOnly{next: next}
}

func (f validOnly) Apply(features domain.FeatureCollection) domain.FeatureCollection {
	res := make(domain.FeatureCollection, 0, len(features))
	for _, feature := range features {
		if feature.Valid() {
			res = append(res, feature)
		}
	}

	return f.next.Apply(res)
}

func (f validOnly) Name() string { return f.next.Name() + " (valid only)" }

func sorted(features domain.FeatureCollection) domain.FeatureCollection {
	slices.SortStableFunc(features, func(a, b domain.Feature) int {
		return strings.Compare(a.Zip, b.Zip)
	})

	return features
}
