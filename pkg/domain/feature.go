package domain

import (
	"github.com/twpayne/go-geom"
)

// Census classification values of a regular, active ZCTA.
const (
	ZCTAFeatureClass = "G6350" // MTFCC20
	ZCTAClass        = "B5"    // CLASSFP20
	ZCTAStatus       = "S"     // FUNCSTAT20
)

// Feature is one source record of the ZCTA dataset: a ZIP code, its interior
// point and its boundary geometry.
type Feature struct {
	// Zip is the zero-padded five digit ZIP code (ZCTA5CE20).
	Zip string
	// GeoID is the Census geographic identifier (GEOID20).
	GeoID string
	// Class is the Census class code (CLASSFP20).
	Class string
	// FeatureClass is the MAF/TIGER feature class code (MTFCC20).
	FeatureClass string
	// Status is the functional status (FUNCSTAT20).
	Status string
	// LandArea and WaterArea are in square meters (ALAND20, AWATER20).
	LandArea  int64
	WaterArea int64
	// Lat and Lon are the interior point used as the ZIP centroid.
	Lat float64
	Lon float64
	// Geometry is a *geom.Polygon or *geom.MultiPolygon with x=lon, y=lat.
	Geometry geom.T
}

// Valid reports whether the feature carries the Census classification of a
// regular, active ZCTA.
func (f Feature) Valid() bool {
	return f.FeatureClass == ZCTAFeatureClass &&
		f.Class == ZCTAClass &&
		f.Status == ZCTAStatus
}

// FeatureCollection is an ordered set of features as read from the source.
type FeatureCollection []Feature
