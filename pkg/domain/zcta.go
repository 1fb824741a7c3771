package domain

import (
	"fmt"
	"regexp"
)

// ZipCodeID identifies a stored ZipCode. It is assigned by the store.
type ZipCodeID int64

// AreaID identifies a stored TabulationArea. It is assigned by the store.
type AreaID int64

// ZipCodeLength is the fixed width of a ZIP code string.
const ZipCodeLength = 5

var zipPattern = regexp.MustCompile(`^[0-9]{5}$`) //nolint: gochecknoglobals

// ValidateZip checks that code is a zero-padded five digit ZIP string.
func ValidateZip(code string) error {
	if !zipPattern.MatchString(code) {
		return fmt.Errorf("zip code %q is not %d digits", code, ZipCodeLength)
	}

	return nil
}

// ZipCode is one distinct ZIP with its centroid (the Census interior point).
type ZipCode struct {
	ID   ZipCodeID `json:"id"`
	Code string    `json:"code"`
	Lat  float64   `json:"lat"`
	Lon  float64   `json:"lon"`
}

// TabulationArea is one ring of a ZIP's geometry. Interior marks a hole,
// Multi marks that the parent geometry had more than one disjoint part.
type TabulationArea struct {
	ID        AreaID    `json:"id"`
	ZipCodeID ZipCodeID `json:"zipCodeId"`
	Interior  bool      `json:"interior"`
	Multi     bool      `json:"multi"`
}

// Coordinate is a (longitude, latitude) pair in that order, matching the
// x/y order of the source geometry.
type Coordinate struct {
	Lon float64 `json:"lon"`
	Lat float64 `json:"lat"`
}

// BoundaryPoint is one vertex of a tabulation area ring. Seq is the vertex's
// position in the ring; the first and last points close it.
type BoundaryPoint struct {
	AreaID AreaID `json:"areaId"`
	Seq    int    `json:"seq"`
	Coordinate
}

// BoundingBox is the axis-aligned extent of a ring's stored points.
type BoundingBox struct {
	ID     int64   `json:"id"`
	AreaID AreaID  `json:"areaId"`
	MinLat float64 `json:"minLat"`
	MaxLat float64 `json:"maxLat"`
	MinLon float64 `json:"minLon"`
	MaxLon float64 `json:"maxLon"`
}

// Contains reports whether c lies inside or on the edge of the box.
func (b BoundingBox) Contains(c Coordinate) bool {
	return c.Lat >= b.MinLat && c.Lat <= b.MaxLat &&
		c.Lon >= b.MinLon && c.Lon <= b.MaxLon
}
