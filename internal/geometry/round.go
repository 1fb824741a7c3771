// Package geometry holds the coordinate level operations of an export:
// rounding, bounding boxes, polygon part normalization and bounded
// simplification.
package geometry

import (
	"math"

	"zctadb/pkg/domain"

	"github.com/twpayne/go-geom"
)

// Round rounds v half away from zero to digits decimal places. Rounding an
// already rounded value returns it unchanged.
func Round(v float64, digits int) float64 {
	p := math.Pow10(digits)

	return math.Round(v*p) / p
}

// RoundRing converts a ring of (x=lon, y=lat) coordinates into rounded
// domain coordinates, keeping vertex order and the closing point.
func RoundRing(ring []geom.Coord, digits int) []domain.Coordinate {
	res := make([]domain.Coordinate, 0, len(ring))
	for _, c := range ring {
		res = append(res, domain.Coordinate{
			Lon: Round(c.X(), digits),
			Lat: Round(c.Y(), digits),
		})
	}

	return res
}

// Bounds is the axis-aligned extent of a set of coordinates.
type Bounds struct {
	MinLat float64
	MaxLat float64
	MinLon float64
	MaxLon float64
}

// BoundsOf returns the tight extent of points. ok is false for an empty set.
func BoundsOf(points []domain.Coordinate) (b Bounds, ok bool) {
	if len(points) == 0 {
		return Bounds{}, false
	}

	b = Bounds{
		MinLat: points[0].Lat,
		MaxLat: points[0].Lat,
		MinLon: points[0].Lon,
		MaxLon: points[0].Lon,
	}
	for _, p := range points[1:] {
		b.MinLat = min(b.MinLat, p.Lat)
		b.MaxLat = max(b.MaxLat, p.Lat)
		b.MinLon = min(b.MinLon, p.Lon)
		b.MaxLon = max(b.MaxLon, p.Lon)
	}

	return b, true
}
