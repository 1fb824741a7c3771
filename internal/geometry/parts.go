package geometry

import (
	"fmt"

	"github.com/twpayne/go-geom"
)

// Parts normalizes a polygonal geometry into its polygons. multi is true when
// the geometry has more than one part.
func Parts(g geom.T) (parts []*geom.Polygon, multi bool, err error) {
	switch t := g.(type) {
	case *geom.Polygon:
		return []*geom.Polygon{t}, false, nil
	case *geom.MultiPolygon:
		n := t.NumPolygons()
		parts = make([]*geom.Polygon, 0, n)
		for i := range n {
			parts = append(parts, t.Polygon(i))
		}

		return parts, n > 1, nil
	case nil:
		return nil, false, fmt.Errorf("geometry is missing")
	default:
		return nil, false, fmt.Errorf("unsupported geometry type %T", g)
	}
}

// ExteriorSize returns the number of points of p's exterior ring, closing
// point included.
func ExteriorSize(p *geom.Polygon) int {
	if p.NumLinearRings() == 0 {
		return 0
	}

	return p.LinearRing(0).NumCoords()
}
