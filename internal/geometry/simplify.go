package geometry

import (
	"fmt"

	"zctadb/internal/config"
	"zctadb/pkg/serrors"

	"github.com/twpayne/go-geom"
	"github.com/twpayne/go-geos"
)

// Options configure the tolerance search of a Simplifier.
type Options struct {
	// ToleranceStep is added to the tolerance after every attempt.
	ToleranceStep float64
	// MaxIterations caps the attempts made for a single polygon.
	MaxIterations int
}

// NewOptions constructs an Options value from the provided application config.
func NewOptions(cfg *config.Config) Options {
	return Options{
		ToleranceStep: cfg.Export.ToleranceStep,
		MaxIterations: cfg.Export.MaxSimplifyIterations,
	}
}

// DefaultOptions matches the configuration defaults.
func DefaultOptions() Options {
	return Options{
		ToleranceStep: 0.0001,
		MaxIterations: 10000,
	}
}

// Result describes how a polygon was simplified.
type Result struct {
	// Tolerance is the tolerance of the returned polygon.
	Tolerance float64
	// Iterations is the number of simplifications performed. Zero means the
	// polygon already satisfied the bound.
	Iterations int
}

// Simplifier reduces exterior rings below a point bound using GEOS'
// topology preserving simplification.
type Simplifier struct {
	options Options
}

// NewSimplifier creates a Simplifier. Non positive options fall back to
// DefaultOptions.
func NewSimplifier(options Options) *Simplifier {
	def := DefaultOptions()
	if options.ToleranceStep <= 0 {
		options.ToleranceStep = def.ToleranceStep
	}
	if options.MaxIterations <= 0 {
		options.MaxIterations = def.MaxIterations
	}

	return &Simplifier{options: options}
}

// Simplify returns a polygon whose exterior ring has at most pointMax points.
// Tolerances 0, step, 2*step, ... are applied to the original polygon until
// the bound holds, so the smallest sufficient tolerance on that grid wins.
// Interior rings are simplified with the same tolerance but are not counted.
//
// When MaxIterations attempts do not satisfy the bound, the polygon of the
// last attempt is returned with an serrors.ErrNonConvergence error.
func (s *Simplifier) Simplify(p *geom.Polygon, pointMax int) (*geom.Polygon, Result, error) {
	if ExteriorSize(p) <= pointMax {
		return p, Result{}, nil
	}

	g, err := toGEOS(p)
	if err != nil {
		return p, Result{}, err
	}
	defer g.Destroy()

	var (
		last   *geom.Polygon
		result Result
	)
	for i := range s.options.MaxIterations {
		tolerance := float64(i) * s.options.ToleranceStep
		simplified := g.TopologyPreserveSimplify(tolerance)
		candidate, err := fromGEOS(simplified)
		simplified.Destroy()
		if err != nil {
			return p, result, fmt.Errorf("could not simplify at tolerance %g: %w", tolerance, err)
		}

		last = candidate
		result = Result{Tolerance: tolerance, Iterations: i + 1}
		if ExteriorSize(candidate) <= pointMax {
			return candidate, result, nil
		}
	}

	return last, result, serrors.With(serrors.ErrNonConvergence,
		"exterior still has %d points after %d iterations (tolerance %g), bound is %d",
		ExteriorSize(last), result.Iterations, result.Tolerance, pointMax)
}

func toGEOS(p *geom.Polygon) (*geos.Geom, error) {
	n := p.NumLinearRings()
	if n == 0 {
		return nil, fmt.Errorf("polygon has no rings")
	}

	rings := make([][][]float64, 0, n)
	for i := range n {
		coords := p.LinearRing(i).Coords()
		ring := make([][]float64, 0, len(coords))
		for _, c := range coords {
			ring = append(ring, []float64{c.X(), c.Y()})
		}
		rings = append(rings, ring)
	}

	return geos.NewPolygon(rings), nil
}

func fromGEOS(g *geos.Geom) (*geom.Polygon, error) {
	if g.TypeID() != geos.TypeIDPolygon {
		return nil, fmt.Errorf("unexpected geometry type %d", g.TypeID())
	}
	if g.IsEmpty() {
		return nil, fmt.Errorf("geometry collapsed")
	}

	rings := make([][]geom.Coord, 0, 1+g.NumInteriorRings())
	rings = append(rings, ringCoords(g.ExteriorRing()))
	for i := range g.NumInteriorRings() {
		rings = append(rings, ringCoords(g.InteriorRing(i)))
	}

	return geom.NewPolygon(geom.XY).SetCoords(rings)
}

func ringCoords(ring *geos.Geom) []geom.Coord {
	coords := ring.CoordSeq().ToCoords()
	res := make([]geom.Coord, 0, len(coords))
	for _, c := range coords {
		res = append(res, geom.Coord{c[0], c[1]})
	}

	return res
}
