package geometry_test

import (
	"math"
	"math/rand"
	"testing"

	"zctadb/internal/geometry"
	"zctadb/pkg/domain"
	"zctadb/pkg/serrors"

	"github.com/stretchr/testify/require"
	"github.com/twpayne/go-geom"
)

// ring returns a closed ring of n distinct vertices on a circle, clockwise.
func ring(cx, cy, r float64, n int) []geom.Coord {
	coords := make([]geom.Coord, 0, n+1)
	for i := range n {
		a := -2 * math.Pi * float64(i) / float64(n)
		coords = append(coords, geom.Coord{cx + r*math.Cos(a), cy + r*math.Sin(a)})
	}

	return append(coords, coords[0])
}

func polygon(t *testing.T, rings ...[]geom.Coord) *geom.Polygon {
	t.Helper()
	p, err := geom.NewPolygon(geom.XY).SetCoords(rings)
	require.NoError(t, err)

	return p
}

func TestRound(t *testing.T) {
	t.Parallel()

	tests := []struct {
		v      float64
		digits int
		want   float64
	}{
		{32.71946, 4, 32.7195},
		{-117.16283, 4, -117.1628},
		{-117.16285, 3, -117.163},
		{1.5, 0, 2},
		{-1.5, 0, -2},
		{12.3456789, 6, 12.345679},
	}
	for _, tt := range tests {
		require.InDelta(t, tt.want, geometry.Round(tt.v, tt.digits), 1e-12)
	}
}

func TestRound_Idempotent(t *testing.T) {
	t.Parallel()

	rnd := rand.New(rand.NewSource(42)) //nolint: gosec
	for range 10000 {
		v := rnd.Float64()*360 - 180
		for digits := range 8 {
			once := geometry.Round(v, digits)
			require.Equal(t, once, geometry.Round(once, digits))
		}
	}
}

func TestRoundRing(t *testing.T) {
	t.Parallel()

	in := []geom.Coord{{-117.162849, 32.719512}, {-117.1, 32.7}, {-117.162849, 32.719512}}
	out := geometry.RoundRing(in, 4)
	require.Equal(t, []domain.Coordinate{
		{Lon: -117.1628, Lat: 32.7195},
		{Lon: -117.1, Lat: 32.7},
		{Lon: -117.1628, Lat: 32.7195},
	}, out)
}

func TestBoundsOf(t *testing.T) {
	t.Parallel()

	_, ok := geometry.BoundsOf(nil)
	require.False(t, ok)

	points := geometry.RoundRing(ring(-117.16, 32.72, 0.01, 37), 4)
	b, ok := geometry.BoundsOf(points)
	require.True(t, ok)

	var minLat, maxLat, minLon, maxLon bool
	for _, p := range points {
		require.True(t, domain.BoundingBox{MinLat: b.MinLat, MaxLat: b.MaxLat, MinLon: b.MinLon, MaxLon: b.MaxLon}.
			Contains(p))
		minLat = minLat || p.Lat == b.MinLat
		maxLat = maxLat || p.Lat == b.MaxLat
		minLon = minLon || p.Lon == b.MinLon
		maxLon = maxLon || p.Lon == b.MaxLon
	}
	require.True(t, minLat && maxLat && minLon && maxLon, "every extremum is attained by a point")
}

func TestParts(t *testing.T) {
	t.Parallel()

	single := polygon(t, ring(0, 0, 1, 8))
	parts, multi, err := geometry.Parts(single)
	require.NoError(t, err)
	require.False(t, multi)
	require.Equal(t, []*geom.Polygon{single}, parts)

	mp, err := geom.NewMultiPolygon(geom.XY).SetCoords([][][]geom.Coord{
		{ring(0, 0, 1, 8)},
		{ring(5, 5, 1, 8)},
		{ring(10, 10, 1, 8), ring(10, 10, 0.5, 6)},
	})
	require.NoError(t, err)
	parts, multi, err = geometry.Parts(mp)
	require.NoError(t, err)
	require.True(t, multi)
	require.Len(t, parts, 3)
	require.Equal(t, 2, parts[2].NumLinearRings())

	one, err := geom.NewMultiPolygon(geom.XY).SetCoords([][][]geom.Coord{{ring(0, 0, 1, 8)}})
	require.NoError(t, err)
	parts, multi, err = geometry.Parts(one)
	require.NoError(t, err)
	require.False(t, multi)
	require.Len(t, parts, 1)

	_, _, err = geometry.Parts(nil)
	require.Error(t, err)
	_, _, err = geometry.Parts(geom.NewPointFlat(geom.XY, []float64{1, 2}))
	require.Error(t, err)
}

func TestSimplifier_Simplify(t *testing.T) {
	t.Parallel()

	s := geometry.NewSimplifier(geometry.DefaultOptions())

	t.Run("within bound is returned as is", func(t *testing.T) {
		t.Parallel()

		p := polygon(t, ring(-117.16, 32.72, 0.01, 50))
		out, res, err := s.Simplify(p, 100)
		require.NoError(t, err)
		require.Same(t, p, out)
		require.Zero(t, res.Iterations)
	})

	t.Run("500 vertices reduced below 100", func(t *testing.T) {
		t.Parallel()

		p := polygon(t, ring(-117.16, 32.72, 0.01, 500))
		out, res, err := s.Simplify(p, 100)
		require.NoError(t, err)
		require.LessOrEqual(t, geometry.ExteriorSize(out), 100)
		require.GreaterOrEqual(t, geometry.ExteriorSize(out), 4)
		require.Positive(t, res.Iterations)
		require.InDelta(t, float64(res.Iterations-1)*0.0001, res.Tolerance, 1e-12)

		coords := out.LinearRing(0).Coords()
		require.Equal(t, coords[0], coords[len(coords)-1], "ring stays closed")
	})

	t.Run("holes survive", func(t *testing.T) {
		t.Parallel()

		p := polygon(t, ring(-117.16, 32.72, 0.05, 400), ring(-117.16, 32.72, 0.01, 300))
		out, _, err := s.Simplify(p, 60)
		require.NoError(t, err)
		require.LessOrEqual(t, geometry.ExteriorSize(out), 60)
		require.Equal(t, 2, out.NumLinearRings())
	})

	t.Run("iteration cap returns best effort", func(t *testing.T) {
		t.Parallel()

		capped := geometry.NewSimplifier(geometry.Options{ToleranceStep: 0.0001, MaxIterations: 1})
		p := polygon(t, ring(-117.16, 32.72, 0.01, 500))
		out, res, err := capped.Simplify(p, 10)
		require.ErrorIs(t, err, serrors.ErrNonConvergence)
		require.NotNil(t, out)
		require.Equal(t, 1, res.Iterations)
		require.Zero(t, res.Tolerance)
		require.Greater(t, geometry.ExteriorSize(out), 10)
	})
}
