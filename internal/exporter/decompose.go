package exporter

import (
	"context"

	"zctadb/internal/config"
	"zctadb/internal/geometry"
	"zctadb/pkg/domain"
	"zctadb/pkg/logger"
	"zctadb/pkg/metrics"
	"zctadb/pkg/storage"

	"github.com/twpayne/go-geom"
	"go.uber.org/zap"
)

// decompose stores every ring of one polygon part as a tabulation area with
// its rounded points and bounding box. Ring 0 is the exterior. Each record
// type is written in its own transaction and a failing ring does not stop
// the next one.
func (e *exporter) decompose(ctx context.Context, zipID domain.ZipCodeID, part *geom.Polygon, multi bool) {
	var exterior *domain.TabulationArea
	for ring := range part.NumLinearRings() {
		ctx := logger.WithFields(ctx, zap.Int("ring", ring))
		interior := ring > 0

		area, err := e.addArea(ctx, zipID, interior, multi)
		if err != nil {
			logger.Error(ctx, "could not store tabulation area", zap.Bool("interior", interior), zap.Error(err))
			e.update(func(s *domain.ExportStats) { s.FailedAreas++ })
			e.metrics.FailedWrite(ctx, metrics.TargetArea)

			continue
		}
		if !interior {
			exterior = area
		}
		ctx = logger.WithFields(ctx, zap.Int64("area_id", int64(area.ID)))

		points := geometry.RoundRing(part.LinearRing(ring).Coords(), e.options.DigitMax)
		if !e.addPoints(ctx, area.ID, points) {
			continue
		}

		e.addBox(ctx, e.boxOwner(ctx, area, exterior), points)
	}
}

// boxOwner returns the area a ring's bounding box belongs to. Holes go to
// their exterior area under config.BoxOwnerExterior, or to themselves when
// the exterior could not be stored.
func (e *exporter) boxOwner(ctx context.Context, area, exterior *domain.TabulationArea) domain.AreaID {
	if !area.Interior || e.options.InteriorBoxOwner == config.BoxOwnerInterior {
		return area.ID
	}
	if exterior == nil {
		logger.Warn(ctx, "exterior area missing, attaching hole box to the hole")

		return area.ID
	}

	return exterior.ID
}

func (e *exporter) addArea(ctx context.Context,
	zipID domain.ZipCodeID,
	interior, multi bool,
) (*domain.TabulationArea, error) {
	var area *domain.TabulationArea
	err := e.write(ctx, "store tabulation area", func(tx storage.AllStorage) error {
		var err error
		area, err = tx.AddTabulationArea(ctx, zipID, interior, multi)

		return err
	})
	if err != nil {
		return nil, err
	}
	e.update(func(s *domain.ExportStats) { s.Areas++ })

	return area, nil
}

// addPoints stores a ring's points and reports whether they were written.
// A bounding box is only stored for points that were.
func (e *exporter) addPoints(ctx context.Context, areaID domain.AreaID, points []domain.Coordinate) bool {
	for _, p := range points {
		if !finite(p.Lat, p.Lon) {
			logger.Error(ctx, "ring has non finite coordinates, skipping its points")
			e.update(func(s *domain.ExportStats) { s.FailedPointSets++ })
			e.metrics.FailedWrite(ctx, metrics.TargetPoints)

			return false
		}
	}

	err := e.write(ctx, "store boundary points", func(tx storage.AllStorage) error {
		return tx.AddBoundaryPoints(ctx, areaID, points)
	})
	if err != nil {
		logger.Error(ctx, "could not store boundary points", zap.Int("points", len(points)), zap.Error(err))
		e.update(func(s *domain.ExportStats) { s.FailedPointSets++ })
		e.metrics.FailedWrite(ctx, metrics.TargetPoints)

		return false
	}

	e.update(func(s *domain.ExportStats) { s.Points += len(points) })
	e.metrics.Points(ctx, len(points))

	return true
}

func (e *exporter) addBox(ctx context.Context, owner domain.AreaID, points []domain.Coordinate) {
	b, ok := geometry.BoundsOf(points)
	if !ok {
		return
	}

	err := e.write(ctx, "store bounding box", func(tx storage.AllStorage) error {
		_, err := tx.AddBoundingBox(ctx, owner, b.MinLat, b.MaxLat, b.MinLon, b.MaxLon)

		return err
	})
	if err != nil {
		logger.Error(ctx, "could not store bounding box", zap.Int64("owner_id", int64(owner)), zap.Error(err))
		e.update(func(s *domain.ExportStats) { s.FailedBoxes++ })
		e.metrics.FailedWrite(ctx, metrics.TargetBox)
	}
}
