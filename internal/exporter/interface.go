// Package exporter drives an export run: it filters and orders features,
// stores each ZIP code, simplifies and decomposes its geometry into
// tabulation areas with their points and bounding boxes, and reports
// progress while doing so.
//
// Failures below the feature level are recoverable: the failing write is
// rolled back, logged and counted, and the run moves on.
package exporter

import (
	"context"

	"zctadb/internal/geometry"
	"zctadb/pkg/domain"

	"github.com/twpayne/go-geom"
)

//go:generate mockgen -package mockexporter -source=interface.go -destination=mock/mockexporter.go *
type Exporter interface {
	// Export stores features in filtered order. ok is false only when no
	// feature was left to export. err is non-nil only when ctx was cancelled,
	// in which case the stats cover the features handled so far.
	Export(ctx context.Context, features domain.FeatureCollection) (stats domain.ExportStats, ok bool, err error)
	// Progress returns a snapshot of the running export. It is safe to call
	// from other goroutines.
	Progress() domain.ExportStats
}

// Simplifier reduces a polygon's exterior ring to at most pointMax points.
// *geometry.Simplifier is the production implementation.
type Simplifier interface {
	Simplify(p *geom.Polygon, pointMax int) (*geom.Polygon, geometry.Result, error)
}
