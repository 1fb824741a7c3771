package storage

import (
	"context"

	"zctadb/pkg/domain"
)

// ZipCodeFilter narrows ZipCodes queries. Zero values match everything.
type ZipCodeFilter struct {
	// Code, when set, matches a single ZIP code exactly.
	Code string
	// Low and High, when set, bound the ZIP code string inclusively.
	Low  string
	High string
}

// ZipCodeStorage persists ZipCode records.
type ZipCodeStorage interface {
	// AddZipCode inserts a zip code and returns it with its assigned ID.
	AddZipCode(ctx context.Context, code string, lat, lon float64) (*domain.ZipCode, error)
	// ZipCodes returns the zip codes matching filter ordered by code then ID.
	ZipCodes(ctx context.Context, filter ZipCodeFilter) ([]domain.ZipCode, error)
}

// AreaStorage persists TabulationArea records.
type AreaStorage interface {
	// AddTabulationArea inserts an area for an existing zip code.
	AddTabulationArea(ctx context.Context,
		zipCodeID domain.ZipCodeID,
		interior, multi bool) (*domain.TabulationArea, error)
	// TabulationAreas returns the areas of a zip code in insertion order.
	TabulationAreas(ctx context.Context, zipCodeID domain.ZipCodeID) ([]domain.TabulationArea, error)
}

// PointStorage persists the ordered vertex sequence of a ring.
type PointStorage interface {
	// AddBoundaryPoints inserts points for an area keeping their order. An
	// empty slice is a no-op.
	AddBoundaryPoints(ctx context.Context, areaID domain.AreaID, points []domain.Coordinate) error
	// BoundaryPoints returns the points of an area in ring order.
	BoundaryPoints(ctx context.Context, areaID domain.AreaID) ([]domain.BoundaryPoint, error)
}

// BoxStorage persists BoundingBox records.
type BoxStorage interface {
	// AddBoundingBox inserts a bounding box for an area.
	AddBoundingBox(ctx context.Context,
		areaID domain.AreaID,
		minLat, maxLat, minLon, maxLon float64) (*domain.BoundingBox, error)
	// BoundingBoxes returns the boxes attached to an area. More than one box is
	// possible when interior ring boxes are attributed to their exterior area.
	BoundingBoxes(ctx context.Context, areaID domain.AreaID) ([]domain.BoundingBox, error)
}
