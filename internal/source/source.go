// Package source reads ZCTA features from dataset files. A Source exposes
// windowed access so callers can load large datasets in bounded chunks.
//
//go:generate mockgen -package mocksource -source=source.go -destination=mock/mocksource.go Source
package source

import (
	"context"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"zctadb/pkg/domain"
	"zctadb/pkg/serrors"
)

// Census attribute names of the 2020 ZCTA dataset.
const (
	FieldZip          = "ZCTA5CE20"
	FieldGeoID        = "GEOID20"
	FieldClass        = "CLASSFP20"
	FieldFeatureClass = "MTFCC20"
	FieldStatus       = "FUNCSTAT20"
	FieldLandArea     = "ALAND20"
	FieldWaterArea    = "AWATER20"
	FieldLat          = "INTPTLAT20"
	FieldLon          = "INTPTLON20"
)

// Source provides windowed access to the features of a dataset.
type Source interface {
	// ReadChunk returns up to limit features starting at offset. An empty
	// result means the source is exhausted.
	ReadChunk(ctx context.Context, offset, limit int) ([]domain.Feature, error)
	// Close releases the underlying files.
	Close() error
}

// Open opens path with the adapter matching its extension: ".shp" for ESRI
// shapefiles, ".geojson" or ".json" for GeoJSON feature collections. Any
// failure is of kind serrors.ErrSourceUnavailable.
func Open(path string) (Source, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, serrors.Wrap(serrors.ErrSourceUnavailable, err, "could not open %s", path)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ShapefileExt:
		return OpenShapefile(path)
	case ".geojson", ".json":
		return OpenGeoJSON(path)
	default:
		return nil, serrors.With(serrors.ErrSourceUnavailable, "unsupported source format %q", filepath.Ext(path))
	}
}

// attributes gives uniform access to the properties of one record.
type attributes func(name string) string

func (a attributes) toFeature() (domain.Feature, error) {
	f := domain.Feature{
		Zip:          a(FieldZip),
		GeoID:        a(FieldGeoID),
		Class:        a(FieldClass),
		FeatureClass: a(FieldFeatureClass),
		Status:       a(FieldStatus),
	}

	var err error
	if f.LandArea, err = parseInt(a(FieldLandArea)); err != nil {
		return f, serrors.Wrap(serrors.ErrValidation, err, "invalid %s of %s", FieldLandArea, f.Zip)
	}
	if f.WaterArea, err = parseInt(a(FieldWaterArea)); err != nil {
		return f, serrors.Wrap(serrors.ErrValidation, err, "invalid %s of %s", FieldWaterArea, f.Zip)
	}
	if f.Lat, err = strconv.ParseFloat(a(FieldLat), 64); err != nil {
		return f, serrors.Wrap(serrors.ErrValidation, err, "invalid %s of %s", FieldLat, f.Zip)
	}
	if f.Lon, err = strconv.ParseFloat(a(FieldLon), 64); err != nil {
		return f, serrors.Wrap(serrors.ErrValidation, err, "invalid %s of %s", FieldLon, f.Zip)
	}

	return f, nil
}

// parseInt accepts integers written in decimal or float notation. Empty
// values read as zero.
func parseInt(s string) (int64, error) {
	if s == "" {
		return 0, nil
	}
	if v, err := strconv.ParseInt(s, 10, 64); err == nil {
		return v, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}

	return int64(v), nil
}
