package source

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"zctadb/pkg/domain"
	"zctadb/pkg/serrors"

	"github.com/twpayne/go-geom"
	"github.com/twpayne/go-geom/encoding/geojson"
)

// GeoJSON serves features from a GeoJSON FeatureCollection loaded at open.
type GeoJSON struct {
	path     string
	features []*geojson.Feature
}

// OpenGeoJSON decodes the feature collection stored at path.
func OpenGeoJSON(path string) (*GeoJSON, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, serrors.Wrap(serrors.ErrSourceUnavailable, err, "could not open %s", path)
	}

	var fc geojson.FeatureCollection
	if err := json.Unmarshal(data, &fc); err != nil {
		return nil, serrors.Wrap(serrors.ErrSourceUnavailable, err, "could not decode %s", path)
	}

	return &GeoJSON{path: path, features: fc.Features}, nil
}

func (g *GeoJSON) ReadChunk(ctx context.Context, offset, limit int) ([]domain.Feature, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if offset >= len(g.features) {
		return nil, nil
	}

	end := min(offset+limit, len(g.features))
	features := make([]domain.Feature, 0, end-offset)
	for i := offset; i < end; i++ {
		f, err := g.feature(g.features[i])
		if err != nil {
			return nil, serrors.Wrap(serrors.ErrSourceRead, err, "could not read feature %d of %s", i, g.path)
		}
		features = append(features, f)
	}

	return features, nil
}

func (g *GeoJSON) feature(gf *geojson.Feature) (domain.Feature, error) {
	attrs := attributes(func(name string) string {
		return property(gf.Properties, name)
	})

	f, err := attrs.toFeature()
	if err != nil {
		return f, err
	}

	switch t := gf.Geometry.(type) {
	case *geom.Polygon, *geom.MultiPolygon:
		f.Geometry = t
	default:
		return f, fmt.Errorf("feature %s has unsupported geometry %T", f.Zip, gf.Geometry)
	}

	return f, nil
}

func (g *GeoJSON) Close() error {
	g.features = nil

	return nil
}

// property renders a decoded JSON property as the string a shapefile
// attribute table would hold.
func property(props map[string]interface{}, name string) string {
	switch v := props[name].(type) {
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case nil:
		return ""
	default:
		return fmt.Sprint(v)
	}
}
