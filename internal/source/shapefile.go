package source

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"zctadb/pkg/domain"
	"zctadb/pkg/serrors"

	"github.com/jonas-p/go-shp"
	"github.com/twpayne/go-geom"
	"github.com/twpayne/go-geom/xy"
)

// Shapefile component extensions.
const (
	ShapefileExt = ".shp"
	IndexExt     = ".shx"
	AttributeExt = ".dbf"
)

var ErrNotShapefile = errors.New("not a shapefile")

// CheckShapefile verifies that path names a ".shp" file and that its ".shx"
// index and ".dbf" attribute table sit next to it.
func CheckShapefile(path string) error {
	ext := filepath.Ext(path)
	if !strings.EqualFold(ext, ShapefileExt) {
		return fmt.Errorf("%w: %s", ErrNotShapefile, path)
	}

	base := strings.TrimSuffix(path, ext)
	for _, component := range []string{ext, IndexExt, AttributeExt} {
		info, err := os.Stat(base + component)
		if err != nil {
			return fmt.Errorf("missing shapefile component %s: %w", base+component, err)
		}
		if info.IsDir() {
			return fmt.Errorf("shapefile component %s is a directory", base+component)
		}
	}

	return nil
}

// Shapefile reads features from an ESRI shapefile. The underlying reader is
// sequential; ReadChunk rewinds by reopening when asked for an earlier offset.
type Shapefile struct {
	path   string
	reader *shp.Reader
	fields map[string]int
	pos    int
}

// OpenShapefile validates the shapefile components and opens the reader.
func OpenShapefile(path string) (*Shapefile, error) {
	if err := CheckShapefile(path); err != nil {
		return nil, serrors.Wrap(serrors.ErrSourceUnavailable, err, "could not open shapefile")
	}

	s := &Shapefile{path: path}
	if err := s.open(); err != nil {
		return nil, serrors.Wrap(serrors.ErrSourceUnavailable, err, "could not open shapefile %s", path)
	}

	return s, nil
}

func (s *Shapefile) open() error {
	r, err := shp.Open(s.path)
	if err != nil {
		return err
	}

	if r.GeometryType != shp.POLYGON {
		r.Close()

		return fmt.Errorf("unsupported shape type %d", r.GeometryType)
	}

	fields := make(map[string]int)
	for i, f := range r.Fields() {
		fields[f.String()] = i
	}
	if _, ok := fields[FieldZip]; !ok {
		r.Close()

		return fmt.Errorf("attribute %s is missing", FieldZip)
	}

	s.reader = r
	s.fields = fields
	s.pos = 0

	return nil
}

func (s *Shapefile) ReadChunk(ctx context.Context, offset, limit int) ([]domain.Feature, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if offset < s.pos {
		s.reader.Close()
		if err := s.open(); err != nil {
			return nil, serrors.Wrap(serrors.ErrSourceRead, err, "could not rewind %s", s.path)
		}
	}

	var features []domain.Feature
	for len(features) < limit && s.reader.Next() {
		row, shape := s.reader.Shape()
		s.pos++
		if s.pos <= offset {
			continue
		}

		f, err := s.feature(row, shape)
		if err != nil {
			return nil, serrors.Wrap(serrors.ErrSourceRead, err, "could not read record %d of %s", row, s.path)
		}
		features = append(features, f)
	}

	if err := s.reader.Err(); err != nil {
		return nil, serrors.Wrap(serrors.ErrSourceRead, err, "could not read %s", s.path)
	}

	return features, nil
}

func (s *Shapefile) feature(row int, shape shp.Shape) (domain.Feature, error) {
	attrs := attributes(func(name string) string {
		i, ok := s.fields[name]
		if !ok {
			return ""
		}

		return strings.Trim(s.reader.ReadAttribute(row, i), " \x00")
	})

	f, err := attrs.toFeature()
	if err != nil {
		return f, err
	}

	polygon, ok := shape.(*shp.Polygon)
	if !ok {
		return f, fmt.Errorf("record %d is a %T, not a polygon", row, shape)
	}

	f.Geometry, err = assemble(polygon)

	return f, err
}

func (s *Shapefile) Close() error {
	s.reader.Close()

	return nil
}

// assemble turns the flat part list of a shapefile polygon into a polygon or
// multipolygon. Shapefiles store exterior rings clockwise and holes counter
// clockwise; each hole joins the first exterior ring that contains it.
func assemble(p *shp.Polygon) (geom.T, error) {
	var (
		exteriors [][][]geom.Coord
		holes     [][]geom.Coord
	)
	for i := range p.Parts {
		start := int(p.Parts[i])
		end := len(p.Points)
		if i+1 < len(p.Parts) {
			end = int(p.Parts[i+1])
		}
		if start >= end || end > len(p.Points) {
			return nil, fmt.Errorf("invalid part %d bounds [%d, %d)", i, start, end)
		}

		ring := make([]geom.Coord, 0, end-start)
		for _, pt := range p.Points[start:end] {
			ring = append(ring, geom.Coord{pt.X, pt.Y})
		}

		if xy.IsRingCounterClockwise(geom.XY, flatten(ring)) {
			holes = append(holes, ring)
		} else {
			exteriors = append(exteriors, [][]geom.Coord{ring})
		}
	}

	// a file without clockwise rings carries no holes
	if len(exteriors) == 0 {
		for _, h := range holes {
			exteriors = append(exteriors, [][]geom.Coord{h})
		}
		holes = nil
	}

	for _, hole := range holes {
		owner := len(exteriors) - 1
		for i, e := range exteriors {
			if xy.IsPointInRing(geom.XY, hole[0], flatten(e[0])) {
				owner = i

				break
			}
		}
		exteriors[owner] = append(exteriors[owner], hole)
	}

	if len(exteriors) == 1 {
		return geom.NewPolygon(geom.XY).SetCoords(exteriors[0])
	}

	return geom.NewMultiPolygon(geom.XY).SetCoords(exteriors)
}

func flatten(ring []geom.Coord) []float64 {
	flat := make([]float64, 0, 2*len(ring))
	for _, c := range ring {
		flat = append(flat, c[0], c[1])
	}

	return flat
}
