package sqlstore

import (
	"context"
	"fmt"

	"zctadb/pkg/domain"
	"zctadb/pkg/storage"

	"github.com/doug-martin/goqu/v9"
)

const (
	zipCodesTable   = "zip_codes"
	areasTable      = "zctas"
	pointsTable     = "zcta_points"
	boundariesTable = "zcta_boundaries"

	// pointBatchSize bounds the rows of a single multi-row points insert.
	pointBatchSize = 500
)

// insertID executes ds and returns the generated key of idColumn. The goqu
// sqlite3 dialect has no RETURNING support, so SQLite falls back to the
// driver's last insert id.
func (s *Store) insertID(ctx context.Context, ds *goqu.InsertDataset, idColumn string) (int64, error) {
	if s.dialect == DialectPostgres {
		var id int64
		found, err := ds.Returning(goqu.C(idColumn)).Executor().ScanValContext(ctx, &id)
		if err != nil {
			return 0, err
		}
		if !found {
			return 0, fmt.Errorf("insert returned no %s", idColumn)
		}

		return id, nil
	}

	res, err := ds.Executor().ExecContext(ctx)
	if err != nil {
		return 0, err
	}

	return res.LastInsertId()
}

func (s *Store) AddZipCode(ctx context.Context, code string, lat, lon float64) (*domain.ZipCode, error) {
	row := zipCodeRow{Code: code, Lat: lat, Lon: lon}
	id, err := s.insertID(ctx, s.Builder.Insert(zipCodesTable).Rows(row), "zip_code_id")
	if err != nil {
		return nil, fmt.Errorf("could not store zip code %s: %w", code, err)
	}
	row.ID = id
	zc := row.ToDomain()

	return &zc, nil
}

// ZipCodes returns zip codes matching filter ordered by code, then by ID.
func (s *Store) ZipCodes(ctx context.Context, filter storage.ZipCodeFilter) ([]domain.ZipCode, error) {
	var w []goqu.Expression
	if filter.Code != "" {
		w = append(w, goqu.I("zip_code").Eq(filter.Code))
	}
	if filter.Low != "" {
		w = append(w, goqu.I("zip_code").Gte(filter.Low))
	}
	if filter.High != "" {
		w = append(w, goqu.I("zip_code").Lte(filter.High))
	}

	ds := s.Builder.From(zipCodesTable).
		Order(goqu.I("zip_code").Asc(), goqu.I("zip_code_id").Asc())
	if len(w) > 0 {
		ds = ds.Where(w...)
	}

	var rows []zipCodeRow
	if err := ds.Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch zip codes: %w", err)
	}

	result := make([]domain.ZipCode, 0, len(rows))
	for _, r := range rows {
		result = append(result, r.ToDomain())
	}

	return result, nil
}

func (s *Store) AddTabulationArea(ctx context.Context,
	zipCodeID domain.ZipCodeID,
	interior, multi bool) (*domain.TabulationArea, error) {
	row := areaRow{ZipCodeID: int64(zipCodeID), Interior: interior, Multi: multi}
	id, err := s.insertID(ctx, s.Builder.Insert(areasTable).Rows(row), "zcta_id")
	if err != nil {
		return nil, fmt.Errorf("could not store tabulation area for zip code %d: %w", zipCodeID, err)
	}
	row.ID = id
	area := row.ToDomain()

	return &area, nil
}

func (s *Store) TabulationAreas(ctx context.Context, zipCodeID domain.ZipCodeID) ([]domain.TabulationArea, error) {
	var rows []areaRow
	if err := s.Builder.From(areasTable).
		Where(goqu.I("zip_code_id").Eq(int64(zipCodeID))).
		Order(goqu.I("zcta_id").Asc()).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch tabulation areas: %w", err)
	}

	result := make([]domain.TabulationArea, 0, len(rows))
	for _, r := range rows {
		result = append(result, r.ToDomain())
	}

	return result, nil
}

// AddBoundaryPoints stores points in batches. Seq carries the position of
// each point in the ring so order survives regardless of key assignment.
func (s *Store) AddBoundaryPoints(ctx context.Context, areaID domain.AreaID, points []domain.Coordinate) error {
	for start := 0; start < len(points); start += pointBatchSize {
		end := min(start+pointBatchSize, len(points))

		rows := make([]pointRow, 0, end-start)
		for i := start; i < end; i++ {
			rows = append(rows, pointRow{
				AreaID: int64(areaID),
				Seq:    i,
				Lat:    points[i].Lat,
				Lon:    points[i].Lon,
			})
		}

		if _, err := s.Builder.Insert(pointsTable).Rows(rows).Executor().ExecContext(ctx); err != nil {
			return fmt.Errorf("could not store boundary points for area %d: %w", areaID, err)
		}
	}

	return nil
}

func (s *Store) BoundaryPoints(ctx context.Context, areaID domain.AreaID) ([]domain.BoundaryPoint, error) {
	var rows []pointRow
	if err := s.Builder.From(pointsTable).
		Where(goqu.I("zcta_id").Eq(int64(areaID))).
		Order(goqu.I("seq").Asc()).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch boundary points: %w", err)
	}

	result := make([]domain.BoundaryPoint, 0, len(rows))
	for _, r := range rows {
		result = append(result, r.ToDomain())
	}

	return result, nil
}

func (s *Store) AddBoundingBox(ctx context.Context,
	areaID domain.AreaID,
	minLat, maxLat, minLon, maxLon float64) (*domain.BoundingBox, error) {
	row := boxRow{
		AreaID: int64(areaID),
		MinLat: minLat,
		MaxLat: maxLat,
		MinLon: minLon,
		MaxLon: maxLon,
	}
	id, err := s.insertID(ctx, s.Builder.Insert(boundariesTable).Rows(row), "zcta_boundary_id")
	if err != nil {
		return nil, fmt.Errorf("could not store bounding box for area %d: %w", areaID, err)
	}
	row.ID = id
	box := row.ToDomain()

	return &box, nil
}

func (s *Store) BoundingBoxes(ctx context.Context, areaID domain.AreaID) ([]domain.BoundingBox, error) {
	var rows []boxRow
	if err := s.Builder.From(boundariesTable).
		Where(goqu.I("zcta_id").Eq(int64(areaID))).
		Order(goqu.I("zcta_boundary_id").Asc()).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch bounding boxes: %w", err)
	}

	result := make([]domain.BoundingBox, 0, len(rows))
	for _, r := range rows {
		result = append(result, r.ToDomain())
	}

	return result, nil
}
