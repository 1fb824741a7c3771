package sqlstore

import (
	"zctadb/pkg/domain"
)

type zipCodeRow struct {
	ID   int64   `db:"zip_code_id" goqu:"skipinsert"`
	Code string  `db:"zip_code"`
	Lat  float64 `db:"zip_lat"`
	Lon  float64 `db:"zip_lon"`
}

func (r zipCodeRow) ToDomain() domain.ZipCode {
	return domain.ZipCode{
		ID:   domain.ZipCodeID(r.ID),
		Code: r.Code,
		Lat:  r.Lat,
		Lon:  r.Lon,
	}
}

type areaRow struct {
	ID        int64 `db:"zcta_id"     goqu:"skipinsert"`
	ZipCodeID int64 `db:"zip_code_id"`
	Interior  bool  `db:"interior"`
	Multi     bool  `db:"multi"`
}

func (r areaRow) ToDomain() domain.TabulationArea {
	return domain.TabulationArea{
		ID:        domain.AreaID(r.ID),
		ZipCodeID: domain.ZipCodeID(r.ZipCodeID),
		Interior:  r.Interior,
		Multi:     r.Multi,
	}
}

type pointRow struct {
	ID     int64   `db:"zcta_point_id"  goqu:"skipinsert"`
	AreaID int64   `db:"zcta_id"`
	Seq    int     `db:"seq"`
	Lat    float64 `db:"zcta_point_lat"`
	Lon    float64 `db:"zcta_point_lon"`
}

func (r pointRow) ToDomain() domain.BoundaryPoint {
	return domain.BoundaryPoint{
		AreaID: domain.AreaID(r.AreaID),
		Seq:    r.Seq,
		Coordinate: domain.Coordinate{
			Lon: r.Lon,
			Lat: r.Lat,
		},
	}
}

type boxRow struct {
	ID     int64   `db:"zcta_boundary_id" goqu:"skipinsert"`
	AreaID int64   `db:"zcta_id"`
	MinLat float64 `db:"min_lat"`
	MaxLat float64 `db:"max_lat"`
	MinLon float64 `db:"min_lon"`
	MaxLon float64 `db:"max_lon"`
}

func (r boxRow) ToDomain() domain.BoundingBox {
	return domain.BoundingBox{
		ID:     r.ID,
		AreaID: domain.AreaID(r.AreaID),
		MinLat: r.MinLat,
		MaxLat: r.MaxLat,
		MinLon: r.MinLon,
		MaxLon: r.MaxLon,
	}
}
