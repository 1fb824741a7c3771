package sqlstore_test

import (
	"context"
	"testing"

	"zctadb/pkg/domain"
	"zctadb/pkg/storage"

	"github.com/stretchr/testify/require"
)

func TestStore_ZipCodes(t *testing.T) {
	t.Parallel()

	for _, s := range allStores() {
		t.Run(s.name, func(t *testing.T) {
			t.Parallel()

			store, cleanup := s.setup(t)
			t.Cleanup(cleanup)
			ctx := context.Background()

			for _, code := range []string{"92101", "06390", "10001", "92101"} {
				zc, err := store.AddZipCode(ctx, code, 32.72, -117.16)
				require.NoError(t, err)
				require.NotZero(t, zc.ID)
				require.Equal(t, code, zc.Code)
			}

			all, err := store.ZipCodes(ctx, storage.ZipCodeFilter{})
			require.NoError(t, err)
			require.Len(t, all, 4)
			require.Equal(t, "06390", all[0].Code)
			require.Equal(t, "10001", all[1].Code)
			require.Less(t, all[2].ID, all[3].ID)

			exact, err := store.ZipCodes(ctx, storage.ZipCodeFilter{Code: "92101"})
			require.NoError(t, err)
			require.Len(t, exact, 2)
			require.InDelta(t, 32.72, exact[0].Lat, 1e-9)
			require.InDelta(t, -117.16, exact[0].Lon, 1e-9)

			ranged, err := store.ZipCodes(ctx, storage.ZipCodeFilter{Low: "06000", High: "10001"})
			require.NoError(t, err)
			require.Len(t, ranged, 2)

			none, err := store.ZipCodes(ctx, storage.ZipCodeFilter{Code: "99999"})
			require.NoError(t, err)
			require.Empty(t, none)
		})
	}
}

func TestStore_TabulationAreas(t *testing.T) {
	t.Parallel()

	for _, s := range allStores() {
		t.Run(s.name, func(t *testing.T) {
			t.Parallel()

			store, cleanup := s.setup(t)
			t.Cleanup(cleanup)
			ctx := context.Background()

			zc, err := store.AddZipCode(ctx, "92101", 32.72, -117.16)
			require.NoError(t, err)

			ext, err := store.AddTabulationArea(ctx, zc.ID, false, true)
			require.NoError(t, err)
			require.Equal(t, zc.ID, ext.ZipCodeID)
			hole, err := store.AddTabulationArea(ctx, zc.ID, true, true)
			require.NoError(t, err)
			require.NotEqual(t, ext.ID, hole.ID)

			areas, err := store.TabulationAreas(ctx, zc.ID)
			require.NoError(t, err)
			require.Equal(t, []domain.TabulationArea{*ext, *hole}, areas)

			t.Run("unknown zip code violates foreign key", func(t *testing.T) {
				_, err := store.AddTabulationArea(ctx, zc.ID+1000, false, false)
				require.Error(t, err)
			})
		})
	}
}

func TestStore_BoundaryPoints(t *testing.T) {
	t.Parallel()

	for _, s := range allStores() {
		t.Run(s.name, func(t *testing.T) {
			t.Parallel()

			store, cleanup := s.setup(t)
			t.Cleanup(cleanup)
			ctx := context.Background()

			zc, err := store.AddZipCode(ctx, "92101", 32.72, -117.16)
			require.NoError(t, err)
			area, err := store.AddTabulationArea(ctx, zc.ID, false, false)
			require.NoError(t, err)

			t.Run("empty is a no-op", func(t *testing.T) {
				require.NoError(t, store.AddBoundaryPoints(ctx, area.ID, nil))
			})

			// more than one insert batch, with a closing point equal to the first
			points := make([]domain.Coordinate, 0, 1201)
			for i := range 1200 {
				points = append(points, domain.Coordinate{Lon: -117 - float64(i)/10000, Lat: 32 + float64(i)/10000})
			}
			points = append(points, points[0])
			require.NoError(t, store.AddBoundaryPoints(ctx, area.ID, points))

			stored, err := store.BoundaryPoints(ctx, area.ID)
			require.NoError(t, err)
			require.Len(t, stored, len(points))
			for i, p := range stored {
				require.Equal(t, i, p.Seq)
				require.Equal(t, area.ID, p.AreaID)
				require.InDelta(t, points[i].Lat, p.Lat, 1e-9)
				require.InDelta(t, points[i].Lon, p.Lon, 1e-9)
			}
			require.Equal(t, stored[0].Coordinate, stored[len(stored)-1].Coordinate)
		})
	}
}

func TestStore_BoundingBoxes(t *testing.T) {
	t.Parallel()

	for _, s := range allStores() {
		t.Run(s.name, func(t *testing.T) {
			t.Parallel()

			store, cleanup := s.setup(t)
			t.Cleanup(cleanup)
			ctx := context.Background()

			zc, err := store.AddZipCode(ctx, "92101", 32.72, -117.16)
			require.NoError(t, err)
			area, err := store.AddTabulationArea(ctx, zc.ID, false, false)
			require.NoError(t, err)

			box, err := store.AddBoundingBox(ctx, area.ID, 32.70, 32.73, -117.18, -117.14)
			require.NoError(t, err)
			require.NotZero(t, box.ID)

			holeBox, err := store.AddBoundingBox(ctx, area.ID, 32.71, 32.72, -117.17, -117.16)
			require.NoError(t, err)

			boxes, err := store.BoundingBoxes(ctx, area.ID)
			require.NoError(t, err)
			require.Equal(t, []domain.BoundingBox{*box, *holeBox}, boxes)
			require.True(t, boxes[0].Contains(domain.Coordinate{Lon: -117.16, Lat: 32.72}))
		})
	}
}
