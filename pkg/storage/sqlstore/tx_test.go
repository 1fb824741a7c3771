package sqlstore_test

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"

	"zctadb/pkg/storage"
	"zctadb/pkg/storage/sqlstore"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
)

func countZipCodes(t *testing.T, store *sqlstore.Store, code string) int {
	t.Helper()
	zcs, err := store.ZipCodes(context.Background(), storage.ZipCodeFilter{Code: code})
	require.NoError(t, err)

	return len(zcs)
}

func TestStore_Begin_SuccessAndAlreadyInTx(t *testing.T) {
	t.Parallel()

	store, cleanup := setupSQLite(t)
	t.Cleanup(cleanup)
	ctx := context.Background()

	txStorage, err := store.Begin(ctx)
	require.NoError(t, err)
	require.NotNil(t, txStorage)

	inner, ok := txStorage.(*sqlstore.Store)
	require.True(t, ok)
	_, isTx := inner.DB.(*sql.Tx)
	require.True(t, isTx)
	require.Equal(t, store.Dialect(), inner.Dialect())

	_, err = inner.Begin(ctx)
	require.ErrorIs(t, err, storage.ErrAlreadyInTx)

	require.NoError(t, inner.Rollback())
}

func TestStore_Commit_SuccessAndNotInTx(t *testing.T) {
	t.Parallel()

	store, cleanup := setupSQLite(t)
	t.Cleanup(cleanup)
	ctx := context.Background()

	require.ErrorIs(t, store.Commit(), storage.ErrNotInTx)

	txStorage, err := store.Begin(ctx)
	require.NoError(t, err)
	_, err = txStorage.AddZipCode(ctx, "92101", 32.72, -117.16)
	require.NoError(t, err)
	require.NoError(t, txStorage.Commit())

	require.Equal(t, 1, countZipCodes(t, store, "92101"))
}

func TestStore_Rollback_SuccessAndNotInTx(t *testing.T) {
	t.Parallel()

	store, cleanup := setupSQLite(t)
	t.Cleanup(cleanup)
	ctx := context.Background()

	require.ErrorIs(t, store.Rollback(), storage.ErrNotInTx)

	txStorage, err := store.Begin(ctx)
	require.NoError(t, err)
	_, err = txStorage.AddZipCode(ctx, "92102", 32.72, -117.16)
	require.NoError(t, err)
	require.NoError(t, txStorage.Rollback())

	require.Equal(t, 0, countZipCodes(t, store, "92102"))
}

func TestStore_WithTx_CommitAndRollback(t *testing.T) {
	t.Parallel()

	for _, s := range allStores() {
		t.Run(s.name, func(t *testing.T) {
			t.Parallel()

			store, cleanup := s.setup(t)
			t.Cleanup(cleanup)
			ctx := context.Background()

			err := store.WithTx(ctx, func(tx storage.AllStorage) error {
				zc, err := tx.AddZipCode(ctx, "92101", 32.72, -117.16)
				if err != nil {
					return err
				}
				_, err = tx.AddTabulationArea(ctx, zc.ID, false, false)

				return err
			})
			require.NoError(t, err)
			require.Equal(t, 1, countZipCodes(t, store, "92101"))

			boom := errors.New("boom")
			err = store.WithTx(ctx, func(tx storage.AllStorage) error {
				if _, err := tx.AddZipCode(ctx, "92103", 32.72, -117.16); err != nil {
					return err
				}

				return boom
			})
			require.ErrorIs(t, err, boom)
			require.Equal(t, 0, countZipCodes(t, store, "92103"))
		})
	}
}

func TestStore_WithTx_RollsBackFailedWrite(t *testing.T) {
	t.Parallel()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	store := sqlstore.New(db, sqlstore.DialectSQLite)
	ctx := context.Background()

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO `zip_codes`")).
		WillReturnResult(sqlmock.NewResult(7, 1))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO `zctas`")).
		WillReturnError(errors.New("disk full"))
	mock.ExpectRollback()

	err = store.WithTx(ctx, func(tx storage.AllStorage) error {
		zc, err := tx.AddZipCode(ctx, "92101", 32.72, -117.16)
		require.NoError(t, err)
		require.EqualValues(t, 7, zc.ID)
		_, err = tx.AddTabulationArea(ctx, zc.ID, false, false)

		return err
	})
	require.ErrorContains(t, err, "disk full")
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestStore_WithTx_CommitFailure(t *testing.T) {
	t.Parallel()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	store := sqlstore.New(db, sqlstore.DialectSQLite)
	ctx := context.Background()

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO `zcta_boundaries`")).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit().WillReturnError(errors.New("locked"))

	err = store.WithTx(ctx, func(tx storage.AllStorage) error {
		_, err := tx.AddBoundingBox(ctx, 3, 1, 2, 3, 4)

		return err
	})
	require.ErrorContains(t, err, "locked")
	require.NoError(t, mock.ExpectationsWereMet())
}
