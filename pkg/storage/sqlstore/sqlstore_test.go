package sqlstore_test

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	root "zctadb"
	"zctadb/pkg/storage"
	"zctadb/pkg/storage/sqlstore"

	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

const (
	testUser     = "postgres"
	testPassword = "postgres"
	testDB       = "testdb"
)

type postgresContainer struct {
	Container testcontainers.Container
	Host      string
	Port      int
}

func startPostgresContainer(ctx context.Context) (*postgresContainer, error) {
	req := testcontainers.ContainerRequest{
		Image:        "postgres:17",
		ExposedPorts: []string{"5432"},
		Env: map[string]string{
			"POSTGRES_USER":     testUser,
			"POSTGRES_PASSWORD": testPassword,
			"POSTGRES_DB":       testDB,
		},
		WaitingFor: wait.ForListeningPort("5432"),
	}
	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		return nil, fmt.Errorf("could not start container: %w", err)
	}

	host, err := container.Host(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not get container host: %w", err)
	}

	mappedPort, err := container.MappedPort(ctx, "5432")
	if err != nil {
		return nil, fmt.Errorf("could not get mapped port: %w", err)
	}

	return &postgresContainer{
		Container: container,
		Host:      host,
		Port:      mappedPort.Int(),
	}, nil
}

// setupPostgres starts a disposable PostgreSQL and returns a migrated store.
func setupPostgres(t *testing.T) (*sqlstore.Store, func()) {
	t.Helper()
	if testing.Short() {
		t.Skip("postgres container tests are skipped in short mode")
	}
	ctx := context.Background()

	pgContainer, err := startPostgresContainer(ctx)
	require.NoError(t, err)

	store, err := sqlstore.NewPostgres(ctx, sqlstore.PostgresOptions{
		Username:           testUser,
		Password:           testPassword,
		Host:               pgContainer.Host,
		Port:               pgContainer.Port,
		Database:           testDB,
		SslMode:            "disable",
		ConnMaxLifetime:    time.Minute,
		ConnMaxIdleTime:    time.Minute,
		MaxOpenConnections: 5,
		MaxIdleConnections: 1,
	})
	require.NoError(t, err)

	_, err = store.Migrate(ctx, root.Migrations, "migrations")
	require.NoError(t, err)

	return store, func() {
		_ = store.Close()
		_ = pgContainer.Container.Terminate(ctx)
	}
}

// setupSQLite returns a migrated store on a fresh database file.
func setupSQLite(t *testing.T) (*sqlstore.Store, func()) {
	t.Helper()
	ctx := context.Background()

	store, err := sqlstore.NewSQLite(ctx, sqlstore.SQLiteOptions{
		Path: filepath.Join(t.TempDir(), "test.db"),
	})
	require.NoError(t, err)

	_, err = store.Migrate(ctx, root.Migrations, "migrations")
	require.NoError(t, err)

	return store, func() {
		_ = store.Close()
	}
}

type storeSetup struct {
	name  string
	setup func(t *testing.T) (*sqlstore.Store, func())
}

func allStores() []storeSetup {
	return []storeSetup{
		{name: sqlstore.DialectSQLite, setup: setupSQLite},
		{name: sqlstore.DialectPostgres, setup: setupPostgres},
	}
}

func TestNewSQLite_EmptyPath(t *testing.T) {
	t.Parallel()

	_, err := sqlstore.NewSQLite(context.Background(), sqlstore.SQLiteOptions{})
	require.Error(t, err)
}

func TestStore_Ping(t *testing.T) {
	t.Parallel()

	store, cleanup := setupSQLite(t)
	t.Cleanup(cleanup)
	ctx := context.Background()

	require.NoError(t, store.Ping(ctx))

	tx, err := store.Begin(ctx)
	require.NoError(t, err)
	require.ErrorIs(t, tx.(*sqlstore.Store).Ping(ctx), storage.ErrAlreadyInTx)
	require.NoError(t, tx.Rollback())
}

func TestStore_Migrate(t *testing.T) {
	t.Parallel()

	store, cleanup := setupSQLite(t)
	t.Cleanup(cleanup)

	// running again is a no-op at the same version
	version, err := store.Migrate(context.Background(), root.Migrations, "migrations")
	require.NoError(t, err)
	require.EqualValues(t, 1, version)
	require.Equal(t, sqlstore.DialectSQLite, store.Dialect())
}
