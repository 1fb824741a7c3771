package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"zctadb/internal/config"

	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load("")
	require.NoError(t, err)

	require.Equal(t, config.DriverSQLite, cfg.Database.Driver)
	require.Equal(t, 1000, cfg.Source.Window)
	require.Equal(t, 4, cfg.Export.DigitMax)
	require.Equal(t, 100, cfg.Export.PointMax)
	require.InDelta(t, 0.0001, cfg.Export.ToleranceStep, 1e-12)
	require.Equal(t, 500*time.Millisecond, cfg.Export.ProgressInterval)
	require.Equal(t, config.BoxOwnerExterior, cfg.Export.InteriorBoxOwner)
	require.Equal(t, "/metrics", cfg.Metrics.Path)
}

func TestLoad_YAMLWithEnvOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(`
database:
  driver: postgres
  host: db.internal
  port: 6432
  name: zcta
export:
  state: ca
  pointMax: 50
`), 0o600))
	t.Setenv("EXPORT_DIGIT_MAX", "6")

	cfg, err := config.Load(path)
	require.NoError(t, err)
	require.Equal(t, config.DriverPostgres, cfg.Database.Driver)
	require.Equal(t, 50, cfg.Export.PointMax)
	require.Equal(t, 6, cfg.Export.DigitMax)
	require.Equal(t, "db.internal:6432/zcta", cfg.DatabaseName())
}

func TestLoad_Invalid(t *testing.T) {
	t.Setenv("EXPORT_POINT_MAX", "3")

	_, err := config.Load("")
	require.Error(t, err)
}

func TestValidate(t *testing.T) {
	valid := func() *config.Config {
		cfg, err := config.Load("")
		require.NoError(t, err)

		return cfg
	}

	tests := []struct {
		name   string
		mutate func(cfg *config.Config)
	}{
		{"driver", func(cfg *config.Config) { cfg.Database.Driver = "mysql" }},
		{"box owner", func(cfg *config.Config) { cfg.Export.InteriorBoxOwner = "both" }},
		{"window", func(cfg *config.Config) { cfg.Source.Window = 0 }},
		{"digit max", func(cfg *config.Config) { cfg.Export.DigitMax = -1 }},
		{"tolerance step", func(cfg *config.Config) { cfg.Export.ToleranceStep = 0 }},
		{"iterations", func(cfg *config.Config) { cfg.Export.MaxSimplifyIterations = 0 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)
			require.Error(t, cfg.Validate())
		})
	}
}

func TestSQLitePath(t *testing.T) {
	t.Parallel()

	var cfg config.Config
	require.Equal(t, "address.db", cfg.SQLitePath())
	require.Equal(t, "address.db", cfg.DatabaseName())

	cfg.Export.State = "CA"
	require.Equal(t, "ca_address.db", cfg.SQLitePath())

	cfg.Database.Path = "/data/zcta.db"
	require.Equal(t, "/data/zcta.db", cfg.SQLitePath())
}
