package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Supported database drivers.
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// Interior bounding box ownership policies.
const (
	// BoxOwnerExterior attaches a hole's bounding box to the enclosing
	// exterior area.
	BoxOwnerExterior = "exterior"
	// BoxOwnerInterior attaches a hole's bounding box to the hole's own area.
	BoxOwnerInterior = "interior"
)

// Config represents the application configuration structure.
// It contains settings for the environment, the source dataset, the database
// connection, the export pipeline and the metrics listener.
type Config struct {
	// Environment specifies the current running environment (development, production, etc.)
	Environment string `env:"ENVIRONMENT" env-default:"development" yaml:"environment"`
	// LogLevel overrides the environment's default log level when set
	LogLevel string `env:"LOG_LEVEL" yaml:"logLevel"`

	// Source describes the dataset to import
	Source struct {
		// Path is the .shp or .geojson file holding ZCTA features
		Path string `env:"SOURCE_PATH" env-default:"tl_2020_us_zcta520.shp" yaml:"path"`
		// Window is the number of rows fetched per read
		Window int `env:"SOURCE_WINDOW" env-default:"1000" yaml:"window"`
		// TimerInterval is the refresh interval of the elapsed read timer
		TimerInterval time.Duration `env:"SOURCE_TIMER_INTERVAL" env-default:"100ms" yaml:"timerInterval"`
	} `yaml:"source"`

	// Database contains all database connection related configurations
	Database struct {
		// Driver selects the backend: sqlite or postgres
		Driver string `env:"DATABASE_DRIVER" env-default:"sqlite" yaml:"driver"`
		// Path is the SQLite database file. Empty derives a name from the region
		Path string `env:"DATABASE_PATH" yaml:"path"`
		// Username for database authentication
		Username string `env:"DATABASE_USERNAME" env-default:"zctadb" yaml:"username"`
		// Password for database authentication
		Password string `env:"DATABASE_PASSWORD" env-default:"zctadb" yaml:"password"`
		// Host is the database server hostname or IP address
		Host string `env:"DATABASE_HOST" env-default:"localhost" yaml:"host"`
		// Port is the database server port number
		Port int `env:"DATABASE_PORT" env-default:"5432" yaml:"port"`
		// SslMode defines the SSL mode for the database connection
		SslMode string `env:"DATABASE_SSL_MODE" env-default:"disable" yaml:"sslMode"`
		// DatabaseName is the name of the database to connect to
		DatabaseName string `env:"DATABASE_NAME" env-default:"zctadb" yaml:"name"`
		// MaxOpenConnections limits the number of open connections to the database
		MaxOpenConnections int `env:"DATABASE_MAX_OPEN_CONNECTIONS" env-default:"4" yaml:"maxOpenConnections"`
		// MaxIdleConnections limits the number of connections in the idle connection pool
		MaxIdleConnections int `env:"DATABASE_MAX_IDLE_CONNECTIONS" env-default:"1" yaml:"maxIdleConnections"`
		// ConnMaxLifetime is the maximum amount of time a connection may be reused
		ConnMaxLifetime time.Duration `env:"DATABASE_CONNECTION_MAX_LIFETIME" env-default:"30m" yaml:"connMaxLifetime"`
		// ConnMaxIdleTime is the maximum amount of time a connection may be idle
		ConnMaxIdleTime time.Duration `env:"DATABASE_CONNECTION_MAX_IDLE_TIME" env-default:"5m" yaml:"connMaxIdleTime"`
	} `yaml:"database"`

	// Export tunes geometry processing and progress reporting
	Export struct {
		// State restricts the export to one region's ZIP ranges. Empty exports all
		State string `env:"EXPORT_STATE" yaml:"state"`
		// DigitMax is the number of decimal places kept on stored coordinates
		DigitMax int `env:"EXPORT_DIGIT_MAX" env-default:"4" yaml:"digitMax"`
		// PointMax bounds the number of points of a simplified exterior ring
		PointMax int `env:"EXPORT_POINT_MAX" env-default:"100" yaml:"pointMax"`
		// ToleranceStep is the increment of the simplification tolerance search
		ToleranceStep float64 `env:"EXPORT_TOLERANCE_STEP" env-default:"0.0001" yaml:"toleranceStep"`
		// MaxSimplifyIterations caps the tolerance search per polygon
		MaxSimplifyIterations int `env:"EXPORT_MAX_SIMPLIFY_ITERATIONS" env-default:"10000" yaml:"maxSimplifyIterations"` //nolint: lll
		// ProgressInterval is the minimum time between progress reports
		ProgressInterval time.Duration `env:"EXPORT_PROGRESS_INTERVAL" env-default:"500ms" yaml:"progressInterval"`
		// InteriorBoxOwner is either exterior or interior
		InteriorBoxOwner string `env:"EXPORT_INTERIOR_BOX_OWNER" env-default:"exterior" yaml:"interiorBoxOwner"`
		// ValidOnly skips features without the regular active ZCTA classification
		ValidOnly bool `env:"EXPORT_VALID_ONLY" env-default:"false" yaml:"validOnly"`
	} `yaml:"export"`

	// Metrics configures the prometheus listener of long running exports
	Metrics struct {
		// Addr is the address the metrics listener binds to. Empty disables it
		Addr string `env:"METRICS_ADDR" yaml:"addr"`
		// Path defines the URL path where metrics are exposed
		Path string `env:"METRICS_PATH" env-default:"/metrics" yaml:"path"`
		// ReadHeaderTimeout is the amount of time allowed to read request headers
		ReadHeaderTimeout time.Duration `env:"METRICS_READ_HEADER_TIMEOUT" env-default:"5s" yaml:"readHeaderTimeout"`
		// WriteTimeout bounds a response, including CPU profiles served by pprof
		WriteTimeout time.Duration `env:"METRICS_WRITE_TIMEOUT" env-default:"60s" yaml:"writeTimeout"`
		// HealthTimeout bounds the database ping of the health endpoint
		HealthTimeout time.Duration `env:"METRICS_HEALTH_TIMEOUT" env-default:"2s" yaml:"healthTimeout"`
	} `yaml:"metrics"`

	// GracefulShutdownTimeout is the maximum duration to wait for the metrics listener to stop
	GracefulShutdownTimeout time.Duration `env:"GRACEFUL_SHUTDOWN_TIMEOUT" env-default:"10s" yaml:"gracefulShutdownTimeout"` //nolint: lll
}

// Load receives the path for yaml config file and returns a filled Config
// struct. An empty path reads the configuration from the environment only.
func Load(configPath string) (*Config, error) {
	var cfg Config
	var err error
	if configPath == "" {
		err = cleanenv.ReadEnv(&cfg)
	} else {
		err = cleanenv.ReadConfig(configPath, &cfg)
	}
	if err != nil {
		return nil, fmt.Errorf("could not read config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks value ranges cleanenv cannot express.
func (c *Config) Validate() error {
	switch c.Database.Driver {
	case DriverSQLite, DriverPostgres:
	default:
		return fmt.Errorf("unknown database driver %q", c.Database.Driver)
	}

	switch c.Export.InteriorBoxOwner {
	case BoxOwnerExterior, BoxOwnerInterior:
	default:
		return fmt.Errorf("unknown interior box owner %q", c.Export.InteriorBoxOwner)
	}

	if c.Source.Window <= 0 {
		return fmt.Errorf("source window must be positive, got %d", c.Source.Window)
	}
	if c.Export.DigitMax < 0 {
		return fmt.Errorf("digit max must not be negative, got %d", c.Export.DigitMax)
	}
	if c.Export.PointMax < 4 {
		return fmt.Errorf("point max must be at least 4, got %d", c.Export.PointMax)
	}
	if c.Export.ToleranceStep <= 0 {
		return fmt.Errorf("tolerance step must be positive, got %g", c.Export.ToleranceStep)
	}
	if c.Export.MaxSimplifyIterations <= 0 {
		return fmt.Errorf("max simplify iterations must be positive, got %d", c.Export.MaxSimplifyIterations)
	}

	return nil
}

// SQLitePath returns the configured SQLite file, or the region default:
// "<state>_address.db" (lower case) when a state is selected and "address.db"
// otherwise.
func (c *Config) SQLitePath() string {
	if c.Database.Path != "" {
		return c.Database.Path
	}
	if c.Export.State != "" {
		return strings.ToLower(c.Export.State) + "_address.db"
	}

	return "address.db"
}

// DatabaseName describes the export target for display: the SQLite file or
// the PostgreSQL host and database.
func (c *Config) DatabaseName() string {
	if c.Database.Driver == DriverPostgres {
		return fmt.Sprintf("%s:%d/%s", c.Database.Host, c.Database.Port, c.Database.DatabaseName)
	}

	return c.SQLitePath()
}
