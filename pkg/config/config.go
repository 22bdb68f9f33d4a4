package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/angelmondragon/easydial-core/pkg/enums"
	"github.com/kelseyhightower/envconfig"
	"go.uber.org/multierr"
)

type Config struct {
	App     AppConfig
	Storage StorageConfig
	Region  RegionConfig
	Call    CallConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := multierr.Combine(cfg.Region.validate(), cfg.Storage.validate()); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"EASYDIAL_APP_ENV" default:"dev"`
	LogLevel     string `envconfig:"EASYDIAL_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"EASYDIAL_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

// StorageConfig selects the embedded datastore. SQLite is the on-device
// default; postgres serves shared kiosk deployments.
type StorageConfig struct {
	Driver      string `envconfig:"EASYDIAL_DB_DRIVER" default:"sqlite"`
	DSN         string `envconfig:"EASYDIAL_DB_DSN" default:"file:easydial.db?cache=shared"`
	AutoMigrate bool   `envconfig:"EASYDIAL_AUTO_MIGRATE" default:"false"`
}

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

func (s StorageConfig) validate() error {
	switch s.Driver {
	case DriverSQLite, DriverPostgres:
		return nil
	default:
		return fmt.Errorf("unsupported storage driver %q", s.Driver)
	}
}

// RegionConfig fixes the region used before any location fix arrives and the
// migration policy applied by the contact store on load.
type RegionConfig struct {
	Default         string `envconfig:"EASYDIAL_DEFAULT_REGION" default:"us"`
	MigrationPolicy string `envconfig:"EASYDIAL_MIGRATION_POLICY" default:"reconcile"`
}

func (r RegionConfig) validate() error {
	if _, err := enums.ParseAppRegion(r.Default); err != nil {
		return fmt.Errorf("default region: %w", err)
	}
	if _, err := enums.ParseMigrationPolicy(r.MigrationPolicy); err != nil {
		return fmt.Errorf("migration policy: %w", err)
	}
	return nil
}

// DefaultRegion returns the parsed fallback region.
func (r RegionConfig) DefaultRegion() enums.AppRegion {
	region, err := enums.ParseAppRegion(r.Default)
	if err != nil {
		return enums.AppRegionUS
	}
	return region
}

// Policy returns the parsed migration policy.
func (r RegionConfig) Policy() enums.MigrationPolicy {
	policy, err := enums.ParseMigrationPolicy(r.MigrationPolicy)
	if err != nil {
		return enums.MigrationPolicyReconcile
	}
	return policy
}

// CallConfig tunes the simulated call.
type CallConfig struct {
	ConnectDelay time.Duration `envconfig:"EASYDIAL_CALL_CONNECT_DELAY" default:"2s"`
}
