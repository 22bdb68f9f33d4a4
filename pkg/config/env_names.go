package config

// Prefix handed to envconfig for untagged fields.
const EnvPrefix = "easydial"

const (
	AppEnvDev  = "dev"
	AppEnvProd = "production"
)

// Environment variable names, exported so tests and docs stay in sync with
// the envconfig tags below.
const (
	EnvAppEnv          = "EASYDIAL_APP_ENV"
	EnvLogLevel        = "EASYDIAL_LOG_LEVEL"
	EnvDBDriver        = "EASYDIAL_DB_DRIVER"
	EnvDBDSN           = "EASYDIAL_DB_DSN"
	EnvAutoMigrate     = "EASYDIAL_AUTO_MIGRATE"
	EnvDefaultRegion   = "EASYDIAL_DEFAULT_REGION"
	EnvMigrationPolicy = "EASYDIAL_MIGRATION_POLICY"
	EnvConnectDelay    = "EASYDIAL_CALL_CONNECT_DELAY"
)
