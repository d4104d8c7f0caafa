package config

// EnvPrefix namespaces every environment variable read by envconfig.
const EnvPrefix = "INVENTORY"

const (
	AppEnvDev  = "dev"
	AppEnvProd = "prod"
)

// Canonical environment variable names, shared with tests and deploy config.
const (
	EnvAppEnv   = "INVENTORY_APP_ENV"
	EnvPort     = "INVENTORY_APP_PORT"
	EnvLogLevel = "INVENTORY_LOG_LEVEL"

	EnvDBDSN      = "INVENTORY_DB_DSN"
	EnvDBHost     = "INVENTORY_DB_HOST"
	EnvDBPort     = "INVENTORY_DB_PORT"
	EnvDBUser     = "INVENTORY_DB_USER"
	EnvDBPassword = "INVENTORY_DB_PASSWORD"
	EnvDBName     = "INVENTORY_DB_NAME"

	EnvRedisURL = "INVENTORY_REDIS_URL"
)

var legacyDBEnvVars = []string{EnvDBHost, EnvDBUser, EnvDBName}
