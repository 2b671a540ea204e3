package consts

const (
	ENV_PRODUCTION  = "production"
	ENV_DEVELOPMENT = "development"
	ENV_TEST        = "test"

	DEFAULT_CONFIG_PATH = "config.yaml"

	ENV_APP_ENV     = "APP_ENV"
	ENV_CONFIG_PATH = "APP_CONFIG"

	KEY_TraceID = "trace_id"
)

// Framework component names.
const (
	COMPONENT_LOGGING     = "logging"
	COMPONENT_HTTP_SERVER = "http_server"
	COMPONENT_MYSQL_GORM  = "mysql_gorm"
	COMPONENT_REDIS       = "redis"
	COMPONENT_PROMETHEUS  = "prometheus"
	COMPONENT_TELEMETRY   = "telemetry"
)
