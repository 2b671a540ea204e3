package config

import (
	"github.com/S3b4sB0t3r0/evg-server/internal/infra/components/http_server"
	"github.com/S3b4sB0t3r0/evg-server/internal/infra/components/logging"
	"github.com/S3b4sB0t3r0/evg-server/internal/infra/components/mysqlgorm"
	"github.com/S3b4sB0t3r0/evg-server/internal/infra/components/prometheus"
	"github.com/S3b4sB0t3r0/evg-server/internal/infra/components/redis"
	"github.com/S3b4sB0t3r0/evg-server/internal/infra/components/telemetry"
)

// AppConfig is the full application configuration tree. The biz_config
// subtree is opaque to the framework and decoded into a pointer supplied by
// the project (see Loader.SetBizConfig).
type AppConfig struct {
	APPInfo    *APPInfo                      `yaml:"app_info" json:"app_info"`
	Logging    *logging.LoggingConfig        `yaml:"logging" json:"logging"`
	HTTPServer *http_server.HTTPServerConfig `yaml:"http_server" json:"http_server"`
	MySQLGORM  *mysqlgorm.Config             `yaml:"mysql_gorm" json:"mysql_gorm"`
	Redis      *redis.Config                 `yaml:"redis" json:"redis"`
	Prometheus *prometheus.Config            `yaml:"prometheus" json:"prometheus"`
	Telemetry  *telemetry.Config             `yaml:"telemetry" json:"telemetry"`
	BizConfig  any                           `yaml:"biz_config" json:"biz_config"`
}

type APPInfo struct {
	APPName string `yaml:"app_name" json:"app_name"`
	ENV     string `yaml:"env" json:"env"`
}
