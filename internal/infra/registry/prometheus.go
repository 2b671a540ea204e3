package registry

import (
	"github.com/S3b4sB0t3r0/evg-server/internal/infra/components/prometheus"
	"github.com/S3b4sB0t3r0/evg-server/internal/infra/config"
	"github.com/S3b4sB0t3r0/evg-server/internal/infra/consts"
	"github.com/S3b4sB0t3r0/evg-server/internal/infra/core"
)

func init() {
	Register(consts.COMPONENT_PROMETHEUS, func(cfg *config.AppConfig, c *core.Container) (bool, core.Component, error) {
		if cfg.Prometheus == nil || !cfg.Prometheus.Enabled {
			return false, nil, nil
		}
		factory := prometheus.NewFactory()
		comp, err := factory.Create(cfg.Prometheus)
		if err != nil {
			return true, nil, err
		}
		return true, comp, nil
	})
}
