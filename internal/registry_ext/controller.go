package registry_ext

import (
	bizConfig "github.com/S3b4sB0t3r0/evg-server/internal/config"
	bizConsts "github.com/S3b4sB0t3r0/evg-server/internal/consts"
	"github.com/S3b4sB0t3r0/evg-server/internal/api"
	"github.com/S3b4sB0t3r0/evg-server/internal/infra/config"
	appconsts "github.com/S3b4sB0t3r0/evg-server/internal/infra/consts"
	"github.com/S3b4sB0t3r0/evg-server/internal/infra/core"
	"github.com/S3b4sB0t3r0/evg-server/internal/infra/registry"
)

func init() {
	// The http server registers routes against resolved controllers, so it
	// must start after them.
	registry.ExtendRuntimeDependencies(appconsts.COMPONENT_HTTP_SERVER,
		bizConsts.COMP_CTRL_PUBLIC, bizConsts.COMP_CTRL_ADMIN)

	registry.RegisterAuto(func(cfg *config.AppConfig, c *core.Container) (bool, core.Component, error) {
		return true, api.NewPublicController(), nil
	})
	registry.RegisterAuto(func(cfg *config.AppConfig, c *core.Container) (bool, core.Component, error) {
		return true, api.NewAdminController(bizConfig.GetBizConfig()), nil
	})
}
