package registry_ext

import (
	bizConfig "github.com/S3b4sB0t3r0/evg-server/internal/config"
	bizConsts "github.com/S3b4sB0t3r0/evg-server/internal/consts"
	"github.com/S3b4sB0t3r0/evg-server/internal/dao"
	"github.com/S3b4sB0t3r0/evg-server/internal/infra/config"
	"github.com/S3b4sB0t3r0/evg-server/internal/infra/core"
	"github.com/S3b4sB0t3r0/evg-server/internal/infra/registry"
	"github.com/S3b4sB0t3r0/evg-server/internal/migrate"
)

func init() {
	registry.RegisterAuto(func(cfg *config.AppConfig, c *core.Container) (bool, core.Component, error) {
		// biz_config has been decoded by now; fill the gaps once.
		bizConfig.GetBizConfig().Normalize()
		return true, migrate.NewComponent(bizConsts.DATASOURCE, &bizConfig.GetBizConfig().Migrate), nil
	})
	registry.RegisterAuto(func(cfg *config.AppConfig, c *core.Container) (bool, core.Component, error) {
		return true, dao.NewProductDao(bizConsts.DATASOURCE), nil
	})
	registry.RegisterAuto(func(cfg *config.AppConfig, c *core.Container) (bool, core.Component, error) {
		return true, dao.NewIngredientDao(bizConsts.DATASOURCE), nil
	})
	registry.RegisterAuto(func(cfg *config.AppConfig, c *core.Container) (bool, core.Component, error) {
		return true, dao.NewOrderDao(bizConsts.DATASOURCE), nil
	})
	registry.RegisterAuto(func(cfg *config.AppConfig, c *core.Container) (bool, core.Component, error) {
		return true, dao.NewUserDao(bizConsts.DATASOURCE), nil
	})
	registry.RegisterAuto(func(cfg *config.AppConfig, c *core.Container) (bool, core.Component, error) {
		return true, dao.NewContactDao(bizConsts.DATASOURCE), nil
	})
}
