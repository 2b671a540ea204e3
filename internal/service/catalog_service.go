package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	bizConfig "github.com/S3b4sB0t3r0/evg-server/internal/config"
	bizConsts "github.com/S3b4sB0t3r0/evg-server/internal/consts"
	"github.com/S3b4sB0t3r0/evg-server/internal/dao"
	"github.com/S3b4sB0t3r0/evg-server/internal/infra/components/logging"
	redisc "github.com/S3b4sB0t3r0/evg-server/internal/infra/components/redis"
	"github.com/S3b4sB0t3r0/evg-server/internal/infra/core"
	"github.com/S3b4sB0t3r0/evg-server/internal/listview"
	"github.com/S3b4sB0t3r0/evg-server/internal/model"
)

// CatalogService owns the menu/product side: the public menu (served
// through the redis cache), the admin product list pipeline, and product
// mutations which invalidate the cache.
type CatalogService struct {
	*core.BaseComponent
	ProductDao dao.ProductDao         `infra:"dep:product_dao"`
	Redis      *redisc.RedisComponent `infra:"dep:redis?"`

	cfg *bizConfig.BizConfig
}

func NewCatalogService(cfg *bizConfig.BizConfig) *CatalogService {
	return &CatalogService{
		BaseComponent: core.NewBaseComponent(bizConsts.COMP_SVC_CATALOG),
		cfg:           cfg,
	}
}

// Menu returns available products for the storefront, cache-first. Cache
// failures degrade to the database, they never fail the request.
func (s *CatalogService) Menu(ctx context.Context) ([]*model.Product, error) {
	if cached, ok := s.menuFromCache(ctx); ok {
		return cached, nil
	}
	list, err := s.ProductDao.ListAvailable(ctx, s.cfg.Listing.MaxRows)
	if err != nil {
		return nil, err
	}
	s.menuToCache(ctx, list)
	return list, nil
}

func (s *CatalogService) menuFromCache(ctx context.Context) ([]*model.Product, bool) {
	if !s.cacheEnabled() {
		return nil, false
	}
	raw, err := s.Redis.Client().Get(ctx, s.cfg.MenuCache.Key).Bytes()
	if err != nil {
		return nil, false
	}
	var list []*model.Product
	if err := json.Unmarshal(raw, &list); err != nil {
		logging.Warn(ctx, "menu cache decode failed, falling through", zap.Error(err))
		return nil, false
	}
	return list, true
}

func (s *CatalogService) menuToCache(ctx context.Context, list []*model.Product) {
	if !s.cacheEnabled() {
		return
	}
	raw, err := json.Marshal(list)
	if err != nil {
		return
	}
	if err := s.Redis.Client().Set(ctx, s.cfg.MenuCache.Key, raw, s.cfg.MenuCache.TTL).Err(); err != nil {
		logging.Warn(ctx, "menu cache set failed", zap.Error(err))
	}
}

func (s *CatalogService) invalidateMenu(ctx context.Context) {
	if !s.cacheEnabled() {
		return
	}
	if err := s.Redis.Client().Del(ctx, s.cfg.MenuCache.Key).Err(); err != nil {
		logging.Warn(ctx, "menu cache invalidate failed", zap.Error(err))
	}
}

func (s *CatalogService) cacheEnabled() bool {
	return s.cfg.MenuCache.Enabled && s.Redis != nil && s.Redis.Client() != nil
}

// ListProducts runs the admin product list through the shared pipeline.
func (s *CatalogService) ListProducts(ctx context.Context, vs listview.ViewState) (listview.Result[*model.Product], error) {
	records, err := s.ProductDao.ListAll(ctx, s.cfg.Listing.MaxRows)
	if err != nil {
		return listview.Result[*model.Product]{}, err
	}
	return productPipeline.Apply(records, vs, time.Now()), nil
}

func (s *CatalogService) CreateProduct(ctx context.Context, p *model.Product) error {
	if err := validateProduct(p); err != nil {
		return err
	}
	if err := s.ProductDao.Create(ctx, p); err != nil {
		return err
	}
	s.invalidateMenu(ctx)
	return nil
}

func (s *CatalogService) UpdateProduct(ctx context.Context, p *model.Product) error {
	if err := validateProduct(p); err != nil {
		return err
	}
	if err := s.ProductDao.Update(ctx, p); err != nil {
		return err
	}
	s.invalidateMenu(ctx)
	return nil
}

func (s *CatalogService) SetAvailability(ctx context.Context, id int64, disponible bool) error {
	if err := s.ProductDao.SetAvailability(ctx, id, disponible); err != nil {
		return err
	}
	s.invalidateMenu(ctx)
	return nil
}

func (s *CatalogService) DeleteProduct(ctx context.Context, id int64) error {
	if err := s.ProductDao.SoftDelete(ctx, id); err != nil {
		return err
	}
	s.invalidateMenu(ctx)
	return nil
}

func (s *CatalogService) GetProduct(ctx context.Context, id int64) (*model.Product, error) {
	return s.ProductDao.Get(ctx, id)
}

func validateProduct(p *model.Product) error {
	p.Nombre = strings.TrimSpace(p.Nombre)
	p.Categoria = strings.ToLower(strings.TrimSpace(p.Categoria))
	if p.Nombre == "" {
		return fmt.Errorf("nombre required")
	}
	if !bizConsts.ValidCategoria(p.Categoria) {
		return fmt.Errorf("invalid categoria: %s", p.Categoria)
	}
	if p.Precio < 0 {
		return fmt.Errorf("precio must be >= 0")
	}
	if p.Stock < 0 {
		return fmt.Errorf("stock must be >= 0")
	}
	return nil
}
