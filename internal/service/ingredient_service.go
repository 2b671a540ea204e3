package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	bizConfig "github.com/S3b4sB0t3r0/evg-server/internal/config"
	bizConsts "github.com/S3b4sB0t3r0/evg-server/internal/consts"
	"github.com/S3b4sB0t3r0/evg-server/internal/dao"
	"github.com/S3b4sB0t3r0/evg-server/internal/infra/core"
	"github.com/S3b4sB0t3r0/evg-server/internal/listview"
	"github.com/S3b4sB0t3r0/evg-server/internal/model"
)

// IngredientService backs the kitchen stock console.
type IngredientService struct {
	*core.BaseComponent
	IngredientDao dao.IngredientDao `infra:"dep:ingredient_dao"`

	cfg *bizConfig.BizConfig
}

func NewIngredientService(cfg *bizConfig.BizConfig) *IngredientService {
	return &IngredientService{
		BaseComponent: core.NewBaseComponent(bizConsts.COMP_SVC_INGREDIENT),
		cfg:           cfg,
	}
}

func (s *IngredientService) List(ctx context.Context, vs listview.ViewState) (listview.Result[*model.Ingredient], error) {
	records, err := s.IngredientDao.ListAll(ctx, s.cfg.Listing.MaxRows)
	if err != nil {
		return listview.Result[*model.Ingredient]{}, err
	}
	return ingredientPipeline.Apply(records, vs, time.Now()), nil
}

// LowStock returns ingredients at or below their threshold.
func (s *IngredientService) LowStock(ctx context.Context) ([]*model.Ingredient, error) {
	records, err := s.IngredientDao.ListAll(ctx, s.cfg.Listing.MaxRows)
	if err != nil {
		return nil, err
	}
	low := make([]*model.Ingredient, 0)
	for _, ing := range records {
		if ing.LowStock() {
			low = append(low, ing)
		}
	}
	return low, nil
}

func (s *IngredientService) Create(ctx context.Context, ing *model.Ingredient) error {
	if err := validateIngredient(ing); err != nil {
		return err
	}
	return s.IngredientDao.Create(ctx, ing)
}

func (s *IngredientService) Update(ctx context.Context, ing *model.Ingredient) error {
	if err := validateIngredient(ing); err != nil {
		return err
	}
	return s.IngredientDao.Update(ctx, ing)
}

func (s *IngredientService) SetQuantity(ctx context.Context, id int64, cantidad float64) error {
	if cantidad < 0 {
		return fmt.Errorf("cantidad must be >= 0")
	}
	return s.IngredientDao.SetQuantity(ctx, id, cantidad)
}

func (s *IngredientService) Delete(ctx context.Context, id int64) error {
	return s.IngredientDao.Delete(ctx, id)
}

func validateIngredient(ing *model.Ingredient) error {
	ing.Nombre = strings.TrimSpace(ing.Nombre)
	ing.Unidad = strings.TrimSpace(ing.Unidad)
	if ing.Nombre == "" {
		return fmt.Errorf("nombre required")
	}
	if ing.Unidad == "" {
		return fmt.Errorf("unidad required")
	}
	if ing.Cantidad < 0 || ing.Umbral < 0 {
		return fmt.Errorf("cantidad and umbral must be >= 0")
	}
	return nil
}
