package dao

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	bizConsts "github.com/S3b4sB0t3r0/evg-server/internal/consts"
	"github.com/S3b4sB0t3r0/evg-server/internal/model"
	mg "github.com/S3b4sB0t3r0/evg-server/internal/infra/components/mysqlgorm"
	"github.com/S3b4sB0t3r0/evg-server/internal/infra/consts"
	"github.com/S3b4sB0t3r0/evg-server/internal/infra/core"
)

type IngredientDao interface {
	core.Component
	Create(ctx context.Context, ing *model.Ingredient) error
	Get(ctx context.Context, id int64) (*model.Ingredient, error)
	ListAll(ctx context.Context, limit int) ([]*model.Ingredient, error)
	Update(ctx context.Context, ing *model.Ingredient) error
	SetQuantity(ctx context.Context, id int64, cantidad float64) error
	Delete(ctx context.Context, id int64) error
	BatchCreate(ctx context.Context, list []*model.Ingredient) error
}

type ingredientDaoImpl struct {
	*core.BaseComponent
	GormComp *mg.GormComponent `infra:"dep:mysql_gorm"`
	db       *gorm.DB
	dsName   string
}

func NewIngredientDao(dsName string) IngredientDao {
	return &ingredientDaoImpl{
		BaseComponent: core.NewBaseComponent(bizConsts.COMP_DAO_INGREDIENT, consts.COMPONENT_LOGGING),
		dsName:        dsName,
	}
}

func (d *ingredientDaoImpl) Start(ctx context.Context) error {
	if err := d.BaseComponent.Start(ctx); err != nil {
		return err
	}
	db, err := d.GormComp.GetDB(d.dsName)
	if err != nil {
		return fmt.Errorf("get gorm db %s failed: %w", d.dsName, err)
	}
	d.db = db
	return nil
}

func (d *ingredientDaoImpl) Create(ctx context.Context, ing *model.Ingredient) error {
	return d.db.WithContext(ctx).Create(ing).Error
}

func (d *ingredientDaoImpl) Get(ctx context.Context, id int64) (*model.Ingredient, error) {
	var ing model.Ingredient
	if err := d.db.WithContext(ctx).Where("id=?", id).First(&ing).Error; err != nil {
		return nil, err
	}
	return &ing, nil
}

func (d *ingredientDaoImpl) ListAll(ctx context.Context, limit int) ([]*model.Ingredient, error) {
	var list []*model.Ingredient
	q := d.db.WithContext(ctx).Order("nombre")
	if limit > 0 {
		q = q.Limit(limit)
	}
	if err := q.Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

func (d *ingredientDaoImpl) Update(ctx context.Context, ing *model.Ingredient) error {
	res := d.db.WithContext(ctx).Model(&model.Ingredient{}).
		Where("id=?", ing.ID).
		Updates(map[string]any{
			"nombre":    ing.Nombre,
			"categoria": ing.Categoria,
			"unidad":    ing.Unidad,
			"cantidad":  ing.Cantidad,
			"umbral":    ing.Umbral,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (d *ingredientDaoImpl) SetQuantity(ctx context.Context, id int64, cantidad float64) error {
	res := d.db.WithContext(ctx).Model(&model.Ingredient{}).
		Where("id=?", id).
		Update("cantidad", cantidad)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (d *ingredientDaoImpl) Delete(ctx context.Context, id int64) error {
	return d.db.WithContext(ctx).Where("id=?", id).Delete(&model.Ingredient{}).Error
}

func (d *ingredientDaoImpl) BatchCreate(ctx context.Context, list []*model.Ingredient) error {
	if len(list) == 0 {
		return nil
	}
	return d.db.WithContext(ctx).CreateInBatches(list, 200).Error
}
