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

type ProductDao interface {
	core.Component
	Create(ctx context.Context, p *model.Product) error
	Get(ctx context.Context, id int64) (*model.Product, error)
	ListAll(ctx context.Context, limit int) ([]*model.Product, error)
	ListAvailable(ctx context.Context, limit int) ([]*model.Product, error)
	Update(ctx context.Context, p *model.Product) error
	SetAvailability(ctx context.Context, id int64, disponible bool) error
	AdjustStock(ctx context.Context, id int64, delta int) error
	SoftDelete(ctx context.Context, id int64) error
	BatchCreate(ctx context.Context, list []*model.Product) error
}

type productDaoImpl struct {
	*core.BaseComponent
	GormComp *mg.GormComponent `infra:"dep:mysql_gorm"`
	db       *gorm.DB
	dsName   string
}

func NewProductDao(dsName string) ProductDao {
	return &productDaoImpl{
		BaseComponent: core.NewBaseComponent(bizConsts.COMP_DAO_PRODUCT, consts.COMPONENT_LOGGING),
		dsName:        dsName,
	}
}

func (d *productDaoImpl) Start(ctx context.Context) error {
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

func (d *productDaoImpl) Create(ctx context.Context, p *model.Product) error {
	return d.db.WithContext(ctx).Create(p).Error
}

func (d *productDaoImpl) Get(ctx context.Context, id int64) (*model.Product, error) {
	var p model.Product
	if err := d.db.WithContext(ctx).Where("id=? AND deleted=0", id).First(&p).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (d *productDaoImpl) ListAll(ctx context.Context, limit int) ([]*model.Product, error) {
	var list []*model.Product
	q := d.db.WithContext(ctx).Where("deleted=0").Order("id")
	if limit > 0 {
		q = q.Limit(limit)
	}
	if err := q.Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

func (d *productDaoImpl) ListAvailable(ctx context.Context, limit int) ([]*model.Product, error) {
	var list []*model.Product
	q := d.db.WithContext(ctx).Where("deleted=0 AND disponible=1").Order("categoria, nombre")
	if limit > 0 {
		q = q.Limit(limit)
	}
	if err := q.Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

func (d *productDaoImpl) Update(ctx context.Context, p *model.Product) error {
	res := d.db.WithContext(ctx).Model(&model.Product{}).
		Where("id=? AND deleted=0", p.ID).
		Updates(map[string]any{
			"nombre":      p.Nombre,
			"descripcion": p.Descripcion,
			"categoria":   p.Categoria,
			"precio":      p.Precio,
			"imagen":      p.Imagen,
			"disponible":  p.Disponible,
			"stock":       p.Stock,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (d *productDaoImpl) SetAvailability(ctx context.Context, id int64, disponible bool) error {
	res := d.db.WithContext(ctx).Model(&model.Product{}).
		Where("id=? AND deleted=0", id).
		Update("disponible", disponible)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// AdjustStock applies a relative stock change, clamped at zero in SQL so
// concurrent checkouts cannot drive stock negative.
func (d *productDaoImpl) AdjustStock(ctx context.Context, id int64, delta int) error {
	res := d.db.WithContext(ctx).Model(&model.Product{}).
		Where("id=? AND deleted=0", id).
		Update("stock", gorm.Expr("GREATEST(stock + ?, 0)", delta))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (d *productDaoImpl) SoftDelete(ctx context.Context, id int64) error {
	return d.db.WithContext(ctx).Model(&model.Product{}).Where("id=?", id).Update("deleted", 1).Error
}

func (d *productDaoImpl) BatchCreate(ctx context.Context, list []*model.Product) error {
	if len(list) == 0 {
		return nil
	}
	return d.db.WithContext(ctx).CreateInBatches(list, 200).Error
}
