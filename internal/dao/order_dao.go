package dao

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	bizConsts "github.com/S3b4sB0t3r0/evg-server/internal/consts"
	"github.com/S3b4sB0t3r0/evg-server/internal/model"
	mg "github.com/S3b4sB0t3r0/evg-server/internal/infra/components/mysqlgorm"
	"github.com/S3b4sB0t3r0/evg-server/internal/infra/consts"
	"github.com/S3b4sB0t3r0/evg-server/internal/infra/core"
)

// StatusCount is one row of the by-status aggregation.
type StatusCount struct {
	Estado string `json:"estado"`
	Count  int64  `json:"count"`
}

// DailyRevenue is one row of the per-day revenue aggregation. Dia carries
// the calendar date in YYYY-MM-DD.
type DailyRevenue struct {
	Dia     string `json:"dia"`
	Revenue int64  `json:"revenue"`
	Orders  int64  `json:"orders"`
}

// ProductSales is one row of the top-products aggregation.
type ProductSales struct {
	ProductID int64  `json:"product_id"`
	Nombre    string `json:"nombre"`
	Cantidad  int64  `json:"cantidad"`
	Revenue   int64  `json:"revenue"`
}

type OrderDao interface {
	core.Component
	Create(ctx context.Context, o *model.Order) error
	Get(ctx context.Context, id int64) (*model.Order, error)
	ListAll(ctx context.Context, limit int) ([]*model.Order, error)
	ListByCorreo(ctx context.Context, correo string, limit int) ([]*model.Order, error)
	UpdateStatus(ctx context.Context, id int64, estado string) error
	SoftDelete(ctx context.Context, id int64) error

	CountByStatus(ctx context.Context) ([]StatusCount, error)
	RevenueByDay(ctx context.Context, since time.Time) ([]DailyRevenue, error)
	TopProducts(ctx context.Context, since time.Time, limit int) ([]ProductSales, error)
}

type orderDaoImpl struct {
	*core.BaseComponent
	GormComp *mg.GormComponent `infra:"dep:mysql_gorm"`
	db       *gorm.DB
	dsName   string
}

func NewOrderDao(dsName string) OrderDao {
	return &orderDaoImpl{
		BaseComponent: core.NewBaseComponent(bizConsts.COMP_DAO_ORDER, consts.COMPONENT_LOGGING),
		dsName:        dsName,
	}
}

func (d *orderDaoImpl) Start(ctx context.Context) error {
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

// Create writes the order and its item snapshots in one transaction.
func (d *orderDaoImpl) Create(ctx context.Context, o *model.Order) error {
	return d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(o).Error
	})
}

func (d *orderDaoImpl) Get(ctx context.Context, id int64) (*model.Order, error) {
	var o model.Order
	if err := d.db.WithContext(ctx).Preload("Items").
		Where("id=? AND deleted=0", id).First(&o).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

func (d *orderDaoImpl) ListAll(ctx context.Context, limit int) ([]*model.Order, error) {
	var list []*model.Order
	q := d.db.WithContext(ctx).Preload("Items").Where("deleted=0").Order("created_at DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	if err := q.Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

func (d *orderDaoImpl) ListByCorreo(ctx context.Context, correo string, limit int) ([]*model.Order, error) {
	var list []*model.Order
	q := d.db.WithContext(ctx).Preload("Items").
		Where("correo=? AND deleted=0", correo).Order("created_at DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	if err := q.Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

func (d *orderDaoImpl) UpdateStatus(ctx context.Context, id int64, estado string) error {
	res := d.db.WithContext(ctx).Model(&model.Order{}).
		Where("id=? AND deleted=0", id).
		Update("estado", estado)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (d *orderDaoImpl) SoftDelete(ctx context.Context, id int64) error {
	return d.db.WithContext(ctx).Model(&model.Order{}).Where("id=?", id).Update("deleted", 1).Error
}

func (d *orderDaoImpl) CountByStatus(ctx context.Context) ([]StatusCount, error) {
	var rows []StatusCount
	err := d.db.WithContext(ctx).Model(&model.Order{}).
		Select("estado, COUNT(*) AS count").
		Where("deleted=0").
		Group("estado").
		Scan(&rows).Error
	return rows, err
}

func (d *orderDaoImpl) RevenueByDay(ctx context.Context, since time.Time) ([]DailyRevenue, error) {
	var rows []DailyRevenue
	err := d.db.WithContext(ctx).Model(&model.Order{}).
		Select("DATE_FORMAT(created_at, '%Y-%m-%d') AS dia, SUM(total) AS revenue, COUNT(*) AS orders").
		Where("deleted=0 AND estado <> ? AND created_at >= ?", bizConsts.OrderCancelado, since).
		Group("dia").
		Order("dia").
		Scan(&rows).Error
	return rows, err
}

func (d *orderDaoImpl) TopProducts(ctx context.Context, since time.Time, limit int) ([]ProductSales, error) {
	var rows []ProductSales
	q := d.db.WithContext(ctx).Table("order_items oi").
		Select("oi.product_id, oi.nombre, SUM(oi.cantidad) AS cantidad, SUM(oi.cantidad * oi.precio) AS revenue").
		Joins("JOIN orders o ON o.id = oi.order_id").
		Where("o.deleted=0 AND o.estado <> ? AND o.created_at >= ?", bizConsts.OrderCancelado, since).
		Group("oi.product_id, oi.nombre").
		Order("cantidad DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	err := q.Scan(&rows).Error
	return rows, err
}
