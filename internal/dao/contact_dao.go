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

type ContactDao interface {
	core.Component
	Create(ctx context.Context, m *model.ContactMessage) error
	Get(ctx context.Context, id int64) (*model.ContactMessage, error)
	ListAll(ctx context.Context, limit int) ([]*model.ContactMessage, error)
	UpdateEstado(ctx context.Context, id int64, estado string) error
	Delete(ctx context.Context, id int64) error
}

type contactDaoImpl struct {
	*core.BaseComponent
	GormComp *mg.GormComponent `infra:"dep:mysql_gorm"`
	db       *gorm.DB
	dsName   string
}

func NewContactDao(dsName string) ContactDao {
	return &contactDaoImpl{
		BaseComponent: core.NewBaseComponent(bizConsts.COMP_DAO_CONTACT, consts.COMPONENT_LOGGING),
		dsName:        dsName,
	}
}

func (d *contactDaoImpl) Start(ctx context.Context) error {
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

func (d *contactDaoImpl) Create(ctx context.Context, m *model.ContactMessage) error {
	return d.db.WithContext(ctx).Create(m).Error
}

func (d *contactDaoImpl) Get(ctx context.Context, id int64) (*model.ContactMessage, error) {
	var m model.ContactMessage
	if err := d.db.WithContext(ctx).Where("id=?", id).First(&m).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

func (d *contactDaoImpl) ListAll(ctx context.Context, limit int) ([]*model.ContactMessage, error) {
	var list []*model.ContactMessage
	q := d.db.WithContext(ctx).Order("created_at DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	if err := q.Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

func (d *contactDaoImpl) UpdateEstado(ctx context.Context, id int64, estado string) error {
	res := d.db.WithContext(ctx).Model(&model.ContactMessage{}).
		Where("id=?", id).
		Update("estado", estado)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (d *contactDaoImpl) Delete(ctx context.Context, id int64) error {
	return d.db.WithContext(ctx).Where("id=?", id).Delete(&model.ContactMessage{}).Error
}
