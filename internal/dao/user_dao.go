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

type UserDao interface {
	core.Component
	Create(ctx context.Context, u *model.User) error
	Get(ctx context.Context, id int64) (*model.User, error)
	GetByCorreo(ctx context.Context, correo string) (*model.User, error)
	ListAll(ctx context.Context, limit int) ([]*model.User, error)
	Update(ctx context.Context, u *model.User) error
	UpdateEstado(ctx context.Context, id int64, estado string) error
	SoftDelete(ctx context.Context, id int64) error
}

type userDaoImpl struct {
	*core.BaseComponent
	GormComp *mg.GormComponent `infra:"dep:mysql_gorm"`
	db       *gorm.DB
	dsName   string
}

func NewUserDao(dsName string) UserDao {
	return &userDaoImpl{
		BaseComponent: core.NewBaseComponent(bizConsts.COMP_DAO_USER, consts.COMPONENT_LOGGING),
		dsName:        dsName,
	}
}

func (d *userDaoImpl) Start(ctx context.Context) error {
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

func (d *userDaoImpl) Create(ctx context.Context, u *model.User) error {
	return d.db.WithContext(ctx).Create(u).Error
}

func (d *userDaoImpl) Get(ctx context.Context, id int64) (*model.User, error) {
	var u model.User
	if err := d.db.WithContext(ctx).Where("id=? AND deleted=0", id).First(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (d *userDaoImpl) GetByCorreo(ctx context.Context, correo string) (*model.User, error) {
	var u model.User
	if err := d.db.WithContext(ctx).Where("correo=? AND deleted=0", correo).First(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (d *userDaoImpl) ListAll(ctx context.Context, limit int) ([]*model.User, error) {
	var list []*model.User
	q := d.db.WithContext(ctx).Where("deleted=0").Order("nombre")
	if limit > 0 {
		q = q.Limit(limit)
	}
	if err := q.Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

func (d *userDaoImpl) Update(ctx context.Context, u *model.User) error {
	res := d.db.WithContext(ctx).Model(&model.User{}).
		Where("id=? AND deleted=0", u.ID).
		Updates(map[string]any{
			"nombre":   u.Nombre,
			"correo":   u.Correo,
			"telefono": u.Telefono,
			"rol":      u.Rol,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (d *userDaoImpl) UpdateEstado(ctx context.Context, id int64, estado string) error {
	res := d.db.WithContext(ctx).Model(&model.User{}).
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

func (d *userDaoImpl) SoftDelete(ctx context.Context, id int64) error {
	return d.db.WithContext(ctx).Model(&model.User{}).Where("id=?", id).Update("deleted", 1).Error
}
