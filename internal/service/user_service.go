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

// UserService backs the admin user console. The category dimension of the
// list pipeline filters by rol, the status dimension by estado.
type UserService struct {
	*core.BaseComponent
	UserDao dao.UserDao `infra:"dep:user_dao"`

	cfg *bizConfig.BizConfig
}

func NewUserService(cfg *bizConfig.BizConfig) *UserService {
	return &UserService{
		BaseComponent: core.NewBaseComponent(bizConsts.COMP_SVC_USER),
		cfg:           cfg,
	}
}

func (s *UserService) List(ctx context.Context, vs listview.ViewState) (listview.Result[*model.User], error) {
	records, err := s.UserDao.ListAll(ctx, s.cfg.Listing.MaxRows)
	if err != nil {
		return listview.Result[*model.User]{}, err
	}
	return userPipeline.Apply(records, vs, time.Now()), nil
}

func (s *UserService) Create(ctx context.Context, u *model.User) error {
	if err := validateUser(u); err != nil {
		return err
	}
	if u.Estado == "" {
		u.Estado = bizConsts.EstadoActivo
	}
	return s.UserDao.Create(ctx, u)
}

func (s *UserService) Update(ctx context.Context, u *model.User) error {
	if err := validateUser(u); err != nil {
		return err
	}
	return s.UserDao.Update(ctx, u)
}

// ToggleEstado flips activo <-> inactivo and returns the new state.
func (s *UserService) ToggleEstado(ctx context.Context, id int64) (string, error) {
	u, err := s.UserDao.Get(ctx, id)
	if err != nil {
		return "", err
	}
	next := bizConsts.EstadoActivo
	if u.Estado == bizConsts.EstadoActivo {
		next = bizConsts.EstadoInactivo
	}
	if err := s.UserDao.UpdateEstado(ctx, id, next); err != nil {
		return "", err
	}
	return next, nil
}

func (s *UserService) Delete(ctx context.Context, id int64) error {
	return s.UserDao.SoftDelete(ctx, id)
}

func validateUser(u *model.User) error {
	u.Nombre = strings.TrimSpace(u.Nombre)
	u.Correo = strings.ToLower(strings.TrimSpace(u.Correo))
	u.Rol = strings.ToLower(strings.TrimSpace(u.Rol))
	if u.Nombre == "" || u.Correo == "" {
		return fmt.Errorf("nombre and correo required")
	}
	if !strings.Contains(u.Correo, "@") {
		return fmt.Errorf("invalid correo: %s", u.Correo)
	}
	if !bizConsts.ValidRol(u.Rol) {
		return fmt.Errorf("invalid rol: %s", u.Rol)
	}
	return nil
}
