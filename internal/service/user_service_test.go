package service

import (
	"context"
	"fmt"
	"testing"

	bizConsts "github.com/S3b4sB0t3r0/evg-server/internal/consts"
	"github.com/S3b4sB0t3r0/evg-server/internal/infra/core"
	"github.com/S3b4sB0t3r0/evg-server/internal/listview"
	"github.com/S3b4sB0t3r0/evg-server/internal/model"
)

type stubUserDao struct {
	*core.BaseComponent
	users map[int64]*model.User
}

func newStubUserDao(users ...*model.User) *stubUserDao {
	s := &stubUserDao{
		BaseComponent: core.NewBaseComponent("user_dao_stub"),
		users:         map[int64]*model.User{},
	}
	for _, u := range users {
		s.users[u.ID] = u
	}
	return s
}

func (s *stubUserDao) Create(ctx context.Context, u *model.User) error {
	u.ID = int64(len(s.users) + 1)
	s.users[u.ID] = u
	return nil
}

func (s *stubUserDao) Get(ctx context.Context, id int64) (*model.User, error) {
	u, ok := s.users[id]
	if !ok {
		return nil, fmt.Errorf("not found")
	}
	return u, nil
}

func (s *stubUserDao) GetByCorreo(ctx context.Context, correo string) (*model.User, error) {
	for _, u := range s.users {
		if u.Correo == correo {
			return u, nil
		}
	}
	return nil, fmt.Errorf("not found")
}

func (s *stubUserDao) ListAll(ctx context.Context, limit int) ([]*model.User, error) {
	var out []*model.User
	for _, u := range s.users {
		out = append(out, u)
	}
	return out, nil
}

func (s *stubUserDao) Update(ctx context.Context, u *model.User) error {
	s.users[u.ID] = u
	return nil
}

func (s *stubUserDao) UpdateEstado(ctx context.Context, id int64, estado string) error {
	u, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	u.Estado = estado
	return nil
}

func (s *stubUserDao) SoftDelete(ctx context.Context, id int64) error {
	delete(s.users, id)
	return nil
}

func newTestUserService(users *stubUserDao) *UserService {
	s := NewUserService(testBizConfig())
	s.UserDao = users
	return s
}

func TestCreateUserDefaultsAndValidates(t *testing.T) {
	svc := newTestUserService(newStubUserDao())
	ctx := context.Background()

	u := &model.User{Nombre: " Ana ", Correo: " ANA@evg.co ", Rol: "Cliente"}
	if err := svc.Create(ctx, u); err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if u.Correo != "ana@evg.co" || u.Rol != bizConsts.RolCliente {
		t.Fatalf("not normalized: %+v", u)
	}
	if u.Estado != bizConsts.EstadoActivo {
		t.Fatalf("estado = %q, want default activo", u.Estado)
	}

	bad := []*model.User{
		{Correo: "a@b.co", Rol: "cliente"},
		{Nombre: "Ana", Correo: "no-arroba", Rol: "cliente"},
		{Nombre: "Ana", Correo: "a@b.co", Rol: "gerente"},
	}
	for i, b := range bad {
		if err := svc.Create(ctx, b); err == nil {
			t.Errorf("case %d accepted: %+v", i, b)
		}
	}
}

func TestToggleEstadoFlips(t *testing.T) {
	users := newStubUserDao(&model.User{ID: 7, Nombre: "Ana", Estado: bizConsts.EstadoActivo})
	svc := newTestUserService(users)
	ctx := context.Background()

	next, err := svc.ToggleEstado(ctx, 7)
	if err != nil {
		t.Fatalf("toggle failed: %v", err)
	}
	if next != bizConsts.EstadoInactivo {
		t.Fatalf("next = %q, want inactivo", next)
	}

	next, err = svc.ToggleEstado(ctx, 7)
	if err != nil {
		t.Fatalf("toggle failed: %v", err)
	}
	if next != bizConsts.EstadoActivo {
		t.Fatalf("next = %q, want activo again", next)
	}

	if _, err := svc.ToggleEstado(ctx, 99); err == nil {
		t.Fatal("unknown user toggled")
	}
}

func TestListUsersFiltersByRol(t *testing.T) {
	users := newStubUserDao(
		&model.User{ID: 1, Nombre: "Ana", Rol: bizConsts.RolCliente, Estado: bizConsts.EstadoActivo},
		&model.User{ID: 2, Nombre: "Bruno", Rol: bizConsts.RolEmpleado, Estado: bizConsts.EstadoActivo},
	)
	svc := newTestUserService(users)

	res, err := svc.List(context.Background(), listview.ViewState{Category: bizConsts.RolEmpleado})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if res.Matched != 1 || res.Items[0].Nombre != "Bruno" {
		t.Fatalf("got %+v, want only Bruno", res.Items)
	}
}
