package service

import (
	"context"
	"fmt"
	"testing"

	bizConsts "github.com/S3b4sB0t3r0/evg-server/internal/consts"
	"github.com/S3b4sB0t3r0/evg-server/internal/infra/core"
	"github.com/S3b4sB0t3r0/evg-server/internal/model"
)

type stubContactDao struct {
	*core.BaseComponent
	messages map[int64]*model.ContactMessage
}

func newStubContactDao() *stubContactDao {
	return &stubContactDao{
		BaseComponent: core.NewBaseComponent("contact_dao_stub"),
		messages:      map[int64]*model.ContactMessage{},
	}
}

func (s *stubContactDao) Create(ctx context.Context, m *model.ContactMessage) error {
	m.ID = int64(len(s.messages) + 1)
	s.messages[m.ID] = m
	return nil
}

func (s *stubContactDao) Get(ctx context.Context, id int64) (*model.ContactMessage, error) {
	m, ok := s.messages[id]
	if !ok {
		return nil, fmt.Errorf("not found")
	}
	return m, nil
}

func (s *stubContactDao) ListAll(ctx context.Context, limit int) ([]*model.ContactMessage, error) {
	var out []*model.ContactMessage
	for _, m := range s.messages {
		out = append(out, m)
	}
	return out, nil
}

func (s *stubContactDao) UpdateEstado(ctx context.Context, id int64, estado string) error {
	m, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	m.Estado = estado
	return nil
}

func (s *stubContactDao) Delete(ctx context.Context, id int64) error {
	delete(s.messages, id)
	return nil
}

func newTestContactService(contacts *stubContactDao) *ContactService {
	s := NewContactService(testBizConfig())
	s.ContactDao = contacts
	return s
}

func TestSubmitForcesEstadoNuevo(t *testing.T) {
	contacts := newStubContactDao()
	svc := newTestContactService(contacts)

	m := &model.ContactMessage{
		Nombre:  " Ana ",
		Correo:  " ANA@evg.co ",
		Mensaje: "¿Tienen opciones vegetarianas?",
		Estado:  "respondido", // client-sent state is ignored
	}
	if err := svc.Submit(context.Background(), m); err != nil {
		t.Fatalf("submit failed: %v", err)
	}
	if m.Estado != bizConsts.ContactNuevo {
		t.Fatalf("estado = %q, want nuevo", m.Estado)
	}
	if m.Nombre != "Ana" || m.Correo != "ana@evg.co" {
		t.Fatalf("not normalized: %+v", m)
	}
}

func TestSubmitRequiresFields(t *testing.T) {
	svc := newTestContactService(newStubContactDao())
	ctx := context.Background()

	bad := []*model.ContactMessage{
		{Correo: "a@b.co", Mensaje: "hola"},
		{Nombre: "Ana", Mensaje: "hola"},
		{Nombre: "Ana", Correo: "a@b.co", Mensaje: "   "},
	}
	for i, m := range bad {
		if err := svc.Submit(ctx, m); err == nil {
			t.Errorf("case %d accepted: %+v", i, m)
		}
	}
}

func TestContactUpdateEstadoValidates(t *testing.T) {
	contacts := newStubContactDao()
	svc := newTestContactService(contacts)
	ctx := context.Background()

	m := &model.ContactMessage{Nombre: "Ana", Correo: "a@b.co", Mensaje: "hola"}
	if err := svc.Submit(ctx, m); err != nil {
		t.Fatalf("submit failed: %v", err)
	}

	if err := svc.UpdateEstado(ctx, m.ID, "Leido"); err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if contacts.messages[m.ID].Estado != bizConsts.ContactLeido {
		t.Fatalf("estado = %q, want leido", contacts.messages[m.ID].Estado)
	}
	if err := svc.UpdateEstado(ctx, m.ID, "archivado"); err == nil {
		t.Fatal("unknown estado accepted")
	}
}
