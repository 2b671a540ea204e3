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

// ContactService stores public contact-form submissions and backs the admin
// message console.
type ContactService struct {
	*core.BaseComponent
	ContactDao dao.ContactDao `infra:"dep:contact_dao"`

	cfg *bizConfig.BizConfig
}

func NewContactService(cfg *bizConfig.BizConfig) *ContactService {
	return &ContactService{
		BaseComponent: core.NewBaseComponent(bizConsts.COMP_SVC_CONTACT),
		cfg:           cfg,
	}
}

func (s *ContactService) Submit(ctx context.Context, m *model.ContactMessage) error {
	m.Nombre = strings.TrimSpace(m.Nombre)
	m.Correo = strings.ToLower(strings.TrimSpace(m.Correo))
	m.Asunto = strings.TrimSpace(m.Asunto)
	m.Mensaje = strings.TrimSpace(m.Mensaje)
	if m.Nombre == "" || m.Correo == "" || m.Mensaje == "" {
		return fmt.Errorf("nombre, correo and mensaje required")
	}
	m.Estado = bizConsts.ContactNuevo
	return s.ContactDao.Create(ctx, m)
}

func (s *ContactService) List(ctx context.Context, vs listview.ViewState) (listview.Result[*model.ContactMessage], error) {
	records, err := s.ContactDao.ListAll(ctx, s.cfg.Listing.MaxRows)
	if err != nil {
		return listview.Result[*model.ContactMessage]{}, err
	}
	return contactPipeline.Apply(records, vs, time.Now()), nil
}

func (s *ContactService) UpdateEstado(ctx context.Context, id int64, estado string) error {
	estado = strings.ToLower(strings.TrimSpace(estado))
	if !bizConsts.ValidContactEstado(estado) {
		return fmt.Errorf("invalid estado: %s", estado)
	}
	return s.ContactDao.UpdateEstado(ctx, id, estado)
}

func (s *ContactService) Delete(ctx context.Context, id int64) error {
	return s.ContactDao.Delete(ctx, id)
}
