package service

import (
	"context"
	"time"

	bizConfig "github.com/S3b4sB0t3r0/evg-server/internal/config"
	bizConsts "github.com/S3b4sB0t3r0/evg-server/internal/consts"
	"github.com/S3b4sB0t3r0/evg-server/internal/dao"
	"github.com/S3b4sB0t3r0/evg-server/internal/infra/core"
)

// Summary is the data feed for the dashboard charts. Chart rendering stays
// client-side; this only aggregates.
type Summary struct {
	OrdersByStatus []dao.StatusCount  `json:"orders_by_status"`
	RevenueByDay   []dao.DailyRevenue `json:"revenue_by_day"`
	TopProducts    []dao.ProductSales `json:"top_products"`
	Since          string             `json:"since"`
}

type ReportService struct {
	*core.BaseComponent
	OrderDao dao.OrderDao `infra:"dep:order_dao"`

	cfg *bizConfig.BizConfig
}

func NewReportService(cfg *bizConfig.BizConfig) *ReportService {
	return &ReportService{
		BaseComponent: core.NewBaseComponent(bizConsts.COMP_SVC_REPORT),
		cfg:           cfg,
	}
}

func (s *ReportService) Summary(ctx context.Context) (*Summary, error) {
	since := time.Now().AddDate(0, 0, -s.cfg.Reports.RevenueDays)

	byStatus, err := s.OrderDao.CountByStatus(ctx)
	if err != nil {
		return nil, err
	}
	revenue, err := s.OrderDao.RevenueByDay(ctx, since)
	if err != nil {
		return nil, err
	}
	top, err := s.OrderDao.TopProducts(ctx, since, s.cfg.Reports.TopProducts)
	if err != nil {
		return nil, err
	}
	return &Summary{
		OrdersByStatus: byStatus,
		RevenueByDay:   revenue,
		TopProducts:    top,
		Since:          since.Format("2006-01-02"),
	}, nil
}
