package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	bizConfig "github.com/S3b4sB0t3r0/evg-server/internal/config"
	bizConsts "github.com/S3b4sB0t3r0/evg-server/internal/consts"
	"github.com/S3b4sB0t3r0/evg-server/internal/dao"
	"github.com/S3b4sB0t3r0/evg-server/internal/infra/components/logging"
	prom "github.com/S3b4sB0t3r0/evg-server/internal/infra/components/prometheus"
	"github.com/S3b4sB0t3r0/evg-server/internal/infra/core"
	"github.com/S3b4sB0t3r0/evg-server/internal/listview"
	"github.com/S3b4sB0t3r0/evg-server/internal/model"

	promclient "github.com/prometheus/client_golang/prometheus"
)

// CheckoutItem is one cart line as submitted by the storefront.
type CheckoutItem struct {
	ProductID int64 `json:"product_id"`
	Cantidad  int   `json:"cantidad"`
}

// CheckoutRequest is the customer checkout payload.
type CheckoutRequest struct {
	Cliente  string         `json:"cliente"`
	Correo   string         `json:"correo"`
	Telefono string         `json:"telefono"`
	Mesa     string         `json:"mesa"`
	Nota     string         `json:"nota"`
	Items    []CheckoutItem `json:"items"`
}

// OrderService implements checkout and the order console. Checkout clamps
// every quantity to [1, stock], snapshots product name/price into the order
// items and recomputes the total server-side; client-sent totals are ignored.
type OrderService struct {
	*core.BaseComponent
	OrderDao   dao.OrderDao    `infra:"dep:order_dao"`
	ProductDao dao.ProductDao  `infra:"dep:product_dao"`
	Metrics    *prom.Component `infra:"dep:prometheus?"`

	cfg           *bizConfig.BizConfig
	ordersCreated *promclient.CounterVec
}

func NewOrderService(cfg *bizConfig.BizConfig) *OrderService {
	return &OrderService{
		BaseComponent: core.NewBaseComponent(bizConsts.COMP_SVC_ORDER),
		cfg:           cfg,
	}
}

func (s *OrderService) Start(ctx context.Context) error {
	if err := s.BaseComponent.Start(ctx); err != nil {
		return err
	}
	if s.Metrics != nil && s.Metrics.IsActive() {
		s.ordersCreated = s.Metrics.NewCounter("orders_created_total",
			"Orders accepted at checkout.", []string{"estado"})
	}
	return nil
}

// Checkout validates the cart and creates the order as pendiente.
func (s *OrderService) Checkout(ctx context.Context, req *CheckoutRequest) (*model.Order, error) {
	req.Cliente = strings.TrimSpace(req.Cliente)
	req.Correo = strings.ToLower(strings.TrimSpace(req.Correo))
	if req.Cliente == "" || req.Correo == "" {
		return nil, fmt.Errorf("cliente and correo required")
	}
	if len(req.Items) == 0 {
		return nil, fmt.Errorf("cart empty")
	}

	order := &model.Order{
		Referencia: uuid.NewString(),
		Cliente:    req.Cliente,
		Correo:     req.Correo,
		Telefono:   strings.TrimSpace(req.Telefono),
		Mesa:       strings.TrimSpace(req.Mesa),
		Nota:       strings.TrimSpace(req.Nota),
		Estado:     bizConsts.OrderPendiente,
	}

	for _, item := range req.Items {
		p, err := s.ProductDao.Get(ctx, item.ProductID)
		if err != nil {
			return nil, fmt.Errorf("product %d not found", item.ProductID)
		}
		if !p.Disponible || p.Stock <= 0 {
			return nil, fmt.Errorf("product %s not available", p.Nombre)
		}
		qty := clampQty(item.Cantidad, p.Stock)
		order.Items = append(order.Items, model.OrderItem{
			ProductID: p.ID,
			Nombre:    p.Nombre,
			Precio:    p.Precio,
			Cantidad:  qty,
		})
		order.Total += p.Precio * int64(qty)
	}

	if err := s.OrderDao.Create(ctx, order); err != nil {
		return nil, err
	}
	for _, it := range order.Items {
		if err := s.ProductDao.AdjustStock(ctx, it.ProductID, -it.Cantidad); err != nil {
			logging.Warn(ctx, "stock adjust failed after checkout",
				zap.Int64("product_id", it.ProductID), zap.Error(err))
		}
	}
	if s.ordersCreated != nil {
		s.ordersCreated.WithLabelValues(order.Estado).Inc()
	}
	logging.Info(ctx, "order created",
		zap.String("referencia", order.Referencia),
		zap.Int64("total", order.Total),
		zap.Int("items", len(order.Items)),
	)
	return order, nil
}

// clampQty mirrors the cart behavior: quantities below 1 become 1,
// quantities above stock are capped at stock.
func clampQty(qty, stock int) int {
	if qty < 1 {
		qty = 1
	}
	if qty > stock {
		qty = stock
	}
	return qty
}

func (s *OrderService) ListOrders(ctx context.Context, vs listview.ViewState) (listview.Result[*model.Order], error) {
	records, err := s.OrderDao.ListAll(ctx, s.cfg.Listing.MaxRows)
	if err != nil {
		return listview.Result[*model.Order]{}, err
	}
	return orderPipeline.Apply(records, vs, time.Now()), nil
}

// History returns the customer's own orders, most recent first.
func (s *OrderService) History(ctx context.Context, correo string) ([]*model.Order, error) {
	correo = strings.ToLower(strings.TrimSpace(correo))
	if correo == "" {
		return nil, fmt.Errorf("correo required")
	}
	return s.OrderDao.ListByCorreo(ctx, correo, s.cfg.Listing.MaxRows)
}

func (s *OrderService) Get(ctx context.Context, id int64) (*model.Order, error) {
	return s.OrderDao.Get(ctx, id)
}

func (s *OrderService) UpdateStatus(ctx context.Context, id int64, estado string) error {
	estado = strings.ToLower(strings.TrimSpace(estado))
	if !bizConsts.ValidOrderStatus(estado) {
		return fmt.Errorf("invalid estado: %s", estado)
	}
	return s.OrderDao.UpdateStatus(ctx, id, estado)
}

func (s *OrderService) Delete(ctx context.Context, id int64) error {
	return s.OrderDao.SoftDelete(ctx, id)
}
