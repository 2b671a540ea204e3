package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	bizConfig "github.com/S3b4sB0t3r0/evg-server/internal/config"
	bizConsts "github.com/S3b4sB0t3r0/evg-server/internal/consts"
	"github.com/S3b4sB0t3r0/evg-server/internal/dao"
	"github.com/S3b4sB0t3r0/evg-server/internal/infra/core"
	"github.com/S3b4sB0t3r0/evg-server/internal/listview"
	"github.com/S3b4sB0t3r0/evg-server/internal/model"
)

type stubProductDao struct {
	*core.BaseComponent
	products map[int64]*model.Product
	adjusted map[int64]int
}

func newStubProductDao(products ...*model.Product) *stubProductDao {
	s := &stubProductDao{
		BaseComponent: core.NewBaseComponent("product_dao_stub"),
		products:      map[int64]*model.Product{},
		adjusted:      map[int64]int{},
	}
	for _, p := range products {
		s.products[p.ID] = p
	}
	return s
}

func (s *stubProductDao) Create(ctx context.Context, p *model.Product) error {
	if p.ID == 0 {
		p.ID = int64(len(s.products) + 1)
	}
	s.products[p.ID] = p
	return nil
}

func (s *stubProductDao) Get(ctx context.Context, id int64) (*model.Product, error) {
	p, ok := s.products[id]
	if !ok {
		return nil, fmt.Errorf("not found")
	}
	return p, nil
}

func (s *stubProductDao) ListAll(ctx context.Context, limit int) ([]*model.Product, error) {
	var out []*model.Product
	for _, p := range s.products {
		out = append(out, p)
	}
	return out, nil
}

func (s *stubProductDao) ListAvailable(ctx context.Context, limit int) ([]*model.Product, error) {
	var out []*model.Product
	for _, p := range s.products {
		if p.Disponible {
			out = append(out, p)
		}
	}
	return out, nil
}

func (s *stubProductDao) Update(ctx context.Context, p *model.Product) error { return nil }

func (s *stubProductDao) SetAvailability(ctx context.Context, id int64, disponible bool) error {
	return nil
}

func (s *stubProductDao) AdjustStock(ctx context.Context, id int64, delta int) error {
	s.adjusted[id] += delta
	return nil
}

func (s *stubProductDao) SoftDelete(ctx context.Context, id int64) error { return nil }

func (s *stubProductDao) BatchCreate(ctx context.Context, list []*model.Product) error {
	for _, p := range list {
		_ = s.Create(ctx, p)
	}
	return nil
}

type stubOrderDao struct {
	*core.BaseComponent
	orders  []*model.Order
	created *model.Order
}

func newStubOrderDao(orders ...*model.Order) *stubOrderDao {
	return &stubOrderDao{
		BaseComponent: core.NewBaseComponent("order_dao_stub"),
		orders:        orders,
	}
}

func (s *stubOrderDao) Create(ctx context.Context, o *model.Order) error {
	o.ID = int64(len(s.orders) + 1)
	s.orders = append(s.orders, o)
	s.created = o
	return nil
}

func (s *stubOrderDao) Get(ctx context.Context, id int64) (*model.Order, error) {
	for _, o := range s.orders {
		if o.ID == id {
			return o, nil
		}
	}
	return nil, fmt.Errorf("not found")
}

func (s *stubOrderDao) ListAll(ctx context.Context, limit int) ([]*model.Order, error) {
	return s.orders, nil
}

func (s *stubOrderDao) ListByCorreo(ctx context.Context, correo string, limit int) ([]*model.Order, error) {
	var out []*model.Order
	for _, o := range s.orders {
		if o.Correo == correo {
			out = append(out, o)
		}
	}
	return out, nil
}

func (s *stubOrderDao) UpdateStatus(ctx context.Context, id int64, estado string) error {
	o, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	o.Estado = estado
	return nil
}

func (s *stubOrderDao) SoftDelete(ctx context.Context, id int64) error { return nil }

func (s *stubOrderDao) CountByStatus(ctx context.Context) ([]dao.StatusCount, error) {
	return nil, nil
}

func (s *stubOrderDao) RevenueByDay(ctx context.Context, since time.Time) ([]dao.DailyRevenue, error) {
	return nil, nil
}

func (s *stubOrderDao) TopProducts(ctx context.Context, since time.Time, limit int) ([]dao.ProductSales, error) {
	return nil, nil
}

func testBizConfig() *bizConfig.BizConfig {
	cfg := &bizConfig.BizConfig{}
	cfg.Normalize()
	return cfg
}

func newTestOrderService(products *stubProductDao, orders *stubOrderDao) *OrderService {
	s := NewOrderService(testBizConfig())
	s.ProductDao = products
	s.OrderDao = orders
	return s
}

func TestCheckoutComputesTotalServerSide(t *testing.T) {
	products := newStubProductDao(
		&model.Product{ID: 1, Nombre: "Bandeja Paisa", Precio: 28000, Disponible: true, Stock: 10},
		&model.Product{ID: 2, Nombre: "Limonada", Precio: 5000, Disponible: true, Stock: 10},
	)
	orders := newStubOrderDao()
	svc := newTestOrderService(products, orders)

	got, err := svc.Checkout(context.Background(), &CheckoutRequest{
		Cliente: "Ana",
		Correo:  "ANA@evg.co ",
		Items: []CheckoutItem{
			{ProductID: 1, Cantidad: 2},
			{ProductID: 2, Cantidad: 3},
		},
	})
	if err != nil {
		t.Fatalf("checkout failed: %v", err)
	}
	if got.Total != 2*28000+3*5000 {
		t.Fatalf("total = %d, want %d", got.Total, 2*28000+3*5000)
	}
	if got.Estado != bizConsts.OrderPendiente {
		t.Fatalf("estado = %q, want pendiente", got.Estado)
	}
	if got.Correo != "ana@evg.co" {
		t.Fatalf("correo = %q, want normalized lowercase", got.Correo)
	}
	if got.Referencia == "" {
		t.Fatal("referencia not assigned")
	}
	if len(got.Items) != 2 || got.Items[0].Nombre != "Bandeja Paisa" || got.Items[0].Precio != 28000 {
		t.Fatalf("item snapshot wrong: %+v", got.Items)
	}
	if products.adjusted[1] != -2 || products.adjusted[2] != -3 {
		t.Fatalf("stock adjustments = %v, want -2/-3", products.adjusted)
	}
}

func TestCheckoutClampsQuantities(t *testing.T) {
	products := newStubProductDao(
		&model.Product{ID: 1, Nombre: "Arepa", Precio: 3000, Disponible: true, Stock: 4},
	)
	svc := newTestOrderService(products, newStubOrderDao())

	got, err := svc.Checkout(context.Background(), &CheckoutRequest{
		Cliente: "Ana",
		Correo:  "ana@evg.co",
		Items:   []CheckoutItem{{ProductID: 1, Cantidad: 99}},
	})
	if err != nil {
		t.Fatalf("checkout failed: %v", err)
	}
	if got.Items[0].Cantidad != 4 {
		t.Fatalf("cantidad = %d, want clamped to stock 4", got.Items[0].Cantidad)
	}

	got, err = svc.Checkout(context.Background(), &CheckoutRequest{
		Cliente: "Ana",
		Correo:  "ana@evg.co",
		Items:   []CheckoutItem{{ProductID: 1, Cantidad: 0}},
	})
	if err != nil {
		t.Fatalf("checkout failed: %v", err)
	}
	if got.Items[0].Cantidad != 1 {
		t.Fatalf("cantidad = %d, want raised to 1", got.Items[0].Cantidad)
	}
}

func TestCheckoutRejectsBadCarts(t *testing.T) {
	products := newStubProductDao(
		&model.Product{ID: 1, Nombre: "Arepa", Precio: 3000, Disponible: false, Stock: 4},
	)
	svc := newTestOrderService(products, newStubOrderDao())
	ctx := context.Background()

	if _, err := svc.Checkout(ctx, &CheckoutRequest{Correo: "a@b.co", Items: []CheckoutItem{{ProductID: 1, Cantidad: 1}}}); err == nil {
		t.Fatal("missing cliente accepted")
	}
	if _, err := svc.Checkout(ctx, &CheckoutRequest{Cliente: "Ana", Correo: "a@b.co"}); err == nil {
		t.Fatal("empty cart accepted")
	}
	if _, err := svc.Checkout(ctx, &CheckoutRequest{Cliente: "Ana", Correo: "a@b.co", Items: []CheckoutItem{{ProductID: 1, Cantidad: 1}}}); err == nil {
		t.Fatal("unavailable product accepted")
	}
	if _, err := svc.Checkout(ctx, &CheckoutRequest{Cliente: "Ana", Correo: "a@b.co", Items: []CheckoutItem{{ProductID: 99, Cantidad: 1}}}); err == nil {
		t.Fatal("unknown product accepted")
	}
}

func TestUpdateStatusValidatesEstado(t *testing.T) {
	orders := newStubOrderDao(&model.Order{ID: 1, Estado: bizConsts.OrderPendiente})
	svc := newTestOrderService(newStubProductDao(), orders)
	ctx := context.Background()

	if err := svc.UpdateStatus(ctx, 1, "Preparando"); err != nil {
		t.Fatalf("mixed-case estado rejected: %v", err)
	}
	if orders.orders[0].Estado != bizConsts.OrderPreparando {
		t.Fatalf("estado = %q, want preparando", orders.orders[0].Estado)
	}
	if err := svc.UpdateStatus(ctx, 1, "enviado"); err == nil {
		t.Fatal("unknown estado accepted")
	}
}

func TestListOrdersFiltersThroughPipeline(t *testing.T) {
	now := time.Now()
	orders := newStubOrderDao(
		&model.Order{ID: 1, Cliente: "Ana", Estado: bizConsts.OrderPendiente, CreatedAt: now},
		&model.Order{ID: 2, Cliente: "Bruno", Estado: bizConsts.OrderEntregado, CreatedAt: now.Add(-time.Hour)},
	)
	svc := newTestOrderService(newStubProductDao(), orders)

	res, err := svc.ListOrders(context.Background(), listview.ViewState{Status: bizConsts.OrderPendiente})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if res.Matched != 1 || res.Items[0].Cliente != "Ana" {
		t.Fatalf("matched=%d items=%+v, want only Ana", res.Matched, res.Items)
	}
	if res.Total != 2 {
		t.Fatalf("total = %d, want 2", res.Total)
	}
}

func TestHistoryRequiresCorreo(t *testing.T) {
	orders := newStubOrderDao(
		&model.Order{ID: 1, Correo: "ana@evg.co"},
		&model.Order{ID: 2, Correo: "bruno@evg.co"},
	)
	svc := newTestOrderService(newStubProductDao(), orders)
	ctx := context.Background()

	if _, err := svc.History(ctx, "  "); err == nil {
		t.Fatal("blank correo accepted")
	}
	got, err := svc.History(ctx, "ANA@evg.co")
	if err != nil {
		t.Fatalf("history failed: %v", err)
	}
	if len(got) != 1 || got[0].ID != 1 {
		t.Fatalf("history = %+v, want only Ana's order", got)
	}
}
