package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"gorm.io/gorm"

	bizConfig "github.com/S3b4sB0t3r0/evg-server/internal/config"
	bizConsts "github.com/S3b4sB0t3r0/evg-server/internal/consts"
	"github.com/S3b4sB0t3r0/evg-server/internal/dao"
	"github.com/S3b4sB0t3r0/evg-server/internal/infra/core"
	"github.com/S3b4sB0t3r0/evg-server/internal/model"
	"github.com/S3b4sB0t3r0/evg-server/internal/service"
)

type fakeProductDao struct {
	*core.BaseComponent
	products map[int64]*model.Product
}

func (f *fakeProductDao) Create(ctx context.Context, p *model.Product) error {
	f.products[p.ID] = p
	return nil
}

func (f *fakeProductDao) Get(ctx context.Context, id int64) (*model.Product, error) {
	p, ok := f.products[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return p, nil
}

func (f *fakeProductDao) ListAll(ctx context.Context, limit int) ([]*model.Product, error) {
	var out []*model.Product
	for _, p := range f.products {
		out = append(out, p)
	}
	return out, nil
}

func (f *fakeProductDao) ListAvailable(ctx context.Context, limit int) ([]*model.Product, error) {
	var out []*model.Product
	for _, p := range f.products {
		if p.Disponible {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakeProductDao) Update(ctx context.Context, p *model.Product) error            { return nil }
func (f *fakeProductDao) SetAvailability(ctx context.Context, id int64, on bool) error  { return nil }
func (f *fakeProductDao) AdjustStock(ctx context.Context, id int64, delta int) error    { return nil }
func (f *fakeProductDao) SoftDelete(ctx context.Context, id int64) error                { return nil }
func (f *fakeProductDao) BatchCreate(ctx context.Context, list []*model.Product) error  { return nil }

type fakeOrderDao struct {
	*core.BaseComponent
	orders []*model.Order
}

func (f *fakeOrderDao) Create(ctx context.Context, o *model.Order) error {
	o.ID = int64(len(f.orders) + 1)
	f.orders = append(f.orders, o)
	return nil
}

func (f *fakeOrderDao) Get(ctx context.Context, id int64) (*model.Order, error) {
	for _, o := range f.orders {
		if o.ID == id {
			return o, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeOrderDao) ListAll(ctx context.Context, limit int) ([]*model.Order, error) {
	return f.orders, nil
}

func (f *fakeOrderDao) ListByCorreo(ctx context.Context, correo string, limit int) ([]*model.Order, error) {
	var out []*model.Order
	for _, o := range f.orders {
		if o.Correo == correo {
			out = append(out, o)
		}
	}
	return out, nil
}

func (f *fakeOrderDao) UpdateStatus(ctx context.Context, id int64, estado string) error {
	o, err := f.Get(ctx, id)
	if err != nil {
		return err
	}
	o.Estado = estado
	return nil
}

func (f *fakeOrderDao) SoftDelete(ctx context.Context, id int64) error { return nil }

func (f *fakeOrderDao) CountByStatus(ctx context.Context) ([]dao.StatusCount, error) {
	return []dao.StatusCount{{Estado: bizConsts.OrderPendiente, Count: int64(len(f.orders))}}, nil
}

func (f *fakeOrderDao) RevenueByDay(ctx context.Context, since time.Time) ([]dao.DailyRevenue, error) {
	return nil, nil
}

func (f *fakeOrderDao) TopProducts(ctx context.Context, since time.Time, limit int) ([]dao.ProductSales, error) {
	return nil, nil
}

type fakeContactDao struct {
	*core.BaseComponent
	messages []*model.ContactMessage
}

func (f *fakeContactDao) Create(ctx context.Context, m *model.ContactMessage) error {
	m.ID = int64(len(f.messages) + 1)
	f.messages = append(f.messages, m)
	return nil
}

func (f *fakeContactDao) Get(ctx context.Context, id int64) (*model.ContactMessage, error) {
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeContactDao) ListAll(ctx context.Context, limit int) ([]*model.ContactMessage, error) {
	return f.messages, nil
}

func (f *fakeContactDao) UpdateEstado(ctx context.Context, id int64, estado string) error {
	return nil
}

func (f *fakeContactDao) Delete(ctx context.Context, id int64) error { return nil }

type testHarness struct {
	router   chi.Router
	products *fakeProductDao
	orders   *fakeOrderDao
	contacts *fakeContactDao
}

func newTestHarness() *testHarness {
	cfg := &bizConfig.BizConfig{}
	cfg.Normalize()

	h := &testHarness{
		products: &fakeProductDao{BaseComponent: core.NewBaseComponent("product_dao"), products: map[int64]*model.Product{}},
		orders:   &fakeOrderDao{BaseComponent: core.NewBaseComponent("order_dao")},
		contacts: &fakeContactDao{BaseComponent: core.NewBaseComponent("contact_dao")},
	}

	catalog := service.NewCatalogService(cfg)
	catalog.ProductDao = h.products
	orders := service.NewOrderService(cfg)
	orders.OrderDao = h.orders
	orders.ProductDao = h.products
	contacts := service.NewContactService(cfg)
	contacts.ContactDao = h.contacts

	pub := NewPublicController()
	pub.Catalog = catalog
	pub.Orders = orders
	pub.Contact = contacts

	adm := NewAdminController(cfg)
	adm.Catalog = catalog
	adm.Orders = orders
	adm.Contacts = contacts

	r := chi.NewRouter()
	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/menu", pub.menu)
		r.Post("/orders", pub.checkout)
		r.Get("/orders/history", pub.history)
		r.Post("/contact", pub.submitContact)
	})
	r.Route("/api/v1/admin", func(r chi.Router) {
		r.Get("/orders", adm.listOrders)
		r.Get("/orders/{id}", adm.getOrder)
		r.Patch("/orders/{id}/status", adm.updateOrderStatus)
	})
	h.router = r
	return h
}

func (h *testHarness) do(t *testing.T, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
	}
	rec := httptest.NewRecorder()
	h.router.ServeHTTP(rec, req)
	return rec
}

func TestMenuEndpoint(t *testing.T) {
	h := newTestHarness()
	h.products.products[1] = &model.Product{ID: 1, Nombre: "Ajiaco", Disponible: true}
	h.products.products[2] = &model.Product{ID: 2, Nombre: "Agotado", Disponible: false}

	rec := h.do(t, http.MethodGet, "/api/v1/menu", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var list []model.Product
	if err := json.Unmarshal(rec.Body.Bytes(), &list); err != nil {
		t.Fatalf("bad body: %v", err)
	}
	if len(list) != 1 || list[0].Nombre != "Ajiaco" {
		t.Fatalf("menu = %+v, want only Ajiaco", list)
	}
}

func TestCheckoutEndpoint(t *testing.T) {
	h := newTestHarness()
	h.products.products[1] = &model.Product{ID: 1, Nombre: "Ajiaco", Precio: 18000, Disponible: true, Stock: 10}

	body := `{"cliente":"Ana","correo":"ana@evg.co","items":[{"product_id":1,"cantidad":2}]}`
	rec := h.do(t, http.MethodPost, "/api/v1/orders", body)
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}
	// Result() snapshots headers at WriteHeader time, like a live server.
	if ct := rec.Result().Header.Get("Content-Type"); ct != "application/json" {
		t.Fatalf("201 Content-Type = %q, want application/json", ct)
	}
	var o model.Order
	if err := json.Unmarshal(rec.Body.Bytes(), &o); err != nil {
		t.Fatalf("bad body: %v", err)
	}
	if o.Total != 36000 || o.Estado != bizConsts.OrderPendiente {
		t.Fatalf("order = %+v, want total 36000 pendiente", o)
	}

	rec = h.do(t, http.MethodPost, "/api/v1/orders", `{not json`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("malformed json: status = %d, want 400", rec.Code)
	}

	rec = h.do(t, http.MethodPost, "/api/v1/orders", `{"cliente":"Ana","correo":"a@b.co","items":[]}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("empty cart: status = %d, want 400", rec.Code)
	}
}

func TestHistoryEndpoint(t *testing.T) {
	h := newTestHarness()
	h.orders.orders = []*model.Order{
		{ID: 1, Correo: "ana@evg.co"},
		{ID: 2, Correo: "bruno@evg.co"},
	}

	rec := h.do(t, http.MethodGet, "/api/v1/orders/history?correo=ana@evg.co", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var list []model.Order
	if err := json.Unmarshal(rec.Body.Bytes(), &list); err != nil {
		t.Fatalf("bad body: %v", err)
	}
	if len(list) != 1 || list[0].ID != 1 {
		t.Fatalf("history = %+v, want only order 1", list)
	}

	rec = h.do(t, http.MethodGet, "/api/v1/orders/history", "")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("missing correo: status = %d, want 400", rec.Code)
	}
}

func TestContactEndpoint(t *testing.T) {
	h := newTestHarness()

	body := `{"nombre":"Ana","correo":"ana@evg.co","mensaje":"hola"}`
	rec := h.do(t, http.MethodPost, "/api/v1/contact", body)
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}
	if ct := rec.Result().Header.Get("Content-Type"); ct != "application/json" {
		t.Fatalf("201 Content-Type = %q, want application/json", ct)
	}
	if len(h.contacts.messages) != 1 || h.contacts.messages[0].Estado != bizConsts.ContactNuevo {
		t.Fatalf("stored = %+v, want one message in estado nuevo", h.contacts.messages)
	}

	rec = h.do(t, http.MethodPost, "/api/v1/contact", `{"nombre":"Ana"}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("incomplete form: status = %d, want 400", rec.Code)
	}
}

func TestAdminOrderEndpoints(t *testing.T) {
	h := newTestHarness()
	h.orders.orders = []*model.Order{
		{ID: 1, Cliente: "Ana", Estado: bizConsts.OrderPendiente, CreatedAt: time.Now()},
		{ID: 2, Cliente: "Bruno", Estado: bizConsts.OrderEntregado, CreatedAt: time.Now()},
	}

	rec := h.do(t, http.MethodGet, "/api/v1/admin/orders?estado=pendiente", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var res struct {
		Items      []model.Order `json:"items"`
		Total      int           `json:"total"`
		Matched    int           `json:"matched"`
		EmptyState string        `json:"empty_state"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &res); err != nil {
		t.Fatalf("bad body: %v", err)
	}
	if res.Matched != 1 || res.Total != 2 || res.Items[0].Cliente != "Ana" {
		t.Fatalf("result = %+v, want 1 of 2 matched", res)
	}

	rec = h.do(t, http.MethodGet, "/api/v1/admin/orders/99", "")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("unknown order: status = %d, want 404", rec.Code)
	}

	rec = h.do(t, http.MethodPatch, "/api/v1/admin/orders/1/status", `{"estado":"preparando"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status update: status = %d, body %s", rec.Code, rec.Body.String())
	}
	if h.orders.orders[0].Estado != bizConsts.OrderPreparando {
		t.Fatalf("estado = %q, want preparando", h.orders.orders[0].Estado)
	}

	rec = h.do(t, http.MethodPatch, "/api/v1/admin/orders/99/status", `{"estado":"preparando"}`)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("unknown order status update: status = %d, want 404", rec.Code)
	}
}
