package service

import (
	"context"
	"strings"
	"testing"

	"github.com/S3b4sB0t3r0/evg-server/internal/listview"
	"github.com/S3b4sB0t3r0/evg-server/internal/model"
)

func newTestCatalogService(products *stubProductDao) *CatalogService {
	s := NewCatalogService(testBizConfig())
	s.ProductDao = products
	return s
}

func TestMenuFallsBackToDatabaseWithoutCache(t *testing.T) {
	products := newStubProductDao(
		&model.Product{ID: 1, Nombre: "Ajiaco", Disponible: true},
		&model.Product{ID: 2, Nombre: "Oculto", Disponible: false},
	)
	svc := newTestCatalogService(products)

	got, err := svc.Menu(context.Background())
	if err != nil {
		t.Fatalf("menu failed: %v", err)
	}
	if len(got) != 1 || got[0].Nombre != "Ajiaco" {
		t.Fatalf("menu = %+v, want only available products", got)
	}
}

func TestCreateProductValidates(t *testing.T) {
	svc := newTestCatalogService(newStubProductDao())
	ctx := context.Background()

	cases := []struct {
		name string
		p    model.Product
	}{
		{"blank nombre", model.Product{Categoria: "platos", Precio: 100}},
		{"unknown categoria", model.Product{Nombre: "X", Categoria: "desayunos"}},
		{"negative precio", model.Product{Nombre: "X", Categoria: "platos", Precio: -1}},
		{"negative stock", model.Product{Nombre: "X", Categoria: "platos", Stock: -1}},
	}
	for _, tc := range cases {
		p := tc.p
		if err := svc.CreateProduct(ctx, &p); err == nil {
			t.Errorf("%s: accepted", tc.name)
		}
	}

	p := &model.Product{Nombre: " Ajiaco ", Categoria: " Platos ", Precio: 18000}
	if err := svc.CreateProduct(ctx, p); err != nil {
		t.Fatalf("valid product rejected: %v", err)
	}
	if p.Nombre != "Ajiaco" || p.Categoria != "platos" {
		t.Fatalf("not normalized: %+v", p)
	}
}

func TestListProductsSortsByPrecio(t *testing.T) {
	products := newStubProductDao(
		&model.Product{ID: 1, Nombre: "Caro", Categoria: "platos", Precio: 30000},
		&model.Product{ID: 2, Nombre: "Barato", Categoria: "platos", Precio: 4000},
	)
	svc := newTestCatalogService(products)

	res, err := svc.ListProducts(context.Background(), listview.ViewState{SortKey: SortPrecioAsc})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if res.Items[0].Nombre != "Barato" {
		t.Fatalf("got %q first, want Barato", res.Items[0].Nombre)
	}
}

func TestImportProductsCSVPartialAccept(t *testing.T) {
	products := newStubProductDao()
	svc := newTestCatalogService(products)

	csvBody := strings.Join([]string{
		"nombre,descripcion,categoria,precio,imagen,disponible,stock",
		"Ajiaco,Sopa típica,platos,\"$18.000\",ajiaco.jpg,si,12",
		",sin nombre,platos,5000,,si,1",
		"Limonada,Natural,bebidas,5000,limonada.jpg,1,20",
		"Brownie,Postre,meriendas,8000,brownie.jpg,si,5",
	}, "\n")

	report, err := svc.ImportProductsCSV(context.Background(), strings.NewReader(csvBody), 100)
	if err != nil {
		t.Fatalf("import failed: %v", err)
	}
	if report.Accepted != 2 {
		t.Fatalf("accepted = %d, want 2", report.Accepted)
	}
	if len(report.Rejected) != 2 {
		t.Fatalf("rejected = %+v, want 2 rows", report.Rejected)
	}
	if report.Rejected[0].Row != 2 || report.Rejected[1].Row != 4 {
		t.Fatalf("rejected rows = %+v, want rows 2 and 4", report.Rejected)
	}
	if len(products.products) != 2 {
		t.Fatalf("inserted %d products, want 2", len(products.products))
	}
	for _, p := range products.products {
		if p.Nombre == "Ajiaco" && p.Precio != 18000 {
			t.Fatalf("precio = %d, want 18000 parsed from display string", p.Precio)
		}
	}
}

func TestImportProductsCSVRejectsOversize(t *testing.T) {
	svc := newTestCatalogService(newStubProductDao())

	csvBody := strings.Join([]string{
		"nombre,descripcion,categoria,precio,imagen,disponible,stock",
		"A,x,platos,1000,,si,1",
		"B,x,platos,1000,,si,1",
	}, "\n")

	if _, err := svc.ImportProductsCSV(context.Background(), strings.NewReader(csvBody), 1); err == nil {
		t.Fatal("row limit not enforced")
	}

	if _, err := svc.ImportProductsCSV(context.Background(), strings.NewReader("nombre,precio\nA,1"), 100); err == nil {
		t.Fatal("wrong column count accepted")
	}
}
