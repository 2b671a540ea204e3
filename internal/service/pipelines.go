package service

import (
	"time"

	"github.com/S3b4sB0t3r0/evg-server/internal/listview"
	"github.com/S3b4sB0t3r0/evg-server/internal/model"
)

// Sort keys shared by the list endpoints. Every list instance below is one
// configuration of the same pipeline, replacing the per-view copies the
// frontend used to carry.
const (
	SortNombreAsc  = "nombre_asc"
	SortNombreDesc = "nombre_desc"
	SortPrecioAsc  = "precio_asc"
	SortPrecioDesc = "precio_desc"
	SortRecientes  = "recientes"
	SortAntiguos   = "antiguos"
	SortTotalAsc   = "total_asc"
	SortTotalDesc  = "total_desc"
	SortCantidad   = "cantidad_asc"
)

var productPipeline = listview.New(listview.Config[*model.Product]{
	SearchFields: func(p *model.Product) []string {
		return []string{p.Nombre, p.Descripcion}
	},
	CategoryOf: func(p *model.Product) string { return p.Categoria },
	DateOf:     func(p *model.Product) time.Time { return p.CreatedAt },
	Comparators: map[string]listview.Compare[*model.Product]{
		SortNombreAsc:  listview.ByString(func(p *model.Product) string { return p.Nombre }),
		SortNombreDesc: listview.Desc(listview.ByString(func(p *model.Product) string { return p.Nombre })),
		SortPrecioAsc:  listview.ByNumber(func(p *model.Product) float64 { return float64(p.Precio) }),
		SortPrecioDesc: listview.Desc(listview.ByNumber(func(p *model.Product) float64 { return float64(p.Precio) })),
		SortRecientes:  listview.Desc(listview.ByTime(func(p *model.Product) time.Time { return p.CreatedAt })),
	},
	DefaultSort: SortNombreAsc,
})

var orderPipeline = listview.New(listview.Config[*model.Order]{
	SearchFields: func(o *model.Order) []string {
		return []string{o.Referencia, o.Cliente, o.Correo, o.ItemsSummary()}
	},
	StatusOf: func(o *model.Order) string { return o.Estado },
	DateOf:   func(o *model.Order) time.Time { return o.CreatedAt },
	Comparators: map[string]listview.Compare[*model.Order]{
		SortRecientes: listview.Desc(listview.ByTime(func(o *model.Order) time.Time { return o.CreatedAt })),
		SortAntiguos:  listview.ByTime(func(o *model.Order) time.Time { return o.CreatedAt }),
		SortTotalAsc:  listview.ByNumber(func(o *model.Order) float64 { return float64(o.Total) }),
		SortTotalDesc: listview.Desc(listview.ByNumber(func(o *model.Order) float64 { return float64(o.Total) })),
	},
	DefaultSort: SortRecientes,
})

var ingredientPipeline = listview.New(listview.Config[*model.Ingredient]{
	SearchFields: func(i *model.Ingredient) []string {
		return []string{i.Nombre, i.Categoria}
	},
	CategoryOf: func(i *model.Ingredient) string { return i.Categoria },
	DateOf:     func(i *model.Ingredient) time.Time { return i.CreatedAt },
	Comparators: map[string]listview.Compare[*model.Ingredient]{
		SortNombreAsc:  listview.ByString(func(i *model.Ingredient) string { return i.Nombre }),
		SortNombreDesc: listview.Desc(listview.ByString(func(i *model.Ingredient) string { return i.Nombre })),
		SortCantidad:   listview.ByNumber(func(i *model.Ingredient) float64 { return i.Cantidad }),
	},
	DefaultSort: SortNombreAsc,
})

var userPipeline = listview.New(listview.Config[*model.User]{
	SearchFields: func(u *model.User) []string {
		return []string{u.Nombre, u.Correo, u.Telefono}
	},
	CategoryOf: func(u *model.User) string { return u.Rol },
	StatusOf:   func(u *model.User) string { return u.Estado },
	DateOf:     func(u *model.User) time.Time { return u.CreatedAt },
	Comparators: map[string]listview.Compare[*model.User]{
		SortNombreAsc:  listview.ByString(func(u *model.User) string { return u.Nombre }),
		SortNombreDesc: listview.Desc(listview.ByString(func(u *model.User) string { return u.Nombre })),
		SortRecientes:  listview.Desc(listview.ByTime(func(u *model.User) time.Time { return u.CreatedAt })),
	},
	DefaultSort: SortNombreAsc,
})

var contactPipeline = listview.New(listview.Config[*model.ContactMessage]{
	SearchFields: func(m *model.ContactMessage) []string {
		return []string{m.Nombre, m.Correo, m.Asunto, m.Mensaje}
	},
	StatusOf: func(m *model.ContactMessage) string { return m.Estado },
	DateOf:   func(m *model.ContactMessage) time.Time { return m.CreatedAt },
	Comparators: map[string]listview.Compare[*model.ContactMessage]{
		SortRecientes: listview.Desc(listview.ByTime(func(m *model.ContactMessage) time.Time { return m.CreatedAt })),
		SortAntiguos:  listview.ByTime(func(m *model.ContactMessage) time.Time { return m.CreatedAt }),
	},
	DefaultSort: SortRecientes,
})
