package model

import "time"

// Product is one menu item as the storefront and the inventory console see
// it. Precio holds whole Colombian pesos.
type Product struct {
	ID          int64     `json:"id"`
	Nombre      string    `json:"nombre"`
	Descripcion string    `json:"descripcion"`
	Categoria   string    `json:"categoria"`
	Precio      int64     `json:"precio"`
	Imagen      string    `json:"imagen"`
	Disponible  bool      `json:"disponible"`
	Stock       int       `json:"stock"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
	Deleted     int       `json:"-"`
}

func (Product) TableName() string { return "products" }
