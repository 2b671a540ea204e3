package model

import "time"

// Ingredient is one stock-tracked kitchen supply. Umbral is the low-stock
// threshold the dashboard alerts on.
type Ingredient struct {
	ID        int64     `json:"id"`
	Nombre    string    `json:"nombre"`
	Categoria string    `json:"categoria"`
	Unidad    string    `json:"unidad"`
	Cantidad  float64   `json:"cantidad"`
	Umbral    float64   `json:"umbral"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Ingredient) TableName() string { return "ingredients" }

// LowStock reports whether the ingredient is at or below its threshold.
func (i *Ingredient) LowStock() bool { return i.Cantidad <= i.Umbral }
