package model

import (
	"strings"
	"time"
)

// Order is one customer checkout. Referencia is the public order reference
// shown to the customer; Total is recomputed server-side from the items.
type Order struct {
	ID         int64       `json:"id"`
	Referencia string      `json:"referencia"`
	Cliente    string      `json:"cliente"`
	Correo     string      `json:"correo"`
	Telefono   string      `json:"telefono"`
	Mesa       string      `json:"mesa"`
	Nota       string      `json:"nota"`
	Estado     string      `json:"estado"`
	Total      int64       `json:"total"`
	Items      []OrderItem `json:"items" gorm:"foreignKey:OrderID"`
	CreatedAt  time.Time   `json:"created_at"`
	UpdatedAt  time.Time   `json:"updated_at"`
	Deleted    int         `json:"-"`
}

func (Order) TableName() string { return "orders" }

// OrderItem snapshots the product at checkout time so later menu edits do
// not rewrite order history.
type OrderItem struct {
	ID        int64  `json:"id"`
	OrderID   int64  `json:"order_id"`
	ProductID int64  `json:"product_id"`
	Nombre    string `json:"nombre"`
	Precio    int64  `json:"precio"`
	Cantidad  int    `json:"cantidad"`
}

func (OrderItem) TableName() string { return "order_items" }

// ItemsSummary joins item names for the list search predicate.
func (o *Order) ItemsSummary() string {
	names := make([]string, 0, len(o.Items))
	for _, it := range o.Items {
		names = append(names, it.Nombre)
	}
	return strings.Join(names, ", ")
}
