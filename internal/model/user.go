package model

import "time"

// User is one account as the admin user console lists it.
type User struct {
	ID        int64     `json:"id"`
	Nombre    string    `json:"nombre"`
	Correo    string    `json:"correo"`
	Telefono  string    `json:"telefono"`
	Rol       string    `json:"rol"`
	Estado    string    `json:"estado"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	Deleted   int       `json:"-"`
}

func (User) TableName() string { return "users" }
