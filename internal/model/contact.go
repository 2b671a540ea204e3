package model

import "time"

// ContactMessage is one submission of the public contact form.
type ContactMessage struct {
	ID        int64     `json:"id"`
	Nombre    string    `json:"nombre"`
	Correo    string    `json:"correo"`
	Asunto    string    `json:"asunto"`
	Mensaje   string    `json:"mensaje"`
	Estado    string    `json:"estado"`
	CreatedAt time.Time `json:"created_at"`
}

func (ContactMessage) TableName() string { return "contact_messages" }
