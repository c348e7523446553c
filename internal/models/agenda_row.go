package models

import "time"

// AgendaRow guarda a data como texto, igual à planilha.
type AgendaRow struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Numero string `gorm:"size:50;index" json:"numero"`
	Nombre string `gorm:"size:255" json:"nombre"`
	Equipo string `gorm:"size:120" json:"equipo"`
	Fecha  string `gorm:"size:32;index" json:"fecha"`
	Tipo   string `gorm:"size:30" json:"tipo"`

	CreatedAt time.Time `json:"created_at"`
}

func (AgendaRow) TableName() string { return "agenda" }
