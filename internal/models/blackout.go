package models

import "time"

// Bloqueio manual de agenda declarado pelo admin, independente de
// agendamentos.
type Blackout struct {
	ID uint `gorm:"primaryKey" json:"id"`

	BarberID string `gorm:"type:uuid;index" json:"barbeiro_id"`

	Date      string `gorm:"size:10;not null;index" json:"data"` // YYYY-MM-DD
	StartTime string `gorm:"size:5;not null" json:"inicio"`      // HH:MM
	EndTime   string `gorm:"size:5;not null" json:"fim"`         // HH:MM

	Reason string `gorm:"size:255" json:"motivo"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
