package models

import "time"

type Appointment struct {
	ID uint `gorm:"primaryKey" json:"id"`

	BarberID string `gorm:"type:uuid;index" json:"barbeiro_id"`
	Barber   Barber `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"-"`

	ClientName  string `gorm:"size:100;not null" json:"cliente"`
	ClientPhone string `gorm:"size:20;not null" json:"telefone"`
	Service     string `gorm:"size:255;not null" json:"servico"`

	// Datas e horários civis, sem timezone (ver internal/domain/schedule).
	Date      string `gorm:"size:10;not null;index" json:"data"` // YYYY-MM-DD
	StartTime string `gorm:"size:5;not null" json:"inicio"`      // HH:MM
	EndTime   string `gorm:"size:5;not null" json:"fim"`         // HH:MM

	Status string `gorm:"size:20;default:'pendente'" json:"status"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
