package models

import "time"

// Uma linha por (barbeiro, dia da semana). Convenção do banco:
// 1=segunda ... 6=sábado, 7=domingo.
type WeekdaySchedule struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	BarberID string `gorm:"type:uuid;index:idx_schedule_barber_weekday,unique" json:"barbeiro_id"`

	Weekday int `gorm:"index:idx_schedule_barber_weekday,unique" json:"dia_semana"`

	OpensAt     string `gorm:"size:5;not null" json:"abre"`  // HH:MM
	ClosesAt    string `gorm:"size:5;not null" json:"fecha"` // HH:MM
	SlotMinutes int    `gorm:"not null" json:"duracao"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
