package appointment

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/barber-agenda/internal/audit"
	"github.com/BruksfildServices01/barber-agenda/internal/cache"
	domain "github.com/BruksfildServices01/barber-agenda/internal/domain/schedule"
	"github.com/BruksfildServices01/barber-agenda/internal/httperr"
	"github.com/BruksfildServices01/barber-agenda/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type CreateAppointmentInput struct {
	BarberID string

	ClientName  string
	ClientPhone string
	Service     string

	Date string // YYYY-MM-DD
	Time string // HH:MM
}

// ======================================================
// USE CASE
// ======================================================

type CreateAppointment struct {
	repo  domain.Repository
	cache *cache.AvailabilityCache
	audit *audit.Dispatcher
}

func NewCreateAppointment(
	repo domain.Repository,
	c *cache.AvailabilityCache,
	audit *audit.Dispatcher,
) *CreateAppointment {
	return &CreateAppointment{
		repo:  repo,
		cache: c,
		audit: audit,
	}
}

// Execute cria o agendamento em status pendente. Não refaz a checagem
// de disponibilidade: o índice único parcial do banco resolve a corrida
// entre dois POSTs no mesmo horário (vira time_conflict).
func (uc *CreateAppointment) Execute(
	ctx context.Context,
	in CreateAppointmentInput,
) (*models.Appointment, error) {

	// --------------------------------------------------
	// 1. Barbeiro ativo
	// --------------------------------------------------
	barber, err := uc.repo.GetBarber(ctx, in.BarberID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, httperr.ErrBusiness("barber_not_found")
	}
	if err != nil {
		return nil, err
	}
	if !barber.Active {
		return nil, httperr.ErrBusiness("barber_not_found")
	}

	// --------------------------------------------------
	// 2. Agenda do dia da semana
	// --------------------------------------------------
	date, err := domain.ParseDate(in.Date)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date")
	}

	ws, err := uc.repo.GetWeekdaySchedule(
		ctx,
		in.BarberID,
		domain.WeekdayIndex(date),
	)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, httperr.ErrBusiness("not_configured")
	}
	if err != nil {
		return nil, err
	}

	if ws.SlotMinutes <= 0 {
		return nil, httperr.ErrBusiness("invalid_configuration")
	}

	// --------------------------------------------------
	// 3. Fim = início + duração (gravado, nunca recalculado)
	// --------------------------------------------------
	start, err := domain.MinuteOfDay(in.Time)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_time")
	}

	ap := &models.Appointment{
		BarberID:    in.BarberID,
		ClientName:  in.ClientName,
		ClientPhone: in.ClientPhone,
		Service:     in.Service,
		Date:        in.Date,
		StartTime:   domain.FormatMinute(start),
		EndTime:     domain.FormatMinute(start + ws.SlotMinutes),
		Status:      string(domain.InitialStatus()),
	}

	// --------------------------------------------------
	// 4. Persistência (conflito → time_conflict)
	// --------------------------------------------------
	if err := uc.repo.CreateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.cache.Invalidate(ctx, in.BarberID, in.Date)

	uc.audit.Dispatch(audit.Event{
		BarberID: in.BarberID,
		Action:   "appointment_created",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return ap, nil
}
