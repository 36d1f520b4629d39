package schedule

import (
	"context"

	"github.com/BruksfildServices01/barber-agenda/internal/models"
)

type Repository interface {
	// -------- Barber --------
	GetBarber(
		ctx context.Context,
		id string,
	) (*models.Barber, error)

	ListActiveBarbers(
		ctx context.Context,
	) ([]models.Barber, error)

	CreateBarber(
		ctx context.Context,
		barber *models.Barber,
	) error

	// -------- Weekday schedule --------
	GetWeekdaySchedule(
		ctx context.Context,
		barberID string,
		weekday int,
	) (*models.WeekdaySchedule, error)

	ReplaceWeekdaySchedules(
		ctx context.Context,
		barberID string,
		rows []models.WeekdaySchedule,
	) error

	// -------- Appointment --------
	CreateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	GetAppointment(
		ctx context.Context,
		id uint,
	) (*models.Appointment, error)

	UpdateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	// todos os status, ordenado por início
	ListAppointmentsForDate(
		ctx context.Context,
		barberID string,
		date string,
	) ([]models.Appointment, error)

	// apenas status que ocupam horário (pendente/confirmado)
	ListOccupiedAppointments(
		ctx context.Context,
		barberID string,
		date string,
	) ([]models.Appointment, error)

	// -------- Blackout --------
	ListBlackoutsForDate(
		ctx context.Context,
		barberID string,
		date string,
	) ([]models.Blackout, error)

	ListBlackouts(
		ctx context.Context,
		barberID string,
	) ([]models.Blackout, error)

	GetBlackout(
		ctx context.Context,
		id uint,
	) (*models.Blackout, error)

	CreateBlackout(
		ctx context.Context,
		b *models.Blackout,
	) error

	DeleteBlackout(
		ctx context.Context,
		id uint,
	) error
}
