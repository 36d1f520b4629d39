package appointment

import (
	"context"

	domain "github.com/BruksfildServices01/barber-agenda/internal/domain/schedule"
	"github.com/BruksfildServices01/barber-agenda/internal/dto"
)

type ListAppointmentsByDate struct {
	repo domain.Repository
}

func NewListAppointmentsByDate(
	repo domain.Repository,
) *ListAppointmentsByDate {
	return &ListAppointmentsByDate{repo: repo}
}

// Execute lista os agendamentos do dia em todos os status (o painel
// admin filtra por status no front).
func (uc *ListAppointmentsByDate) Execute(
	ctx context.Context,
	barberID string,
	date string,
) ([]dto.AppointmentListDTO, error) {

	appointments, err := uc.repo.ListAppointmentsForDate(ctx, barberID, date)
	if err != nil {
		return nil, err
	}

	out := make([]dto.AppointmentListDTO, 0, len(appointments))
	for _, ap := range appointments {
		out = append(out, dto.AppointmentListDTO{
			ID:          ap.ID,
			ClientName:  ap.ClientName,
			ClientPhone: ap.ClientPhone,
			Service:     ap.Service,
			Date:        ap.Date,
			StartTime:   ap.StartTime,
			EndTime:     ap.EndTime,
			Status:      ap.Status,
		})
	}

	return out, nil
}
