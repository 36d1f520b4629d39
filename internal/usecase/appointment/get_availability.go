package appointment

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/barber-agenda/internal/cache"
	domain "github.com/BruksfildServices01/barber-agenda/internal/domain/schedule"
	"github.com/BruksfildServices01/barber-agenda/internal/httperr"
)

type GetAvailability struct {
	repo  domain.Repository
	cache *cache.AvailabilityCache
}

func NewGetAvailability(
	repo domain.Repository,
	c *cache.AvailabilityCache,
) *GetAvailability {
	return &GetAvailability{repo: repo, cache: c}
}

// Execute retorna os inícios livres ("HH:MM") do barbeiro na data.
// Dia sem agenda configurada = fechado = lista vazia, não é erro.
func (uc *GetAvailability) Execute(
	ctx context.Context,
	barberID string,
	dateStr string,
) ([]string, error) {

	if slots, ok := uc.cache.Get(ctx, barberID, dateStr); ok {
		return slots, nil
	}

	date, err := domain.ParseDate(dateStr)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date")
	}

	// barbeiro inexistente ou inativo = fechado
	barber, err := uc.repo.GetBarber(ctx, barberID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return []string{}, nil
	}
	if err != nil {
		return nil, err
	}
	if !barber.Active {
		return []string{}, nil
	}

	ws, err := uc.repo.GetWeekdaySchedule(
		ctx,
		barberID,
		domain.WeekdayIndex(date),
	)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return []string{}, nil
	}
	if err != nil {
		return nil, err
	}

	apps, err := uc.repo.ListOccupiedAppointments(ctx, barberID, dateStr)
	if err != nil {
		return nil, err
	}

	blocks, err := uc.repo.ListBlackoutsForDate(ctx, barberID, dateStr)
	if err != nil {
		return nil, err
	}

	occupied := make([]domain.Interval, 0, len(apps)+len(blocks))
	for _, ap := range apps {
		occupied = append(occupied, domain.Interval{
			Start: ap.StartTime,
			End:   ap.EndTime,
		})
	}
	for _, b := range blocks {
		occupied = append(occupied, domain.Interval{
			Start: b.StartTime,
			End:   b.EndTime,
		})
	}

	slots, err := domain.FreeSlots(
		domain.Config{
			OpensAt:     ws.OpensAt,
			ClosesAt:    ws.ClosesAt,
			SlotMinutes: ws.SlotMinutes,
		},
		occupied,
	)
	if err != nil {
		return nil, err
	}

	uc.cache.Set(ctx, barberID, dateStr, slots)

	return slots, nil
}
