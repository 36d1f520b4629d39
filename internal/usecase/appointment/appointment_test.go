package appointment

import (
	"context"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/barber-agenda/internal/audit"
	"github.com/BruksfildServices01/barber-agenda/internal/cache"
	domain "github.com/BruksfildServices01/barber-agenda/internal/domain/schedule"
	"github.com/BruksfildServices01/barber-agenda/internal/httperr"
	infraRepo "github.com/BruksfildServices01/barber-agenda/internal/infra/repository"
	"github.com/BruksfildServices01/barber-agenda/internal/models"
)

// 2024-01-08 é segunda-feira (weekday 1 na convenção do banco)
const testDate = "2024-01-08"

func setupRepo(t *testing.T) (*gorm.DB, domain.Repository) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	if err := db.AutoMigrate(
		&models.Barber{},
		&models.WeekdaySchedule{},
		&models.Appointment{},
		&models.Blackout{},
		&models.AuditLog{},
	); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	// mesmo índice parcial criado em produção (sqlite também suporta)
	db.Exec(`
        CREATE UNIQUE INDEX IF NOT EXISTS idx_appointments_slot
        ON appointments (barber_id, date, start_time)
        WHERE status <> 'cancelado'
    `)

	return db, infraRepo.NewScheduleGormRepository(db)
}

func seedBarber(t *testing.T, repo domain.Repository) string {
	t.Helper()

	barber := models.Barber{Name: "Carlos", Active: true}
	if err := repo.CreateBarber(context.Background(), &barber); err != nil {
		t.Fatalf("seed barber: %v", err)
	}
	return barber.ID
}

func seedWeekdaySchedule(t *testing.T, repo domain.Repository, barberID string) {
	t.Helper()

	err := repo.ReplaceWeekdaySchedules(context.Background(), barberID, []models.WeekdaySchedule{
		{BarberID: barberID, Weekday: 1, OpensAt: "09:00", ClosesAt: "18:00", SlotMinutes: 30},
	})
	if err != nil {
		t.Fatalf("seed schedule: %v", err)
	}
}

func noopCache() *cache.AvailabilityCache {
	return cache.NewAvailabilityCache("")
}

func newDispatcher(db *gorm.DB) *audit.Dispatcher {
	return audit.NewDispatcher(audit.New(db))
}

// --------------------------------------------------
// GetAvailability
// --------------------------------------------------

func TestGetAvailability_EndToEnd(t *testing.T) {
	_, repo := setupRepo(t)
	barberID := seedBarber(t, repo)
	seedWeekdaySchedule(t, repo, barberID)

	ctx := context.Background()

	// agendamento ativo 09:00-09:30
	if err := repo.CreateAppointment(ctx, &models.Appointment{
		BarberID: barberID, ClientName: "João", ClientPhone: "11999990000",
		Service: "Corte", Date: testDate,
		StartTime: "09:00", EndTime: "09:30",
		Status: string(domain.StatusPending),
	}); err != nil {
		t.Fatalf("seed appointment: %v", err)
	}

	// agendamento cancelado 10:00-10:30 (deve liberar o horário)
	if err := repo.CreateAppointment(ctx, &models.Appointment{
		BarberID: barberID, ClientName: "Pedro", ClientPhone: "11999991111",
		Service: "Barba", Date: testDate,
		StartTime: "10:00", EndTime: "10:30",
		Status: string(domain.StatusCancelled),
	}); err != nil {
		t.Fatalf("seed cancelled appointment: %v", err)
	}

	// bloqueio de almoço 13:00-14:00
	if err := repo.CreateBlackout(ctx, &models.Blackout{
		BarberID: barberID, Date: testDate,
		StartTime: "13:00", EndTime: "14:00",
	}); err != nil {
		t.Fatalf("seed blackout: %v", err)
	}

	uc := NewGetAvailability(repo, noopCache())
	slots, err := uc.Execute(ctx, barberID, testDate)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	for _, busy := range []string{"09:00", "13:00", "13:30"} {
		if containsSlot(slots, busy) {
			t.Fatalf("slot %s should be occupied, got %v", busy, slots)
		}
	}
	for _, free := range []string{"09:30", "10:00", "14:00", "17:30"} {
		if !containsSlot(slots, free) {
			t.Fatalf("slot %s should be free, got %v", free, slots)
		}
	}
	if len(slots) != 15 {
		t.Fatalf("expected 15 slots, got %d: %v", len(slots), slots)
	}
}

func TestGetAvailability_NotConfiguredIsClosed(t *testing.T) {
	_, repo := setupRepo(t)
	barberID := seedBarber(t, repo)
	// sem agenda para segunda-feira

	uc := NewGetAvailability(repo, noopCache())
	slots, err := uc.Execute(context.Background(), barberID, testDate)
	if err != nil {
		t.Fatalf("closed day must not be an error, got %v", err)
	}
	if len(slots) != 0 {
		t.Fatalf("expected no slots, got %v", slots)
	}
}

func TestGetAvailability_InactiveBarberIsClosed(t *testing.T) {
	db, repo := setupRepo(t)
	barberID := seedBarber(t, repo)
	seedWeekdaySchedule(t, repo, barberID)

	if err := db.Model(&models.Barber{}).
		Where("id = ?", barberID).
		Update("active", false).Error; err != nil {
		t.Fatalf("deactivate barber: %v", err)
	}

	uc := NewGetAvailability(repo, noopCache())
	slots, err := uc.Execute(context.Background(), barberID, testDate)
	if err != nil {
		t.Fatalf("inactive barber must not be an error, got %v", err)
	}
	if len(slots) != 0 {
		t.Fatalf("expected no slots, got %v", slots)
	}
}

func TestGetAvailability_InvalidDate(t *testing.T) {
	_, repo := setupRepo(t)
	barberID := seedBarber(t, repo)

	uc := NewGetAvailability(repo, noopCache())
	_, err := uc.Execute(context.Background(), barberID, "08/01/2024")
	if !httperr.IsBusiness(err, "invalid_date") {
		t.Fatalf("expected invalid_date, got %v", err)
	}
}

// --------------------------------------------------
// CreateAppointment
// --------------------------------------------------

func TestCreateAppointment_CreatesPendingWithComputedEnd(t *testing.T) {
	db, repo := setupRepo(t)
	barberID := seedBarber(t, repo)
	seedWeekdaySchedule(t, repo, barberID)

	uc := NewCreateAppointment(repo, noopCache(), newDispatcher(db))

	ap, err := uc.Execute(context.Background(), CreateAppointmentInput{
		BarberID:    barberID,
		ClientName:  "João",
		ClientPhone: "11999990000",
		Service:     "Corte",
		Date:        testDate,
		Time:        "09:30",
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if ap.ID == 0 {
		t.Fatalf("expected persisted appointment with id")
	}
	if ap.Status != "pendente" {
		t.Fatalf("expected status pendente, got %s", ap.Status)
	}
	if ap.StartTime != "09:30" || ap.EndTime != "10:00" {
		t.Fatalf("expected 09:30-10:00, got %s-%s", ap.StartTime, ap.EndTime)
	}
}

func TestCreateAppointment_ClosedDay(t *testing.T) {
	db, repo := setupRepo(t)
	barberID := seedBarber(t, repo)
	// sem agenda configurada

	uc := NewCreateAppointment(repo, noopCache(), newDispatcher(db))

	_, err := uc.Execute(context.Background(), CreateAppointmentInput{
		BarberID: barberID, ClientName: "João", ClientPhone: "1",
		Service: "Corte", Date: testDate, Time: "09:30",
	})
	if !httperr.IsBusiness(err, "not_configured") {
		t.Fatalf("expected not_configured, got %v", err)
	}
}

func TestCreateAppointment_UnknownBarber(t *testing.T) {
	db, repo := setupRepo(t)

	uc := NewCreateAppointment(repo, noopCache(), newDispatcher(db))

	_, err := uc.Execute(context.Background(), CreateAppointmentInput{
		BarberID: "7f0e3a9c-1111-2222-3333-444455556666", ClientName: "João",
		ClientPhone: "1", Service: "Corte", Date: testDate, Time: "09:30",
	})
	if !httperr.IsBusiness(err, "barber_not_found") {
		t.Fatalf("expected barber_not_found, got %v", err)
	}
}

func TestCreateAppointment_SameSlotConflicts(t *testing.T) {
	db, repo := setupRepo(t)
	barberID := seedBarber(t, repo)
	seedWeekdaySchedule(t, repo, barberID)

	uc := NewCreateAppointment(repo, noopCache(), newDispatcher(db))

	in := CreateAppointmentInput{
		BarberID: barberID, ClientName: "João", ClientPhone: "1",
		Service: "Corte", Date: testDate, Time: "09:30",
	}

	if _, err := uc.Execute(context.Background(), in); err != nil {
		t.Fatalf("first booking should succeed, got %v", err)
	}

	in.ClientName = "Pedro"
	_, err := uc.Execute(context.Background(), in)
	if !httperr.IsBusiness(err, "time_conflict") {
		t.Fatalf("expected time_conflict, got %v", err)
	}
}

// --------------------------------------------------
// UpdateAppointmentStatus
// --------------------------------------------------

func TestUpdateStatus_CancelFreesSlot(t *testing.T) {
	db, repo := setupRepo(t)
	barberID := seedBarber(t, repo)
	seedWeekdaySchedule(t, repo, barberID)

	ctx := context.Background()
	createUC := NewCreateAppointment(repo, noopCache(), newDispatcher(db))
	updateUC := NewUpdateAppointmentStatus(repo, noopCache(), newDispatcher(db))
	availUC := NewGetAvailability(repo, noopCache())

	in := CreateAppointmentInput{
		BarberID: barberID, ClientName: "João", ClientPhone: "1",
		Service: "Corte", Date: testDate, Time: "11:00",
	}

	ap, err := createUC.Execute(ctx, in)
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	slots, err := availUC.Execute(ctx, barberID, testDate)
	if err != nil {
		t.Fatalf("availability: %v", err)
	}
	if containsSlot(slots, "11:00") {
		t.Fatalf("11:00 should be occupied, got %v", slots)
	}

	if _, err := updateUC.Execute(ctx, ap.ID, "cancelado"); err != nil {
		t.Fatalf("cancel: %v", err)
	}

	slots, err = availUC.Execute(ctx, barberID, testDate)
	if err != nil {
		t.Fatalf("availability after cancel: %v", err)
	}
	if !containsSlot(slots, "11:00") {
		t.Fatalf("cancelled slot must be free again, got %v", slots)
	}

	// o índice parcial permite reagendar o mesmo horário
	in.ClientName = "Pedro"
	if _, err := createUC.Execute(ctx, in); err != nil {
		t.Fatalf("rebooking a cancelled slot should succeed, got %v", err)
	}
}

func TestUpdateStatus_Transitions(t *testing.T) {
	db, repo := setupRepo(t)
	barberID := seedBarber(t, repo)
	seedWeekdaySchedule(t, repo, barberID)

	ctx := context.Background()
	createUC := NewCreateAppointment(repo, noopCache(), newDispatcher(db))
	updateUC := NewUpdateAppointmentStatus(repo, noopCache(), newDispatcher(db))

	ap, err := createUC.Execute(ctx, CreateAppointmentInput{
		BarberID: barberID, ClientName: "João", ClientPhone: "1",
		Service: "Corte", Date: testDate, Time: "15:00",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if _, err := updateUC.Execute(ctx, ap.ID, "confirmado"); err != nil {
		t.Fatalf("pendente -> confirmado: %v", err)
	}

	if _, err := updateUC.Execute(ctx, ap.ID, "pendente"); !httperr.IsBusiness(err, "invalid_state") {
		t.Fatalf("confirmado -> pendente should be invalid_state, got %v", err)
	}

	if _, err := updateUC.Execute(ctx, ap.ID, "cancelado"); err != nil {
		t.Fatalf("confirmado -> cancelado: %v", err)
	}

	if _, err := updateUC.Execute(ctx, ap.ID, "confirmado"); !httperr.IsBusiness(err, "invalid_state") {
		t.Fatalf("cancelado -> confirmado should be invalid_state, got %v", err)
	}
}

func TestUpdateStatus_Rejects(t *testing.T) {
	db, repo := setupRepo(t)

	updateUC := NewUpdateAppointmentStatus(repo, noopCache(), newDispatcher(db))

	if _, err := updateUC.Execute(context.Background(), 1, "scheduled"); !httperr.IsBusiness(err, "invalid_status") {
		t.Fatalf("expected invalid_status, got %v", err)
	}

	if _, err := updateUC.Execute(context.Background(), 999, "confirmado"); !httperr.IsBusiness(err, "appointment_not_found") {
		t.Fatalf("expected appointment_not_found, got %v", err)
	}
}

func containsSlot(slots []string, want string) bool {
	for _, s := range slots {
		if s == want {
			return true
		}
	}
	return false
}
