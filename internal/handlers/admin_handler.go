package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/BruksfildServices01/barber-agenda/internal/audit"
	"github.com/BruksfildServices01/barber-agenda/internal/cache"
	"github.com/BruksfildServices01/barber-agenda/internal/config"
	domain "github.com/BruksfildServices01/barber-agenda/internal/domain/schedule"
	"github.com/BruksfildServices01/barber-agenda/internal/httperr"
	"github.com/BruksfildServices01/barber-agenda/internal/middleware"
	"github.com/BruksfildServices01/barber-agenda/internal/models"
	"github.com/BruksfildServices01/barber-agenda/internal/usecase/appointment"
	"github.com/BruksfildServices01/barber-agenda/internal/validators"
)

// ======================================================
// HANDLER
// ======================================================

type AdminHandler struct {
	cfg   *config.Config
	repo  domain.Repository
	cache *cache.AvailabilityCache
	audit *audit.Dispatcher

	listByDate   *appointment.ListAppointmentsByDate
	updateStatus *appointment.UpdateAppointmentStatus
}

func NewAdminHandler(
	cfg *config.Config,
	repo domain.Repository,
	c *cache.AvailabilityCache,
	audit *audit.Dispatcher,
	listByDate *appointment.ListAppointmentsByDate,
	updateStatus *appointment.UpdateAppointmentStatus,
) *AdminHandler {
	return &AdminHandler{
		cfg:          cfg,
		repo:         repo,
		cache:        c,
		audit:        audit,
		listByDate:   listByDate,
		updateStatus: updateStatus,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type AdminLoginRequest struct {
	Token string `json:"token" binding:"required"`
}

type CreateBarberRequest struct {
	Name string `json:"nome" binding:"required"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type WeekdayScheduleConfig struct {
	Weekday     int    `json:"dia_semana" binding:"required,min=1,max=7"`
	OpensAt     string `json:"abre" binding:"required"`
	ClosesAt    string `json:"fecha" binding:"required"`
	SlotMinutes int    `json:"duracao" binding:"required"`
}

type WeekdayScheduleUpdateRequest struct {
	Days []WeekdayScheduleConfig `json:"days" binding:"required"`
}

type CreateBlackoutRequest struct {
	BarberID  string `json:"barbeiro_id" binding:"required"`
	Date      string `json:"data" binding:"required"`
	StartTime string `json:"inicio" binding:"required"`
	EndTime   string `json:"fim" binding:"required"`
	Reason    string `json:"motivo"`
}

// ======================================================
// LOGIN (token estático → JWT de sessão)
// ======================================================

func (h *AdminHandler) Login(c *gin.Context) {
	var req AdminLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Token obrigatório.")
		return
	}

	if !middleware.TokenMatches(h.cfg, req.Token) {
		httperr.Unauthorized(c, "invalid_token", "Não autorizado.")
		return
	}

	claims := jwt.MapClaims{
		"role": "admin",
		"exp":  time.Now().Add(24 * time.Hour).Unix(),
		"iat":  time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(h.cfg.JWTSecret))
	if err != nil {
		httperr.Internal(c, "failed_to_generate_token", "Erro ao gerar token.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": signed})
}

// ======================================================
// BARBEIROS
// ======================================================

func (h *AdminHandler) ListBarbers(c *gin.Context) {
	barbers, err := h.repo.ListActiveBarbers(c.Request.Context())
	if err != nil {
		httperr.Internal(c, "failed_to_list_barbers", "Erro ao listar barbeiros.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"barbeiros": barbers})
}

func (h *AdminHandler) CreateBarber(c *gin.Context) {
	var req CreateBarberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "nome é obrigatório.")
		return
	}

	barber := models.Barber{
		Name:   req.Name,
		Active: true,
	}

	if err := h.repo.CreateBarber(c.Request.Context(), &barber); err != nil {
		httperr.Internal(c, "failed_to_create_barber", "Erro ao criar barbeiro.")
		return
	}

	c.JSON(http.StatusCreated, barber)
}

// ======================================================
// AGENDAMENTOS
// ======================================================

func (h *AdminHandler) ListAppointments(c *gin.Context) {
	dateStr := c.Query("data")
	barberID := c.Query("barbeiro_id")

	if !validators.IsValidDate(dateStr) || !validators.IsValidBarberID(barberID) {
		httperr.BadRequest(c, "missing_params", "data e barbeiro_id são obrigatórios.")
		return
	}

	rows, err := h.listByDate.Execute(c.Request.Context(), barberID, dateStr)
	if err != nil {
		httperr.Internal(c, "failed_to_list_appointments", "Erro ao listar agendamentos.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"agendamentos": rows})
}

func (h *AdminHandler) UpdateStatus(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "id inválido.")
		return
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "status obrigatório.")
		return
	}

	ap, err := h.updateStatus.Execute(c.Request.Context(), uint(id), req.Status)
	if err != nil {
		switch httperr.Code(err) {
		case "appointment_not_found":
			httperr.NotFound(c, "appointment_not_found", "Agendamento não encontrado.")
		case "invalid_status":
			httperr.BadRequest(c, "invalid_status", "Status inválido.")
		case "invalid_state":
			httperr.BadRequest(c, "invalid_state", "Transição de status não permitida.")
		default:
			httperr.Internal(c, "failed_to_update", "Erro ao atualizar.")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true, "agendamento": ap})
}

// ======================================================
// AGENDA SEMANAL (substitui a semana inteira)
// ======================================================

func (h *AdminHandler) UpdateWeekdaySchedules(c *gin.Context) {
	barberID := c.Param("id")
	if !validators.IsValidBarberID(barberID) {
		httperr.BadRequest(c, "invalid_barber_id", "barbeiro_id inválido.")
		return
	}

	var req WeekdayScheduleUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	rows := make([]models.WeekdaySchedule, 0, len(req.Days))
	for _, d := range req.Days {
		if !validators.IsValidTime(d.OpensAt) || !validators.IsValidTime(d.ClosesAt) {
			httperr.BadRequest(c, "invalid_time", "Horário inválido. Use HH:MM.")
			return
		}
		if d.SlotMinutes <= 0 {
			httperr.BadRequest(c, "invalid_configuration", "duracao deve ser positiva.")
			return
		}

		rows = append(rows, models.WeekdaySchedule{
			BarberID:    barberID,
			Weekday:     d.Weekday,
			OpensAt:     d.OpensAt,
			ClosesAt:    d.ClosesAt,
			SlotMinutes: d.SlotMinutes,
		})
	}

	if err := h.repo.ReplaceWeekdaySchedules(c.Request.Context(), barberID, rows); err != nil {
		httperr.Internal(c, "failed_to_save_schedule", "Erro ao salvar agenda.")
		return
	}

	h.cache.InvalidateBarber(c.Request.Context(), barberID)

	h.audit.Dispatch(audit.Event{
		BarberID: barberID,
		Action:   "schedule_updated",
		Entity:   "weekday_schedule",
	})

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// ======================================================
// BLOQUEIOS
// ======================================================

func (h *AdminHandler) ListBlackouts(c *gin.Context) {
	barberID := c.Query("barbeiro_id")
	if !validators.IsValidBarberID(barberID) {
		httperr.BadRequest(c, "invalid_barber_id", "barbeiro_id inválido.")
		return
	}

	blocks, err := h.repo.ListBlackouts(c.Request.Context(), barberID)
	if err != nil {
		httperr.Internal(c, "failed_to_list_blackouts", "Erro ao listar bloqueios.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"bloqueios": blocks})
}

func (h *AdminHandler) CreateBlackout(c *gin.Context) {
	var req CreateBlackoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	if !validators.IsValidBarberID(req.BarberID) {
		httperr.BadRequest(c, "invalid_barber_id", "barbeiro_id inválido.")
		return
	}
	if !validators.IsValidDate(req.Date) {
		httperr.BadRequest(c, "invalid_date", "Data inválida. Use YYYY-MM-DD.")
		return
	}
	if !validators.IsValidTime(req.StartTime) || !validators.IsValidTime(req.EndTime) {
		httperr.BadRequest(c, "invalid_time", "Horário inválido. Use HH:MM.")
		return
	}

	start, _ := domain.MinuteOfDay(req.StartTime)
	end, _ := domain.MinuteOfDay(req.EndTime)
	if start >= end {
		httperr.BadRequest(c, "invalid_interval", "inicio deve ser antes de fim.")
		return
	}

	block := models.Blackout{
		BarberID:  req.BarberID,
		Date:      req.Date,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
		Reason:    req.Reason,
	}

	if err := h.repo.CreateBlackout(c.Request.Context(), &block); err != nil {
		httperr.Internal(c, "failed_to_create_blackout", "Erro ao criar bloqueio.")
		return
	}

	h.cache.Invalidate(c.Request.Context(), req.BarberID, req.Date)

	h.audit.Dispatch(audit.Event{
		BarberID: req.BarberID,
		Action:   "blackout_created",
		Entity:   "blackout",
		EntityID: &block.ID,
	})

	c.JSON(http.StatusCreated, block)
}

func (h *AdminHandler) DeleteBlackout(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "id inválido.")
		return
	}

	block, err := h.repo.GetBlackout(c.Request.Context(), uint(id))
	if err != nil {
		httperr.NotFound(c, "blackout_not_found", "Bloqueio não encontrado.")
		return
	}

	if err := h.repo.DeleteBlackout(c.Request.Context(), uint(id)); err != nil {
		httperr.Internal(c, "failed_to_delete_blackout", "Erro ao remover bloqueio.")
		return
	}

	h.cache.Invalidate(c.Request.Context(), block.BarberID, block.Date)

	h.audit.Dispatch(audit.Event{
		BarberID: block.BarberID,
		Action:   "blackout_deleted",
		Entity:   "blackout",
		EntityID: &block.ID,
	})

	c.JSON(http.StatusOK, gin.H{"ok": true})
}
