package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barber-agenda/internal/httperr"
	"github.com/BruksfildServices01/barber-agenda/internal/usecase/appointment"
	"github.com/BruksfildServices01/barber-agenda/internal/validators"
)

////////////////////////////////////////////////////////
// HANDLER
////////////////////////////////////////////////////////

type PublicHandler struct {
	availability *appointment.GetAvailability
	create       *appointment.CreateAppointment
}

func NewPublicHandler(
	availability *appointment.GetAvailability,
	create *appointment.CreateAppointment,
) *PublicHandler {
	return &PublicHandler{
		availability: availability,
		create:       create,
	}
}

////////////////////////////////////////////////////////
// DTOs
////////////////////////////////////////////////////////

type CreateAppointmentRequest struct {
	ClientName  string `json:"cliente" binding:"required"`
	ClientPhone string `json:"telefone" binding:"required"`
	Service     string `json:"servico" binding:"required"`
	Date        string `json:"data" binding:"required"`        // YYYY-MM-DD
	Time        string `json:"hora" binding:"required"`        // HH:MM
	BarberID    string `json:"barbeiro_id" binding:"required"` // uuid
}

////////////////////////////////////////////////////////
// HORARIOS
////////////////////////////////////////////////////////

// GET /api/horarios?data=YYYY-MM-DD&barbeiro_id=uuid
//
// Qualquer falha degrada para lista vazia: o widget de agendamento
// prefere "sem horários" a erro na tela.
func (h *PublicHandler) Horarios(c *gin.Context) {
	dateStr := c.Query("data")
	barberID := c.Query("barbeiro_id")

	if !validators.IsValidDate(dateStr) || !validators.IsValidBarberID(barberID) {
		c.JSON(http.StatusOK, []string{})
		return
	}

	slots, err := h.availability.Execute(c.Request.Context(), barberID, dateStr)
	if err != nil {
		c.JSON(http.StatusOK, []string{})
		return
	}

	c.JSON(http.StatusOK, slots)
}

////////////////////////////////////////////////////////
// AGENDAR
////////////////////////////////////////////////////////

// POST /api/agendar
func (h *PublicHandler) Agendar(c *gin.Context) {
	var req CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	// validação ANTES de tocar no banco
	if !validators.IsValidDate(req.Date) {
		httperr.BadRequest(c, "invalid_date", "Data inválida. Use YYYY-MM-DD.")
		return
	}
	if !validators.IsValidTime(req.Time) {
		httperr.BadRequest(c, "invalid_time", "Hora inválida. Use HH:MM.")
		return
	}
	if !validators.IsValidBarberID(req.BarberID) {
		httperr.BadRequest(c, "invalid_barber_id", "barbeiro_id inválido.")
		return
	}

	ap, err := h.create.Execute(
		c.Request.Context(),
		appointment.CreateAppointmentInput{
			BarberID:    req.BarberID,
			ClientName:  req.ClientName,
			ClientPhone: req.ClientPhone,
			Service:     req.Service,
			Date:        req.Date,
			Time:        req.Time,
		},
	)
	if err != nil {
		mapCreateErrors(c, err)
		return
	}

	c.JSON(http.StatusCreated, ap)
}

func mapCreateErrors(c *gin.Context, err error) {
	switch {
	case httperr.IsBusiness(err, "barber_not_found"):
		httperr.BadRequest(c, "barber_not_found", "Barbeiro não encontrado.")

	case httperr.IsBusiness(err, "not_configured"):
		httperr.BadRequest(c, "not_configured", "A barbearia não atende neste dia.")

	case httperr.IsBusiness(err, "invalid_date"):
		httperr.BadRequest(c, "invalid_date", "Data inválida.")

	case httperr.IsBusiness(err, "invalid_time"):
		httperr.BadRequest(c, "invalid_time", "Hora inválida.")

	case httperr.IsBusiness(err, "invalid_configuration"):
		httperr.Internal(c, "invalid_configuration", "Agenda mal configurada.")

	case httperr.IsBusiness(err, "time_conflict"):
		httperr.Conflict(c, "time_conflict", "Horário acabou de ser ocupado. Escolha outro.")

	default:
		httperr.Internal(c, "internal_error", "Erro ao criar agendamento.")
	}
}
