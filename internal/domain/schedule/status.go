package schedule

import "github.com/BruksfildServices01/barber-agenda/internal/httperr"

// ===============================
// Appointment Status
// ===============================

type Status string

const (
	StatusPending   Status = "pendente"
	StatusConfirmed Status = "confirmado"
	StatusCancelled Status = "cancelado"
)

// InitialStatus define o status de todo agendamento recém-criado.
func InitialStatus() Status {
	return StatusPending
}

func IsValidStatus(s string) bool {
	switch Status(s) {
	case StatusPending, StatusConfirmed, StatusCancelled:
		return true
	}
	return false
}

// Occupies informa se um agendamento neste status ainda ocupa o horário.
// Cancelados liberam o slot.
func Occupies(s Status) bool {
	return Status(s) != StatusCancelled
}

// ===============================
// Transições administrativas
// ===============================

func CanTransition(from, to Status) error {
	switch from {
	case StatusPending:
		if to == StatusConfirmed || to == StatusCancelled {
			return nil
		}
	case StatusConfirmed:
		if to == StatusCancelled {
			return nil
		}
	}
	return httperr.ErrBusiness("invalid_state")
}
