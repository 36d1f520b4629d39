package validators

import (
	"time"

	"github.com/google/uuid"
)

// IsValidDate aceita apenas "YYYY-MM-DD" de uma data real.
func IsValidDate(s string) bool {
	if len(s) != 10 {
		return false
	}

	t, err := time.Parse("2006-01-02", s)
	return err == nil && t.Format("2006-01-02") == s
}

// IsValidTime aceita apenas "HH:MM" em 24h.
func IsValidTime(s string) bool {
	if len(s) != 5 || s[2] != ':' {
		return false
	}

	t, err := time.Parse("15:04", s)
	return err == nil && t.Format("15:04") == s
}

// IsValidBarberID valida o UUID do barbeiro vindo de query/body.
func IsValidBarberID(s string) bool {
	if len(s) != 36 {
		return false
	}

	_, err := uuid.Parse(s)
	return err == nil
}
