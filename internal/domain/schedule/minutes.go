package schedule

import (
	"fmt"
	"strconv"
	"strings"
)

// ===============================
// Aritmética de horários (HH:MM)
// ===============================

// MinuteOfDay converte "HH:MM" em minutos desde 00:00.
func MinuteOfDay(hm string) (int, error) {
	parts := strings.Split(hm, ":")
	if len(parts) != 2 || len(parts[0]) != 2 || len(parts[1]) != 2 {
		return 0, fmt.Errorf("invalid time %q", hm)
	}

	h, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, fmt.Errorf("invalid time %q", hm)
	}

	m, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, fmt.Errorf("invalid time %q", hm)
	}

	if h < 0 || h > 23 || m < 0 || m > 59 {
		return 0, fmt.Errorf("invalid time %q", hm)
	}

	return h*60 + m, nil
}

// FormatMinute converte minutos desde 00:00 em "HH:MM".
func FormatMinute(m int) string {
	return fmt.Sprintf("%02d:%02d", m/60, m%60)
}
