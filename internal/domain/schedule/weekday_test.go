package schedule

import (
	"testing"
	"time"
)

func TestWeekdayIndex_SundayIsSeven(t *testing.T) {
	// 2024-01-07 é domingo
	date := time.Date(2024, time.January, 7, 0, 0, 0, 0, time.UTC)

	if got := WeekdayIndex(date); got != 7 {
		t.Fatalf("expected weekday 7 for Sunday, got %d", got)
	}
}

func TestWeekdayIndex_MondayThroughSaturday(t *testing.T) {
	// 2024-01-01 é segunda; 01..06 cobrem segunda a sábado
	for day := 1; day <= 6; day++ {
		date := time.Date(2024, time.January, day, 0, 0, 0, 0, time.UTC)
		if got := WeekdayIndex(date); got != day {
			t.Fatalf("expected weekday %d for 2024-01-0%d, got %d", day, day, got)
		}
	}
}

func TestParseDate(t *testing.T) {
	date, err := ParseDate("2024-01-07")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if date.Year() != 2024 || date.Month() != time.January || date.Day() != 7 {
		t.Fatalf("unexpected date %v", date)
	}

	if _, err := ParseDate("07/01/2024"); err == nil {
		t.Fatalf("expected error for non-ISO date")
	}
	if _, err := ParseDate("2024-02-30"); err == nil {
		t.Fatalf("expected error for impossible date")
	}
}
