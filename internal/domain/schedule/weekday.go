package schedule

import "time"

const DateLayout = "2006-01-02"

// WeekdayIndex mapeia a data para a convenção do banco.
// Go: 0=domingo | banco: 1=segunda ... 6=sábado, 7=domingo.
func WeekdayIndex(date time.Time) int {
	wd := int(date.Weekday())
	if wd == 0 {
		return 7
	}
	return wd
}

// ParseDate interpreta "YYYY-MM-DD" como data civil, sem timezone.
func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateLayout, s)
}
