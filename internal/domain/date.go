package domain

import "time"

// DayBounds retorna o intervalo [meia-noite local de hoje, meia-noite local de amanhã)
// relativo a now. O limite superior é exclusivo.
func DayBounds(now time.Time) (time.Time, time.Time) {
	y, m, d := now.Date()
	start := time.Date(y, m, d, 0, 0, 0, 0, now.Location())
	return start, start.AddDate(0, 0, 1)
}

// InDay informa se t está dentro de [start, end)
func InDay(t, start, end time.Time) bool {
	return !t.Before(start) && t.Before(end)
}
