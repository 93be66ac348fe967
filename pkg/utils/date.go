package utils

import (
	"errors"
	"time"
)

var ErrEmptyDate = errors.New("data não informada")

// ParseDate aceita RFC3339 ou apenas a data (2006-01-02). Datas sem horário
// são interpretadas como meia-noite local.
func ParseDate(dateStr string) (time.Time, error) {
	if dateStr == "" {
		return time.Time{}, ErrEmptyDate
	}

	if date, err := time.Parse(time.RFC3339, dateStr); err == nil {
		return date, nil
	}

	return time.ParseInLocation(time.DateOnly, dateStr, time.Local)
}

// EndOfDay leva uma data sem horário ao último instante do mesmo dia, para
// que um toDate=2006-01-02 inclua as linhas daquele dia
func EndOfDay(date time.Time) time.Time {
	y, m, d := date.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, date.Location()).AddDate(0, 0, 1).Add(-time.Nanosecond)
}

// IsDateOnly informa se o texto veio sem horário
func IsDateOnly(dateStr string) bool {
	_, err := time.Parse(time.DateOnly, dateStr)
	return err == nil
}
