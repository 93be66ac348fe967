package supabaseclient

import (
	"fmt"
	"net/url"
	"time"
)

// TimeLayout tem largura fixa em UTC, então comparações de texto seguem a ordem cronológica
const TimeLayout = "2006-01-02T15:04:05.000000Z07:00"

// Operadores de filtro do PostgREST
const (
	OpEq  = "eq"
	OpGte = "gte"
	OpLt  = "lt"
	OpLte = "lte"
)

type Filter struct {
	Column string
	Op     string
	Value  string
}

func Eq(column string, value any) Filter  { return Filter{column, OpEq, FormatValue(value)} }
func Gte(column string, value any) Filter { return Filter{column, OpGte, FormatValue(value)} }
func Lt(column string, value any) Filter  { return Filter{column, OpLt, FormatValue(value)} }
func Lte(column string, value any) Filter { return Filter{column, OpLte, FormatValue(value)} }

// Query descreve um select. Columns vazio equivale a "*".
type Query struct {
	Columns string
	Filters []Filter
	Order   string
}

func FormatTime(t time.Time) string {
	return t.UTC().Format(TimeLayout)
}

func FormatValue(value any) string {
	switch v := value.(type) {
	case time.Time:
		return FormatTime(v)
	case *time.Time:
		if v == nil {
			return "null"
		}
		return FormatTime(*v)
	case string:
		return v
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprint(v)
	}
}

func encodeFilters(values url.Values, filters []Filter) {
	for _, f := range filters {
		values.Add(f.Column, f.Op+"."+f.Value)
	}
}
