package remote

import (
	"fmt"
	"reflect"
	"time"

	"github.com/mitchellh/mapstructure"

	"github.com/AdamaC336/bay2/infrastructure/integrator/supabase/supabaseclient"
)

// O mapeamento coluna <-> campo vem das tags db das entidades e fica só aqui.

const columnTag = "db"

var (
	timeType = reflect.TypeOf(time.Time{})

	timeLayouts = []string{
		time.RFC3339Nano,
		supabaseclient.TimeLayout,
		"2006-01-02T15:04:05.999999",
		"2006-01-02 15:04:05.999999-07",
		"2006-01-02 15:04:05.999999",
		"2006-01-02",
	}

	// colunas carimbadas com now quando o serviço não as devolve
	stampedColumns = map[string]bool{"created_at": true, "updated_at": true}
)

// encode converte um insert em linha, uma coluna por campo com tag db
func encode(v any) supabaseclient.Row {
	row := supabaseclient.Row{}

	val := reflect.Indirect(reflect.ValueOf(v))
	typ := val.Type()
	for i := 0; i < typ.NumField(); i++ {
		column := typ.Field(i).Tag.Get(columnTag)
		if column == "" || column == "-" {
			continue
		}
		row[column] = columnValue(val.Field(i))
	}

	return row
}

func columnValue(field reflect.Value) any {
	if field.Kind() == reflect.Ptr {
		if field.IsNil() {
			return nil
		}
		field = field.Elem()
	}

	if field.Type() == timeType {
		return supabaseclient.FormatTime(field.Interface().(time.Time))
	}
	if field.Kind() == reflect.String {
		return field.String()
	}

	return field.Interface()
}

// decode monta a entidade a partir da linha crua, convertendo datas de texto
func decode[T any](row supabaseclient.Row, now time.Time) (*T, error) {
	var out T

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:    columnTag,
		Result:     &out,
		DecodeHook: stringToTimeHook,
	})
	if err != nil {
		return nil, err
	}

	if err := decoder.Decode(map[string]any(row)); err != nil {
		return nil, fmt.Errorf("erro ao mapear linha: %w", err)
	}

	stampMissing(reflect.ValueOf(&out).Elem(), now)

	return &out, nil
}

func decodeAll[T any](rows []supabaseclient.Row, now time.Time) ([]*T, error) {
	out := make([]*T, 0, len(rows))
	for _, row := range rows {
		item, err := decode[T](row, now)
		if err != nil {
			return nil, err
		}
		out = append(out, item)
	}
	return out, nil
}

func stringToTimeHook(from reflect.Type, to reflect.Type, data any) (any, error) {
	if from.Kind() != reflect.String || to != timeType {
		return data, nil
	}

	s := data.(string)
	if s == "" {
		return time.Time{}, nil
	}

	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}

	return nil, fmt.Errorf("data em formato desconhecido: %q", s)
}

func stampMissing(val reflect.Value, now time.Time) {
	typ := val.Type()
	for i := 0; i < typ.NumField(); i++ {
		field := val.Field(i)
		if field.Type() != timeType || !stampedColumns[typ.Field(i).Tag.Get(columnTag)] {
			continue
		}
		if field.Interface().(time.Time).IsZero() {
			field.Set(reflect.ValueOf(now))
		}
	}
}
