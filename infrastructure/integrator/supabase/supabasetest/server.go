// Package supabasetest sobe um PostgREST mínimo em memória para testes.
// Suporta select/insert/update com filtros eq, gte, lt e lte, order e chaves únicas.
package supabasetest

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"sort"
	"strconv"
	"strings"
	"sync"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const restPrefix = "/rest/v1/"

type row = map[string]any

type Server struct {
	*httptest.Server

	APIKey string

	mu     sync.Mutex
	tables map[string][]row
	seq    map[string]int
	unique map[string][]string
}

// NewServer cria o servidor com as chaves únicas do schema do dashboard
func NewServer(apiKey string) *Server {
	s := &Server{
		APIKey: apiKey,
		tables: make(map[string][]row),
		seq:    make(map[string]int),
		unique: map[string][]string{
			"users":  {"username"},
			"brands": {"name", "code"},
		},
	}
	s.Server = httptest.NewServer(http.HandlerFunc(s.handle))
	return s
}

// Rows devolve uma cópia da tabela, útil para asserções
func (s *Server) Rows(table string) []map[string]any {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]map[string]any, 0, len(s.tables[table]))
	for _, r := range s.tables[table] {
		out = append(out, cloneRow(r))
	}
	return out
}

func (s *Server) handle(w http.ResponseWriter, r *http.Request) {
	if r.Header.Get("apikey") != s.APIKey || r.Header.Get("Authorization") != "Bearer "+s.APIKey {
		writeError(w, http.StatusUnauthorized, "", "Invalid API key")
		return
	}

	if !strings.HasPrefix(r.URL.Path, restPrefix) {
		writeError(w, http.StatusNotFound, "", "not found")
		return
	}
	table := strings.TrimPrefix(r.URL.Path, restPrefix)

	filters, err := parseFilters(r.URL.Query())
	if err != nil {
		writeError(w, http.StatusBadRequest, "PGRST100", err.Error())
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	switch r.Method {
	case http.MethodGet:
		s.selectRows(w, table, filters, r.URL.Query())
	case http.MethodPost:
		s.insertRow(w, r, table)
	case http.MethodPatch:
		s.updateRows(w, r, table, filters)
	default:
		writeError(w, http.StatusMethodNotAllowed, "", "method not allowed")
	}
}

func (s *Server) selectRows(w http.ResponseWriter, table string, filters []filter, params map[string][]string) {
	var out []row
	for _, r := range s.tables[table] {
		if matchAll(r, filters) {
			out = append(out, cloneRow(r))
		}
	}

	if order := first(params["order"]); order != "" {
		sortRows(out, order)
	}

	if columns := first(params["select"]); columns != "" && columns != "*" {
		keep := strings.Split(columns, ",")
		for i, r := range out {
			projected := row{}
			for _, c := range keep {
				projected[c] = r[c]
			}
			out[i] = projected
		}
	}

	writeJSON(w, http.StatusOK, orEmpty(out))
}

func (s *Server) insertRow(w http.ResponseWriter, r *http.Request, table string) {
	var body row
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "PGRST102", "invalid body")
		return
	}

	for _, column := range s.unique[table] {
		for _, existing := range s.tables[table] {
			if existing[column] == body[column] {
				writeError(w, http.StatusConflict, "23505",
					"duplicate key value violates unique constraint \""+table+"_"+column+"_key\"")
				return
			}
		}
	}

	s.seq[table]++
	body["id"] = float64(s.seq[table])
	s.tables[table] = append(s.tables[table], body)

	writeJSON(w, http.StatusCreated, []row{cloneRow(body)})
}

func (s *Server) updateRows(w http.ResponseWriter, r *http.Request, table string, filters []filter) {
	var values row
	if err := json.NewDecoder(r.Body).Decode(&values); err != nil {
		writeError(w, http.StatusBadRequest, "PGRST102", "invalid body")
		return
	}

	out := []row{}
	for _, existing := range s.tables[table] {
		if !matchAll(existing, filters) {
			continue
		}
		for k, v := range values {
			existing[k] = v
		}
		out = append(out, cloneRow(existing))
	}

	writeJSON(w, http.StatusOK, out)
}

type filter struct {
	column string
	op     string
	value  string
}

func parseFilters(params map[string][]string) ([]filter, error) {
	var filters []filter
	for column, values := range params {
		if column == "select" || column == "order" {
			continue
		}
		for _, v := range values {
			op, value, ok := strings.Cut(v, ".")
			if !ok {
				return nil, &parseError{column}
			}
			filters = append(filters, filter{column: column, op: op, value: value})
		}
	}
	return filters, nil
}

type parseError struct{ column string }

func (e *parseError) Error() string { return "failed to parse filter on " + e.column }

func matchAll(r row, filters []filter) bool {
	for _, f := range filters {
		if !match(r[f.column], f) {
			return false
		}
	}
	return true
}

func match(value any, f filter) bool {
	if value == nil {
		return false
	}

	cmp := compare(value, f.value)
	switch f.op {
	case "eq":
		return cmp == 0
	case "gte":
		return cmp >= 0
	case "lt":
		return cmp < 0
	case "lte":
		return cmp <= 0
	}
	return false
}

// compare trata números numericamente e todo o resto como texto
func compare(value any, raw string) int {
	if n, ok := value.(float64); ok {
		if other, err := strconv.ParseFloat(raw, 64); err == nil {
			switch {
			case n < other:
				return -1
			case n > other:
				return 1
			}
			return 0
		}
	}

	var s string
	switch v := value.(type) {
	case string:
		s = v
	case bool:
		s = strconv.FormatBool(v)
	case float64:
		s = strconv.FormatFloat(v, 'f', -1, 64)
	default:
		s = fmt.Sprint(v)
	}
	return strings.Compare(s, raw)
}

func sortRows(rows []row, order string) {
	keys := strings.Split(order, ",")
	sort.SliceStable(rows, func(i, j int) bool {
		for _, key := range keys {
			column, direction, _ := strings.Cut(key, ".")
			a, b := rows[i][column], rows[j][column]
			if a == nil || b == nil {
				continue
			}

			var c int
			if bs, ok := b.(string); ok {
				c = compare(a, bs)
			} else if bf, ok := b.(float64); ok {
				c = compare(a, strconv.FormatFloat(bf, 'f', -1, 64))
			}

			if c == 0 {
				continue
			}
			if direction == "desc" {
				return c > 0
			}
			return c < 0
		}
		return false
	})
}

func cloneRow(r row) row {
	c := make(row, len(r))
	for k, v := range r {
		c[k] = v
	}
	return c
}

func orEmpty(rows []row) []row {
	if rows == nil {
		return []row{}
	}
	return rows
}

func first(values []string) string {
	if len(values) == 0 {
		return ""
	}
	return values[0]
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, map[string]string{"code": code, "message": message})
}
