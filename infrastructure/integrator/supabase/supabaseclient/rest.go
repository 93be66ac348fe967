package supabaseclient

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/sirupsen/logrus"
)

func (c *SupabaseClient) Select(ctx context.Context, table string, query Query) ([]Row, error) {
	values := url.Values{}
	columns := query.Columns
	if columns == "" {
		columns = "*"
	}
	values.Set("select", columns)
	encodeFilters(values, query.Filters)
	if query.Order != "" {
		values.Set("order", query.Order)
	}

	var rows []Row
	if err := c.do(ctx, http.MethodGet, table, values, nil, &rows); err != nil {
		return nil, err
	}

	return rows, nil
}

func (c *SupabaseClient) Insert(ctx context.Context, table string, row Row) (Row, error) {
	var rows []Row
	if err := c.do(ctx, http.MethodPost, table, url.Values{}, row, &rows); err != nil {
		return nil, err
	}

	if len(rows) == 0 {
		return nil, fmt.Errorf("supabase: insert em %s não retornou linhas", table)
	}

	return rows[0], nil
}

// Update devolve as linhas alteradas; lista vazia significa que nenhum filtro casou
func (c *SupabaseClient) Update(ctx context.Context, table string, values Row, filters ...Filter) ([]Row, error) {
	params := url.Values{}
	encodeFilters(params, filters)

	var rows []Row
	if err := c.do(ctx, http.MethodPatch, table, params, values, &rows); err != nil {
		return nil, err
	}

	return rows, nil
}

func (c *SupabaseClient) do(ctx context.Context, method, table string, params url.Values, body any, out any) error {
	endpoint, err := url.Parse(c.baseURL + "/rest/v1/" + table)
	if err != nil {
		return fmt.Errorf("erro ao analisar a URL base: %w", err)
	}
	endpoint.RawQuery = params.Encode()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("erro ao serializar o corpo da requisição: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint.String(), reader)
	if err != nil {
		return fmt.Errorf("erro ao criar a requisição: %w", err)
	}

	req.Header.Set("apikey", c.apiKey)
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Prefer", "return=representation")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("erro ao executar a requisição: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("erro ao ler a resposta: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		apiErr := &Error{Status: resp.StatusCode}
		if err := json.Unmarshal(raw, apiErr); err != nil || apiErr.Message == "" {
			apiErr.Message = http.StatusText(resp.StatusCode)
		}

		logrus.WithFields(logrus.Fields{
			"table":  table,
			"method": method,
			"status": resp.StatusCode,
			"code":   apiErr.Code,
		}).Warn("Supabase retornou erro")

		return apiErr
	}

	if out == nil || len(raw) == 0 {
		return nil
	}

	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("erro ao decodificar a resposta: %w", err)
	}

	return nil
}
