package supabaseclient

import (
	"context"
	"net/http"
	"strings"
	"time"

	jsoniter "github.com/json-iterator/go"

	"github.com/AdamaC336/bay2/internal/config"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Row é uma linha crua da API REST, com as colunas em snake_case
type Row map[string]any

type Client interface {
	Select(ctx context.Context, table string, query Query) ([]Row, error)
	Insert(ctx context.Context, table string, row Row) (Row, error)
	Update(ctx context.Context, table string, values Row, filters ...Filter) ([]Row, error)
}

type SupabaseClient struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
}

func NewClient(cfg config.Supabase) Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	return &SupabaseClient{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		baseURL: strings.TrimSuffix(cfg.URL, "/"),
		apiKey:  cfg.ServiceRoleKey,
	}
}
