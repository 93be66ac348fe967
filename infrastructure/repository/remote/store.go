// Package remote implementa o Storage sobre a API REST do Supabase (PostgREST).
package remote

import (
	"context"
	"fmt"
	"time"

	"github.com/AdamaC336/bay2/infrastructure/integrator/supabase/supabaseclient"
	"github.com/AdamaC336/bay2/infrastructure/repository"
	"github.com/AdamaC336/bay2/internal/domain"
)

const (
	usersTable         = "users"
	brandsTable        = "brands"
	revenueTable       = "revenue"
	adSpendTable       = "ad_spend"
	aiAgentsTable      = "ai_agents"
	adPerformanceTable = "ad_performance"
	opsTasksTable      = "ops_tasks"

	orderByID   = "id.asc"
	orderByDate = "date.asc,id.asc"
)

type Store struct {
	client supabaseclient.Client
	now    repository.Clock
}

var _ repository.Storage = (*Store)(nil)

func New(client supabaseclient.Client, now repository.Clock) *Store {
	if now == nil {
		now = time.Now
	}

	return &Store{
		client: client,
		now:    now,
	}
}

// wrapError repassa a mensagem do serviço e traduz violação de chave única
func wrapError(action string, err error) error {
	if supabaseclient.IsDuplicateKey(err) {
		return fmt.Errorf("falha ao %s: %w", action, repository.ErrDuplicateKey)
	}
	return fmt.Errorf("falha ao %s: %w", action, err)
}

func byID(id int) supabaseclient.Query {
	return supabaseclient.Query{Filters: []supabaseclient.Filter{supabaseclient.Eq("id", id)}}
}

// getOne busca no máximo uma linha; nenhuma linha é ausência, não erro
func getOne[T any](ctx context.Context, s *Store, table string, query supabaseclient.Query, action string) (*T, error) {
	rows, err := s.client.Select(ctx, table, query)
	if err != nil {
		return nil, wrapError(action, err)
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return decode[T](rows[0], s.now())
}

func list[T any](ctx context.Context, s *Store, table string, query supabaseclient.Query, action string) ([]*T, error) {
	rows, err := s.client.Select(ctx, table, query)
	if err != nil {
		return nil, wrapError(action, err)
	}
	return decodeAll[T](rows, s.now())
}

func create[T any](ctx context.Context, s *Store, table string, row supabaseclient.Row, action string) (*T, error) {
	created, err := s.client.Insert(ctx, table, row)
	if err != nil {
		return nil, wrapError(action, err)
	}
	return decode[T](created, s.now())
}

// update aplica values à linha id; nenhuma linha alterada é ausência
func update[T any](ctx context.Context, s *Store, table string, id int, values supabaseclient.Row, action string) (*T, error) {
	rows, err := s.client.Update(ctx, table, values, supabaseclient.Eq("id", id))
	if err != nil {
		return nil, wrapError(action, err)
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return decode[T](rows[0], s.now())
}

func (s *Store) GetUser(ctx context.Context, id int) (*domain.User, error) {
	return getOne[domain.User](ctx, s, usersTable, byID(id), "buscar usuário")
}

func (s *Store) GetUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	query := supabaseclient.Query{Filters: []supabaseclient.Filter{supabaseclient.Eq("username", username)}}
	return getOne[domain.User](ctx, s, usersTable, query, "buscar usuário")
}

func (s *Store) CreateUser(ctx context.Context, user *domain.InsertUser) (*domain.User, error) {
	return create[domain.User](ctx, s, usersTable, encode(user), "criar usuário")
}

func (s *Store) GetBrands(ctx context.Context) ([]*domain.Brand, error) {
	return list[domain.Brand](ctx, s, brandsTable, supabaseclient.Query{Order: orderByID}, "listar marcas")
}

func (s *Store) GetBrand(ctx context.Context, id int) (*domain.Brand, error) {
	return getOne[domain.Brand](ctx, s, brandsTable, byID(id), "buscar marca")
}

func (s *Store) GetBrandByCode(ctx context.Context, code string) (*domain.Brand, error) {
	query := supabaseclient.Query{Filters: []supabaseclient.Filter{supabaseclient.Eq("code", code)}}
	return getOne[domain.Brand](ctx, s, brandsTable, query, "buscar marca")
}

func (s *Store) CreateBrand(ctx context.Context, brand *domain.InsertBrand) (*domain.Brand, error) {
	row := encode(brand)
	row["created_at"] = supabaseclient.FormatTime(s.now())

	return create[domain.Brand](ctx, s, brandsTable, row, "criar marca")
}

func rangeQuery(brandID int, from, to time.Time) supabaseclient.Query {
	return supabaseclient.Query{
		Filters: []supabaseclient.Filter{
			supabaseclient.Eq("brand_id", brandID),
			supabaseclient.Gte("date", from),
			supabaseclient.Lte("date", to),
		},
		Order: orderByDate,
	}
}

// dailyAmount é a projeção usada para somar os valores do dia
type dailyAmount struct {
	Amount float64 `db:"amount"`
}

// sumToday soma no cliente os amounts de [meia-noite local, próxima meia-noite)
func (s *Store) sumToday(ctx context.Context, table string, brandID int) (float64, error) {
	start, end := domain.DayBounds(s.now())

	rows, err := s.client.Select(ctx, table, supabaseclient.Query{
		Columns: "amount",
		Filters: []supabaseclient.Filter{
			supabaseclient.Eq("brand_id", brandID),
			supabaseclient.Gte("date", start),
			supabaseclient.Lt("date", end),
		},
	})
	if err != nil {
		return 0, wrapError("somar valores de hoje", err)
	}

	amounts, err := decodeAll[dailyAmount](rows, s.now())
	if err != nil {
		return 0, wrapError("somar valores de hoje", err)
	}

	var total float64
	for _, row := range amounts {
		total += row.Amount
	}

	return total, nil
}

func (s *Store) GetRevenue(ctx context.Context, brandID int, from, to time.Time) ([]*domain.Revenue, error) {
	return list[domain.Revenue](ctx, s, revenueTable, rangeQuery(brandID, from, to), "buscar receitas")
}

func (s *Store) GetTodayRevenue(ctx context.Context, brandID int) (float64, error) {
	return s.sumToday(ctx, revenueTable, brandID)
}

func (s *Store) CreateRevenue(ctx context.Context, revenue *domain.InsertRevenue) (*domain.Revenue, error) {
	row := encode(revenue)
	row["created_at"] = supabaseclient.FormatTime(s.now())

	return create[domain.Revenue](ctx, s, revenueTable, row, "criar receita")
}

func (s *Store) GetAdSpend(ctx context.Context, brandID int, from, to time.Time) ([]*domain.AdSpend, error) {
	return list[domain.AdSpend](ctx, s, adSpendTable, rangeQuery(brandID, from, to), "buscar gastos com anúncios")
}

func (s *Store) GetTodayAdSpend(ctx context.Context, brandID int) (float64, error) {
	return s.sumToday(ctx, adSpendTable, brandID)
}

func (s *Store) CreateAdSpend(ctx context.Context, adSpend *domain.InsertAdSpend) (*domain.AdSpend, error) {
	row := encode(adSpend)
	row["created_at"] = supabaseclient.FormatTime(s.now())

	return create[domain.AdSpend](ctx, s, adSpendTable, row, "criar gasto com anúncio")
}
