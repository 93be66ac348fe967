package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/AdamaC336/bay2/infrastructure/database"
	"github.com/AdamaC336/bay2/internal/domain"
)

const revenueTable = "revenue"

var revenueColumns = []string{"id", "brand_id", "date", "amount", "source", "created_at"}

type revenueRepository struct {
	conn *database.Connection
	now  Clock
}

func NewRevenueRepository(conn *database.Connection, now Clock) RevenueRepository {
	return &revenueRepository{
		conn: conn,
		now:  now,
	}
}

func (r *revenueRepository) GetRevenue(ctx context.Context, brandID int, from, to time.Time) ([]*domain.Revenue, error) {
	query, args, err := r.conn.Builder().
		Select(revenueColumns...).
		From(revenueTable).
		Where(squirrel.Eq{"brand_id": brandID}).
		Where(squirrel.GtOrEq{"date": from.UTC()}).
		Where(squirrel.LtOrEq{"date": to.UTC()}).
		OrderBy("date", "id").
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar receitas da marca %d: %w", brandID, err)
	}
	defer rows.Close()

	revenues := []*domain.Revenue{}
	for rows.Next() {
		revenue, err := scanRevenue(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao ler receita: %w", err)
		}
		revenues = append(revenues, revenue)
	}

	return revenues, rows.Err()
}

// GetTodayRevenue soma no cliente as receitas de [meia-noite local, próxima meia-noite)
func (r *revenueRepository) GetTodayRevenue(ctx context.Context, brandID int) (float64, error) {
	start, end := domain.DayBounds(r.now())

	total, err := sumAmounts(ctx, r.conn, revenueTable, brandID, start, end)
	if err != nil {
		return 0, fmt.Errorf("erro ao somar receita de hoje da marca %d: %w", brandID, err)
	}

	return total, nil
}

func (r *revenueRepository) CreateRevenue(ctx context.Context, revenue *domain.InsertRevenue) (*domain.Revenue, error) {
	query, args, err := r.conn.Builder().
		Insert(revenueTable).
		Columns("brand_id", "date", "amount", "source", "created_at").
		Values(revenue.BrandID, revenue.Date.UTC(), revenue.Amount, revenue.Source, r.now().UTC()).
		Suffix(returning(revenueColumns)).
		ToSql()
	if err != nil {
		return nil, err
	}

	created, err := scanRevenue(r.conn.QueryRowContext(ctx, query, args...))
	if err != nil {
		return nil, wrapError("erro ao criar receita", err)
	}

	return created, nil
}

func scanRevenue(row scanner) (*domain.Revenue, error) {
	var revenue domain.Revenue
	err := row.Scan(
		&revenue.ID,
		&revenue.BrandID,
		&revenue.Date,
		&revenue.Amount,
		&revenue.Source,
		&revenue.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &revenue, nil
}

// sumAmounts busca as linhas de amount em [start, end) e soma após o fetch
func sumAmounts(ctx context.Context, conn *database.Connection, table string, brandID int, start, end time.Time) (float64, error) {
	query, args, err := conn.Builder().
		Select("amount").
		From(table).
		Where(squirrel.Eq{"brand_id": brandID}).
		Where(squirrel.GtOrEq{"date": start.UTC()}).
		Where(squirrel.Lt{"date": end.UTC()}).
		ToSql()
	if err != nil {
		return 0, err
	}

	rows, err := conn.QueryContext(ctx, query, args...)
	if err != nil {
		return 0, err
	}
	defer rows.Close()

	var total float64
	for rows.Next() {
		var amount float64
		if err := rows.Scan(&amount); err != nil {
			return 0, err
		}
		total += amount
	}

	return total, rows.Err()
}
