package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/AdamaC336/bay2/infrastructure/database"
	"github.com/AdamaC336/bay2/internal/domain"
)

const adSpendTable = "ad_spend"

var adSpendColumns = []string{"id", "brand_id", "date", "amount", "platform", "campaign", "ad_set", "created_at"}

type adSpendRepository struct {
	conn *database.Connection
	now  Clock
}

func NewAdSpendRepository(conn *database.Connection, now Clock) AdSpendRepository {
	return &adSpendRepository{
		conn: conn,
		now:  now,
	}
}

func (r *adSpendRepository) GetAdSpend(ctx context.Context, brandID int, from, to time.Time) ([]*domain.AdSpend, error) {
	query, args, err := r.conn.Builder().
		Select(adSpendColumns...).
		From(adSpendTable).
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
		return nil, fmt.Errorf("erro ao buscar gastos com anúncios da marca %d: %w", brandID, err)
	}
	defer rows.Close()

	spends := []*domain.AdSpend{}
	for rows.Next() {
		spend, err := scanAdSpend(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao ler gasto com anúncio: %w", err)
		}
		spends = append(spends, spend)
	}

	return spends, rows.Err()
}

func (r *adSpendRepository) GetTodayAdSpend(ctx context.Context, brandID int) (float64, error) {
	start, end := domain.DayBounds(r.now())

	total, err := sumAmounts(ctx, r.conn, adSpendTable, brandID, start, end)
	if err != nil {
		return 0, fmt.Errorf("erro ao somar gasto de hoje da marca %d: %w", brandID, err)
	}

	return total, nil
}

func (r *adSpendRepository) CreateAdSpend(ctx context.Context, adSpend *domain.InsertAdSpend) (*domain.AdSpend, error) {
	query, args, err := r.conn.Builder().
		Insert(adSpendTable).
		Columns("brand_id", "date", "amount", "platform", "campaign", "ad_set", "created_at").
		Values(
			adSpend.BrandID,
			adSpend.Date.UTC(),
			adSpend.Amount,
			adSpend.Platform,
			argString(adSpend.Campaign),
			argString(adSpend.AdSet),
			r.now().UTC(),
		).
		Suffix(returning(adSpendColumns)).
		ToSql()
	if err != nil {
		return nil, err
	}

	created, err := scanAdSpend(r.conn.QueryRowContext(ctx, query, args...))
	if err != nil {
		return nil, wrapError("erro ao criar gasto com anúncio", err)
	}

	return created, nil
}

func scanAdSpend(row scanner) (*domain.AdSpend, error) {
	var (
		spend    domain.AdSpend
		campaign sql.NullString
		adSet    sql.NullString
	)

	err := row.Scan(
		&spend.ID,
		&spend.BrandID,
		&spend.Date,
		&spend.Amount,
		&spend.Platform,
		&campaign,
		&adSet,
		&spend.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	spend.Campaign = nullableString(campaign)
	spend.AdSet = nullableString(adSet)

	return &spend, nil
}
