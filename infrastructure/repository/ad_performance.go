package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/AdamaC336/bay2/infrastructure/database"
	"github.com/AdamaC336/bay2/internal/domain"
)

const adPerformanceTable = "ad_performance"

var adPerformanceColumns = []string{
	"id", "brand_id", "ad_set_id", "ad_set_name", "platform", "spend",
	"roas", "ctr", "status", "thumbnail", "date", "created_at",
}

type adPerformanceRepository struct {
	conn *database.Connection
	now  Clock
}

func NewAdPerformanceRepository(conn *database.Connection, now Clock) AdPerformanceRepository {
	return &adPerformanceRepository{
		conn: conn,
		now:  now,
	}
}

func (r *adPerformanceRepository) GetAdPerformance(ctx context.Context, brandID int, platform string) ([]*domain.AdPerformance, error) {
	builder := r.conn.Builder().
		Select(adPerformanceColumns...).
		From(adPerformanceTable).
		Where(squirrel.Eq{"brand_id": brandID}).
		OrderBy("id")

	if platform != "" {
		builder = builder.Where(squirrel.Eq{"platform": platform})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar performance de anúncios da marca %d: %w", brandID, err)
	}
	defer rows.Close()

	ads := []*domain.AdPerformance{}
	for rows.Next() {
		ad, err := scanAdPerformance(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao ler performance de anúncio: %w", err)
		}
		ads = append(ads, ad)
	}

	return ads, rows.Err()
}

func (r *adPerformanceRepository) GetAdPerformanceByID(ctx context.Context, id int) (*domain.AdPerformance, error) {
	query, args, err := r.conn.Builder().
		Select(adPerformanceColumns...).
		From(adPerformanceTable).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, err
	}

	ad, err := scanAdPerformance(r.conn.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao buscar performance de anúncio %d: %w", id, err)
	}

	return ad, nil
}

func (r *adPerformanceRepository) CreateAdPerformance(ctx context.Context, ad *domain.InsertAdPerformance) (*domain.AdPerformance, error) {
	query, args, err := r.conn.Builder().
		Insert(adPerformanceTable).
		Columns(
			"brand_id", "ad_set_id", "ad_set_name", "platform", "spend",
			"roas", "ctr", "status", "thumbnail", "date", "created_at",
		).
		Values(
			ad.BrandID,
			ad.AdSetID,
			ad.AdSetName,
			ad.Platform,
			ad.Spend,
			ad.ROAS,
			ad.CTR,
			string(ad.Status),
			argString(ad.Thumbnail),
			ad.Date.UTC(),
			r.now().UTC(),
		).
		Suffix(returning(adPerformanceColumns)).
		ToSql()
	if err != nil {
		return nil, err
	}

	created, err := scanAdPerformance(r.conn.QueryRowContext(ctx, query, args...))
	if err != nil {
		return nil, wrapError("erro ao criar performance de anúncio", err)
	}

	return created, nil
}

// UpdateAdStatus não carimba timestamp: a entidade não tem updated_at
func (r *adPerformanceRepository) UpdateAdStatus(ctx context.Context, id int, status domain.AdStatus) (*domain.AdPerformance, error) {
	query, args, err := r.conn.Builder().
		Update(adPerformanceTable).
		Set("status", string(status)).
		Where(squirrel.Eq{"id": id}).
		Suffix(returning(adPerformanceColumns)).
		ToSql()
	if err != nil {
		return nil, err
	}

	ad, err := scanAdPerformance(r.conn.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao atualizar status do anúncio %d: %w", id, err)
	}

	return ad, nil
}

func scanAdPerformance(row scanner) (*domain.AdPerformance, error) {
	var (
		ad        domain.AdPerformance
		status    string
		thumbnail sql.NullString
	)

	err := row.Scan(
		&ad.ID,
		&ad.BrandID,
		&ad.AdSetID,
		&ad.AdSetName,
		&ad.Platform,
		&ad.Spend,
		&ad.ROAS,
		&ad.CTR,
		&status,
		&thumbnail,
		&ad.Date,
		&ad.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	ad.Status = domain.AdStatus(status)
	ad.Thumbnail = nullableString(thumbnail)

	return &ad, nil
}
