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

const brandsTable = "brands"

var brandColumns = []string{"id", "name", "code", "created_at"}

type brandRepository struct {
	conn *database.Connection
	now  Clock
}

func NewBrandRepository(conn *database.Connection, now Clock) BrandRepository {
	return &brandRepository{
		conn: conn,
		now:  now,
	}
}

func (r *brandRepository) GetBrands(ctx context.Context) ([]*domain.Brand, error) {
	query, args, err := r.conn.Builder().
		Select(brandColumns...).
		From(brandsTable).
		OrderBy("id").
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar marcas: %w", err)
	}
	defer rows.Close()

	brands := []*domain.Brand{}
	for rows.Next() {
		brand, err := scanBrand(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao ler marca: %w", err)
		}
		brands = append(brands, brand)
	}

	return brands, rows.Err()
}

func (r *brandRepository) GetBrand(ctx context.Context, id int) (*domain.Brand, error) {
	return r.getBrandBy(ctx, squirrel.Eq{"id": id})
}

func (r *brandRepository) GetBrandByCode(ctx context.Context, code string) (*domain.Brand, error) {
	return r.getBrandBy(ctx, squirrel.Eq{"code": code})
}

func (r *brandRepository) getBrandBy(ctx context.Context, pred squirrel.Eq) (*domain.Brand, error) {
	query, args, err := r.conn.Builder().
		Select(brandColumns...).
		From(brandsTable).
		Where(pred).
		ToSql()
	if err != nil {
		return nil, err
	}

	brand, err := scanBrand(r.conn.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao buscar marca: %w", err)
	}

	return brand, nil
}

func (r *brandRepository) CreateBrand(ctx context.Context, brand *domain.InsertBrand) (*domain.Brand, error) {
	query, args, err := r.conn.Builder().
		Insert(brandsTable).
		Columns("name", "code", "created_at").
		Values(brand.Name, brand.Code, r.now().UTC()).
		Suffix(returning(brandColumns)).
		ToSql()
	if err != nil {
		return nil, err
	}

	created, err := scanBrand(r.conn.QueryRowContext(ctx, query, args...))
	if err != nil {
		return nil, wrapError("erro ao criar marca", err)
	}

	return created, nil
}

func scanBrand(row scanner) (*domain.Brand, error) {
	var brand domain.Brand
	if err := row.Scan(&brand.ID, &brand.Name, &brand.Code, &brand.CreatedAt); err != nil {
		return nil, err
	}
	return &brand, nil
}
