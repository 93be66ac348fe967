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

const usersTable = "users"

var userColumns = []string{"id", "username", "password", "name", "role"}

type userRepository struct {
	conn *database.Connection
}

func NewUserRepository(conn *database.Connection) UserRepository {
	return &userRepository{
		conn: conn,
	}
}

func (r *userRepository) GetUser(ctx context.Context, id int) (*domain.User, error) {
	return r.getUserBy(ctx, squirrel.Eq{"id": id})
}

func (r *userRepository) GetUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	return r.getUserBy(ctx, squirrel.Eq{"username": username})
}

func (r *userRepository) getUserBy(ctx context.Context, pred squirrel.Eq) (*domain.User, error) {
	query, args, err := r.conn.Builder().
		Select(userColumns...).
		From(usersTable).
		Where(pred).
		ToSql()
	if err != nil {
		return nil, err
	}

	user, err := scanUser(r.conn.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao buscar usuário: %w", err)
	}

	return user, nil
}

// CreateUser espera a senha já convertida em hash
func (r *userRepository) CreateUser(ctx context.Context, user *domain.InsertUser) (*domain.User, error) {
	query, args, err := r.conn.Builder().
		Insert(usersTable).
		Columns("username", "password", "name", "role").
		Values(user.Username, user.Password, argString(user.Name), user.Role).
		Suffix(returning(userColumns)).
		ToSql()
	if err != nil {
		return nil, err
	}

	created, err := scanUser(r.conn.QueryRowContext(ctx, query, args...))
	if err != nil {
		return nil, wrapError("erro ao criar usuário", err)
	}

	return created, nil
}

func scanUser(row scanner) (*domain.User, error) {
	var (
		user domain.User
		name sql.NullString
	)

	if err := row.Scan(&user.ID, &user.Username, &user.PasswordHash, &name, &user.Role); err != nil {
		return nil, err
	}
	user.Name = nullableString(name)

	return &user, nil
}
