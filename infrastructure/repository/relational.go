package repository

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/lib/pq"
	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"

	"github.com/AdamaC336/bay2/infrastructure/database"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const pqUniqueViolation = "23505"

type relationalStorage struct {
	UserRepository
	BrandRepository
	RevenueRepository
	AdSpendRepository
	AIAgentRepository
	AdPerformanceRepository
	OpsTaskRepository
}

// NewStorage monta o Storage relacional sobre uma conexão postgres ou sqlite
func NewStorage(conn *database.Connection, now Clock) Storage {
	if now == nil {
		now = time.Now
	}

	return &relationalStorage{
		UserRepository:          NewUserRepository(conn),
		BrandRepository:         NewBrandRepository(conn, now),
		RevenueRepository:       NewRevenueRepository(conn, now),
		AdSpendRepository:       NewAdSpendRepository(conn, now),
		AIAgentRepository:       NewAIAgentRepository(conn, now),
		AdPerformanceRepository: NewAdPerformanceRepository(conn, now),
		OpsTaskRepository:       NewOpsTaskRepository(conn, now),
	}
}

type scanner interface {
	Scan(dest ...any) error
}

func returning(columns []string) string {
	return "RETURNING " + strings.Join(columns, ", ")
}

// wrapError padroniza a mensagem e traduz violação de chave única para ErrDuplicateKey
func wrapError(msg string, err error) error {
	if isDuplicateKey(err) {
		return fmt.Errorf("%s: %w", msg, ErrDuplicateKey)
	}
	return fmt.Errorf("%s: %w", msg, err)
}

func isDuplicateKey(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == pqUniqueViolation
	}

	var sqliteErr *sqlite.Error
	if errors.As(err, &sqliteErr) {
		switch code := sqliteErr.Code(); {
		case code == sqlite3.SQLITE_CONSTRAINT_UNIQUE, code == sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY:
			return true
		case code&0xff == sqlite3.SQLITE_CONSTRAINT:
			// sem códigos estendidos só a mensagem distingue UNIQUE de FOREIGN KEY
			return strings.Contains(sqliteErr.Error(), "UNIQUE")
		}
	}

	return false
}

func nullableString(ns sql.NullString) *string {
	if !ns.Valid {
		return nil
	}
	s := ns.String
	return &s
}

func nullableTime(nt sql.NullTime) *time.Time {
	if !nt.Valid {
		return nil
	}
	t := nt.Time
	return &t
}

// argString e argTime convertem opcionais em NULL explícito para o driver
func argString(s *string) any {
	if s == nil {
		return nil
	}
	return *s
}

func argTime(t *time.Time) any {
	if t == nil {
		return nil
	}
	return t.UTC()
}
