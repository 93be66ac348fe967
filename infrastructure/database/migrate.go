package database

import (
	"embed"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	migratedb "github.com/golang-migrate/migrate/v4/database"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/sirupsen/logrus"
)

//go:embed migrations
var migrations embed.FS

// Migrate aplica as migrações embutidas do dialeto da conexão.
// A conexão continua aberta ao final.
func Migrate(conn *Connection) error {
	source, err := iofs.New(migrations, "migrations/"+string(conn.Dialect))
	if err != nil {
		return fmt.Errorf("erro ao abrir migrações: %w", err)
	}

	var driver migratedb.Driver
	switch conn.Dialect {
	case DialectPostgres:
		driver, err = postgres.WithInstance(conn.DB, &postgres.Config{})
	case DialectSQLite:
		driver, err = sqlite.WithInstance(conn.DB, &sqlite.Config{})
	default:
		err = fmt.Errorf("dialeto de banco desconhecido: %q", conn.Dialect)
	}
	if err != nil {
		return fmt.Errorf("erro ao preparar driver de migração: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", source, string(conn.Dialect), driver)
	if err != nil {
		return fmt.Errorf("erro ao criar migrador: %w", err)
	}

	if err := m.Up(); err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			logrus.Debug("Migrações já aplicadas")
			return nil
		}
		return fmt.Errorf("erro ao aplicar migrações: %w", err)
	}

	version, _, _ := m.Version()
	logrus.WithField("version", version).Info("Migrações aplicadas com sucesso")

	return nil
}
