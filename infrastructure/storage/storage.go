// Package storage escolhe e abre o backend configurado em STORAGE_DRIVER.
package storage

import (
	"context"
	"fmt"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/AdamaC336/bay2/infrastructure/database"
	"github.com/AdamaC336/bay2/infrastructure/integrator/supabase/supabaseclient"
	"github.com/AdamaC336/bay2/infrastructure/repository"
	"github.com/AdamaC336/bay2/infrastructure/repository/memory"
	"github.com/AdamaC336/bay2/infrastructure/repository/remote"
	"github.com/AdamaC336/bay2/internal/config"
)

// Options ajusta a abertura para usos fora do servidor
type Options struct {
	// Empty desliga o fixture do driver memory (usado pelo cmd/seed)
	Empty bool
	Clock repository.Clock
}

// Open devolve o Storage e uma função de fechamento que sempre pode ser chamada
func Open(ctx context.Context, cfg *config.Config, opts Options) (repository.Storage, func(), error) {
	noop := func() {}
	logger := logrus.WithField("storage_driver", cfg.Storage.Driver)

	switch cfg.Storage.Driver {
	case config.StorageMemory:
		if opts.Empty {
			return memory.New(opts.Clock), noop, nil
		}

		store, err := memory.NewSeeded(ctx, opts.Clock)
		if err != nil {
			return nil, noop, errors.Wrap(err, "erro ao carregar dados de exemplo")
		}
		logger.Info("Storage em memória carregado com dados de exemplo")
		return store, noop, nil

	case config.StoragePostgres, config.StorageSQLite:
		conn, err := database.NewConnection(ctx, database.Dialect(cfg.Storage.Driver), cfg.Database.DSN)
		if err != nil {
			return nil, noop, errors.Wrapf(err, "erro ao conectar ao banco %s", cfg.Storage.Driver)
		}
		closeConn := func() {
			if err := conn.Close(); err != nil {
				logger.WithError(err).Warn("Erro ao fechar conexão com o banco")
			}
		}

		if cfg.Database.Migrate {
			if err := database.Migrate(conn); err != nil {
				closeConn()
				return nil, noop, err
			}
		}

		logger.Info("Conexão com o banco estabelecida com sucesso")
		return repository.NewStorage(conn, opts.Clock), closeConn, nil

	case config.StorageSupabase:
		client := supabaseclient.NewClient(cfg.Supabase)
		logger.WithField("supabase_url", cfg.Supabase.URL).Info("Usando Supabase como storage")
		return remote.New(client, opts.Clock), noop, nil
	}

	return nil, noop, fmt.Errorf("driver de storage desconhecido: %q", cfg.Storage.Driver)
}
