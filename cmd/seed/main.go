// Comando seed grava o conjunto estendido de dados de exemplo no storage configurado.
// Se a marca HB já existir a carga é ignorada, então rodar duas vezes é seguro.
package main

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/AdamaC336/bay2/infrastructure/repository"
	"github.com/AdamaC336/bay2/infrastructure/storage"
	"github.com/AdamaC336/bay2/internal/config"
	"github.com/AdamaC336/bay2/internal/fixture"
	"github.com/AdamaC336/bay2/pkg/log"
)

func main() {
	log.Configure("info")

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}
	log.Configure(cfg.App.LogLevel)

	if cfg.Storage.Driver == config.StorageMemory {
		logrus.Warn("STORAGE_DRIVER=memory já carrega dados de exemplo ao iniciar; nada a fazer")
		return
	}

	ctx := context.Background()

	store, closeStore, err := storage.Open(ctx, cfg, storage.Options{Empty: true})
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao abrir o storage")
	}
	defer closeStore()

	seeded, err := run(ctx, store, time.Now())
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao carregar dados de exemplo")
	}
	if !seeded {
		logrus.Info("Dados de exemplo já presentes, carga ignorada")
		return
	}

	logrus.Info("Carga de dados de exemplo concluída")
}

func run(ctx context.Context, store repository.Storage, now time.Time) (bool, error) {
	existing, err := store.GetBrandByCode(ctx, fixture.HydraBarkCode)
	if err != nil {
		return false, err
	}
	if existing != nil {
		return false, nil
	}

	if err := fixture.Load(ctx, store, fixture.Extended(now)); err != nil {
		return false, err
	}
	return true, nil
}
