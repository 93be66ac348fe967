package main

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/AdamaC336/bay2/infrastructure/storage"
	"github.com/AdamaC336/bay2/internal/api"
	"github.com/AdamaC336/bay2/internal/config"
	"github.com/AdamaC336/bay2/internal/scheduler"
	"github.com/AdamaC336/bay2/internal/usecases/authenticating"
	"github.com/AdamaC336/bay2/internal/usecases/dashboard"
	"github.com/AdamaC336/bay2/pkg/log"
)

func main() {
	// Formato padrão antes de ler a configuração
	log.Configure("info")

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	level := log.Configure(cfg.App.LogLevel)
	logrus.Infof("Nível de log configurado para: %s", level)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	store, closeStore, err := storage.Open(ctx, cfg, storage.Options{})
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao abrir o storage")
	}
	defer closeStore()

	dashboardService := dashboard.NewService(store)
	authenticator := authenticating.NewService(store, cfg)

	sessionCleanup := scheduler.NewSessionCleanupService(authenticator, cfg)
	if err := sessionCleanup.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de limpeza de sessões")
	} else {
		logrus.Info("Agendador de limpeza de sessões iniciado com sucesso")
	}

	server, err := api.New(cfg, dashboardService, authenticator)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}
