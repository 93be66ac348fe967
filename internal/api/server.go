package api

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/justinas/alice"
	"github.com/sirupsen/logrus"

	"github.com/AdamaC336/bay2/internal/api/handler"
	"github.com/AdamaC336/bay2/internal/api/handler/router"
	"github.com/AdamaC336/bay2/internal/config"
	"github.com/AdamaC336/bay2/internal/usecases/authenticating"
	"github.com/AdamaC336/bay2/internal/usecases/dashboard"
	"github.com/AdamaC336/bay2/pkg/middleware"
)

type Server struct {
	httpServer *http.Server
}

// NewHandler monta o router com a cadeia de middlewares globais
func NewHandler(
	cfg *config.Config,
	dashboardService dashboard.Dashboarder,
	authenticator authenticating.Authenticator,
) http.Handler {
	prefix := cfg.Server.APIPrefix

	rt := router.New(
		router.WithRoutes(handler.Healthcheck(cfg.Storage.Driver)...),
		router.WithPrefix(prefix),
		router.WithRoutes(handler.Authentication(authenticator, cfg.Auth)...),
		router.WithRoutes(handler.Users(dashboardService)...),
		router.WithRoutes(handler.Brands(dashboardService)...),
		router.WithRoutes(handler.Revenue(dashboardService)...),
		router.WithRoutes(handler.AdSpend(dashboardService)...),
		router.WithRoutes(handler.AIAgents(dashboardService)...),
		router.WithRoutes(handler.AdPerformance(dashboardService)...),
		router.WithRoutes(handler.OpsTasks(dashboardService)...),
	)

	middlewares := []alice.Constructor{
		middleware.LogPanicMiddleware(),
		middleware.LoggingMiddleware(),
		middleware.Cors(cfg.Cors.AllowedOrigins),
		middleware.AuthMiddleware(authenticator, cfg.Auth.CookieName,
			"/healthcheck",
			prefix+"/login",
			prefix+"/logout",
		),
	}

	return alice.New(middlewares...).Then(rt)
}

func New(
	cfg *config.Config,
	dashboardService dashboard.Dashboarder,
	authenticator authenticating.Authenticator,
) (*Server, error) {
	srv := &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port),
			Handler:           NewHandler(cfg, dashboardService, authenticator),
			ReadHeaderTimeout: 2 * time.Second,
		},
	}

	return srv, nil
}

func (s Server) Run(ctx context.Context) error {
	go func() {
		logrus.WithFields(logrus.Fields{
			"address": s.httpServer.Addr,
		}).Info("Servidor iniciando")

		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.WithError(err).Error("Erro durante a execução do servidor")
		}
	}()

	// Canal para aguardar sinais de término
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	select {
	case <-done:
		logrus.Info("Sinal de interrupção recebido")
	case <-ctx.Done():
		logrus.Info("Contexto de aplicação cancelado")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	logrus.WithFields(logrus.Fields{
		"timeout": "15s",
	}).Info("Iniciando desligamento gracioso do servidor")

	if err := s.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("Erro durante o desligamento do servidor")
		return err
	}

	logrus.Info("Servidor desligado com sucesso")
	return nil
}

func (s Server) Shutdown(ctx context.Context) error {
	if err := s.httpServer.Shutdown(ctx); err != nil {
		return err
	}

	logrus.Info("Servidor HTTP desligado com sucesso")
	return nil
}
