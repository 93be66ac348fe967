package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"

	"github.com/AdamaC336/bay2/internal/config"
)

// SessionPurger é implementado pelo serviço de autenticação
type SessionPurger interface {
	PurgeExpiredSessions() int
}

// SessionCleanupService agenda a limpeza periódica da lista de sessões revogadas
type SessionCleanupService struct {
	scheduler   *gocron.Scheduler
	config      config.SessionCleanup
	purger      SessionPurger
	mu          sync.Mutex
	lastRunAt   time.Time
	lastRemoved int
}

func NewSessionCleanupService(purger SessionPurger, appConfig *config.Config) *SessionCleanupService {
	logrus.WithFields(logrus.Fields{
		"cron_schedule": appConfig.SessionCleanup.CronSchedule,
		"enabled":       appConfig.SessionCleanup.Enabled,
	}).Info("Configuração do agendador de limpeza de sessões carregada")

	return &SessionCleanupService{
		scheduler: gocron.NewScheduler(time.Local),
		config:    appConfig.SessionCleanup,
		purger:    purger,
	}
}

// Start inicia o agendador
func (s *SessionCleanupService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("Limpeza de sessões desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de limpeza de sessões")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(s.RunNow)
	if err != nil {
		return fmt.Errorf("erro ao agendar limpeza de sessões: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de limpeza de sessões")
		s.scheduler.Stop()
	}()

	return nil
}

// RunNow executa a limpeza imediatamente, fora do agendamento
func (s *SessionCleanupService) RunNow() {
	removed := s.purger.PurgeExpiredSessions()

	s.mu.Lock()
	s.lastRunAt = time.Now()
	s.lastRemoved = removed
	s.mu.Unlock()

	logrus.WithField("removed", removed).Debug("Limpeza de sessões revogadas concluída")
}

// Status retorna o instante e o resultado da última execução
func (s *SessionCleanupService) Status() (time.Time, int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.lastRunAt, s.lastRemoved
}

// IsRunning informa se o agendador está ativo
func (s *SessionCleanupService) IsRunning() bool {
	return s.scheduler.IsRunning()
}
