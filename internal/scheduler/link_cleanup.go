package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ads-report-api/infrastructure/repository"
	"github.com/vfg2006/ads-report-api/internal/config"
)

// LinkCleanupConfig representa a configuração do agendador de limpeza de links
type LinkCleanupConfig struct {
	CronSchedule string
	GraceDays    int
	Enabled      bool
}

// LinkCleanupService gerencia o agendamento e execução da remoção de links
// compartilhados expirados
type LinkCleanupService struct {
	scheduler         *gocron.Scheduler
	config            LinkCleanupConfig
	sharedLinkRepo    repository.SharedLinkRepository
	cleanupRunning    bool
	cleanupMutex      sync.Mutex
	lastRunStartedAt  time.Time
	lastRunFinishedAt time.Time
	lastRemovedCount  int64
}

// NewLinkCleanupService cria uma nova instância do serviço de limpeza de links
func NewLinkCleanupService(
	sharedLinkRepo repository.SharedLinkRepository,
	appConfig *config.Config,
) *LinkCleanupService {
	cleanupConfig := LinkCleanupConfig{
		CronSchedule: appConfig.LinkCleanup.CronSchedule,
		GraceDays:    appConfig.LinkCleanup.GraceDays,
		Enabled:      appConfig.LinkCleanup.Enabled,
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule":   cleanupConfig.CronSchedule,
		"grace_days":      cleanupConfig.GraceDays,
		"cleanup_enabled": cleanupConfig.Enabled,
	}).Info("Configuração do agendador de limpeza de links carregada")

	return &LinkCleanupService{
		scheduler:      scheduler,
		config:         cleanupConfig,
		sharedLinkRepo: sharedLinkRepo,
		cleanupRunning: false,
	}
}

// Start inicia o agendador
func (s *LinkCleanupService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("Limpeza de links compartilhados desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de limpeza de links compartilhados")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.cleanupExpiredLinks()
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar limpeza de links compartilhados: %w", err)
	}

	s.scheduler.StartAsync()

	// Parar o agendador quando o contexto for cancelado
	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de limpeza de links compartilhados")
		s.scheduler.Stop()
	}()

	return nil
}

// cleanupExpiredLinks remove links expirados há mais tempo que o período de carência
func (s *LinkCleanupService) cleanupExpiredLinks() {
	s.cleanupMutex.Lock()
	if s.cleanupRunning {
		s.cleanupMutex.Unlock()
		logrus.Info("Limpeza de links compartilhados já em andamento, ignorando")
		return
	}
	s.cleanupRunning = true
	s.cleanupMutex.Unlock()

	startTime := time.Now()
	s.lastRunStartedAt = startTime

	defer func() {
		s.cleanupMutex.Lock()
		s.cleanupRunning = false
		s.cleanupMutex.Unlock()
	}()

	cutoff := startTime.AddDate(0, 0, -s.config.GraceDays)

	logrus.WithField("cutoff", cutoff.Format(time.DateOnly)).Info("Iniciando limpeza de links compartilhados expirados")

	removed, err := s.sharedLinkRepo.DeleteExpiredBefore(cutoff)
	if err != nil {
		logrus.WithError(err).Error("Erro ao remover links compartilhados expirados")
		return
	}

	s.lastRemovedCount = removed
	s.lastRunFinishedAt = time.Now()

	logrus.WithFields(logrus.Fields{
		"removed":  removed,
		"duration": time.Since(startTime).String(),
	}).Info("Limpeza de links compartilhados concluída")
}

// TriggerManualCleanup inicia manualmente uma limpeza de links expirados
func (s *LinkCleanupService) TriggerManualCleanup() {
	s.cleanupMutex.Lock()
	if s.cleanupRunning {
		s.cleanupMutex.Unlock()
		logrus.Info("Limpeza de links compartilhados já em andamento, ignorando solicitação manual")
		return
	}
	s.cleanupMutex.Unlock()

	logrus.Info("Iniciando limpeza manual de links compartilhados")
	go s.cleanupExpiredLinks()
}

// GetStatus retorna o status atual do agendador
func (s *LinkCleanupService) GetStatus() map[string]any {
	return map[string]any{
		"cleanup_enabled":      s.config.Enabled,
		"cleanup_cron":         s.config.CronSchedule,
		"cleanup_grace_days":   s.config.GraceDays,
		"last_run_started_at":  s.lastRunStartedAt,
		"last_run_finished_at": s.lastRunFinishedAt,
		"last_removed_count":   s.lastRemovedCount,
	}
}
