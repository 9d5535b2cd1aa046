// Package scheduler contém os serviços de agendamento da aplicação
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/neopdv/backoffice-api/internal/config"
	"github.com/neopdv/backoffice-api/internal/usecases/metering"
	"github.com/sirupsen/logrus"
)

type MetricsWarmConfig struct {
	CronSchedule string
	Enabled      bool
}

// MetricsWarmService aquece o cache de métricas de vendas periodicamente, para
// que o dashboard não pague o custo da primeira consulta
type MetricsWarmService struct {
	scheduler      *gocron.Scheduler
	metricsService metering.MetricsProvider
	config         MetricsWarmConfig
	warmRunning    bool
	warmMutex      sync.Mutex
	lastWarmAt     time.Time
}

func NewMetricsWarmService(
	metricsService metering.MetricsProvider,
	cfg *config.Config,
) *MetricsWarmService {
	warmConfig := MetricsWarmConfig{
		CronSchedule: cfg.MetricsWarm.CronSchedule, // Default: a cada 5 minutos
		Enabled:      cfg.MetricsWarm.Enabled,      // Default: desabilitado
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule": warmConfig.CronSchedule,
	}).Info("Configuração do agendador de aquecimento de métricas carregada")

	return &MetricsWarmService{
		scheduler:      scheduler,
		metricsService: metricsService,
		config:         warmConfig,
	}
}

func (s *MetricsWarmService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("Cron de aquecimento de métricas desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando cron de aquecimento de métricas")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.WarmMetrics(context.Background())
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar aquecimento de métricas: %w", err)
	}

	// Executar o cron em uma goroutine separada
	s.scheduler.StartAsync()

	// Configurar o cancelamento do cron quando o contexto for cancelado
	go func() {
		<-ctx.Done()
		logrus.Info("Parando cron de aquecimento de métricas")
		s.scheduler.Stop()
	}()

	return nil
}

// WarmMetrics consulta as métricas do dia e do mês correntes, preenchendo o
// cache de valores
func (s *MetricsWarmService) WarmMetrics(ctx context.Context) {
	s.warmMutex.Lock()
	defer s.warmMutex.Unlock()

	if s.warmRunning {
		logrus.Warn("Aquecimento de métricas já está em execução")
		return
	}

	s.warmRunning = true
	defer func() {
		s.warmRunning = false
		s.lastWarmAt = time.Now()
	}()

	daily := s.metricsService.DailySales(ctx, "")
	monthly := s.metricsService.MonthlySales(ctx, "")

	logrus.WithFields(logrus.Fields{
		"daily_total":   daily.Total,
		"monthly_total": monthly.Total,
	}).Info("Cache de métricas de vendas aquecido")
}
