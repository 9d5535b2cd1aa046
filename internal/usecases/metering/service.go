package metering

import (
	"context"
	"time"

	"github.com/neopdv/backoffice-api/infrastructure/repository"
	"github.com/neopdv/backoffice-api/internal/config"
	"github.com/neopdv/backoffice-api/internal/domain"
	"github.com/neopdv/backoffice-api/pkg/utils"
	"github.com/sirupsen/logrus"
)

// Service calcula as métricas de vendas e estoque com cache de TTL curto.
// As leituras são muito mais frequentes que as escritas de venda, então o
// cache colapsa rajadas de consultas idênticas do dashboard em uma única ida
// ao banco; o retry absorve instabilidades passageiras do pool de conexões
type Service struct {
	metricsRepository repository.MetricsRepository
	cache             *metricsCache
	retryDelay        time.Duration
	now               func() time.Time
}

func NewService(metricsRepo repository.MetricsRepository, cfg *config.Config) MetricsProvider {
	return &Service{
		metricsRepository: metricsRepo,
		cache:             newMetricsCache(time.Duration(cfg.Metrics.CacheTTLSeconds) * time.Second),
		retryDelay:        time.Duration(cfg.Metrics.RetryDelayMillis) * time.Millisecond,
		now:               time.Now,
	}
}

func (s *Service) DailySales(ctx context.Context, rawDate string) *domain.DailySalesMetrics {
	day := utils.ResolveDay(rawDate, s.now())

	total, degraded := s.fetchWithCache(ctx, dailySalesKey, func(ctx context.Context) (float64, error) {
		return s.metricsRepository.DailySalesTotal(ctx, day)
	})

	metrics := &domain.DailySalesMetrics{
		Date:  day.Format(time.DateOnly),
		Total: total,
	}
	if degraded {
		metrics.Warning = domain.WarningCached
	}

	return metrics
}

func (s *Service) MonthlySales(ctx context.Context, rawMonth string) *domain.MonthlySalesMetrics {
	start, end := utils.ResolveMonth(rawMonth, s.now())

	total, degraded := s.fetchWithCache(ctx, monthlySalesKey, func(ctx context.Context) (float64, error) {
		return s.metricsRepository.MonthlySalesTotal(ctx, start, end)
	})

	metrics := &domain.MonthlySalesMetrics{
		Month: start.Format("2006-01"),
		Total: total,
	}
	if degraded {
		metrics.Warning = domain.WarningCached
	}

	return metrics
}

// Inventory não usa cache nem retry: em falha degrada direto para zeros com
// warning, para não quebrar o cliente
func (s *Service) Inventory(ctx context.Context) *domain.InventoryMetrics {
	totals, err := s.metricsRepository.InventoryTotals(ctx)
	if err != nil {
		logrus.WithError(err).Error("metrics: erro ao calcular métricas de estoque")
		return &domain.InventoryMetrics{Warning: err.Error()}
	}

	return &domain.InventoryMetrics{
		StockValue:      totals.StockValue,
		PotentialValue:  totals.PotentialValue,
		PotentialProfit: totals.PotentialValue - totals.StockValue,
	}
}

// fetchWithCache aplica a disciplina cache -> consulta -> retry -> valor
// antigo. O segundo retorno indica resposta degradada (warning "cached").
//
// A consulta roda fora do lock: dois misses concorrentes podem ir ao banco ao
// mesmo tempo e o último a gravar vence, o que o TTL torna inofensivo
func (s *Service) fetchWithCache(
	ctx context.Context,
	key string,
	query func(context.Context) (float64, error),
) (float64, bool) {
	if value, ok := s.cache.fresh(key, s.now()); ok {
		return value, false
	}

	value, err := query(ctx)
	if err == nil {
		s.cache.store(key, value, s.now())
		return value, false
	}

	logrus.WithError(err).WithField("metric", key).Warn("metrics: consulta falhou, tentando novamente")
	time.Sleep(s.retryDelay)

	value, err = query(ctx)
	if err == nil {
		s.cache.store(key, value, s.now())
		return value, false
	}

	logrus.WithError(err).WithField("metric", key).Error("metrics: retry falhou, servindo último valor em cache")
	return s.cache.last(key), true
}
