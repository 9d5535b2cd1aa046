package metering

import (
	"context"
	"testing"
	"time"

	"github.com/neopdv/backoffice-api/infrastructure/repository/mocks"
	"github.com/neopdv/backoffice-api/internal/domain"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func newTestService(repo *mocks.MockMetricsRepository, now *time.Time) *Service {
	return &Service{
		metricsRepository: repo,
		cache:             newMetricsCache(15 * time.Second),
		retryDelay:        0,
		now:               func() time.Time { return *now },
	}
}

func TestDailySales_CacheAbsorvesBurst(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockMetricsRepository(ctrl)
	now := time.Date(2024, 6, 10, 12, 0, 0, 0, time.UTC)
	service := newTestService(mockRepo, &now)

	// Uma única ida ao banco mesmo com duas consultas dentro do TTL
	mockRepo.EXPECT().
		DailySalesTotal(gomock.Any(), gomock.Any()).
		Return(950.0, nil).
		Times(1)

	first := service.DailySales(context.Background(), "2024-06-10")
	assert.Equal(t, "2024-06-10", first.Date)
	assert.Equal(t, 950.0, first.Total)
	assert.Empty(t, first.Warning)

	now = now.Add(10 * time.Second)

	second := service.DailySales(context.Background(), "2024-06-10")
	assert.Equal(t, 950.0, second.Total)
	assert.Empty(t, second.Warning)
}

func TestDailySales_CacheExpiresAfterTTL(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockMetricsRepository(ctrl)
	now := time.Date(2024, 6, 10, 12, 0, 0, 0, time.UTC)
	service := newTestService(mockRepo, &now)

	mockRepo.EXPECT().
		DailySalesTotal(gomock.Any(), gomock.Any()).
		Return(100.0, nil).
		Times(1)

	service.DailySales(context.Background(), "")

	// Depois do TTL a métrica volta ao banco
	now = now.Add(16 * time.Second)

	mockRepo.EXPECT().
		DailySalesTotal(gomock.Any(), gomock.Any()).
		Return(250.0, nil).
		Times(1)

	metrics := service.DailySales(context.Background(), "")
	assert.Equal(t, 250.0, metrics.Total)
	assert.Empty(t, metrics.Warning)
}

func TestDailySales_RetryRecovers(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockMetricsRepository(ctrl)
	now := time.Date(2024, 6, 10, 12, 0, 0, 0, time.UTC)
	service := newTestService(mockRepo, &now)

	gomock.InOrder(
		mockRepo.EXPECT().
			DailySalesTotal(gomock.Any(), gomock.Any()).
			Return(0.0, errors.New("connection reset")),
		mockRepo.EXPECT().
			DailySalesTotal(gomock.Any(), gomock.Any()).
			Return(500.0, nil),
	)

	metrics := service.DailySales(context.Background(), "")
	assert.Equal(t, 500.0, metrics.Total)
	assert.Empty(t, metrics.Warning)
}

func TestDailySales_ServesStaleValueWhenRetryFails(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockMetricsRepository(ctrl)
	now := time.Date(2024, 6, 10, 12, 0, 0, 0, time.UTC)
	service := newTestService(mockRepo, &now)

	mockRepo.EXPECT().
		DailySalesTotal(gomock.Any(), gomock.Any()).
		Return(820.0, nil).
		Times(1)

	service.DailySales(context.Background(), "")

	// Cache vencido e banco indisponível nas duas tentativas
	now = now.Add(time.Minute)

	mockRepo.EXPECT().
		DailySalesTotal(gomock.Any(), gomock.Any()).
		Return(0.0, errors.New("db down")).
		Times(2)

	metrics := service.DailySales(context.Background(), "")
	assert.Equal(t, 820.0, metrics.Total)
	assert.Equal(t, domain.WarningCached, metrics.Warning)
}

func TestDailySales_FailureWithoutHistoryReturnsZero(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockMetricsRepository(ctrl)
	now := time.Date(2024, 6, 10, 12, 0, 0, 0, time.UTC)
	service := newTestService(mockRepo, &now)

	mockRepo.EXPECT().
		DailySalesTotal(gomock.Any(), gomock.Any()).
		Return(0.0, errors.New("db down")).
		Times(2)

	metrics := service.DailySales(context.Background(), "")
	assert.Equal(t, 0.0, metrics.Total)
	assert.Equal(t, domain.WarningCached, metrics.Warning)
}

func TestDailySales_InvalidDateFallsBackToToday(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockMetricsRepository(ctrl)
	now := time.Date(2024, 6, 10, 12, 0, 0, 0, time.UTC)
	service := newTestService(mockRepo, &now)

	mockRepo.EXPECT().
		DailySalesTotal(gomock.Any(), now).
		Return(0.0, nil)

	metrics := service.DailySales(context.Background(), "10/06/2024")
	assert.Equal(t, "2024-06-10", metrics.Date)
}

func TestMonthlySales_DecemberRollsToJanuary(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockMetricsRepository(ctrl)
	now := time.Date(2024, 6, 10, 12, 0, 0, 0, time.UTC)
	service := newTestService(mockRepo, &now)

	start := time.Date(2024, 12, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	mockRepo.EXPECT().
		MonthlySalesTotal(gomock.Any(), start, end).
		Return(12000.0, nil)

	metrics := service.MonthlySales(context.Background(), "2024-12")
	assert.Equal(t, "2024-12", metrics.Month)
	assert.Equal(t, 12000.0, metrics.Total)
}

func TestMonthlySales_CacheIsIndependentFromDaily(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockMetricsRepository(ctrl)
	now := time.Date(2024, 6, 10, 12, 0, 0, 0, time.UTC)
	service := newTestService(mockRepo, &now)

	mockRepo.EXPECT().
		DailySalesTotal(gomock.Any(), gomock.Any()).
		Return(100.0, nil).
		Times(1)
	mockRepo.EXPECT().
		MonthlySalesTotal(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(3000.0, nil).
		Times(1)

	daily := service.DailySales(context.Background(), "")
	monthly := service.MonthlySales(context.Background(), "")

	assert.Equal(t, 100.0, daily.Total)
	assert.Equal(t, 3000.0, monthly.Total)
}

func TestInventory_ComputesPotentialProfit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockMetricsRepository(ctrl)
	now := time.Date(2024, 6, 10, 12, 0, 0, 0, time.UTC)
	service := newTestService(mockRepo, &now)

	mockRepo.EXPECT().
		InventoryTotals(gomock.Any()).
		Return(&domain.InventoryTotals{StockValue: 1500.0, PotentialValue: 2300.0}, nil)

	metrics := service.Inventory(context.Background())
	assert.Equal(t, 1500.0, metrics.StockValue)
	assert.Equal(t, 2300.0, metrics.PotentialValue)
	assert.Equal(t, 800.0, metrics.PotentialProfit)
	assert.Empty(t, metrics.Warning)
}

func TestInventory_FailureDegradesToZeros(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockMetricsRepository(ctrl)
	now := time.Date(2024, 6, 10, 12, 0, 0, 0, time.UTC)
	service := newTestService(mockRepo, &now)

	mockRepo.EXPECT().
		InventoryTotals(gomock.Any()).
		Return(nil, errors.New("timeout no banco"))

	metrics := service.Inventory(context.Background())
	assert.Equal(t, 0.0, metrics.StockValue)
	assert.Equal(t, 0.0, metrics.PotentialValue)
	assert.Equal(t, 0.0, metrics.PotentialProfit)
	assert.Equal(t, "timeout no banco", metrics.Warning)
}
