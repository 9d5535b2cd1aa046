package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/neopdv/backoffice-api/internal/api/handler/router"
	"github.com/neopdv/backoffice-api/internal/domain"
	"github.com/stretchr/testify/assert"
)

// stubMetricsProvider devolve respostas fixas para os testes de handler
type stubMetricsProvider struct {
	daily     *domain.DailySalesMetrics
	monthly   *domain.MonthlySalesMetrics
	inventory *domain.InventoryMetrics
	lastDate  string
	lastMonth string
}

func (s *stubMetricsProvider) DailySales(_ context.Context, rawDate string) *domain.DailySalesMetrics {
	s.lastDate = rawDate
	return s.daily
}

func (s *stubMetricsProvider) MonthlySales(_ context.Context, rawMonth string) *domain.MonthlySalesMetrics {
	s.lastMonth = rawMonth
	return s.monthly
}

func (s *stubMetricsProvider) Inventory(_ context.Context) *domain.InventoryMetrics {
	return s.inventory
}

func newMetricsRouter(provider *stubMetricsProvider) router.Router {
	return router.New(router.WithRoutes(Metrics(provider)...))
}

func TestGetDailySales(t *testing.T) {
	provider := &stubMetricsProvider{
		daily: &domain.DailySalesMetrics{Date: "2024-06-10", Total: 950.0},
	}
	rt := newMetricsRouter(provider)

	req := httptest.NewRequest(http.MethodGet, "/metrics/daily-sales?date=2024-06-10", nil)
	rec := httptest.NewRecorder()
	rt.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.Equal(t, "2024-06-10", provider.lastDate)
	assert.JSONEq(t, `{"date":"2024-06-10","total":950}`, rec.Body.String())
}

func TestGetDailySales_DegradedResponseCarriesWarning(t *testing.T) {
	provider := &stubMetricsProvider{
		daily: &domain.DailySalesMetrics{Date: "2024-06-10", Total: 820.0, Warning: domain.WarningCached},
	}
	rt := newMetricsRouter(provider)

	req := httptest.NewRequest(http.MethodGet, "/metrics/daily-sales", nil)
	rec := httptest.NewRecorder()
	rt.ServeHTTP(rec, req)

	// Resposta degradada continua 200: o warning avisa o cliente
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"date":"2024-06-10","total":820,"warning":"cached"}`, rec.Body.String())
}

func TestGetMonthlySales(t *testing.T) {
	provider := &stubMetricsProvider{
		monthly: &domain.MonthlySalesMetrics{Month: "2024-06", Total: 12500.5},
	}
	rt := newMetricsRouter(provider)

	req := httptest.NewRequest(http.MethodGet, "/metrics/monthly-sales?month=2024-06", nil)
	rec := httptest.NewRecorder()
	rt.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "2024-06", provider.lastMonth)
	assert.JSONEq(t, `{"month":"2024-06","total":12500.5}`, rec.Body.String())
}

func TestGetInventoryMetrics(t *testing.T) {
	provider := &stubMetricsProvider{
		inventory: &domain.InventoryMetrics{StockValue: 1500, PotentialValue: 2300, PotentialProfit: 800},
	}
	rt := newMetricsRouter(provider)

	req := httptest.NewRequest(http.MethodGet, "/metrics/inventory", nil)
	rec := httptest.NewRecorder()
	rt.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"stock_value":1500,"potential_value":2300,"potential_profit":800}`, rec.Body.String())
}
