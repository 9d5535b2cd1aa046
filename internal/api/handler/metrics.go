package handler

import (
	"net/http"

	"github.com/neopdv/backoffice-api/internal/usecases/metering"
	"github.com/neopdv/backoffice-api/pkg/apiErrors"
	"github.com/sirupsen/logrus"
)

// GetDailySales retorna o total de vendas do dia informado pelo parâmetro
// "date" (YYYY-MM-DD). Sem parâmetro, usa o dia atual
func GetDailySales(service metering.MetricsProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		metrics := service.DailySales(r.Context(), r.URL.Query().Get("date"))

		writeJSON(w, metrics)
	}
}

// GetMonthlySales retorna o total de vendas do mês informado pelo parâmetro
// "month" (YYYY-MM). Sem parâmetro, usa o mês atual
func GetMonthlySales(service metering.MetricsProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		metrics := service.MonthlySales(r.Context(), r.URL.Query().Get("month"))

		writeJSON(w, metrics)
	}
}

// GetInventoryMetrics retorna o valor de estoque e os valores potenciais de
// venda e lucro dos produtos ativos
func GetInventoryMetrics(service metering.MetricsProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		metrics := service.Inventory(r.Context())

		writeJSON(w, metrics)
	}
}

func writeJSON(w http.ResponseWriter, payload any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logrus.WithError(err).Error("Erro ao enviar resposta")
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
	}
}
