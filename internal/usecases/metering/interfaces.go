package metering

import (
	"context"

	"github.com/neopdv/backoffice-api/internal/domain"
)

// MetricsProvider expõe as métricas consumidas pelo dashboard do back office.
// Nenhum método retorna erro: falha de consulta degrada para o último valor
// em cache (ou zero) com o campo warning preenchido
type MetricsProvider interface {
	// DailySales retorna o total de vendas não canceladas do dia informado
	// (YYYY-MM-DD) ou do dia atual quando a data é ausente/inválida
	DailySales(ctx context.Context, rawDate string) *domain.DailySalesMetrics

	// MonthlySales retorna o total de vendas não canceladas do mês informado
	// (YYYY-MM) ou do mês atual quando o período é ausente/inválido
	MonthlySales(ctx context.Context, rawMonth string) *domain.MonthlySalesMetrics

	// Inventory retorna valor de estoque, valor potencial e lucro potencial
	// dos produtos ativos
	Inventory(ctx context.Context) *domain.InventoryMetrics
}
