package domain

// WarningCached marca uma resposta servida a partir do último valor em cache
// após falha nas consultas ao banco
const WarningCached = "cached"

// DailySalesMetrics é a resposta do endpoint de vendas do dia
type DailySalesMetrics struct {
	Date    string  `json:"date"`
	Total   float64 `json:"total"`
	Warning string  `json:"warning,omitempty"`
}

// MonthlySalesMetrics é a resposta do endpoint de vendas do mês
type MonthlySalesMetrics struct {
	Month   string  `json:"month"`
	Total   float64 `json:"total"`
	Warning string  `json:"warning,omitempty"`
}

// InventoryMetrics é a resposta do endpoint de métricas de estoque.
//
// Fórmulas:
//   - stock_value     = SUM(stock_quantity * cost_price) WHERE active = true
//   - potential_value = SUM(stock_quantity * sale_price) WHERE active = true
//   - potential_profit = potential_value - stock_value
type InventoryMetrics struct {
	StockValue      float64 `json:"stock_value"`
	PotentialValue  float64 `json:"potential_value"`
	PotentialProfit float64 `json:"potential_profit"`
	Warning         string  `json:"warning,omitempty"`
}

// InventoryTotals são os somatórios brutos calculados pelo repositório
type InventoryTotals struct {
	StockValue     float64
	PotentialValue float64
}
