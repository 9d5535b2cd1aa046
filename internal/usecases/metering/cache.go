package metering

import (
	"sync"
	"time"
)

// Chaves globais por métrica: o cache guarda sempre o "último valor
// calculado", independente do período pedido pelo cliente. A seleção de
// período afeta apenas a consulta
const (
	dailySalesKey   = "daily_sales"
	monthlySalesKey = "monthly_sales"
)

type cacheEntry struct {
	value      *float64
	computedAt time.Time
}

// metricsCache memoriza os agregados de vendas por um TTL curto. Uma entrada
// só é vazia antes do primeiro cálculo bem-sucedido desde o start do
// processo; depois disso o valor é apenas substituído, nunca limpo
type metricsCache struct {
	mu      sync.Mutex
	ttl     time.Duration
	entries map[string]cacheEntry
}

func newMetricsCache(ttl time.Duration) *metricsCache {
	return &metricsCache{
		ttl: ttl,
		entries: map[string]cacheEntry{
			dailySalesKey:   {},
			monthlySalesKey: {},
		},
	}
}

// fresh retorna o valor da métrica se ele existe e ainda está dentro do TTL
func (c *metricsCache) fresh(key string, now time.Time) (float64, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry := c.entries[key]
	if entry.value != nil && now.Sub(entry.computedAt) < c.ttl {
		return *entry.value, true
	}

	return 0, false
}

// store grava o resultado de um cálculo bem-sucedido
func (c *metricsCache) store(key string, value float64, now time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[key] = cacheEntry{value: &value, computedAt: now}
}

// last retorna o último valor conhecido, mesmo vencido; zero se nunca houve
// cálculo bem-sucedido
func (c *metricsCache) last(key string) float64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry := c.entries[key]
	if entry.value != nil {
		return *entry.value
	}

	return 0
}
