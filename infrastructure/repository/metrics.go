package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/neopdv/backoffice-api/infrastructure/database/postgres"
	"github.com/neopdv/backoffice-api/internal/domain"
)

const (
	salesTable    = "vendas v"
	productsTable = "produtos p"
)

// netSalesSum soma (total - desconto) tratando NULL como zero, para que um
// período sem vendas produza 0 e nunca NULL
const netSalesSum = "COALESCE(SUM(COALESCE(v.total, 0) - COALESCE(v.desconto, 0)), 0)"

type MetricsRepository interface {
	DailySalesTotal(ctx context.Context, day time.Time) (float64, error)
	MonthlySalesTotal(ctx context.Context, start, end time.Time) (float64, error)
	InventoryTotals(ctx context.Context) (*domain.InventoryTotals, error)
}

type metricsRepository struct {
	conn postgres.Queryer
}

func NewMetricsRepository(conn postgres.Queryer) MetricsRepository {
	return &metricsRepository{
		conn: conn,
	}
}

// DailySalesTotal retorna o total líquido de vendas não canceladas do dia informado
func (r *metricsRepository) DailySalesTotal(ctx context.Context, day time.Time) (float64, error) {
	query, args, err := squirrel.
		Select(netSalesSum).
		From(salesTable).
		Where(squirrel.Eq{"v.cancelada": false}).
		Where("DATE(v.created_at) = ?", day.Format(time.DateOnly)).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var total float64
	if err := r.conn.QueryRow(ctx, query, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("erro ao calcular vendas do dia: %w", err)
	}

	return total, nil
}

// MonthlySalesTotal retorna o total líquido de vendas não canceladas no
// intervalo semiaberto [start, end)
func (r *metricsRepository) MonthlySalesTotal(ctx context.Context, start, end time.Time) (float64, error) {
	query, args, err := squirrel.
		Select(netSalesSum).
		From(salesTable).
		Where(squirrel.Eq{"v.cancelada": false}).
		Where(squirrel.GtOrEq{"v.created_at": start.Format(time.DateOnly)}).
		Where(squirrel.Lt{"v.created_at": end.Format(time.DateOnly)}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var total float64
	if err := r.conn.QueryRow(ctx, query, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("erro ao calcular vendas do mês: %w", err)
	}

	return total, nil
}

// InventoryTotals retorna os somatórios de estoque a preço de custo e a preço
// de venda, considerando apenas produtos ativos
func (r *metricsRepository) InventoryTotals(ctx context.Context) (*domain.InventoryTotals, error) {
	stockQuery, stockArgs, err := squirrel.
		Select("COALESCE(SUM(p.estoque * p.preco_custo), 0)").
		From(productsTable).
		Where(squirrel.Eq{"p.ativo": true}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	potentialQuery, potentialArgs, err := squirrel.
		Select("COALESCE(SUM(p.estoque * p.preco_venda), 0)").
		From(productsTable).
		Where(squirrel.Eq{"p.ativo": true}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	totals := &domain.InventoryTotals{}

	if err := r.conn.QueryRow(ctx, stockQuery, stockArgs...).Scan(&totals.StockValue); err != nil {
		return nil, fmt.Errorf("erro ao calcular valor de estoque: %w", err)
	}

	if err := r.conn.QueryRow(ctx, potentialQuery, potentialArgs...).Scan(&totals.PotentialValue); err != nil {
		return nil, fmt.Errorf("erro ao calcular valor potencial: %w", err)
	}

	return totals, nil
}
