package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/neopdv/backoffice-api/infrastructure/database/postgres"
	"github.com/neopdv/backoffice-api/internal/domain"
)

type SaleRepository interface {
	ListSalesWithItems(ctx context.Context) ([]*domain.Sale, error)
	DeleteSaleTx(ctx context.Context, tx *sql.Tx, saleID uuid.UUID) error
	ListSalesWithOperators(ctx context.Context, limit uint64, startDate, endDate *time.Time, operatorID string) ([]*domain.SaleOperatorRow, error)
}

type saleRepository struct {
	conn postgres.Queryer
}

func NewSaleRepository(conn postgres.Queryer) SaleRepository {
	return &saleRepository{
		conn: conn,
	}
}

// ListSalesWithItems carrega as vendas não canceladas com seus itens, na ordem
// de criação. Usado pela limpeza de duplicatas
func (r *saleRepository) ListSalesWithItems(ctx context.Context) ([]*domain.Sale, error) {
	query, args, err := squirrel.
		Select(
			"v.id",
			"v.usuario_id",
			"v.total",
			"v.desconto",
			"v.forma_pagamento",
			"v.cancelada",
			"v.created_at",
			"i.produto_id",
			"i.quantidade",
			"i.peso_kg",
			"i.preco_unitario",
			"i.subtotal",
		).
		From(salesTable).
		LeftJoin("itens_venda i ON i.venda_id = v.id").
		Where(squirrel.Eq{"v.cancelada": false}).
		OrderBy("v.created_at ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar vendas: %w", err)
	}
	defer rows.Close()

	byID := make(map[uuid.UUID]*domain.Sale)
	ordered := make([]*domain.Sale, 0)

	for rows.Next() {
		var (
			saleID        uuid.UUID
			userID        *uuid.UUID
			total         *float64
			discount      *float64
			paymentMethod *string
			cancelled     bool
			createdAt     time.Time
			productID     *string
			quantity      *int
			weightKg      *float64
			unitPrice     *float64
			subtotal      *float64
		)

		err := rows.Scan(
			&saleID,
			&userID,
			&total,
			&discount,
			&paymentMethod,
			&cancelled,
			&createdAt,
			&productID,
			&quantity,
			&weightKg,
			&unitPrice,
			&subtotal,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear venda: %w", err)
		}

		sale, ok := byID[saleID]
		if !ok {
			sale = &domain.Sale{
				ID:        saleID,
				UserID:    userID,
				Cancelled: cancelled,
				CreatedAt: createdAt,
			}
			if total != nil {
				sale.Total = *total
			}
			if discount != nil {
				sale.Discount = *discount
			}
			if paymentMethod != nil {
				sale.PaymentMethod = *paymentMethod
			}
			byID[saleID] = sale
			ordered = append(ordered, sale)
		}

		// LEFT JOIN produz linha com itens nulos para venda sem itens
		if productID != nil {
			item := domain.SaleItem{ProductID: *productID}
			if quantity != nil {
				item.Quantity = *quantity
			}
			if weightKg != nil {
				item.WeightKg = *weightKg
			}
			if unitPrice != nil {
				item.UnitPrice = *unitPrice
			}
			if subtotal != nil {
				item.Subtotal = *subtotal
			}
			sale.Items = append(sale.Items, item)
		}
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return ordered, nil
}

// DeleteSaleTx remove uma venda e seus itens dentro da transação informada.
// Os itens saem primeiro por causa da chave estrangeira
func (r *saleRepository) DeleteSaleTx(ctx context.Context, tx *sql.Tx, saleID uuid.UUID) error {
	if _, err := tx.ExecContext(ctx, "DELETE FROM itens_venda WHERE venda_id = $1", saleID); err != nil {
		return fmt.Errorf("erro ao excluir itens da venda %s: %w", saleID, err)
	}

	if _, err := tx.ExecContext(ctx, "DELETE FROM vendas WHERE id = $1", saleID); err != nil {
		return fmt.Errorf("erro ao excluir venda %s: %w", saleID, err)
	}

	return nil
}

// ListSalesWithOperators retorna as vendas com o vendedor responsável, para o
// relatório de vendas por vendedor
func (r *saleRepository) ListSalesWithOperators(
	ctx context.Context,
	limit uint64,
	startDate, endDate *time.Time,
	operatorID string,
) ([]*domain.SaleOperatorRow, error) {
	queryBuilder := squirrel.
		Select(
			"v.id::text",
			"v.total",
			"v.desconto",
			"v.forma_pagamento",
			"v.cancelada",
			"v.created_at",
			"u.id::text",
			"u.nome",
			"COUNT(i.venda_id)",
		).
		From(salesTable).
		LeftJoin("usuarios u ON u.id = v.usuario_id").
		LeftJoin("itens_venda i ON i.venda_id = v.id").
		GroupBy("v.id", "u.id", "u.nome")

	if startDate != nil {
		queryBuilder = queryBuilder.Where(squirrel.GtOrEq{"v.created_at": startDate.Format(time.DateOnly)})
	}

	if endDate != nil {
		queryBuilder = queryBuilder.Where(squirrel.LtOrEq{"v.created_at": endDate.Format(time.DateOnly)})
	}

	if operatorID != "" {
		queryBuilder = queryBuilder.Where(squirrel.Eq{"v.usuario_id": operatorID})
	}

	if limit > 0 {
		queryBuilder = queryBuilder.Limit(limit)
	}

	query, args, err := queryBuilder.
		OrderBy("v.created_at DESC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar vendas por vendedor: %w", err)
	}
	defer rows.Close()

	report := make([]*domain.SaleOperatorRow, 0)
	for rows.Next() {
		row := &domain.SaleOperatorRow{}
		var total, discount *float64
		var paymentMethod *string

		err := rows.Scan(
			&row.SaleID,
			&total,
			&discount,
			&paymentMethod,
			&row.Cancelled,
			&row.CreatedAt,
			&row.OperatorID,
			&row.OperatorName,
			&row.ItemCount,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear linha do relatório: %w", err)
		}

		if total != nil {
			row.Total = *total
		}
		if discount != nil {
			row.Discount = *discount
		}
		if paymentMethod != nil {
			row.PaymentMethod = *paymentMethod
		}

		report = append(report, row)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return report, nil
}
