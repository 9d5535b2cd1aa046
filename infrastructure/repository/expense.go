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

const (
	expensesTable   = "despesas_recorrentes"
	expenseColumns  = "id, tipo, categoria, descricao, valor, status, data_pagamento, data_vencimento, usuario_id, fechada, created_at, updated_at"
	historyMaxLimit = 2000
)

type ExpenseRepository interface {
	CreateExpense(ctx context.Context, expense *domain.Expense) (*domain.Expense, error)
	GetExpenseByID(ctx context.Context, id uuid.UUID) (*domain.Expense, error)
	ListExpenses(ctx context.Context, filters *domain.ExpenseFilters) ([]*domain.Expense, error)
	ListExpenseHistory(ctx context.Context, limit uint64) ([]*domain.Expense, error)
	TotalExpenses(ctx context.Context, closed bool) (float64, error)
	UpdateExpense(ctx context.Context, expense *domain.Expense) error
	DeleteExpense(ctx context.Context, id uuid.UUID) error
}

type expenseRepository struct {
	conn postgres.Queryer
}

func NewExpenseRepository(conn postgres.Queryer) ExpenseRepository {
	return &expenseRepository{
		conn: conn,
	}
}

func (r *expenseRepository) CreateExpense(ctx context.Context, expense *domain.Expense) (*domain.Expense, error) {
	expense.ID = uuid.New()

	query, args, err := squirrel.
		Insert(expensesTable).
		Columns("id", "tipo", "categoria", "descricao", "valor", "status", "data_pagamento", "data_vencimento", "usuario_id", "fechada").
		Values(
			expense.ID,
			expense.Type,
			expense.Category,
			expense.Description,
			expense.Amount,
			expense.Status,
			expense.PaymentDate,
			expense.DueDate,
			expense.UserID,
			expense.Closed,
		).
		Suffix("RETURNING created_at, updated_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	err = r.conn.QueryRow(ctx, query, args...).Scan(&expense.CreatedAt, &expense.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("erro ao inserir despesa: %w", err)
	}

	return expense, nil
}

func (r *expenseRepository) GetExpenseByID(ctx context.Context, id uuid.UUID) (*domain.Expense, error) {
	query, args, err := squirrel.
		Select(expenseColumns).
		From(expensesTable).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	expense, err := scanExpense(r.conn.QueryRow(ctx, query, args...))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao buscar despesa: %w", err)
	}

	return expense, nil
}

func (r *expenseRepository) ListExpenses(ctx context.Context, filters *domain.ExpenseFilters) ([]*domain.Expense, error) {
	queryBuilder := squirrel.
		Select(expenseColumns).
		From(expensesTable).
		Where(squirrel.Eq{"fechada": filters.Closed})

	if filters.Category != "" {
		queryBuilder = queryBuilder.Where(squirrel.Eq{"categoria": filters.Category})
	}

	if filters.Type != "" {
		queryBuilder = queryBuilder.Where(squirrel.Eq{"tipo": filters.Type})
	}

	if filters.StartDate != nil {
		queryBuilder = queryBuilder.Where(squirrel.GtOrEq{"data_pagamento": filters.StartDate.Format(time.DateOnly)})
	}

	if filters.EndDate != nil {
		queryBuilder = queryBuilder.Where(squirrel.LtOrEq{"data_pagamento": filters.EndDate.Format(time.DateOnly)})
	}

	query, args, err := queryBuilder.
		OrderBy("created_at DESC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	return r.queryExpenses(ctx, query, args...)
}

func (r *expenseRepository) ListExpenseHistory(ctx context.Context, limit uint64) ([]*domain.Expense, error) {
	if limit == 0 || limit > historyMaxLimit {
		limit = historyMaxLimit
	}

	query, args, err := squirrel.
		Select(expenseColumns).
		From(expensesTable).
		OrderBy("created_at DESC").
		Limit(limit).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	return r.queryExpenses(ctx, query, args...)
}

func (r *expenseRepository) TotalExpenses(ctx context.Context, closed bool) (float64, error) {
	query, args, err := squirrel.
		Select("COALESCE(SUM(valor), 0)").
		From(expensesTable).
		Where(squirrel.Eq{"fechada": closed}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var total float64
	if err := r.conn.QueryRow(ctx, query, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("erro ao somar despesas: %w", err)
	}

	return total, nil
}

func (r *expenseRepository) UpdateExpense(ctx context.Context, expense *domain.Expense) error {
	query, args, err := squirrel.
		Update(expensesTable).
		Set("tipo", expense.Type).
		Set("categoria", expense.Category).
		Set("descricao", expense.Description).
		Set("valor", expense.Amount).
		Set("status", expense.Status).
		Set("data_pagamento", expense.PaymentDate).
		Set("data_vencimento", expense.DueDate).
		Set("fechada", expense.Closed).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": expense.ID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := r.conn.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("erro ao atualizar despesa: %w", err)
	}

	return nil
}

func (r *expenseRepository) DeleteExpense(ctx context.Context, id uuid.UUID) error {
	query, args, err := squirrel.
		Delete(expensesTable).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := r.conn.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("erro ao excluir despesa: %w", err)
	}

	return nil
}

func (r *expenseRepository) queryExpenses(ctx context.Context, query string, args ...interface{}) ([]*domain.Expense, error) {
	rows, err := r.conn.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	expenses := make([]*domain.Expense, 0)
	for rows.Next() {
		expense, err := scanExpense(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear despesa: %w", err)
		}
		expenses = append(expenses, expense)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return expenses, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanExpense(row rowScanner) (*domain.Expense, error) {
	expense := &domain.Expense{}

	err := row.Scan(
		&expense.ID,
		&expense.Type,
		&expense.Category,
		&expense.Description,
		&expense.Amount,
		&expense.Status,
		&expense.PaymentDate,
		&expense.DueDate,
		&expense.UserID,
		&expense.Closed,
		&expense.CreatedAt,
		&expense.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return expense, nil
}
