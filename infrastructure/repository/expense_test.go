package repository

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/neopdv/backoffice-api/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestCreateExpense_AssignsIDAndTimestamps(t *testing.T) {
	conn, mock := newMockConnection(t)
	repo := NewExpenseRepository(conn)

	now := time.Date(2024, 6, 10, 12, 0, 0, 0, time.UTC)
	paymentDate := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO despesas_recorrentes")).
		WillReturnRows(sqlmock.NewRows([]string{"created_at", "updated_at"}).AddRow(now, now))

	expense, err := repo.CreateExpense(context.Background(), &domain.Expense{
		Type:        "Fixa",
		Category:    "Energia",
		Description: "Conta de luz",
		Amount:      350,
		Status:      "Pago",
		PaymentDate: &paymentDate,
		DueDate:     &paymentDate,
	})

	assert.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, expense.ID)
	assert.Equal(t, now, expense.CreatedAt)
	assert.Equal(t, now, expense.UpdatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetExpenseByID_NotFoundReturnsNil(t *testing.T) {
	conn, mock := newMockConnection(t)
	repo := NewExpenseRepository(conn)

	id := uuid.New()

	mock.ExpectQuery("SELECT id, tipo, categoria").
		WithArgs(id).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	expense, err := repo.GetExpenseByID(context.Background(), id)

	assert.NoError(t, err)
	assert.Nil(t, expense)
}

func TestListExpenses_AppliesFilters(t *testing.T) {
	conn, mock := newMockConnection(t)
	repo := NewExpenseRepository(conn)

	startDate := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	endDate := time.Date(2024, 6, 30, 0, 0, 0, 0, time.UTC)

	expenseID := uuid.New()
	created := time.Date(2024, 3, 15, 9, 0, 0, 0, time.UTC)

	rows := sqlmock.NewRows([]string{
		"id", "tipo", "categoria", "descricao", "valor", "status",
		"data_pagamento", "data_vencimento", "usuario_id", "fechada",
		"created_at", "updated_at",
	}).AddRow(
		expenseID.String(), "Fixa", "Energia", "Conta de luz", 350.0, "Pago",
		created, created, nil, false,
		created, created,
	)

	mock.ExpectQuery(regexp.QuoteMeta(
		"SELECT id, tipo, categoria, descricao, valor, status, data_pagamento, data_vencimento, usuario_id, fechada, created_at, updated_at FROM despesas_recorrentes WHERE fechada = $1 AND categoria = $2 AND tipo = $3 AND data_pagamento >= $4 AND data_pagamento <= $5 ORDER BY created_at DESC",
	)).
		WithArgs(false, "Energia", "Fixa", "2024-01-01", "2024-06-30").
		WillReturnRows(rows)

	expenses, err := repo.ListExpenses(context.Background(), &domain.ExpenseFilters{
		Closed:    false,
		Category:  "Energia",
		Type:      "Fixa",
		StartDate: &startDate,
		EndDate:   &endDate,
	})

	assert.NoError(t, err)
	assert.Len(t, expenses, 1)
	assert.Equal(t, expenseID, expenses[0].ID)
	assert.Equal(t, 350.0, expenses[0].Amount)
	assert.Nil(t, expenses[0].UserID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListExpenseHistory_CapsLimit(t *testing.T) {
	conn, mock := newMockConnection(t)
	repo := NewExpenseRepository(conn)

	// Limite acima do teto cai para o máximo
	mock.ExpectQuery(regexp.QuoteMeta("LIMIT 2000")).
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "tipo", "categoria", "descricao", "valor", "status",
			"data_pagamento", "data_vencimento", "usuario_id", "fechada",
			"created_at", "updated_at",
		}))

	expenses, err := repo.ListExpenseHistory(context.Background(), 99999)

	assert.NoError(t, err)
	assert.Empty(t, expenses)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTotalExpenses(t *testing.T) {
	conn, mock := newMockConnection(t)
	repo := NewExpenseRepository(conn)

	mock.ExpectQuery(regexp.QuoteMeta(
		"SELECT COALESCE(SUM(valor), 0) FROM despesas_recorrentes WHERE fechada = $1",
	)).
		WithArgs(true).
		WillReturnRows(sqlmock.NewRows([]string{"sum"}).AddRow(4200.0))

	total, err := repo.TotalExpenses(context.Background(), true)

	assert.NoError(t, err)
	assert.Equal(t, 4200.0, total)
}

func TestDeleteExpense(t *testing.T) {
	conn, mock := newMockConnection(t)
	repo := NewExpenseRepository(conn)

	id := uuid.New()

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM despesas_recorrentes WHERE id = $1")).
		WithArgs(id).
		WillReturnResult(sqlmock.NewResult(0, 1))

	assert.NoError(t, repo.DeleteExpense(context.Background(), id))
	assert.NoError(t, mock.ExpectationsWereMet())
}
