package domain

import (
	"time"

	"github.com/google/uuid"
)

// Expense representa uma despesa recorrente do caixa da loja
type Expense struct {
	ID          uuid.UUID  `json:"id"`
	Type        string     `json:"type"`
	Category    string     `json:"category"`
	Description string     `json:"description"`
	Amount      float64    `json:"amount"`
	Status      string     `json:"status"`
	PaymentDate *time.Time `json:"payment_date"`
	DueDate     *time.Time `json:"due_date"`
	UserID      *uuid.UUID `json:"user_id"`
	Closed      bool       `json:"closed"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// ExpenseCategory é uma categoria de despesa cadastrada pelo lojista
type ExpenseCategory struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

// ExpenseFilters filtra a listagem de despesas
type ExpenseFilters struct {
	Closed    bool
	Category  string
	Type      string
	StartDate *time.Time
	EndDate   *time.Time
}

// CreateExpenseRequest é o corpo aceito na criação de despesas
type CreateExpenseRequest struct {
	Type        string   `json:"type"`
	Category    string   `json:"category"`
	Description string   `json:"description"`
	Amount      *float64 `json:"amount"`
	Status      string   `json:"status"`
	PaymentDate string   `json:"payment_date"`
	DueDate     string   `json:"due_date"`
	UserID      string   `json:"user_id"`
	Closed      bool     `json:"closed"`
}

// UpdateExpenseRequest atualiza apenas os campos enviados pelo cliente
type UpdateExpenseRequest struct {
	Type        *string  `json:"type"`
	Category    *string  `json:"category"`
	Description *string  `json:"description"`
	Amount      *float64 `json:"amount"`
	Status      *string  `json:"status"`
	PaymentDate *string  `json:"payment_date"`
	DueDate     *string  `json:"due_date"`
	Closed      *bool    `json:"closed"`
}
