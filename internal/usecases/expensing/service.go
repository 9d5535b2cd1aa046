package expensing

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/neopdv/backoffice-api/infrastructure/repository"
	"github.com/neopdv/backoffice-api/internal/domain"
	"github.com/neopdv/backoffice-api/pkg/utils"
	"github.com/sirupsen/logrus"
)

const defaultStatus = "Pago"

// ExpenseService concentra as regras de negócio das despesas recorrentes
type ExpenseService interface {
	ListExpenses(ctx context.Context, filters *domain.ExpenseFilters) ([]*domain.Expense, error)
	ExpenseHistory(ctx context.Context, limit uint64) ([]*domain.Expense, error)
	TotalExpenses(ctx context.Context, closed bool) (float64, error)
	CreateExpense(ctx context.Context, req *domain.CreateExpenseRequest) (*domain.Expense, error)
	UpdateExpense(ctx context.Context, rawID string, req *domain.UpdateExpenseRequest) (*domain.Expense, error)
	DeleteExpense(ctx context.Context, rawID string) error
	ListCategories(ctx context.Context) ([]*domain.ExpenseCategory, error)
	CreateCategory(ctx context.Context, name string) (*domain.ExpenseCategory, error)
}

type service struct {
	expenseRepository  repository.ExpenseRepository
	categoryRepository repository.ExpenseCategoryRepository
}

func NewService(
	expenseRepo repository.ExpenseRepository,
	categoryRepo repository.ExpenseCategoryRepository,
) ExpenseService {
	return &service{
		expenseRepository:  expenseRepo,
		categoryRepository: categoryRepo,
	}
}

func (s *service) ListExpenses(ctx context.Context, filters *domain.ExpenseFilters) ([]*domain.Expense, error) {
	return s.expenseRepository.ListExpenses(ctx, filters)
}

func (s *service) ExpenseHistory(ctx context.Context, limit uint64) ([]*domain.Expense, error) {
	return s.expenseRepository.ListExpenseHistory(ctx, limit)
}

func (s *service) TotalExpenses(ctx context.Context, closed bool) (float64, error) {
	return s.expenseRepository.TotalExpenses(ctx, closed)
}

func (s *service) CreateExpense(ctx context.Context, req *domain.CreateExpenseRequest) (*domain.Expense, error) {
	expense := &domain.Expense{
		Type:        strings.TrimSpace(req.Type),
		Category:    strings.TrimSpace(req.Category),
		Description: strings.TrimSpace(req.Description),
		Status:      strings.TrimSpace(req.Status),
		Closed:      req.Closed,
	}

	if expense.Type == "" {
		return nil, fmt.Errorf("%w: tipo é obrigatório", ErrMissingRequiredData)
	}
	if expense.Category == "" {
		return nil, fmt.Errorf("%w: categoria é obrigatória", ErrMissingRequiredData)
	}
	if expense.Description == "" {
		return nil, fmt.Errorf("%w: descrição é obrigatória", ErrMissingRequiredData)
	}
	if req.Amount == nil {
		return nil, ErrInvalidAmount
	}
	expense.Amount = *req.Amount

	if expense.Status == "" {
		expense.Status = defaultStatus
	}

	paymentDate, err := utils.ParseDate(req.PaymentDate)
	if err != nil {
		return nil, fmt.Errorf("%w: data_pagamento", ErrInvalidDate)
	}

	dueDate, err := utils.ParseDate(req.DueDate)
	if err != nil {
		return nil, fmt.Errorf("%w: data_vencimento", ErrInvalidDate)
	}

	// Pagamento em branco assume hoje; vencimento em branco acompanha o
	// pagamento
	if paymentDate == nil {
		today := time.Now().UTC().Truncate(24 * time.Hour)
		paymentDate = &today
	}
	if dueDate == nil {
		dueDate = paymentDate
	}
	expense.PaymentDate = paymentDate
	expense.DueDate = dueDate

	// UUID de usuário malformado é descartado em silêncio, como o cliente
	// PDV antigo espera
	if req.UserID != "" {
		if userID, err := uuid.Parse(req.UserID); err == nil {
			expense.UserID = &userID
		}
	}

	created, err := s.expenseRepository.CreateExpense(ctx, expense)
	if err != nil {
		logrus.WithError(err).Error("expensing: erro ao criar despesa")
		return nil, ErrDatabaseOperation
	}

	return created, nil
}

func (s *service) UpdateExpense(ctx context.Context, rawID string, req *domain.UpdateExpenseRequest) (*domain.Expense, error) {
	id, err := uuid.Parse(rawID)
	if err != nil {
		return nil, ErrInvalidID
	}

	expense, err := s.expenseRepository.GetExpenseByID(ctx, id)
	if err != nil {
		logrus.WithError(err).Error("expensing: erro ao buscar despesa")
		return nil, ErrDatabaseOperation
	}
	if expense == nil {
		return nil, ErrExpenseNotFound
	}

	if req.Type != nil {
		expense.Type = strings.TrimSpace(*req.Type)
	}
	if req.Category != nil {
		expense.Category = strings.TrimSpace(*req.Category)
	}
	if req.Description != nil {
		expense.Description = strings.TrimSpace(*req.Description)
	}
	if req.Amount != nil {
		expense.Amount = *req.Amount
	}
	if req.Status != nil {
		expense.Status = strings.TrimSpace(*req.Status)
	}
	if req.PaymentDate != nil {
		paymentDate, err := utils.ParseDate(*req.PaymentDate)
		if err != nil {
			return nil, fmt.Errorf("%w: data_pagamento", ErrInvalidDate)
		}
		expense.PaymentDate = paymentDate
	}
	if req.DueDate != nil {
		dueDate, err := utils.ParseDate(*req.DueDate)
		if err != nil {
			return nil, fmt.Errorf("%w: data_vencimento", ErrInvalidDate)
		}
		expense.DueDate = dueDate
	}
	if req.Closed != nil {
		expense.Closed = *req.Closed
	}

	if err := s.expenseRepository.UpdateExpense(ctx, expense); err != nil {
		logrus.WithError(err).Error("expensing: erro ao atualizar despesa")
		return nil, ErrDatabaseOperation
	}

	return expense, nil
}

func (s *service) DeleteExpense(ctx context.Context, rawID string) error {
	id, err := uuid.Parse(rawID)
	if err != nil {
		return ErrInvalidID
	}

	expense, err := s.expenseRepository.GetExpenseByID(ctx, id)
	if err != nil {
		logrus.WithError(err).Error("expensing: erro ao buscar despesa")
		return ErrDatabaseOperation
	}
	if expense == nil {
		return ErrExpenseNotFound
	}

	if err := s.expenseRepository.DeleteExpense(ctx, id); err != nil {
		logrus.WithError(err).Error("expensing: erro ao excluir despesa")
		return ErrDatabaseOperation
	}

	return nil
}

func (s *service) ListCategories(ctx context.Context) ([]*domain.ExpenseCategory, error) {
	return s.categoryRepository.ListCategories(ctx)
}

// CreateCategory é idempotente pelo nome, sem diferenciar maiúsculas: criar
// uma categoria que já existe devolve a existente
func (s *service) CreateCategory(ctx context.Context, name string) (*domain.ExpenseCategory, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrCategoryNameRequired
	}

	existing, err := s.categoryRepository.GetCategoryByName(ctx, name)
	if err != nil {
		logrus.WithError(err).Error("expensing: erro ao buscar categoria")
		return nil, ErrDatabaseOperation
	}
	if existing != nil {
		return existing, nil
	}

	category, err := s.categoryRepository.CreateCategory(ctx, name)
	if err != nil {
		logrus.WithError(err).Error("expensing: erro ao criar categoria")
		return nil, ErrDatabaseOperation
	}

	return category, nil
}
