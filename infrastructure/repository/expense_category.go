package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/neopdv/backoffice-api/infrastructure/database/postgres"
	"github.com/neopdv/backoffice-api/internal/domain"
)

const expenseCategoriesTable = "categorias_despesa"

type ExpenseCategoryRepository interface {
	ListCategories(ctx context.Context) ([]*domain.ExpenseCategory, error)
	GetCategoryByName(ctx context.Context, name string) (*domain.ExpenseCategory, error)
	CreateCategory(ctx context.Context, name string) (*domain.ExpenseCategory, error)
}

type expenseCategoryRepository struct {
	conn postgres.Queryer
}

func NewExpenseCategoryRepository(conn postgres.Queryer) ExpenseCategoryRepository {
	return &expenseCategoryRepository{
		conn: conn,
	}
}

func (r *expenseCategoryRepository) ListCategories(ctx context.Context) ([]*domain.ExpenseCategory, error) {
	query, args, err := squirrel.
		Select("id", "nome").
		From(expenseCategoriesTable).
		OrderBy("nome ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar categorias: %w", err)
	}
	defer rows.Close()

	categories := make([]*domain.ExpenseCategory, 0)
	for rows.Next() {
		category := &domain.ExpenseCategory{}
		if err := rows.Scan(&category.ID, &category.Name); err != nil {
			return nil, fmt.Errorf("erro ao escanear categoria: %w", err)
		}
		categories = append(categories, category)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return categories, nil
}

// GetCategoryByName busca uma categoria pelo nome, sem diferenciar maiúsculas
func (r *expenseCategoryRepository) GetCategoryByName(ctx context.Context, name string) (*domain.ExpenseCategory, error) {
	query, args, err := squirrel.
		Select("id", "nome").
		From(expenseCategoriesTable).
		Where("LOWER(nome) = LOWER(?)", name).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	category := &domain.ExpenseCategory{}
	err = r.conn.QueryRow(ctx, query, args...).Scan(&category.ID, &category.Name)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao buscar categoria: %w", err)
	}

	return category, nil
}

func (r *expenseCategoryRepository) CreateCategory(ctx context.Context, name string) (*domain.ExpenseCategory, error) {
	category := &domain.ExpenseCategory{
		ID:   uuid.New(),
		Name: name,
	}

	query, args, err := squirrel.
		Insert(expenseCategoriesTable).
		Columns("id", "nome").
		Values(category.ID, category.Name).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := r.conn.Exec(ctx, query, args...); err != nil {
		return nil, fmt.Errorf("erro ao inserir categoria: %w", err)
	}

	return category, nil
}
