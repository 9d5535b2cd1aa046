package repository

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/neopdv/backoffice-api/infrastructure/database/postgres"
	"github.com/neopdv/backoffice-api/internal/domain"
)

const printersTable = "impressoras"

type PrinterRepository interface {
	ListPrinters(ctx context.Context) ([]*domain.Printer, error)
}

type printerRepository struct {
	conn postgres.Queryer
}

func NewPrinterRepository(conn postgres.Queryer) PrinterRepository {
	return &printerRepository{
		conn: conn,
	}
}

// ListPrinters lista as impressoras cadastradas, ordenadas pelo número de série
func (r *printerRepository) ListPrinters(ctx context.Context) ([]*domain.Printer, error) {
	query, args, err := squirrel.
		Select("id", "numero_serie", "marca", "modelo", "ativa", "created_at", "updated_at").
		From(printersTable).
		OrderBy("numero_serie ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar impressoras: %w", err)
	}
	defer rows.Close()

	printers := make([]*domain.Printer, 0)
	for rows.Next() {
		printer := &domain.Printer{}
		var brand, model *string

		err := rows.Scan(
			&printer.ID,
			&printer.SerialNumber,
			&brand,
			&model,
			&printer.Active,
			&printer.CreatedAt,
			&printer.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear impressora: %w", err)
		}

		if brand != nil {
			printer.Brand = *brand
		}
		if model != nil {
			printer.Model = *model
		}

		printers = append(printers, printer)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return printers, nil
}
