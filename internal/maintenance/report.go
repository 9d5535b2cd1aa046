package maintenance

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/neopdv/backoffice-api/infrastructure/repository"
	"github.com/neopdv/backoffice-api/internal/domain"
	"github.com/pkg/errors"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Formatos de saída do relatório de vendas por vendedor
const (
	FormatTable = "table"
	FormatCSV   = "csv"
	FormatJSON  = "json"
)

// ReportOptions filtra o relatório de vendas por vendedor
type ReportOptions struct {
	Limit      uint64
	StartDate  *time.Time
	EndDate    *time.Time
	OperatorID string
	Format     string
}

// SalesByOperator monta o relatório de vendas com o vendedor responsável e o
// escreve no destino informado
func SalesByOperator(
	ctx context.Context,
	saleRepo repository.SaleRepository,
	opts ReportOptions,
	out io.Writer,
) error {
	rows, err := saleRepo.ListSalesWithOperators(ctx, opts.Limit, opts.StartDate, opts.EndDate, opts.OperatorID)
	if err != nil {
		return errors.Wrap(err, "erro ao montar relatório de vendas")
	}

	switch opts.Format {
	case FormatCSV:
		return writeCSV(out, rows)
	case FormatJSON:
		return writeJSONReport(out, rows)
	case FormatTable, "":
		return writeTable(out, rows)
	default:
		return fmt.Errorf("formato de relatório desconhecido: %s", opts.Format)
	}
}

func writeTable(out io.Writer, rows []*domain.SaleOperatorRow) error {
	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)

	fmt.Fprintln(w, "VENDA\tDATA\tTOTAL\tDESCONTO\tPAGAMENTO\tVENDEDOR\tITENS")
	for _, row := range rows {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\t%d\n",
			row.SaleID,
			row.CreatedAt.Format("2006-01-02 15:04:05"),
			formatCurrency(row.Total),
			formatCurrency(row.Discount),
			row.PaymentMethod,
			operatorLabel(row),
			row.ItemCount,
		)
	}

	return w.Flush()
}

func writeCSV(out io.Writer, rows []*domain.SaleOperatorRow) error {
	w := csv.NewWriter(out)

	header := []string{"venda_id", "data", "total", "desconto", "forma_pagamento", "vendedor", "qtd_itens"}
	if err := w.Write(header); err != nil {
		return err
	}

	for _, row := range rows {
		record := []string{
			row.SaleID,
			row.CreatedAt.Format(time.RFC3339),
			strconv.FormatFloat(row.Total, 'f', 2, 64),
			strconv.FormatFloat(row.Discount, 'f', 2, 64),
			row.PaymentMethod,
			operatorLabel(row),
			strconv.Itoa(row.ItemCount),
		}
		if err := w.Write(record); err != nil {
			return err
		}
	}

	w.Flush()
	return w.Error()
}

func writeJSONReport(out io.Writer, rows []*domain.SaleOperatorRow) error {
	encoder := json.NewEncoder(out)
	encoder.SetIndent("", "  ")
	return encoder.Encode(rows)
}

// formatCurrency formata o valor na moeda dos terminais (metical)
func formatCurrency(value float64) string {
	return fmt.Sprintf("MT %.2f", value)
}

func operatorLabel(row *domain.SaleOperatorRow) string {
	if row.OperatorName == nil {
		return "N/A"
	}
	return *row.OperatorName
}
