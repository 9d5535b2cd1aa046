package maintenance

import (
	"context"
	"database/sql"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/neopdv/backoffice-api/infrastructure/database/postgres"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// O terminal PDV sincroniza o serviço de impressão por este UUID fixo, então o
// seed nunca pode criar o produto com outro identificador
const (
	DefaultPrintServiceUUID        = "157c293f-5995-4a83-9d2a-e02f811dd5f4"
	DefaultPrintServiceCode        = "SERVICO_IMPRESSAO"
	DefaultPrintServiceName        = "Serviço de Impressão"
	DefaultPrintServiceDescription = "Serviço de impressão e cópias"
)

// PrintServiceSeed descreve o produto de serviço de impressão a ser semeado
type PrintServiceSeed struct {
	ID          string
	Code        string
	Name        string
	Description string
}

// DefaultPrintServiceSeed retorna o seed com os valores esperados pelos
// terminais
func DefaultPrintServiceSeed() PrintServiceSeed {
	return PrintServiceSeed{
		ID:          DefaultPrintServiceUUID,
		Code:        DefaultPrintServiceCode,
		Name:        DefaultPrintServiceName,
		Description: DefaultPrintServiceDescription,
	}
}

// SeedPrintServiceProduct garante a existência do produto de serviço de
// impressão. Se o código já existe com outro UUID, nada é criado para não
// quebrar referências existentes
func SeedPrintServiceProduct(ctx context.Context, conn postgres.Queryer, seed PrintServiceSeed) error {
	productID, err := uuid.Parse(seed.ID)
	if err != nil {
		return errors.Wrap(err, "uuid do produto inválido")
	}

	existsByID, err := productExists(ctx, conn, squirrel.Eq{"id": productID})
	if err != nil {
		return errors.Wrap(err, "erro ao verificar produto por uuid")
	}
	if existsByID {
		logrus.WithField("id", productID).Info("Produto de serviço de impressão já existe")
		return nil
	}

	existsByCode, err := productExists(ctx, conn, squirrel.Eq{"codigo": seed.Code})
	if err != nil {
		return errors.Wrap(err, "erro ao verificar produto por código")
	}
	if existsByCode {
		logrus.WithField("codigo", seed.Code).Warn(
			"Já existe um produto com este código e UUID diferente, seed ignorado")
		return nil
	}

	query, args, err := squirrel.
		Insert("produtos").
		Columns(
			"id", "codigo", "nome", "descricao",
			"preco_custo", "preco_venda", "estoque", "estoque_minimo",
			"venda_por_peso", "unidade_medida", "taxa_iva", "ativo",
		).
		Values(
			productID, seed.Code, seed.Name, seed.Description,
			0.0, 0.0, 0.0, 0.0,
			false, "serv", 0.0, true,
		).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return errors.Wrap(err, "erro ao construir a query de seed")
	}

	if _, err := conn.Exec(ctx, query, args...); err != nil {
		return errors.Wrap(err, "erro ao criar produto de serviço de impressão")
	}

	logrus.WithFields(logrus.Fields{
		"id":     productID,
		"codigo": seed.Code,
	}).Info("Produto de serviço de impressão criado")

	return nil
}

func productExists(ctx context.Context, conn postgres.Queryer, condition squirrel.Eq) (bool, error) {
	query, args, err := squirrel.
		Select("1").
		From("produtos").
		Where(condition).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return false, err
	}

	var one int
	err = conn.QueryRow(ctx, query, args...).Scan(&one)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	return true, nil
}
