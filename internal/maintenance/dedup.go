// Package maintenance reúne as rotinas administrativas de banco executadas
// pelos comandos em cmd/: limpeza de duplicatas, migrações, relatórios e seeds
package maintenance

import (
	"context"
	"database/sql"
	"fmt"
	"sort"
	"strings"

	"github.com/google/uuid"
	"github.com/neopdv/backoffice-api/infrastructure/repository"
	"github.com/neopdv/backoffice-api/internal/domain"
	"github.com/neopdv/backoffice-api/pkg/utils"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// transactor é o subconjunto da conexão usado pela limpeza de duplicatas
type transactor interface {
	RunInTransaction(context.Context, func(*sql.Tx) error) error
}

// CleanupResult resume uma execução da limpeza de vendas duplicadas
type CleanupResult struct {
	DuplicateGroups int
	SalesRemoved    int
	RemovedIDs      []uuid.UUID
}

// CleanupDuplicateSales localiza vendas com a mesma assinatura (total, forma de
// pagamento e itens) e remove as cópias, mantendo uma venda por grupo. Toda a
// remoção acontece em uma única transação
func CleanupDuplicateSales(
	ctx context.Context,
	conn transactor,
	saleRepo repository.SaleRepository,
) (*CleanupResult, error) {
	sales, err := saleRepo.ListSalesWithItems(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao carregar vendas para limpeza")
	}

	groups := make(map[string][]*domain.Sale)
	for _, sale := range sales {
		sig := saleSignature(sale)
		groups[sig] = append(groups[sig], sale)
	}

	result := &CleanupResult{}
	var toRemove []uuid.UUID

	for sig, group := range groups {
		if len(group) < 2 {
			continue
		}
		result.DuplicateGroups++

		keeper := chooseKeeper(group)
		logrus.WithFields(logrus.Fields{
			"assinatura": sig,
			"manter":     keeper.ID,
			"grupo":      len(group),
		}).Info("Grupo de vendas duplicadas encontrado")

		for _, sale := range group {
			if sale.ID != keeper.ID {
				toRemove = append(toRemove, sale.ID)
			}
		}
	}

	if len(toRemove) == 0 {
		logrus.Info("Nenhuma venda duplicada encontrada pela assinatura")
		return result, nil
	}

	err = conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		for _, saleID := range toRemove {
			if err := saleRepo.DeleteSaleTx(ctx, tx, saleID); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "erro ao remover vendas duplicadas")
	}

	result.SalesRemoved = len(toRemove)
	result.RemovedIDs = toRemove

	logrus.WithField("removidas", result.SalesRemoved).Info("Limpeza de vendas duplicadas concluída")
	return result, nil
}

// saleSignature identifica uma venda pelo total, forma de pagamento e itens.
// Os itens entram ordenados para que a ordem de inserção não afete a assinatura
func saleSignature(sale *domain.Sale) string {
	itemKeys := make([]string, 0, len(sale.Items))
	for _, item := range sale.Items {
		itemKeys = append(itemKeys, fmt.Sprintf(
			"%s|%d|%.6f|%.6f|%.6f",
			item.ProductID,
			item.Quantity,
			utils.RoundWithSixDecimalPlace(item.WeightKg),
			utils.RoundWithSixDecimalPlace(item.UnitPrice),
			utils.RoundWithSixDecimalPlace(item.Subtotal),
		))
	}
	sort.Strings(itemKeys)

	return fmt.Sprintf(
		"%.6f|%s|%s",
		utils.RoundWithSixDecimalPlace(sale.Total),
		sale.PaymentMethod,
		strings.Join(itemKeys, ";"),
	)
}

// chooseKeeper decide qual venda do grupo sobrevive: preferir venda com
// vendedor associado; em empate, a mais antiga
func chooseKeeper(group []*domain.Sale) *domain.Sale {
	keeper := group[0]
	for _, sale := range group[1:] {
		if rankSale(sale, keeper) {
			keeper = sale
		}
	}
	return keeper
}

func rankSale(candidate, current *domain.Sale) bool {
	candidateHasUser := candidate.UserID != nil
	currentHasUser := current.UserID != nil

	if candidateHasUser != currentHasUser {
		return candidateHasUser
	}

	return candidate.CreatedAt.Before(current.CreatedAt)
}
