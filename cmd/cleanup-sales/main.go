// Comando de limpeza de vendas duplicadas. Agrupa as vendas pela assinatura
// (total, forma de pagamento e itens) e remove as cópias
package main

import (
	"context"
	"time"

	"github.com/neopdv/backoffice-api/infrastructure/database/postgres"
	"github.com/neopdv/backoffice-api/infrastructure/repository"
	"github.com/neopdv/backoffice-api/internal/config"
	"github.com/neopdv/backoffice-api/internal/maintenance"
	"github.com/sirupsen/logrus"
)

func main() {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	ctx := context.Background()

	conn, err := postgres.NewConnection(ctx, cfg.Database)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}
	defer conn.Close()

	saleRepo := repository.NewSaleRepository(conn)

	result, err := maintenance.CleanupDuplicateSales(ctx, conn, saleRepo)
	if err != nil {
		logrus.WithError(err).Fatal("Erro na limpeza de vendas duplicadas")
	}

	logrus.WithFields(logrus.Fields{
		"grupos_duplicados": result.DuplicateGroups,
		"vendas_removidas":  result.SalesRemoved,
	}).Info("Limpeza concluída")
}
