// Comando de seed do produto de serviço de impressão, com o UUID fixo que os
// terminais usam na sincronização
package main

import (
	"context"
	"flag"
	"time"

	"github.com/neopdv/backoffice-api/infrastructure/database/postgres"
	"github.com/neopdv/backoffice-api/internal/config"
	"github.com/neopdv/backoffice-api/internal/maintenance"
	"github.com/sirupsen/logrus"
)

func main() {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})

	seed := maintenance.DefaultPrintServiceSeed()
	flag.StringVar(&seed.ID, "uuid", seed.ID, "UUID do produto")
	flag.StringVar(&seed.Code, "codigo", seed.Code, "código do produto")
	flag.StringVar(&seed.Name, "nome", seed.Name, "nome do produto")
	flag.StringVar(&seed.Description, "descricao", seed.Description, "descrição do produto")
	flag.Parse()

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

	if err := maintenance.SeedPrintServiceProduct(ctx, conn, seed); err != nil {
		logrus.WithError(err).Fatal("Erro ao semear produto de serviço de impressão")
	}
}
