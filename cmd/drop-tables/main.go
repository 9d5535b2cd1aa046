// Comando de reset completo do banco: remove todas as tabelas do schema
// public. Exige a flag --confirm para evitar acidentes
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

	confirm := flag.Bool("yes", false, "confirma a remoção de todas as tabelas")
	flag.Parse()

	if !*confirm {
		logrus.Fatal("Operação destrutiva: rode novamente com --yes para remover todas as tabelas")
	}

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

	if err := maintenance.DropAllTables(ctx, conn); err != nil {
		logrus.WithError(err).Fatal("Erro ao remover tabelas")
	}
}
